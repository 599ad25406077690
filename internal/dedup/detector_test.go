package dedup

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentops/recruit-crm/internal/entity"
	"github.com/talentops/recruit-crm/internal/repository"
)

type stubCandidateRepo struct {
	repository.CandidateRepository
	active []*entity.Candidate
}

func (s *stubCandidateRepo) ListActive(_ context.Context, _ *uuid.UUID) ([]*entity.Candidate, error) {
	return s.active, nil
}

func candidateAt(name string, email, phone *string, createdAt time.Time) *entity.Candidate {
	return &entity.Candidate{
		ID:        uuid.New(),
		FullName:  name,
		Email:     email,
		Phone:     phone,
		CreatedAt: createdAt,
	}
}

func strptr(s string) *string { return &s }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFindDuplicatesGroupsByEmailThenPhone(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	a := candidateAt("A", strptr("x@corp.io"), nil, base)
	b := candidateAt("B", strptr("X@corp.io"), nil, base.Add(time.Hour))
	c := candidateAt("C", nil, strptr("+32470123456"), base.Add(2*time.Hour))
	d := candidateAt("D", nil, strptr("+32470123456"), base.Add(3*time.Hour))

	det := NewDetector(&stubCandidateRepo{active: []*entity.Candidate{a, b, c, d}}, discardLogger())
	report, err := det.FindDuplicates(context.Background(), nil)
	require.NoError(t, err)

	require.Len(t, report.Groups, 2)
	assert.Equal(t, 2, report.GroupCount)
	assert.Equal(t, 4, report.CandidatesInvolved)

	email := report.Groups[0]
	assert.Equal(t, entity.DuplicateByEmail, email.Type)
	assert.Equal(t, "x@corp.io", email.Value)
	require.Len(t, email.Candidates, 2)
	assert.Equal(t, a.ID, email.Candidates[0].ID, "oldest first")

	phone := report.Groups[1]
	assert.Equal(t, entity.DuplicateByPhone, phone.Type)
	assert.Equal(t, "+32470123456", phone.Value)
	assert.Equal(t, c.ID, phone.Candidates[0].ID)
}

func TestFindDuplicatesEmailClaimWinsOverPhone(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	phone := strptr("+32470123456")
	a := candidateAt("A", strptr("x@corp.io"), phone, base)
	b := candidateAt("B", strptr("x@corp.io"), phone, base.Add(time.Hour))

	det := NewDetector(&stubCandidateRepo{active: []*entity.Candidate{a, b}}, discardLogger())
	report, err := det.FindDuplicates(context.Background(), nil)
	require.NoError(t, err)

	require.Len(t, report.Groups, 1, "one pair must not be reported twice")
	assert.Equal(t, entity.DuplicateByEmail, report.Groups[0].Type)
	assert.Equal(t, 2, report.CandidatesInvolved)
}

func TestFindDuplicatesSingletonsIgnored(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	a := candidateAt("A", strptr("x@corp.io"), nil, base)
	b := candidateAt("B", strptr("y@corp.io"), strptr("+32470000001"), base)
	c := candidateAt("C", nil, nil, base)

	det := NewDetector(&stubCandidateRepo{active: []*entity.Candidate{a, b, c}}, discardLogger())
	report, err := det.FindDuplicates(context.Background(), nil)
	require.NoError(t, err)

	assert.Empty(t, report.Groups)
	assert.Equal(t, 0, report.GroupCount)
	assert.Equal(t, 0, report.CandidatesInvolved)
}
