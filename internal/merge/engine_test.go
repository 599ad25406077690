package merge

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentops/recruit-crm/constants"
	"github.com/talentops/recruit-crm/internal/common"
	"github.com/talentops/recruit-crm/internal/entity"
	"github.com/talentops/recruit-crm/internal/repository"
)

type stubMergeRepo struct {
	got    *repository.MergeRequest
	result *entity.Candidate
	err    error
}

func (s *stubMergeRepo) Merge(_ context.Context, req repository.MergeRequest) (*entity.Candidate, error) {
	s.got = &req
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubMergeRepo) History(context.Context, uuid.UUID) ([]*entity.MergeLog, error) {
	return nil, nil
}

type recordingAudit struct {
	actions []string
}

func (r *recordingAudit) Record(_ context.Context, action string, _ *uuid.UUID, _ map[string]any) {
	r.actions = append(r.actions, action)
}

func newTestEngine(repo *stubMergeRepo, audit *recordingAudit) *Engine {
	return NewEngine(repo, audit, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestMergeRejectsSelfMerge(t *testing.T) {
	repo := &stubMergeRepo{}
	e := newTestEngine(repo, &recordingAudit{})
	id := uuid.New()

	_, err := e.Merge(context.Background(), id, []uuid.UUID{id}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Nil(t, repo.got, "repository must not be reached")
}

func TestMergeRejectsEmptySources(t *testing.T) {
	repo := &stubMergeRepo{}
	e := newTestEngine(repo, &recordingAudit{})

	_, err := e.Merge(context.Background(), uuid.New(), nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestMergeDeduplicatesSources(t *testing.T) {
	target := uuid.New()
	src := uuid.New()
	repo := &stubMergeRepo{result: &entity.Candidate{ID: target}}
	audit := &recordingAudit{}
	e := newTestEngine(repo, audit)

	got, err := e.Merge(context.Background(), target, []uuid.UUID{src, src}, nil)
	require.NoError(t, err)
	assert.Equal(t, target, got.ID)
	require.NotNil(t, repo.got)
	assert.Equal(t, []uuid.UUID{src}, repo.got.SourceIDs)
	assert.Contains(t, audit.actions, constants.AuditCandidatesMerged)
}

func TestMergeConflictSkipsAudit(t *testing.T) {
	repo := &stubMergeRepo{err: fmt.Errorf("source already merged: %w", common.ErrConflict)}
	audit := &recordingAudit{}
	e := newTestEngine(repo, audit)

	_, err := e.Merge(context.Background(), uuid.New(), []uuid.UUID{uuid.New()}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConflict)
	assert.Empty(t, audit.actions)
}
