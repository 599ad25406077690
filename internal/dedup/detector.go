package dedup

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/talentops/recruit-crm/internal/entity"
	"github.com/talentops/recruit-crm/internal/repository"
)

// Detector groups active candidates by shared normalized email or phone.
// Tombstoned and soft-deleted candidates never appear; that filter lives in
// the repository's active query, not here.
type Detector struct {
	candidates repository.CandidateRepository
	logger     *slog.Logger
}

func NewDetector(candidates repository.CandidateRepository, logger *slog.Logger) *Detector {
	return &Detector{candidates: candidates, logger: logger}
}

// FindDuplicates scans one pipeline (or all, when pipelineID is nil) and
// returns email groups first, then phone groups. A candidate claimed by an
// email group is not reported again under phone, so one pair never shows up
// twice.
func (d *Detector) FindDuplicates(ctx context.Context, pipelineID *uuid.UUID) (*entity.DuplicateReport, error) {
	candidates, err := d.candidates.ListActive(ctx, pipelineID)
	if err != nil {
		return nil, err
	}

	report := &entity.DuplicateReport{Groups: []*entity.DuplicateGroup{}}
	claimed := make(map[uuid.UUID]bool)

	emailGroups := groupBy(candidates, func(c *entity.Candidate) string {
		if c.Email == nil {
			return ""
		}
		return strings.ToLower(*c.Email)
	})
	appendGroups(report, entity.DuplicateByEmail, emailGroups, claimed)

	var remaining []*entity.Candidate
	for _, c := range candidates {
		if !claimed[c.ID] {
			remaining = append(remaining, c)
		}
	}
	phoneGroups := groupBy(remaining, func(c *entity.Candidate) string {
		if c.Phone == nil {
			return ""
		}
		return *c.Phone
	})
	appendGroups(report, entity.DuplicateByPhone, phoneGroups, claimed)

	report.GroupCount = len(report.Groups)
	report.CandidatesInvolved = len(claimed)
	d.logger.Info("duplicate scan finished",
		"groups", report.GroupCount,
		"candidates_involved", report.CandidatesInvolved,
	)
	return report, nil
}

// groupBy buckets candidates by a non-empty key, keeping only buckets with
// two or more members. Candidates arrive oldest-created-first and stay that
// way within each bucket.
func groupBy(candidates []*entity.Candidate, key func(*entity.Candidate) string) map[string][]*entity.Candidate {
	buckets := make(map[string][]*entity.Candidate)
	for _, c := range candidates {
		k := key(c)
		if k == "" {
			continue
		}
		buckets[k] = append(buckets[k], c)
	}
	for k, members := range buckets {
		if len(members) < 2 {
			delete(buckets, k)
		}
	}
	return buckets
}

func appendGroups(report *entity.DuplicateReport, typ entity.DuplicateGroupType, buckets map[string][]*entity.Candidate, claimed map[uuid.UUID]bool) {
	values := make([]string, 0, len(buckets))
	for v := range buckets {
		values = append(values, v)
	}
	sort.Strings(values)

	for _, v := range values {
		members := buckets[v]
		report.Groups = append(report.Groups, &entity.DuplicateGroup{
			Type:       typ,
			Value:      v,
			Candidates: members,
		})
		for _, c := range members {
			claimed[c.ID] = true
		}
	}
}
