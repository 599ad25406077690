package merge

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/talentops/recruit-crm/constants"
	"github.com/talentops/recruit-crm/internal/common"
	"github.com/talentops/recruit-crm/internal/entity"
	"github.com/talentops/recruit-crm/internal/repository"
)

// Engine validates merge requests and delegates the transactional work to
// the merge repository. Validation runs twice: cheap checks here, and the
// authoritative ones again inside the transaction under row locks.
type Engine struct {
	merges repository.MergeRepository
	audit  repository.AuditRepository
	logger *slog.Logger
}

func NewEngine(merges repository.MergeRepository, audit repository.AuditRepository, logger *slog.Logger) *Engine {
	return &Engine{merges: merges, audit: audit, logger: logger}
}

// Merge consolidates the sources into the target and returns the updated
// target. Re-running with an already-merged source fails with a conflict,
// it never silently re-applies.
func (e *Engine) Merge(ctx context.Context, targetID uuid.UUID, sourceIDs []uuid.UUID, mergedBy *uuid.UUID) (*entity.Candidate, error) {
	if targetID == uuid.Nil {
		return nil, fmt.Errorf("target id is required: %w", common.ErrValidation)
	}
	if len(sourceIDs) == 0 {
		return nil, fmt.Errorf("at least one source id is required: %w", common.ErrValidation)
	}

	seen := make(map[uuid.UUID]bool, len(sourceIDs))
	deduped := make([]uuid.UUID, 0, len(sourceIDs))
	for _, id := range sourceIDs {
		if id == uuid.Nil {
			return nil, fmt.Errorf("source id is required: %w", common.ErrValidation)
		}
		if id == targetID {
			return nil, fmt.Errorf("candidate %s cannot be merged into itself: %w", id, common.ErrValidation)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		deduped = append(deduped, id)
	}

	target, err := e.merges.Merge(ctx, repository.MergeRequest{
		TargetID:  targetID,
		SourceIDs: deduped,
		MergedBy:  mergedBy,
	})
	if err != nil {
		return nil, err
	}

	sources := make([]string, len(deduped))
	for i, id := range deduped {
		sources[i] = id.String()
	}
	e.audit.Record(ctx, constants.AuditCandidatesMerged, mergedBy, map[string]any{
		"target_id":  targetID.String(),
		"source_ids": sources,
	})
	e.logger.Info("merge applied", "target_id", targetID, "sources", len(deduped))
	return target, nil
}
