package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/talentops/recruit-crm/gen/ent"
	entattachment "github.com/talentops/recruit-crm/gen/ent/attachment"
	entcandidate "github.com/talentops/recruit-crm/gen/ent/candidate"
	entcandtag "github.com/talentops/recruit-crm/gen/ent/candidatetag"
	entemaillog "github.com/talentops/recruit-crm/gen/ent/emaillog"
	entmergelog "github.com/talentops/recruit-crm/gen/ent/mergelog"
	entnote "github.com/talentops/recruit-crm/gen/ent/note"
	entstagehistory "github.com/talentops/recruit-crm/gen/ent/stagehistory"
	"github.com/talentops/recruit-crm/internal/common"
	"github.com/talentops/recruit-crm/internal/entity"
	"github.com/talentops/recruit-crm/internal/utils"
)

// MergeRequest merges every source candidate into the target. MergedBy is
// recorded on the merge-log rows when present.
type MergeRequest struct {
	TargetID  uuid.UUID
	SourceIDs []uuid.UUID
	MergedBy  *uuid.UUID
}

// MergeRepository executes the merge as one transaction. All related rows
// move to the target, empty target scalars are backfilled, sources become
// tombstones. Nothing is deleted except duplicate tag links.
type MergeRepository interface {
	Merge(ctx context.Context, req MergeRequest) (*entity.Candidate, error)
	History(ctx context.Context, targetID uuid.UUID) ([]*entity.MergeLog, error)
}

type mergeRepo struct {
	ent      *ent.Client
	rowLocks bool
	logger   *slog.Logger
}

// NewMergeRepository builds the merge executor. rowLocks enables SELECT FOR
// UPDATE on the target and sources; keep it on for Postgres, off for SQLite
// where the single-writer model makes it both unsupported and unnecessary.
func NewMergeRepository(entc *ent.Client, rowLocks bool, logger *slog.Logger) MergeRepository {
	return &mergeRepo{ent: entc, rowLocks: rowLocks, logger: logger}
}

func (r *mergeRepo) Merge(ctx context.Context, req MergeRequest) (*entity.Candidate, error) {
	var merged *ent.Candidate
	err := WithTx(ctx, r.ent, func(tx *ent.Tx) error {
		// Lock target and sources for the duration of the transaction, then
		// re-validate under the locks. A concurrent merge that won the race
		// leaves a tombstone we must refuse to touch.
		targetQuery := tx.Candidate.Query().
			Where(entcandidate.ID(req.TargetID))
		if r.rowLocks {
			targetQuery = targetQuery.ForUpdate()
		}
		target, err := targetQuery.Only(ctx)
		if ent.IsNotFound(err) {
			return fmt.Errorf("target candidate %s: %w", req.TargetID, common.ErrNotFound)
		}
		if err != nil {
			return err
		}
		if target.MergedIntoID != nil {
			return fmt.Errorf("target candidate %s is already merged: %w", req.TargetID, common.ErrConflict)
		}
		if target.DeletedAt != nil {
			return fmt.Errorf("target candidate %s is deleted: %w", req.TargetID, common.ErrConflict)
		}

		sourceQuery := tx.Candidate.Query().
			Where(entcandidate.IDIn(req.SourceIDs...))
		if r.rowLocks {
			sourceQuery = sourceQuery.ForUpdate()
		}
		sources, err := sourceQuery.All(ctx)
		if err != nil {
			return err
		}
		if len(sources) != len(req.SourceIDs) {
			found := make(map[uuid.UUID]bool, len(sources))
			for _, s := range sources {
				found[s.ID] = true
			}
			for _, id := range req.SourceIDs {
				if !found[id] {
					return fmt.Errorf("source candidate %s: %w", id, common.ErrNotFound)
				}
			}
		}
		for _, src := range sources {
			if src.ID == target.ID {
				return fmt.Errorf("candidate %s cannot be merged into itself: %w", src.ID, common.ErrValidation)
			}
			if src.MergedIntoID != nil {
				return fmt.Errorf("source candidate %s is already merged: %w", src.ID, common.ErrConflict)
			}
			if src.DeletedAt != nil {
				return fmt.Errorf("source candidate %s is deleted: %w", src.ID, common.ErrConflict)
			}
			if src.PipelineID != target.PipelineID {
				return fmt.Errorf("candidate %s belongs to another pipeline: %w", src.ID, common.ErrValidation)
			}
		}

		sourceIDs := make([]uuid.UUID, len(sources))
		for i, s := range sources {
			sourceIDs[i] = s.ID
		}

		// Move history-bearing rows wholesale; timestamps and authors stay.
		if _, err := tx.Note.Update().
			Where(entnote.CandidateIDIn(sourceIDs...)).
			SetCandidateID(target.ID).
			Save(ctx); err != nil {
			return fmt.Errorf("reassign notes: %w", err)
		}
		if _, err := tx.Attachment.Update().
			Where(entattachment.CandidateIDIn(sourceIDs...)).
			SetCandidateID(target.ID).
			Save(ctx); err != nil {
			return fmt.Errorf("reassign attachments: %w", err)
		}
		if _, err := tx.EmailLog.Update().
			Where(entemaillog.CandidateIDIn(sourceIDs...)).
			SetCandidateID(target.ID).
			Save(ctx); err != nil {
			return fmt.Errorf("reassign email logs: %w", err)
		}
		if _, err := tx.StageHistory.Update().
			Where(entstagehistory.CandidateIDIn(sourceIDs...)).
			SetCandidateID(target.ID).
			Save(ctx); err != nil {
			return fmt.Errorf("reassign stage history: %w", err)
		}

		if err := unionTags(ctx, tx, target.ID, sourceIDs); err != nil {
			return err
		}

		// Backfill empty target scalars from the sources, in request order.
		// A populated target field is never overwritten.
		upd := tx.Candidate.UpdateOneID(target.ID)
		dirty := false
		email, phone, text := target.Email, target.Phone, target.ExtractedText
		for _, src := range sources {
			if email == nil && src.Email != nil {
				upd.SetEmail(*src.Email)
				email = src.Email
				dirty = true
			}
			if phone == nil && src.Phone != nil {
				upd.SetPhone(*src.Phone)
				phone = src.Phone
				dirty = true
			}
			if text == nil && src.ExtractedText != nil {
				upd.SetExtractedText(*src.ExtractedText)
				text = src.ExtractedText
				dirty = true
			}
		}
		if dirty {
			if _, err := upd.Save(ctx); err != nil {
				return fmt.Errorf("backfill target: %w", err)
			}
		}

		for _, src := range sources {
			if _, err := tx.Candidate.UpdateOneID(src.ID).
				SetMergedIntoID(target.ID).
				Save(ctx); err != nil {
				return fmt.Errorf("tombstone source %s: %w", src.ID, err)
			}
			if _, err := tx.MergeLog.Create().
				SetTargetID(target.ID).
				SetSourceID(src.ID).
				SetNillableMergedBy(req.MergedBy).
				Save(ctx); err != nil {
				return fmt.Errorf("merge log for %s: %w", src.ID, err)
			}
		}

		merged, err = tx.Candidate.Get(ctx, target.ID)
		return err
	})
	if err != nil {
		r.logger.Error("merge failed", "target_id", req.TargetID, "sources", len(req.SourceIDs), "error", err)
		return nil, err
	}
	r.logger.Info("candidates merged", "target_id", req.TargetID, "sources", len(req.SourceIDs))
	return utils.ToCandidate(merged), nil
}

// History lists the merge-log rows recorded against a target candidate,
// oldest first.
func (r *mergeRepo) History(ctx context.Context, targetID uuid.UUID) ([]*entity.MergeLog, error) {
	rows, err := r.ent.MergeLog.Query().
		Where(entmergelog.TargetID(targetID)).
		Order(entmergelog.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	logs := make([]*entity.MergeLog, len(rows))
	for i, row := range rows {
		logs[i] = utils.ToMergeLog(row)
	}
	return logs, nil
}

// unionTags moves source tag links to the target, dropping links whose tag
// the target already carries so the unique (candidate_id, tag_id) index holds.
func unionTags(ctx context.Context, tx *ent.Tx, targetID uuid.UUID, sourceIDs []uuid.UUID) error {
	targetLinks, err := tx.CandidateTag.Query().
		Where(entcandtag.CandidateID(targetID)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("load target tags: %w", err)
	}
	have := make(map[uuid.UUID]bool, len(targetLinks))
	for _, l := range targetLinks {
		have[l.TagID] = true
	}

	sourceLinks, err := tx.CandidateTag.Query().
		Where(entcandtag.CandidateIDIn(sourceIDs...)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("load source tags: %w", err)
	}
	for _, l := range sourceLinks {
		if have[l.TagID] {
			if err := tx.CandidateTag.DeleteOneID(l.ID).Exec(ctx); err != nil {
				return fmt.Errorf("drop duplicate tag link: %w", err)
			}
			continue
		}
		if _, err := tx.CandidateTag.UpdateOneID(l.ID).
			SetCandidateID(targetID).
			Save(ctx); err != nil {
			return fmt.Errorf("move tag link: %w", err)
		}
		have[l.TagID] = true
	}
	return nil
}
