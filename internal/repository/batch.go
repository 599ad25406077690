package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/talentops/recruit-crm/constants"
	"github.com/talentops/recruit-crm/gen/ent"
	entbatch "github.com/talentops/recruit-crm/gen/ent/importbatch"
	entitem "github.com/talentops/recruit-crm/gen/ent/importitem"
	"github.com/talentops/recruit-crm/internal/common"
	"github.com/talentops/recruit-crm/internal/entity"
	"github.com/talentops/recruit-crm/internal/utils"
)

// ImportBatchRepository persists batches and their items. Status transitions
// are conditional updates so concurrent workers cannot double-process.
type ImportBatchRepository interface {
	Create(ctx context.Context, pipelineID uuid.UUID, createdBy *uuid.UUID, defaultCountry string) (*entity.ImportBatch, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ImportBatch, error)
	// AppendItem stores one accepted file and bumps the batch total in the
	// same transaction.
	AppendItem(ctx context.Context, batchID uuid.UUID, filename, storageKey, contentType string, fileSize int) (*entity.ImportItem, error)
	ListItems(ctx context.Context, batchID uuid.UUID) ([]*entity.ImportItem, error)
	QueuedItems(ctx context.Context, batchID uuid.UUID) ([]*entity.ImportItem, error)
	// MarkProcessing flips PENDING to PROCESSING; ErrConflict when the
	// batch was already claimed or finished.
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	MarkItemProcessing(ctx context.Context, itemID uuid.UUID) error
	MarkItemSucceeded(ctx context.Context, itemID, candidateID uuid.UUID, extractedJSON json.RawMessage) error
	MarkItemFailed(ctx context.Context, itemID uuid.UUID, message string) error
	// RecordItemResult bumps processed plus exactly one of success/failed.
	RecordItemResult(ctx context.Context, batchID uuid.UUID, succeeded bool) error
	Complete(ctx context.Context, id uuid.UUID) error
	Fail(ctx context.Context, id uuid.UUID) error
	// Delete removes the batch and its items; refused while PROCESSING.
	Delete(ctx context.Context, id uuid.UUID) error
}

type batchRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewImportBatchRepository(entc *ent.Client, logger *slog.Logger) ImportBatchRepository {
	return &batchRepo{ent: entc, logger: logger}
}

func (r *batchRepo) Create(ctx context.Context, pipelineID uuid.UUID, createdBy *uuid.UUID, defaultCountry string) (*entity.ImportBatch, error) {
	row, err := r.ent.ImportBatch.Create().
		SetPipelineID(pipelineID).
		SetNillableCreatedBy(createdBy).
		SetDefaultCountryCode(defaultCountry).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create import batch", "pipeline_id", pipelineID, "error", err)
		return nil, err
	}
	r.logger.Info("import batch created", "batch_id", row.ID, "pipeline_id", pipelineID)
	return utils.ToBatch(row), nil
}

func (r *batchRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ImportBatch, error) {
	row, err := r.ent.ImportBatch.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("import batch %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return utils.ToBatch(row), nil
}

func (r *batchRepo) AppendItem(ctx context.Context, batchID uuid.UUID, filename, storageKey, contentType string, fileSize int) (*entity.ImportItem, error) {
	var created *ent.ImportItem
	err := WithTx(ctx, r.ent, func(tx *ent.Tx) error {
		row, err := tx.ImportItem.Create().
			SetBatchID(batchID).
			SetFilename(filename).
			SetStorageKey(storageKey).
			SetContentType(contentType).
			SetFileSize(fileSize).
			Save(ctx)
		if err != nil {
			return err
		}
		if _, err := tx.ImportBatch.Update().
			Where(entbatch.ID(batchID)).
			AddTotalFiles(1).
			Save(ctx); err != nil {
			return err
		}
		created = row
		return nil
	})
	if err != nil {
		r.logger.Error("failed to append import item", "batch_id", batchID, "filename", filename, "error", err)
		return nil, err
	}
	return utils.ToItem(created), nil
}

func (r *batchRepo) ListItems(ctx context.Context, batchID uuid.UUID) ([]*entity.ImportItem, error) {
	rows, err := r.ent.ImportItem.Query().
		Where(entitem.BatchID(batchID)).
		Order(entitem.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list import items", "batch_id", batchID, "error", err)
		return nil, err
	}
	return toItems(rows), nil
}

func (r *batchRepo) QueuedItems(ctx context.Context, batchID uuid.UUID) ([]*entity.ImportItem, error) {
	rows, err := r.ent.ImportItem.Query().
		Where(
			entitem.BatchID(batchID),
			entitem.Status(string(constants.ItemStatusQueued)),
		).
		Order(entitem.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list queued items", "batch_id", batchID, "error", err)
		return nil, err
	}
	return toItems(rows), nil
}

func (r *batchRepo) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	n, err := r.ent.ImportBatch.Update().
		Where(
			entbatch.ID(id),
			entbatch.Status(string(constants.BatchStatusPending)),
		).
		SetStatus(string(constants.BatchStatusProcessing)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark batch processing", "batch_id", id, "error", err)
		return err
	}
	if n == 0 {
		return fmt.Errorf("batch %s is not pending: %w", id, common.ErrConflict)
	}
	return nil
}

func (r *batchRepo) MarkItemProcessing(ctx context.Context, itemID uuid.UUID) error {
	n, err := r.ent.ImportItem.Update().
		Where(
			entitem.ID(itemID),
			entitem.Status(string(constants.ItemStatusQueued)),
		).
		SetStatus(string(constants.ItemStatusProcessing)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark item processing", "item_id", itemID, "error", err)
		return err
	}
	if n == 0 {
		return fmt.Errorf("item %s is not queued: %w", itemID, common.ErrConflict)
	}
	return nil
}

func (r *batchRepo) MarkItemSucceeded(ctx context.Context, itemID, candidateID uuid.UUID, extractedJSON json.RawMessage) error {
	upd := r.ent.ImportItem.Update().
		Where(entitem.ID(itemID)).
		SetStatus(string(constants.ItemStatusSucceeded)).
		SetCandidateID(candidateID).
		SetProcessedAt(time.Now())
	if len(extractedJSON) > 0 {
		upd = upd.SetExtractedJSON(extractedJSON)
	}
	if _, err := upd.Save(ctx); err != nil {
		r.logger.Error("failed to mark item succeeded", "item_id", itemID, "error", err)
		return err
	}
	return nil
}

func (r *batchRepo) MarkItemFailed(ctx context.Context, itemID uuid.UUID, message string) error {
	_, err := r.ent.ImportItem.Update().
		Where(entitem.ID(itemID)).
		SetStatus(string(constants.ItemStatusFailed)).
		SetErrorMessage(message).
		SetProcessedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark item failed", "item_id", itemID, "error", err)
		return err
	}
	return nil
}

func (r *batchRepo) RecordItemResult(ctx context.Context, batchID uuid.UUID, succeeded bool) error {
	upd := r.ent.ImportBatch.Update().
		Where(entbatch.ID(batchID)).
		AddProcessedCount(1)
	if succeeded {
		upd = upd.AddSuccessCount(1)
	} else {
		upd = upd.AddFailedCount(1)
	}
	if _, err := upd.Save(ctx); err != nil {
		r.logger.Error("failed to record item result", "batch_id", batchID, "error", err)
		return err
	}
	return nil
}

func (r *batchRepo) Complete(ctx context.Context, id uuid.UUID) error {
	n, err := r.ent.ImportBatch.Update().
		Where(
			entbatch.ID(id),
			entbatch.Status(string(constants.BatchStatusProcessing)),
		).
		SetStatus(string(constants.BatchStatusCompleted)).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to complete batch", "batch_id", id, "error", err)
		return err
	}
	if n == 0 {
		return fmt.Errorf("batch %s is not processing: %w", id, common.ErrConflict)
	}
	return nil
}

func (r *batchRepo) Fail(ctx context.Context, id uuid.UUID) error {
	_, err := r.ent.ImportBatch.Update().
		Where(entbatch.ID(id)).
		SetStatus(string(constants.BatchStatusFailed)).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to fail batch", "batch_id", id, "error", err)
		return err
	}
	return nil
}

func (r *batchRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return WithTx(ctx, r.ent, func(tx *ent.Tx) error {
		row, err := tx.ImportBatch.Get(ctx, id)
		if ent.IsNotFound(err) {
			return fmt.Errorf("import batch %s: %w", id, common.ErrNotFound)
		}
		if err != nil {
			return err
		}
		if row.Status == string(constants.BatchStatusProcessing) {
			return fmt.Errorf("batch %s is processing: %w", id, common.ErrConflict)
		}
		if _, err := tx.ImportItem.Delete().
			Where(entitem.BatchID(id)).
			Exec(ctx); err != nil {
			return err
		}
		return tx.ImportBatch.DeleteOneID(id).Exec(ctx)
	})
}

func toItems(rows []*ent.ImportItem) []*entity.ImportItem {
	out := make([]*entity.ImportItem, len(rows))
	for i, row := range rows {
		out[i] = utils.ToItem(row)
	}
	return out
}
