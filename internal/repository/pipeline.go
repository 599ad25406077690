package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/talentops/recruit-crm/gen/ent"
	entstage "github.com/talentops/recruit-crm/gen/ent/stage"
	"github.com/talentops/recruit-crm/internal/common"
	"github.com/talentops/recruit-crm/internal/entity"
	"github.com/talentops/recruit-crm/internal/utils"
)

// PipelineRepository is the read (plus minimal create) surface the import
// engine needs from the pipeline/stage subsystem.
type PipelineRepository interface {
	Create(ctx context.Context, name string) (*entity.Pipeline, error)
	List(ctx context.Context) ([]*entity.Pipeline, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	AddStage(ctx context.Context, pipelineID uuid.UUID, name string, orderIndex int, isDefault bool) (*entity.Stage, error)
	StagesOrdered(ctx context.Context, pipelineID uuid.UUID) ([]*entity.Stage, error)
	// DefaultStage resolves the flagged default stage, else the
	// lowest-order stage; errors when the pipeline has no stages.
	DefaultStage(ctx context.Context, pipelineID uuid.UUID) (*entity.Stage, error)
}

type pipelineRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewPipelineRepository(entc *ent.Client, logger *slog.Logger) PipelineRepository {
	return &pipelineRepo{ent: entc, logger: logger}
}

func (r *pipelineRepo) Create(ctx context.Context, name string) (*entity.Pipeline, error) {
	row, err := r.ent.Pipeline.Create().SetName(name).Save(ctx)
	if err != nil {
		r.logger.Error("failed to create pipeline", "name", name, "error", err)
		return nil, err
	}
	return utils.ToPipeline(row), nil
}

func (r *pipelineRepo) List(ctx context.Context) ([]*entity.Pipeline, error) {
	rows, err := r.ent.Pipeline.Query().All(ctx)
	if err != nil {
		r.logger.Error("failed to list pipelines", "error", err)
		return nil, err
	}
	out := make([]*entity.Pipeline, len(rows))
	for i, row := range rows {
		out[i] = utils.ToPipeline(row)
	}
	return out, nil
}

func (r *pipelineRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	_, err := r.ent.Pipeline.Get(ctx, id)
	if ent.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *pipelineRepo) AddStage(ctx context.Context, pipelineID uuid.UUID, name string, orderIndex int, isDefault bool) (*entity.Stage, error) {
	row, err := r.ent.Stage.Create().
		SetPipelineID(pipelineID).
		SetName(name).
		SetOrderIndex(orderIndex).
		SetIsDefault(isDefault).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to add stage", "pipeline_id", pipelineID, "name", name, "error", err)
		return nil, err
	}
	return utils.ToStage(row), nil
}

func (r *pipelineRepo) StagesOrdered(ctx context.Context, pipelineID uuid.UUID) ([]*entity.Stage, error) {
	rows, err := r.ent.Stage.Query().
		Where(entstage.PipelineID(pipelineID)).
		Order(entstage.ByOrderIndex()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list stages", "pipeline_id", pipelineID, "error", err)
		return nil, err
	}
	out := make([]*entity.Stage, len(rows))
	for i, row := range rows {
		out[i] = utils.ToStage(row)
	}
	return out, nil
}

func (r *pipelineRepo) DefaultStage(ctx context.Context, pipelineID uuid.UUID) (*entity.Stage, error) {
	row, err := r.ent.Stage.Query().
		Where(entstage.PipelineID(pipelineID), entstage.IsDefault(true)).
		First(ctx)
	if err == nil {
		return utils.ToStage(row), nil
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}
	row, err = r.ent.Stage.Query().
		Where(entstage.PipelineID(pipelineID)).
		Order(entstage.ByOrderIndex()).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("pipeline %s has no stages: %w", pipelineID, common.ErrValidation)
	}
	if err != nil {
		return nil, err
	}
	return utils.ToStage(row), nil
}
