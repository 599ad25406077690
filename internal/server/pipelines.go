package server

import (
	"context"
	"strings"

	"log/slog"

	v1 "github.com/talentops/recruit-crm/gen/proto/recruit/v1"
	"github.com/talentops/recruit-crm/internal/common"
	"github.com/talentops/recruit-crm/internal/repository"
	"github.com/talentops/recruit-crm/internal/utils"
)

const maxPipelineNameLength = 120

type PipelineService struct {
	v1.UnimplementedPipelineServiceServer
	pipelines repository.PipelineRepository
	logger    *slog.Logger
}

func NewPipelineService(pipelines repository.PipelineRepository, logger *slog.Logger) *PipelineService {
	return &PipelineService{pipelines: pipelines, logger: logger}
}

// CreatePipeline implements v1.PipelineServiceServer
func (s *PipelineService) CreatePipeline(ctx context.Context, req *v1.CreatePipelineRequest) (*v1.CreatePipelineResponse, error) {
	name := strings.TrimSpace(req.GetName())
	validator := common.NewValidator()
	validator.Field("name", name, common.Required)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, err
	}
	if err := common.MaxLength("name", name, maxPipelineNameLength); err != nil {
		return nil, common.InvalidArgumentError(err.Error())
	}

	p, err := s.pipelines.Create(ctx, name)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	s.logger.Info("pipeline created", "pipeline_id", p.ID, "name", name)
	return &v1.CreatePipelineResponse{Pipeline: utils.PipelineToProto(p)}, nil
}

// ListPipelines implements v1.PipelineServiceServer
func (s *PipelineService) ListPipelines(ctx context.Context, _ *v1.ListPipelinesRequest) (*v1.ListPipelinesResponse, error) {
	list, err := s.pipelines.List(ctx)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	resp := &v1.ListPipelinesResponse{}
	for _, p := range list {
		resp.Pipelines = append(resp.Pipelines, utils.PipelineToProto(p))
	}
	return resp, nil
}

// AddStage implements v1.PipelineServiceServer
func (s *PipelineService) AddStage(ctx context.Context, req *v1.AddStageRequest) (*v1.AddStageResponse, error) {
	pipelineID, err := parseUUIDField(req.GetPipelineId(), "pipeline_id")
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, common.InvalidArgumentError("name is required")
	}
	if req.GetOrderIndex() < 0 {
		return nil, common.InvalidArgumentError("order_index must not be negative")
	}

	ok, err := s.pipelines.Exists(ctx, pipelineID)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	if !ok {
		return nil, common.NotFoundError("pipeline not found")
	}

	stage, err := s.pipelines.AddStage(ctx, pipelineID, name, int(req.GetOrderIndex()), req.GetIsDefault())
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return &v1.AddStageResponse{Stage: utils.StageToProto(stage)}, nil
}

// ListStages implements v1.PipelineServiceServer
func (s *PipelineService) ListStages(ctx context.Context, req *v1.ListStagesRequest) (*v1.ListStagesResponse, error) {
	pipelineID, err := parseUUIDField(req.GetPipelineId(), "pipeline_id")
	if err != nil {
		return nil, err
	}
	stages, err := s.pipelines.StagesOrdered(ctx, pipelineID)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	resp := &v1.ListStagesResponse{}
	for _, st := range stages {
		resp.Stages = append(resp.Stages, utils.StageToProto(st))
	}
	return resp, nil
}
