package server

import (
	"context"
	"fmt"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	v1 "github.com/talentops/recruit-crm/gen/proto/recruit/v1"
	"github.com/talentops/recruit-crm/internal/common"
	"github.com/talentops/recruit-crm/internal/dedup"
	"github.com/talentops/recruit-crm/internal/export"
	"github.com/talentops/recruit-crm/internal/merge"
	"github.com/talentops/recruit-crm/internal/repository"
	"github.com/talentops/recruit-crm/internal/utils"
)

const maxNoteLength = 10000

type CandidateService struct {
	v1.UnimplementedCandidateServiceServer
	candidates repository.CandidateRepository
	detector   *dedup.Detector
	merger     *merge.Engine
	exporter   *export.Service
	logger     *slog.Logger
}

func NewCandidateService(
	candidates repository.CandidateRepository,
	detector *dedup.Detector,
	merger *merge.Engine,
	exporter *export.Service,
	logger *slog.Logger,
) *CandidateService {
	return &CandidateService{
		candidates: candidates,
		detector:   detector,
		merger:     merger,
		exporter:   exporter,
		logger:     logger,
	}
}

// GetCandidate implements v1.CandidateServiceServer
func (s *CandidateService) GetCandidate(ctx context.Context, req *v1.GetCandidateRequest) (*v1.GetCandidateResponse, error) {
	id, err := parseUUIDField(req.GetId(), "id")
	if err != nil {
		return nil, err
	}
	c, err := s.candidates.GetByID(ctx, id)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return &v1.GetCandidateResponse{Candidate: utils.CandidateToProto(c)}, nil
}

// ListCandidates implements v1.CandidateServiceServer
func (s *CandidateService) ListCandidates(ctx context.Context, req *v1.ListCandidatesRequest) (*v1.ListCandidatesResponse, error) {
	pipelineID, err := parseOptionalUUID(req.GetPipelineId(), "pipeline_id")
	if err != nil {
		return nil, err
	}
	list, err := s.candidates.ListActive(ctx, pipelineID)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	resp := &v1.ListCandidatesResponse{}
	for _, c := range list {
		resp.Candidates = append(resp.Candidates, utils.CandidateToProto(c))
	}
	return resp, nil
}

// AddNote implements v1.CandidateServiceServer
func (s *CandidateService) AddNote(ctx context.Context, req *v1.AddNoteRequest) (*v1.AddNoteResponse, error) {
	candidateID, err := parseUUIDField(req.GetCandidateId(), "candidate_id")
	if err != nil {
		return nil, err
	}
	body := strings.TrimSpace(req.GetBody())
	validator := common.NewValidator()
	validator.Field("body", body, common.Required)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, err
	}
	if err := common.MaxLength("body", body, maxNoteLength); err != nil {
		return nil, common.InvalidArgumentError(err.Error())
	}
	createdBy, err := parseOptionalUUID(req.GetCreatedBy(), "created_by")
	if err != nil {
		return nil, err
	}

	if _, err := s.candidates.GetByID(ctx, candidateID); err != nil {
		return nil, common.ToStatusError(err)
	}
	noteID, err := s.candidates.AddNote(ctx, candidateID, body, createdBy)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return &v1.AddNoteResponse{NoteId: noteID.String()}, nil
}

// FindDuplicates implements v1.CandidateServiceServer
func (s *CandidateService) FindDuplicates(ctx context.Context, req *v1.FindDuplicatesRequest) (*v1.FindDuplicatesResponse, error) {
	pipelineID, err := parseOptionalUUID(req.GetPipelineId(), "pipeline_id")
	if err != nil {
		return nil, err
	}

	report, err := s.detector.FindDuplicates(ctx, pipelineID)
	if err != nil {
		return nil, common.ToStatusError(err)
	}

	resp := &v1.FindDuplicatesResponse{
		GroupCount:         int32(report.GroupCount),
		CandidatesInvolved: int32(report.CandidatesInvolved),
	}
	for _, g := range report.Groups {
		pg := &v1.DuplicateGroup{
			Type:  string(g.Type),
			Value: g.Value,
		}
		for _, c := range g.Candidates {
			pg.Candidates = append(pg.Candidates, utils.CandidateToProto(c))
		}
		resp.Groups = append(resp.Groups, pg)
	}
	return resp, nil
}

// MergeCandidates implements v1.CandidateServiceServer
func (s *CandidateService) MergeCandidates(ctx context.Context, req *v1.MergeCandidatesRequest) (*v1.MergeCandidatesResponse, error) {
	targetID, err := parseUUIDField(req.GetTargetId(), "target_id")
	if err != nil {
		return nil, err
	}
	if len(req.GetSourceIds()) == 0 {
		return nil, common.InvalidArgumentError("source_ids is required")
	}
	sourceIDs := make([]uuid.UUID, len(req.GetSourceIds()))
	for i, raw := range req.GetSourceIds() {
		id, err := parseUUIDField(raw, "source_ids")
		if err != nil {
			return nil, err
		}
		sourceIDs[i] = id
	}
	mergedBy, err := parseOptionalUUID(req.GetMergedBy(), "merged_by")
	if err != nil {
		return nil, err
	}

	target, err := s.merger.Merge(ctx, targetID, sourceIDs, mergedBy)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return &v1.MergeCandidatesResponse{Target: utils.CandidateToProto(target)}, nil
}

// ExportCandidates implements v1.CandidateServiceServer
func (s *CandidateService) ExportCandidates(ctx context.Context, req *v1.ExportCandidatesRequest) (*v1.ExportCandidatesResponse, error) {
	pipelineID, err := parseOptionalUUID(req.GetPipelineId(), "pipeline_id")
	if err != nil {
		return nil, err
	}
	data, err := s.exporter.ExportCandidatesXLSX(ctx, pipelineID)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return &v1.ExportCandidatesResponse{
		Xlsx:     data,
		Filename: fmt.Sprintf("candidates-%s.xlsx", time.Now().UTC().Format("20060102-150405")),
	}, nil
}
