package server

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	v1 "github.com/talentops/recruit-crm/gen/proto/recruit/v1"
	"github.com/talentops/recruit-crm/internal/async"
	"github.com/talentops/recruit-crm/internal/common"
	"github.com/talentops/recruit-crm/internal/importer"
	"github.com/talentops/recruit-crm/internal/utils"
)

type ImportService struct {
	v1.UnimplementedImportServiceServer
	svc    *importer.Service
	queue  async.Queue // nil means synchronous processing
	logger *slog.Logger
}

func NewImportService(svc *importer.Service, queue async.Queue, logger *slog.Logger) *ImportService {
	return &ImportService{svc: svc, queue: queue, logger: logger}
}

// CreateBatch implements v1.ImportServiceServer
func (s *ImportService) CreateBatch(ctx context.Context, req *v1.CreateBatchRequest) (*v1.CreateBatchResponse, error) {
	pipelineID, err := parseUUIDField(req.GetPipelineId(), "pipeline_id")
	if err != nil {
		return nil, err
	}
	createdBy, err := parseOptionalUUID(req.GetCreatedBy(), "created_by")
	if err != nil {
		return nil, err
	}

	batch, err := s.svc.CreateBatch(ctx, pipelineID, createdBy, req.GetDefaultCountryCode())
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return &v1.CreateBatchResponse{Batch: utils.BatchToProto(batch)}, nil
}

// UploadFiles implements v1.ImportServiceServer
func (s *ImportService) UploadFiles(ctx context.Context, req *v1.UploadFilesRequest) (*v1.UploadFilesResponse, error) {
	batchID, err := parseUUIDField(req.GetBatchId(), "batch_id")
	if err != nil {
		return nil, err
	}
	if len(req.GetFiles()) == 0 {
		return nil, common.InvalidArgumentError("at least one file is required")
	}

	files := make([]importer.UploadFile, len(req.GetFiles()))
	for i, f := range req.GetFiles() {
		if strings.TrimSpace(f.GetFilename()) == "" {
			return nil, common.InvalidArgumentError("filename is required for every file")
		}
		files[i] = importer.UploadFile{
			Filename:    f.GetFilename(),
			ContentType: f.GetContentType(),
			Data:        f.GetData(),
		}
	}

	accepted, rejected, err := s.svc.UploadFiles(ctx, batchID, files)
	if err != nil {
		return nil, common.ToStatusError(err)
	}

	resp := &v1.UploadFilesResponse{}
	for _, item := range accepted {
		resp.Accepted = append(resp.Accepted, utils.ItemToProto(item))
	}
	for _, r := range rejected {
		resp.Rejected = append(resp.Rejected, &v1.RejectedFile{Filename: r.Filename, Reason: r.Reason})
	}
	return resp, nil
}

// ProcessBatch implements v1.ImportServiceServer
func (s *ImportService) ProcessBatch(ctx context.Context, req *v1.ProcessBatchRequest) (*v1.ProcessBatchResponse, error) {
	batchID, err := parseUUIDField(req.GetBatchId(), "batch_id")
	if err != nil {
		return nil, err
	}

	if s.queue != nil {
		if err := s.queue.Enqueue(ctx, async.Job{BatchID: batchID, SubmittedAt: time.Now()}); err != nil {
			return nil, common.ToStatusError(err)
		}
		batch, _, err := s.svc.GetBatch(ctx, batchID)
		if err != nil {
			return nil, common.ToStatusError(err)
		}
		return &v1.ProcessBatchResponse{Batch: utils.BatchToProto(batch), Queued: true}, nil
	}

	s.logger.Info("processing batch synchronously", "batch_id", batchID)
	batch, err := s.svc.Process(ctx, batchID)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return &v1.ProcessBatchResponse{Batch: utils.BatchToProto(batch)}, nil
}

// GetBatch implements v1.ImportServiceServer
func (s *ImportService) GetBatch(ctx context.Context, req *v1.GetBatchRequest) (*v1.GetBatchResponse, error) {
	batchID, err := parseUUIDField(req.GetBatchId(), "batch_id")
	if err != nil {
		return nil, err
	}

	batch, items, err := s.svc.GetBatch(ctx, batchID)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	resp := &v1.GetBatchResponse{Batch: utils.BatchToProto(batch)}
	for _, item := range items {
		resp.Items = append(resp.Items, utils.ItemToProto(item))
	}
	return resp, nil
}

// DeleteBatch implements v1.ImportServiceServer
func (s *ImportService) DeleteBatch(ctx context.Context, req *v1.DeleteBatchRequest) (*v1.DeleteBatchResponse, error) {
	batchID, err := parseUUIDField(req.GetBatchId(), "batch_id")
	if err != nil {
		return nil, err
	}
	if err := s.svc.DeleteBatch(ctx, batchID); err != nil {
		return nil, common.ToStatusError(err)
	}
	s.logger.Info("batch deleted", "batch_id", batchID)
	return &v1.DeleteBatchResponse{}, nil
}

func parseUUIDField(raw, field string) (uuid.UUID, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return uuid.Nil, common.InvalidArgumentErrorf("%s is required", field)
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentErrorf("%s must be a UUID", field)
	}
	return id, nil
}

func parseOptionalUUID(raw, field string) (*uuid.UUID, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return nil, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil, common.InvalidArgumentErrorf("%s must be a UUID", field)
	}
	return &id, nil
}
