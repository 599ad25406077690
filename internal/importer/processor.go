package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/talentops/recruit-crm/constants"
	"github.com/talentops/recruit-crm/internal/common"
	"github.com/talentops/recruit-crm/internal/entity"
	"github.com/talentops/recruit-crm/internal/fields"
	"github.com/talentops/recruit-crm/internal/repository"
	"github.com/talentops/recruit-crm/internal/storage"
)

// maxStoredTextChars caps the extracted text persisted per candidate.
const maxStoredTextChars = 10000

// TextExtractor is the slice of the document extractor the processor needs.
type TextExtractor interface {
	Extract(data []byte, mimeType string) (string, error)
}

// UploadFile is one file handed to UploadFiles.
type UploadFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Service owns the import batch lifecycle: creation, uploads, sequential
// processing of queued items, and deletion.
type Service struct {
	batches        repository.ImportBatchRepository
	candidates     repository.CandidateRepository
	pipelines      repository.PipelineRepository
	audit          repository.AuditRepository
	blobs          storage.BlobStore
	text           TextExtractor
	fields         fields.Extractor
	defaultCountry string
	logger         *slog.Logger
}

func NewService(
	batches repository.ImportBatchRepository,
	candidates repository.CandidateRepository,
	pipelines repository.PipelineRepository,
	audit repository.AuditRepository,
	blobs storage.BlobStore,
	text TextExtractor,
	fieldExtractor fields.Extractor,
	defaultCountry string,
	logger *slog.Logger,
) *Service {
	if defaultCountry == "" {
		defaultCountry = "BE"
	}
	return &Service{
		batches:        batches,
		candidates:     candidates,
		pipelines:      pipelines,
		audit:          audit,
		blobs:          blobs,
		text:           text,
		fields:         fieldExtractor,
		defaultCountry: defaultCountry,
		logger:         logger,
	}
}

// CreateBatch starts a PENDING batch on an existing pipeline.
func (s *Service) CreateBatch(ctx context.Context, pipelineID uuid.UUID, createdBy *uuid.UUID, countryCode string) (*entity.ImportBatch, error) {
	ok, err := s.pipelines.Exists(ctx, pipelineID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("pipeline %s: %w", pipelineID, common.ErrNotFound)
	}

	country := strings.ToUpper(strings.TrimSpace(countryCode))
	if country == "" {
		country = s.defaultCountry
	}

	batch, err := s.batches.Create(ctx, pipelineID, createdBy, country)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, constants.AuditBatchCreated, createdBy, map[string]any{
		"batch_id":    batch.ID.String(),
		"pipeline_id": pipelineID.String(),
	})
	return batch, nil
}

// UploadFiles validates and stores files on a PENDING batch. Files failing
// size or MIME validation are reported back, never silently dropped.
func (s *Service) UploadFiles(ctx context.Context, batchID uuid.UUID, files []UploadFile) ([]*entity.ImportItem, []entity.RejectedFile, error) {
	batch, err := s.batches.GetByID(ctx, batchID)
	if err != nil {
		return nil, nil, err
	}
	if batch.Status != string(constants.BatchStatusPending) {
		return nil, nil, fmt.Errorf("batch %s is %s, uploads require PENDING: %w", batchID, batch.Status, common.ErrConflict)
	}

	var (
		accepted []*entity.ImportItem
		rejected []entity.RejectedFile
	)
	for _, f := range files {
		if reason := validateUpload(f); reason != "" {
			rejected = append(rejected, entity.RejectedFile{Filename: f.Filename, Reason: reason})
			s.logger.Warn("upload rejected", "batch_id", batchID, "filename", f.Filename, "reason", reason)
			continue
		}
		contentType := constants.NormalizeMIME(f.ContentType)
		key := fmt.Sprintf("imports/%s/%s", batchID, uuid.New())
		if err := s.blobs.Store(ctx, key, f.Data, contentType); err != nil {
			return accepted, rejected, fmt.Errorf("store %s: %w", f.Filename, err)
		}
		item, err := s.batches.AppendItem(ctx, batchID, f.Filename, key, contentType, len(f.Data))
		if err != nil {
			return accepted, rejected, err
		}
		accepted = append(accepted, item)
	}
	s.logger.Info("files uploaded", "batch_id", batchID, "accepted", len(accepted), "rejected", len(rejected))
	return accepted, rejected, nil
}

func validateUpload(f UploadFile) string {
	if len(f.Data) == 0 {
		return "empty file"
	}
	if len(f.Data) > constants.MaxImportFileSize {
		return fmt.Sprintf("file exceeds %d bytes", constants.MaxImportFileSize)
	}
	if !constants.AllowedImportMIME(f.ContentType) {
		return fmt.Sprintf("unsupported content type %q", f.ContentType)
	}
	return ""
}

// Process walks the batch's queued items sequentially. One bad file marks
// its item FAILED and the loop continues; the batch still completes.
// FAILED is reserved for batch-level errors such as the pipeline having
// disappeared mid-run.
func (s *Service) Process(ctx context.Context, batchID uuid.UUID) (*entity.ImportBatch, error) {
	batch, err := s.batches.GetByID(ctx, batchID)
	if err != nil {
		return nil, err
	}

	items, err := s.batches.QueuedItems(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("batch %s has no queued items: %w", batchID, common.ErrValidation)
	}

	if err := s.batches.MarkProcessing(ctx, batchID); err != nil {
		return nil, err
	}
	s.logger.Info("batch processing started", "batch_id", batchID, "items", len(items))

	// A pipeline without stages is bad data, not a catastrophe: every item
	// fails individually and the batch still completes. Anything else from
	// stage resolution (the pipeline row gone, the database down) fails the
	// whole run.
	stage, stageErr := s.pipelines.DefaultStage(ctx, batch.PipelineID)
	if stageErr != nil && !errors.Is(stageErr, common.ErrValidation) {
		s.failBatch(ctx, batchID, stageErr)
		return nil, stageErr
	}

	for _, item := range items {
		if err := s.batches.MarkItemProcessing(ctx, item.ID); err != nil {
			if errors.Is(err, common.ErrConflict) {
				s.logger.Warn("skipping item no longer queued", "item_id", item.ID)
				continue
			}
			s.failBatch(ctx, batchID, err)
			return nil, err
		}

		var (
			candidateID uuid.UUID
			artifact    json.RawMessage
			itemErr     error
		)
		if stage == nil {
			itemErr = stageErr
		} else {
			candidateID, artifact, itemErr = s.processItem(ctx, batch, item, stage)
		}
		if itemErr != nil {
			s.logger.Warn("import item failed", "item_id", item.ID, "filename", item.Filename, "error", itemErr)
			if err := s.batches.MarkItemFailed(ctx, item.ID, itemErr.Error()); err != nil {
				s.failBatch(ctx, batchID, err)
				return nil, err
			}
			if err := s.batches.RecordItemResult(ctx, batchID, false); err != nil {
				s.failBatch(ctx, batchID, err)
				return nil, err
			}
			continue
		}

		if err := s.batches.MarkItemSucceeded(ctx, item.ID, candidateID, artifact); err != nil {
			s.failBatch(ctx, batchID, err)
			return nil, err
		}
		if err := s.batches.RecordItemResult(ctx, batchID, true); err != nil {
			s.failBatch(ctx, batchID, err)
			return nil, err
		}
	}

	if err := s.batches.Complete(ctx, batchID); err != nil {
		return nil, err
	}

	done, err := s.batches.GetByID(ctx, batchID)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, constants.AuditBatchCompleted, batch.CreatedBy, map[string]any{
		"batch_id":  batchID.String(),
		"processed": done.ProcessedCount,
		"succeeded": done.SuccessCount,
		"failed":    done.FailedCount,
	})
	s.logger.Info("batch completed",
		"batch_id", batchID,
		"processed", done.ProcessedCount,
		"succeeded", done.SuccessCount,
		"failed", done.FailedCount,
	)
	return done, nil
}

// processItem runs extraction and candidate resolution for one item. Returns
// the linked candidate and the extracted-fields artifact persisted on the item.
func (s *Service) processItem(ctx context.Context, batch *entity.ImportBatch, item *entity.ImportItem, stage *entity.Stage) (uuid.UUID, json.RawMessage, error) {
	data, err := s.blobs.Fetch(ctx, item.StorageKey)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("fetch stored file: %w", err)
	}

	text, err := s.text.Extract(data, item.ContentType)
	if err != nil {
		return uuid.Nil, nil, err
	}
	text = truncateUTF8(text, maxStoredTextChars)

	f := s.fields.ExtractFields(text)
	if f.Phone != nil {
		normalized := fields.NormalizePhone(*f.Phone, batch.DefaultCountryCode)
		if normalized == "" {
			f.Phone = nil
		} else {
			f.Phone = &normalized
		}
	}

	artifact, err := json.Marshal(f)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("encode extracted fields: %w", err)
	}
	if err := fields.ValidateJSONAgainstSchema(fields.BuildFieldsJSONSchema(), artifact); err != nil {
		return uuid.Nil, nil, fmt.Errorf("extracted fields rejected: %w", err)
	}

	// Matching email in the same pipeline means enrichment, not a new person.
	if f.Email != nil {
		existing, err := s.candidates.FindActiveByEmail(ctx, batch.PipelineID, *f.Email)
		if err != nil {
			return uuid.Nil, nil, err
		}
		if existing != nil {
			if err := s.candidates.UpdateParseResult(ctx, existing.ID, text, f.Confidence); err != nil {
				return uuid.Nil, nil, err
			}
			s.logger.Info("item enriched existing candidate", "item_id", item.ID, "candidate_id", existing.ID)
			return existing.ID, artifact, nil
		}
	}

	name := nameOrFilename(f.FullName, item.Filename)
	created, err := s.candidates.CreateFromImport(ctx, repository.CreateCandidateRequest{
		PipelineID:        batch.PipelineID,
		StageID:           stage.ID,
		FullName:          name,
		Email:             f.Email,
		Phone:             f.Phone,
		Source:            constants.SourceImport,
		ExtractedText:     &text,
		ParsingConfidence: f.Confidence,
		CreatedBy:         batch.CreatedBy,
	})
	if err != nil {
		return uuid.Nil, nil, err
	}
	return created.ID, artifact, nil
}

// truncateUTF8 caps s at max bytes without splitting a rune, so the stored
// text stays valid UTF-8.
func truncateUTF8(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// nameOrFilename falls back to a cleaned-up filename when no name could be
// extracted, so the candidate is at least findable.
func nameOrFilename(extracted *string, filename string) string {
	if extracted != nil {
		return *extracted
	}
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = strings.NewReplacer("_", " ", "-", " ", ".", " ").Replace(base)
	base = strings.Join(strings.Fields(base), " ")
	if base == "" {
		return "Unknown Candidate"
	}
	return base
}

// GetBatch returns the batch with its items, for progress polling.
func (s *Service) GetBatch(ctx context.Context, batchID uuid.UUID) (*entity.ImportBatch, []*entity.ImportItem, error) {
	batch, err := s.batches.GetByID(ctx, batchID)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.batches.ListItems(ctx, batchID)
	if err != nil {
		return nil, nil, err
	}
	return batch, items, nil
}

// DeleteBatch removes the batch and its items; candidates created from them
// are untouched. Refused while the batch is PROCESSING.
func (s *Service) DeleteBatch(ctx context.Context, batchID uuid.UUID) error {
	return s.batches.Delete(ctx, batchID)
}

func (s *Service) failBatch(ctx context.Context, batchID uuid.UUID, cause error) {
	s.logger.Error("batch failed", "batch_id", batchID, "error", cause)
	if err := s.batches.Fail(ctx, batchID); err != nil {
		s.logger.Error("failed to mark batch failed", "batch_id", batchID, "error", err)
	}
}
