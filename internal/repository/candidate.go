package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/talentops/recruit-crm/gen/ent"
	entcandidate "github.com/talentops/recruit-crm/gen/ent/candidate"
	"github.com/talentops/recruit-crm/internal/common"
	"github.com/talentops/recruit-crm/internal/entity"
	"github.com/talentops/recruit-crm/internal/utils"
)

// CreateCandidateRequest wraps parameters for creating a candidate from an
// import item (or manual entry).
type CreateCandidateRequest struct {
	PipelineID        uuid.UUID
	StageID           uuid.UUID
	FullName          string
	Email             *string
	Phone             *string
	Source            string
	ExtractedText     *string
	ParsingConfidence int
	CreatedBy         *uuid.UUID
}

type CandidateRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Candidate, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Candidate, error)
	// FindActiveByEmail matches case-insensitively within one pipeline,
	// excluding soft-deleted and merged candidates. Returns (nil, nil)
	// when there is no match.
	FindActiveByEmail(ctx context.Context, pipelineID uuid.UUID, email string) (*entity.Candidate, error)
	// CreateFromImport creates the candidate together with its initial
	// stage-history entry (no "from" stage) in one transaction.
	CreateFromImport(ctx context.Context, req CreateCandidateRequest) (*entity.Candidate, error)
	// UpdateParseResult enriches an existing candidate with a fresh parse.
	UpdateParseResult(ctx context.Context, id uuid.UUID, extractedText string, confidence int) error
	// ListActive returns active candidates (no tombstones, no soft
	// deletes), oldest-created-first; pipelineID nil means all pipelines.
	ListActive(ctx context.Context, pipelineID *uuid.UUID) ([]*entity.Candidate, error)
	AddNote(ctx context.Context, candidateID uuid.UUID, body string, createdBy *uuid.UUID) (uuid.UUID, error)
}

type candidateRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewCandidateRepository(entc *ent.Client, logger *slog.Logger) CandidateRepository {
	return &candidateRepo{ent: entc, logger: logger}
}

func (r *candidateRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Candidate, error) {
	row, err := r.ent.Candidate.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("candidate %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return utils.ToCandidate(row), nil
}

func (r *candidateRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Candidate, error) {
	rows, err := r.ent.Candidate.Query().
		Where(entcandidate.IDIn(ids...)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to load candidates", "count", len(ids), "error", err)
		return nil, err
	}
	out := make([]*entity.Candidate, len(rows))
	for i, row := range rows {
		out[i] = utils.ToCandidate(row)
	}
	return out, nil
}

func (r *candidateRepo) FindActiveByEmail(ctx context.Context, pipelineID uuid.UUID, email string) (*entity.Candidate, error) {
	row, err := r.ent.Candidate.Query().
		Where(
			entcandidate.PipelineID(pipelineID),
			entcandidate.EmailEqualFold(email),
			entcandidate.DeletedAtIsNil(),
			entcandidate.MergedIntoIDIsNil(),
		).
		Order(entcandidate.ByCreatedAt()).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("candidate email lookup failed", "pipeline_id", pipelineID, "error", err)
		return nil, err
	}
	return utils.ToCandidate(row), nil
}

func (r *candidateRepo) CreateFromImport(ctx context.Context, req CreateCandidateRequest) (*entity.Candidate, error) {
	var created *ent.Candidate
	err := WithTx(ctx, r.ent, func(tx *ent.Tx) error {
		row, err := tx.Candidate.Create().
			SetPipelineID(req.PipelineID).
			SetStageID(req.StageID).
			SetFullName(req.FullName).
			SetNillableEmail(req.Email).
			SetNillablePhone(req.Phone).
			SetSource(req.Source).
			SetNillableExtractedText(req.ExtractedText).
			SetParsingConfidence(req.ParsingConfidence).
			Save(ctx)
		if err != nil {
			return err
		}
		// initial placement: history row with no "from" stage
		if _, err := tx.StageHistory.Create().
			SetCandidateID(row.ID).
			SetToStageID(req.StageID).
			SetNillableMovedBy(req.CreatedBy).
			Save(ctx); err != nil {
			return err
		}
		created = row
		return nil
	})
	if err != nil {
		r.logger.Error("failed to create candidate", "pipeline_id", req.PipelineID, "error", err)
		return nil, err
	}
	r.logger.Info("candidate created", "candidate_id", created.ID, "pipeline_id", req.PipelineID, "source", req.Source)
	return utils.ToCandidate(created), nil
}

func (r *candidateRepo) UpdateParseResult(ctx context.Context, id uuid.UUID, extractedText string, confidence int) error {
	_, err := r.ent.Candidate.UpdateOneID(id).
		SetExtractedText(extractedText).
		SetParsingConfidence(confidence).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to update parse result", "candidate_id", id, "error", err)
		return err
	}
	return nil
}

func (r *candidateRepo) ListActive(ctx context.Context, pipelineID *uuid.UUID) ([]*entity.Candidate, error) {
	q := r.ent.Candidate.Query().
		Where(
			entcandidate.DeletedAtIsNil(),
			entcandidate.MergedIntoIDIsNil(),
		)
	if pipelineID != nil {
		q = q.Where(entcandidate.PipelineID(*pipelineID))
	}
	rows, err := q.Order(entcandidate.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list candidates", "error", err)
		return nil, err
	}
	out := make([]*entity.Candidate, len(rows))
	for i, row := range rows {
		out[i] = utils.ToCandidate(row)
	}
	return out, nil
}

func (r *candidateRepo) AddNote(ctx context.Context, candidateID uuid.UUID, body string, createdBy *uuid.UUID) (uuid.UUID, error) {
	row, err := r.ent.Note.Create().
		SetCandidateID(candidateID).
		SetBody(body).
		SetNillableCreatedBy(createdBy).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to add note", "candidate_id", candidateID, "error", err)
		return uuid.Nil, err
	}
	return row.ID, nil
}
