package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/talentops/recruit-crm/gen/ent"
	entcandtag "github.com/talentops/recruit-crm/gen/ent/candidatetag"
	enttag "github.com/talentops/recruit-crm/gen/ent/tag"
)

// TagRepository manages tags and the candidate/tag join rows.
type TagRepository interface {
	// EnsureTag returns the id of the tag named name, creating it if missing.
	EnsureTag(ctx context.Context, name string) (uuid.UUID, error)
	// Attach links a tag to a candidate; attaching twice is a no-op.
	Attach(ctx context.Context, candidateID, tagID uuid.UUID) error
	TagNames(ctx context.Context, candidateID uuid.UUID) ([]string, error)
}

type tagRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewTagRepository(entc *ent.Client, logger *slog.Logger) TagRepository {
	return &tagRepo{ent: entc, logger: logger}
}

func (r *tagRepo) EnsureTag(ctx context.Context, name string) (uuid.UUID, error) {
	row, err := r.ent.Tag.Query().Where(enttag.Name(name)).Only(ctx)
	if err == nil {
		return row.ID, nil
	}
	if !ent.IsNotFound(err) {
		return uuid.Nil, err
	}
	created, err := r.ent.Tag.Create().SetName(name).Save(ctx)
	if err != nil {
		r.logger.Error("failed to create tag", "name", name, "error", err)
		return uuid.Nil, err
	}
	return created.ID, nil
}

func (r *tagRepo) Attach(ctx context.Context, candidateID, tagID uuid.UUID) error {
	exists, err := r.ent.CandidateTag.Query().
		Where(
			entcandtag.CandidateID(candidateID),
			entcandtag.TagID(tagID),
		).
		Exist(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	_, err = r.ent.CandidateTag.Create().
		SetCandidateID(candidateID).
		SetTagID(tagID).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to attach tag", "candidate_id", candidateID, "tag_id", tagID, "error", err)
	}
	return err
}

func (r *tagRepo) TagNames(ctx context.Context, candidateID uuid.UUID) ([]string, error) {
	joins, err := r.ent.CandidateTag.Query().
		Where(entcandtag.CandidateID(candidateID)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	if len(joins) == 0 {
		return nil, nil
	}
	ids := make([]uuid.UUID, len(joins))
	for i, j := range joins {
		ids[i] = j.TagID
	}
	rows, err := r.ent.Tag.Query().
		Where(enttag.IDIn(ids...)).
		Order(enttag.ByName()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(rows))
	for i, row := range rows {
		names[i] = row.Name
	}
	return names, nil
}
