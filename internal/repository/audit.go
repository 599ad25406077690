package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/talentops/recruit-crm/gen/ent"
)

// AuditRepository appends immutable audit rows. Failures are logged and
// swallowed; audit must never fail the operation it describes.
type AuditRepository interface {
	Record(ctx context.Context, action string, actorID *uuid.UUID, metadata map[string]any)
}

type auditRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewAuditRepository(entc *ent.Client, logger *slog.Logger) AuditRepository {
	return &auditRepo{ent: entc, logger: logger}
}

func (r *auditRepo) Record(ctx context.Context, action string, actorID *uuid.UUID, metadata map[string]any) {
	_, err := r.ent.AuditLog.Create().
		SetAction(action).
		SetNillableActorID(actorID).
		SetMetadata(metadata).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to record audit entry", "action", action, "error", err)
	}
}
