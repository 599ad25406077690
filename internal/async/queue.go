package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is one batch-processing request. Extend as needed later (retry, trace).
type Job struct {
	BatchID     uuid.UUID
	SubmittedAt time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
