package entity

import (
	"time"

	"github.com/google/uuid"
)

// Candidate represents a person in a pipeline for data transfer between layers.
// A non-nil MergedIntoID marks a tombstone: the row persists for history but
// is excluded from every active listing, search and duplicate scan.
type Candidate struct {
	ID                uuid.UUID  `json:"id"`
	PipelineID        uuid.UUID  `json:"pipeline_id"`
	StageID           uuid.UUID  `json:"stage_id"`
	FullName          string     `json:"full_name"`
	Email             *string    `json:"email,omitempty"`
	Phone             *string    `json:"phone,omitempty"`
	Source            string     `json:"source"`
	ExtractedText     *string    `json:"extracted_text,omitempty"`
	ParsingConfidence int        `json:"parsing_confidence"`
	IsRejected        bool       `json:"is_rejected"`
	DeletedAt         *time.Time `json:"deleted_at,omitempty"`
	MergedIntoID      *uuid.UUID `json:"merged_into_id,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// MergeLog is an immutable audit record of one (target, source) merge pair.
type MergeLog struct {
	ID        uuid.UUID  `json:"id"`
	TargetID  uuid.UUID  `json:"target_id"`
	SourceID  uuid.UUID  `json:"source_id"`
	MergedBy  *uuid.UUID `json:"merged_by,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
