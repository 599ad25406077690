package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ImportBatch represents one upload session.
type ImportBatch struct {
	ID                 uuid.UUID  `json:"id"`
	PipelineID         uuid.UUID  `json:"pipeline_id"`
	CreatedBy          *uuid.UUID `json:"created_by,omitempty"`
	Status             string     `json:"status"`
	TotalFiles         int        `json:"total_files"`
	ProcessedCount     int        `json:"processed_count"`
	SuccessCount       int        `json:"success_count"`
	FailedCount        int        `json:"failed_count"`
	DefaultCountryCode string     `json:"default_country_code"`
	CreatedAt          time.Time  `json:"created_at"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
}

// ImportItem is one uploaded file within a batch.
type ImportItem struct {
	ID            uuid.UUID       `json:"id"`
	BatchID       uuid.UUID       `json:"batch_id"`
	CandidateID   *uuid.UUID      `json:"candidate_id,omitempty"`
	Filename      string          `json:"filename"`
	StorageKey    string          `json:"storage_key"`
	ContentType   string          `json:"content_type"`
	FileSize      int             `json:"file_size"`
	Status        string          `json:"status"`
	ErrorMessage  *string         `json:"error_message,omitempty"`
	ExtractedJSON json.RawMessage `json:"extracted_json,omitempty"`
	ProcessedAt   *time.Time      `json:"processed_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// RejectedFile reports one upload that failed pre-validation (size or MIME)
// and was never queued. Callers surface these to the user.
type RejectedFile struct {
	Filename string `json:"filename"`
	Reason   string `json:"reason"`
}
