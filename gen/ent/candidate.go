// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/talentops/recruit-crm/gen/ent/candidate"
	"github.com/talentops/recruit-crm/gen/ent/pipeline"
	"github.com/talentops/recruit-crm/gen/ent/stage"
)

// Candidate is the model entity for the Candidate schema.
type Candidate struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// PipelineID holds the value of the "pipeline_id" field.
	PipelineID uuid.UUID `json:"pipeline_id,omitempty"`
	// StageID holds the value of the "stage_id" field.
	StageID uuid.UUID `json:"stage_id,omitempty"`
	// FullName holds the value of the "full_name" field.
	FullName string `json:"full_name,omitempty"`
	// Email holds the value of the "email" field.
	Email *string `json:"email,omitempty"`
	// Phone holds the value of the "phone" field.
	Phone *string `json:"phone,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// ExtractedText holds the value of the "extracted_text" field.
	ExtractedText *string `json:"extracted_text,omitempty"`
	// ParsingConfidence holds the value of the "parsing_confidence" field.
	ParsingConfidence int `json:"parsing_confidence,omitempty"`
	// IsRejected holds the value of the "is_rejected" field.
	IsRejected bool `json:"is_rejected,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// MergedIntoID holds the value of the "merged_into_id" field.
	MergedIntoID *uuid.UUID `json:"merged_into_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CandidateQuery when eager-loading is set.
	Edges        CandidateEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CandidateEdges holds the relations/edges for other nodes in the graph.
type CandidateEdges struct {
	// Pipeline holds the value of the pipeline edge.
	Pipeline *Pipeline `json:"pipeline,omitempty"`
	// Stage holds the value of the stage edge.
	Stage *Stage `json:"stage,omitempty"`
	// Notes holds the value of the notes edge.
	Notes []*Note `json:"notes,omitempty"`
	// Attachments holds the value of the attachments edge.
	Attachments []*Attachment `json:"attachments,omitempty"`
	// EmailLogs holds the value of the email_logs edge.
	EmailLogs []*EmailLog `json:"email_logs,omitempty"`
	// CandidateTags holds the value of the candidate_tags edge.
	CandidateTags []*CandidateTag `json:"candidate_tags,omitempty"`
	// StageHistory holds the value of the stage_history edge.
	StageHistory []*StageHistory `json:"stage_history,omitempty"`
	// ImportItems holds the value of the import_items edge.
	ImportItems []*ImportItem `json:"import_items,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [8]bool
}

// PipelineOrErr returns the Pipeline value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CandidateEdges) PipelineOrErr() (*Pipeline, error) {
	if e.Pipeline != nil {
		return e.Pipeline, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: pipeline.Label}
	}
	return nil, &NotLoadedError{edge: "pipeline"}
}

// StageOrErr returns the Stage value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CandidateEdges) StageOrErr() (*Stage, error) {
	if e.Stage != nil {
		return e.Stage, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: stage.Label}
	}
	return nil, &NotLoadedError{edge: "stage"}
}

// NotesOrErr returns the Notes value or an error if the edge
// was not loaded in eager-loading.
func (e CandidateEdges) NotesOrErr() ([]*Note, error) {
	if e.loadedTypes[2] {
		return e.Notes, nil
	}
	return nil, &NotLoadedError{edge: "notes"}
}

// AttachmentsOrErr returns the Attachments value or an error if the edge
// was not loaded in eager-loading.
func (e CandidateEdges) AttachmentsOrErr() ([]*Attachment, error) {
	if e.loadedTypes[3] {
		return e.Attachments, nil
	}
	return nil, &NotLoadedError{edge: "attachments"}
}

// EmailLogsOrErr returns the EmailLogs value or an error if the edge
// was not loaded in eager-loading.
func (e CandidateEdges) EmailLogsOrErr() ([]*EmailLog, error) {
	if e.loadedTypes[4] {
		return e.EmailLogs, nil
	}
	return nil, &NotLoadedError{edge: "email_logs"}
}

// CandidateTagsOrErr returns the CandidateTags value or an error if the edge
// was not loaded in eager-loading.
func (e CandidateEdges) CandidateTagsOrErr() ([]*CandidateTag, error) {
	if e.loadedTypes[5] {
		return e.CandidateTags, nil
	}
	return nil, &NotLoadedError{edge: "candidate_tags"}
}

// StageHistoryOrErr returns the StageHistory value or an error if the edge
// was not loaded in eager-loading.
func (e CandidateEdges) StageHistoryOrErr() ([]*StageHistory, error) {
	if e.loadedTypes[6] {
		return e.StageHistory, nil
	}
	return nil, &NotLoadedError{edge: "stage_history"}
}

// ImportItemsOrErr returns the ImportItems value or an error if the edge
// was not loaded in eager-loading.
func (e CandidateEdges) ImportItemsOrErr() ([]*ImportItem, error) {
	if e.loadedTypes[7] {
		return e.ImportItems, nil
	}
	return nil, &NotLoadedError{edge: "import_items"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Candidate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case candidate.FieldMergedIntoID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case candidate.FieldIsRejected:
			values[i] = new(sql.NullBool)
		case candidate.FieldParsingConfidence:
			values[i] = new(sql.NullInt64)
		case candidate.FieldFullName, candidate.FieldEmail, candidate.FieldPhone, candidate.FieldSource, candidate.FieldExtractedText:
			values[i] = new(sql.NullString)
		case candidate.FieldDeletedAt, candidate.FieldCreatedAt, candidate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case candidate.FieldID, candidate.FieldPipelineID, candidate.FieldStageID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Candidate fields.
func (_m *Candidate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case candidate.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case candidate.FieldPipelineID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field pipeline_id", values[i])
			} else if value != nil {
				_m.PipelineID = *value
			}
		case candidate.FieldStageID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field stage_id", values[i])
			} else if value != nil {
				_m.StageID = *value
			}
		case candidate.FieldFullName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_name", values[i])
			} else if value.Valid {
				_m.FullName = value.String
			}
		case candidate.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = new(string)
				*_m.Email = value.String
			}
		case candidate.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = new(string)
				*_m.Phone = value.String
			}
		case candidate.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case candidate.FieldExtractedText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_text", values[i])
			} else if value.Valid {
				_m.ExtractedText = new(string)
				*_m.ExtractedText = value.String
			}
		case candidate.FieldParsingConfidence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field parsing_confidence", values[i])
			} else if value.Valid {
				_m.ParsingConfidence = int(value.Int64)
			}
		case candidate.FieldIsRejected:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_rejected", values[i])
			} else if value.Valid {
				_m.IsRejected = value.Bool
			}
		case candidate.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case candidate.FieldMergedIntoID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field merged_into_id", values[i])
			} else if value.Valid {
				_m.MergedIntoID = new(uuid.UUID)
				*_m.MergedIntoID = *value.S.(*uuid.UUID)
			}
		case candidate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case candidate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Candidate.
// This includes values selected through modifiers, order, etc.
func (_m *Candidate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPipeline queries the "pipeline" edge of the Candidate entity.
func (_m *Candidate) QueryPipeline() *PipelineQuery {
	return NewCandidateClient(_m.config).QueryPipeline(_m)
}

// QueryStage queries the "stage" edge of the Candidate entity.
func (_m *Candidate) QueryStage() *StageQuery {
	return NewCandidateClient(_m.config).QueryStage(_m)
}

// QueryNotes queries the "notes" edge of the Candidate entity.
func (_m *Candidate) QueryNotes() *NoteQuery {
	return NewCandidateClient(_m.config).QueryNotes(_m)
}

// QueryAttachments queries the "attachments" edge of the Candidate entity.
func (_m *Candidate) QueryAttachments() *AttachmentQuery {
	return NewCandidateClient(_m.config).QueryAttachments(_m)
}

// QueryEmailLogs queries the "email_logs" edge of the Candidate entity.
func (_m *Candidate) QueryEmailLogs() *EmailLogQuery {
	return NewCandidateClient(_m.config).QueryEmailLogs(_m)
}

// QueryCandidateTags queries the "candidate_tags" edge of the Candidate entity.
func (_m *Candidate) QueryCandidateTags() *CandidateTagQuery {
	return NewCandidateClient(_m.config).QueryCandidateTags(_m)
}

// QueryStageHistory queries the "stage_history" edge of the Candidate entity.
func (_m *Candidate) QueryStageHistory() *StageHistoryQuery {
	return NewCandidateClient(_m.config).QueryStageHistory(_m)
}

// QueryImportItems queries the "import_items" edge of the Candidate entity.
func (_m *Candidate) QueryImportItems() *ImportItemQuery {
	return NewCandidateClient(_m.config).QueryImportItems(_m)
}

// Update returns a builder for updating this Candidate.
// Note that you need to call Candidate.Unwrap() before calling this method if this Candidate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Candidate) Update() *CandidateUpdateOne {
	return NewCandidateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Candidate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Candidate) Unwrap() *Candidate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Candidate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Candidate) String() string {
	var builder strings.Builder
	builder.WriteString("Candidate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("pipeline_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PipelineID))
	builder.WriteString(", ")
	builder.WriteString("stage_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.StageID))
	builder.WriteString(", ")
	builder.WriteString("full_name=")
	builder.WriteString(_m.FullName)
	builder.WriteString(", ")
	if v := _m.Email; v != nil {
		builder.WriteString("email=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Phone; v != nil {
		builder.WriteString("phone=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	if v := _m.ExtractedText; v != nil {
		builder.WriteString("extracted_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("parsing_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.ParsingConfidence))
	builder.WriteString(", ")
	builder.WriteString("is_rejected=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsRejected))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.MergedIntoID; v != nil {
		builder.WriteString("merged_into_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Candidates is a parsable slice of Candidate.
type Candidates []*Candidate
