// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/talentops/recruit-crm/gen/ent/importbatch"
	"github.com/talentops/recruit-crm/gen/ent/pipeline"
)

// ImportBatch is the model entity for the ImportBatch schema.
type ImportBatch struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// PipelineID holds the value of the "pipeline_id" field.
	PipelineID uuid.UUID `json:"pipeline_id,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy *uuid.UUID `json:"created_by,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// TotalFiles holds the value of the "total_files" field.
	TotalFiles int `json:"total_files,omitempty"`
	// ProcessedCount holds the value of the "processed_count" field.
	ProcessedCount int `json:"processed_count,omitempty"`
	// SuccessCount holds the value of the "success_count" field.
	SuccessCount int `json:"success_count,omitempty"`
	// FailedCount holds the value of the "failed_count" field.
	FailedCount int `json:"failed_count,omitempty"`
	// DefaultCountryCode holds the value of the "default_country_code" field.
	DefaultCountryCode string `json:"default_country_code,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ImportBatchQuery when eager-loading is set.
	Edges        ImportBatchEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ImportBatchEdges holds the relations/edges for other nodes in the graph.
type ImportBatchEdges struct {
	// Pipeline holds the value of the pipeline edge.
	Pipeline *Pipeline `json:"pipeline,omitempty"`
	// Items holds the value of the items edge.
	Items []*ImportItem `json:"items,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PipelineOrErr returns the Pipeline value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ImportBatchEdges) PipelineOrErr() (*Pipeline, error) {
	if e.Pipeline != nil {
		return e.Pipeline, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: pipeline.Label}
	}
	return nil, &NotLoadedError{edge: "pipeline"}
}

// ItemsOrErr returns the Items value or an error if the edge
// was not loaded in eager-loading.
func (e ImportBatchEdges) ItemsOrErr() ([]*ImportItem, error) {
	if e.loadedTypes[1] {
		return e.Items, nil
	}
	return nil, &NotLoadedError{edge: "items"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ImportBatch) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case importbatch.FieldCreatedBy:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case importbatch.FieldTotalFiles, importbatch.FieldProcessedCount, importbatch.FieldSuccessCount, importbatch.FieldFailedCount:
			values[i] = new(sql.NullInt64)
		case importbatch.FieldStatus, importbatch.FieldDefaultCountryCode:
			values[i] = new(sql.NullString)
		case importbatch.FieldCreatedAt, importbatch.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case importbatch.FieldID, importbatch.FieldPipelineID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ImportBatch fields.
func (_m *ImportBatch) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case importbatch.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case importbatch.FieldPipelineID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field pipeline_id", values[i])
			} else if value != nil {
				_m.PipelineID = *value
			}
		case importbatch.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = new(uuid.UUID)
				*_m.CreatedBy = *value.S.(*uuid.UUID)
			}
		case importbatch.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case importbatch.FieldTotalFiles:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_files", values[i])
			} else if value.Valid {
				_m.TotalFiles = int(value.Int64)
			}
		case importbatch.FieldProcessedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field processed_count", values[i])
			} else if value.Valid {
				_m.ProcessedCount = int(value.Int64)
			}
		case importbatch.FieldSuccessCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field success_count", values[i])
			} else if value.Valid {
				_m.SuccessCount = int(value.Int64)
			}
		case importbatch.FieldFailedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failed_count", values[i])
			} else if value.Valid {
				_m.FailedCount = int(value.Int64)
			}
		case importbatch.FieldDefaultCountryCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field default_country_code", values[i])
			} else if value.Valid {
				_m.DefaultCountryCode = value.String
			}
		case importbatch.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case importbatch.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ImportBatch.
// This includes values selected through modifiers, order, etc.
func (_m *ImportBatch) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPipeline queries the "pipeline" edge of the ImportBatch entity.
func (_m *ImportBatch) QueryPipeline() *PipelineQuery {
	return NewImportBatchClient(_m.config).QueryPipeline(_m)
}

// QueryItems queries the "items" edge of the ImportBatch entity.
func (_m *ImportBatch) QueryItems() *ImportItemQuery {
	return NewImportBatchClient(_m.config).QueryItems(_m)
}

// Update returns a builder for updating this ImportBatch.
// Note that you need to call ImportBatch.Unwrap() before calling this method if this ImportBatch
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ImportBatch) Update() *ImportBatchUpdateOne {
	return NewImportBatchClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ImportBatch entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ImportBatch) Unwrap() *ImportBatch {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ImportBatch is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ImportBatch) String() string {
	var builder strings.Builder
	builder.WriteString("ImportBatch(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("pipeline_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PipelineID))
	builder.WriteString(", ")
	if v := _m.CreatedBy; v != nil {
		builder.WriteString("created_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("total_files=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalFiles))
	builder.WriteString(", ")
	builder.WriteString("processed_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessedCount))
	builder.WriteString(", ")
	builder.WriteString("success_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SuccessCount))
	builder.WriteString(", ")
	builder.WriteString("failed_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailedCount))
	builder.WriteString(", ")
	builder.WriteString("default_country_code=")
	builder.WriteString(_m.DefaultCountryCode)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ImportBatches is a parsable slice of ImportBatch.
type ImportBatches []*ImportBatch
