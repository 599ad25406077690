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
	"github.com/talentops/recruit-crm/gen/ent/stagehistory"
)

// StageHistory is the model entity for the StageHistory schema.
type StageHistory struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CandidateID holds the value of the "candidate_id" field.
	CandidateID uuid.UUID `json:"candidate_id,omitempty"`
	// FromStageID holds the value of the "from_stage_id" field.
	FromStageID *uuid.UUID `json:"from_stage_id,omitempty"`
	// ToStageID holds the value of the "to_stage_id" field.
	ToStageID uuid.UUID `json:"to_stage_id,omitempty"`
	// MovedBy holds the value of the "moved_by" field.
	MovedBy *uuid.UUID `json:"moved_by,omitempty"`
	// MovedAt holds the value of the "moved_at" field.
	MovedAt time.Time `json:"moved_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StageHistoryQuery when eager-loading is set.
	Edges        StageHistoryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StageHistoryEdges holds the relations/edges for other nodes in the graph.
type StageHistoryEdges struct {
	// Candidate holds the value of the candidate edge.
	Candidate *Candidate `json:"candidate,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CandidateOrErr returns the Candidate value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StageHistoryEdges) CandidateOrErr() (*Candidate, error) {
	if e.Candidate != nil {
		return e.Candidate, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: candidate.Label}
	}
	return nil, &NotLoadedError{edge: "candidate"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StageHistory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stagehistory.FieldFromStageID, stagehistory.FieldMovedBy:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case stagehistory.FieldMovedAt:
			values[i] = new(sql.NullTime)
		case stagehistory.FieldID, stagehistory.FieldCandidateID, stagehistory.FieldToStageID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StageHistory fields.
func (_m *StageHistory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stagehistory.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case stagehistory.FieldCandidateID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field candidate_id", values[i])
			} else if value != nil {
				_m.CandidateID = *value
			}
		case stagehistory.FieldFromStageID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field from_stage_id", values[i])
			} else if value.Valid {
				_m.FromStageID = new(uuid.UUID)
				*_m.FromStageID = *value.S.(*uuid.UUID)
			}
		case stagehistory.FieldToStageID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field to_stage_id", values[i])
			} else if value != nil {
				_m.ToStageID = *value
			}
		case stagehistory.FieldMovedBy:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field moved_by", values[i])
			} else if value.Valid {
				_m.MovedBy = new(uuid.UUID)
				*_m.MovedBy = *value.S.(*uuid.UUID)
			}
		case stagehistory.FieldMovedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field moved_at", values[i])
			} else if value.Valid {
				_m.MovedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StageHistory.
// This includes values selected through modifiers, order, etc.
func (_m *StageHistory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCandidate queries the "candidate" edge of the StageHistory entity.
func (_m *StageHistory) QueryCandidate() *CandidateQuery {
	return NewStageHistoryClient(_m.config).QueryCandidate(_m)
}

// Update returns a builder for updating this StageHistory.
// Note that you need to call StageHistory.Unwrap() before calling this method if this StageHistory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StageHistory) Update() *StageHistoryUpdateOne {
	return NewStageHistoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StageHistory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StageHistory) Unwrap() *StageHistory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StageHistory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StageHistory) String() string {
	var builder strings.Builder
	builder.WriteString("StageHistory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("candidate_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CandidateID))
	builder.WriteString(", ")
	if v := _m.FromStageID; v != nil {
		builder.WriteString("from_stage_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("to_stage_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToStageID))
	builder.WriteString(", ")
	if v := _m.MovedBy; v != nil {
		builder.WriteString("moved_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("moved_at=")
	builder.WriteString(_m.MovedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StageHistories is a parsable slice of StageHistory.
type StageHistories []*StageHistory
