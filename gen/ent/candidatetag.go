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
	"github.com/talentops/recruit-crm/gen/ent/candidatetag"
	"github.com/talentops/recruit-crm/gen/ent/tag"
)

// CandidateTag is the model entity for the CandidateTag schema.
type CandidateTag struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CandidateID holds the value of the "candidate_id" field.
	CandidateID uuid.UUID `json:"candidate_id,omitempty"`
	// TagID holds the value of the "tag_id" field.
	TagID uuid.UUID `json:"tag_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CandidateTagQuery when eager-loading is set.
	Edges        CandidateTagEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CandidateTagEdges holds the relations/edges for other nodes in the graph.
type CandidateTagEdges struct {
	// Candidate holds the value of the candidate edge.
	Candidate *Candidate `json:"candidate,omitempty"`
	// Tag holds the value of the tag edge.
	Tag *Tag `json:"tag,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// CandidateOrErr returns the Candidate value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CandidateTagEdges) CandidateOrErr() (*Candidate, error) {
	if e.Candidate != nil {
		return e.Candidate, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: candidate.Label}
	}
	return nil, &NotLoadedError{edge: "candidate"}
}

// TagOrErr returns the Tag value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CandidateTagEdges) TagOrErr() (*Tag, error) {
	if e.Tag != nil {
		return e.Tag, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: tag.Label}
	}
	return nil, &NotLoadedError{edge: "tag"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CandidateTag) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case candidatetag.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case candidatetag.FieldID, candidatetag.FieldCandidateID, candidatetag.FieldTagID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CandidateTag fields.
func (_m *CandidateTag) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case candidatetag.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case candidatetag.FieldCandidateID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field candidate_id", values[i])
			} else if value != nil {
				_m.CandidateID = *value
			}
		case candidatetag.FieldTagID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field tag_id", values[i])
			} else if value != nil {
				_m.TagID = *value
			}
		case candidatetag.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CandidateTag.
// This includes values selected through modifiers, order, etc.
func (_m *CandidateTag) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCandidate queries the "candidate" edge of the CandidateTag entity.
func (_m *CandidateTag) QueryCandidate() *CandidateQuery {
	return NewCandidateTagClient(_m.config).QueryCandidate(_m)
}

// QueryTag queries the "tag" edge of the CandidateTag entity.
func (_m *CandidateTag) QueryTag() *TagQuery {
	return NewCandidateTagClient(_m.config).QueryTag(_m)
}

// Update returns a builder for updating this CandidateTag.
// Note that you need to call CandidateTag.Unwrap() before calling this method if this CandidateTag
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CandidateTag) Update() *CandidateTagUpdateOne {
	return NewCandidateTagClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CandidateTag entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CandidateTag) Unwrap() *CandidateTag {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CandidateTag is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CandidateTag) String() string {
	var builder strings.Builder
	builder.WriteString("CandidateTag(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("candidate_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CandidateID))
	builder.WriteString(", ")
	builder.WriteString("tag_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TagID))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CandidateTags is a parsable slice of CandidateTag.
type CandidateTags []*CandidateTag
