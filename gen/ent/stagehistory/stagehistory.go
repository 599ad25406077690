// Code generated by ent, DO NOT EDIT.

package stagehistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the stagehistory type in the database.
	Label = "stage_history"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCandidateID holds the string denoting the candidate_id field in the database.
	FieldCandidateID = "candidate_id"
	// FieldFromStageID holds the string denoting the from_stage_id field in the database.
	FieldFromStageID = "from_stage_id"
	// FieldToStageID holds the string denoting the to_stage_id field in the database.
	FieldToStageID = "to_stage_id"
	// FieldMovedBy holds the string denoting the moved_by field in the database.
	FieldMovedBy = "moved_by"
	// FieldMovedAt holds the string denoting the moved_at field in the database.
	FieldMovedAt = "moved_at"
	// EdgeCandidate holds the string denoting the candidate edge name in mutations.
	EdgeCandidate = "candidate"
	// Table holds the table name of the stagehistory in the database.
	Table = "candidate_stage_history"
	// CandidateTable is the table that holds the candidate relation/edge.
	CandidateTable = "candidate_stage_history"
	// CandidateInverseTable is the table name for the Candidate entity.
	// It exists in this package in order to avoid circular dependency with the "candidate" package.
	CandidateInverseTable = "candidates"
	// CandidateColumn is the table column denoting the candidate relation/edge.
	CandidateColumn = "candidate_id"
)

// Columns holds all SQL columns for stagehistory fields.
var Columns = []string{
	FieldID,
	FieldCandidateID,
	FieldFromStageID,
	FieldToStageID,
	FieldMovedBy,
	FieldMovedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultMovedAt holds the default value on creation for the "moved_at" field.
	DefaultMovedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the StageHistory queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCandidateID orders the results by the candidate_id field.
func ByCandidateID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCandidateID, opts...).ToFunc()
}

// ByFromStageID orders the results by the from_stage_id field.
func ByFromStageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromStageID, opts...).ToFunc()
}

// ByToStageID orders the results by the to_stage_id field.
func ByToStageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToStageID, opts...).ToFunc()
}

// ByMovedBy orders the results by the moved_by field.
func ByMovedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMovedBy, opts...).ToFunc()
}

// ByMovedAt orders the results by the moved_at field.
func ByMovedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMovedAt, opts...).ToFunc()
}

// ByCandidateField orders the results by candidate field.
func ByCandidateField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCandidateStep(), sql.OrderByField(field, opts...))
	}
}
func newCandidateStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CandidateInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CandidateTable, CandidateColumn),
	)
}
