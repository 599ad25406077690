// Code generated by ent, DO NOT EDIT.

package stagehistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/talentops/recruit-crm/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldLTE(FieldID, id))
}

// CandidateID applies equality check predicate on the "candidate_id" field. It's identical to CandidateIDEQ.
func CandidateID(v uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldEQ(FieldCandidateID, v))
}

// FromStageID applies equality check predicate on the "from_stage_id" field. It's identical to FromStageIDEQ.
func FromStageID(v uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldEQ(FieldFromStageID, v))
}

// ToStageID applies equality check predicate on the "to_stage_id" field. It's identical to ToStageIDEQ.
func ToStageID(v uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldEQ(FieldToStageID, v))
}

// MovedBy applies equality check predicate on the "moved_by" field. It's identical to MovedByEQ.
func MovedBy(v uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldEQ(FieldMovedBy, v))
}

// MovedAt applies equality check predicate on the "moved_at" field. It's identical to MovedAtEQ.
func MovedAt(v time.Time) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldEQ(FieldMovedAt, v))
}

// CandidateIDEQ applies the EQ predicate on the "candidate_id" field.
func CandidateIDEQ(v uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldEQ(FieldCandidateID, v))
}

// CandidateIDNEQ applies the NEQ predicate on the "candidate_id" field.
func CandidateIDNEQ(v uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldNEQ(FieldCandidateID, v))
}

// CandidateIDIn applies the In predicate on the "candidate_id" field.
func CandidateIDIn(vs ...uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldIn(FieldCandidateID, vs...))
}

// CandidateIDNotIn applies the NotIn predicate on the "candidate_id" field.
func CandidateIDNotIn(vs ...uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldNotIn(FieldCandidateID, vs...))
}

// FromStageIDEQ applies the EQ predicate on the "from_stage_id" field.
func FromStageIDEQ(v uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldEQ(FieldFromStageID, v))
}

// FromStageIDNEQ applies the NEQ predicate on the "from_stage_id" field.
func FromStageIDNEQ(v uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldNEQ(FieldFromStageID, v))
}

// FromStageIDIn applies the In predicate on the "from_stage_id" field.
func FromStageIDIn(vs ...uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldIn(FieldFromStageID, vs...))
}

// FromStageIDNotIn applies the NotIn predicate on the "from_stage_id" field.
func FromStageIDNotIn(vs ...uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldNotIn(FieldFromStageID, vs...))
}

// FromStageIDGT applies the GT predicate on the "from_stage_id" field.
func FromStageIDGT(v uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldGT(FieldFromStageID, v))
}

// FromStageIDGTE applies the GTE predicate on the "from_stage_id" field.
func FromStageIDGTE(v uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldGTE(FieldFromStageID, v))
}

// FromStageIDLT applies the LT predicate on the "from_stage_id" field.
func FromStageIDLT(v uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldLT(FieldFromStageID, v))
}

// FromStageIDLTE applies the LTE predicate on the "from_stage_id" field.
func FromStageIDLTE(v uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldLTE(FieldFromStageID, v))
}

// FromStageIDIsNil applies the IsNil predicate on the "from_stage_id" field.
func FromStageIDIsNil() predicate.StageHistory {
	return predicate.StageHistory(sql.FieldIsNull(FieldFromStageID))
}

// FromStageIDNotNil applies the NotNil predicate on the "from_stage_id" field.
func FromStageIDNotNil() predicate.StageHistory {
	return predicate.StageHistory(sql.FieldNotNull(FieldFromStageID))
}

// ToStageIDEQ applies the EQ predicate on the "to_stage_id" field.
func ToStageIDEQ(v uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldEQ(FieldToStageID, v))
}

// ToStageIDNEQ applies the NEQ predicate on the "to_stage_id" field.
func ToStageIDNEQ(v uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldNEQ(FieldToStageID, v))
}

// ToStageIDIn applies the In predicate on the "to_stage_id" field.
func ToStageIDIn(vs ...uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldIn(FieldToStageID, vs...))
}

// ToStageIDNotIn applies the NotIn predicate on the "to_stage_id" field.
func ToStageIDNotIn(vs ...uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldNotIn(FieldToStageID, vs...))
}

// ToStageIDGT applies the GT predicate on the "to_stage_id" field.
func ToStageIDGT(v uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldGT(FieldToStageID, v))
}

// ToStageIDGTE applies the GTE predicate on the "to_stage_id" field.
func ToStageIDGTE(v uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldGTE(FieldToStageID, v))
}

// ToStageIDLT applies the LT predicate on the "to_stage_id" field.
func ToStageIDLT(v uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldLT(FieldToStageID, v))
}

// ToStageIDLTE applies the LTE predicate on the "to_stage_id" field.
func ToStageIDLTE(v uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldLTE(FieldToStageID, v))
}

// MovedByEQ applies the EQ predicate on the "moved_by" field.
func MovedByEQ(v uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldEQ(FieldMovedBy, v))
}

// MovedByNEQ applies the NEQ predicate on the "moved_by" field.
func MovedByNEQ(v uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldNEQ(FieldMovedBy, v))
}

// MovedByIn applies the In predicate on the "moved_by" field.
func MovedByIn(vs ...uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldIn(FieldMovedBy, vs...))
}

// MovedByNotIn applies the NotIn predicate on the "moved_by" field.
func MovedByNotIn(vs ...uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldNotIn(FieldMovedBy, vs...))
}

// MovedByGT applies the GT predicate on the "moved_by" field.
func MovedByGT(v uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldGT(FieldMovedBy, v))
}

// MovedByGTE applies the GTE predicate on the "moved_by" field.
func MovedByGTE(v uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldGTE(FieldMovedBy, v))
}

// MovedByLT applies the LT predicate on the "moved_by" field.
func MovedByLT(v uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldLT(FieldMovedBy, v))
}

// MovedByLTE applies the LTE predicate on the "moved_by" field.
func MovedByLTE(v uuid.UUID) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldLTE(FieldMovedBy, v))
}

// MovedByIsNil applies the IsNil predicate on the "moved_by" field.
func MovedByIsNil() predicate.StageHistory {
	return predicate.StageHistory(sql.FieldIsNull(FieldMovedBy))
}

// MovedByNotNil applies the NotNil predicate on the "moved_by" field.
func MovedByNotNil() predicate.StageHistory {
	return predicate.StageHistory(sql.FieldNotNull(FieldMovedBy))
}

// MovedAtEQ applies the EQ predicate on the "moved_at" field.
func MovedAtEQ(v time.Time) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldEQ(FieldMovedAt, v))
}

// MovedAtNEQ applies the NEQ predicate on the "moved_at" field.
func MovedAtNEQ(v time.Time) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldNEQ(FieldMovedAt, v))
}

// MovedAtIn applies the In predicate on the "moved_at" field.
func MovedAtIn(vs ...time.Time) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldIn(FieldMovedAt, vs...))
}

// MovedAtNotIn applies the NotIn predicate on the "moved_at" field.
func MovedAtNotIn(vs ...time.Time) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldNotIn(FieldMovedAt, vs...))
}

// MovedAtGT applies the GT predicate on the "moved_at" field.
func MovedAtGT(v time.Time) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldGT(FieldMovedAt, v))
}

// MovedAtGTE applies the GTE predicate on the "moved_at" field.
func MovedAtGTE(v time.Time) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldGTE(FieldMovedAt, v))
}

// MovedAtLT applies the LT predicate on the "moved_at" field.
func MovedAtLT(v time.Time) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldLT(FieldMovedAt, v))
}

// MovedAtLTE applies the LTE predicate on the "moved_at" field.
func MovedAtLTE(v time.Time) predicate.StageHistory {
	return predicate.StageHistory(sql.FieldLTE(FieldMovedAt, v))
}

// HasCandidate applies the HasEdge predicate on the "candidate" edge.
func HasCandidate() predicate.StageHistory {
	return predicate.StageHistory(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CandidateTable, CandidateColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCandidateWith applies the HasEdge predicate on the "candidate" edge with a given conditions (other predicates).
func HasCandidateWith(preds ...predicate.Candidate) predicate.StageHistory {
	return predicate.StageHistory(func(s *sql.Selector) {
		step := newCandidateStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StageHistory) predicate.StageHistory {
	return predicate.StageHistory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StageHistory) predicate.StageHistory {
	return predicate.StageHistory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StageHistory) predicate.StageHistory {
	return predicate.StageHistory(sql.NotPredicates(p))
}
