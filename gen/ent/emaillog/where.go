// Code generated by ent, DO NOT EDIT.

package emaillog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/talentops/recruit-crm/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldLTE(FieldID, id))
}

// CandidateID applies equality check predicate on the "candidate_id" field. It's identical to CandidateIDEQ.
func CandidateID(v uuid.UUID) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldEQ(FieldCandidateID, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldEQ(FieldSubject, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldEQ(FieldBody, v))
}

// SentBy applies equality check predicate on the "sent_by" field. It's identical to SentByEQ.
func SentBy(v uuid.UUID) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldEQ(FieldSentBy, v))
}

// SentAt applies equality check predicate on the "sent_at" field. It's identical to SentAtEQ.
func SentAt(v time.Time) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldEQ(FieldSentAt, v))
}

// CandidateIDEQ applies the EQ predicate on the "candidate_id" field.
func CandidateIDEQ(v uuid.UUID) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldEQ(FieldCandidateID, v))
}

// CandidateIDNEQ applies the NEQ predicate on the "candidate_id" field.
func CandidateIDNEQ(v uuid.UUID) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldNEQ(FieldCandidateID, v))
}

// CandidateIDIn applies the In predicate on the "candidate_id" field.
func CandidateIDIn(vs ...uuid.UUID) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldIn(FieldCandidateID, vs...))
}

// CandidateIDNotIn applies the NotIn predicate on the "candidate_id" field.
func CandidateIDNotIn(vs ...uuid.UUID) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldNotIn(FieldCandidateID, vs...))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldContainsFold(FieldSubject, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldHasSuffix(FieldBody, v))
}

// BodyIsNil applies the IsNil predicate on the "body" field.
func BodyIsNil() predicate.EmailLog {
	return predicate.EmailLog(sql.FieldIsNull(FieldBody))
}

// BodyNotNil applies the NotNil predicate on the "body" field.
func BodyNotNil() predicate.EmailLog {
	return predicate.EmailLog(sql.FieldNotNull(FieldBody))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldContainsFold(FieldBody, v))
}

// SentByEQ applies the EQ predicate on the "sent_by" field.
func SentByEQ(v uuid.UUID) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldEQ(FieldSentBy, v))
}

// SentByNEQ applies the NEQ predicate on the "sent_by" field.
func SentByNEQ(v uuid.UUID) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldNEQ(FieldSentBy, v))
}

// SentByIn applies the In predicate on the "sent_by" field.
func SentByIn(vs ...uuid.UUID) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldIn(FieldSentBy, vs...))
}

// SentByNotIn applies the NotIn predicate on the "sent_by" field.
func SentByNotIn(vs ...uuid.UUID) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldNotIn(FieldSentBy, vs...))
}

// SentByGT applies the GT predicate on the "sent_by" field.
func SentByGT(v uuid.UUID) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldGT(FieldSentBy, v))
}

// SentByGTE applies the GTE predicate on the "sent_by" field.
func SentByGTE(v uuid.UUID) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldGTE(FieldSentBy, v))
}

// SentByLT applies the LT predicate on the "sent_by" field.
func SentByLT(v uuid.UUID) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldLT(FieldSentBy, v))
}

// SentByLTE applies the LTE predicate on the "sent_by" field.
func SentByLTE(v uuid.UUID) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldLTE(FieldSentBy, v))
}

// SentByIsNil applies the IsNil predicate on the "sent_by" field.
func SentByIsNil() predicate.EmailLog {
	return predicate.EmailLog(sql.FieldIsNull(FieldSentBy))
}

// SentByNotNil applies the NotNil predicate on the "sent_by" field.
func SentByNotNil() predicate.EmailLog {
	return predicate.EmailLog(sql.FieldNotNull(FieldSentBy))
}

// SentAtEQ applies the EQ predicate on the "sent_at" field.
func SentAtEQ(v time.Time) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldEQ(FieldSentAt, v))
}

// SentAtNEQ applies the NEQ predicate on the "sent_at" field.
func SentAtNEQ(v time.Time) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldNEQ(FieldSentAt, v))
}

// SentAtIn applies the In predicate on the "sent_at" field.
func SentAtIn(vs ...time.Time) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldIn(FieldSentAt, vs...))
}

// SentAtNotIn applies the NotIn predicate on the "sent_at" field.
func SentAtNotIn(vs ...time.Time) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldNotIn(FieldSentAt, vs...))
}

// SentAtGT applies the GT predicate on the "sent_at" field.
func SentAtGT(v time.Time) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldGT(FieldSentAt, v))
}

// SentAtGTE applies the GTE predicate on the "sent_at" field.
func SentAtGTE(v time.Time) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldGTE(FieldSentAt, v))
}

// SentAtLT applies the LT predicate on the "sent_at" field.
func SentAtLT(v time.Time) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldLT(FieldSentAt, v))
}

// SentAtLTE applies the LTE predicate on the "sent_at" field.
func SentAtLTE(v time.Time) predicate.EmailLog {
	return predicate.EmailLog(sql.FieldLTE(FieldSentAt, v))
}

// HasCandidate applies the HasEdge predicate on the "candidate" edge.
func HasCandidate() predicate.EmailLog {
	return predicate.EmailLog(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CandidateTable, CandidateColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCandidateWith applies the HasEdge predicate on the "candidate" edge with a given conditions (other predicates).
func HasCandidateWith(preds ...predicate.Candidate) predicate.EmailLog {
	return predicate.EmailLog(func(s *sql.Selector) {
		step := newCandidateStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EmailLog) predicate.EmailLog {
	return predicate.EmailLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EmailLog) predicate.EmailLog {
	return predicate.EmailLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EmailLog) predicate.EmailLog {
	return predicate.EmailLog(sql.NotPredicates(p))
}
