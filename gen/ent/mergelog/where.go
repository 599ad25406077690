// Code generated by ent, DO NOT EDIT.

package mergelog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/talentops/recruit-crm/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldLTE(FieldID, id))
}

// TargetID applies equality check predicate on the "target_id" field. It's identical to TargetIDEQ.
func TargetID(v uuid.UUID) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldEQ(FieldTargetID, v))
}

// SourceID applies equality check predicate on the "source_id" field. It's identical to SourceIDEQ.
func SourceID(v uuid.UUID) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldEQ(FieldSourceID, v))
}

// MergedBy applies equality check predicate on the "merged_by" field. It's identical to MergedByEQ.
func MergedBy(v uuid.UUID) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldEQ(FieldMergedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldEQ(FieldCreatedAt, v))
}

// TargetIDEQ applies the EQ predicate on the "target_id" field.
func TargetIDEQ(v uuid.UUID) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldEQ(FieldTargetID, v))
}

// TargetIDNEQ applies the NEQ predicate on the "target_id" field.
func TargetIDNEQ(v uuid.UUID) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldNEQ(FieldTargetID, v))
}

// TargetIDIn applies the In predicate on the "target_id" field.
func TargetIDIn(vs ...uuid.UUID) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldIn(FieldTargetID, vs...))
}

// TargetIDNotIn applies the NotIn predicate on the "target_id" field.
func TargetIDNotIn(vs ...uuid.UUID) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldNotIn(FieldTargetID, vs...))
}

// TargetIDGT applies the GT predicate on the "target_id" field.
func TargetIDGT(v uuid.UUID) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldGT(FieldTargetID, v))
}

// TargetIDGTE applies the GTE predicate on the "target_id" field.
func TargetIDGTE(v uuid.UUID) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldGTE(FieldTargetID, v))
}

// TargetIDLT applies the LT predicate on the "target_id" field.
func TargetIDLT(v uuid.UUID) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldLT(FieldTargetID, v))
}

// TargetIDLTE applies the LTE predicate on the "target_id" field.
func TargetIDLTE(v uuid.UUID) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldLTE(FieldTargetID, v))
}

// SourceIDEQ applies the EQ predicate on the "source_id" field.
func SourceIDEQ(v uuid.UUID) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldEQ(FieldSourceID, v))
}

// SourceIDNEQ applies the NEQ predicate on the "source_id" field.
func SourceIDNEQ(v uuid.UUID) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldNEQ(FieldSourceID, v))
}

// SourceIDIn applies the In predicate on the "source_id" field.
func SourceIDIn(vs ...uuid.UUID) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldIn(FieldSourceID, vs...))
}

// SourceIDNotIn applies the NotIn predicate on the "source_id" field.
func SourceIDNotIn(vs ...uuid.UUID) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldNotIn(FieldSourceID, vs...))
}

// SourceIDGT applies the GT predicate on the "source_id" field.
func SourceIDGT(v uuid.UUID) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldGT(FieldSourceID, v))
}

// SourceIDGTE applies the GTE predicate on the "source_id" field.
func SourceIDGTE(v uuid.UUID) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldGTE(FieldSourceID, v))
}

// SourceIDLT applies the LT predicate on the "source_id" field.
func SourceIDLT(v uuid.UUID) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldLT(FieldSourceID, v))
}

// SourceIDLTE applies the LTE predicate on the "source_id" field.
func SourceIDLTE(v uuid.UUID) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldLTE(FieldSourceID, v))
}

// MergedByEQ applies the EQ predicate on the "merged_by" field.
func MergedByEQ(v uuid.UUID) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldEQ(FieldMergedBy, v))
}

// MergedByNEQ applies the NEQ predicate on the "merged_by" field.
func MergedByNEQ(v uuid.UUID) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldNEQ(FieldMergedBy, v))
}

// MergedByIn applies the In predicate on the "merged_by" field.
func MergedByIn(vs ...uuid.UUID) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldIn(FieldMergedBy, vs...))
}

// MergedByNotIn applies the NotIn predicate on the "merged_by" field.
func MergedByNotIn(vs ...uuid.UUID) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldNotIn(FieldMergedBy, vs...))
}

// MergedByGT applies the GT predicate on the "merged_by" field.
func MergedByGT(v uuid.UUID) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldGT(FieldMergedBy, v))
}

// MergedByGTE applies the GTE predicate on the "merged_by" field.
func MergedByGTE(v uuid.UUID) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldGTE(FieldMergedBy, v))
}

// MergedByLT applies the LT predicate on the "merged_by" field.
func MergedByLT(v uuid.UUID) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldLT(FieldMergedBy, v))
}

// MergedByLTE applies the LTE predicate on the "merged_by" field.
func MergedByLTE(v uuid.UUID) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldLTE(FieldMergedBy, v))
}

// MergedByIsNil applies the IsNil predicate on the "merged_by" field.
func MergedByIsNil() predicate.MergeLog {
	return predicate.MergeLog(sql.FieldIsNull(FieldMergedBy))
}

// MergedByNotNil applies the NotNil predicate on the "merged_by" field.
func MergedByNotNil() predicate.MergeLog {
	return predicate.MergeLog(sql.FieldNotNull(FieldMergedBy))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MergeLog {
	return predicate.MergeLog(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MergeLog) predicate.MergeLog {
	return predicate.MergeLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MergeLog) predicate.MergeLog {
	return predicate.MergeLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MergeLog) predicate.MergeLog {
	return predicate.MergeLog(sql.NotPredicates(p))
}
