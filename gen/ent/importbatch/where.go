// Code generated by ent, DO NOT EDIT.

package importbatch

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/talentops/recruit-crm/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldLTE(FieldID, id))
}

// PipelineID applies equality check predicate on the "pipeline_id" field. It's identical to PipelineIDEQ.
func PipelineID(v uuid.UUID) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEQ(FieldPipelineID, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v uuid.UUID) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEQ(FieldCreatedBy, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEQ(FieldStatus, v))
}

// TotalFiles applies equality check predicate on the "total_files" field. It's identical to TotalFilesEQ.
func TotalFiles(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEQ(FieldTotalFiles, v))
}

// ProcessedCount applies equality check predicate on the "processed_count" field. It's identical to ProcessedCountEQ.
func ProcessedCount(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEQ(FieldProcessedCount, v))
}

// SuccessCount applies equality check predicate on the "success_count" field. It's identical to SuccessCountEQ.
func SuccessCount(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEQ(FieldSuccessCount, v))
}

// FailedCount applies equality check predicate on the "failed_count" field. It's identical to FailedCountEQ.
func FailedCount(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEQ(FieldFailedCount, v))
}

// DefaultCountryCode applies equality check predicate on the "default_country_code" field. It's identical to DefaultCountryCodeEQ.
func DefaultCountryCode(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEQ(FieldDefaultCountryCode, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEQ(FieldCompletedAt, v))
}

// PipelineIDEQ applies the EQ predicate on the "pipeline_id" field.
func PipelineIDEQ(v uuid.UUID) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEQ(FieldPipelineID, v))
}

// PipelineIDNEQ applies the NEQ predicate on the "pipeline_id" field.
func PipelineIDNEQ(v uuid.UUID) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNEQ(FieldPipelineID, v))
}

// PipelineIDIn applies the In predicate on the "pipeline_id" field.
func PipelineIDIn(vs ...uuid.UUID) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldIn(FieldPipelineID, vs...))
}

// PipelineIDNotIn applies the NotIn predicate on the "pipeline_id" field.
func PipelineIDNotIn(vs ...uuid.UUID) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNotIn(FieldPipelineID, vs...))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v uuid.UUID) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v uuid.UUID) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...uuid.UUID) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...uuid.UUID) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v uuid.UUID) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v uuid.UUID) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v uuid.UUID) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v uuid.UUID) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNotNull(FieldCreatedBy))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldContainsFold(FieldStatus, v))
}

// TotalFilesEQ applies the EQ predicate on the "total_files" field.
func TotalFilesEQ(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEQ(FieldTotalFiles, v))
}

// TotalFilesNEQ applies the NEQ predicate on the "total_files" field.
func TotalFilesNEQ(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNEQ(FieldTotalFiles, v))
}

// TotalFilesIn applies the In predicate on the "total_files" field.
func TotalFilesIn(vs ...int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldIn(FieldTotalFiles, vs...))
}

// TotalFilesNotIn applies the NotIn predicate on the "total_files" field.
func TotalFilesNotIn(vs ...int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNotIn(FieldTotalFiles, vs...))
}

// TotalFilesGT applies the GT predicate on the "total_files" field.
func TotalFilesGT(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldGT(FieldTotalFiles, v))
}

// TotalFilesGTE applies the GTE predicate on the "total_files" field.
func TotalFilesGTE(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldGTE(FieldTotalFiles, v))
}

// TotalFilesLT applies the LT predicate on the "total_files" field.
func TotalFilesLT(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldLT(FieldTotalFiles, v))
}

// TotalFilesLTE applies the LTE predicate on the "total_files" field.
func TotalFilesLTE(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldLTE(FieldTotalFiles, v))
}

// ProcessedCountEQ applies the EQ predicate on the "processed_count" field.
func ProcessedCountEQ(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEQ(FieldProcessedCount, v))
}

// ProcessedCountNEQ applies the NEQ predicate on the "processed_count" field.
func ProcessedCountNEQ(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNEQ(FieldProcessedCount, v))
}

// ProcessedCountIn applies the In predicate on the "processed_count" field.
func ProcessedCountIn(vs ...int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldIn(FieldProcessedCount, vs...))
}

// ProcessedCountNotIn applies the NotIn predicate on the "processed_count" field.
func ProcessedCountNotIn(vs ...int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNotIn(FieldProcessedCount, vs...))
}

// ProcessedCountGT applies the GT predicate on the "processed_count" field.
func ProcessedCountGT(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldGT(FieldProcessedCount, v))
}

// ProcessedCountGTE applies the GTE predicate on the "processed_count" field.
func ProcessedCountGTE(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldGTE(FieldProcessedCount, v))
}

// ProcessedCountLT applies the LT predicate on the "processed_count" field.
func ProcessedCountLT(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldLT(FieldProcessedCount, v))
}

// ProcessedCountLTE applies the LTE predicate on the "processed_count" field.
func ProcessedCountLTE(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldLTE(FieldProcessedCount, v))
}

// SuccessCountEQ applies the EQ predicate on the "success_count" field.
func SuccessCountEQ(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEQ(FieldSuccessCount, v))
}

// SuccessCountNEQ applies the NEQ predicate on the "success_count" field.
func SuccessCountNEQ(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNEQ(FieldSuccessCount, v))
}

// SuccessCountIn applies the In predicate on the "success_count" field.
func SuccessCountIn(vs ...int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldIn(FieldSuccessCount, vs...))
}

// SuccessCountNotIn applies the NotIn predicate on the "success_count" field.
func SuccessCountNotIn(vs ...int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNotIn(FieldSuccessCount, vs...))
}

// SuccessCountGT applies the GT predicate on the "success_count" field.
func SuccessCountGT(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldGT(FieldSuccessCount, v))
}

// SuccessCountGTE applies the GTE predicate on the "success_count" field.
func SuccessCountGTE(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldGTE(FieldSuccessCount, v))
}

// SuccessCountLT applies the LT predicate on the "success_count" field.
func SuccessCountLT(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldLT(FieldSuccessCount, v))
}

// SuccessCountLTE applies the LTE predicate on the "success_count" field.
func SuccessCountLTE(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldLTE(FieldSuccessCount, v))
}

// FailedCountEQ applies the EQ predicate on the "failed_count" field.
func FailedCountEQ(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEQ(FieldFailedCount, v))
}

// FailedCountNEQ applies the NEQ predicate on the "failed_count" field.
func FailedCountNEQ(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNEQ(FieldFailedCount, v))
}

// FailedCountIn applies the In predicate on the "failed_count" field.
func FailedCountIn(vs ...int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldIn(FieldFailedCount, vs...))
}

// FailedCountNotIn applies the NotIn predicate on the "failed_count" field.
func FailedCountNotIn(vs ...int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNotIn(FieldFailedCount, vs...))
}

// FailedCountGT applies the GT predicate on the "failed_count" field.
func FailedCountGT(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldGT(FieldFailedCount, v))
}

// FailedCountGTE applies the GTE predicate on the "failed_count" field.
func FailedCountGTE(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldGTE(FieldFailedCount, v))
}

// FailedCountLT applies the LT predicate on the "failed_count" field.
func FailedCountLT(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldLT(FieldFailedCount, v))
}

// FailedCountLTE applies the LTE predicate on the "failed_count" field.
func FailedCountLTE(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldLTE(FieldFailedCount, v))
}

// DefaultCountryCodeEQ applies the EQ predicate on the "default_country_code" field.
func DefaultCountryCodeEQ(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEQ(FieldDefaultCountryCode, v))
}

// DefaultCountryCodeNEQ applies the NEQ predicate on the "default_country_code" field.
func DefaultCountryCodeNEQ(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNEQ(FieldDefaultCountryCode, v))
}

// DefaultCountryCodeIn applies the In predicate on the "default_country_code" field.
func DefaultCountryCodeIn(vs ...string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldIn(FieldDefaultCountryCode, vs...))
}

// DefaultCountryCodeNotIn applies the NotIn predicate on the "default_country_code" field.
func DefaultCountryCodeNotIn(vs ...string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNotIn(FieldDefaultCountryCode, vs...))
}

// DefaultCountryCodeGT applies the GT predicate on the "default_country_code" field.
func DefaultCountryCodeGT(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldGT(FieldDefaultCountryCode, v))
}

// DefaultCountryCodeGTE applies the GTE predicate on the "default_country_code" field.
func DefaultCountryCodeGTE(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldGTE(FieldDefaultCountryCode, v))
}

// DefaultCountryCodeLT applies the LT predicate on the "default_country_code" field.
func DefaultCountryCodeLT(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldLT(FieldDefaultCountryCode, v))
}

// DefaultCountryCodeLTE applies the LTE predicate on the "default_country_code" field.
func DefaultCountryCodeLTE(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldLTE(FieldDefaultCountryCode, v))
}

// DefaultCountryCodeContains applies the Contains predicate on the "default_country_code" field.
func DefaultCountryCodeContains(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldContains(FieldDefaultCountryCode, v))
}

// DefaultCountryCodeHasPrefix applies the HasPrefix predicate on the "default_country_code" field.
func DefaultCountryCodeHasPrefix(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldHasPrefix(FieldDefaultCountryCode, v))
}

// DefaultCountryCodeHasSuffix applies the HasSuffix predicate on the "default_country_code" field.
func DefaultCountryCodeHasSuffix(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldHasSuffix(FieldDefaultCountryCode, v))
}

// DefaultCountryCodeEqualFold applies the EqualFold predicate on the "default_country_code" field.
func DefaultCountryCodeEqualFold(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEqualFold(FieldDefaultCountryCode, v))
}

// DefaultCountryCodeContainsFold applies the ContainsFold predicate on the "default_country_code" field.
func DefaultCountryCodeContainsFold(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldContainsFold(FieldDefaultCountryCode, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNotNull(FieldCompletedAt))
}

// HasPipeline applies the HasEdge predicate on the "pipeline" edge.
func HasPipeline() predicate.ImportBatch {
	return predicate.ImportBatch(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PipelineTable, PipelineColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPipelineWith applies the HasEdge predicate on the "pipeline" edge with a given conditions (other predicates).
func HasPipelineWith(preds ...predicate.Pipeline) predicate.ImportBatch {
	return predicate.ImportBatch(func(s *sql.Selector) {
		step := newPipelineStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasItems applies the HasEdge predicate on the "items" edge.
func HasItems() predicate.ImportBatch {
	return predicate.ImportBatch(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasItemsWith applies the HasEdge predicate on the "items" edge with a given conditions (other predicates).
func HasItemsWith(preds ...predicate.ImportItem) predicate.ImportBatch {
	return predicate.ImportBatch(func(s *sql.Selector) {
		step := newItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ImportBatch) predicate.ImportBatch {
	return predicate.ImportBatch(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ImportBatch) predicate.ImportBatch {
	return predicate.ImportBatch(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ImportBatch) predicate.ImportBatch {
	return predicate.ImportBatch(sql.NotPredicates(p))
}
