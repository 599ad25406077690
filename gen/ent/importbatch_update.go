// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/talentops/recruit-crm/gen/ent/importbatch"
	"github.com/talentops/recruit-crm/gen/ent/importitem"
	"github.com/talentops/recruit-crm/gen/ent/pipeline"
	"github.com/talentops/recruit-crm/gen/ent/predicate"
)

// ImportBatchUpdate is the builder for updating ImportBatch entities.
type ImportBatchUpdate struct {
	config
	hooks    []Hook
	mutation *ImportBatchMutation
}

// Where appends a list predicates to the ImportBatchUpdate builder.
func (_u *ImportBatchUpdate) Where(ps ...predicate.ImportBatch) *ImportBatchUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPipelineID sets the "pipeline_id" field.
func (_u *ImportBatchUpdate) SetPipelineID(v uuid.UUID) *ImportBatchUpdate {
	_u.mutation.SetPipelineID(v)
	return _u
}

// SetNillablePipelineID sets the "pipeline_id" field if the given value is not nil.
func (_u *ImportBatchUpdate) SetNillablePipelineID(v *uuid.UUID) *ImportBatchUpdate {
	if v != nil {
		_u.SetPipelineID(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *ImportBatchUpdate) SetCreatedBy(v uuid.UUID) *ImportBatchUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *ImportBatchUpdate) SetNillableCreatedBy(v *uuid.UUID) *ImportBatchUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *ImportBatchUpdate) ClearCreatedBy() *ImportBatchUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ImportBatchUpdate) SetStatus(v string) *ImportBatchUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ImportBatchUpdate) SetNillableStatus(v *string) *ImportBatchUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalFiles sets the "total_files" field.
func (_u *ImportBatchUpdate) SetTotalFiles(v int) *ImportBatchUpdate {
	_u.mutation.ResetTotalFiles()
	_u.mutation.SetTotalFiles(v)
	return _u
}

// SetNillableTotalFiles sets the "total_files" field if the given value is not nil.
func (_u *ImportBatchUpdate) SetNillableTotalFiles(v *int) *ImportBatchUpdate {
	if v != nil {
		_u.SetTotalFiles(*v)
	}
	return _u
}

// AddTotalFiles adds value to the "total_files" field.
func (_u *ImportBatchUpdate) AddTotalFiles(v int) *ImportBatchUpdate {
	_u.mutation.AddTotalFiles(v)
	return _u
}

// SetProcessedCount sets the "processed_count" field.
func (_u *ImportBatchUpdate) SetProcessedCount(v int) *ImportBatchUpdate {
	_u.mutation.ResetProcessedCount()
	_u.mutation.SetProcessedCount(v)
	return _u
}

// SetNillableProcessedCount sets the "processed_count" field if the given value is not nil.
func (_u *ImportBatchUpdate) SetNillableProcessedCount(v *int) *ImportBatchUpdate {
	if v != nil {
		_u.SetProcessedCount(*v)
	}
	return _u
}

// AddProcessedCount adds value to the "processed_count" field.
func (_u *ImportBatchUpdate) AddProcessedCount(v int) *ImportBatchUpdate {
	_u.mutation.AddProcessedCount(v)
	return _u
}

// SetSuccessCount sets the "success_count" field.
func (_u *ImportBatchUpdate) SetSuccessCount(v int) *ImportBatchUpdate {
	_u.mutation.ResetSuccessCount()
	_u.mutation.SetSuccessCount(v)
	return _u
}

// SetNillableSuccessCount sets the "success_count" field if the given value is not nil.
func (_u *ImportBatchUpdate) SetNillableSuccessCount(v *int) *ImportBatchUpdate {
	if v != nil {
		_u.SetSuccessCount(*v)
	}
	return _u
}

// AddSuccessCount adds value to the "success_count" field.
func (_u *ImportBatchUpdate) AddSuccessCount(v int) *ImportBatchUpdate {
	_u.mutation.AddSuccessCount(v)
	return _u
}

// SetFailedCount sets the "failed_count" field.
func (_u *ImportBatchUpdate) SetFailedCount(v int) *ImportBatchUpdate {
	_u.mutation.ResetFailedCount()
	_u.mutation.SetFailedCount(v)
	return _u
}

// SetNillableFailedCount sets the "failed_count" field if the given value is not nil.
func (_u *ImportBatchUpdate) SetNillableFailedCount(v *int) *ImportBatchUpdate {
	if v != nil {
		_u.SetFailedCount(*v)
	}
	return _u
}

// AddFailedCount adds value to the "failed_count" field.
func (_u *ImportBatchUpdate) AddFailedCount(v int) *ImportBatchUpdate {
	_u.mutation.AddFailedCount(v)
	return _u
}

// SetDefaultCountryCode sets the "default_country_code" field.
func (_u *ImportBatchUpdate) SetDefaultCountryCode(v string) *ImportBatchUpdate {
	_u.mutation.SetDefaultCountryCode(v)
	return _u
}

// SetNillableDefaultCountryCode sets the "default_country_code" field if the given value is not nil.
func (_u *ImportBatchUpdate) SetNillableDefaultCountryCode(v *string) *ImportBatchUpdate {
	if v != nil {
		_u.SetDefaultCountryCode(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ImportBatchUpdate) SetCreatedAt(v time.Time) *ImportBatchUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ImportBatchUpdate) SetNillableCreatedAt(v *time.Time) *ImportBatchUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ImportBatchUpdate) SetCompletedAt(v time.Time) *ImportBatchUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ImportBatchUpdate) SetNillableCompletedAt(v *time.Time) *ImportBatchUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ImportBatchUpdate) ClearCompletedAt() *ImportBatchUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetPipeline sets the "pipeline" edge to the Pipeline entity.
func (_u *ImportBatchUpdate) SetPipeline(v *Pipeline) *ImportBatchUpdate {
	return _u.SetPipelineID(v.ID)
}

// AddItemIDs adds the "items" edge to the ImportItem entity by IDs.
func (_u *ImportBatchUpdate) AddItemIDs(ids ...uuid.UUID) *ImportBatchUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the ImportItem entity.
func (_u *ImportBatchUpdate) AddItems(v ...*ImportItem) *ImportBatchUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the ImportBatchMutation object of the builder.
func (_u *ImportBatchUpdate) Mutation() *ImportBatchMutation {
	return _u.mutation
}

// ClearPipeline clears the "pipeline" edge to the Pipeline entity.
func (_u *ImportBatchUpdate) ClearPipeline() *ImportBatchUpdate {
	_u.mutation.ClearPipeline()
	return _u
}

// ClearItems clears all "items" edges to the ImportItem entity.
func (_u *ImportBatchUpdate) ClearItems() *ImportBatchUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to ImportItem entities by IDs.
func (_u *ImportBatchUpdate) RemoveItemIDs(ids ...uuid.UUID) *ImportBatchUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to ImportItem entities.
func (_u *ImportBatchUpdate) RemoveItems(v ...*ImportItem) *ImportBatchUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ImportBatchUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImportBatchUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ImportBatchUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImportBatchUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImportBatchUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := importbatch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ImportBatch.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalFiles(); ok {
		if err := importbatch.TotalFilesValidator(v); err != nil {
			return &ValidationError{Name: "total_files", err: fmt.Errorf(`ent: validator failed for field "ImportBatch.total_files": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessedCount(); ok {
		if err := importbatch.ProcessedCountValidator(v); err != nil {
			return &ValidationError{Name: "processed_count", err: fmt.Errorf(`ent: validator failed for field "ImportBatch.processed_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SuccessCount(); ok {
		if err := importbatch.SuccessCountValidator(v); err != nil {
			return &ValidationError{Name: "success_count", err: fmt.Errorf(`ent: validator failed for field "ImportBatch.success_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailedCount(); ok {
		if err := importbatch.FailedCountValidator(v); err != nil {
			return &ValidationError{Name: "failed_count", err: fmt.Errorf(`ent: validator failed for field "ImportBatch.failed_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DefaultCountryCode(); ok {
		if err := importbatch.DefaultCountryCodeValidator(v); err != nil {
			return &ValidationError{Name: "default_country_code", err: fmt.Errorf(`ent: validator failed for field "ImportBatch.default_country_code": %w`, err)}
		}
	}
	if _u.mutation.PipelineCleared() && len(_u.mutation.PipelineIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ImportBatch.pipeline"`)
	}
	return nil
}

func (_u *ImportBatchUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(importbatch.Table, importbatch.Columns, sqlgraph.NewFieldSpec(importbatch.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(importbatch.FieldCreatedBy, field.TypeUUID, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(importbatch.FieldCreatedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(importbatch.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalFiles(); ok {
		_spec.SetField(importbatch.FieldTotalFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalFiles(); ok {
		_spec.AddField(importbatch.FieldTotalFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessedCount(); ok {
		_spec.SetField(importbatch.FieldProcessedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessedCount(); ok {
		_spec.AddField(importbatch.FieldProcessedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessCount(); ok {
		_spec.SetField(importbatch.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessCount(); ok {
		_spec.AddField(importbatch.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedCount(); ok {
		_spec.SetField(importbatch.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedCount(); ok {
		_spec.AddField(importbatch.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DefaultCountryCode(); ok {
		_spec.SetField(importbatch.FieldDefaultCountryCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(importbatch.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(importbatch.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(importbatch.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.PipelineCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   importbatch.PipelineTable,
			Columns: []string{importbatch.PipelineColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipeline.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PipelineIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   importbatch.PipelineTable,
			Columns: []string{importbatch.PipelineColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipeline.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   importbatch.ItemsTable,
			Columns: []string{importbatch.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(importitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   importbatch.ItemsTable,
			Columns: []string{importbatch.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(importitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   importbatch.ItemsTable,
			Columns: []string{importbatch.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(importitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{importbatch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ImportBatchUpdateOne is the builder for updating a single ImportBatch entity.
type ImportBatchUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ImportBatchMutation
}

// SetPipelineID sets the "pipeline_id" field.
func (_u *ImportBatchUpdateOne) SetPipelineID(v uuid.UUID) *ImportBatchUpdateOne {
	_u.mutation.SetPipelineID(v)
	return _u
}

// SetNillablePipelineID sets the "pipeline_id" field if the given value is not nil.
func (_u *ImportBatchUpdateOne) SetNillablePipelineID(v *uuid.UUID) *ImportBatchUpdateOne {
	if v != nil {
		_u.SetPipelineID(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *ImportBatchUpdateOne) SetCreatedBy(v uuid.UUID) *ImportBatchUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *ImportBatchUpdateOne) SetNillableCreatedBy(v *uuid.UUID) *ImportBatchUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *ImportBatchUpdateOne) ClearCreatedBy() *ImportBatchUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ImportBatchUpdateOne) SetStatus(v string) *ImportBatchUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ImportBatchUpdateOne) SetNillableStatus(v *string) *ImportBatchUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalFiles sets the "total_files" field.
func (_u *ImportBatchUpdateOne) SetTotalFiles(v int) *ImportBatchUpdateOne {
	_u.mutation.ResetTotalFiles()
	_u.mutation.SetTotalFiles(v)
	return _u
}

// SetNillableTotalFiles sets the "total_files" field if the given value is not nil.
func (_u *ImportBatchUpdateOne) SetNillableTotalFiles(v *int) *ImportBatchUpdateOne {
	if v != nil {
		_u.SetTotalFiles(*v)
	}
	return _u
}

// AddTotalFiles adds value to the "total_files" field.
func (_u *ImportBatchUpdateOne) AddTotalFiles(v int) *ImportBatchUpdateOne {
	_u.mutation.AddTotalFiles(v)
	return _u
}

// SetProcessedCount sets the "processed_count" field.
func (_u *ImportBatchUpdateOne) SetProcessedCount(v int) *ImportBatchUpdateOne {
	_u.mutation.ResetProcessedCount()
	_u.mutation.SetProcessedCount(v)
	return _u
}

// SetNillableProcessedCount sets the "processed_count" field if the given value is not nil.
func (_u *ImportBatchUpdateOne) SetNillableProcessedCount(v *int) *ImportBatchUpdateOne {
	if v != nil {
		_u.SetProcessedCount(*v)
	}
	return _u
}

// AddProcessedCount adds value to the "processed_count" field.
func (_u *ImportBatchUpdateOne) AddProcessedCount(v int) *ImportBatchUpdateOne {
	_u.mutation.AddProcessedCount(v)
	return _u
}

// SetSuccessCount sets the "success_count" field.
func (_u *ImportBatchUpdateOne) SetSuccessCount(v int) *ImportBatchUpdateOne {
	_u.mutation.ResetSuccessCount()
	_u.mutation.SetSuccessCount(v)
	return _u
}

// SetNillableSuccessCount sets the "success_count" field if the given value is not nil.
func (_u *ImportBatchUpdateOne) SetNillableSuccessCount(v *int) *ImportBatchUpdateOne {
	if v != nil {
		_u.SetSuccessCount(*v)
	}
	return _u
}

// AddSuccessCount adds value to the "success_count" field.
func (_u *ImportBatchUpdateOne) AddSuccessCount(v int) *ImportBatchUpdateOne {
	_u.mutation.AddSuccessCount(v)
	return _u
}

// SetFailedCount sets the "failed_count" field.
func (_u *ImportBatchUpdateOne) SetFailedCount(v int) *ImportBatchUpdateOne {
	_u.mutation.ResetFailedCount()
	_u.mutation.SetFailedCount(v)
	return _u
}

// SetNillableFailedCount sets the "failed_count" field if the given value is not nil.
func (_u *ImportBatchUpdateOne) SetNillableFailedCount(v *int) *ImportBatchUpdateOne {
	if v != nil {
		_u.SetFailedCount(*v)
	}
	return _u
}

// AddFailedCount adds value to the "failed_count" field.
func (_u *ImportBatchUpdateOne) AddFailedCount(v int) *ImportBatchUpdateOne {
	_u.mutation.AddFailedCount(v)
	return _u
}

// SetDefaultCountryCode sets the "default_country_code" field.
func (_u *ImportBatchUpdateOne) SetDefaultCountryCode(v string) *ImportBatchUpdateOne {
	_u.mutation.SetDefaultCountryCode(v)
	return _u
}

// SetNillableDefaultCountryCode sets the "default_country_code" field if the given value is not nil.
func (_u *ImportBatchUpdateOne) SetNillableDefaultCountryCode(v *string) *ImportBatchUpdateOne {
	if v != nil {
		_u.SetDefaultCountryCode(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ImportBatchUpdateOne) SetCreatedAt(v time.Time) *ImportBatchUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ImportBatchUpdateOne) SetNillableCreatedAt(v *time.Time) *ImportBatchUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ImportBatchUpdateOne) SetCompletedAt(v time.Time) *ImportBatchUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ImportBatchUpdateOne) SetNillableCompletedAt(v *time.Time) *ImportBatchUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ImportBatchUpdateOne) ClearCompletedAt() *ImportBatchUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetPipeline sets the "pipeline" edge to the Pipeline entity.
func (_u *ImportBatchUpdateOne) SetPipeline(v *Pipeline) *ImportBatchUpdateOne {
	return _u.SetPipelineID(v.ID)
}

// AddItemIDs adds the "items" edge to the ImportItem entity by IDs.
func (_u *ImportBatchUpdateOne) AddItemIDs(ids ...uuid.UUID) *ImportBatchUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the ImportItem entity.
func (_u *ImportBatchUpdateOne) AddItems(v ...*ImportItem) *ImportBatchUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the ImportBatchMutation object of the builder.
func (_u *ImportBatchUpdateOne) Mutation() *ImportBatchMutation {
	return _u.mutation
}

// ClearPipeline clears the "pipeline" edge to the Pipeline entity.
func (_u *ImportBatchUpdateOne) ClearPipeline() *ImportBatchUpdateOne {
	_u.mutation.ClearPipeline()
	return _u
}

// ClearItems clears all "items" edges to the ImportItem entity.
func (_u *ImportBatchUpdateOne) ClearItems() *ImportBatchUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to ImportItem entities by IDs.
func (_u *ImportBatchUpdateOne) RemoveItemIDs(ids ...uuid.UUID) *ImportBatchUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to ImportItem entities.
func (_u *ImportBatchUpdateOne) RemoveItems(v ...*ImportItem) *ImportBatchUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Where appends a list predicates to the ImportBatchUpdate builder.
func (_u *ImportBatchUpdateOne) Where(ps ...predicate.ImportBatch) *ImportBatchUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ImportBatchUpdateOne) Select(field string, fields ...string) *ImportBatchUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ImportBatch entity.
func (_u *ImportBatchUpdateOne) Save(ctx context.Context) (*ImportBatch, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImportBatchUpdateOne) SaveX(ctx context.Context) *ImportBatch {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ImportBatchUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImportBatchUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImportBatchUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := importbatch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ImportBatch.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalFiles(); ok {
		if err := importbatch.TotalFilesValidator(v); err != nil {
			return &ValidationError{Name: "total_files", err: fmt.Errorf(`ent: validator failed for field "ImportBatch.total_files": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessedCount(); ok {
		if err := importbatch.ProcessedCountValidator(v); err != nil {
			return &ValidationError{Name: "processed_count", err: fmt.Errorf(`ent: validator failed for field "ImportBatch.processed_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SuccessCount(); ok {
		if err := importbatch.SuccessCountValidator(v); err != nil {
			return &ValidationError{Name: "success_count", err: fmt.Errorf(`ent: validator failed for field "ImportBatch.success_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailedCount(); ok {
		if err := importbatch.FailedCountValidator(v); err != nil {
			return &ValidationError{Name: "failed_count", err: fmt.Errorf(`ent: validator failed for field "ImportBatch.failed_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DefaultCountryCode(); ok {
		if err := importbatch.DefaultCountryCodeValidator(v); err != nil {
			return &ValidationError{Name: "default_country_code", err: fmt.Errorf(`ent: validator failed for field "ImportBatch.default_country_code": %w`, err)}
		}
	}
	if _u.mutation.PipelineCleared() && len(_u.mutation.PipelineIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ImportBatch.pipeline"`)
	}
	return nil
}

func (_u *ImportBatchUpdateOne) sqlSave(ctx context.Context) (_node *ImportBatch, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(importbatch.Table, importbatch.Columns, sqlgraph.NewFieldSpec(importbatch.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ImportBatch.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, importbatch.FieldID)
		for _, f := range fields {
			if !importbatch.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != importbatch.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(importbatch.FieldCreatedBy, field.TypeUUID, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(importbatch.FieldCreatedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(importbatch.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalFiles(); ok {
		_spec.SetField(importbatch.FieldTotalFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalFiles(); ok {
		_spec.AddField(importbatch.FieldTotalFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessedCount(); ok {
		_spec.SetField(importbatch.FieldProcessedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessedCount(); ok {
		_spec.AddField(importbatch.FieldProcessedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessCount(); ok {
		_spec.SetField(importbatch.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessCount(); ok {
		_spec.AddField(importbatch.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedCount(); ok {
		_spec.SetField(importbatch.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedCount(); ok {
		_spec.AddField(importbatch.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DefaultCountryCode(); ok {
		_spec.SetField(importbatch.FieldDefaultCountryCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(importbatch.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(importbatch.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(importbatch.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.PipelineCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   importbatch.PipelineTable,
			Columns: []string{importbatch.PipelineColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipeline.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PipelineIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   importbatch.PipelineTable,
			Columns: []string{importbatch.PipelineColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipeline.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   importbatch.ItemsTable,
			Columns: []string{importbatch.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(importitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   importbatch.ItemsTable,
			Columns: []string{importbatch.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(importitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   importbatch.ItemsTable,
			Columns: []string{importbatch.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(importitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ImportBatch{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{importbatch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
