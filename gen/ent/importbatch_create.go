// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/talentops/recruit-crm/gen/ent/importbatch"
	"github.com/talentops/recruit-crm/gen/ent/importitem"
	"github.com/talentops/recruit-crm/gen/ent/pipeline"
)

// ImportBatchCreate is the builder for creating a ImportBatch entity.
type ImportBatchCreate struct {
	config
	mutation *ImportBatchMutation
	hooks    []Hook
}

// SetPipelineID sets the "pipeline_id" field.
func (_c *ImportBatchCreate) SetPipelineID(v uuid.UUID) *ImportBatchCreate {
	_c.mutation.SetPipelineID(v)
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *ImportBatchCreate) SetCreatedBy(v uuid.UUID) *ImportBatchCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *ImportBatchCreate) SetNillableCreatedBy(v *uuid.UUID) *ImportBatchCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ImportBatchCreate) SetStatus(v string) *ImportBatchCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ImportBatchCreate) SetNillableStatus(v *string) *ImportBatchCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTotalFiles sets the "total_files" field.
func (_c *ImportBatchCreate) SetTotalFiles(v int) *ImportBatchCreate {
	_c.mutation.SetTotalFiles(v)
	return _c
}

// SetNillableTotalFiles sets the "total_files" field if the given value is not nil.
func (_c *ImportBatchCreate) SetNillableTotalFiles(v *int) *ImportBatchCreate {
	if v != nil {
		_c.SetTotalFiles(*v)
	}
	return _c
}

// SetProcessedCount sets the "processed_count" field.
func (_c *ImportBatchCreate) SetProcessedCount(v int) *ImportBatchCreate {
	_c.mutation.SetProcessedCount(v)
	return _c
}

// SetNillableProcessedCount sets the "processed_count" field if the given value is not nil.
func (_c *ImportBatchCreate) SetNillableProcessedCount(v *int) *ImportBatchCreate {
	if v != nil {
		_c.SetProcessedCount(*v)
	}
	return _c
}

// SetSuccessCount sets the "success_count" field.
func (_c *ImportBatchCreate) SetSuccessCount(v int) *ImportBatchCreate {
	_c.mutation.SetSuccessCount(v)
	return _c
}

// SetNillableSuccessCount sets the "success_count" field if the given value is not nil.
func (_c *ImportBatchCreate) SetNillableSuccessCount(v *int) *ImportBatchCreate {
	if v != nil {
		_c.SetSuccessCount(*v)
	}
	return _c
}

// SetFailedCount sets the "failed_count" field.
func (_c *ImportBatchCreate) SetFailedCount(v int) *ImportBatchCreate {
	_c.mutation.SetFailedCount(v)
	return _c
}

// SetNillableFailedCount sets the "failed_count" field if the given value is not nil.
func (_c *ImportBatchCreate) SetNillableFailedCount(v *int) *ImportBatchCreate {
	if v != nil {
		_c.SetFailedCount(*v)
	}
	return _c
}

// SetDefaultCountryCode sets the "default_country_code" field.
func (_c *ImportBatchCreate) SetDefaultCountryCode(v string) *ImportBatchCreate {
	_c.mutation.SetDefaultCountryCode(v)
	return _c
}

// SetNillableDefaultCountryCode sets the "default_country_code" field if the given value is not nil.
func (_c *ImportBatchCreate) SetNillableDefaultCountryCode(v *string) *ImportBatchCreate {
	if v != nil {
		_c.SetDefaultCountryCode(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ImportBatchCreate) SetCreatedAt(v time.Time) *ImportBatchCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ImportBatchCreate) SetNillableCreatedAt(v *time.Time) *ImportBatchCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ImportBatchCreate) SetCompletedAt(v time.Time) *ImportBatchCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ImportBatchCreate) SetNillableCompletedAt(v *time.Time) *ImportBatchCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ImportBatchCreate) SetID(v uuid.UUID) *ImportBatchCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ImportBatchCreate) SetNillableID(v *uuid.UUID) *ImportBatchCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPipeline sets the "pipeline" edge to the Pipeline entity.
func (_c *ImportBatchCreate) SetPipeline(v *Pipeline) *ImportBatchCreate {
	return _c.SetPipelineID(v.ID)
}

// AddItemIDs adds the "items" edge to the ImportItem entity by IDs.
func (_c *ImportBatchCreate) AddItemIDs(ids ...uuid.UUID) *ImportBatchCreate {
	_c.mutation.AddItemIDs(ids...)
	return _c
}

// AddItems adds the "items" edges to the ImportItem entity.
func (_c *ImportBatchCreate) AddItems(v ...*ImportItem) *ImportBatchCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddItemIDs(ids...)
}

// Mutation returns the ImportBatchMutation object of the builder.
func (_c *ImportBatchCreate) Mutation() *ImportBatchMutation {
	return _c.mutation
}

// Save creates the ImportBatch in the database.
func (_c *ImportBatchCreate) Save(ctx context.Context) (*ImportBatch, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ImportBatchCreate) SaveX(ctx context.Context) *ImportBatch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImportBatchCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImportBatchCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ImportBatchCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := importbatch.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TotalFiles(); !ok {
		v := importbatch.DefaultTotalFiles
		_c.mutation.SetTotalFiles(v)
	}
	if _, ok := _c.mutation.ProcessedCount(); !ok {
		v := importbatch.DefaultProcessedCount
		_c.mutation.SetProcessedCount(v)
	}
	if _, ok := _c.mutation.SuccessCount(); !ok {
		v := importbatch.DefaultSuccessCount
		_c.mutation.SetSuccessCount(v)
	}
	if _, ok := _c.mutation.FailedCount(); !ok {
		v := importbatch.DefaultFailedCount
		_c.mutation.SetFailedCount(v)
	}
	if _, ok := _c.mutation.DefaultCountryCode(); !ok {
		v := importbatch.DefaultDefaultCountryCode
		_c.mutation.SetDefaultCountryCode(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := importbatch.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := importbatch.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ImportBatchCreate) check() error {
	if _, ok := _c.mutation.PipelineID(); !ok {
		return &ValidationError{Name: "pipeline_id", err: errors.New(`ent: missing required field "ImportBatch.pipeline_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ImportBatch.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := importbatch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ImportBatch.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalFiles(); !ok {
		return &ValidationError{Name: "total_files", err: errors.New(`ent: missing required field "ImportBatch.total_files"`)}
	}
	if v, ok := _c.mutation.TotalFiles(); ok {
		if err := importbatch.TotalFilesValidator(v); err != nil {
			return &ValidationError{Name: "total_files", err: fmt.Errorf(`ent: validator failed for field "ImportBatch.total_files": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessedCount(); !ok {
		return &ValidationError{Name: "processed_count", err: errors.New(`ent: missing required field "ImportBatch.processed_count"`)}
	}
	if v, ok := _c.mutation.ProcessedCount(); ok {
		if err := importbatch.ProcessedCountValidator(v); err != nil {
			return &ValidationError{Name: "processed_count", err: fmt.Errorf(`ent: validator failed for field "ImportBatch.processed_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SuccessCount(); !ok {
		return &ValidationError{Name: "success_count", err: errors.New(`ent: missing required field "ImportBatch.success_count"`)}
	}
	if v, ok := _c.mutation.SuccessCount(); ok {
		if err := importbatch.SuccessCountValidator(v); err != nil {
			return &ValidationError{Name: "success_count", err: fmt.Errorf(`ent: validator failed for field "ImportBatch.success_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FailedCount(); !ok {
		return &ValidationError{Name: "failed_count", err: errors.New(`ent: missing required field "ImportBatch.failed_count"`)}
	}
	if v, ok := _c.mutation.FailedCount(); ok {
		if err := importbatch.FailedCountValidator(v); err != nil {
			return &ValidationError{Name: "failed_count", err: fmt.Errorf(`ent: validator failed for field "ImportBatch.failed_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DefaultCountryCode(); !ok {
		return &ValidationError{Name: "default_country_code", err: errors.New(`ent: missing required field "ImportBatch.default_country_code"`)}
	}
	if v, ok := _c.mutation.DefaultCountryCode(); ok {
		if err := importbatch.DefaultCountryCodeValidator(v); err != nil {
			return &ValidationError{Name: "default_country_code", err: fmt.Errorf(`ent: validator failed for field "ImportBatch.default_country_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ImportBatch.created_at"`)}
	}
	if len(_c.mutation.PipelineIDs()) == 0 {
		return &ValidationError{Name: "pipeline", err: errors.New(`ent: missing required edge "ImportBatch.pipeline"`)}
	}
	return nil
}

func (_c *ImportBatchCreate) sqlSave(ctx context.Context) (*ImportBatch, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ImportBatchCreate) createSpec() (*ImportBatch, *sqlgraph.CreateSpec) {
	var (
		_node = &ImportBatch{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(importbatch.Table, sqlgraph.NewFieldSpec(importbatch.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(importbatch.FieldCreatedBy, field.TypeUUID, value)
		_node.CreatedBy = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(importbatch.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TotalFiles(); ok {
		_spec.SetField(importbatch.FieldTotalFiles, field.TypeInt, value)
		_node.TotalFiles = value
	}
	if value, ok := _c.mutation.ProcessedCount(); ok {
		_spec.SetField(importbatch.FieldProcessedCount, field.TypeInt, value)
		_node.ProcessedCount = value
	}
	if value, ok := _c.mutation.SuccessCount(); ok {
		_spec.SetField(importbatch.FieldSuccessCount, field.TypeInt, value)
		_node.SuccessCount = value
	}
	if value, ok := _c.mutation.FailedCount(); ok {
		_spec.SetField(importbatch.FieldFailedCount, field.TypeInt, value)
		_node.FailedCount = value
	}
	if value, ok := _c.mutation.DefaultCountryCode(); ok {
		_spec.SetField(importbatch.FieldDefaultCountryCode, field.TypeString, value)
		_node.DefaultCountryCode = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(importbatch.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(importbatch.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.PipelineIDs(); len(nodes) > 0 {
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
		_node.PipelineID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ImportBatchCreateBulk is the builder for creating many ImportBatch entities in bulk.
type ImportBatchCreateBulk struct {
	config
	err      error
	builders []*ImportBatchCreate
}

// Save creates the ImportBatch entities in the database.
func (_c *ImportBatchCreateBulk) Save(ctx context.Context) ([]*ImportBatch, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ImportBatch, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ImportBatchMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ImportBatchCreateBulk) SaveX(ctx context.Context) []*ImportBatch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImportBatchCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImportBatchCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
