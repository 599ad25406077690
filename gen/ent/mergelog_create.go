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
	"github.com/talentops/recruit-crm/gen/ent/mergelog"
)

// MergeLogCreate is the builder for creating a MergeLog entity.
type MergeLogCreate struct {
	config
	mutation *MergeLogMutation
	hooks    []Hook
}

// SetTargetID sets the "target_id" field.
func (_c *MergeLogCreate) SetTargetID(v uuid.UUID) *MergeLogCreate {
	_c.mutation.SetTargetID(v)
	return _c
}

// SetSourceID sets the "source_id" field.
func (_c *MergeLogCreate) SetSourceID(v uuid.UUID) *MergeLogCreate {
	_c.mutation.SetSourceID(v)
	return _c
}

// SetMergedBy sets the "merged_by" field.
func (_c *MergeLogCreate) SetMergedBy(v uuid.UUID) *MergeLogCreate {
	_c.mutation.SetMergedBy(v)
	return _c
}

// SetNillableMergedBy sets the "merged_by" field if the given value is not nil.
func (_c *MergeLogCreate) SetNillableMergedBy(v *uuid.UUID) *MergeLogCreate {
	if v != nil {
		_c.SetMergedBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MergeLogCreate) SetCreatedAt(v time.Time) *MergeLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MergeLogCreate) SetNillableCreatedAt(v *time.Time) *MergeLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MergeLogCreate) SetID(v uuid.UUID) *MergeLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MergeLogCreate) SetNillableID(v *uuid.UUID) *MergeLogCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the MergeLogMutation object of the builder.
func (_c *MergeLogCreate) Mutation() *MergeLogMutation {
	return _c.mutation
}

// Save creates the MergeLog in the database.
func (_c *MergeLogCreate) Save(ctx context.Context) (*MergeLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MergeLogCreate) SaveX(ctx context.Context) *MergeLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MergeLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MergeLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MergeLogCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := mergelog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := mergelog.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MergeLogCreate) check() error {
	if _, ok := _c.mutation.TargetID(); !ok {
		return &ValidationError{Name: "target_id", err: errors.New(`ent: missing required field "MergeLog.target_id"`)}
	}
	if _, ok := _c.mutation.SourceID(); !ok {
		return &ValidationError{Name: "source_id", err: errors.New(`ent: missing required field "MergeLog.source_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MergeLog.created_at"`)}
	}
	return nil
}

func (_c *MergeLogCreate) sqlSave(ctx context.Context) (*MergeLog, error) {
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

func (_c *MergeLogCreate) createSpec() (*MergeLog, *sqlgraph.CreateSpec) {
	var (
		_node = &MergeLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mergelog.Table, sqlgraph.NewFieldSpec(mergelog.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.TargetID(); ok {
		_spec.SetField(mergelog.FieldTargetID, field.TypeUUID, value)
		_node.TargetID = value
	}
	if value, ok := _c.mutation.SourceID(); ok {
		_spec.SetField(mergelog.FieldSourceID, field.TypeUUID, value)
		_node.SourceID = value
	}
	if value, ok := _c.mutation.MergedBy(); ok {
		_spec.SetField(mergelog.FieldMergedBy, field.TypeUUID, value)
		_node.MergedBy = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(mergelog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// MergeLogCreateBulk is the builder for creating many MergeLog entities in bulk.
type MergeLogCreateBulk struct {
	config
	err      error
	builders []*MergeLogCreate
}

// Save creates the MergeLog entities in the database.
func (_c *MergeLogCreateBulk) Save(ctx context.Context) ([]*MergeLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MergeLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MergeLogMutation)
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
func (_c *MergeLogCreateBulk) SaveX(ctx context.Context) []*MergeLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MergeLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MergeLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
