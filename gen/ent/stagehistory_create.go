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
	"github.com/talentops/recruit-crm/gen/ent/candidate"
	"github.com/talentops/recruit-crm/gen/ent/stagehistory"
)

// StageHistoryCreate is the builder for creating a StageHistory entity.
type StageHistoryCreate struct {
	config
	mutation *StageHistoryMutation
	hooks    []Hook
}

// SetCandidateID sets the "candidate_id" field.
func (_c *StageHistoryCreate) SetCandidateID(v uuid.UUID) *StageHistoryCreate {
	_c.mutation.SetCandidateID(v)
	return _c
}

// SetFromStageID sets the "from_stage_id" field.
func (_c *StageHistoryCreate) SetFromStageID(v uuid.UUID) *StageHistoryCreate {
	_c.mutation.SetFromStageID(v)
	return _c
}

// SetNillableFromStageID sets the "from_stage_id" field if the given value is not nil.
func (_c *StageHistoryCreate) SetNillableFromStageID(v *uuid.UUID) *StageHistoryCreate {
	if v != nil {
		_c.SetFromStageID(*v)
	}
	return _c
}

// SetToStageID sets the "to_stage_id" field.
func (_c *StageHistoryCreate) SetToStageID(v uuid.UUID) *StageHistoryCreate {
	_c.mutation.SetToStageID(v)
	return _c
}

// SetMovedBy sets the "moved_by" field.
func (_c *StageHistoryCreate) SetMovedBy(v uuid.UUID) *StageHistoryCreate {
	_c.mutation.SetMovedBy(v)
	return _c
}

// SetNillableMovedBy sets the "moved_by" field if the given value is not nil.
func (_c *StageHistoryCreate) SetNillableMovedBy(v *uuid.UUID) *StageHistoryCreate {
	if v != nil {
		_c.SetMovedBy(*v)
	}
	return _c
}

// SetMovedAt sets the "moved_at" field.
func (_c *StageHistoryCreate) SetMovedAt(v time.Time) *StageHistoryCreate {
	_c.mutation.SetMovedAt(v)
	return _c
}

// SetNillableMovedAt sets the "moved_at" field if the given value is not nil.
func (_c *StageHistoryCreate) SetNillableMovedAt(v *time.Time) *StageHistoryCreate {
	if v != nil {
		_c.SetMovedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StageHistoryCreate) SetID(v uuid.UUID) *StageHistoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *StageHistoryCreate) SetNillableID(v *uuid.UUID) *StageHistoryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCandidate sets the "candidate" edge to the Candidate entity.
func (_c *StageHistoryCreate) SetCandidate(v *Candidate) *StageHistoryCreate {
	return _c.SetCandidateID(v.ID)
}

// Mutation returns the StageHistoryMutation object of the builder.
func (_c *StageHistoryCreate) Mutation() *StageHistoryMutation {
	return _c.mutation
}

// Save creates the StageHistory in the database.
func (_c *StageHistoryCreate) Save(ctx context.Context) (*StageHistory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StageHistoryCreate) SaveX(ctx context.Context) *StageHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageHistoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageHistoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StageHistoryCreate) defaults() {
	if _, ok := _c.mutation.MovedAt(); !ok {
		v := stagehistory.DefaultMovedAt()
		_c.mutation.SetMovedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := stagehistory.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StageHistoryCreate) check() error {
	if _, ok := _c.mutation.CandidateID(); !ok {
		return &ValidationError{Name: "candidate_id", err: errors.New(`ent: missing required field "StageHistory.candidate_id"`)}
	}
	if _, ok := _c.mutation.ToStageID(); !ok {
		return &ValidationError{Name: "to_stage_id", err: errors.New(`ent: missing required field "StageHistory.to_stage_id"`)}
	}
	if _, ok := _c.mutation.MovedAt(); !ok {
		return &ValidationError{Name: "moved_at", err: errors.New(`ent: missing required field "StageHistory.moved_at"`)}
	}
	if len(_c.mutation.CandidateIDs()) == 0 {
		return &ValidationError{Name: "candidate", err: errors.New(`ent: missing required edge "StageHistory.candidate"`)}
	}
	return nil
}

func (_c *StageHistoryCreate) sqlSave(ctx context.Context) (*StageHistory, error) {
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

func (_c *StageHistoryCreate) createSpec() (*StageHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &StageHistory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stagehistory.Table, sqlgraph.NewFieldSpec(stagehistory.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FromStageID(); ok {
		_spec.SetField(stagehistory.FieldFromStageID, field.TypeUUID, value)
		_node.FromStageID = &value
	}
	if value, ok := _c.mutation.ToStageID(); ok {
		_spec.SetField(stagehistory.FieldToStageID, field.TypeUUID, value)
		_node.ToStageID = value
	}
	if value, ok := _c.mutation.MovedBy(); ok {
		_spec.SetField(stagehistory.FieldMovedBy, field.TypeUUID, value)
		_node.MovedBy = &value
	}
	if value, ok := _c.mutation.MovedAt(); ok {
		_spec.SetField(stagehistory.FieldMovedAt, field.TypeTime, value)
		_node.MovedAt = value
	}
	if nodes := _c.mutation.CandidateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stagehistory.CandidateTable,
			Columns: []string{stagehistory.CandidateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CandidateID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// StageHistoryCreateBulk is the builder for creating many StageHistory entities in bulk.
type StageHistoryCreateBulk struct {
	config
	err      error
	builders []*StageHistoryCreate
}

// Save creates the StageHistory entities in the database.
func (_c *StageHistoryCreateBulk) Save(ctx context.Context) ([]*StageHistory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StageHistory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StageHistoryMutation)
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
func (_c *StageHistoryCreateBulk) SaveX(ctx context.Context) []*StageHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
