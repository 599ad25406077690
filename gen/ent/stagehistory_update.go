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
	"github.com/talentops/recruit-crm/gen/ent/candidate"
	"github.com/talentops/recruit-crm/gen/ent/predicate"
	"github.com/talentops/recruit-crm/gen/ent/stagehistory"
)

// StageHistoryUpdate is the builder for updating StageHistory entities.
type StageHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *StageHistoryMutation
}

// Where appends a list predicates to the StageHistoryUpdate builder.
func (_u *StageHistoryUpdate) Where(ps ...predicate.StageHistory) *StageHistoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCandidateID sets the "candidate_id" field.
func (_u *StageHistoryUpdate) SetCandidateID(v uuid.UUID) *StageHistoryUpdate {
	_u.mutation.SetCandidateID(v)
	return _u
}

// SetNillableCandidateID sets the "candidate_id" field if the given value is not nil.
func (_u *StageHistoryUpdate) SetNillableCandidateID(v *uuid.UUID) *StageHistoryUpdate {
	if v != nil {
		_u.SetCandidateID(*v)
	}
	return _u
}

// SetFromStageID sets the "from_stage_id" field.
func (_u *StageHistoryUpdate) SetFromStageID(v uuid.UUID) *StageHistoryUpdate {
	_u.mutation.SetFromStageID(v)
	return _u
}

// SetNillableFromStageID sets the "from_stage_id" field if the given value is not nil.
func (_u *StageHistoryUpdate) SetNillableFromStageID(v *uuid.UUID) *StageHistoryUpdate {
	if v != nil {
		_u.SetFromStageID(*v)
	}
	return _u
}

// ClearFromStageID clears the value of the "from_stage_id" field.
func (_u *StageHistoryUpdate) ClearFromStageID() *StageHistoryUpdate {
	_u.mutation.ClearFromStageID()
	return _u
}

// SetToStageID sets the "to_stage_id" field.
func (_u *StageHistoryUpdate) SetToStageID(v uuid.UUID) *StageHistoryUpdate {
	_u.mutation.SetToStageID(v)
	return _u
}

// SetNillableToStageID sets the "to_stage_id" field if the given value is not nil.
func (_u *StageHistoryUpdate) SetNillableToStageID(v *uuid.UUID) *StageHistoryUpdate {
	if v != nil {
		_u.SetToStageID(*v)
	}
	return _u
}

// SetMovedBy sets the "moved_by" field.
func (_u *StageHistoryUpdate) SetMovedBy(v uuid.UUID) *StageHistoryUpdate {
	_u.mutation.SetMovedBy(v)
	return _u
}

// SetNillableMovedBy sets the "moved_by" field if the given value is not nil.
func (_u *StageHistoryUpdate) SetNillableMovedBy(v *uuid.UUID) *StageHistoryUpdate {
	if v != nil {
		_u.SetMovedBy(*v)
	}
	return _u
}

// ClearMovedBy clears the value of the "moved_by" field.
func (_u *StageHistoryUpdate) ClearMovedBy() *StageHistoryUpdate {
	_u.mutation.ClearMovedBy()
	return _u
}

// SetMovedAt sets the "moved_at" field.
func (_u *StageHistoryUpdate) SetMovedAt(v time.Time) *StageHistoryUpdate {
	_u.mutation.SetMovedAt(v)
	return _u
}

// SetNillableMovedAt sets the "moved_at" field if the given value is not nil.
func (_u *StageHistoryUpdate) SetNillableMovedAt(v *time.Time) *StageHistoryUpdate {
	if v != nil {
		_u.SetMovedAt(*v)
	}
	return _u
}

// SetCandidate sets the "candidate" edge to the Candidate entity.
func (_u *StageHistoryUpdate) SetCandidate(v *Candidate) *StageHistoryUpdate {
	return _u.SetCandidateID(v.ID)
}

// Mutation returns the StageHistoryMutation object of the builder.
func (_u *StageHistoryUpdate) Mutation() *StageHistoryMutation {
	return _u.mutation
}

// ClearCandidate clears the "candidate" edge to the Candidate entity.
func (_u *StageHistoryUpdate) ClearCandidate() *StageHistoryUpdate {
	_u.mutation.ClearCandidate()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StageHistoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StageHistoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageHistoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageHistoryUpdate) check() error {
	if _u.mutation.CandidateCleared() && len(_u.mutation.CandidateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StageHistory.candidate"`)
	}
	return nil
}

func (_u *StageHistoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stagehistory.Table, stagehistory.Columns, sqlgraph.NewFieldSpec(stagehistory.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FromStageID(); ok {
		_spec.SetField(stagehistory.FieldFromStageID, field.TypeUUID, value)
	}
	if _u.mutation.FromStageIDCleared() {
		_spec.ClearField(stagehistory.FieldFromStageID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ToStageID(); ok {
		_spec.SetField(stagehistory.FieldToStageID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.MovedBy(); ok {
		_spec.SetField(stagehistory.FieldMovedBy, field.TypeUUID, value)
	}
	if _u.mutation.MovedByCleared() {
		_spec.ClearField(stagehistory.FieldMovedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.MovedAt(); ok {
		_spec.SetField(stagehistory.FieldMovedAt, field.TypeTime, value)
	}
	if _u.mutation.CandidateCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CandidateIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stagehistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StageHistoryUpdateOne is the builder for updating a single StageHistory entity.
type StageHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StageHistoryMutation
}

// SetCandidateID sets the "candidate_id" field.
func (_u *StageHistoryUpdateOne) SetCandidateID(v uuid.UUID) *StageHistoryUpdateOne {
	_u.mutation.SetCandidateID(v)
	return _u
}

// SetNillableCandidateID sets the "candidate_id" field if the given value is not nil.
func (_u *StageHistoryUpdateOne) SetNillableCandidateID(v *uuid.UUID) *StageHistoryUpdateOne {
	if v != nil {
		_u.SetCandidateID(*v)
	}
	return _u
}

// SetFromStageID sets the "from_stage_id" field.
func (_u *StageHistoryUpdateOne) SetFromStageID(v uuid.UUID) *StageHistoryUpdateOne {
	_u.mutation.SetFromStageID(v)
	return _u
}

// SetNillableFromStageID sets the "from_stage_id" field if the given value is not nil.
func (_u *StageHistoryUpdateOne) SetNillableFromStageID(v *uuid.UUID) *StageHistoryUpdateOne {
	if v != nil {
		_u.SetFromStageID(*v)
	}
	return _u
}

// ClearFromStageID clears the value of the "from_stage_id" field.
func (_u *StageHistoryUpdateOne) ClearFromStageID() *StageHistoryUpdateOne {
	_u.mutation.ClearFromStageID()
	return _u
}

// SetToStageID sets the "to_stage_id" field.
func (_u *StageHistoryUpdateOne) SetToStageID(v uuid.UUID) *StageHistoryUpdateOne {
	_u.mutation.SetToStageID(v)
	return _u
}

// SetNillableToStageID sets the "to_stage_id" field if the given value is not nil.
func (_u *StageHistoryUpdateOne) SetNillableToStageID(v *uuid.UUID) *StageHistoryUpdateOne {
	if v != nil {
		_u.SetToStageID(*v)
	}
	return _u
}

// SetMovedBy sets the "moved_by" field.
func (_u *StageHistoryUpdateOne) SetMovedBy(v uuid.UUID) *StageHistoryUpdateOne {
	_u.mutation.SetMovedBy(v)
	return _u
}

// SetNillableMovedBy sets the "moved_by" field if the given value is not nil.
func (_u *StageHistoryUpdateOne) SetNillableMovedBy(v *uuid.UUID) *StageHistoryUpdateOne {
	if v != nil {
		_u.SetMovedBy(*v)
	}
	return _u
}

// ClearMovedBy clears the value of the "moved_by" field.
func (_u *StageHistoryUpdateOne) ClearMovedBy() *StageHistoryUpdateOne {
	_u.mutation.ClearMovedBy()
	return _u
}

// SetMovedAt sets the "moved_at" field.
func (_u *StageHistoryUpdateOne) SetMovedAt(v time.Time) *StageHistoryUpdateOne {
	_u.mutation.SetMovedAt(v)
	return _u
}

// SetNillableMovedAt sets the "moved_at" field if the given value is not nil.
func (_u *StageHistoryUpdateOne) SetNillableMovedAt(v *time.Time) *StageHistoryUpdateOne {
	if v != nil {
		_u.SetMovedAt(*v)
	}
	return _u
}

// SetCandidate sets the "candidate" edge to the Candidate entity.
func (_u *StageHistoryUpdateOne) SetCandidate(v *Candidate) *StageHistoryUpdateOne {
	return _u.SetCandidateID(v.ID)
}

// Mutation returns the StageHistoryMutation object of the builder.
func (_u *StageHistoryUpdateOne) Mutation() *StageHistoryMutation {
	return _u.mutation
}

// ClearCandidate clears the "candidate" edge to the Candidate entity.
func (_u *StageHistoryUpdateOne) ClearCandidate() *StageHistoryUpdateOne {
	_u.mutation.ClearCandidate()
	return _u
}

// Where appends a list predicates to the StageHistoryUpdate builder.
func (_u *StageHistoryUpdateOne) Where(ps ...predicate.StageHistory) *StageHistoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StageHistoryUpdateOne) Select(field string, fields ...string) *StageHistoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StageHistory entity.
func (_u *StageHistoryUpdateOne) Save(ctx context.Context) (*StageHistory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageHistoryUpdateOne) SaveX(ctx context.Context) *StageHistory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StageHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageHistoryUpdateOne) check() error {
	if _u.mutation.CandidateCleared() && len(_u.mutation.CandidateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StageHistory.candidate"`)
	}
	return nil
}

func (_u *StageHistoryUpdateOne) sqlSave(ctx context.Context) (_node *StageHistory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stagehistory.Table, stagehistory.Columns, sqlgraph.NewFieldSpec(stagehistory.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StageHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stagehistory.FieldID)
		for _, f := range fields {
			if !stagehistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stagehistory.FieldID {
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
	if value, ok := _u.mutation.FromStageID(); ok {
		_spec.SetField(stagehistory.FieldFromStageID, field.TypeUUID, value)
	}
	if _u.mutation.FromStageIDCleared() {
		_spec.ClearField(stagehistory.FieldFromStageID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ToStageID(); ok {
		_spec.SetField(stagehistory.FieldToStageID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.MovedBy(); ok {
		_spec.SetField(stagehistory.FieldMovedBy, field.TypeUUID, value)
	}
	if _u.mutation.MovedByCleared() {
		_spec.ClearField(stagehistory.FieldMovedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.MovedAt(); ok {
		_spec.SetField(stagehistory.FieldMovedAt, field.TypeTime, value)
	}
	if _u.mutation.CandidateCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CandidateIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &StageHistory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stagehistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
