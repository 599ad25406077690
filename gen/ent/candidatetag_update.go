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
	"github.com/talentops/recruit-crm/gen/ent/candidatetag"
	"github.com/talentops/recruit-crm/gen/ent/predicate"
	"github.com/talentops/recruit-crm/gen/ent/tag"
)

// CandidateTagUpdate is the builder for updating CandidateTag entities.
type CandidateTagUpdate struct {
	config
	hooks    []Hook
	mutation *CandidateTagMutation
}

// Where appends a list predicates to the CandidateTagUpdate builder.
func (_u *CandidateTagUpdate) Where(ps ...predicate.CandidateTag) *CandidateTagUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCandidateID sets the "candidate_id" field.
func (_u *CandidateTagUpdate) SetCandidateID(v uuid.UUID) *CandidateTagUpdate {
	_u.mutation.SetCandidateID(v)
	return _u
}

// SetNillableCandidateID sets the "candidate_id" field if the given value is not nil.
func (_u *CandidateTagUpdate) SetNillableCandidateID(v *uuid.UUID) *CandidateTagUpdate {
	if v != nil {
		_u.SetCandidateID(*v)
	}
	return _u
}

// SetTagID sets the "tag_id" field.
func (_u *CandidateTagUpdate) SetTagID(v uuid.UUID) *CandidateTagUpdate {
	_u.mutation.SetTagID(v)
	return _u
}

// SetNillableTagID sets the "tag_id" field if the given value is not nil.
func (_u *CandidateTagUpdate) SetNillableTagID(v *uuid.UUID) *CandidateTagUpdate {
	if v != nil {
		_u.SetTagID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CandidateTagUpdate) SetCreatedAt(v time.Time) *CandidateTagUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CandidateTagUpdate) SetNillableCreatedAt(v *time.Time) *CandidateTagUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetCandidate sets the "candidate" edge to the Candidate entity.
func (_u *CandidateTagUpdate) SetCandidate(v *Candidate) *CandidateTagUpdate {
	return _u.SetCandidateID(v.ID)
}

// SetTag sets the "tag" edge to the Tag entity.
func (_u *CandidateTagUpdate) SetTag(v *Tag) *CandidateTagUpdate {
	return _u.SetTagID(v.ID)
}

// Mutation returns the CandidateTagMutation object of the builder.
func (_u *CandidateTagUpdate) Mutation() *CandidateTagMutation {
	return _u.mutation
}

// ClearCandidate clears the "candidate" edge to the Candidate entity.
func (_u *CandidateTagUpdate) ClearCandidate() *CandidateTagUpdate {
	_u.mutation.ClearCandidate()
	return _u
}

// ClearTag clears the "tag" edge to the Tag entity.
func (_u *CandidateTagUpdate) ClearTag() *CandidateTagUpdate {
	_u.mutation.ClearTag()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CandidateTagUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CandidateTagUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CandidateTagUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CandidateTagUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CandidateTagUpdate) check() error {
	if _u.mutation.CandidateCleared() && len(_u.mutation.CandidateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CandidateTag.candidate"`)
	}
	if _u.mutation.TagCleared() && len(_u.mutation.TagIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CandidateTag.tag"`)
	}
	return nil
}

func (_u *CandidateTagUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(candidatetag.Table, candidatetag.Columns, sqlgraph.NewFieldSpec(candidatetag.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(candidatetag.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.CandidateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   candidatetag.CandidateTable,
			Columns: []string{candidatetag.CandidateColumn},
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
			Table:   candidatetag.CandidateTable,
			Columns: []string{candidatetag.CandidateColumn},
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
	if _u.mutation.TagCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   candidatetag.TagTable,
			Columns: []string{candidatetag.TagColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TagIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   candidatetag.TagTable,
			Columns: []string{candidatetag.TagColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{candidatetag.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CandidateTagUpdateOne is the builder for updating a single CandidateTag entity.
type CandidateTagUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CandidateTagMutation
}

// SetCandidateID sets the "candidate_id" field.
func (_u *CandidateTagUpdateOne) SetCandidateID(v uuid.UUID) *CandidateTagUpdateOne {
	_u.mutation.SetCandidateID(v)
	return _u
}

// SetNillableCandidateID sets the "candidate_id" field if the given value is not nil.
func (_u *CandidateTagUpdateOne) SetNillableCandidateID(v *uuid.UUID) *CandidateTagUpdateOne {
	if v != nil {
		_u.SetCandidateID(*v)
	}
	return _u
}

// SetTagID sets the "tag_id" field.
func (_u *CandidateTagUpdateOne) SetTagID(v uuid.UUID) *CandidateTagUpdateOne {
	_u.mutation.SetTagID(v)
	return _u
}

// SetNillableTagID sets the "tag_id" field if the given value is not nil.
func (_u *CandidateTagUpdateOne) SetNillableTagID(v *uuid.UUID) *CandidateTagUpdateOne {
	if v != nil {
		_u.SetTagID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CandidateTagUpdateOne) SetCreatedAt(v time.Time) *CandidateTagUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CandidateTagUpdateOne) SetNillableCreatedAt(v *time.Time) *CandidateTagUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetCandidate sets the "candidate" edge to the Candidate entity.
func (_u *CandidateTagUpdateOne) SetCandidate(v *Candidate) *CandidateTagUpdateOne {
	return _u.SetCandidateID(v.ID)
}

// SetTag sets the "tag" edge to the Tag entity.
func (_u *CandidateTagUpdateOne) SetTag(v *Tag) *CandidateTagUpdateOne {
	return _u.SetTagID(v.ID)
}

// Mutation returns the CandidateTagMutation object of the builder.
func (_u *CandidateTagUpdateOne) Mutation() *CandidateTagMutation {
	return _u.mutation
}

// ClearCandidate clears the "candidate" edge to the Candidate entity.
func (_u *CandidateTagUpdateOne) ClearCandidate() *CandidateTagUpdateOne {
	_u.mutation.ClearCandidate()
	return _u
}

// ClearTag clears the "tag" edge to the Tag entity.
func (_u *CandidateTagUpdateOne) ClearTag() *CandidateTagUpdateOne {
	_u.mutation.ClearTag()
	return _u
}

// Where appends a list predicates to the CandidateTagUpdate builder.
func (_u *CandidateTagUpdateOne) Where(ps ...predicate.CandidateTag) *CandidateTagUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CandidateTagUpdateOne) Select(field string, fields ...string) *CandidateTagUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CandidateTag entity.
func (_u *CandidateTagUpdateOne) Save(ctx context.Context) (*CandidateTag, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CandidateTagUpdateOne) SaveX(ctx context.Context) *CandidateTag {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CandidateTagUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CandidateTagUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CandidateTagUpdateOne) check() error {
	if _u.mutation.CandidateCleared() && len(_u.mutation.CandidateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CandidateTag.candidate"`)
	}
	if _u.mutation.TagCleared() && len(_u.mutation.TagIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CandidateTag.tag"`)
	}
	return nil
}

func (_u *CandidateTagUpdateOne) sqlSave(ctx context.Context) (_node *CandidateTag, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(candidatetag.Table, candidatetag.Columns, sqlgraph.NewFieldSpec(candidatetag.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CandidateTag.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, candidatetag.FieldID)
		for _, f := range fields {
			if !candidatetag.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != candidatetag.FieldID {
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
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(candidatetag.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.CandidateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   candidatetag.CandidateTable,
			Columns: []string{candidatetag.CandidateColumn},
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
			Table:   candidatetag.CandidateTable,
			Columns: []string{candidatetag.CandidateColumn},
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
	if _u.mutation.TagCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   candidatetag.TagTable,
			Columns: []string{candidatetag.TagColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TagIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   candidatetag.TagTable,
			Columns: []string{candidatetag.TagColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CandidateTag{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{candidatetag.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
