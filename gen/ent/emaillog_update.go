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
	"github.com/talentops/recruit-crm/gen/ent/emaillog"
	"github.com/talentops/recruit-crm/gen/ent/predicate"
)

// EmailLogUpdate is the builder for updating EmailLog entities.
type EmailLogUpdate struct {
	config
	hooks    []Hook
	mutation *EmailLogMutation
}

// Where appends a list predicates to the EmailLogUpdate builder.
func (_u *EmailLogUpdate) Where(ps ...predicate.EmailLog) *EmailLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCandidateID sets the "candidate_id" field.
func (_u *EmailLogUpdate) SetCandidateID(v uuid.UUID) *EmailLogUpdate {
	_u.mutation.SetCandidateID(v)
	return _u
}

// SetNillableCandidateID sets the "candidate_id" field if the given value is not nil.
func (_u *EmailLogUpdate) SetNillableCandidateID(v *uuid.UUID) *EmailLogUpdate {
	if v != nil {
		_u.SetCandidateID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *EmailLogUpdate) SetSubject(v string) *EmailLogUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *EmailLogUpdate) SetNillableSubject(v *string) *EmailLogUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *EmailLogUpdate) SetBody(v string) *EmailLogUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *EmailLogUpdate) SetNillableBody(v *string) *EmailLogUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// ClearBody clears the value of the "body" field.
func (_u *EmailLogUpdate) ClearBody() *EmailLogUpdate {
	_u.mutation.ClearBody()
	return _u
}

// SetSentBy sets the "sent_by" field.
func (_u *EmailLogUpdate) SetSentBy(v uuid.UUID) *EmailLogUpdate {
	_u.mutation.SetSentBy(v)
	return _u
}

// SetNillableSentBy sets the "sent_by" field if the given value is not nil.
func (_u *EmailLogUpdate) SetNillableSentBy(v *uuid.UUID) *EmailLogUpdate {
	if v != nil {
		_u.SetSentBy(*v)
	}
	return _u
}

// ClearSentBy clears the value of the "sent_by" field.
func (_u *EmailLogUpdate) ClearSentBy() *EmailLogUpdate {
	_u.mutation.ClearSentBy()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *EmailLogUpdate) SetSentAt(v time.Time) *EmailLogUpdate {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *EmailLogUpdate) SetNillableSentAt(v *time.Time) *EmailLogUpdate {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// SetCandidate sets the "candidate" edge to the Candidate entity.
func (_u *EmailLogUpdate) SetCandidate(v *Candidate) *EmailLogUpdate {
	return _u.SetCandidateID(v.ID)
}

// Mutation returns the EmailLogMutation object of the builder.
func (_u *EmailLogUpdate) Mutation() *EmailLogMutation {
	return _u.mutation
}

// ClearCandidate clears the "candidate" edge to the Candidate entity.
func (_u *EmailLogUpdate) ClearCandidate() *EmailLogUpdate {
	_u.mutation.ClearCandidate()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EmailLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmailLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EmailLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmailLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmailLogUpdate) check() error {
	if v, ok := _u.mutation.Subject(); ok {
		if err := emaillog.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "EmailLog.subject": %w`, err)}
		}
	}
	if _u.mutation.CandidateCleared() && len(_u.mutation.CandidateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EmailLog.candidate"`)
	}
	return nil
}

func (_u *EmailLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(emaillog.Table, emaillog.Columns, sqlgraph.NewFieldSpec(emaillog.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(emaillog.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(emaillog.FieldBody, field.TypeString, value)
	}
	if _u.mutation.BodyCleared() {
		_spec.ClearField(emaillog.FieldBody, field.TypeString)
	}
	if value, ok := _u.mutation.SentBy(); ok {
		_spec.SetField(emaillog.FieldSentBy, field.TypeUUID, value)
	}
	if _u.mutation.SentByCleared() {
		_spec.ClearField(emaillog.FieldSentBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(emaillog.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.CandidateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   emaillog.CandidateTable,
			Columns: []string{emaillog.CandidateColumn},
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
			Table:   emaillog.CandidateTable,
			Columns: []string{emaillog.CandidateColumn},
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
			err = &NotFoundError{emaillog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EmailLogUpdateOne is the builder for updating a single EmailLog entity.
type EmailLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EmailLogMutation
}

// SetCandidateID sets the "candidate_id" field.
func (_u *EmailLogUpdateOne) SetCandidateID(v uuid.UUID) *EmailLogUpdateOne {
	_u.mutation.SetCandidateID(v)
	return _u
}

// SetNillableCandidateID sets the "candidate_id" field if the given value is not nil.
func (_u *EmailLogUpdateOne) SetNillableCandidateID(v *uuid.UUID) *EmailLogUpdateOne {
	if v != nil {
		_u.SetCandidateID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *EmailLogUpdateOne) SetSubject(v string) *EmailLogUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *EmailLogUpdateOne) SetNillableSubject(v *string) *EmailLogUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *EmailLogUpdateOne) SetBody(v string) *EmailLogUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *EmailLogUpdateOne) SetNillableBody(v *string) *EmailLogUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// ClearBody clears the value of the "body" field.
func (_u *EmailLogUpdateOne) ClearBody() *EmailLogUpdateOne {
	_u.mutation.ClearBody()
	return _u
}

// SetSentBy sets the "sent_by" field.
func (_u *EmailLogUpdateOne) SetSentBy(v uuid.UUID) *EmailLogUpdateOne {
	_u.mutation.SetSentBy(v)
	return _u
}

// SetNillableSentBy sets the "sent_by" field if the given value is not nil.
func (_u *EmailLogUpdateOne) SetNillableSentBy(v *uuid.UUID) *EmailLogUpdateOne {
	if v != nil {
		_u.SetSentBy(*v)
	}
	return _u
}

// ClearSentBy clears the value of the "sent_by" field.
func (_u *EmailLogUpdateOne) ClearSentBy() *EmailLogUpdateOne {
	_u.mutation.ClearSentBy()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *EmailLogUpdateOne) SetSentAt(v time.Time) *EmailLogUpdateOne {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *EmailLogUpdateOne) SetNillableSentAt(v *time.Time) *EmailLogUpdateOne {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// SetCandidate sets the "candidate" edge to the Candidate entity.
func (_u *EmailLogUpdateOne) SetCandidate(v *Candidate) *EmailLogUpdateOne {
	return _u.SetCandidateID(v.ID)
}

// Mutation returns the EmailLogMutation object of the builder.
func (_u *EmailLogUpdateOne) Mutation() *EmailLogMutation {
	return _u.mutation
}

// ClearCandidate clears the "candidate" edge to the Candidate entity.
func (_u *EmailLogUpdateOne) ClearCandidate() *EmailLogUpdateOne {
	_u.mutation.ClearCandidate()
	return _u
}

// Where appends a list predicates to the EmailLogUpdate builder.
func (_u *EmailLogUpdateOne) Where(ps ...predicate.EmailLog) *EmailLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EmailLogUpdateOne) Select(field string, fields ...string) *EmailLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EmailLog entity.
func (_u *EmailLogUpdateOne) Save(ctx context.Context) (*EmailLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmailLogUpdateOne) SaveX(ctx context.Context) *EmailLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EmailLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmailLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmailLogUpdateOne) check() error {
	if v, ok := _u.mutation.Subject(); ok {
		if err := emaillog.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "EmailLog.subject": %w`, err)}
		}
	}
	if _u.mutation.CandidateCleared() && len(_u.mutation.CandidateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EmailLog.candidate"`)
	}
	return nil
}

func (_u *EmailLogUpdateOne) sqlSave(ctx context.Context) (_node *EmailLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(emaillog.Table, emaillog.Columns, sqlgraph.NewFieldSpec(emaillog.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EmailLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, emaillog.FieldID)
		for _, f := range fields {
			if !emaillog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != emaillog.FieldID {
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
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(emaillog.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(emaillog.FieldBody, field.TypeString, value)
	}
	if _u.mutation.BodyCleared() {
		_spec.ClearField(emaillog.FieldBody, field.TypeString)
	}
	if value, ok := _u.mutation.SentBy(); ok {
		_spec.SetField(emaillog.FieldSentBy, field.TypeUUID, value)
	}
	if _u.mutation.SentByCleared() {
		_spec.ClearField(emaillog.FieldSentBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(emaillog.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.CandidateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   emaillog.CandidateTable,
			Columns: []string{emaillog.CandidateColumn},
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
			Table:   emaillog.CandidateTable,
			Columns: []string{emaillog.CandidateColumn},
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
	_node = &EmailLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emaillog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
