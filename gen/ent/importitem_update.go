// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/talentops/recruit-crm/gen/ent/candidate"
	"github.com/talentops/recruit-crm/gen/ent/importbatch"
	"github.com/talentops/recruit-crm/gen/ent/importitem"
	"github.com/talentops/recruit-crm/gen/ent/predicate"
)

// ImportItemUpdate is the builder for updating ImportItem entities.
type ImportItemUpdate struct {
	config
	hooks    []Hook
	mutation *ImportItemMutation
}

// Where appends a list predicates to the ImportItemUpdate builder.
func (_u *ImportItemUpdate) Where(ps ...predicate.ImportItem) *ImportItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *ImportItemUpdate) SetBatchID(v uuid.UUID) *ImportItemUpdate {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *ImportItemUpdate) SetNillableBatchID(v *uuid.UUID) *ImportItemUpdate {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetCandidateID sets the "candidate_id" field.
func (_u *ImportItemUpdate) SetCandidateID(v uuid.UUID) *ImportItemUpdate {
	_u.mutation.SetCandidateID(v)
	return _u
}

// SetNillableCandidateID sets the "candidate_id" field if the given value is not nil.
func (_u *ImportItemUpdate) SetNillableCandidateID(v *uuid.UUID) *ImportItemUpdate {
	if v != nil {
		_u.SetCandidateID(*v)
	}
	return _u
}

// ClearCandidateID clears the value of the "candidate_id" field.
func (_u *ImportItemUpdate) ClearCandidateID() *ImportItemUpdate {
	_u.mutation.ClearCandidateID()
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ImportItemUpdate) SetFilename(v string) *ImportItemUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ImportItemUpdate) SetNillableFilename(v *string) *ImportItemUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetStorageKey sets the "storage_key" field.
func (_u *ImportItemUpdate) SetStorageKey(v string) *ImportItemUpdate {
	_u.mutation.SetStorageKey(v)
	return _u
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (_u *ImportItemUpdate) SetNillableStorageKey(v *string) *ImportItemUpdate {
	if v != nil {
		_u.SetStorageKey(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *ImportItemUpdate) SetContentType(v string) *ImportItemUpdate {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *ImportItemUpdate) SetNillableContentType(v *string) *ImportItemUpdate {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *ImportItemUpdate) SetFileSize(v int) *ImportItemUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *ImportItemUpdate) SetNillableFileSize(v *int) *ImportItemUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *ImportItemUpdate) AddFileSize(v int) *ImportItemUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ImportItemUpdate) SetStatus(v string) *ImportItemUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ImportItemUpdate) SetNillableStatus(v *string) *ImportItemUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ImportItemUpdate) SetErrorMessage(v string) *ImportItemUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ImportItemUpdate) SetNillableErrorMessage(v *string) *ImportItemUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ImportItemUpdate) ClearErrorMessage() *ImportItemUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetExtractedJSON sets the "extracted_json" field.
func (_u *ImportItemUpdate) SetExtractedJSON(v json.RawMessage) *ImportItemUpdate {
	_u.mutation.SetExtractedJSON(v)
	return _u
}

// AppendExtractedJSON appends value to the "extracted_json" field.
func (_u *ImportItemUpdate) AppendExtractedJSON(v json.RawMessage) *ImportItemUpdate {
	_u.mutation.AppendExtractedJSON(v)
	return _u
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (_u *ImportItemUpdate) ClearExtractedJSON() *ImportItemUpdate {
	_u.mutation.ClearExtractedJSON()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ImportItemUpdate) SetProcessedAt(v time.Time) *ImportItemUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ImportItemUpdate) SetNillableProcessedAt(v *time.Time) *ImportItemUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *ImportItemUpdate) ClearProcessedAt() *ImportItemUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ImportItemUpdate) SetCreatedAt(v time.Time) *ImportItemUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ImportItemUpdate) SetNillableCreatedAt(v *time.Time) *ImportItemUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetBatch sets the "batch" edge to the ImportBatch entity.
func (_u *ImportItemUpdate) SetBatch(v *ImportBatch) *ImportItemUpdate {
	return _u.SetBatchID(v.ID)
}

// SetCandidate sets the "candidate" edge to the Candidate entity.
func (_u *ImportItemUpdate) SetCandidate(v *Candidate) *ImportItemUpdate {
	return _u.SetCandidateID(v.ID)
}

// Mutation returns the ImportItemMutation object of the builder.
func (_u *ImportItemUpdate) Mutation() *ImportItemMutation {
	return _u.mutation
}

// ClearBatch clears the "batch" edge to the ImportBatch entity.
func (_u *ImportItemUpdate) ClearBatch() *ImportItemUpdate {
	_u.mutation.ClearBatch()
	return _u
}

// ClearCandidate clears the "candidate" edge to the Candidate entity.
func (_u *ImportItemUpdate) ClearCandidate() *ImportItemUpdate {
	_u.mutation.ClearCandidate()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ImportItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImportItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ImportItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImportItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImportItemUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := importitem.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ImportItem.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StorageKey(); ok {
		if err := importitem.StorageKeyValidator(v); err != nil {
			return &ValidationError{Name: "storage_key", err: fmt.Errorf(`ent: validator failed for field "ImportItem.storage_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentType(); ok {
		if err := importitem.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`ent: validator failed for field "ImportItem.content_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := importitem.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "ImportItem.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := importitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ImportItem.status": %w`, err)}
		}
	}
	if _u.mutation.BatchCleared() && len(_u.mutation.BatchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ImportItem.batch"`)
	}
	return nil
}

func (_u *ImportItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(importitem.Table, importitem.Columns, sqlgraph.NewFieldSpec(importitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(importitem.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.StorageKey(); ok {
		_spec.SetField(importitem.FieldStorageKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(importitem.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(importitem.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(importitem.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(importitem.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(importitem.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(importitem.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedJSON(); ok {
		_spec.SetField(importitem.FieldExtractedJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, importitem.FieldExtractedJSON, value)
		})
	}
	if _u.mutation.ExtractedJSONCleared() {
		_spec.ClearField(importitem.FieldExtractedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(importitem.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(importitem.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(importitem.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.BatchCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   importitem.BatchTable,
			Columns: []string{importitem.BatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(importbatch.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   importitem.BatchTable,
			Columns: []string{importitem.BatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(importbatch.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CandidateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   importitem.CandidateTable,
			Columns: []string{importitem.CandidateColumn},
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
			Table:   importitem.CandidateTable,
			Columns: []string{importitem.CandidateColumn},
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
			err = &NotFoundError{importitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ImportItemUpdateOne is the builder for updating a single ImportItem entity.
type ImportItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ImportItemMutation
}

// SetBatchID sets the "batch_id" field.
func (_u *ImportItemUpdateOne) SetBatchID(v uuid.UUID) *ImportItemUpdateOne {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *ImportItemUpdateOne) SetNillableBatchID(v *uuid.UUID) *ImportItemUpdateOne {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetCandidateID sets the "candidate_id" field.
func (_u *ImportItemUpdateOne) SetCandidateID(v uuid.UUID) *ImportItemUpdateOne {
	_u.mutation.SetCandidateID(v)
	return _u
}

// SetNillableCandidateID sets the "candidate_id" field if the given value is not nil.
func (_u *ImportItemUpdateOne) SetNillableCandidateID(v *uuid.UUID) *ImportItemUpdateOne {
	if v != nil {
		_u.SetCandidateID(*v)
	}
	return _u
}

// ClearCandidateID clears the value of the "candidate_id" field.
func (_u *ImportItemUpdateOne) ClearCandidateID() *ImportItemUpdateOne {
	_u.mutation.ClearCandidateID()
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ImportItemUpdateOne) SetFilename(v string) *ImportItemUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ImportItemUpdateOne) SetNillableFilename(v *string) *ImportItemUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetStorageKey sets the "storage_key" field.
func (_u *ImportItemUpdateOne) SetStorageKey(v string) *ImportItemUpdateOne {
	_u.mutation.SetStorageKey(v)
	return _u
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (_u *ImportItemUpdateOne) SetNillableStorageKey(v *string) *ImportItemUpdateOne {
	if v != nil {
		_u.SetStorageKey(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *ImportItemUpdateOne) SetContentType(v string) *ImportItemUpdateOne {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *ImportItemUpdateOne) SetNillableContentType(v *string) *ImportItemUpdateOne {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *ImportItemUpdateOne) SetFileSize(v int) *ImportItemUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *ImportItemUpdateOne) SetNillableFileSize(v *int) *ImportItemUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *ImportItemUpdateOne) AddFileSize(v int) *ImportItemUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ImportItemUpdateOne) SetStatus(v string) *ImportItemUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ImportItemUpdateOne) SetNillableStatus(v *string) *ImportItemUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ImportItemUpdateOne) SetErrorMessage(v string) *ImportItemUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ImportItemUpdateOne) SetNillableErrorMessage(v *string) *ImportItemUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ImportItemUpdateOne) ClearErrorMessage() *ImportItemUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetExtractedJSON sets the "extracted_json" field.
func (_u *ImportItemUpdateOne) SetExtractedJSON(v json.RawMessage) *ImportItemUpdateOne {
	_u.mutation.SetExtractedJSON(v)
	return _u
}

// AppendExtractedJSON appends value to the "extracted_json" field.
func (_u *ImportItemUpdateOne) AppendExtractedJSON(v json.RawMessage) *ImportItemUpdateOne {
	_u.mutation.AppendExtractedJSON(v)
	return _u
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (_u *ImportItemUpdateOne) ClearExtractedJSON() *ImportItemUpdateOne {
	_u.mutation.ClearExtractedJSON()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ImportItemUpdateOne) SetProcessedAt(v time.Time) *ImportItemUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ImportItemUpdateOne) SetNillableProcessedAt(v *time.Time) *ImportItemUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *ImportItemUpdateOne) ClearProcessedAt() *ImportItemUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ImportItemUpdateOne) SetCreatedAt(v time.Time) *ImportItemUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ImportItemUpdateOne) SetNillableCreatedAt(v *time.Time) *ImportItemUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetBatch sets the "batch" edge to the ImportBatch entity.
func (_u *ImportItemUpdateOne) SetBatch(v *ImportBatch) *ImportItemUpdateOne {
	return _u.SetBatchID(v.ID)
}

// SetCandidate sets the "candidate" edge to the Candidate entity.
func (_u *ImportItemUpdateOne) SetCandidate(v *Candidate) *ImportItemUpdateOne {
	return _u.SetCandidateID(v.ID)
}

// Mutation returns the ImportItemMutation object of the builder.
func (_u *ImportItemUpdateOne) Mutation() *ImportItemMutation {
	return _u.mutation
}

// ClearBatch clears the "batch" edge to the ImportBatch entity.
func (_u *ImportItemUpdateOne) ClearBatch() *ImportItemUpdateOne {
	_u.mutation.ClearBatch()
	return _u
}

// ClearCandidate clears the "candidate" edge to the Candidate entity.
func (_u *ImportItemUpdateOne) ClearCandidate() *ImportItemUpdateOne {
	_u.mutation.ClearCandidate()
	return _u
}

// Where appends a list predicates to the ImportItemUpdate builder.
func (_u *ImportItemUpdateOne) Where(ps ...predicate.ImportItem) *ImportItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ImportItemUpdateOne) Select(field string, fields ...string) *ImportItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ImportItem entity.
func (_u *ImportItemUpdateOne) Save(ctx context.Context) (*ImportItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImportItemUpdateOne) SaveX(ctx context.Context) *ImportItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ImportItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImportItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImportItemUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := importitem.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ImportItem.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StorageKey(); ok {
		if err := importitem.StorageKeyValidator(v); err != nil {
			return &ValidationError{Name: "storage_key", err: fmt.Errorf(`ent: validator failed for field "ImportItem.storage_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentType(); ok {
		if err := importitem.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`ent: validator failed for field "ImportItem.content_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := importitem.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "ImportItem.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := importitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ImportItem.status": %w`, err)}
		}
	}
	if _u.mutation.BatchCleared() && len(_u.mutation.BatchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ImportItem.batch"`)
	}
	return nil
}

func (_u *ImportItemUpdateOne) sqlSave(ctx context.Context) (_node *ImportItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(importitem.Table, importitem.Columns, sqlgraph.NewFieldSpec(importitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ImportItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, importitem.FieldID)
		for _, f := range fields {
			if !importitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != importitem.FieldID {
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
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(importitem.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.StorageKey(); ok {
		_spec.SetField(importitem.FieldStorageKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(importitem.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(importitem.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(importitem.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(importitem.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(importitem.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(importitem.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedJSON(); ok {
		_spec.SetField(importitem.FieldExtractedJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, importitem.FieldExtractedJSON, value)
		})
	}
	if _u.mutation.ExtractedJSONCleared() {
		_spec.ClearField(importitem.FieldExtractedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(importitem.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(importitem.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(importitem.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.BatchCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   importitem.BatchTable,
			Columns: []string{importitem.BatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(importbatch.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   importitem.BatchTable,
			Columns: []string{importitem.BatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(importbatch.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CandidateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   importitem.CandidateTable,
			Columns: []string{importitem.CandidateColumn},
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
			Table:   importitem.CandidateTable,
			Columns: []string{importitem.CandidateColumn},
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
	_node = &ImportItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{importitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
