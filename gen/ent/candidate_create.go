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
	"github.com/talentops/recruit-crm/gen/ent/attachment"
	"github.com/talentops/recruit-crm/gen/ent/candidate"
	"github.com/talentops/recruit-crm/gen/ent/candidatetag"
	"github.com/talentops/recruit-crm/gen/ent/emaillog"
	"github.com/talentops/recruit-crm/gen/ent/importitem"
	"github.com/talentops/recruit-crm/gen/ent/note"
	"github.com/talentops/recruit-crm/gen/ent/pipeline"
	"github.com/talentops/recruit-crm/gen/ent/stage"
	"github.com/talentops/recruit-crm/gen/ent/stagehistory"
)

// CandidateCreate is the builder for creating a Candidate entity.
type CandidateCreate struct {
	config
	mutation *CandidateMutation
	hooks    []Hook
}

// SetPipelineID sets the "pipeline_id" field.
func (_c *CandidateCreate) SetPipelineID(v uuid.UUID) *CandidateCreate {
	_c.mutation.SetPipelineID(v)
	return _c
}

// SetStageID sets the "stage_id" field.
func (_c *CandidateCreate) SetStageID(v uuid.UUID) *CandidateCreate {
	_c.mutation.SetStageID(v)
	return _c
}

// SetFullName sets the "full_name" field.
func (_c *CandidateCreate) SetFullName(v string) *CandidateCreate {
	_c.mutation.SetFullName(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *CandidateCreate) SetEmail(v string) *CandidateCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableEmail(v *string) *CandidateCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *CandidateCreate) SetPhone(v string) *CandidateCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *CandidateCreate) SetNillablePhone(v *string) *CandidateCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *CandidateCreate) SetSource(v string) *CandidateCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableSource(v *string) *CandidateCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetExtractedText sets the "extracted_text" field.
func (_c *CandidateCreate) SetExtractedText(v string) *CandidateCreate {
	_c.mutation.SetExtractedText(v)
	return _c
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableExtractedText(v *string) *CandidateCreate {
	if v != nil {
		_c.SetExtractedText(*v)
	}
	return _c
}

// SetParsingConfidence sets the "parsing_confidence" field.
func (_c *CandidateCreate) SetParsingConfidence(v int) *CandidateCreate {
	_c.mutation.SetParsingConfidence(v)
	return _c
}

// SetNillableParsingConfidence sets the "parsing_confidence" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableParsingConfidence(v *int) *CandidateCreate {
	if v != nil {
		_c.SetParsingConfidence(*v)
	}
	return _c
}

// SetIsRejected sets the "is_rejected" field.
func (_c *CandidateCreate) SetIsRejected(v bool) *CandidateCreate {
	_c.mutation.SetIsRejected(v)
	return _c
}

// SetNillableIsRejected sets the "is_rejected" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableIsRejected(v *bool) *CandidateCreate {
	if v != nil {
		_c.SetIsRejected(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *CandidateCreate) SetDeletedAt(v time.Time) *CandidateCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableDeletedAt(v *time.Time) *CandidateCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetMergedIntoID sets the "merged_into_id" field.
func (_c *CandidateCreate) SetMergedIntoID(v uuid.UUID) *CandidateCreate {
	_c.mutation.SetMergedIntoID(v)
	return _c
}

// SetNillableMergedIntoID sets the "merged_into_id" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableMergedIntoID(v *uuid.UUID) *CandidateCreate {
	if v != nil {
		_c.SetMergedIntoID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CandidateCreate) SetCreatedAt(v time.Time) *CandidateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableCreatedAt(v *time.Time) *CandidateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CandidateCreate) SetUpdatedAt(v time.Time) *CandidateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableUpdatedAt(v *time.Time) *CandidateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CandidateCreate) SetID(v uuid.UUID) *CandidateCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableID(v *uuid.UUID) *CandidateCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPipeline sets the "pipeline" edge to the Pipeline entity.
func (_c *CandidateCreate) SetPipeline(v *Pipeline) *CandidateCreate {
	return _c.SetPipelineID(v.ID)
}

// SetStage sets the "stage" edge to the Stage entity.
func (_c *CandidateCreate) SetStage(v *Stage) *CandidateCreate {
	return _c.SetStageID(v.ID)
}

// AddNoteIDs adds the "notes" edge to the Note entity by IDs.
func (_c *CandidateCreate) AddNoteIDs(ids ...uuid.UUID) *CandidateCreate {
	_c.mutation.AddNoteIDs(ids...)
	return _c
}

// AddNotes adds the "notes" edges to the Note entity.
func (_c *CandidateCreate) AddNotes(v ...*Note) *CandidateCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddNoteIDs(ids...)
}

// AddAttachmentIDs adds the "attachments" edge to the Attachment entity by IDs.
func (_c *CandidateCreate) AddAttachmentIDs(ids ...uuid.UUID) *CandidateCreate {
	_c.mutation.AddAttachmentIDs(ids...)
	return _c
}

// AddAttachments adds the "attachments" edges to the Attachment entity.
func (_c *CandidateCreate) AddAttachments(v ...*Attachment) *CandidateCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAttachmentIDs(ids...)
}

// AddEmailLogIDs adds the "email_logs" edge to the EmailLog entity by IDs.
func (_c *CandidateCreate) AddEmailLogIDs(ids ...uuid.UUID) *CandidateCreate {
	_c.mutation.AddEmailLogIDs(ids...)
	return _c
}

// AddEmailLogs adds the "email_logs" edges to the EmailLog entity.
func (_c *CandidateCreate) AddEmailLogs(v ...*EmailLog) *CandidateCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEmailLogIDs(ids...)
}

// AddCandidateTagIDs adds the "candidate_tags" edge to the CandidateTag entity by IDs.
func (_c *CandidateCreate) AddCandidateTagIDs(ids ...uuid.UUID) *CandidateCreate {
	_c.mutation.AddCandidateTagIDs(ids...)
	return _c
}

// AddCandidateTags adds the "candidate_tags" edges to the CandidateTag entity.
func (_c *CandidateCreate) AddCandidateTags(v ...*CandidateTag) *CandidateCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCandidateTagIDs(ids...)
}

// AddStageHistoryIDs adds the "stage_history" edge to the StageHistory entity by IDs.
func (_c *CandidateCreate) AddStageHistoryIDs(ids ...uuid.UUID) *CandidateCreate {
	_c.mutation.AddStageHistoryIDs(ids...)
	return _c
}

// AddStageHistory adds the "stage_history" edges to the StageHistory entity.
func (_c *CandidateCreate) AddStageHistory(v ...*StageHistory) *CandidateCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStageHistoryIDs(ids...)
}

// AddImportItemIDs adds the "import_items" edge to the ImportItem entity by IDs.
func (_c *CandidateCreate) AddImportItemIDs(ids ...uuid.UUID) *CandidateCreate {
	_c.mutation.AddImportItemIDs(ids...)
	return _c
}

// AddImportItems adds the "import_items" edges to the ImportItem entity.
func (_c *CandidateCreate) AddImportItems(v ...*ImportItem) *CandidateCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddImportItemIDs(ids...)
}

// Mutation returns the CandidateMutation object of the builder.
func (_c *CandidateCreate) Mutation() *CandidateMutation {
	return _c.mutation
}

// Save creates the Candidate in the database.
func (_c *CandidateCreate) Save(ctx context.Context) (*Candidate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CandidateCreate) SaveX(ctx context.Context) *Candidate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CandidateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CandidateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CandidateCreate) defaults() {
	if _, ok := _c.mutation.Source(); !ok {
		v := candidate.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.ParsingConfidence(); !ok {
		v := candidate.DefaultParsingConfidence
		_c.mutation.SetParsingConfidence(v)
	}
	if _, ok := _c.mutation.IsRejected(); !ok {
		v := candidate.DefaultIsRejected
		_c.mutation.SetIsRejected(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := candidate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := candidate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := candidate.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CandidateCreate) check() error {
	if _, ok := _c.mutation.PipelineID(); !ok {
		return &ValidationError{Name: "pipeline_id", err: errors.New(`ent: missing required field "Candidate.pipeline_id"`)}
	}
	if _, ok := _c.mutation.StageID(); !ok {
		return &ValidationError{Name: "stage_id", err: errors.New(`ent: missing required field "Candidate.stage_id"`)}
	}
	if _, ok := _c.mutation.FullName(); !ok {
		return &ValidationError{Name: "full_name", err: errors.New(`ent: missing required field "Candidate.full_name"`)}
	}
	if v, ok := _c.mutation.FullName(); ok {
		if err := candidate.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`ent: validator failed for field "Candidate.full_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Candidate.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := candidate.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Candidate.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ParsingConfidence(); !ok {
		return &ValidationError{Name: "parsing_confidence", err: errors.New(`ent: missing required field "Candidate.parsing_confidence"`)}
	}
	if v, ok := _c.mutation.ParsingConfidence(); ok {
		if err := candidate.ParsingConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "parsing_confidence", err: fmt.Errorf(`ent: validator failed for field "Candidate.parsing_confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsRejected(); !ok {
		return &ValidationError{Name: "is_rejected", err: errors.New(`ent: missing required field "Candidate.is_rejected"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Candidate.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Candidate.updated_at"`)}
	}
	if len(_c.mutation.PipelineIDs()) == 0 {
		return &ValidationError{Name: "pipeline", err: errors.New(`ent: missing required edge "Candidate.pipeline"`)}
	}
	if len(_c.mutation.StageIDs()) == 0 {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required edge "Candidate.stage"`)}
	}
	return nil
}

func (_c *CandidateCreate) sqlSave(ctx context.Context) (*Candidate, error) {
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

func (_c *CandidateCreate) createSpec() (*Candidate, *sqlgraph.CreateSpec) {
	var (
		_node = &Candidate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(candidate.Table, sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FullName(); ok {
		_spec.SetField(candidate.FieldFullName, field.TypeString, value)
		_node.FullName = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(candidate.FieldEmail, field.TypeString, value)
		_node.Email = &value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(candidate.FieldPhone, field.TypeString, value)
		_node.Phone = &value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(candidate.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.ExtractedText(); ok {
		_spec.SetField(candidate.FieldExtractedText, field.TypeString, value)
		_node.ExtractedText = &value
	}
	if value, ok := _c.mutation.ParsingConfidence(); ok {
		_spec.SetField(candidate.FieldParsingConfidence, field.TypeInt, value)
		_node.ParsingConfidence = value
	}
	if value, ok := _c.mutation.IsRejected(); ok {
		_spec.SetField(candidate.FieldIsRejected, field.TypeBool, value)
		_node.IsRejected = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(candidate.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.MergedIntoID(); ok {
		_spec.SetField(candidate.FieldMergedIntoID, field.TypeUUID, value)
		_node.MergedIntoID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(candidate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(candidate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.PipelineIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   candidate.PipelineTable,
			Columns: []string{candidate.PipelineColumn},
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
	if nodes := _c.mutation.StageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   candidate.StageTable,
			Columns: []string{candidate.StageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.StageID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.NotesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   candidate.NotesTable,
			Columns: []string{candidate.NotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(note.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AttachmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   candidate.AttachmentsTable,
			Columns: []string{candidate.AttachmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attachment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EmailLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   candidate.EmailLogsTable,
			Columns: []string{candidate.EmailLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emaillog.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CandidateTagsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   candidate.CandidateTagsTable,
			Columns: []string{candidate.CandidateTagsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(candidatetag.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StageHistoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   candidate.StageHistoryTable,
			Columns: []string{candidate.StageHistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stagehistory.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ImportItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   candidate.ImportItemsTable,
			Columns: []string{candidate.ImportItemsColumn},
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

// CandidateCreateBulk is the builder for creating many Candidate entities in bulk.
type CandidateCreateBulk struct {
	config
	err      error
	builders []*CandidateCreate
}

// Save creates the Candidate entities in the database.
func (_c *CandidateCreateBulk) Save(ctx context.Context) ([]*Candidate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Candidate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CandidateMutation)
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
func (_c *CandidateCreateBulk) SaveX(ctx context.Context) []*Candidate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CandidateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CandidateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
