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
	"github.com/talentops/recruit-crm/gen/ent/attachment"
	"github.com/talentops/recruit-crm/gen/ent/candidate"
	"github.com/talentops/recruit-crm/gen/ent/candidatetag"
	"github.com/talentops/recruit-crm/gen/ent/emaillog"
	"github.com/talentops/recruit-crm/gen/ent/importitem"
	"github.com/talentops/recruit-crm/gen/ent/note"
	"github.com/talentops/recruit-crm/gen/ent/pipeline"
	"github.com/talentops/recruit-crm/gen/ent/predicate"
	"github.com/talentops/recruit-crm/gen/ent/stage"
	"github.com/talentops/recruit-crm/gen/ent/stagehistory"
)

// CandidateUpdate is the builder for updating Candidate entities.
type CandidateUpdate struct {
	config
	hooks    []Hook
	mutation *CandidateMutation
}

// Where appends a list predicates to the CandidateUpdate builder.
func (_u *CandidateUpdate) Where(ps ...predicate.Candidate) *CandidateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPipelineID sets the "pipeline_id" field.
func (_u *CandidateUpdate) SetPipelineID(v uuid.UUID) *CandidateUpdate {
	_u.mutation.SetPipelineID(v)
	return _u
}

// SetNillablePipelineID sets the "pipeline_id" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillablePipelineID(v *uuid.UUID) *CandidateUpdate {
	if v != nil {
		_u.SetPipelineID(*v)
	}
	return _u
}

// SetStageID sets the "stage_id" field.
func (_u *CandidateUpdate) SetStageID(v uuid.UUID) *CandidateUpdate {
	_u.mutation.SetStageID(v)
	return _u
}

// SetNillableStageID sets the "stage_id" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableStageID(v *uuid.UUID) *CandidateUpdate {
	if v != nil {
		_u.SetStageID(*v)
	}
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *CandidateUpdate) SetFullName(v string) *CandidateUpdate {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableFullName(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *CandidateUpdate) SetEmail(v string) *CandidateUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableEmail(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *CandidateUpdate) ClearEmail() *CandidateUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *CandidateUpdate) SetPhone(v string) *CandidateUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillablePhone(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *CandidateUpdate) ClearPhone() *CandidateUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetSource sets the "source" field.
func (_u *CandidateUpdate) SetSource(v string) *CandidateUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableSource(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *CandidateUpdate) SetExtractedText(v string) *CandidateUpdate {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableExtractedText(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (_u *CandidateUpdate) ClearExtractedText() *CandidateUpdate {
	_u.mutation.ClearExtractedText()
	return _u
}

// SetParsingConfidence sets the "parsing_confidence" field.
func (_u *CandidateUpdate) SetParsingConfidence(v int) *CandidateUpdate {
	_u.mutation.ResetParsingConfidence()
	_u.mutation.SetParsingConfidence(v)
	return _u
}

// SetNillableParsingConfidence sets the "parsing_confidence" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableParsingConfidence(v *int) *CandidateUpdate {
	if v != nil {
		_u.SetParsingConfidence(*v)
	}
	return _u
}

// AddParsingConfidence adds value to the "parsing_confidence" field.
func (_u *CandidateUpdate) AddParsingConfidence(v int) *CandidateUpdate {
	_u.mutation.AddParsingConfidence(v)
	return _u
}

// SetIsRejected sets the "is_rejected" field.
func (_u *CandidateUpdate) SetIsRejected(v bool) *CandidateUpdate {
	_u.mutation.SetIsRejected(v)
	return _u
}

// SetNillableIsRejected sets the "is_rejected" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableIsRejected(v *bool) *CandidateUpdate {
	if v != nil {
		_u.SetIsRejected(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *CandidateUpdate) SetDeletedAt(v time.Time) *CandidateUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableDeletedAt(v *time.Time) *CandidateUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *CandidateUpdate) ClearDeletedAt() *CandidateUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetMergedIntoID sets the "merged_into_id" field.
func (_u *CandidateUpdate) SetMergedIntoID(v uuid.UUID) *CandidateUpdate {
	_u.mutation.SetMergedIntoID(v)
	return _u
}

// SetNillableMergedIntoID sets the "merged_into_id" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableMergedIntoID(v *uuid.UUID) *CandidateUpdate {
	if v != nil {
		_u.SetMergedIntoID(*v)
	}
	return _u
}

// ClearMergedIntoID clears the value of the "merged_into_id" field.
func (_u *CandidateUpdate) ClearMergedIntoID() *CandidateUpdate {
	_u.mutation.ClearMergedIntoID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CandidateUpdate) SetCreatedAt(v time.Time) *CandidateUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableCreatedAt(v *time.Time) *CandidateUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CandidateUpdate) SetUpdatedAt(v time.Time) *CandidateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPipeline sets the "pipeline" edge to the Pipeline entity.
func (_u *CandidateUpdate) SetPipeline(v *Pipeline) *CandidateUpdate {
	return _u.SetPipelineID(v.ID)
}

// SetStage sets the "stage" edge to the Stage entity.
func (_u *CandidateUpdate) SetStage(v *Stage) *CandidateUpdate {
	return _u.SetStageID(v.ID)
}

// AddNoteIDs adds the "notes" edge to the Note entity by IDs.
func (_u *CandidateUpdate) AddNoteIDs(ids ...uuid.UUID) *CandidateUpdate {
	_u.mutation.AddNoteIDs(ids...)
	return _u
}

// AddNotes adds the "notes" edges to the Note entity.
func (_u *CandidateUpdate) AddNotes(v ...*Note) *CandidateUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNoteIDs(ids...)
}

// AddAttachmentIDs adds the "attachments" edge to the Attachment entity by IDs.
func (_u *CandidateUpdate) AddAttachmentIDs(ids ...uuid.UUID) *CandidateUpdate {
	_u.mutation.AddAttachmentIDs(ids...)
	return _u
}

// AddAttachments adds the "attachments" edges to the Attachment entity.
func (_u *CandidateUpdate) AddAttachments(v ...*Attachment) *CandidateUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttachmentIDs(ids...)
}

// AddEmailLogIDs adds the "email_logs" edge to the EmailLog entity by IDs.
func (_u *CandidateUpdate) AddEmailLogIDs(ids ...uuid.UUID) *CandidateUpdate {
	_u.mutation.AddEmailLogIDs(ids...)
	return _u
}

// AddEmailLogs adds the "email_logs" edges to the EmailLog entity.
func (_u *CandidateUpdate) AddEmailLogs(v ...*EmailLog) *CandidateUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEmailLogIDs(ids...)
}

// AddCandidateTagIDs adds the "candidate_tags" edge to the CandidateTag entity by IDs.
func (_u *CandidateUpdate) AddCandidateTagIDs(ids ...uuid.UUID) *CandidateUpdate {
	_u.mutation.AddCandidateTagIDs(ids...)
	return _u
}

// AddCandidateTags adds the "candidate_tags" edges to the CandidateTag entity.
func (_u *CandidateUpdate) AddCandidateTags(v ...*CandidateTag) *CandidateUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCandidateTagIDs(ids...)
}

// AddStageHistoryIDs adds the "stage_history" edge to the StageHistory entity by IDs.
func (_u *CandidateUpdate) AddStageHistoryIDs(ids ...uuid.UUID) *CandidateUpdate {
	_u.mutation.AddStageHistoryIDs(ids...)
	return _u
}

// AddStageHistory adds the "stage_history" edges to the StageHistory entity.
func (_u *CandidateUpdate) AddStageHistory(v ...*StageHistory) *CandidateUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageHistoryIDs(ids...)
}

// AddImportItemIDs adds the "import_items" edge to the ImportItem entity by IDs.
func (_u *CandidateUpdate) AddImportItemIDs(ids ...uuid.UUID) *CandidateUpdate {
	_u.mutation.AddImportItemIDs(ids...)
	return _u
}

// AddImportItems adds the "import_items" edges to the ImportItem entity.
func (_u *CandidateUpdate) AddImportItems(v ...*ImportItem) *CandidateUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddImportItemIDs(ids...)
}

// Mutation returns the CandidateMutation object of the builder.
func (_u *CandidateUpdate) Mutation() *CandidateMutation {
	return _u.mutation
}

// ClearPipeline clears the "pipeline" edge to the Pipeline entity.
func (_u *CandidateUpdate) ClearPipeline() *CandidateUpdate {
	_u.mutation.ClearPipeline()
	return _u
}

// ClearStage clears the "stage" edge to the Stage entity.
func (_u *CandidateUpdate) ClearStage() *CandidateUpdate {
	_u.mutation.ClearStage()
	return _u
}

// ClearNotes clears all "notes" edges to the Note entity.
func (_u *CandidateUpdate) ClearNotes() *CandidateUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// RemoveNoteIDs removes the "notes" edge to Note entities by IDs.
func (_u *CandidateUpdate) RemoveNoteIDs(ids ...uuid.UUID) *CandidateUpdate {
	_u.mutation.RemoveNoteIDs(ids...)
	return _u
}

// RemoveNotes removes "notes" edges to Note entities.
func (_u *CandidateUpdate) RemoveNotes(v ...*Note) *CandidateUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNoteIDs(ids...)
}

// ClearAttachments clears all "attachments" edges to the Attachment entity.
func (_u *CandidateUpdate) ClearAttachments() *CandidateUpdate {
	_u.mutation.ClearAttachments()
	return _u
}

// RemoveAttachmentIDs removes the "attachments" edge to Attachment entities by IDs.
func (_u *CandidateUpdate) RemoveAttachmentIDs(ids ...uuid.UUID) *CandidateUpdate {
	_u.mutation.RemoveAttachmentIDs(ids...)
	return _u
}

// RemoveAttachments removes "attachments" edges to Attachment entities.
func (_u *CandidateUpdate) RemoveAttachments(v ...*Attachment) *CandidateUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttachmentIDs(ids...)
}

// ClearEmailLogs clears all "email_logs" edges to the EmailLog entity.
func (_u *CandidateUpdate) ClearEmailLogs() *CandidateUpdate {
	_u.mutation.ClearEmailLogs()
	return _u
}

// RemoveEmailLogIDs removes the "email_logs" edge to EmailLog entities by IDs.
func (_u *CandidateUpdate) RemoveEmailLogIDs(ids ...uuid.UUID) *CandidateUpdate {
	_u.mutation.RemoveEmailLogIDs(ids...)
	return _u
}

// RemoveEmailLogs removes "email_logs" edges to EmailLog entities.
func (_u *CandidateUpdate) RemoveEmailLogs(v ...*EmailLog) *CandidateUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEmailLogIDs(ids...)
}

// ClearCandidateTags clears all "candidate_tags" edges to the CandidateTag entity.
func (_u *CandidateUpdate) ClearCandidateTags() *CandidateUpdate {
	_u.mutation.ClearCandidateTags()
	return _u
}

// RemoveCandidateTagIDs removes the "candidate_tags" edge to CandidateTag entities by IDs.
func (_u *CandidateUpdate) RemoveCandidateTagIDs(ids ...uuid.UUID) *CandidateUpdate {
	_u.mutation.RemoveCandidateTagIDs(ids...)
	return _u
}

// RemoveCandidateTags removes "candidate_tags" edges to CandidateTag entities.
func (_u *CandidateUpdate) RemoveCandidateTags(v ...*CandidateTag) *CandidateUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCandidateTagIDs(ids...)
}

// ClearStageHistory clears all "stage_history" edges to the StageHistory entity.
func (_u *CandidateUpdate) ClearStageHistory() *CandidateUpdate {
	_u.mutation.ClearStageHistory()
	return _u
}

// RemoveStageHistoryIDs removes the "stage_history" edge to StageHistory entities by IDs.
func (_u *CandidateUpdate) RemoveStageHistoryIDs(ids ...uuid.UUID) *CandidateUpdate {
	_u.mutation.RemoveStageHistoryIDs(ids...)
	return _u
}

// RemoveStageHistory removes "stage_history" edges to StageHistory entities.
func (_u *CandidateUpdate) RemoveStageHistory(v ...*StageHistory) *CandidateUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageHistoryIDs(ids...)
}

// ClearImportItems clears all "import_items" edges to the ImportItem entity.
func (_u *CandidateUpdate) ClearImportItems() *CandidateUpdate {
	_u.mutation.ClearImportItems()
	return _u
}

// RemoveImportItemIDs removes the "import_items" edge to ImportItem entities by IDs.
func (_u *CandidateUpdate) RemoveImportItemIDs(ids ...uuid.UUID) *CandidateUpdate {
	_u.mutation.RemoveImportItemIDs(ids...)
	return _u
}

// RemoveImportItems removes "import_items" edges to ImportItem entities.
func (_u *CandidateUpdate) RemoveImportItems(v ...*ImportItem) *CandidateUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveImportItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CandidateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CandidateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CandidateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CandidateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CandidateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := candidate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CandidateUpdate) check() error {
	if v, ok := _u.mutation.FullName(); ok {
		if err := candidate.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`ent: validator failed for field "Candidate.full_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := candidate.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Candidate.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ParsingConfidence(); ok {
		if err := candidate.ParsingConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "parsing_confidence", err: fmt.Errorf(`ent: validator failed for field "Candidate.parsing_confidence": %w`, err)}
		}
	}
	if _u.mutation.PipelineCleared() && len(_u.mutation.PipelineIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Candidate.pipeline"`)
	}
	if _u.mutation.StageCleared() && len(_u.mutation.StageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Candidate.stage"`)
	}
	return nil
}

func (_u *CandidateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(candidate.Table, candidate.Columns, sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(candidate.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(candidate.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(candidate.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(candidate.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(candidate.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(candidate.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(candidate.FieldExtractedText, field.TypeString, value)
	}
	if _u.mutation.ExtractedTextCleared() {
		_spec.ClearField(candidate.FieldExtractedText, field.TypeString)
	}
	if value, ok := _u.mutation.ParsingConfidence(); ok {
		_spec.SetField(candidate.FieldParsingConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedParsingConfidence(); ok {
		_spec.AddField(candidate.FieldParsingConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsRejected(); ok {
		_spec.SetField(candidate.FieldIsRejected, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(candidate.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(candidate.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.MergedIntoID(); ok {
		_spec.SetField(candidate.FieldMergedIntoID, field.TypeUUID, value)
	}
	if _u.mutation.MergedIntoIDCleared() {
		_spec.ClearField(candidate.FieldMergedIntoID, field.TypeUUID)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(candidate.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(candidate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PipelineCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PipelineIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StageCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.NotesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNotesIDs(); len(nodes) > 0 && !_u.mutation.NotesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NotesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttachmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttachmentsIDs(); len(nodes) > 0 && !_u.mutation.AttachmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttachmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EmailLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEmailLogsIDs(); len(nodes) > 0 && !_u.mutation.EmailLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EmailLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CandidateTagsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCandidateTagsIDs(); len(nodes) > 0 && !_u.mutation.CandidateTagsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CandidateTagsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StageHistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStageHistoryIDs(); len(nodes) > 0 && !_u.mutation.StageHistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageHistoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ImportItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedImportItemsIDs(); len(nodes) > 0 && !_u.mutation.ImportItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImportItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{candidate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CandidateUpdateOne is the builder for updating a single Candidate entity.
type CandidateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CandidateMutation
}

// SetPipelineID sets the "pipeline_id" field.
func (_u *CandidateUpdateOne) SetPipelineID(v uuid.UUID) *CandidateUpdateOne {
	_u.mutation.SetPipelineID(v)
	return _u
}

// SetNillablePipelineID sets the "pipeline_id" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillablePipelineID(v *uuid.UUID) *CandidateUpdateOne {
	if v != nil {
		_u.SetPipelineID(*v)
	}
	return _u
}

// SetStageID sets the "stage_id" field.
func (_u *CandidateUpdateOne) SetStageID(v uuid.UUID) *CandidateUpdateOne {
	_u.mutation.SetStageID(v)
	return _u
}

// SetNillableStageID sets the "stage_id" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableStageID(v *uuid.UUID) *CandidateUpdateOne {
	if v != nil {
		_u.SetStageID(*v)
	}
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *CandidateUpdateOne) SetFullName(v string) *CandidateUpdateOne {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableFullName(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *CandidateUpdateOne) SetEmail(v string) *CandidateUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableEmail(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *CandidateUpdateOne) ClearEmail() *CandidateUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *CandidateUpdateOne) SetPhone(v string) *CandidateUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillablePhone(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *CandidateUpdateOne) ClearPhone() *CandidateUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetSource sets the "source" field.
func (_u *CandidateUpdateOne) SetSource(v string) *CandidateUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableSource(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *CandidateUpdateOne) SetExtractedText(v string) *CandidateUpdateOne {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableExtractedText(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (_u *CandidateUpdateOne) ClearExtractedText() *CandidateUpdateOne {
	_u.mutation.ClearExtractedText()
	return _u
}

// SetParsingConfidence sets the "parsing_confidence" field.
func (_u *CandidateUpdateOne) SetParsingConfidence(v int) *CandidateUpdateOne {
	_u.mutation.ResetParsingConfidence()
	_u.mutation.SetParsingConfidence(v)
	return _u
}

// SetNillableParsingConfidence sets the "parsing_confidence" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableParsingConfidence(v *int) *CandidateUpdateOne {
	if v != nil {
		_u.SetParsingConfidence(*v)
	}
	return _u
}

// AddParsingConfidence adds value to the "parsing_confidence" field.
func (_u *CandidateUpdateOne) AddParsingConfidence(v int) *CandidateUpdateOne {
	_u.mutation.AddParsingConfidence(v)
	return _u
}

// SetIsRejected sets the "is_rejected" field.
func (_u *CandidateUpdateOne) SetIsRejected(v bool) *CandidateUpdateOne {
	_u.mutation.SetIsRejected(v)
	return _u
}

// SetNillableIsRejected sets the "is_rejected" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableIsRejected(v *bool) *CandidateUpdateOne {
	if v != nil {
		_u.SetIsRejected(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *CandidateUpdateOne) SetDeletedAt(v time.Time) *CandidateUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableDeletedAt(v *time.Time) *CandidateUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *CandidateUpdateOne) ClearDeletedAt() *CandidateUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetMergedIntoID sets the "merged_into_id" field.
func (_u *CandidateUpdateOne) SetMergedIntoID(v uuid.UUID) *CandidateUpdateOne {
	_u.mutation.SetMergedIntoID(v)
	return _u
}

// SetNillableMergedIntoID sets the "merged_into_id" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableMergedIntoID(v *uuid.UUID) *CandidateUpdateOne {
	if v != nil {
		_u.SetMergedIntoID(*v)
	}
	return _u
}

// ClearMergedIntoID clears the value of the "merged_into_id" field.
func (_u *CandidateUpdateOne) ClearMergedIntoID() *CandidateUpdateOne {
	_u.mutation.ClearMergedIntoID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CandidateUpdateOne) SetCreatedAt(v time.Time) *CandidateUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableCreatedAt(v *time.Time) *CandidateUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CandidateUpdateOne) SetUpdatedAt(v time.Time) *CandidateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPipeline sets the "pipeline" edge to the Pipeline entity.
func (_u *CandidateUpdateOne) SetPipeline(v *Pipeline) *CandidateUpdateOne {
	return _u.SetPipelineID(v.ID)
}

// SetStage sets the "stage" edge to the Stage entity.
func (_u *CandidateUpdateOne) SetStage(v *Stage) *CandidateUpdateOne {
	return _u.SetStageID(v.ID)
}

// AddNoteIDs adds the "notes" edge to the Note entity by IDs.
func (_u *CandidateUpdateOne) AddNoteIDs(ids ...uuid.UUID) *CandidateUpdateOne {
	_u.mutation.AddNoteIDs(ids...)
	return _u
}

// AddNotes adds the "notes" edges to the Note entity.
func (_u *CandidateUpdateOne) AddNotes(v ...*Note) *CandidateUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNoteIDs(ids...)
}

// AddAttachmentIDs adds the "attachments" edge to the Attachment entity by IDs.
func (_u *CandidateUpdateOne) AddAttachmentIDs(ids ...uuid.UUID) *CandidateUpdateOne {
	_u.mutation.AddAttachmentIDs(ids...)
	return _u
}

// AddAttachments adds the "attachments" edges to the Attachment entity.
func (_u *CandidateUpdateOne) AddAttachments(v ...*Attachment) *CandidateUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttachmentIDs(ids...)
}

// AddEmailLogIDs adds the "email_logs" edge to the EmailLog entity by IDs.
func (_u *CandidateUpdateOne) AddEmailLogIDs(ids ...uuid.UUID) *CandidateUpdateOne {
	_u.mutation.AddEmailLogIDs(ids...)
	return _u
}

// AddEmailLogs adds the "email_logs" edges to the EmailLog entity.
func (_u *CandidateUpdateOne) AddEmailLogs(v ...*EmailLog) *CandidateUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEmailLogIDs(ids...)
}

// AddCandidateTagIDs adds the "candidate_tags" edge to the CandidateTag entity by IDs.
func (_u *CandidateUpdateOne) AddCandidateTagIDs(ids ...uuid.UUID) *CandidateUpdateOne {
	_u.mutation.AddCandidateTagIDs(ids...)
	return _u
}

// AddCandidateTags adds the "candidate_tags" edges to the CandidateTag entity.
func (_u *CandidateUpdateOne) AddCandidateTags(v ...*CandidateTag) *CandidateUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCandidateTagIDs(ids...)
}

// AddStageHistoryIDs adds the "stage_history" edge to the StageHistory entity by IDs.
func (_u *CandidateUpdateOne) AddStageHistoryIDs(ids ...uuid.UUID) *CandidateUpdateOne {
	_u.mutation.AddStageHistoryIDs(ids...)
	return _u
}

// AddStageHistory adds the "stage_history" edges to the StageHistory entity.
func (_u *CandidateUpdateOne) AddStageHistory(v ...*StageHistory) *CandidateUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageHistoryIDs(ids...)
}

// AddImportItemIDs adds the "import_items" edge to the ImportItem entity by IDs.
func (_u *CandidateUpdateOne) AddImportItemIDs(ids ...uuid.UUID) *CandidateUpdateOne {
	_u.mutation.AddImportItemIDs(ids...)
	return _u
}

// AddImportItems adds the "import_items" edges to the ImportItem entity.
func (_u *CandidateUpdateOne) AddImportItems(v ...*ImportItem) *CandidateUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddImportItemIDs(ids...)
}

// Mutation returns the CandidateMutation object of the builder.
func (_u *CandidateUpdateOne) Mutation() *CandidateMutation {
	return _u.mutation
}

// ClearPipeline clears the "pipeline" edge to the Pipeline entity.
func (_u *CandidateUpdateOne) ClearPipeline() *CandidateUpdateOne {
	_u.mutation.ClearPipeline()
	return _u
}

// ClearStage clears the "stage" edge to the Stage entity.
func (_u *CandidateUpdateOne) ClearStage() *CandidateUpdateOne {
	_u.mutation.ClearStage()
	return _u
}

// ClearNotes clears all "notes" edges to the Note entity.
func (_u *CandidateUpdateOne) ClearNotes() *CandidateUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// RemoveNoteIDs removes the "notes" edge to Note entities by IDs.
func (_u *CandidateUpdateOne) RemoveNoteIDs(ids ...uuid.UUID) *CandidateUpdateOne {
	_u.mutation.RemoveNoteIDs(ids...)
	return _u
}

// RemoveNotes removes "notes" edges to Note entities.
func (_u *CandidateUpdateOne) RemoveNotes(v ...*Note) *CandidateUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNoteIDs(ids...)
}

// ClearAttachments clears all "attachments" edges to the Attachment entity.
func (_u *CandidateUpdateOne) ClearAttachments() *CandidateUpdateOne {
	_u.mutation.ClearAttachments()
	return _u
}

// RemoveAttachmentIDs removes the "attachments" edge to Attachment entities by IDs.
func (_u *CandidateUpdateOne) RemoveAttachmentIDs(ids ...uuid.UUID) *CandidateUpdateOne {
	_u.mutation.RemoveAttachmentIDs(ids...)
	return _u
}

// RemoveAttachments removes "attachments" edges to Attachment entities.
func (_u *CandidateUpdateOne) RemoveAttachments(v ...*Attachment) *CandidateUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttachmentIDs(ids...)
}

// ClearEmailLogs clears all "email_logs" edges to the EmailLog entity.
func (_u *CandidateUpdateOne) ClearEmailLogs() *CandidateUpdateOne {
	_u.mutation.ClearEmailLogs()
	return _u
}

// RemoveEmailLogIDs removes the "email_logs" edge to EmailLog entities by IDs.
func (_u *CandidateUpdateOne) RemoveEmailLogIDs(ids ...uuid.UUID) *CandidateUpdateOne {
	_u.mutation.RemoveEmailLogIDs(ids...)
	return _u
}

// RemoveEmailLogs removes "email_logs" edges to EmailLog entities.
func (_u *CandidateUpdateOne) RemoveEmailLogs(v ...*EmailLog) *CandidateUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEmailLogIDs(ids...)
}

// ClearCandidateTags clears all "candidate_tags" edges to the CandidateTag entity.
func (_u *CandidateUpdateOne) ClearCandidateTags() *CandidateUpdateOne {
	_u.mutation.ClearCandidateTags()
	return _u
}

// RemoveCandidateTagIDs removes the "candidate_tags" edge to CandidateTag entities by IDs.
func (_u *CandidateUpdateOne) RemoveCandidateTagIDs(ids ...uuid.UUID) *CandidateUpdateOne {
	_u.mutation.RemoveCandidateTagIDs(ids...)
	return _u
}

// RemoveCandidateTags removes "candidate_tags" edges to CandidateTag entities.
func (_u *CandidateUpdateOne) RemoveCandidateTags(v ...*CandidateTag) *CandidateUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCandidateTagIDs(ids...)
}

// ClearStageHistory clears all "stage_history" edges to the StageHistory entity.
func (_u *CandidateUpdateOne) ClearStageHistory() *CandidateUpdateOne {
	_u.mutation.ClearStageHistory()
	return _u
}

// RemoveStageHistoryIDs removes the "stage_history" edge to StageHistory entities by IDs.
func (_u *CandidateUpdateOne) RemoveStageHistoryIDs(ids ...uuid.UUID) *CandidateUpdateOne {
	_u.mutation.RemoveStageHistoryIDs(ids...)
	return _u
}

// RemoveStageHistory removes "stage_history" edges to StageHistory entities.
func (_u *CandidateUpdateOne) RemoveStageHistory(v ...*StageHistory) *CandidateUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageHistoryIDs(ids...)
}

// ClearImportItems clears all "import_items" edges to the ImportItem entity.
func (_u *CandidateUpdateOne) ClearImportItems() *CandidateUpdateOne {
	_u.mutation.ClearImportItems()
	return _u
}

// RemoveImportItemIDs removes the "import_items" edge to ImportItem entities by IDs.
func (_u *CandidateUpdateOne) RemoveImportItemIDs(ids ...uuid.UUID) *CandidateUpdateOne {
	_u.mutation.RemoveImportItemIDs(ids...)
	return _u
}

// RemoveImportItems removes "import_items" edges to ImportItem entities.
func (_u *CandidateUpdateOne) RemoveImportItems(v ...*ImportItem) *CandidateUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveImportItemIDs(ids...)
}

// Where appends a list predicates to the CandidateUpdate builder.
func (_u *CandidateUpdateOne) Where(ps ...predicate.Candidate) *CandidateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CandidateUpdateOne) Select(field string, fields ...string) *CandidateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Candidate entity.
func (_u *CandidateUpdateOne) Save(ctx context.Context) (*Candidate, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CandidateUpdateOne) SaveX(ctx context.Context) *Candidate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CandidateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CandidateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CandidateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := candidate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CandidateUpdateOne) check() error {
	if v, ok := _u.mutation.FullName(); ok {
		if err := candidate.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`ent: validator failed for field "Candidate.full_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := candidate.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Candidate.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ParsingConfidence(); ok {
		if err := candidate.ParsingConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "parsing_confidence", err: fmt.Errorf(`ent: validator failed for field "Candidate.parsing_confidence": %w`, err)}
		}
	}
	if _u.mutation.PipelineCleared() && len(_u.mutation.PipelineIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Candidate.pipeline"`)
	}
	if _u.mutation.StageCleared() && len(_u.mutation.StageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Candidate.stage"`)
	}
	return nil
}

func (_u *CandidateUpdateOne) sqlSave(ctx context.Context) (_node *Candidate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(candidate.Table, candidate.Columns, sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Candidate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, candidate.FieldID)
		for _, f := range fields {
			if !candidate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != candidate.FieldID {
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
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(candidate.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(candidate.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(candidate.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(candidate.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(candidate.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(candidate.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(candidate.FieldExtractedText, field.TypeString, value)
	}
	if _u.mutation.ExtractedTextCleared() {
		_spec.ClearField(candidate.FieldExtractedText, field.TypeString)
	}
	if value, ok := _u.mutation.ParsingConfidence(); ok {
		_spec.SetField(candidate.FieldParsingConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedParsingConfidence(); ok {
		_spec.AddField(candidate.FieldParsingConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsRejected(); ok {
		_spec.SetField(candidate.FieldIsRejected, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(candidate.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(candidate.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.MergedIntoID(); ok {
		_spec.SetField(candidate.FieldMergedIntoID, field.TypeUUID, value)
	}
	if _u.mutation.MergedIntoIDCleared() {
		_spec.ClearField(candidate.FieldMergedIntoID, field.TypeUUID)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(candidate.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(candidate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PipelineCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PipelineIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StageCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.NotesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNotesIDs(); len(nodes) > 0 && !_u.mutation.NotesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NotesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttachmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttachmentsIDs(); len(nodes) > 0 && !_u.mutation.AttachmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttachmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EmailLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEmailLogsIDs(); len(nodes) > 0 && !_u.mutation.EmailLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EmailLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CandidateTagsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCandidateTagsIDs(); len(nodes) > 0 && !_u.mutation.CandidateTagsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CandidateTagsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StageHistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStageHistoryIDs(); len(nodes) > 0 && !_u.mutation.StageHistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageHistoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ImportItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedImportItemsIDs(); len(nodes) > 0 && !_u.mutation.ImportItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImportItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Candidate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{candidate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
