// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/talentops/recruit-crm/db/ent/schema"
	"github.com/talentops/recruit-crm/gen/ent/attachment"
	"github.com/talentops/recruit-crm/gen/ent/auditlog"
	"github.com/talentops/recruit-crm/gen/ent/candidate"
	"github.com/talentops/recruit-crm/gen/ent/candidatetag"
	"github.com/talentops/recruit-crm/gen/ent/emaillog"
	"github.com/talentops/recruit-crm/gen/ent/importbatch"
	"github.com/talentops/recruit-crm/gen/ent/importitem"
	"github.com/talentops/recruit-crm/gen/ent/mergelog"
	"github.com/talentops/recruit-crm/gen/ent/note"
	"github.com/talentops/recruit-crm/gen/ent/pipeline"
	"github.com/talentops/recruit-crm/gen/ent/stage"
	"github.com/talentops/recruit-crm/gen/ent/stagehistory"
	"github.com/talentops/recruit-crm/gen/ent/tag"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attachmentFields := schema.Attachment{}.Fields()
	_ = attachmentFields
	// attachmentDescFilename is the schema descriptor for filename field.
	attachmentDescFilename := attachmentFields[2].Descriptor()
	// attachment.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	attachment.FilenameValidator = attachmentDescFilename.Validators[0].(func(string) error)
	// attachmentDescStorageKey is the schema descriptor for storage_key field.
	attachmentDescStorageKey := attachmentFields[3].Descriptor()
	// attachment.StorageKeyValidator is a validator for the "storage_key" field. It is called by the builders before save.
	attachment.StorageKeyValidator = attachmentDescStorageKey.Validators[0].(func(string) error)
	// attachmentDescContentType is the schema descriptor for content_type field.
	attachmentDescContentType := attachmentFields[4].Descriptor()
	// attachment.ContentTypeValidator is a validator for the "content_type" field. It is called by the builders before save.
	attachment.ContentTypeValidator = attachmentDescContentType.Validators[0].(func(string) error)
	// attachmentDescFileSize is the schema descriptor for file_size field.
	attachmentDescFileSize := attachmentFields[5].Descriptor()
	// attachment.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	attachment.FileSizeValidator = attachmentDescFileSize.Validators[0].(func(int) error)
	// attachmentDescUploadedAt is the schema descriptor for uploaded_at field.
	attachmentDescUploadedAt := attachmentFields[6].Descriptor()
	// attachment.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	attachment.DefaultUploadedAt = attachmentDescUploadedAt.Default.(func() time.Time)
	// attachmentDescID is the schema descriptor for id field.
	attachmentDescID := attachmentFields[0].Descriptor()
	// attachment.DefaultID holds the default value on creation for the id field.
	attachment.DefaultID = attachmentDescID.Default.(func() uuid.UUID)
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescAction is the schema descriptor for action field.
	auditlogDescAction := auditlogFields[1].Descriptor()
	// auditlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditlog.ActionValidator = auditlogDescAction.Validators[0].(func(string) error)
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogFields[4].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	// auditlogDescID is the schema descriptor for id field.
	auditlogDescID := auditlogFields[0].Descriptor()
	// auditlog.DefaultID holds the default value on creation for the id field.
	auditlog.DefaultID = auditlogDescID.Default.(func() uuid.UUID)
	candidateFields := schema.Candidate{}.Fields()
	_ = candidateFields
	// candidateDescFullName is the schema descriptor for full_name field.
	candidateDescFullName := candidateFields[3].Descriptor()
	// candidate.FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	candidate.FullNameValidator = candidateDescFullName.Validators[0].(func(string) error)
	// candidateDescSource is the schema descriptor for source field.
	candidateDescSource := candidateFields[6].Descriptor()
	// candidate.DefaultSource holds the default value on creation for the source field.
	candidate.DefaultSource = candidateDescSource.Default.(string)
	// candidate.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	candidate.SourceValidator = candidateDescSource.Validators[0].(func(string) error)
	// candidateDescParsingConfidence is the schema descriptor for parsing_confidence field.
	candidateDescParsingConfidence := candidateFields[8].Descriptor()
	// candidate.DefaultParsingConfidence holds the default value on creation for the parsing_confidence field.
	candidate.DefaultParsingConfidence = candidateDescParsingConfidence.Default.(int)
	// candidate.ParsingConfidenceValidator is a validator for the "parsing_confidence" field. It is called by the builders before save.
	candidate.ParsingConfidenceValidator = func() func(int) error {
		validators := candidateDescParsingConfidence.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(parsing_confidence int) error {
			for _, fn := range fns {
				if err := fn(parsing_confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// candidateDescIsRejected is the schema descriptor for is_rejected field.
	candidateDescIsRejected := candidateFields[9].Descriptor()
	// candidate.DefaultIsRejected holds the default value on creation for the is_rejected field.
	candidate.DefaultIsRejected = candidateDescIsRejected.Default.(bool)
	// candidateDescCreatedAt is the schema descriptor for created_at field.
	candidateDescCreatedAt := candidateFields[12].Descriptor()
	// candidate.DefaultCreatedAt holds the default value on creation for the created_at field.
	candidate.DefaultCreatedAt = candidateDescCreatedAt.Default.(func() time.Time)
	// candidateDescUpdatedAt is the schema descriptor for updated_at field.
	candidateDescUpdatedAt := candidateFields[13].Descriptor()
	// candidate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	candidate.DefaultUpdatedAt = candidateDescUpdatedAt.Default.(func() time.Time)
	// candidate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	candidate.UpdateDefaultUpdatedAt = candidateDescUpdatedAt.UpdateDefault.(func() time.Time)
	// candidateDescID is the schema descriptor for id field.
	candidateDescID := candidateFields[0].Descriptor()
	// candidate.DefaultID holds the default value on creation for the id field.
	candidate.DefaultID = candidateDescID.Default.(func() uuid.UUID)
	candidatetagFields := schema.CandidateTag{}.Fields()
	_ = candidatetagFields
	// candidatetagDescCreatedAt is the schema descriptor for created_at field.
	candidatetagDescCreatedAt := candidatetagFields[3].Descriptor()
	// candidatetag.DefaultCreatedAt holds the default value on creation for the created_at field.
	candidatetag.DefaultCreatedAt = candidatetagDescCreatedAt.Default.(func() time.Time)
	// candidatetagDescID is the schema descriptor for id field.
	candidatetagDescID := candidatetagFields[0].Descriptor()
	// candidatetag.DefaultID holds the default value on creation for the id field.
	candidatetag.DefaultID = candidatetagDescID.Default.(func() uuid.UUID)
	emaillogFields := schema.EmailLog{}.Fields()
	_ = emaillogFields
	// emaillogDescSubject is the schema descriptor for subject field.
	emaillogDescSubject := emaillogFields[2].Descriptor()
	// emaillog.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	emaillog.SubjectValidator = emaillogDescSubject.Validators[0].(func(string) error)
	// emaillogDescSentAt is the schema descriptor for sent_at field.
	emaillogDescSentAt := emaillogFields[5].Descriptor()
	// emaillog.DefaultSentAt holds the default value on creation for the sent_at field.
	emaillog.DefaultSentAt = emaillogDescSentAt.Default.(func() time.Time)
	// emaillogDescID is the schema descriptor for id field.
	emaillogDescID := emaillogFields[0].Descriptor()
	// emaillog.DefaultID holds the default value on creation for the id field.
	emaillog.DefaultID = emaillogDescID.Default.(func() uuid.UUID)
	importbatchFields := schema.ImportBatch{}.Fields()
	_ = importbatchFields
	// importbatchDescStatus is the schema descriptor for status field.
	importbatchDescStatus := importbatchFields[3].Descriptor()
	// importbatch.DefaultStatus holds the default value on creation for the status field.
	importbatch.DefaultStatus = importbatchDescStatus.Default.(string)
	// importbatch.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	importbatch.StatusValidator = importbatchDescStatus.Validators[0].(func(string) error)
	// importbatchDescTotalFiles is the schema descriptor for total_files field.
	importbatchDescTotalFiles := importbatchFields[4].Descriptor()
	// importbatch.DefaultTotalFiles holds the default value on creation for the total_files field.
	importbatch.DefaultTotalFiles = importbatchDescTotalFiles.Default.(int)
	// importbatch.TotalFilesValidator is a validator for the "total_files" field. It is called by the builders before save.
	importbatch.TotalFilesValidator = importbatchDescTotalFiles.Validators[0].(func(int) error)
	// importbatchDescProcessedCount is the schema descriptor for processed_count field.
	importbatchDescProcessedCount := importbatchFields[5].Descriptor()
	// importbatch.DefaultProcessedCount holds the default value on creation for the processed_count field.
	importbatch.DefaultProcessedCount = importbatchDescProcessedCount.Default.(int)
	// importbatch.ProcessedCountValidator is a validator for the "processed_count" field. It is called by the builders before save.
	importbatch.ProcessedCountValidator = importbatchDescProcessedCount.Validators[0].(func(int) error)
	// importbatchDescSuccessCount is the schema descriptor for success_count field.
	importbatchDescSuccessCount := importbatchFields[6].Descriptor()
	// importbatch.DefaultSuccessCount holds the default value on creation for the success_count field.
	importbatch.DefaultSuccessCount = importbatchDescSuccessCount.Default.(int)
	// importbatch.SuccessCountValidator is a validator for the "success_count" field. It is called by the builders before save.
	importbatch.SuccessCountValidator = importbatchDescSuccessCount.Validators[0].(func(int) error)
	// importbatchDescFailedCount is the schema descriptor for failed_count field.
	importbatchDescFailedCount := importbatchFields[7].Descriptor()
	// importbatch.DefaultFailedCount holds the default value on creation for the failed_count field.
	importbatch.DefaultFailedCount = importbatchDescFailedCount.Default.(int)
	// importbatch.FailedCountValidator is a validator for the "failed_count" field. It is called by the builders before save.
	importbatch.FailedCountValidator = importbatchDescFailedCount.Validators[0].(func(int) error)
	// importbatchDescDefaultCountryCode is the schema descriptor for default_country_code field.
	importbatchDescDefaultCountryCode := importbatchFields[8].Descriptor()
	// importbatch.DefaultDefaultCountryCode holds the default value on creation for the default_country_code field.
	importbatch.DefaultDefaultCountryCode = importbatchDescDefaultCountryCode.Default.(string)
	// importbatch.DefaultCountryCodeValidator is a validator for the "default_country_code" field. It is called by the builders before save.
	importbatch.DefaultCountryCodeValidator = importbatchDescDefaultCountryCode.Validators[0].(func(string) error)
	// importbatchDescCreatedAt is the schema descriptor for created_at field.
	importbatchDescCreatedAt := importbatchFields[9].Descriptor()
	// importbatch.DefaultCreatedAt holds the default value on creation for the created_at field.
	importbatch.DefaultCreatedAt = importbatchDescCreatedAt.Default.(func() time.Time)
	// importbatchDescID is the schema descriptor for id field.
	importbatchDescID := importbatchFields[0].Descriptor()
	// importbatch.DefaultID holds the default value on creation for the id field.
	importbatch.DefaultID = importbatchDescID.Default.(func() uuid.UUID)
	importitemFields := schema.ImportItem{}.Fields()
	_ = importitemFields
	// importitemDescFilename is the schema descriptor for filename field.
	importitemDescFilename := importitemFields[3].Descriptor()
	// importitem.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	importitem.FilenameValidator = importitemDescFilename.Validators[0].(func(string) error)
	// importitemDescStorageKey is the schema descriptor for storage_key field.
	importitemDescStorageKey := importitemFields[4].Descriptor()
	// importitem.StorageKeyValidator is a validator for the "storage_key" field. It is called by the builders before save.
	importitem.StorageKeyValidator = importitemDescStorageKey.Validators[0].(func(string) error)
	// importitemDescContentType is the schema descriptor for content_type field.
	importitemDescContentType := importitemFields[5].Descriptor()
	// importitem.ContentTypeValidator is a validator for the "content_type" field. It is called by the builders before save.
	importitem.ContentTypeValidator = importitemDescContentType.Validators[0].(func(string) error)
	// importitemDescFileSize is the schema descriptor for file_size field.
	importitemDescFileSize := importitemFields[6].Descriptor()
	// importitem.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	importitem.FileSizeValidator = importitemDescFileSize.Validators[0].(func(int) error)
	// importitemDescStatus is the schema descriptor for status field.
	importitemDescStatus := importitemFields[7].Descriptor()
	// importitem.DefaultStatus holds the default value on creation for the status field.
	importitem.DefaultStatus = importitemDescStatus.Default.(string)
	// importitem.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	importitem.StatusValidator = importitemDescStatus.Validators[0].(func(string) error)
	// importitemDescCreatedAt is the schema descriptor for created_at field.
	importitemDescCreatedAt := importitemFields[11].Descriptor()
	// importitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	importitem.DefaultCreatedAt = importitemDescCreatedAt.Default.(func() time.Time)
	// importitemDescID is the schema descriptor for id field.
	importitemDescID := importitemFields[0].Descriptor()
	// importitem.DefaultID holds the default value on creation for the id field.
	importitem.DefaultID = importitemDescID.Default.(func() uuid.UUID)
	mergelogFields := schema.MergeLog{}.Fields()
	_ = mergelogFields
	// mergelogDescCreatedAt is the schema descriptor for created_at field.
	mergelogDescCreatedAt := mergelogFields[4].Descriptor()
	// mergelog.DefaultCreatedAt holds the default value on creation for the created_at field.
	mergelog.DefaultCreatedAt = mergelogDescCreatedAt.Default.(func() time.Time)
	// mergelogDescID is the schema descriptor for id field.
	mergelogDescID := mergelogFields[0].Descriptor()
	// mergelog.DefaultID holds the default value on creation for the id field.
	mergelog.DefaultID = mergelogDescID.Default.(func() uuid.UUID)
	noteFields := schema.Note{}.Fields()
	_ = noteFields
	// noteDescBody is the schema descriptor for body field.
	noteDescBody := noteFields[2].Descriptor()
	// note.BodyValidator is a validator for the "body" field. It is called by the builders before save.
	note.BodyValidator = noteDescBody.Validators[0].(func(string) error)
	// noteDescCreatedAt is the schema descriptor for created_at field.
	noteDescCreatedAt := noteFields[4].Descriptor()
	// note.DefaultCreatedAt holds the default value on creation for the created_at field.
	note.DefaultCreatedAt = noteDescCreatedAt.Default.(func() time.Time)
	// noteDescID is the schema descriptor for id field.
	noteDescID := noteFields[0].Descriptor()
	// note.DefaultID holds the default value on creation for the id field.
	note.DefaultID = noteDescID.Default.(func() uuid.UUID)
	pipelineFields := schema.Pipeline{}.Fields()
	_ = pipelineFields
	// pipelineDescName is the schema descriptor for name field.
	pipelineDescName := pipelineFields[1].Descriptor()
	// pipeline.NameValidator is a validator for the "name" field. It is called by the builders before save.
	pipeline.NameValidator = pipelineDescName.Validators[0].(func(string) error)
	// pipelineDescCreatedAt is the schema descriptor for created_at field.
	pipelineDescCreatedAt := pipelineFields[2].Descriptor()
	// pipeline.DefaultCreatedAt holds the default value on creation for the created_at field.
	pipeline.DefaultCreatedAt = pipelineDescCreatedAt.Default.(func() time.Time)
	// pipelineDescUpdatedAt is the schema descriptor for updated_at field.
	pipelineDescUpdatedAt := pipelineFields[3].Descriptor()
	// pipeline.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	pipeline.DefaultUpdatedAt = pipelineDescUpdatedAt.Default.(func() time.Time)
	// pipeline.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	pipeline.UpdateDefaultUpdatedAt = pipelineDescUpdatedAt.UpdateDefault.(func() time.Time)
	// pipelineDescID is the schema descriptor for id field.
	pipelineDescID := pipelineFields[0].Descriptor()
	// pipeline.DefaultID holds the default value on creation for the id field.
	pipeline.DefaultID = pipelineDescID.Default.(func() uuid.UUID)
	stageFields := schema.Stage{}.Fields()
	_ = stageFields
	// stageDescName is the schema descriptor for name field.
	stageDescName := stageFields[2].Descriptor()
	// stage.NameValidator is a validator for the "name" field. It is called by the builders before save.
	stage.NameValidator = stageDescName.Validators[0].(func(string) error)
	// stageDescOrderIndex is the schema descriptor for order_index field.
	stageDescOrderIndex := stageFields[3].Descriptor()
	// stage.OrderIndexValidator is a validator for the "order_index" field. It is called by the builders before save.
	stage.OrderIndexValidator = stageDescOrderIndex.Validators[0].(func(int) error)
	// stageDescIsDefault is the schema descriptor for is_default field.
	stageDescIsDefault := stageFields[4].Descriptor()
	// stage.DefaultIsDefault holds the default value on creation for the is_default field.
	stage.DefaultIsDefault = stageDescIsDefault.Default.(bool)
	// stageDescCreatedAt is the schema descriptor for created_at field.
	stageDescCreatedAt := stageFields[5].Descriptor()
	// stage.DefaultCreatedAt holds the default value on creation for the created_at field.
	stage.DefaultCreatedAt = stageDescCreatedAt.Default.(func() time.Time)
	// stageDescID is the schema descriptor for id field.
	stageDescID := stageFields[0].Descriptor()
	// stage.DefaultID holds the default value on creation for the id field.
	stage.DefaultID = stageDescID.Default.(func() uuid.UUID)
	stagehistoryFields := schema.StageHistory{}.Fields()
	_ = stagehistoryFields
	// stagehistoryDescMovedAt is the schema descriptor for moved_at field.
	stagehistoryDescMovedAt := stagehistoryFields[5].Descriptor()
	// stagehistory.DefaultMovedAt holds the default value on creation for the moved_at field.
	stagehistory.DefaultMovedAt = stagehistoryDescMovedAt.Default.(func() time.Time)
	// stagehistoryDescID is the schema descriptor for id field.
	stagehistoryDescID := stagehistoryFields[0].Descriptor()
	// stagehistory.DefaultID holds the default value on creation for the id field.
	stagehistory.DefaultID = stagehistoryDescID.Default.(func() uuid.UUID)
	tagFields := schema.Tag{}.Fields()
	_ = tagFields
	// tagDescName is the schema descriptor for name field.
	tagDescName := tagFields[1].Descriptor()
	// tag.NameValidator is a validator for the "name" field. It is called by the builders before save.
	tag.NameValidator = tagDescName.Validators[0].(func(string) error)
	// tagDescColor is the schema descriptor for color field.
	tagDescColor := tagFields[2].Descriptor()
	// tag.DefaultColor holds the default value on creation for the color field.
	tag.DefaultColor = tagDescColor.Default.(string)
	// tagDescCreatedAt is the schema descriptor for created_at field.
	tagDescCreatedAt := tagFields[3].Descriptor()
	// tag.DefaultCreatedAt holds the default value on creation for the created_at field.
	tag.DefaultCreatedAt = tagDescCreatedAt.Default.(func() time.Time)
	// tagDescID is the schema descriptor for id field.
	tagDescID := tagFields[0].Descriptor()
	// tag.DefaultID holds the default value on creation for the id field.
	tag.DefaultID = tagDescID.Default.(func() uuid.UUID)
}
