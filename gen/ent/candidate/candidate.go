// Code generated by ent, DO NOT EDIT.

package candidate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the candidate type in the database.
	Label = "candidate"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPipelineID holds the string denoting the pipeline_id field in the database.
	FieldPipelineID = "pipeline_id"
	// FieldStageID holds the string denoting the stage_id field in the database.
	FieldStageID = "stage_id"
	// FieldFullName holds the string denoting the full_name field in the database.
	FieldFullName = "full_name"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldExtractedText holds the string denoting the extracted_text field in the database.
	FieldExtractedText = "extracted_text"
	// FieldParsingConfidence holds the string denoting the parsing_confidence field in the database.
	FieldParsingConfidence = "parsing_confidence"
	// FieldIsRejected holds the string denoting the is_rejected field in the database.
	FieldIsRejected = "is_rejected"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldMergedIntoID holds the string denoting the merged_into_id field in the database.
	FieldMergedIntoID = "merged_into_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgePipeline holds the string denoting the pipeline edge name in mutations.
	EdgePipeline = "pipeline"
	// EdgeStage holds the string denoting the stage edge name in mutations.
	EdgeStage = "stage"
	// EdgeNotes holds the string denoting the notes edge name in mutations.
	EdgeNotes = "notes"
	// EdgeAttachments holds the string denoting the attachments edge name in mutations.
	EdgeAttachments = "attachments"
	// EdgeEmailLogs holds the string denoting the email_logs edge name in mutations.
	EdgeEmailLogs = "email_logs"
	// EdgeCandidateTags holds the string denoting the candidate_tags edge name in mutations.
	EdgeCandidateTags = "candidate_tags"
	// EdgeStageHistory holds the string denoting the stage_history edge name in mutations.
	EdgeStageHistory = "stage_history"
	// EdgeImportItems holds the string denoting the import_items edge name in mutations.
	EdgeImportItems = "import_items"
	// Table holds the table name of the candidate in the database.
	Table = "candidates"
	// PipelineTable is the table that holds the pipeline relation/edge.
	PipelineTable = "candidates"
	// PipelineInverseTable is the table name for the Pipeline entity.
	// It exists in this package in order to avoid circular dependency with the "pipeline" package.
	PipelineInverseTable = "pipelines"
	// PipelineColumn is the table column denoting the pipeline relation/edge.
	PipelineColumn = "pipeline_id"
	// StageTable is the table that holds the stage relation/edge.
	StageTable = "candidates"
	// StageInverseTable is the table name for the Stage entity.
	// It exists in this package in order to avoid circular dependency with the "stage" package.
	StageInverseTable = "stages"
	// StageColumn is the table column denoting the stage relation/edge.
	StageColumn = "stage_id"
	// NotesTable is the table that holds the notes relation/edge.
	NotesTable = "notes"
	// NotesInverseTable is the table name for the Note entity.
	// It exists in this package in order to avoid circular dependency with the "note" package.
	NotesInverseTable = "notes"
	// NotesColumn is the table column denoting the notes relation/edge.
	NotesColumn = "candidate_id"
	// AttachmentsTable is the table that holds the attachments relation/edge.
	AttachmentsTable = "attachments"
	// AttachmentsInverseTable is the table name for the Attachment entity.
	// It exists in this package in order to avoid circular dependency with the "attachment" package.
	AttachmentsInverseTable = "attachments"
	// AttachmentsColumn is the table column denoting the attachments relation/edge.
	AttachmentsColumn = "candidate_id"
	// EmailLogsTable is the table that holds the email_logs relation/edge.
	EmailLogsTable = "email_logs"
	// EmailLogsInverseTable is the table name for the EmailLog entity.
	// It exists in this package in order to avoid circular dependency with the "emaillog" package.
	EmailLogsInverseTable = "email_logs"
	// EmailLogsColumn is the table column denoting the email_logs relation/edge.
	EmailLogsColumn = "candidate_id"
	// CandidateTagsTable is the table that holds the candidate_tags relation/edge.
	CandidateTagsTable = "candidate_tags"
	// CandidateTagsInverseTable is the table name for the CandidateTag entity.
	// It exists in this package in order to avoid circular dependency with the "candidatetag" package.
	CandidateTagsInverseTable = "candidate_tags"
	// CandidateTagsColumn is the table column denoting the candidate_tags relation/edge.
	CandidateTagsColumn = "candidate_id"
	// StageHistoryTable is the table that holds the stage_history relation/edge.
	StageHistoryTable = "candidate_stage_history"
	// StageHistoryInverseTable is the table name for the StageHistory entity.
	// It exists in this package in order to avoid circular dependency with the "stagehistory" package.
	StageHistoryInverseTable = "candidate_stage_history"
	// StageHistoryColumn is the table column denoting the stage_history relation/edge.
	StageHistoryColumn = "candidate_id"
	// ImportItemsTable is the table that holds the import_items relation/edge.
	ImportItemsTable = "import_items"
	// ImportItemsInverseTable is the table name for the ImportItem entity.
	// It exists in this package in order to avoid circular dependency with the "importitem" package.
	ImportItemsInverseTable = "import_items"
	// ImportItemsColumn is the table column denoting the import_items relation/edge.
	ImportItemsColumn = "candidate_id"
)

// Columns holds all SQL columns for candidate fields.
var Columns = []string{
	FieldID,
	FieldPipelineID,
	FieldStageID,
	FieldFullName,
	FieldEmail,
	FieldPhone,
	FieldSource,
	FieldExtractedText,
	FieldParsingConfidence,
	FieldIsRejected,
	FieldDeletedAt,
	FieldMergedIntoID,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	FullNameValidator func(string) error
	// DefaultSource holds the default value on creation for the "source" field.
	DefaultSource string
	// SourceValidator is a validator for the "source" field. It is called by the builders before save.
	SourceValidator func(string) error
	// DefaultParsingConfidence holds the default value on creation for the "parsing_confidence" field.
	DefaultParsingConfidence int
	// ParsingConfidenceValidator is a validator for the "parsing_confidence" field. It is called by the builders before save.
	ParsingConfidenceValidator func(int) error
	// DefaultIsRejected holds the default value on creation for the "is_rejected" field.
	DefaultIsRejected bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Candidate queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPipelineID orders the results by the pipeline_id field.
func ByPipelineID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPipelineID, opts...).ToFunc()
}

// ByStageID orders the results by the stage_id field.
func ByStageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageID, opts...).ToFunc()
}

// ByFullName orders the results by the full_name field.
func ByFullName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFullName, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByExtractedText orders the results by the extracted_text field.
func ByExtractedText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedText, opts...).ToFunc()
}

// ByParsingConfidence orders the results by the parsing_confidence field.
func ByParsingConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParsingConfidence, opts...).ToFunc()
}

// ByIsRejected orders the results by the is_rejected field.
func ByIsRejected(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsRejected, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByMergedIntoID orders the results by the merged_into_id field.
func ByMergedIntoID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMergedIntoID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByPipelineField orders the results by pipeline field.
func ByPipelineField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPipelineStep(), sql.OrderByField(field, opts...))
	}
}

// ByStageField orders the results by stage field.
func ByStageField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStageStep(), sql.OrderByField(field, opts...))
	}
}

// ByNotesCount orders the results by notes count.
func ByNotesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newNotesStep(), opts...)
	}
}

// ByNotes orders the results by notes terms.
func ByNotes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newNotesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAttachmentsCount orders the results by attachments count.
func ByAttachmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAttachmentsStep(), opts...)
	}
}

// ByAttachments orders the results by attachments terms.
func ByAttachments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAttachmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEmailLogsCount orders the results by email_logs count.
func ByEmailLogsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEmailLogsStep(), opts...)
	}
}

// ByEmailLogs orders the results by email_logs terms.
func ByEmailLogs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEmailLogsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCandidateTagsCount orders the results by candidate_tags count.
func ByCandidateTagsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCandidateTagsStep(), opts...)
	}
}

// ByCandidateTags orders the results by candidate_tags terms.
func ByCandidateTags(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCandidateTagsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByStageHistoryCount orders the results by stage_history count.
func ByStageHistoryCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStageHistoryStep(), opts...)
	}
}

// ByStageHistory orders the results by stage_history terms.
func ByStageHistory(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStageHistoryStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByImportItemsCount orders the results by import_items count.
func ByImportItemsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newImportItemsStep(), opts...)
	}
}

// ByImportItems orders the results by import_items terms.
func ByImportItems(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newImportItemsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newPipelineStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PipelineInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PipelineTable, PipelineColumn),
	)
}
func newStageStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StageInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, StageTable, StageColumn),
	)
}
func newNotesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(NotesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, NotesTable, NotesColumn),
	)
}
func newAttachmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AttachmentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AttachmentsTable, AttachmentsColumn),
	)
}
func newEmailLogsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EmailLogsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EmailLogsTable, EmailLogsColumn),
	)
}
func newCandidateTagsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CandidateTagsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CandidateTagsTable, CandidateTagsColumn),
	)
}
func newStageHistoryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StageHistoryInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StageHistoryTable, StageHistoryColumn),
	)
}
func newImportItemsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ImportItemsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ImportItemsTable, ImportItemsColumn),
	)
}
