// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttachmentsColumns holds the columns for the "attachments" table.
	AttachmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "storage_key", Type: field.TypeString},
		{Name: "content_type", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "candidate_id", Type: field.TypeUUID},
	}
	// AttachmentsTable holds the schema information for the "attachments" table.
	AttachmentsTable = &schema.Table{
		Name:       "attachments",
		Columns:    AttachmentsColumns,
		PrimaryKey: []*schema.Column{AttachmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "attachments_candidates_attachments",
				Columns:    []*schema.Column{AttachmentsColumns[6]},
				RefColumns: []*schema.Column{CandidatesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "attachment_candidate_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{AttachmentsColumns[6], AttachmentsColumns[5]},
			},
		},
	}
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "action", Type: field.TypeString},
		{Name: "actor_id", Type: field.TypeUUID, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_action_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1], AuditLogsColumns[4]},
			},
		},
	}
	// CandidatesColumns holds the columns for the "candidates" table.
	CandidatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "full_name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "source", Type: field.TypeString, Default: "manual"},
		{Name: "extracted_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "parsing_confidence", Type: field.TypeInt, Default: 0},
		{Name: "is_rejected", Type: field.TypeBool, Default: false},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "merged_into_id", Type: field.TypeUUID, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "pipeline_id", Type: field.TypeUUID},
		{Name: "stage_id", Type: field.TypeUUID},
	}
	// CandidatesTable holds the schema information for the "candidates" table.
	CandidatesTable = &schema.Table{
		Name:       "candidates",
		Columns:    CandidatesColumns,
		PrimaryKey: []*schema.Column{CandidatesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "candidates_pipelines_candidates",
				Columns:    []*schema.Column{CandidatesColumns[12]},
				RefColumns: []*schema.Column{PipelinesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "candidates_stages_candidates",
				Columns:    []*schema.Column{CandidatesColumns[13]},
				RefColumns: []*schema.Column{StagesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "candidate_pipeline_id_email",
				Unique:  false,
				Columns: []*schema.Column{CandidatesColumns[12], CandidatesColumns[2]},
			},
			{
				Name:    "candidate_pipeline_id_phone",
				Unique:  false,
				Columns: []*schema.Column{CandidatesColumns[12], CandidatesColumns[3]},
			},
			{
				Name:    "candidate_merged_into_id",
				Unique:  false,
				Columns: []*schema.Column{CandidatesColumns[9]},
			},
			{
				Name:    "candidate_pipeline_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CandidatesColumns[12], CandidatesColumns[10]},
			},
		},
	}
	// CandidateTagsColumns holds the columns for the "candidate_tags" table.
	CandidateTagsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "candidate_id", Type: field.TypeUUID},
		{Name: "tag_id", Type: field.TypeUUID},
	}
	// CandidateTagsTable holds the schema information for the "candidate_tags" table.
	CandidateTagsTable = &schema.Table{
		Name:       "candidate_tags",
		Columns:    CandidateTagsColumns,
		PrimaryKey: []*schema.Column{CandidateTagsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "candidate_tags_candidates_candidate_tags",
				Columns:    []*schema.Column{CandidateTagsColumns[2]},
				RefColumns: []*schema.Column{CandidatesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "candidate_tags_tags_candidate_tags",
				Columns:    []*schema.Column{CandidateTagsColumns[3]},
				RefColumns: []*schema.Column{TagsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "candidatetag_candidate_id_tag_id",
				Unique:  true,
				Columns: []*schema.Column{CandidateTagsColumns[2], CandidateTagsColumns[3]},
			},
		},
	}
	// EmailLogsColumns holds the columns for the "email_logs" table.
	EmailLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "subject", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "sent_by", Type: field.TypeUUID, Nullable: true},
		{Name: "sent_at", Type: field.TypeTime},
		{Name: "candidate_id", Type: field.TypeUUID},
	}
	// EmailLogsTable holds the schema information for the "email_logs" table.
	EmailLogsTable = &schema.Table{
		Name:       "email_logs",
		Columns:    EmailLogsColumns,
		PrimaryKey: []*schema.Column{EmailLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "email_logs_candidates_email_logs",
				Columns:    []*schema.Column{EmailLogsColumns[5]},
				RefColumns: []*schema.Column{CandidatesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "emaillog_candidate_id_sent_at",
				Unique:  false,
				Columns: []*schema.Column{EmailLogsColumns[5], EmailLogsColumns[4]},
			},
		},
	}
	// ImportBatchesColumns holds the columns for the "import_batches" table.
	ImportBatchesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_by", Type: field.TypeUUID, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "total_files", Type: field.TypeInt, Default: 0},
		{Name: "processed_count", Type: field.TypeInt, Default: 0},
		{Name: "success_count", Type: field.TypeInt, Default: 0},
		{Name: "failed_count", Type: field.TypeInt, Default: 0},
		{Name: "default_country_code", Type: field.TypeString, Size: 3, Default: "BE"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "pipeline_id", Type: field.TypeUUID},
	}
	// ImportBatchesTable holds the schema information for the "import_batches" table.
	ImportBatchesTable = &schema.Table{
		Name:       "import_batches",
		Columns:    ImportBatchesColumns,
		PrimaryKey: []*schema.Column{ImportBatchesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "import_batches_pipelines_batches",
				Columns:    []*schema.Column{ImportBatchesColumns[10]},
				RefColumns: []*schema.Column{PipelinesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "importbatch_pipeline_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ImportBatchesColumns[10], ImportBatchesColumns[2], ImportBatchesColumns[8]},
			},
		},
	}
	// ImportItemsColumns holds the columns for the "import_items" table.
	ImportItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "storage_key", Type: field.TypeString},
		{Name: "content_type", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "status", Type: field.TypeString, Default: "QUEUED"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "candidate_id", Type: field.TypeUUID, Nullable: true},
		{Name: "batch_id", Type: field.TypeUUID},
	}
	// ImportItemsTable holds the schema information for the "import_items" table.
	ImportItemsTable = &schema.Table{
		Name:       "import_items",
		Columns:    ImportItemsColumns,
		PrimaryKey: []*schema.Column{ImportItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "import_items_candidates_import_items",
				Columns:    []*schema.Column{ImportItemsColumns[10]},
				RefColumns: []*schema.Column{CandidatesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "import_items_import_batches_items",
				Columns:    []*schema.Column{ImportItemsColumns[11]},
				RefColumns: []*schema.Column{ImportBatchesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "importitem_batch_id_status",
				Unique:  false,
				Columns: []*schema.Column{ImportItemsColumns[11], ImportItemsColumns[5]},
			},
			{
				Name:    "importitem_batch_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ImportItemsColumns[11], ImportItemsColumns[9]},
			},
		},
	}
	// MergeLogsColumns holds the columns for the "merge_logs" table.
	MergeLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "target_id", Type: field.TypeUUID},
		{Name: "source_id", Type: field.TypeUUID},
		{Name: "merged_by", Type: field.TypeUUID, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MergeLogsTable holds the schema information for the "merge_logs" table.
	MergeLogsTable = &schema.Table{
		Name:       "merge_logs",
		Columns:    MergeLogsColumns,
		PrimaryKey: []*schema.Column{MergeLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mergelog_target_id",
				Unique:  false,
				Columns: []*schema.Column{MergeLogsColumns[1]},
			},
			{
				Name:    "mergelog_source_id",
				Unique:  false,
				Columns: []*schema.Column{MergeLogsColumns[2]},
			},
		},
	}
	// NotesColumns holds the columns for the "notes" table.
	NotesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "body", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_by", Type: field.TypeUUID, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "candidate_id", Type: field.TypeUUID},
	}
	// NotesTable holds the schema information for the "notes" table.
	NotesTable = &schema.Table{
		Name:       "notes",
		Columns:    NotesColumns,
		PrimaryKey: []*schema.Column{NotesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "notes_candidates_notes",
				Columns:    []*schema.Column{NotesColumns[4]},
				RefColumns: []*schema.Column{CandidatesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "note_candidate_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotesColumns[4], NotesColumns[3]},
			},
		},
	}
	// PipelinesColumns holds the columns for the "pipelines" table.
	PipelinesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PipelinesTable holds the schema information for the "pipelines" table.
	PipelinesTable = &schema.Table{
		Name:       "pipelines",
		Columns:    PipelinesColumns,
		PrimaryKey: []*schema.Column{PipelinesColumns[0]},
	}
	// StagesColumns holds the columns for the "stages" table.
	StagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "order_index", Type: field.TypeInt},
		{Name: "is_default", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "pipeline_id", Type: field.TypeUUID},
	}
	// StagesTable holds the schema information for the "stages" table.
	StagesTable = &schema.Table{
		Name:       "stages",
		Columns:    StagesColumns,
		PrimaryKey: []*schema.Column{StagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "stages_pipelines_stages",
				Columns:    []*schema.Column{StagesColumns[5]},
				RefColumns: []*schema.Column{PipelinesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "stage_pipeline_id_order_index",
				Unique:  false,
				Columns: []*schema.Column{StagesColumns[5], StagesColumns[2]},
			},
		},
	}
	// CandidateStageHistoryColumns holds the columns for the "candidate_stage_history" table.
	CandidateStageHistoryColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "from_stage_id", Type: field.TypeUUID, Nullable: true},
		{Name: "to_stage_id", Type: field.TypeUUID},
		{Name: "moved_by", Type: field.TypeUUID, Nullable: true},
		{Name: "moved_at", Type: field.TypeTime},
		{Name: "candidate_id", Type: field.TypeUUID},
	}
	// CandidateStageHistoryTable holds the schema information for the "candidate_stage_history" table.
	CandidateStageHistoryTable = &schema.Table{
		Name:       "candidate_stage_history",
		Columns:    CandidateStageHistoryColumns,
		PrimaryKey: []*schema.Column{CandidateStageHistoryColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "candidate_stage_history_candidates_stage_history",
				Columns:    []*schema.Column{CandidateStageHistoryColumns[5]},
				RefColumns: []*schema.Column{CandidatesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "stagehistory_candidate_id_moved_at",
				Unique:  false,
				Columns: []*schema.Column{CandidateStageHistoryColumns[5], CandidateStageHistoryColumns[4]},
			},
		},
	}
	// TagsColumns holds the columns for the "tags" table.
	TagsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "color", Type: field.TypeString, Default: "#64748b"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TagsTable holds the schema information for the "tags" table.
	TagsTable = &schema.Table{
		Name:       "tags",
		Columns:    TagsColumns,
		PrimaryKey: []*schema.Column{TagsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttachmentsTable,
		AuditLogsTable,
		CandidatesTable,
		CandidateTagsTable,
		EmailLogsTable,
		ImportBatchesTable,
		ImportItemsTable,
		MergeLogsTable,
		NotesTable,
		PipelinesTable,
		StagesTable,
		CandidateStageHistoryTable,
		TagsTable,
	}
)

func init() {
	AttachmentsTable.ForeignKeys[0].RefTable = CandidatesTable
	AttachmentsTable.Annotation = &entsql.Annotation{
		Table: "attachments",
	}
	AuditLogsTable.Annotation = &entsql.Annotation{
		Table: "audit_logs",
	}
	CandidatesTable.ForeignKeys[0].RefTable = PipelinesTable
	CandidatesTable.ForeignKeys[1].RefTable = StagesTable
	CandidatesTable.Annotation = &entsql.Annotation{
		Table: "candidates",
	}
	CandidateTagsTable.ForeignKeys[0].RefTable = CandidatesTable
	CandidateTagsTable.ForeignKeys[1].RefTable = TagsTable
	CandidateTagsTable.Annotation = &entsql.Annotation{
		Table: "candidate_tags",
	}
	EmailLogsTable.ForeignKeys[0].RefTable = CandidatesTable
	EmailLogsTable.Annotation = &entsql.Annotation{
		Table: "email_logs",
	}
	ImportBatchesTable.ForeignKeys[0].RefTable = PipelinesTable
	ImportBatchesTable.Annotation = &entsql.Annotation{
		Table: "import_batches",
	}
	ImportItemsTable.ForeignKeys[0].RefTable = CandidatesTable
	ImportItemsTable.ForeignKeys[1].RefTable = ImportBatchesTable
	ImportItemsTable.Annotation = &entsql.Annotation{
		Table: "import_items",
	}
	MergeLogsTable.Annotation = &entsql.Annotation{
		Table: "merge_logs",
	}
	NotesTable.ForeignKeys[0].RefTable = CandidatesTable
	NotesTable.Annotation = &entsql.Annotation{
		Table: "notes",
	}
	PipelinesTable.Annotation = &entsql.Annotation{
		Table: "pipelines",
	}
	StagesTable.ForeignKeys[0].RefTable = PipelinesTable
	StagesTable.Annotation = &entsql.Annotation{
		Table: "stages",
	}
	CandidateStageHistoryTable.ForeignKeys[0].RefTable = CandidatesTable
	CandidateStageHistoryTable.Annotation = &entsql.Annotation{
		Table: "candidate_stage_history",
	}
	TagsTable.Annotation = &entsql.Annotation{
		Table: "tags",
	}
}
