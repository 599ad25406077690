package constants

// BatchStatus is the canonical status for rows in import_batches.
type BatchStatus string

// Stable values (store these exact strings in DB).
const (
	BatchStatusPending    BatchStatus = "PENDING"    // accepting file uploads
	BatchStatusProcessing BatchStatus = "PROCESSING" // iterating queued items
	BatchStatusCompleted  BatchStatus = "COMPLETED"  // terminal; partial success allowed
	BatchStatusFailed     BatchStatus = "FAILED"     // terminal; batch-level error
)

// ItemStatus is the canonical status for rows in import_items.
// Only advances QUEUED -> PROCESSING -> {SUCCEEDED|FAILED}.
type ItemStatus string

const (
	ItemStatusQueued     ItemStatus = "QUEUED"
	ItemStatusProcessing ItemStatus = "PROCESSING"
	ItemStatusSucceeded  ItemStatus = "SUCCEEDED"
	ItemStatusFailed     ItemStatus = "FAILED"
)

// BatchStatuses and ItemStatuses back the schema enum validators.
var (
	BatchStatuses = []string{
		string(BatchStatusPending),
		string(BatchStatusProcessing),
		string(BatchStatusCompleted),
		string(BatchStatusFailed),
	}
	ItemStatuses = []string{
		string(ItemStatusQueued),
		string(ItemStatusProcessing),
		string(ItemStatusSucceeded),
		string(ItemStatusFailed),
	}
)

// Candidate sources.
const (
	SourceImport = "import"
	SourceManual = "manual"
)

// Audit actions emitted by the import/merge engine.
const (
	AuditBatchCreated     = "import.batch.created"
	AuditBatchCompleted   = "import.batch.completed"
	AuditCandidatesMerged = "candidates.merged"
)
