// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Attachment is the predicate function for attachment builders.
type Attachment func(*sql.Selector)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// Candidate is the predicate function for candidate builders.
type Candidate func(*sql.Selector)

// CandidateTag is the predicate function for candidatetag builders.
type CandidateTag func(*sql.Selector)

// EmailLog is the predicate function for emaillog builders.
type EmailLog func(*sql.Selector)

// ImportBatch is the predicate function for importbatch builders.
type ImportBatch func(*sql.Selector)

// ImportItem is the predicate function for importitem builders.
type ImportItem func(*sql.Selector)

// MergeLog is the predicate function for mergelog builders.
type MergeLog func(*sql.Selector)

// Note is the predicate function for note builders.
type Note func(*sql.Selector)

// Pipeline is the predicate function for pipeline builders.
type Pipeline func(*sql.Selector)

// Stage is the predicate function for stage builders.
type Stage func(*sql.Selector)

// StageHistory is the predicate function for stagehistory builders.
type StageHistory func(*sql.Selector)

// Tag is the predicate function for tag builders.
type Tag func(*sql.Selector)
