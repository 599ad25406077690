package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// MergeLog is an immutable audit record: one row per (target, source) pair
// per merge call. Plain FK fields, no edges; rows outlive their candidates'
// active life.
type MergeLog struct{ ent.Schema }

func (MergeLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "merge_logs"},
	}
}

func (MergeLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("target_id", uuid.UUID{}).Immutable(),
		field.UUID("source_id", uuid.UUID{}).Immutable(),
		field.UUID("merged_by", uuid.UUID{}).Optional().Nillable().Immutable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (MergeLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("target_id"),
		index.Fields("source_id"),
	}
}
