package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Candidate struct{ ent.Schema }

func (Candidate) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "candidates"},
	}
}

func (Candidate) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("pipeline_id", uuid.UUID{}),
		field.UUID("stage_id", uuid.UUID{}),
		field.String("full_name").NotEmpty(),
		field.String("email").Optional().Nillable(),
		// E.164-ish, already normalized on write
		field.String("phone").Optional().Nillable(),
		field.String("source").NotEmpty().Default("manual"),
		field.String("extracted_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Int("parsing_confidence").Default(0).Min(0).Max(100),
		field.Bool("is_rejected").Default(false),
		// soft delete
		field.Time("deleted_at").Optional().Nillable(),
		// merge tombstone; never points at another merged candidate
		field.UUID("merged_into_id", uuid.UUID{}).Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Candidate) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("pipeline", Pipeline.Type).
			Ref("candidates").
			Field("pipeline_id").
			Unique().
			Required(),
		edge.From("stage", Stage.Type).
			Ref("candidates").
			Field("stage_id").
			Unique().
			Required(),
		edge.To("notes", Note.Type),
		edge.To("attachments", Attachment.Type),
		edge.To("email_logs", EmailLog.Type),
		edge.To("candidate_tags", CandidateTag.Type),
		edge.To("stage_history", StageHistory.Type),
		edge.To("import_items", ImportItem.Type),
	}
}

func (Candidate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("pipeline_id", "email"),
		index.Fields("pipeline_id", "phone"),
		index.Fields("merged_into_id"),
		index.Fields("pipeline_id", "created_at"),
	}
}
