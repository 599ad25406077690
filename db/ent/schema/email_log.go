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

type EmailLog struct{ ent.Schema }

func (EmailLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "email_logs"},
	}
}

func (EmailLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK; rewritten during merge
		field.UUID("candidate_id", uuid.UUID{}),
		field.String("subject").NotEmpty(),
		field.String("body").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.UUID("sent_by", uuid.UUID{}).Optional().Nillable(),
		field.Time("sent_at").Default(time.Now),
	}
}

func (EmailLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("candidate", Candidate.Type).
			Ref("email_logs").
			Field("candidate_id").
			Unique().
			Required(),
	}
}

func (EmailLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("candidate_id", "sent_at"),
	}
}
