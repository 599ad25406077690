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

type Note struct{ ent.Schema }

func (Note) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "notes"},
	}
}

func (Note) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK; rewritten during merge
		field.UUID("candidate_id", uuid.UUID{}),
		field.String("body").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.UUID("created_by", uuid.UUID{}).Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Note) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("candidate", Candidate.Type).
			Ref("notes").
			Field("candidate_id").
			Unique().
			Required(),
	}
}

func (Note) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("candidate_id", "created_at"),
	}
}
