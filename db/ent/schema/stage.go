package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Stage struct{ ent.Schema }

func (Stage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "stages"},
	}
}

func (Stage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("pipeline_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.Int("order_index").NonNegative(),
		field.Bool("is_default").Default(false),
		field.Time("created_at").Default(time.Now),
	}
}

func (Stage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("pipeline", Pipeline.Type).
			Ref("stages").
			Field("pipeline_id").
			Unique().
			Required(),
		edge.To("candidates", Candidate.Type),
	}
}

func (Stage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("pipeline_id", "order_index"),
	}
}
