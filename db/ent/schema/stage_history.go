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

type StageHistory struct{ ent.Schema }

func (StageHistory) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "candidate_stage_history"},
	}
}

func (StageHistory) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK; rewritten during merge with moved_at/moved_by preserved
		field.UUID("candidate_id", uuid.UUID{}),
		// nil for the initial placement
		field.UUID("from_stage_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("to_stage_id", uuid.UUID{}),
		field.UUID("moved_by", uuid.UUID{}).Optional().Nillable(),
		field.Time("moved_at").Default(time.Now),
	}
}

func (StageHistory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("candidate", Candidate.Type).
			Ref("stage_history").
			Field("candidate_id").
			Unique().
			Required(),
	}
}

func (StageHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("candidate_id", "moved_at"),
	}
}
