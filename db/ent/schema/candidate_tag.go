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

// CandidateTag is the explicit candidate<->tag join row, kept as its own
// schema so the (candidate_id, tag_id) uniqueness survives merge rewrites.
type CandidateTag struct{ ent.Schema }

func (CandidateTag) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "candidate_tags"},
	}
}

func (CandidateTag) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs for the composite unique index
		field.UUID("candidate_id", uuid.UUID{}),
		field.UUID("tag_id", uuid.UUID{}),
		field.Time("created_at").Default(time.Now),
	}
}

func (CandidateTag) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("candidate", Candidate.Type).
			Ref("candidate_tags").
			Field("candidate_id").
			Unique().
			Required(),
		edge.From("tag", Tag.Type).
			Ref("candidate_tags").
			Field("tag_id").
			Unique().
			Required(),
	}
}

func (CandidateTag) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("candidate_id", "tag_id").Unique(),
	}
}
