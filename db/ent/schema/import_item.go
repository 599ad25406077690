package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/talentops/recruit-crm/constants"
	"github.com/talentops/recruit-crm/db/ent/schema/utils"
)

type ImportItem struct{ ent.Schema }

func (ImportItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "import_items"},
	}
}

func (ImportItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("batch_id", uuid.UUID{}),
		field.UUID("candidate_id", uuid.UUID{}).Optional().Nillable(),
		field.String("filename").NotEmpty(),
		field.String("storage_key").NotEmpty(),
		field.String("content_type").NotEmpty(),
		field.Int("file_size").NonNegative(),
		field.String("status").Default(string(constants.ItemStatusQueued)).
			Validate(utils.EnumValidator(constants.ItemStatuses...)),
		field.String("error_message").Optional().Nillable(),
		field.JSON("extracted_json", json.RawMessage{}).Optional(),
		field.Time("processed_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (ImportItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("batch", ImportBatch.Type).
			Ref("items").
			Field("batch_id").
			Unique().
			Required(),
		edge.From("candidate", Candidate.Type).
			Ref("import_items").
			Field("candidate_id").
			Unique(),
	}
}

func (ImportItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("batch_id", "status"),
		index.Fields("batch_id", "created_at"),
	}
}
