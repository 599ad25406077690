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
	"github.com/talentops/recruit-crm/constants"
	"github.com/talentops/recruit-crm/db/ent/schema/utils"
)

type ImportBatch struct{ ent.Schema }

func (ImportBatch) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "import_batches"},
	}
}

func (ImportBatch) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("pipeline_id", uuid.UUID{}),
		field.UUID("created_by", uuid.UUID{}).Optional().Nillable(),
		field.String("status").Default(string(constants.BatchStatusPending)).
			Validate(utils.EnumValidator(constants.BatchStatuses...)),
		// processed_count == success_count + failed_count at all times
		field.Int("total_files").Default(0).NonNegative(),
		field.Int("processed_count").Default(0).NonNegative(),
		field.Int("success_count").Default(0).NonNegative(),
		field.Int("failed_count").Default(0).NonNegative(),
		field.String("default_country_code").Default("BE").MaxLen(3),
		field.Time("created_at").Default(time.Now),
		field.Time("completed_at").Optional().Nillable(),
	}
}

func (ImportBatch) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("pipeline", Pipeline.Type).
			Ref("batches").
			Field("pipeline_id").
			Unique().
			Required(),
		edge.To("items", ImportItem.Type),
	}
}

func (ImportBatch) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("pipeline_id", "status", "created_at"),
	}
}
