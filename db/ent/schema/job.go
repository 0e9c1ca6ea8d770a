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
	"github.com/tobi-adeyemi/extractflow/constants"
	"github.com/tobi-adeyemi/extractflow/db/ent/schema/utils"

	"github.com/google/uuid"
)

type Job struct{ ent.Schema }

func (Job) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "jobs"},
	}
}

func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs; session_id is nullable for legacy standalone jobs
		field.UUID("session_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("user_id", uuid.UUID{}),
		field.String("status").
			Default(string(constants.JobStatusQueued)).
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.String("format").NotEmpty().
			Validate(utils.EnumValidator(constants.FileTypes...)),
		field.String("source_filename").NotEmpty(),
		// Blob key of the uploaded unit.
		field.String("file_path").NotEmpty(),
		field.Int("page_count").Positive(),
		// Fixed at submission time, never recomputed.
		field.Int("credits_charged").NonNegative(),
		field.String("external_operation_ref").Optional().Nillable(),
		field.JSON("extracted_fields", json.RawMessage{}).Optional(),
		field.String("error_message").Optional().Nillable(),
		field.Time("polling_started_at").Optional().Nillable(),
		field.Time("last_polled_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("expires_at"),
	}
}

func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("jobs").
			Field("session_id").
			Unique(),
		edge.From("user", User.Type).
			Ref("jobs").
			Field("user_id").
			Unique().
			Required(),
	}
}

func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("status", "last_polled_at"),
		index.Fields("expires_at", "status"),
	}
}
