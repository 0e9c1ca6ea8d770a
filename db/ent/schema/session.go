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

type Session struct{ ent.Schema }

func (Session) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "sessions"},
	}
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("user_id", uuid.UUID{}),
		field.String("status").
			Default(string(constants.SessionStatusUploading)).
			Validate(utils.EnumValidator(constants.SessionStatuses...)),
		field.Int("total_units").NonNegative(),
		field.Int("completed_units").Default(0).NonNegative(),
		// Ordered literal/field elements applied to extracted fields when
		// renaming result files.
		field.JSON("naming_template", json.RawMessage{}).Optional(),
		// Column order/visibility/display names for the XLSX sheet.
		field.JSON("export_columns", json.RawMessage{}).Optional(),
		// Unset until one aggregation call wins the trigger-once CAS.
		field.String("post_processing_status").Optional().Nillable(),
		// When the claim was taken; lets the poller reclaim a claim whose
		// holder died mid-run.
		field.Time("post_processing_started_at").Optional().Nillable(),
		field.String("result_bundle_path").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("expires_at"),
	}
}

func (Session) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("sessions").
			Field("user_id").
			Unique().
			Required(),
		edge.To("jobs", Job.Type),
	}
}

func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "status", "created_at"),
		index.Fields("expires_at", "status"),
	}
}
