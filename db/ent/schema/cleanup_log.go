package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"github.com/tobi-adeyemi/extractflow/constants"
	"github.com/tobi-adeyemi/extractflow/db/ent/schema/utils"

	"github.com/google/uuid"
)

// CleanupLog records one row per expiration sweep; append-only audit trail.
type CleanupLog struct{ ent.Schema }

func (CleanupLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "cleanup_log"},
	}
}

func (CleanupLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.Time("started_at").Default(time.Now).Immutable(),
		field.Time("completed_at").Optional().Nillable(),
		field.Int("sessions_expired").Default(0).NonNegative(),
		field.Int("jobs_expired").Default(0).NonNegative(),
		field.Int("blobs_deleted").Default(0).NonNegative(),
		field.Int("error_count").Default(0).NonNegative(),
		field.String("status").
			Default(string(constants.CleanupStatusRunning)).
			Validate(utils.EnumValidator(constants.CleanupStatuses...)),
	}
}
