package schema

import (
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

// Transaction rows are append-only. A COMPLETED row is never mutated; undoing
// one means inserting a linked REFUND row.
type Transaction struct{ ent.Schema }

func (Transaction) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "transactions"},
	}
}

func (Transaction) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("user_id", uuid.UUID{}),
		field.String("type").NotEmpty().
			Validate(utils.EnumValidator(constants.TxTypes...)),
		// Signed: debits negative, credits positive.
		field.Int("credits_delta"),
		field.String("status").
			Default(string(constants.TxStatusCompleted)).
			Validate(utils.EnumValidator(constants.TxStatuses...)),
		field.String("description").Optional(),
		field.UUID("job_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("session_id", uuid.UUID{}).Optional().Nillable(),
		// For REFUND rows, the transaction being reversed.
		field.UUID("refund_of", uuid.UUID{}).Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Transaction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("transactions").
			Field("user_id").
			Unique().
			Required(),
	}
}

func (Transaction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		// At most one refund per job.
		index.Fields("job_id", "type").Unique(),
	}
}
