package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Job holds the schema definition for the Job entity, the only entity whose
// state evolves through a machine. Every non-terminal transition is a CAS on
// the status column.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.Enum("frontend").
			Values("telegram", "discord", "web", "api"),
		field.String("bot_id").
			Optional(),
		field.Enum("capability").
			Values("image", "video", "text", "audio"),
		field.Enum("status").
			Values("CREATED", "QUEUED", "RUNNING", "COMPLETED", "FAILED", "CANCELLED").
			Default("CREATED"),
		field.Int("priority").
			Min(0).
			Max(3).
			Comment("Snapshot of the plan priority at admission"),
		field.JSON("params", map[string]any{}),
		field.String("workflow_id").
			Optional(),
		field.Float("cost_tokens").
			GoType(decimal.Decimal{}).
			SchemaType(map[string]string{
				dialect.Postgres: "numeric(10,2)",
				dialect.MySQL:    "decimal(10,2)",
			}),
		field.String("worker_id").
			Optional(),
		field.Int("retry_count").
			Default(0),
		field.String("webhook_url").
			Optional(),
		field.JSON("reply_context", map[string]any{}).
			Optional(),
		field.JSON("error", map[string]any{}).
			Optional(),
		field.Float("execution_time_seconds").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("queued_at").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("ended_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Job.
func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("jobs").
			Unique().
			Required(),
		edge.To("artifacts", Artifact.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		// Hot path for the dispatcher and queue-position counting.
		index.Fields("status", "priority", "queued_at"),
		index.Fields("worker_id"),
	}
}
