package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/shopspring/decimal"
)

// DailyUsage holds the schema definition for the DailyUsage entity: one row
// per (user, UTC date), created lazily on the first chargeable event of the
// day. tokens_used always equals the sum of the per-capability columns.
type DailyUsage struct {
	ent.Schema
}

func decimalField(name string) ent.Field {
	return field.Float(name).
		GoType(decimal.Decimal{}).
		SchemaType(map[string]string{
			dialect.Postgres: "numeric(10,2)",
			dialect.MySQL:    "decimal(10,2)",
		})
}

// Fields of the DailyUsage.
func (DailyUsage) Fields() []ent.Field {
	return []ent.Field{
		field.String("day").
			NotEmpty().
			Comment("UTC calendar date, YYYY-MM-DD"),
		decimalField("tokens_used"),
		decimalField("tokens_image"),
		decimalField("tokens_video"),
		decimalField("tokens_text"),
		decimalField("tokens_audio"),
		field.Int("jobs_completed").
			Default(0),
		field.Int("jobs_failed").
			Default(0),
	}
}

// Edges of the DailyUsage.
func (DailyUsage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("usage").
			Unique().
			Required(),
	}
}

// Indexes of the DailyUsage.
func (DailyUsage) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("owner").
			Fields("day").
			Unique(),
	}
}
