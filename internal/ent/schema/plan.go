package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Plan holds the schema definition for the Plan entity. Plan rows are
// immutable policy records; tier upgrades change the user's plan edge.
type Plan struct {
	ent.Schema
}

// Fields of the Plan.
func (Plan) Fields() []ent.Field {
	return []ent.Field{
		field.String("tier").
			Unique().
			NotEmpty(),
		field.String("description").
			Default(""),
		field.Int("daily_token_limit"),
		field.Int("requests_per_minute"),
		field.Int("max_concurrent_jobs"),
		field.Int("priority").
			Min(0).
			Max(3),
		field.Int("max_resolution").
			Comment("Longest image side in pixels"),
		field.Int("max_audio_seconds"),
		field.JSON("allowed_models", []string{}).
			Comment(`Model identifiers; "*" allows all`),
		field.Int("price_cents").
			Default(0),
		field.Bool("active").
			Default(true),
	}
}

// Edges of the Plan.
func (Plan) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("users", User.Type),
	}
}
