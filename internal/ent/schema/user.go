package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity. A user is an
// identity on a single frontend platform, created on first contact and
// never destroyed.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("platform").
			Values("telegram", "discord", "web"),
		field.String("platform_user_id").
			MaxLen(100).
			NotEmpty(),
		field.String("email").
			Optional(),
		field.String("display_name").
			Optional(),
		field.String("ip_address").
			Optional(),
		field.String("api_key").
			Unique().
			Optional().
			Nillable().
			Sensitive(),
		field.Time("api_key_created_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_active_at").
			Default(time.Now),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("plan", Plan.Type).
			Ref("users").
			Unique().
			Required(),
		edge.To("jobs", Job.Type),
		edge.To("usage", DailyUsage.Type),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("platform", "platform_user_id").
			Unique(),
	}
}
