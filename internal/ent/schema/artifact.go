package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Artifact holds the schema definition for the Artifact entity, an output
// produced by a completed job.
type Artifact struct {
	ent.Schema
}

// Fields of the Artifact.
func (Artifact) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.Enum("type").
			Values("image", "video", "audio", "text"),
		field.String("format").
			Default(""),
		field.String("local_path").
			Optional().
			Comment("Path on the worker host"),
		field.String("public_url").
			Optional(),
		field.Int("width").
			Optional(),
		field.Int("height").
			Optional(),
		field.Float("duration_seconds").
			Optional(),
		field.Int64("file_size_bytes").
			Optional(),
		field.JSON("metadata", map[string]any{}).
			Optional(),
		field.Time("expires_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Artifact.
func (Artifact) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("artifacts").
			Unique().
			Required(),
	}
}
