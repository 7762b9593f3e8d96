package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TranslationRun holds the schema definition for the TranslationRun entity.
// The queue row workers claim; one row per requested pipeline execution.
type TranslationRun struct {
	ent.Schema
}

// Fields of the TranslationRun.
func (TranslationRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.Int("work_id").
			Optional().
			Nillable().
			Comment("Set once bootstrap creates or resumes the project work"),
		field.String("project_path"),
		field.String("output_path"),
		field.JSON("config_overrides", map[string]interface{}{}).
			Optional(),
		field.Enum("status").
			Values("pending", "processing", "review", "completed", "failed", "cancelled").
			Default("pending"),
		field.String("current_stage").
			Optional(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("worker_id").
			Optional().
			Nillable(),
		field.Time("claimed_at").
			Optional().
			Nillable(),
		field.Time("heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TranslationRun.
func (TranslationRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("work", ProjectWork.Type).
			Ref("runs").
			Field("work_id").
			Unique(),
	}
}

// Indexes of the TranslationRun.
func (TranslationRun) Indexes() []ent.Index {
	return []ent.Index{
		// Claim scan
		index.Fields("status", "created_at"),
		// Orphan scan
		index.Fields("status", "heartbeat_at"),
	}
}
