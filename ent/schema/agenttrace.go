package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentTrace holds the schema definition for the AgentTrace entity.
// Event-sourced record of one agent action on one atom. Traces are
// append-only; the single active trace defines the atom's translation.
type AgentTrace struct {
	ent.Schema
}

// Fields of the AgentTrace.
func (AgentTrace) Fields() []ent.Field {
	return []ent.Field{
		field.Int("atom_id").
			Immutable(),
		field.Enum("agent_role").
			Values("translator", "quality_assessor", "consistency_checker", "human"),
		field.Enum("action_type").
			Values("draft", "refine", "evaluate", "final", "human_edit"),
		field.Text("content").
			Optional().
			Comment("Produced translation text; empty for pure annotations"),
		field.JSON("quality_report", map[string]interface{}{}).
			Optional().
			Comment("Score, back-translation, issues"),
		field.JSON("meta_data", map[string]interface{}{}).
			Optional(),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Bool("is_active").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AgentTrace.
func (AgentTrace) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("atom", ProcessingAtom.Type).
			Ref("traces").
			Field("atom_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AgentTrace.
func (AgentTrace) Indexes() []ent.Index {
	return []ent.Index{
		// Audit log ordering
		index.Fields("atom_id", "created_at"),

		// At most one active trace per atom, enforced DB-side
		index.Fields("atom_id").
			Unique().
			Annotations(entsql.IndexWhere("is_active")),
	}
}
