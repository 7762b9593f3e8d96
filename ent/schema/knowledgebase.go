package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/pgvector/pgvector-go"
)

// KnowledgeBase holds the schema definition for the KnowledgeBase entity.
// Reference material (translation memory, glossaries, style guides) retrieved
// by cosine similarity during prompt assembly.
type KnowledgeBase struct {
	ent.Schema
}

// Fields of the KnowledgeBase.
func (KnowledgeBase) Fields() []ent.Field {
	return []ent.Field{
		field.Int("work_id").
			Immutable(),
		field.Text("content"),
		field.Enum("kb_type").
			Values("tm", "glossary", "style_guide", "external"),
		field.Other("vector", pgvector.Vector{}).
			SchemaType(map[string]string{dialect.Postgres: "vector(768)"}).
			Optional(),
		field.JSON("tags", []string{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the KnowledgeBase.
func (KnowledgeBase) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("work", ProjectWork.Type).
			Ref("knowledge_entries").
			Field("work_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the KnowledgeBase.
// The ivfflat index on vector is created via migration SQL.
func (KnowledgeBase) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("work_id", "kb_type"),
	}
}
