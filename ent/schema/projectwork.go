package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// ProjectWork holds the schema definition for the ProjectWork entity.
// One row per translation project run context; reused across resumes.
type ProjectWork struct {
	ent.Schema
}

// Fields of the ProjectWork.
func (ProjectWork) Fields() []ent.Field {
	return []ent.Field{
		field.String("work_name").
			Unique().
			Comment("Stable identifier, e.g. 'en2zh_1714041600'"),
		field.String("source_lang"),
		field.String("target_lang"),
		field.JSON("config", map[string]interface{}{}).
			Optional().
			Comment("Workflow config blob captured at creation"),
		field.JSON("topic_info", map[string]interface{}{}).
			Optional().
			Comment("Detected domain/style and their scores"),
		field.Text("translation_guide").
			Optional().
			Nillable(),
		field.JSON("prompt_templates", map[string]interface{}{}).
			Optional(),
		field.JSON("extra", map[string]interface{}{}).
			Optional().
			Comment("Resume map: db_doc_map, db_atom_map, term table"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ProjectWork.
func (ProjectWork) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("docs", SourceDoc.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("knowledge_entries", KnowledgeBase.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("runs", TranslationRun.Type),
	}
}
