package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/pgvector/pgvector-go"
)

// ProcessingAtom holds the schema definition for the ProcessingAtom entity.
// The minimum translatable unit: one source line with status and traces.
type ProcessingAtom struct {
	ent.Schema
}

// Fields of the ProcessingAtom.
func (ProcessingAtom) Fields() []ent.Field {
	return []ent.Field{
		field.Int("doc_id").
			Immutable(),
		field.Int("position").
			Immutable().
			Comment("Order within the document; never changes"),
		field.Text("source_text"),
		field.String("source_hash").
			MaxLen(32).
			Comment("md5 of source_text for change detection"),
		field.Text("translated_text").
			Optional().
			Nillable(),
		field.Int("status_code").
			Default(0).
			SchemaType(map[string]string{dialect.Postgres: "smallint"}).
			Comment("0=untranslated 1=drafted 2=refined 3=human_reviewed 4=finalized"),
		field.Float("quality_score").
			Optional().
			Nillable(),
		field.JSON("examination", map[string]interface{}{}).
			Optional().
			Comment("Back-translation, score, issues, warning level"),
		field.JSON("context_info", map[string]interface{}{}).
			Optional(),
		field.Other("semantic_vec", pgvector.Vector{}).
			SchemaType(map[string]string{dialect.Postgres: "vector(768)"}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ProcessingAtom.
func (ProcessingAtom) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("doc", SourceDoc.Type).
			Ref("atoms").
			Field("doc_id").
			Unique().
			Required().
			Immutable(),
		edge.To("traces", AgentTrace.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ProcessingAtom.
// Note: the ivfflat index on semantic_vec is created via migration SQL;
// Ent cannot express vector index operator classes.
func (ProcessingAtom) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doc_id", "position").
			Unique(),
		index.Fields("doc_id", "status_code"),
	}
}
