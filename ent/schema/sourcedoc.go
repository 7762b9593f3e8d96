package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SourceDoc holds the schema definition for the SourceDoc entity.
// One row per input file; idempotently reused across resumes.
type SourceDoc struct {
	ent.Schema
}

// Fields of the SourceDoc.
func (SourceDoc) Fields() []ent.Field {
	return []ent.Field{
		field.Int("work_id").
			Immutable(),
		field.String("file_path"),
		field.Int("atom_count").
			Default(0),
		field.Enum("status").
			Values("pending", "processed").
			Default("pending"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the SourceDoc.
func (SourceDoc) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("work", ProjectWork.Type).
			Ref("docs").
			Field("work_id").
			Unique().
			Required().
			Immutable(),
		edge.To("atoms", ProcessingAtom.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the SourceDoc.
func (SourceDoc) Indexes() []ent.Index {
	return []ent.Index{
		// Idempotent upsert key
		index.Fields("work_id", "file_path").
			Unique(),
	}
}
