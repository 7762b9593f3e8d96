package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity.
// Persisted progress events; pg_notify carries the same payload to live
// listeners, this table serves polling consumers and catch-up.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			MaxLen(64).
			Optional().
			Comment("Correlation id; lifecycle events may outlive the run row"),
		field.String("channel").
			MaxLen(100),
		field.JSON("payload", json.RawMessage{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		// Catch-up scan
		index.Fields("channel", "id"),
		index.Fields("run_id", "id"),
		// Retention sweep
		index.Fields("created_at"),
	}
}
