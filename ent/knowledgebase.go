// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/linguaflow/linguaflow/ent/knowledgebase"
	"github.com/linguaflow/linguaflow/ent/projectwork"
	pgvector "github.com/pgvector/pgvector-go"
)

// KnowledgeBase is the model entity for the KnowledgeBase schema.
type KnowledgeBase struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// WorkID holds the value of the "work_id" field.
	WorkID int `json:"work_id,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// KBType holds the value of the "kb_type" field.
	KBType knowledgebase.KBType `json:"kb_type,omitempty"`
	// Vector holds the value of the "vector" field.
	Vector pgvector.Vector `json:"vector,omitempty"`
	// Tags holds the value of the "tags" field.
	Tags []string `json:"tags,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the KnowledgeBaseQuery when eager-loading is set.
	Edges        KnowledgeBaseEdges `json:"edges"`
	selectValues sql.SelectValues
}

// KnowledgeBaseEdges holds the relations/edges for other nodes in the graph.
type KnowledgeBaseEdges struct {
	// Work holds the value of the work edge.
	Work *ProjectWork `json:"work,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WorkOrErr returns the Work value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e KnowledgeBaseEdges) WorkOrErr() (*ProjectWork, error) {
	if e.Work != nil {
		return e.Work, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: projectwork.Label}
	}
	return nil, &NotLoadedError{edge: "work"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*KnowledgeBase) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case knowledgebase.FieldTags:
			values[i] = new([]byte)
		case knowledgebase.FieldVector:
			values[i] = new(pgvector.Vector)
		case knowledgebase.FieldID, knowledgebase.FieldWorkID:
			values[i] = new(sql.NullInt64)
		case knowledgebase.FieldContent, knowledgebase.FieldKBType:
			values[i] = new(sql.NullString)
		case knowledgebase.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the KnowledgeBase fields.
func (_m *KnowledgeBase) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case knowledgebase.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case knowledgebase.FieldWorkID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field work_id", values[i])
			} else if value.Valid {
				_m.WorkID = int(value.Int64)
			}
		case knowledgebase.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case knowledgebase.FieldKBType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kb_type", values[i])
			} else if value.Valid {
				_m.KBType = knowledgebase.KBType(value.String)
			}
		case knowledgebase.FieldVector:
			if value, ok := values[i].(*pgvector.Vector); !ok {
				return fmt.Errorf("unexpected type %T for field vector", values[i])
			} else if value != nil {
				_m.Vector = *value
			}
		case knowledgebase.FieldTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tags); err != nil {
					return fmt.Errorf("unmarshal field tags: %w", err)
				}
			}
		case knowledgebase.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the KnowledgeBase.
// This includes values selected through modifiers, order, etc.
func (_m *KnowledgeBase) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWork queries the "work" edge of the KnowledgeBase entity.
func (_m *KnowledgeBase) QueryWork() *ProjectWorkQuery {
	return NewKnowledgeBaseClient(_m.config).QueryWork(_m)
}

// Update returns a builder for updating this KnowledgeBase.
// Note that you need to call KnowledgeBase.Unwrap() before calling this method if this KnowledgeBase
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *KnowledgeBase) Update() *KnowledgeBaseUpdateOne {
	return NewKnowledgeBaseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the KnowledgeBase entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *KnowledgeBase) Unwrap() *KnowledgeBase {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: KnowledgeBase is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *KnowledgeBase) String() string {
	var builder strings.Builder
	builder.WriteString("KnowledgeBase(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("work_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorkID))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("kb_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.KBType))
	builder.WriteString(", ")
	builder.WriteString("vector=")
	builder.WriteString(fmt.Sprintf("%v", _m.Vector))
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tags))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// KnowledgeBases is a parsable slice of KnowledgeBase.
type KnowledgeBases []*KnowledgeBase
