// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/linguaflow/linguaflow/ent/agenttrace"
	"github.com/linguaflow/linguaflow/ent/processingatom"
)

// AgentTrace is the model entity for the AgentTrace schema.
type AgentTrace struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// AtomID holds the value of the "atom_id" field.
	AtomID int `json:"atom_id,omitempty"`
	// AgentRole holds the value of the "agent_role" field.
	AgentRole agenttrace.AgentRole `json:"agent_role,omitempty"`
	// ActionType holds the value of the "action_type" field.
	ActionType agenttrace.ActionType `json:"action_type,omitempty"`
	// Produced translation text; empty for pure annotations
	Content string `json:"content,omitempty"`
	// Score, back-translation, issues
	QualityReport map[string]interface{} `json:"quality_report,omitempty"`
	// MetaData holds the value of the "meta_data" field.
	MetaData map[string]interface{} `json:"meta_data,omitempty"`
	// InputTokens holds the value of the "input_tokens" field.
	InputTokens int `json:"input_tokens,omitempty"`
	// OutputTokens holds the value of the "output_tokens" field.
	OutputTokens int `json:"output_tokens,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentTraceQuery when eager-loading is set.
	Edges        AgentTraceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentTraceEdges holds the relations/edges for other nodes in the graph.
type AgentTraceEdges struct {
	// Atom holds the value of the atom edge.
	Atom *ProcessingAtom `json:"atom,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AtomOrErr returns the Atom value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentTraceEdges) AtomOrErr() (*ProcessingAtom, error) {
	if e.Atom != nil {
		return e.Atom, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: processingatom.Label}
	}
	return nil, &NotLoadedError{edge: "atom"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentTrace) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agenttrace.FieldQualityReport, agenttrace.FieldMetaData:
			values[i] = new([]byte)
		case agenttrace.FieldIsActive:
			values[i] = new(sql.NullBool)
		case agenttrace.FieldID, agenttrace.FieldAtomID, agenttrace.FieldInputTokens, agenttrace.FieldOutputTokens:
			values[i] = new(sql.NullInt64)
		case agenttrace.FieldAgentRole, agenttrace.FieldActionType, agenttrace.FieldContent:
			values[i] = new(sql.NullString)
		case agenttrace.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentTrace fields.
func (_m *AgentTrace) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agenttrace.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case agenttrace.FieldAtomID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field atom_id", values[i])
			} else if value.Valid {
				_m.AtomID = int(value.Int64)
			}
		case agenttrace.FieldAgentRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_role", values[i])
			} else if value.Valid {
				_m.AgentRole = agenttrace.AgentRole(value.String)
			}
		case agenttrace.FieldActionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action_type", values[i])
			} else if value.Valid {
				_m.ActionType = agenttrace.ActionType(value.String)
			}
		case agenttrace.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case agenttrace.FieldQualityReport:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field quality_report", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.QualityReport); err != nil {
					return fmt.Errorf("unmarshal field quality_report: %w", err)
				}
			}
		case agenttrace.FieldMetaData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field meta_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MetaData); err != nil {
					return fmt.Errorf("unmarshal field meta_data: %w", err)
				}
			}
		case agenttrace.FieldInputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field input_tokens", values[i])
			} else if value.Valid {
				_m.InputTokens = int(value.Int64)
			}
		case agenttrace.FieldOutputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field output_tokens", values[i])
			} else if value.Valid {
				_m.OutputTokens = int(value.Int64)
			}
		case agenttrace.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case agenttrace.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AgentTrace.
// This includes values selected through modifiers, order, etc.
func (_m *AgentTrace) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAtom queries the "atom" edge of the AgentTrace entity.
func (_m *AgentTrace) QueryAtom() *ProcessingAtomQuery {
	return NewAgentTraceClient(_m.config).QueryAtom(_m)
}

// Update returns a builder for updating this AgentTrace.
// Note that you need to call AgentTrace.Unwrap() before calling this method if this AgentTrace
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentTrace) Update() *AgentTraceUpdateOne {
	return NewAgentTraceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentTrace entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentTrace) Unwrap() *AgentTrace {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentTrace is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentTrace) String() string {
	var builder strings.Builder
	builder.WriteString("AgentTrace(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("atom_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AtomID))
	builder.WriteString(", ")
	builder.WriteString("agent_role=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentRole))
	builder.WriteString(", ")
	builder.WriteString("action_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActionType))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("quality_report=")
	builder.WriteString(fmt.Sprintf("%v", _m.QualityReport))
	builder.WriteString(", ")
	builder.WriteString("meta_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.MetaData))
	builder.WriteString(", ")
	builder.WriteString("input_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputTokens))
	builder.WriteString(", ")
	builder.WriteString("output_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutputTokens))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentTraces is a parsable slice of AgentTrace.
type AgentTraces []*AgentTrace
