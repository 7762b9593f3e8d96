// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/linguaflow/linguaflow/ent/processingatom"
	"github.com/linguaflow/linguaflow/ent/sourcedoc"
	pgvector "github.com/pgvector/pgvector-go"
)

// ProcessingAtom is the model entity for the ProcessingAtom schema.
type ProcessingAtom struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// DocID holds the value of the "doc_id" field.
	DocID int `json:"doc_id,omitempty"`
	// Order within the document; never changes
	Position int `json:"position,omitempty"`
	// SourceText holds the value of the "source_text" field.
	SourceText string `json:"source_text,omitempty"`
	// md5 of source_text for change detection
	SourceHash string `json:"source_hash,omitempty"`
	// TranslatedText holds the value of the "translated_text" field.
	TranslatedText *string `json:"translated_text,omitempty"`
	// 0=untranslated 1=drafted 2=refined 3=human_reviewed 4=finalized
	StatusCode int `json:"status_code,omitempty"`
	// QualityScore holds the value of the "quality_score" field.
	QualityScore *float64 `json:"quality_score,omitempty"`
	// Back-translation, score, issues, warning level
	Examination map[string]interface{} `json:"examination,omitempty"`
	// ContextInfo holds the value of the "context_info" field.
	ContextInfo map[string]interface{} `json:"context_info,omitempty"`
	// SemanticVec holds the value of the "semantic_vec" field.
	SemanticVec pgvector.Vector `json:"semantic_vec,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProcessingAtomQuery when eager-loading is set.
	Edges        ProcessingAtomEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProcessingAtomEdges holds the relations/edges for other nodes in the graph.
type ProcessingAtomEdges struct {
	// Doc holds the value of the doc edge.
	Doc *SourceDoc `json:"doc,omitempty"`
	// Traces holds the value of the traces edge.
	Traces []*AgentTrace `json:"traces,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// DocOrErr returns the Doc value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProcessingAtomEdges) DocOrErr() (*SourceDoc, error) {
	if e.Doc != nil {
		return e.Doc, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: sourcedoc.Label}
	}
	return nil, &NotLoadedError{edge: "doc"}
}

// TracesOrErr returns the Traces value or an error if the edge
// was not loaded in eager-loading.
func (e ProcessingAtomEdges) TracesOrErr() ([]*AgentTrace, error) {
	if e.loadedTypes[1] {
		return e.Traces, nil
	}
	return nil, &NotLoadedError{edge: "traces"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProcessingAtom) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case processingatom.FieldExamination, processingatom.FieldContextInfo:
			values[i] = new([]byte)
		case processingatom.FieldSemanticVec:
			values[i] = new(pgvector.Vector)
		case processingatom.FieldQualityScore:
			values[i] = new(sql.NullFloat64)
		case processingatom.FieldID, processingatom.FieldDocID, processingatom.FieldPosition, processingatom.FieldStatusCode:
			values[i] = new(sql.NullInt64)
		case processingatom.FieldSourceText, processingatom.FieldSourceHash, processingatom.FieldTranslatedText:
			values[i] = new(sql.NullString)
		case processingatom.FieldCreatedAt, processingatom.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProcessingAtom fields.
func (_m *ProcessingAtom) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case processingatom.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case processingatom.FieldDocID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field doc_id", values[i])
			} else if value.Valid {
				_m.DocID = int(value.Int64)
			}
		case processingatom.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case processingatom.FieldSourceText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_text", values[i])
			} else if value.Valid {
				_m.SourceText = value.String
			}
		case processingatom.FieldSourceHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_hash", values[i])
			} else if value.Valid {
				_m.SourceHash = value.String
			}
		case processingatom.FieldTranslatedText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field translated_text", values[i])
			} else if value.Valid {
				_m.TranslatedText = new(string)
				*_m.TranslatedText = value.String
			}
		case processingatom.FieldStatusCode:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field status_code", values[i])
			} else if value.Valid {
				_m.StatusCode = int(value.Int64)
			}
		case processingatom.FieldQualityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field quality_score", values[i])
			} else if value.Valid {
				_m.QualityScore = new(float64)
				*_m.QualityScore = value.Float64
			}
		case processingatom.FieldExamination:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field examination", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Examination); err != nil {
					return fmt.Errorf("unmarshal field examination: %w", err)
				}
			}
		case processingatom.FieldContextInfo:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field context_info", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ContextInfo); err != nil {
					return fmt.Errorf("unmarshal field context_info: %w", err)
				}
			}
		case processingatom.FieldSemanticVec:
			if value, ok := values[i].(*pgvector.Vector); !ok {
				return fmt.Errorf("unexpected type %T for field semantic_vec", values[i])
			} else if value != nil {
				_m.SemanticVec = *value
			}
		case processingatom.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case processingatom.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProcessingAtom.
// This includes values selected through modifiers, order, etc.
func (_m *ProcessingAtom) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDoc queries the "doc" edge of the ProcessingAtom entity.
func (_m *ProcessingAtom) QueryDoc() *SourceDocQuery {
	return NewProcessingAtomClient(_m.config).QueryDoc(_m)
}

// QueryTraces queries the "traces" edge of the ProcessingAtom entity.
func (_m *ProcessingAtom) QueryTraces() *AgentTraceQuery {
	return NewProcessingAtomClient(_m.config).QueryTraces(_m)
}

// Update returns a builder for updating this ProcessingAtom.
// Note that you need to call ProcessingAtom.Unwrap() before calling this method if this ProcessingAtom
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProcessingAtom) Update() *ProcessingAtomUpdateOne {
	return NewProcessingAtomClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProcessingAtom entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProcessingAtom) Unwrap() *ProcessingAtom {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProcessingAtom is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProcessingAtom) String() string {
	var builder strings.Builder
	builder.WriteString("ProcessingAtom(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("doc_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocID))
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("source_text=")
	builder.WriteString(_m.SourceText)
	builder.WriteString(", ")
	builder.WriteString("source_hash=")
	builder.WriteString(_m.SourceHash)
	builder.WriteString(", ")
	if v := _m.TranslatedText; v != nil {
		builder.WriteString("translated_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status_code=")
	builder.WriteString(fmt.Sprintf("%v", _m.StatusCode))
	builder.WriteString(", ")
	if v := _m.QualityScore; v != nil {
		builder.WriteString("quality_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("examination=")
	builder.WriteString(fmt.Sprintf("%v", _m.Examination))
	builder.WriteString(", ")
	builder.WriteString("context_info=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContextInfo))
	builder.WriteString(", ")
	builder.WriteString("semantic_vec=")
	builder.WriteString(fmt.Sprintf("%v", _m.SemanticVec))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProcessingAtoms is a parsable slice of ProcessingAtom.
type ProcessingAtoms []*ProcessingAtom
