// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/linguaflow/linguaflow/ent/projectwork"
)

// ProjectWork is the model entity for the ProjectWork schema.
type ProjectWork struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Stable identifier, e.g. 'en2zh_1714041600'
	WorkName string `json:"work_name,omitempty"`
	// SourceLang holds the value of the "source_lang" field.
	SourceLang string `json:"source_lang,omitempty"`
	// TargetLang holds the value of the "target_lang" field.
	TargetLang string `json:"target_lang,omitempty"`
	// Workflow config blob captured at creation
	Config map[string]interface{} `json:"config,omitempty"`
	// Detected domain/style and their scores
	TopicInfo map[string]interface{} `json:"topic_info,omitempty"`
	// TranslationGuide holds the value of the "translation_guide" field.
	TranslationGuide *string `json:"translation_guide,omitempty"`
	// PromptTemplates holds the value of the "prompt_templates" field.
	PromptTemplates map[string]interface{} `json:"prompt_templates,omitempty"`
	// Resume map: db_doc_map, db_atom_map, term table
	Extra map[string]interface{} `json:"extra,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProjectWorkQuery when eager-loading is set.
	Edges        ProjectWorkEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProjectWorkEdges holds the relations/edges for other nodes in the graph.
type ProjectWorkEdges struct {
	// Docs holds the value of the docs edge.
	Docs []*SourceDoc `json:"docs,omitempty"`
	// KnowledgeEntries holds the value of the knowledge_entries edge.
	KnowledgeEntries []*KnowledgeBase `json:"knowledge_entries,omitempty"`
	// Runs holds the value of the runs edge.
	Runs []*TranslationRun `json:"runs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// DocsOrErr returns the Docs value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectWorkEdges) DocsOrErr() ([]*SourceDoc, error) {
	if e.loadedTypes[0] {
		return e.Docs, nil
	}
	return nil, &NotLoadedError{edge: "docs"}
}

// KnowledgeEntriesOrErr returns the KnowledgeEntries value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectWorkEdges) KnowledgeEntriesOrErr() ([]*KnowledgeBase, error) {
	if e.loadedTypes[1] {
		return e.KnowledgeEntries, nil
	}
	return nil, &NotLoadedError{edge: "knowledge_entries"}
}

// RunsOrErr returns the Runs value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectWorkEdges) RunsOrErr() ([]*TranslationRun, error) {
	if e.loadedTypes[2] {
		return e.Runs, nil
	}
	return nil, &NotLoadedError{edge: "runs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProjectWork) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case projectwork.FieldConfig, projectwork.FieldTopicInfo, projectwork.FieldPromptTemplates, projectwork.FieldExtra:
			values[i] = new([]byte)
		case projectwork.FieldID:
			values[i] = new(sql.NullInt64)
		case projectwork.FieldWorkName, projectwork.FieldSourceLang, projectwork.FieldTargetLang, projectwork.FieldTranslationGuide:
			values[i] = new(sql.NullString)
		case projectwork.FieldCreatedAt, projectwork.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProjectWork fields.
func (_m *ProjectWork) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case projectwork.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case projectwork.FieldWorkName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field work_name", values[i])
			} else if value.Valid {
				_m.WorkName = value.String
			}
		case projectwork.FieldSourceLang:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_lang", values[i])
			} else if value.Valid {
				_m.SourceLang = value.String
			}
		case projectwork.FieldTargetLang:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_lang", values[i])
			} else if value.Valid {
				_m.TargetLang = value.String
			}
		case projectwork.FieldConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Config); err != nil {
					return fmt.Errorf("unmarshal field config: %w", err)
				}
			}
		case projectwork.FieldTopicInfo:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field topic_info", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TopicInfo); err != nil {
					return fmt.Errorf("unmarshal field topic_info: %w", err)
				}
			}
		case projectwork.FieldTranslationGuide:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field translation_guide", values[i])
			} else if value.Valid {
				_m.TranslationGuide = new(string)
				*_m.TranslationGuide = value.String
			}
		case projectwork.FieldPromptTemplates:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_templates", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PromptTemplates); err != nil {
					return fmt.Errorf("unmarshal field prompt_templates: %w", err)
				}
			}
		case projectwork.FieldExtra:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extra", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Extra); err != nil {
					return fmt.Errorf("unmarshal field extra: %w", err)
				}
			}
		case projectwork.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case projectwork.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ProjectWork.
// This includes values selected through modifiers, order, etc.
func (_m *ProjectWork) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocs queries the "docs" edge of the ProjectWork entity.
func (_m *ProjectWork) QueryDocs() *SourceDocQuery {
	return NewProjectWorkClient(_m.config).QueryDocs(_m)
}

// QueryKnowledgeEntries queries the "knowledge_entries" edge of the ProjectWork entity.
func (_m *ProjectWork) QueryKnowledgeEntries() *KnowledgeBaseQuery {
	return NewProjectWorkClient(_m.config).QueryKnowledgeEntries(_m)
}

// QueryRuns queries the "runs" edge of the ProjectWork entity.
func (_m *ProjectWork) QueryRuns() *TranslationRunQuery {
	return NewProjectWorkClient(_m.config).QueryRuns(_m)
}

// Update returns a builder for updating this ProjectWork.
// Note that you need to call ProjectWork.Unwrap() before calling this method if this ProjectWork
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProjectWork) Update() *ProjectWorkUpdateOne {
	return NewProjectWorkClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProjectWork entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProjectWork) Unwrap() *ProjectWork {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProjectWork is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProjectWork) String() string {
	var builder strings.Builder
	builder.WriteString("ProjectWork(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("work_name=")
	builder.WriteString(_m.WorkName)
	builder.WriteString(", ")
	builder.WriteString("source_lang=")
	builder.WriteString(_m.SourceLang)
	builder.WriteString(", ")
	builder.WriteString("target_lang=")
	builder.WriteString(_m.TargetLang)
	builder.WriteString(", ")
	builder.WriteString("config=")
	builder.WriteString(fmt.Sprintf("%v", _m.Config))
	builder.WriteString(", ")
	builder.WriteString("topic_info=")
	builder.WriteString(fmt.Sprintf("%v", _m.TopicInfo))
	builder.WriteString(", ")
	if v := _m.TranslationGuide; v != nil {
		builder.WriteString("translation_guide=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("prompt_templates=")
	builder.WriteString(fmt.Sprintf("%v", _m.PromptTemplates))
	builder.WriteString(", ")
	builder.WriteString("extra=")
	builder.WriteString(fmt.Sprintf("%v", _m.Extra))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProjectWorks is a parsable slice of ProjectWork.
type ProjectWorks []*ProjectWork
