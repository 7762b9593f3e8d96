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
	"github.com/linguaflow/linguaflow/ent/translationrun"
)

// TranslationRun is the model entity for the TranslationRun schema.
type TranslationRun struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Set once bootstrap creates or resumes the project work
	WorkID *int `json:"work_id,omitempty"`
	// ProjectPath holds the value of the "project_path" field.
	ProjectPath string `json:"project_path,omitempty"`
	// OutputPath holds the value of the "output_path" field.
	OutputPath string `json:"output_path,omitempty"`
	// ConfigOverrides holds the value of the "config_overrides" field.
	ConfigOverrides map[string]interface{} `json:"config_overrides,omitempty"`
	// Status holds the value of the "status" field.
	Status translationrun.Status `json:"status,omitempty"`
	// CurrentStage holds the value of the "current_stage" field.
	CurrentStage string `json:"current_stage,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// WorkerID holds the value of the "worker_id" field.
	WorkerID *string `json:"worker_id,omitempty"`
	// ClaimedAt holds the value of the "claimed_at" field.
	ClaimedAt *time.Time `json:"claimed_at,omitempty"`
	// For orphan detection
	HeartbeatAt *time.Time `json:"heartbeat_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TranslationRunQuery when eager-loading is set.
	Edges        TranslationRunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TranslationRunEdges holds the relations/edges for other nodes in the graph.
type TranslationRunEdges struct {
	// Work holds the value of the work edge.
	Work *ProjectWork `json:"work,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WorkOrErr returns the Work value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TranslationRunEdges) WorkOrErr() (*ProjectWork, error) {
	if e.Work != nil {
		return e.Work, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: projectwork.Label}
	}
	return nil, &NotLoadedError{edge: "work"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TranslationRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case translationrun.FieldConfigOverrides:
			values[i] = new([]byte)
		case translationrun.FieldWorkID:
			values[i] = new(sql.NullInt64)
		case translationrun.FieldID, translationrun.FieldProjectPath, translationrun.FieldOutputPath, translationrun.FieldStatus, translationrun.FieldCurrentStage, translationrun.FieldErrorMessage, translationrun.FieldWorkerID:
			values[i] = new(sql.NullString)
		case translationrun.FieldClaimedAt, translationrun.FieldHeartbeatAt, translationrun.FieldStartedAt, translationrun.FieldCompletedAt, translationrun.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TranslationRun fields.
func (_m *TranslationRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case translationrun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case translationrun.FieldWorkID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field work_id", values[i])
			} else if value.Valid {
				_m.WorkID = new(int)
				*_m.WorkID = int(value.Int64)
			}
		case translationrun.FieldProjectPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_path", values[i])
			} else if value.Valid {
				_m.ProjectPath = value.String
			}
		case translationrun.FieldOutputPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output_path", values[i])
			} else if value.Valid {
				_m.OutputPath = value.String
			}
		case translationrun.FieldConfigOverrides:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field config_overrides", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConfigOverrides); err != nil {
					return fmt.Errorf("unmarshal field config_overrides: %w", err)
				}
			}
		case translationrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = translationrun.Status(value.String)
			}
		case translationrun.FieldCurrentStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_stage", values[i])
			} else if value.Valid {
				_m.CurrentStage = value.String
			}
		case translationrun.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case translationrun.FieldWorkerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field worker_id", values[i])
			} else if value.Valid {
				_m.WorkerID = new(string)
				*_m.WorkerID = value.String
			}
		case translationrun.FieldClaimedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field claimed_at", values[i])
			} else if value.Valid {
				_m.ClaimedAt = new(time.Time)
				*_m.ClaimedAt = value.Time
			}
		case translationrun.FieldHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field heartbeat_at", values[i])
			} else if value.Valid {
				_m.HeartbeatAt = new(time.Time)
				*_m.HeartbeatAt = value.Time
			}
		case translationrun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case translationrun.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case translationrun.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TranslationRun.
// This includes values selected through modifiers, order, etc.
func (_m *TranslationRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWork queries the "work" edge of the TranslationRun entity.
func (_m *TranslationRun) QueryWork() *ProjectWorkQuery {
	return NewTranslationRunClient(_m.config).QueryWork(_m)
}

// Update returns a builder for updating this TranslationRun.
// Note that you need to call TranslationRun.Unwrap() before calling this method if this TranslationRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TranslationRun) Update() *TranslationRunUpdateOne {
	return NewTranslationRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TranslationRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TranslationRun) Unwrap() *TranslationRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TranslationRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TranslationRun) String() string {
	var builder strings.Builder
	builder.WriteString("TranslationRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.WorkID; v != nil {
		builder.WriteString("work_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("project_path=")
	builder.WriteString(_m.ProjectPath)
	builder.WriteString(", ")
	builder.WriteString("output_path=")
	builder.WriteString(_m.OutputPath)
	builder.WriteString(", ")
	builder.WriteString("config_overrides=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfigOverrides))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("current_stage=")
	builder.WriteString(_m.CurrentStage)
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.WorkerID; v != nil {
		builder.WriteString("worker_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ClaimedAt; v != nil {
		builder.WriteString("claimed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.HeartbeatAt; v != nil {
		builder.WriteString("heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TranslationRuns is a parsable slice of TranslationRun.
type TranslationRuns []*TranslationRun
