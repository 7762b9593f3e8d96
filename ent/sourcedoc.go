// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/linguaflow/linguaflow/ent/projectwork"
	"github.com/linguaflow/linguaflow/ent/sourcedoc"
)

// SourceDoc is the model entity for the SourceDoc schema.
type SourceDoc struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// WorkID holds the value of the "work_id" field.
	WorkID int `json:"work_id,omitempty"`
	// FilePath holds the value of the "file_path" field.
	FilePath string `json:"file_path,omitempty"`
	// AtomCount holds the value of the "atom_count" field.
	AtomCount int `json:"atom_count,omitempty"`
	// Status holds the value of the "status" field.
	Status sourcedoc.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SourceDocQuery when eager-loading is set.
	Edges        SourceDocEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SourceDocEdges holds the relations/edges for other nodes in the graph.
type SourceDocEdges struct {
	// Work holds the value of the work edge.
	Work *ProjectWork `json:"work,omitempty"`
	// Atoms holds the value of the atoms edge.
	Atoms []*ProcessingAtom `json:"atoms,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// WorkOrErr returns the Work value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SourceDocEdges) WorkOrErr() (*ProjectWork, error) {
	if e.Work != nil {
		return e.Work, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: projectwork.Label}
	}
	return nil, &NotLoadedError{edge: "work"}
}

// AtomsOrErr returns the Atoms value or an error if the edge
// was not loaded in eager-loading.
func (e SourceDocEdges) AtomsOrErr() ([]*ProcessingAtom, error) {
	if e.loadedTypes[1] {
		return e.Atoms, nil
	}
	return nil, &NotLoadedError{edge: "atoms"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SourceDoc) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sourcedoc.FieldID, sourcedoc.FieldWorkID, sourcedoc.FieldAtomCount:
			values[i] = new(sql.NullInt64)
		case sourcedoc.FieldFilePath, sourcedoc.FieldStatus:
			values[i] = new(sql.NullString)
		case sourcedoc.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SourceDoc fields.
func (_m *SourceDoc) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sourcedoc.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sourcedoc.FieldWorkID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field work_id", values[i])
			} else if value.Valid {
				_m.WorkID = int(value.Int64)
			}
		case sourcedoc.FieldFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_path", values[i])
			} else if value.Valid {
				_m.FilePath = value.String
			}
		case sourcedoc.FieldAtomCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field atom_count", values[i])
			} else if value.Valid {
				_m.AtomCount = int(value.Int64)
			}
		case sourcedoc.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = sourcedoc.Status(value.String)
			}
		case sourcedoc.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SourceDoc.
// This includes values selected through modifiers, order, etc.
func (_m *SourceDoc) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWork queries the "work" edge of the SourceDoc entity.
func (_m *SourceDoc) QueryWork() *ProjectWorkQuery {
	return NewSourceDocClient(_m.config).QueryWork(_m)
}

// QueryAtoms queries the "atoms" edge of the SourceDoc entity.
func (_m *SourceDoc) QueryAtoms() *ProcessingAtomQuery {
	return NewSourceDocClient(_m.config).QueryAtoms(_m)
}

// Update returns a builder for updating this SourceDoc.
// Note that you need to call SourceDoc.Unwrap() before calling this method if this SourceDoc
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SourceDoc) Update() *SourceDocUpdateOne {
	return NewSourceDocClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SourceDoc entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SourceDoc) Unwrap() *SourceDoc {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SourceDoc is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SourceDoc) String() string {
	var builder strings.Builder
	builder.WriteString("SourceDoc(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("work_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorkID))
	builder.WriteString(", ")
	builder.WriteString("file_path=")
	builder.WriteString(_m.FilePath)
	builder.WriteString(", ")
	builder.WriteString("atom_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AtomCount))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SourceDocs is a parsable slice of SourceDoc.
type SourceDocs []*SourceDoc
