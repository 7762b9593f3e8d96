// Code generated by ent, DO NOT EDIT.

package sourcedoc

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the sourcedoc type in the database.
	Label = "source_doc"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldWorkID holds the string denoting the work_id field in the database.
	FieldWorkID = "work_id"
	// FieldFilePath holds the string denoting the file_path field in the database.
	FieldFilePath = "file_path"
	// FieldAtomCount holds the string denoting the atom_count field in the database.
	FieldAtomCount = "atom_count"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeWork holds the string denoting the work edge name in mutations.
	EdgeWork = "work"
	// EdgeAtoms holds the string denoting the atoms edge name in mutations.
	EdgeAtoms = "atoms"
	// Table holds the table name of the sourcedoc in the database.
	Table = "source_docs"
	// WorkTable is the table that holds the work relation/edge.
	WorkTable = "source_docs"
	// WorkInverseTable is the table name for the ProjectWork entity.
	// It exists in this package in order to avoid circular dependency with the "projectwork" package.
	WorkInverseTable = "project_works"
	// WorkColumn is the table column denoting the work relation/edge.
	WorkColumn = "work_id"
	// AtomsTable is the table that holds the atoms relation/edge.
	AtomsTable = "processing_atoms"
	// AtomsInverseTable is the table name for the ProcessingAtom entity.
	// It exists in this package in order to avoid circular dependency with the "processingatom" package.
	AtomsInverseTable = "processing_atoms"
	// AtomsColumn is the table column denoting the atoms relation/edge.
	AtomsColumn = "doc_id"
)

// Columns holds all SQL columns for sourcedoc fields.
var Columns = []string{
	FieldID,
	FieldWorkID,
	FieldFilePath,
	FieldAtomCount,
	FieldStatus,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultAtomCount holds the default value on creation for the "atom_count" field.
	DefaultAtomCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusProcessed Status = "processed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusProcessed:
		return nil
	default:
		return fmt.Errorf("sourcedoc: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the SourceDoc queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkID orders the results by the work_id field.
func ByWorkID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkID, opts...).ToFunc()
}

// ByFilePath orders the results by the file_path field.
func ByFilePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilePath, opts...).ToFunc()
}

// ByAtomCount orders the results by the atom_count field.
func ByAtomCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAtomCount, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByWorkField orders the results by work field.
func ByWorkField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWorkStep(), sql.OrderByField(field, opts...))
	}
}

// ByAtomsCount orders the results by atoms count.
func ByAtomsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAtomsStep(), opts...)
	}
}

// ByAtoms orders the results by atoms terms.
func ByAtoms(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAtomsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newWorkStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WorkTable, WorkColumn),
	)
}
func newAtomsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AtomsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AtomsTable, AtomsColumn),
	)
}
