// Code generated by ent, DO NOT EDIT.

package knowledgebase

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the knowledgebase type in the database.
	Label = "knowledge_base"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldWorkID holds the string denoting the work_id field in the database.
	FieldWorkID = "work_id"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldKBType holds the string denoting the kb_type field in the database.
	FieldKBType = "kb_type"
	// FieldVector holds the string denoting the vector field in the database.
	FieldVector = "vector"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeWork holds the string denoting the work edge name in mutations.
	EdgeWork = "work"
	// Table holds the table name of the knowledgebase in the database.
	Table = "knowledge_bases"
	// WorkTable is the table that holds the work relation/edge.
	WorkTable = "knowledge_bases"
	// WorkInverseTable is the table name for the ProjectWork entity.
	// It exists in this package in order to avoid circular dependency with the "projectwork" package.
	WorkInverseTable = "project_works"
	// WorkColumn is the table column denoting the work relation/edge.
	WorkColumn = "work_id"
)

// Columns holds all SQL columns for knowledgebase fields.
var Columns = []string{
	FieldID,
	FieldWorkID,
	FieldContent,
	FieldKBType,
	FieldVector,
	FieldTags,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// KBType defines the type for the "kb_type" enum field.
type KBType string

// KBType values.
const (
	KBTypeTm         KBType = "tm"
	KBTypeGlossary   KBType = "glossary"
	KBTypeStyleGuide KBType = "style_guide"
	KBTypeExternal   KBType = "external"
)

func (kt KBType) String() string {
	return string(kt)
}

// KBTypeValidator is a validator for the "kb_type" field enum values. It is called by the builders before save.
func KBTypeValidator(kt KBType) error {
	switch kt {
	case KBTypeTm, KBTypeGlossary, KBTypeStyleGuide, KBTypeExternal:
		return nil
	default:
		return fmt.Errorf("knowledgebase: invalid enum value for kb_type field: %q", kt)
	}
}

// OrderOption defines the ordering options for the KnowledgeBase queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkID orders the results by the work_id field.
func ByWorkID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkID, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByKBType orders the results by the kb_type field.
func ByKBType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKBType, opts...).ToFunc()
}

// ByVector orders the results by the vector field.
func ByVector(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVector, opts...).ToFunc()
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
func newWorkStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WorkTable, WorkColumn),
	)
}
