// Code generated by ent, DO NOT EDIT.

package processingatom

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the processingatom type in the database.
	Label = "processing_atom"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocID holds the string denoting the doc_id field in the database.
	FieldDocID = "doc_id"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldSourceText holds the string denoting the source_text field in the database.
	FieldSourceText = "source_text"
	// FieldSourceHash holds the string denoting the source_hash field in the database.
	FieldSourceHash = "source_hash"
	// FieldTranslatedText holds the string denoting the translated_text field in the database.
	FieldTranslatedText = "translated_text"
	// FieldStatusCode holds the string denoting the status_code field in the database.
	FieldStatusCode = "status_code"
	// FieldQualityScore holds the string denoting the quality_score field in the database.
	FieldQualityScore = "quality_score"
	// FieldExamination holds the string denoting the examination field in the database.
	FieldExamination = "examination"
	// FieldContextInfo holds the string denoting the context_info field in the database.
	FieldContextInfo = "context_info"
	// FieldSemanticVec holds the string denoting the semantic_vec field in the database.
	FieldSemanticVec = "semantic_vec"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeDoc holds the string denoting the doc edge name in mutations.
	EdgeDoc = "doc"
	// EdgeTraces holds the string denoting the traces edge name in mutations.
	EdgeTraces = "traces"
	// Table holds the table name of the processingatom in the database.
	Table = "processing_atoms"
	// DocTable is the table that holds the doc relation/edge.
	DocTable = "processing_atoms"
	// DocInverseTable is the table name for the SourceDoc entity.
	// It exists in this package in order to avoid circular dependency with the "sourcedoc" package.
	DocInverseTable = "source_docs"
	// DocColumn is the table column denoting the doc relation/edge.
	DocColumn = "doc_id"
	// TracesTable is the table that holds the traces relation/edge.
	TracesTable = "agent_traces"
	// TracesInverseTable is the table name for the AgentTrace entity.
	// It exists in this package in order to avoid circular dependency with the "agenttrace" package.
	TracesInverseTable = "agent_traces"
	// TracesColumn is the table column denoting the traces relation/edge.
	TracesColumn = "atom_id"
)

// Columns holds all SQL columns for processingatom fields.
var Columns = []string{
	FieldID,
	FieldDocID,
	FieldPosition,
	FieldSourceText,
	FieldSourceHash,
	FieldTranslatedText,
	FieldStatusCode,
	FieldQualityScore,
	FieldExamination,
	FieldContextInfo,
	FieldSemanticVec,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// SourceHashValidator is a validator for the "source_hash" field. It is called by the builders before save.
	SourceHashValidator func(string) error
	// DefaultStatusCode holds the default value on creation for the "status_code" field.
	DefaultStatusCode int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the ProcessingAtom queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocID orders the results by the doc_id field.
func ByDocID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocID, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// BySourceText orders the results by the source_text field.
func BySourceText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceText, opts...).ToFunc()
}

// BySourceHash orders the results by the source_hash field.
func BySourceHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceHash, opts...).ToFunc()
}

// ByTranslatedText orders the results by the translated_text field.
func ByTranslatedText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranslatedText, opts...).ToFunc()
}

// ByStatusCode orders the results by the status_code field.
func ByStatusCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatusCode, opts...).ToFunc()
}

// ByQualityScore orders the results by the quality_score field.
func ByQualityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQualityScore, opts...).ToFunc()
}

// BySemanticVec orders the results by the semantic_vec field.
func BySemanticVec(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSemanticVec, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDocField orders the results by doc field.
func ByDocField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocStep(), sql.OrderByField(field, opts...))
	}
}

// ByTracesCount orders the results by traces count.
func ByTracesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTracesStep(), opts...)
	}
}

// ByTraces orders the results by traces terms.
func ByTraces(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTracesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDocStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DocTable, DocColumn),
	)
}
func newTracesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TracesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TracesTable, TracesColumn),
	)
}
