// Code generated by ent, DO NOT EDIT.

package projectwork

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the projectwork type in the database.
	Label = "project_work"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldWorkName holds the string denoting the work_name field in the database.
	FieldWorkName = "work_name"
	// FieldSourceLang holds the string denoting the source_lang field in the database.
	FieldSourceLang = "source_lang"
	// FieldTargetLang holds the string denoting the target_lang field in the database.
	FieldTargetLang = "target_lang"
	// FieldConfig holds the string denoting the config field in the database.
	FieldConfig = "config"
	// FieldTopicInfo holds the string denoting the topic_info field in the database.
	FieldTopicInfo = "topic_info"
	// FieldTranslationGuide holds the string denoting the translation_guide field in the database.
	FieldTranslationGuide = "translation_guide"
	// FieldPromptTemplates holds the string denoting the prompt_templates field in the database.
	FieldPromptTemplates = "prompt_templates"
	// FieldExtra holds the string denoting the extra field in the database.
	FieldExtra = "extra"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeDocs holds the string denoting the docs edge name in mutations.
	EdgeDocs = "docs"
	// EdgeKnowledgeEntries holds the string denoting the knowledge_entries edge name in mutations.
	EdgeKnowledgeEntries = "knowledge_entries"
	// EdgeRuns holds the string denoting the runs edge name in mutations.
	EdgeRuns = "runs"
	// TranslationRunFieldID holds the string denoting the ID field of the TranslationRun.
	TranslationRunFieldID = "run_id"
	// Table holds the table name of the projectwork in the database.
	Table = "project_works"
	// DocsTable is the table that holds the docs relation/edge.
	DocsTable = "source_docs"
	// DocsInverseTable is the table name for the SourceDoc entity.
	// It exists in this package in order to avoid circular dependency with the "sourcedoc" package.
	DocsInverseTable = "source_docs"
	// DocsColumn is the table column denoting the docs relation/edge.
	DocsColumn = "work_id"
	// KnowledgeEntriesTable is the table that holds the knowledge_entries relation/edge.
	KnowledgeEntriesTable = "knowledge_bases"
	// KnowledgeEntriesInverseTable is the table name for the KnowledgeBase entity.
	// It exists in this package in order to avoid circular dependency with the "knowledgebase" package.
	KnowledgeEntriesInverseTable = "knowledge_bases"
	// KnowledgeEntriesColumn is the table column denoting the knowledge_entries relation/edge.
	KnowledgeEntriesColumn = "work_id"
	// RunsTable is the table that holds the runs relation/edge.
	RunsTable = "translation_runs"
	// RunsInverseTable is the table name for the TranslationRun entity.
	// It exists in this package in order to avoid circular dependency with the "translationrun" package.
	RunsInverseTable = "translation_runs"
	// RunsColumn is the table column denoting the runs relation/edge.
	RunsColumn = "work_id"
)

// Columns holds all SQL columns for projectwork fields.
var Columns = []string{
	FieldID,
	FieldWorkName,
	FieldSourceLang,
	FieldTargetLang,
	FieldConfig,
	FieldTopicInfo,
	FieldTranslationGuide,
	FieldPromptTemplates,
	FieldExtra,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the ProjectWork queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkName orders the results by the work_name field.
func ByWorkName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkName, opts...).ToFunc()
}

// BySourceLang orders the results by the source_lang field.
func BySourceLang(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceLang, opts...).ToFunc()
}

// ByTargetLang orders the results by the target_lang field.
func ByTargetLang(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetLang, opts...).ToFunc()
}

// ByTranslationGuide orders the results by the translation_guide field.
func ByTranslationGuide(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranslationGuide, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDocsCount orders the results by docs count.
func ByDocsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDocsStep(), opts...)
	}
}

// ByDocs orders the results by docs terms.
func ByDocs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByKnowledgeEntriesCount orders the results by knowledge_entries count.
func ByKnowledgeEntriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newKnowledgeEntriesStep(), opts...)
	}
}

// ByKnowledgeEntries orders the results by knowledge_entries terms.
func ByKnowledgeEntries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newKnowledgeEntriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByRunsCount orders the results by runs count.
func ByRunsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRunsStep(), opts...)
	}
}

// ByRuns orders the results by runs terms.
func ByRuns(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDocsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DocsTable, DocsColumn),
	)
}
func newKnowledgeEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(KnowledgeEntriesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, KnowledgeEntriesTable, KnowledgeEntriesColumn),
	)
}
func newRunsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunsInverseTable, TranslationRunFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RunsTable, RunsColumn),
	)
}
