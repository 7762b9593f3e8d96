// Code generated by ent, DO NOT EDIT.

package agenttrace

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agenttrace type in the database.
	Label = "agent_trace"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAtomID holds the string denoting the atom_id field in the database.
	FieldAtomID = "atom_id"
	// FieldAgentRole holds the string denoting the agent_role field in the database.
	FieldAgentRole = "agent_role"
	// FieldActionType holds the string denoting the action_type field in the database.
	FieldActionType = "action_type"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldQualityReport holds the string denoting the quality_report field in the database.
	FieldQualityReport = "quality_report"
	// FieldMetaData holds the string denoting the meta_data field in the database.
	FieldMetaData = "meta_data"
	// FieldInputTokens holds the string denoting the input_tokens field in the database.
	FieldInputTokens = "input_tokens"
	// FieldOutputTokens holds the string denoting the output_tokens field in the database.
	FieldOutputTokens = "output_tokens"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeAtom holds the string denoting the atom edge name in mutations.
	EdgeAtom = "atom"
	// Table holds the table name of the agenttrace in the database.
	Table = "agent_traces"
	// AtomTable is the table that holds the atom relation/edge.
	AtomTable = "agent_traces"
	// AtomInverseTable is the table name for the ProcessingAtom entity.
	// It exists in this package in order to avoid circular dependency with the "processingatom" package.
	AtomInverseTable = "processing_atoms"
	// AtomColumn is the table column denoting the atom relation/edge.
	AtomColumn = "atom_id"
)

// Columns holds all SQL columns for agenttrace fields.
var Columns = []string{
	FieldID,
	FieldAtomID,
	FieldAgentRole,
	FieldActionType,
	FieldContent,
	FieldQualityReport,
	FieldMetaData,
	FieldInputTokens,
	FieldOutputTokens,
	FieldIsActive,
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
	// DefaultInputTokens holds the default value on creation for the "input_tokens" field.
	DefaultInputTokens int
	// DefaultOutputTokens holds the default value on creation for the "output_tokens" field.
	DefaultOutputTokens int
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// AgentRole defines the type for the "agent_role" enum field.
type AgentRole string

// AgentRole values.
const (
	AgentRoleTranslator         AgentRole = "translator"
	AgentRoleQualityAssessor    AgentRole = "quality_assessor"
	AgentRoleConsistencyChecker AgentRole = "consistency_checker"
	AgentRoleHuman              AgentRole = "human"
)

func (ar AgentRole) String() string {
	return string(ar)
}

// AgentRoleValidator is a validator for the "agent_role" field enum values. It is called by the builders before save.
func AgentRoleValidator(ar AgentRole) error {
	switch ar {
	case AgentRoleTranslator, AgentRoleQualityAssessor, AgentRoleConsistencyChecker, AgentRoleHuman:
		return nil
	default:
		return fmt.Errorf("agenttrace: invalid enum value for agent_role field: %q", ar)
	}
}

// ActionType defines the type for the "action_type" enum field.
type ActionType string

// ActionType values.
const (
	ActionTypeDraft     ActionType = "draft"
	ActionTypeRefine    ActionType = "refine"
	ActionTypeEvaluate  ActionType = "evaluate"
	ActionTypeFinal     ActionType = "final"
	ActionTypeHumanEdit ActionType = "human_edit"
)

func (at ActionType) String() string {
	return string(at)
}

// ActionTypeValidator is a validator for the "action_type" field enum values. It is called by the builders before save.
func ActionTypeValidator(at ActionType) error {
	switch at {
	case ActionTypeDraft, ActionTypeRefine, ActionTypeEvaluate, ActionTypeFinal, ActionTypeHumanEdit:
		return nil
	default:
		return fmt.Errorf("agenttrace: invalid enum value for action_type field: %q", at)
	}
}

// OrderOption defines the ordering options for the AgentTrace queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAtomID orders the results by the atom_id field.
func ByAtomID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAtomID, opts...).ToFunc()
}

// ByAgentRole orders the results by the agent_role field.
func ByAgentRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentRole, opts...).ToFunc()
}

// ByActionType orders the results by the action_type field.
func ByActionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionType, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByInputTokens orders the results by the input_tokens field.
func ByInputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputTokens, opts...).ToFunc()
}

// ByOutputTokens orders the results by the output_tokens field.
func ByOutputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputTokens, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByAtomField orders the results by atom field.
func ByAtomField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAtomStep(), sql.OrderByField(field, opts...))
	}
}
func newAtomStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AtomInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AtomTable, AtomColumn),
	)
}
