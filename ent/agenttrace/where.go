// Code generated by ent, DO NOT EDIT.

package agenttrace

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/linguaflow/linguaflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLTE(FieldID, id))
}

// AtomID applies equality check predicate on the "atom_id" field. It's identical to AtomIDEQ.
func AtomID(v int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldAtomID, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldContent, v))
}

// InputTokens applies equality check predicate on the "input_tokens" field. It's identical to InputTokensEQ.
func InputTokens(v int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldInputTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldOutputTokens, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldCreatedAt, v))
}

// AtomIDEQ applies the EQ predicate on the "atom_id" field.
func AtomIDEQ(v int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldAtomID, v))
}

// AtomIDNEQ applies the NEQ predicate on the "atom_id" field.
func AtomIDNEQ(v int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNEQ(FieldAtomID, v))
}

// AtomIDIn applies the In predicate on the "atom_id" field.
func AtomIDIn(vs ...int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIn(FieldAtomID, vs...))
}

// AtomIDNotIn applies the NotIn predicate on the "atom_id" field.
func AtomIDNotIn(vs ...int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotIn(FieldAtomID, vs...))
}

// AgentRoleEQ applies the EQ predicate on the "agent_role" field.
func AgentRoleEQ(v AgentRole) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldAgentRole, v))
}

// AgentRoleNEQ applies the NEQ predicate on the "agent_role" field.
func AgentRoleNEQ(v AgentRole) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNEQ(FieldAgentRole, v))
}

// AgentRoleIn applies the In predicate on the "agent_role" field.
func AgentRoleIn(vs ...AgentRole) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIn(FieldAgentRole, vs...))
}

// AgentRoleNotIn applies the NotIn predicate on the "agent_role" field.
func AgentRoleNotIn(vs ...AgentRole) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotIn(FieldAgentRole, vs...))
}

// ActionTypeEQ applies the EQ predicate on the "action_type" field.
func ActionTypeEQ(v ActionType) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldActionType, v))
}

// ActionTypeNEQ applies the NEQ predicate on the "action_type" field.
func ActionTypeNEQ(v ActionType) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNEQ(FieldActionType, v))
}

// ActionTypeIn applies the In predicate on the "action_type" field.
func ActionTypeIn(vs ...ActionType) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIn(FieldActionType, vs...))
}

// ActionTypeNotIn applies the NotIn predicate on the "action_type" field.
func ActionTypeNotIn(vs ...ActionType) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotIn(FieldActionType, vs...))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldHasSuffix(FieldContent, v))
}

// ContentIsNil applies the IsNil predicate on the "content" field.
func ContentIsNil() predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIsNull(FieldContent))
}

// ContentNotNil applies the NotNil predicate on the "content" field.
func ContentNotNil() predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotNull(FieldContent))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldContainsFold(FieldContent, v))
}

// QualityReportIsNil applies the IsNil predicate on the "quality_report" field.
func QualityReportIsNil() predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIsNull(FieldQualityReport))
}

// QualityReportNotNil applies the NotNil predicate on the "quality_report" field.
func QualityReportNotNil() predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotNull(FieldQualityReport))
}

// MetaDataIsNil applies the IsNil predicate on the "meta_data" field.
func MetaDataIsNil() predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIsNull(FieldMetaData))
}

// MetaDataNotNil applies the NotNil predicate on the "meta_data" field.
func MetaDataNotNil() predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotNull(FieldMetaData))
}

// InputTokensEQ applies the EQ predicate on the "input_tokens" field.
func InputTokensEQ(v int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldInputTokens, v))
}

// InputTokensNEQ applies the NEQ predicate on the "input_tokens" field.
func InputTokensNEQ(v int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNEQ(FieldInputTokens, v))
}

// InputTokensIn applies the In predicate on the "input_tokens" field.
func InputTokensIn(vs ...int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIn(FieldInputTokens, vs...))
}

// InputTokensNotIn applies the NotIn predicate on the "input_tokens" field.
func InputTokensNotIn(vs ...int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotIn(FieldInputTokens, vs...))
}

// InputTokensGT applies the GT predicate on the "input_tokens" field.
func InputTokensGT(v int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGT(FieldInputTokens, v))
}

// InputTokensGTE applies the GTE predicate on the "input_tokens" field.
func InputTokensGTE(v int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGTE(FieldInputTokens, v))
}

// InputTokensLT applies the LT predicate on the "input_tokens" field.
func InputTokensLT(v int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLT(FieldInputTokens, v))
}

// InputTokensLTE applies the LTE predicate on the "input_tokens" field.
func InputTokensLTE(v int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLTE(FieldInputTokens, v))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLTE(FieldOutputTokens, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAtom applies the HasEdge predicate on the "atom" edge.
func HasAtom() predicate.AgentTrace {
	return predicate.AgentTrace(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AtomTable, AtomColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAtomWith applies the HasEdge predicate on the "atom" edge with a given conditions (other predicates).
func HasAtomWith(preds ...predicate.ProcessingAtom) predicate.AgentTrace {
	return predicate.AgentTrace(func(s *sql.Selector) {
		step := newAtomStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentTrace) predicate.AgentTrace {
	return predicate.AgentTrace(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentTrace) predicate.AgentTrace {
	return predicate.AgentTrace(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentTrace) predicate.AgentTrace {
	return predicate.AgentTrace(sql.NotPredicates(p))
}
