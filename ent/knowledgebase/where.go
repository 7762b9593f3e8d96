// Code generated by ent, DO NOT EDIT.

package knowledgebase

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/linguaflow/linguaflow/ent/predicate"
	pgvector "github.com/pgvector/pgvector-go"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldLTE(FieldID, id))
}

// WorkID applies equality check predicate on the "work_id" field. It's identical to WorkIDEQ.
func WorkID(v int) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldEQ(FieldWorkID, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldEQ(FieldContent, v))
}

// Vector applies equality check predicate on the "vector" field. It's identical to VectorEQ.
func Vector(v pgvector.Vector) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldEQ(FieldVector, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldEQ(FieldCreatedAt, v))
}

// WorkIDEQ applies the EQ predicate on the "work_id" field.
func WorkIDEQ(v int) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldEQ(FieldWorkID, v))
}

// WorkIDNEQ applies the NEQ predicate on the "work_id" field.
func WorkIDNEQ(v int) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldNEQ(FieldWorkID, v))
}

// WorkIDIn applies the In predicate on the "work_id" field.
func WorkIDIn(vs ...int) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldIn(FieldWorkID, vs...))
}

// WorkIDNotIn applies the NotIn predicate on the "work_id" field.
func WorkIDNotIn(vs ...int) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldNotIn(FieldWorkID, vs...))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldContainsFold(FieldContent, v))
}

// KBTypeEQ applies the EQ predicate on the "kb_type" field.
func KBTypeEQ(v KBType) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldEQ(FieldKBType, v))
}

// KBTypeNEQ applies the NEQ predicate on the "kb_type" field.
func KBTypeNEQ(v KBType) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldNEQ(FieldKBType, v))
}

// KBTypeIn applies the In predicate on the "kb_type" field.
func KBTypeIn(vs ...KBType) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldIn(FieldKBType, vs...))
}

// KBTypeNotIn applies the NotIn predicate on the "kb_type" field.
func KBTypeNotIn(vs ...KBType) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldNotIn(FieldKBType, vs...))
}

// VectorEQ applies the EQ predicate on the "vector" field.
func VectorEQ(v pgvector.Vector) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldEQ(FieldVector, v))
}

// VectorNEQ applies the NEQ predicate on the "vector" field.
func VectorNEQ(v pgvector.Vector) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldNEQ(FieldVector, v))
}

// VectorIn applies the In predicate on the "vector" field.
func VectorIn(vs ...pgvector.Vector) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldIn(FieldVector, vs...))
}

// VectorNotIn applies the NotIn predicate on the "vector" field.
func VectorNotIn(vs ...pgvector.Vector) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldNotIn(FieldVector, vs...))
}

// VectorGT applies the GT predicate on the "vector" field.
func VectorGT(v pgvector.Vector) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldGT(FieldVector, v))
}

// VectorGTE applies the GTE predicate on the "vector" field.
func VectorGTE(v pgvector.Vector) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldGTE(FieldVector, v))
}

// VectorLT applies the LT predicate on the "vector" field.
func VectorLT(v pgvector.Vector) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldLT(FieldVector, v))
}

// VectorLTE applies the LTE predicate on the "vector" field.
func VectorLTE(v pgvector.Vector) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldLTE(FieldVector, v))
}

// VectorIsNil applies the IsNil predicate on the "vector" field.
func VectorIsNil() predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldIsNull(FieldVector))
}

// VectorNotNil applies the NotNil predicate on the "vector" field.
func VectorNotNil() predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldNotNull(FieldVector))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldNotNull(FieldTags))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.FieldLTE(FieldCreatedAt, v))
}

// HasWork applies the HasEdge predicate on the "work" edge.
func HasWork() predicate.KnowledgeBase {
	return predicate.KnowledgeBase(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkTable, WorkColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkWith applies the HasEdge predicate on the "work" edge with a given conditions (other predicates).
func HasWorkWith(preds ...predicate.ProjectWork) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(func(s *sql.Selector) {
		step := newWorkStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.KnowledgeBase) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.KnowledgeBase) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.KnowledgeBase) predicate.KnowledgeBase {
	return predicate.KnowledgeBase(sql.NotPredicates(p))
}
