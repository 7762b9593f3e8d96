// Code generated by ent, DO NOT EDIT.

package sourcedoc

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/linguaflow/linguaflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldLTE(FieldID, id))
}

// WorkID applies equality check predicate on the "work_id" field. It's identical to WorkIDEQ.
func WorkID(v int) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldEQ(FieldWorkID, v))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldEQ(FieldFilePath, v))
}

// AtomCount applies equality check predicate on the "atom_count" field. It's identical to AtomCountEQ.
func AtomCount(v int) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldEQ(FieldAtomCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldEQ(FieldCreatedAt, v))
}

// WorkIDEQ applies the EQ predicate on the "work_id" field.
func WorkIDEQ(v int) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldEQ(FieldWorkID, v))
}

// WorkIDNEQ applies the NEQ predicate on the "work_id" field.
func WorkIDNEQ(v int) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldNEQ(FieldWorkID, v))
}

// WorkIDIn applies the In predicate on the "work_id" field.
func WorkIDIn(vs ...int) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldIn(FieldWorkID, vs...))
}

// WorkIDNotIn applies the NotIn predicate on the "work_id" field.
func WorkIDNotIn(vs ...int) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldNotIn(FieldWorkID, vs...))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldContainsFold(FieldFilePath, v))
}

// AtomCountEQ applies the EQ predicate on the "atom_count" field.
func AtomCountEQ(v int) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldEQ(FieldAtomCount, v))
}

// AtomCountNEQ applies the NEQ predicate on the "atom_count" field.
func AtomCountNEQ(v int) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldNEQ(FieldAtomCount, v))
}

// AtomCountIn applies the In predicate on the "atom_count" field.
func AtomCountIn(vs ...int) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldIn(FieldAtomCount, vs...))
}

// AtomCountNotIn applies the NotIn predicate on the "atom_count" field.
func AtomCountNotIn(vs ...int) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldNotIn(FieldAtomCount, vs...))
}

// AtomCountGT applies the GT predicate on the "atom_count" field.
func AtomCountGT(v int) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldGT(FieldAtomCount, v))
}

// AtomCountGTE applies the GTE predicate on the "atom_count" field.
func AtomCountGTE(v int) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldGTE(FieldAtomCount, v))
}

// AtomCountLT applies the LT predicate on the "atom_count" field.
func AtomCountLT(v int) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldLT(FieldAtomCount, v))
}

// AtomCountLTE applies the LTE predicate on the "atom_count" field.
func AtomCountLTE(v int) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldLTE(FieldAtomCount, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SourceDoc {
	return predicate.SourceDoc(sql.FieldLTE(FieldCreatedAt, v))
}

// HasWork applies the HasEdge predicate on the "work" edge.
func HasWork() predicate.SourceDoc {
	return predicate.SourceDoc(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkTable, WorkColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkWith applies the HasEdge predicate on the "work" edge with a given conditions (other predicates).
func HasWorkWith(preds ...predicate.ProjectWork) predicate.SourceDoc {
	return predicate.SourceDoc(func(s *sql.Selector) {
		step := newWorkStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAtoms applies the HasEdge predicate on the "atoms" edge.
func HasAtoms() predicate.SourceDoc {
	return predicate.SourceDoc(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AtomsTable, AtomsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAtomsWith applies the HasEdge predicate on the "atoms" edge with a given conditions (other predicates).
func HasAtomsWith(preds ...predicate.ProcessingAtom) predicate.SourceDoc {
	return predicate.SourceDoc(func(s *sql.Selector) {
		step := newAtomsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SourceDoc) predicate.SourceDoc {
	return predicate.SourceDoc(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SourceDoc) predicate.SourceDoc {
	return predicate.SourceDoc(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SourceDoc) predicate.SourceDoc {
	return predicate.SourceDoc(sql.NotPredicates(p))
}
