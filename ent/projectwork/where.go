// Code generated by ent, DO NOT EDIT.

package projectwork

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/linguaflow/linguaflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldLTE(FieldID, id))
}

// WorkName applies equality check predicate on the "work_name" field. It's identical to WorkNameEQ.
func WorkName(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldEQ(FieldWorkName, v))
}

// SourceLang applies equality check predicate on the "source_lang" field. It's identical to SourceLangEQ.
func SourceLang(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldEQ(FieldSourceLang, v))
}

// TargetLang applies equality check predicate on the "target_lang" field. It's identical to TargetLangEQ.
func TargetLang(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldEQ(FieldTargetLang, v))
}

// TranslationGuide applies equality check predicate on the "translation_guide" field. It's identical to TranslationGuideEQ.
func TranslationGuide(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldEQ(FieldTranslationGuide, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldEQ(FieldUpdatedAt, v))
}

// WorkNameEQ applies the EQ predicate on the "work_name" field.
func WorkNameEQ(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldEQ(FieldWorkName, v))
}

// WorkNameNEQ applies the NEQ predicate on the "work_name" field.
func WorkNameNEQ(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldNEQ(FieldWorkName, v))
}

// WorkNameIn applies the In predicate on the "work_name" field.
func WorkNameIn(vs ...string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldIn(FieldWorkName, vs...))
}

// WorkNameNotIn applies the NotIn predicate on the "work_name" field.
func WorkNameNotIn(vs ...string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldNotIn(FieldWorkName, vs...))
}

// WorkNameGT applies the GT predicate on the "work_name" field.
func WorkNameGT(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldGT(FieldWorkName, v))
}

// WorkNameGTE applies the GTE predicate on the "work_name" field.
func WorkNameGTE(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldGTE(FieldWorkName, v))
}

// WorkNameLT applies the LT predicate on the "work_name" field.
func WorkNameLT(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldLT(FieldWorkName, v))
}

// WorkNameLTE applies the LTE predicate on the "work_name" field.
func WorkNameLTE(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldLTE(FieldWorkName, v))
}

// WorkNameContains applies the Contains predicate on the "work_name" field.
func WorkNameContains(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldContains(FieldWorkName, v))
}

// WorkNameHasPrefix applies the HasPrefix predicate on the "work_name" field.
func WorkNameHasPrefix(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldHasPrefix(FieldWorkName, v))
}

// WorkNameHasSuffix applies the HasSuffix predicate on the "work_name" field.
func WorkNameHasSuffix(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldHasSuffix(FieldWorkName, v))
}

// WorkNameEqualFold applies the EqualFold predicate on the "work_name" field.
func WorkNameEqualFold(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldEqualFold(FieldWorkName, v))
}

// WorkNameContainsFold applies the ContainsFold predicate on the "work_name" field.
func WorkNameContainsFold(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldContainsFold(FieldWorkName, v))
}

// SourceLangEQ applies the EQ predicate on the "source_lang" field.
func SourceLangEQ(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldEQ(FieldSourceLang, v))
}

// SourceLangNEQ applies the NEQ predicate on the "source_lang" field.
func SourceLangNEQ(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldNEQ(FieldSourceLang, v))
}

// SourceLangIn applies the In predicate on the "source_lang" field.
func SourceLangIn(vs ...string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldIn(FieldSourceLang, vs...))
}

// SourceLangNotIn applies the NotIn predicate on the "source_lang" field.
func SourceLangNotIn(vs ...string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldNotIn(FieldSourceLang, vs...))
}

// SourceLangGT applies the GT predicate on the "source_lang" field.
func SourceLangGT(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldGT(FieldSourceLang, v))
}

// SourceLangGTE applies the GTE predicate on the "source_lang" field.
func SourceLangGTE(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldGTE(FieldSourceLang, v))
}

// SourceLangLT applies the LT predicate on the "source_lang" field.
func SourceLangLT(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldLT(FieldSourceLang, v))
}

// SourceLangLTE applies the LTE predicate on the "source_lang" field.
func SourceLangLTE(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldLTE(FieldSourceLang, v))
}

// SourceLangContains applies the Contains predicate on the "source_lang" field.
func SourceLangContains(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldContains(FieldSourceLang, v))
}

// SourceLangHasPrefix applies the HasPrefix predicate on the "source_lang" field.
func SourceLangHasPrefix(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldHasPrefix(FieldSourceLang, v))
}

// SourceLangHasSuffix applies the HasSuffix predicate on the "source_lang" field.
func SourceLangHasSuffix(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldHasSuffix(FieldSourceLang, v))
}

// SourceLangEqualFold applies the EqualFold predicate on the "source_lang" field.
func SourceLangEqualFold(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldEqualFold(FieldSourceLang, v))
}

// SourceLangContainsFold applies the ContainsFold predicate on the "source_lang" field.
func SourceLangContainsFold(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldContainsFold(FieldSourceLang, v))
}

// TargetLangEQ applies the EQ predicate on the "target_lang" field.
func TargetLangEQ(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldEQ(FieldTargetLang, v))
}

// TargetLangNEQ applies the NEQ predicate on the "target_lang" field.
func TargetLangNEQ(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldNEQ(FieldTargetLang, v))
}

// TargetLangIn applies the In predicate on the "target_lang" field.
func TargetLangIn(vs ...string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldIn(FieldTargetLang, vs...))
}

// TargetLangNotIn applies the NotIn predicate on the "target_lang" field.
func TargetLangNotIn(vs ...string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldNotIn(FieldTargetLang, vs...))
}

// TargetLangGT applies the GT predicate on the "target_lang" field.
func TargetLangGT(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldGT(FieldTargetLang, v))
}

// TargetLangGTE applies the GTE predicate on the "target_lang" field.
func TargetLangGTE(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldGTE(FieldTargetLang, v))
}

// TargetLangLT applies the LT predicate on the "target_lang" field.
func TargetLangLT(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldLT(FieldTargetLang, v))
}

// TargetLangLTE applies the LTE predicate on the "target_lang" field.
func TargetLangLTE(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldLTE(FieldTargetLang, v))
}

// TargetLangContains applies the Contains predicate on the "target_lang" field.
func TargetLangContains(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldContains(FieldTargetLang, v))
}

// TargetLangHasPrefix applies the HasPrefix predicate on the "target_lang" field.
func TargetLangHasPrefix(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldHasPrefix(FieldTargetLang, v))
}

// TargetLangHasSuffix applies the HasSuffix predicate on the "target_lang" field.
func TargetLangHasSuffix(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldHasSuffix(FieldTargetLang, v))
}

// TargetLangEqualFold applies the EqualFold predicate on the "target_lang" field.
func TargetLangEqualFold(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldEqualFold(FieldTargetLang, v))
}

// TargetLangContainsFold applies the ContainsFold predicate on the "target_lang" field.
func TargetLangContainsFold(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldContainsFold(FieldTargetLang, v))
}

// ConfigIsNil applies the IsNil predicate on the "config" field.
func ConfigIsNil() predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldIsNull(FieldConfig))
}

// ConfigNotNil applies the NotNil predicate on the "config" field.
func ConfigNotNil() predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldNotNull(FieldConfig))
}

// TopicInfoIsNil applies the IsNil predicate on the "topic_info" field.
func TopicInfoIsNil() predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldIsNull(FieldTopicInfo))
}

// TopicInfoNotNil applies the NotNil predicate on the "topic_info" field.
func TopicInfoNotNil() predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldNotNull(FieldTopicInfo))
}

// TranslationGuideEQ applies the EQ predicate on the "translation_guide" field.
func TranslationGuideEQ(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldEQ(FieldTranslationGuide, v))
}

// TranslationGuideNEQ applies the NEQ predicate on the "translation_guide" field.
func TranslationGuideNEQ(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldNEQ(FieldTranslationGuide, v))
}

// TranslationGuideIn applies the In predicate on the "translation_guide" field.
func TranslationGuideIn(vs ...string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldIn(FieldTranslationGuide, vs...))
}

// TranslationGuideNotIn applies the NotIn predicate on the "translation_guide" field.
func TranslationGuideNotIn(vs ...string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldNotIn(FieldTranslationGuide, vs...))
}

// TranslationGuideGT applies the GT predicate on the "translation_guide" field.
func TranslationGuideGT(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldGT(FieldTranslationGuide, v))
}

// TranslationGuideGTE applies the GTE predicate on the "translation_guide" field.
func TranslationGuideGTE(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldGTE(FieldTranslationGuide, v))
}

// TranslationGuideLT applies the LT predicate on the "translation_guide" field.
func TranslationGuideLT(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldLT(FieldTranslationGuide, v))
}

// TranslationGuideLTE applies the LTE predicate on the "translation_guide" field.
func TranslationGuideLTE(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldLTE(FieldTranslationGuide, v))
}

// TranslationGuideContains applies the Contains predicate on the "translation_guide" field.
func TranslationGuideContains(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldContains(FieldTranslationGuide, v))
}

// TranslationGuideHasPrefix applies the HasPrefix predicate on the "translation_guide" field.
func TranslationGuideHasPrefix(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldHasPrefix(FieldTranslationGuide, v))
}

// TranslationGuideHasSuffix applies the HasSuffix predicate on the "translation_guide" field.
func TranslationGuideHasSuffix(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldHasSuffix(FieldTranslationGuide, v))
}

// TranslationGuideIsNil applies the IsNil predicate on the "translation_guide" field.
func TranslationGuideIsNil() predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldIsNull(FieldTranslationGuide))
}

// TranslationGuideNotNil applies the NotNil predicate on the "translation_guide" field.
func TranslationGuideNotNil() predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldNotNull(FieldTranslationGuide))
}

// TranslationGuideEqualFold applies the EqualFold predicate on the "translation_guide" field.
func TranslationGuideEqualFold(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldEqualFold(FieldTranslationGuide, v))
}

// TranslationGuideContainsFold applies the ContainsFold predicate on the "translation_guide" field.
func TranslationGuideContainsFold(v string) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldContainsFold(FieldTranslationGuide, v))
}

// PromptTemplatesIsNil applies the IsNil predicate on the "prompt_templates" field.
func PromptTemplatesIsNil() predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldIsNull(FieldPromptTemplates))
}

// PromptTemplatesNotNil applies the NotNil predicate on the "prompt_templates" field.
func PromptTemplatesNotNil() predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldNotNull(FieldPromptTemplates))
}

// ExtraIsNil applies the IsNil predicate on the "extra" field.
func ExtraIsNil() predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldIsNull(FieldExtra))
}

// ExtraNotNil applies the NotNil predicate on the "extra" field.
func ExtraNotNil() predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldNotNull(FieldExtra))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ProjectWork {
	return predicate.ProjectWork(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasDocs applies the HasEdge predicate on the "docs" edge.
func HasDocs() predicate.ProjectWork {
	return predicate.ProjectWork(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DocsTable, DocsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocsWith applies the HasEdge predicate on the "docs" edge with a given conditions (other predicates).
func HasDocsWith(preds ...predicate.SourceDoc) predicate.ProjectWork {
	return predicate.ProjectWork(func(s *sql.Selector) {
		step := newDocsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasKnowledgeEntries applies the HasEdge predicate on the "knowledge_entries" edge.
func HasKnowledgeEntries() predicate.ProjectWork {
	return predicate.ProjectWork(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, KnowledgeEntriesTable, KnowledgeEntriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasKnowledgeEntriesWith applies the HasEdge predicate on the "knowledge_entries" edge with a given conditions (other predicates).
func HasKnowledgeEntriesWith(preds ...predicate.KnowledgeBase) predicate.ProjectWork {
	return predicate.ProjectWork(func(s *sql.Selector) {
		step := newKnowledgeEntriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRuns applies the HasEdge predicate on the "runs" edge.
func HasRuns() predicate.ProjectWork {
	return predicate.ProjectWork(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RunsTable, RunsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunsWith applies the HasEdge predicate on the "runs" edge with a given conditions (other predicates).
func HasRunsWith(preds ...predicate.TranslationRun) predicate.ProjectWork {
	return predicate.ProjectWork(func(s *sql.Selector) {
		step := newRunsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProjectWork) predicate.ProjectWork {
	return predicate.ProjectWork(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProjectWork) predicate.ProjectWork {
	return predicate.ProjectWork(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProjectWork) predicate.ProjectWork {
	return predicate.ProjectWork(sql.NotPredicates(p))
}
