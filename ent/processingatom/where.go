// Code generated by ent, DO NOT EDIT.

package processingatom

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/linguaflow/linguaflow/ent/predicate"
	pgvector "github.com/pgvector/pgvector-go"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldLTE(FieldID, id))
}

// DocID applies equality check predicate on the "doc_id" field. It's identical to DocIDEQ.
func DocID(v int) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldEQ(FieldDocID, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldEQ(FieldPosition, v))
}

// SourceText applies equality check predicate on the "source_text" field. It's identical to SourceTextEQ.
func SourceText(v string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldEQ(FieldSourceText, v))
}

// SourceHash applies equality check predicate on the "source_hash" field. It's identical to SourceHashEQ.
func SourceHash(v string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldEQ(FieldSourceHash, v))
}

// TranslatedText applies equality check predicate on the "translated_text" field. It's identical to TranslatedTextEQ.
func TranslatedText(v string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldEQ(FieldTranslatedText, v))
}

// StatusCode applies equality check predicate on the "status_code" field. It's identical to StatusCodeEQ.
func StatusCode(v int) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldEQ(FieldStatusCode, v))
}

// QualityScore applies equality check predicate on the "quality_score" field. It's identical to QualityScoreEQ.
func QualityScore(v float64) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldEQ(FieldQualityScore, v))
}

// SemanticVec applies equality check predicate on the "semantic_vec" field. It's identical to SemanticVecEQ.
func SemanticVec(v pgvector.Vector) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldEQ(FieldSemanticVec, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldEQ(FieldUpdatedAt, v))
}

// DocIDEQ applies the EQ predicate on the "doc_id" field.
func DocIDEQ(v int) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldEQ(FieldDocID, v))
}

// DocIDNEQ applies the NEQ predicate on the "doc_id" field.
func DocIDNEQ(v int) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldNEQ(FieldDocID, v))
}

// DocIDIn applies the In predicate on the "doc_id" field.
func DocIDIn(vs ...int) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldIn(FieldDocID, vs...))
}

// DocIDNotIn applies the NotIn predicate on the "doc_id" field.
func DocIDNotIn(vs ...int) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldNotIn(FieldDocID, vs...))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldLTE(FieldPosition, v))
}

// SourceTextEQ applies the EQ predicate on the "source_text" field.
func SourceTextEQ(v string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldEQ(FieldSourceText, v))
}

// SourceTextNEQ applies the NEQ predicate on the "source_text" field.
func SourceTextNEQ(v string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldNEQ(FieldSourceText, v))
}

// SourceTextIn applies the In predicate on the "source_text" field.
func SourceTextIn(vs ...string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldIn(FieldSourceText, vs...))
}

// SourceTextNotIn applies the NotIn predicate on the "source_text" field.
func SourceTextNotIn(vs ...string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldNotIn(FieldSourceText, vs...))
}

// SourceTextGT applies the GT predicate on the "source_text" field.
func SourceTextGT(v string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldGT(FieldSourceText, v))
}

// SourceTextGTE applies the GTE predicate on the "source_text" field.
func SourceTextGTE(v string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldGTE(FieldSourceText, v))
}

// SourceTextLT applies the LT predicate on the "source_text" field.
func SourceTextLT(v string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldLT(FieldSourceText, v))
}

// SourceTextLTE applies the LTE predicate on the "source_text" field.
func SourceTextLTE(v string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldLTE(FieldSourceText, v))
}

// SourceTextContains applies the Contains predicate on the "source_text" field.
func SourceTextContains(v string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldContains(FieldSourceText, v))
}

// SourceTextHasPrefix applies the HasPrefix predicate on the "source_text" field.
func SourceTextHasPrefix(v string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldHasPrefix(FieldSourceText, v))
}

// SourceTextHasSuffix applies the HasSuffix predicate on the "source_text" field.
func SourceTextHasSuffix(v string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldHasSuffix(FieldSourceText, v))
}

// SourceTextEqualFold applies the EqualFold predicate on the "source_text" field.
func SourceTextEqualFold(v string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldEqualFold(FieldSourceText, v))
}

// SourceTextContainsFold applies the ContainsFold predicate on the "source_text" field.
func SourceTextContainsFold(v string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldContainsFold(FieldSourceText, v))
}

// SourceHashEQ applies the EQ predicate on the "source_hash" field.
func SourceHashEQ(v string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldEQ(FieldSourceHash, v))
}

// SourceHashNEQ applies the NEQ predicate on the "source_hash" field.
func SourceHashNEQ(v string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldNEQ(FieldSourceHash, v))
}

// SourceHashIn applies the In predicate on the "source_hash" field.
func SourceHashIn(vs ...string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldIn(FieldSourceHash, vs...))
}

// SourceHashNotIn applies the NotIn predicate on the "source_hash" field.
func SourceHashNotIn(vs ...string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldNotIn(FieldSourceHash, vs...))
}

// SourceHashGT applies the GT predicate on the "source_hash" field.
func SourceHashGT(v string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldGT(FieldSourceHash, v))
}

// SourceHashGTE applies the GTE predicate on the "source_hash" field.
func SourceHashGTE(v string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldGTE(FieldSourceHash, v))
}

// SourceHashLT applies the LT predicate on the "source_hash" field.
func SourceHashLT(v string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldLT(FieldSourceHash, v))
}

// SourceHashLTE applies the LTE predicate on the "source_hash" field.
func SourceHashLTE(v string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldLTE(FieldSourceHash, v))
}

// SourceHashContains applies the Contains predicate on the "source_hash" field.
func SourceHashContains(v string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldContains(FieldSourceHash, v))
}

// SourceHashHasPrefix applies the HasPrefix predicate on the "source_hash" field.
func SourceHashHasPrefix(v string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldHasPrefix(FieldSourceHash, v))
}

// SourceHashHasSuffix applies the HasSuffix predicate on the "source_hash" field.
func SourceHashHasSuffix(v string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldHasSuffix(FieldSourceHash, v))
}

// SourceHashEqualFold applies the EqualFold predicate on the "source_hash" field.
func SourceHashEqualFold(v string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldEqualFold(FieldSourceHash, v))
}

// SourceHashContainsFold applies the ContainsFold predicate on the "source_hash" field.
func SourceHashContainsFold(v string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldContainsFold(FieldSourceHash, v))
}

// TranslatedTextEQ applies the EQ predicate on the "translated_text" field.
func TranslatedTextEQ(v string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldEQ(FieldTranslatedText, v))
}

// TranslatedTextNEQ applies the NEQ predicate on the "translated_text" field.
func TranslatedTextNEQ(v string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldNEQ(FieldTranslatedText, v))
}

// TranslatedTextIn applies the In predicate on the "translated_text" field.
func TranslatedTextIn(vs ...string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldIn(FieldTranslatedText, vs...))
}

// TranslatedTextNotIn applies the NotIn predicate on the "translated_text" field.
func TranslatedTextNotIn(vs ...string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldNotIn(FieldTranslatedText, vs...))
}

// TranslatedTextGT applies the GT predicate on the "translated_text" field.
func TranslatedTextGT(v string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldGT(FieldTranslatedText, v))
}

// TranslatedTextGTE applies the GTE predicate on the "translated_text" field.
func TranslatedTextGTE(v string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldGTE(FieldTranslatedText, v))
}

// TranslatedTextLT applies the LT predicate on the "translated_text" field.
func TranslatedTextLT(v string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldLT(FieldTranslatedText, v))
}

// TranslatedTextLTE applies the LTE predicate on the "translated_text" field.
func TranslatedTextLTE(v string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldLTE(FieldTranslatedText, v))
}

// TranslatedTextContains applies the Contains predicate on the "translated_text" field.
func TranslatedTextContains(v string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldContains(FieldTranslatedText, v))
}

// TranslatedTextHasPrefix applies the HasPrefix predicate on the "translated_text" field.
func TranslatedTextHasPrefix(v string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldHasPrefix(FieldTranslatedText, v))
}

// TranslatedTextHasSuffix applies the HasSuffix predicate on the "translated_text" field.
func TranslatedTextHasSuffix(v string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldHasSuffix(FieldTranslatedText, v))
}

// TranslatedTextIsNil applies the IsNil predicate on the "translated_text" field.
func TranslatedTextIsNil() predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldIsNull(FieldTranslatedText))
}

// TranslatedTextNotNil applies the NotNil predicate on the "translated_text" field.
func TranslatedTextNotNil() predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldNotNull(FieldTranslatedText))
}

// TranslatedTextEqualFold applies the EqualFold predicate on the "translated_text" field.
func TranslatedTextEqualFold(v string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldEqualFold(FieldTranslatedText, v))
}

// TranslatedTextContainsFold applies the ContainsFold predicate on the "translated_text" field.
func TranslatedTextContainsFold(v string) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldContainsFold(FieldTranslatedText, v))
}

// StatusCodeEQ applies the EQ predicate on the "status_code" field.
func StatusCodeEQ(v int) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldEQ(FieldStatusCode, v))
}

// StatusCodeNEQ applies the NEQ predicate on the "status_code" field.
func StatusCodeNEQ(v int) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldNEQ(FieldStatusCode, v))
}

// StatusCodeIn applies the In predicate on the "status_code" field.
func StatusCodeIn(vs ...int) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldIn(FieldStatusCode, vs...))
}

// StatusCodeNotIn applies the NotIn predicate on the "status_code" field.
func StatusCodeNotIn(vs ...int) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldNotIn(FieldStatusCode, vs...))
}

// StatusCodeGT applies the GT predicate on the "status_code" field.
func StatusCodeGT(v int) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldGT(FieldStatusCode, v))
}

// StatusCodeGTE applies the GTE predicate on the "status_code" field.
func StatusCodeGTE(v int) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldGTE(FieldStatusCode, v))
}

// StatusCodeLT applies the LT predicate on the "status_code" field.
func StatusCodeLT(v int) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldLT(FieldStatusCode, v))
}

// StatusCodeLTE applies the LTE predicate on the "status_code" field.
func StatusCodeLTE(v int) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldLTE(FieldStatusCode, v))
}

// QualityScoreEQ applies the EQ predicate on the "quality_score" field.
func QualityScoreEQ(v float64) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldEQ(FieldQualityScore, v))
}

// QualityScoreNEQ applies the NEQ predicate on the "quality_score" field.
func QualityScoreNEQ(v float64) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldNEQ(FieldQualityScore, v))
}

// QualityScoreIn applies the In predicate on the "quality_score" field.
func QualityScoreIn(vs ...float64) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldIn(FieldQualityScore, vs...))
}

// QualityScoreNotIn applies the NotIn predicate on the "quality_score" field.
func QualityScoreNotIn(vs ...float64) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldNotIn(FieldQualityScore, vs...))
}

// QualityScoreGT applies the GT predicate on the "quality_score" field.
func QualityScoreGT(v float64) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldGT(FieldQualityScore, v))
}

// QualityScoreGTE applies the GTE predicate on the "quality_score" field.
func QualityScoreGTE(v float64) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldGTE(FieldQualityScore, v))
}

// QualityScoreLT applies the LT predicate on the "quality_score" field.
func QualityScoreLT(v float64) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldLT(FieldQualityScore, v))
}

// QualityScoreLTE applies the LTE predicate on the "quality_score" field.
func QualityScoreLTE(v float64) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldLTE(FieldQualityScore, v))
}

// QualityScoreIsNil applies the IsNil predicate on the "quality_score" field.
func QualityScoreIsNil() predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldIsNull(FieldQualityScore))
}

// QualityScoreNotNil applies the NotNil predicate on the "quality_score" field.
func QualityScoreNotNil() predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldNotNull(FieldQualityScore))
}

// ExaminationIsNil applies the IsNil predicate on the "examination" field.
func ExaminationIsNil() predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldIsNull(FieldExamination))
}

// ExaminationNotNil applies the NotNil predicate on the "examination" field.
func ExaminationNotNil() predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldNotNull(FieldExamination))
}

// ContextInfoIsNil applies the IsNil predicate on the "context_info" field.
func ContextInfoIsNil() predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldIsNull(FieldContextInfo))
}

// ContextInfoNotNil applies the NotNil predicate on the "context_info" field.
func ContextInfoNotNil() predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldNotNull(FieldContextInfo))
}

// SemanticVecEQ applies the EQ predicate on the "semantic_vec" field.
func SemanticVecEQ(v pgvector.Vector) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldEQ(FieldSemanticVec, v))
}

// SemanticVecNEQ applies the NEQ predicate on the "semantic_vec" field.
func SemanticVecNEQ(v pgvector.Vector) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldNEQ(FieldSemanticVec, v))
}

// SemanticVecIn applies the In predicate on the "semantic_vec" field.
func SemanticVecIn(vs ...pgvector.Vector) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldIn(FieldSemanticVec, vs...))
}

// SemanticVecNotIn applies the NotIn predicate on the "semantic_vec" field.
func SemanticVecNotIn(vs ...pgvector.Vector) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldNotIn(FieldSemanticVec, vs...))
}

// SemanticVecGT applies the GT predicate on the "semantic_vec" field.
func SemanticVecGT(v pgvector.Vector) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldGT(FieldSemanticVec, v))
}

// SemanticVecGTE applies the GTE predicate on the "semantic_vec" field.
func SemanticVecGTE(v pgvector.Vector) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldGTE(FieldSemanticVec, v))
}

// SemanticVecLT applies the LT predicate on the "semantic_vec" field.
func SemanticVecLT(v pgvector.Vector) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldLT(FieldSemanticVec, v))
}

// SemanticVecLTE applies the LTE predicate on the "semantic_vec" field.
func SemanticVecLTE(v pgvector.Vector) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldLTE(FieldSemanticVec, v))
}

// SemanticVecIsNil applies the IsNil predicate on the "semantic_vec" field.
func SemanticVecIsNil() predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldIsNull(FieldSemanticVec))
}

// SemanticVecNotNil applies the NotNil predicate on the "semantic_vec" field.
func SemanticVecNotNil() predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldNotNull(FieldSemanticVec))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasDoc applies the HasEdge predicate on the "doc" edge.
func HasDoc() predicate.ProcessingAtom {
	return predicate.ProcessingAtom(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocTable, DocColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocWith applies the HasEdge predicate on the "doc" edge with a given conditions (other predicates).
func HasDocWith(preds ...predicate.SourceDoc) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(func(s *sql.Selector) {
		step := newDocStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTraces applies the HasEdge predicate on the "traces" edge.
func HasTraces() predicate.ProcessingAtom {
	return predicate.ProcessingAtom(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TracesTable, TracesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTracesWith applies the HasEdge predicate on the "traces" edge with a given conditions (other predicates).
func HasTracesWith(preds ...predicate.AgentTrace) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(func(s *sql.Selector) {
		step := newTracesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProcessingAtom) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProcessingAtom) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProcessingAtom) predicate.ProcessingAtom {
	return predicate.ProcessingAtom(sql.NotPredicates(p))
}
