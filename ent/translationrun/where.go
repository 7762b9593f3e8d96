// Code generated by ent, DO NOT EDIT.

package translationrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/linguaflow/linguaflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldContainsFold(FieldID, id))
}

// WorkID applies equality check predicate on the "work_id" field. It's identical to WorkIDEQ.
func WorkID(v int) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldEQ(FieldWorkID, v))
}

// ProjectPath applies equality check predicate on the "project_path" field. It's identical to ProjectPathEQ.
func ProjectPath(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldEQ(FieldProjectPath, v))
}

// OutputPath applies equality check predicate on the "output_path" field. It's identical to OutputPathEQ.
func OutputPath(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldEQ(FieldOutputPath, v))
}

// CurrentStage applies equality check predicate on the "current_stage" field. It's identical to CurrentStageEQ.
func CurrentStage(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldEQ(FieldCurrentStage, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldEQ(FieldErrorMessage, v))
}

// WorkerID applies equality check predicate on the "worker_id" field. It's identical to WorkerIDEQ.
func WorkerID(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldEQ(FieldWorkerID, v))
}

// ClaimedAt applies equality check predicate on the "claimed_at" field. It's identical to ClaimedAtEQ.
func ClaimedAt(v time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldEQ(FieldClaimedAt, v))
}

// HeartbeatAt applies equality check predicate on the "heartbeat_at" field. It's identical to HeartbeatAtEQ.
func HeartbeatAt(v time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldEQ(FieldHeartbeatAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldEQ(FieldCreatedAt, v))
}

// WorkIDEQ applies the EQ predicate on the "work_id" field.
func WorkIDEQ(v int) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldEQ(FieldWorkID, v))
}

// WorkIDNEQ applies the NEQ predicate on the "work_id" field.
func WorkIDNEQ(v int) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldNEQ(FieldWorkID, v))
}

// WorkIDIn applies the In predicate on the "work_id" field.
func WorkIDIn(vs ...int) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldIn(FieldWorkID, vs...))
}

// WorkIDNotIn applies the NotIn predicate on the "work_id" field.
func WorkIDNotIn(vs ...int) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldNotIn(FieldWorkID, vs...))
}

// WorkIDIsNil applies the IsNil predicate on the "work_id" field.
func WorkIDIsNil() predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldIsNull(FieldWorkID))
}

// WorkIDNotNil applies the NotNil predicate on the "work_id" field.
func WorkIDNotNil() predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldNotNull(FieldWorkID))
}

// ProjectPathEQ applies the EQ predicate on the "project_path" field.
func ProjectPathEQ(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldEQ(FieldProjectPath, v))
}

// ProjectPathNEQ applies the NEQ predicate on the "project_path" field.
func ProjectPathNEQ(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldNEQ(FieldProjectPath, v))
}

// ProjectPathIn applies the In predicate on the "project_path" field.
func ProjectPathIn(vs ...string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldIn(FieldProjectPath, vs...))
}

// ProjectPathNotIn applies the NotIn predicate on the "project_path" field.
func ProjectPathNotIn(vs ...string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldNotIn(FieldProjectPath, vs...))
}

// ProjectPathGT applies the GT predicate on the "project_path" field.
func ProjectPathGT(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldGT(FieldProjectPath, v))
}

// ProjectPathGTE applies the GTE predicate on the "project_path" field.
func ProjectPathGTE(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldGTE(FieldProjectPath, v))
}

// ProjectPathLT applies the LT predicate on the "project_path" field.
func ProjectPathLT(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldLT(FieldProjectPath, v))
}

// ProjectPathLTE applies the LTE predicate on the "project_path" field.
func ProjectPathLTE(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldLTE(FieldProjectPath, v))
}

// ProjectPathContains applies the Contains predicate on the "project_path" field.
func ProjectPathContains(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldContains(FieldProjectPath, v))
}

// ProjectPathHasPrefix applies the HasPrefix predicate on the "project_path" field.
func ProjectPathHasPrefix(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldHasPrefix(FieldProjectPath, v))
}

// ProjectPathHasSuffix applies the HasSuffix predicate on the "project_path" field.
func ProjectPathHasSuffix(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldHasSuffix(FieldProjectPath, v))
}

// ProjectPathEqualFold applies the EqualFold predicate on the "project_path" field.
func ProjectPathEqualFold(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldEqualFold(FieldProjectPath, v))
}

// ProjectPathContainsFold applies the ContainsFold predicate on the "project_path" field.
func ProjectPathContainsFold(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldContainsFold(FieldProjectPath, v))
}

// OutputPathEQ applies the EQ predicate on the "output_path" field.
func OutputPathEQ(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldEQ(FieldOutputPath, v))
}

// OutputPathNEQ applies the NEQ predicate on the "output_path" field.
func OutputPathNEQ(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldNEQ(FieldOutputPath, v))
}

// OutputPathIn applies the In predicate on the "output_path" field.
func OutputPathIn(vs ...string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldIn(FieldOutputPath, vs...))
}

// OutputPathNotIn applies the NotIn predicate on the "output_path" field.
func OutputPathNotIn(vs ...string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldNotIn(FieldOutputPath, vs...))
}

// OutputPathGT applies the GT predicate on the "output_path" field.
func OutputPathGT(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldGT(FieldOutputPath, v))
}

// OutputPathGTE applies the GTE predicate on the "output_path" field.
func OutputPathGTE(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldGTE(FieldOutputPath, v))
}

// OutputPathLT applies the LT predicate on the "output_path" field.
func OutputPathLT(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldLT(FieldOutputPath, v))
}

// OutputPathLTE applies the LTE predicate on the "output_path" field.
func OutputPathLTE(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldLTE(FieldOutputPath, v))
}

// OutputPathContains applies the Contains predicate on the "output_path" field.
func OutputPathContains(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldContains(FieldOutputPath, v))
}

// OutputPathHasPrefix applies the HasPrefix predicate on the "output_path" field.
func OutputPathHasPrefix(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldHasPrefix(FieldOutputPath, v))
}

// OutputPathHasSuffix applies the HasSuffix predicate on the "output_path" field.
func OutputPathHasSuffix(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldHasSuffix(FieldOutputPath, v))
}

// OutputPathEqualFold applies the EqualFold predicate on the "output_path" field.
func OutputPathEqualFold(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldEqualFold(FieldOutputPath, v))
}

// OutputPathContainsFold applies the ContainsFold predicate on the "output_path" field.
func OutputPathContainsFold(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldContainsFold(FieldOutputPath, v))
}

// ConfigOverridesIsNil applies the IsNil predicate on the "config_overrides" field.
func ConfigOverridesIsNil() predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldIsNull(FieldConfigOverrides))
}

// ConfigOverridesNotNil applies the NotNil predicate on the "config_overrides" field.
func ConfigOverridesNotNil() predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldNotNull(FieldConfigOverrides))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldNotIn(FieldStatus, vs...))
}

// CurrentStageEQ applies the EQ predicate on the "current_stage" field.
func CurrentStageEQ(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldEQ(FieldCurrentStage, v))
}

// CurrentStageNEQ applies the NEQ predicate on the "current_stage" field.
func CurrentStageNEQ(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldNEQ(FieldCurrentStage, v))
}

// CurrentStageIn applies the In predicate on the "current_stage" field.
func CurrentStageIn(vs ...string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldIn(FieldCurrentStage, vs...))
}

// CurrentStageNotIn applies the NotIn predicate on the "current_stage" field.
func CurrentStageNotIn(vs ...string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldNotIn(FieldCurrentStage, vs...))
}

// CurrentStageGT applies the GT predicate on the "current_stage" field.
func CurrentStageGT(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldGT(FieldCurrentStage, v))
}

// CurrentStageGTE applies the GTE predicate on the "current_stage" field.
func CurrentStageGTE(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldGTE(FieldCurrentStage, v))
}

// CurrentStageLT applies the LT predicate on the "current_stage" field.
func CurrentStageLT(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldLT(FieldCurrentStage, v))
}

// CurrentStageLTE applies the LTE predicate on the "current_stage" field.
func CurrentStageLTE(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldLTE(FieldCurrentStage, v))
}

// CurrentStageContains applies the Contains predicate on the "current_stage" field.
func CurrentStageContains(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldContains(FieldCurrentStage, v))
}

// CurrentStageHasPrefix applies the HasPrefix predicate on the "current_stage" field.
func CurrentStageHasPrefix(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldHasPrefix(FieldCurrentStage, v))
}

// CurrentStageHasSuffix applies the HasSuffix predicate on the "current_stage" field.
func CurrentStageHasSuffix(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldHasSuffix(FieldCurrentStage, v))
}

// CurrentStageIsNil applies the IsNil predicate on the "current_stage" field.
func CurrentStageIsNil() predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldIsNull(FieldCurrentStage))
}

// CurrentStageNotNil applies the NotNil predicate on the "current_stage" field.
func CurrentStageNotNil() predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldNotNull(FieldCurrentStage))
}

// CurrentStageEqualFold applies the EqualFold predicate on the "current_stage" field.
func CurrentStageEqualFold(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldEqualFold(FieldCurrentStage, v))
}

// CurrentStageContainsFold applies the ContainsFold predicate on the "current_stage" field.
func CurrentStageContainsFold(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldContainsFold(FieldCurrentStage, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldContainsFold(FieldErrorMessage, v))
}

// WorkerIDEQ applies the EQ predicate on the "worker_id" field.
func WorkerIDEQ(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldEQ(FieldWorkerID, v))
}

// WorkerIDNEQ applies the NEQ predicate on the "worker_id" field.
func WorkerIDNEQ(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldNEQ(FieldWorkerID, v))
}

// WorkerIDIn applies the In predicate on the "worker_id" field.
func WorkerIDIn(vs ...string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldIn(FieldWorkerID, vs...))
}

// WorkerIDNotIn applies the NotIn predicate on the "worker_id" field.
func WorkerIDNotIn(vs ...string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldNotIn(FieldWorkerID, vs...))
}

// WorkerIDGT applies the GT predicate on the "worker_id" field.
func WorkerIDGT(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldGT(FieldWorkerID, v))
}

// WorkerIDGTE applies the GTE predicate on the "worker_id" field.
func WorkerIDGTE(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldGTE(FieldWorkerID, v))
}

// WorkerIDLT applies the LT predicate on the "worker_id" field.
func WorkerIDLT(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldLT(FieldWorkerID, v))
}

// WorkerIDLTE applies the LTE predicate on the "worker_id" field.
func WorkerIDLTE(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldLTE(FieldWorkerID, v))
}

// WorkerIDContains applies the Contains predicate on the "worker_id" field.
func WorkerIDContains(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldContains(FieldWorkerID, v))
}

// WorkerIDHasPrefix applies the HasPrefix predicate on the "worker_id" field.
func WorkerIDHasPrefix(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldHasPrefix(FieldWorkerID, v))
}

// WorkerIDHasSuffix applies the HasSuffix predicate on the "worker_id" field.
func WorkerIDHasSuffix(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldHasSuffix(FieldWorkerID, v))
}

// WorkerIDIsNil applies the IsNil predicate on the "worker_id" field.
func WorkerIDIsNil() predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldIsNull(FieldWorkerID))
}

// WorkerIDNotNil applies the NotNil predicate on the "worker_id" field.
func WorkerIDNotNil() predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldNotNull(FieldWorkerID))
}

// WorkerIDEqualFold applies the EqualFold predicate on the "worker_id" field.
func WorkerIDEqualFold(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldEqualFold(FieldWorkerID, v))
}

// WorkerIDContainsFold applies the ContainsFold predicate on the "worker_id" field.
func WorkerIDContainsFold(v string) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldContainsFold(FieldWorkerID, v))
}

// ClaimedAtEQ applies the EQ predicate on the "claimed_at" field.
func ClaimedAtEQ(v time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldEQ(FieldClaimedAt, v))
}

// ClaimedAtNEQ applies the NEQ predicate on the "claimed_at" field.
func ClaimedAtNEQ(v time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldNEQ(FieldClaimedAt, v))
}

// ClaimedAtIn applies the In predicate on the "claimed_at" field.
func ClaimedAtIn(vs ...time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldIn(FieldClaimedAt, vs...))
}

// ClaimedAtNotIn applies the NotIn predicate on the "claimed_at" field.
func ClaimedAtNotIn(vs ...time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldNotIn(FieldClaimedAt, vs...))
}

// ClaimedAtGT applies the GT predicate on the "claimed_at" field.
func ClaimedAtGT(v time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldGT(FieldClaimedAt, v))
}

// ClaimedAtGTE applies the GTE predicate on the "claimed_at" field.
func ClaimedAtGTE(v time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldGTE(FieldClaimedAt, v))
}

// ClaimedAtLT applies the LT predicate on the "claimed_at" field.
func ClaimedAtLT(v time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldLT(FieldClaimedAt, v))
}

// ClaimedAtLTE applies the LTE predicate on the "claimed_at" field.
func ClaimedAtLTE(v time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldLTE(FieldClaimedAt, v))
}

// ClaimedAtIsNil applies the IsNil predicate on the "claimed_at" field.
func ClaimedAtIsNil() predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldIsNull(FieldClaimedAt))
}

// ClaimedAtNotNil applies the NotNil predicate on the "claimed_at" field.
func ClaimedAtNotNil() predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldNotNull(FieldClaimedAt))
}

// HeartbeatAtEQ applies the EQ predicate on the "heartbeat_at" field.
func HeartbeatAtEQ(v time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldEQ(FieldHeartbeatAt, v))
}

// HeartbeatAtNEQ applies the NEQ predicate on the "heartbeat_at" field.
func HeartbeatAtNEQ(v time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldNEQ(FieldHeartbeatAt, v))
}

// HeartbeatAtIn applies the In predicate on the "heartbeat_at" field.
func HeartbeatAtIn(vs ...time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldIn(FieldHeartbeatAt, vs...))
}

// HeartbeatAtNotIn applies the NotIn predicate on the "heartbeat_at" field.
func HeartbeatAtNotIn(vs ...time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldNotIn(FieldHeartbeatAt, vs...))
}

// HeartbeatAtGT applies the GT predicate on the "heartbeat_at" field.
func HeartbeatAtGT(v time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldGT(FieldHeartbeatAt, v))
}

// HeartbeatAtGTE applies the GTE predicate on the "heartbeat_at" field.
func HeartbeatAtGTE(v time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldGTE(FieldHeartbeatAt, v))
}

// HeartbeatAtLT applies the LT predicate on the "heartbeat_at" field.
func HeartbeatAtLT(v time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldLT(FieldHeartbeatAt, v))
}

// HeartbeatAtLTE applies the LTE predicate on the "heartbeat_at" field.
func HeartbeatAtLTE(v time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldLTE(FieldHeartbeatAt, v))
}

// HeartbeatAtIsNil applies the IsNil predicate on the "heartbeat_at" field.
func HeartbeatAtIsNil() predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldIsNull(FieldHeartbeatAt))
}

// HeartbeatAtNotNil applies the NotNil predicate on the "heartbeat_at" field.
func HeartbeatAtNotNil() predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldNotNull(FieldHeartbeatAt))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldNotNull(FieldCompletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TranslationRun {
	return predicate.TranslationRun(sql.FieldLTE(FieldCreatedAt, v))
}

// HasWork applies the HasEdge predicate on the "work" edge.
func HasWork() predicate.TranslationRun {
	return predicate.TranslationRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkTable, WorkColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkWith applies the HasEdge predicate on the "work" edge with a given conditions (other predicates).
func HasWorkWith(preds ...predicate.ProjectWork) predicate.TranslationRun {
	return predicate.TranslationRun(func(s *sql.Selector) {
		step := newWorkStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TranslationRun) predicate.TranslationRun {
	return predicate.TranslationRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TranslationRun) predicate.TranslationRun {
	return predicate.TranslationRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TranslationRun) predicate.TranslationRun {
	return predicate.TranslationRun(sql.NotPredicates(p))
}
