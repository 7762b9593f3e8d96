// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/linguaflow/linguaflow/ent/predicate"
	"github.com/linguaflow/linguaflow/ent/projectwork"
	"github.com/linguaflow/linguaflow/ent/translationrun"
)

// TranslationRunUpdate is the builder for updating TranslationRun entities.
type TranslationRunUpdate struct {
	config
	hooks    []Hook
	mutation *TranslationRunMutation
}

// Where appends a list predicates to the TranslationRunUpdate builder.
func (_u *TranslationRunUpdate) Where(ps ...predicate.TranslationRun) *TranslationRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkID sets the "work_id" field.
func (_u *TranslationRunUpdate) SetWorkID(v int) *TranslationRunUpdate {
	_u.mutation.SetWorkID(v)
	return _u
}

// SetNillableWorkID sets the "work_id" field if the given value is not nil.
func (_u *TranslationRunUpdate) SetNillableWorkID(v *int) *TranslationRunUpdate {
	if v != nil {
		_u.SetWorkID(*v)
	}
	return _u
}

// ClearWorkID clears the value of the "work_id" field.
func (_u *TranslationRunUpdate) ClearWorkID() *TranslationRunUpdate {
	_u.mutation.ClearWorkID()
	return _u
}

// SetProjectPath sets the "project_path" field.
func (_u *TranslationRunUpdate) SetProjectPath(v string) *TranslationRunUpdate {
	_u.mutation.SetProjectPath(v)
	return _u
}

// SetNillableProjectPath sets the "project_path" field if the given value is not nil.
func (_u *TranslationRunUpdate) SetNillableProjectPath(v *string) *TranslationRunUpdate {
	if v != nil {
		_u.SetProjectPath(*v)
	}
	return _u
}

// SetOutputPath sets the "output_path" field.
func (_u *TranslationRunUpdate) SetOutputPath(v string) *TranslationRunUpdate {
	_u.mutation.SetOutputPath(v)
	return _u
}

// SetNillableOutputPath sets the "output_path" field if the given value is not nil.
func (_u *TranslationRunUpdate) SetNillableOutputPath(v *string) *TranslationRunUpdate {
	if v != nil {
		_u.SetOutputPath(*v)
	}
	return _u
}

// SetConfigOverrides sets the "config_overrides" field.
func (_u *TranslationRunUpdate) SetConfigOverrides(v map[string]interface{}) *TranslationRunUpdate {
	_u.mutation.SetConfigOverrides(v)
	return _u
}

// ClearConfigOverrides clears the value of the "config_overrides" field.
func (_u *TranslationRunUpdate) ClearConfigOverrides() *TranslationRunUpdate {
	_u.mutation.ClearConfigOverrides()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TranslationRunUpdate) SetStatus(v translationrun.Status) *TranslationRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TranslationRunUpdate) SetNillableStatus(v *translationrun.Status) *TranslationRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentStage sets the "current_stage" field.
func (_u *TranslationRunUpdate) SetCurrentStage(v string) *TranslationRunUpdate {
	_u.mutation.SetCurrentStage(v)
	return _u
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_u *TranslationRunUpdate) SetNillableCurrentStage(v *string) *TranslationRunUpdate {
	if v != nil {
		_u.SetCurrentStage(*v)
	}
	return _u
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (_u *TranslationRunUpdate) ClearCurrentStage() *TranslationRunUpdate {
	_u.mutation.ClearCurrentStage()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TranslationRunUpdate) SetErrorMessage(v string) *TranslationRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TranslationRunUpdate) SetNillableErrorMessage(v *string) *TranslationRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TranslationRunUpdate) ClearErrorMessage() *TranslationRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *TranslationRunUpdate) SetWorkerID(v string) *TranslationRunUpdate {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *TranslationRunUpdate) SetNillableWorkerID(v *string) *TranslationRunUpdate {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *TranslationRunUpdate) ClearWorkerID() *TranslationRunUpdate {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *TranslationRunUpdate) SetClaimedAt(v time.Time) *TranslationRunUpdate {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *TranslationRunUpdate) SetNillableClaimedAt(v *time.Time) *TranslationRunUpdate {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *TranslationRunUpdate) ClearClaimedAt() *TranslationRunUpdate {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *TranslationRunUpdate) SetHeartbeatAt(v time.Time) *TranslationRunUpdate {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *TranslationRunUpdate) SetNillableHeartbeatAt(v *time.Time) *TranslationRunUpdate {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (_u *TranslationRunUpdate) ClearHeartbeatAt() *TranslationRunUpdate {
	_u.mutation.ClearHeartbeatAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TranslationRunUpdate) SetStartedAt(v time.Time) *TranslationRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TranslationRunUpdate) SetNillableStartedAt(v *time.Time) *TranslationRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TranslationRunUpdate) ClearStartedAt() *TranslationRunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TranslationRunUpdate) SetCompletedAt(v time.Time) *TranslationRunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TranslationRunUpdate) SetNillableCompletedAt(v *time.Time) *TranslationRunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TranslationRunUpdate) ClearCompletedAt() *TranslationRunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetWork sets the "work" edge to the ProjectWork entity.
func (_u *TranslationRunUpdate) SetWork(v *ProjectWork) *TranslationRunUpdate {
	return _u.SetWorkID(v.ID)
}

// Mutation returns the TranslationRunMutation object of the builder.
func (_u *TranslationRunUpdate) Mutation() *TranslationRunMutation {
	return _u.mutation
}

// ClearWork clears the "work" edge to the ProjectWork entity.
func (_u *TranslationRunUpdate) ClearWork() *TranslationRunUpdate {
	_u.mutation.ClearWork()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TranslationRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranslationRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TranslationRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranslationRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranslationRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := translationrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TranslationRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TranslationRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(translationrun.Table, translationrun.Columns, sqlgraph.NewFieldSpec(translationrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectPath(); ok {
		_spec.SetField(translationrun.FieldProjectPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.OutputPath(); ok {
		_spec.SetField(translationrun.FieldOutputPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfigOverrides(); ok {
		_spec.SetField(translationrun.FieldConfigOverrides, field.TypeJSON, value)
	}
	if _u.mutation.ConfigOverridesCleared() {
		_spec.ClearField(translationrun.FieldConfigOverrides, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(translationrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentStage(); ok {
		_spec.SetField(translationrun.FieldCurrentStage, field.TypeString, value)
	}
	if _u.mutation.CurrentStageCleared() {
		_spec.ClearField(translationrun.FieldCurrentStage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(translationrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(translationrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(translationrun.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(translationrun.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(translationrun.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(translationrun.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(translationrun.FieldHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.HeartbeatAtCleared() {
		_spec.ClearField(translationrun.FieldHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(translationrun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(translationrun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(translationrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(translationrun.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.WorkCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   translationrun.WorkTable,
			Columns: []string{translationrun.WorkColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(projectwork.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   translationrun.WorkTable,
			Columns: []string{translationrun.WorkColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(projectwork.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{translationrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TranslationRunUpdateOne is the builder for updating a single TranslationRun entity.
type TranslationRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TranslationRunMutation
}

// SetWorkID sets the "work_id" field.
func (_u *TranslationRunUpdateOne) SetWorkID(v int) *TranslationRunUpdateOne {
	_u.mutation.SetWorkID(v)
	return _u
}

// SetNillableWorkID sets the "work_id" field if the given value is not nil.
func (_u *TranslationRunUpdateOne) SetNillableWorkID(v *int) *TranslationRunUpdateOne {
	if v != nil {
		_u.SetWorkID(*v)
	}
	return _u
}

// ClearWorkID clears the value of the "work_id" field.
func (_u *TranslationRunUpdateOne) ClearWorkID() *TranslationRunUpdateOne {
	_u.mutation.ClearWorkID()
	return _u
}

// SetProjectPath sets the "project_path" field.
func (_u *TranslationRunUpdateOne) SetProjectPath(v string) *TranslationRunUpdateOne {
	_u.mutation.SetProjectPath(v)
	return _u
}

// SetNillableProjectPath sets the "project_path" field if the given value is not nil.
func (_u *TranslationRunUpdateOne) SetNillableProjectPath(v *string) *TranslationRunUpdateOne {
	if v != nil {
		_u.SetProjectPath(*v)
	}
	return _u
}

// SetOutputPath sets the "output_path" field.
func (_u *TranslationRunUpdateOne) SetOutputPath(v string) *TranslationRunUpdateOne {
	_u.mutation.SetOutputPath(v)
	return _u
}

// SetNillableOutputPath sets the "output_path" field if the given value is not nil.
func (_u *TranslationRunUpdateOne) SetNillableOutputPath(v *string) *TranslationRunUpdateOne {
	if v != nil {
		_u.SetOutputPath(*v)
	}
	return _u
}

// SetConfigOverrides sets the "config_overrides" field.
func (_u *TranslationRunUpdateOne) SetConfigOverrides(v map[string]interface{}) *TranslationRunUpdateOne {
	_u.mutation.SetConfigOverrides(v)
	return _u
}

// ClearConfigOverrides clears the value of the "config_overrides" field.
func (_u *TranslationRunUpdateOne) ClearConfigOverrides() *TranslationRunUpdateOne {
	_u.mutation.ClearConfigOverrides()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TranslationRunUpdateOne) SetStatus(v translationrun.Status) *TranslationRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TranslationRunUpdateOne) SetNillableStatus(v *translationrun.Status) *TranslationRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentStage sets the "current_stage" field.
func (_u *TranslationRunUpdateOne) SetCurrentStage(v string) *TranslationRunUpdateOne {
	_u.mutation.SetCurrentStage(v)
	return _u
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_u *TranslationRunUpdateOne) SetNillableCurrentStage(v *string) *TranslationRunUpdateOne {
	if v != nil {
		_u.SetCurrentStage(*v)
	}
	return _u
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (_u *TranslationRunUpdateOne) ClearCurrentStage() *TranslationRunUpdateOne {
	_u.mutation.ClearCurrentStage()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TranslationRunUpdateOne) SetErrorMessage(v string) *TranslationRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TranslationRunUpdateOne) SetNillableErrorMessage(v *string) *TranslationRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TranslationRunUpdateOne) ClearErrorMessage() *TranslationRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *TranslationRunUpdateOne) SetWorkerID(v string) *TranslationRunUpdateOne {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *TranslationRunUpdateOne) SetNillableWorkerID(v *string) *TranslationRunUpdateOne {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *TranslationRunUpdateOne) ClearWorkerID() *TranslationRunUpdateOne {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *TranslationRunUpdateOne) SetClaimedAt(v time.Time) *TranslationRunUpdateOne {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *TranslationRunUpdateOne) SetNillableClaimedAt(v *time.Time) *TranslationRunUpdateOne {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *TranslationRunUpdateOne) ClearClaimedAt() *TranslationRunUpdateOne {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *TranslationRunUpdateOne) SetHeartbeatAt(v time.Time) *TranslationRunUpdateOne {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *TranslationRunUpdateOne) SetNillableHeartbeatAt(v *time.Time) *TranslationRunUpdateOne {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (_u *TranslationRunUpdateOne) ClearHeartbeatAt() *TranslationRunUpdateOne {
	_u.mutation.ClearHeartbeatAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TranslationRunUpdateOne) SetStartedAt(v time.Time) *TranslationRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TranslationRunUpdateOne) SetNillableStartedAt(v *time.Time) *TranslationRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TranslationRunUpdateOne) ClearStartedAt() *TranslationRunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TranslationRunUpdateOne) SetCompletedAt(v time.Time) *TranslationRunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TranslationRunUpdateOne) SetNillableCompletedAt(v *time.Time) *TranslationRunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TranslationRunUpdateOne) ClearCompletedAt() *TranslationRunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetWork sets the "work" edge to the ProjectWork entity.
func (_u *TranslationRunUpdateOne) SetWork(v *ProjectWork) *TranslationRunUpdateOne {
	return _u.SetWorkID(v.ID)
}

// Mutation returns the TranslationRunMutation object of the builder.
func (_u *TranslationRunUpdateOne) Mutation() *TranslationRunMutation {
	return _u.mutation
}

// ClearWork clears the "work" edge to the ProjectWork entity.
func (_u *TranslationRunUpdateOne) ClearWork() *TranslationRunUpdateOne {
	_u.mutation.ClearWork()
	return _u
}

// Where appends a list predicates to the TranslationRunUpdate builder.
func (_u *TranslationRunUpdateOne) Where(ps ...predicate.TranslationRun) *TranslationRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TranslationRunUpdateOne) Select(field string, fields ...string) *TranslationRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TranslationRun entity.
func (_u *TranslationRunUpdateOne) Save(ctx context.Context) (*TranslationRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranslationRunUpdateOne) SaveX(ctx context.Context) *TranslationRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TranslationRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranslationRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranslationRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := translationrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TranslationRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TranslationRunUpdateOne) sqlSave(ctx context.Context) (_node *TranslationRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(translationrun.Table, translationrun.Columns, sqlgraph.NewFieldSpec(translationrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TranslationRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, translationrun.FieldID)
		for _, f := range fields {
			if !translationrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != translationrun.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectPath(); ok {
		_spec.SetField(translationrun.FieldProjectPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.OutputPath(); ok {
		_spec.SetField(translationrun.FieldOutputPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfigOverrides(); ok {
		_spec.SetField(translationrun.FieldConfigOverrides, field.TypeJSON, value)
	}
	if _u.mutation.ConfigOverridesCleared() {
		_spec.ClearField(translationrun.FieldConfigOverrides, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(translationrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentStage(); ok {
		_spec.SetField(translationrun.FieldCurrentStage, field.TypeString, value)
	}
	if _u.mutation.CurrentStageCleared() {
		_spec.ClearField(translationrun.FieldCurrentStage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(translationrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(translationrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(translationrun.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(translationrun.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(translationrun.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(translationrun.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(translationrun.FieldHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.HeartbeatAtCleared() {
		_spec.ClearField(translationrun.FieldHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(translationrun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(translationrun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(translationrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(translationrun.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.WorkCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   translationrun.WorkTable,
			Columns: []string{translationrun.WorkColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(projectwork.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   translationrun.WorkTable,
			Columns: []string{translationrun.WorkColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(projectwork.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TranslationRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{translationrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
