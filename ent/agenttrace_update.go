// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/linguaflow/linguaflow/ent/agenttrace"
	"github.com/linguaflow/linguaflow/ent/predicate"
)

// AgentTraceUpdate is the builder for updating AgentTrace entities.
type AgentTraceUpdate struct {
	config
	hooks    []Hook
	mutation *AgentTraceMutation
}

// Where appends a list predicates to the AgentTraceUpdate builder.
func (_u *AgentTraceUpdate) Where(ps ...predicate.AgentTrace) *AgentTraceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentRole sets the "agent_role" field.
func (_u *AgentTraceUpdate) SetAgentRole(v agenttrace.AgentRole) *AgentTraceUpdate {
	_u.mutation.SetAgentRole(v)
	return _u
}

// SetNillableAgentRole sets the "agent_role" field if the given value is not nil.
func (_u *AgentTraceUpdate) SetNillableAgentRole(v *agenttrace.AgentRole) *AgentTraceUpdate {
	if v != nil {
		_u.SetAgentRole(*v)
	}
	return _u
}

// SetActionType sets the "action_type" field.
func (_u *AgentTraceUpdate) SetActionType(v agenttrace.ActionType) *AgentTraceUpdate {
	_u.mutation.SetActionType(v)
	return _u
}

// SetNillableActionType sets the "action_type" field if the given value is not nil.
func (_u *AgentTraceUpdate) SetNillableActionType(v *agenttrace.ActionType) *AgentTraceUpdate {
	if v != nil {
		_u.SetActionType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *AgentTraceUpdate) SetContent(v string) *AgentTraceUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *AgentTraceUpdate) SetNillableContent(v *string) *AgentTraceUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *AgentTraceUpdate) ClearContent() *AgentTraceUpdate {
	_u.mutation.ClearContent()
	return _u
}

// SetQualityReport sets the "quality_report" field.
func (_u *AgentTraceUpdate) SetQualityReport(v map[string]interface{}) *AgentTraceUpdate {
	_u.mutation.SetQualityReport(v)
	return _u
}

// ClearQualityReport clears the value of the "quality_report" field.
func (_u *AgentTraceUpdate) ClearQualityReport() *AgentTraceUpdate {
	_u.mutation.ClearQualityReport()
	return _u
}

// SetMetaData sets the "meta_data" field.
func (_u *AgentTraceUpdate) SetMetaData(v map[string]interface{}) *AgentTraceUpdate {
	_u.mutation.SetMetaData(v)
	return _u
}

// ClearMetaData clears the value of the "meta_data" field.
func (_u *AgentTraceUpdate) ClearMetaData() *AgentTraceUpdate {
	_u.mutation.ClearMetaData()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *AgentTraceUpdate) SetInputTokens(v int) *AgentTraceUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *AgentTraceUpdate) SetNillableInputTokens(v *int) *AgentTraceUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *AgentTraceUpdate) AddInputTokens(v int) *AgentTraceUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *AgentTraceUpdate) SetOutputTokens(v int) *AgentTraceUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *AgentTraceUpdate) SetNillableOutputTokens(v *int) *AgentTraceUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *AgentTraceUpdate) AddOutputTokens(v int) *AgentTraceUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *AgentTraceUpdate) SetIsActive(v bool) *AgentTraceUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *AgentTraceUpdate) SetNillableIsActive(v *bool) *AgentTraceUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the AgentTraceMutation object of the builder.
func (_u *AgentTraceUpdate) Mutation() *AgentTraceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentTraceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentTraceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentTraceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentTraceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentTraceUpdate) check() error {
	if v, ok := _u.mutation.AgentRole(); ok {
		if err := agenttrace.AgentRoleValidator(v); err != nil {
			return &ValidationError{Name: "agent_role", err: fmt.Errorf(`ent: validator failed for field "AgentTrace.agent_role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActionType(); ok {
		if err := agenttrace.ActionTypeValidator(v); err != nil {
			return &ValidationError{Name: "action_type", err: fmt.Errorf(`ent: validator failed for field "AgentTrace.action_type": %w`, err)}
		}
	}
	if _u.mutation.AtomCleared() && len(_u.mutation.AtomIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentTrace.atom"`)
	}
	return nil
}

func (_u *AgentTraceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agenttrace.Table, agenttrace.Columns, sqlgraph.NewFieldSpec(agenttrace.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentRole(); ok {
		_spec.SetField(agenttrace.FieldAgentRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ActionType(); ok {
		_spec.SetField(agenttrace.FieldActionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(agenttrace.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(agenttrace.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.QualityReport(); ok {
		_spec.SetField(agenttrace.FieldQualityReport, field.TypeJSON, value)
	}
	if _u.mutation.QualityReportCleared() {
		_spec.ClearField(agenttrace.FieldQualityReport, field.TypeJSON)
	}
	if value, ok := _u.mutation.MetaData(); ok {
		_spec.SetField(agenttrace.FieldMetaData, field.TypeJSON, value)
	}
	if _u.mutation.MetaDataCleared() {
		_spec.ClearField(agenttrace.FieldMetaData, field.TypeJSON)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(agenttrace.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(agenttrace.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(agenttrace.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(agenttrace.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(agenttrace.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agenttrace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentTraceUpdateOne is the builder for updating a single AgentTrace entity.
type AgentTraceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentTraceMutation
}

// SetAgentRole sets the "agent_role" field.
func (_u *AgentTraceUpdateOne) SetAgentRole(v agenttrace.AgentRole) *AgentTraceUpdateOne {
	_u.mutation.SetAgentRole(v)
	return _u
}

// SetNillableAgentRole sets the "agent_role" field if the given value is not nil.
func (_u *AgentTraceUpdateOne) SetNillableAgentRole(v *agenttrace.AgentRole) *AgentTraceUpdateOne {
	if v != nil {
		_u.SetAgentRole(*v)
	}
	return _u
}

// SetActionType sets the "action_type" field.
func (_u *AgentTraceUpdateOne) SetActionType(v agenttrace.ActionType) *AgentTraceUpdateOne {
	_u.mutation.SetActionType(v)
	return _u
}

// SetNillableActionType sets the "action_type" field if the given value is not nil.
func (_u *AgentTraceUpdateOne) SetNillableActionType(v *agenttrace.ActionType) *AgentTraceUpdateOne {
	if v != nil {
		_u.SetActionType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *AgentTraceUpdateOne) SetContent(v string) *AgentTraceUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *AgentTraceUpdateOne) SetNillableContent(v *string) *AgentTraceUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *AgentTraceUpdateOne) ClearContent() *AgentTraceUpdateOne {
	_u.mutation.ClearContent()
	return _u
}

// SetQualityReport sets the "quality_report" field.
func (_u *AgentTraceUpdateOne) SetQualityReport(v map[string]interface{}) *AgentTraceUpdateOne {
	_u.mutation.SetQualityReport(v)
	return _u
}

// ClearQualityReport clears the value of the "quality_report" field.
func (_u *AgentTraceUpdateOne) ClearQualityReport() *AgentTraceUpdateOne {
	_u.mutation.ClearQualityReport()
	return _u
}

// SetMetaData sets the "meta_data" field.
func (_u *AgentTraceUpdateOne) SetMetaData(v map[string]interface{}) *AgentTraceUpdateOne {
	_u.mutation.SetMetaData(v)
	return _u
}

// ClearMetaData clears the value of the "meta_data" field.
func (_u *AgentTraceUpdateOne) ClearMetaData() *AgentTraceUpdateOne {
	_u.mutation.ClearMetaData()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *AgentTraceUpdateOne) SetInputTokens(v int) *AgentTraceUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *AgentTraceUpdateOne) SetNillableInputTokens(v *int) *AgentTraceUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *AgentTraceUpdateOne) AddInputTokens(v int) *AgentTraceUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *AgentTraceUpdateOne) SetOutputTokens(v int) *AgentTraceUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *AgentTraceUpdateOne) SetNillableOutputTokens(v *int) *AgentTraceUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *AgentTraceUpdateOne) AddOutputTokens(v int) *AgentTraceUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *AgentTraceUpdateOne) SetIsActive(v bool) *AgentTraceUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *AgentTraceUpdateOne) SetNillableIsActive(v *bool) *AgentTraceUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the AgentTraceMutation object of the builder.
func (_u *AgentTraceUpdateOne) Mutation() *AgentTraceMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentTraceUpdate builder.
func (_u *AgentTraceUpdateOne) Where(ps ...predicate.AgentTrace) *AgentTraceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentTraceUpdateOne) Select(field string, fields ...string) *AgentTraceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentTrace entity.
func (_u *AgentTraceUpdateOne) Save(ctx context.Context) (*AgentTrace, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentTraceUpdateOne) SaveX(ctx context.Context) *AgentTrace {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentTraceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentTraceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentTraceUpdateOne) check() error {
	if v, ok := _u.mutation.AgentRole(); ok {
		if err := agenttrace.AgentRoleValidator(v); err != nil {
			return &ValidationError{Name: "agent_role", err: fmt.Errorf(`ent: validator failed for field "AgentTrace.agent_role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActionType(); ok {
		if err := agenttrace.ActionTypeValidator(v); err != nil {
			return &ValidationError{Name: "action_type", err: fmt.Errorf(`ent: validator failed for field "AgentTrace.action_type": %w`, err)}
		}
	}
	if _u.mutation.AtomCleared() && len(_u.mutation.AtomIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentTrace.atom"`)
	}
	return nil
}

func (_u *AgentTraceUpdateOne) sqlSave(ctx context.Context) (_node *AgentTrace, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agenttrace.Table, agenttrace.Columns, sqlgraph.NewFieldSpec(agenttrace.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentTrace.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agenttrace.FieldID)
		for _, f := range fields {
			if !agenttrace.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agenttrace.FieldID {
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
	if value, ok := _u.mutation.AgentRole(); ok {
		_spec.SetField(agenttrace.FieldAgentRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ActionType(); ok {
		_spec.SetField(agenttrace.FieldActionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(agenttrace.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(agenttrace.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.QualityReport(); ok {
		_spec.SetField(agenttrace.FieldQualityReport, field.TypeJSON, value)
	}
	if _u.mutation.QualityReportCleared() {
		_spec.ClearField(agenttrace.FieldQualityReport, field.TypeJSON)
	}
	if value, ok := _u.mutation.MetaData(); ok {
		_spec.SetField(agenttrace.FieldMetaData, field.TypeJSON, value)
	}
	if _u.mutation.MetaDataCleared() {
		_spec.ClearField(agenttrace.FieldMetaData, field.TypeJSON)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(agenttrace.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(agenttrace.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(agenttrace.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(agenttrace.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(agenttrace.FieldIsActive, field.TypeBool, value)
	}
	_node = &AgentTrace{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agenttrace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
