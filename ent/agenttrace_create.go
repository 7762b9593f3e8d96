// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/linguaflow/linguaflow/ent/agenttrace"
	"github.com/linguaflow/linguaflow/ent/processingatom"
)

// AgentTraceCreate is the builder for creating a AgentTrace entity.
type AgentTraceCreate struct {
	config
	mutation *AgentTraceMutation
	hooks    []Hook
}

// SetAtomID sets the "atom_id" field.
func (_c *AgentTraceCreate) SetAtomID(v int) *AgentTraceCreate {
	_c.mutation.SetAtomID(v)
	return _c
}

// SetAgentRole sets the "agent_role" field.
func (_c *AgentTraceCreate) SetAgentRole(v agenttrace.AgentRole) *AgentTraceCreate {
	_c.mutation.SetAgentRole(v)
	return _c
}

// SetActionType sets the "action_type" field.
func (_c *AgentTraceCreate) SetActionType(v agenttrace.ActionType) *AgentTraceCreate {
	_c.mutation.SetActionType(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *AgentTraceCreate) SetContent(v string) *AgentTraceCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *AgentTraceCreate) SetNillableContent(v *string) *AgentTraceCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetQualityReport sets the "quality_report" field.
func (_c *AgentTraceCreate) SetQualityReport(v map[string]interface{}) *AgentTraceCreate {
	_c.mutation.SetQualityReport(v)
	return _c
}

// SetMetaData sets the "meta_data" field.
func (_c *AgentTraceCreate) SetMetaData(v map[string]interface{}) *AgentTraceCreate {
	_c.mutation.SetMetaData(v)
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *AgentTraceCreate) SetInputTokens(v int) *AgentTraceCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *AgentTraceCreate) SetNillableInputTokens(v *int) *AgentTraceCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *AgentTraceCreate) SetOutputTokens(v int) *AgentTraceCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *AgentTraceCreate) SetNillableOutputTokens(v *int) *AgentTraceCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *AgentTraceCreate) SetIsActive(v bool) *AgentTraceCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *AgentTraceCreate) SetNillableIsActive(v *bool) *AgentTraceCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentTraceCreate) SetCreatedAt(v time.Time) *AgentTraceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentTraceCreate) SetNillableCreatedAt(v *time.Time) *AgentTraceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetAtom sets the "atom" edge to the ProcessingAtom entity.
func (_c *AgentTraceCreate) SetAtom(v *ProcessingAtom) *AgentTraceCreate {
	return _c.SetAtomID(v.ID)
}

// Mutation returns the AgentTraceMutation object of the builder.
func (_c *AgentTraceCreate) Mutation() *AgentTraceMutation {
	return _c.mutation
}

// Save creates the AgentTrace in the database.
func (_c *AgentTraceCreate) Save(ctx context.Context) (*AgentTrace, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentTraceCreate) SaveX(ctx context.Context) *AgentTrace {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentTraceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentTraceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentTraceCreate) defaults() {
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := agenttrace.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := agenttrace.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := agenttrace.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agenttrace.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentTraceCreate) check() error {
	if _, ok := _c.mutation.AtomID(); !ok {
		return &ValidationError{Name: "atom_id", err: errors.New(`ent: missing required field "AgentTrace.atom_id"`)}
	}
	if _, ok := _c.mutation.AgentRole(); !ok {
		return &ValidationError{Name: "agent_role", err: errors.New(`ent: missing required field "AgentTrace.agent_role"`)}
	}
	if v, ok := _c.mutation.AgentRole(); ok {
		if err := agenttrace.AgentRoleValidator(v); err != nil {
			return &ValidationError{Name: "agent_role", err: fmt.Errorf(`ent: validator failed for field "AgentTrace.agent_role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ActionType(); !ok {
		return &ValidationError{Name: "action_type", err: errors.New(`ent: missing required field "AgentTrace.action_type"`)}
	}
	if v, ok := _c.mutation.ActionType(); ok {
		if err := agenttrace.ActionTypeValidator(v); err != nil {
			return &ValidationError{Name: "action_type", err: fmt.Errorf(`ent: validator failed for field "AgentTrace.action_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "AgentTrace.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "AgentTrace.output_tokens"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "AgentTrace.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentTrace.created_at"`)}
	}
	if len(_c.mutation.AtomIDs()) == 0 {
		return &ValidationError{Name: "atom", err: errors.New(`ent: missing required edge "AgentTrace.atom"`)}
	}
	return nil
}

func (_c *AgentTraceCreate) sqlSave(ctx context.Context) (*AgentTrace, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentTraceCreate) createSpec() (*AgentTrace, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentTrace{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agenttrace.Table, sqlgraph.NewFieldSpec(agenttrace.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.AgentRole(); ok {
		_spec.SetField(agenttrace.FieldAgentRole, field.TypeEnum, value)
		_node.AgentRole = value
	}
	if value, ok := _c.mutation.ActionType(); ok {
		_spec.SetField(agenttrace.FieldActionType, field.TypeEnum, value)
		_node.ActionType = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(agenttrace.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.QualityReport(); ok {
		_spec.SetField(agenttrace.FieldQualityReport, field.TypeJSON, value)
		_node.QualityReport = value
	}
	if value, ok := _c.mutation.MetaData(); ok {
		_spec.SetField(agenttrace.FieldMetaData, field.TypeJSON, value)
		_node.MetaData = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(agenttrace.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(agenttrace.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(agenttrace.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agenttrace.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AtomIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agenttrace.AtomTable,
			Columns: []string{agenttrace.AtomColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processingatom.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AtomID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentTraceCreateBulk is the builder for creating many AgentTrace entities in bulk.
type AgentTraceCreateBulk struct {
	config
	err      error
	builders []*AgentTraceCreate
}

// Save creates the AgentTrace entities in the database.
func (_c *AgentTraceCreateBulk) Save(ctx context.Context) ([]*AgentTrace, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentTrace, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentTraceMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AgentTraceCreateBulk) SaveX(ctx context.Context) []*AgentTrace {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentTraceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentTraceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
