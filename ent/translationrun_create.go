// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/linguaflow/linguaflow/ent/projectwork"
	"github.com/linguaflow/linguaflow/ent/translationrun"
)

// TranslationRunCreate is the builder for creating a TranslationRun entity.
type TranslationRunCreate struct {
	config
	mutation *TranslationRunMutation
	hooks    []Hook
}

// SetWorkID sets the "work_id" field.
func (_c *TranslationRunCreate) SetWorkID(v int) *TranslationRunCreate {
	_c.mutation.SetWorkID(v)
	return _c
}

// SetNillableWorkID sets the "work_id" field if the given value is not nil.
func (_c *TranslationRunCreate) SetNillableWorkID(v *int) *TranslationRunCreate {
	if v != nil {
		_c.SetWorkID(*v)
	}
	return _c
}

// SetProjectPath sets the "project_path" field.
func (_c *TranslationRunCreate) SetProjectPath(v string) *TranslationRunCreate {
	_c.mutation.SetProjectPath(v)
	return _c
}

// SetOutputPath sets the "output_path" field.
func (_c *TranslationRunCreate) SetOutputPath(v string) *TranslationRunCreate {
	_c.mutation.SetOutputPath(v)
	return _c
}

// SetConfigOverrides sets the "config_overrides" field.
func (_c *TranslationRunCreate) SetConfigOverrides(v map[string]interface{}) *TranslationRunCreate {
	_c.mutation.SetConfigOverrides(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TranslationRunCreate) SetStatus(v translationrun.Status) *TranslationRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TranslationRunCreate) SetNillableStatus(v *translationrun.Status) *TranslationRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCurrentStage sets the "current_stage" field.
func (_c *TranslationRunCreate) SetCurrentStage(v string) *TranslationRunCreate {
	_c.mutation.SetCurrentStage(v)
	return _c
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_c *TranslationRunCreate) SetNillableCurrentStage(v *string) *TranslationRunCreate {
	if v != nil {
		_c.SetCurrentStage(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *TranslationRunCreate) SetErrorMessage(v string) *TranslationRunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *TranslationRunCreate) SetNillableErrorMessage(v *string) *TranslationRunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetWorkerID sets the "worker_id" field.
func (_c *TranslationRunCreate) SetWorkerID(v string) *TranslationRunCreate {
	_c.mutation.SetWorkerID(v)
	return _c
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_c *TranslationRunCreate) SetNillableWorkerID(v *string) *TranslationRunCreate {
	if v != nil {
		_c.SetWorkerID(*v)
	}
	return _c
}

// SetClaimedAt sets the "claimed_at" field.
func (_c *TranslationRunCreate) SetClaimedAt(v time.Time) *TranslationRunCreate {
	_c.mutation.SetClaimedAt(v)
	return _c
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_c *TranslationRunCreate) SetNillableClaimedAt(v *time.Time) *TranslationRunCreate {
	if v != nil {
		_c.SetClaimedAt(*v)
	}
	return _c
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_c *TranslationRunCreate) SetHeartbeatAt(v time.Time) *TranslationRunCreate {
	_c.mutation.SetHeartbeatAt(v)
	return _c
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_c *TranslationRunCreate) SetNillableHeartbeatAt(v *time.Time) *TranslationRunCreate {
	if v != nil {
		_c.SetHeartbeatAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *TranslationRunCreate) SetStartedAt(v time.Time) *TranslationRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *TranslationRunCreate) SetNillableStartedAt(v *time.Time) *TranslationRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TranslationRunCreate) SetCompletedAt(v time.Time) *TranslationRunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TranslationRunCreate) SetNillableCompletedAt(v *time.Time) *TranslationRunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TranslationRunCreate) SetCreatedAt(v time.Time) *TranslationRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TranslationRunCreate) SetNillableCreatedAt(v *time.Time) *TranslationRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TranslationRunCreate) SetID(v string) *TranslationRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWork sets the "work" edge to the ProjectWork entity.
func (_c *TranslationRunCreate) SetWork(v *ProjectWork) *TranslationRunCreate {
	return _c.SetWorkID(v.ID)
}

// Mutation returns the TranslationRunMutation object of the builder.
func (_c *TranslationRunCreate) Mutation() *TranslationRunMutation {
	return _c.mutation
}

// Save creates the TranslationRun in the database.
func (_c *TranslationRunCreate) Save(ctx context.Context) (*TranslationRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TranslationRunCreate) SaveX(ctx context.Context) *TranslationRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranslationRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranslationRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TranslationRunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := translationrun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := translationrun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TranslationRunCreate) check() error {
	if _, ok := _c.mutation.ProjectPath(); !ok {
		return &ValidationError{Name: "project_path", err: errors.New(`ent: missing required field "TranslationRun.project_path"`)}
	}
	if _, ok := _c.mutation.OutputPath(); !ok {
		return &ValidationError{Name: "output_path", err: errors.New(`ent: missing required field "TranslationRun.output_path"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TranslationRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := translationrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TranslationRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TranslationRun.created_at"`)}
	}
	return nil
}

func (_c *TranslationRunCreate) sqlSave(ctx context.Context) (*TranslationRun, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected TranslationRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TranslationRunCreate) createSpec() (*TranslationRun, *sqlgraph.CreateSpec) {
	var (
		_node = &TranslationRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(translationrun.Table, sqlgraph.NewFieldSpec(translationrun.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ProjectPath(); ok {
		_spec.SetField(translationrun.FieldProjectPath, field.TypeString, value)
		_node.ProjectPath = value
	}
	if value, ok := _c.mutation.OutputPath(); ok {
		_spec.SetField(translationrun.FieldOutputPath, field.TypeString, value)
		_node.OutputPath = value
	}
	if value, ok := _c.mutation.ConfigOverrides(); ok {
		_spec.SetField(translationrun.FieldConfigOverrides, field.TypeJSON, value)
		_node.ConfigOverrides = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(translationrun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CurrentStage(); ok {
		_spec.SetField(translationrun.FieldCurrentStage, field.TypeString, value)
		_node.CurrentStage = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(translationrun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.WorkerID(); ok {
		_spec.SetField(translationrun.FieldWorkerID, field.TypeString, value)
		_node.WorkerID = &value
	}
	if value, ok := _c.mutation.ClaimedAt(); ok {
		_spec.SetField(translationrun.FieldClaimedAt, field.TypeTime, value)
		_node.ClaimedAt = &value
	}
	if value, ok := _c.mutation.HeartbeatAt(); ok {
		_spec.SetField(translationrun.FieldHeartbeatAt, field.TypeTime, value)
		_node.HeartbeatAt = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(translationrun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(translationrun.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(translationrun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.WorkIDs(); len(nodes) > 0 {
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
		_node.WorkID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TranslationRunCreateBulk is the builder for creating many TranslationRun entities in bulk.
type TranslationRunCreateBulk struct {
	config
	err      error
	builders []*TranslationRunCreate
}

// Save creates the TranslationRun entities in the database.
func (_c *TranslationRunCreateBulk) Save(ctx context.Context) ([]*TranslationRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TranslationRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TranslationRunMutation)
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
func (_c *TranslationRunCreateBulk) SaveX(ctx context.Context) []*TranslationRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranslationRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranslationRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
