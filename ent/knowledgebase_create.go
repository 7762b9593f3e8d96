// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/linguaflow/linguaflow/ent/knowledgebase"
	"github.com/linguaflow/linguaflow/ent/projectwork"
	pgvector "github.com/pgvector/pgvector-go"
)

// KnowledgeBaseCreate is the builder for creating a KnowledgeBase entity.
type KnowledgeBaseCreate struct {
	config
	mutation *KnowledgeBaseMutation
	hooks    []Hook
}

// SetWorkID sets the "work_id" field.
func (_c *KnowledgeBaseCreate) SetWorkID(v int) *KnowledgeBaseCreate {
	_c.mutation.SetWorkID(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *KnowledgeBaseCreate) SetContent(v string) *KnowledgeBaseCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetKBType sets the "kb_type" field.
func (_c *KnowledgeBaseCreate) SetKBType(v knowledgebase.KBType) *KnowledgeBaseCreate {
	_c.mutation.SetKBType(v)
	return _c
}

// SetVector sets the "vector" field.
func (_c *KnowledgeBaseCreate) SetVector(v pgvector.Vector) *KnowledgeBaseCreate {
	_c.mutation.SetVector(v)
	return _c
}

// SetNillableVector sets the "vector" field if the given value is not nil.
func (_c *KnowledgeBaseCreate) SetNillableVector(v *pgvector.Vector) *KnowledgeBaseCreate {
	if v != nil {
		_c.SetVector(*v)
	}
	return _c
}

// SetTags sets the "tags" field.
func (_c *KnowledgeBaseCreate) SetTags(v []string) *KnowledgeBaseCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *KnowledgeBaseCreate) SetCreatedAt(v time.Time) *KnowledgeBaseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *KnowledgeBaseCreate) SetNillableCreatedAt(v *time.Time) *KnowledgeBaseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetWork sets the "work" edge to the ProjectWork entity.
func (_c *KnowledgeBaseCreate) SetWork(v *ProjectWork) *KnowledgeBaseCreate {
	return _c.SetWorkID(v.ID)
}

// Mutation returns the KnowledgeBaseMutation object of the builder.
func (_c *KnowledgeBaseCreate) Mutation() *KnowledgeBaseMutation {
	return _c.mutation
}

// Save creates the KnowledgeBase in the database.
func (_c *KnowledgeBaseCreate) Save(ctx context.Context) (*KnowledgeBase, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *KnowledgeBaseCreate) SaveX(ctx context.Context) *KnowledgeBase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeBaseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeBaseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *KnowledgeBaseCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := knowledgebase.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *KnowledgeBaseCreate) check() error {
	if _, ok := _c.mutation.WorkID(); !ok {
		return &ValidationError{Name: "work_id", err: errors.New(`ent: missing required field "KnowledgeBase.work_id"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "KnowledgeBase.content"`)}
	}
	if _, ok := _c.mutation.KBType(); !ok {
		return &ValidationError{Name: "kb_type", err: errors.New(`ent: missing required field "KnowledgeBase.kb_type"`)}
	}
	if v, ok := _c.mutation.KBType(); ok {
		if err := knowledgebase.KBTypeValidator(v); err != nil {
			return &ValidationError{Name: "kb_type", err: fmt.Errorf(`ent: validator failed for field "KnowledgeBase.kb_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "KnowledgeBase.created_at"`)}
	}
	if len(_c.mutation.WorkIDs()) == 0 {
		return &ValidationError{Name: "work", err: errors.New(`ent: missing required edge "KnowledgeBase.work"`)}
	}
	return nil
}

func (_c *KnowledgeBaseCreate) sqlSave(ctx context.Context) (*KnowledgeBase, error) {
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

func (_c *KnowledgeBaseCreate) createSpec() (*KnowledgeBase, *sqlgraph.CreateSpec) {
	var (
		_node = &KnowledgeBase{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(knowledgebase.Table, sqlgraph.NewFieldSpec(knowledgebase.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(knowledgebase.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.KBType(); ok {
		_spec.SetField(knowledgebase.FieldKBType, field.TypeEnum, value)
		_node.KBType = value
	}
	if value, ok := _c.mutation.Vector(); ok {
		_spec.SetField(knowledgebase.FieldVector, field.TypeOther, value)
		_node.Vector = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(knowledgebase.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(knowledgebase.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.WorkIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   knowledgebase.WorkTable,
			Columns: []string{knowledgebase.WorkColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(projectwork.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.WorkID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// KnowledgeBaseCreateBulk is the builder for creating many KnowledgeBase entities in bulk.
type KnowledgeBaseCreateBulk struct {
	config
	err      error
	builders []*KnowledgeBaseCreate
}

// Save creates the KnowledgeBase entities in the database.
func (_c *KnowledgeBaseCreateBulk) Save(ctx context.Context) ([]*KnowledgeBase, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*KnowledgeBase, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*KnowledgeBaseMutation)
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
func (_c *KnowledgeBaseCreateBulk) SaveX(ctx context.Context) []*KnowledgeBase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeBaseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeBaseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
