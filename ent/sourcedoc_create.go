// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/linguaflow/linguaflow/ent/processingatom"
	"github.com/linguaflow/linguaflow/ent/projectwork"
	"github.com/linguaflow/linguaflow/ent/sourcedoc"
)

// SourceDocCreate is the builder for creating a SourceDoc entity.
type SourceDocCreate struct {
	config
	mutation *SourceDocMutation
	hooks    []Hook
}

// SetWorkID sets the "work_id" field.
func (_c *SourceDocCreate) SetWorkID(v int) *SourceDocCreate {
	_c.mutation.SetWorkID(v)
	return _c
}

// SetFilePath sets the "file_path" field.
func (_c *SourceDocCreate) SetFilePath(v string) *SourceDocCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetAtomCount sets the "atom_count" field.
func (_c *SourceDocCreate) SetAtomCount(v int) *SourceDocCreate {
	_c.mutation.SetAtomCount(v)
	return _c
}

// SetNillableAtomCount sets the "atom_count" field if the given value is not nil.
func (_c *SourceDocCreate) SetNillableAtomCount(v *int) *SourceDocCreate {
	if v != nil {
		_c.SetAtomCount(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SourceDocCreate) SetStatus(v sourcedoc.Status) *SourceDocCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SourceDocCreate) SetNillableStatus(v *sourcedoc.Status) *SourceDocCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SourceDocCreate) SetCreatedAt(v time.Time) *SourceDocCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SourceDocCreate) SetNillableCreatedAt(v *time.Time) *SourceDocCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetWork sets the "work" edge to the ProjectWork entity.
func (_c *SourceDocCreate) SetWork(v *ProjectWork) *SourceDocCreate {
	return _c.SetWorkID(v.ID)
}

// AddAtomIDs adds the "atoms" edge to the ProcessingAtom entity by IDs.
func (_c *SourceDocCreate) AddAtomIDs(ids ...int) *SourceDocCreate {
	_c.mutation.AddAtomIDs(ids...)
	return _c
}

// AddAtoms adds the "atoms" edges to the ProcessingAtom entity.
func (_c *SourceDocCreate) AddAtoms(v ...*ProcessingAtom) *SourceDocCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAtomIDs(ids...)
}

// Mutation returns the SourceDocMutation object of the builder.
func (_c *SourceDocCreate) Mutation() *SourceDocMutation {
	return _c.mutation
}

// Save creates the SourceDoc in the database.
func (_c *SourceDocCreate) Save(ctx context.Context) (*SourceDoc, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SourceDocCreate) SaveX(ctx context.Context) *SourceDoc {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceDocCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceDocCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SourceDocCreate) defaults() {
	if _, ok := _c.mutation.AtomCount(); !ok {
		v := sourcedoc.DefaultAtomCount
		_c.mutation.SetAtomCount(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := sourcedoc.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sourcedoc.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SourceDocCreate) check() error {
	if _, ok := _c.mutation.WorkID(); !ok {
		return &ValidationError{Name: "work_id", err: errors.New(`ent: missing required field "SourceDoc.work_id"`)}
	}
	if _, ok := _c.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`ent: missing required field "SourceDoc.file_path"`)}
	}
	if _, ok := _c.mutation.AtomCount(); !ok {
		return &ValidationError{Name: "atom_count", err: errors.New(`ent: missing required field "SourceDoc.atom_count"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SourceDoc.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := sourcedoc.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SourceDoc.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SourceDoc.created_at"`)}
	}
	if len(_c.mutation.WorkIDs()) == 0 {
		return &ValidationError{Name: "work", err: errors.New(`ent: missing required edge "SourceDoc.work"`)}
	}
	return nil
}

func (_c *SourceDocCreate) sqlSave(ctx context.Context) (*SourceDoc, error) {
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

func (_c *SourceDocCreate) createSpec() (*SourceDoc, *sqlgraph.CreateSpec) {
	var (
		_node = &SourceDoc{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sourcedoc.Table, sqlgraph.NewFieldSpec(sourcedoc.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(sourcedoc.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := _c.mutation.AtomCount(); ok {
		_spec.SetField(sourcedoc.FieldAtomCount, field.TypeInt, value)
		_node.AtomCount = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(sourcedoc.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sourcedoc.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.WorkIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sourcedoc.WorkTable,
			Columns: []string{sourcedoc.WorkColumn},
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
	if nodes := _c.mutation.AtomsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sourcedoc.AtomsTable,
			Columns: []string{sourcedoc.AtomsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processingatom.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SourceDocCreateBulk is the builder for creating many SourceDoc entities in bulk.
type SourceDocCreateBulk struct {
	config
	err      error
	builders []*SourceDocCreate
}

// Save creates the SourceDoc entities in the database.
func (_c *SourceDocCreateBulk) Save(ctx context.Context) ([]*SourceDoc, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SourceDoc, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SourceDocMutation)
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
func (_c *SourceDocCreateBulk) SaveX(ctx context.Context) []*SourceDoc {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceDocCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceDocCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
