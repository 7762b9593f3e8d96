// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/linguaflow/linguaflow/ent/predicate"
	"github.com/linguaflow/linguaflow/ent/processingatom"
)

// ProcessingAtomDelete is the builder for deleting a ProcessingAtom entity.
type ProcessingAtomDelete struct {
	config
	hooks    []Hook
	mutation *ProcessingAtomMutation
}

// Where appends a list predicates to the ProcessingAtomDelete builder.
func (_d *ProcessingAtomDelete) Where(ps ...predicate.ProcessingAtom) *ProcessingAtomDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ProcessingAtomDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProcessingAtomDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ProcessingAtomDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(processingatom.Table, sqlgraph.NewFieldSpec(processingatom.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ProcessingAtomDeleteOne is the builder for deleting a single ProcessingAtom entity.
type ProcessingAtomDeleteOne struct {
	_d *ProcessingAtomDelete
}

// Where appends a list predicates to the ProcessingAtomDelete builder.
func (_d *ProcessingAtomDeleteOne) Where(ps ...predicate.ProcessingAtom) *ProcessingAtomDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ProcessingAtomDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{processingatom.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProcessingAtomDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
