// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/linguaflow/linguaflow/ent/predicate"
	"github.com/linguaflow/linguaflow/ent/processingatom"
	"github.com/linguaflow/linguaflow/ent/sourcedoc"
)

// SourceDocUpdate is the builder for updating SourceDoc entities.
type SourceDocUpdate struct {
	config
	hooks    []Hook
	mutation *SourceDocMutation
}

// Where appends a list predicates to the SourceDocUpdate builder.
func (_u *SourceDocUpdate) Where(ps ...predicate.SourceDoc) *SourceDocUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *SourceDocUpdate) SetFilePath(v string) *SourceDocUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *SourceDocUpdate) SetNillableFilePath(v *string) *SourceDocUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetAtomCount sets the "atom_count" field.
func (_u *SourceDocUpdate) SetAtomCount(v int) *SourceDocUpdate {
	_u.mutation.ResetAtomCount()
	_u.mutation.SetAtomCount(v)
	return _u
}

// SetNillableAtomCount sets the "atom_count" field if the given value is not nil.
func (_u *SourceDocUpdate) SetNillableAtomCount(v *int) *SourceDocUpdate {
	if v != nil {
		_u.SetAtomCount(*v)
	}
	return _u
}

// AddAtomCount adds value to the "atom_count" field.
func (_u *SourceDocUpdate) AddAtomCount(v int) *SourceDocUpdate {
	_u.mutation.AddAtomCount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SourceDocUpdate) SetStatus(v sourcedoc.Status) *SourceDocUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SourceDocUpdate) SetNillableStatus(v *sourcedoc.Status) *SourceDocUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddAtomIDs adds the "atoms" edge to the ProcessingAtom entity by IDs.
func (_u *SourceDocUpdate) AddAtomIDs(ids ...int) *SourceDocUpdate {
	_u.mutation.AddAtomIDs(ids...)
	return _u
}

// AddAtoms adds the "atoms" edges to the ProcessingAtom entity.
func (_u *SourceDocUpdate) AddAtoms(v ...*ProcessingAtom) *SourceDocUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAtomIDs(ids...)
}

// Mutation returns the SourceDocMutation object of the builder.
func (_u *SourceDocUpdate) Mutation() *SourceDocMutation {
	return _u.mutation
}

// ClearAtoms clears all "atoms" edges to the ProcessingAtom entity.
func (_u *SourceDocUpdate) ClearAtoms() *SourceDocUpdate {
	_u.mutation.ClearAtoms()
	return _u
}

// RemoveAtomIDs removes the "atoms" edge to ProcessingAtom entities by IDs.
func (_u *SourceDocUpdate) RemoveAtomIDs(ids ...int) *SourceDocUpdate {
	_u.mutation.RemoveAtomIDs(ids...)
	return _u
}

// RemoveAtoms removes "atoms" edges to ProcessingAtom entities.
func (_u *SourceDocUpdate) RemoveAtoms(v ...*ProcessingAtom) *SourceDocUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAtomIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SourceDocUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceDocUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SourceDocUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceDocUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SourceDocUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := sourcedoc.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SourceDoc.status": %w`, err)}
		}
	}
	if _u.mutation.WorkCleared() && len(_u.mutation.WorkIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SourceDoc.work"`)
	}
	return nil
}

func (_u *SourceDocUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sourcedoc.Table, sourcedoc.Columns, sqlgraph.NewFieldSpec(sourcedoc.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(sourcedoc.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.AtomCount(); ok {
		_spec.SetField(sourcedoc.FieldAtomCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAtomCount(); ok {
		_spec.AddField(sourcedoc.FieldAtomCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sourcedoc.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.AtomsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAtomsIDs(); len(nodes) > 0 && !_u.mutation.AtomsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AtomsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sourcedoc.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SourceDocUpdateOne is the builder for updating a single SourceDoc entity.
type SourceDocUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SourceDocMutation
}

// SetFilePath sets the "file_path" field.
func (_u *SourceDocUpdateOne) SetFilePath(v string) *SourceDocUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *SourceDocUpdateOne) SetNillableFilePath(v *string) *SourceDocUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetAtomCount sets the "atom_count" field.
func (_u *SourceDocUpdateOne) SetAtomCount(v int) *SourceDocUpdateOne {
	_u.mutation.ResetAtomCount()
	_u.mutation.SetAtomCount(v)
	return _u
}

// SetNillableAtomCount sets the "atom_count" field if the given value is not nil.
func (_u *SourceDocUpdateOne) SetNillableAtomCount(v *int) *SourceDocUpdateOne {
	if v != nil {
		_u.SetAtomCount(*v)
	}
	return _u
}

// AddAtomCount adds value to the "atom_count" field.
func (_u *SourceDocUpdateOne) AddAtomCount(v int) *SourceDocUpdateOne {
	_u.mutation.AddAtomCount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SourceDocUpdateOne) SetStatus(v sourcedoc.Status) *SourceDocUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SourceDocUpdateOne) SetNillableStatus(v *sourcedoc.Status) *SourceDocUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddAtomIDs adds the "atoms" edge to the ProcessingAtom entity by IDs.
func (_u *SourceDocUpdateOne) AddAtomIDs(ids ...int) *SourceDocUpdateOne {
	_u.mutation.AddAtomIDs(ids...)
	return _u
}

// AddAtoms adds the "atoms" edges to the ProcessingAtom entity.
func (_u *SourceDocUpdateOne) AddAtoms(v ...*ProcessingAtom) *SourceDocUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAtomIDs(ids...)
}

// Mutation returns the SourceDocMutation object of the builder.
func (_u *SourceDocUpdateOne) Mutation() *SourceDocMutation {
	return _u.mutation
}

// ClearAtoms clears all "atoms" edges to the ProcessingAtom entity.
func (_u *SourceDocUpdateOne) ClearAtoms() *SourceDocUpdateOne {
	_u.mutation.ClearAtoms()
	return _u
}

// RemoveAtomIDs removes the "atoms" edge to ProcessingAtom entities by IDs.
func (_u *SourceDocUpdateOne) RemoveAtomIDs(ids ...int) *SourceDocUpdateOne {
	_u.mutation.RemoveAtomIDs(ids...)
	return _u
}

// RemoveAtoms removes "atoms" edges to ProcessingAtom entities.
func (_u *SourceDocUpdateOne) RemoveAtoms(v ...*ProcessingAtom) *SourceDocUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAtomIDs(ids...)
}

// Where appends a list predicates to the SourceDocUpdate builder.
func (_u *SourceDocUpdateOne) Where(ps ...predicate.SourceDoc) *SourceDocUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SourceDocUpdateOne) Select(field string, fields ...string) *SourceDocUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SourceDoc entity.
func (_u *SourceDocUpdateOne) Save(ctx context.Context) (*SourceDoc, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceDocUpdateOne) SaveX(ctx context.Context) *SourceDoc {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SourceDocUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceDocUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SourceDocUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := sourcedoc.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SourceDoc.status": %w`, err)}
		}
	}
	if _u.mutation.WorkCleared() && len(_u.mutation.WorkIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SourceDoc.work"`)
	}
	return nil
}

func (_u *SourceDocUpdateOne) sqlSave(ctx context.Context) (_node *SourceDoc, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sourcedoc.Table, sourcedoc.Columns, sqlgraph.NewFieldSpec(sourcedoc.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SourceDoc.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sourcedoc.FieldID)
		for _, f := range fields {
			if !sourcedoc.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sourcedoc.FieldID {
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
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(sourcedoc.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.AtomCount(); ok {
		_spec.SetField(sourcedoc.FieldAtomCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAtomCount(); ok {
		_spec.AddField(sourcedoc.FieldAtomCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sourcedoc.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.AtomsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAtomsIDs(); len(nodes) > 0 && !_u.mutation.AtomsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AtomsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SourceDoc{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sourcedoc.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
