// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/linguaflow/linguaflow/ent/knowledgebase"
	"github.com/linguaflow/linguaflow/ent/predicate"
	pgvector "github.com/pgvector/pgvector-go"
)

// KnowledgeBaseUpdate is the builder for updating KnowledgeBase entities.
type KnowledgeBaseUpdate struct {
	config
	hooks    []Hook
	mutation *KnowledgeBaseMutation
}

// Where appends a list predicates to the KnowledgeBaseUpdate builder.
func (_u *KnowledgeBaseUpdate) Where(ps ...predicate.KnowledgeBase) *KnowledgeBaseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContent sets the "content" field.
func (_u *KnowledgeBaseUpdate) SetContent(v string) *KnowledgeBaseUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *KnowledgeBaseUpdate) SetNillableContent(v *string) *KnowledgeBaseUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetKBType sets the "kb_type" field.
func (_u *KnowledgeBaseUpdate) SetKBType(v knowledgebase.KBType) *KnowledgeBaseUpdate {
	_u.mutation.SetKBType(v)
	return _u
}

// SetNillableKBType sets the "kb_type" field if the given value is not nil.
func (_u *KnowledgeBaseUpdate) SetNillableKBType(v *knowledgebase.KBType) *KnowledgeBaseUpdate {
	if v != nil {
		_u.SetKBType(*v)
	}
	return _u
}

// SetVector sets the "vector" field.
func (_u *KnowledgeBaseUpdate) SetVector(v pgvector.Vector) *KnowledgeBaseUpdate {
	_u.mutation.SetVector(v)
	return _u
}

// SetNillableVector sets the "vector" field if the given value is not nil.
func (_u *KnowledgeBaseUpdate) SetNillableVector(v *pgvector.Vector) *KnowledgeBaseUpdate {
	if v != nil {
		_u.SetVector(*v)
	}
	return _u
}

// ClearVector clears the value of the "vector" field.
func (_u *KnowledgeBaseUpdate) ClearVector() *KnowledgeBaseUpdate {
	_u.mutation.ClearVector()
	return _u
}

// SetTags sets the "tags" field.
func (_u *KnowledgeBaseUpdate) SetTags(v []string) *KnowledgeBaseUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *KnowledgeBaseUpdate) AppendTags(v []string) *KnowledgeBaseUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *KnowledgeBaseUpdate) ClearTags() *KnowledgeBaseUpdate {
	_u.mutation.ClearTags()
	return _u
}

// Mutation returns the KnowledgeBaseMutation object of the builder.
func (_u *KnowledgeBaseUpdate) Mutation() *KnowledgeBaseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *KnowledgeBaseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeBaseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *KnowledgeBaseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeBaseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnowledgeBaseUpdate) check() error {
	if v, ok := _u.mutation.KBType(); ok {
		if err := knowledgebase.KBTypeValidator(v); err != nil {
			return &ValidationError{Name: "kb_type", err: fmt.Errorf(`ent: validator failed for field "KnowledgeBase.kb_type": %w`, err)}
		}
	}
	if _u.mutation.WorkCleared() && len(_u.mutation.WorkIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "KnowledgeBase.work"`)
	}
	return nil
}

func (_u *KnowledgeBaseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowledgebase.Table, knowledgebase.Columns, sqlgraph.NewFieldSpec(knowledgebase.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(knowledgebase.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.KBType(); ok {
		_spec.SetField(knowledgebase.FieldKBType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Vector(); ok {
		_spec.SetField(knowledgebase.FieldVector, field.TypeOther, value)
	}
	if _u.mutation.VectorCleared() {
		_spec.ClearField(knowledgebase.FieldVector, field.TypeOther)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(knowledgebase.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, knowledgebase.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(knowledgebase.FieldTags, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledgebase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// KnowledgeBaseUpdateOne is the builder for updating a single KnowledgeBase entity.
type KnowledgeBaseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *KnowledgeBaseMutation
}

// SetContent sets the "content" field.
func (_u *KnowledgeBaseUpdateOne) SetContent(v string) *KnowledgeBaseUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *KnowledgeBaseUpdateOne) SetNillableContent(v *string) *KnowledgeBaseUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetKBType sets the "kb_type" field.
func (_u *KnowledgeBaseUpdateOne) SetKBType(v knowledgebase.KBType) *KnowledgeBaseUpdateOne {
	_u.mutation.SetKBType(v)
	return _u
}

// SetNillableKBType sets the "kb_type" field if the given value is not nil.
func (_u *KnowledgeBaseUpdateOne) SetNillableKBType(v *knowledgebase.KBType) *KnowledgeBaseUpdateOne {
	if v != nil {
		_u.SetKBType(*v)
	}
	return _u
}

// SetVector sets the "vector" field.
func (_u *KnowledgeBaseUpdateOne) SetVector(v pgvector.Vector) *KnowledgeBaseUpdateOne {
	_u.mutation.SetVector(v)
	return _u
}

// SetNillableVector sets the "vector" field if the given value is not nil.
func (_u *KnowledgeBaseUpdateOne) SetNillableVector(v *pgvector.Vector) *KnowledgeBaseUpdateOne {
	if v != nil {
		_u.SetVector(*v)
	}
	return _u
}

// ClearVector clears the value of the "vector" field.
func (_u *KnowledgeBaseUpdateOne) ClearVector() *KnowledgeBaseUpdateOne {
	_u.mutation.ClearVector()
	return _u
}

// SetTags sets the "tags" field.
func (_u *KnowledgeBaseUpdateOne) SetTags(v []string) *KnowledgeBaseUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *KnowledgeBaseUpdateOne) AppendTags(v []string) *KnowledgeBaseUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *KnowledgeBaseUpdateOne) ClearTags() *KnowledgeBaseUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// Mutation returns the KnowledgeBaseMutation object of the builder.
func (_u *KnowledgeBaseUpdateOne) Mutation() *KnowledgeBaseMutation {
	return _u.mutation
}

// Where appends a list predicates to the KnowledgeBaseUpdate builder.
func (_u *KnowledgeBaseUpdateOne) Where(ps ...predicate.KnowledgeBase) *KnowledgeBaseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *KnowledgeBaseUpdateOne) Select(field string, fields ...string) *KnowledgeBaseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated KnowledgeBase entity.
func (_u *KnowledgeBaseUpdateOne) Save(ctx context.Context) (*KnowledgeBase, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeBaseUpdateOne) SaveX(ctx context.Context) *KnowledgeBase {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *KnowledgeBaseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeBaseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnowledgeBaseUpdateOne) check() error {
	if v, ok := _u.mutation.KBType(); ok {
		if err := knowledgebase.KBTypeValidator(v); err != nil {
			return &ValidationError{Name: "kb_type", err: fmt.Errorf(`ent: validator failed for field "KnowledgeBase.kb_type": %w`, err)}
		}
	}
	if _u.mutation.WorkCleared() && len(_u.mutation.WorkIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "KnowledgeBase.work"`)
	}
	return nil
}

func (_u *KnowledgeBaseUpdateOne) sqlSave(ctx context.Context) (_node *KnowledgeBase, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowledgebase.Table, knowledgebase.Columns, sqlgraph.NewFieldSpec(knowledgebase.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "KnowledgeBase.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, knowledgebase.FieldID)
		for _, f := range fields {
			if !knowledgebase.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != knowledgebase.FieldID {
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
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(knowledgebase.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.KBType(); ok {
		_spec.SetField(knowledgebase.FieldKBType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Vector(); ok {
		_spec.SetField(knowledgebase.FieldVector, field.TypeOther, value)
	}
	if _u.mutation.VectorCleared() {
		_spec.ClearField(knowledgebase.FieldVector, field.TypeOther)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(knowledgebase.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, knowledgebase.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(knowledgebase.FieldTags, field.TypeJSON)
	}
	_node = &KnowledgeBase{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledgebase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
