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
	"github.com/linguaflow/linguaflow/ent/sourcedoc"
	pgvector "github.com/pgvector/pgvector-go"
)

// ProcessingAtomCreate is the builder for creating a ProcessingAtom entity.
type ProcessingAtomCreate struct {
	config
	mutation *ProcessingAtomMutation
	hooks    []Hook
}

// SetDocID sets the "doc_id" field.
func (_c *ProcessingAtomCreate) SetDocID(v int) *ProcessingAtomCreate {
	_c.mutation.SetDocID(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *ProcessingAtomCreate) SetPosition(v int) *ProcessingAtomCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetSourceText sets the "source_text" field.
func (_c *ProcessingAtomCreate) SetSourceText(v string) *ProcessingAtomCreate {
	_c.mutation.SetSourceText(v)
	return _c
}

// SetSourceHash sets the "source_hash" field.
func (_c *ProcessingAtomCreate) SetSourceHash(v string) *ProcessingAtomCreate {
	_c.mutation.SetSourceHash(v)
	return _c
}

// SetTranslatedText sets the "translated_text" field.
func (_c *ProcessingAtomCreate) SetTranslatedText(v string) *ProcessingAtomCreate {
	_c.mutation.SetTranslatedText(v)
	return _c
}

// SetNillableTranslatedText sets the "translated_text" field if the given value is not nil.
func (_c *ProcessingAtomCreate) SetNillableTranslatedText(v *string) *ProcessingAtomCreate {
	if v != nil {
		_c.SetTranslatedText(*v)
	}
	return _c
}

// SetStatusCode sets the "status_code" field.
func (_c *ProcessingAtomCreate) SetStatusCode(v int) *ProcessingAtomCreate {
	_c.mutation.SetStatusCode(v)
	return _c
}

// SetNillableStatusCode sets the "status_code" field if the given value is not nil.
func (_c *ProcessingAtomCreate) SetNillableStatusCode(v *int) *ProcessingAtomCreate {
	if v != nil {
		_c.SetStatusCode(*v)
	}
	return _c
}

// SetQualityScore sets the "quality_score" field.
func (_c *ProcessingAtomCreate) SetQualityScore(v float64) *ProcessingAtomCreate {
	_c.mutation.SetQualityScore(v)
	return _c
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_c *ProcessingAtomCreate) SetNillableQualityScore(v *float64) *ProcessingAtomCreate {
	if v != nil {
		_c.SetQualityScore(*v)
	}
	return _c
}

// SetExamination sets the "examination" field.
func (_c *ProcessingAtomCreate) SetExamination(v map[string]interface{}) *ProcessingAtomCreate {
	_c.mutation.SetExamination(v)
	return _c
}

// SetContextInfo sets the "context_info" field.
func (_c *ProcessingAtomCreate) SetContextInfo(v map[string]interface{}) *ProcessingAtomCreate {
	_c.mutation.SetContextInfo(v)
	return _c
}

// SetSemanticVec sets the "semantic_vec" field.
func (_c *ProcessingAtomCreate) SetSemanticVec(v pgvector.Vector) *ProcessingAtomCreate {
	_c.mutation.SetSemanticVec(v)
	return _c
}

// SetNillableSemanticVec sets the "semantic_vec" field if the given value is not nil.
func (_c *ProcessingAtomCreate) SetNillableSemanticVec(v *pgvector.Vector) *ProcessingAtomCreate {
	if v != nil {
		_c.SetSemanticVec(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProcessingAtomCreate) SetCreatedAt(v time.Time) *ProcessingAtomCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProcessingAtomCreate) SetNillableCreatedAt(v *time.Time) *ProcessingAtomCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProcessingAtomCreate) SetUpdatedAt(v time.Time) *ProcessingAtomCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProcessingAtomCreate) SetNillableUpdatedAt(v *time.Time) *ProcessingAtomCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDoc sets the "doc" edge to the SourceDoc entity.
func (_c *ProcessingAtomCreate) SetDoc(v *SourceDoc) *ProcessingAtomCreate {
	return _c.SetDocID(v.ID)
}

// AddTraceIDs adds the "traces" edge to the AgentTrace entity by IDs.
func (_c *ProcessingAtomCreate) AddTraceIDs(ids ...int) *ProcessingAtomCreate {
	_c.mutation.AddTraceIDs(ids...)
	return _c
}

// AddTraces adds the "traces" edges to the AgentTrace entity.
func (_c *ProcessingAtomCreate) AddTraces(v ...*AgentTrace) *ProcessingAtomCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTraceIDs(ids...)
}

// Mutation returns the ProcessingAtomMutation object of the builder.
func (_c *ProcessingAtomCreate) Mutation() *ProcessingAtomMutation {
	return _c.mutation
}

// Save creates the ProcessingAtom in the database.
func (_c *ProcessingAtomCreate) Save(ctx context.Context) (*ProcessingAtom, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProcessingAtomCreate) SaveX(ctx context.Context) *ProcessingAtom {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessingAtomCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessingAtomCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProcessingAtomCreate) defaults() {
	if _, ok := _c.mutation.StatusCode(); !ok {
		v := processingatom.DefaultStatusCode
		_c.mutation.SetStatusCode(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := processingatom.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := processingatom.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProcessingAtomCreate) check() error {
	if _, ok := _c.mutation.DocID(); !ok {
		return &ValidationError{Name: "doc_id", err: errors.New(`ent: missing required field "ProcessingAtom.doc_id"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "ProcessingAtom.position"`)}
	}
	if _, ok := _c.mutation.SourceText(); !ok {
		return &ValidationError{Name: "source_text", err: errors.New(`ent: missing required field "ProcessingAtom.source_text"`)}
	}
	if _, ok := _c.mutation.SourceHash(); !ok {
		return &ValidationError{Name: "source_hash", err: errors.New(`ent: missing required field "ProcessingAtom.source_hash"`)}
	}
	if v, ok := _c.mutation.SourceHash(); ok {
		if err := processingatom.SourceHashValidator(v); err != nil {
			return &ValidationError{Name: "source_hash", err: fmt.Errorf(`ent: validator failed for field "ProcessingAtom.source_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StatusCode(); !ok {
		return &ValidationError{Name: "status_code", err: errors.New(`ent: missing required field "ProcessingAtom.status_code"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProcessingAtom.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProcessingAtom.updated_at"`)}
	}
	if len(_c.mutation.DocIDs()) == 0 {
		return &ValidationError{Name: "doc", err: errors.New(`ent: missing required edge "ProcessingAtom.doc"`)}
	}
	return nil
}

func (_c *ProcessingAtomCreate) sqlSave(ctx context.Context) (*ProcessingAtom, error) {
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

func (_c *ProcessingAtomCreate) createSpec() (*ProcessingAtom, *sqlgraph.CreateSpec) {
	var (
		_node = &ProcessingAtom{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(processingatom.Table, sqlgraph.NewFieldSpec(processingatom.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(processingatom.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.SourceText(); ok {
		_spec.SetField(processingatom.FieldSourceText, field.TypeString, value)
		_node.SourceText = value
	}
	if value, ok := _c.mutation.SourceHash(); ok {
		_spec.SetField(processingatom.FieldSourceHash, field.TypeString, value)
		_node.SourceHash = value
	}
	if value, ok := _c.mutation.TranslatedText(); ok {
		_spec.SetField(processingatom.FieldTranslatedText, field.TypeString, value)
		_node.TranslatedText = &value
	}
	if value, ok := _c.mutation.StatusCode(); ok {
		_spec.SetField(processingatom.FieldStatusCode, field.TypeInt, value)
		_node.StatusCode = value
	}
	if value, ok := _c.mutation.QualityScore(); ok {
		_spec.SetField(processingatom.FieldQualityScore, field.TypeFloat64, value)
		_node.QualityScore = &value
	}
	if value, ok := _c.mutation.Examination(); ok {
		_spec.SetField(processingatom.FieldExamination, field.TypeJSON, value)
		_node.Examination = value
	}
	if value, ok := _c.mutation.ContextInfo(); ok {
		_spec.SetField(processingatom.FieldContextInfo, field.TypeJSON, value)
		_node.ContextInfo = value
	}
	if value, ok := _c.mutation.SemanticVec(); ok {
		_spec.SetField(processingatom.FieldSemanticVec, field.TypeOther, value)
		_node.SemanticVec = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(processingatom.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(processingatom.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DocIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processingatom.DocTable,
			Columns: []string{processingatom.DocColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sourcedoc.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TracesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   processingatom.TracesTable,
			Columns: []string{processingatom.TracesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenttrace.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProcessingAtomCreateBulk is the builder for creating many ProcessingAtom entities in bulk.
type ProcessingAtomCreateBulk struct {
	config
	err      error
	builders []*ProcessingAtomCreate
}

// Save creates the ProcessingAtom entities in the database.
func (_c *ProcessingAtomCreateBulk) Save(ctx context.Context) ([]*ProcessingAtom, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProcessingAtom, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProcessingAtomMutation)
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
func (_c *ProcessingAtomCreateBulk) SaveX(ctx context.Context) []*ProcessingAtom {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessingAtomCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessingAtomCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
