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
	"github.com/linguaflow/linguaflow/ent/sourcedoc"
	"github.com/linguaflow/linguaflow/ent/translationrun"
)

// ProjectWorkCreate is the builder for creating a ProjectWork entity.
type ProjectWorkCreate struct {
	config
	mutation *ProjectWorkMutation
	hooks    []Hook
}

// SetWorkName sets the "work_name" field.
func (_c *ProjectWorkCreate) SetWorkName(v string) *ProjectWorkCreate {
	_c.mutation.SetWorkName(v)
	return _c
}

// SetSourceLang sets the "source_lang" field.
func (_c *ProjectWorkCreate) SetSourceLang(v string) *ProjectWorkCreate {
	_c.mutation.SetSourceLang(v)
	return _c
}

// SetTargetLang sets the "target_lang" field.
func (_c *ProjectWorkCreate) SetTargetLang(v string) *ProjectWorkCreate {
	_c.mutation.SetTargetLang(v)
	return _c
}

// SetConfig sets the "config" field.
func (_c *ProjectWorkCreate) SetConfig(v map[string]interface{}) *ProjectWorkCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetTopicInfo sets the "topic_info" field.
func (_c *ProjectWorkCreate) SetTopicInfo(v map[string]interface{}) *ProjectWorkCreate {
	_c.mutation.SetTopicInfo(v)
	return _c
}

// SetTranslationGuide sets the "translation_guide" field.
func (_c *ProjectWorkCreate) SetTranslationGuide(v string) *ProjectWorkCreate {
	_c.mutation.SetTranslationGuide(v)
	return _c
}

// SetNillableTranslationGuide sets the "translation_guide" field if the given value is not nil.
func (_c *ProjectWorkCreate) SetNillableTranslationGuide(v *string) *ProjectWorkCreate {
	if v != nil {
		_c.SetTranslationGuide(*v)
	}
	return _c
}

// SetPromptTemplates sets the "prompt_templates" field.
func (_c *ProjectWorkCreate) SetPromptTemplates(v map[string]interface{}) *ProjectWorkCreate {
	_c.mutation.SetPromptTemplates(v)
	return _c
}

// SetExtra sets the "extra" field.
func (_c *ProjectWorkCreate) SetExtra(v map[string]interface{}) *ProjectWorkCreate {
	_c.mutation.SetExtra(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProjectWorkCreate) SetCreatedAt(v time.Time) *ProjectWorkCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProjectWorkCreate) SetNillableCreatedAt(v *time.Time) *ProjectWorkCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProjectWorkCreate) SetUpdatedAt(v time.Time) *ProjectWorkCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProjectWorkCreate) SetNillableUpdatedAt(v *time.Time) *ProjectWorkCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddDocIDs adds the "docs" edge to the SourceDoc entity by IDs.
func (_c *ProjectWorkCreate) AddDocIDs(ids ...int) *ProjectWorkCreate {
	_c.mutation.AddDocIDs(ids...)
	return _c
}

// AddDocs adds the "docs" edges to the SourceDoc entity.
func (_c *ProjectWorkCreate) AddDocs(v ...*SourceDoc) *ProjectWorkCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDocIDs(ids...)
}

// AddKnowledgeEntryIDs adds the "knowledge_entries" edge to the KnowledgeBase entity by IDs.
func (_c *ProjectWorkCreate) AddKnowledgeEntryIDs(ids ...int) *ProjectWorkCreate {
	_c.mutation.AddKnowledgeEntryIDs(ids...)
	return _c
}

// AddKnowledgeEntries adds the "knowledge_entries" edges to the KnowledgeBase entity.
func (_c *ProjectWorkCreate) AddKnowledgeEntries(v ...*KnowledgeBase) *ProjectWorkCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddKnowledgeEntryIDs(ids...)
}

// AddRunIDs adds the "runs" edge to the TranslationRun entity by IDs.
func (_c *ProjectWorkCreate) AddRunIDs(ids ...string) *ProjectWorkCreate {
	_c.mutation.AddRunIDs(ids...)
	return _c
}

// AddRuns adds the "runs" edges to the TranslationRun entity.
func (_c *ProjectWorkCreate) AddRuns(v ...*TranslationRun) *ProjectWorkCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRunIDs(ids...)
}

// Mutation returns the ProjectWorkMutation object of the builder.
func (_c *ProjectWorkCreate) Mutation() *ProjectWorkMutation {
	return _c.mutation
}

// Save creates the ProjectWork in the database.
func (_c *ProjectWorkCreate) Save(ctx context.Context) (*ProjectWork, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProjectWorkCreate) SaveX(ctx context.Context) *ProjectWork {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectWorkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectWorkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProjectWorkCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := projectwork.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := projectwork.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProjectWorkCreate) check() error {
	if _, ok := _c.mutation.WorkName(); !ok {
		return &ValidationError{Name: "work_name", err: errors.New(`ent: missing required field "ProjectWork.work_name"`)}
	}
	if _, ok := _c.mutation.SourceLang(); !ok {
		return &ValidationError{Name: "source_lang", err: errors.New(`ent: missing required field "ProjectWork.source_lang"`)}
	}
	if _, ok := _c.mutation.TargetLang(); !ok {
		return &ValidationError{Name: "target_lang", err: errors.New(`ent: missing required field "ProjectWork.target_lang"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProjectWork.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProjectWork.updated_at"`)}
	}
	return nil
}

func (_c *ProjectWorkCreate) sqlSave(ctx context.Context) (*ProjectWork, error) {
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

func (_c *ProjectWorkCreate) createSpec() (*ProjectWork, *sqlgraph.CreateSpec) {
	var (
		_node = &ProjectWork{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(projectwork.Table, sqlgraph.NewFieldSpec(projectwork.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.WorkName(); ok {
		_spec.SetField(projectwork.FieldWorkName, field.TypeString, value)
		_node.WorkName = value
	}
	if value, ok := _c.mutation.SourceLang(); ok {
		_spec.SetField(projectwork.FieldSourceLang, field.TypeString, value)
		_node.SourceLang = value
	}
	if value, ok := _c.mutation.TargetLang(); ok {
		_spec.SetField(projectwork.FieldTargetLang, field.TypeString, value)
		_node.TargetLang = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(projectwork.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.TopicInfo(); ok {
		_spec.SetField(projectwork.FieldTopicInfo, field.TypeJSON, value)
		_node.TopicInfo = value
	}
	if value, ok := _c.mutation.TranslationGuide(); ok {
		_spec.SetField(projectwork.FieldTranslationGuide, field.TypeString, value)
		_node.TranslationGuide = &value
	}
	if value, ok := _c.mutation.PromptTemplates(); ok {
		_spec.SetField(projectwork.FieldPromptTemplates, field.TypeJSON, value)
		_node.PromptTemplates = value
	}
	if value, ok := _c.mutation.Extra(); ok {
		_spec.SetField(projectwork.FieldExtra, field.TypeJSON, value)
		_node.Extra = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(projectwork.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(projectwork.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DocsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   projectwork.DocsTable,
			Columns: []string{projectwork.DocsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sourcedoc.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.KnowledgeEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   projectwork.KnowledgeEntriesTable,
			Columns: []string{projectwork.KnowledgeEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgebase.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   projectwork.RunsTable,
			Columns: []string{projectwork.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(translationrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProjectWorkCreateBulk is the builder for creating many ProjectWork entities in bulk.
type ProjectWorkCreateBulk struct {
	config
	err      error
	builders []*ProjectWorkCreate
}

// Save creates the ProjectWork entities in the database.
func (_c *ProjectWorkCreateBulk) Save(ctx context.Context) ([]*ProjectWork, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProjectWork, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProjectWorkMutation)
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
func (_c *ProjectWorkCreateBulk) SaveX(ctx context.Context) []*ProjectWork {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectWorkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectWorkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
