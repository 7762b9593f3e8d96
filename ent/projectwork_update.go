// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/linguaflow/linguaflow/ent/knowledgebase"
	"github.com/linguaflow/linguaflow/ent/predicate"
	"github.com/linguaflow/linguaflow/ent/projectwork"
	"github.com/linguaflow/linguaflow/ent/sourcedoc"
	"github.com/linguaflow/linguaflow/ent/translationrun"
)

// ProjectWorkUpdate is the builder for updating ProjectWork entities.
type ProjectWorkUpdate struct {
	config
	hooks    []Hook
	mutation *ProjectWorkMutation
}

// Where appends a list predicates to the ProjectWorkUpdate builder.
func (_u *ProjectWorkUpdate) Where(ps ...predicate.ProjectWork) *ProjectWorkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkName sets the "work_name" field.
func (_u *ProjectWorkUpdate) SetWorkName(v string) *ProjectWorkUpdate {
	_u.mutation.SetWorkName(v)
	return _u
}

// SetNillableWorkName sets the "work_name" field if the given value is not nil.
func (_u *ProjectWorkUpdate) SetNillableWorkName(v *string) *ProjectWorkUpdate {
	if v != nil {
		_u.SetWorkName(*v)
	}
	return _u
}

// SetSourceLang sets the "source_lang" field.
func (_u *ProjectWorkUpdate) SetSourceLang(v string) *ProjectWorkUpdate {
	_u.mutation.SetSourceLang(v)
	return _u
}

// SetNillableSourceLang sets the "source_lang" field if the given value is not nil.
func (_u *ProjectWorkUpdate) SetNillableSourceLang(v *string) *ProjectWorkUpdate {
	if v != nil {
		_u.SetSourceLang(*v)
	}
	return _u
}

// SetTargetLang sets the "target_lang" field.
func (_u *ProjectWorkUpdate) SetTargetLang(v string) *ProjectWorkUpdate {
	_u.mutation.SetTargetLang(v)
	return _u
}

// SetNillableTargetLang sets the "target_lang" field if the given value is not nil.
func (_u *ProjectWorkUpdate) SetNillableTargetLang(v *string) *ProjectWorkUpdate {
	if v != nil {
		_u.SetTargetLang(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *ProjectWorkUpdate) SetConfig(v map[string]interface{}) *ProjectWorkUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *ProjectWorkUpdate) ClearConfig() *ProjectWorkUpdate {
	_u.mutation.ClearConfig()
	return _u
}

// SetTopicInfo sets the "topic_info" field.
func (_u *ProjectWorkUpdate) SetTopicInfo(v map[string]interface{}) *ProjectWorkUpdate {
	_u.mutation.SetTopicInfo(v)
	return _u
}

// ClearTopicInfo clears the value of the "topic_info" field.
func (_u *ProjectWorkUpdate) ClearTopicInfo() *ProjectWorkUpdate {
	_u.mutation.ClearTopicInfo()
	return _u
}

// SetTranslationGuide sets the "translation_guide" field.
func (_u *ProjectWorkUpdate) SetTranslationGuide(v string) *ProjectWorkUpdate {
	_u.mutation.SetTranslationGuide(v)
	return _u
}

// SetNillableTranslationGuide sets the "translation_guide" field if the given value is not nil.
func (_u *ProjectWorkUpdate) SetNillableTranslationGuide(v *string) *ProjectWorkUpdate {
	if v != nil {
		_u.SetTranslationGuide(*v)
	}
	return _u
}

// ClearTranslationGuide clears the value of the "translation_guide" field.
func (_u *ProjectWorkUpdate) ClearTranslationGuide() *ProjectWorkUpdate {
	_u.mutation.ClearTranslationGuide()
	return _u
}

// SetPromptTemplates sets the "prompt_templates" field.
func (_u *ProjectWorkUpdate) SetPromptTemplates(v map[string]interface{}) *ProjectWorkUpdate {
	_u.mutation.SetPromptTemplates(v)
	return _u
}

// ClearPromptTemplates clears the value of the "prompt_templates" field.
func (_u *ProjectWorkUpdate) ClearPromptTemplates() *ProjectWorkUpdate {
	_u.mutation.ClearPromptTemplates()
	return _u
}

// SetExtra sets the "extra" field.
func (_u *ProjectWorkUpdate) SetExtra(v map[string]interface{}) *ProjectWorkUpdate {
	_u.mutation.SetExtra(v)
	return _u
}

// ClearExtra clears the value of the "extra" field.
func (_u *ProjectWorkUpdate) ClearExtra() *ProjectWorkUpdate {
	_u.mutation.ClearExtra()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectWorkUpdate) SetUpdatedAt(v time.Time) *ProjectWorkUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDocIDs adds the "docs" edge to the SourceDoc entity by IDs.
func (_u *ProjectWorkUpdate) AddDocIDs(ids ...int) *ProjectWorkUpdate {
	_u.mutation.AddDocIDs(ids...)
	return _u
}

// AddDocs adds the "docs" edges to the SourceDoc entity.
func (_u *ProjectWorkUpdate) AddDocs(v ...*SourceDoc) *ProjectWorkUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocIDs(ids...)
}

// AddKnowledgeEntryIDs adds the "knowledge_entries" edge to the KnowledgeBase entity by IDs.
func (_u *ProjectWorkUpdate) AddKnowledgeEntryIDs(ids ...int) *ProjectWorkUpdate {
	_u.mutation.AddKnowledgeEntryIDs(ids...)
	return _u
}

// AddKnowledgeEntries adds the "knowledge_entries" edges to the KnowledgeBase entity.
func (_u *ProjectWorkUpdate) AddKnowledgeEntries(v ...*KnowledgeBase) *ProjectWorkUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddKnowledgeEntryIDs(ids...)
}

// AddRunIDs adds the "runs" edge to the TranslationRun entity by IDs.
func (_u *ProjectWorkUpdate) AddRunIDs(ids ...string) *ProjectWorkUpdate {
	_u.mutation.AddRunIDs(ids...)
	return _u
}

// AddRuns adds the "runs" edges to the TranslationRun entity.
func (_u *ProjectWorkUpdate) AddRuns(v ...*TranslationRun) *ProjectWorkUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRunIDs(ids...)
}

// Mutation returns the ProjectWorkMutation object of the builder.
func (_u *ProjectWorkUpdate) Mutation() *ProjectWorkMutation {
	return _u.mutation
}

// ClearDocs clears all "docs" edges to the SourceDoc entity.
func (_u *ProjectWorkUpdate) ClearDocs() *ProjectWorkUpdate {
	_u.mutation.ClearDocs()
	return _u
}

// RemoveDocIDs removes the "docs" edge to SourceDoc entities by IDs.
func (_u *ProjectWorkUpdate) RemoveDocIDs(ids ...int) *ProjectWorkUpdate {
	_u.mutation.RemoveDocIDs(ids...)
	return _u
}

// RemoveDocs removes "docs" edges to SourceDoc entities.
func (_u *ProjectWorkUpdate) RemoveDocs(v ...*SourceDoc) *ProjectWorkUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocIDs(ids...)
}

// ClearKnowledgeEntries clears all "knowledge_entries" edges to the KnowledgeBase entity.
func (_u *ProjectWorkUpdate) ClearKnowledgeEntries() *ProjectWorkUpdate {
	_u.mutation.ClearKnowledgeEntries()
	return _u
}

// RemoveKnowledgeEntryIDs removes the "knowledge_entries" edge to KnowledgeBase entities by IDs.
func (_u *ProjectWorkUpdate) RemoveKnowledgeEntryIDs(ids ...int) *ProjectWorkUpdate {
	_u.mutation.RemoveKnowledgeEntryIDs(ids...)
	return _u
}

// RemoveKnowledgeEntries removes "knowledge_entries" edges to KnowledgeBase entities.
func (_u *ProjectWorkUpdate) RemoveKnowledgeEntries(v ...*KnowledgeBase) *ProjectWorkUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveKnowledgeEntryIDs(ids...)
}

// ClearRuns clears all "runs" edges to the TranslationRun entity.
func (_u *ProjectWorkUpdate) ClearRuns() *ProjectWorkUpdate {
	_u.mutation.ClearRuns()
	return _u
}

// RemoveRunIDs removes the "runs" edge to TranslationRun entities by IDs.
func (_u *ProjectWorkUpdate) RemoveRunIDs(ids ...string) *ProjectWorkUpdate {
	_u.mutation.RemoveRunIDs(ids...)
	return _u
}

// RemoveRuns removes "runs" edges to TranslationRun entities.
func (_u *ProjectWorkUpdate) RemoveRuns(v ...*TranslationRun) *ProjectWorkUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRunIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProjectWorkUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectWorkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProjectWorkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectWorkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectWorkUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := projectwork.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProjectWorkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(projectwork.Table, projectwork.Columns, sqlgraph.NewFieldSpec(projectwork.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkName(); ok {
		_spec.SetField(projectwork.FieldWorkName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceLang(); ok {
		_spec.SetField(projectwork.FieldSourceLang, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetLang(); ok {
		_spec.SetField(projectwork.FieldTargetLang, field.TypeString, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(projectwork.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(projectwork.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.TopicInfo(); ok {
		_spec.SetField(projectwork.FieldTopicInfo, field.TypeJSON, value)
	}
	if _u.mutation.TopicInfoCleared() {
		_spec.ClearField(projectwork.FieldTopicInfo, field.TypeJSON)
	}
	if value, ok := _u.mutation.TranslationGuide(); ok {
		_spec.SetField(projectwork.FieldTranslationGuide, field.TypeString, value)
	}
	if _u.mutation.TranslationGuideCleared() {
		_spec.ClearField(projectwork.FieldTranslationGuide, field.TypeString)
	}
	if value, ok := _u.mutation.PromptTemplates(); ok {
		_spec.SetField(projectwork.FieldPromptTemplates, field.TypeJSON, value)
	}
	if _u.mutation.PromptTemplatesCleared() {
		_spec.ClearField(projectwork.FieldPromptTemplates, field.TypeJSON)
	}
	if value, ok := _u.mutation.Extra(); ok {
		_spec.SetField(projectwork.FieldExtra, field.TypeJSON, value)
	}
	if _u.mutation.ExtraCleared() {
		_spec.ClearField(projectwork.FieldExtra, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(projectwork.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocsIDs(); len(nodes) > 0 && !_u.mutation.DocsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.KnowledgeEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedKnowledgeEntriesIDs(); len(nodes) > 0 && !_u.mutation.KnowledgeEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.KnowledgeEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRunsIDs(); len(nodes) > 0 && !_u.mutation.RunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{projectwork.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProjectWorkUpdateOne is the builder for updating a single ProjectWork entity.
type ProjectWorkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProjectWorkMutation
}

// SetWorkName sets the "work_name" field.
func (_u *ProjectWorkUpdateOne) SetWorkName(v string) *ProjectWorkUpdateOne {
	_u.mutation.SetWorkName(v)
	return _u
}

// SetNillableWorkName sets the "work_name" field if the given value is not nil.
func (_u *ProjectWorkUpdateOne) SetNillableWorkName(v *string) *ProjectWorkUpdateOne {
	if v != nil {
		_u.SetWorkName(*v)
	}
	return _u
}

// SetSourceLang sets the "source_lang" field.
func (_u *ProjectWorkUpdateOne) SetSourceLang(v string) *ProjectWorkUpdateOne {
	_u.mutation.SetSourceLang(v)
	return _u
}

// SetNillableSourceLang sets the "source_lang" field if the given value is not nil.
func (_u *ProjectWorkUpdateOne) SetNillableSourceLang(v *string) *ProjectWorkUpdateOne {
	if v != nil {
		_u.SetSourceLang(*v)
	}
	return _u
}

// SetTargetLang sets the "target_lang" field.
func (_u *ProjectWorkUpdateOne) SetTargetLang(v string) *ProjectWorkUpdateOne {
	_u.mutation.SetTargetLang(v)
	return _u
}

// SetNillableTargetLang sets the "target_lang" field if the given value is not nil.
func (_u *ProjectWorkUpdateOne) SetNillableTargetLang(v *string) *ProjectWorkUpdateOne {
	if v != nil {
		_u.SetTargetLang(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *ProjectWorkUpdateOne) SetConfig(v map[string]interface{}) *ProjectWorkUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *ProjectWorkUpdateOne) ClearConfig() *ProjectWorkUpdateOne {
	_u.mutation.ClearConfig()
	return _u
}

// SetTopicInfo sets the "topic_info" field.
func (_u *ProjectWorkUpdateOne) SetTopicInfo(v map[string]interface{}) *ProjectWorkUpdateOne {
	_u.mutation.SetTopicInfo(v)
	return _u
}

// ClearTopicInfo clears the value of the "topic_info" field.
func (_u *ProjectWorkUpdateOne) ClearTopicInfo() *ProjectWorkUpdateOne {
	_u.mutation.ClearTopicInfo()
	return _u
}

// SetTranslationGuide sets the "translation_guide" field.
func (_u *ProjectWorkUpdateOne) SetTranslationGuide(v string) *ProjectWorkUpdateOne {
	_u.mutation.SetTranslationGuide(v)
	return _u
}

// SetNillableTranslationGuide sets the "translation_guide" field if the given value is not nil.
func (_u *ProjectWorkUpdateOne) SetNillableTranslationGuide(v *string) *ProjectWorkUpdateOne {
	if v != nil {
		_u.SetTranslationGuide(*v)
	}
	return _u
}

// ClearTranslationGuide clears the value of the "translation_guide" field.
func (_u *ProjectWorkUpdateOne) ClearTranslationGuide() *ProjectWorkUpdateOne {
	_u.mutation.ClearTranslationGuide()
	return _u
}

// SetPromptTemplates sets the "prompt_templates" field.
func (_u *ProjectWorkUpdateOne) SetPromptTemplates(v map[string]interface{}) *ProjectWorkUpdateOne {
	_u.mutation.SetPromptTemplates(v)
	return _u
}

// ClearPromptTemplates clears the value of the "prompt_templates" field.
func (_u *ProjectWorkUpdateOne) ClearPromptTemplates() *ProjectWorkUpdateOne {
	_u.mutation.ClearPromptTemplates()
	return _u
}

// SetExtra sets the "extra" field.
func (_u *ProjectWorkUpdateOne) SetExtra(v map[string]interface{}) *ProjectWorkUpdateOne {
	_u.mutation.SetExtra(v)
	return _u
}

// ClearExtra clears the value of the "extra" field.
func (_u *ProjectWorkUpdateOne) ClearExtra() *ProjectWorkUpdateOne {
	_u.mutation.ClearExtra()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectWorkUpdateOne) SetUpdatedAt(v time.Time) *ProjectWorkUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDocIDs adds the "docs" edge to the SourceDoc entity by IDs.
func (_u *ProjectWorkUpdateOne) AddDocIDs(ids ...int) *ProjectWorkUpdateOne {
	_u.mutation.AddDocIDs(ids...)
	return _u
}

// AddDocs adds the "docs" edges to the SourceDoc entity.
func (_u *ProjectWorkUpdateOne) AddDocs(v ...*SourceDoc) *ProjectWorkUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocIDs(ids...)
}

// AddKnowledgeEntryIDs adds the "knowledge_entries" edge to the KnowledgeBase entity by IDs.
func (_u *ProjectWorkUpdateOne) AddKnowledgeEntryIDs(ids ...int) *ProjectWorkUpdateOne {
	_u.mutation.AddKnowledgeEntryIDs(ids...)
	return _u
}

// AddKnowledgeEntries adds the "knowledge_entries" edges to the KnowledgeBase entity.
func (_u *ProjectWorkUpdateOne) AddKnowledgeEntries(v ...*KnowledgeBase) *ProjectWorkUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddKnowledgeEntryIDs(ids...)
}

// AddRunIDs adds the "runs" edge to the TranslationRun entity by IDs.
func (_u *ProjectWorkUpdateOne) AddRunIDs(ids ...string) *ProjectWorkUpdateOne {
	_u.mutation.AddRunIDs(ids...)
	return _u
}

// AddRuns adds the "runs" edges to the TranslationRun entity.
func (_u *ProjectWorkUpdateOne) AddRuns(v ...*TranslationRun) *ProjectWorkUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRunIDs(ids...)
}

// Mutation returns the ProjectWorkMutation object of the builder.
func (_u *ProjectWorkUpdateOne) Mutation() *ProjectWorkMutation {
	return _u.mutation
}

// ClearDocs clears all "docs" edges to the SourceDoc entity.
func (_u *ProjectWorkUpdateOne) ClearDocs() *ProjectWorkUpdateOne {
	_u.mutation.ClearDocs()
	return _u
}

// RemoveDocIDs removes the "docs" edge to SourceDoc entities by IDs.
func (_u *ProjectWorkUpdateOne) RemoveDocIDs(ids ...int) *ProjectWorkUpdateOne {
	_u.mutation.RemoveDocIDs(ids...)
	return _u
}

// RemoveDocs removes "docs" edges to SourceDoc entities.
func (_u *ProjectWorkUpdateOne) RemoveDocs(v ...*SourceDoc) *ProjectWorkUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocIDs(ids...)
}

// ClearKnowledgeEntries clears all "knowledge_entries" edges to the KnowledgeBase entity.
func (_u *ProjectWorkUpdateOne) ClearKnowledgeEntries() *ProjectWorkUpdateOne {
	_u.mutation.ClearKnowledgeEntries()
	return _u
}

// RemoveKnowledgeEntryIDs removes the "knowledge_entries" edge to KnowledgeBase entities by IDs.
func (_u *ProjectWorkUpdateOne) RemoveKnowledgeEntryIDs(ids ...int) *ProjectWorkUpdateOne {
	_u.mutation.RemoveKnowledgeEntryIDs(ids...)
	return _u
}

// RemoveKnowledgeEntries removes "knowledge_entries" edges to KnowledgeBase entities.
func (_u *ProjectWorkUpdateOne) RemoveKnowledgeEntries(v ...*KnowledgeBase) *ProjectWorkUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveKnowledgeEntryIDs(ids...)
}

// ClearRuns clears all "runs" edges to the TranslationRun entity.
func (_u *ProjectWorkUpdateOne) ClearRuns() *ProjectWorkUpdateOne {
	_u.mutation.ClearRuns()
	return _u
}

// RemoveRunIDs removes the "runs" edge to TranslationRun entities by IDs.
func (_u *ProjectWorkUpdateOne) RemoveRunIDs(ids ...string) *ProjectWorkUpdateOne {
	_u.mutation.RemoveRunIDs(ids...)
	return _u
}

// RemoveRuns removes "runs" edges to TranslationRun entities.
func (_u *ProjectWorkUpdateOne) RemoveRuns(v ...*TranslationRun) *ProjectWorkUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRunIDs(ids...)
}

// Where appends a list predicates to the ProjectWorkUpdate builder.
func (_u *ProjectWorkUpdateOne) Where(ps ...predicate.ProjectWork) *ProjectWorkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProjectWorkUpdateOne) Select(field string, fields ...string) *ProjectWorkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProjectWork entity.
func (_u *ProjectWorkUpdateOne) Save(ctx context.Context) (*ProjectWork, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectWorkUpdateOne) SaveX(ctx context.Context) *ProjectWork {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProjectWorkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectWorkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectWorkUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := projectwork.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProjectWorkUpdateOne) sqlSave(ctx context.Context) (_node *ProjectWork, err error) {
	_spec := sqlgraph.NewUpdateSpec(projectwork.Table, projectwork.Columns, sqlgraph.NewFieldSpec(projectwork.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProjectWork.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, projectwork.FieldID)
		for _, f := range fields {
			if !projectwork.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != projectwork.FieldID {
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
	if value, ok := _u.mutation.WorkName(); ok {
		_spec.SetField(projectwork.FieldWorkName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceLang(); ok {
		_spec.SetField(projectwork.FieldSourceLang, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetLang(); ok {
		_spec.SetField(projectwork.FieldTargetLang, field.TypeString, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(projectwork.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(projectwork.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.TopicInfo(); ok {
		_spec.SetField(projectwork.FieldTopicInfo, field.TypeJSON, value)
	}
	if _u.mutation.TopicInfoCleared() {
		_spec.ClearField(projectwork.FieldTopicInfo, field.TypeJSON)
	}
	if value, ok := _u.mutation.TranslationGuide(); ok {
		_spec.SetField(projectwork.FieldTranslationGuide, field.TypeString, value)
	}
	if _u.mutation.TranslationGuideCleared() {
		_spec.ClearField(projectwork.FieldTranslationGuide, field.TypeString)
	}
	if value, ok := _u.mutation.PromptTemplates(); ok {
		_spec.SetField(projectwork.FieldPromptTemplates, field.TypeJSON, value)
	}
	if _u.mutation.PromptTemplatesCleared() {
		_spec.ClearField(projectwork.FieldPromptTemplates, field.TypeJSON)
	}
	if value, ok := _u.mutation.Extra(); ok {
		_spec.SetField(projectwork.FieldExtra, field.TypeJSON, value)
	}
	if _u.mutation.ExtraCleared() {
		_spec.ClearField(projectwork.FieldExtra, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(projectwork.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocsIDs(); len(nodes) > 0 && !_u.mutation.DocsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.KnowledgeEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedKnowledgeEntriesIDs(); len(nodes) > 0 && !_u.mutation.KnowledgeEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.KnowledgeEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRunsIDs(); len(nodes) > 0 && !_u.mutation.RunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ProjectWork{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{projectwork.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
