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
	"github.com/linguaflow/linguaflow/ent/agenttrace"
	"github.com/linguaflow/linguaflow/ent/predicate"
	"github.com/linguaflow/linguaflow/ent/processingatom"
	pgvector "github.com/pgvector/pgvector-go"
)

// ProcessingAtomUpdate is the builder for updating ProcessingAtom entities.
type ProcessingAtomUpdate struct {
	config
	hooks    []Hook
	mutation *ProcessingAtomMutation
}

// Where appends a list predicates to the ProcessingAtomUpdate builder.
func (_u *ProcessingAtomUpdate) Where(ps ...predicate.ProcessingAtom) *ProcessingAtomUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSourceText sets the "source_text" field.
func (_u *ProcessingAtomUpdate) SetSourceText(v string) *ProcessingAtomUpdate {
	_u.mutation.SetSourceText(v)
	return _u
}

// SetNillableSourceText sets the "source_text" field if the given value is not nil.
func (_u *ProcessingAtomUpdate) SetNillableSourceText(v *string) *ProcessingAtomUpdate {
	if v != nil {
		_u.SetSourceText(*v)
	}
	return _u
}

// SetSourceHash sets the "source_hash" field.
func (_u *ProcessingAtomUpdate) SetSourceHash(v string) *ProcessingAtomUpdate {
	_u.mutation.SetSourceHash(v)
	return _u
}

// SetNillableSourceHash sets the "source_hash" field if the given value is not nil.
func (_u *ProcessingAtomUpdate) SetNillableSourceHash(v *string) *ProcessingAtomUpdate {
	if v != nil {
		_u.SetSourceHash(*v)
	}
	return _u
}

// SetTranslatedText sets the "translated_text" field.
func (_u *ProcessingAtomUpdate) SetTranslatedText(v string) *ProcessingAtomUpdate {
	_u.mutation.SetTranslatedText(v)
	return _u
}

// SetNillableTranslatedText sets the "translated_text" field if the given value is not nil.
func (_u *ProcessingAtomUpdate) SetNillableTranslatedText(v *string) *ProcessingAtomUpdate {
	if v != nil {
		_u.SetTranslatedText(*v)
	}
	return _u
}

// ClearTranslatedText clears the value of the "translated_text" field.
func (_u *ProcessingAtomUpdate) ClearTranslatedText() *ProcessingAtomUpdate {
	_u.mutation.ClearTranslatedText()
	return _u
}

// SetStatusCode sets the "status_code" field.
func (_u *ProcessingAtomUpdate) SetStatusCode(v int) *ProcessingAtomUpdate {
	_u.mutation.ResetStatusCode()
	_u.mutation.SetStatusCode(v)
	return _u
}

// SetNillableStatusCode sets the "status_code" field if the given value is not nil.
func (_u *ProcessingAtomUpdate) SetNillableStatusCode(v *int) *ProcessingAtomUpdate {
	if v != nil {
		_u.SetStatusCode(*v)
	}
	return _u
}

// AddStatusCode adds value to the "status_code" field.
func (_u *ProcessingAtomUpdate) AddStatusCode(v int) *ProcessingAtomUpdate {
	_u.mutation.AddStatusCode(v)
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *ProcessingAtomUpdate) SetQualityScore(v float64) *ProcessingAtomUpdate {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *ProcessingAtomUpdate) SetNillableQualityScore(v *float64) *ProcessingAtomUpdate {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *ProcessingAtomUpdate) AddQualityScore(v float64) *ProcessingAtomUpdate {
	_u.mutation.AddQualityScore(v)
	return _u
}

// ClearQualityScore clears the value of the "quality_score" field.
func (_u *ProcessingAtomUpdate) ClearQualityScore() *ProcessingAtomUpdate {
	_u.mutation.ClearQualityScore()
	return _u
}

// SetExamination sets the "examination" field.
func (_u *ProcessingAtomUpdate) SetExamination(v map[string]interface{}) *ProcessingAtomUpdate {
	_u.mutation.SetExamination(v)
	return _u
}

// ClearExamination clears the value of the "examination" field.
func (_u *ProcessingAtomUpdate) ClearExamination() *ProcessingAtomUpdate {
	_u.mutation.ClearExamination()
	return _u
}

// SetContextInfo sets the "context_info" field.
func (_u *ProcessingAtomUpdate) SetContextInfo(v map[string]interface{}) *ProcessingAtomUpdate {
	_u.mutation.SetContextInfo(v)
	return _u
}

// ClearContextInfo clears the value of the "context_info" field.
func (_u *ProcessingAtomUpdate) ClearContextInfo() *ProcessingAtomUpdate {
	_u.mutation.ClearContextInfo()
	return _u
}

// SetSemanticVec sets the "semantic_vec" field.
func (_u *ProcessingAtomUpdate) SetSemanticVec(v pgvector.Vector) *ProcessingAtomUpdate {
	_u.mutation.SetSemanticVec(v)
	return _u
}

// SetNillableSemanticVec sets the "semantic_vec" field if the given value is not nil.
func (_u *ProcessingAtomUpdate) SetNillableSemanticVec(v *pgvector.Vector) *ProcessingAtomUpdate {
	if v != nil {
		_u.SetSemanticVec(*v)
	}
	return _u
}

// ClearSemanticVec clears the value of the "semantic_vec" field.
func (_u *ProcessingAtomUpdate) ClearSemanticVec() *ProcessingAtomUpdate {
	_u.mutation.ClearSemanticVec()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProcessingAtomUpdate) SetUpdatedAt(v time.Time) *ProcessingAtomUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddTraceIDs adds the "traces" edge to the AgentTrace entity by IDs.
func (_u *ProcessingAtomUpdate) AddTraceIDs(ids ...int) *ProcessingAtomUpdate {
	_u.mutation.AddTraceIDs(ids...)
	return _u
}

// AddTraces adds the "traces" edges to the AgentTrace entity.
func (_u *ProcessingAtomUpdate) AddTraces(v ...*AgentTrace) *ProcessingAtomUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTraceIDs(ids...)
}

// Mutation returns the ProcessingAtomMutation object of the builder.
func (_u *ProcessingAtomUpdate) Mutation() *ProcessingAtomMutation {
	return _u.mutation
}

// ClearTraces clears all "traces" edges to the AgentTrace entity.
func (_u *ProcessingAtomUpdate) ClearTraces() *ProcessingAtomUpdate {
	_u.mutation.ClearTraces()
	return _u
}

// RemoveTraceIDs removes the "traces" edge to AgentTrace entities by IDs.
func (_u *ProcessingAtomUpdate) RemoveTraceIDs(ids ...int) *ProcessingAtomUpdate {
	_u.mutation.RemoveTraceIDs(ids...)
	return _u
}

// RemoveTraces removes "traces" edges to AgentTrace entities.
func (_u *ProcessingAtomUpdate) RemoveTraces(v ...*AgentTrace) *ProcessingAtomUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTraceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcessingAtomUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingAtomUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcessingAtomUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingAtomUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProcessingAtomUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := processingatom.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessingAtomUpdate) check() error {
	if v, ok := _u.mutation.SourceHash(); ok {
		if err := processingatom.SourceHashValidator(v); err != nil {
			return &ValidationError{Name: "source_hash", err: fmt.Errorf(`ent: validator failed for field "ProcessingAtom.source_hash": %w`, err)}
		}
	}
	if _u.mutation.DocCleared() && len(_u.mutation.DocIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProcessingAtom.doc"`)
	}
	return nil
}

func (_u *ProcessingAtomUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processingatom.Table, processingatom.Columns, sqlgraph.NewFieldSpec(processingatom.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceText(); ok {
		_spec.SetField(processingatom.FieldSourceText, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceHash(); ok {
		_spec.SetField(processingatom.FieldSourceHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.TranslatedText(); ok {
		_spec.SetField(processingatom.FieldTranslatedText, field.TypeString, value)
	}
	if _u.mutation.TranslatedTextCleared() {
		_spec.ClearField(processingatom.FieldTranslatedText, field.TypeString)
	}
	if value, ok := _u.mutation.StatusCode(); ok {
		_spec.SetField(processingatom.FieldStatusCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatusCode(); ok {
		_spec.AddField(processingatom.FieldStatusCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(processingatom.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(processingatom.FieldQualityScore, field.TypeFloat64, value)
	}
	if _u.mutation.QualityScoreCleared() {
		_spec.ClearField(processingatom.FieldQualityScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Examination(); ok {
		_spec.SetField(processingatom.FieldExamination, field.TypeJSON, value)
	}
	if _u.mutation.ExaminationCleared() {
		_spec.ClearField(processingatom.FieldExamination, field.TypeJSON)
	}
	if value, ok := _u.mutation.ContextInfo(); ok {
		_spec.SetField(processingatom.FieldContextInfo, field.TypeJSON, value)
	}
	if _u.mutation.ContextInfoCleared() {
		_spec.ClearField(processingatom.FieldContextInfo, field.TypeJSON)
	}
	if value, ok := _u.mutation.SemanticVec(); ok {
		_spec.SetField(processingatom.FieldSemanticVec, field.TypeOther, value)
	}
	if _u.mutation.SemanticVecCleared() {
		_spec.ClearField(processingatom.FieldSemanticVec, field.TypeOther)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(processingatom.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TracesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTracesIDs(); len(nodes) > 0 && !_u.mutation.TracesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TracesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processingatom.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcessingAtomUpdateOne is the builder for updating a single ProcessingAtom entity.
type ProcessingAtomUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcessingAtomMutation
}

// SetSourceText sets the "source_text" field.
func (_u *ProcessingAtomUpdateOne) SetSourceText(v string) *ProcessingAtomUpdateOne {
	_u.mutation.SetSourceText(v)
	return _u
}

// SetNillableSourceText sets the "source_text" field if the given value is not nil.
func (_u *ProcessingAtomUpdateOne) SetNillableSourceText(v *string) *ProcessingAtomUpdateOne {
	if v != nil {
		_u.SetSourceText(*v)
	}
	return _u
}

// SetSourceHash sets the "source_hash" field.
func (_u *ProcessingAtomUpdateOne) SetSourceHash(v string) *ProcessingAtomUpdateOne {
	_u.mutation.SetSourceHash(v)
	return _u
}

// SetNillableSourceHash sets the "source_hash" field if the given value is not nil.
func (_u *ProcessingAtomUpdateOne) SetNillableSourceHash(v *string) *ProcessingAtomUpdateOne {
	if v != nil {
		_u.SetSourceHash(*v)
	}
	return _u
}

// SetTranslatedText sets the "translated_text" field.
func (_u *ProcessingAtomUpdateOne) SetTranslatedText(v string) *ProcessingAtomUpdateOne {
	_u.mutation.SetTranslatedText(v)
	return _u
}

// SetNillableTranslatedText sets the "translated_text" field if the given value is not nil.
func (_u *ProcessingAtomUpdateOne) SetNillableTranslatedText(v *string) *ProcessingAtomUpdateOne {
	if v != nil {
		_u.SetTranslatedText(*v)
	}
	return _u
}

// ClearTranslatedText clears the value of the "translated_text" field.
func (_u *ProcessingAtomUpdateOne) ClearTranslatedText() *ProcessingAtomUpdateOne {
	_u.mutation.ClearTranslatedText()
	return _u
}

// SetStatusCode sets the "status_code" field.
func (_u *ProcessingAtomUpdateOne) SetStatusCode(v int) *ProcessingAtomUpdateOne {
	_u.mutation.ResetStatusCode()
	_u.mutation.SetStatusCode(v)
	return _u
}

// SetNillableStatusCode sets the "status_code" field if the given value is not nil.
func (_u *ProcessingAtomUpdateOne) SetNillableStatusCode(v *int) *ProcessingAtomUpdateOne {
	if v != nil {
		_u.SetStatusCode(*v)
	}
	return _u
}

// AddStatusCode adds value to the "status_code" field.
func (_u *ProcessingAtomUpdateOne) AddStatusCode(v int) *ProcessingAtomUpdateOne {
	_u.mutation.AddStatusCode(v)
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *ProcessingAtomUpdateOne) SetQualityScore(v float64) *ProcessingAtomUpdateOne {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *ProcessingAtomUpdateOne) SetNillableQualityScore(v *float64) *ProcessingAtomUpdateOne {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *ProcessingAtomUpdateOne) AddQualityScore(v float64) *ProcessingAtomUpdateOne {
	_u.mutation.AddQualityScore(v)
	return _u
}

// ClearQualityScore clears the value of the "quality_score" field.
func (_u *ProcessingAtomUpdateOne) ClearQualityScore() *ProcessingAtomUpdateOne {
	_u.mutation.ClearQualityScore()
	return _u
}

// SetExamination sets the "examination" field.
func (_u *ProcessingAtomUpdateOne) SetExamination(v map[string]interface{}) *ProcessingAtomUpdateOne {
	_u.mutation.SetExamination(v)
	return _u
}

// ClearExamination clears the value of the "examination" field.
func (_u *ProcessingAtomUpdateOne) ClearExamination() *ProcessingAtomUpdateOne {
	_u.mutation.ClearExamination()
	return _u
}

// SetContextInfo sets the "context_info" field.
func (_u *ProcessingAtomUpdateOne) SetContextInfo(v map[string]interface{}) *ProcessingAtomUpdateOne {
	_u.mutation.SetContextInfo(v)
	return _u
}

// ClearContextInfo clears the value of the "context_info" field.
func (_u *ProcessingAtomUpdateOne) ClearContextInfo() *ProcessingAtomUpdateOne {
	_u.mutation.ClearContextInfo()
	return _u
}

// SetSemanticVec sets the "semantic_vec" field.
func (_u *ProcessingAtomUpdateOne) SetSemanticVec(v pgvector.Vector) *ProcessingAtomUpdateOne {
	_u.mutation.SetSemanticVec(v)
	return _u
}

// SetNillableSemanticVec sets the "semantic_vec" field if the given value is not nil.
func (_u *ProcessingAtomUpdateOne) SetNillableSemanticVec(v *pgvector.Vector) *ProcessingAtomUpdateOne {
	if v != nil {
		_u.SetSemanticVec(*v)
	}
	return _u
}

// ClearSemanticVec clears the value of the "semantic_vec" field.
func (_u *ProcessingAtomUpdateOne) ClearSemanticVec() *ProcessingAtomUpdateOne {
	_u.mutation.ClearSemanticVec()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProcessingAtomUpdateOne) SetUpdatedAt(v time.Time) *ProcessingAtomUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddTraceIDs adds the "traces" edge to the AgentTrace entity by IDs.
func (_u *ProcessingAtomUpdateOne) AddTraceIDs(ids ...int) *ProcessingAtomUpdateOne {
	_u.mutation.AddTraceIDs(ids...)
	return _u
}

// AddTraces adds the "traces" edges to the AgentTrace entity.
func (_u *ProcessingAtomUpdateOne) AddTraces(v ...*AgentTrace) *ProcessingAtomUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTraceIDs(ids...)
}

// Mutation returns the ProcessingAtomMutation object of the builder.
func (_u *ProcessingAtomUpdateOne) Mutation() *ProcessingAtomMutation {
	return _u.mutation
}

// ClearTraces clears all "traces" edges to the AgentTrace entity.
func (_u *ProcessingAtomUpdateOne) ClearTraces() *ProcessingAtomUpdateOne {
	_u.mutation.ClearTraces()
	return _u
}

// RemoveTraceIDs removes the "traces" edge to AgentTrace entities by IDs.
func (_u *ProcessingAtomUpdateOne) RemoveTraceIDs(ids ...int) *ProcessingAtomUpdateOne {
	_u.mutation.RemoveTraceIDs(ids...)
	return _u
}

// RemoveTraces removes "traces" edges to AgentTrace entities.
func (_u *ProcessingAtomUpdateOne) RemoveTraces(v ...*AgentTrace) *ProcessingAtomUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTraceIDs(ids...)
}

// Where appends a list predicates to the ProcessingAtomUpdate builder.
func (_u *ProcessingAtomUpdateOne) Where(ps ...predicate.ProcessingAtom) *ProcessingAtomUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcessingAtomUpdateOne) Select(field string, fields ...string) *ProcessingAtomUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProcessingAtom entity.
func (_u *ProcessingAtomUpdateOne) Save(ctx context.Context) (*ProcessingAtom, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingAtomUpdateOne) SaveX(ctx context.Context) *ProcessingAtom {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcessingAtomUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingAtomUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProcessingAtomUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := processingatom.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessingAtomUpdateOne) check() error {
	if v, ok := _u.mutation.SourceHash(); ok {
		if err := processingatom.SourceHashValidator(v); err != nil {
			return &ValidationError{Name: "source_hash", err: fmt.Errorf(`ent: validator failed for field "ProcessingAtom.source_hash": %w`, err)}
		}
	}
	if _u.mutation.DocCleared() && len(_u.mutation.DocIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProcessingAtom.doc"`)
	}
	return nil
}

func (_u *ProcessingAtomUpdateOne) sqlSave(ctx context.Context) (_node *ProcessingAtom, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processingatom.Table, processingatom.Columns, sqlgraph.NewFieldSpec(processingatom.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProcessingAtom.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processingatom.FieldID)
		for _, f := range fields {
			if !processingatom.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != processingatom.FieldID {
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
	if value, ok := _u.mutation.SourceText(); ok {
		_spec.SetField(processingatom.FieldSourceText, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceHash(); ok {
		_spec.SetField(processingatom.FieldSourceHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.TranslatedText(); ok {
		_spec.SetField(processingatom.FieldTranslatedText, field.TypeString, value)
	}
	if _u.mutation.TranslatedTextCleared() {
		_spec.ClearField(processingatom.FieldTranslatedText, field.TypeString)
	}
	if value, ok := _u.mutation.StatusCode(); ok {
		_spec.SetField(processingatom.FieldStatusCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatusCode(); ok {
		_spec.AddField(processingatom.FieldStatusCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(processingatom.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(processingatom.FieldQualityScore, field.TypeFloat64, value)
	}
	if _u.mutation.QualityScoreCleared() {
		_spec.ClearField(processingatom.FieldQualityScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Examination(); ok {
		_spec.SetField(processingatom.FieldExamination, field.TypeJSON, value)
	}
	if _u.mutation.ExaminationCleared() {
		_spec.ClearField(processingatom.FieldExamination, field.TypeJSON)
	}
	if value, ok := _u.mutation.ContextInfo(); ok {
		_spec.SetField(processingatom.FieldContextInfo, field.TypeJSON, value)
	}
	if _u.mutation.ContextInfoCleared() {
		_spec.ClearField(processingatom.FieldContextInfo, field.TypeJSON)
	}
	if value, ok := _u.mutation.SemanticVec(); ok {
		_spec.SetField(processingatom.FieldSemanticVec, field.TypeOther, value)
	}
	if _u.mutation.SemanticVecCleared() {
		_spec.ClearField(processingatom.FieldSemanticVec, field.TypeOther)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(processingatom.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TracesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTracesIDs(); len(nodes) > 0 && !_u.mutation.TracesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TracesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ProcessingAtom{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processingatom.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
