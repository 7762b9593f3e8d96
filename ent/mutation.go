// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/linguaflow/linguaflow/ent/agenttrace"
	"github.com/linguaflow/linguaflow/ent/event"
	"github.com/linguaflow/linguaflow/ent/knowledgebase"
	"github.com/linguaflow/linguaflow/ent/predicate"
	"github.com/linguaflow/linguaflow/ent/processingatom"
	"github.com/linguaflow/linguaflow/ent/projectwork"
	"github.com/linguaflow/linguaflow/ent/sourcedoc"
	"github.com/linguaflow/linguaflow/ent/translationrun"
	pgvector "github.com/pgvector/pgvector-go"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentTrace     = "AgentTrace"
	TypeEvent          = "Event"
	TypeKnowledgeBase  = "KnowledgeBase"
	TypeProcessingAtom = "ProcessingAtom"
	TypeProjectWork    = "ProjectWork"
	TypeSourceDoc      = "SourceDoc"
	TypeTranslationRun = "TranslationRun"
)

// AgentTraceMutation represents an operation that mutates the AgentTrace nodes in the graph.
type AgentTraceMutation struct {
	config
	op               Op
	typ              string
	id               *int
	agent_role       *agenttrace.AgentRole
	action_type      *agenttrace.ActionType
	content          *string
	quality_report   *map[string]interface{}
	meta_data        *map[string]interface{}
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	is_active        *bool
	created_at       *time.Time
	clearedFields    map[string]struct{}
	atom             *int
	clearedatom      bool
	done             bool
	oldValue         func(context.Context) (*AgentTrace, error)
	predicates       []predicate.AgentTrace
}

var _ ent.Mutation = (*AgentTraceMutation)(nil)

// agenttraceOption allows management of the mutation configuration using functional options.
type agenttraceOption func(*AgentTraceMutation)

// newAgentTraceMutation creates new mutation for the AgentTrace entity.
func newAgentTraceMutation(c config, op Op, opts ...agenttraceOption) *AgentTraceMutation {
	m := &AgentTraceMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentTrace,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentTraceID sets the ID field of the mutation.
func withAgentTraceID(id int) agenttraceOption {
	return func(m *AgentTraceMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentTrace
		)
		m.oldValue = func(ctx context.Context) (*AgentTrace, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentTrace.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentTrace sets the old AgentTrace of the mutation.
func withAgentTrace(node *AgentTrace) agenttraceOption {
	return func(m *AgentTraceMutation) {
		m.oldValue = func(context.Context) (*AgentTrace, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentTraceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentTraceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentTraceMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentTraceMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentTrace.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAtomID sets the "atom_id" field.
func (m *AgentTraceMutation) SetAtomID(i int) {
	m.atom = &i
}

// AtomID returns the value of the "atom_id" field in the mutation.
func (m *AgentTraceMutation) AtomID() (r int, exists bool) {
	v := m.atom
	if v == nil {
		return
	}
	return *v, true
}

// OldAtomID returns the old "atom_id" field's value of the AgentTrace entity.
// If the AgentTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTraceMutation) OldAtomID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAtomID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAtomID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAtomID: %w", err)
	}
	return oldValue.AtomID, nil
}

// ResetAtomID resets all changes to the "atom_id" field.
func (m *AgentTraceMutation) ResetAtomID() {
	m.atom = nil
}

// SetAgentRole sets the "agent_role" field.
func (m *AgentTraceMutation) SetAgentRole(ar agenttrace.AgentRole) {
	m.agent_role = &ar
}

// AgentRole returns the value of the "agent_role" field in the mutation.
func (m *AgentTraceMutation) AgentRole() (r agenttrace.AgentRole, exists bool) {
	v := m.agent_role
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentRole returns the old "agent_role" field's value of the AgentTrace entity.
// If the AgentTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTraceMutation) OldAgentRole(ctx context.Context) (v agenttrace.AgentRole, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentRole: %w", err)
	}
	return oldValue.AgentRole, nil
}

// ResetAgentRole resets all changes to the "agent_role" field.
func (m *AgentTraceMutation) ResetAgentRole() {
	m.agent_role = nil
}

// SetActionType sets the "action_type" field.
func (m *AgentTraceMutation) SetActionType(at agenttrace.ActionType) {
	m.action_type = &at
}

// ActionType returns the value of the "action_type" field in the mutation.
func (m *AgentTraceMutation) ActionType() (r agenttrace.ActionType, exists bool) {
	v := m.action_type
	if v == nil {
		return
	}
	return *v, true
}

// OldActionType returns the old "action_type" field's value of the AgentTrace entity.
// If the AgentTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTraceMutation) OldActionType(ctx context.Context) (v agenttrace.ActionType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionType: %w", err)
	}
	return oldValue.ActionType, nil
}

// ResetActionType resets all changes to the "action_type" field.
func (m *AgentTraceMutation) ResetActionType() {
	m.action_type = nil
}

// SetContent sets the "content" field.
func (m *AgentTraceMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *AgentTraceMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the AgentTrace entity.
// If the AgentTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTraceMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ClearContent clears the value of the "content" field.
func (m *AgentTraceMutation) ClearContent() {
	m.content = nil
	m.clearedFields[agenttrace.FieldContent] = struct{}{}
}

// ContentCleared returns if the "content" field was cleared in this mutation.
func (m *AgentTraceMutation) ContentCleared() bool {
	_, ok := m.clearedFields[agenttrace.FieldContent]
	return ok
}

// ResetContent resets all changes to the "content" field.
func (m *AgentTraceMutation) ResetContent() {
	m.content = nil
	delete(m.clearedFields, agenttrace.FieldContent)
}

// SetQualityReport sets the "quality_report" field.
func (m *AgentTraceMutation) SetQualityReport(value map[string]interface{}) {
	m.quality_report = &value
}

// QualityReport returns the value of the "quality_report" field in the mutation.
func (m *AgentTraceMutation) QualityReport() (r map[string]interface{}, exists bool) {
	v := m.quality_report
	if v == nil {
		return
	}
	return *v, true
}

// OldQualityReport returns the old "quality_report" field's value of the AgentTrace entity.
// If the AgentTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTraceMutation) OldQualityReport(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualityReport is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualityReport requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualityReport: %w", err)
	}
	return oldValue.QualityReport, nil
}

// ClearQualityReport clears the value of the "quality_report" field.
func (m *AgentTraceMutation) ClearQualityReport() {
	m.quality_report = nil
	m.clearedFields[agenttrace.FieldQualityReport] = struct{}{}
}

// QualityReportCleared returns if the "quality_report" field was cleared in this mutation.
func (m *AgentTraceMutation) QualityReportCleared() bool {
	_, ok := m.clearedFields[agenttrace.FieldQualityReport]
	return ok
}

// ResetQualityReport resets all changes to the "quality_report" field.
func (m *AgentTraceMutation) ResetQualityReport() {
	m.quality_report = nil
	delete(m.clearedFields, agenttrace.FieldQualityReport)
}

// SetMetaData sets the "meta_data" field.
func (m *AgentTraceMutation) SetMetaData(value map[string]interface{}) {
	m.meta_data = &value
}

// MetaData returns the value of the "meta_data" field in the mutation.
func (m *AgentTraceMutation) MetaData() (r map[string]interface{}, exists bool) {
	v := m.meta_data
	if v == nil {
		return
	}
	return *v, true
}

// OldMetaData returns the old "meta_data" field's value of the AgentTrace entity.
// If the AgentTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTraceMutation) OldMetaData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetaData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetaData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetaData: %w", err)
	}
	return oldValue.MetaData, nil
}

// ClearMetaData clears the value of the "meta_data" field.
func (m *AgentTraceMutation) ClearMetaData() {
	m.meta_data = nil
	m.clearedFields[agenttrace.FieldMetaData] = struct{}{}
}

// MetaDataCleared returns if the "meta_data" field was cleared in this mutation.
func (m *AgentTraceMutation) MetaDataCleared() bool {
	_, ok := m.clearedFields[agenttrace.FieldMetaData]
	return ok
}

// ResetMetaData resets all changes to the "meta_data" field.
func (m *AgentTraceMutation) ResetMetaData() {
	m.meta_data = nil
	delete(m.clearedFields, agenttrace.FieldMetaData)
}

// SetInputTokens sets the "input_tokens" field.
func (m *AgentTraceMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *AgentTraceMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the AgentTrace entity.
// If the AgentTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTraceMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *AgentTraceMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *AgentTraceMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *AgentTraceMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *AgentTraceMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *AgentTraceMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the AgentTrace entity.
// If the AgentTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTraceMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *AgentTraceMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *AgentTraceMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *AgentTraceMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetIsActive sets the "is_active" field.
func (m *AgentTraceMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *AgentTraceMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the AgentTrace entity.
// If the AgentTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTraceMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *AgentTraceMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentTraceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentTraceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentTrace entity.
// If the AgentTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTraceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentTraceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAtom clears the "atom" edge to the ProcessingAtom entity.
func (m *AgentTraceMutation) ClearAtom() {
	m.clearedatom = true
	m.clearedFields[agenttrace.FieldAtomID] = struct{}{}
}

// AtomCleared reports if the "atom" edge to the ProcessingAtom entity was cleared.
func (m *AgentTraceMutation) AtomCleared() bool {
	return m.clearedatom
}

// AtomIDs returns the "atom" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AtomID instead. It exists only for internal usage by the builders.
func (m *AgentTraceMutation) AtomIDs() (ids []int) {
	if id := m.atom; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAtom resets all changes to the "atom" edge.
func (m *AgentTraceMutation) ResetAtom() {
	m.atom = nil
	m.clearedatom = false
}

// Where appends a list predicates to the AgentTraceMutation builder.
func (m *AgentTraceMutation) Where(ps ...predicate.AgentTrace) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentTraceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentTraceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentTrace, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentTraceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentTraceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentTrace).
func (m *AgentTraceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentTraceMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.atom != nil {
		fields = append(fields, agenttrace.FieldAtomID)
	}
	if m.agent_role != nil {
		fields = append(fields, agenttrace.FieldAgentRole)
	}
	if m.action_type != nil {
		fields = append(fields, agenttrace.FieldActionType)
	}
	if m.content != nil {
		fields = append(fields, agenttrace.FieldContent)
	}
	if m.quality_report != nil {
		fields = append(fields, agenttrace.FieldQualityReport)
	}
	if m.meta_data != nil {
		fields = append(fields, agenttrace.FieldMetaData)
	}
	if m.input_tokens != nil {
		fields = append(fields, agenttrace.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, agenttrace.FieldOutputTokens)
	}
	if m.is_active != nil {
		fields = append(fields, agenttrace.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, agenttrace.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentTraceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agenttrace.FieldAtomID:
		return m.AtomID()
	case agenttrace.FieldAgentRole:
		return m.AgentRole()
	case agenttrace.FieldActionType:
		return m.ActionType()
	case agenttrace.FieldContent:
		return m.Content()
	case agenttrace.FieldQualityReport:
		return m.QualityReport()
	case agenttrace.FieldMetaData:
		return m.MetaData()
	case agenttrace.FieldInputTokens:
		return m.InputTokens()
	case agenttrace.FieldOutputTokens:
		return m.OutputTokens()
	case agenttrace.FieldIsActive:
		return m.IsActive()
	case agenttrace.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentTraceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agenttrace.FieldAtomID:
		return m.OldAtomID(ctx)
	case agenttrace.FieldAgentRole:
		return m.OldAgentRole(ctx)
	case agenttrace.FieldActionType:
		return m.OldActionType(ctx)
	case agenttrace.FieldContent:
		return m.OldContent(ctx)
	case agenttrace.FieldQualityReport:
		return m.OldQualityReport(ctx)
	case agenttrace.FieldMetaData:
		return m.OldMetaData(ctx)
	case agenttrace.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case agenttrace.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case agenttrace.FieldIsActive:
		return m.OldIsActive(ctx)
	case agenttrace.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentTrace field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentTraceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agenttrace.FieldAtomID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAtomID(v)
		return nil
	case agenttrace.FieldAgentRole:
		v, ok := value.(agenttrace.AgentRole)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentRole(v)
		return nil
	case agenttrace.FieldActionType:
		v, ok := value.(agenttrace.ActionType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionType(v)
		return nil
	case agenttrace.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case agenttrace.FieldQualityReport:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualityReport(v)
		return nil
	case agenttrace.FieldMetaData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetaData(v)
		return nil
	case agenttrace.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case agenttrace.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case agenttrace.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case agenttrace.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentTrace field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentTraceMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, agenttrace.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, agenttrace.FieldOutputTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentTraceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agenttrace.FieldInputTokens:
		return m.AddedInputTokens()
	case agenttrace.FieldOutputTokens:
		return m.AddedOutputTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentTraceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agenttrace.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case agenttrace.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	}
	return fmt.Errorf("unknown AgentTrace numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentTraceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agenttrace.FieldContent) {
		fields = append(fields, agenttrace.FieldContent)
	}
	if m.FieldCleared(agenttrace.FieldQualityReport) {
		fields = append(fields, agenttrace.FieldQualityReport)
	}
	if m.FieldCleared(agenttrace.FieldMetaData) {
		fields = append(fields, agenttrace.FieldMetaData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentTraceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentTraceMutation) ClearField(name string) error {
	switch name {
	case agenttrace.FieldContent:
		m.ClearContent()
		return nil
	case agenttrace.FieldQualityReport:
		m.ClearQualityReport()
		return nil
	case agenttrace.FieldMetaData:
		m.ClearMetaData()
		return nil
	}
	return fmt.Errorf("unknown AgentTrace nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentTraceMutation) ResetField(name string) error {
	switch name {
	case agenttrace.FieldAtomID:
		m.ResetAtomID()
		return nil
	case agenttrace.FieldAgentRole:
		m.ResetAgentRole()
		return nil
	case agenttrace.FieldActionType:
		m.ResetActionType()
		return nil
	case agenttrace.FieldContent:
		m.ResetContent()
		return nil
	case agenttrace.FieldQualityReport:
		m.ResetQualityReport()
		return nil
	case agenttrace.FieldMetaData:
		m.ResetMetaData()
		return nil
	case agenttrace.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case agenttrace.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case agenttrace.FieldIsActive:
		m.ResetIsActive()
		return nil
	case agenttrace.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentTrace field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentTraceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.atom != nil {
		edges = append(edges, agenttrace.EdgeAtom)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentTraceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agenttrace.EdgeAtom:
		if id := m.atom; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentTraceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentTraceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentTraceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedatom {
		edges = append(edges, agenttrace.EdgeAtom)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentTraceMutation) EdgeCleared(name string) bool {
	switch name {
	case agenttrace.EdgeAtom:
		return m.clearedatom
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentTraceMutation) ClearEdge(name string) error {
	switch name {
	case agenttrace.EdgeAtom:
		m.ClearAtom()
		return nil
	}
	return fmt.Errorf("unknown AgentTrace unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentTraceMutation) ResetEdge(name string) error {
	switch name {
	case agenttrace.EdgeAtom:
		m.ResetAtom()
		return nil
	}
	return fmt.Errorf("unknown AgentTrace edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	run_id        *string
	channel       *string
	payload       *json.RawMessage
	appendpayload json.RawMessage
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *EventMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *EventMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ClearRunID clears the value of the "run_id" field.
func (m *EventMutation) ClearRunID() {
	m.run_id = nil
	m.clearedFields[event.FieldRunID] = struct{}{}
}

// RunIDCleared returns if the "run_id" field was cleared in this mutation.
func (m *EventMutation) RunIDCleared() bool {
	_, ok := m.clearedFields[event.FieldRunID]
	return ok
}

// ResetRunID resets all changes to the "run_id" field.
func (m *EventMutation) ResetRunID() {
	m.run_id = nil
	delete(m.clearedFields, event.FieldRunID)
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(jm json.RawMessage) {
	m.payload = &jm
	m.appendpayload = nil
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r json.RawMessage, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// AppendPayload adds jm to the "payload" field.
func (m *EventMutation) AppendPayload(jm json.RawMessage) {
	m.appendpayload = append(m.appendpayload, jm...)
}

// AppendedPayload returns the list of values that were appended to the "payload" field in this mutation.
func (m *EventMutation) AppendedPayload() (json.RawMessage, bool) {
	if len(m.appendpayload) == 0 {
		return nil, false
	}
	return m.appendpayload, true
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
	m.appendpayload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.run_id != nil {
		fields = append(fields, event.FieldRunID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldRunID:
		return m.RunID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldRunID:
		return m.OldRunID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldRunID) {
		fields = append(fields, event.FieldRunID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldRunID:
		m.ClearRunID()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldRunID:
		m.ResetRunID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// KnowledgeBaseMutation represents an operation that mutates the KnowledgeBase nodes in the graph.
type KnowledgeBaseMutation struct {
	config
	op            Op
	typ           string
	id            *int
	content       *string
	kb_type       *knowledgebase.KBType
	vector        *pgvector.Vector
	tags          *[]string
	appendtags    []string
	created_at    *time.Time
	clearedFields map[string]struct{}
	work          *int
	clearedwork   bool
	done          bool
	oldValue      func(context.Context) (*KnowledgeBase, error)
	predicates    []predicate.KnowledgeBase
}

var _ ent.Mutation = (*KnowledgeBaseMutation)(nil)

// knowledgebaseOption allows management of the mutation configuration using functional options.
type knowledgebaseOption func(*KnowledgeBaseMutation)

// newKnowledgeBaseMutation creates new mutation for the KnowledgeBase entity.
func newKnowledgeBaseMutation(c config, op Op, opts ...knowledgebaseOption) *KnowledgeBaseMutation {
	m := &KnowledgeBaseMutation{
		config:        c,
		op:            op,
		typ:           TypeKnowledgeBase,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withKnowledgeBaseID sets the ID field of the mutation.
func withKnowledgeBaseID(id int) knowledgebaseOption {
	return func(m *KnowledgeBaseMutation) {
		var (
			err   error
			once  sync.Once
			value *KnowledgeBase
		)
		m.oldValue = func(ctx context.Context) (*KnowledgeBase, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().KnowledgeBase.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withKnowledgeBase sets the old KnowledgeBase of the mutation.
func withKnowledgeBase(node *KnowledgeBase) knowledgebaseOption {
	return func(m *KnowledgeBaseMutation) {
		m.oldValue = func(context.Context) (*KnowledgeBase, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m KnowledgeBaseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m KnowledgeBaseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *KnowledgeBaseMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *KnowledgeBaseMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().KnowledgeBase.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkID sets the "work_id" field.
func (m *KnowledgeBaseMutation) SetWorkID(i int) {
	m.work = &i
}

// WorkID returns the value of the "work_id" field in the mutation.
func (m *KnowledgeBaseMutation) WorkID() (r int, exists bool) {
	v := m.work
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkID returns the old "work_id" field's value of the KnowledgeBase entity.
// If the KnowledgeBase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeBaseMutation) OldWorkID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkID: %w", err)
	}
	return oldValue.WorkID, nil
}

// ResetWorkID resets all changes to the "work_id" field.
func (m *KnowledgeBaseMutation) ResetWorkID() {
	m.work = nil
}

// SetContent sets the "content" field.
func (m *KnowledgeBaseMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *KnowledgeBaseMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the KnowledgeBase entity.
// If the KnowledgeBase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeBaseMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *KnowledgeBaseMutation) ResetContent() {
	m.content = nil
}

// SetKBType sets the "kb_type" field.
func (m *KnowledgeBaseMutation) SetKBType(kt knowledgebase.KBType) {
	m.kb_type = &kt
}

// KBType returns the value of the "kb_type" field in the mutation.
func (m *KnowledgeBaseMutation) KBType() (r knowledgebase.KBType, exists bool) {
	v := m.kb_type
	if v == nil {
		return
	}
	return *v, true
}

// OldKBType returns the old "kb_type" field's value of the KnowledgeBase entity.
// If the KnowledgeBase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeBaseMutation) OldKBType(ctx context.Context) (v knowledgebase.KBType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKBType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKBType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKBType: %w", err)
	}
	return oldValue.KBType, nil
}

// ResetKBType resets all changes to the "kb_type" field.
func (m *KnowledgeBaseMutation) ResetKBType() {
	m.kb_type = nil
}

// SetVector sets the "vector" field.
func (m *KnowledgeBaseMutation) SetVector(pg pgvector.Vector) {
	m.vector = &pg
}

// Vector returns the value of the "vector" field in the mutation.
func (m *KnowledgeBaseMutation) Vector() (r pgvector.Vector, exists bool) {
	v := m.vector
	if v == nil {
		return
	}
	return *v, true
}

// OldVector returns the old "vector" field's value of the KnowledgeBase entity.
// If the KnowledgeBase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeBaseMutation) OldVector(ctx context.Context) (v pgvector.Vector, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVector is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVector requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVector: %w", err)
	}
	return oldValue.Vector, nil
}

// ClearVector clears the value of the "vector" field.
func (m *KnowledgeBaseMutation) ClearVector() {
	m.vector = nil
	m.clearedFields[knowledgebase.FieldVector] = struct{}{}
}

// VectorCleared returns if the "vector" field was cleared in this mutation.
func (m *KnowledgeBaseMutation) VectorCleared() bool {
	_, ok := m.clearedFields[knowledgebase.FieldVector]
	return ok
}

// ResetVector resets all changes to the "vector" field.
func (m *KnowledgeBaseMutation) ResetVector() {
	m.vector = nil
	delete(m.clearedFields, knowledgebase.FieldVector)
}

// SetTags sets the "tags" field.
func (m *KnowledgeBaseMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *KnowledgeBaseMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the KnowledgeBase entity.
// If the KnowledgeBase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeBaseMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *KnowledgeBaseMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *KnowledgeBaseMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *KnowledgeBaseMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[knowledgebase.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *KnowledgeBaseMutation) TagsCleared() bool {
	_, ok := m.clearedFields[knowledgebase.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *KnowledgeBaseMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, knowledgebase.FieldTags)
}

// SetCreatedAt sets the "created_at" field.
func (m *KnowledgeBaseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *KnowledgeBaseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the KnowledgeBase entity.
// If the KnowledgeBase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeBaseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *KnowledgeBaseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearWork clears the "work" edge to the ProjectWork entity.
func (m *KnowledgeBaseMutation) ClearWork() {
	m.clearedwork = true
	m.clearedFields[knowledgebase.FieldWorkID] = struct{}{}
}

// WorkCleared reports if the "work" edge to the ProjectWork entity was cleared.
func (m *KnowledgeBaseMutation) WorkCleared() bool {
	return m.clearedwork
}

// WorkIDs returns the "work" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkID instead. It exists only for internal usage by the builders.
func (m *KnowledgeBaseMutation) WorkIDs() (ids []int) {
	if id := m.work; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWork resets all changes to the "work" edge.
func (m *KnowledgeBaseMutation) ResetWork() {
	m.work = nil
	m.clearedwork = false
}

// Where appends a list predicates to the KnowledgeBaseMutation builder.
func (m *KnowledgeBaseMutation) Where(ps ...predicate.KnowledgeBase) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the KnowledgeBaseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *KnowledgeBaseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.KnowledgeBase, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *KnowledgeBaseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *KnowledgeBaseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (KnowledgeBase).
func (m *KnowledgeBaseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *KnowledgeBaseMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.work != nil {
		fields = append(fields, knowledgebase.FieldWorkID)
	}
	if m.content != nil {
		fields = append(fields, knowledgebase.FieldContent)
	}
	if m.kb_type != nil {
		fields = append(fields, knowledgebase.FieldKBType)
	}
	if m.vector != nil {
		fields = append(fields, knowledgebase.FieldVector)
	}
	if m.tags != nil {
		fields = append(fields, knowledgebase.FieldTags)
	}
	if m.created_at != nil {
		fields = append(fields, knowledgebase.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *KnowledgeBaseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case knowledgebase.FieldWorkID:
		return m.WorkID()
	case knowledgebase.FieldContent:
		return m.Content()
	case knowledgebase.FieldKBType:
		return m.KBType()
	case knowledgebase.FieldVector:
		return m.Vector()
	case knowledgebase.FieldTags:
		return m.Tags()
	case knowledgebase.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *KnowledgeBaseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case knowledgebase.FieldWorkID:
		return m.OldWorkID(ctx)
	case knowledgebase.FieldContent:
		return m.OldContent(ctx)
	case knowledgebase.FieldKBType:
		return m.OldKBType(ctx)
	case knowledgebase.FieldVector:
		return m.OldVector(ctx)
	case knowledgebase.FieldTags:
		return m.OldTags(ctx)
	case knowledgebase.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown KnowledgeBase field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KnowledgeBaseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case knowledgebase.FieldWorkID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkID(v)
		return nil
	case knowledgebase.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case knowledgebase.FieldKBType:
		v, ok := value.(knowledgebase.KBType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKBType(v)
		return nil
	case knowledgebase.FieldVector:
		v, ok := value.(pgvector.Vector)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVector(v)
		return nil
	case knowledgebase.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case knowledgebase.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown KnowledgeBase field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *KnowledgeBaseMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *KnowledgeBaseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KnowledgeBaseMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown KnowledgeBase numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *KnowledgeBaseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(knowledgebase.FieldVector) {
		fields = append(fields, knowledgebase.FieldVector)
	}
	if m.FieldCleared(knowledgebase.FieldTags) {
		fields = append(fields, knowledgebase.FieldTags)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *KnowledgeBaseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *KnowledgeBaseMutation) ClearField(name string) error {
	switch name {
	case knowledgebase.FieldVector:
		m.ClearVector()
		return nil
	case knowledgebase.FieldTags:
		m.ClearTags()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeBase nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *KnowledgeBaseMutation) ResetField(name string) error {
	switch name {
	case knowledgebase.FieldWorkID:
		m.ResetWorkID()
		return nil
	case knowledgebase.FieldContent:
		m.ResetContent()
		return nil
	case knowledgebase.FieldKBType:
		m.ResetKBType()
		return nil
	case knowledgebase.FieldVector:
		m.ResetVector()
		return nil
	case knowledgebase.FieldTags:
		m.ResetTags()
		return nil
	case knowledgebase.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeBase field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *KnowledgeBaseMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.work != nil {
		edges = append(edges, knowledgebase.EdgeWork)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *KnowledgeBaseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case knowledgebase.EdgeWork:
		if id := m.work; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *KnowledgeBaseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *KnowledgeBaseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *KnowledgeBaseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedwork {
		edges = append(edges, knowledgebase.EdgeWork)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *KnowledgeBaseMutation) EdgeCleared(name string) bool {
	switch name {
	case knowledgebase.EdgeWork:
		return m.clearedwork
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *KnowledgeBaseMutation) ClearEdge(name string) error {
	switch name {
	case knowledgebase.EdgeWork:
		m.ClearWork()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeBase unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *KnowledgeBaseMutation) ResetEdge(name string) error {
	switch name {
	case knowledgebase.EdgeWork:
		m.ResetWork()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeBase edge %s", name)
}

// ProcessingAtomMutation represents an operation that mutates the ProcessingAtom nodes in the graph.
type ProcessingAtomMutation struct {
	config
	op               Op
	typ              string
	id               *int
	position         *int
	addposition      *int
	source_text      *string
	source_hash      *string
	translated_text  *string
	status_code      *int
	addstatus_code   *int
	quality_score    *float64
	addquality_score *float64
	examination      *map[string]interface{}
	context_info     *map[string]interface{}
	semantic_vec     *pgvector.Vector
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	doc              *int
	cleareddoc       bool
	traces           map[int]struct{}
	removedtraces    map[int]struct{}
	clearedtraces    bool
	done             bool
	oldValue         func(context.Context) (*ProcessingAtom, error)
	predicates       []predicate.ProcessingAtom
}

var _ ent.Mutation = (*ProcessingAtomMutation)(nil)

// processingatomOption allows management of the mutation configuration using functional options.
type processingatomOption func(*ProcessingAtomMutation)

// newProcessingAtomMutation creates new mutation for the ProcessingAtom entity.
func newProcessingAtomMutation(c config, op Op, opts ...processingatomOption) *ProcessingAtomMutation {
	m := &ProcessingAtomMutation{
		config:        c,
		op:            op,
		typ:           TypeProcessingAtom,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProcessingAtomID sets the ID field of the mutation.
func withProcessingAtomID(id int) processingatomOption {
	return func(m *ProcessingAtomMutation) {
		var (
			err   error
			once  sync.Once
			value *ProcessingAtom
		)
		m.oldValue = func(ctx context.Context) (*ProcessingAtom, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProcessingAtom.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProcessingAtom sets the old ProcessingAtom of the mutation.
func withProcessingAtom(node *ProcessingAtom) processingatomOption {
	return func(m *ProcessingAtomMutation) {
		m.oldValue = func(context.Context) (*ProcessingAtom, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProcessingAtomMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProcessingAtomMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProcessingAtomMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProcessingAtomMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProcessingAtom.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocID sets the "doc_id" field.
func (m *ProcessingAtomMutation) SetDocID(i int) {
	m.doc = &i
}

// DocID returns the value of the "doc_id" field in the mutation.
func (m *ProcessingAtomMutation) DocID() (r int, exists bool) {
	v := m.doc
	if v == nil {
		return
	}
	return *v, true
}

// OldDocID returns the old "doc_id" field's value of the ProcessingAtom entity.
// If the ProcessingAtom object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingAtomMutation) OldDocID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocID: %w", err)
	}
	return oldValue.DocID, nil
}

// ResetDocID resets all changes to the "doc_id" field.
func (m *ProcessingAtomMutation) ResetDocID() {
	m.doc = nil
}

// SetPosition sets the "position" field.
func (m *ProcessingAtomMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *ProcessingAtomMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the ProcessingAtom entity.
// If the ProcessingAtom object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingAtomMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *ProcessingAtomMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *ProcessingAtomMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *ProcessingAtomMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetSourceText sets the "source_text" field.
func (m *ProcessingAtomMutation) SetSourceText(s string) {
	m.source_text = &s
}

// SourceText returns the value of the "source_text" field in the mutation.
func (m *ProcessingAtomMutation) SourceText() (r string, exists bool) {
	v := m.source_text
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceText returns the old "source_text" field's value of the ProcessingAtom entity.
// If the ProcessingAtom object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingAtomMutation) OldSourceText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceText: %w", err)
	}
	return oldValue.SourceText, nil
}

// ResetSourceText resets all changes to the "source_text" field.
func (m *ProcessingAtomMutation) ResetSourceText() {
	m.source_text = nil
}

// SetSourceHash sets the "source_hash" field.
func (m *ProcessingAtomMutation) SetSourceHash(s string) {
	m.source_hash = &s
}

// SourceHash returns the value of the "source_hash" field in the mutation.
func (m *ProcessingAtomMutation) SourceHash() (r string, exists bool) {
	v := m.source_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceHash returns the old "source_hash" field's value of the ProcessingAtom entity.
// If the ProcessingAtom object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingAtomMutation) OldSourceHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceHash: %w", err)
	}
	return oldValue.SourceHash, nil
}

// ResetSourceHash resets all changes to the "source_hash" field.
func (m *ProcessingAtomMutation) ResetSourceHash() {
	m.source_hash = nil
}

// SetTranslatedText sets the "translated_text" field.
func (m *ProcessingAtomMutation) SetTranslatedText(s string) {
	m.translated_text = &s
}

// TranslatedText returns the value of the "translated_text" field in the mutation.
func (m *ProcessingAtomMutation) TranslatedText() (r string, exists bool) {
	v := m.translated_text
	if v == nil {
		return
	}
	return *v, true
}

// OldTranslatedText returns the old "translated_text" field's value of the ProcessingAtom entity.
// If the ProcessingAtom object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingAtomMutation) OldTranslatedText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranslatedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranslatedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranslatedText: %w", err)
	}
	return oldValue.TranslatedText, nil
}

// ClearTranslatedText clears the value of the "translated_text" field.
func (m *ProcessingAtomMutation) ClearTranslatedText() {
	m.translated_text = nil
	m.clearedFields[processingatom.FieldTranslatedText] = struct{}{}
}

// TranslatedTextCleared returns if the "translated_text" field was cleared in this mutation.
func (m *ProcessingAtomMutation) TranslatedTextCleared() bool {
	_, ok := m.clearedFields[processingatom.FieldTranslatedText]
	return ok
}

// ResetTranslatedText resets all changes to the "translated_text" field.
func (m *ProcessingAtomMutation) ResetTranslatedText() {
	m.translated_text = nil
	delete(m.clearedFields, processingatom.FieldTranslatedText)
}

// SetStatusCode sets the "status_code" field.
func (m *ProcessingAtomMutation) SetStatusCode(i int) {
	m.status_code = &i
	m.addstatus_code = nil
}

// StatusCode returns the value of the "status_code" field in the mutation.
func (m *ProcessingAtomMutation) StatusCode() (r int, exists bool) {
	v := m.status_code
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusCode returns the old "status_code" field's value of the ProcessingAtom entity.
// If the ProcessingAtom object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingAtomMutation) OldStatusCode(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusCode: %w", err)
	}
	return oldValue.StatusCode, nil
}

// AddStatusCode adds i to the "status_code" field.
func (m *ProcessingAtomMutation) AddStatusCode(i int) {
	if m.addstatus_code != nil {
		*m.addstatus_code += i
	} else {
		m.addstatus_code = &i
	}
}

// AddedStatusCode returns the value that was added to the "status_code" field in this mutation.
func (m *ProcessingAtomMutation) AddedStatusCode() (r int, exists bool) {
	v := m.addstatus_code
	if v == nil {
		return
	}
	return *v, true
}

// ResetStatusCode resets all changes to the "status_code" field.
func (m *ProcessingAtomMutation) ResetStatusCode() {
	m.status_code = nil
	m.addstatus_code = nil
}

// SetQualityScore sets the "quality_score" field.
func (m *ProcessingAtomMutation) SetQualityScore(f float64) {
	m.quality_score = &f
	m.addquality_score = nil
}

// QualityScore returns the value of the "quality_score" field in the mutation.
func (m *ProcessingAtomMutation) QualityScore() (r float64, exists bool) {
	v := m.quality_score
	if v == nil {
		return
	}
	return *v, true
}

// OldQualityScore returns the old "quality_score" field's value of the ProcessingAtom entity.
// If the ProcessingAtom object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingAtomMutation) OldQualityScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualityScore: %w", err)
	}
	return oldValue.QualityScore, nil
}

// AddQualityScore adds f to the "quality_score" field.
func (m *ProcessingAtomMutation) AddQualityScore(f float64) {
	if m.addquality_score != nil {
		*m.addquality_score += f
	} else {
		m.addquality_score = &f
	}
}

// AddedQualityScore returns the value that was added to the "quality_score" field in this mutation.
func (m *ProcessingAtomMutation) AddedQualityScore() (r float64, exists bool) {
	v := m.addquality_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearQualityScore clears the value of the "quality_score" field.
func (m *ProcessingAtomMutation) ClearQualityScore() {
	m.quality_score = nil
	m.addquality_score = nil
	m.clearedFields[processingatom.FieldQualityScore] = struct{}{}
}

// QualityScoreCleared returns if the "quality_score" field was cleared in this mutation.
func (m *ProcessingAtomMutation) QualityScoreCleared() bool {
	_, ok := m.clearedFields[processingatom.FieldQualityScore]
	return ok
}

// ResetQualityScore resets all changes to the "quality_score" field.
func (m *ProcessingAtomMutation) ResetQualityScore() {
	m.quality_score = nil
	m.addquality_score = nil
	delete(m.clearedFields, processingatom.FieldQualityScore)
}

// SetExamination sets the "examination" field.
func (m *ProcessingAtomMutation) SetExamination(value map[string]interface{}) {
	m.examination = &value
}

// Examination returns the value of the "examination" field in the mutation.
func (m *ProcessingAtomMutation) Examination() (r map[string]interface{}, exists bool) {
	v := m.examination
	if v == nil {
		return
	}
	return *v, true
}

// OldExamination returns the old "examination" field's value of the ProcessingAtom entity.
// If the ProcessingAtom object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingAtomMutation) OldExamination(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamination is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamination requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamination: %w", err)
	}
	return oldValue.Examination, nil
}

// ClearExamination clears the value of the "examination" field.
func (m *ProcessingAtomMutation) ClearExamination() {
	m.examination = nil
	m.clearedFields[processingatom.FieldExamination] = struct{}{}
}

// ExaminationCleared returns if the "examination" field was cleared in this mutation.
func (m *ProcessingAtomMutation) ExaminationCleared() bool {
	_, ok := m.clearedFields[processingatom.FieldExamination]
	return ok
}

// ResetExamination resets all changes to the "examination" field.
func (m *ProcessingAtomMutation) ResetExamination() {
	m.examination = nil
	delete(m.clearedFields, processingatom.FieldExamination)
}

// SetContextInfo sets the "context_info" field.
func (m *ProcessingAtomMutation) SetContextInfo(value map[string]interface{}) {
	m.context_info = &value
}

// ContextInfo returns the value of the "context_info" field in the mutation.
func (m *ProcessingAtomMutation) ContextInfo() (r map[string]interface{}, exists bool) {
	v := m.context_info
	if v == nil {
		return
	}
	return *v, true
}

// OldContextInfo returns the old "context_info" field's value of the ProcessingAtom entity.
// If the ProcessingAtom object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingAtomMutation) OldContextInfo(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextInfo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextInfo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextInfo: %w", err)
	}
	return oldValue.ContextInfo, nil
}

// ClearContextInfo clears the value of the "context_info" field.
func (m *ProcessingAtomMutation) ClearContextInfo() {
	m.context_info = nil
	m.clearedFields[processingatom.FieldContextInfo] = struct{}{}
}

// ContextInfoCleared returns if the "context_info" field was cleared in this mutation.
func (m *ProcessingAtomMutation) ContextInfoCleared() bool {
	_, ok := m.clearedFields[processingatom.FieldContextInfo]
	return ok
}

// ResetContextInfo resets all changes to the "context_info" field.
func (m *ProcessingAtomMutation) ResetContextInfo() {
	m.context_info = nil
	delete(m.clearedFields, processingatom.FieldContextInfo)
}

// SetSemanticVec sets the "semantic_vec" field.
func (m *ProcessingAtomMutation) SetSemanticVec(pg pgvector.Vector) {
	m.semantic_vec = &pg
}

// SemanticVec returns the value of the "semantic_vec" field in the mutation.
func (m *ProcessingAtomMutation) SemanticVec() (r pgvector.Vector, exists bool) {
	v := m.semantic_vec
	if v == nil {
		return
	}
	return *v, true
}

// OldSemanticVec returns the old "semantic_vec" field's value of the ProcessingAtom entity.
// If the ProcessingAtom object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingAtomMutation) OldSemanticVec(ctx context.Context) (v pgvector.Vector, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSemanticVec is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSemanticVec requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSemanticVec: %w", err)
	}
	return oldValue.SemanticVec, nil
}

// ClearSemanticVec clears the value of the "semantic_vec" field.
func (m *ProcessingAtomMutation) ClearSemanticVec() {
	m.semantic_vec = nil
	m.clearedFields[processingatom.FieldSemanticVec] = struct{}{}
}

// SemanticVecCleared returns if the "semantic_vec" field was cleared in this mutation.
func (m *ProcessingAtomMutation) SemanticVecCleared() bool {
	_, ok := m.clearedFields[processingatom.FieldSemanticVec]
	return ok
}

// ResetSemanticVec resets all changes to the "semantic_vec" field.
func (m *ProcessingAtomMutation) ResetSemanticVec() {
	m.semantic_vec = nil
	delete(m.clearedFields, processingatom.FieldSemanticVec)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProcessingAtomMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProcessingAtomMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProcessingAtom entity.
// If the ProcessingAtom object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingAtomMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProcessingAtomMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProcessingAtomMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProcessingAtomMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ProcessingAtom entity.
// If the ProcessingAtom object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingAtomMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProcessingAtomMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearDoc clears the "doc" edge to the SourceDoc entity.
func (m *ProcessingAtomMutation) ClearDoc() {
	m.cleareddoc = true
	m.clearedFields[processingatom.FieldDocID] = struct{}{}
}

// DocCleared reports if the "doc" edge to the SourceDoc entity was cleared.
func (m *ProcessingAtomMutation) DocCleared() bool {
	return m.cleareddoc
}

// DocIDs returns the "doc" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocID instead. It exists only for internal usage by the builders.
func (m *ProcessingAtomMutation) DocIDs() (ids []int) {
	if id := m.doc; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDoc resets all changes to the "doc" edge.
func (m *ProcessingAtomMutation) ResetDoc() {
	m.doc = nil
	m.cleareddoc = false
}

// AddTraceIDs adds the "traces" edge to the AgentTrace entity by ids.
func (m *ProcessingAtomMutation) AddTraceIDs(ids ...int) {
	if m.traces == nil {
		m.traces = make(map[int]struct{})
	}
	for i := range ids {
		m.traces[ids[i]] = struct{}{}
	}
}

// ClearTraces clears the "traces" edge to the AgentTrace entity.
func (m *ProcessingAtomMutation) ClearTraces() {
	m.clearedtraces = true
}

// TracesCleared reports if the "traces" edge to the AgentTrace entity was cleared.
func (m *ProcessingAtomMutation) TracesCleared() bool {
	return m.clearedtraces
}

// RemoveTraceIDs removes the "traces" edge to the AgentTrace entity by IDs.
func (m *ProcessingAtomMutation) RemoveTraceIDs(ids ...int) {
	if m.removedtraces == nil {
		m.removedtraces = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.traces, ids[i])
		m.removedtraces[ids[i]] = struct{}{}
	}
}

// RemovedTraces returns the removed IDs of the "traces" edge to the AgentTrace entity.
func (m *ProcessingAtomMutation) RemovedTracesIDs() (ids []int) {
	for id := range m.removedtraces {
		ids = append(ids, id)
	}
	return
}

// TracesIDs returns the "traces" edge IDs in the mutation.
func (m *ProcessingAtomMutation) TracesIDs() (ids []int) {
	for id := range m.traces {
		ids = append(ids, id)
	}
	return
}

// ResetTraces resets all changes to the "traces" edge.
func (m *ProcessingAtomMutation) ResetTraces() {
	m.traces = nil
	m.clearedtraces = false
	m.removedtraces = nil
}

// Where appends a list predicates to the ProcessingAtomMutation builder.
func (m *ProcessingAtomMutation) Where(ps ...predicate.ProcessingAtom) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProcessingAtomMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProcessingAtomMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProcessingAtom, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProcessingAtomMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProcessingAtomMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProcessingAtom).
func (m *ProcessingAtomMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProcessingAtomMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.doc != nil {
		fields = append(fields, processingatom.FieldDocID)
	}
	if m.position != nil {
		fields = append(fields, processingatom.FieldPosition)
	}
	if m.source_text != nil {
		fields = append(fields, processingatom.FieldSourceText)
	}
	if m.source_hash != nil {
		fields = append(fields, processingatom.FieldSourceHash)
	}
	if m.translated_text != nil {
		fields = append(fields, processingatom.FieldTranslatedText)
	}
	if m.status_code != nil {
		fields = append(fields, processingatom.FieldStatusCode)
	}
	if m.quality_score != nil {
		fields = append(fields, processingatom.FieldQualityScore)
	}
	if m.examination != nil {
		fields = append(fields, processingatom.FieldExamination)
	}
	if m.context_info != nil {
		fields = append(fields, processingatom.FieldContextInfo)
	}
	if m.semantic_vec != nil {
		fields = append(fields, processingatom.FieldSemanticVec)
	}
	if m.created_at != nil {
		fields = append(fields, processingatom.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, processingatom.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProcessingAtomMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case processingatom.FieldDocID:
		return m.DocID()
	case processingatom.FieldPosition:
		return m.Position()
	case processingatom.FieldSourceText:
		return m.SourceText()
	case processingatom.FieldSourceHash:
		return m.SourceHash()
	case processingatom.FieldTranslatedText:
		return m.TranslatedText()
	case processingatom.FieldStatusCode:
		return m.StatusCode()
	case processingatom.FieldQualityScore:
		return m.QualityScore()
	case processingatom.FieldExamination:
		return m.Examination()
	case processingatom.FieldContextInfo:
		return m.ContextInfo()
	case processingatom.FieldSemanticVec:
		return m.SemanticVec()
	case processingatom.FieldCreatedAt:
		return m.CreatedAt()
	case processingatom.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProcessingAtomMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case processingatom.FieldDocID:
		return m.OldDocID(ctx)
	case processingatom.FieldPosition:
		return m.OldPosition(ctx)
	case processingatom.FieldSourceText:
		return m.OldSourceText(ctx)
	case processingatom.FieldSourceHash:
		return m.OldSourceHash(ctx)
	case processingatom.FieldTranslatedText:
		return m.OldTranslatedText(ctx)
	case processingatom.FieldStatusCode:
		return m.OldStatusCode(ctx)
	case processingatom.FieldQualityScore:
		return m.OldQualityScore(ctx)
	case processingatom.FieldExamination:
		return m.OldExamination(ctx)
	case processingatom.FieldContextInfo:
		return m.OldContextInfo(ctx)
	case processingatom.FieldSemanticVec:
		return m.OldSemanticVec(ctx)
	case processingatom.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case processingatom.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProcessingAtom field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessingAtomMutation) SetField(name string, value ent.Value) error {
	switch name {
	case processingatom.FieldDocID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocID(v)
		return nil
	case processingatom.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case processingatom.FieldSourceText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceText(v)
		return nil
	case processingatom.FieldSourceHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceHash(v)
		return nil
	case processingatom.FieldTranslatedText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranslatedText(v)
		return nil
	case processingatom.FieldStatusCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusCode(v)
		return nil
	case processingatom.FieldQualityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualityScore(v)
		return nil
	case processingatom.FieldExamination:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamination(v)
		return nil
	case processingatom.FieldContextInfo:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextInfo(v)
		return nil
	case processingatom.FieldSemanticVec:
		v, ok := value.(pgvector.Vector)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSemanticVec(v)
		return nil
	case processingatom.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case processingatom.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessingAtom field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProcessingAtomMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, processingatom.FieldPosition)
	}
	if m.addstatus_code != nil {
		fields = append(fields, processingatom.FieldStatusCode)
	}
	if m.addquality_score != nil {
		fields = append(fields, processingatom.FieldQualityScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProcessingAtomMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case processingatom.FieldPosition:
		return m.AddedPosition()
	case processingatom.FieldStatusCode:
		return m.AddedStatusCode()
	case processingatom.FieldQualityScore:
		return m.AddedQualityScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessingAtomMutation) AddField(name string, value ent.Value) error {
	switch name {
	case processingatom.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	case processingatom.FieldStatusCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStatusCode(v)
		return nil
	case processingatom.FieldQualityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQualityScore(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessingAtom numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProcessingAtomMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(processingatom.FieldTranslatedText) {
		fields = append(fields, processingatom.FieldTranslatedText)
	}
	if m.FieldCleared(processingatom.FieldQualityScore) {
		fields = append(fields, processingatom.FieldQualityScore)
	}
	if m.FieldCleared(processingatom.FieldExamination) {
		fields = append(fields, processingatom.FieldExamination)
	}
	if m.FieldCleared(processingatom.FieldContextInfo) {
		fields = append(fields, processingatom.FieldContextInfo)
	}
	if m.FieldCleared(processingatom.FieldSemanticVec) {
		fields = append(fields, processingatom.FieldSemanticVec)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProcessingAtomMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProcessingAtomMutation) ClearField(name string) error {
	switch name {
	case processingatom.FieldTranslatedText:
		m.ClearTranslatedText()
		return nil
	case processingatom.FieldQualityScore:
		m.ClearQualityScore()
		return nil
	case processingatom.FieldExamination:
		m.ClearExamination()
		return nil
	case processingatom.FieldContextInfo:
		m.ClearContextInfo()
		return nil
	case processingatom.FieldSemanticVec:
		m.ClearSemanticVec()
		return nil
	}
	return fmt.Errorf("unknown ProcessingAtom nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProcessingAtomMutation) ResetField(name string) error {
	switch name {
	case processingatom.FieldDocID:
		m.ResetDocID()
		return nil
	case processingatom.FieldPosition:
		m.ResetPosition()
		return nil
	case processingatom.FieldSourceText:
		m.ResetSourceText()
		return nil
	case processingatom.FieldSourceHash:
		m.ResetSourceHash()
		return nil
	case processingatom.FieldTranslatedText:
		m.ResetTranslatedText()
		return nil
	case processingatom.FieldStatusCode:
		m.ResetStatusCode()
		return nil
	case processingatom.FieldQualityScore:
		m.ResetQualityScore()
		return nil
	case processingatom.FieldExamination:
		m.ResetExamination()
		return nil
	case processingatom.FieldContextInfo:
		m.ResetContextInfo()
		return nil
	case processingatom.FieldSemanticVec:
		m.ResetSemanticVec()
		return nil
	case processingatom.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case processingatom.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProcessingAtom field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProcessingAtomMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.doc != nil {
		edges = append(edges, processingatom.EdgeDoc)
	}
	if m.traces != nil {
		edges = append(edges, processingatom.EdgeTraces)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProcessingAtomMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case processingatom.EdgeDoc:
		if id := m.doc; id != nil {
			return []ent.Value{*id}
		}
	case processingatom.EdgeTraces:
		ids := make([]ent.Value, 0, len(m.traces))
		for id := range m.traces {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProcessingAtomMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedtraces != nil {
		edges = append(edges, processingatom.EdgeTraces)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProcessingAtomMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case processingatom.EdgeTraces:
		ids := make([]ent.Value, 0, len(m.removedtraces))
		for id := range m.removedtraces {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProcessingAtomMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddoc {
		edges = append(edges, processingatom.EdgeDoc)
	}
	if m.clearedtraces {
		edges = append(edges, processingatom.EdgeTraces)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProcessingAtomMutation) EdgeCleared(name string) bool {
	switch name {
	case processingatom.EdgeDoc:
		return m.cleareddoc
	case processingatom.EdgeTraces:
		return m.clearedtraces
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProcessingAtomMutation) ClearEdge(name string) error {
	switch name {
	case processingatom.EdgeDoc:
		m.ClearDoc()
		return nil
	}
	return fmt.Errorf("unknown ProcessingAtom unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProcessingAtomMutation) ResetEdge(name string) error {
	switch name {
	case processingatom.EdgeDoc:
		m.ResetDoc()
		return nil
	case processingatom.EdgeTraces:
		m.ResetTraces()
		return nil
	}
	return fmt.Errorf("unknown ProcessingAtom edge %s", name)
}

// ProjectWorkMutation represents an operation that mutates the ProjectWork nodes in the graph.
type ProjectWorkMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int
	work_name                *string
	source_lang              *string
	target_lang              *string
	_config                  *map[string]interface{}
	topic_info               *map[string]interface{}
	translation_guide        *string
	prompt_templates         *map[string]interface{}
	extra                    *map[string]interface{}
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	docs                     map[int]struct{}
	removeddocs              map[int]struct{}
	cleareddocs              bool
	knowledge_entries        map[int]struct{}
	removedknowledge_entries map[int]struct{}
	clearedknowledge_entries bool
	runs                     map[string]struct{}
	removedruns              map[string]struct{}
	clearedruns              bool
	done                     bool
	oldValue                 func(context.Context) (*ProjectWork, error)
	predicates               []predicate.ProjectWork
}

var _ ent.Mutation = (*ProjectWorkMutation)(nil)

// projectworkOption allows management of the mutation configuration using functional options.
type projectworkOption func(*ProjectWorkMutation)

// newProjectWorkMutation creates new mutation for the ProjectWork entity.
func newProjectWorkMutation(c config, op Op, opts ...projectworkOption) *ProjectWorkMutation {
	m := &ProjectWorkMutation{
		config:        c,
		op:            op,
		typ:           TypeProjectWork,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectWorkID sets the ID field of the mutation.
func withProjectWorkID(id int) projectworkOption {
	return func(m *ProjectWorkMutation) {
		var (
			err   error
			once  sync.Once
			value *ProjectWork
		)
		m.oldValue = func(ctx context.Context) (*ProjectWork, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProjectWork.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProjectWork sets the old ProjectWork of the mutation.
func withProjectWork(node *ProjectWork) projectworkOption {
	return func(m *ProjectWorkMutation) {
		m.oldValue = func(context.Context) (*ProjectWork, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectWorkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectWorkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectWorkMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectWorkMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProjectWork.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkName sets the "work_name" field.
func (m *ProjectWorkMutation) SetWorkName(s string) {
	m.work_name = &s
}

// WorkName returns the value of the "work_name" field in the mutation.
func (m *ProjectWorkMutation) WorkName() (r string, exists bool) {
	v := m.work_name
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkName returns the old "work_name" field's value of the ProjectWork entity.
// If the ProjectWork object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectWorkMutation) OldWorkName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkName: %w", err)
	}
	return oldValue.WorkName, nil
}

// ResetWorkName resets all changes to the "work_name" field.
func (m *ProjectWorkMutation) ResetWorkName() {
	m.work_name = nil
}

// SetSourceLang sets the "source_lang" field.
func (m *ProjectWorkMutation) SetSourceLang(s string) {
	m.source_lang = &s
}

// SourceLang returns the value of the "source_lang" field in the mutation.
func (m *ProjectWorkMutation) SourceLang() (r string, exists bool) {
	v := m.source_lang
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceLang returns the old "source_lang" field's value of the ProjectWork entity.
// If the ProjectWork object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectWorkMutation) OldSourceLang(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceLang is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceLang requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceLang: %w", err)
	}
	return oldValue.SourceLang, nil
}

// ResetSourceLang resets all changes to the "source_lang" field.
func (m *ProjectWorkMutation) ResetSourceLang() {
	m.source_lang = nil
}

// SetTargetLang sets the "target_lang" field.
func (m *ProjectWorkMutation) SetTargetLang(s string) {
	m.target_lang = &s
}

// TargetLang returns the value of the "target_lang" field in the mutation.
func (m *ProjectWorkMutation) TargetLang() (r string, exists bool) {
	v := m.target_lang
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetLang returns the old "target_lang" field's value of the ProjectWork entity.
// If the ProjectWork object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectWorkMutation) OldTargetLang(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetLang is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetLang requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetLang: %w", err)
	}
	return oldValue.TargetLang, nil
}

// ResetTargetLang resets all changes to the "target_lang" field.
func (m *ProjectWorkMutation) ResetTargetLang() {
	m.target_lang = nil
}

// SetConfig sets the "config" field.
func (m *ProjectWorkMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *ProjectWorkMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the ProjectWork entity.
// If the ProjectWork object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectWorkMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ClearConfig clears the value of the "config" field.
func (m *ProjectWorkMutation) ClearConfig() {
	m._config = nil
	m.clearedFields[projectwork.FieldConfig] = struct{}{}
}

// ConfigCleared returns if the "config" field was cleared in this mutation.
func (m *ProjectWorkMutation) ConfigCleared() bool {
	_, ok := m.clearedFields[projectwork.FieldConfig]
	return ok
}

// ResetConfig resets all changes to the "config" field.
func (m *ProjectWorkMutation) ResetConfig() {
	m._config = nil
	delete(m.clearedFields, projectwork.FieldConfig)
}

// SetTopicInfo sets the "topic_info" field.
func (m *ProjectWorkMutation) SetTopicInfo(value map[string]interface{}) {
	m.topic_info = &value
}

// TopicInfo returns the value of the "topic_info" field in the mutation.
func (m *ProjectWorkMutation) TopicInfo() (r map[string]interface{}, exists bool) {
	v := m.topic_info
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicInfo returns the old "topic_info" field's value of the ProjectWork entity.
// If the ProjectWork object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectWorkMutation) OldTopicInfo(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicInfo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicInfo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicInfo: %w", err)
	}
	return oldValue.TopicInfo, nil
}

// ClearTopicInfo clears the value of the "topic_info" field.
func (m *ProjectWorkMutation) ClearTopicInfo() {
	m.topic_info = nil
	m.clearedFields[projectwork.FieldTopicInfo] = struct{}{}
}

// TopicInfoCleared returns if the "topic_info" field was cleared in this mutation.
func (m *ProjectWorkMutation) TopicInfoCleared() bool {
	_, ok := m.clearedFields[projectwork.FieldTopicInfo]
	return ok
}

// ResetTopicInfo resets all changes to the "topic_info" field.
func (m *ProjectWorkMutation) ResetTopicInfo() {
	m.topic_info = nil
	delete(m.clearedFields, projectwork.FieldTopicInfo)
}

// SetTranslationGuide sets the "translation_guide" field.
func (m *ProjectWorkMutation) SetTranslationGuide(s string) {
	m.translation_guide = &s
}

// TranslationGuide returns the value of the "translation_guide" field in the mutation.
func (m *ProjectWorkMutation) TranslationGuide() (r string, exists bool) {
	v := m.translation_guide
	if v == nil {
		return
	}
	return *v, true
}

// OldTranslationGuide returns the old "translation_guide" field's value of the ProjectWork entity.
// If the ProjectWork object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectWorkMutation) OldTranslationGuide(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranslationGuide is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranslationGuide requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranslationGuide: %w", err)
	}
	return oldValue.TranslationGuide, nil
}

// ClearTranslationGuide clears the value of the "translation_guide" field.
func (m *ProjectWorkMutation) ClearTranslationGuide() {
	m.translation_guide = nil
	m.clearedFields[projectwork.FieldTranslationGuide] = struct{}{}
}

// TranslationGuideCleared returns if the "translation_guide" field was cleared in this mutation.
func (m *ProjectWorkMutation) TranslationGuideCleared() bool {
	_, ok := m.clearedFields[projectwork.FieldTranslationGuide]
	return ok
}

// ResetTranslationGuide resets all changes to the "translation_guide" field.
func (m *ProjectWorkMutation) ResetTranslationGuide() {
	m.translation_guide = nil
	delete(m.clearedFields, projectwork.FieldTranslationGuide)
}

// SetPromptTemplates sets the "prompt_templates" field.
func (m *ProjectWorkMutation) SetPromptTemplates(value map[string]interface{}) {
	m.prompt_templates = &value
}

// PromptTemplates returns the value of the "prompt_templates" field in the mutation.
func (m *ProjectWorkMutation) PromptTemplates() (r map[string]interface{}, exists bool) {
	v := m.prompt_templates
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptTemplates returns the old "prompt_templates" field's value of the ProjectWork entity.
// If the ProjectWork object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectWorkMutation) OldPromptTemplates(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptTemplates is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptTemplates requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptTemplates: %w", err)
	}
	return oldValue.PromptTemplates, nil
}

// ClearPromptTemplates clears the value of the "prompt_templates" field.
func (m *ProjectWorkMutation) ClearPromptTemplates() {
	m.prompt_templates = nil
	m.clearedFields[projectwork.FieldPromptTemplates] = struct{}{}
}

// PromptTemplatesCleared returns if the "prompt_templates" field was cleared in this mutation.
func (m *ProjectWorkMutation) PromptTemplatesCleared() bool {
	_, ok := m.clearedFields[projectwork.FieldPromptTemplates]
	return ok
}

// ResetPromptTemplates resets all changes to the "prompt_templates" field.
func (m *ProjectWorkMutation) ResetPromptTemplates() {
	m.prompt_templates = nil
	delete(m.clearedFields, projectwork.FieldPromptTemplates)
}

// SetExtra sets the "extra" field.
func (m *ProjectWorkMutation) SetExtra(value map[string]interface{}) {
	m.extra = &value
}

// Extra returns the value of the "extra" field in the mutation.
func (m *ProjectWorkMutation) Extra() (r map[string]interface{}, exists bool) {
	v := m.extra
	if v == nil {
		return
	}
	return *v, true
}

// OldExtra returns the old "extra" field's value of the ProjectWork entity.
// If the ProjectWork object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectWorkMutation) OldExtra(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtra is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtra requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtra: %w", err)
	}
	return oldValue.Extra, nil
}

// ClearExtra clears the value of the "extra" field.
func (m *ProjectWorkMutation) ClearExtra() {
	m.extra = nil
	m.clearedFields[projectwork.FieldExtra] = struct{}{}
}

// ExtraCleared returns if the "extra" field was cleared in this mutation.
func (m *ProjectWorkMutation) ExtraCleared() bool {
	_, ok := m.clearedFields[projectwork.FieldExtra]
	return ok
}

// ResetExtra resets all changes to the "extra" field.
func (m *ProjectWorkMutation) ResetExtra() {
	m.extra = nil
	delete(m.clearedFields, projectwork.FieldExtra)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectWorkMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectWorkMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProjectWork entity.
// If the ProjectWork object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectWorkMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectWorkMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectWorkMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectWorkMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ProjectWork entity.
// If the ProjectWork object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectWorkMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectWorkMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddDocIDs adds the "docs" edge to the SourceDoc entity by ids.
func (m *ProjectWorkMutation) AddDocIDs(ids ...int) {
	if m.docs == nil {
		m.docs = make(map[int]struct{})
	}
	for i := range ids {
		m.docs[ids[i]] = struct{}{}
	}
}

// ClearDocs clears the "docs" edge to the SourceDoc entity.
func (m *ProjectWorkMutation) ClearDocs() {
	m.cleareddocs = true
}

// DocsCleared reports if the "docs" edge to the SourceDoc entity was cleared.
func (m *ProjectWorkMutation) DocsCleared() bool {
	return m.cleareddocs
}

// RemoveDocIDs removes the "docs" edge to the SourceDoc entity by IDs.
func (m *ProjectWorkMutation) RemoveDocIDs(ids ...int) {
	if m.removeddocs == nil {
		m.removeddocs = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.docs, ids[i])
		m.removeddocs[ids[i]] = struct{}{}
	}
}

// RemovedDocs returns the removed IDs of the "docs" edge to the SourceDoc entity.
func (m *ProjectWorkMutation) RemovedDocsIDs() (ids []int) {
	for id := range m.removeddocs {
		ids = append(ids, id)
	}
	return
}

// DocsIDs returns the "docs" edge IDs in the mutation.
func (m *ProjectWorkMutation) DocsIDs() (ids []int) {
	for id := range m.docs {
		ids = append(ids, id)
	}
	return
}

// ResetDocs resets all changes to the "docs" edge.
func (m *ProjectWorkMutation) ResetDocs() {
	m.docs = nil
	m.cleareddocs = false
	m.removeddocs = nil
}

// AddKnowledgeEntryIDs adds the "knowledge_entries" edge to the KnowledgeBase entity by ids.
func (m *ProjectWorkMutation) AddKnowledgeEntryIDs(ids ...int) {
	if m.knowledge_entries == nil {
		m.knowledge_entries = make(map[int]struct{})
	}
	for i := range ids {
		m.knowledge_entries[ids[i]] = struct{}{}
	}
}

// ClearKnowledgeEntries clears the "knowledge_entries" edge to the KnowledgeBase entity.
func (m *ProjectWorkMutation) ClearKnowledgeEntries() {
	m.clearedknowledge_entries = true
}

// KnowledgeEntriesCleared reports if the "knowledge_entries" edge to the KnowledgeBase entity was cleared.
func (m *ProjectWorkMutation) KnowledgeEntriesCleared() bool {
	return m.clearedknowledge_entries
}

// RemoveKnowledgeEntryIDs removes the "knowledge_entries" edge to the KnowledgeBase entity by IDs.
func (m *ProjectWorkMutation) RemoveKnowledgeEntryIDs(ids ...int) {
	if m.removedknowledge_entries == nil {
		m.removedknowledge_entries = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.knowledge_entries, ids[i])
		m.removedknowledge_entries[ids[i]] = struct{}{}
	}
}

// RemovedKnowledgeEntries returns the removed IDs of the "knowledge_entries" edge to the KnowledgeBase entity.
func (m *ProjectWorkMutation) RemovedKnowledgeEntriesIDs() (ids []int) {
	for id := range m.removedknowledge_entries {
		ids = append(ids, id)
	}
	return
}

// KnowledgeEntriesIDs returns the "knowledge_entries" edge IDs in the mutation.
func (m *ProjectWorkMutation) KnowledgeEntriesIDs() (ids []int) {
	for id := range m.knowledge_entries {
		ids = append(ids, id)
	}
	return
}

// ResetKnowledgeEntries resets all changes to the "knowledge_entries" edge.
func (m *ProjectWorkMutation) ResetKnowledgeEntries() {
	m.knowledge_entries = nil
	m.clearedknowledge_entries = false
	m.removedknowledge_entries = nil
}

// AddRunIDs adds the "runs" edge to the TranslationRun entity by ids.
func (m *ProjectWorkMutation) AddRunIDs(ids ...string) {
	if m.runs == nil {
		m.runs = make(map[string]struct{})
	}
	for i := range ids {
		m.runs[ids[i]] = struct{}{}
	}
}

// ClearRuns clears the "runs" edge to the TranslationRun entity.
func (m *ProjectWorkMutation) ClearRuns() {
	m.clearedruns = true
}

// RunsCleared reports if the "runs" edge to the TranslationRun entity was cleared.
func (m *ProjectWorkMutation) RunsCleared() bool {
	return m.clearedruns
}

// RemoveRunIDs removes the "runs" edge to the TranslationRun entity by IDs.
func (m *ProjectWorkMutation) RemoveRunIDs(ids ...string) {
	if m.removedruns == nil {
		m.removedruns = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.runs, ids[i])
		m.removedruns[ids[i]] = struct{}{}
	}
}

// RemovedRuns returns the removed IDs of the "runs" edge to the TranslationRun entity.
func (m *ProjectWorkMutation) RemovedRunsIDs() (ids []string) {
	for id := range m.removedruns {
		ids = append(ids, id)
	}
	return
}

// RunsIDs returns the "runs" edge IDs in the mutation.
func (m *ProjectWorkMutation) RunsIDs() (ids []string) {
	for id := range m.runs {
		ids = append(ids, id)
	}
	return
}

// ResetRuns resets all changes to the "runs" edge.
func (m *ProjectWorkMutation) ResetRuns() {
	m.runs = nil
	m.clearedruns = false
	m.removedruns = nil
}

// Where appends a list predicates to the ProjectWorkMutation builder.
func (m *ProjectWorkMutation) Where(ps ...predicate.ProjectWork) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectWorkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectWorkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProjectWork, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectWorkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectWorkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProjectWork).
func (m *ProjectWorkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectWorkMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.work_name != nil {
		fields = append(fields, projectwork.FieldWorkName)
	}
	if m.source_lang != nil {
		fields = append(fields, projectwork.FieldSourceLang)
	}
	if m.target_lang != nil {
		fields = append(fields, projectwork.FieldTargetLang)
	}
	if m._config != nil {
		fields = append(fields, projectwork.FieldConfig)
	}
	if m.topic_info != nil {
		fields = append(fields, projectwork.FieldTopicInfo)
	}
	if m.translation_guide != nil {
		fields = append(fields, projectwork.FieldTranslationGuide)
	}
	if m.prompt_templates != nil {
		fields = append(fields, projectwork.FieldPromptTemplates)
	}
	if m.extra != nil {
		fields = append(fields, projectwork.FieldExtra)
	}
	if m.created_at != nil {
		fields = append(fields, projectwork.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, projectwork.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectWorkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case projectwork.FieldWorkName:
		return m.WorkName()
	case projectwork.FieldSourceLang:
		return m.SourceLang()
	case projectwork.FieldTargetLang:
		return m.TargetLang()
	case projectwork.FieldConfig:
		return m.Config()
	case projectwork.FieldTopicInfo:
		return m.TopicInfo()
	case projectwork.FieldTranslationGuide:
		return m.TranslationGuide()
	case projectwork.FieldPromptTemplates:
		return m.PromptTemplates()
	case projectwork.FieldExtra:
		return m.Extra()
	case projectwork.FieldCreatedAt:
		return m.CreatedAt()
	case projectwork.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectWorkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case projectwork.FieldWorkName:
		return m.OldWorkName(ctx)
	case projectwork.FieldSourceLang:
		return m.OldSourceLang(ctx)
	case projectwork.FieldTargetLang:
		return m.OldTargetLang(ctx)
	case projectwork.FieldConfig:
		return m.OldConfig(ctx)
	case projectwork.FieldTopicInfo:
		return m.OldTopicInfo(ctx)
	case projectwork.FieldTranslationGuide:
		return m.OldTranslationGuide(ctx)
	case projectwork.FieldPromptTemplates:
		return m.OldPromptTemplates(ctx)
	case projectwork.FieldExtra:
		return m.OldExtra(ctx)
	case projectwork.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case projectwork.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProjectWork field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectWorkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case projectwork.FieldWorkName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkName(v)
		return nil
	case projectwork.FieldSourceLang:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceLang(v)
		return nil
	case projectwork.FieldTargetLang:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetLang(v)
		return nil
	case projectwork.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case projectwork.FieldTopicInfo:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicInfo(v)
		return nil
	case projectwork.FieldTranslationGuide:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranslationGuide(v)
		return nil
	case projectwork.FieldPromptTemplates:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptTemplates(v)
		return nil
	case projectwork.FieldExtra:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtra(v)
		return nil
	case projectwork.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case projectwork.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProjectWork field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectWorkMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectWorkMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectWorkMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ProjectWork numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectWorkMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(projectwork.FieldConfig) {
		fields = append(fields, projectwork.FieldConfig)
	}
	if m.FieldCleared(projectwork.FieldTopicInfo) {
		fields = append(fields, projectwork.FieldTopicInfo)
	}
	if m.FieldCleared(projectwork.FieldTranslationGuide) {
		fields = append(fields, projectwork.FieldTranslationGuide)
	}
	if m.FieldCleared(projectwork.FieldPromptTemplates) {
		fields = append(fields, projectwork.FieldPromptTemplates)
	}
	if m.FieldCleared(projectwork.FieldExtra) {
		fields = append(fields, projectwork.FieldExtra)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectWorkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectWorkMutation) ClearField(name string) error {
	switch name {
	case projectwork.FieldConfig:
		m.ClearConfig()
		return nil
	case projectwork.FieldTopicInfo:
		m.ClearTopicInfo()
		return nil
	case projectwork.FieldTranslationGuide:
		m.ClearTranslationGuide()
		return nil
	case projectwork.FieldPromptTemplates:
		m.ClearPromptTemplates()
		return nil
	case projectwork.FieldExtra:
		m.ClearExtra()
		return nil
	}
	return fmt.Errorf("unknown ProjectWork nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectWorkMutation) ResetField(name string) error {
	switch name {
	case projectwork.FieldWorkName:
		m.ResetWorkName()
		return nil
	case projectwork.FieldSourceLang:
		m.ResetSourceLang()
		return nil
	case projectwork.FieldTargetLang:
		m.ResetTargetLang()
		return nil
	case projectwork.FieldConfig:
		m.ResetConfig()
		return nil
	case projectwork.FieldTopicInfo:
		m.ResetTopicInfo()
		return nil
	case projectwork.FieldTranslationGuide:
		m.ResetTranslationGuide()
		return nil
	case projectwork.FieldPromptTemplates:
		m.ResetPromptTemplates()
		return nil
	case projectwork.FieldExtra:
		m.ResetExtra()
		return nil
	case projectwork.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case projectwork.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProjectWork field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectWorkMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.docs != nil {
		edges = append(edges, projectwork.EdgeDocs)
	}
	if m.knowledge_entries != nil {
		edges = append(edges, projectwork.EdgeKnowledgeEntries)
	}
	if m.runs != nil {
		edges = append(edges, projectwork.EdgeRuns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectWorkMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case projectwork.EdgeDocs:
		ids := make([]ent.Value, 0, len(m.docs))
		for id := range m.docs {
			ids = append(ids, id)
		}
		return ids
	case projectwork.EdgeKnowledgeEntries:
		ids := make([]ent.Value, 0, len(m.knowledge_entries))
		for id := range m.knowledge_entries {
			ids = append(ids, id)
		}
		return ids
	case projectwork.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.runs))
		for id := range m.runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectWorkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removeddocs != nil {
		edges = append(edges, projectwork.EdgeDocs)
	}
	if m.removedknowledge_entries != nil {
		edges = append(edges, projectwork.EdgeKnowledgeEntries)
	}
	if m.removedruns != nil {
		edges = append(edges, projectwork.EdgeRuns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectWorkMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case projectwork.EdgeDocs:
		ids := make([]ent.Value, 0, len(m.removeddocs))
		for id := range m.removeddocs {
			ids = append(ids, id)
		}
		return ids
	case projectwork.EdgeKnowledgeEntries:
		ids := make([]ent.Value, 0, len(m.removedknowledge_entries))
		for id := range m.removedknowledge_entries {
			ids = append(ids, id)
		}
		return ids
	case projectwork.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.removedruns))
		for id := range m.removedruns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectWorkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.cleareddocs {
		edges = append(edges, projectwork.EdgeDocs)
	}
	if m.clearedknowledge_entries {
		edges = append(edges, projectwork.EdgeKnowledgeEntries)
	}
	if m.clearedruns {
		edges = append(edges, projectwork.EdgeRuns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectWorkMutation) EdgeCleared(name string) bool {
	switch name {
	case projectwork.EdgeDocs:
		return m.cleareddocs
	case projectwork.EdgeKnowledgeEntries:
		return m.clearedknowledge_entries
	case projectwork.EdgeRuns:
		return m.clearedruns
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectWorkMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ProjectWork unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectWorkMutation) ResetEdge(name string) error {
	switch name {
	case projectwork.EdgeDocs:
		m.ResetDocs()
		return nil
	case projectwork.EdgeKnowledgeEntries:
		m.ResetKnowledgeEntries()
		return nil
	case projectwork.EdgeRuns:
		m.ResetRuns()
		return nil
	}
	return fmt.Errorf("unknown ProjectWork edge %s", name)
}

// SourceDocMutation represents an operation that mutates the SourceDoc nodes in the graph.
type SourceDocMutation struct {
	config
	op            Op
	typ           string
	id            *int
	file_path     *string
	atom_count    *int
	addatom_count *int
	status        *sourcedoc.Status
	created_at    *time.Time
	clearedFields map[string]struct{}
	work          *int
	clearedwork   bool
	atoms         map[int]struct{}
	removedatoms  map[int]struct{}
	clearedatoms  bool
	done          bool
	oldValue      func(context.Context) (*SourceDoc, error)
	predicates    []predicate.SourceDoc
}

var _ ent.Mutation = (*SourceDocMutation)(nil)

// sourcedocOption allows management of the mutation configuration using functional options.
type sourcedocOption func(*SourceDocMutation)

// newSourceDocMutation creates new mutation for the SourceDoc entity.
func newSourceDocMutation(c config, op Op, opts ...sourcedocOption) *SourceDocMutation {
	m := &SourceDocMutation{
		config:        c,
		op:            op,
		typ:           TypeSourceDoc,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSourceDocID sets the ID field of the mutation.
func withSourceDocID(id int) sourcedocOption {
	return func(m *SourceDocMutation) {
		var (
			err   error
			once  sync.Once
			value *SourceDoc
		)
		m.oldValue = func(ctx context.Context) (*SourceDoc, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SourceDoc.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSourceDoc sets the old SourceDoc of the mutation.
func withSourceDoc(node *SourceDoc) sourcedocOption {
	return func(m *SourceDocMutation) {
		m.oldValue = func(context.Context) (*SourceDoc, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SourceDocMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SourceDocMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SourceDocMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SourceDocMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SourceDoc.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkID sets the "work_id" field.
func (m *SourceDocMutation) SetWorkID(i int) {
	m.work = &i
}

// WorkID returns the value of the "work_id" field in the mutation.
func (m *SourceDocMutation) WorkID() (r int, exists bool) {
	v := m.work
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkID returns the old "work_id" field's value of the SourceDoc entity.
// If the SourceDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceDocMutation) OldWorkID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkID: %w", err)
	}
	return oldValue.WorkID, nil
}

// ResetWorkID resets all changes to the "work_id" field.
func (m *SourceDocMutation) ResetWorkID() {
	m.work = nil
}

// SetFilePath sets the "file_path" field.
func (m *SourceDocMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *SourceDocMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the SourceDoc entity.
// If the SourceDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceDocMutation) OldFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *SourceDocMutation) ResetFilePath() {
	m.file_path = nil
}

// SetAtomCount sets the "atom_count" field.
func (m *SourceDocMutation) SetAtomCount(i int) {
	m.atom_count = &i
	m.addatom_count = nil
}

// AtomCount returns the value of the "atom_count" field in the mutation.
func (m *SourceDocMutation) AtomCount() (r int, exists bool) {
	v := m.atom_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAtomCount returns the old "atom_count" field's value of the SourceDoc entity.
// If the SourceDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceDocMutation) OldAtomCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAtomCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAtomCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAtomCount: %w", err)
	}
	return oldValue.AtomCount, nil
}

// AddAtomCount adds i to the "atom_count" field.
func (m *SourceDocMutation) AddAtomCount(i int) {
	if m.addatom_count != nil {
		*m.addatom_count += i
	} else {
		m.addatom_count = &i
	}
}

// AddedAtomCount returns the value that was added to the "atom_count" field in this mutation.
func (m *SourceDocMutation) AddedAtomCount() (r int, exists bool) {
	v := m.addatom_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAtomCount resets all changes to the "atom_count" field.
func (m *SourceDocMutation) ResetAtomCount() {
	m.atom_count = nil
	m.addatom_count = nil
}

// SetStatus sets the "status" field.
func (m *SourceDocMutation) SetStatus(s sourcedoc.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SourceDocMutation) Status() (r sourcedoc.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SourceDoc entity.
// If the SourceDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceDocMutation) OldStatus(ctx context.Context) (v sourcedoc.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SourceDocMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SourceDocMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SourceDocMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SourceDoc entity.
// If the SourceDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceDocMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SourceDocMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearWork clears the "work" edge to the ProjectWork entity.
func (m *SourceDocMutation) ClearWork() {
	m.clearedwork = true
	m.clearedFields[sourcedoc.FieldWorkID] = struct{}{}
}

// WorkCleared reports if the "work" edge to the ProjectWork entity was cleared.
func (m *SourceDocMutation) WorkCleared() bool {
	return m.clearedwork
}

// WorkIDs returns the "work" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkID instead. It exists only for internal usage by the builders.
func (m *SourceDocMutation) WorkIDs() (ids []int) {
	if id := m.work; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWork resets all changes to the "work" edge.
func (m *SourceDocMutation) ResetWork() {
	m.work = nil
	m.clearedwork = false
}

// AddAtomIDs adds the "atoms" edge to the ProcessingAtom entity by ids.
func (m *SourceDocMutation) AddAtomIDs(ids ...int) {
	if m.atoms == nil {
		m.atoms = make(map[int]struct{})
	}
	for i := range ids {
		m.atoms[ids[i]] = struct{}{}
	}
}

// ClearAtoms clears the "atoms" edge to the ProcessingAtom entity.
func (m *SourceDocMutation) ClearAtoms() {
	m.clearedatoms = true
}

// AtomsCleared reports if the "atoms" edge to the ProcessingAtom entity was cleared.
func (m *SourceDocMutation) AtomsCleared() bool {
	return m.clearedatoms
}

// RemoveAtomIDs removes the "atoms" edge to the ProcessingAtom entity by IDs.
func (m *SourceDocMutation) RemoveAtomIDs(ids ...int) {
	if m.removedatoms == nil {
		m.removedatoms = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.atoms, ids[i])
		m.removedatoms[ids[i]] = struct{}{}
	}
}

// RemovedAtoms returns the removed IDs of the "atoms" edge to the ProcessingAtom entity.
func (m *SourceDocMutation) RemovedAtomsIDs() (ids []int) {
	for id := range m.removedatoms {
		ids = append(ids, id)
	}
	return
}

// AtomsIDs returns the "atoms" edge IDs in the mutation.
func (m *SourceDocMutation) AtomsIDs() (ids []int) {
	for id := range m.atoms {
		ids = append(ids, id)
	}
	return
}

// ResetAtoms resets all changes to the "atoms" edge.
func (m *SourceDocMutation) ResetAtoms() {
	m.atoms = nil
	m.clearedatoms = false
	m.removedatoms = nil
}

// Where appends a list predicates to the SourceDocMutation builder.
func (m *SourceDocMutation) Where(ps ...predicate.SourceDoc) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SourceDocMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SourceDocMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SourceDoc, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SourceDocMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SourceDocMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SourceDoc).
func (m *SourceDocMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SourceDocMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.work != nil {
		fields = append(fields, sourcedoc.FieldWorkID)
	}
	if m.file_path != nil {
		fields = append(fields, sourcedoc.FieldFilePath)
	}
	if m.atom_count != nil {
		fields = append(fields, sourcedoc.FieldAtomCount)
	}
	if m.status != nil {
		fields = append(fields, sourcedoc.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, sourcedoc.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SourceDocMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sourcedoc.FieldWorkID:
		return m.WorkID()
	case sourcedoc.FieldFilePath:
		return m.FilePath()
	case sourcedoc.FieldAtomCount:
		return m.AtomCount()
	case sourcedoc.FieldStatus:
		return m.Status()
	case sourcedoc.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SourceDocMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sourcedoc.FieldWorkID:
		return m.OldWorkID(ctx)
	case sourcedoc.FieldFilePath:
		return m.OldFilePath(ctx)
	case sourcedoc.FieldAtomCount:
		return m.OldAtomCount(ctx)
	case sourcedoc.FieldStatus:
		return m.OldStatus(ctx)
	case sourcedoc.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SourceDoc field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceDocMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sourcedoc.FieldWorkID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkID(v)
		return nil
	case sourcedoc.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case sourcedoc.FieldAtomCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAtomCount(v)
		return nil
	case sourcedoc.FieldStatus:
		v, ok := value.(sourcedoc.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case sourcedoc.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SourceDoc field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SourceDocMutation) AddedFields() []string {
	var fields []string
	if m.addatom_count != nil {
		fields = append(fields, sourcedoc.FieldAtomCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SourceDocMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sourcedoc.FieldAtomCount:
		return m.AddedAtomCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceDocMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sourcedoc.FieldAtomCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAtomCount(v)
		return nil
	}
	return fmt.Errorf("unknown SourceDoc numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SourceDocMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SourceDocMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SourceDocMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SourceDoc nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SourceDocMutation) ResetField(name string) error {
	switch name {
	case sourcedoc.FieldWorkID:
		m.ResetWorkID()
		return nil
	case sourcedoc.FieldFilePath:
		m.ResetFilePath()
		return nil
	case sourcedoc.FieldAtomCount:
		m.ResetAtomCount()
		return nil
	case sourcedoc.FieldStatus:
		m.ResetStatus()
		return nil
	case sourcedoc.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SourceDoc field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SourceDocMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.work != nil {
		edges = append(edges, sourcedoc.EdgeWork)
	}
	if m.atoms != nil {
		edges = append(edges, sourcedoc.EdgeAtoms)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SourceDocMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sourcedoc.EdgeWork:
		if id := m.work; id != nil {
			return []ent.Value{*id}
		}
	case sourcedoc.EdgeAtoms:
		ids := make([]ent.Value, 0, len(m.atoms))
		for id := range m.atoms {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SourceDocMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedatoms != nil {
		edges = append(edges, sourcedoc.EdgeAtoms)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SourceDocMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case sourcedoc.EdgeAtoms:
		ids := make([]ent.Value, 0, len(m.removedatoms))
		for id := range m.removedatoms {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SourceDocMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedwork {
		edges = append(edges, sourcedoc.EdgeWork)
	}
	if m.clearedatoms {
		edges = append(edges, sourcedoc.EdgeAtoms)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SourceDocMutation) EdgeCleared(name string) bool {
	switch name {
	case sourcedoc.EdgeWork:
		return m.clearedwork
	case sourcedoc.EdgeAtoms:
		return m.clearedatoms
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SourceDocMutation) ClearEdge(name string) error {
	switch name {
	case sourcedoc.EdgeWork:
		m.ClearWork()
		return nil
	}
	return fmt.Errorf("unknown SourceDoc unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SourceDocMutation) ResetEdge(name string) error {
	switch name {
	case sourcedoc.EdgeWork:
		m.ResetWork()
		return nil
	case sourcedoc.EdgeAtoms:
		m.ResetAtoms()
		return nil
	}
	return fmt.Errorf("unknown SourceDoc edge %s", name)
}

// TranslationRunMutation represents an operation that mutates the TranslationRun nodes in the graph.
type TranslationRunMutation struct {
	config
	op               Op
	typ              string
	id               *string
	project_path     *string
	output_path      *string
	config_overrides *map[string]interface{}
	status           *translationrun.Status
	current_stage    *string
	error_message    *string
	worker_id        *string
	claimed_at       *time.Time
	heartbeat_at     *time.Time
	started_at       *time.Time
	completed_at     *time.Time
	created_at       *time.Time
	clearedFields    map[string]struct{}
	work             *int
	clearedwork      bool
	done             bool
	oldValue         func(context.Context) (*TranslationRun, error)
	predicates       []predicate.TranslationRun
}

var _ ent.Mutation = (*TranslationRunMutation)(nil)

// translationrunOption allows management of the mutation configuration using functional options.
type translationrunOption func(*TranslationRunMutation)

// newTranslationRunMutation creates new mutation for the TranslationRun entity.
func newTranslationRunMutation(c config, op Op, opts ...translationrunOption) *TranslationRunMutation {
	m := &TranslationRunMutation{
		config:        c,
		op:            op,
		typ:           TypeTranslationRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTranslationRunID sets the ID field of the mutation.
func withTranslationRunID(id string) translationrunOption {
	return func(m *TranslationRunMutation) {
		var (
			err   error
			once  sync.Once
			value *TranslationRun
		)
		m.oldValue = func(ctx context.Context) (*TranslationRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TranslationRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTranslationRun sets the old TranslationRun of the mutation.
func withTranslationRun(node *TranslationRun) translationrunOption {
	return func(m *TranslationRunMutation) {
		m.oldValue = func(context.Context) (*TranslationRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TranslationRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TranslationRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TranslationRun entities.
func (m *TranslationRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TranslationRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TranslationRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TranslationRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkID sets the "work_id" field.
func (m *TranslationRunMutation) SetWorkID(i int) {
	m.work = &i
}

// WorkID returns the value of the "work_id" field in the mutation.
func (m *TranslationRunMutation) WorkID() (r int, exists bool) {
	v := m.work
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkID returns the old "work_id" field's value of the TranslationRun entity.
// If the TranslationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslationRunMutation) OldWorkID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkID: %w", err)
	}
	return oldValue.WorkID, nil
}

// ClearWorkID clears the value of the "work_id" field.
func (m *TranslationRunMutation) ClearWorkID() {
	m.work = nil
	m.clearedFields[translationrun.FieldWorkID] = struct{}{}
}

// WorkIDCleared returns if the "work_id" field was cleared in this mutation.
func (m *TranslationRunMutation) WorkIDCleared() bool {
	_, ok := m.clearedFields[translationrun.FieldWorkID]
	return ok
}

// ResetWorkID resets all changes to the "work_id" field.
func (m *TranslationRunMutation) ResetWorkID() {
	m.work = nil
	delete(m.clearedFields, translationrun.FieldWorkID)
}

// SetProjectPath sets the "project_path" field.
func (m *TranslationRunMutation) SetProjectPath(s string) {
	m.project_path = &s
}

// ProjectPath returns the value of the "project_path" field in the mutation.
func (m *TranslationRunMutation) ProjectPath() (r string, exists bool) {
	v := m.project_path
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectPath returns the old "project_path" field's value of the TranslationRun entity.
// If the TranslationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslationRunMutation) OldProjectPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectPath: %w", err)
	}
	return oldValue.ProjectPath, nil
}

// ResetProjectPath resets all changes to the "project_path" field.
func (m *TranslationRunMutation) ResetProjectPath() {
	m.project_path = nil
}

// SetOutputPath sets the "output_path" field.
func (m *TranslationRunMutation) SetOutputPath(s string) {
	m.output_path = &s
}

// OutputPath returns the value of the "output_path" field in the mutation.
func (m *TranslationRunMutation) OutputPath() (r string, exists bool) {
	v := m.output_path
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputPath returns the old "output_path" field's value of the TranslationRun entity.
// If the TranslationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslationRunMutation) OldOutputPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputPath: %w", err)
	}
	return oldValue.OutputPath, nil
}

// ResetOutputPath resets all changes to the "output_path" field.
func (m *TranslationRunMutation) ResetOutputPath() {
	m.output_path = nil
}

// SetConfigOverrides sets the "config_overrides" field.
func (m *TranslationRunMutation) SetConfigOverrides(value map[string]interface{}) {
	m.config_overrides = &value
}

// ConfigOverrides returns the value of the "config_overrides" field in the mutation.
func (m *TranslationRunMutation) ConfigOverrides() (r map[string]interface{}, exists bool) {
	v := m.config_overrides
	if v == nil {
		return
	}
	return *v, true
}

// OldConfigOverrides returns the old "config_overrides" field's value of the TranslationRun entity.
// If the TranslationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslationRunMutation) OldConfigOverrides(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfigOverrides is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfigOverrides requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfigOverrides: %w", err)
	}
	return oldValue.ConfigOverrides, nil
}

// ClearConfigOverrides clears the value of the "config_overrides" field.
func (m *TranslationRunMutation) ClearConfigOverrides() {
	m.config_overrides = nil
	m.clearedFields[translationrun.FieldConfigOverrides] = struct{}{}
}

// ConfigOverridesCleared returns if the "config_overrides" field was cleared in this mutation.
func (m *TranslationRunMutation) ConfigOverridesCleared() bool {
	_, ok := m.clearedFields[translationrun.FieldConfigOverrides]
	return ok
}

// ResetConfigOverrides resets all changes to the "config_overrides" field.
func (m *TranslationRunMutation) ResetConfigOverrides() {
	m.config_overrides = nil
	delete(m.clearedFields, translationrun.FieldConfigOverrides)
}

// SetStatus sets the "status" field.
func (m *TranslationRunMutation) SetStatus(t translationrun.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TranslationRunMutation) Status() (r translationrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TranslationRun entity.
// If the TranslationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslationRunMutation) OldStatus(ctx context.Context) (v translationrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TranslationRunMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentStage sets the "current_stage" field.
func (m *TranslationRunMutation) SetCurrentStage(s string) {
	m.current_stage = &s
}

// CurrentStage returns the value of the "current_stage" field in the mutation.
func (m *TranslationRunMutation) CurrentStage() (r string, exists bool) {
	v := m.current_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStage returns the old "current_stage" field's value of the TranslationRun entity.
// If the TranslationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslationRunMutation) OldCurrentStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStage: %w", err)
	}
	return oldValue.CurrentStage, nil
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (m *TranslationRunMutation) ClearCurrentStage() {
	m.current_stage = nil
	m.clearedFields[translationrun.FieldCurrentStage] = struct{}{}
}

// CurrentStageCleared returns if the "current_stage" field was cleared in this mutation.
func (m *TranslationRunMutation) CurrentStageCleared() bool {
	_, ok := m.clearedFields[translationrun.FieldCurrentStage]
	return ok
}

// ResetCurrentStage resets all changes to the "current_stage" field.
func (m *TranslationRunMutation) ResetCurrentStage() {
	m.current_stage = nil
	delete(m.clearedFields, translationrun.FieldCurrentStage)
}

// SetErrorMessage sets the "error_message" field.
func (m *TranslationRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *TranslationRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the TranslationRun entity.
// If the TranslationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslationRunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *TranslationRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[translationrun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *TranslationRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[translationrun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *TranslationRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, translationrun.FieldErrorMessage)
}

// SetWorkerID sets the "worker_id" field.
func (m *TranslationRunMutation) SetWorkerID(s string) {
	m.worker_id = &s
}

// WorkerID returns the value of the "worker_id" field in the mutation.
func (m *TranslationRunMutation) WorkerID() (r string, exists bool) {
	v := m.worker_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkerID returns the old "worker_id" field's value of the TranslationRun entity.
// If the TranslationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslationRunMutation) OldWorkerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkerID: %w", err)
	}
	return oldValue.WorkerID, nil
}

// ClearWorkerID clears the value of the "worker_id" field.
func (m *TranslationRunMutation) ClearWorkerID() {
	m.worker_id = nil
	m.clearedFields[translationrun.FieldWorkerID] = struct{}{}
}

// WorkerIDCleared returns if the "worker_id" field was cleared in this mutation.
func (m *TranslationRunMutation) WorkerIDCleared() bool {
	_, ok := m.clearedFields[translationrun.FieldWorkerID]
	return ok
}

// ResetWorkerID resets all changes to the "worker_id" field.
func (m *TranslationRunMutation) ResetWorkerID() {
	m.worker_id = nil
	delete(m.clearedFields, translationrun.FieldWorkerID)
}

// SetClaimedAt sets the "claimed_at" field.
func (m *TranslationRunMutation) SetClaimedAt(t time.Time) {
	m.claimed_at = &t
}

// ClaimedAt returns the value of the "claimed_at" field in the mutation.
func (m *TranslationRunMutation) ClaimedAt() (r time.Time, exists bool) {
	v := m.claimed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedAt returns the old "claimed_at" field's value of the TranslationRun entity.
// If the TranslationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslationRunMutation) OldClaimedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedAt: %w", err)
	}
	return oldValue.ClaimedAt, nil
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (m *TranslationRunMutation) ClearClaimedAt() {
	m.claimed_at = nil
	m.clearedFields[translationrun.FieldClaimedAt] = struct{}{}
}

// ClaimedAtCleared returns if the "claimed_at" field was cleared in this mutation.
func (m *TranslationRunMutation) ClaimedAtCleared() bool {
	_, ok := m.clearedFields[translationrun.FieldClaimedAt]
	return ok
}

// ResetClaimedAt resets all changes to the "claimed_at" field.
func (m *TranslationRunMutation) ResetClaimedAt() {
	m.claimed_at = nil
	delete(m.clearedFields, translationrun.FieldClaimedAt)
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (m *TranslationRunMutation) SetHeartbeatAt(t time.Time) {
	m.heartbeat_at = &t
}

// HeartbeatAt returns the value of the "heartbeat_at" field in the mutation.
func (m *TranslationRunMutation) HeartbeatAt() (r time.Time, exists bool) {
	v := m.heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldHeartbeatAt returns the old "heartbeat_at" field's value of the TranslationRun entity.
// If the TranslationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslationRunMutation) OldHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeartbeatAt: %w", err)
	}
	return oldValue.HeartbeatAt, nil
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (m *TranslationRunMutation) ClearHeartbeatAt() {
	m.heartbeat_at = nil
	m.clearedFields[translationrun.FieldHeartbeatAt] = struct{}{}
}

// HeartbeatAtCleared returns if the "heartbeat_at" field was cleared in this mutation.
func (m *TranslationRunMutation) HeartbeatAtCleared() bool {
	_, ok := m.clearedFields[translationrun.FieldHeartbeatAt]
	return ok
}

// ResetHeartbeatAt resets all changes to the "heartbeat_at" field.
func (m *TranslationRunMutation) ResetHeartbeatAt() {
	m.heartbeat_at = nil
	delete(m.clearedFields, translationrun.FieldHeartbeatAt)
}

// SetStartedAt sets the "started_at" field.
func (m *TranslationRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TranslationRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the TranslationRun entity.
// If the TranslationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslationRunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *TranslationRunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[translationrun.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *TranslationRunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[translationrun.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TranslationRunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, translationrun.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *TranslationRunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TranslationRunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the TranslationRun entity.
// If the TranslationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslationRunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TranslationRunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[translationrun.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TranslationRunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[translationrun.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TranslationRunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, translationrun.FieldCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *TranslationRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TranslationRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TranslationRun entity.
// If the TranslationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslationRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TranslationRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearWork clears the "work" edge to the ProjectWork entity.
func (m *TranslationRunMutation) ClearWork() {
	m.clearedwork = true
	m.clearedFields[translationrun.FieldWorkID] = struct{}{}
}

// WorkCleared reports if the "work" edge to the ProjectWork entity was cleared.
func (m *TranslationRunMutation) WorkCleared() bool {
	return m.WorkIDCleared() || m.clearedwork
}

// WorkIDs returns the "work" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkID instead. It exists only for internal usage by the builders.
func (m *TranslationRunMutation) WorkIDs() (ids []int) {
	if id := m.work; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWork resets all changes to the "work" edge.
func (m *TranslationRunMutation) ResetWork() {
	m.work = nil
	m.clearedwork = false
}

// Where appends a list predicates to the TranslationRunMutation builder.
func (m *TranslationRunMutation) Where(ps ...predicate.TranslationRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TranslationRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TranslationRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TranslationRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TranslationRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TranslationRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TranslationRun).
func (m *TranslationRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TranslationRunMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.work != nil {
		fields = append(fields, translationrun.FieldWorkID)
	}
	if m.project_path != nil {
		fields = append(fields, translationrun.FieldProjectPath)
	}
	if m.output_path != nil {
		fields = append(fields, translationrun.FieldOutputPath)
	}
	if m.config_overrides != nil {
		fields = append(fields, translationrun.FieldConfigOverrides)
	}
	if m.status != nil {
		fields = append(fields, translationrun.FieldStatus)
	}
	if m.current_stage != nil {
		fields = append(fields, translationrun.FieldCurrentStage)
	}
	if m.error_message != nil {
		fields = append(fields, translationrun.FieldErrorMessage)
	}
	if m.worker_id != nil {
		fields = append(fields, translationrun.FieldWorkerID)
	}
	if m.claimed_at != nil {
		fields = append(fields, translationrun.FieldClaimedAt)
	}
	if m.heartbeat_at != nil {
		fields = append(fields, translationrun.FieldHeartbeatAt)
	}
	if m.started_at != nil {
		fields = append(fields, translationrun.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, translationrun.FieldCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, translationrun.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TranslationRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case translationrun.FieldWorkID:
		return m.WorkID()
	case translationrun.FieldProjectPath:
		return m.ProjectPath()
	case translationrun.FieldOutputPath:
		return m.OutputPath()
	case translationrun.FieldConfigOverrides:
		return m.ConfigOverrides()
	case translationrun.FieldStatus:
		return m.Status()
	case translationrun.FieldCurrentStage:
		return m.CurrentStage()
	case translationrun.FieldErrorMessage:
		return m.ErrorMessage()
	case translationrun.FieldWorkerID:
		return m.WorkerID()
	case translationrun.FieldClaimedAt:
		return m.ClaimedAt()
	case translationrun.FieldHeartbeatAt:
		return m.HeartbeatAt()
	case translationrun.FieldStartedAt:
		return m.StartedAt()
	case translationrun.FieldCompletedAt:
		return m.CompletedAt()
	case translationrun.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TranslationRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case translationrun.FieldWorkID:
		return m.OldWorkID(ctx)
	case translationrun.FieldProjectPath:
		return m.OldProjectPath(ctx)
	case translationrun.FieldOutputPath:
		return m.OldOutputPath(ctx)
	case translationrun.FieldConfigOverrides:
		return m.OldConfigOverrides(ctx)
	case translationrun.FieldStatus:
		return m.OldStatus(ctx)
	case translationrun.FieldCurrentStage:
		return m.OldCurrentStage(ctx)
	case translationrun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case translationrun.FieldWorkerID:
		return m.OldWorkerID(ctx)
	case translationrun.FieldClaimedAt:
		return m.OldClaimedAt(ctx)
	case translationrun.FieldHeartbeatAt:
		return m.OldHeartbeatAt(ctx)
	case translationrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case translationrun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case translationrun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TranslationRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranslationRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case translationrun.FieldWorkID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkID(v)
		return nil
	case translationrun.FieldProjectPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectPath(v)
		return nil
	case translationrun.FieldOutputPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputPath(v)
		return nil
	case translationrun.FieldConfigOverrides:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfigOverrides(v)
		return nil
	case translationrun.FieldStatus:
		v, ok := value.(translationrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case translationrun.FieldCurrentStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStage(v)
		return nil
	case translationrun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case translationrun.FieldWorkerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkerID(v)
		return nil
	case translationrun.FieldClaimedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedAt(v)
		return nil
	case translationrun.FieldHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeartbeatAt(v)
		return nil
	case translationrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case translationrun.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case translationrun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TranslationRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TranslationRunMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TranslationRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranslationRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TranslationRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TranslationRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(translationrun.FieldWorkID) {
		fields = append(fields, translationrun.FieldWorkID)
	}
	if m.FieldCleared(translationrun.FieldConfigOverrides) {
		fields = append(fields, translationrun.FieldConfigOverrides)
	}
	if m.FieldCleared(translationrun.FieldCurrentStage) {
		fields = append(fields, translationrun.FieldCurrentStage)
	}
	if m.FieldCleared(translationrun.FieldErrorMessage) {
		fields = append(fields, translationrun.FieldErrorMessage)
	}
	if m.FieldCleared(translationrun.FieldWorkerID) {
		fields = append(fields, translationrun.FieldWorkerID)
	}
	if m.FieldCleared(translationrun.FieldClaimedAt) {
		fields = append(fields, translationrun.FieldClaimedAt)
	}
	if m.FieldCleared(translationrun.FieldHeartbeatAt) {
		fields = append(fields, translationrun.FieldHeartbeatAt)
	}
	if m.FieldCleared(translationrun.FieldStartedAt) {
		fields = append(fields, translationrun.FieldStartedAt)
	}
	if m.FieldCleared(translationrun.FieldCompletedAt) {
		fields = append(fields, translationrun.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TranslationRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TranslationRunMutation) ClearField(name string) error {
	switch name {
	case translationrun.FieldWorkID:
		m.ClearWorkID()
		return nil
	case translationrun.FieldConfigOverrides:
		m.ClearConfigOverrides()
		return nil
	case translationrun.FieldCurrentStage:
		m.ClearCurrentStage()
		return nil
	case translationrun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case translationrun.FieldWorkerID:
		m.ClearWorkerID()
		return nil
	case translationrun.FieldClaimedAt:
		m.ClearClaimedAt()
		return nil
	case translationrun.FieldHeartbeatAt:
		m.ClearHeartbeatAt()
		return nil
	case translationrun.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case translationrun.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown TranslationRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TranslationRunMutation) ResetField(name string) error {
	switch name {
	case translationrun.FieldWorkID:
		m.ResetWorkID()
		return nil
	case translationrun.FieldProjectPath:
		m.ResetProjectPath()
		return nil
	case translationrun.FieldOutputPath:
		m.ResetOutputPath()
		return nil
	case translationrun.FieldConfigOverrides:
		m.ResetConfigOverrides()
		return nil
	case translationrun.FieldStatus:
		m.ResetStatus()
		return nil
	case translationrun.FieldCurrentStage:
		m.ResetCurrentStage()
		return nil
	case translationrun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case translationrun.FieldWorkerID:
		m.ResetWorkerID()
		return nil
	case translationrun.FieldClaimedAt:
		m.ResetClaimedAt()
		return nil
	case translationrun.FieldHeartbeatAt:
		m.ResetHeartbeatAt()
		return nil
	case translationrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case translationrun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case translationrun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TranslationRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TranslationRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.work != nil {
		edges = append(edges, translationrun.EdgeWork)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TranslationRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case translationrun.EdgeWork:
		if id := m.work; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TranslationRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TranslationRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TranslationRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedwork {
		edges = append(edges, translationrun.EdgeWork)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TranslationRunMutation) EdgeCleared(name string) bool {
	switch name {
	case translationrun.EdgeWork:
		return m.clearedwork
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TranslationRunMutation) ClearEdge(name string) error {
	switch name {
	case translationrun.EdgeWork:
		m.ClearWork()
		return nil
	}
	return fmt.Errorf("unknown TranslationRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TranslationRunMutation) ResetEdge(name string) error {
	switch name {
	case translationrun.EdgeWork:
		m.ResetWork()
		return nil
	}
	return fmt.Errorf("unknown TranslationRun edge %s", name)
}
