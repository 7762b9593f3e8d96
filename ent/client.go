// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/linguaflow/linguaflow/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/linguaflow/linguaflow/ent/agenttrace"
	"github.com/linguaflow/linguaflow/ent/event"
	"github.com/linguaflow/linguaflow/ent/knowledgebase"
	"github.com/linguaflow/linguaflow/ent/processingatom"
	"github.com/linguaflow/linguaflow/ent/projectwork"
	"github.com/linguaflow/linguaflow/ent/sourcedoc"
	"github.com/linguaflow/linguaflow/ent/translationrun"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentTrace is the client for interacting with the AgentTrace builders.
	AgentTrace *AgentTraceClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// KnowledgeBase is the client for interacting with the KnowledgeBase builders.
	KnowledgeBase *KnowledgeBaseClient
	// ProcessingAtom is the client for interacting with the ProcessingAtom builders.
	ProcessingAtom *ProcessingAtomClient
	// ProjectWork is the client for interacting with the ProjectWork builders.
	ProjectWork *ProjectWorkClient
	// SourceDoc is the client for interacting with the SourceDoc builders.
	SourceDoc *SourceDocClient
	// TranslationRun is the client for interacting with the TranslationRun builders.
	TranslationRun *TranslationRunClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentTrace = NewAgentTraceClient(c.config)
	c.Event = NewEventClient(c.config)
	c.KnowledgeBase = NewKnowledgeBaseClient(c.config)
	c.ProcessingAtom = NewProcessingAtomClient(c.config)
	c.ProjectWork = NewProjectWorkClient(c.config)
	c.SourceDoc = NewSourceDocClient(c.config)
	c.TranslationRun = NewTranslationRunClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		AgentTrace:     NewAgentTraceClient(cfg),
		Event:          NewEventClient(cfg),
		KnowledgeBase:  NewKnowledgeBaseClient(cfg),
		ProcessingAtom: NewProcessingAtomClient(cfg),
		ProjectWork:    NewProjectWorkClient(cfg),
		SourceDoc:      NewSourceDocClient(cfg),
		TranslationRun: NewTranslationRunClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		AgentTrace:     NewAgentTraceClient(cfg),
		Event:          NewEventClient(cfg),
		KnowledgeBase:  NewKnowledgeBaseClient(cfg),
		ProcessingAtom: NewProcessingAtomClient(cfg),
		ProjectWork:    NewProjectWorkClient(cfg),
		SourceDoc:      NewSourceDocClient(cfg),
		TranslationRun: NewTranslationRunClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentTrace.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AgentTrace, c.Event, c.KnowledgeBase, c.ProcessingAtom, c.ProjectWork,
		c.SourceDoc, c.TranslationRun,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgentTrace, c.Event, c.KnowledgeBase, c.ProcessingAtom, c.ProjectWork,
		c.SourceDoc, c.TranslationRun,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentTraceMutation:
		return c.AgentTrace.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *KnowledgeBaseMutation:
		return c.KnowledgeBase.mutate(ctx, m)
	case *ProcessingAtomMutation:
		return c.ProcessingAtom.mutate(ctx, m)
	case *ProjectWorkMutation:
		return c.ProjectWork.mutate(ctx, m)
	case *SourceDocMutation:
		return c.SourceDoc.mutate(ctx, m)
	case *TranslationRunMutation:
		return c.TranslationRun.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentTraceClient is a client for the AgentTrace schema.
type AgentTraceClient struct {
	config
}

// NewAgentTraceClient returns a client for the AgentTrace from the given config.
func NewAgentTraceClient(c config) *AgentTraceClient {
	return &AgentTraceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agenttrace.Hooks(f(g(h())))`.
func (c *AgentTraceClient) Use(hooks ...Hook) {
	c.hooks.AgentTrace = append(c.hooks.AgentTrace, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agenttrace.Intercept(f(g(h())))`.
func (c *AgentTraceClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentTrace = append(c.inters.AgentTrace, interceptors...)
}

// Create returns a builder for creating a AgentTrace entity.
func (c *AgentTraceClient) Create() *AgentTraceCreate {
	mutation := newAgentTraceMutation(c.config, OpCreate)
	return &AgentTraceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentTrace entities.
func (c *AgentTraceClient) CreateBulk(builders ...*AgentTraceCreate) *AgentTraceCreateBulk {
	return &AgentTraceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentTraceClient) MapCreateBulk(slice any, setFunc func(*AgentTraceCreate, int)) *AgentTraceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentTraceCreateBulk{err: fmt.Errorf("calling to AgentTraceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentTraceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentTraceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentTrace.
func (c *AgentTraceClient) Update() *AgentTraceUpdate {
	mutation := newAgentTraceMutation(c.config, OpUpdate)
	return &AgentTraceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentTraceClient) UpdateOne(_m *AgentTrace) *AgentTraceUpdateOne {
	mutation := newAgentTraceMutation(c.config, OpUpdateOne, withAgentTrace(_m))
	return &AgentTraceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentTraceClient) UpdateOneID(id int) *AgentTraceUpdateOne {
	mutation := newAgentTraceMutation(c.config, OpUpdateOne, withAgentTraceID(id))
	return &AgentTraceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentTrace.
func (c *AgentTraceClient) Delete() *AgentTraceDelete {
	mutation := newAgentTraceMutation(c.config, OpDelete)
	return &AgentTraceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentTraceClient) DeleteOne(_m *AgentTrace) *AgentTraceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentTraceClient) DeleteOneID(id int) *AgentTraceDeleteOne {
	builder := c.Delete().Where(agenttrace.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentTraceDeleteOne{builder}
}

// Query returns a query builder for AgentTrace.
func (c *AgentTraceClient) Query() *AgentTraceQuery {
	return &AgentTraceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentTrace},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentTrace entity by its id.
func (c *AgentTraceClient) Get(ctx context.Context, id int) (*AgentTrace, error) {
	return c.Query().Where(agenttrace.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentTraceClient) GetX(ctx context.Context, id int) *AgentTrace {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAtom queries the atom edge of a AgentTrace.
func (c *AgentTraceClient) QueryAtom(_m *AgentTrace) *ProcessingAtomQuery {
	query := (&ProcessingAtomClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agenttrace.Table, agenttrace.FieldID, id),
			sqlgraph.To(processingatom.Table, processingatom.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agenttrace.AtomTable, agenttrace.AtomColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentTraceClient) Hooks() []Hook {
	return c.hooks.AgentTrace
}

// Interceptors returns the client interceptors.
func (c *AgentTraceClient) Interceptors() []Interceptor {
	return c.inters.AgentTrace
}

func (c *AgentTraceClient) mutate(ctx context.Context, m *AgentTraceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentTraceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentTraceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentTraceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentTraceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentTrace mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// KnowledgeBaseClient is a client for the KnowledgeBase schema.
type KnowledgeBaseClient struct {
	config
}

// NewKnowledgeBaseClient returns a client for the KnowledgeBase from the given config.
func NewKnowledgeBaseClient(c config) *KnowledgeBaseClient {
	return &KnowledgeBaseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `knowledgebase.Hooks(f(g(h())))`.
func (c *KnowledgeBaseClient) Use(hooks ...Hook) {
	c.hooks.KnowledgeBase = append(c.hooks.KnowledgeBase, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `knowledgebase.Intercept(f(g(h())))`.
func (c *KnowledgeBaseClient) Intercept(interceptors ...Interceptor) {
	c.inters.KnowledgeBase = append(c.inters.KnowledgeBase, interceptors...)
}

// Create returns a builder for creating a KnowledgeBase entity.
func (c *KnowledgeBaseClient) Create() *KnowledgeBaseCreate {
	mutation := newKnowledgeBaseMutation(c.config, OpCreate)
	return &KnowledgeBaseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of KnowledgeBase entities.
func (c *KnowledgeBaseClient) CreateBulk(builders ...*KnowledgeBaseCreate) *KnowledgeBaseCreateBulk {
	return &KnowledgeBaseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *KnowledgeBaseClient) MapCreateBulk(slice any, setFunc func(*KnowledgeBaseCreate, int)) *KnowledgeBaseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &KnowledgeBaseCreateBulk{err: fmt.Errorf("calling to KnowledgeBaseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*KnowledgeBaseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &KnowledgeBaseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for KnowledgeBase.
func (c *KnowledgeBaseClient) Update() *KnowledgeBaseUpdate {
	mutation := newKnowledgeBaseMutation(c.config, OpUpdate)
	return &KnowledgeBaseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *KnowledgeBaseClient) UpdateOne(_m *KnowledgeBase) *KnowledgeBaseUpdateOne {
	mutation := newKnowledgeBaseMutation(c.config, OpUpdateOne, withKnowledgeBase(_m))
	return &KnowledgeBaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *KnowledgeBaseClient) UpdateOneID(id int) *KnowledgeBaseUpdateOne {
	mutation := newKnowledgeBaseMutation(c.config, OpUpdateOne, withKnowledgeBaseID(id))
	return &KnowledgeBaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for KnowledgeBase.
func (c *KnowledgeBaseClient) Delete() *KnowledgeBaseDelete {
	mutation := newKnowledgeBaseMutation(c.config, OpDelete)
	return &KnowledgeBaseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *KnowledgeBaseClient) DeleteOne(_m *KnowledgeBase) *KnowledgeBaseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *KnowledgeBaseClient) DeleteOneID(id int) *KnowledgeBaseDeleteOne {
	builder := c.Delete().Where(knowledgebase.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &KnowledgeBaseDeleteOne{builder}
}

// Query returns a query builder for KnowledgeBase.
func (c *KnowledgeBaseClient) Query() *KnowledgeBaseQuery {
	return &KnowledgeBaseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeKnowledgeBase},
		inters: c.Interceptors(),
	}
}

// Get returns a KnowledgeBase entity by its id.
func (c *KnowledgeBaseClient) Get(ctx context.Context, id int) (*KnowledgeBase, error) {
	return c.Query().Where(knowledgebase.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *KnowledgeBaseClient) GetX(ctx context.Context, id int) *KnowledgeBase {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWork queries the work edge of a KnowledgeBase.
func (c *KnowledgeBaseClient) QueryWork(_m *KnowledgeBase) *ProjectWorkQuery {
	query := (&ProjectWorkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(knowledgebase.Table, knowledgebase.FieldID, id),
			sqlgraph.To(projectwork.Table, projectwork.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, knowledgebase.WorkTable, knowledgebase.WorkColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *KnowledgeBaseClient) Hooks() []Hook {
	return c.hooks.KnowledgeBase
}

// Interceptors returns the client interceptors.
func (c *KnowledgeBaseClient) Interceptors() []Interceptor {
	return c.inters.KnowledgeBase
}

func (c *KnowledgeBaseClient) mutate(ctx context.Context, m *KnowledgeBaseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&KnowledgeBaseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&KnowledgeBaseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&KnowledgeBaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&KnowledgeBaseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown KnowledgeBase mutation op: %q", m.Op())
	}
}

// ProcessingAtomClient is a client for the ProcessingAtom schema.
type ProcessingAtomClient struct {
	config
}

// NewProcessingAtomClient returns a client for the ProcessingAtom from the given config.
func NewProcessingAtomClient(c config) *ProcessingAtomClient {
	return &ProcessingAtomClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `processingatom.Hooks(f(g(h())))`.
func (c *ProcessingAtomClient) Use(hooks ...Hook) {
	c.hooks.ProcessingAtom = append(c.hooks.ProcessingAtom, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `processingatom.Intercept(f(g(h())))`.
func (c *ProcessingAtomClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProcessingAtom = append(c.inters.ProcessingAtom, interceptors...)
}

// Create returns a builder for creating a ProcessingAtom entity.
func (c *ProcessingAtomClient) Create() *ProcessingAtomCreate {
	mutation := newProcessingAtomMutation(c.config, OpCreate)
	return &ProcessingAtomCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProcessingAtom entities.
func (c *ProcessingAtomClient) CreateBulk(builders ...*ProcessingAtomCreate) *ProcessingAtomCreateBulk {
	return &ProcessingAtomCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProcessingAtomClient) MapCreateBulk(slice any, setFunc func(*ProcessingAtomCreate, int)) *ProcessingAtomCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProcessingAtomCreateBulk{err: fmt.Errorf("calling to ProcessingAtomClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProcessingAtomCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProcessingAtomCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProcessingAtom.
func (c *ProcessingAtomClient) Update() *ProcessingAtomUpdate {
	mutation := newProcessingAtomMutation(c.config, OpUpdate)
	return &ProcessingAtomUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProcessingAtomClient) UpdateOne(_m *ProcessingAtom) *ProcessingAtomUpdateOne {
	mutation := newProcessingAtomMutation(c.config, OpUpdateOne, withProcessingAtom(_m))
	return &ProcessingAtomUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProcessingAtomClient) UpdateOneID(id int) *ProcessingAtomUpdateOne {
	mutation := newProcessingAtomMutation(c.config, OpUpdateOne, withProcessingAtomID(id))
	return &ProcessingAtomUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProcessingAtom.
func (c *ProcessingAtomClient) Delete() *ProcessingAtomDelete {
	mutation := newProcessingAtomMutation(c.config, OpDelete)
	return &ProcessingAtomDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProcessingAtomClient) DeleteOne(_m *ProcessingAtom) *ProcessingAtomDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProcessingAtomClient) DeleteOneID(id int) *ProcessingAtomDeleteOne {
	builder := c.Delete().Where(processingatom.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProcessingAtomDeleteOne{builder}
}

// Query returns a query builder for ProcessingAtom.
func (c *ProcessingAtomClient) Query() *ProcessingAtomQuery {
	return &ProcessingAtomQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProcessingAtom},
		inters: c.Interceptors(),
	}
}

// Get returns a ProcessingAtom entity by its id.
func (c *ProcessingAtomClient) Get(ctx context.Context, id int) (*ProcessingAtom, error) {
	return c.Query().Where(processingatom.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProcessingAtomClient) GetX(ctx context.Context, id int) *ProcessingAtom {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDoc queries the doc edge of a ProcessingAtom.
func (c *ProcessingAtomClient) QueryDoc(_m *ProcessingAtom) *SourceDocQuery {
	query := (&SourceDocClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(processingatom.Table, processingatom.FieldID, id),
			sqlgraph.To(sourcedoc.Table, sourcedoc.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, processingatom.DocTable, processingatom.DocColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTraces queries the traces edge of a ProcessingAtom.
func (c *ProcessingAtomClient) QueryTraces(_m *ProcessingAtom) *AgentTraceQuery {
	query := (&AgentTraceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(processingatom.Table, processingatom.FieldID, id),
			sqlgraph.To(agenttrace.Table, agenttrace.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, processingatom.TracesTable, processingatom.TracesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProcessingAtomClient) Hooks() []Hook {
	return c.hooks.ProcessingAtom
}

// Interceptors returns the client interceptors.
func (c *ProcessingAtomClient) Interceptors() []Interceptor {
	return c.inters.ProcessingAtom
}

func (c *ProcessingAtomClient) mutate(ctx context.Context, m *ProcessingAtomMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProcessingAtomCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProcessingAtomUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProcessingAtomUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProcessingAtomDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProcessingAtom mutation op: %q", m.Op())
	}
}

// ProjectWorkClient is a client for the ProjectWork schema.
type ProjectWorkClient struct {
	config
}

// NewProjectWorkClient returns a client for the ProjectWork from the given config.
func NewProjectWorkClient(c config) *ProjectWorkClient {
	return &ProjectWorkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `projectwork.Hooks(f(g(h())))`.
func (c *ProjectWorkClient) Use(hooks ...Hook) {
	c.hooks.ProjectWork = append(c.hooks.ProjectWork, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `projectwork.Intercept(f(g(h())))`.
func (c *ProjectWorkClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProjectWork = append(c.inters.ProjectWork, interceptors...)
}

// Create returns a builder for creating a ProjectWork entity.
func (c *ProjectWorkClient) Create() *ProjectWorkCreate {
	mutation := newProjectWorkMutation(c.config, OpCreate)
	return &ProjectWorkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProjectWork entities.
func (c *ProjectWorkClient) CreateBulk(builders ...*ProjectWorkCreate) *ProjectWorkCreateBulk {
	return &ProjectWorkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectWorkClient) MapCreateBulk(slice any, setFunc func(*ProjectWorkCreate, int)) *ProjectWorkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectWorkCreateBulk{err: fmt.Errorf("calling to ProjectWorkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectWorkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectWorkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProjectWork.
func (c *ProjectWorkClient) Update() *ProjectWorkUpdate {
	mutation := newProjectWorkMutation(c.config, OpUpdate)
	return &ProjectWorkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectWorkClient) UpdateOne(_m *ProjectWork) *ProjectWorkUpdateOne {
	mutation := newProjectWorkMutation(c.config, OpUpdateOne, withProjectWork(_m))
	return &ProjectWorkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectWorkClient) UpdateOneID(id int) *ProjectWorkUpdateOne {
	mutation := newProjectWorkMutation(c.config, OpUpdateOne, withProjectWorkID(id))
	return &ProjectWorkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProjectWork.
func (c *ProjectWorkClient) Delete() *ProjectWorkDelete {
	mutation := newProjectWorkMutation(c.config, OpDelete)
	return &ProjectWorkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectWorkClient) DeleteOne(_m *ProjectWork) *ProjectWorkDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectWorkClient) DeleteOneID(id int) *ProjectWorkDeleteOne {
	builder := c.Delete().Where(projectwork.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectWorkDeleteOne{builder}
}

// Query returns a query builder for ProjectWork.
func (c *ProjectWorkClient) Query() *ProjectWorkQuery {
	return &ProjectWorkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProjectWork},
		inters: c.Interceptors(),
	}
}

// Get returns a ProjectWork entity by its id.
func (c *ProjectWorkClient) Get(ctx context.Context, id int) (*ProjectWork, error) {
	return c.Query().Where(projectwork.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectWorkClient) GetX(ctx context.Context, id int) *ProjectWork {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocs queries the docs edge of a ProjectWork.
func (c *ProjectWorkClient) QueryDocs(_m *ProjectWork) *SourceDocQuery {
	query := (&SourceDocClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(projectwork.Table, projectwork.FieldID, id),
			sqlgraph.To(sourcedoc.Table, sourcedoc.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, projectwork.DocsTable, projectwork.DocsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryKnowledgeEntries queries the knowledge_entries edge of a ProjectWork.
func (c *ProjectWorkClient) QueryKnowledgeEntries(_m *ProjectWork) *KnowledgeBaseQuery {
	query := (&KnowledgeBaseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(projectwork.Table, projectwork.FieldID, id),
			sqlgraph.To(knowledgebase.Table, knowledgebase.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, projectwork.KnowledgeEntriesTable, projectwork.KnowledgeEntriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRuns queries the runs edge of a ProjectWork.
func (c *ProjectWorkClient) QueryRuns(_m *ProjectWork) *TranslationRunQuery {
	query := (&TranslationRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(projectwork.Table, projectwork.FieldID, id),
			sqlgraph.To(translationrun.Table, translationrun.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, projectwork.RunsTable, projectwork.RunsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProjectWorkClient) Hooks() []Hook {
	return c.hooks.ProjectWork
}

// Interceptors returns the client interceptors.
func (c *ProjectWorkClient) Interceptors() []Interceptor {
	return c.inters.ProjectWork
}

func (c *ProjectWorkClient) mutate(ctx context.Context, m *ProjectWorkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectWorkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectWorkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectWorkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectWorkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProjectWork mutation op: %q", m.Op())
	}
}

// SourceDocClient is a client for the SourceDoc schema.
type SourceDocClient struct {
	config
}

// NewSourceDocClient returns a client for the SourceDoc from the given config.
func NewSourceDocClient(c config) *SourceDocClient {
	return &SourceDocClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sourcedoc.Hooks(f(g(h())))`.
func (c *SourceDocClient) Use(hooks ...Hook) {
	c.hooks.SourceDoc = append(c.hooks.SourceDoc, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sourcedoc.Intercept(f(g(h())))`.
func (c *SourceDocClient) Intercept(interceptors ...Interceptor) {
	c.inters.SourceDoc = append(c.inters.SourceDoc, interceptors...)
}

// Create returns a builder for creating a SourceDoc entity.
func (c *SourceDocClient) Create() *SourceDocCreate {
	mutation := newSourceDocMutation(c.config, OpCreate)
	return &SourceDocCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SourceDoc entities.
func (c *SourceDocClient) CreateBulk(builders ...*SourceDocCreate) *SourceDocCreateBulk {
	return &SourceDocCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SourceDocClient) MapCreateBulk(slice any, setFunc func(*SourceDocCreate, int)) *SourceDocCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SourceDocCreateBulk{err: fmt.Errorf("calling to SourceDocClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SourceDocCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SourceDocCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SourceDoc.
func (c *SourceDocClient) Update() *SourceDocUpdate {
	mutation := newSourceDocMutation(c.config, OpUpdate)
	return &SourceDocUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SourceDocClient) UpdateOne(_m *SourceDoc) *SourceDocUpdateOne {
	mutation := newSourceDocMutation(c.config, OpUpdateOne, withSourceDoc(_m))
	return &SourceDocUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SourceDocClient) UpdateOneID(id int) *SourceDocUpdateOne {
	mutation := newSourceDocMutation(c.config, OpUpdateOne, withSourceDocID(id))
	return &SourceDocUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SourceDoc.
func (c *SourceDocClient) Delete() *SourceDocDelete {
	mutation := newSourceDocMutation(c.config, OpDelete)
	return &SourceDocDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SourceDocClient) DeleteOne(_m *SourceDoc) *SourceDocDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SourceDocClient) DeleteOneID(id int) *SourceDocDeleteOne {
	builder := c.Delete().Where(sourcedoc.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SourceDocDeleteOne{builder}
}

// Query returns a query builder for SourceDoc.
func (c *SourceDocClient) Query() *SourceDocQuery {
	return &SourceDocQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSourceDoc},
		inters: c.Interceptors(),
	}
}

// Get returns a SourceDoc entity by its id.
func (c *SourceDocClient) Get(ctx context.Context, id int) (*SourceDoc, error) {
	return c.Query().Where(sourcedoc.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SourceDocClient) GetX(ctx context.Context, id int) *SourceDoc {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWork queries the work edge of a SourceDoc.
func (c *SourceDocClient) QueryWork(_m *SourceDoc) *ProjectWorkQuery {
	query := (&ProjectWorkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sourcedoc.Table, sourcedoc.FieldID, id),
			sqlgraph.To(projectwork.Table, projectwork.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sourcedoc.WorkTable, sourcedoc.WorkColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAtoms queries the atoms edge of a SourceDoc.
func (c *SourceDocClient) QueryAtoms(_m *SourceDoc) *ProcessingAtomQuery {
	query := (&ProcessingAtomClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sourcedoc.Table, sourcedoc.FieldID, id),
			sqlgraph.To(processingatom.Table, processingatom.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, sourcedoc.AtomsTable, sourcedoc.AtomsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SourceDocClient) Hooks() []Hook {
	return c.hooks.SourceDoc
}

// Interceptors returns the client interceptors.
func (c *SourceDocClient) Interceptors() []Interceptor {
	return c.inters.SourceDoc
}

func (c *SourceDocClient) mutate(ctx context.Context, m *SourceDocMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SourceDocCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SourceDocUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SourceDocUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SourceDocDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SourceDoc mutation op: %q", m.Op())
	}
}

// TranslationRunClient is a client for the TranslationRun schema.
type TranslationRunClient struct {
	config
}

// NewTranslationRunClient returns a client for the TranslationRun from the given config.
func NewTranslationRunClient(c config) *TranslationRunClient {
	return &TranslationRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `translationrun.Hooks(f(g(h())))`.
func (c *TranslationRunClient) Use(hooks ...Hook) {
	c.hooks.TranslationRun = append(c.hooks.TranslationRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `translationrun.Intercept(f(g(h())))`.
func (c *TranslationRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.TranslationRun = append(c.inters.TranslationRun, interceptors...)
}

// Create returns a builder for creating a TranslationRun entity.
func (c *TranslationRunClient) Create() *TranslationRunCreate {
	mutation := newTranslationRunMutation(c.config, OpCreate)
	return &TranslationRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TranslationRun entities.
func (c *TranslationRunClient) CreateBulk(builders ...*TranslationRunCreate) *TranslationRunCreateBulk {
	return &TranslationRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TranslationRunClient) MapCreateBulk(slice any, setFunc func(*TranslationRunCreate, int)) *TranslationRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TranslationRunCreateBulk{err: fmt.Errorf("calling to TranslationRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TranslationRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TranslationRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TranslationRun.
func (c *TranslationRunClient) Update() *TranslationRunUpdate {
	mutation := newTranslationRunMutation(c.config, OpUpdate)
	return &TranslationRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TranslationRunClient) UpdateOne(_m *TranslationRun) *TranslationRunUpdateOne {
	mutation := newTranslationRunMutation(c.config, OpUpdateOne, withTranslationRun(_m))
	return &TranslationRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TranslationRunClient) UpdateOneID(id string) *TranslationRunUpdateOne {
	mutation := newTranslationRunMutation(c.config, OpUpdateOne, withTranslationRunID(id))
	return &TranslationRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TranslationRun.
func (c *TranslationRunClient) Delete() *TranslationRunDelete {
	mutation := newTranslationRunMutation(c.config, OpDelete)
	return &TranslationRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TranslationRunClient) DeleteOne(_m *TranslationRun) *TranslationRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TranslationRunClient) DeleteOneID(id string) *TranslationRunDeleteOne {
	builder := c.Delete().Where(translationrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TranslationRunDeleteOne{builder}
}

// Query returns a query builder for TranslationRun.
func (c *TranslationRunClient) Query() *TranslationRunQuery {
	return &TranslationRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTranslationRun},
		inters: c.Interceptors(),
	}
}

// Get returns a TranslationRun entity by its id.
func (c *TranslationRunClient) Get(ctx context.Context, id string) (*TranslationRun, error) {
	return c.Query().Where(translationrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TranslationRunClient) GetX(ctx context.Context, id string) *TranslationRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWork queries the work edge of a TranslationRun.
func (c *TranslationRunClient) QueryWork(_m *TranslationRun) *ProjectWorkQuery {
	query := (&ProjectWorkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(translationrun.Table, translationrun.FieldID, id),
			sqlgraph.To(projectwork.Table, projectwork.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, translationrun.WorkTable, translationrun.WorkColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TranslationRunClient) Hooks() []Hook {
	return c.hooks.TranslationRun
}

// Interceptors returns the client interceptors.
func (c *TranslationRunClient) Interceptors() []Interceptor {
	return c.inters.TranslationRun
}

func (c *TranslationRunClient) mutate(ctx context.Context, m *TranslationRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TranslationRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TranslationRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TranslationRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TranslationRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TranslationRun mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentTrace, Event, KnowledgeBase, ProcessingAtom, ProjectWork, SourceDoc,
		TranslationRun []ent.Hook
	}
	inters struct {
		AgentTrace, Event, KnowledgeBase, ProcessingAtom, ProjectWork, SourceDoc,
		TranslationRun []ent.Interceptor
	}
)
