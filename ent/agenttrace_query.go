// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/linguaflow/linguaflow/ent/agenttrace"
	"github.com/linguaflow/linguaflow/ent/predicate"
	"github.com/linguaflow/linguaflow/ent/processingatom"
)

// AgentTraceQuery is the builder for querying AgentTrace entities.
type AgentTraceQuery struct {
	config
	ctx        *QueryContext
	order      []agenttrace.OrderOption
	inters     []Interceptor
	predicates []predicate.AgentTrace
	withAtom   *ProcessingAtomQuery
	modifiers  []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AgentTraceQuery builder.
func (_q *AgentTraceQuery) Where(ps ...predicate.AgentTrace) *AgentTraceQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *AgentTraceQuery) Limit(limit int) *AgentTraceQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *AgentTraceQuery) Offset(offset int) *AgentTraceQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *AgentTraceQuery) Unique(unique bool) *AgentTraceQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *AgentTraceQuery) Order(o ...agenttrace.OrderOption) *AgentTraceQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryAtom chains the current query on the "atom" edge.
func (_q *AgentTraceQuery) QueryAtom() *ProcessingAtomQuery {
	query := (&ProcessingAtomClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(agenttrace.Table, agenttrace.FieldID, selector),
			sqlgraph.To(processingatom.Table, processingatom.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agenttrace.AtomTable, agenttrace.AtomColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first AgentTrace entity from the query.
// Returns a *NotFoundError when no AgentTrace was found.
func (_q *AgentTraceQuery) First(ctx context.Context) (*AgentTrace, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{agenttrace.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *AgentTraceQuery) FirstX(ctx context.Context) *AgentTrace {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first AgentTrace ID from the query.
// Returns a *NotFoundError when no AgentTrace ID was found.
func (_q *AgentTraceQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{agenttrace.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *AgentTraceQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single AgentTrace entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one AgentTrace entity is found.
// Returns a *NotFoundError when no AgentTrace entities are found.
func (_q *AgentTraceQuery) Only(ctx context.Context) (*AgentTrace, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{agenttrace.Label}
	default:
		return nil, &NotSingularError{agenttrace.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *AgentTraceQuery) OnlyX(ctx context.Context) *AgentTrace {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only AgentTrace ID in the query.
// Returns a *NotSingularError when more than one AgentTrace ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *AgentTraceQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{agenttrace.Label}
	default:
		err = &NotSingularError{agenttrace.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *AgentTraceQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of AgentTraces.
func (_q *AgentTraceQuery) All(ctx context.Context) ([]*AgentTrace, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*AgentTrace, *AgentTraceQuery]()
	return withInterceptors[[]*AgentTrace](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *AgentTraceQuery) AllX(ctx context.Context) []*AgentTrace {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of AgentTrace IDs.
func (_q *AgentTraceQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(agenttrace.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *AgentTraceQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *AgentTraceQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*AgentTraceQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *AgentTraceQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *AgentTraceQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *AgentTraceQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AgentTraceQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *AgentTraceQuery) Clone() *AgentTraceQuery {
	if _q == nil {
		return nil
	}
	return &AgentTraceQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]agenttrace.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.AgentTrace{}, _q.predicates...),
		withAtom:   _q.withAtom.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithAtom tells the query-builder to eager-load the nodes that are connected to
// the "atom" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AgentTraceQuery) WithAtom(opts ...func(*ProcessingAtomQuery)) *AgentTraceQuery {
	query := (&ProcessingAtomClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAtom = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		AtomID int `json:"atom_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.AgentTrace.Query().
//		GroupBy(agenttrace.FieldAtomID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *AgentTraceQuery) GroupBy(field string, fields ...string) *AgentTraceGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AgentTraceGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = agenttrace.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		AtomID int `json:"atom_id,omitempty"`
//	}
//
//	client.AgentTrace.Query().
//		Select(agenttrace.FieldAtomID).
//		Scan(ctx, &v)
func (_q *AgentTraceQuery) Select(fields ...string) *AgentTraceSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &AgentTraceSelect{AgentTraceQuery: _q}
	sbuild.label = agenttrace.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AgentTraceSelect configured with the given aggregations.
func (_q *AgentTraceQuery) Aggregate(fns ...AggregateFunc) *AgentTraceSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *AgentTraceQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !agenttrace.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *AgentTraceQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*AgentTrace, error) {
	var (
		nodes       = []*AgentTrace{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withAtom != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*AgentTrace).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &AgentTrace{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withAtom; query != nil {
		if err := _q.loadAtom(ctx, query, nodes, nil,
			func(n *AgentTrace, e *ProcessingAtom) { n.Edges.Atom = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *AgentTraceQuery) loadAtom(ctx context.Context, query *ProcessingAtomQuery, nodes []*AgentTrace, init func(*AgentTrace), assign func(*AgentTrace, *ProcessingAtom)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*AgentTrace)
	for i := range nodes {
		fk := nodes[i].AtomID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(processingatom.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "atom_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *AgentTraceQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *AgentTraceQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(agenttrace.Table, agenttrace.Columns, sqlgraph.NewFieldSpec(agenttrace.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agenttrace.FieldID)
		for i := range fields {
			if fields[i] != agenttrace.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withAtom != nil {
			_spec.Node.AddColumnOnce(agenttrace.FieldAtomID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *AgentTraceQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(agenttrace.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = agenttrace.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *AgentTraceQuery) ForUpdate(opts ...sql.LockOption) *AgentTraceQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *AgentTraceQuery) ForShare(opts ...sql.LockOption) *AgentTraceQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// AgentTraceGroupBy is the group-by builder for AgentTrace entities.
type AgentTraceGroupBy struct {
	selector
	build *AgentTraceQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *AgentTraceGroupBy) Aggregate(fns ...AggregateFunc) *AgentTraceGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *AgentTraceGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AgentTraceQuery, *AgentTraceGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *AgentTraceGroupBy) sqlScan(ctx context.Context, root *AgentTraceQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// AgentTraceSelect is the builder for selecting fields of AgentTrace entities.
type AgentTraceSelect struct {
	*AgentTraceQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *AgentTraceSelect) Aggregate(fns ...AggregateFunc) *AgentTraceSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *AgentTraceSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AgentTraceQuery, *AgentTraceSelect](ctx, _s.AgentTraceQuery, _s, _s.inters, v)
}

func (_s *AgentTraceSelect) sqlScan(ctx context.Context, root *AgentTraceQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
