// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
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
	"github.com/linguaflow/linguaflow/ent/sourcedoc"
)

// ProcessingAtomQuery is the builder for querying ProcessingAtom entities.
type ProcessingAtomQuery struct {
	config
	ctx        *QueryContext
	order      []processingatom.OrderOption
	inters     []Interceptor
	predicates []predicate.ProcessingAtom
	withDoc    *SourceDocQuery
	withTraces *AgentTraceQuery
	modifiers  []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ProcessingAtomQuery builder.
func (_q *ProcessingAtomQuery) Where(ps ...predicate.ProcessingAtom) *ProcessingAtomQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ProcessingAtomQuery) Limit(limit int) *ProcessingAtomQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ProcessingAtomQuery) Offset(offset int) *ProcessingAtomQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ProcessingAtomQuery) Unique(unique bool) *ProcessingAtomQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ProcessingAtomQuery) Order(o ...processingatom.OrderOption) *ProcessingAtomQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryDoc chains the current query on the "doc" edge.
func (_q *ProcessingAtomQuery) QueryDoc() *SourceDocQuery {
	query := (&SourceDocClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(processingatom.Table, processingatom.FieldID, selector),
			sqlgraph.To(sourcedoc.Table, sourcedoc.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, processingatom.DocTable, processingatom.DocColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTraces chains the current query on the "traces" edge.
func (_q *ProcessingAtomQuery) QueryTraces() *AgentTraceQuery {
	query := (&AgentTraceClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(processingatom.Table, processingatom.FieldID, selector),
			sqlgraph.To(agenttrace.Table, agenttrace.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, processingatom.TracesTable, processingatom.TracesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ProcessingAtom entity from the query.
// Returns a *NotFoundError when no ProcessingAtom was found.
func (_q *ProcessingAtomQuery) First(ctx context.Context) (*ProcessingAtom, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{processingatom.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ProcessingAtomQuery) FirstX(ctx context.Context) *ProcessingAtom {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ProcessingAtom ID from the query.
// Returns a *NotFoundError when no ProcessingAtom ID was found.
func (_q *ProcessingAtomQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{processingatom.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ProcessingAtomQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ProcessingAtom entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ProcessingAtom entity is found.
// Returns a *NotFoundError when no ProcessingAtom entities are found.
func (_q *ProcessingAtomQuery) Only(ctx context.Context) (*ProcessingAtom, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{processingatom.Label}
	default:
		return nil, &NotSingularError{processingatom.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ProcessingAtomQuery) OnlyX(ctx context.Context) *ProcessingAtom {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ProcessingAtom ID in the query.
// Returns a *NotSingularError when more than one ProcessingAtom ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ProcessingAtomQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{processingatom.Label}
	default:
		err = &NotSingularError{processingatom.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ProcessingAtomQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ProcessingAtoms.
func (_q *ProcessingAtomQuery) All(ctx context.Context) ([]*ProcessingAtom, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ProcessingAtom, *ProcessingAtomQuery]()
	return withInterceptors[[]*ProcessingAtom](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ProcessingAtomQuery) AllX(ctx context.Context) []*ProcessingAtom {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ProcessingAtom IDs.
func (_q *ProcessingAtomQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(processingatom.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ProcessingAtomQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ProcessingAtomQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ProcessingAtomQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ProcessingAtomQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ProcessingAtomQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ProcessingAtomQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ProcessingAtomQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ProcessingAtomQuery) Clone() *ProcessingAtomQuery {
	if _q == nil {
		return nil
	}
	return &ProcessingAtomQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]processingatom.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.ProcessingAtom{}, _q.predicates...),
		withDoc:    _q.withDoc.Clone(),
		withTraces: _q.withTraces.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithDoc tells the query-builder to eager-load the nodes that are connected to
// the "doc" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ProcessingAtomQuery) WithDoc(opts ...func(*SourceDocQuery)) *ProcessingAtomQuery {
	query := (&SourceDocClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDoc = query
	return _q
}

// WithTraces tells the query-builder to eager-load the nodes that are connected to
// the "traces" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ProcessingAtomQuery) WithTraces(opts ...func(*AgentTraceQuery)) *ProcessingAtomQuery {
	query := (&AgentTraceClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTraces = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		DocID int `json:"doc_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ProcessingAtom.Query().
//		GroupBy(processingatom.FieldDocID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ProcessingAtomQuery) GroupBy(field string, fields ...string) *ProcessingAtomGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ProcessingAtomGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = processingatom.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		DocID int `json:"doc_id,omitempty"`
//	}
//
//	client.ProcessingAtom.Query().
//		Select(processingatom.FieldDocID).
//		Scan(ctx, &v)
func (_q *ProcessingAtomQuery) Select(fields ...string) *ProcessingAtomSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ProcessingAtomSelect{ProcessingAtomQuery: _q}
	sbuild.label = processingatom.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ProcessingAtomSelect configured with the given aggregations.
func (_q *ProcessingAtomQuery) Aggregate(fns ...AggregateFunc) *ProcessingAtomSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ProcessingAtomQuery) prepareQuery(ctx context.Context) error {
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
		if !processingatom.ValidColumn(f) {
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

func (_q *ProcessingAtomQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ProcessingAtom, error) {
	var (
		nodes       = []*ProcessingAtom{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withDoc != nil,
			_q.withTraces != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ProcessingAtom).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ProcessingAtom{config: _q.config}
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
	if query := _q.withDoc; query != nil {
		if err := _q.loadDoc(ctx, query, nodes, nil,
			func(n *ProcessingAtom, e *SourceDoc) { n.Edges.Doc = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTraces; query != nil {
		if err := _q.loadTraces(ctx, query, nodes,
			func(n *ProcessingAtom) { n.Edges.Traces = []*AgentTrace{} },
			func(n *ProcessingAtom, e *AgentTrace) { n.Edges.Traces = append(n.Edges.Traces, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ProcessingAtomQuery) loadDoc(ctx context.Context, query *SourceDocQuery, nodes []*ProcessingAtom, init func(*ProcessingAtom), assign func(*ProcessingAtom, *SourceDoc)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*ProcessingAtom)
	for i := range nodes {
		fk := nodes[i].DocID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(sourcedoc.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "doc_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ProcessingAtomQuery) loadTraces(ctx context.Context, query *AgentTraceQuery, nodes []*ProcessingAtom, init func(*ProcessingAtom), assign func(*ProcessingAtom, *AgentTrace)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*ProcessingAtom)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(agenttrace.FieldAtomID)
	}
	query.Where(predicate.AgentTrace(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(processingatom.TracesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AtomID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "atom_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ProcessingAtomQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *ProcessingAtomQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(processingatom.Table, processingatom.Columns, sqlgraph.NewFieldSpec(processingatom.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processingatom.FieldID)
		for i := range fields {
			if fields[i] != processingatom.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withDoc != nil {
			_spec.Node.AddColumnOnce(processingatom.FieldDocID)
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

func (_q *ProcessingAtomQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(processingatom.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = processingatom.Columns
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
func (_q *ProcessingAtomQuery) ForUpdate(opts ...sql.LockOption) *ProcessingAtomQuery {
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
func (_q *ProcessingAtomQuery) ForShare(opts ...sql.LockOption) *ProcessingAtomQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// ProcessingAtomGroupBy is the group-by builder for ProcessingAtom entities.
type ProcessingAtomGroupBy struct {
	selector
	build *ProcessingAtomQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ProcessingAtomGroupBy) Aggregate(fns ...AggregateFunc) *ProcessingAtomGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ProcessingAtomGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ProcessingAtomQuery, *ProcessingAtomGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ProcessingAtomGroupBy) sqlScan(ctx context.Context, root *ProcessingAtomQuery, v any) error {
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

// ProcessingAtomSelect is the builder for selecting fields of ProcessingAtom entities.
type ProcessingAtomSelect struct {
	*ProcessingAtomQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ProcessingAtomSelect) Aggregate(fns ...AggregateFunc) *ProcessingAtomSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ProcessingAtomSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ProcessingAtomQuery, *ProcessingAtomSelect](ctx, _s.ProcessingAtomQuery, _s, _s.inters, v)
}

func (_s *ProcessingAtomSelect) sqlScan(ctx context.Context, root *ProcessingAtomQuery, v any) error {
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
