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
	"github.com/linguaflow/linguaflow/ent/predicate"
	"github.com/linguaflow/linguaflow/ent/processingatom"
	"github.com/linguaflow/linguaflow/ent/projectwork"
	"github.com/linguaflow/linguaflow/ent/sourcedoc"
)

// SourceDocQuery is the builder for querying SourceDoc entities.
type SourceDocQuery struct {
	config
	ctx        *QueryContext
	order      []sourcedoc.OrderOption
	inters     []Interceptor
	predicates []predicate.SourceDoc
	withWork   *ProjectWorkQuery
	withAtoms  *ProcessingAtomQuery
	modifiers  []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SourceDocQuery builder.
func (_q *SourceDocQuery) Where(ps ...predicate.SourceDoc) *SourceDocQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *SourceDocQuery) Limit(limit int) *SourceDocQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *SourceDocQuery) Offset(offset int) *SourceDocQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *SourceDocQuery) Unique(unique bool) *SourceDocQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *SourceDocQuery) Order(o ...sourcedoc.OrderOption) *SourceDocQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryWork chains the current query on the "work" edge.
func (_q *SourceDocQuery) QueryWork() *ProjectWorkQuery {
	query := (&ProjectWorkClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(sourcedoc.Table, sourcedoc.FieldID, selector),
			sqlgraph.To(projectwork.Table, projectwork.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sourcedoc.WorkTable, sourcedoc.WorkColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAtoms chains the current query on the "atoms" edge.
func (_q *SourceDocQuery) QueryAtoms() *ProcessingAtomQuery {
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
			sqlgraph.From(sourcedoc.Table, sourcedoc.FieldID, selector),
			sqlgraph.To(processingatom.Table, processingatom.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, sourcedoc.AtomsTable, sourcedoc.AtomsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first SourceDoc entity from the query.
// Returns a *NotFoundError when no SourceDoc was found.
func (_q *SourceDocQuery) First(ctx context.Context) (*SourceDoc, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{sourcedoc.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *SourceDocQuery) FirstX(ctx context.Context) *SourceDoc {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first SourceDoc ID from the query.
// Returns a *NotFoundError when no SourceDoc ID was found.
func (_q *SourceDocQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{sourcedoc.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *SourceDocQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single SourceDoc entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one SourceDoc entity is found.
// Returns a *NotFoundError when no SourceDoc entities are found.
func (_q *SourceDocQuery) Only(ctx context.Context) (*SourceDoc, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{sourcedoc.Label}
	default:
		return nil, &NotSingularError{sourcedoc.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *SourceDocQuery) OnlyX(ctx context.Context) *SourceDoc {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only SourceDoc ID in the query.
// Returns a *NotSingularError when more than one SourceDoc ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *SourceDocQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{sourcedoc.Label}
	default:
		err = &NotSingularError{sourcedoc.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *SourceDocQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of SourceDocs.
func (_q *SourceDocQuery) All(ctx context.Context) ([]*SourceDoc, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*SourceDoc, *SourceDocQuery]()
	return withInterceptors[[]*SourceDoc](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *SourceDocQuery) AllX(ctx context.Context) []*SourceDoc {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of SourceDoc IDs.
func (_q *SourceDocQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(sourcedoc.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *SourceDocQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *SourceDocQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*SourceDocQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *SourceDocQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *SourceDocQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *SourceDocQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SourceDocQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *SourceDocQuery) Clone() *SourceDocQuery {
	if _q == nil {
		return nil
	}
	return &SourceDocQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]sourcedoc.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.SourceDoc{}, _q.predicates...),
		withWork:   _q.withWork.Clone(),
		withAtoms:  _q.withAtoms.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithWork tells the query-builder to eager-load the nodes that are connected to
// the "work" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SourceDocQuery) WithWork(opts ...func(*ProjectWorkQuery)) *SourceDocQuery {
	query := (&ProjectWorkClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withWork = query
	return _q
}

// WithAtoms tells the query-builder to eager-load the nodes that are connected to
// the "atoms" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SourceDocQuery) WithAtoms(opts ...func(*ProcessingAtomQuery)) *SourceDocQuery {
	query := (&ProcessingAtomClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAtoms = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		WorkID int `json:"work_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.SourceDoc.Query().
//		GroupBy(sourcedoc.FieldWorkID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *SourceDocQuery) GroupBy(field string, fields ...string) *SourceDocGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SourceDocGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = sourcedoc.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		WorkID int `json:"work_id,omitempty"`
//	}
//
//	client.SourceDoc.Query().
//		Select(sourcedoc.FieldWorkID).
//		Scan(ctx, &v)
func (_q *SourceDocQuery) Select(fields ...string) *SourceDocSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &SourceDocSelect{SourceDocQuery: _q}
	sbuild.label = sourcedoc.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SourceDocSelect configured with the given aggregations.
func (_q *SourceDocQuery) Aggregate(fns ...AggregateFunc) *SourceDocSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *SourceDocQuery) prepareQuery(ctx context.Context) error {
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
		if !sourcedoc.ValidColumn(f) {
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

func (_q *SourceDocQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*SourceDoc, error) {
	var (
		nodes       = []*SourceDoc{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withWork != nil,
			_q.withAtoms != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*SourceDoc).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &SourceDoc{config: _q.config}
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
	if query := _q.withWork; query != nil {
		if err := _q.loadWork(ctx, query, nodes, nil,
			func(n *SourceDoc, e *ProjectWork) { n.Edges.Work = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAtoms; query != nil {
		if err := _q.loadAtoms(ctx, query, nodes,
			func(n *SourceDoc) { n.Edges.Atoms = []*ProcessingAtom{} },
			func(n *SourceDoc, e *ProcessingAtom) { n.Edges.Atoms = append(n.Edges.Atoms, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *SourceDocQuery) loadWork(ctx context.Context, query *ProjectWorkQuery, nodes []*SourceDoc, init func(*SourceDoc), assign func(*SourceDoc, *ProjectWork)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*SourceDoc)
	for i := range nodes {
		fk := nodes[i].WorkID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(projectwork.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "work_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *SourceDocQuery) loadAtoms(ctx context.Context, query *ProcessingAtomQuery, nodes []*SourceDoc, init func(*SourceDoc), assign func(*SourceDoc, *ProcessingAtom)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*SourceDoc)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(processingatom.FieldDocID)
	}
	query.Where(predicate.ProcessingAtom(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(sourcedoc.AtomsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DocID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "doc_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *SourceDocQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *SourceDocQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(sourcedoc.Table, sourcedoc.Columns, sqlgraph.NewFieldSpec(sourcedoc.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sourcedoc.FieldID)
		for i := range fields {
			if fields[i] != sourcedoc.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withWork != nil {
			_spec.Node.AddColumnOnce(sourcedoc.FieldWorkID)
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

func (_q *SourceDocQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(sourcedoc.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = sourcedoc.Columns
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
func (_q *SourceDocQuery) ForUpdate(opts ...sql.LockOption) *SourceDocQuery {
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
func (_q *SourceDocQuery) ForShare(opts ...sql.LockOption) *SourceDocQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// SourceDocGroupBy is the group-by builder for SourceDoc entities.
type SourceDocGroupBy struct {
	selector
	build *SourceDocQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *SourceDocGroupBy) Aggregate(fns ...AggregateFunc) *SourceDocGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *SourceDocGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SourceDocQuery, *SourceDocGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *SourceDocGroupBy) sqlScan(ctx context.Context, root *SourceDocQuery, v any) error {
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

// SourceDocSelect is the builder for selecting fields of SourceDoc entities.
type SourceDocSelect struct {
	*SourceDocQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *SourceDocSelect) Aggregate(fns ...AggregateFunc) *SourceDocSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *SourceDocSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SourceDocQuery, *SourceDocSelect](ctx, _s.SourceDocQuery, _s, _s.inters, v)
}

func (_s *SourceDocSelect) sqlScan(ctx context.Context, root *SourceDocQuery, v any) error {
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
