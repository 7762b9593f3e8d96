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
	"github.com/linguaflow/linguaflow/ent/knowledgebase"
	"github.com/linguaflow/linguaflow/ent/predicate"
	"github.com/linguaflow/linguaflow/ent/projectwork"
	"github.com/linguaflow/linguaflow/ent/sourcedoc"
	"github.com/linguaflow/linguaflow/ent/translationrun"
)

// ProjectWorkQuery is the builder for querying ProjectWork entities.
type ProjectWorkQuery struct {
	config
	ctx                  *QueryContext
	order                []projectwork.OrderOption
	inters               []Interceptor
	predicates           []predicate.ProjectWork
	withDocs             *SourceDocQuery
	withKnowledgeEntries *KnowledgeBaseQuery
	withRuns             *TranslationRunQuery
	modifiers            []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ProjectWorkQuery builder.
func (_q *ProjectWorkQuery) Where(ps ...predicate.ProjectWork) *ProjectWorkQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ProjectWorkQuery) Limit(limit int) *ProjectWorkQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ProjectWorkQuery) Offset(offset int) *ProjectWorkQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ProjectWorkQuery) Unique(unique bool) *ProjectWorkQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ProjectWorkQuery) Order(o ...projectwork.OrderOption) *ProjectWorkQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryDocs chains the current query on the "docs" edge.
func (_q *ProjectWorkQuery) QueryDocs() *SourceDocQuery {
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
			sqlgraph.From(projectwork.Table, projectwork.FieldID, selector),
			sqlgraph.To(sourcedoc.Table, sourcedoc.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, projectwork.DocsTable, projectwork.DocsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryKnowledgeEntries chains the current query on the "knowledge_entries" edge.
func (_q *ProjectWorkQuery) QueryKnowledgeEntries() *KnowledgeBaseQuery {
	query := (&KnowledgeBaseClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(projectwork.Table, projectwork.FieldID, selector),
			sqlgraph.To(knowledgebase.Table, knowledgebase.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, projectwork.KnowledgeEntriesTable, projectwork.KnowledgeEntriesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRuns chains the current query on the "runs" edge.
func (_q *ProjectWorkQuery) QueryRuns() *TranslationRunQuery {
	query := (&TranslationRunClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(projectwork.Table, projectwork.FieldID, selector),
			sqlgraph.To(translationrun.Table, translationrun.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, projectwork.RunsTable, projectwork.RunsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ProjectWork entity from the query.
// Returns a *NotFoundError when no ProjectWork was found.
func (_q *ProjectWorkQuery) First(ctx context.Context) (*ProjectWork, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{projectwork.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ProjectWorkQuery) FirstX(ctx context.Context) *ProjectWork {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ProjectWork ID from the query.
// Returns a *NotFoundError when no ProjectWork ID was found.
func (_q *ProjectWorkQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{projectwork.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ProjectWorkQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ProjectWork entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ProjectWork entity is found.
// Returns a *NotFoundError when no ProjectWork entities are found.
func (_q *ProjectWorkQuery) Only(ctx context.Context) (*ProjectWork, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{projectwork.Label}
	default:
		return nil, &NotSingularError{projectwork.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ProjectWorkQuery) OnlyX(ctx context.Context) *ProjectWork {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ProjectWork ID in the query.
// Returns a *NotSingularError when more than one ProjectWork ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ProjectWorkQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{projectwork.Label}
	default:
		err = &NotSingularError{projectwork.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ProjectWorkQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ProjectWorks.
func (_q *ProjectWorkQuery) All(ctx context.Context) ([]*ProjectWork, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ProjectWork, *ProjectWorkQuery]()
	return withInterceptors[[]*ProjectWork](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ProjectWorkQuery) AllX(ctx context.Context) []*ProjectWork {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ProjectWork IDs.
func (_q *ProjectWorkQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(projectwork.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ProjectWorkQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ProjectWorkQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ProjectWorkQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ProjectWorkQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ProjectWorkQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ProjectWorkQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ProjectWorkQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ProjectWorkQuery) Clone() *ProjectWorkQuery {
	if _q == nil {
		return nil
	}
	return &ProjectWorkQuery{
		config:               _q.config,
		ctx:                  _q.ctx.Clone(),
		order:                append([]projectwork.OrderOption{}, _q.order...),
		inters:               append([]Interceptor{}, _q.inters...),
		predicates:           append([]predicate.ProjectWork{}, _q.predicates...),
		withDocs:             _q.withDocs.Clone(),
		withKnowledgeEntries: _q.withKnowledgeEntries.Clone(),
		withRuns:             _q.withRuns.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithDocs tells the query-builder to eager-load the nodes that are connected to
// the "docs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ProjectWorkQuery) WithDocs(opts ...func(*SourceDocQuery)) *ProjectWorkQuery {
	query := (&SourceDocClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDocs = query
	return _q
}

// WithKnowledgeEntries tells the query-builder to eager-load the nodes that are connected to
// the "knowledge_entries" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ProjectWorkQuery) WithKnowledgeEntries(opts ...func(*KnowledgeBaseQuery)) *ProjectWorkQuery {
	query := (&KnowledgeBaseClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withKnowledgeEntries = query
	return _q
}

// WithRuns tells the query-builder to eager-load the nodes that are connected to
// the "runs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ProjectWorkQuery) WithRuns(opts ...func(*TranslationRunQuery)) *ProjectWorkQuery {
	query := (&TranslationRunClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRuns = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		WorkName string `json:"work_name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ProjectWork.Query().
//		GroupBy(projectwork.FieldWorkName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ProjectWorkQuery) GroupBy(field string, fields ...string) *ProjectWorkGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ProjectWorkGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = projectwork.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		WorkName string `json:"work_name,omitempty"`
//	}
//
//	client.ProjectWork.Query().
//		Select(projectwork.FieldWorkName).
//		Scan(ctx, &v)
func (_q *ProjectWorkQuery) Select(fields ...string) *ProjectWorkSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ProjectWorkSelect{ProjectWorkQuery: _q}
	sbuild.label = projectwork.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ProjectWorkSelect configured with the given aggregations.
func (_q *ProjectWorkQuery) Aggregate(fns ...AggregateFunc) *ProjectWorkSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ProjectWorkQuery) prepareQuery(ctx context.Context) error {
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
		if !projectwork.ValidColumn(f) {
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

func (_q *ProjectWorkQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ProjectWork, error) {
	var (
		nodes       = []*ProjectWork{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withDocs != nil,
			_q.withKnowledgeEntries != nil,
			_q.withRuns != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ProjectWork).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ProjectWork{config: _q.config}
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
	if query := _q.withDocs; query != nil {
		if err := _q.loadDocs(ctx, query, nodes,
			func(n *ProjectWork) { n.Edges.Docs = []*SourceDoc{} },
			func(n *ProjectWork, e *SourceDoc) { n.Edges.Docs = append(n.Edges.Docs, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withKnowledgeEntries; query != nil {
		if err := _q.loadKnowledgeEntries(ctx, query, nodes,
			func(n *ProjectWork) { n.Edges.KnowledgeEntries = []*KnowledgeBase{} },
			func(n *ProjectWork, e *KnowledgeBase) { n.Edges.KnowledgeEntries = append(n.Edges.KnowledgeEntries, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withRuns; query != nil {
		if err := _q.loadRuns(ctx, query, nodes,
			func(n *ProjectWork) { n.Edges.Runs = []*TranslationRun{} },
			func(n *ProjectWork, e *TranslationRun) { n.Edges.Runs = append(n.Edges.Runs, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ProjectWorkQuery) loadDocs(ctx context.Context, query *SourceDocQuery, nodes []*ProjectWork, init func(*ProjectWork), assign func(*ProjectWork, *SourceDoc)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*ProjectWork)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(sourcedoc.FieldWorkID)
	}
	query.Where(predicate.SourceDoc(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(projectwork.DocsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.WorkID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "work_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ProjectWorkQuery) loadKnowledgeEntries(ctx context.Context, query *KnowledgeBaseQuery, nodes []*ProjectWork, init func(*ProjectWork), assign func(*ProjectWork, *KnowledgeBase)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*ProjectWork)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(knowledgebase.FieldWorkID)
	}
	query.Where(predicate.KnowledgeBase(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(projectwork.KnowledgeEntriesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.WorkID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "work_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ProjectWorkQuery) loadRuns(ctx context.Context, query *TranslationRunQuery, nodes []*ProjectWork, init func(*ProjectWork), assign func(*ProjectWork, *TranslationRun)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*ProjectWork)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(translationrun.FieldWorkID)
	}
	query.Where(predicate.TranslationRun(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(projectwork.RunsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.WorkID
		if fk == nil {
			return fmt.Errorf(`foreign-key "work_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "work_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ProjectWorkQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *ProjectWorkQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(projectwork.Table, projectwork.Columns, sqlgraph.NewFieldSpec(projectwork.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, projectwork.FieldID)
		for i := range fields {
			if fields[i] != projectwork.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *ProjectWorkQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(projectwork.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = projectwork.Columns
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
func (_q *ProjectWorkQuery) ForUpdate(opts ...sql.LockOption) *ProjectWorkQuery {
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
func (_q *ProjectWorkQuery) ForShare(opts ...sql.LockOption) *ProjectWorkQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// ProjectWorkGroupBy is the group-by builder for ProjectWork entities.
type ProjectWorkGroupBy struct {
	selector
	build *ProjectWorkQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ProjectWorkGroupBy) Aggregate(fns ...AggregateFunc) *ProjectWorkGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ProjectWorkGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ProjectWorkQuery, *ProjectWorkGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ProjectWorkGroupBy) sqlScan(ctx context.Context, root *ProjectWorkQuery, v any) error {
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

// ProjectWorkSelect is the builder for selecting fields of ProjectWork entities.
type ProjectWorkSelect struct {
	*ProjectWorkQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ProjectWorkSelect) Aggregate(fns ...AggregateFunc) *ProjectWorkSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ProjectWorkSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ProjectWorkQuery, *ProjectWorkSelect](ctx, _s.ProjectWorkQuery, _s, _s.inters, v)
}

func (_s *ProjectWorkSelect) sqlScan(ctx context.Context, root *ProjectWorkQuery, v any) error {
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
