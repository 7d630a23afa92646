// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/courtrec/archive-migrator/gen/ent/booking"
	"github.com/courtrec/archive-migrator/gen/ent/capturesession"
	"github.com/courtrec/archive-migrator/gen/ent/predicate"
	"github.com/courtrec/archive-migrator/gen/ent/recording"
	"github.com/google/uuid"
)

// CaptureSessionQuery is the builder for querying CaptureSession entities.
type CaptureSessionQuery struct {
	config
	ctx            *QueryContext
	order          []capturesession.OrderOption
	inters         []Interceptor
	predicates     []predicate.CaptureSession
	withBooking    *BookingQuery
	withRecordings *RecordingQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CaptureSessionQuery builder.
func (_q *CaptureSessionQuery) Where(ps ...predicate.CaptureSession) *CaptureSessionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *CaptureSessionQuery) Limit(limit int) *CaptureSessionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *CaptureSessionQuery) Offset(offset int) *CaptureSessionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *CaptureSessionQuery) Unique(unique bool) *CaptureSessionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *CaptureSessionQuery) Order(o ...capturesession.OrderOption) *CaptureSessionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryBooking chains the current query on the "booking" edge.
func (_q *CaptureSessionQuery) QueryBooking() *BookingQuery {
	query := (&BookingClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(capturesession.Table, capturesession.FieldID, selector),
			sqlgraph.To(booking.Table, booking.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, capturesession.BookingTable, capturesession.BookingColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRecordings chains the current query on the "recordings" edge.
func (_q *CaptureSessionQuery) QueryRecordings() *RecordingQuery {
	query := (&RecordingClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(capturesession.Table, capturesession.FieldID, selector),
			sqlgraph.To(recording.Table, recording.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, capturesession.RecordingsTable, capturesession.RecordingsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first CaptureSession entity from the query.
// Returns a *NotFoundError when no CaptureSession was found.
func (_q *CaptureSessionQuery) First(ctx context.Context) (*CaptureSession, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{capturesession.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *CaptureSessionQuery) FirstX(ctx context.Context) *CaptureSession {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CaptureSession ID from the query.
// Returns a *NotFoundError when no CaptureSession ID was found.
func (_q *CaptureSessionQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{capturesession.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *CaptureSessionQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CaptureSession entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CaptureSession entity is found.
// Returns a *NotFoundError when no CaptureSession entities are found.
func (_q *CaptureSessionQuery) Only(ctx context.Context) (*CaptureSession, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{capturesession.Label}
	default:
		return nil, &NotSingularError{capturesession.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *CaptureSessionQuery) OnlyX(ctx context.Context) *CaptureSession {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CaptureSession ID in the query.
// Returns a *NotSingularError when more than one CaptureSession ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *CaptureSessionQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{capturesession.Label}
	default:
		err = &NotSingularError{capturesession.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *CaptureSessionQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CaptureSessions.
func (_q *CaptureSessionQuery) All(ctx context.Context) ([]*CaptureSession, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CaptureSession, *CaptureSessionQuery]()
	return withInterceptors[[]*CaptureSession](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *CaptureSessionQuery) AllX(ctx context.Context) []*CaptureSession {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CaptureSession IDs.
func (_q *CaptureSessionQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(capturesession.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *CaptureSessionQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *CaptureSessionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*CaptureSessionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *CaptureSessionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *CaptureSessionQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *CaptureSessionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CaptureSessionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *CaptureSessionQuery) Clone() *CaptureSessionQuery {
	if _q == nil {
		return nil
	}
	return &CaptureSessionQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]capturesession.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.CaptureSession{}, _q.predicates...),
		withBooking:    _q.withBooking.Clone(),
		withRecordings: _q.withRecordings.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithBooking tells the query-builder to eager-load the nodes that are connected to
// the "booking" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CaptureSessionQuery) WithBooking(opts ...func(*BookingQuery)) *CaptureSessionQuery {
	query := (&BookingClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withBooking = query
	return _q
}

// WithRecordings tells the query-builder to eager-load the nodes that are connected to
// the "recordings" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CaptureSessionQuery) WithRecordings(opts ...func(*RecordingQuery)) *CaptureSessionQuery {
	query := (&RecordingClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRecordings = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		BookingID uuid.UUID `json:"booking_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.CaptureSession.Query().
//		GroupBy(capturesession.FieldBookingID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *CaptureSessionQuery) GroupBy(field string, fields ...string) *CaptureSessionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CaptureSessionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = capturesession.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		BookingID uuid.UUID `json:"booking_id,omitempty"`
//	}
//
//	client.CaptureSession.Query().
//		Select(capturesession.FieldBookingID).
//		Scan(ctx, &v)
func (_q *CaptureSessionQuery) Select(fields ...string) *CaptureSessionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &CaptureSessionSelect{CaptureSessionQuery: _q}
	sbuild.label = capturesession.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CaptureSessionSelect configured with the given aggregations.
func (_q *CaptureSessionQuery) Aggregate(fns ...AggregateFunc) *CaptureSessionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *CaptureSessionQuery) prepareQuery(ctx context.Context) error {
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
		if !capturesession.ValidColumn(f) {
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

func (_q *CaptureSessionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CaptureSession, error) {
	var (
		nodes       = []*CaptureSession{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withBooking != nil,
			_q.withRecordings != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CaptureSession).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CaptureSession{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
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
	if query := _q.withBooking; query != nil {
		if err := _q.loadBooking(ctx, query, nodes, nil,
			func(n *CaptureSession, e *Booking) { n.Edges.Booking = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withRecordings; query != nil {
		if err := _q.loadRecordings(ctx, query, nodes,
			func(n *CaptureSession) { n.Edges.Recordings = []*Recording{} },
			func(n *CaptureSession, e *Recording) { n.Edges.Recordings = append(n.Edges.Recordings, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *CaptureSessionQuery) loadBooking(ctx context.Context, query *BookingQuery, nodes []*CaptureSession, init func(*CaptureSession), assign func(*CaptureSession, *Booking)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*CaptureSession)
	for i := range nodes {
		fk := nodes[i].BookingID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(booking.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "booking_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *CaptureSessionQuery) loadRecordings(ctx context.Context, query *RecordingQuery, nodes []*CaptureSession, init func(*CaptureSession), assign func(*CaptureSession, *Recording)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*CaptureSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(recording.FieldCaptureSessionID)
	}
	query.Where(predicate.Recording(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(capturesession.RecordingsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CaptureSessionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "capture_session_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *CaptureSessionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *CaptureSessionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(capturesession.Table, capturesession.Columns, sqlgraph.NewFieldSpec(capturesession.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, capturesession.FieldID)
		for i := range fields {
			if fields[i] != capturesession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withBooking != nil {
			_spec.Node.AddColumnOnce(capturesession.FieldBookingID)
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

func (_q *CaptureSessionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(capturesession.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = capturesession.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
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

// CaptureSessionGroupBy is the group-by builder for CaptureSession entities.
type CaptureSessionGroupBy struct {
	selector
	build *CaptureSessionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *CaptureSessionGroupBy) Aggregate(fns ...AggregateFunc) *CaptureSessionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *CaptureSessionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CaptureSessionQuery, *CaptureSessionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *CaptureSessionGroupBy) sqlScan(ctx context.Context, root *CaptureSessionQuery, v any) error {
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

// CaptureSessionSelect is the builder for selecting fields of CaptureSession entities.
type CaptureSessionSelect struct {
	*CaptureSessionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *CaptureSessionSelect) Aggregate(fns ...AggregateFunc) *CaptureSessionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *CaptureSessionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CaptureSessionQuery, *CaptureSessionSelect](ctx, _s.CaptureSessionQuery, _s, _s.inters, v)
}

func (_s *CaptureSessionSelect) sqlScan(ctx context.Context, root *CaptureSessionQuery, v any) error {
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
