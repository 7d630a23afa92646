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
	"github.com/courtrec/archive-migrator/gen/ent/booking"
	"github.com/courtrec/archive-migrator/gen/ent/capturesession"
	"github.com/courtrec/archive-migrator/gen/ent/predicate"
	"github.com/courtrec/archive-migrator/gen/ent/recording"
	"github.com/google/uuid"
)

// CaptureSessionUpdate is the builder for updating CaptureSession entities.
type CaptureSessionUpdate struct {
	config
	hooks    []Hook
	mutation *CaptureSessionMutation
}

// Where appends a list predicates to the CaptureSessionUpdate builder.
func (_u *CaptureSessionUpdate) Where(ps ...predicate.CaptureSession) *CaptureSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBookingID sets the "booking_id" field.
func (_u *CaptureSessionUpdate) SetBookingID(v uuid.UUID) *CaptureSessionUpdate {
	_u.mutation.SetBookingID(v)
	return _u
}

// SetNillableBookingID sets the "booking_id" field if the given value is not nil.
func (_u *CaptureSessionUpdate) SetNillableBookingID(v *uuid.UUID) *CaptureSessionUpdate {
	if v != nil {
		_u.SetBookingID(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *CaptureSessionUpdate) SetStartedAt(v time.Time) *CaptureSessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *CaptureSessionUpdate) SetNillableStartedAt(v *time.Time) *CaptureSessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *CaptureSessionUpdate) SetFinishedAt(v time.Time) *CaptureSessionUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *CaptureSessionUpdate) SetNillableFinishedAt(v *time.Time) *CaptureSessionUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *CaptureSessionUpdate) ClearFinishedAt() *CaptureSessionUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStartedBy sets the "started_by" field.
func (_u *CaptureSessionUpdate) SetStartedBy(v uuid.UUID) *CaptureSessionUpdate {
	_u.mutation.SetStartedBy(v)
	return _u
}

// SetNillableStartedBy sets the "started_by" field if the given value is not nil.
func (_u *CaptureSessionUpdate) SetNillableStartedBy(v *uuid.UUID) *CaptureSessionUpdate {
	if v != nil {
		_u.SetStartedBy(*v)
	}
	return _u
}

// ClearStartedBy clears the value of the "started_by" field.
func (_u *CaptureSessionUpdate) ClearStartedBy() *CaptureSessionUpdate {
	_u.mutation.ClearStartedBy()
	return _u
}

// SetFinishedBy sets the "finished_by" field.
func (_u *CaptureSessionUpdate) SetFinishedBy(v uuid.UUID) *CaptureSessionUpdate {
	_u.mutation.SetFinishedBy(v)
	return _u
}

// SetNillableFinishedBy sets the "finished_by" field if the given value is not nil.
func (_u *CaptureSessionUpdate) SetNillableFinishedBy(v *uuid.UUID) *CaptureSessionUpdate {
	if v != nil {
		_u.SetFinishedBy(*v)
	}
	return _u
}

// ClearFinishedBy clears the value of the "finished_by" field.
func (_u *CaptureSessionUpdate) ClearFinishedBy() *CaptureSessionUpdate {
	_u.mutation.ClearFinishedBy()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CaptureSessionUpdate) SetStatus(v string) *CaptureSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CaptureSessionUpdate) SetNillableStatus(v *string) *CaptureSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOrigin sets the "origin" field.
func (_u *CaptureSessionUpdate) SetOrigin(v string) *CaptureSessionUpdate {
	_u.mutation.SetOrigin(v)
	return _u
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_u *CaptureSessionUpdate) SetNillableOrigin(v *string) *CaptureSessionUpdate {
	if v != nil {
		_u.SetOrigin(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CaptureSessionUpdate) SetCreatedAt(v time.Time) *CaptureSessionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CaptureSessionUpdate) SetNillableCreatedAt(v *time.Time) *CaptureSessionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetBooking sets the "booking" edge to the Booking entity.
func (_u *CaptureSessionUpdate) SetBooking(v *Booking) *CaptureSessionUpdate {
	return _u.SetBookingID(v.ID)
}

// AddRecordingIDs adds the "recordings" edge to the Recording entity by IDs.
func (_u *CaptureSessionUpdate) AddRecordingIDs(ids ...uuid.UUID) *CaptureSessionUpdate {
	_u.mutation.AddRecordingIDs(ids...)
	return _u
}

// AddRecordings adds the "recordings" edges to the Recording entity.
func (_u *CaptureSessionUpdate) AddRecordings(v ...*Recording) *CaptureSessionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecordingIDs(ids...)
}

// Mutation returns the CaptureSessionMutation object of the builder.
func (_u *CaptureSessionUpdate) Mutation() *CaptureSessionMutation {
	return _u.mutation
}

// ClearBooking clears the "booking" edge to the Booking entity.
func (_u *CaptureSessionUpdate) ClearBooking() *CaptureSessionUpdate {
	_u.mutation.ClearBooking()
	return _u
}

// ClearRecordings clears all "recordings" edges to the Recording entity.
func (_u *CaptureSessionUpdate) ClearRecordings() *CaptureSessionUpdate {
	_u.mutation.ClearRecordings()
	return _u
}

// RemoveRecordingIDs removes the "recordings" edge to Recording entities by IDs.
func (_u *CaptureSessionUpdate) RemoveRecordingIDs(ids ...uuid.UUID) *CaptureSessionUpdate {
	_u.mutation.RemoveRecordingIDs(ids...)
	return _u
}

// RemoveRecordings removes "recordings" edges to Recording entities.
func (_u *CaptureSessionUpdate) RemoveRecordings(v ...*Recording) *CaptureSessionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecordingIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CaptureSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaptureSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CaptureSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaptureSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CaptureSessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := capturesession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CaptureSession.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Origin(); ok {
		if err := capturesession.OriginValidator(v); err != nil {
			return &ValidationError{Name: "origin", err: fmt.Errorf(`ent: validator failed for field "CaptureSession.origin": %w`, err)}
		}
	}
	if _u.mutation.BookingCleared() && len(_u.mutation.BookingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CaptureSession.booking"`)
	}
	return nil
}

func (_u *CaptureSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(capturesession.Table, capturesession.Columns, sqlgraph.NewFieldSpec(capturesession.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(capturesession.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(capturesession.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(capturesession.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedBy(); ok {
		_spec.SetField(capturesession.FieldStartedBy, field.TypeUUID, value)
	}
	if _u.mutation.StartedByCleared() {
		_spec.ClearField(capturesession.FieldStartedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.FinishedBy(); ok {
		_spec.SetField(capturesession.FieldFinishedBy, field.TypeUUID, value)
	}
	if _u.mutation.FinishedByCleared() {
		_spec.ClearField(capturesession.FieldFinishedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(capturesession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Origin(); ok {
		_spec.SetField(capturesession.FieldOrigin, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(capturesession.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.BookingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   capturesession.BookingTable,
			Columns: []string{capturesession.BookingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(booking.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BookingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   capturesession.BookingTable,
			Columns: []string{capturesession.BookingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(booking.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RecordingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   capturesession.RecordingsTable,
			Columns: []string{capturesession.RecordingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recording.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecordingsIDs(); len(nodes) > 0 && !_u.mutation.RecordingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   capturesession.RecordingsTable,
			Columns: []string{capturesession.RecordingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recording.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecordingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   capturesession.RecordingsTable,
			Columns: []string{capturesession.RecordingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recording.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{capturesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CaptureSessionUpdateOne is the builder for updating a single CaptureSession entity.
type CaptureSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CaptureSessionMutation
}

// SetBookingID sets the "booking_id" field.
func (_u *CaptureSessionUpdateOne) SetBookingID(v uuid.UUID) *CaptureSessionUpdateOne {
	_u.mutation.SetBookingID(v)
	return _u
}

// SetNillableBookingID sets the "booking_id" field if the given value is not nil.
func (_u *CaptureSessionUpdateOne) SetNillableBookingID(v *uuid.UUID) *CaptureSessionUpdateOne {
	if v != nil {
		_u.SetBookingID(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *CaptureSessionUpdateOne) SetStartedAt(v time.Time) *CaptureSessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *CaptureSessionUpdateOne) SetNillableStartedAt(v *time.Time) *CaptureSessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *CaptureSessionUpdateOne) SetFinishedAt(v time.Time) *CaptureSessionUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *CaptureSessionUpdateOne) SetNillableFinishedAt(v *time.Time) *CaptureSessionUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *CaptureSessionUpdateOne) ClearFinishedAt() *CaptureSessionUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStartedBy sets the "started_by" field.
func (_u *CaptureSessionUpdateOne) SetStartedBy(v uuid.UUID) *CaptureSessionUpdateOne {
	_u.mutation.SetStartedBy(v)
	return _u
}

// SetNillableStartedBy sets the "started_by" field if the given value is not nil.
func (_u *CaptureSessionUpdateOne) SetNillableStartedBy(v *uuid.UUID) *CaptureSessionUpdateOne {
	if v != nil {
		_u.SetStartedBy(*v)
	}
	return _u
}

// ClearStartedBy clears the value of the "started_by" field.
func (_u *CaptureSessionUpdateOne) ClearStartedBy() *CaptureSessionUpdateOne {
	_u.mutation.ClearStartedBy()
	return _u
}

// SetFinishedBy sets the "finished_by" field.
func (_u *CaptureSessionUpdateOne) SetFinishedBy(v uuid.UUID) *CaptureSessionUpdateOne {
	_u.mutation.SetFinishedBy(v)
	return _u
}

// SetNillableFinishedBy sets the "finished_by" field if the given value is not nil.
func (_u *CaptureSessionUpdateOne) SetNillableFinishedBy(v *uuid.UUID) *CaptureSessionUpdateOne {
	if v != nil {
		_u.SetFinishedBy(*v)
	}
	return _u
}

// ClearFinishedBy clears the value of the "finished_by" field.
func (_u *CaptureSessionUpdateOne) ClearFinishedBy() *CaptureSessionUpdateOne {
	_u.mutation.ClearFinishedBy()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CaptureSessionUpdateOne) SetStatus(v string) *CaptureSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CaptureSessionUpdateOne) SetNillableStatus(v *string) *CaptureSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOrigin sets the "origin" field.
func (_u *CaptureSessionUpdateOne) SetOrigin(v string) *CaptureSessionUpdateOne {
	_u.mutation.SetOrigin(v)
	return _u
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_u *CaptureSessionUpdateOne) SetNillableOrigin(v *string) *CaptureSessionUpdateOne {
	if v != nil {
		_u.SetOrigin(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CaptureSessionUpdateOne) SetCreatedAt(v time.Time) *CaptureSessionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CaptureSessionUpdateOne) SetNillableCreatedAt(v *time.Time) *CaptureSessionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetBooking sets the "booking" edge to the Booking entity.
func (_u *CaptureSessionUpdateOne) SetBooking(v *Booking) *CaptureSessionUpdateOne {
	return _u.SetBookingID(v.ID)
}

// AddRecordingIDs adds the "recordings" edge to the Recording entity by IDs.
func (_u *CaptureSessionUpdateOne) AddRecordingIDs(ids ...uuid.UUID) *CaptureSessionUpdateOne {
	_u.mutation.AddRecordingIDs(ids...)
	return _u
}

// AddRecordings adds the "recordings" edges to the Recording entity.
func (_u *CaptureSessionUpdateOne) AddRecordings(v ...*Recording) *CaptureSessionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecordingIDs(ids...)
}

// Mutation returns the CaptureSessionMutation object of the builder.
func (_u *CaptureSessionUpdateOne) Mutation() *CaptureSessionMutation {
	return _u.mutation
}

// ClearBooking clears the "booking" edge to the Booking entity.
func (_u *CaptureSessionUpdateOne) ClearBooking() *CaptureSessionUpdateOne {
	_u.mutation.ClearBooking()
	return _u
}

// ClearRecordings clears all "recordings" edges to the Recording entity.
func (_u *CaptureSessionUpdateOne) ClearRecordings() *CaptureSessionUpdateOne {
	_u.mutation.ClearRecordings()
	return _u
}

// RemoveRecordingIDs removes the "recordings" edge to Recording entities by IDs.
func (_u *CaptureSessionUpdateOne) RemoveRecordingIDs(ids ...uuid.UUID) *CaptureSessionUpdateOne {
	_u.mutation.RemoveRecordingIDs(ids...)
	return _u
}

// RemoveRecordings removes "recordings" edges to Recording entities.
func (_u *CaptureSessionUpdateOne) RemoveRecordings(v ...*Recording) *CaptureSessionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecordingIDs(ids...)
}

// Where appends a list predicates to the CaptureSessionUpdate builder.
func (_u *CaptureSessionUpdateOne) Where(ps ...predicate.CaptureSession) *CaptureSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CaptureSessionUpdateOne) Select(field string, fields ...string) *CaptureSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CaptureSession entity.
func (_u *CaptureSessionUpdateOne) Save(ctx context.Context) (*CaptureSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaptureSessionUpdateOne) SaveX(ctx context.Context) *CaptureSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CaptureSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaptureSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CaptureSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := capturesession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CaptureSession.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Origin(); ok {
		if err := capturesession.OriginValidator(v); err != nil {
			return &ValidationError{Name: "origin", err: fmt.Errorf(`ent: validator failed for field "CaptureSession.origin": %w`, err)}
		}
	}
	if _u.mutation.BookingCleared() && len(_u.mutation.BookingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CaptureSession.booking"`)
	}
	return nil
}

func (_u *CaptureSessionUpdateOne) sqlSave(ctx context.Context) (_node *CaptureSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(capturesession.Table, capturesession.Columns, sqlgraph.NewFieldSpec(capturesession.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CaptureSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, capturesession.FieldID)
		for _, f := range fields {
			if !capturesession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != capturesession.FieldID {
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
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(capturesession.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(capturesession.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(capturesession.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedBy(); ok {
		_spec.SetField(capturesession.FieldStartedBy, field.TypeUUID, value)
	}
	if _u.mutation.StartedByCleared() {
		_spec.ClearField(capturesession.FieldStartedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.FinishedBy(); ok {
		_spec.SetField(capturesession.FieldFinishedBy, field.TypeUUID, value)
	}
	if _u.mutation.FinishedByCleared() {
		_spec.ClearField(capturesession.FieldFinishedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(capturesession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Origin(); ok {
		_spec.SetField(capturesession.FieldOrigin, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(capturesession.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.BookingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   capturesession.BookingTable,
			Columns: []string{capturesession.BookingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(booking.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BookingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   capturesession.BookingTable,
			Columns: []string{capturesession.BookingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(booking.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RecordingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   capturesession.RecordingsTable,
			Columns: []string{capturesession.RecordingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recording.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecordingsIDs(); len(nodes) > 0 && !_u.mutation.RecordingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   capturesession.RecordingsTable,
			Columns: []string{capturesession.RecordingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recording.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecordingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   capturesession.RecordingsTable,
			Columns: []string{capturesession.RecordingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recording.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CaptureSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{capturesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
