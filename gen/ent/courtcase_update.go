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
	"github.com/courtrec/archive-migrator/gen/ent/court"
	"github.com/courtrec/archive-migrator/gen/ent/courtcase"
	"github.com/courtrec/archive-migrator/gen/ent/participant"
	"github.com/courtrec/archive-migrator/gen/ent/predicate"
	"github.com/google/uuid"
)

// CourtCaseUpdate is the builder for updating CourtCase entities.
type CourtCaseUpdate struct {
	config
	hooks    []Hook
	mutation *CourtCaseMutation
}

// Where appends a list predicates to the CourtCaseUpdate builder.
func (_u *CourtCaseUpdate) Where(ps ...predicate.CourtCase) *CourtCaseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCourtID sets the "court_id" field.
func (_u *CourtCaseUpdate) SetCourtID(v uuid.UUID) *CourtCaseUpdate {
	_u.mutation.SetCourtID(v)
	return _u
}

// SetNillableCourtID sets the "court_id" field if the given value is not nil.
func (_u *CourtCaseUpdate) SetNillableCourtID(v *uuid.UUID) *CourtCaseUpdate {
	if v != nil {
		_u.SetCourtID(*v)
	}
	return _u
}

// SetReference sets the "reference" field.
func (_u *CourtCaseUpdate) SetReference(v string) *CourtCaseUpdate {
	_u.mutation.SetReference(v)
	return _u
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_u *CourtCaseUpdate) SetNillableReference(v *string) *CourtCaseUpdate {
	if v != nil {
		_u.SetReference(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *CourtCaseUpdate) SetState(v string) *CourtCaseUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *CourtCaseUpdate) SetNillableState(v *string) *CourtCaseUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetOrigin sets the "origin" field.
func (_u *CourtCaseUpdate) SetOrigin(v string) *CourtCaseUpdate {
	_u.mutation.SetOrigin(v)
	return _u
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_u *CourtCaseUpdate) SetNillableOrigin(v *string) *CourtCaseUpdate {
	if v != nil {
		_u.SetOrigin(*v)
	}
	return _u
}

// SetTest sets the "test" field.
func (_u *CourtCaseUpdate) SetTest(v bool) *CourtCaseUpdate {
	_u.mutation.SetTest(v)
	return _u
}

// SetNillableTest sets the "test" field if the given value is not nil.
func (_u *CourtCaseUpdate) SetNillableTest(v *bool) *CourtCaseUpdate {
	if v != nil {
		_u.SetTest(*v)
	}
	return _u
}

// SetClosedAt sets the "closed_at" field.
func (_u *CourtCaseUpdate) SetClosedAt(v time.Time) *CourtCaseUpdate {
	_u.mutation.SetClosedAt(v)
	return _u
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (_u *CourtCaseUpdate) SetNillableClosedAt(v *time.Time) *CourtCaseUpdate {
	if v != nil {
		_u.SetClosedAt(*v)
	}
	return _u
}

// ClearClosedAt clears the value of the "closed_at" field.
func (_u *CourtCaseUpdate) ClearClosedAt() *CourtCaseUpdate {
	_u.mutation.ClearClosedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CourtCaseUpdate) SetCreatedAt(v time.Time) *CourtCaseUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CourtCaseUpdate) SetNillableCreatedAt(v *time.Time) *CourtCaseUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CourtCaseUpdate) SetUpdatedAt(v time.Time) *CourtCaseUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCourt sets the "court" edge to the Court entity.
func (_u *CourtCaseUpdate) SetCourt(v *Court) *CourtCaseUpdate {
	return _u.SetCourtID(v.ID)
}

// AddParticipantIDs adds the "participants" edge to the Participant entity by IDs.
func (_u *CourtCaseUpdate) AddParticipantIDs(ids ...uuid.UUID) *CourtCaseUpdate {
	_u.mutation.AddParticipantIDs(ids...)
	return _u
}

// AddParticipants adds the "participants" edges to the Participant entity.
func (_u *CourtCaseUpdate) AddParticipants(v ...*Participant) *CourtCaseUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddParticipantIDs(ids...)
}

// AddBookingIDs adds the "bookings" edge to the Booking entity by IDs.
func (_u *CourtCaseUpdate) AddBookingIDs(ids ...uuid.UUID) *CourtCaseUpdate {
	_u.mutation.AddBookingIDs(ids...)
	return _u
}

// AddBookings adds the "bookings" edges to the Booking entity.
func (_u *CourtCaseUpdate) AddBookings(v ...*Booking) *CourtCaseUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBookingIDs(ids...)
}

// Mutation returns the CourtCaseMutation object of the builder.
func (_u *CourtCaseUpdate) Mutation() *CourtCaseMutation {
	return _u.mutation
}

// ClearCourt clears the "court" edge to the Court entity.
func (_u *CourtCaseUpdate) ClearCourt() *CourtCaseUpdate {
	_u.mutation.ClearCourt()
	return _u
}

// ClearParticipants clears all "participants" edges to the Participant entity.
func (_u *CourtCaseUpdate) ClearParticipants() *CourtCaseUpdate {
	_u.mutation.ClearParticipants()
	return _u
}

// RemoveParticipantIDs removes the "participants" edge to Participant entities by IDs.
func (_u *CourtCaseUpdate) RemoveParticipantIDs(ids ...uuid.UUID) *CourtCaseUpdate {
	_u.mutation.RemoveParticipantIDs(ids...)
	return _u
}

// RemoveParticipants removes "participants" edges to Participant entities.
func (_u *CourtCaseUpdate) RemoveParticipants(v ...*Participant) *CourtCaseUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveParticipantIDs(ids...)
}

// ClearBookings clears all "bookings" edges to the Booking entity.
func (_u *CourtCaseUpdate) ClearBookings() *CourtCaseUpdate {
	_u.mutation.ClearBookings()
	return _u
}

// RemoveBookingIDs removes the "bookings" edge to Booking entities by IDs.
func (_u *CourtCaseUpdate) RemoveBookingIDs(ids ...uuid.UUID) *CourtCaseUpdate {
	_u.mutation.RemoveBookingIDs(ids...)
	return _u
}

// RemoveBookings removes "bookings" edges to Booking entities.
func (_u *CourtCaseUpdate) RemoveBookings(v ...*Booking) *CourtCaseUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBookingIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CourtCaseUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourtCaseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CourtCaseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourtCaseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CourtCaseUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := courtcase.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourtCaseUpdate) check() error {
	if v, ok := _u.mutation.Reference(); ok {
		if err := courtcase.ReferenceValidator(v); err != nil {
			return &ValidationError{Name: "reference", err: fmt.Errorf(`ent: validator failed for field "CourtCase.reference": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := courtcase.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "CourtCase.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Origin(); ok {
		if err := courtcase.OriginValidator(v); err != nil {
			return &ValidationError{Name: "origin", err: fmt.Errorf(`ent: validator failed for field "CourtCase.origin": %w`, err)}
		}
	}
	if _u.mutation.CourtCleared() && len(_u.mutation.CourtIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CourtCase.court"`)
	}
	return nil
}

func (_u *CourtCaseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(courtcase.Table, courtcase.Columns, sqlgraph.NewFieldSpec(courtcase.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Reference(); ok {
		_spec.SetField(courtcase.FieldReference, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(courtcase.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Origin(); ok {
		_spec.SetField(courtcase.FieldOrigin, field.TypeString, value)
	}
	if value, ok := _u.mutation.Test(); ok {
		_spec.SetField(courtcase.FieldTest, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ClosedAt(); ok {
		_spec.SetField(courtcase.FieldClosedAt, field.TypeTime, value)
	}
	if _u.mutation.ClosedAtCleared() {
		_spec.ClearField(courtcase.FieldClosedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(courtcase.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(courtcase.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CourtCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   courtcase.CourtTable,
			Columns: []string{courtcase.CourtColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(court.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CourtIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   courtcase.CourtTable,
			Columns: []string{courtcase.CourtColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(court.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ParticipantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   courtcase.ParticipantsTable,
			Columns: []string{courtcase.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedParticipantsIDs(); len(nodes) > 0 && !_u.mutation.ParticipantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   courtcase.ParticipantsTable,
			Columns: []string{courtcase.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParticipantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   courtcase.ParticipantsTable,
			Columns: []string{courtcase.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BookingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   courtcase.BookingsTable,
			Columns: []string{courtcase.BookingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(booking.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBookingsIDs(); len(nodes) > 0 && !_u.mutation.BookingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   courtcase.BookingsTable,
			Columns: []string{courtcase.BookingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(booking.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BookingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   courtcase.BookingsTable,
			Columns: []string{courtcase.BookingsColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{courtcase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CourtCaseUpdateOne is the builder for updating a single CourtCase entity.
type CourtCaseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CourtCaseMutation
}

// SetCourtID sets the "court_id" field.
func (_u *CourtCaseUpdateOne) SetCourtID(v uuid.UUID) *CourtCaseUpdateOne {
	_u.mutation.SetCourtID(v)
	return _u
}

// SetNillableCourtID sets the "court_id" field if the given value is not nil.
func (_u *CourtCaseUpdateOne) SetNillableCourtID(v *uuid.UUID) *CourtCaseUpdateOne {
	if v != nil {
		_u.SetCourtID(*v)
	}
	return _u
}

// SetReference sets the "reference" field.
func (_u *CourtCaseUpdateOne) SetReference(v string) *CourtCaseUpdateOne {
	_u.mutation.SetReference(v)
	return _u
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_u *CourtCaseUpdateOne) SetNillableReference(v *string) *CourtCaseUpdateOne {
	if v != nil {
		_u.SetReference(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *CourtCaseUpdateOne) SetState(v string) *CourtCaseUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *CourtCaseUpdateOne) SetNillableState(v *string) *CourtCaseUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetOrigin sets the "origin" field.
func (_u *CourtCaseUpdateOne) SetOrigin(v string) *CourtCaseUpdateOne {
	_u.mutation.SetOrigin(v)
	return _u
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_u *CourtCaseUpdateOne) SetNillableOrigin(v *string) *CourtCaseUpdateOne {
	if v != nil {
		_u.SetOrigin(*v)
	}
	return _u
}

// SetTest sets the "test" field.
func (_u *CourtCaseUpdateOne) SetTest(v bool) *CourtCaseUpdateOne {
	_u.mutation.SetTest(v)
	return _u
}

// SetNillableTest sets the "test" field if the given value is not nil.
func (_u *CourtCaseUpdateOne) SetNillableTest(v *bool) *CourtCaseUpdateOne {
	if v != nil {
		_u.SetTest(*v)
	}
	return _u
}

// SetClosedAt sets the "closed_at" field.
func (_u *CourtCaseUpdateOne) SetClosedAt(v time.Time) *CourtCaseUpdateOne {
	_u.mutation.SetClosedAt(v)
	return _u
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (_u *CourtCaseUpdateOne) SetNillableClosedAt(v *time.Time) *CourtCaseUpdateOne {
	if v != nil {
		_u.SetClosedAt(*v)
	}
	return _u
}

// ClearClosedAt clears the value of the "closed_at" field.
func (_u *CourtCaseUpdateOne) ClearClosedAt() *CourtCaseUpdateOne {
	_u.mutation.ClearClosedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CourtCaseUpdateOne) SetCreatedAt(v time.Time) *CourtCaseUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CourtCaseUpdateOne) SetNillableCreatedAt(v *time.Time) *CourtCaseUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CourtCaseUpdateOne) SetUpdatedAt(v time.Time) *CourtCaseUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCourt sets the "court" edge to the Court entity.
func (_u *CourtCaseUpdateOne) SetCourt(v *Court) *CourtCaseUpdateOne {
	return _u.SetCourtID(v.ID)
}

// AddParticipantIDs adds the "participants" edge to the Participant entity by IDs.
func (_u *CourtCaseUpdateOne) AddParticipantIDs(ids ...uuid.UUID) *CourtCaseUpdateOne {
	_u.mutation.AddParticipantIDs(ids...)
	return _u
}

// AddParticipants adds the "participants" edges to the Participant entity.
func (_u *CourtCaseUpdateOne) AddParticipants(v ...*Participant) *CourtCaseUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddParticipantIDs(ids...)
}

// AddBookingIDs adds the "bookings" edge to the Booking entity by IDs.
func (_u *CourtCaseUpdateOne) AddBookingIDs(ids ...uuid.UUID) *CourtCaseUpdateOne {
	_u.mutation.AddBookingIDs(ids...)
	return _u
}

// AddBookings adds the "bookings" edges to the Booking entity.
func (_u *CourtCaseUpdateOne) AddBookings(v ...*Booking) *CourtCaseUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBookingIDs(ids...)
}

// Mutation returns the CourtCaseMutation object of the builder.
func (_u *CourtCaseUpdateOne) Mutation() *CourtCaseMutation {
	return _u.mutation
}

// ClearCourt clears the "court" edge to the Court entity.
func (_u *CourtCaseUpdateOne) ClearCourt() *CourtCaseUpdateOne {
	_u.mutation.ClearCourt()
	return _u
}

// ClearParticipants clears all "participants" edges to the Participant entity.
func (_u *CourtCaseUpdateOne) ClearParticipants() *CourtCaseUpdateOne {
	_u.mutation.ClearParticipants()
	return _u
}

// RemoveParticipantIDs removes the "participants" edge to Participant entities by IDs.
func (_u *CourtCaseUpdateOne) RemoveParticipantIDs(ids ...uuid.UUID) *CourtCaseUpdateOne {
	_u.mutation.RemoveParticipantIDs(ids...)
	return _u
}

// RemoveParticipants removes "participants" edges to Participant entities.
func (_u *CourtCaseUpdateOne) RemoveParticipants(v ...*Participant) *CourtCaseUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveParticipantIDs(ids...)
}

// ClearBookings clears all "bookings" edges to the Booking entity.
func (_u *CourtCaseUpdateOne) ClearBookings() *CourtCaseUpdateOne {
	_u.mutation.ClearBookings()
	return _u
}

// RemoveBookingIDs removes the "bookings" edge to Booking entities by IDs.
func (_u *CourtCaseUpdateOne) RemoveBookingIDs(ids ...uuid.UUID) *CourtCaseUpdateOne {
	_u.mutation.RemoveBookingIDs(ids...)
	return _u
}

// RemoveBookings removes "bookings" edges to Booking entities.
func (_u *CourtCaseUpdateOne) RemoveBookings(v ...*Booking) *CourtCaseUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBookingIDs(ids...)
}

// Where appends a list predicates to the CourtCaseUpdate builder.
func (_u *CourtCaseUpdateOne) Where(ps ...predicate.CourtCase) *CourtCaseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CourtCaseUpdateOne) Select(field string, fields ...string) *CourtCaseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CourtCase entity.
func (_u *CourtCaseUpdateOne) Save(ctx context.Context) (*CourtCase, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourtCaseUpdateOne) SaveX(ctx context.Context) *CourtCase {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CourtCaseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourtCaseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CourtCaseUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := courtcase.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourtCaseUpdateOne) check() error {
	if v, ok := _u.mutation.Reference(); ok {
		if err := courtcase.ReferenceValidator(v); err != nil {
			return &ValidationError{Name: "reference", err: fmt.Errorf(`ent: validator failed for field "CourtCase.reference": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := courtcase.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "CourtCase.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Origin(); ok {
		if err := courtcase.OriginValidator(v); err != nil {
			return &ValidationError{Name: "origin", err: fmt.Errorf(`ent: validator failed for field "CourtCase.origin": %w`, err)}
		}
	}
	if _u.mutation.CourtCleared() && len(_u.mutation.CourtIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CourtCase.court"`)
	}
	return nil
}

func (_u *CourtCaseUpdateOne) sqlSave(ctx context.Context) (_node *CourtCase, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(courtcase.Table, courtcase.Columns, sqlgraph.NewFieldSpec(courtcase.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CourtCase.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, courtcase.FieldID)
		for _, f := range fields {
			if !courtcase.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != courtcase.FieldID {
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
	if value, ok := _u.mutation.Reference(); ok {
		_spec.SetField(courtcase.FieldReference, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(courtcase.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Origin(); ok {
		_spec.SetField(courtcase.FieldOrigin, field.TypeString, value)
	}
	if value, ok := _u.mutation.Test(); ok {
		_spec.SetField(courtcase.FieldTest, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ClosedAt(); ok {
		_spec.SetField(courtcase.FieldClosedAt, field.TypeTime, value)
	}
	if _u.mutation.ClosedAtCleared() {
		_spec.ClearField(courtcase.FieldClosedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(courtcase.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(courtcase.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CourtCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   courtcase.CourtTable,
			Columns: []string{courtcase.CourtColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(court.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CourtIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   courtcase.CourtTable,
			Columns: []string{courtcase.CourtColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(court.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ParticipantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   courtcase.ParticipantsTable,
			Columns: []string{courtcase.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedParticipantsIDs(); len(nodes) > 0 && !_u.mutation.ParticipantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   courtcase.ParticipantsTable,
			Columns: []string{courtcase.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParticipantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   courtcase.ParticipantsTable,
			Columns: []string{courtcase.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BookingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   courtcase.BookingsTable,
			Columns: []string{courtcase.BookingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(booking.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBookingsIDs(); len(nodes) > 0 && !_u.mutation.BookingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   courtcase.BookingsTable,
			Columns: []string{courtcase.BookingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(booking.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BookingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   courtcase.BookingsTable,
			Columns: []string{courtcase.BookingsColumn},
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
	_node = &CourtCase{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{courtcase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
