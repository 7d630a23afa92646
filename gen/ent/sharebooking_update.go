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
	"github.com/courtrec/archive-migrator/gen/ent/predicate"
	"github.com/courtrec/archive-migrator/gen/ent/sharebooking"
	"github.com/courtrec/archive-migrator/gen/ent/user"
	"github.com/google/uuid"
)

// ShareBookingUpdate is the builder for updating ShareBooking entities.
type ShareBookingUpdate struct {
	config
	hooks    []Hook
	mutation *ShareBookingMutation
}

// Where appends a list predicates to the ShareBookingUpdate builder.
func (_u *ShareBookingUpdate) Where(ps ...predicate.ShareBooking) *ShareBookingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBookingID sets the "booking_id" field.
func (_u *ShareBookingUpdate) SetBookingID(v uuid.UUID) *ShareBookingUpdate {
	_u.mutation.SetBookingID(v)
	return _u
}

// SetNillableBookingID sets the "booking_id" field if the given value is not nil.
func (_u *ShareBookingUpdate) SetNillableBookingID(v *uuid.UUID) *ShareBookingUpdate {
	if v != nil {
		_u.SetBookingID(*v)
	}
	return _u
}

// SetSharedWithUserID sets the "shared_with_user_id" field.
func (_u *ShareBookingUpdate) SetSharedWithUserID(v uuid.UUID) *ShareBookingUpdate {
	_u.mutation.SetSharedWithUserID(v)
	return _u
}

// SetNillableSharedWithUserID sets the "shared_with_user_id" field if the given value is not nil.
func (_u *ShareBookingUpdate) SetNillableSharedWithUserID(v *uuid.UUID) *ShareBookingUpdate {
	if v != nil {
		_u.SetSharedWithUserID(*v)
	}
	return _u
}

// SetSharedByUserID sets the "shared_by_user_id" field.
func (_u *ShareBookingUpdate) SetSharedByUserID(v uuid.UUID) *ShareBookingUpdate {
	_u.mutation.SetSharedByUserID(v)
	return _u
}

// SetNillableSharedByUserID sets the "shared_by_user_id" field if the given value is not nil.
func (_u *ShareBookingUpdate) SetNillableSharedByUserID(v *uuid.UUID) *ShareBookingUpdate {
	if v != nil {
		_u.SetSharedByUserID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ShareBookingUpdate) SetCreatedAt(v time.Time) *ShareBookingUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ShareBookingUpdate) SetNillableCreatedAt(v *time.Time) *ShareBookingUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetBooking sets the "booking" edge to the Booking entity.
func (_u *ShareBookingUpdate) SetBooking(v *Booking) *ShareBookingUpdate {
	return _u.SetBookingID(v.ID)
}

// SetSharedWithID sets the "shared_with" edge to the User entity by ID.
func (_u *ShareBookingUpdate) SetSharedWithID(id uuid.UUID) *ShareBookingUpdate {
	_u.mutation.SetSharedWithID(id)
	return _u
}

// SetSharedWith sets the "shared_with" edge to the User entity.
func (_u *ShareBookingUpdate) SetSharedWith(v *User) *ShareBookingUpdate {
	return _u.SetSharedWithID(v.ID)
}

// Mutation returns the ShareBookingMutation object of the builder.
func (_u *ShareBookingUpdate) Mutation() *ShareBookingMutation {
	return _u.mutation
}

// ClearBooking clears the "booking" edge to the Booking entity.
func (_u *ShareBookingUpdate) ClearBooking() *ShareBookingUpdate {
	_u.mutation.ClearBooking()
	return _u
}

// ClearSharedWith clears the "shared_with" edge to the User entity.
func (_u *ShareBookingUpdate) ClearSharedWith() *ShareBookingUpdate {
	_u.mutation.ClearSharedWith()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ShareBookingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ShareBookingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ShareBookingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ShareBookingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ShareBookingUpdate) check() error {
	if _u.mutation.BookingCleared() && len(_u.mutation.BookingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ShareBooking.booking"`)
	}
	if _u.mutation.SharedWithCleared() && len(_u.mutation.SharedWithIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ShareBooking.shared_with"`)
	}
	return nil
}

func (_u *ShareBookingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sharebooking.Table, sharebooking.Columns, sqlgraph.NewFieldSpec(sharebooking.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SharedByUserID(); ok {
		_spec.SetField(sharebooking.FieldSharedByUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(sharebooking.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.BookingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sharebooking.BookingTable,
			Columns: []string{sharebooking.BookingColumn},
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
			Table:   sharebooking.BookingTable,
			Columns: []string{sharebooking.BookingColumn},
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
	if _u.mutation.SharedWithCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sharebooking.SharedWithTable,
			Columns: []string{sharebooking.SharedWithColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SharedWithIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sharebooking.SharedWithTable,
			Columns: []string{sharebooking.SharedWithColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sharebooking.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ShareBookingUpdateOne is the builder for updating a single ShareBooking entity.
type ShareBookingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ShareBookingMutation
}

// SetBookingID sets the "booking_id" field.
func (_u *ShareBookingUpdateOne) SetBookingID(v uuid.UUID) *ShareBookingUpdateOne {
	_u.mutation.SetBookingID(v)
	return _u
}

// SetNillableBookingID sets the "booking_id" field if the given value is not nil.
func (_u *ShareBookingUpdateOne) SetNillableBookingID(v *uuid.UUID) *ShareBookingUpdateOne {
	if v != nil {
		_u.SetBookingID(*v)
	}
	return _u
}

// SetSharedWithUserID sets the "shared_with_user_id" field.
func (_u *ShareBookingUpdateOne) SetSharedWithUserID(v uuid.UUID) *ShareBookingUpdateOne {
	_u.mutation.SetSharedWithUserID(v)
	return _u
}

// SetNillableSharedWithUserID sets the "shared_with_user_id" field if the given value is not nil.
func (_u *ShareBookingUpdateOne) SetNillableSharedWithUserID(v *uuid.UUID) *ShareBookingUpdateOne {
	if v != nil {
		_u.SetSharedWithUserID(*v)
	}
	return _u
}

// SetSharedByUserID sets the "shared_by_user_id" field.
func (_u *ShareBookingUpdateOne) SetSharedByUserID(v uuid.UUID) *ShareBookingUpdateOne {
	_u.mutation.SetSharedByUserID(v)
	return _u
}

// SetNillableSharedByUserID sets the "shared_by_user_id" field if the given value is not nil.
func (_u *ShareBookingUpdateOne) SetNillableSharedByUserID(v *uuid.UUID) *ShareBookingUpdateOne {
	if v != nil {
		_u.SetSharedByUserID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ShareBookingUpdateOne) SetCreatedAt(v time.Time) *ShareBookingUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ShareBookingUpdateOne) SetNillableCreatedAt(v *time.Time) *ShareBookingUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetBooking sets the "booking" edge to the Booking entity.
func (_u *ShareBookingUpdateOne) SetBooking(v *Booking) *ShareBookingUpdateOne {
	return _u.SetBookingID(v.ID)
}

// SetSharedWithID sets the "shared_with" edge to the User entity by ID.
func (_u *ShareBookingUpdateOne) SetSharedWithID(id uuid.UUID) *ShareBookingUpdateOne {
	_u.mutation.SetSharedWithID(id)
	return _u
}

// SetSharedWith sets the "shared_with" edge to the User entity.
func (_u *ShareBookingUpdateOne) SetSharedWith(v *User) *ShareBookingUpdateOne {
	return _u.SetSharedWithID(v.ID)
}

// Mutation returns the ShareBookingMutation object of the builder.
func (_u *ShareBookingUpdateOne) Mutation() *ShareBookingMutation {
	return _u.mutation
}

// ClearBooking clears the "booking" edge to the Booking entity.
func (_u *ShareBookingUpdateOne) ClearBooking() *ShareBookingUpdateOne {
	_u.mutation.ClearBooking()
	return _u
}

// ClearSharedWith clears the "shared_with" edge to the User entity.
func (_u *ShareBookingUpdateOne) ClearSharedWith() *ShareBookingUpdateOne {
	_u.mutation.ClearSharedWith()
	return _u
}

// Where appends a list predicates to the ShareBookingUpdate builder.
func (_u *ShareBookingUpdateOne) Where(ps ...predicate.ShareBooking) *ShareBookingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ShareBookingUpdateOne) Select(field string, fields ...string) *ShareBookingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ShareBooking entity.
func (_u *ShareBookingUpdateOne) Save(ctx context.Context) (*ShareBooking, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ShareBookingUpdateOne) SaveX(ctx context.Context) *ShareBooking {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ShareBookingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ShareBookingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ShareBookingUpdateOne) check() error {
	if _u.mutation.BookingCleared() && len(_u.mutation.BookingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ShareBooking.booking"`)
	}
	if _u.mutation.SharedWithCleared() && len(_u.mutation.SharedWithIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ShareBooking.shared_with"`)
	}
	return nil
}

func (_u *ShareBookingUpdateOne) sqlSave(ctx context.Context) (_node *ShareBooking, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sharebooking.Table, sharebooking.Columns, sqlgraph.NewFieldSpec(sharebooking.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ShareBooking.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sharebooking.FieldID)
		for _, f := range fields {
			if !sharebooking.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sharebooking.FieldID {
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
	if value, ok := _u.mutation.SharedByUserID(); ok {
		_spec.SetField(sharebooking.FieldSharedByUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(sharebooking.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.BookingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sharebooking.BookingTable,
			Columns: []string{sharebooking.BookingColumn},
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
			Table:   sharebooking.BookingTable,
			Columns: []string{sharebooking.BookingColumn},
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
	if _u.mutation.SharedWithCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sharebooking.SharedWithTable,
			Columns: []string{sharebooking.SharedWithColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SharedWithIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sharebooking.SharedWithTable,
			Columns: []string{sharebooking.SharedWithColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ShareBooking{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sharebooking.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
