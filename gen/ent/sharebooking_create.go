// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/courtrec/archive-migrator/gen/ent/booking"
	"github.com/courtrec/archive-migrator/gen/ent/sharebooking"
	"github.com/courtrec/archive-migrator/gen/ent/user"
	"github.com/google/uuid"
)

// ShareBookingCreate is the builder for creating a ShareBooking entity.
type ShareBookingCreate struct {
	config
	mutation *ShareBookingMutation
	hooks    []Hook
}

// SetBookingID sets the "booking_id" field.
func (_c *ShareBookingCreate) SetBookingID(v uuid.UUID) *ShareBookingCreate {
	_c.mutation.SetBookingID(v)
	return _c
}

// SetSharedWithUserID sets the "shared_with_user_id" field.
func (_c *ShareBookingCreate) SetSharedWithUserID(v uuid.UUID) *ShareBookingCreate {
	_c.mutation.SetSharedWithUserID(v)
	return _c
}

// SetSharedByUserID sets the "shared_by_user_id" field.
func (_c *ShareBookingCreate) SetSharedByUserID(v uuid.UUID) *ShareBookingCreate {
	_c.mutation.SetSharedByUserID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ShareBookingCreate) SetCreatedAt(v time.Time) *ShareBookingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ShareBookingCreate) SetNillableCreatedAt(v *time.Time) *ShareBookingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ShareBookingCreate) SetID(v uuid.UUID) *ShareBookingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ShareBookingCreate) SetNillableID(v *uuid.UUID) *ShareBookingCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetBooking sets the "booking" edge to the Booking entity.
func (_c *ShareBookingCreate) SetBooking(v *Booking) *ShareBookingCreate {
	return _c.SetBookingID(v.ID)
}

// SetSharedWithID sets the "shared_with" edge to the User entity by ID.
func (_c *ShareBookingCreate) SetSharedWithID(id uuid.UUID) *ShareBookingCreate {
	_c.mutation.SetSharedWithID(id)
	return _c
}

// SetSharedWith sets the "shared_with" edge to the User entity.
func (_c *ShareBookingCreate) SetSharedWith(v *User) *ShareBookingCreate {
	return _c.SetSharedWithID(v.ID)
}

// Mutation returns the ShareBookingMutation object of the builder.
func (_c *ShareBookingCreate) Mutation() *ShareBookingMutation {
	return _c.mutation
}

// Save creates the ShareBooking in the database.
func (_c *ShareBookingCreate) Save(ctx context.Context) (*ShareBooking, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ShareBookingCreate) SaveX(ctx context.Context) *ShareBooking {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ShareBookingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ShareBookingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ShareBookingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sharebooking.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := sharebooking.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ShareBookingCreate) check() error {
	if _, ok := _c.mutation.BookingID(); !ok {
		return &ValidationError{Name: "booking_id", err: errors.New(`ent: missing required field "ShareBooking.booking_id"`)}
	}
	if _, ok := _c.mutation.SharedWithUserID(); !ok {
		return &ValidationError{Name: "shared_with_user_id", err: errors.New(`ent: missing required field "ShareBooking.shared_with_user_id"`)}
	}
	if _, ok := _c.mutation.SharedByUserID(); !ok {
		return &ValidationError{Name: "shared_by_user_id", err: errors.New(`ent: missing required field "ShareBooking.shared_by_user_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ShareBooking.created_at"`)}
	}
	if len(_c.mutation.BookingIDs()) == 0 {
		return &ValidationError{Name: "booking", err: errors.New(`ent: missing required edge "ShareBooking.booking"`)}
	}
	if len(_c.mutation.SharedWithIDs()) == 0 {
		return &ValidationError{Name: "shared_with", err: errors.New(`ent: missing required edge "ShareBooking.shared_with"`)}
	}
	return nil
}

func (_c *ShareBookingCreate) sqlSave(ctx context.Context) (*ShareBooking, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ShareBookingCreate) createSpec() (*ShareBooking, *sqlgraph.CreateSpec) {
	var (
		_node = &ShareBooking{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sharebooking.Table, sqlgraph.NewFieldSpec(sharebooking.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.SharedByUserID(); ok {
		_spec.SetField(sharebooking.FieldSharedByUserID, field.TypeUUID, value)
		_node.SharedByUserID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sharebooking.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.BookingIDs(); len(nodes) > 0 {
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
		_node.BookingID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SharedWithIDs(); len(nodes) > 0 {
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
		_node.SharedWithUserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ShareBookingCreateBulk is the builder for creating many ShareBooking entities in bulk.
type ShareBookingCreateBulk struct {
	config
	err      error
	builders []*ShareBookingCreate
}

// Save creates the ShareBooking entities in the database.
func (_c *ShareBookingCreateBulk) Save(ctx context.Context) ([]*ShareBooking, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ShareBooking, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ShareBookingMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ShareBookingCreateBulk) SaveX(ctx context.Context) []*ShareBooking {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ShareBookingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ShareBookingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
