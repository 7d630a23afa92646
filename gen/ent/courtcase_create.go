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
	"github.com/courtrec/archive-migrator/gen/ent/court"
	"github.com/courtrec/archive-migrator/gen/ent/courtcase"
	"github.com/courtrec/archive-migrator/gen/ent/participant"
	"github.com/google/uuid"
)

// CourtCaseCreate is the builder for creating a CourtCase entity.
type CourtCaseCreate struct {
	config
	mutation *CourtCaseMutation
	hooks    []Hook
}

// SetCourtID sets the "court_id" field.
func (_c *CourtCaseCreate) SetCourtID(v uuid.UUID) *CourtCaseCreate {
	_c.mutation.SetCourtID(v)
	return _c
}

// SetReference sets the "reference" field.
func (_c *CourtCaseCreate) SetReference(v string) *CourtCaseCreate {
	_c.mutation.SetReference(v)
	return _c
}

// SetState sets the "state" field.
func (_c *CourtCaseCreate) SetState(v string) *CourtCaseCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *CourtCaseCreate) SetNillableState(v *string) *CourtCaseCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetOrigin sets the "origin" field.
func (_c *CourtCaseCreate) SetOrigin(v string) *CourtCaseCreate {
	_c.mutation.SetOrigin(v)
	return _c
}

// SetTest sets the "test" field.
func (_c *CourtCaseCreate) SetTest(v bool) *CourtCaseCreate {
	_c.mutation.SetTest(v)
	return _c
}

// SetNillableTest sets the "test" field if the given value is not nil.
func (_c *CourtCaseCreate) SetNillableTest(v *bool) *CourtCaseCreate {
	if v != nil {
		_c.SetTest(*v)
	}
	return _c
}

// SetClosedAt sets the "closed_at" field.
func (_c *CourtCaseCreate) SetClosedAt(v time.Time) *CourtCaseCreate {
	_c.mutation.SetClosedAt(v)
	return _c
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (_c *CourtCaseCreate) SetNillableClosedAt(v *time.Time) *CourtCaseCreate {
	if v != nil {
		_c.SetClosedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CourtCaseCreate) SetCreatedAt(v time.Time) *CourtCaseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CourtCaseCreate) SetNillableCreatedAt(v *time.Time) *CourtCaseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CourtCaseCreate) SetUpdatedAt(v time.Time) *CourtCaseCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CourtCaseCreate) SetNillableUpdatedAt(v *time.Time) *CourtCaseCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CourtCaseCreate) SetID(v uuid.UUID) *CourtCaseCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CourtCaseCreate) SetNillableID(v *uuid.UUID) *CourtCaseCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCourt sets the "court" edge to the Court entity.
func (_c *CourtCaseCreate) SetCourt(v *Court) *CourtCaseCreate {
	return _c.SetCourtID(v.ID)
}

// AddParticipantIDs adds the "participants" edge to the Participant entity by IDs.
func (_c *CourtCaseCreate) AddParticipantIDs(ids ...uuid.UUID) *CourtCaseCreate {
	_c.mutation.AddParticipantIDs(ids...)
	return _c
}

// AddParticipants adds the "participants" edges to the Participant entity.
func (_c *CourtCaseCreate) AddParticipants(v ...*Participant) *CourtCaseCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddParticipantIDs(ids...)
}

// AddBookingIDs adds the "bookings" edge to the Booking entity by IDs.
func (_c *CourtCaseCreate) AddBookingIDs(ids ...uuid.UUID) *CourtCaseCreate {
	_c.mutation.AddBookingIDs(ids...)
	return _c
}

// AddBookings adds the "bookings" edges to the Booking entity.
func (_c *CourtCaseCreate) AddBookings(v ...*Booking) *CourtCaseCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBookingIDs(ids...)
}

// Mutation returns the CourtCaseMutation object of the builder.
func (_c *CourtCaseCreate) Mutation() *CourtCaseMutation {
	return _c.mutation
}

// Save creates the CourtCase in the database.
func (_c *CourtCaseCreate) Save(ctx context.Context) (*CourtCase, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CourtCaseCreate) SaveX(ctx context.Context) *CourtCase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourtCaseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourtCaseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CourtCaseCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := courtcase.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.Test(); !ok {
		v := courtcase.DefaultTest
		_c.mutation.SetTest(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := courtcase.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := courtcase.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := courtcase.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CourtCaseCreate) check() error {
	if _, ok := _c.mutation.CourtID(); !ok {
		return &ValidationError{Name: "court_id", err: errors.New(`ent: missing required field "CourtCase.court_id"`)}
	}
	if _, ok := _c.mutation.Reference(); !ok {
		return &ValidationError{Name: "reference", err: errors.New(`ent: missing required field "CourtCase.reference"`)}
	}
	if v, ok := _c.mutation.Reference(); ok {
		if err := courtcase.ReferenceValidator(v); err != nil {
			return &ValidationError{Name: "reference", err: fmt.Errorf(`ent: validator failed for field "CourtCase.reference": %w`, err)}
		}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "CourtCase.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := courtcase.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "CourtCase.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Origin(); !ok {
		return &ValidationError{Name: "origin", err: errors.New(`ent: missing required field "CourtCase.origin"`)}
	}
	if v, ok := _c.mutation.Origin(); ok {
		if err := courtcase.OriginValidator(v); err != nil {
			return &ValidationError{Name: "origin", err: fmt.Errorf(`ent: validator failed for field "CourtCase.origin": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Test(); !ok {
		return &ValidationError{Name: "test", err: errors.New(`ent: missing required field "CourtCase.test"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CourtCase.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CourtCase.updated_at"`)}
	}
	if len(_c.mutation.CourtIDs()) == 0 {
		return &ValidationError{Name: "court", err: errors.New(`ent: missing required edge "CourtCase.court"`)}
	}
	return nil
}

func (_c *CourtCaseCreate) sqlSave(ctx context.Context) (*CourtCase, error) {
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

func (_c *CourtCaseCreate) createSpec() (*CourtCase, *sqlgraph.CreateSpec) {
	var (
		_node = &CourtCase{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(courtcase.Table, sqlgraph.NewFieldSpec(courtcase.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Reference(); ok {
		_spec.SetField(courtcase.FieldReference, field.TypeString, value)
		_node.Reference = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(courtcase.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Origin(); ok {
		_spec.SetField(courtcase.FieldOrigin, field.TypeString, value)
		_node.Origin = value
	}
	if value, ok := _c.mutation.Test(); ok {
		_spec.SetField(courtcase.FieldTest, field.TypeBool, value)
		_node.Test = value
	}
	if value, ok := _c.mutation.ClosedAt(); ok {
		_spec.SetField(courtcase.FieldClosedAt, field.TypeTime, value)
		_node.ClosedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(courtcase.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(courtcase.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CourtIDs(); len(nodes) > 0 {
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
		_node.CourtID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ParticipantsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BookingsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CourtCaseCreateBulk is the builder for creating many CourtCase entities in bulk.
type CourtCaseCreateBulk struct {
	config
	err      error
	builders []*CourtCaseCreate
}

// Save creates the CourtCase entities in the database.
func (_c *CourtCaseCreateBulk) Save(ctx context.Context) ([]*CourtCase, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CourtCase, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CourtCaseMutation)
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
func (_c *CourtCaseCreateBulk) SaveX(ctx context.Context) []*CourtCase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourtCaseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourtCaseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
