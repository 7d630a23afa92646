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
	"github.com/courtrec/archive-migrator/gen/ent/capturesession"
	"github.com/courtrec/archive-migrator/gen/ent/recording"
	"github.com/google/uuid"
)

// CaptureSessionCreate is the builder for creating a CaptureSession entity.
type CaptureSessionCreate struct {
	config
	mutation *CaptureSessionMutation
	hooks    []Hook
}

// SetBookingID sets the "booking_id" field.
func (_c *CaptureSessionCreate) SetBookingID(v uuid.UUID) *CaptureSessionCreate {
	_c.mutation.SetBookingID(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *CaptureSessionCreate) SetStartedAt(v time.Time) *CaptureSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *CaptureSessionCreate) SetFinishedAt(v time.Time) *CaptureSessionCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *CaptureSessionCreate) SetNillableFinishedAt(v *time.Time) *CaptureSessionCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetStartedBy sets the "started_by" field.
func (_c *CaptureSessionCreate) SetStartedBy(v uuid.UUID) *CaptureSessionCreate {
	_c.mutation.SetStartedBy(v)
	return _c
}

// SetNillableStartedBy sets the "started_by" field if the given value is not nil.
func (_c *CaptureSessionCreate) SetNillableStartedBy(v *uuid.UUID) *CaptureSessionCreate {
	if v != nil {
		_c.SetStartedBy(*v)
	}
	return _c
}

// SetFinishedBy sets the "finished_by" field.
func (_c *CaptureSessionCreate) SetFinishedBy(v uuid.UUID) *CaptureSessionCreate {
	_c.mutation.SetFinishedBy(v)
	return _c
}

// SetNillableFinishedBy sets the "finished_by" field if the given value is not nil.
func (_c *CaptureSessionCreate) SetNillableFinishedBy(v *uuid.UUID) *CaptureSessionCreate {
	if v != nil {
		_c.SetFinishedBy(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CaptureSessionCreate) SetStatus(v string) *CaptureSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetOrigin sets the "origin" field.
func (_c *CaptureSessionCreate) SetOrigin(v string) *CaptureSessionCreate {
	_c.mutation.SetOrigin(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CaptureSessionCreate) SetCreatedAt(v time.Time) *CaptureSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CaptureSessionCreate) SetNillableCreatedAt(v *time.Time) *CaptureSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CaptureSessionCreate) SetID(v uuid.UUID) *CaptureSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CaptureSessionCreate) SetNillableID(v *uuid.UUID) *CaptureSessionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetBooking sets the "booking" edge to the Booking entity.
func (_c *CaptureSessionCreate) SetBooking(v *Booking) *CaptureSessionCreate {
	return _c.SetBookingID(v.ID)
}

// AddRecordingIDs adds the "recordings" edge to the Recording entity by IDs.
func (_c *CaptureSessionCreate) AddRecordingIDs(ids ...uuid.UUID) *CaptureSessionCreate {
	_c.mutation.AddRecordingIDs(ids...)
	return _c
}

// AddRecordings adds the "recordings" edges to the Recording entity.
func (_c *CaptureSessionCreate) AddRecordings(v ...*Recording) *CaptureSessionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRecordingIDs(ids...)
}

// Mutation returns the CaptureSessionMutation object of the builder.
func (_c *CaptureSessionCreate) Mutation() *CaptureSessionMutation {
	return _c.mutation
}

// Save creates the CaptureSession in the database.
func (_c *CaptureSessionCreate) Save(ctx context.Context) (*CaptureSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CaptureSessionCreate) SaveX(ctx context.Context) *CaptureSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CaptureSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CaptureSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CaptureSessionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := capturesession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := capturesession.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CaptureSessionCreate) check() error {
	if _, ok := _c.mutation.BookingID(); !ok {
		return &ValidationError{Name: "booking_id", err: errors.New(`ent: missing required field "CaptureSession.booking_id"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "CaptureSession.started_at"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CaptureSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := capturesession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CaptureSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Origin(); !ok {
		return &ValidationError{Name: "origin", err: errors.New(`ent: missing required field "CaptureSession.origin"`)}
	}
	if v, ok := _c.mutation.Origin(); ok {
		if err := capturesession.OriginValidator(v); err != nil {
			return &ValidationError{Name: "origin", err: fmt.Errorf(`ent: validator failed for field "CaptureSession.origin": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CaptureSession.created_at"`)}
	}
	if len(_c.mutation.BookingIDs()) == 0 {
		return &ValidationError{Name: "booking", err: errors.New(`ent: missing required edge "CaptureSession.booking"`)}
	}
	return nil
}

func (_c *CaptureSessionCreate) sqlSave(ctx context.Context) (*CaptureSession, error) {
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

func (_c *CaptureSessionCreate) createSpec() (*CaptureSession, *sqlgraph.CreateSpec) {
	var (
		_node = &CaptureSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(capturesession.Table, sqlgraph.NewFieldSpec(capturesession.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(capturesession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(capturesession.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.StartedBy(); ok {
		_spec.SetField(capturesession.FieldStartedBy, field.TypeUUID, value)
		_node.StartedBy = &value
	}
	if value, ok := _c.mutation.FinishedBy(); ok {
		_spec.SetField(capturesession.FieldFinishedBy, field.TypeUUID, value)
		_node.FinishedBy = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(capturesession.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Origin(); ok {
		_spec.SetField(capturesession.FieldOrigin, field.TypeString, value)
		_node.Origin = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(capturesession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.BookingIDs(); len(nodes) > 0 {
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
		_node.BookingID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RecordingsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CaptureSessionCreateBulk is the builder for creating many CaptureSession entities in bulk.
type CaptureSessionCreateBulk struct {
	config
	err      error
	builders []*CaptureSessionCreate
}

// Save creates the CaptureSession entities in the database.
func (_c *CaptureSessionCreateBulk) Save(ctx context.Context) ([]*CaptureSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CaptureSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CaptureSessionMutation)
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
func (_c *CaptureSessionCreateBulk) SaveX(ctx context.Context) []*CaptureSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CaptureSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CaptureSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
