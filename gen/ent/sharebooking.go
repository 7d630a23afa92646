// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/courtrec/archive-migrator/gen/ent/booking"
	"github.com/courtrec/archive-migrator/gen/ent/sharebooking"
	"github.com/courtrec/archive-migrator/gen/ent/user"
	"github.com/google/uuid"
)

// ShareBooking is the model entity for the ShareBooking schema.
type ShareBooking struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// BookingID holds the value of the "booking_id" field.
	BookingID uuid.UUID `json:"booking_id,omitempty"`
	// SharedWithUserID holds the value of the "shared_with_user_id" field.
	SharedWithUserID uuid.UUID `json:"shared_with_user_id,omitempty"`
	// SharedByUserID holds the value of the "shared_by_user_id" field.
	SharedByUserID uuid.UUID `json:"shared_by_user_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ShareBookingQuery when eager-loading is set.
	Edges        ShareBookingEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ShareBookingEdges holds the relations/edges for other nodes in the graph.
type ShareBookingEdges struct {
	// Booking holds the value of the booking edge.
	Booking *Booking `json:"booking,omitempty"`
	// SharedWith holds the value of the shared_with edge.
	SharedWith *User `json:"shared_with,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// BookingOrErr returns the Booking value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ShareBookingEdges) BookingOrErr() (*Booking, error) {
	if e.Booking != nil {
		return e.Booking, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: booking.Label}
	}
	return nil, &NotLoadedError{edge: "booking"}
}

// SharedWithOrErr returns the SharedWith value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ShareBookingEdges) SharedWithOrErr() (*User, error) {
	if e.SharedWith != nil {
		return e.SharedWith, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "shared_with"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ShareBooking) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sharebooking.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case sharebooking.FieldID, sharebooking.FieldBookingID, sharebooking.FieldSharedWithUserID, sharebooking.FieldSharedByUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ShareBooking fields.
func (_m *ShareBooking) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sharebooking.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case sharebooking.FieldBookingID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field booking_id", values[i])
			} else if value != nil {
				_m.BookingID = *value
			}
		case sharebooking.FieldSharedWithUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field shared_with_user_id", values[i])
			} else if value != nil {
				_m.SharedWithUserID = *value
			}
		case sharebooking.FieldSharedByUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field shared_by_user_id", values[i])
			} else if value != nil {
				_m.SharedByUserID = *value
			}
		case sharebooking.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ShareBooking.
// This includes values selected through modifiers, order, etc.
func (_m *ShareBooking) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBooking queries the "booking" edge of the ShareBooking entity.
func (_m *ShareBooking) QueryBooking() *BookingQuery {
	return NewShareBookingClient(_m.config).QueryBooking(_m)
}

// QuerySharedWith queries the "shared_with" edge of the ShareBooking entity.
func (_m *ShareBooking) QuerySharedWith() *UserQuery {
	return NewShareBookingClient(_m.config).QuerySharedWith(_m)
}

// Update returns a builder for updating this ShareBooking.
// Note that you need to call ShareBooking.Unwrap() before calling this method if this ShareBooking
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ShareBooking) Update() *ShareBookingUpdateOne {
	return NewShareBookingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ShareBooking entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ShareBooking) Unwrap() *ShareBooking {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ShareBooking is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ShareBooking) String() string {
	var builder strings.Builder
	builder.WriteString("ShareBooking(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("booking_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BookingID))
	builder.WriteString(", ")
	builder.WriteString("shared_with_user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SharedWithUserID))
	builder.WriteString(", ")
	builder.WriteString("shared_by_user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SharedByUserID))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ShareBookings is a parsable slice of ShareBooking.
type ShareBookings []*ShareBooking
