// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/courtrec/archive-migrator/gen/ent/booking"
	"github.com/courtrec/archive-migrator/gen/ent/capturesession"
	"github.com/google/uuid"
)

// CaptureSession is the model entity for the CaptureSession schema.
type CaptureSession struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// BookingID holds the value of the "booking_id" field.
	BookingID uuid.UUID `json:"booking_id,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// StartedBy holds the value of the "started_by" field.
	StartedBy *uuid.UUID `json:"started_by,omitempty"`
	// FinishedBy holds the value of the "finished_by" field.
	FinishedBy *uuid.UUID `json:"finished_by,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Origin holds the value of the "origin" field.
	Origin string `json:"origin,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CaptureSessionQuery when eager-loading is set.
	Edges        CaptureSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CaptureSessionEdges holds the relations/edges for other nodes in the graph.
type CaptureSessionEdges struct {
	// Booking holds the value of the booking edge.
	Booking *Booking `json:"booking,omitempty"`
	// Recordings holds the value of the recordings edge.
	Recordings []*Recording `json:"recordings,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// BookingOrErr returns the Booking value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CaptureSessionEdges) BookingOrErr() (*Booking, error) {
	if e.Booking != nil {
		return e.Booking, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: booking.Label}
	}
	return nil, &NotLoadedError{edge: "booking"}
}

// RecordingsOrErr returns the Recordings value or an error if the edge
// was not loaded in eager-loading.
func (e CaptureSessionEdges) RecordingsOrErr() ([]*Recording, error) {
	if e.loadedTypes[1] {
		return e.Recordings, nil
	}
	return nil, &NotLoadedError{edge: "recordings"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CaptureSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case capturesession.FieldStartedBy, capturesession.FieldFinishedBy:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case capturesession.FieldStatus, capturesession.FieldOrigin:
			values[i] = new(sql.NullString)
		case capturesession.FieldStartedAt, capturesession.FieldFinishedAt, capturesession.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case capturesession.FieldID, capturesession.FieldBookingID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CaptureSession fields.
func (_m *CaptureSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case capturesession.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case capturesession.FieldBookingID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field booking_id", values[i])
			} else if value != nil {
				_m.BookingID = *value
			}
		case capturesession.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case capturesession.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case capturesession.FieldStartedBy:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field started_by", values[i])
			} else if value.Valid {
				_m.StartedBy = new(uuid.UUID)
				*_m.StartedBy = *value.S.(*uuid.UUID)
			}
		case capturesession.FieldFinishedBy:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field finished_by", values[i])
			} else if value.Valid {
				_m.FinishedBy = new(uuid.UUID)
				*_m.FinishedBy = *value.S.(*uuid.UUID)
			}
		case capturesession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case capturesession.FieldOrigin:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field origin", values[i])
			} else if value.Valid {
				_m.Origin = value.String
			}
		case capturesession.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CaptureSession.
// This includes values selected through modifiers, order, etc.
func (_m *CaptureSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBooking queries the "booking" edge of the CaptureSession entity.
func (_m *CaptureSession) QueryBooking() *BookingQuery {
	return NewCaptureSessionClient(_m.config).QueryBooking(_m)
}

// QueryRecordings queries the "recordings" edge of the CaptureSession entity.
func (_m *CaptureSession) QueryRecordings() *RecordingQuery {
	return NewCaptureSessionClient(_m.config).QueryRecordings(_m)
}

// Update returns a builder for updating this CaptureSession.
// Note that you need to call CaptureSession.Unwrap() before calling this method if this CaptureSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CaptureSession) Update() *CaptureSessionUpdateOne {
	return NewCaptureSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CaptureSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CaptureSession) Unwrap() *CaptureSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CaptureSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CaptureSession) String() string {
	var builder strings.Builder
	builder.WriteString("CaptureSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("booking_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BookingID))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.StartedBy; v != nil {
		builder.WriteString("started_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.FinishedBy; v != nil {
		builder.WriteString("finished_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("origin=")
	builder.WriteString(_m.Origin)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CaptureSessions is a parsable slice of CaptureSession.
type CaptureSessions []*CaptureSession
