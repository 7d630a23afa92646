// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/courtrec/archive-migrator/gen/ent/court"
	"github.com/courtrec/archive-migrator/gen/ent/courtcase"
	"github.com/google/uuid"
)

// CourtCase is the model entity for the CourtCase schema.
type CourtCase struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CourtID holds the value of the "court_id" field.
	CourtID uuid.UUID `json:"court_id,omitempty"`
	// Reference holds the value of the "reference" field.
	Reference string `json:"reference,omitempty"`
	// State holds the value of the "state" field.
	State string `json:"state,omitempty"`
	// Origin holds the value of the "origin" field.
	Origin string `json:"origin,omitempty"`
	// Test holds the value of the "test" field.
	Test bool `json:"test,omitempty"`
	// ClosedAt holds the value of the "closed_at" field.
	ClosedAt *time.Time `json:"closed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CourtCaseQuery when eager-loading is set.
	Edges        CourtCaseEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CourtCaseEdges holds the relations/edges for other nodes in the graph.
type CourtCaseEdges struct {
	// Court holds the value of the court edge.
	Court *Court `json:"court,omitempty"`
	// Participants holds the value of the participants edge.
	Participants []*Participant `json:"participants,omitempty"`
	// Bookings holds the value of the bookings edge.
	Bookings []*Booking `json:"bookings,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// CourtOrErr returns the Court value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CourtCaseEdges) CourtOrErr() (*Court, error) {
	if e.Court != nil {
		return e.Court, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: court.Label}
	}
	return nil, &NotLoadedError{edge: "court"}
}

// ParticipantsOrErr returns the Participants value or an error if the edge
// was not loaded in eager-loading.
func (e CourtCaseEdges) ParticipantsOrErr() ([]*Participant, error) {
	if e.loadedTypes[1] {
		return e.Participants, nil
	}
	return nil, &NotLoadedError{edge: "participants"}
}

// BookingsOrErr returns the Bookings value or an error if the edge
// was not loaded in eager-loading.
func (e CourtCaseEdges) BookingsOrErr() ([]*Booking, error) {
	if e.loadedTypes[2] {
		return e.Bookings, nil
	}
	return nil, &NotLoadedError{edge: "bookings"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CourtCase) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case courtcase.FieldTest:
			values[i] = new(sql.NullBool)
		case courtcase.FieldReference, courtcase.FieldState, courtcase.FieldOrigin:
			values[i] = new(sql.NullString)
		case courtcase.FieldClosedAt, courtcase.FieldCreatedAt, courtcase.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case courtcase.FieldID, courtcase.FieldCourtID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CourtCase fields.
func (_m *CourtCase) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case courtcase.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case courtcase.FieldCourtID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field court_id", values[i])
			} else if value != nil {
				_m.CourtID = *value
			}
		case courtcase.FieldReference:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reference", values[i])
			} else if value.Valid {
				_m.Reference = value.String
			}
		case courtcase.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = value.String
			}
		case courtcase.FieldOrigin:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field origin", values[i])
			} else if value.Valid {
				_m.Origin = value.String
			}
		case courtcase.FieldTest:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field test", values[i])
			} else if value.Valid {
				_m.Test = value.Bool
			}
		case courtcase.FieldClosedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field closed_at", values[i])
			} else if value.Valid {
				_m.ClosedAt = new(time.Time)
				*_m.ClosedAt = value.Time
			}
		case courtcase.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case courtcase.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CourtCase.
// This includes values selected through modifiers, order, etc.
func (_m *CourtCase) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCourt queries the "court" edge of the CourtCase entity.
func (_m *CourtCase) QueryCourt() *CourtQuery {
	return NewCourtCaseClient(_m.config).QueryCourt(_m)
}

// QueryParticipants queries the "participants" edge of the CourtCase entity.
func (_m *CourtCase) QueryParticipants() *ParticipantQuery {
	return NewCourtCaseClient(_m.config).QueryParticipants(_m)
}

// QueryBookings queries the "bookings" edge of the CourtCase entity.
func (_m *CourtCase) QueryBookings() *BookingQuery {
	return NewCourtCaseClient(_m.config).QueryBookings(_m)
}

// Update returns a builder for updating this CourtCase.
// Note that you need to call CourtCase.Unwrap() before calling this method if this CourtCase
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CourtCase) Update() *CourtCaseUpdateOne {
	return NewCourtCaseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CourtCase entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CourtCase) Unwrap() *CourtCase {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CourtCase is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CourtCase) String() string {
	var builder strings.Builder
	builder.WriteString("CourtCase(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("court_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CourtID))
	builder.WriteString(", ")
	builder.WriteString("reference=")
	builder.WriteString(_m.Reference)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(_m.State)
	builder.WriteString(", ")
	builder.WriteString("origin=")
	builder.WriteString(_m.Origin)
	builder.WriteString(", ")
	builder.WriteString("test=")
	builder.WriteString(fmt.Sprintf("%v", _m.Test))
	builder.WriteString(", ")
	if v := _m.ClosedAt; v != nil {
		builder.WriteString("closed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CourtCases is a parsable slice of CourtCase.
type CourtCases []*CourtCase
