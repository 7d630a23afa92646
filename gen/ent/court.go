// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/courtrec/archive-migrator/gen/ent/court"
	"github.com/google/uuid"
)

// Court is the model entity for the Court schema.
type Court struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CourtQuery when eager-loading is set.
	Edges        CourtEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CourtEdges holds the relations/edges for other nodes in the graph.
type CourtEdges struct {
	// Cases holds the value of the cases edge.
	Cases []*CourtCase `json:"cases,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CasesOrErr returns the Cases value or an error if the edge
// was not loaded in eager-loading.
func (e CourtEdges) CasesOrErr() ([]*CourtCase, error) {
	if e.loadedTypes[0] {
		return e.Cases, nil
	}
	return nil, &NotLoadedError{edge: "cases"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Court) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case court.FieldName:
			values[i] = new(sql.NullString)
		case court.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case court.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Court fields.
func (_m *Court) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case court.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case court.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case court.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Court.
// This includes values selected through modifiers, order, etc.
func (_m *Court) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCases queries the "cases" edge of the Court entity.
func (_m *Court) QueryCases() *CourtCaseQuery {
	return NewCourtClient(_m.config).QueryCases(_m)
}

// Update returns a builder for updating this Court.
// Note that you need to call Court.Unwrap() before calling this method if this Court
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Court) Update() *CourtUpdateOne {
	return NewCourtClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Court entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Court) Unwrap() *Court {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Court is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Court) String() string {
	var builder strings.Builder
	builder.WriteString("Court(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Courts is a parsable slice of Court.
type Courts []*Court
