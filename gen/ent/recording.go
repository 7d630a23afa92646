// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/courtrec/archive-migrator/gen/ent/capturesession"
	"github.com/courtrec/archive-migrator/gen/ent/recording"
	"github.com/google/uuid"
)

// Recording is the model entity for the Recording schema.
type Recording struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CaptureSessionID holds the value of the "capture_session_id" field.
	CaptureSessionID uuid.UUID `json:"capture_session_id,omitempty"`
	// ParentRecordingID holds the value of the "parent_recording_id" field.
	ParentRecordingID *uuid.UUID `json:"parent_recording_id,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// Duration holds the value of the "duration" field.
	Duration int `json:"duration,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RecordingQuery when eager-loading is set.
	Edges        RecordingEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RecordingEdges holds the relations/edges for other nodes in the graph.
type RecordingEdges struct {
	// CaptureSession holds the value of the capture_session edge.
	CaptureSession *CaptureSession `json:"capture_session,omitempty"`
	// Parent holds the value of the parent edge.
	Parent *Recording `json:"parent,omitempty"`
	// Children holds the value of the children edge.
	Children []*Recording `json:"children,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// CaptureSessionOrErr returns the CaptureSession value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RecordingEdges) CaptureSessionOrErr() (*CaptureSession, error) {
	if e.CaptureSession != nil {
		return e.CaptureSession, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: capturesession.Label}
	}
	return nil, &NotLoadedError{edge: "capture_session"}
}

// ParentOrErr returns the Parent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RecordingEdges) ParentOrErr() (*Recording, error) {
	if e.Parent != nil {
		return e.Parent, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: recording.Label}
	}
	return nil, &NotLoadedError{edge: "parent"}
}

// ChildrenOrErr returns the Children value or an error if the edge
// was not loaded in eager-loading.
func (e RecordingEdges) ChildrenOrErr() ([]*Recording, error) {
	if e.loadedTypes[2] {
		return e.Children, nil
	}
	return nil, &NotLoadedError{edge: "children"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Recording) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case recording.FieldParentRecordingID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case recording.FieldVersion, recording.FieldDuration:
			values[i] = new(sql.NullInt64)
		case recording.FieldFilename:
			values[i] = new(sql.NullString)
		case recording.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case recording.FieldID, recording.FieldCaptureSessionID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Recording fields.
func (_m *Recording) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case recording.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case recording.FieldCaptureSessionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field capture_session_id", values[i])
			} else if value != nil {
				_m.CaptureSessionID = *value
			}
		case recording.FieldParentRecordingID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field parent_recording_id", values[i])
			} else if value.Valid {
				_m.ParentRecordingID = new(uuid.UUID)
				*_m.ParentRecordingID = *value.S.(*uuid.UUID)
			}
		case recording.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case recording.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case recording.FieldDuration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration", values[i])
			} else if value.Valid {
				_m.Duration = int(value.Int64)
			}
		case recording.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Recording.
// This includes values selected through modifiers, order, etc.
func (_m *Recording) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCaptureSession queries the "capture_session" edge of the Recording entity.
func (_m *Recording) QueryCaptureSession() *CaptureSessionQuery {
	return NewRecordingClient(_m.config).QueryCaptureSession(_m)
}

// QueryParent queries the "parent" edge of the Recording entity.
func (_m *Recording) QueryParent() *RecordingQuery {
	return NewRecordingClient(_m.config).QueryParent(_m)
}

// QueryChildren queries the "children" edge of the Recording entity.
func (_m *Recording) QueryChildren() *RecordingQuery {
	return NewRecordingClient(_m.config).QueryChildren(_m)
}

// Update returns a builder for updating this Recording.
// Note that you need to call Recording.Unwrap() before calling this method if this Recording
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Recording) Update() *RecordingUpdateOne {
	return NewRecordingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Recording entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Recording) Unwrap() *Recording {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Recording is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Recording) String() string {
	var builder strings.Builder
	builder.WriteString("Recording(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("capture_session_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CaptureSessionID))
	builder.WriteString(", ")
	if v := _m.ParentRecordingID; v != nil {
		builder.WriteString("parent_recording_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("duration=")
	builder.WriteString(fmt.Sprintf("%v", _m.Duration))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Recordings is a parsable slice of Recording.
type Recordings []*Recording
