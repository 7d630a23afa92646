// Code generated by ent, DO NOT EDIT.

package recording

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the recording type in the database.
	Label = "recording"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCaptureSessionID holds the string denoting the capture_session_id field in the database.
	FieldCaptureSessionID = "capture_session_id"
	// FieldParentRecordingID holds the string denoting the parent_recording_id field in the database.
	FieldParentRecordingID = "parent_recording_id"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldFilename holds the string denoting the filename field in the database.
	FieldFilename = "filename"
	// FieldDuration holds the string denoting the duration field in the database.
	FieldDuration = "duration"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeCaptureSession holds the string denoting the capture_session edge name in mutations.
	EdgeCaptureSession = "capture_session"
	// EdgeParent holds the string denoting the parent edge name in mutations.
	EdgeParent = "parent"
	// EdgeChildren holds the string denoting the children edge name in mutations.
	EdgeChildren = "children"
	// Table holds the table name of the recording in the database.
	Table = "recordings"
	// CaptureSessionTable is the table that holds the capture_session relation/edge.
	CaptureSessionTable = "recordings"
	// CaptureSessionInverseTable is the table name for the CaptureSession entity.
	// It exists in this package in order to avoid circular dependency with the "capturesession" package.
	CaptureSessionInverseTable = "capture_sessions"
	// CaptureSessionColumn is the table column denoting the capture_session relation/edge.
	CaptureSessionColumn = "capture_session_id"
	// ParentTable is the table that holds the parent relation/edge.
	ParentTable = "recordings"
	// ParentColumn is the table column denoting the parent relation/edge.
	ParentColumn = "parent_recording_id"
	// ChildrenTable is the table that holds the children relation/edge.
	ChildrenTable = "recordings"
	// ChildrenColumn is the table column denoting the children relation/edge.
	ChildrenColumn = "parent_recording_id"
)

// Columns holds all SQL columns for recording fields.
var Columns = []string{
	FieldID,
	FieldCaptureSessionID,
	FieldParentRecordingID,
	FieldVersion,
	FieldFilename,
	FieldDuration,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// VersionValidator is a validator for the "version" field. It is called by the builders before save.
	VersionValidator func(int) error
	// DefaultDuration holds the default value on creation for the "duration" field.
	DefaultDuration int
	// DurationValidator is a validator for the "duration" field. It is called by the builders before save.
	DurationValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Recording queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCaptureSessionID orders the results by the capture_session_id field.
func ByCaptureSessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaptureSessionID, opts...).ToFunc()
}

// ByParentRecordingID orders the results by the parent_recording_id field.
func ByParentRecordingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentRecordingID, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByFilename orders the results by the filename field.
func ByFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilename, opts...).ToFunc()
}

// ByDuration orders the results by the duration field.
func ByDuration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDuration, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCaptureSessionField orders the results by capture_session field.
func ByCaptureSessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCaptureSessionStep(), sql.OrderByField(field, opts...))
	}
}

// ByParentField orders the results by parent field.
func ByParentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newParentStep(), sql.OrderByField(field, opts...))
	}
}

// ByChildrenCount orders the results by children count.
func ByChildrenCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChildrenStep(), opts...)
	}
}

// ByChildren orders the results by children terms.
func ByChildren(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChildrenStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCaptureSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CaptureSessionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CaptureSessionTable, CaptureSessionColumn),
	)
}
func newParentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ParentTable, ParentColumn),
	)
}
func newChildrenStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChildrenTable, ChildrenColumn),
	)
}
