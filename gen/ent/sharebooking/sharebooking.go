// Code generated by ent, DO NOT EDIT.

package sharebooking

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the sharebooking type in the database.
	Label = "share_booking"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBookingID holds the string denoting the booking_id field in the database.
	FieldBookingID = "booking_id"
	// FieldSharedWithUserID holds the string denoting the shared_with_user_id field in the database.
	FieldSharedWithUserID = "shared_with_user_id"
	// FieldSharedByUserID holds the string denoting the shared_by_user_id field in the database.
	FieldSharedByUserID = "shared_by_user_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeBooking holds the string denoting the booking edge name in mutations.
	EdgeBooking = "booking"
	// EdgeSharedWith holds the string denoting the shared_with edge name in mutations.
	EdgeSharedWith = "shared_with"
	// Table holds the table name of the sharebooking in the database.
	Table = "share_bookings"
	// BookingTable is the table that holds the booking relation/edge.
	BookingTable = "share_bookings"
	// BookingInverseTable is the table name for the Booking entity.
	// It exists in this package in order to avoid circular dependency with the "booking" package.
	BookingInverseTable = "bookings"
	// BookingColumn is the table column denoting the booking relation/edge.
	BookingColumn = "booking_id"
	// SharedWithTable is the table that holds the shared_with relation/edge.
	SharedWithTable = "share_bookings"
	// SharedWithInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	SharedWithInverseTable = "users"
	// SharedWithColumn is the table column denoting the shared_with relation/edge.
	SharedWithColumn = "shared_with_user_id"
)

// Columns holds all SQL columns for sharebooking fields.
var Columns = []string{
	FieldID,
	FieldBookingID,
	FieldSharedWithUserID,
	FieldSharedByUserID,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ShareBooking queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBookingID orders the results by the booking_id field.
func ByBookingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBookingID, opts...).ToFunc()
}

// BySharedWithUserID orders the results by the shared_with_user_id field.
func BySharedWithUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSharedWithUserID, opts...).ToFunc()
}

// BySharedByUserID orders the results by the shared_by_user_id field.
func BySharedByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSharedByUserID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByBookingField orders the results by booking field.
func ByBookingField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBookingStep(), sql.OrderByField(field, opts...))
	}
}

// BySharedWithField orders the results by shared_with field.
func BySharedWithField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSharedWithStep(), sql.OrderByField(field, opts...))
	}
}
func newBookingStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BookingInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BookingTable, BookingColumn),
	)
}
func newSharedWithStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SharedWithInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SharedWithTable, SharedWithColumn),
	)
}
