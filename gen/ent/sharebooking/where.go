// Code generated by ent, DO NOT EDIT.

package sharebooking

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/courtrec/archive-migrator/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ShareBooking {
	return predicate.ShareBooking(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ShareBooking {
	return predicate.ShareBooking(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ShareBooking {
	return predicate.ShareBooking(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ShareBooking {
	return predicate.ShareBooking(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ShareBooking {
	return predicate.ShareBooking(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ShareBooking {
	return predicate.ShareBooking(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ShareBooking {
	return predicate.ShareBooking(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ShareBooking {
	return predicate.ShareBooking(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ShareBooking {
	return predicate.ShareBooking(sql.FieldLTE(FieldID, id))
}

// BookingID applies equality check predicate on the "booking_id" field. It's identical to BookingIDEQ.
func BookingID(v uuid.UUID) predicate.ShareBooking {
	return predicate.ShareBooking(sql.FieldEQ(FieldBookingID, v))
}

// SharedWithUserID applies equality check predicate on the "shared_with_user_id" field. It's identical to SharedWithUserIDEQ.
func SharedWithUserID(v uuid.UUID) predicate.ShareBooking {
	return predicate.ShareBooking(sql.FieldEQ(FieldSharedWithUserID, v))
}

// SharedByUserID applies equality check predicate on the "shared_by_user_id" field. It's identical to SharedByUserIDEQ.
func SharedByUserID(v uuid.UUID) predicate.ShareBooking {
	return predicate.ShareBooking(sql.FieldEQ(FieldSharedByUserID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ShareBooking {
	return predicate.ShareBooking(sql.FieldEQ(FieldCreatedAt, v))
}

// BookingIDEQ applies the EQ predicate on the "booking_id" field.
func BookingIDEQ(v uuid.UUID) predicate.ShareBooking {
	return predicate.ShareBooking(sql.FieldEQ(FieldBookingID, v))
}

// BookingIDNEQ applies the NEQ predicate on the "booking_id" field.
func BookingIDNEQ(v uuid.UUID) predicate.ShareBooking {
	return predicate.ShareBooking(sql.FieldNEQ(FieldBookingID, v))
}

// BookingIDIn applies the In predicate on the "booking_id" field.
func BookingIDIn(vs ...uuid.UUID) predicate.ShareBooking {
	return predicate.ShareBooking(sql.FieldIn(FieldBookingID, vs...))
}

// BookingIDNotIn applies the NotIn predicate on the "booking_id" field.
func BookingIDNotIn(vs ...uuid.UUID) predicate.ShareBooking {
	return predicate.ShareBooking(sql.FieldNotIn(FieldBookingID, vs...))
}

// SharedWithUserIDEQ applies the EQ predicate on the "shared_with_user_id" field.
func SharedWithUserIDEQ(v uuid.UUID) predicate.ShareBooking {
	return predicate.ShareBooking(sql.FieldEQ(FieldSharedWithUserID, v))
}

// SharedWithUserIDNEQ applies the NEQ predicate on the "shared_with_user_id" field.
func SharedWithUserIDNEQ(v uuid.UUID) predicate.ShareBooking {
	return predicate.ShareBooking(sql.FieldNEQ(FieldSharedWithUserID, v))
}

// SharedWithUserIDIn applies the In predicate on the "shared_with_user_id" field.
func SharedWithUserIDIn(vs ...uuid.UUID) predicate.ShareBooking {
	return predicate.ShareBooking(sql.FieldIn(FieldSharedWithUserID, vs...))
}

// SharedWithUserIDNotIn applies the NotIn predicate on the "shared_with_user_id" field.
func SharedWithUserIDNotIn(vs ...uuid.UUID) predicate.ShareBooking {
	return predicate.ShareBooking(sql.FieldNotIn(FieldSharedWithUserID, vs...))
}

// SharedByUserIDEQ applies the EQ predicate on the "shared_by_user_id" field.
func SharedByUserIDEQ(v uuid.UUID) predicate.ShareBooking {
	return predicate.ShareBooking(sql.FieldEQ(FieldSharedByUserID, v))
}

// SharedByUserIDNEQ applies the NEQ predicate on the "shared_by_user_id" field.
func SharedByUserIDNEQ(v uuid.UUID) predicate.ShareBooking {
	return predicate.ShareBooking(sql.FieldNEQ(FieldSharedByUserID, v))
}

// SharedByUserIDIn applies the In predicate on the "shared_by_user_id" field.
func SharedByUserIDIn(vs ...uuid.UUID) predicate.ShareBooking {
	return predicate.ShareBooking(sql.FieldIn(FieldSharedByUserID, vs...))
}

// SharedByUserIDNotIn applies the NotIn predicate on the "shared_by_user_id" field.
func SharedByUserIDNotIn(vs ...uuid.UUID) predicate.ShareBooking {
	return predicate.ShareBooking(sql.FieldNotIn(FieldSharedByUserID, vs...))
}

// SharedByUserIDGT applies the GT predicate on the "shared_by_user_id" field.
func SharedByUserIDGT(v uuid.UUID) predicate.ShareBooking {
	return predicate.ShareBooking(sql.FieldGT(FieldSharedByUserID, v))
}

// SharedByUserIDGTE applies the GTE predicate on the "shared_by_user_id" field.
func SharedByUserIDGTE(v uuid.UUID) predicate.ShareBooking {
	return predicate.ShareBooking(sql.FieldGTE(FieldSharedByUserID, v))
}

// SharedByUserIDLT applies the LT predicate on the "shared_by_user_id" field.
func SharedByUserIDLT(v uuid.UUID) predicate.ShareBooking {
	return predicate.ShareBooking(sql.FieldLT(FieldSharedByUserID, v))
}

// SharedByUserIDLTE applies the LTE predicate on the "shared_by_user_id" field.
func SharedByUserIDLTE(v uuid.UUID) predicate.ShareBooking {
	return predicate.ShareBooking(sql.FieldLTE(FieldSharedByUserID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ShareBooking {
	return predicate.ShareBooking(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ShareBooking {
	return predicate.ShareBooking(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ShareBooking {
	return predicate.ShareBooking(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ShareBooking {
	return predicate.ShareBooking(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ShareBooking {
	return predicate.ShareBooking(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ShareBooking {
	return predicate.ShareBooking(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ShareBooking {
	return predicate.ShareBooking(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ShareBooking {
	return predicate.ShareBooking(sql.FieldLTE(FieldCreatedAt, v))
}

// HasBooking applies the HasEdge predicate on the "booking" edge.
func HasBooking() predicate.ShareBooking {
	return predicate.ShareBooking(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BookingTable, BookingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBookingWith applies the HasEdge predicate on the "booking" edge with a given conditions (other predicates).
func HasBookingWith(preds ...predicate.Booking) predicate.ShareBooking {
	return predicate.ShareBooking(func(s *sql.Selector) {
		step := newBookingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSharedWith applies the HasEdge predicate on the "shared_with" edge.
func HasSharedWith() predicate.ShareBooking {
	return predicate.ShareBooking(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SharedWithTable, SharedWithColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSharedWithWith applies the HasEdge predicate on the "shared_with" edge with a given conditions (other predicates).
func HasSharedWithWith(preds ...predicate.User) predicate.ShareBooking {
	return predicate.ShareBooking(func(s *sql.Selector) {
		step := newSharedWithStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ShareBooking) predicate.ShareBooking {
	return predicate.ShareBooking(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ShareBooking) predicate.ShareBooking {
	return predicate.ShareBooking(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ShareBooking) predicate.ShareBooking {
	return predicate.ShareBooking(sql.NotPredicates(p))
}
