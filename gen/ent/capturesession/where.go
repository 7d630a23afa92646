// Code generated by ent, DO NOT EDIT.

package capturesession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/courtrec/archive-migrator/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldLTE(FieldID, id))
}

// BookingID applies equality check predicate on the "booking_id" field. It's identical to BookingIDEQ.
func BookingID(v uuid.UUID) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldEQ(FieldBookingID, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldEQ(FieldFinishedAt, v))
}

// StartedBy applies equality check predicate on the "started_by" field. It's identical to StartedByEQ.
func StartedBy(v uuid.UUID) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldEQ(FieldStartedBy, v))
}

// FinishedBy applies equality check predicate on the "finished_by" field. It's identical to FinishedByEQ.
func FinishedBy(v uuid.UUID) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldEQ(FieldFinishedBy, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldEQ(FieldStatus, v))
}

// Origin applies equality check predicate on the "origin" field. It's identical to OriginEQ.
func Origin(v string) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldEQ(FieldOrigin, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldEQ(FieldCreatedAt, v))
}

// BookingIDEQ applies the EQ predicate on the "booking_id" field.
func BookingIDEQ(v uuid.UUID) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldEQ(FieldBookingID, v))
}

// BookingIDNEQ applies the NEQ predicate on the "booking_id" field.
func BookingIDNEQ(v uuid.UUID) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldNEQ(FieldBookingID, v))
}

// BookingIDIn applies the In predicate on the "booking_id" field.
func BookingIDIn(vs ...uuid.UUID) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldIn(FieldBookingID, vs...))
}

// BookingIDNotIn applies the NotIn predicate on the "booking_id" field.
func BookingIDNotIn(vs ...uuid.UUID) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldNotIn(FieldBookingID, vs...))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldNotNull(FieldFinishedAt))
}

// StartedByEQ applies the EQ predicate on the "started_by" field.
func StartedByEQ(v uuid.UUID) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldEQ(FieldStartedBy, v))
}

// StartedByNEQ applies the NEQ predicate on the "started_by" field.
func StartedByNEQ(v uuid.UUID) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldNEQ(FieldStartedBy, v))
}

// StartedByIn applies the In predicate on the "started_by" field.
func StartedByIn(vs ...uuid.UUID) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldIn(FieldStartedBy, vs...))
}

// StartedByNotIn applies the NotIn predicate on the "started_by" field.
func StartedByNotIn(vs ...uuid.UUID) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldNotIn(FieldStartedBy, vs...))
}

// StartedByGT applies the GT predicate on the "started_by" field.
func StartedByGT(v uuid.UUID) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldGT(FieldStartedBy, v))
}

// StartedByGTE applies the GTE predicate on the "started_by" field.
func StartedByGTE(v uuid.UUID) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldGTE(FieldStartedBy, v))
}

// StartedByLT applies the LT predicate on the "started_by" field.
func StartedByLT(v uuid.UUID) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldLT(FieldStartedBy, v))
}

// StartedByLTE applies the LTE predicate on the "started_by" field.
func StartedByLTE(v uuid.UUID) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldLTE(FieldStartedBy, v))
}

// StartedByIsNil applies the IsNil predicate on the "started_by" field.
func StartedByIsNil() predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldIsNull(FieldStartedBy))
}

// StartedByNotNil applies the NotNil predicate on the "started_by" field.
func StartedByNotNil() predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldNotNull(FieldStartedBy))
}

// FinishedByEQ applies the EQ predicate on the "finished_by" field.
func FinishedByEQ(v uuid.UUID) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldEQ(FieldFinishedBy, v))
}

// FinishedByNEQ applies the NEQ predicate on the "finished_by" field.
func FinishedByNEQ(v uuid.UUID) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldNEQ(FieldFinishedBy, v))
}

// FinishedByIn applies the In predicate on the "finished_by" field.
func FinishedByIn(vs ...uuid.UUID) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldIn(FieldFinishedBy, vs...))
}

// FinishedByNotIn applies the NotIn predicate on the "finished_by" field.
func FinishedByNotIn(vs ...uuid.UUID) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldNotIn(FieldFinishedBy, vs...))
}

// FinishedByGT applies the GT predicate on the "finished_by" field.
func FinishedByGT(v uuid.UUID) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldGT(FieldFinishedBy, v))
}

// FinishedByGTE applies the GTE predicate on the "finished_by" field.
func FinishedByGTE(v uuid.UUID) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldGTE(FieldFinishedBy, v))
}

// FinishedByLT applies the LT predicate on the "finished_by" field.
func FinishedByLT(v uuid.UUID) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldLT(FieldFinishedBy, v))
}

// FinishedByLTE applies the LTE predicate on the "finished_by" field.
func FinishedByLTE(v uuid.UUID) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldLTE(FieldFinishedBy, v))
}

// FinishedByIsNil applies the IsNil predicate on the "finished_by" field.
func FinishedByIsNil() predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldIsNull(FieldFinishedBy))
}

// FinishedByNotNil applies the NotNil predicate on the "finished_by" field.
func FinishedByNotNil() predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldNotNull(FieldFinishedBy))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldContainsFold(FieldStatus, v))
}

// OriginEQ applies the EQ predicate on the "origin" field.
func OriginEQ(v string) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldEQ(FieldOrigin, v))
}

// OriginNEQ applies the NEQ predicate on the "origin" field.
func OriginNEQ(v string) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldNEQ(FieldOrigin, v))
}

// OriginIn applies the In predicate on the "origin" field.
func OriginIn(vs ...string) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldIn(FieldOrigin, vs...))
}

// OriginNotIn applies the NotIn predicate on the "origin" field.
func OriginNotIn(vs ...string) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldNotIn(FieldOrigin, vs...))
}

// OriginGT applies the GT predicate on the "origin" field.
func OriginGT(v string) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldGT(FieldOrigin, v))
}

// OriginGTE applies the GTE predicate on the "origin" field.
func OriginGTE(v string) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldGTE(FieldOrigin, v))
}

// OriginLT applies the LT predicate on the "origin" field.
func OriginLT(v string) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldLT(FieldOrigin, v))
}

// OriginLTE applies the LTE predicate on the "origin" field.
func OriginLTE(v string) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldLTE(FieldOrigin, v))
}

// OriginContains applies the Contains predicate on the "origin" field.
func OriginContains(v string) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldContains(FieldOrigin, v))
}

// OriginHasPrefix applies the HasPrefix predicate on the "origin" field.
func OriginHasPrefix(v string) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldHasPrefix(FieldOrigin, v))
}

// OriginHasSuffix applies the HasSuffix predicate on the "origin" field.
func OriginHasSuffix(v string) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldHasSuffix(FieldOrigin, v))
}

// OriginEqualFold applies the EqualFold predicate on the "origin" field.
func OriginEqualFold(v string) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldEqualFold(FieldOrigin, v))
}

// OriginContainsFold applies the ContainsFold predicate on the "origin" field.
func OriginContainsFold(v string) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldContainsFold(FieldOrigin, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CaptureSession {
	return predicate.CaptureSession(sql.FieldLTE(FieldCreatedAt, v))
}

// HasBooking applies the HasEdge predicate on the "booking" edge.
func HasBooking() predicate.CaptureSession {
	return predicate.CaptureSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BookingTable, BookingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBookingWith applies the HasEdge predicate on the "booking" edge with a given conditions (other predicates).
func HasBookingWith(preds ...predicate.Booking) predicate.CaptureSession {
	return predicate.CaptureSession(func(s *sql.Selector) {
		step := newBookingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRecordings applies the HasEdge predicate on the "recordings" edge.
func HasRecordings() predicate.CaptureSession {
	return predicate.CaptureSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RecordingsTable, RecordingsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRecordingsWith applies the HasEdge predicate on the "recordings" edge with a given conditions (other predicates).
func HasRecordingsWith(preds ...predicate.Recording) predicate.CaptureSession {
	return predicate.CaptureSession(func(s *sql.Selector) {
		step := newRecordingsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CaptureSession) predicate.CaptureSession {
	return predicate.CaptureSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CaptureSession) predicate.CaptureSession {
	return predicate.CaptureSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CaptureSession) predicate.CaptureSession {
	return predicate.CaptureSession(sql.NotPredicates(p))
}
