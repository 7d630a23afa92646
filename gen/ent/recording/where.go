// Code generated by ent, DO NOT EDIT.

package recording

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/courtrec/archive-migrator/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldID, id))
}

// CaptureSessionID applies equality check predicate on the "capture_session_id" field. It's identical to CaptureSessionIDEQ.
func CaptureSessionID(v uuid.UUID) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldCaptureSessionID, v))
}

// ParentRecordingID applies equality check predicate on the "parent_recording_id" field. It's identical to ParentRecordingIDEQ.
func ParentRecordingID(v uuid.UUID) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldParentRecordingID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldVersion, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldFilename, v))
}

// Duration applies equality check predicate on the "duration" field. It's identical to DurationEQ.
func Duration(v int) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldDuration, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldCreatedAt, v))
}

// CaptureSessionIDEQ applies the EQ predicate on the "capture_session_id" field.
func CaptureSessionIDEQ(v uuid.UUID) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldCaptureSessionID, v))
}

// CaptureSessionIDNEQ applies the NEQ predicate on the "capture_session_id" field.
func CaptureSessionIDNEQ(v uuid.UUID) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldCaptureSessionID, v))
}

// CaptureSessionIDIn applies the In predicate on the "capture_session_id" field.
func CaptureSessionIDIn(vs ...uuid.UUID) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldCaptureSessionID, vs...))
}

// CaptureSessionIDNotIn applies the NotIn predicate on the "capture_session_id" field.
func CaptureSessionIDNotIn(vs ...uuid.UUID) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldCaptureSessionID, vs...))
}

// ParentRecordingIDEQ applies the EQ predicate on the "parent_recording_id" field.
func ParentRecordingIDEQ(v uuid.UUID) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldParentRecordingID, v))
}

// ParentRecordingIDNEQ applies the NEQ predicate on the "parent_recording_id" field.
func ParentRecordingIDNEQ(v uuid.UUID) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldParentRecordingID, v))
}

// ParentRecordingIDIn applies the In predicate on the "parent_recording_id" field.
func ParentRecordingIDIn(vs ...uuid.UUID) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldParentRecordingID, vs...))
}

// ParentRecordingIDNotIn applies the NotIn predicate on the "parent_recording_id" field.
func ParentRecordingIDNotIn(vs ...uuid.UUID) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldParentRecordingID, vs...))
}

// ParentRecordingIDIsNil applies the IsNil predicate on the "parent_recording_id" field.
func ParentRecordingIDIsNil() predicate.Recording {
	return predicate.Recording(sql.FieldIsNull(FieldParentRecordingID))
}

// ParentRecordingIDNotNil applies the NotNil predicate on the "parent_recording_id" field.
func ParentRecordingIDNotNil() predicate.Recording {
	return predicate.Recording(sql.FieldNotNull(FieldParentRecordingID))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldVersion, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.Recording {
	return predicate.Recording(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.Recording {
	return predicate.Recording(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.Recording {
	return predicate.Recording(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameIsNil applies the IsNil predicate on the "filename" field.
func FilenameIsNil() predicate.Recording {
	return predicate.Recording(sql.FieldIsNull(FieldFilename))
}

// FilenameNotNil applies the NotNil predicate on the "filename" field.
func FilenameNotNil() predicate.Recording {
	return predicate.Recording(sql.FieldNotNull(FieldFilename))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.Recording {
	return predicate.Recording(sql.FieldContainsFold(FieldFilename, v))
}

// DurationEQ applies the EQ predicate on the "duration" field.
func DurationEQ(v int) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldDuration, v))
}

// DurationNEQ applies the NEQ predicate on the "duration" field.
func DurationNEQ(v int) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldDuration, v))
}

// DurationIn applies the In predicate on the "duration" field.
func DurationIn(vs ...int) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldDuration, vs...))
}

// DurationNotIn applies the NotIn predicate on the "duration" field.
func DurationNotIn(vs ...int) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldDuration, vs...))
}

// DurationGT applies the GT predicate on the "duration" field.
func DurationGT(v int) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldDuration, v))
}

// DurationGTE applies the GTE predicate on the "duration" field.
func DurationGTE(v int) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldDuration, v))
}

// DurationLT applies the LT predicate on the "duration" field.
func DurationLT(v int) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldDuration, v))
}

// DurationLTE applies the LTE predicate on the "duration" field.
func DurationLTE(v int) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldDuration, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldCreatedAt, v))
}

// HasCaptureSession applies the HasEdge predicate on the "capture_session" edge.
func HasCaptureSession() predicate.Recording {
	return predicate.Recording(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CaptureSessionTable, CaptureSessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCaptureSessionWith applies the HasEdge predicate on the "capture_session" edge with a given conditions (other predicates).
func HasCaptureSessionWith(preds ...predicate.CaptureSession) predicate.Recording {
	return predicate.Recording(func(s *sql.Selector) {
		step := newCaptureSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasParent applies the HasEdge predicate on the "parent" edge.
func HasParent() predicate.Recording {
	return predicate.Recording(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ParentTable, ParentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParentWith applies the HasEdge predicate on the "parent" edge with a given conditions (other predicates).
func HasParentWith(preds ...predicate.Recording) predicate.Recording {
	return predicate.Recording(func(s *sql.Selector) {
		step := newParentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChildren applies the HasEdge predicate on the "children" edge.
func HasChildren() predicate.Recording {
	return predicate.Recording(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChildrenTable, ChildrenColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChildrenWith applies the HasEdge predicate on the "children" edge with a given conditions (other predicates).
func HasChildrenWith(preds ...predicate.Recording) predicate.Recording {
	return predicate.Recording(func(s *sql.Selector) {
		step := newChildrenStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Recording) predicate.Recording {
	return predicate.Recording(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Recording) predicate.Recording {
	return predicate.Recording(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Recording) predicate.Recording {
	return predicate.Recording(sql.NotPredicates(p))
}
