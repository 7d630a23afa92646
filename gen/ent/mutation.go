// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/courtrec/archive-migrator/gen/ent/booking"
	"github.com/courtrec/archive-migrator/gen/ent/capturesession"
	"github.com/courtrec/archive-migrator/gen/ent/court"
	"github.com/courtrec/archive-migrator/gen/ent/courtcase"
	"github.com/courtrec/archive-migrator/gen/ent/invite"
	"github.com/courtrec/archive-migrator/gen/ent/participant"
	"github.com/courtrec/archive-migrator/gen/ent/predicate"
	"github.com/courtrec/archive-migrator/gen/ent/recording"
	"github.com/courtrec/archive-migrator/gen/ent/sharebooking"
	"github.com/courtrec/archive-migrator/gen/ent/user"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBooking        = "Booking"
	TypeCaptureSession = "CaptureSession"
	TypeCourt          = "Court"
	TypeCourtCase      = "CourtCase"
	TypeInvite         = "Invite"
	TypeParticipant    = "Participant"
	TypeRecording      = "Recording"
	TypeShareBooking   = "ShareBooking"
	TypeUser           = "User"
)

// BookingMutation represents an operation that mutates the Booking nodes in the graph.
type BookingMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	scheduled_for           *time.Time
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	court_case              *uuid.UUID
	clearedcourt_case       bool
	participants            map[uuid.UUID]struct{}
	removedparticipants     map[uuid.UUID]struct{}
	clearedparticipants     bool
	capture_sessions        map[uuid.UUID]struct{}
	removedcapture_sessions map[uuid.UUID]struct{}
	clearedcapture_sessions bool
	shares                  map[uuid.UUID]struct{}
	removedshares           map[uuid.UUID]struct{}
	clearedshares           bool
	done                    bool
	oldValue                func(context.Context) (*Booking, error)
	predicates              []predicate.Booking
}

var _ ent.Mutation = (*BookingMutation)(nil)

// bookingOption allows management of the mutation configuration using functional options.
type bookingOption func(*BookingMutation)

// newBookingMutation creates new mutation for the Booking entity.
func newBookingMutation(c config, op Op, opts ...bookingOption) *BookingMutation {
	m := &BookingMutation{
		config:        c,
		op:            op,
		typ:           TypeBooking,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBookingID sets the ID field of the mutation.
func withBookingID(id uuid.UUID) bookingOption {
	return func(m *BookingMutation) {
		var (
			err   error
			once  sync.Once
			value *Booking
		)
		m.oldValue = func(ctx context.Context) (*Booking, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Booking.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBooking sets the old Booking of the mutation.
func withBooking(node *Booking) bookingOption {
	return func(m *BookingMutation) {
		m.oldValue = func(context.Context) (*Booking, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BookingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BookingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Booking entities.
func (m *BookingMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BookingMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BookingMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Booking.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCaseID sets the "case_id" field.
func (m *BookingMutation) SetCaseID(u uuid.UUID) {
	m.court_case = &u
}

// CaseID returns the value of the "case_id" field in the mutation.
func (m *BookingMutation) CaseID() (r uuid.UUID, exists bool) {
	v := m.court_case
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseID returns the old "case_id" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldCaseID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseID: %w", err)
	}
	return oldValue.CaseID, nil
}

// ResetCaseID resets all changes to the "case_id" field.
func (m *BookingMutation) ResetCaseID() {
	m.court_case = nil
}

// SetScheduledFor sets the "scheduled_for" field.
func (m *BookingMutation) SetScheduledFor(t time.Time) {
	m.scheduled_for = &t
}

// ScheduledFor returns the value of the "scheduled_for" field in the mutation.
func (m *BookingMutation) ScheduledFor() (r time.Time, exists bool) {
	v := m.scheduled_for
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledFor returns the old "scheduled_for" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldScheduledFor(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledFor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledFor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledFor: %w", err)
	}
	return oldValue.ScheduledFor, nil
}

// ResetScheduledFor resets all changes to the "scheduled_for" field.
func (m *BookingMutation) ResetScheduledFor() {
	m.scheduled_for = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BookingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BookingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BookingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BookingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BookingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BookingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCourtCaseID sets the "court_case" edge to the CourtCase entity by id.
func (m *BookingMutation) SetCourtCaseID(id uuid.UUID) {
	m.court_case = &id
}

// ClearCourtCase clears the "court_case" edge to the CourtCase entity.
func (m *BookingMutation) ClearCourtCase() {
	m.clearedcourt_case = true
	m.clearedFields[booking.FieldCaseID] = struct{}{}
}

// CourtCaseCleared reports if the "court_case" edge to the CourtCase entity was cleared.
func (m *BookingMutation) CourtCaseCleared() bool {
	return m.clearedcourt_case
}

// CourtCaseID returns the "court_case" edge ID in the mutation.
func (m *BookingMutation) CourtCaseID() (id uuid.UUID, exists bool) {
	if m.court_case != nil {
		return *m.court_case, true
	}
	return
}

// CourtCaseIDs returns the "court_case" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CourtCaseID instead. It exists only for internal usage by the builders.
func (m *BookingMutation) CourtCaseIDs() (ids []uuid.UUID) {
	if id := m.court_case; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCourtCase resets all changes to the "court_case" edge.
func (m *BookingMutation) ResetCourtCase() {
	m.court_case = nil
	m.clearedcourt_case = false
}

// AddParticipantIDs adds the "participants" edge to the Participant entity by ids.
func (m *BookingMutation) AddParticipantIDs(ids ...uuid.UUID) {
	if m.participants == nil {
		m.participants = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.participants[ids[i]] = struct{}{}
	}
}

// ClearParticipants clears the "participants" edge to the Participant entity.
func (m *BookingMutation) ClearParticipants() {
	m.clearedparticipants = true
}

// ParticipantsCleared reports if the "participants" edge to the Participant entity was cleared.
func (m *BookingMutation) ParticipantsCleared() bool {
	return m.clearedparticipants
}

// RemoveParticipantIDs removes the "participants" edge to the Participant entity by IDs.
func (m *BookingMutation) RemoveParticipantIDs(ids ...uuid.UUID) {
	if m.removedparticipants == nil {
		m.removedparticipants = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.participants, ids[i])
		m.removedparticipants[ids[i]] = struct{}{}
	}
}

// RemovedParticipants returns the removed IDs of the "participants" edge to the Participant entity.
func (m *BookingMutation) RemovedParticipantsIDs() (ids []uuid.UUID) {
	for id := range m.removedparticipants {
		ids = append(ids, id)
	}
	return
}

// ParticipantsIDs returns the "participants" edge IDs in the mutation.
func (m *BookingMutation) ParticipantsIDs() (ids []uuid.UUID) {
	for id := range m.participants {
		ids = append(ids, id)
	}
	return
}

// ResetParticipants resets all changes to the "participants" edge.
func (m *BookingMutation) ResetParticipants() {
	m.participants = nil
	m.clearedparticipants = false
	m.removedparticipants = nil
}

// AddCaptureSessionIDs adds the "capture_sessions" edge to the CaptureSession entity by ids.
func (m *BookingMutation) AddCaptureSessionIDs(ids ...uuid.UUID) {
	if m.capture_sessions == nil {
		m.capture_sessions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.capture_sessions[ids[i]] = struct{}{}
	}
}

// ClearCaptureSessions clears the "capture_sessions" edge to the CaptureSession entity.
func (m *BookingMutation) ClearCaptureSessions() {
	m.clearedcapture_sessions = true
}

// CaptureSessionsCleared reports if the "capture_sessions" edge to the CaptureSession entity was cleared.
func (m *BookingMutation) CaptureSessionsCleared() bool {
	return m.clearedcapture_sessions
}

// RemoveCaptureSessionIDs removes the "capture_sessions" edge to the CaptureSession entity by IDs.
func (m *BookingMutation) RemoveCaptureSessionIDs(ids ...uuid.UUID) {
	if m.removedcapture_sessions == nil {
		m.removedcapture_sessions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.capture_sessions, ids[i])
		m.removedcapture_sessions[ids[i]] = struct{}{}
	}
}

// RemovedCaptureSessions returns the removed IDs of the "capture_sessions" edge to the CaptureSession entity.
func (m *BookingMutation) RemovedCaptureSessionsIDs() (ids []uuid.UUID) {
	for id := range m.removedcapture_sessions {
		ids = append(ids, id)
	}
	return
}

// CaptureSessionsIDs returns the "capture_sessions" edge IDs in the mutation.
func (m *BookingMutation) CaptureSessionsIDs() (ids []uuid.UUID) {
	for id := range m.capture_sessions {
		ids = append(ids, id)
	}
	return
}

// ResetCaptureSessions resets all changes to the "capture_sessions" edge.
func (m *BookingMutation) ResetCaptureSessions() {
	m.capture_sessions = nil
	m.clearedcapture_sessions = false
	m.removedcapture_sessions = nil
}

// AddShareIDs adds the "shares" edge to the ShareBooking entity by ids.
func (m *BookingMutation) AddShareIDs(ids ...uuid.UUID) {
	if m.shares == nil {
		m.shares = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.shares[ids[i]] = struct{}{}
	}
}

// ClearShares clears the "shares" edge to the ShareBooking entity.
func (m *BookingMutation) ClearShares() {
	m.clearedshares = true
}

// SharesCleared reports if the "shares" edge to the ShareBooking entity was cleared.
func (m *BookingMutation) SharesCleared() bool {
	return m.clearedshares
}

// RemoveShareIDs removes the "shares" edge to the ShareBooking entity by IDs.
func (m *BookingMutation) RemoveShareIDs(ids ...uuid.UUID) {
	if m.removedshares == nil {
		m.removedshares = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.shares, ids[i])
		m.removedshares[ids[i]] = struct{}{}
	}
}

// RemovedShares returns the removed IDs of the "shares" edge to the ShareBooking entity.
func (m *BookingMutation) RemovedSharesIDs() (ids []uuid.UUID) {
	for id := range m.removedshares {
		ids = append(ids, id)
	}
	return
}

// SharesIDs returns the "shares" edge IDs in the mutation.
func (m *BookingMutation) SharesIDs() (ids []uuid.UUID) {
	for id := range m.shares {
		ids = append(ids, id)
	}
	return
}

// ResetShares resets all changes to the "shares" edge.
func (m *BookingMutation) ResetShares() {
	m.shares = nil
	m.clearedshares = false
	m.removedshares = nil
}

// Where appends a list predicates to the BookingMutation builder.
func (m *BookingMutation) Where(ps ...predicate.Booking) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BookingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BookingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Booking, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BookingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BookingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Booking).
func (m *BookingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BookingMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.court_case != nil {
		fields = append(fields, booking.FieldCaseID)
	}
	if m.scheduled_for != nil {
		fields = append(fields, booking.FieldScheduledFor)
	}
	if m.created_at != nil {
		fields = append(fields, booking.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, booking.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BookingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case booking.FieldCaseID:
		return m.CaseID()
	case booking.FieldScheduledFor:
		return m.ScheduledFor()
	case booking.FieldCreatedAt:
		return m.CreatedAt()
	case booking.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BookingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case booking.FieldCaseID:
		return m.OldCaseID(ctx)
	case booking.FieldScheduledFor:
		return m.OldScheduledFor(ctx)
	case booking.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case booking.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Booking field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BookingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case booking.FieldCaseID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseID(v)
		return nil
	case booking.FieldScheduledFor:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledFor(v)
		return nil
	case booking.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case booking.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Booking field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BookingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BookingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BookingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Booking numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BookingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BookingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BookingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Booking nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BookingMutation) ResetField(name string) error {
	switch name {
	case booking.FieldCaseID:
		m.ResetCaseID()
		return nil
	case booking.FieldScheduledFor:
		m.ResetScheduledFor()
		return nil
	case booking.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case booking.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Booking field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BookingMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.court_case != nil {
		edges = append(edges, booking.EdgeCourtCase)
	}
	if m.participants != nil {
		edges = append(edges, booking.EdgeParticipants)
	}
	if m.capture_sessions != nil {
		edges = append(edges, booking.EdgeCaptureSessions)
	}
	if m.shares != nil {
		edges = append(edges, booking.EdgeShares)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BookingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case booking.EdgeCourtCase:
		if id := m.court_case; id != nil {
			return []ent.Value{*id}
		}
	case booking.EdgeParticipants:
		ids := make([]ent.Value, 0, len(m.participants))
		for id := range m.participants {
			ids = append(ids, id)
		}
		return ids
	case booking.EdgeCaptureSessions:
		ids := make([]ent.Value, 0, len(m.capture_sessions))
		for id := range m.capture_sessions {
			ids = append(ids, id)
		}
		return ids
	case booking.EdgeShares:
		ids := make([]ent.Value, 0, len(m.shares))
		for id := range m.shares {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BookingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedparticipants != nil {
		edges = append(edges, booking.EdgeParticipants)
	}
	if m.removedcapture_sessions != nil {
		edges = append(edges, booking.EdgeCaptureSessions)
	}
	if m.removedshares != nil {
		edges = append(edges, booking.EdgeShares)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BookingMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case booking.EdgeParticipants:
		ids := make([]ent.Value, 0, len(m.removedparticipants))
		for id := range m.removedparticipants {
			ids = append(ids, id)
		}
		return ids
	case booking.EdgeCaptureSessions:
		ids := make([]ent.Value, 0, len(m.removedcapture_sessions))
		for id := range m.removedcapture_sessions {
			ids = append(ids, id)
		}
		return ids
	case booking.EdgeShares:
		ids := make([]ent.Value, 0, len(m.removedshares))
		for id := range m.removedshares {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BookingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedcourt_case {
		edges = append(edges, booking.EdgeCourtCase)
	}
	if m.clearedparticipants {
		edges = append(edges, booking.EdgeParticipants)
	}
	if m.clearedcapture_sessions {
		edges = append(edges, booking.EdgeCaptureSessions)
	}
	if m.clearedshares {
		edges = append(edges, booking.EdgeShares)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BookingMutation) EdgeCleared(name string) bool {
	switch name {
	case booking.EdgeCourtCase:
		return m.clearedcourt_case
	case booking.EdgeParticipants:
		return m.clearedparticipants
	case booking.EdgeCaptureSessions:
		return m.clearedcapture_sessions
	case booking.EdgeShares:
		return m.clearedshares
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BookingMutation) ClearEdge(name string) error {
	switch name {
	case booking.EdgeCourtCase:
		m.ClearCourtCase()
		return nil
	}
	return fmt.Errorf("unknown Booking unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BookingMutation) ResetEdge(name string) error {
	switch name {
	case booking.EdgeCourtCase:
		m.ResetCourtCase()
		return nil
	case booking.EdgeParticipants:
		m.ResetParticipants()
		return nil
	case booking.EdgeCaptureSessions:
		m.ResetCaptureSessions()
		return nil
	case booking.EdgeShares:
		m.ResetShares()
		return nil
	}
	return fmt.Errorf("unknown Booking edge %s", name)
}

// CaptureSessionMutation represents an operation that mutates the CaptureSession nodes in the graph.
type CaptureSessionMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	started_at        *time.Time
	finished_at       *time.Time
	started_by        *uuid.UUID
	finished_by       *uuid.UUID
	status            *string
	origin            *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	booking           *uuid.UUID
	clearedbooking    bool
	recordings        map[uuid.UUID]struct{}
	removedrecordings map[uuid.UUID]struct{}
	clearedrecordings bool
	done              bool
	oldValue          func(context.Context) (*CaptureSession, error)
	predicates        []predicate.CaptureSession
}

var _ ent.Mutation = (*CaptureSessionMutation)(nil)

// capturesessionOption allows management of the mutation configuration using functional options.
type capturesessionOption func(*CaptureSessionMutation)

// newCaptureSessionMutation creates new mutation for the CaptureSession entity.
func newCaptureSessionMutation(c config, op Op, opts ...capturesessionOption) *CaptureSessionMutation {
	m := &CaptureSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeCaptureSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCaptureSessionID sets the ID field of the mutation.
func withCaptureSessionID(id uuid.UUID) capturesessionOption {
	return func(m *CaptureSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *CaptureSession
		)
		m.oldValue = func(ctx context.Context) (*CaptureSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CaptureSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCaptureSession sets the old CaptureSession of the mutation.
func withCaptureSession(node *CaptureSession) capturesessionOption {
	return func(m *CaptureSessionMutation) {
		m.oldValue = func(context.Context) (*CaptureSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CaptureSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CaptureSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CaptureSession entities.
func (m *CaptureSessionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CaptureSessionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CaptureSessionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CaptureSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBookingID sets the "booking_id" field.
func (m *CaptureSessionMutation) SetBookingID(u uuid.UUID) {
	m.booking = &u
}

// BookingID returns the value of the "booking_id" field in the mutation.
func (m *CaptureSessionMutation) BookingID() (r uuid.UUID, exists bool) {
	v := m.booking
	if v == nil {
		return
	}
	return *v, true
}

// OldBookingID returns the old "booking_id" field's value of the CaptureSession entity.
// If the CaptureSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaptureSessionMutation) OldBookingID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBookingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBookingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBookingID: %w", err)
	}
	return oldValue.BookingID, nil
}

// ResetBookingID resets all changes to the "booking_id" field.
func (m *CaptureSessionMutation) ResetBookingID() {
	m.booking = nil
}

// SetStartedAt sets the "started_at" field.
func (m *CaptureSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *CaptureSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the CaptureSession entity.
// If the CaptureSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaptureSessionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *CaptureSessionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *CaptureSessionMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *CaptureSessionMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the CaptureSession entity.
// If the CaptureSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaptureSessionMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *CaptureSessionMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[capturesession.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *CaptureSessionMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[capturesession.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *CaptureSessionMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, capturesession.FieldFinishedAt)
}

// SetStartedBy sets the "started_by" field.
func (m *CaptureSessionMutation) SetStartedBy(u uuid.UUID) {
	m.started_by = &u
}

// StartedBy returns the value of the "started_by" field in the mutation.
func (m *CaptureSessionMutation) StartedBy() (r uuid.UUID, exists bool) {
	v := m.started_by
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedBy returns the old "started_by" field's value of the CaptureSession entity.
// If the CaptureSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaptureSessionMutation) OldStartedBy(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedBy: %w", err)
	}
	return oldValue.StartedBy, nil
}

// ClearStartedBy clears the value of the "started_by" field.
func (m *CaptureSessionMutation) ClearStartedBy() {
	m.started_by = nil
	m.clearedFields[capturesession.FieldStartedBy] = struct{}{}
}

// StartedByCleared returns if the "started_by" field was cleared in this mutation.
func (m *CaptureSessionMutation) StartedByCleared() bool {
	_, ok := m.clearedFields[capturesession.FieldStartedBy]
	return ok
}

// ResetStartedBy resets all changes to the "started_by" field.
func (m *CaptureSessionMutation) ResetStartedBy() {
	m.started_by = nil
	delete(m.clearedFields, capturesession.FieldStartedBy)
}

// SetFinishedBy sets the "finished_by" field.
func (m *CaptureSessionMutation) SetFinishedBy(u uuid.UUID) {
	m.finished_by = &u
}

// FinishedBy returns the value of the "finished_by" field in the mutation.
func (m *CaptureSessionMutation) FinishedBy() (r uuid.UUID, exists bool) {
	v := m.finished_by
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedBy returns the old "finished_by" field's value of the CaptureSession entity.
// If the CaptureSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaptureSessionMutation) OldFinishedBy(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedBy: %w", err)
	}
	return oldValue.FinishedBy, nil
}

// ClearFinishedBy clears the value of the "finished_by" field.
func (m *CaptureSessionMutation) ClearFinishedBy() {
	m.finished_by = nil
	m.clearedFields[capturesession.FieldFinishedBy] = struct{}{}
}

// FinishedByCleared returns if the "finished_by" field was cleared in this mutation.
func (m *CaptureSessionMutation) FinishedByCleared() bool {
	_, ok := m.clearedFields[capturesession.FieldFinishedBy]
	return ok
}

// ResetFinishedBy resets all changes to the "finished_by" field.
func (m *CaptureSessionMutation) ResetFinishedBy() {
	m.finished_by = nil
	delete(m.clearedFields, capturesession.FieldFinishedBy)
}

// SetStatus sets the "status" field.
func (m *CaptureSessionMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *CaptureSessionMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CaptureSession entity.
// If the CaptureSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaptureSessionMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CaptureSessionMutation) ResetStatus() {
	m.status = nil
}

// SetOrigin sets the "origin" field.
func (m *CaptureSessionMutation) SetOrigin(s string) {
	m.origin = &s
}

// Origin returns the value of the "origin" field in the mutation.
func (m *CaptureSessionMutation) Origin() (r string, exists bool) {
	v := m.origin
	if v == nil {
		return
	}
	return *v, true
}

// OldOrigin returns the old "origin" field's value of the CaptureSession entity.
// If the CaptureSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaptureSessionMutation) OldOrigin(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrigin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrigin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrigin: %w", err)
	}
	return oldValue.Origin, nil
}

// ResetOrigin resets all changes to the "origin" field.
func (m *CaptureSessionMutation) ResetOrigin() {
	m.origin = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CaptureSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CaptureSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CaptureSession entity.
// If the CaptureSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaptureSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CaptureSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearBooking clears the "booking" edge to the Booking entity.
func (m *CaptureSessionMutation) ClearBooking() {
	m.clearedbooking = true
	m.clearedFields[capturesession.FieldBookingID] = struct{}{}
}

// BookingCleared reports if the "booking" edge to the Booking entity was cleared.
func (m *CaptureSessionMutation) BookingCleared() bool {
	return m.clearedbooking
}

// BookingIDs returns the "booking" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BookingID instead. It exists only for internal usage by the builders.
func (m *CaptureSessionMutation) BookingIDs() (ids []uuid.UUID) {
	if id := m.booking; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBooking resets all changes to the "booking" edge.
func (m *CaptureSessionMutation) ResetBooking() {
	m.booking = nil
	m.clearedbooking = false
}

// AddRecordingIDs adds the "recordings" edge to the Recording entity by ids.
func (m *CaptureSessionMutation) AddRecordingIDs(ids ...uuid.UUID) {
	if m.recordings == nil {
		m.recordings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.recordings[ids[i]] = struct{}{}
	}
}

// ClearRecordings clears the "recordings" edge to the Recording entity.
func (m *CaptureSessionMutation) ClearRecordings() {
	m.clearedrecordings = true
}

// RecordingsCleared reports if the "recordings" edge to the Recording entity was cleared.
func (m *CaptureSessionMutation) RecordingsCleared() bool {
	return m.clearedrecordings
}

// RemoveRecordingIDs removes the "recordings" edge to the Recording entity by IDs.
func (m *CaptureSessionMutation) RemoveRecordingIDs(ids ...uuid.UUID) {
	if m.removedrecordings == nil {
		m.removedrecordings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.recordings, ids[i])
		m.removedrecordings[ids[i]] = struct{}{}
	}
}

// RemovedRecordings returns the removed IDs of the "recordings" edge to the Recording entity.
func (m *CaptureSessionMutation) RemovedRecordingsIDs() (ids []uuid.UUID) {
	for id := range m.removedrecordings {
		ids = append(ids, id)
	}
	return
}

// RecordingsIDs returns the "recordings" edge IDs in the mutation.
func (m *CaptureSessionMutation) RecordingsIDs() (ids []uuid.UUID) {
	for id := range m.recordings {
		ids = append(ids, id)
	}
	return
}

// ResetRecordings resets all changes to the "recordings" edge.
func (m *CaptureSessionMutation) ResetRecordings() {
	m.recordings = nil
	m.clearedrecordings = false
	m.removedrecordings = nil
}

// Where appends a list predicates to the CaptureSessionMutation builder.
func (m *CaptureSessionMutation) Where(ps ...predicate.CaptureSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CaptureSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CaptureSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CaptureSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CaptureSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CaptureSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CaptureSession).
func (m *CaptureSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CaptureSessionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.booking != nil {
		fields = append(fields, capturesession.FieldBookingID)
	}
	if m.started_at != nil {
		fields = append(fields, capturesession.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, capturesession.FieldFinishedAt)
	}
	if m.started_by != nil {
		fields = append(fields, capturesession.FieldStartedBy)
	}
	if m.finished_by != nil {
		fields = append(fields, capturesession.FieldFinishedBy)
	}
	if m.status != nil {
		fields = append(fields, capturesession.FieldStatus)
	}
	if m.origin != nil {
		fields = append(fields, capturesession.FieldOrigin)
	}
	if m.created_at != nil {
		fields = append(fields, capturesession.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CaptureSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case capturesession.FieldBookingID:
		return m.BookingID()
	case capturesession.FieldStartedAt:
		return m.StartedAt()
	case capturesession.FieldFinishedAt:
		return m.FinishedAt()
	case capturesession.FieldStartedBy:
		return m.StartedBy()
	case capturesession.FieldFinishedBy:
		return m.FinishedBy()
	case capturesession.FieldStatus:
		return m.Status()
	case capturesession.FieldOrigin:
		return m.Origin()
	case capturesession.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CaptureSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case capturesession.FieldBookingID:
		return m.OldBookingID(ctx)
	case capturesession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case capturesession.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case capturesession.FieldStartedBy:
		return m.OldStartedBy(ctx)
	case capturesession.FieldFinishedBy:
		return m.OldFinishedBy(ctx)
	case capturesession.FieldStatus:
		return m.OldStatus(ctx)
	case capturesession.FieldOrigin:
		return m.OldOrigin(ctx)
	case capturesession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CaptureSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CaptureSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case capturesession.FieldBookingID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBookingID(v)
		return nil
	case capturesession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case capturesession.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case capturesession.FieldStartedBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedBy(v)
		return nil
	case capturesession.FieldFinishedBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedBy(v)
		return nil
	case capturesession.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case capturesession.FieldOrigin:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrigin(v)
		return nil
	case capturesession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CaptureSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CaptureSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CaptureSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CaptureSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CaptureSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CaptureSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(capturesession.FieldFinishedAt) {
		fields = append(fields, capturesession.FieldFinishedAt)
	}
	if m.FieldCleared(capturesession.FieldStartedBy) {
		fields = append(fields, capturesession.FieldStartedBy)
	}
	if m.FieldCleared(capturesession.FieldFinishedBy) {
		fields = append(fields, capturesession.FieldFinishedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CaptureSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CaptureSessionMutation) ClearField(name string) error {
	switch name {
	case capturesession.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case capturesession.FieldStartedBy:
		m.ClearStartedBy()
		return nil
	case capturesession.FieldFinishedBy:
		m.ClearFinishedBy()
		return nil
	}
	return fmt.Errorf("unknown CaptureSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CaptureSessionMutation) ResetField(name string) error {
	switch name {
	case capturesession.FieldBookingID:
		m.ResetBookingID()
		return nil
	case capturesession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case capturesession.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case capturesession.FieldStartedBy:
		m.ResetStartedBy()
		return nil
	case capturesession.FieldFinishedBy:
		m.ResetFinishedBy()
		return nil
	case capturesession.FieldStatus:
		m.ResetStatus()
		return nil
	case capturesession.FieldOrigin:
		m.ResetOrigin()
		return nil
	case capturesession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CaptureSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CaptureSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.booking != nil {
		edges = append(edges, capturesession.EdgeBooking)
	}
	if m.recordings != nil {
		edges = append(edges, capturesession.EdgeRecordings)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CaptureSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case capturesession.EdgeBooking:
		if id := m.booking; id != nil {
			return []ent.Value{*id}
		}
	case capturesession.EdgeRecordings:
		ids := make([]ent.Value, 0, len(m.recordings))
		for id := range m.recordings {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CaptureSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedrecordings != nil {
		edges = append(edges, capturesession.EdgeRecordings)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CaptureSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case capturesession.EdgeRecordings:
		ids := make([]ent.Value, 0, len(m.removedrecordings))
		for id := range m.removedrecordings {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CaptureSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedbooking {
		edges = append(edges, capturesession.EdgeBooking)
	}
	if m.clearedrecordings {
		edges = append(edges, capturesession.EdgeRecordings)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CaptureSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case capturesession.EdgeBooking:
		return m.clearedbooking
	case capturesession.EdgeRecordings:
		return m.clearedrecordings
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CaptureSessionMutation) ClearEdge(name string) error {
	switch name {
	case capturesession.EdgeBooking:
		m.ClearBooking()
		return nil
	}
	return fmt.Errorf("unknown CaptureSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CaptureSessionMutation) ResetEdge(name string) error {
	switch name {
	case capturesession.EdgeBooking:
		m.ResetBooking()
		return nil
	case capturesession.EdgeRecordings:
		m.ResetRecordings()
		return nil
	}
	return fmt.Errorf("unknown CaptureSession edge %s", name)
}

// CourtMutation represents an operation that mutates the Court nodes in the graph.
type CourtMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	name          *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	cases         map[uuid.UUID]struct{}
	removedcases  map[uuid.UUID]struct{}
	clearedcases  bool
	done          bool
	oldValue      func(context.Context) (*Court, error)
	predicates    []predicate.Court
}

var _ ent.Mutation = (*CourtMutation)(nil)

// courtOption allows management of the mutation configuration using functional options.
type courtOption func(*CourtMutation)

// newCourtMutation creates new mutation for the Court entity.
func newCourtMutation(c config, op Op, opts ...courtOption) *CourtMutation {
	m := &CourtMutation{
		config:        c,
		op:            op,
		typ:           TypeCourt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCourtID sets the ID field of the mutation.
func withCourtID(id uuid.UUID) courtOption {
	return func(m *CourtMutation) {
		var (
			err   error
			once  sync.Once
			value *Court
		)
		m.oldValue = func(ctx context.Context) (*Court, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Court.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCourt sets the old Court of the mutation.
func withCourt(node *Court) courtOption {
	return func(m *CourtMutation) {
		m.oldValue = func(context.Context) (*Court, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CourtMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CourtMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Court entities.
func (m *CourtMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CourtMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CourtMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Court.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *CourtMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CourtMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Court entity.
// If the Court object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourtMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CourtMutation) ResetName() {
	m.name = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CourtMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CourtMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Court entity.
// If the Court object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourtMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CourtMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddCaseIDs adds the "cases" edge to the CourtCase entity by ids.
func (m *CourtMutation) AddCaseIDs(ids ...uuid.UUID) {
	if m.cases == nil {
		m.cases = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.cases[ids[i]] = struct{}{}
	}
}

// ClearCases clears the "cases" edge to the CourtCase entity.
func (m *CourtMutation) ClearCases() {
	m.clearedcases = true
}

// CasesCleared reports if the "cases" edge to the CourtCase entity was cleared.
func (m *CourtMutation) CasesCleared() bool {
	return m.clearedcases
}

// RemoveCaseIDs removes the "cases" edge to the CourtCase entity by IDs.
func (m *CourtMutation) RemoveCaseIDs(ids ...uuid.UUID) {
	if m.removedcases == nil {
		m.removedcases = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.cases, ids[i])
		m.removedcases[ids[i]] = struct{}{}
	}
}

// RemovedCases returns the removed IDs of the "cases" edge to the CourtCase entity.
func (m *CourtMutation) RemovedCasesIDs() (ids []uuid.UUID) {
	for id := range m.removedcases {
		ids = append(ids, id)
	}
	return
}

// CasesIDs returns the "cases" edge IDs in the mutation.
func (m *CourtMutation) CasesIDs() (ids []uuid.UUID) {
	for id := range m.cases {
		ids = append(ids, id)
	}
	return
}

// ResetCases resets all changes to the "cases" edge.
func (m *CourtMutation) ResetCases() {
	m.cases = nil
	m.clearedcases = false
	m.removedcases = nil
}

// Where appends a list predicates to the CourtMutation builder.
func (m *CourtMutation) Where(ps ...predicate.Court) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CourtMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CourtMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Court, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CourtMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CourtMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Court).
func (m *CourtMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CourtMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.name != nil {
		fields = append(fields, court.FieldName)
	}
	if m.created_at != nil {
		fields = append(fields, court.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CourtMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case court.FieldName:
		return m.Name()
	case court.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CourtMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case court.FieldName:
		return m.OldName(ctx)
	case court.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Court field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CourtMutation) SetField(name string, value ent.Value) error {
	switch name {
	case court.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case court.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Court field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CourtMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CourtMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CourtMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Court numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CourtMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CourtMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CourtMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Court nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CourtMutation) ResetField(name string) error {
	switch name {
	case court.FieldName:
		m.ResetName()
		return nil
	case court.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Court field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CourtMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cases != nil {
		edges = append(edges, court.EdgeCases)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CourtMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case court.EdgeCases:
		ids := make([]ent.Value, 0, len(m.cases))
		for id := range m.cases {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CourtMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedcases != nil {
		edges = append(edges, court.EdgeCases)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CourtMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case court.EdgeCases:
		ids := make([]ent.Value, 0, len(m.removedcases))
		for id := range m.removedcases {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CourtMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcases {
		edges = append(edges, court.EdgeCases)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CourtMutation) EdgeCleared(name string) bool {
	switch name {
	case court.EdgeCases:
		return m.clearedcases
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CourtMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Court unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CourtMutation) ResetEdge(name string) error {
	switch name {
	case court.EdgeCases:
		m.ResetCases()
		return nil
	}
	return fmt.Errorf("unknown Court edge %s", name)
}

// CourtCaseMutation represents an operation that mutates the CourtCase nodes in the graph.
type CourtCaseMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	reference           *string
	state               *string
	origin              *string
	test                *bool
	closed_at           *time.Time
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	court               *uuid.UUID
	clearedcourt        bool
	participants        map[uuid.UUID]struct{}
	removedparticipants map[uuid.UUID]struct{}
	clearedparticipants bool
	bookings            map[uuid.UUID]struct{}
	removedbookings     map[uuid.UUID]struct{}
	clearedbookings     bool
	done                bool
	oldValue            func(context.Context) (*CourtCase, error)
	predicates          []predicate.CourtCase
}

var _ ent.Mutation = (*CourtCaseMutation)(nil)

// courtcaseOption allows management of the mutation configuration using functional options.
type courtcaseOption func(*CourtCaseMutation)

// newCourtCaseMutation creates new mutation for the CourtCase entity.
func newCourtCaseMutation(c config, op Op, opts ...courtcaseOption) *CourtCaseMutation {
	m := &CourtCaseMutation{
		config:        c,
		op:            op,
		typ:           TypeCourtCase,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCourtCaseID sets the ID field of the mutation.
func withCourtCaseID(id uuid.UUID) courtcaseOption {
	return func(m *CourtCaseMutation) {
		var (
			err   error
			once  sync.Once
			value *CourtCase
		)
		m.oldValue = func(ctx context.Context) (*CourtCase, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CourtCase.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCourtCase sets the old CourtCase of the mutation.
func withCourtCase(node *CourtCase) courtcaseOption {
	return func(m *CourtCaseMutation) {
		m.oldValue = func(context.Context) (*CourtCase, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CourtCaseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CourtCaseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CourtCase entities.
func (m *CourtCaseMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CourtCaseMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CourtCaseMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CourtCase.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCourtID sets the "court_id" field.
func (m *CourtCaseMutation) SetCourtID(u uuid.UUID) {
	m.court = &u
}

// CourtID returns the value of the "court_id" field in the mutation.
func (m *CourtCaseMutation) CourtID() (r uuid.UUID, exists bool) {
	v := m.court
	if v == nil {
		return
	}
	return *v, true
}

// OldCourtID returns the old "court_id" field's value of the CourtCase entity.
// If the CourtCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourtCaseMutation) OldCourtID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourtID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourtID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourtID: %w", err)
	}
	return oldValue.CourtID, nil
}

// ResetCourtID resets all changes to the "court_id" field.
func (m *CourtCaseMutation) ResetCourtID() {
	m.court = nil
}

// SetReference sets the "reference" field.
func (m *CourtCaseMutation) SetReference(s string) {
	m.reference = &s
}

// Reference returns the value of the "reference" field in the mutation.
func (m *CourtCaseMutation) Reference() (r string, exists bool) {
	v := m.reference
	if v == nil {
		return
	}
	return *v, true
}

// OldReference returns the old "reference" field's value of the CourtCase entity.
// If the CourtCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourtCaseMutation) OldReference(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReference is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReference requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReference: %w", err)
	}
	return oldValue.Reference, nil
}

// ResetReference resets all changes to the "reference" field.
func (m *CourtCaseMutation) ResetReference() {
	m.reference = nil
}

// SetState sets the "state" field.
func (m *CourtCaseMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *CourtCaseMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the CourtCase entity.
// If the CourtCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourtCaseMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *CourtCaseMutation) ResetState() {
	m.state = nil
}

// SetOrigin sets the "origin" field.
func (m *CourtCaseMutation) SetOrigin(s string) {
	m.origin = &s
}

// Origin returns the value of the "origin" field in the mutation.
func (m *CourtCaseMutation) Origin() (r string, exists bool) {
	v := m.origin
	if v == nil {
		return
	}
	return *v, true
}

// OldOrigin returns the old "origin" field's value of the CourtCase entity.
// If the CourtCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourtCaseMutation) OldOrigin(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrigin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrigin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrigin: %w", err)
	}
	return oldValue.Origin, nil
}

// ResetOrigin resets all changes to the "origin" field.
func (m *CourtCaseMutation) ResetOrigin() {
	m.origin = nil
}

// SetTest sets the "test" field.
func (m *CourtCaseMutation) SetTest(b bool) {
	m.test = &b
}

// Test returns the value of the "test" field in the mutation.
func (m *CourtCaseMutation) Test() (r bool, exists bool) {
	v := m.test
	if v == nil {
		return
	}
	return *v, true
}

// OldTest returns the old "test" field's value of the CourtCase entity.
// If the CourtCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourtCaseMutation) OldTest(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTest: %w", err)
	}
	return oldValue.Test, nil
}

// ResetTest resets all changes to the "test" field.
func (m *CourtCaseMutation) ResetTest() {
	m.test = nil
}

// SetClosedAt sets the "closed_at" field.
func (m *CourtCaseMutation) SetClosedAt(t time.Time) {
	m.closed_at = &t
}

// ClosedAt returns the value of the "closed_at" field in the mutation.
func (m *CourtCaseMutation) ClosedAt() (r time.Time, exists bool) {
	v := m.closed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClosedAt returns the old "closed_at" field's value of the CourtCase entity.
// If the CourtCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourtCaseMutation) OldClosedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClosedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClosedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClosedAt: %w", err)
	}
	return oldValue.ClosedAt, nil
}

// ClearClosedAt clears the value of the "closed_at" field.
func (m *CourtCaseMutation) ClearClosedAt() {
	m.closed_at = nil
	m.clearedFields[courtcase.FieldClosedAt] = struct{}{}
}

// ClosedAtCleared returns if the "closed_at" field was cleared in this mutation.
func (m *CourtCaseMutation) ClosedAtCleared() bool {
	_, ok := m.clearedFields[courtcase.FieldClosedAt]
	return ok
}

// ResetClosedAt resets all changes to the "closed_at" field.
func (m *CourtCaseMutation) ResetClosedAt() {
	m.closed_at = nil
	delete(m.clearedFields, courtcase.FieldClosedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *CourtCaseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CourtCaseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CourtCase entity.
// If the CourtCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourtCaseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CourtCaseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CourtCaseMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CourtCaseMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CourtCase entity.
// If the CourtCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourtCaseMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CourtCaseMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearCourt clears the "court" edge to the Court entity.
func (m *CourtCaseMutation) ClearCourt() {
	m.clearedcourt = true
	m.clearedFields[courtcase.FieldCourtID] = struct{}{}
}

// CourtCleared reports if the "court" edge to the Court entity was cleared.
func (m *CourtCaseMutation) CourtCleared() bool {
	return m.clearedcourt
}

// CourtIDs returns the "court" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CourtID instead. It exists only for internal usage by the builders.
func (m *CourtCaseMutation) CourtIDs() (ids []uuid.UUID) {
	if id := m.court; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCourt resets all changes to the "court" edge.
func (m *CourtCaseMutation) ResetCourt() {
	m.court = nil
	m.clearedcourt = false
}

// AddParticipantIDs adds the "participants" edge to the Participant entity by ids.
func (m *CourtCaseMutation) AddParticipantIDs(ids ...uuid.UUID) {
	if m.participants == nil {
		m.participants = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.participants[ids[i]] = struct{}{}
	}
}

// ClearParticipants clears the "participants" edge to the Participant entity.
func (m *CourtCaseMutation) ClearParticipants() {
	m.clearedparticipants = true
}

// ParticipantsCleared reports if the "participants" edge to the Participant entity was cleared.
func (m *CourtCaseMutation) ParticipantsCleared() bool {
	return m.clearedparticipants
}

// RemoveParticipantIDs removes the "participants" edge to the Participant entity by IDs.
func (m *CourtCaseMutation) RemoveParticipantIDs(ids ...uuid.UUID) {
	if m.removedparticipants == nil {
		m.removedparticipants = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.participants, ids[i])
		m.removedparticipants[ids[i]] = struct{}{}
	}
}

// RemovedParticipants returns the removed IDs of the "participants" edge to the Participant entity.
func (m *CourtCaseMutation) RemovedParticipantsIDs() (ids []uuid.UUID) {
	for id := range m.removedparticipants {
		ids = append(ids, id)
	}
	return
}

// ParticipantsIDs returns the "participants" edge IDs in the mutation.
func (m *CourtCaseMutation) ParticipantsIDs() (ids []uuid.UUID) {
	for id := range m.participants {
		ids = append(ids, id)
	}
	return
}

// ResetParticipants resets all changes to the "participants" edge.
func (m *CourtCaseMutation) ResetParticipants() {
	m.participants = nil
	m.clearedparticipants = false
	m.removedparticipants = nil
}

// AddBookingIDs adds the "bookings" edge to the Booking entity by ids.
func (m *CourtCaseMutation) AddBookingIDs(ids ...uuid.UUID) {
	if m.bookings == nil {
		m.bookings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.bookings[ids[i]] = struct{}{}
	}
}

// ClearBookings clears the "bookings" edge to the Booking entity.
func (m *CourtCaseMutation) ClearBookings() {
	m.clearedbookings = true
}

// BookingsCleared reports if the "bookings" edge to the Booking entity was cleared.
func (m *CourtCaseMutation) BookingsCleared() bool {
	return m.clearedbookings
}

// RemoveBookingIDs removes the "bookings" edge to the Booking entity by IDs.
func (m *CourtCaseMutation) RemoveBookingIDs(ids ...uuid.UUID) {
	if m.removedbookings == nil {
		m.removedbookings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.bookings, ids[i])
		m.removedbookings[ids[i]] = struct{}{}
	}
}

// RemovedBookings returns the removed IDs of the "bookings" edge to the Booking entity.
func (m *CourtCaseMutation) RemovedBookingsIDs() (ids []uuid.UUID) {
	for id := range m.removedbookings {
		ids = append(ids, id)
	}
	return
}

// BookingsIDs returns the "bookings" edge IDs in the mutation.
func (m *CourtCaseMutation) BookingsIDs() (ids []uuid.UUID) {
	for id := range m.bookings {
		ids = append(ids, id)
	}
	return
}

// ResetBookings resets all changes to the "bookings" edge.
func (m *CourtCaseMutation) ResetBookings() {
	m.bookings = nil
	m.clearedbookings = false
	m.removedbookings = nil
}

// Where appends a list predicates to the CourtCaseMutation builder.
func (m *CourtCaseMutation) Where(ps ...predicate.CourtCase) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CourtCaseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CourtCaseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CourtCase, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CourtCaseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CourtCaseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CourtCase).
func (m *CourtCaseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CourtCaseMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.court != nil {
		fields = append(fields, courtcase.FieldCourtID)
	}
	if m.reference != nil {
		fields = append(fields, courtcase.FieldReference)
	}
	if m.state != nil {
		fields = append(fields, courtcase.FieldState)
	}
	if m.origin != nil {
		fields = append(fields, courtcase.FieldOrigin)
	}
	if m.test != nil {
		fields = append(fields, courtcase.FieldTest)
	}
	if m.closed_at != nil {
		fields = append(fields, courtcase.FieldClosedAt)
	}
	if m.created_at != nil {
		fields = append(fields, courtcase.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, courtcase.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CourtCaseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case courtcase.FieldCourtID:
		return m.CourtID()
	case courtcase.FieldReference:
		return m.Reference()
	case courtcase.FieldState:
		return m.State()
	case courtcase.FieldOrigin:
		return m.Origin()
	case courtcase.FieldTest:
		return m.Test()
	case courtcase.FieldClosedAt:
		return m.ClosedAt()
	case courtcase.FieldCreatedAt:
		return m.CreatedAt()
	case courtcase.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CourtCaseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case courtcase.FieldCourtID:
		return m.OldCourtID(ctx)
	case courtcase.FieldReference:
		return m.OldReference(ctx)
	case courtcase.FieldState:
		return m.OldState(ctx)
	case courtcase.FieldOrigin:
		return m.OldOrigin(ctx)
	case courtcase.FieldTest:
		return m.OldTest(ctx)
	case courtcase.FieldClosedAt:
		return m.OldClosedAt(ctx)
	case courtcase.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case courtcase.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CourtCase field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CourtCaseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case courtcase.FieldCourtID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourtID(v)
		return nil
	case courtcase.FieldReference:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReference(v)
		return nil
	case courtcase.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case courtcase.FieldOrigin:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrigin(v)
		return nil
	case courtcase.FieldTest:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTest(v)
		return nil
	case courtcase.FieldClosedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClosedAt(v)
		return nil
	case courtcase.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case courtcase.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CourtCase field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CourtCaseMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CourtCaseMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CourtCaseMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CourtCase numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CourtCaseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(courtcase.FieldClosedAt) {
		fields = append(fields, courtcase.FieldClosedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CourtCaseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CourtCaseMutation) ClearField(name string) error {
	switch name {
	case courtcase.FieldClosedAt:
		m.ClearClosedAt()
		return nil
	}
	return fmt.Errorf("unknown CourtCase nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CourtCaseMutation) ResetField(name string) error {
	switch name {
	case courtcase.FieldCourtID:
		m.ResetCourtID()
		return nil
	case courtcase.FieldReference:
		m.ResetReference()
		return nil
	case courtcase.FieldState:
		m.ResetState()
		return nil
	case courtcase.FieldOrigin:
		m.ResetOrigin()
		return nil
	case courtcase.FieldTest:
		m.ResetTest()
		return nil
	case courtcase.FieldClosedAt:
		m.ResetClosedAt()
		return nil
	case courtcase.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case courtcase.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CourtCase field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CourtCaseMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.court != nil {
		edges = append(edges, courtcase.EdgeCourt)
	}
	if m.participants != nil {
		edges = append(edges, courtcase.EdgeParticipants)
	}
	if m.bookings != nil {
		edges = append(edges, courtcase.EdgeBookings)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CourtCaseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case courtcase.EdgeCourt:
		if id := m.court; id != nil {
			return []ent.Value{*id}
		}
	case courtcase.EdgeParticipants:
		ids := make([]ent.Value, 0, len(m.participants))
		for id := range m.participants {
			ids = append(ids, id)
		}
		return ids
	case courtcase.EdgeBookings:
		ids := make([]ent.Value, 0, len(m.bookings))
		for id := range m.bookings {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CourtCaseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedparticipants != nil {
		edges = append(edges, courtcase.EdgeParticipants)
	}
	if m.removedbookings != nil {
		edges = append(edges, courtcase.EdgeBookings)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CourtCaseMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case courtcase.EdgeParticipants:
		ids := make([]ent.Value, 0, len(m.removedparticipants))
		for id := range m.removedparticipants {
			ids = append(ids, id)
		}
		return ids
	case courtcase.EdgeBookings:
		ids := make([]ent.Value, 0, len(m.removedbookings))
		for id := range m.removedbookings {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CourtCaseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedcourt {
		edges = append(edges, courtcase.EdgeCourt)
	}
	if m.clearedparticipants {
		edges = append(edges, courtcase.EdgeParticipants)
	}
	if m.clearedbookings {
		edges = append(edges, courtcase.EdgeBookings)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CourtCaseMutation) EdgeCleared(name string) bool {
	switch name {
	case courtcase.EdgeCourt:
		return m.clearedcourt
	case courtcase.EdgeParticipants:
		return m.clearedparticipants
	case courtcase.EdgeBookings:
		return m.clearedbookings
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CourtCaseMutation) ClearEdge(name string) error {
	switch name {
	case courtcase.EdgeCourt:
		m.ClearCourt()
		return nil
	}
	return fmt.Errorf("unknown CourtCase unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CourtCaseMutation) ResetEdge(name string) error {
	switch name {
	case courtcase.EdgeCourt:
		m.ResetCourt()
		return nil
	case courtcase.EdgeParticipants:
		m.ResetParticipants()
		return nil
	case courtcase.EdgeBookings:
		m.ResetBookings()
		return nil
	}
	return fmt.Errorf("unknown CourtCase edge %s", name)
}

// InviteMutation represents an operation that mutates the Invite nodes in the graph.
type InviteMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	email         *string
	first_name    *string
	last_name     *string
	invited_at    *time.Time
	clearedFields map[string]struct{}
	user          *uuid.UUID
	cleareduser   bool
	done          bool
	oldValue      func(context.Context) (*Invite, error)
	predicates    []predicate.Invite
}

var _ ent.Mutation = (*InviteMutation)(nil)

// inviteOption allows management of the mutation configuration using functional options.
type inviteOption func(*InviteMutation)

// newInviteMutation creates new mutation for the Invite entity.
func newInviteMutation(c config, op Op, opts ...inviteOption) *InviteMutation {
	m := &InviteMutation{
		config:        c,
		op:            op,
		typ:           TypeInvite,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInviteID sets the ID field of the mutation.
func withInviteID(id uuid.UUID) inviteOption {
	return func(m *InviteMutation) {
		var (
			err   error
			once  sync.Once
			value *Invite
		)
		m.oldValue = func(ctx context.Context) (*Invite, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Invite.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInvite sets the old Invite of the mutation.
func withInvite(node *Invite) inviteOption {
	return func(m *InviteMutation) {
		m.oldValue = func(context.Context) (*Invite, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InviteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InviteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Invite entities.
func (m *InviteMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InviteMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InviteMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Invite.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *InviteMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *InviteMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Invite entity.
// If the Invite object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InviteMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *InviteMutation) ResetUserID() {
	m.user = nil
}

// SetEmail sets the "email" field.
func (m *InviteMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *InviteMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Invite entity.
// If the Invite object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InviteMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *InviteMutation) ResetEmail() {
	m.email = nil
}

// SetFirstName sets the "first_name" field.
func (m *InviteMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *InviteMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the Invite entity.
// If the Invite object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InviteMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ClearFirstName clears the value of the "first_name" field.
func (m *InviteMutation) ClearFirstName() {
	m.first_name = nil
	m.clearedFields[invite.FieldFirstName] = struct{}{}
}

// FirstNameCleared returns if the "first_name" field was cleared in this mutation.
func (m *InviteMutation) FirstNameCleared() bool {
	_, ok := m.clearedFields[invite.FieldFirstName]
	return ok
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *InviteMutation) ResetFirstName() {
	m.first_name = nil
	delete(m.clearedFields, invite.FieldFirstName)
}

// SetLastName sets the "last_name" field.
func (m *InviteMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *InviteMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the Invite entity.
// If the Invite object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InviteMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ClearLastName clears the value of the "last_name" field.
func (m *InviteMutation) ClearLastName() {
	m.last_name = nil
	m.clearedFields[invite.FieldLastName] = struct{}{}
}

// LastNameCleared returns if the "last_name" field was cleared in this mutation.
func (m *InviteMutation) LastNameCleared() bool {
	_, ok := m.clearedFields[invite.FieldLastName]
	return ok
}

// ResetLastName resets all changes to the "last_name" field.
func (m *InviteMutation) ResetLastName() {
	m.last_name = nil
	delete(m.clearedFields, invite.FieldLastName)
}

// SetInvitedAt sets the "invited_at" field.
func (m *InviteMutation) SetInvitedAt(t time.Time) {
	m.invited_at = &t
}

// InvitedAt returns the value of the "invited_at" field in the mutation.
func (m *InviteMutation) InvitedAt() (r time.Time, exists bool) {
	v := m.invited_at
	if v == nil {
		return
	}
	return *v, true
}

// OldInvitedAt returns the old "invited_at" field's value of the Invite entity.
// If the Invite object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InviteMutation) OldInvitedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvitedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvitedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvitedAt: %w", err)
	}
	return oldValue.InvitedAt, nil
}

// ResetInvitedAt resets all changes to the "invited_at" field.
func (m *InviteMutation) ResetInvitedAt() {
	m.invited_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *InviteMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[invite.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *InviteMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *InviteMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *InviteMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the InviteMutation builder.
func (m *InviteMutation) Where(ps ...predicate.Invite) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InviteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InviteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Invite, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InviteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InviteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Invite).
func (m *InviteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InviteMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.user != nil {
		fields = append(fields, invite.FieldUserID)
	}
	if m.email != nil {
		fields = append(fields, invite.FieldEmail)
	}
	if m.first_name != nil {
		fields = append(fields, invite.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, invite.FieldLastName)
	}
	if m.invited_at != nil {
		fields = append(fields, invite.FieldInvitedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InviteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case invite.FieldUserID:
		return m.UserID()
	case invite.FieldEmail:
		return m.Email()
	case invite.FieldFirstName:
		return m.FirstName()
	case invite.FieldLastName:
		return m.LastName()
	case invite.FieldInvitedAt:
		return m.InvitedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InviteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case invite.FieldUserID:
		return m.OldUserID(ctx)
	case invite.FieldEmail:
		return m.OldEmail(ctx)
	case invite.FieldFirstName:
		return m.OldFirstName(ctx)
	case invite.FieldLastName:
		return m.OldLastName(ctx)
	case invite.FieldInvitedAt:
		return m.OldInvitedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Invite field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InviteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case invite.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case invite.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case invite.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case invite.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case invite.FieldInvitedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvitedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Invite field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InviteMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InviteMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InviteMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Invite numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InviteMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(invite.FieldFirstName) {
		fields = append(fields, invite.FieldFirstName)
	}
	if m.FieldCleared(invite.FieldLastName) {
		fields = append(fields, invite.FieldLastName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InviteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InviteMutation) ClearField(name string) error {
	switch name {
	case invite.FieldFirstName:
		m.ClearFirstName()
		return nil
	case invite.FieldLastName:
		m.ClearLastName()
		return nil
	}
	return fmt.Errorf("unknown Invite nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InviteMutation) ResetField(name string) error {
	switch name {
	case invite.FieldUserID:
		m.ResetUserID()
		return nil
	case invite.FieldEmail:
		m.ResetEmail()
		return nil
	case invite.FieldFirstName:
		m.ResetFirstName()
		return nil
	case invite.FieldLastName:
		m.ResetLastName()
		return nil
	case invite.FieldInvitedAt:
		m.ResetInvitedAt()
		return nil
	}
	return fmt.Errorf("unknown Invite field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InviteMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, invite.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InviteMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case invite.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InviteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InviteMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InviteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, invite.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InviteMutation) EdgeCleared(name string) bool {
	switch name {
	case invite.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InviteMutation) ClearEdge(name string) error {
	switch name {
	case invite.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Invite unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InviteMutation) ResetEdge(name string) error {
	switch name {
	case invite.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown Invite edge %s", name)
}

// ParticipantMutation represents an operation that mutates the Participant nodes in the graph.
type ParticipantMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	participant_type  *string
	first_name        *string
	last_name         *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	court_case        *uuid.UUID
	clearedcourt_case bool
	bookings          map[uuid.UUID]struct{}
	removedbookings   map[uuid.UUID]struct{}
	clearedbookings   bool
	done              bool
	oldValue          func(context.Context) (*Participant, error)
	predicates        []predicate.Participant
}

var _ ent.Mutation = (*ParticipantMutation)(nil)

// participantOption allows management of the mutation configuration using functional options.
type participantOption func(*ParticipantMutation)

// newParticipantMutation creates new mutation for the Participant entity.
func newParticipantMutation(c config, op Op, opts ...participantOption) *ParticipantMutation {
	m := &ParticipantMutation{
		config:        c,
		op:            op,
		typ:           TypeParticipant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withParticipantID sets the ID field of the mutation.
func withParticipantID(id uuid.UUID) participantOption {
	return func(m *ParticipantMutation) {
		var (
			err   error
			once  sync.Once
			value *Participant
		)
		m.oldValue = func(ctx context.Context) (*Participant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Participant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withParticipant sets the old Participant of the mutation.
func withParticipant(node *Participant) participantOption {
	return func(m *ParticipantMutation) {
		m.oldValue = func(context.Context) (*Participant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ParticipantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ParticipantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Participant entities.
func (m *ParticipantMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ParticipantMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ParticipantMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Participant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCaseID sets the "case_id" field.
func (m *ParticipantMutation) SetCaseID(u uuid.UUID) {
	m.court_case = &u
}

// CaseID returns the value of the "case_id" field in the mutation.
func (m *ParticipantMutation) CaseID() (r uuid.UUID, exists bool) {
	v := m.court_case
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseID returns the old "case_id" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldCaseID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseID: %w", err)
	}
	return oldValue.CaseID, nil
}

// ResetCaseID resets all changes to the "case_id" field.
func (m *ParticipantMutation) ResetCaseID() {
	m.court_case = nil
}

// SetParticipantType sets the "participant_type" field.
func (m *ParticipantMutation) SetParticipantType(s string) {
	m.participant_type = &s
}

// ParticipantType returns the value of the "participant_type" field in the mutation.
func (m *ParticipantMutation) ParticipantType() (r string, exists bool) {
	v := m.participant_type
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipantType returns the old "participant_type" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldParticipantType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipantType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipantType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipantType: %w", err)
	}
	return oldValue.ParticipantType, nil
}

// ResetParticipantType resets all changes to the "participant_type" field.
func (m *ParticipantMutation) ResetParticipantType() {
	m.participant_type = nil
}

// SetFirstName sets the "first_name" field.
func (m *ParticipantMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *ParticipantMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ClearFirstName clears the value of the "first_name" field.
func (m *ParticipantMutation) ClearFirstName() {
	m.first_name = nil
	m.clearedFields[participant.FieldFirstName] = struct{}{}
}

// FirstNameCleared returns if the "first_name" field was cleared in this mutation.
func (m *ParticipantMutation) FirstNameCleared() bool {
	_, ok := m.clearedFields[participant.FieldFirstName]
	return ok
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *ParticipantMutation) ResetFirstName() {
	m.first_name = nil
	delete(m.clearedFields, participant.FieldFirstName)
}

// SetLastName sets the "last_name" field.
func (m *ParticipantMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *ParticipantMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ClearLastName clears the value of the "last_name" field.
func (m *ParticipantMutation) ClearLastName() {
	m.last_name = nil
	m.clearedFields[participant.FieldLastName] = struct{}{}
}

// LastNameCleared returns if the "last_name" field was cleared in this mutation.
func (m *ParticipantMutation) LastNameCleared() bool {
	_, ok := m.clearedFields[participant.FieldLastName]
	return ok
}

// ResetLastName resets all changes to the "last_name" field.
func (m *ParticipantMutation) ResetLastName() {
	m.last_name = nil
	delete(m.clearedFields, participant.FieldLastName)
}

// SetCreatedAt sets the "created_at" field.
func (m *ParticipantMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ParticipantMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ParticipantMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCourtCaseID sets the "court_case" edge to the CourtCase entity by id.
func (m *ParticipantMutation) SetCourtCaseID(id uuid.UUID) {
	m.court_case = &id
}

// ClearCourtCase clears the "court_case" edge to the CourtCase entity.
func (m *ParticipantMutation) ClearCourtCase() {
	m.clearedcourt_case = true
	m.clearedFields[participant.FieldCaseID] = struct{}{}
}

// CourtCaseCleared reports if the "court_case" edge to the CourtCase entity was cleared.
func (m *ParticipantMutation) CourtCaseCleared() bool {
	return m.clearedcourt_case
}

// CourtCaseID returns the "court_case" edge ID in the mutation.
func (m *ParticipantMutation) CourtCaseID() (id uuid.UUID, exists bool) {
	if m.court_case != nil {
		return *m.court_case, true
	}
	return
}

// CourtCaseIDs returns the "court_case" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CourtCaseID instead. It exists only for internal usage by the builders.
func (m *ParticipantMutation) CourtCaseIDs() (ids []uuid.UUID) {
	if id := m.court_case; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCourtCase resets all changes to the "court_case" edge.
func (m *ParticipantMutation) ResetCourtCase() {
	m.court_case = nil
	m.clearedcourt_case = false
}

// AddBookingIDs adds the "bookings" edge to the Booking entity by ids.
func (m *ParticipantMutation) AddBookingIDs(ids ...uuid.UUID) {
	if m.bookings == nil {
		m.bookings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.bookings[ids[i]] = struct{}{}
	}
}

// ClearBookings clears the "bookings" edge to the Booking entity.
func (m *ParticipantMutation) ClearBookings() {
	m.clearedbookings = true
}

// BookingsCleared reports if the "bookings" edge to the Booking entity was cleared.
func (m *ParticipantMutation) BookingsCleared() bool {
	return m.clearedbookings
}

// RemoveBookingIDs removes the "bookings" edge to the Booking entity by IDs.
func (m *ParticipantMutation) RemoveBookingIDs(ids ...uuid.UUID) {
	if m.removedbookings == nil {
		m.removedbookings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.bookings, ids[i])
		m.removedbookings[ids[i]] = struct{}{}
	}
}

// RemovedBookings returns the removed IDs of the "bookings" edge to the Booking entity.
func (m *ParticipantMutation) RemovedBookingsIDs() (ids []uuid.UUID) {
	for id := range m.removedbookings {
		ids = append(ids, id)
	}
	return
}

// BookingsIDs returns the "bookings" edge IDs in the mutation.
func (m *ParticipantMutation) BookingsIDs() (ids []uuid.UUID) {
	for id := range m.bookings {
		ids = append(ids, id)
	}
	return
}

// ResetBookings resets all changes to the "bookings" edge.
func (m *ParticipantMutation) ResetBookings() {
	m.bookings = nil
	m.clearedbookings = false
	m.removedbookings = nil
}

// Where appends a list predicates to the ParticipantMutation builder.
func (m *ParticipantMutation) Where(ps ...predicate.Participant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ParticipantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ParticipantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Participant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ParticipantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ParticipantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Participant).
func (m *ParticipantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ParticipantMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.court_case != nil {
		fields = append(fields, participant.FieldCaseID)
	}
	if m.participant_type != nil {
		fields = append(fields, participant.FieldParticipantType)
	}
	if m.first_name != nil {
		fields = append(fields, participant.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, participant.FieldLastName)
	}
	if m.created_at != nil {
		fields = append(fields, participant.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ParticipantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case participant.FieldCaseID:
		return m.CaseID()
	case participant.FieldParticipantType:
		return m.ParticipantType()
	case participant.FieldFirstName:
		return m.FirstName()
	case participant.FieldLastName:
		return m.LastName()
	case participant.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ParticipantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case participant.FieldCaseID:
		return m.OldCaseID(ctx)
	case participant.FieldParticipantType:
		return m.OldParticipantType(ctx)
	case participant.FieldFirstName:
		return m.OldFirstName(ctx)
	case participant.FieldLastName:
		return m.OldLastName(ctx)
	case participant.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Participant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParticipantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case participant.FieldCaseID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseID(v)
		return nil
	case participant.FieldParticipantType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipantType(v)
		return nil
	case participant.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case participant.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case participant.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Participant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ParticipantMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ParticipantMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParticipantMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Participant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ParticipantMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(participant.FieldFirstName) {
		fields = append(fields, participant.FieldFirstName)
	}
	if m.FieldCleared(participant.FieldLastName) {
		fields = append(fields, participant.FieldLastName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ParticipantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ParticipantMutation) ClearField(name string) error {
	switch name {
	case participant.FieldFirstName:
		m.ClearFirstName()
		return nil
	case participant.FieldLastName:
		m.ClearLastName()
		return nil
	}
	return fmt.Errorf("unknown Participant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ParticipantMutation) ResetField(name string) error {
	switch name {
	case participant.FieldCaseID:
		m.ResetCaseID()
		return nil
	case participant.FieldParticipantType:
		m.ResetParticipantType()
		return nil
	case participant.FieldFirstName:
		m.ResetFirstName()
		return nil
	case participant.FieldLastName:
		m.ResetLastName()
		return nil
	case participant.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Participant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ParticipantMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.court_case != nil {
		edges = append(edges, participant.EdgeCourtCase)
	}
	if m.bookings != nil {
		edges = append(edges, participant.EdgeBookings)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ParticipantMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case participant.EdgeCourtCase:
		if id := m.court_case; id != nil {
			return []ent.Value{*id}
		}
	case participant.EdgeBookings:
		ids := make([]ent.Value, 0, len(m.bookings))
		for id := range m.bookings {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ParticipantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedbookings != nil {
		edges = append(edges, participant.EdgeBookings)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ParticipantMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case participant.EdgeBookings:
		ids := make([]ent.Value, 0, len(m.removedbookings))
		for id := range m.removedbookings {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ParticipantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcourt_case {
		edges = append(edges, participant.EdgeCourtCase)
	}
	if m.clearedbookings {
		edges = append(edges, participant.EdgeBookings)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ParticipantMutation) EdgeCleared(name string) bool {
	switch name {
	case participant.EdgeCourtCase:
		return m.clearedcourt_case
	case participant.EdgeBookings:
		return m.clearedbookings
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ParticipantMutation) ClearEdge(name string) error {
	switch name {
	case participant.EdgeCourtCase:
		m.ClearCourtCase()
		return nil
	}
	return fmt.Errorf("unknown Participant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ParticipantMutation) ResetEdge(name string) error {
	switch name {
	case participant.EdgeCourtCase:
		m.ResetCourtCase()
		return nil
	case participant.EdgeBookings:
		m.ResetBookings()
		return nil
	}
	return fmt.Errorf("unknown Participant edge %s", name)
}

// RecordingMutation represents an operation that mutates the Recording nodes in the graph.
type RecordingMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	version                *int
	addversion             *int
	filename               *string
	duration               *int
	addduration            *int
	created_at             *time.Time
	clearedFields          map[string]struct{}
	capture_session        *uuid.UUID
	clearedcapture_session bool
	parent                 *uuid.UUID
	clearedparent          bool
	children               map[uuid.UUID]struct{}
	removedchildren        map[uuid.UUID]struct{}
	clearedchildren        bool
	done                   bool
	oldValue               func(context.Context) (*Recording, error)
	predicates             []predicate.Recording
}

var _ ent.Mutation = (*RecordingMutation)(nil)

// recordingOption allows management of the mutation configuration using functional options.
type recordingOption func(*RecordingMutation)

// newRecordingMutation creates new mutation for the Recording entity.
func newRecordingMutation(c config, op Op, opts ...recordingOption) *RecordingMutation {
	m := &RecordingMutation{
		config:        c,
		op:            op,
		typ:           TypeRecording,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRecordingID sets the ID field of the mutation.
func withRecordingID(id uuid.UUID) recordingOption {
	return func(m *RecordingMutation) {
		var (
			err   error
			once  sync.Once
			value *Recording
		)
		m.oldValue = func(ctx context.Context) (*Recording, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Recording.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRecording sets the old Recording of the mutation.
func withRecording(node *Recording) recordingOption {
	return func(m *RecordingMutation) {
		m.oldValue = func(context.Context) (*Recording, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RecordingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RecordingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Recording entities.
func (m *RecordingMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RecordingMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RecordingMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Recording.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCaptureSessionID sets the "capture_session_id" field.
func (m *RecordingMutation) SetCaptureSessionID(u uuid.UUID) {
	m.capture_session = &u
}

// CaptureSessionID returns the value of the "capture_session_id" field in the mutation.
func (m *RecordingMutation) CaptureSessionID() (r uuid.UUID, exists bool) {
	v := m.capture_session
	if v == nil {
		return
	}
	return *v, true
}

// OldCaptureSessionID returns the old "capture_session_id" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldCaptureSessionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaptureSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaptureSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaptureSessionID: %w", err)
	}
	return oldValue.CaptureSessionID, nil
}

// ResetCaptureSessionID resets all changes to the "capture_session_id" field.
func (m *RecordingMutation) ResetCaptureSessionID() {
	m.capture_session = nil
}

// SetParentRecordingID sets the "parent_recording_id" field.
func (m *RecordingMutation) SetParentRecordingID(u uuid.UUID) {
	m.parent = &u
}

// ParentRecordingID returns the value of the "parent_recording_id" field in the mutation.
func (m *RecordingMutation) ParentRecordingID() (r uuid.UUID, exists bool) {
	v := m.parent
	if v == nil {
		return
	}
	return *v, true
}

// OldParentRecordingID returns the old "parent_recording_id" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldParentRecordingID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentRecordingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentRecordingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentRecordingID: %w", err)
	}
	return oldValue.ParentRecordingID, nil
}

// ClearParentRecordingID clears the value of the "parent_recording_id" field.
func (m *RecordingMutation) ClearParentRecordingID() {
	m.parent = nil
	m.clearedFields[recording.FieldParentRecordingID] = struct{}{}
}

// ParentRecordingIDCleared returns if the "parent_recording_id" field was cleared in this mutation.
func (m *RecordingMutation) ParentRecordingIDCleared() bool {
	_, ok := m.clearedFields[recording.FieldParentRecordingID]
	return ok
}

// ResetParentRecordingID resets all changes to the "parent_recording_id" field.
func (m *RecordingMutation) ResetParentRecordingID() {
	m.parent = nil
	delete(m.clearedFields, recording.FieldParentRecordingID)
}

// SetVersion sets the "version" field.
func (m *RecordingMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *RecordingMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *RecordingMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *RecordingMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *RecordingMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetFilename sets the "filename" field.
func (m *RecordingMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *RecordingMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ClearFilename clears the value of the "filename" field.
func (m *RecordingMutation) ClearFilename() {
	m.filename = nil
	m.clearedFields[recording.FieldFilename] = struct{}{}
}

// FilenameCleared returns if the "filename" field was cleared in this mutation.
func (m *RecordingMutation) FilenameCleared() bool {
	_, ok := m.clearedFields[recording.FieldFilename]
	return ok
}

// ResetFilename resets all changes to the "filename" field.
func (m *RecordingMutation) ResetFilename() {
	m.filename = nil
	delete(m.clearedFields, recording.FieldFilename)
}

// SetDuration sets the "duration" field.
func (m *RecordingMutation) SetDuration(i int) {
	m.duration = &i
	m.addduration = nil
}

// Duration returns the value of the "duration" field in the mutation.
func (m *RecordingMutation) Duration() (r int, exists bool) {
	v := m.duration
	if v == nil {
		return
	}
	return *v, true
}

// OldDuration returns the old "duration" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldDuration(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuration: %w", err)
	}
	return oldValue.Duration, nil
}

// AddDuration adds i to the "duration" field.
func (m *RecordingMutation) AddDuration(i int) {
	if m.addduration != nil {
		*m.addduration += i
	} else {
		m.addduration = &i
	}
}

// AddedDuration returns the value that was added to the "duration" field in this mutation.
func (m *RecordingMutation) AddedDuration() (r int, exists bool) {
	v := m.addduration
	if v == nil {
		return
	}
	return *v, true
}

// ResetDuration resets all changes to the "duration" field.
func (m *RecordingMutation) ResetDuration() {
	m.duration = nil
	m.addduration = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RecordingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RecordingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RecordingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearCaptureSession clears the "capture_session" edge to the CaptureSession entity.
func (m *RecordingMutation) ClearCaptureSession() {
	m.clearedcapture_session = true
	m.clearedFields[recording.FieldCaptureSessionID] = struct{}{}
}

// CaptureSessionCleared reports if the "capture_session" edge to the CaptureSession entity was cleared.
func (m *RecordingMutation) CaptureSessionCleared() bool {
	return m.clearedcapture_session
}

// CaptureSessionIDs returns the "capture_session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CaptureSessionID instead. It exists only for internal usage by the builders.
func (m *RecordingMutation) CaptureSessionIDs() (ids []uuid.UUID) {
	if id := m.capture_session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCaptureSession resets all changes to the "capture_session" edge.
func (m *RecordingMutation) ResetCaptureSession() {
	m.capture_session = nil
	m.clearedcapture_session = false
}

// SetParentID sets the "parent" edge to the Recording entity by id.
func (m *RecordingMutation) SetParentID(id uuid.UUID) {
	m.parent = &id
}

// ClearParent clears the "parent" edge to the Recording entity.
func (m *RecordingMutation) ClearParent() {
	m.clearedparent = true
	m.clearedFields[recording.FieldParentRecordingID] = struct{}{}
}

// ParentCleared reports if the "parent" edge to the Recording entity was cleared.
func (m *RecordingMutation) ParentCleared() bool {
	return m.ParentRecordingIDCleared() || m.clearedparent
}

// ParentID returns the "parent" edge ID in the mutation.
func (m *RecordingMutation) ParentID() (id uuid.UUID, exists bool) {
	if m.parent != nil {
		return *m.parent, true
	}
	return
}

// ParentIDs returns the "parent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ParentID instead. It exists only for internal usage by the builders.
func (m *RecordingMutation) ParentIDs() (ids []uuid.UUID) {
	if id := m.parent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParent resets all changes to the "parent" edge.
func (m *RecordingMutation) ResetParent() {
	m.parent = nil
	m.clearedparent = false
}

// AddChildIDs adds the "children" edge to the Recording entity by ids.
func (m *RecordingMutation) AddChildIDs(ids ...uuid.UUID) {
	if m.children == nil {
		m.children = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.children[ids[i]] = struct{}{}
	}
}

// ClearChildren clears the "children" edge to the Recording entity.
func (m *RecordingMutation) ClearChildren() {
	m.clearedchildren = true
}

// ChildrenCleared reports if the "children" edge to the Recording entity was cleared.
func (m *RecordingMutation) ChildrenCleared() bool {
	return m.clearedchildren
}

// RemoveChildIDs removes the "children" edge to the Recording entity by IDs.
func (m *RecordingMutation) RemoveChildIDs(ids ...uuid.UUID) {
	if m.removedchildren == nil {
		m.removedchildren = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.children, ids[i])
		m.removedchildren[ids[i]] = struct{}{}
	}
}

// RemovedChildren returns the removed IDs of the "children" edge to the Recording entity.
func (m *RecordingMutation) RemovedChildrenIDs() (ids []uuid.UUID) {
	for id := range m.removedchildren {
		ids = append(ids, id)
	}
	return
}

// ChildrenIDs returns the "children" edge IDs in the mutation.
func (m *RecordingMutation) ChildrenIDs() (ids []uuid.UUID) {
	for id := range m.children {
		ids = append(ids, id)
	}
	return
}

// ResetChildren resets all changes to the "children" edge.
func (m *RecordingMutation) ResetChildren() {
	m.children = nil
	m.clearedchildren = false
	m.removedchildren = nil
}

// Where appends a list predicates to the RecordingMutation builder.
func (m *RecordingMutation) Where(ps ...predicate.Recording) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RecordingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RecordingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Recording, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RecordingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RecordingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Recording).
func (m *RecordingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RecordingMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.capture_session != nil {
		fields = append(fields, recording.FieldCaptureSessionID)
	}
	if m.parent != nil {
		fields = append(fields, recording.FieldParentRecordingID)
	}
	if m.version != nil {
		fields = append(fields, recording.FieldVersion)
	}
	if m.filename != nil {
		fields = append(fields, recording.FieldFilename)
	}
	if m.duration != nil {
		fields = append(fields, recording.FieldDuration)
	}
	if m.created_at != nil {
		fields = append(fields, recording.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RecordingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case recording.FieldCaptureSessionID:
		return m.CaptureSessionID()
	case recording.FieldParentRecordingID:
		return m.ParentRecordingID()
	case recording.FieldVersion:
		return m.Version()
	case recording.FieldFilename:
		return m.Filename()
	case recording.FieldDuration:
		return m.Duration()
	case recording.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RecordingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case recording.FieldCaptureSessionID:
		return m.OldCaptureSessionID(ctx)
	case recording.FieldParentRecordingID:
		return m.OldParentRecordingID(ctx)
	case recording.FieldVersion:
		return m.OldVersion(ctx)
	case recording.FieldFilename:
		return m.OldFilename(ctx)
	case recording.FieldDuration:
		return m.OldDuration(ctx)
	case recording.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Recording field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecordingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case recording.FieldCaptureSessionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaptureSessionID(v)
		return nil
	case recording.FieldParentRecordingID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentRecordingID(v)
		return nil
	case recording.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case recording.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case recording.FieldDuration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuration(v)
		return nil
	case recording.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Recording field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RecordingMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, recording.FieldVersion)
	}
	if m.addduration != nil {
		fields = append(fields, recording.FieldDuration)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RecordingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case recording.FieldVersion:
		return m.AddedVersion()
	case recording.FieldDuration:
		return m.AddedDuration()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecordingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case recording.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case recording.FieldDuration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDuration(v)
		return nil
	}
	return fmt.Errorf("unknown Recording numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RecordingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(recording.FieldParentRecordingID) {
		fields = append(fields, recording.FieldParentRecordingID)
	}
	if m.FieldCleared(recording.FieldFilename) {
		fields = append(fields, recording.FieldFilename)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RecordingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RecordingMutation) ClearField(name string) error {
	switch name {
	case recording.FieldParentRecordingID:
		m.ClearParentRecordingID()
		return nil
	case recording.FieldFilename:
		m.ClearFilename()
		return nil
	}
	return fmt.Errorf("unknown Recording nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RecordingMutation) ResetField(name string) error {
	switch name {
	case recording.FieldCaptureSessionID:
		m.ResetCaptureSessionID()
		return nil
	case recording.FieldParentRecordingID:
		m.ResetParentRecordingID()
		return nil
	case recording.FieldVersion:
		m.ResetVersion()
		return nil
	case recording.FieldFilename:
		m.ResetFilename()
		return nil
	case recording.FieldDuration:
		m.ResetDuration()
		return nil
	case recording.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Recording field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RecordingMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.capture_session != nil {
		edges = append(edges, recording.EdgeCaptureSession)
	}
	if m.parent != nil {
		edges = append(edges, recording.EdgeParent)
	}
	if m.children != nil {
		edges = append(edges, recording.EdgeChildren)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RecordingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case recording.EdgeCaptureSession:
		if id := m.capture_session; id != nil {
			return []ent.Value{*id}
		}
	case recording.EdgeParent:
		if id := m.parent; id != nil {
			return []ent.Value{*id}
		}
	case recording.EdgeChildren:
		ids := make([]ent.Value, 0, len(m.children))
		for id := range m.children {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RecordingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedchildren != nil {
		edges = append(edges, recording.EdgeChildren)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RecordingMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case recording.EdgeChildren:
		ids := make([]ent.Value, 0, len(m.removedchildren))
		for id := range m.removedchildren {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RecordingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedcapture_session {
		edges = append(edges, recording.EdgeCaptureSession)
	}
	if m.clearedparent {
		edges = append(edges, recording.EdgeParent)
	}
	if m.clearedchildren {
		edges = append(edges, recording.EdgeChildren)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RecordingMutation) EdgeCleared(name string) bool {
	switch name {
	case recording.EdgeCaptureSession:
		return m.clearedcapture_session
	case recording.EdgeParent:
		return m.clearedparent
	case recording.EdgeChildren:
		return m.clearedchildren
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RecordingMutation) ClearEdge(name string) error {
	switch name {
	case recording.EdgeCaptureSession:
		m.ClearCaptureSession()
		return nil
	case recording.EdgeParent:
		m.ClearParent()
		return nil
	}
	return fmt.Errorf("unknown Recording unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RecordingMutation) ResetEdge(name string) error {
	switch name {
	case recording.EdgeCaptureSession:
		m.ResetCaptureSession()
		return nil
	case recording.EdgeParent:
		m.ResetParent()
		return nil
	case recording.EdgeChildren:
		m.ResetChildren()
		return nil
	}
	return fmt.Errorf("unknown Recording edge %s", name)
}

// ShareBookingMutation represents an operation that mutates the ShareBooking nodes in the graph.
type ShareBookingMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	shared_by_user_id  *uuid.UUID
	created_at         *time.Time
	clearedFields      map[string]struct{}
	booking            *uuid.UUID
	clearedbooking     bool
	shared_with        *uuid.UUID
	clearedshared_with bool
	done               bool
	oldValue           func(context.Context) (*ShareBooking, error)
	predicates         []predicate.ShareBooking
}

var _ ent.Mutation = (*ShareBookingMutation)(nil)

// sharebookingOption allows management of the mutation configuration using functional options.
type sharebookingOption func(*ShareBookingMutation)

// newShareBookingMutation creates new mutation for the ShareBooking entity.
func newShareBookingMutation(c config, op Op, opts ...sharebookingOption) *ShareBookingMutation {
	m := &ShareBookingMutation{
		config:        c,
		op:            op,
		typ:           TypeShareBooking,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withShareBookingID sets the ID field of the mutation.
func withShareBookingID(id uuid.UUID) sharebookingOption {
	return func(m *ShareBookingMutation) {
		var (
			err   error
			once  sync.Once
			value *ShareBooking
		)
		m.oldValue = func(ctx context.Context) (*ShareBooking, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ShareBooking.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withShareBooking sets the old ShareBooking of the mutation.
func withShareBooking(node *ShareBooking) sharebookingOption {
	return func(m *ShareBookingMutation) {
		m.oldValue = func(context.Context) (*ShareBooking, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ShareBookingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ShareBookingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ShareBooking entities.
func (m *ShareBookingMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ShareBookingMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ShareBookingMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ShareBooking.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBookingID sets the "booking_id" field.
func (m *ShareBookingMutation) SetBookingID(u uuid.UUID) {
	m.booking = &u
}

// BookingID returns the value of the "booking_id" field in the mutation.
func (m *ShareBookingMutation) BookingID() (r uuid.UUID, exists bool) {
	v := m.booking
	if v == nil {
		return
	}
	return *v, true
}

// OldBookingID returns the old "booking_id" field's value of the ShareBooking entity.
// If the ShareBooking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShareBookingMutation) OldBookingID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBookingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBookingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBookingID: %w", err)
	}
	return oldValue.BookingID, nil
}

// ResetBookingID resets all changes to the "booking_id" field.
func (m *ShareBookingMutation) ResetBookingID() {
	m.booking = nil
}

// SetSharedWithUserID sets the "shared_with_user_id" field.
func (m *ShareBookingMutation) SetSharedWithUserID(u uuid.UUID) {
	m.shared_with = &u
}

// SharedWithUserID returns the value of the "shared_with_user_id" field in the mutation.
func (m *ShareBookingMutation) SharedWithUserID() (r uuid.UUID, exists bool) {
	v := m.shared_with
	if v == nil {
		return
	}
	return *v, true
}

// OldSharedWithUserID returns the old "shared_with_user_id" field's value of the ShareBooking entity.
// If the ShareBooking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShareBookingMutation) OldSharedWithUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSharedWithUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSharedWithUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSharedWithUserID: %w", err)
	}
	return oldValue.SharedWithUserID, nil
}

// ResetSharedWithUserID resets all changes to the "shared_with_user_id" field.
func (m *ShareBookingMutation) ResetSharedWithUserID() {
	m.shared_with = nil
}

// SetSharedByUserID sets the "shared_by_user_id" field.
func (m *ShareBookingMutation) SetSharedByUserID(u uuid.UUID) {
	m.shared_by_user_id = &u
}

// SharedByUserID returns the value of the "shared_by_user_id" field in the mutation.
func (m *ShareBookingMutation) SharedByUserID() (r uuid.UUID, exists bool) {
	v := m.shared_by_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSharedByUserID returns the old "shared_by_user_id" field's value of the ShareBooking entity.
// If the ShareBooking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShareBookingMutation) OldSharedByUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSharedByUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSharedByUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSharedByUserID: %w", err)
	}
	return oldValue.SharedByUserID, nil
}

// ResetSharedByUserID resets all changes to the "shared_by_user_id" field.
func (m *ShareBookingMutation) ResetSharedByUserID() {
	m.shared_by_user_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ShareBookingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ShareBookingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ShareBooking entity.
// If the ShareBooking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShareBookingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ShareBookingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearBooking clears the "booking" edge to the Booking entity.
func (m *ShareBookingMutation) ClearBooking() {
	m.clearedbooking = true
	m.clearedFields[sharebooking.FieldBookingID] = struct{}{}
}

// BookingCleared reports if the "booking" edge to the Booking entity was cleared.
func (m *ShareBookingMutation) BookingCleared() bool {
	return m.clearedbooking
}

// BookingIDs returns the "booking" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BookingID instead. It exists only for internal usage by the builders.
func (m *ShareBookingMutation) BookingIDs() (ids []uuid.UUID) {
	if id := m.booking; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBooking resets all changes to the "booking" edge.
func (m *ShareBookingMutation) ResetBooking() {
	m.booking = nil
	m.clearedbooking = false
}

// SetSharedWithID sets the "shared_with" edge to the User entity by id.
func (m *ShareBookingMutation) SetSharedWithID(id uuid.UUID) {
	m.shared_with = &id
}

// ClearSharedWith clears the "shared_with" edge to the User entity.
func (m *ShareBookingMutation) ClearSharedWith() {
	m.clearedshared_with = true
	m.clearedFields[sharebooking.FieldSharedWithUserID] = struct{}{}
}

// SharedWithCleared reports if the "shared_with" edge to the User entity was cleared.
func (m *ShareBookingMutation) SharedWithCleared() bool {
	return m.clearedshared_with
}

// SharedWithID returns the "shared_with" edge ID in the mutation.
func (m *ShareBookingMutation) SharedWithID() (id uuid.UUID, exists bool) {
	if m.shared_with != nil {
		return *m.shared_with, true
	}
	return
}

// SharedWithIDs returns the "shared_with" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SharedWithID instead. It exists only for internal usage by the builders.
func (m *ShareBookingMutation) SharedWithIDs() (ids []uuid.UUID) {
	if id := m.shared_with; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSharedWith resets all changes to the "shared_with" edge.
func (m *ShareBookingMutation) ResetSharedWith() {
	m.shared_with = nil
	m.clearedshared_with = false
}

// Where appends a list predicates to the ShareBookingMutation builder.
func (m *ShareBookingMutation) Where(ps ...predicate.ShareBooking) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ShareBookingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ShareBookingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ShareBooking, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ShareBookingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ShareBookingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ShareBooking).
func (m *ShareBookingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ShareBookingMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.booking != nil {
		fields = append(fields, sharebooking.FieldBookingID)
	}
	if m.shared_with != nil {
		fields = append(fields, sharebooking.FieldSharedWithUserID)
	}
	if m.shared_by_user_id != nil {
		fields = append(fields, sharebooking.FieldSharedByUserID)
	}
	if m.created_at != nil {
		fields = append(fields, sharebooking.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ShareBookingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sharebooking.FieldBookingID:
		return m.BookingID()
	case sharebooking.FieldSharedWithUserID:
		return m.SharedWithUserID()
	case sharebooking.FieldSharedByUserID:
		return m.SharedByUserID()
	case sharebooking.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ShareBookingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sharebooking.FieldBookingID:
		return m.OldBookingID(ctx)
	case sharebooking.FieldSharedWithUserID:
		return m.OldSharedWithUserID(ctx)
	case sharebooking.FieldSharedByUserID:
		return m.OldSharedByUserID(ctx)
	case sharebooking.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ShareBooking field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ShareBookingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sharebooking.FieldBookingID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBookingID(v)
		return nil
	case sharebooking.FieldSharedWithUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSharedWithUserID(v)
		return nil
	case sharebooking.FieldSharedByUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSharedByUserID(v)
		return nil
	case sharebooking.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ShareBooking field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ShareBookingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ShareBookingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ShareBookingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ShareBooking numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ShareBookingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ShareBookingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ShareBookingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ShareBooking nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ShareBookingMutation) ResetField(name string) error {
	switch name {
	case sharebooking.FieldBookingID:
		m.ResetBookingID()
		return nil
	case sharebooking.FieldSharedWithUserID:
		m.ResetSharedWithUserID()
		return nil
	case sharebooking.FieldSharedByUserID:
		m.ResetSharedByUserID()
		return nil
	case sharebooking.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ShareBooking field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ShareBookingMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.booking != nil {
		edges = append(edges, sharebooking.EdgeBooking)
	}
	if m.shared_with != nil {
		edges = append(edges, sharebooking.EdgeSharedWith)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ShareBookingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sharebooking.EdgeBooking:
		if id := m.booking; id != nil {
			return []ent.Value{*id}
		}
	case sharebooking.EdgeSharedWith:
		if id := m.shared_with; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ShareBookingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ShareBookingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ShareBookingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedbooking {
		edges = append(edges, sharebooking.EdgeBooking)
	}
	if m.clearedshared_with {
		edges = append(edges, sharebooking.EdgeSharedWith)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ShareBookingMutation) EdgeCleared(name string) bool {
	switch name {
	case sharebooking.EdgeBooking:
		return m.clearedbooking
	case sharebooking.EdgeSharedWith:
		return m.clearedshared_with
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ShareBookingMutation) ClearEdge(name string) error {
	switch name {
	case sharebooking.EdgeBooking:
		m.ClearBooking()
		return nil
	case sharebooking.EdgeSharedWith:
		m.ClearSharedWith()
		return nil
	}
	return fmt.Errorf("unknown ShareBooking unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ShareBookingMutation) ResetEdge(name string) error {
	switch name {
	case sharebooking.EdgeBooking:
		m.ResetBooking()
		return nil
	case sharebooking.EdgeSharedWith:
		m.ResetSharedWith()
		return nil
	}
	return fmt.Errorf("unknown ShareBooking edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	first_name             *string
	last_name              *string
	email                  *string
	created_at             *time.Time
	clearedFields          map[string]struct{}
	invites                map[uuid.UUID]struct{}
	removedinvites         map[uuid.UUID]struct{}
	clearedinvites         bool
	shares_received        map[uuid.UUID]struct{}
	removedshares_received map[uuid.UUID]struct{}
	clearedshares_received bool
	done                   bool
	oldValue               func(context.Context) (*User, error)
	predicates             []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFirstName sets the "first_name" field.
func (m *UserMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *UserMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ClearFirstName clears the value of the "first_name" field.
func (m *UserMutation) ClearFirstName() {
	m.first_name = nil
	m.clearedFields[user.FieldFirstName] = struct{}{}
}

// FirstNameCleared returns if the "first_name" field was cleared in this mutation.
func (m *UserMutation) FirstNameCleared() bool {
	_, ok := m.clearedFields[user.FieldFirstName]
	return ok
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *UserMutation) ResetFirstName() {
	m.first_name = nil
	delete(m.clearedFields, user.FieldFirstName)
}

// SetLastName sets the "last_name" field.
func (m *UserMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *UserMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ClearLastName clears the value of the "last_name" field.
func (m *UserMutation) ClearLastName() {
	m.last_name = nil
	m.clearedFields[user.FieldLastName] = struct{}{}
}

// LastNameCleared returns if the "last_name" field was cleared in this mutation.
func (m *UserMutation) LastNameCleared() bool {
	_, ok := m.clearedFields[user.FieldLastName]
	return ok
}

// ResetLastName resets all changes to the "last_name" field.
func (m *UserMutation) ResetLastName() {
	m.last_name = nil
	delete(m.clearedFields, user.FieldLastName)
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddInviteIDs adds the "invites" edge to the Invite entity by ids.
func (m *UserMutation) AddInviteIDs(ids ...uuid.UUID) {
	if m.invites == nil {
		m.invites = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.invites[ids[i]] = struct{}{}
	}
}

// ClearInvites clears the "invites" edge to the Invite entity.
func (m *UserMutation) ClearInvites() {
	m.clearedinvites = true
}

// InvitesCleared reports if the "invites" edge to the Invite entity was cleared.
func (m *UserMutation) InvitesCleared() bool {
	return m.clearedinvites
}

// RemoveInviteIDs removes the "invites" edge to the Invite entity by IDs.
func (m *UserMutation) RemoveInviteIDs(ids ...uuid.UUID) {
	if m.removedinvites == nil {
		m.removedinvites = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.invites, ids[i])
		m.removedinvites[ids[i]] = struct{}{}
	}
}

// RemovedInvites returns the removed IDs of the "invites" edge to the Invite entity.
func (m *UserMutation) RemovedInvitesIDs() (ids []uuid.UUID) {
	for id := range m.removedinvites {
		ids = append(ids, id)
	}
	return
}

// InvitesIDs returns the "invites" edge IDs in the mutation.
func (m *UserMutation) InvitesIDs() (ids []uuid.UUID) {
	for id := range m.invites {
		ids = append(ids, id)
	}
	return
}

// ResetInvites resets all changes to the "invites" edge.
func (m *UserMutation) ResetInvites() {
	m.invites = nil
	m.clearedinvites = false
	m.removedinvites = nil
}

// AddSharesReceivedIDs adds the "shares_received" edge to the ShareBooking entity by ids.
func (m *UserMutation) AddSharesReceivedIDs(ids ...uuid.UUID) {
	if m.shares_received == nil {
		m.shares_received = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.shares_received[ids[i]] = struct{}{}
	}
}

// ClearSharesReceived clears the "shares_received" edge to the ShareBooking entity.
func (m *UserMutation) ClearSharesReceived() {
	m.clearedshares_received = true
}

// SharesReceivedCleared reports if the "shares_received" edge to the ShareBooking entity was cleared.
func (m *UserMutation) SharesReceivedCleared() bool {
	return m.clearedshares_received
}

// RemoveSharesReceivedIDs removes the "shares_received" edge to the ShareBooking entity by IDs.
func (m *UserMutation) RemoveSharesReceivedIDs(ids ...uuid.UUID) {
	if m.removedshares_received == nil {
		m.removedshares_received = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.shares_received, ids[i])
		m.removedshares_received[ids[i]] = struct{}{}
	}
}

// RemovedSharesReceived returns the removed IDs of the "shares_received" edge to the ShareBooking entity.
func (m *UserMutation) RemovedSharesReceivedIDs() (ids []uuid.UUID) {
	for id := range m.removedshares_received {
		ids = append(ids, id)
	}
	return
}

// SharesReceivedIDs returns the "shares_received" edge IDs in the mutation.
func (m *UserMutation) SharesReceivedIDs() (ids []uuid.UUID) {
	for id := range m.shares_received {
		ids = append(ids, id)
	}
	return
}

// ResetSharesReceived resets all changes to the "shares_received" edge.
func (m *UserMutation) ResetSharesReceived() {
	m.shares_received = nil
	m.clearedshares_received = false
	m.removedshares_received = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.first_name != nil {
		fields = append(fields, user.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, user.FieldLastName)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldFirstName:
		return m.FirstName()
	case user.FieldLastName:
		return m.LastName()
	case user.FieldEmail:
		return m.Email()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldFirstName:
		return m.OldFirstName(ctx)
	case user.FieldLastName:
		return m.OldLastName(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case user.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldFirstName) {
		fields = append(fields, user.FieldFirstName)
	}
	if m.FieldCleared(user.FieldLastName) {
		fields = append(fields, user.FieldLastName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldFirstName:
		m.ClearFirstName()
		return nil
	case user.FieldLastName:
		m.ClearLastName()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldFirstName:
		m.ResetFirstName()
		return nil
	case user.FieldLastName:
		m.ResetLastName()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.invites != nil {
		edges = append(edges, user.EdgeInvites)
	}
	if m.shares_received != nil {
		edges = append(edges, user.EdgeSharesReceived)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeInvites:
		ids := make([]ent.Value, 0, len(m.invites))
		for id := range m.invites {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeSharesReceived:
		ids := make([]ent.Value, 0, len(m.shares_received))
		for id := range m.shares_received {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedinvites != nil {
		edges = append(edges, user.EdgeInvites)
	}
	if m.removedshares_received != nil {
		edges = append(edges, user.EdgeSharesReceived)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeInvites:
		ids := make([]ent.Value, 0, len(m.removedinvites))
		for id := range m.removedinvites {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeSharesReceived:
		ids := make([]ent.Value, 0, len(m.removedshares_received))
		for id := range m.removedshares_received {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedinvites {
		edges = append(edges, user.EdgeInvites)
	}
	if m.clearedshares_received {
		edges = append(edges, user.EdgeSharesReceived)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeInvites:
		return m.clearedinvites
	case user.EdgeSharesReceived:
		return m.clearedshares_received
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeInvites:
		m.ResetInvites()
		return nil
	case user.EdgeSharesReceived:
		m.ResetSharesReceived()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
