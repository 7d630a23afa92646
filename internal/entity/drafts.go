package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/courtrec/archive-migrator/constants"
)

// Participant is one person named by a recording. Identity equality is
// (type, folded first name, folded last name); the ID is a placeholder
// until the writer remaps it to a persisted identity.
type Participant struct {
	ID        uuid.UUID                 `json:"id"`
	Type      constants.ParticipantType `json:"type"`
	FirstName string                    `json:"first_name"`
	LastName  string                    `json:"last_name"`
}

// Key returns the identity key used for participant dedup and remapping.
func (p Participant) Key() string {
	return string(p.Type) + "|" + foldName(p.FirstName) + "|" + foldName(p.LastName)
}

func foldName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CaseDraft is an in-memory case awaiting persistence. Exactly one draft
// exists per case reference within a run.
type CaseDraft struct {
	ID           uuid.UUID           `json:"id"`
	CourtID      uuid.UUID           `json:"court_id"`
	Reference    string              `json:"reference"`
	Participants []Participant       `json:"participants"`
	State        constants.CaseState `json:"state"`
	Origin       string              `json:"origin"`
	Test         bool                `json:"test"`
	ClosedAt     *time.Time          `json:"closed_at,omitempty"`
}

// HasParticipant reports whether the draft already contains a participant
// with the same identity key.
func (c *CaseDraft) HasParticipant(p Participant) bool {
	key := p.Key()
	for _, existing := range c.Participants {
		if existing.Key() == key {
			return true
		}
	}
	return false
}

// MergeParticipants unions new participants into the draft, returning true
// when the set changed. Merging never removes existing participants.
func (c *CaseDraft) MergeParticipants(incoming []Participant) bool {
	changed := false
	for _, p := range incoming {
		if !c.HasParticipant(p) {
			c.Participants = append(c.Participants, p)
			changed = true
		}
	}
	return changed
}

// BookingDraft schedules one witness/defendant pair for a case.
type BookingDraft struct {
	ID           uuid.UUID     `json:"id"`
	CaseID       uuid.UUID     `json:"case_id"`
	ScheduledFor time.Time     `json:"scheduled_for"`
	Participants []Participant `json:"participants"`
}

// CaptureSessionDraft is the recording session attached to a booking.
type CaptureSessionDraft struct {
	ID         uuid.UUID  `json:"id"`
	BookingID  uuid.UUID  `json:"booking_id"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	StartedBy  *uuid.UUID `json:"started_by,omitempty"`
	FinishedBy *uuid.UUID `json:"finished_by,omitempty"`
	Status     string     `json:"status"`
	Origin     string     `json:"origin"`
}

// RecordingDraft is one version of the captured media.
type RecordingDraft struct {
	ID               uuid.UUID     `json:"id"`
	CaptureSessionID uuid.UUID     `json:"capture_session_id"`
	ParentID         *uuid.UUID    `json:"parent_id,omitempty"`
	Version          int           `json:"version"`
	Filename         string        `json:"filename"`
	Duration         time.Duration `json:"duration"`
}

// UserDraft identifies a share recipient, persisted or not-yet-persisted.
type UserDraft struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
}

// InviteDraft is created for share recipients with no existing account.
type InviteDraft struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

// ShareBookingDraft grants one user access to one booking.
type ShareBookingDraft struct {
	ID             uuid.UUID `json:"id"`
	BookingID      uuid.UUID `json:"booking_id"`
	SharedWithUser uuid.UUID `json:"shared_with_user"`
	SharedByUser   uuid.UUID `json:"shared_by_user"`
}

// MigratedGroup is the fully built entity chain for one migration unit,
// handed to the transactional writer as a whole.
type MigratedGroup struct {
	Case           *CaseDraft
	Booking        *BookingDraft
	CaptureSession *CaptureSessionDraft
	Recording      *RecordingDraft
	Participants   []Participant
	ShareBookings  []ShareBookingDraft
	Invites        []InviteDraft
	ArchiveID      string
	ArchiveName    string
}

// PostMigrationGroup collects the deferred side effects of the main pass:
// invites and share bookings that need persisted users/bookings to exist.
type PostMigrationGroup struct {
	Invites       []InviteDraft       `json:"invites"`
	ShareBookings []ShareBookingDraft `json:"share_bookings"`
}
