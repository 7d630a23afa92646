package migration

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/courtrec/archive-migrator/constants"
	"github.com/courtrec/archive-migrator/internal/cache"
	"github.com/courtrec/archive-migrator/internal/entity"
)

var (
	// ErrInvalidCaseReference marks units whose reference cannot key a case.
	ErrInvalidCaseReference = errors.New("invalid case reference")
	// ErrOrphanCopy marks COPY units whose originating case was never cached.
	ErrOrphanCopy = errors.New("orphan copy: no case cached for reference")
)

// Builder assembles the case -> booking -> capture session -> recording
// chain for one migration unit, reusing cached drafts so that shared
// parents are created at most once per natural key. Builds for units
// sharing a case reference are serialized by the runner; the cache's
// check-and-set covers the cross-key races.
type Builder struct {
	store       *cache.Store
	robotUserID uuid.UUID
	logger      *slog.Logger
}

func NewBuilder(store *cache.Store, robotUserID uuid.UUID, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{store: store, robotUserID: robotUserID, logger: logger}
}

// Build produces the MigratedGroup for a validated unit, or an error the
// caller routes to failure tracking. ErrOrphanCopy and
// ErrInvalidCaseReference are the two expected build failures.
func (b *Builder) Build(rec entity.ProcessedRecording) (*entity.MigratedGroup, error) {
	ref := cache.NormalizeCaseReference(rec.CaseReference)
	if ref == "" {
		return nil, ErrInvalidCaseReference
	}
	if n := len(ref); n < constants.MinCaseReferenceLength || n > constants.MaxCaseReferenceLength {
		b.logger.Warn("case reference length outside expected bounds",
			"reference", ref, "length", n)
	}

	caseDraft, err := b.resolveCase(ref, rec)
	if err != nil {
		return nil, err
	}

	participants := unitParticipants(rec)
	if caseDraft.MergeParticipants(participants) {
		b.store.SaveCase(ref, caseDraft)
	}

	chainKey := constants.ChainKey(ref, rec.ParticipantPair(), rec.OrigVersionStr)

	booking := b.resolveBooking(chainKey, caseDraft, rec, participants)
	session := b.resolveCaptureSession(chainKey, booking, rec)
	recording := b.buildRecording(chainKey, session, rec)

	group := &entity.MigratedGroup{
		Case:           caseDraft,
		Booking:        booking,
		CaptureSession: session,
		Recording:      recording,
		Participants:   participants,
		ArchiveID:      rec.ArchiveID,
		ArchiveName:    rec.ArchiveName,
	}
	b.buildShares(group, booking, rec)
	return group, nil
}

// resolveCase loads the cached case for the reference or registers a new
// draft. A COPY unit must find an existing case; it never creates one.
func (b *Builder) resolveCase(ref string, rec entity.ProcessedRecording) (*entity.CaseDraft, error) {
	if rec.IsCopy() {
		c, ok := b.store.GetCase(ref)
		if !ok {
			b.logger.Info("copy version has no originating case",
				"reference", ref, "archive", rec.ArchiveName)
			return nil, ErrOrphanCopy
		}
		return c, nil
	}

	draft := &entity.CaseDraft{
		ID:        uuid.New(),
		Reference: ref,
		State:     rec.State,
		Origin:    constants.OriginVodafone,
	}
	if rec.CourtID != nil {
		draft.CourtID = *rec.CourtID
	}
	winner, loaded := b.store.PutCaseIfAbsent(ref, draft)
	if loaded {
		return winner, nil
	}
	return draft, nil
}

func (b *Builder) resolveBooking(chainKey string, c *entity.CaseDraft, rec entity.ProcessedRecording, participants []entity.Participant) *entity.BookingDraft {
	draft := &entity.BookingDraft{
		ID:           uuid.New(),
		CaseID:       c.ID,
		Participants: participants,
	}
	if rec.RecordingTime != nil {
		draft.ScheduledFor = *rec.RecordingTime
	}
	v, loaded := b.store.PutIfAbsent(chainKey, constants.FieldBooking, draft)
	if loaded {
		return v.(*entity.BookingDraft)
	}
	return draft
}

func (b *Builder) resolveCaptureSession(chainKey string, booking *entity.BookingDraft, rec entity.ProcessedRecording) *entity.CaptureSessionDraft {
	draft := &entity.CaptureSessionDraft{
		ID:         uuid.New(),
		BookingID:  booking.ID,
		FinishedAt: rec.FinishedAt,
		Status:     constants.RecordingStatusAvailable,
		Origin:     constants.OriginVodafone,
	}
	if rec.RecordingTime != nil {
		draft.StartedAt = *rec.RecordingTime
	}
	v, loaded := b.store.PutIfAbsent(chainKey, constants.FieldCaptureSession, draft)
	if loaded {
		return v.(*entity.CaptureSessionDraft)
	}
	return draft
}

// buildRecording always creates a fresh recording draft; versions above 1
// are linked to the most recent prior version via the cached
// "{id}:{version}" token, which is then advanced to the new recording.
func (b *Builder) buildRecording(chainKey string, session *entity.CaptureSessionDraft, rec entity.ProcessedRecording) *entity.RecordingDraft {
	draft := &entity.RecordingDraft{
		ID:               uuid.New(),
		CaptureSessionID: session.ID,
		Version:          rec.VersionNumber,
		Filename:         rec.FileName,
		Duration:         rec.Duration,
	}

	if rec.VersionNumber > 1 {
		if v, ok := b.store.Get(chainKey, constants.FieldRecordingMetadata); ok {
			if token, ok := v.(string); ok {
				if parentID, ok := parseRecordingToken(token); ok {
					draft.ParentID = &parentID
				}
			}
		}
	}

	b.store.Set(chainKey, constants.FieldRecordingMetadata,
		fmt.Sprintf("%s:%d", draft.ID, draft.Version))
	return draft
}

func parseRecordingToken(token string) (uuid.UUID, bool) {
	idPart, _, found := strings.Cut(token, ":")
	if !found {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idPart)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// buildShares resolves each share contact to a user (existing or freshly
// invited) and dedups shares per booking/recipient. Already-shared pairs
// are skipped silently.
func (b *Builder) buildShares(group *entity.MigratedGroup, booking *entity.BookingDraft, rec entity.ProcessedRecording) {
	for _, contact := range rec.ShareContacts {
		if contact.Email == "" {
			continue
		}
		userID, loaded := b.store.PutUserIfAbsent(contact.Email, uuid.New())
		if !loaded {
			group.Invites = append(group.Invites, entity.InviteDraft{
				UserID:    userID,
				Email:     contact.Email,
				FirstName: orDefault(contact.FirstName),
				LastName:  orDefault(contact.LastName),
			})
		}
		if !b.store.MarkShareBooking(booking.ID, userID) {
			continue
		}
		group.ShareBookings = append(group.ShareBookings, entity.ShareBookingDraft{
			ID:             uuid.New(),
			BookingID:      booking.ID,
			SharedWithUser: userID,
			SharedByUser:   b.robotUserID,
		})
	}
}

func unitParticipants(rec entity.ProcessedRecording) []entity.Participant {
	return []entity.Participant{
		{
			ID:        uuid.New(),
			Type:      constants.ParticipantWitness,
			FirstName: rec.WitnessFirstName,
			LastName:  constants.DefaultName,
		},
		{
			ID:        uuid.New(),
			Type:      constants.ParticipantDefendant,
			FirstName: constants.DefaultName,
			LastName:  rec.DefendantLastName,
		},
	}
}

func orDefault(name string) string {
	if strings.TrimSpace(name) == "" {
		return constants.DefaultName
	}
	return name
}
