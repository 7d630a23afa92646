package writer

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/courtrec/archive-migrator/constants"
	"github.com/courtrec/archive-migrator/gen/ent"
	"github.com/courtrec/archive-migrator/gen/ent/booking"
	"github.com/courtrec/archive-migrator/gen/ent/capturesession"
	"github.com/courtrec/archive-migrator/gen/ent/courtcase"
	"github.com/courtrec/archive-migrator/gen/ent/recording"
	"github.com/courtrec/archive-migrator/internal/entity"
	"github.com/courtrec/archive-migrator/internal/migration"
)

// Writer persists one fully-built entity group per isolated transaction.
// Items are independent; a failure in one is reported to the tracker and
// never aborts the batch or rolls back committed items.
type Writer struct {
	client  *ent.Client
	tracker migration.Tracker
	locks   *caseLocks
	logger  *slog.Logger
}

func NewWriter(client *ent.Client, tracker migration.Tracker, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{
		client:  client,
		tracker: tracker,
		locks:   newCaseLocks(),
		logger:  logger,
	}
}

// ProcessOneItem writes the group's case, booking, capture session and
// recording in one transaction. Concurrent items sharing a case reference
// are serialized so the participant union is never lost to a race.
func (w *Writer) ProcessOneItem(ctx context.Context, group *entity.MigratedGroup) bool {
	unlock := w.locks.lock(group.Case.Reference)
	defer unlock()

	err := withTx(ctx, w.client, func(tx *ent.Tx) error {
		caseID, persisted, err := w.upsertCase(ctx, tx, group)
		if err != nil {
			return err
		}
		if err := w.upsertBooking(ctx, tx, group, caseID, persisted); err != nil {
			return err
		}
		if err := w.upsertCaptureSession(ctx, tx, group); err != nil {
			return err
		}
		return w.upsertRecording(ctx, tx, group)
	})
	if err != nil {
		w.logger.Error("failed to persist migration item",
			"archive_id", group.ArchiveID, "case_reference", group.Case.Reference, "error", err)
		w.tracker.RecordFailure(constants.CategoryPersistence, err.Error(), group.ArchiveID, group.ArchiveName)
		return false
	}

	w.tracker.RecordSuccess(group.ArchiveID, group.ArchiveName)
	return true
}

// upsertCase finds the persisted case by (reference, court) and merges the
// draft's participants into it, or creates case and participants fresh.
// Returns the persisted case id and the participant rows now on the case.
func (w *Writer) upsertCase(ctx context.Context, tx *ent.Tx, group *entity.MigratedGroup) (uuid.UUID, []*ent.Participant, error) {
	draft := group.Case

	existing, err := tx.CourtCase.Query().
		Where(courtcase.Reference(draft.Reference), courtcase.CourtID(draft.CourtID)).
		WithParticipants().
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return uuid.Nil, nil, err
	}

	if ent.IsNotFound(err) {
		created, err := tx.CourtCase.Create().
			SetID(draft.ID).
			SetCourtID(draft.CourtID).
			SetReference(draft.Reference).
			SetState(string(draft.State)).
			SetOrigin(draft.Origin).
			SetTest(draft.Test).
			SetNillableClosedAt(draft.ClosedAt).
			Save(ctx)
		if err != nil {
			return uuid.Nil, nil, err
		}
		rows, err := w.createParticipants(ctx, tx, created.ID, draft.Participants, nil)
		return created.ID, rows, err
	}

	// Union-merge: only add participants the persisted case does not have.
	rows, err := w.createParticipants(ctx, tx, existing.ID, draft.Participants, existing.Edges.Participants)
	if err != nil {
		return uuid.Nil, nil, err
	}
	return existing.ID, rows, nil
}

// createParticipants creates the draft participants missing from the
// persisted set and returns the full persisted set afterwards.
func (w *Writer) createParticipants(ctx context.Context, tx *ent.Tx, caseID uuid.UUID, drafts []entity.Participant, persisted []*ent.Participant) ([]*ent.Participant, error) {
	byKey := make(map[string]*ent.Participant, len(persisted))
	for _, row := range persisted {
		byKey[participantRowKey(row)] = row
	}

	rows := append([]*ent.Participant(nil), persisted...)
	for _, p := range drafts {
		if _, ok := byKey[p.Key()]; ok {
			continue
		}
		row, err := tx.Participant.Create().
			SetID(p.ID).
			SetCaseID(caseID).
			SetParticipantType(string(p.Type)).
			SetFirstName(p.FirstName).
			SetLastName(p.LastName).
			Save(ctx)
		if err != nil {
			return nil, err
		}
		byKey[p.Key()] = row
		rows = append(rows, row)
	}
	return rows, nil
}

func (w *Writer) upsertBooking(ctx context.Context, tx *ent.Tx, group *entity.MigratedGroup, caseID uuid.UUID, persisted []*ent.Participant) error {
	if group.Booking == nil {
		return nil
	}
	exists, err := tx.Booking.Query().Where(booking.ID(group.Booking.ID)).Exist(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	participantIDs := RemapParticipants(group.Booking.Participants, persisted, w.logger)
	return tx.Booking.Create().
		SetID(group.Booking.ID).
		SetCaseID(caseID).
		SetScheduledFor(group.Booking.ScheduledFor).
		AddParticipantIDs(participantIDs...).
		Exec(ctx)
}

func (w *Writer) upsertCaptureSession(ctx context.Context, tx *ent.Tx, group *entity.MigratedGroup) error {
	if group.CaptureSession == nil {
		return nil
	}
	exists, err := tx.CaptureSession.Query().Where(capturesession.ID(group.CaptureSession.ID)).Exist(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return tx.CaptureSession.Create().
		SetID(group.CaptureSession.ID).
		SetBookingID(group.CaptureSession.BookingID).
		SetStartedAt(group.CaptureSession.StartedAt).
		SetNillableFinishedAt(group.CaptureSession.FinishedAt).
		SetNillableStartedBy(group.CaptureSession.StartedBy).
		SetNillableFinishedBy(group.CaptureSession.FinishedBy).
		SetStatus(group.CaptureSession.Status).
		SetOrigin(group.CaptureSession.Origin).
		Exec(ctx)
}

func (w *Writer) upsertRecording(ctx context.Context, tx *ent.Tx, group *entity.MigratedGroup) error {
	if group.Recording == nil {
		return nil
	}
	exists, err := tx.Recording.Query().Where(recording.ID(group.Recording.ID)).Exist(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return tx.Recording.Create().
		SetID(group.Recording.ID).
		SetCaptureSessionID(group.Recording.CaptureSessionID).
		SetNillableParentRecordingID(group.Recording.ParentID).
		SetVersion(group.Recording.Version).
		SetFilename(group.Recording.Filename).
		SetDuration(int(group.Recording.Duration.Seconds())).
		Exec(ctx)
}

// RemapParticipants maps draft participant placeholders onto persisted
// participant identities by identity key. Drafts with no persisted match
// keep their placeholder id and are logged; the booking write will create
// them as new rows.
func RemapParticipants(drafts []entity.Participant, persisted []*ent.Participant, logger *slog.Logger) []uuid.UUID {
	if logger == nil {
		logger = slog.Default()
	}
	byKey := make(map[string]uuid.UUID, len(persisted))
	for _, row := range persisted {
		byKey[participantRowKey(row)] = row.ID
	}

	ids := make([]uuid.UUID, 0, len(drafts))
	for _, p := range drafts {
		if id, ok := byKey[p.Key()]; ok {
			ids = append(ids, id)
			continue
		}
		logger.Warn("booking participant has no persisted match",
			"type", p.Type, "first_name", p.FirstName, "last_name", p.LastName)
		ids = append(ids, p.ID)
	}
	return ids
}

func participantRowKey(row *ent.Participant) string {
	return row.ParticipantType + "|" + foldName(row.FirstName) + "|" + foldName(row.LastName)
}

func foldName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
