package writer

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/courtrec/archive-migrator/constants"
	"github.com/courtrec/archive-migrator/gen/ent"
	"github.com/courtrec/archive-migrator/internal/entity"
	"github.com/courtrec/archive-migrator/internal/migration"
	"github.com/courtrec/archive-migrator/internal/repository"
)

type stubTracker struct {
	successes    int
	failures     []string
	postFailures []migration.PostMigrationFailure
}

func (s *stubTracker) RecordSuccess(archiveID, archiveName string) { s.successes++ }

func (s *stubTracker) RecordFailure(category constants.FailureCategory, reason, archiveID, archiveName string) {
	s.failures = append(s.failures, reason)
}

func (s *stubTracker) RecordTestItem(reason, archiveID, archiveName string) {}
func (s *stubTracker) RecordInvite(email string)                            {}
func (s *stubTracker) RecordShareBooking(bookingID, email string)           {}

func (s *stubTracker) RecordPostMigrationFailure(entry migration.PostMigrationFailure) {
	s.postFailures = append(s.postFailures, entry)
}

func openTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name())
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, db)))
	require.NoError(t, client.Schema.Create(context.Background()))
	t.Cleanup(func() { client.Close() })
	return client
}

func seedCourt(t *testing.T, client *ent.Client) uuid.UUID {
	t.Helper()
	row, err := client.Court.Create().SetName("Leeds Crown Court").Save(context.Background())
	require.NoError(t, err)
	return row.ID
}

// testGroup builds a persistable chain the way the migration builder does:
// placeholder participant ids, one booking and session per chain.
func testGroup(courtID uuid.UUID) *entity.MigratedGroup {
	ts := time.Date(2020, 6, 23, 14, 30, 0, 0, time.UTC)
	caseID := uuid.New()
	bookingID := uuid.New()
	sessionID := uuid.New()
	participants := []entity.Participant{
		{ID: uuid.New(), Type: constants.ParticipantWitness, FirstName: "Jane", LastName: constants.DefaultName},
		{ID: uuid.New(), Type: constants.ParticipantDefendant, FirstName: constants.DefaultName, LastName: "Smith"},
	}
	return &entity.MigratedGroup{
		Case: &entity.CaseDraft{
			ID:           caseID,
			CourtID:      courtID,
			Reference:    "T20190123-EX123456",
			Participants: participants,
			State:        constants.CaseStateClosed,
			Origin:       constants.OriginVodafone,
		},
		Booking: &entity.BookingDraft{
			ID:           bookingID,
			CaseID:       caseID,
			ScheduledFor: ts,
			Participants: participants,
		},
		CaptureSession: &entity.CaptureSessionDraft{
			ID:        sessionID,
			BookingID: bookingID,
			StartedAt: ts,
			Status:    constants.RecordingStatusAvailable,
			Origin:    constants.OriginVodafone,
		},
		Recording: &entity.RecordingDraft{
			ID:               uuid.New(),
			CaptureSessionID: sessionID,
			Version:          1,
			Filename:         "rec.mp4",
			Duration:         2 * time.Minute,
		},
		Participants: participants,
		ArchiveID:    "arch-1",
		ArchiveName:  "Leeds_200623_T20190123_EX123456_Smith_Jane_ORIG.mp4",
	}
}

func TestProcessOneItemWriteAndRetry(t *testing.T) {
	ctx := context.Background()
	client := openTestClient(t)
	courtID := seedCourt(t, client)
	tracker := &stubTracker{}
	w := NewWriter(client, tracker, nil)

	group := testGroup(courtID)
	require.True(t, w.ProcessOneItem(ctx, group))
	// Re-delivery of the same group (retry, restart) must not duplicate rows.
	require.True(t, w.ProcessOneItem(ctx, group))

	assert.Equal(t, 1, client.CourtCase.Query().CountX(ctx))
	assert.Equal(t, 1, client.Booking.Query().CountX(ctx))
	assert.Equal(t, 1, client.CaptureSession.Query().CountX(ctx))
	assert.Equal(t, 1, client.Recording.Query().CountX(ctx))
	assert.Equal(t, 2, client.Participant.Query().CountX(ctx))
	assert.Equal(t, 2, tracker.successes)
	assert.Empty(t, tracker.failures)
}

func TestProcessOneItemMergesParticipantsAcrossUnits(t *testing.T) {
	ctx := context.Background()
	client := openTestClient(t)
	courtID := seedCourt(t, client)
	w := NewWriter(client, &stubTracker{}, nil)

	first := testGroup(courtID)
	require.True(t, w.ProcessOneItem(ctx, first))

	// A later unit of the same case arrives with its own draft ids and a
	// different witness; the persisted case gains the new participant only.
	second := testGroup(courtID)
	second.Participants[0].FirstName = "Sam"
	second.Case.Participants[0].FirstName = "Sam"
	second.Booking.Participants[0].FirstName = "Sam"
	require.True(t, w.ProcessOneItem(ctx, second))

	assert.Equal(t, 1, client.CourtCase.Query().CountX(ctx))
	assert.Equal(t, 3, client.Participant.Query().CountX(ctx), "Jane + Sam witnesses, Smith deduped")
	assert.Equal(t, 2, client.Booking.Query().CountX(ctx))

	persisted := client.CourtCase.Query().OnlyX(ctx)
	assert.Equal(t, first.Case.ID, persisted.ID, "second unit reuses the persisted case")
}

func TestProcessOneItemLinksVersionChain(t *testing.T) {
	ctx := context.Background()
	client := openTestClient(t)
	courtID := seedCourt(t, client)
	w := NewWriter(client, &stubTracker{}, nil)

	first := testGroup(courtID)
	require.True(t, w.ProcessOneItem(ctx, first))

	second := testGroup(courtID)
	second.Case = first.Case
	second.Booking = first.Booking
	second.CaptureSession = first.CaptureSession
	second.Recording = &entity.RecordingDraft{
		ID:               uuid.New(),
		CaptureSessionID: first.CaptureSession.ID,
		ParentID:         &first.Recording.ID,
		Version:          2,
		Filename:         "rec_copy.mp4",
		Duration:         2 * time.Minute,
	}
	require.True(t, w.ProcessOneItem(ctx, second))

	assert.Equal(t, 1, client.Booking.Query().CountX(ctx))
	assert.Equal(t, 1, client.CaptureSession.Query().CountX(ctx))
	assert.Equal(t, 2, client.Recording.Query().CountX(ctx))

	row := client.Recording.GetX(ctx, second.Recording.ID)
	require.NotNil(t, row.ParentRecordingID)
	assert.Equal(t, first.Recording.ID, *row.ParentRecordingID)
}

func TestProcessOneItemReportsPersistenceFailure(t *testing.T) {
	ctx := context.Background()
	client := openTestClient(t)
	tracker := &stubTracker{}
	w := NewWriter(client, tracker, nil)

	// No court row: the case insert violates its foreign key.
	group := testGroup(uuid.New())
	assert.False(t, w.ProcessOneItem(ctx, group))

	assert.Zero(t, tracker.successes)
	require.Len(t, tracker.failures, 1)
	assert.Zero(t, client.CourtCase.Query().CountX(ctx), "failed transaction left nothing behind")
}

func TestPostMigrationInviteAndShare(t *testing.T) {
	ctx := context.Background()
	client := openTestClient(t)
	courtID := seedCourt(t, client)
	tracker := &stubTracker{}

	w := NewWriter(client, tracker, nil)
	group := testGroup(courtID)
	require.True(t, w.ProcessOneItem(ctx, group))

	users := repository.NewUserRepository(client, nil)
	p := NewPostMigrationProcessor(client, users, nil, tracker, nil)

	inv := entity.InviteDraft{
		UserID:    uuid.New(),
		Email:     "jo@example.org",
		FirstName: "Jo",
		LastName:  constants.DefaultName,
	}
	post := entity.PostMigrationGroup{
		Invites: []entity.InviteDraft{inv},
		ShareBookings: []entity.ShareBookingDraft{{
			ID:             uuid.New(),
			BookingID:      group.Booking.ID,
			SharedWithUser: inv.UserID,
			SharedByUser:   uuid.New(),
		}},
	}

	require.True(t, p.ProcessOneItem(ctx, post))
	// Redelivery dedups on user and (booking, recipient).
	require.True(t, p.ProcessOneItem(ctx, post))

	assert.Equal(t, 1, client.User.Query().CountX(ctx))
	assert.Equal(t, 1, client.Invite.Query().CountX(ctx))
	assert.Equal(t, 1, client.ShareBooking.Query().CountX(ctx))
	assert.Empty(t, tracker.postFailures)

	created, found, err := users.FindByEmail(ctx, "jo@example.org")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, inv.UserID, created.ID)
}

func TestPostMigrationShareWithExistingUser(t *testing.T) {
	ctx := context.Background()
	client := openTestClient(t)
	courtID := seedCourt(t, client)
	tracker := &stubTracker{}

	w := NewWriter(client, tracker, nil)
	group := testGroup(courtID)
	require.True(t, w.ProcessOneItem(ctx, group))

	users := repository.NewUserRepository(client, nil)
	existingID, err := users.EnsureByEmail(ctx, entity.UserDraft{
		ID:        uuid.New(),
		FirstName: "Jo",
		LastName:  "Bloggs",
		Email:     "jo@example.org",
	})
	require.NoError(t, err)

	// A contact with an account gets a share and no invite.
	post := entity.PostMigrationGroup{
		ShareBookings: []entity.ShareBookingDraft{{
			ID:             uuid.New(),
			BookingID:      group.Booking.ID,
			SharedWithUser: existingID,
			SharedByUser:   uuid.New(),
		}},
	}
	p := NewPostMigrationProcessor(client, users, nil, tracker, nil)
	require.True(t, p.ProcessOneItem(ctx, post))

	assert.Zero(t, client.Invite.Query().CountX(ctx))
	share := client.ShareBooking.Query().OnlyX(ctx)
	assert.Equal(t, existingID, share.SharedWithUserID)
	assert.Empty(t, tracker.postFailures)
}
