package migration

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtrec/archive-migrator/constants"
	"github.com/courtrec/archive-migrator/internal/cache"
	"github.com/courtrec/archive-migrator/internal/entity"
)

func testRecording() entity.ProcessedRecording {
	ts := time.Date(2020, 6, 23, 14, 30, 0, 0, time.UTC)
	finished := ts.Add(2 * time.Minute)
	courtID := uuid.New()
	return entity.ProcessedRecording{
		ArchiveID:         "arch-1",
		ArchiveName:       "Leeds_200623_T20190123_EX123456_Smith_Jane_ORIG.mp4",
		CourtID:           &courtID,
		CaseReference:     "T20190123-EX123456",
		State:             constants.CaseStateClosed,
		DefendantLastName: "Smith",
		WitnessFirstName:  "Jane",
		VersionType:       "ORIG",
		VersionNumberStr:  "1",
		OrigVersionStr:    "1",
		VersionNumber:     1,
		IsMostRecent:      true,
		RecordingTime:     &ts,
		Duration:          2 * time.Minute,
		FinishedAt:        &finished,
		FileExtension:     "mp4",
		FileName:          "rec.mp4",
	}
}

func newTestBuilder() (*Builder, *cache.Store, uuid.UUID) {
	store := cache.New(nil)
	robot := uuid.New()
	return NewBuilder(store, robot, nil), store, robot
}

func TestBuildCreatesFullChain(t *testing.T) {
	b, store, _ := newTestBuilder()
	rec := testRecording()

	group, err := b.Build(rec)
	require.NoError(t, err)

	require.NotNil(t, group.Case)
	assert.Equal(t, "T20190123-EX123456", group.Case.Reference)
	assert.Equal(t, *rec.CourtID, group.Case.CourtID)
	assert.Equal(t, constants.OriginVodafone, group.Case.Origin)
	assert.Len(t, group.Case.Participants, 2)

	require.NotNil(t, group.Booking)
	assert.Equal(t, group.Case.ID, group.Booking.CaseID)

	require.NotNil(t, group.CaptureSession)
	assert.Equal(t, group.Booking.ID, group.CaptureSession.BookingID)
	assert.Equal(t, constants.RecordingStatusAvailable, group.CaptureSession.Status)

	require.NotNil(t, group.Recording)
	assert.Equal(t, group.CaptureSession.ID, group.Recording.CaptureSessionID)
	assert.Equal(t, 1, group.Recording.Version)
	assert.Nil(t, group.Recording.ParentID)

	cached, ok := store.GetCase(rec.CaseReference)
	require.True(t, ok)
	assert.Equal(t, group.Case.ID, cached.ID)
}

func TestBuildIdempotentChain(t *testing.T) {
	b, _, _ := newTestBuilder()
	rec := testRecording()

	first, err := b.Build(rec)
	require.NoError(t, err)
	second, err := b.Build(rec)
	require.NoError(t, err)

	assert.Equal(t, first.Case.ID, second.Case.ID, "one case per reference")
	assert.Equal(t, first.Booking.ID, second.Booking.ID, "one booking per natural key")
	assert.Equal(t, first.CaptureSession.ID, second.CaptureSession.ID)
	assert.NotEqual(t, first.Recording.ID, second.Recording.ID, "recordings are always new")
}

func TestBuildVersionLinking(t *testing.T) {
	b, _, _ := newTestBuilder()

	v1 := testRecording()
	first, err := b.Build(v1)
	require.NoError(t, err)
	require.Nil(t, first.Recording.ParentID, "version 1 has no parent")

	v2 := testRecording()
	v2.VersionType = "COPY"
	v2.VersionNumberStr = "2"
	v2.VersionNumber = 2
	second, err := b.Build(v2)
	require.NoError(t, err)

	require.NotNil(t, second.Recording.ParentID)
	assert.Equal(t, first.Recording.ID, *second.Recording.ParentID)
	assert.Equal(t, first.Booking.ID, second.Booking.ID, "same chain, no new booking")
}

func TestBuildParticipantUnionAcrossUnits(t *testing.T) {
	b, store, _ := newTestBuilder()

	first := testRecording()
	_, err := b.Build(first)
	require.NoError(t, err)

	other := testRecording()
	other.WitnessFirstName = "Sam"
	_, err = b.Build(other)
	require.NoError(t, err)

	cached, ok := store.GetCase(first.CaseReference)
	require.True(t, ok)
	// Jane + Sam witnesses, Smith defendant (deduped).
	assert.Len(t, cached.Participants, 3)
}

func TestBuildOrphanCopy(t *testing.T) {
	b, _, _ := newTestBuilder()

	rec := testRecording()
	rec.VersionType = "COPY"
	rec.VersionNumber = 2

	_, err := b.Build(rec)
	assert.ErrorIs(t, err, ErrOrphanCopy)
}

func TestBuildInvalidCaseReference(t *testing.T) {
	b, _, _ := newTestBuilder()

	rec := testRecording()
	rec.CaseReference = "   "

	_, err := b.Build(rec)
	assert.ErrorIs(t, err, ErrInvalidCaseReference)
}

func TestBuildSharesAndInvites(t *testing.T) {
	b, _, robot := newTestBuilder()

	rec := testRecording()
	rec.ShareContacts = []entity.Contact{{Email: "jo@example.org", FirstName: "Jo"}}

	group, err := b.Build(rec)
	require.NoError(t, err)

	require.Len(t, group.Invites, 1)
	assert.Equal(t, "jo@example.org", group.Invites[0].Email)
	assert.Equal(t, "Jo", group.Invites[0].FirstName)
	assert.Equal(t, constants.DefaultName, group.Invites[0].LastName)

	require.Len(t, group.ShareBookings, 1)
	assert.Equal(t, group.Booking.ID, group.ShareBookings[0].BookingID)
	assert.Equal(t, group.Invites[0].UserID, group.ShareBookings[0].SharedWithUser)
	assert.Equal(t, robot, group.ShareBookings[0].SharedByUser)

	// The same contact on a second unit of the same chain is a no-op.
	again, err := b.Build(rec)
	require.NoError(t, err)
	assert.Empty(t, again.Invites)
	assert.Empty(t, again.ShareBookings)
}

func TestBuildExistingUserGetsNoInvite(t *testing.T) {
	b, store, _ := newTestBuilder()
	existing := uuid.New()
	store.SaveUser("jo@example.org", existing)

	rec := testRecording()
	rec.ShareContacts = []entity.Contact{{Email: "jo@example.org"}}

	group, err := b.Build(rec)
	require.NoError(t, err)
	assert.Empty(t, group.Invites, "known user needs no invite")
	require.Len(t, group.ShareBookings, 1)
	assert.Equal(t, existing, group.ShareBookings[0].SharedWithUser)
}
