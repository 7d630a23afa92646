package pipeline

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtrec/archive-migrator/constants"
	"github.com/courtrec/archive-migrator/internal/cache"
	"github.com/courtrec/archive-migrator/internal/entity"
	"github.com/courtrec/archive-migrator/internal/extraction"
	"github.com/courtrec/archive-migrator/internal/migration"
	"github.com/courtrec/archive-migrator/internal/transform"
	"github.com/courtrec/archive-migrator/internal/validation"
)

type recordedFailure struct {
	category constants.FailureCategory
	reason   string
	archive  string
}

// memTracker collects tracker signals for assertions.
type memTracker struct {
	successes []string
	failures  []recordedFailure
	testItems []string
}

func (m *memTracker) RecordSuccess(archiveID, _ string) {
	m.successes = append(m.successes, archiveID)
}

func (m *memTracker) RecordFailure(category constants.FailureCategory, reason, archiveID, _ string) {
	m.failures = append(m.failures, recordedFailure{category: category, reason: reason, archive: archiveID})
}

func (m *memTracker) RecordTestItem(reason, archiveID, _ string) {
	m.testItems = append(m.testItems, archiveID+": "+reason)
}

func (m *memTracker) RecordInvite(string)                                       {}
func (m *memTracker) RecordShareBooking(string, string)                         {}
func (m *memTracker) RecordPostMigrationFailure(migration.PostMigrationFailure) {}

type staticCourts struct {
	id uuid.UUID
}

func (s staticCourts) FindIDByName(context.Context, string) (uuid.UUID, bool, error) {
	return s.id, true, nil
}

func newTestProcessor(t *testing.T) (*UnitProcessor, *transform.VersionIndex, *memTracker, *cache.Store) {
	t.Helper()
	store := cache.New(nil)
	store.SetSites(map[string]string{"LEEDS": "Leeds Crown Court"})

	versions := transform.NewVersionIndex(store)
	tracker := &memTracker{}
	proc := NewUnitProcessor(
		extraction.NewExtractor(nil),
		transform.NewTransformer(store, staticCourts{id: uuid.New()}, versions, nil),
		validation.NewValidator(nil),
		migration.NewBuilder(store, uuid.New(), nil),
		tracker,
		nil,
	)
	return proc, versions, tracker, store
}

func archiveItem(id, name string) entity.ArchiveItem {
	return entity.ArchiveItem{
		ArchiveID:   id,
		ArchiveName: name,
		CreateTime:  "1600000000000", // 2020-09-13, after go-live
		Duration:    120,
		FileName:    name,
	}
}

func registerAll(proc *UnitProcessor, versions *transform.VersionIndex, items []entity.ArchiveItem) {
	for _, item := range items {
		if res, err := proc.Extractor.Extract(item, parseCreateTime(item)); err == nil && !res.IsTest() {
			versions.Register(res.Metadata)
		}
	}
}

func TestProcessUnitRoutesFailures(t *testing.T) {
	proc, _, tracker, _ := newTestProcessor(t)

	t.Run("no pattern", func(t *testing.T) {
		_, ok := proc.ProcessUnit(context.Background(), archiveItem("a1", "!!! garbage 99 ###"))
		assert.False(t, ok)
		require.NotEmpty(t, tracker.failures)
		assert.Equal(t, constants.CategoryNoPattern, tracker.failures[len(tracker.failures)-1].category)
	})

	t.Run("test pattern", func(t *testing.T) {
		before := len(tracker.testItems)
		_, ok := proc.ProcessUnit(context.Background(), archiveItem("a2", "123456_789.mp4"))
		assert.False(t, ok)
		assert.Len(t, tracker.testItems, before+1)
	})

	t.Run("legacy extension", func(t *testing.T) {
		_, ok := proc.ProcessUnit(context.Background(),
			archiveItem("a3", "Leeds_200623_T20190123_EX123456_Smith_Jane_ORIG.raw"))
		assert.False(t, ok)
		last := tracker.failures[len(tracker.failures)-1]
		assert.Equal(t, constants.CategoryInvalidFormat, last.category)
	})

	t.Run("orphan copy", func(t *testing.T) {
		_, ok := proc.ProcessUnit(context.Background(),
			archiveItem("a4", "Leeds_200623_T20199999_EX999999_Jones_Amy_COPY_2.mp4"))
		assert.False(t, ok)
		last := tracker.failures[len(tracker.failures)-1]
		assert.Equal(t, constants.CategoryOrphanCopy, last.category)
	})
}

// Two units for the same case and chain, versions 1 and 2, sharing one
// contact email: one case, one booking, one capture session, two linked
// recordings, one invite, one share.
func TestProcessUnitEndToEndChain(t *testing.T) {
	proc, versions, tracker, store := newTestProcessor(t)

	store.SetChannelContacts(map[string][]entity.Contact{
		"leeds_200623_t20190123_ex123456_smith_jane_orig":   {{Email: "jo@example.org", FirstName: "Jo"}},
		"leeds_200623_t20190123_ex123456_smith_jane_copy_2": {{Email: "jo@example.org", FirstName: "Jo"}},
	})

	items := []entity.ArchiveItem{
		archiveItem("a1", "Leeds_200623_T20190123_EX123456_Smith_Jane_ORIG.mp4"),
		archiveItem("a2", "Leeds_200623_T20190123_EX123456_Smith_Jane_COPY_2.mp4"),
	}
	registerAll(proc, versions, items)

	first, ok := proc.ProcessUnit(context.Background(), items[0])
	require.True(t, ok, "failures: %+v", tracker.failures)
	second, ok := proc.ProcessUnit(context.Background(), items[1])
	require.True(t, ok, "failures: %+v", tracker.failures)

	assert.Equal(t, first.Case.ID, second.Case.ID)
	assert.Equal(t, first.Booking.ID, second.Booking.ID)
	assert.Equal(t, first.CaptureSession.ID, second.CaptureSession.ID)

	assert.NotEqual(t, first.Recording.ID, second.Recording.ID)
	require.NotNil(t, second.Recording.ParentID)
	assert.Equal(t, first.Recording.ID, *second.Recording.ParentID)

	require.Len(t, first.Invites, 1, "one invite for the new user")
	assert.Empty(t, second.Invites, "same email resolves to the cached user")
	require.Len(t, first.ShareBookings, 1)
	assert.Empty(t, second.ShareBookings, "existing share is a no-op")

	assert.Equal(t, constants.CaseStateOpen, first.Case.State, "share contacts open the case")
}

// An older original superseded by a newer one is rejected, not migrated.
func TestProcessUnitSupersededVersion(t *testing.T) {
	proc, versions, tracker, _ := newTestProcessor(t)

	items := []entity.ArchiveItem{
		archiveItem("a1", "Leeds_200623_T20190123_EX123456_Smith_Jane_ORIG.mp4"),
		archiveItem("a2", "Leeds_200623_T20190123_EX123456_Smith_Jane_ORIG_2.mp4"),
	}
	registerAll(proc, versions, items)

	_, ok := proc.ProcessUnit(context.Background(), items[0])
	assert.False(t, ok)
	last := tracker.failures[len(tracker.failures)-1]
	assert.Equal(t, constants.CategoryNotMostRecent, last.category)

	_, ok = proc.ProcessUnit(context.Background(), items[1])
	assert.True(t, ok, "failures: %+v", tracker.failures)
}
