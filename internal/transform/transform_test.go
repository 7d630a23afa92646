package transform

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtrec/archive-migrator/constants"
	"github.com/courtrec/archive-migrator/internal/cache"
	"github.com/courtrec/archive-migrator/internal/entity"
)

func TestDeriveReference(t *testing.T) {
	assert.Equal(t, "URN1", DeriveReference("URN1", ""))
	assert.Equal(t, "EX1", DeriveReference("", "EX1"))
	assert.Equal(t, "URN1-EX1", DeriveReference("URN1", "EX1"))
	assert.Empty(t, DeriveReference("", ""))
}

func TestCompareVersionStrings(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1", "2", -1},
		{"2", "2", 0},
		{"3", "2", 1},
		{"2", "2.1", -1},
		{"2.1", "2", 1},
		{"2.1", "2.1", 0},
		{"10", "9", 1},
		{"", "1", -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CompareVersionStrings(tt.a, tt.b), "%q vs %q", tt.a, tt.b)
	}
}

func TestParseTimestamp(t *testing.T) {
	t.Run("epoch millis", func(t *testing.T) {
		ts := ParseTimestamp("1600000000000")
		require.NotNil(t, ts)
		assert.Equal(t, time.Date(2020, 9, 13, 12, 26, 40, 0, time.UTC), *ts)
	})
	t.Run("placeholder epoch values are unset", func(t *testing.T) {
		assert.Nil(t, ParseTimestamp("0"))
		assert.Nil(t, ParseTimestamp("3600000"))
	})
	t.Run("day-first layouts", func(t *testing.T) {
		for _, raw := range []string{"23/06/2020 14:30", "23-06-2020 14:30", "3/6/2020 14:30"} {
			ts := ParseTimestamp(raw)
			require.NotNil(t, ts, raw)
			assert.Equal(t, 14, ts.Hour(), raw)
		}
	})
	t.Run("iso layout", func(t *testing.T) {
		ts := ParseTimestamp("2020-06-23 14:30:00")
		require.NotNil(t, ts)
		assert.Equal(t, time.June, ts.Month())
	})
	t.Run("unparseable", func(t *testing.T) {
		assert.Nil(t, ParseTimestamp(""))
		assert.Nil(t, ParseTimestamp("not a date"))
	})
}

func TestVersionIndex(t *testing.T) {
	store := cache.New(nil)
	idx := NewVersionIndex(store)

	md := func(versionType, version string) entity.ExtractedMetadata {
		return entity.ExtractedMetadata{
			URN: "T20190123", ExhibitReference: "EX123456",
			WitnessFirstName: "Jane", DefendantLastName: "Smith",
			VersionType: versionType, VersionNumber: version,
		}
	}
	idx.Register(md("ORIG", "1"))
	idx.Register(md("ORIG", "2"))
	idx.Register(md("COPY", "2.1"))

	key := GroupKey("T20190123", "EX123456", "Jane", "Smith")

	max, ok := idx.MostRecent(key, "ORIG")
	require.True(t, ok)
	assert.Equal(t, "2", max)

	max, ok = idx.MostRecent(key, "COPY")
	require.True(t, ok)
	assert.Equal(t, "2.1", max)

	assert.ElementsMatch(t, []string{"1", "2"}, idx.OrigVersions(key))

	// COPY 2.1 belongs to ORIG 2 (prefix match).
	assert.Equal(t, "2", idx.ResolveOrigVersion(key, "2.1", true))
	// COPY with unmatched prefix falls back to the lowest ORIG.
	assert.Equal(t, "1", idx.ResolveOrigVersion(key, "5", true))
	// An ORIG belongs to itself.
	assert.Equal(t, "2", idx.ResolveOrigVersion(key, "2", false))

	// A group with no ORIG at all defaults to "1".
	assert.Equal(t, "1", idx.ResolveOrigVersion("other|group", "3.1", true))
}

type fakeCourtFinder struct {
	byName map[string]uuid.UUID
	calls  int
}

func (f *fakeCourtFinder) FindIDByName(_ context.Context, name string) (uuid.UUID, bool, error) {
	f.calls++
	id, ok := f.byName[name]
	return id, ok, nil
}

func newTestTransformer(t *testing.T) (*Transformer, *cache.Store, *fakeCourtFinder) {
	t.Helper()
	store := cache.New(nil)
	store.SetSites(map[string]string{"LEEDS": "Leeds Crown Court"})
	courts := &fakeCourtFinder{byName: map[string]uuid.UUID{"Leeds Crown Court": uuid.New()}}
	return NewTransformer(store, courts, NewVersionIndex(store), nil), store, courts
}

func baseMetadata() entity.ExtractedMetadata {
	return entity.ExtractedMetadata{
		CourtReference: "Leeds", URN: "T20190123", ExhibitReference: "EX123456",
		DefendantLastName: "Smith", WitnessFirstName: "Jane",
		VersionType: "ORIG", VersionNumber: "1",
		FileExtension: "mp4", FileName: "rec.mp4",
		CreateTime: time.Date(2020, 6, 23, 14, 30, 0, 0, time.UTC),
		Duration:   2 * time.Minute,
		ArchiveID:  "arch-1", ArchiveName: "Leeds_200623_T20190123_EX123456_Smith_Jane_ORIG.mp4",
	}
}

func TestTransformResolvesCourtAndCachesIt(t *testing.T) {
	tr, store, courts := newTestTransformer(t)

	rec, err := tr.Transform(context.Background(), baseMetadata())
	require.NoError(t, err)
	require.NotNil(t, rec.CourtID)
	assert.Equal(t, "Leeds Crown Court", rec.CourtName)
	assert.Equal(t, "T20190123-EX123456", rec.CaseReference)

	id, ok := store.GetCourtID("Leeds Crown Court")
	require.True(t, ok)
	assert.Equal(t, *rec.CourtID, id)

	// Second transform hits the cache, not storage.
	_, err = tr.Transform(context.Background(), baseMetadata())
	require.NoError(t, err)
	assert.Equal(t, 1, courts.calls)
}

func TestTransformUnknownCourtYieldsNilCourt(t *testing.T) {
	tr, _, _ := newTestTransformer(t)
	md := baseMetadata()
	md.CourtReference = "Nowhere"

	rec, err := tr.Transform(context.Background(), md)
	require.NoError(t, err, "missing resolution is not an error")
	assert.Nil(t, rec.CourtID)
}

func TestTransformComputesFinishTime(t *testing.T) {
	tr, _, _ := newTestTransformer(t)

	rec, err := tr.Transform(context.Background(), baseMetadata())
	require.NoError(t, err)
	require.NotNil(t, rec.RecordingTime)
	require.NotNil(t, rec.FinishedAt)
	assert.Equal(t, rec.RecordingTime.Add(2*time.Minute), *rec.FinishedAt)
}

func TestTransformClassifiesTestData(t *testing.T) {
	tr, _, _ := newTestTransformer(t)

	t.Run("keyword in archive name", func(t *testing.T) {
		md := baseMetadata()
		md.ArchiveName = "Leeds_200623_training_session.mp4"
		rec, err := tr.Transform(context.Background(), md)
		require.NoError(t, err)
		assert.True(t, rec.IsTest())
		assert.Contains(t, rec.TestReason, "training")
	})

	t.Run("short duration", func(t *testing.T) {
		md := baseMetadata()
		md.Duration = 5 * time.Second
		rec, err := tr.Transform(context.Background(), md)
		require.NoError(t, err)
		assert.True(t, rec.IsTest())
	})

	t.Run("clean unit", func(t *testing.T) {
		rec, err := tr.Transform(context.Background(), baseMetadata())
		require.NoError(t, err)
		assert.False(t, rec.IsTest())
	})
}

func TestTransformStateFromShareContacts(t *testing.T) {
	tr, store, _ := newTestTransformer(t)
	md := baseMetadata()

	rec, err := tr.Transform(context.Background(), md)
	require.NoError(t, err)
	assert.Equal(t, constants.CaseStateClosed, rec.State)

	store.SetChannelContacts(map[string][]entity.Contact{
		"leeds_200623_t20190123_ex123456_smith_jane_orig": {{Email: "jo@example.org"}},
	})
	rec, err = tr.Transform(context.Background(), md)
	require.NoError(t, err)
	assert.Equal(t, constants.CaseStateOpen, rec.State)
	assert.Len(t, rec.ShareContacts, 1)
}

func TestTransformVersionFields(t *testing.T) {
	tr, store, _ := newTestTransformer(t)
	idx := NewVersionIndex(store)

	orig := baseMetadata()
	copyMD := baseMetadata()
	copyMD.VersionType = "COPY"
	copyMD.VersionNumber = "1.2"
	idx.Register(orig)
	idx.Register(copyMD)

	rec, err := tr.Transform(context.Background(), copyMD)
	require.NoError(t, err)
	assert.Equal(t, 2, rec.VersionNumber, "copies persist as version 2")
	assert.Equal(t, "1", rec.OrigVersionStr)
	assert.Equal(t, "2", rec.CopyVersionStr)
	assert.True(t, rec.IsMostRecent)

	recOrig, err := tr.Transform(context.Background(), orig)
	require.NoError(t, err)
	assert.Equal(t, 1, recOrig.VersionNumber)
	assert.Equal(t, "1", recOrig.OrigVersionStr)
	assert.True(t, recOrig.IsMostRecent)
}
