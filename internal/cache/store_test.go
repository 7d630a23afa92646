package cache

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtrec/archive-migrator/internal/entity"
)

func TestPutIfAbsent(t *testing.T) {
	s := New(nil)

	v, loaded := s.PutIfAbsent("k", "f", "first")
	assert.False(t, loaded)
	assert.Equal(t, "first", v)

	v, loaded = s.PutIfAbsent("k", "f", "second")
	assert.True(t, loaded, "second writer observes the first write")
	assert.Equal(t, "first", v)

	// A different field on the same key is independent.
	_, loaded = s.PutIfAbsent("k", "g", "other")
	assert.False(t, loaded)
}

func TestPutIfAbsentConcurrent(t *testing.T) {
	s := New(nil)
	const workers = 32

	var wg sync.WaitGroup
	winners := make([]any, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			v, _ := s.PutIfAbsent("k", "f", n)
			winners[n] = v
		}(i)
	}
	wg.Wait()

	// Exactly one value won; every caller observed it.
	first := winners[0]
	for _, v := range winners {
		assert.Equal(t, first, v)
	}
}

func TestNormalizeCaseReference(t *testing.T) {
	assert.Equal(t, "T20190123-EX1", NormalizeCaseReference("  t20190123-ex1 "))
	assert.Equal(t, "A B C", NormalizeCaseReference("a   b\tc"))
	assert.Empty(t, NormalizeCaseReference("   "))
}

func TestCaseRoundTrip(t *testing.T) {
	s := New(nil)

	_, ok := s.GetCase("T20190123")
	assert.False(t, ok)

	draft := &entity.CaseDraft{ID: uuid.New(), Reference: "T20190123"}
	s.SaveCase("t20190123", draft)

	got, ok := s.GetCase(" T20190123 ")
	require.True(t, ok, "lookup is normalization-insensitive")
	assert.Same(t, draft, got)
}

func TestUserEmailFolding(t *testing.T) {
	s := New(nil)
	id := uuid.New()
	s.SaveUser("Jo@Example.ORG", id)

	got, ok := s.GetUserIDByEmail(" jo@example.org ")
	require.True(t, ok)
	assert.Equal(t, id, got)
}

func TestShareBookingDedup(t *testing.T) {
	s := New(nil)
	booking, user := uuid.New(), uuid.New()

	assert.False(t, s.ShareBookingExists(booking, user))
	assert.True(t, s.MarkShareBooking(booking, user), "first mark wins")
	assert.False(t, s.MarkShareBooking(booking, user), "second mark is a no-op")
	assert.True(t, s.ShareBookingExists(booking, user))
}

func TestSitesAndChannels(t *testing.T) {
	s := New(nil)
	s.SetSites(map[string]string{"leeds": "Leeds Crown Court"})

	name, ok := s.SiteName("LEEDS")
	require.True(t, ok)
	assert.Equal(t, "Leeds Crown Court", name)

	s.SetChannelContacts(map[string][]entity.Contact{
		"Archive_One": {{Email: "jo@example.org"}},
	})
	contacts := s.ChannelContacts("archive_one")
	require.Len(t, contacts, 1)
	assert.Equal(t, "jo@example.org", contacts[0].Email)

	assert.Empty(t, s.ChannelContacts("missing"))
}
