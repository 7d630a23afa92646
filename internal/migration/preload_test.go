package migration

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtrec/archive-migrator/constants"
	"github.com/courtrec/archive-migrator/internal/cache"
	"github.com/courtrec/archive-migrator/internal/entity"
)

type fakeUserLister struct {
	users []*entity.UserDraft
	err   error
}

func (f fakeUserLister) ListAll(context.Context) ([]*entity.UserDraft, error) {
	return f.users, f.err
}

type fakeCaseLister struct {
	cases []*entity.CaseDraft
	err   error
}

func (f fakeCaseLister) ListAll(context.Context) ([]*entity.CaseDraft, error) {
	return f.cases, f.err
}

func TestPreloadResolvesPersistedUsers(t *testing.T) {
	store := cache.New(nil)
	persisted := &entity.UserDraft{ID: uuid.New(), Email: "jo@example.org"}

	p := NewPreloader(store, fakeUserLister{users: []*entity.UserDraft{persisted}}, fakeCaseLister{}, nil)
	require.NoError(t, p.Preload(context.Background()))

	b := NewBuilder(store, uuid.New(), nil)
	rec := testRecording()
	rec.ShareContacts = []entity.Contact{{Email: "jo@example.org"}}

	group, err := b.Build(rec)
	require.NoError(t, err)
	assert.Empty(t, group.Invites, "user already has an account")
	require.Len(t, group.ShareBookings, 1)
	assert.Equal(t, persisted.ID, group.ShareBookings[0].SharedWithUser)
}

func TestPreloadResolvesCrossRunCopies(t *testing.T) {
	store := cache.New(nil)
	persisted := &entity.CaseDraft{
		ID:        uuid.New(),
		Reference: "T20190123-EX123456",
		State:     constants.CaseStateClosed,
		Origin:    constants.OriginVodafone,
	}

	p := NewPreloader(store, fakeUserLister{}, fakeCaseLister{cases: []*entity.CaseDraft{persisted}}, nil)
	require.NoError(t, p.Preload(context.Background()))

	b := NewBuilder(store, uuid.New(), nil)
	rec := testRecording()
	rec.VersionType = "COPY"
	rec.VersionNumber = 2

	group, err := b.Build(rec)
	require.NoError(t, err, "copy of a case migrated in a prior run is not an orphan")
	assert.Equal(t, persisted.ID, group.Case.ID)
	assert.Equal(t, persisted.ID, group.Booking.CaseID)
}

func TestPreloadPropagatesStorageErrors(t *testing.T) {
	store := cache.New(nil)
	boom := errors.New("connection reset")

	p := NewPreloader(store, fakeUserLister{err: boom}, fakeCaseLister{}, nil)
	assert.ErrorIs(t, p.Preload(context.Background()), boom)

	p = NewPreloader(store, fakeUserLister{}, fakeCaseLister{err: boom}, nil)
	assert.ErrorIs(t, p.Preload(context.Background()), boom)
}
