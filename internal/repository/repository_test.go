package repository

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtrec/archive-migrator/constants"
	"github.com/courtrec/archive-migrator/gen/ent"
	"github.com/courtrec/archive-migrator/internal/entity"
)

func openTestDB(t *testing.T) *ent.Client {
	t.Helper()
	dsn := "sqlite:" + filepath.Join(t.TempDir(), "archive.db")
	client, pool, err := Open(context.Background(), Config{DSN: dsn}, slog.Default())
	require.NoError(t, err)
	require.Nil(t, pool, "sqlite mode has no pool")
	t.Cleanup(func() { Close(client, pool, slog.Default()) })

	require.NoError(t, client.Schema.Create(context.Background()))
	return client
}

// Opening a "sqlite:" DSN must resolve the embedded driver and serve
// queries; schema creation above already forces a real connection.
func TestOpenSQLiteDSN(t *testing.T) {
	ctx := context.Background()
	client := openTestDB(t)

	n, err := client.User.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.NoError(t, HealthCheck(ctx, nil, 0, slog.Default()))
}

func TestUserRepositoryEnsureAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(openTestDB(t), nil)

	draft := entity.UserDraft{
		ID:        uuid.New(),
		FirstName: "Jo",
		LastName:  "Bloggs",
		Email:     "Jo@Example.org",
	}
	id, err := repo.EnsureByEmail(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, draft.ID, id)

	// Same email with a fresh draft id resolves to the persisted account.
	again, err := repo.EnsureByEmail(ctx, entity.UserDraft{ID: uuid.New(), Email: "jo@example.org"})
	require.NoError(t, err)
	assert.Equal(t, draft.ID, again)

	users, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, draft.ID, users[0].ID)
	assert.Equal(t, "jo@example.org", users[0].Email, "emails persist lower-cased")
}

func TestCaseRepositoryListAll(t *testing.T) {
	ctx := context.Background()
	client := openTestDB(t)

	court, err := client.Court.Create().SetName("Leeds Crown Court").Save(ctx)
	require.NoError(t, err)

	caseID := uuid.New()
	_, err = client.CourtCase.Create().
		SetID(caseID).
		SetCourtID(court.ID).
		SetReference("T20190123-EX123456").
		SetState(string(constants.CaseStateOpen)).
		SetOrigin(constants.OriginVodafone).
		SetTest(false).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Participant.Create().
		SetID(uuid.New()).
		SetCaseID(caseID).
		SetParticipantType(string(constants.ParticipantWitness)).
		SetFirstName("Jane").
		SetLastName(constants.DefaultName).
		Save(ctx)
	require.NoError(t, err)

	cases, err := NewCaseRepository(client, nil).ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, cases, 1)

	got := cases[0]
	assert.Equal(t, caseID, got.ID)
	assert.Equal(t, court.ID, got.CourtID)
	assert.Equal(t, "T20190123-EX123456", got.Reference)
	assert.Equal(t, constants.CaseStateOpen, got.State)
	require.Len(t, got.Participants, 1)
	assert.Equal(t, constants.ParticipantWitness, got.Participants[0].Type)
	assert.Equal(t, "Jane", got.Participants[0].FirstName)
}
