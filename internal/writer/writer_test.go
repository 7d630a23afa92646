package writer

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtrec/archive-migrator/constants"
	"github.com/courtrec/archive-migrator/gen/ent"
	"github.com/courtrec/archive-migrator/internal/entity"
)

func TestRemapParticipants(t *testing.T) {
	persistedWitness := &ent.Participant{
		ID:              uuid.New(),
		ParticipantType: string(constants.ParticipantWitness),
		FirstName:       "jane",
		LastName:        "unknown",
	}
	persisted := []*ent.Participant{persistedWitness}

	placeholder := uuid.New()
	drafts := []entity.Participant{
		// Case-different match remaps onto the persisted identity.
		{ID: uuid.New(), Type: constants.ParticipantWitness, FirstName: "Jane", LastName: "Unknown"},
		// No persisted match keeps the placeholder id.
		{ID: placeholder, Type: constants.ParticipantDefendant, FirstName: "Unknown", LastName: "Smith"},
	}

	ids := RemapParticipants(drafts, persisted, nil)
	require.Len(t, ids, 2)
	assert.Equal(t, persistedWitness.ID, ids[0])
	assert.Equal(t, placeholder, ids[1])
}

func TestRemapParticipantsEmptyPersisted(t *testing.T) {
	draft := entity.Participant{ID: uuid.New(), Type: constants.ParticipantWitness, FirstName: "Jane"}
	ids := RemapParticipants([]entity.Participant{draft}, nil, nil)
	require.Len(t, ids, 1)
	assert.Equal(t, draft.ID, ids[0])
}

func TestCaseLocksSerializeSameKey(t *testing.T) {
	locks := newCaseLocks()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.lock("CASE-1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()
	assert.Equal(t, 16, counter)
}

func TestCaseLocksIndependentKeys(t *testing.T) {
	locks := newCaseLocks()

	unlockA := locks.lock("CASE-A")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := locks.lock("CASE-B")
		unlockB()
		close(done)
	}()
	<-done
}
