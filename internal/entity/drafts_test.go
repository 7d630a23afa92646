package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/courtrec/archive-migrator/constants"
)

func TestParticipantKeyFoldsCaseAndSpace(t *testing.T) {
	a := Participant{Type: constants.ParticipantWitness, FirstName: "Jo", LastName: "Bloggs"}
	b := Participant{Type: constants.ParticipantWitness, FirstName: " jo ", LastName: "BLOGGS"}
	c := Participant{Type: constants.ParticipantDefendant, FirstName: "Jo", LastName: "Bloggs"}

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key(), "type is part of identity")
}

func TestMergeParticipantsUnion(t *testing.T) {
	c := &CaseDraft{
		ID: uuid.New(),
		Participants: []Participant{
			{Type: constants.ParticipantWitness, FirstName: "jo", LastName: "bloggs"},
		},
	}

	// Case-different duplicate is not added.
	changed := c.MergeParticipants([]Participant{
		{Type: constants.ParticipantWitness, FirstName: "Jo", LastName: "Bloggs"},
	})
	assert.False(t, changed)
	assert.Len(t, c.Participants, 1)

	// A genuinely new participant is added; existing ones are kept.
	changed = c.MergeParticipants([]Participant{
		{Type: constants.ParticipantDefendant, FirstName: "Sam", LastName: "Smith"},
	})
	assert.True(t, changed)
	assert.Len(t, c.Participants, 2)
}
