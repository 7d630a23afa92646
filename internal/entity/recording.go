package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/courtrec/archive-migrator/constants"
)

// Contact is one share-booking recipient parsed from the channel reference
// data.
type Contact struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ProcessedRecording is the typed, cleansed projection of one migration
// unit. Produced by the transformer, checked by the validator, and owned by
// the pipeline run that created it; never mutated after validation passes.
type ProcessedRecording struct {
	ArchiveID   string
	ArchiveName string

	CourtReference string
	CourtID        *uuid.UUID
	CourtName      string

	URN              string
	ExhibitReference string
	CaseReference    string
	State            constants.CaseState

	DefendantLastName string
	WitnessFirstName  string

	VersionType      string // ORIG or COPY
	VersionNumberStr string // as extracted, possibly dotted ("2.1")
	OrigVersionStr   string // version string of the originating ORIG chain
	CopyVersionStr   string // dotted suffix for COPY versions, empty otherwise
	VersionNumber    int    // standardized: ORIG=1, COPY=2
	IsMostRecent     bool
	TestReason       string // non-empty marks the unit as test/demo data
	RecordingTime    *time.Time
	Duration         time.Duration
	FinishedAt       *time.Time
	FileExtension    string
	FileName         string
	ShareContacts    []Contact
}

// ParticipantPair joins the witness and defendant names into the stable
// fragment used by the chain natural key.
func (p ProcessedRecording) ParticipantPair() string {
	return p.WitnessFirstName + "-" + p.DefendantLastName
}

// IsTest reports whether the transformer classified this unit as test data.
func (p ProcessedRecording) IsTest() bool {
	return p.TestReason != ""
}

// IsCopy reports whether the unit is a COPY version.
func (p ProcessedRecording) IsCopy() bool {
	return p.VersionType == "COPY"
}
