package constants

// FailureCategory buckets rejected migration units for reporting.
type FailureCategory string

// Stable values (written into failure reports as-is).
const (
	CategoryNoPattern      FailureCategory = "NO_PATTERN"      // no extraction pattern matched
	CategoryTest           FailureCategory = "TEST"            // test/demo data, tracked separately
	CategoryInvalidFormat  FailureCategory = "INVALID_FORMAT"  // disallowed file extension
	CategoryIncompleteData FailureCategory = "INCOMPLETE_DATA" // missing court, timestamp or case reference
	CategoryNotMostRecent  FailureCategory = "NOT_MOST_RECENT" // an older version superseded by a newer one
	CategoryPreGoLive      FailureCategory = "PRE_GO_LIVE"     // recorded before the service went live
	CategoryBuildFailed    FailureCategory = "BUILD_FAILED"    // case resolution failed during group building
	CategoryOrphanCopy     FailureCategory = "ORPHAN_COPY"     // COPY version with no originating case
	CategoryPersistence    FailureCategory = "PERSISTENCE"     // storage error during the transactional write
	CategoryGeneralError   FailureCategory = "ERROR"           // anything else
)

// CaseState mirrors the persisted case lifecycle.
type CaseState string

const (
	CaseStateOpen   CaseState = "OPEN"
	CaseStateClosed CaseState = "CLOSED"
)

// CaseStates lists the persistable case states for schema validation.
var CaseStates = []string{string(CaseStateOpen), string(CaseStateClosed)}

// ParticipantType distinguishes the two participant roles a recording names.
type ParticipantType string

const (
	ParticipantWitness   ParticipantType = "WITNESS"
	ParticipantDefendant ParticipantType = "DEFENDANT"
)

// ParticipantTypes lists the persistable participant roles for schema
// validation.
var ParticipantTypes = []string{string(ParticipantWitness), string(ParticipantDefendant)}

// RecordingOrigin tags entities created by this migration.
const OriginVodafone = "VODAFONE"

// RecordingStatusAvailable is the terminal capture session status for
// archives that already hold a finished recording.
const RecordingStatusAvailable = "RECORDING_AVAILABLE"
