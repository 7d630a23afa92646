package constants

import "fmt"

// Cache key namespaces. All dedup state for one run lives under these
// prefixes so a fresh run can clear them wholesale.
const (
	CacheNamespace    = "migration"
	CacheCourtsKey    = CacheNamespace + ":courts"
	CacheCasesKey     = CacheNamespace + ":cases"
	CacheUsersKey     = CacheNamespace + ":users"
	CacheSitesKey     = CacheNamespace + ":sites"
	CacheChannelsKey  = CacheNamespace + ":channels"
	CacheChainsPrefix = CacheNamespace + ":chain:"
	CacheVersionsKey  = CacheNamespace + ":versions"
)

// Hash fields on a chain key.
const (
	FieldBooking           = "booking"
	FieldCaptureSession    = "captureSession"
	FieldRecordingMetadata = "recordingMetadata"
)

// ChainKey is the composite natural key for one booking/capture-session
// chain: case reference plus participant pair plus the original version
// number string.
func ChainKey(caseRef, participantPair, origVersion string) string {
	return fmt.Sprintf("%s%s:%s:%s", CacheChainsPrefix, caseRef, participantPair, origVersion)
}

// ShareBookingKey dedups share creation per booking and recipient.
func ShareBookingKey(bookingID, userID string) string {
	return fmt.Sprintf("%s:share-booking:%s:%s", CacheNamespace, bookingID, userID)
}
