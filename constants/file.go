package constants

import (
	"strings"
	"time"
)

// MinRecordingDuration is the floor below which an archive is treated as a
// test capture rather than evidence.
const MinRecordingDuration = 10 * time.Second

// GoLiveDate is the first day the recording service was in production use;
// anything older belongs to a different system and is not migrated.
var GoLiveDate = time.Date(2019, time.May, 23, 0, 0, 0, 0, time.UTC)

// AllowedExtensions holds the only container formats the migration accepts.
var AllowedExtensions = map[string]struct{}{
	"mp4": {},
}

// LegacyExtensions are formats the source archive produced but which are
// rejected as alternatives to the preferred mp4 renders.
var LegacyExtensions = map[string]struct{}{
	"raw": {},
	"mov": {},
	"avi": {},
	"mkv": {},
}

// DefaultName substitutes for participant or contact names the source never
// recorded.
const DefaultName = "Unknown"

// Case reference length bounds enforced at validation time.
const (
	MinCaseReferenceLength = 9
	MaxCaseReferenceLength = 24
)

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
