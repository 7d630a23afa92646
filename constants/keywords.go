package constants

import "strings"

// TestKeywords mark archives produced by smoke tests, demos and training
// sessions. Matching is case-insensitive containment.
var TestKeywords = []string{
	"test", "demo", "unknown", "training", "t35t",
	"sample", "mock", "dummy", "example", "playback", "predefined",
	"fig_room", "failover", "viw", "support", "wrong", "rmx006",
	"rmx005", "recording", "rpms", "rmx-load", "snoc morning check",
	"s28 rpcs room", "rpp1 user",
}

// ContainsTestKeyword reports whether any test keyword occurs in s and
// returns the first keyword found.
func ContainsTestKeyword(s string) (string, bool) {
	lower := strings.ToLower(s)
	for _, kw := range TestKeywords {
		if strings.Contains(lower, kw) {
			return kw, true
		}
	}
	return "", false
}

// Version type spellings observed in archive names, normalized to ORIG/COPY.
var (
	OrigVersionTypes = map[string]struct{}{"ORIG": {}, "ORG": {}, "ORI": {}, "OR": {}}
	CopyVersionTypes = map[string]struct{}{"COPY": {}, "CPY": {}, "COP": {}, "CO": {}}
)
