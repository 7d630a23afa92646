package entity

import (
	"regexp"
	"strings"
)

var (
	reQCPrefix    = regexp.MustCompile(`^QC[_\d]?`)
	reQCSuffix    = regexp.MustCompile(`[-_\s]QC\d*(\.[a-zA-Z0-9]+$|$)`)
	reNoteSuffix  = regexp.MustCompile(`[-_\s]?(CP-Case|AS URN)[-_\s]?$`)
	reTrailingSep = regexp.MustCompile(`_(\.[^.]+$)`)
	reSepRuns     = regexp.MustCompile(`[-_\s]{2,}`)
)

// SanitizeArchiveName strips QC prefixes/suffixes and annotation words the
// operators appended to archive names, and collapses runs of separators.
// Extraction patterns run against the sanitized form; the raw name is kept
// for reporting.
func SanitizeArchiveName(name string) string {
	if name == "" {
		return ""
	}
	s := reQCPrefix.ReplaceAllString(name, "")
	s = reQCSuffix.ReplaceAllString(s, "$1")
	s = reNoteSuffix.ReplaceAllString(s, "")
	s = reTrailingSep.ReplaceAllString(s, "$1")
	s = reSepRuns.ReplaceAllString(s, "-")
	return strings.TrimSpace(s)
}
