package transform

import (
	"strconv"
	"strings"
)

// CompareVersionStrings compares dotted numeric version strings ("2" <
// "2.1" < "3"). Missing segments compare as zero; nil-ish input compares
// as "0".
func CompareVersionStrings(a, b string) int {
	if a == "" {
		a = "0"
	}
	if b == "" {
		b = "0"
	}
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}
	for i := 0; i < n; i++ {
		av, bv := 0, 0
		if i < len(as) {
			av, _ = strconv.Atoi(as[i])
		}
		if i < len(bs) {
			bv, _ = strconv.Atoi(bs[i])
		}
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	return 0
}

// ValidVersionNumber substitutes "1" for blank version strings.
func ValidVersionNumber(v string) string {
	if strings.TrimSpace(v) == "" {
		return "1"
	}
	return v
}

// StandardizedVersionNumber maps a version type to the recording version
// persisted on the entity: originals are 1, copies are 2.
func StandardizedVersionNumber(versionType string) int {
	if strings.EqualFold(versionType, "ORIG") {
		return 1
	}
	return 2
}

// GroupKey is the base natural grouping for version comparisons: all
// versions of the same URN/exhibit/witness/defendant tuple share one key.
func GroupKey(urn, exhibitRef, witnessFirstName, defendantLastName string) string {
	parts := []string{urn, exhibitRef, witnessFirstName, defendantLastName}
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return strings.Join(parts, "|")
}
