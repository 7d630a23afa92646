package extraction

import "regexp"

// NamedPattern pairs a stable pattern name (used in logs and reports) with
// its compiled expression. Order in the tables below is significant: earlier
// patterns are more specific and must win over the flexible catch-alls.
type NamedPattern struct {
	Name string
	Re   *regexp.Regexp
}

// Shared pattern fragments. Archive names are court/date/URN/exhibit/names/
// version tuples joined by runs of -, _ or space, with a long tail of
// operator-invented variations.
const (
	sepOne  = `[-_\s]+`
	sepZero = `[-_\s]?`

	datePart  = `(?P<date>\d{6}|\d{2}-\d{2}-\d{4}(?:-\d{4})?|\d{2}/\d{2}/\d{4})`
	courtPart = `(?P<court>[A-Za-z]+)`
	urnPart   = `(?P<urn>[A-Za-z0-9]{2,14})`

	exhibitPart = `(?P<exhibitRef>[A-Za-z][A-Za-z0-9]{6,9})`
	versionPart = `(?:(?P<versionType>ORIG|COPY|CPY|ORG|ORI|OR|CO|COP)(?:[-_\s]*(?P<versionNumber>\d+(?:\.\d+)?))?)?`
	extPart     = `(?:\.(?P<ext>mp4|raw|mov|avi|mkv))?`

	defendantPart = `(?P<defendantLastName>[A-Za-z']+(?:[-\s][A-Za-z0-9&]+)*)`
	witnessPart   = `(?P<witnessFirstName>[A-Za-z0-9&']+(?:[-'\s][A-Za-z]+)*)`
	namesPart     = defendantPart + sepOne + witnessPart
)

func compile(parts ...string) *regexp.Regexp {
	expr := `(?i)^`
	for _, p := range parts {
		expr += p
	}
	return regexp.MustCompile(expr + `$`)
}

// RecordingPatterns is the ordered table for legitimate recording names.
var RecordingPatterns = []NamedPattern{
	{"Standard", compile(
		courtPart, sepOne, datePart, sepOne, urnPart, sepOne,
		`(?:`, exhibitPart, sepOne, `)?`, namesPart, sepOne, versionPart, extPart,
	)},
	{"StandardWithNumberPrefix", compile(
		courtPart, sepOne, datePart, sepOne, `(?:\d{1,5}[-_\s])?`, urnPart, sepOne,
		`(?:`, exhibitPart, sepOne, `)?`, namesPart, sepOne, versionPart, extPart,
	)},
	{"DoubleURN", compile(
		courtPart, sepOne, datePart, sepOne, urnPart, sepOne,
		`(?P<urn2>\d+[A-Za-z]{1,2}\d+)`, sepOne, namesPart, sepOne, versionPart, extPart,
	)},
	{"DoubleExhibit", compile(
		courtPart, sepOne, datePart, sepOne,
		exhibitPart, sepOne, `(?P<exhibitRef2>[A-Za-z]*\d+)`, sepOne,
		namesPart, sepOne, versionPart, extPart,
	)},
	{"Prefixed", compile(
		`(?:(?:S28|NEW|QC)[_\s-]+)?`, courtPart, sepOne, datePart, sepOne, urnPart, sepOne,
		`(?:`, exhibitPart, sepOne, `)?`, namesPart, sepOne, versionPart, extPart,
	)},
	{"PrefixInExhibitPosition", compile(
		courtPart, sepOne, datePart, sepOne, urnPart, sepOne,
		`(?:S?28|NEW|QC)`, sepOne, namesPart, sepOne, versionPart, extPart,
	)},
	{"ExtraID", compile(
		courtPart, sepOne, datePart, sepOne, urnPart, sepOne,
		`(?P<extraId>\d{6,})`, sepOne, namesPart, sepOne, versionPart, extPart,
	)},
	{"DotWitness", compile(
		courtPart, sepOne, `(?P<date>\d{6})`, sepOne, urnPart, sepOne,
		`(?P<urn2>\d+[A-Za-z]{1,2}\d+)`, sepOne,
		defendantPart, sepOne, `\.`, sepOne, versionPart, extPart,
	)},
	{"NoURN", compile(
		courtPart, sepOne, datePart, sepOne, `\.`, sepOne, exhibitPart, sepOne,
		namesPart, sepOne, versionPart, extPart,
	)},
	{"NoExhibitDotSeparator", compile(
		courtPart, sepOne, datePart, sepOne, urnPart, `[-_\s.]+`,
		`(?P<defendantLastName>[A-Za-z'\-\s]+)`, sepOne,
		`(?P<witnessFirstName>[A-Za-z'\-\s]+)`, sepOne, versionPart, extPart,
	)},
	{"PostType", compile(
		`(?P<date>\d{2}-\d{2}-\d{4}-\d{4})`, sepOne,
		`(?P<exhibitRef>Post[A-Za-z]+)`, sepOne,
		`(?P<witnessFirstName>[A-Za-z0-9]+)`, sepOne,
		`(?P<defendantLastName>[A-Za-z0-9]+(?:[-\s][A-Za-z0-9]+)*)`, extPart,
	)},
	{"Flexible", compile(
		courtPart, sepOne, datePart, sepZero, urnPart,
		`(?P<urn2>[A-Za-z0-9]{11})`, sepZero,
		`(?:`, exhibitPart, sepZero, `)?`, namesPart, sepZero, versionPart, extPart,
	)},
}

// TestPatterns match archive names that are recognizably test traffic even
// though they carry no recording metadata. A match here classifies the unit
// as test data, not a failure.
var TestPatterns = []NamedPattern{
	{"DigitOnly", regexp.MustCompile(`(?i)^\d+(?:_\d+)*\.mp4$`)},
	{"DigitOnlyNoExt", regexp.MustCompile(`^\d+(?:_\d+)+$`)},
	{"NoDigit", regexp.MustCompile(`(?i)^[^\d]+\.mp4$`)},
	{"S28", regexp.MustCompile(`(?i)^S?28.*?(?:VMR\d+)?[_\s-]*\d{9,20}.*\.(?:mp4|raw|mov|avi|mkv)$`)},
	{"S28MorningChecks", regexp.MustCompile(`(?i)^\s*S?28\s+Morning\s+Checks\s+(?:\d{8}|\d{2}[-/ ]\d{2}[-/ ]\d{4})(?:\.mp4)?\s*$`)},
	{"SnowMorningChecks", regexp.MustCompile(`(?i)^SNOW\s*Morning\s*Checks\s*\d{4}\s*\d{2}\s*\d{2}\s*VMR\d+(?:\.mp4)?$`)},
	{"VMRTimestamp", regexp.MustCompile(`(?i)^[A-Z\s]+VMR_\d{15,21}$`)},
	{"SimpleVMR", regexp.MustCompile(`(?i)^vmr\.[a-z]+_\d{18}(?:\.(?:mp4|raw|mov|avi|mkv))?$`)},
	{"Batch", regexp.MustCompile(`(?i)^\s*batch\s*\d+_\d{17,20}\s*$`)},
	{"UUIDFilename", regexp.MustCompile(`(?i)^[a-zA-Z0-9]+_\d{15}_\d+_[0-9a-f]{32}(?:\.(?:mp4|mov|avi|mkv))?$`)},
	{"HexFilename", regexp.MustCompile(`(?i)^0x[A-Fa-f0-9]+_[A-Za-z0-9]+_\d+_\d+_[A-Fa-f0-9]+(?:\.(?:mp4|raw|mov|avi|mkv))?$`)},
	{"RPrefixUUID", regexp.MustCompile(`(?i)^R[a-f0-9]{32}$`)},
	{"VMRWithDate", regexp.MustCompile(`(?i)^CR#\d+[-_]VMR\d+[-_]\d{2}\.\d{2}\.\d{4}(?:\.(?:mp4|raw))?$`)},
}

// MatchTestPattern reports whether the name matches a test pattern and
// which one.
func MatchTestPattern(name string) (string, bool) {
	for _, p := range TestPatterns {
		if p.Re.MatchString(name) {
			return p.Name, true
		}
	}
	return "", false
}
