package extraction

import (
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/courtrec/archive-migrator/constants"
	"github.com/courtrec/archive-migrator/internal/entity"
)

// ErrNoPatternMatched is returned when an archive name fits none of the
// recording patterns.
var ErrNoPatternMatched = errors.New("no recording pattern matched")

// Extractor turns raw archive names into ExtractedMetadata by ordered
// pattern matching. It is a pure function over its input plus the static
// pattern tables.
type Extractor struct {
	logger *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// Result carries the outcome of extracting one archive item.
type Result struct {
	Metadata    entity.ExtractedMetadata
	PatternName string
	// TestPattern is set when the name matched a test pattern instead of a
	// recording pattern; Metadata is zero in that case.
	TestPattern string
}

// IsTest reports whether the archive matched a test pattern.
func (r Result) IsTest() bool { return r.TestPattern != "" }

// Extract matches the sanitized archive name against the recording
// patterns in order and returns the first match's named groups. Names that
// match a test pattern are classified as test data rather than failed.
func (e *Extractor) Extract(item entity.ArchiveItem, createTime time.Time) (Result, error) {
	name := item.SanitizedName()
	if name == "" {
		e.logger.Warn("archive has empty sanitized name", "archive_id", item.ArchiveID)
	}

	for _, p := range RecordingPatterns {
		m := p.Re.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		e.logger.Debug("pattern matched", "pattern", p.Name, "archive", item.ArchiveName)
		return Result{
			Metadata:    e.buildMetadata(p.Re, m, item, createTime),
			PatternName: p.Name,
		}, nil
	}

	if testName, ok := MatchTestPattern(name); ok {
		e.logger.Info("archive matched test pattern", "pattern", testName, "archive", item.ArchiveName)
		return Result{TestPattern: testName}, nil
	}

	e.logger.Debug("no pattern matched", "archive", item.ArchiveName)
	return Result{}, ErrNoPatternMatched
}

func (e *Extractor) buildMetadata(re *regexp.Regexp, match []string, item entity.ArchiveItem, createTime time.Time) entity.ExtractedMetadata {
	group := func(name string) string {
		if i := re.SubexpIndex(name); i >= 0 && i < len(match) {
			return match[i]
		}
		return ""
	}

	versionType := NormalizeVersionType(group("versionType"))
	versionNumber := group("versionNumber")
	if _, isOrig := constants.OrigVersionTypes[versionType]; isOrig && versionNumber == "" {
		versionNumber = "1"
	}

	return entity.ExtractedMetadata{
		CourtReference:    group("court"),
		URN:               strings.ToUpper(group("urn")),
		ExhibitReference:  strings.ToUpper(group("exhibitRef")),
		DefendantLastName: FormatName(group("defendantLastName")),
		WitnessFirstName:  FormatName(group("witnessFirstName")),
		VersionType:       versionType,
		VersionNumber:     versionNumber,
		FileExtension:     strings.ToLower(group("ext")),
		CreateTime:        createTime,
		Duration:          time.Duration(item.Duration) * time.Second,
		FileName:          item.FileName,
		FileSizeMB:        item.FileSizeMB,
		ArchiveID:         item.ArchiveID,
		ArchiveName:       item.ArchiveName,
	}
}

// NormalizeVersionType maps the spelling variants found in archive names
// onto the two canonical version types. Unrecognized input is returned
// upper-cased so validation can reject it with the original text.
func NormalizeVersionType(v string) string {
	upper := strings.ToUpper(strings.TrimSpace(v))
	if _, ok := constants.OrigVersionTypes[upper]; ok {
		return "ORIG"
	}
	if _, ok := constants.CopyVersionTypes[upper]; ok {
		return "COPY"
	}
	return upper
}

// FormatName lower-cases a name and re-capitalizes each part, preserving
// hyphen, apostrophe and space separators ("o'brien-SMITH" -> "O'Brien-Smith").
func FormatName(name string) string {
	if name == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(name))
	capitalizeNext := true
	for _, r := range strings.ToLower(name) {
		switch r {
		case '-', '\'', ' ':
			b.WriteRune(r)
			capitalizeNext = true
		default:
			if capitalizeNext {
				b.WriteString(strings.ToUpper(string(r)))
				capitalizeNext = false
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
