package extraction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtrec/archive-migrator/internal/entity"
)

func extract(t *testing.T, name string) Result {
	t.Helper()
	res, err := NewExtractor(nil).Extract(entity.ArchiveItem{
		ArchiveID:   "arch-1",
		ArchiveName: name,
		Duration:    120,
	}, time.Date(2020, 3, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return res
}

func TestExtractStandardName(t *testing.T) {
	res := extract(t, "Leeds_200623_T20190123_EX123456_Smith_Jane_ORIG.mp4")
	require.False(t, res.IsTest())

	md := res.Metadata
	assert.Equal(t, "Leeds", md.CourtReference)
	assert.Equal(t, "T20190123", md.URN)
	assert.Equal(t, "EX123456", md.ExhibitReference)
	assert.Equal(t, "Smith", md.DefendantLastName)
	assert.Equal(t, "Jane", md.WitnessFirstName)
	assert.Equal(t, "ORIG", md.VersionType)
	assert.Equal(t, "1", md.VersionNumber, "ORIG with no number defaults to 1")
	assert.Equal(t, "mp4", md.FileExtension)
	assert.Equal(t, 2*time.Minute, md.Duration)
}

func TestExtractWithoutExhibit(t *testing.T) {
	res := extract(t, "Leeds_200623_T20190123_Smith_Jane_COPY_2.mp4")
	require.False(t, res.IsTest())

	md := res.Metadata
	assert.Equal(t, "T20190123", md.URN)
	assert.Empty(t, md.ExhibitReference)
	assert.Equal(t, "COPY", md.VersionType)
	assert.Equal(t, "2", md.VersionNumber)
}

func TestExtractDottedCopyVersion(t *testing.T) {
	res := extract(t, "Leeds_200623_T20190123_Smith_Jane_COPY_2.1.mp4")
	require.False(t, res.IsTest())
	assert.Equal(t, "2.1", res.Metadata.VersionNumber)
}

func TestExtractCaseFoldsFields(t *testing.T) {
	res := extract(t, "leeds_200623_t20190123_o'brien-smith_JANE_orig.mp4")
	require.False(t, res.IsTest())

	md := res.Metadata
	assert.Equal(t, "T20190123", md.URN, "URN upper-cased")
	assert.Equal(t, "O'Brien-Smith", md.DefendantLastName)
	assert.Equal(t, "Jane", md.WitnessFirstName)
	assert.Equal(t, "ORIG", md.VersionType)
}

func TestExtractVersionTypeVariants(t *testing.T) {
	for variant, want := range map[string]string{
		"ORG": "ORIG", "ORI": "ORIG", "OR": "ORIG",
		"CPY": "COPY", "COP": "COPY", "CO": "COPY",
	} {
		res := extract(t, "Leeds_200623_T20190123_Smith_Jane_"+variant+"_1.mp4")
		require.False(t, res.IsTest(), variant)
		assert.Equal(t, want, res.Metadata.VersionType, variant)
	}
}

func TestExtractTestPatterns(t *testing.T) {
	for name, wantPattern := range map[string]string{
		"123456_789.mp4":                "DigitOnly",
		"1234_5678":                     "DigitOnlyNoExt",
		"S28 Morning Checks 01-02-2021": "S28MorningChecks",
	} {
		res := extract(t, name)
		require.True(t, res.IsTest(), name)
		assert.Equal(t, wantPattern, res.TestPattern, name)
	}
}

func TestExtractNoPattern(t *testing.T) {
	_, err := NewExtractor(nil).Extract(entity.ArchiveItem{
		ArchiveName: "!!! completely ~ malformed ### 99",
	}, time.Time{})
	assert.ErrorIs(t, err, ErrNoPatternMatched)
}

func TestFormatName(t *testing.T) {
	assert.Equal(t, "O'Brien-Smith", FormatName("o'brien-SMITH"))
	assert.Equal(t, "De La Cruz", FormatName("de la cruz"))
	assert.Empty(t, FormatName(""))
}

func TestPatternIsolation(t *testing.T) {
	// A name matching a specific pattern yields the same fields when only
	// that pattern is consulted directly.
	name := "Leeds_200623_T20190123_EX123456_Smith_Jane_ORIG.mp4"
	res := extract(t, name)

	var matched *NamedPattern
	for i := range RecordingPatterns {
		if RecordingPatterns[i].Name == res.PatternName {
			matched = &RecordingPatterns[i]
			break
		}
	}
	require.NotNil(t, matched)
	assert.True(t, matched.Re.MatchString(name))
}
