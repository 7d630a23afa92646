package entity

import (
	"strings"
	"time"
)

// ArchiveItem is one migration unit as read from the legacy archive
// manifest, before any parsing.
type ArchiveItem struct {
	ArchiveID   string `json:"archive_id"`
	ArchiveName string `json:"archive_name"`
	CreateTime  string `json:"create_time"`
	Duration    int    `json:"duration"`
	FileName    string `json:"file_name"`
	FileSizeMB  string `json:"file_size_mb"`
}

// SanitizedName strips QC markers and collapses runs of separators so the
// extraction patterns see a predictable shape.
func (a ArchiveItem) SanitizedName() string {
	return SanitizeArchiveName(a.ArchiveName)
}

// NameNoExt returns the archive name without its final extension.
func (a ArchiveItem) NameNoExt() string {
	if i := strings.LastIndexByte(a.ArchiveName, '.'); i >= 0 {
		return a.ArchiveName[:i]
	}
	return a.ArchiveName
}

// ExtractedMetadata is the flat key/value record pulled out of an archive
// name by the pattern table. Immutable once produced.
type ExtractedMetadata struct {
	CourtReference    string        `json:"court_reference"`
	URN               string        `json:"urn"`
	ExhibitReference  string        `json:"exhibit_reference"`
	DefendantLastName string        `json:"defendant_last_name"`
	WitnessFirstName  string        `json:"witness_first_name"`
	VersionType       string        `json:"version_type"`
	VersionNumber     string        `json:"version_number"`
	FileExtension     string        `json:"file_extension"`
	CreateTime        time.Time     `json:"create_time"`
	Duration          time.Duration `json:"duration"`
	FileName          string        `json:"file_name"`
	FileSizeMB        string        `json:"file_size_mb"`
	ArchiveID         string        `json:"archive_id"`
	ArchiveName       string        `json:"archive_name"`
}

// ArchiveNameNoExt returns the archive name without its final extension.
func (m ExtractedMetadata) ArchiveNameNoExt() string {
	if i := strings.LastIndexByte(m.ArchiveName, '.'); i >= 0 {
		return m.ArchiveName[:i]
	}
	return m.ArchiveName
}
