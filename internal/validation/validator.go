package validation

import (
	"fmt"
	"log/slog"

	"github.com/courtrec/archive-migrator/constants"
	"github.com/courtrec/archive-migrator/internal/entity"
)

// Result is the outcome of validating one ProcessedRecording: accepted, or
// rejected with a typed reason.
type Result struct {
	Valid    bool
	Reason   string
	Category constants.FailureCategory
}

func accepted() Result {
	return Result{Valid: true}
}

func rejected(category constants.FailureCategory, reason string) Result {
	return Result{Reason: reason, Category: category}
}

// Validator runs the ordered guard chain over already-computed fields. It
// never re-derives data and has no side effects beyond logging.
type Validator struct {
	logger *slog.Logger
}

func NewValidator(logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Validator{logger: logger}
}

// Validate runs the checks in fixed order and returns on the first
// failure.
func (v *Validator) Validate(rec entity.ProcessedRecording) Result {
	checks := []func(entity.ProcessedRecording) Result{
		checkFileExtension,
		checkRecordingTime,
		checkNotTest,
		checkCourtResolved,
		checkMostRecent,
		checkCaseReference,
		checkAfterGoLive,
	}
	for _, check := range checks {
		if r := check(rec); !r.Valid {
			v.logger.Debug("validation rejected unit",
				"archive", rec.ArchiveName, "category", r.Category, "reason", r.Reason)
			return r
		}
	}
	return accepted()
}

func checkFileExtension(rec entity.ProcessedRecording) Result {
	if rec.FileExtension == "" {
		return rejected(constants.CategoryInvalidFormat, "file extension is blank")
	}
	if _, legacy := constants.LegacyExtensions[rec.FileExtension]; legacy {
		return rejected(constants.CategoryInvalidFormat,
			fmt.Sprintf("legacy file format %q is not migrated", rec.FileExtension))
	}
	return accepted()
}

func checkRecordingTime(rec entity.ProcessedRecording) Result {
	if rec.RecordingTime == nil {
		return rejected(constants.CategoryIncompleteData, "recording timestamp missing or unparseable")
	}
	return accepted()
}

func checkNotTest(rec entity.ProcessedRecording) Result {
	if rec.IsTest() {
		return rejected(constants.CategoryTest, rec.TestReason)
	}
	return accepted()
}

func checkCourtResolved(rec entity.ProcessedRecording) Result {
	if rec.CourtID == nil {
		return rejected(constants.CategoryIncompleteData,
			fmt.Sprintf("court %q could not be resolved", rec.CourtReference))
	}
	return accepted()
}

func checkMostRecent(rec entity.ProcessedRecording) Result {
	if !rec.IsMostRecent {
		return rejected(constants.CategoryNotMostRecent,
			fmt.Sprintf("version %s superseded by a newer version", rec.VersionNumberStr))
	}
	return accepted()
}

func checkCaseReference(rec entity.ProcessedRecording) Result {
	if rec.CaseReference == "" {
		return rejected(constants.CategoryIncompleteData, "case reference is empty")
	}
	return accepted()
}

func checkAfterGoLive(rec entity.ProcessedRecording) Result {
	if rec.RecordingTime != nil && rec.RecordingTime.Before(constants.GoLiveDate) {
		return rejected(constants.CategoryPreGoLive,
			fmt.Sprintf("recorded %s, before service go-live %s",
				rec.RecordingTime.Format("2006-01-02"), constants.GoLiveDate.Format("2006-01-02")))
	}
	return accepted()
}
