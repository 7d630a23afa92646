package validation

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/courtrec/archive-migrator/constants"
	"github.com/courtrec/archive-migrator/internal/entity"
)

func validRecording() entity.ProcessedRecording {
	ts := time.Date(2020, 6, 23, 14, 30, 0, 0, time.UTC)
	courtID := uuid.New()
	return entity.ProcessedRecording{
		ArchiveName:      "Leeds_200623_T20190123_Smith_Jane_ORIG.mp4",
		CourtID:          &courtID,
		CaseReference:    "T20190123-EX123456",
		FileExtension:    "mp4",
		RecordingTime:    &ts,
		IsMostRecent:     true,
		VersionNumberStr: "1",
	}
}

func TestValidateAccepted(t *testing.T) {
	res := NewValidator(nil).Validate(validRecording())
	assert.True(t, res.Valid)
	assert.Empty(t, res.Reason)
}

func TestValidateRejections(t *testing.T) {
	v := NewValidator(nil)

	tests := []struct {
		name     string
		mutate   func(*entity.ProcessedRecording)
		category constants.FailureCategory
	}{
		{"blank extension", func(r *entity.ProcessedRecording) { r.FileExtension = "" }, constants.CategoryInvalidFormat},
		{"legacy extension", func(r *entity.ProcessedRecording) { r.FileExtension = "raw" }, constants.CategoryInvalidFormat},
		{"missing timestamp", func(r *entity.ProcessedRecording) { r.RecordingTime = nil }, constants.CategoryIncompleteData},
		{"test data", func(r *entity.ProcessedRecording) { r.TestReason = "contains test keyword" }, constants.CategoryTest},
		{"unresolved court", func(r *entity.ProcessedRecording) { r.CourtID = nil }, constants.CategoryIncompleteData},
		{"superseded version", func(r *entity.ProcessedRecording) { r.IsMostRecent = false }, constants.CategoryNotMostRecent},
		{"empty case reference", func(r *entity.ProcessedRecording) { r.CaseReference = "" }, constants.CategoryIncompleteData},
		{"pre go-live recording", func(r *entity.ProcessedRecording) {
			ts := constants.GoLiveDate.AddDate(0, -1, 0)
			r.RecordingTime = &ts
		}, constants.CategoryPreGoLive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validRecording()
			tt.mutate(&rec)
			res := v.Validate(rec)
			assert.False(t, res.Valid)
			assert.Equal(t, tt.category, res.Category)
			assert.NotEmpty(t, res.Reason)
		})
	}
}

func TestValidateShortCircuit(t *testing.T) {
	// Failing both the extension and court checks reports only the
	// extension failure.
	rec := validRecording()
	rec.FileExtension = ""
	rec.CourtID = nil

	res := NewValidator(nil).Validate(rec)
	assert.False(t, res.Valid)
	assert.Equal(t, constants.CategoryInvalidFormat, res.Category)
	assert.Equal(t, "file extension is blank", res.Reason)
}

func TestValidateTestReasonPassedThrough(t *testing.T) {
	rec := validRecording()
	rec.TestReason = "duration 5s below minimum 10s"

	res := NewValidator(nil).Validate(rec)
	assert.Equal(t, constants.CategoryTest, res.Category)
	assert.Equal(t, rec.TestReason, res.Reason)
}
