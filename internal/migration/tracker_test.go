package migration

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtrec/archive-migrator/constants"
)

func TestTrackerCounts(t *testing.T) {
	tr := NewReportTracker(nil)
	tr.RecordSuccess("a1", "one.mp4")
	tr.RecordSuccess("a2", "two.mp4")
	tr.RecordFailure(constants.CategoryNoPattern, "no match", "a3", "three.mp4")
	tr.RecordFailure(constants.CategoryPersistence, "db down", "a4", "four.mp4")
	tr.RecordTestItem("demo keyword", "a5", "five.mp4")

	migrated, failed, test := tr.Counts()
	assert.Equal(t, 2, migrated)
	assert.Equal(t, 2, failed)
	assert.Equal(t, 1, test)
}

func TestTrackerWriteReports(t *testing.T) {
	dir := t.TempDir()

	tr := NewReportTracker(nil)
	tr.RecordSuccess("a1", "one.mp4")
	tr.RecordFailure(constants.CategoryNoPattern, "no match", "a3", "three.mp4")
	tr.RecordTestItem("demo keyword", "a5", "five.mp4")
	tr.RecordInvite("jo@example.org")
	tr.RecordShareBooking("b-1", "jo@example.org")
	tr.RecordPostMigrationFailure(PostMigrationFailure{
		EntityType: "invite", Identifier: "u-1", Email: "x@example.org",
		Action: "create", Reason: "db down", Timestamp: time.Now(),
	})

	require.NoError(t, tr.WriteReports(dir))

	// One CSV per failure category, with header plus one row.
	f, err := os.Open(filepath.Join(dir, "failed_NO_PATTERN.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"archive_id", "archive_name", "reason", "recorded_at"}, rows[0])
	assert.Equal(t, "a3", rows[1][0])
	assert.Equal(t, "no match", rows[1][2])

	_, err = os.Stat(filepath.Join(dir, "test_items.csv"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "migration_summary.xlsx"))
	assert.NoError(t, err)
}
