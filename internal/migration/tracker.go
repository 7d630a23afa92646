package migration

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/courtrec/archive-migrator/constants"
)

// Tracker receives per-unit outcome signals from the pipeline. The
// pipeline only depends on this interface; reporting output is the
// implementation's business.
type Tracker interface {
	RecordSuccess(archiveID, archiveName string)
	RecordFailure(category constants.FailureCategory, reason, archiveID, archiveName string)
	RecordTestItem(reason, archiveID, archiveName string)
	RecordInvite(email string)
	RecordShareBooking(bookingID, email string)
	RecordPostMigrationFailure(entry PostMigrationFailure)
}

// PostMigrationFailure is the structured record captured when an invite or
// share persists with an error.
type PostMigrationFailure struct {
	EntityType string
	Identifier string
	Email      string
	Action     string
	Reason     string
	Timestamp  time.Time
}

type failureRow struct {
	archiveID   string
	archiveName string
	reason      string
	at          time.Time
}

// ReportTracker accumulates outcomes in memory and writes per-category CSV
// failure reports plus a summary workbook at the end of the run. Safe for
// concurrent use.
type ReportTracker struct {
	mu        sync.Mutex
	migrated  []failureRow
	failures  map[constants.FailureCategory][]failureRow
	testItems []failureRow
	invites   []string
	shares    [][2]string
	postFails []PostMigrationFailure
	logger    *slog.Logger
}

func NewReportTracker(logger *slog.Logger) *ReportTracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportTracker{
		failures: make(map[constants.FailureCategory][]failureRow),
		logger:   logger,
	}
}

func (t *ReportTracker) RecordSuccess(archiveID, archiveName string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.migrated = append(t.migrated, failureRow{archiveID: archiveID, archiveName: archiveName, at: time.Now().UTC()})
}

func (t *ReportTracker) RecordFailure(category constants.FailureCategory, reason, archiveID, archiveName string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.failures[category] = append(t.failures[category], failureRow{
		archiveID: archiveID, archiveName: archiveName, reason: reason, at: time.Now().UTC(),
	})
}

func (t *ReportTracker) RecordTestItem(reason, archiveID, archiveName string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.testItems = append(t.testItems, failureRow{
		archiveID: archiveID, archiveName: archiveName, reason: reason, at: time.Now().UTC(),
	})
}

func (t *ReportTracker) RecordInvite(email string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.invites = append(t.invites, email)
}

func (t *ReportTracker) RecordShareBooking(bookingID, email string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.shares = append(t.shares, [2]string{bookingID, email})
}

func (t *ReportTracker) RecordPostMigrationFailure(entry PostMigrationFailure) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.postFails = append(t.postFails, entry)
}

// Counts returns the aggregate migrated/failed/test tallies.
func (t *ReportTracker) Counts() (migrated, failed, test int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, rows := range t.failures {
		failed += len(rows)
	}
	return len(t.migrated), failed, len(t.testItems)
}

// WriteReports writes one CSV per failure category plus the summary
// workbook into dir.
func (t *ReportTracker) WriteReports(dir string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}

	for category, rows := range t.failures {
		path := filepath.Join(dir, fmt.Sprintf("failed_%s.csv", category))
		if err := writeFailureCSV(path, rows); err != nil {
			return err
		}
	}
	if len(t.testItems) > 0 {
		if err := writeFailureCSV(filepath.Join(dir, "test_items.csv"), t.testItems); err != nil {
			return err
		}
	}
	if err := t.writeSummaryXLSX(filepath.Join(dir, "migration_summary.xlsx")); err != nil {
		return err
	}

	t.logger.Info("reports written", "dir", dir,
		"migrated", len(t.migrated), "categories", len(t.failures), "test_items", len(t.testItems))
	return nil
}

func writeFailureCSV(path string, rows []failureRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"archive_id", "archive_name", "reason", "recorded_at"}); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write([]string{row.archiveID, row.archiveName, row.reason, row.at.Format(time.RFC3339)}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func (t *ReportTracker) writeSummaryXLSX(path string) error {
	f := excelize.NewFile()
	const sheet = "Summary"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	write(1, 1, "Outcome")
	write(2, 1, "Count")
	row := 2
	write(1, row, "Migrated")
	write(2, row, len(t.migrated))
	row++
	write(1, row, "Test items")
	write(2, row, len(t.testItems))
	row++

	categories := make([]string, 0, len(t.failures))
	for c := range t.failures {
		categories = append(categories, string(c))
	}
	sort.Strings(categories)
	for _, c := range categories {
		write(1, row, "Failed: "+c)
		write(2, row, len(t.failures[constants.FailureCategory(c)]))
		row++
	}

	write(1, row, "Invites")
	write(2, row, len(t.invites))
	row++
	write(1, row, "Share bookings")
	write(2, row, len(t.shares))
	row++
	write(1, row, "Post-migration failures")
	write(2, row, len(t.postFails))

	_ = f.SetColWidth(sheet, "A", "A", 32)
	_ = f.SetColWidth(sheet, "B", "B", 12)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}
