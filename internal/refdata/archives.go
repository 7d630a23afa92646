package refdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/courtrec/archive-migrator/internal/entity"
)

// LoadArchiveList reads the legacy archive manifest CSV. Expected columns:
// archive_id, archive_name, create_time, duration, file_name, file_size_mb.
// Duration is whole seconds; file size may be fractional.
func LoadArchiveList(path string) ([]entity.ArchiveItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open archive list: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var items []entity.ArchiveItem
	header := true
	line := 0
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read archive list: %w", err)
		}
		line++
		if header {
			header = false
			continue
		}
		if len(row) < 3 {
			return nil, fmt.Errorf("archive list line %d: expected at least 3 columns, got %d", line, len(row))
		}

		item := entity.ArchiveItem{
			ArchiveID:   strings.TrimSpace(row[0]),
			ArchiveName: strings.TrimSpace(row[1]),
			CreateTime:  strings.TrimSpace(row[2]),
		}
		if len(row) > 3 {
			if d, err := strconv.Atoi(strings.TrimSpace(row[3])); err == nil {
				item.Duration = d
			}
		}
		if len(row) > 4 {
			item.FileName = strings.TrimSpace(row[4])
		}
		if len(row) > 5 {
			item.FileSizeMB = strings.TrimSpace(row[5])
		}
		items = append(items, item)
	}
	return items, nil
}
