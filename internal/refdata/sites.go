package refdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadSites reads the site-reference -> court-full-name CSV. The file has
// a header row; column 0 is the site reference, column 1 the court name.
// Blank or comment-like rows are skipped.
func LoadSites(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sites file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	sites := make(map[string]string)
	header := true
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read sites file: %w", err)
		}
		if header {
			header = false
			continue
		}
		if len(row) < 2 {
			continue
		}
		ref := strings.TrimSpace(row[0])
		name := strings.TrimSpace(row[1])
		if ref == "" || name == "" {
			continue
		}
		sites[strings.ToUpper(ref)] = name
	}
	return sites, nil
}
