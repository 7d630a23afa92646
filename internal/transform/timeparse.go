package transform

import (
	"strconv"
	"strings"
	"time"
)

// timeLayouts is ordered: day-first layouts with both separators, 1-2 digit
// day/month variants, then the ISO form some manifests use.
var timeLayouts = []string{
	"02/01/2006 15:04",
	"2/1/2006 15:04",
	"02-01-2006 15:04",
	"2-1-2006 15:04",
	"02/01/2006 15:04:05",
	"02-01-2006 15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// ParseTimestamp parses a create-time field that is either an epoch
// millisecond value or one of the known date-time layouts. Unparseable
// input returns nil; a null timestamp is rejected later by validation.
func ParseTimestamp(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	if millis, err := strconv.ParseInt(raw, 10, 64); err == nil {
		// 0 and 3600000 are placeholder values the source system wrote when
		// it had no real timestamp.
		if millis <= 3600000 {
			return nil
		}
		t := time.UnixMilli(millis).UTC()
		return &t
	}

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}
