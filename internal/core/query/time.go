package query

import (
	"fmt"
	"strings"
	"time"
)

var timeLayouts = []string{
	"15:04",
	"3:04 PM",
	"3:04PM",
	"3 PM",
	"3PM",
}

// ParseTime converts a time of day to minutes since midnight.
func ParseTime(raw string) (int, bool) {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	if raw == "" {
		return 0, false
	}

	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}

		return t.Hour()*60 + t.Minute(), true
	}

	return 0, false
}

// NormalizeTime renders a time of day as 24-hour HH:MM. Unparseable values
// are returned trimmed but otherwise unchanged.
func NormalizeTime(raw string) string {
	minutes, ok := ParseTime(raw)
	if !ok {
		return strings.TrimSpace(raw)
	}

	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
