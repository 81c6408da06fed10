package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// StampLayout is the local-time layout written into catalog footers.
const StampLayout = "2006-01-02_15:04:05"

// FormatStamp renders t in the footer layout using local time.
func FormatStamp(t time.Time) string {
	return t.Local().Format(StampLayout)
}

// ParseStamp parses a footer timestamp as local time.
func ParseStamp(input string) (time.Time, error) {
	t, err := time.ParseInLocation(StampLayout, strings.TrimSpace(input), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", input, err)
	}
	return t, nil
}

// FormatAge renders a duration using week/day/hour/minute/second tokens,
// keeping only the two most significant units.
func FormatAge(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}

	type unit struct {
		label string
		value time.Duration
	}
	units := []unit{
		{"w", 7 * 24 * time.Hour},
		{"d", 24 * time.Hour},
		{"h", time.Hour},
		{"m", time.Minute},
		{"s", time.Second},
	}

	var parts []string
	remaining := d
	for _, u := range units {
		if remaining < u.value {
			continue
		}
		count := remaining / u.value
		remaining -= count * u.value
		parts = append(parts, fmt.Sprintf("%d%s", count, u.label))
		if len(parts) == 2 {
			break
		}
	}
	if len(parts) == 0 {
		return "0s"
	}
	return strings.Join(parts, "")
}
