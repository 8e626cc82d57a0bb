package utils

import "time"

// DefaultNameLength is the display length orchestrator names are
// abbreviated to in chart-facing payloads.
const DefaultNameLength = 15

// AbbreviateName shortens a display name to maxLength runes, appending an
// ellipsis when it was truncated.
func AbbreviateName(name string, maxLength int) string {
	runes := []rune(name)
	if len(runes) <= maxLength {
		return name
	}
	return string(runes[:maxLength]) + "..."
}

// FormatTimestamp formats a timestamp to RFC3339
func FormatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}

// NowUTC returns the current time in UTC
func NowUTC() time.Time {
	return time.Now().UTC()
}
