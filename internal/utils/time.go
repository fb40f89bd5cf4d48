package utils

import "time"

// FormatTimestamp renders a timestamp for detail views in the user's
// local time.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("2006-01-02 15:04:05 MST")
}
