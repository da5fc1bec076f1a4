package util

import "strings"

// FirstNonEmpty returns v if it contains non-whitespace content; otherwise fallback.
func FirstNonEmpty(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

// Truncate shortens s to max runes, appending an ellipsis marker when cut.
// max <= 3 returns s unchanged to avoid producing only the marker.
func Truncate(s string, max int) string {
	if max <= 3 {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
