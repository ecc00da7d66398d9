package ocr

import "strings"

// snippet returns a shortened version of text for logging.
func snippet(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}

// normalizeLine trims a line and collapses interior runs of whitespace.
func normalizeLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
