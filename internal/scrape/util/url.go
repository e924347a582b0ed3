package util

import "strings"

// CanonicalLink strips the query string and fragment from a job URL.
// The bare path is the dedup key; tracking params vary per impression.
func CanonicalLink(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexAny(raw, "?#"); i >= 0 {
		raw = raw[:i]
	}
	return raw
}
