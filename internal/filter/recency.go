package filter

import (
	"regexp"
	"strconv"
	"strings"
)

var agoRe = regexp.MustCompile(`(\d+)\s*(hour|day)`)

// WithinWindow reports whether a card's posted-text ("3 hours ago",
// "Just now", "2 days ago") falls inside the trailing window. Listing pages
// return cards newest-first, so the caller stops paginating on the first
// false.
func WithinWindow(postedText string, maxHours int) bool {
	t := strings.ToLower(postedText)
	if strings.Contains(t, "just now") || strings.Contains(t, "minute") {
		return true
	}
	m := agoRe.FindStringSubmatch(t)
	if m == nil {
		return false
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return false
	}
	switch m[2] {
	case "hour":
		return v <= maxHours
	case "day":
		return v == 0
	}
	return false
}
