// Package match decides which search hits are close enough to the query that
// produced them.
package match

import (
	"strings"

	"github.com/sw33tLie/playscope/pkg/apps"
)

// Normalize trims surrounding whitespace and lowercases. Lowercasing is
// locale-naive (strings.ToLower), no Unicode case folding is attempted.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsCloseMatch reports whether title is a close match for query. Any of the
// following is enough: equal titles, query contained in the title, title
// starting with the query, or the query being one whitespace-separated word
// of the title. An empty query matches every title.
func IsCloseMatch(title, query string) bool {
	t := Normalize(title)
	q := Normalize(query)

	if t == q {
		return true
	}
	if strings.Contains(t, q) {
		return true
	}
	if strings.HasPrefix(t, q) {
		return true
	}
	for _, word := range strings.Fields(t) {
		if word == q {
			return true
		}
	}
	return false
}

// Filter returns, in order, the records whose title is a close match for
// query. The input slice is left untouched and no limit is applied.
func Filter(records []apps.AppSummary, query string) []apps.AppSummary {
	out := make([]apps.AppSummary, 0, len(records))
	for _, r := range records {
		if IsCloseMatch(r.Title, query) {
			out = append(out, r)
		}
	}
	return out
}
