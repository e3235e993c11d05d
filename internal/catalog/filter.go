package catalog

import "strings"

// Filter narrows courses to those whose title contains query
// (case-insensitively) and, when categoryID is non-empty, whose CategoryID
// matches it exactly. An empty query matches every title. The input order is
// preserved and the input slice is never mutated.
func Filter(courses []Course, query, categoryID string) []Course {
	query = strings.ToLower(query)

	out := make([]Course, 0, len(courses))
	for _, c := range courses {
		if query != "" && !strings.Contains(strings.ToLower(c.Title), query) {
			continue
		}
		if categoryID != "" && c.CategoryID != categoryID {
			continue
		}
		out = append(out, c)
	}
	return out
}
