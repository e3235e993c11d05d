// Package catalog owns the course records BaroHub displays: the domain
// types, the seed data, the mutable store with its persistence, and the
// search filter.
package catalog

// Category is one entry of the fixed, non-editable category set. Color is a
// display hint (hex) consumed by the UI theme.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Topic is a single lesson inside a course. Topics belong to exactly one
// course and are only created alongside it.
type Topic struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	VideoURL string `json:"videoUrl"`
}

// Course is a catalog record. Category carries the denormalized display
// name of CategoryID's category; an unresolvable CategoryID degrades the
// display name to a fallback label rather than failing.
type Course struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Category   string  `json:"category"`
	CategoryID string  `json:"categoryId"`
	Price      float64 `json:"price"`
	Rating     float64 `json:"rating"`
	Duration   string  `json:"duration"`
	Image      string  `json:"image"`
	VideoURL   string  `json:"videoUrl,omitempty"`
	Topics     []Topic `json:"topics"`
}

func cloneCourses(courses []Course) []Course {
	if len(courses) == 0 {
		return nil
	}
	dup := make([]Course, len(courses))
	copy(dup, courses)
	for i := range dup {
		if len(dup[i].Topics) == 0 {
			continue
		}
		topics := make([]Topic, len(dup[i].Topics))
		copy(topics, dup[i].Topics)
		dup[i].Topics = topics
	}
	return dup
}
