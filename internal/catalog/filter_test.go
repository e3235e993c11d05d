package catalog

import "testing"

func testCourses() []Course {
	return []Course{
		{ID: "a", Title: "CourseA", CategoryID: "cat_biz", Price: 10},
		{ID: "b", Title: "CourseB", CategoryID: "cat_code", Price: 20},
		{ID: "c", Title: "Graphic Design Pro", CategoryID: "cat_design"},
	}
}

func TestFilter_EmptyQueryIsIdentity(t *testing.T) {
	in := testCourses()
	got := Filter(in, "", "")
	if len(got) != len(in) {
		t.Fatalf("Filter returned %d courses, want %d", len(got), len(in))
	}
	for i := range in {
		if got[i].ID != in[i].ID {
			t.Fatalf("order changed at %d: got %s want %s", i, got[i].ID, in[i].ID)
		}
	}
}

func TestFilter_CaseInsensitiveSubstring(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"lowercase match", "coursea", []string{"a"}},
		{"uppercase match", "COURSEB", []string{"b"}},
		{"shared substring keeps order", "course", []string{"a", "b"}},
		{"interior substring", "design", []string{"c"}},
		{"no match", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(testCourses(), tt.query, "")
			if len(got) != len(tt.want) {
				t.Fatalf("Filter(%q) returned %d courses, want %d", tt.query, len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Fatalf("Filter(%q)[%d] = %s, want %s", tt.query, i, got[i].ID, id)
				}
			}
		})
	}
}

func TestFilter_CategorySelection(t *testing.T) {
	got := Filter(testCourses(), "", "cat_code")
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("category filter = %#v, want only course b", got)
	}

	// Unset category is equivalent to no category filter.
	if got := Filter(testCourses(), "", ""); len(got) != 3 {
		t.Fatalf("unset category filter returned %d courses, want 3", len(got))
	}
}

func TestFilter_QueryAndCategoryCombine(t *testing.T) {
	got := Filter(testCourses(), "course", "cat_biz")
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("combined filter = %#v, want only course a", got)
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	in := testCourses()
	_ = Filter(in, "coursea", "")
	if in[0].ID != "a" || in[1].ID != "b" || in[2].ID != "c" {
		t.Fatalf("input mutated: %#v", in)
	}
}
