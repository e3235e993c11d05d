package ui

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"", 10, ""},
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"a longer string", 10, "a longer …"},
		{"koorsada xirfadda", 1, "k"},
		{"anything", 0, ""},
		// Rune-aware: multibyte text must not be cut mid-character.
		{"Suuq-geynta Casriga €", 12, "Suuq-geynta…"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.max); got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{99, "99"},
		{125, "125"},
		{49.5, "49.5"},
		{0, "0"},
		{19.99, "19.99"},
	}
	for _, tc := range cases {
		if got := formatPrice(tc.in); got != tc.want {
			t.Errorf("formatPrice(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Errorf("padRight(ab, 5) = %q", got)
	}
	if got := padRight("abcde", 3); got != "abcde " {
		t.Errorf("padRight must never truncate, got %q", got)
	}
}
