package ui

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		name  string
		value string
		limit int
		want  string
	}{
		{"fits", "short", 10, "short"},
		{"exact", "exact", 5, "exact"},
		{"truncated", "a longer string", 8, "a longe…"},
		{"trims trailing space", "abc def", 5, "abc…"},
		{"limit one", "abc", 1, "…"},
		{"zero limit", "abc", 0, ""},
		{"multibyte", "héllo wörld", 6, "héllo…"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncate(tc.value, tc.limit); got != tc.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tc.value, tc.limit, got, tc.want)
			}
		})
	}
}
