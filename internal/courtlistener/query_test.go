package courtlistener

import (
	"errors"
	"testing"
)

func TestSearchQuery_ValuesEncodesTextAndCourtVerbatim(t *testing.T) {
	q := SearchQuery{
		Text:        "Andrew Weissmann",
		Court:       "nysd",
		FiledAfter:  "2024-01-01",
		FiledBefore: "2024-12-31",
		PageSize:    25,
	}

	values := q.Values()
	if got := values.Get("q"); got != "Andrew Weissmann" {
		t.Fatalf("q = %q, want %q", got, "Andrew Weissmann")
	}
	if got := values.Get("court"); got != "nysd" {
		t.Fatalf("court = %q, want %q", got, "nysd")
	}
	if got := values.Get("type"); got != "o" {
		t.Fatalf("type = %q, want o", got)
	}
	if got := values.Get("page_size"); got != "25" {
		t.Fatalf("page_size = %q, want 25", got)
	}
	if got := values.Get("date_filed__gte"); got != "2024-01-01" {
		t.Fatalf("date_filed__gte = %q, want 2024-01-01", got)
	}
	if got := values.Get("date_filed__lte"); got != "2024-12-31" {
		t.Fatalf("date_filed__lte = %q, want 2024-12-31", got)
	}
}

func TestSearchQuery_ValuesOmitsEmptyOptionals(t *testing.T) {
	values := SearchQuery{Text: "habeas"}.Values()
	if _, ok := values["court"]; ok {
		t.Fatalf("court param present, want absent: %v", values)
	}
	if _, ok := values["date_filed__gte"]; ok {
		t.Fatalf("date_filed__gte param present, want absent: %v", values)
	}
	if got := values.Get("page_size"); got != "10" {
		t.Fatalf("page_size = %q, want default 10", got)
	}
}

func TestSearchQuery_ValidateRejectsEmptyText(t *testing.T) {
	for _, text := range []string{"", "   ", "\t"} {
		err := SearchQuery{Text: text}.Validate()
		var invalid InvalidQueryError
		if !errors.As(err, &invalid) {
			t.Fatalf("Validate(%q) = %v, want InvalidQueryError", text, err)
		}
	}
}

func TestSearchQuery_ValidateRejectsMalformedDates(t *testing.T) {
	cases := []SearchQuery{
		{Text: "x", FiledAfter: "01/02/2024"},
		{Text: "x", FiledBefore: "2024-13-40"},
		{Text: "x", FiledAfter: "yesterday"},
	}
	for _, q := range cases {
		err := q.Validate()
		var invalid InvalidQueryError
		if !errors.As(err, &invalid) {
			t.Fatalf("Validate(%+v) = %v, want InvalidQueryError", q, err)
		}
	}
	if err := (SearchQuery{Text: "x", FiledAfter: "2024-01-02"}).Validate(); err != nil {
		t.Fatalf("Validate returned error for valid date: %v", err)
	}
}

func TestSearchQuery_RecentValuesDefaultsToToday(t *testing.T) {
	values := SearchQuery{Court: "scotus"}.recentValues("2026-08-30")
	if got := values.Get("court__id"); got != "scotus" {
		t.Fatalf("court__id = %q, want scotus", got)
	}
	if got := values.Get("date_filed__gte"); got != "2026-08-30" {
		t.Fatalf("date_filed__gte = %q, want 2026-08-30", got)
	}
	if _, ok := values["q"]; ok {
		t.Fatalf("q param present, want absent: %v", values)
	}

	values = SearchQuery{FiledAfter: "2026-01-01"}.recentValues("2026-08-30")
	if got := values.Get("date_filed__gte"); got != "2026-01-01" {
		t.Fatalf("date_filed__gte = %q, want explicit start date", got)
	}
}

func TestSearchQuery_PageSizeClamped(t *testing.T) {
	if got := (SearchQuery{PageSize: -3}).pageSize(); got != defaultPageSize {
		t.Fatalf("pageSize = %d, want %d", got, defaultPageSize)
	}
	if got := (SearchQuery{PageSize: 5000}).pageSize(); got != maxPageSize {
		t.Fatalf("pageSize = %d, want %d", got, maxPageSize)
	}
}
