package courtlistener

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	dateLayout      = "2006-01-02"
	defaultPageSize = 10
	maxPageSize     = 100
)

// SearchQuery describes one search against the API. It is assembled from
// user input at invocation time and discarded after the request is issued.
type SearchQuery struct {
	Text        string
	Court       string // court slug, passed through verbatim
	FiledAfter  string // YYYY-MM-DD, optional
	FiledBefore string // YYYY-MM-DD, optional
	PageSize    int
}

// Validate checks that the query can form a search request. Free text is
// required; date bounds, when present, must be YYYY-MM-DD.
func (q SearchQuery) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return InvalidQueryError{Reason: "search text is empty"}
	}
	return q.ValidateDates()
}

// ValidateDates checks the optional date bounds alone, for callers that
// issue date-filtered requests without free text.
func (q SearchQuery) ValidateDates() error {
	for _, bound := range []struct{ name, value string }{
		{"start date", q.FiledAfter},
		{"end date", q.FiledBefore},
	} {
		if bound.value == "" {
			continue
		}
		if _, err := time.Parse(dateLayout, bound.value); err != nil {
			return InvalidQueryError{Reason: fmt.Sprintf("%s %q is not in YYYY-MM-DD format", bound.name, bound.value)}
		}
	}
	return nil
}

// Values encodes the query as parameters for the /search/ endpoint. The
// free text and court slug are passed through exactly as given.
func (q SearchQuery) Values() url.Values {
	values := url.Values{}
	values.Set("q", q.Text)
	values.Set("type", "o")
	values.Set("page_size", strconv.Itoa(q.pageSize()))
	if court := strings.TrimSpace(q.Court); court != "" {
		values.Set("court", court)
	}
	if q.FiledAfter != "" {
		values.Set("date_filed__gte", q.FiledAfter)
	}
	if q.FiledBefore != "" {
		values.Set("date_filed__lte", q.FiledBefore)
	}
	return values
}

// recentValues encodes the query for the /opinions/ endpoint, which filters
// on court__id rather than court and defaults to opinions filed today.
func (q SearchQuery) recentValues(today string) url.Values {
	values := url.Values{}
	values.Set("page_size", strconv.Itoa(q.pageSize()))
	if court := strings.TrimSpace(q.Court); court != "" {
		values.Set("court__id", court)
	}
	if q.FiledAfter != "" {
		values.Set("date_filed__gte", q.FiledAfter)
	} else {
		values.Set("date_filed__gte", today)
	}
	if q.FiledBefore != "" {
		values.Set("date_filed__lte", q.FiledBefore)
	}
	return values
}

func (q SearchQuery) pageSize() int {
	switch {
	case q.PageSize <= 0:
		return defaultPageSize
	case q.PageSize > maxPageSize:
		return maxPageSize
	default:
		return q.PageSize
	}
}
