package courtlistener

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SearchResponse mirrors the payload returned by /search/ and /opinions/.
// Result order is the API's relevance order and is preserved as-is.
type SearchResponse struct {
	Count   int       `json:"count"`
	Next    string    `json:"next"`
	Results []Opinion `json:"results"`
}

// Opinion describes one docket/case entry returned by the API. CaseName is
// required; the remaining fields are optional and may be empty.
type Opinion struct {
	CaseName     string       `json:"case_name"`
	Court        string       `json:"court"`
	DateFiled    string       `json:"date_filed"`
	AbsoluteURL  string       `json:"absolute_url"`
	DocketNumber string       `json:"docket_number"`
	Citations    CitationList `json:"citation"`
}

// URL composes the absolute link to the opinion on the given site base
// (scheme://host), e.g. https://www.courtlistener.com/opinion/123/x-v-y/.
func (o Opinion) URL(siteBase string) string {
	if o.AbsoluteURL == "" {
		return ""
	}
	return strings.TrimSuffix(siteBase, "/") + o.AbsoluteURL
}

// CitationList normalizes the API's citation field, which arrives as a JSON
// string, an array of values, or null depending on the record.
type CitationList []string

func (c *CitationList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == "" {
		*c = nil
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*c = nil
		} else {
			*c = CitationList{single}
		}
		return nil
	}

	var many []any
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("citation is neither string nor array: %w", err)
	}
	list := make(CitationList, 0, len(many))
	for _, entry := range many {
		if entry == nil {
			continue
		}
		list = append(list, fmt.Sprintf("%v", entry))
	}
	if len(list) == 0 {
		list = nil
	}
	*c = list
	return nil
}

// String joins the citations for display, matching the CSV export format.
func (c CitationList) String() string {
	return strings.Join(c, ", ")
}

// validateResults enforces the required-field contract on decoded records.
func validateResults(results []Opinion) error {
	for i, op := range results {
		if strings.TrimSpace(op.CaseName) == "" {
			return fmt.Errorf("result %d is missing case_name", i)
		}
	}
	return nil
}

// courtRef is the payload shape of a /api/.../courts/<slug>/ lookup.
type courtRef struct {
	Name string `json:"name"`
}
