package courtlistener

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestCitationList_UnmarshalShapes(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want CitationList
	}{
		{"null", `null`, nil},
		{"empty string", `""`, nil},
		{"single string", `"558 U.S. 310"`, CitationList{"558 U.S. 310"}},
		{"array", `["558 U.S. 310", "130 S. Ct. 876"]`, CitationList{"558 U.S. 310", "130 S. Ct. 876"}},
		{"array with nulls", `[null, "410 U.S. 113"]`, CitationList{"410 U.S. 113"}},
		{"empty array", `[]`, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got CitationList
			if err := json.Unmarshal([]byte(tc.in), &got); err != nil {
				t.Fatalf("Unmarshal(%s) returned error: %v", tc.in, err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Unmarshal(%s) = %#v, want %#v", tc.in, got, tc.want)
			}
		})
	}
}

func TestCitationList_UnmarshalRejectsObjects(t *testing.T) {
	var got CitationList
	if err := json.Unmarshal([]byte(`{"cite": "x"}`), &got); err == nil {
		t.Fatalf("Unmarshal returned nil error, want failure for object shape")
	}
}

func TestOpinion_URLComposesSiteLink(t *testing.T) {
	op := Opinion{AbsoluteURL: "/opinion/123/x-v-weissmann/"}
	got := op.URL("https://www.courtlistener.com")
	want := "https://www.courtlistener.com/opinion/123/x-v-weissmann/"
	if got != want {
		t.Fatalf("URL = %q, want %q", got, want)
	}
	if (Opinion{}).URL("https://www.courtlistener.com") != "" {
		t.Fatalf("URL for empty AbsoluteURL should be empty")
	}
}

func TestValidateResults_RequiresCaseName(t *testing.T) {
	err := validateResults([]Opinion{
		{CaseName: "A v. B"},
		{Court: "nysd"},
	})
	if err == nil {
		t.Fatalf("validateResults returned nil, want missing case_name error")
	}
	if err := validateResults(nil); err != nil {
		t.Fatalf("validateResults(nil) = %v, want nil", err)
	}
}
