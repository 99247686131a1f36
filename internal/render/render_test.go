package render

import (
	"strings"
	"testing"

	"github.com/docketwatch/docket/internal/courtlistener"
)

func sampleOpinion() courtlistener.Opinion {
	return courtlistener.Opinion{
		CaseName:     "X v. Weissmann",
		Court:        "nysd",
		DateFiled:    "2024-01-01",
		AbsoluteURL:  "/opinion/123/x-v-weissmann/",
		DocketNumber: "1:23-cv-456",
		Citations:    courtlistener.CitationList{"1 F.4th 2"},
	}
}

func TestRenderer_ResultsContainsAllFields(t *testing.T) {
	var buf strings.Builder
	r := New(&buf, "https://www.courtlistener.com", false, nil)
	r.Results("Andrew Weissmann", "nysd", []courtlistener.Opinion{sampleOpinion()})

	out := buf.String()
	for _, want := range []string{
		"Found 1 result(s)",
		"Andrew Weissmann",
		"in nysd",
		"1. ",
		"X v. Weissmann",
		"nysd",
		"2024-01-01",
		"https://www.courtlistener.com/opinion/123/x-v-weissmann/",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Docket:") {
		t.Fatalf("non-verbose output contains docket line:\n%s", out)
	}
}

func TestRenderer_VerboseAddsDocketAndCitation(t *testing.T) {
	var buf strings.Builder
	r := New(&buf, "https://www.courtlistener.com", true, nil)
	r.Results("q", "", []courtlistener.Opinion{sampleOpinion()})

	out := buf.String()
	if !strings.Contains(out, "1:23-cv-456") {
		t.Fatalf("verbose output missing docket number:\n%s", out)
	}
	if !strings.Contains(out, "1 F.4th 2") {
		t.Fatalf("verbose output missing citation:\n%s", out)
	}
}

func TestRenderer_EmptyResultsPrintsNoResults(t *testing.T) {
	var buf strings.Builder
	r := New(&buf, "", false, nil)
	r.Results("nothing matches this", "", nil)

	out := buf.String()
	if !strings.Contains(out, "No results found for") {
		t.Fatalf("output missing no-results message:\n%s", out)
	}
	if !strings.Contains(out, "nothing matches this") {
		t.Fatalf("output missing echoed query:\n%s", out)
	}
}

func TestRenderer_UsesCourtResolver(t *testing.T) {
	var buf strings.Builder
	resolve := func(ref string) string {
		if ref == "/api/rest/v4/courts/nysd/" {
			return "Southern District of New York"
		}
		return ref
	}
	r := New(&buf, "", false, resolve)

	op := sampleOpinion()
	op.Court = "/api/rest/v4/courts/nysd/"
	r.Results("q", "", []courtlistener.Opinion{op})

	if !strings.Contains(buf.String(), "Southern District of New York") {
		t.Fatalf("output missing resolved court name:\n%s", buf.String())
	}
}

func TestRenderer_CourtsListsSlugsAndNames(t *testing.T) {
	var buf strings.Builder
	New(&buf, "", false, nil).Courts(courtlistener.PopularCourts())

	out := buf.String()
	for _, want := range []string{"scotus", "Supreme Court of the United States", "nysd"} {
		if !strings.Contains(out, want) {
			t.Fatalf("courts table missing %q:\n%s", want, out)
		}
	}
}
