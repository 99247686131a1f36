package render

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/docketwatch/docket/internal/courtlistener"
)

func TestWriteCSV(t *testing.T) {
	var buf strings.Builder
	err := WriteCSV(&buf, []courtlistener.Opinion{sampleOpinion()}, "https://www.courtlistener.com", nil)
	if err != nil {
		t.Fatalf("WriteCSV returned error: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("reading back CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("CSV has %d rows, want header + 1", len(records))
	}
	if records[0][0] != "case_name" || records[0][5] != "citation" {
		t.Fatalf("header = %v, want case_name..citation", records[0])
	}
	row := records[1]
	want := []string{
		"X v. Weissmann",
		"nysd",
		"2024-01-01",
		"https://www.courtlistener.com/opinion/123/x-v-weissmann/",
		"1:23-cv-456",
		"1 F.4th 2",
	}
	for i, field := range want {
		if row[i] != field {
			t.Fatalf("row[%d] = %q, want %q", i, row[i], field)
		}
	}
}

func TestWriteCSV_EmptyResultsWritesHeaderOnly(t *testing.T) {
	var buf strings.Builder
	if err := WriteCSV(&buf, nil, "", nil); err != nil {
		t.Fatalf("WriteCSV returned error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("CSV = %q, want header only", buf.String())
	}
}
