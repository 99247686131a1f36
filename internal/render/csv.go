package render

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/docketwatch/docket/internal/courtlistener"
)

var csvHeader = []string{"case_name", "court", "date_filed", "url", "docket_number", "citation"}

// WriteCSV exports opinions as CSV in the same column layout the original
// listing shows. A nil resolver passes court references through unchanged.
func WriteCSV(w io.Writer, results []courtlistener.Opinion, siteBase string, resolve CourtResolver) error {
	if resolve == nil {
		resolve = passthroughCourt
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, op := range results {
		row := []string{
			op.CaseName,
			resolve(op.Court),
			op.DateFiled,
			op.URL(siteBase),
			op.DocketNumber,
			op.Citations.String(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
