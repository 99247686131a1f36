// Package render formats search results for the command line: styled text
// blocks for humans and CSV rows for export.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/docketwatch/docket/internal/courtlistener"
)

// CourtResolver maps a court reference (name or /api/... URL) to a display
// name. The API client's ResolveCourtName satisfies this.
type CourtResolver func(ref string) string

// Renderer writes opinions as human-readable blocks, one per record, in the
// order the API returned them.
type Renderer struct {
	out      io.Writer
	siteBase string
	verbose  bool
	resolve  CourtResolver

	caseStyle  lipgloss.Style
	labelStyle lipgloss.Style
	courtStyle lipgloss.Style
	dateStyle  lipgloss.Style
	linkStyle  lipgloss.Style
	extraStyle lipgloss.Style
	mutedStyle lipgloss.Style
}

// New builds a Renderer writing to out. siteBase is the scheme://host used
// to compose absolute links. A nil resolver passes court references through
// unchanged.
func New(out io.Writer, siteBase string, verbose bool, resolve CourtResolver) *Renderer {
	if resolve == nil {
		resolve = passthroughCourt
	}
	return &Renderer{
		out:      out,
		siteBase: siteBase,
		verbose:  verbose,
		resolve:  resolve,

		caseStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		labelStyle: lipgloss.NewStyle().Faint(true),
		courtStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		dateStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		linkStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Underline(true),
		extraStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		mutedStyle: lipgloss.NewStyle().Faint(true),
	}
}

// Results writes the full result listing for a query: a count header, then
// one numbered block per opinion. An empty set prints a "no results"
// message instead.
func (r *Renderer) Results(query, court string, results []courtlistener.Opinion) {
	if len(results) == 0 {
		fmt.Fprintf(r.out, "No results found for: %q\n", query)
		return
	}

	courtDisplay := ""
	if strings.TrimSpace(court) != "" {
		courtDisplay = fmt.Sprintf(" in %s", court)
	}
	fmt.Fprintf(r.out, "\nFound %d result(s) for: %q%s\n\n", len(results), query, courtDisplay)

	for i, op := range results {
		r.opinion(i+1, op)
	}
}

func (r *Renderer) opinion(index int, op courtlistener.Opinion) {
	fmt.Fprintf(r.out, "%d. %s\n", index, r.caseStyle.Render(op.CaseName))
	fmt.Fprintf(r.out, "   %s %s\n", r.labelStyle.Render("Court:"), r.courtStyle.Render(r.resolve(op.Court)))
	fmt.Fprintf(r.out, "   %s %s\n", r.labelStyle.Render("Date:"), r.dateStyle.Render(dateOrUnknown(op.DateFiled)))
	if link := op.URL(r.siteBase); link != "" {
		fmt.Fprintf(r.out, "   %s\n", r.linkStyle.Render(link))
	}
	if r.verbose {
		fmt.Fprintf(r.out, "   %s %s\n", r.labelStyle.Render("Docket:"), r.extraStyle.Render(valueOrNA(op.DocketNumber)))
		fmt.Fprintf(r.out, "   %s %s\n", r.labelStyle.Render("Citation:"), r.extraStyle.Render(valueOrNA(op.Citations.String())))
	}
	fmt.Fprintln(r.out)
}

// Courts writes the popular-courts reference table.
func (r *Renderer) Courts(courts []courtlistener.Court) {
	fmt.Fprintf(r.out, "%s\n", r.caseStyle.Render("Popular Court Slugs"))
	width := 0
	for _, c := range courts {
		if len(c.Slug) > width {
			width = len(c.Slug)
		}
	}
	for _, c := range courts {
		fmt.Fprintf(r.out, "  %-*s  %s\n", width, c.Slug, r.mutedStyle.Render(c.Name))
	}
}

func dateOrUnknown(date string) string {
	if strings.TrimSpace(date) == "" {
		return "Unknown Date"
	}
	return date
}

func valueOrNA(value string) string {
	if strings.TrimSpace(value) == "" {
		return "N/A"
	}
	return value
}

func passthroughCourt(ref string) string {
	if strings.TrimSpace(ref) == "" {
		return "Unknown Court"
	}
	return ref
}
