package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/docketwatch/docket/internal/courtlistener"
)

// renderResults renders the results area: a list pane and a detail pane for
// the selection, or a hint when nothing has been searched yet.
func (m Model) renderResults() string {
	styles := m.theme.Styles()

	// header + search box + status bar
	contentHeight := m.height - 9
	if contentHeight < 5 {
		contentHeight = 5
	}

	if !m.searched {
		hint := styles.MutedText.Render("Enter a query and press enter to search")
		return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, hint)
	}
	if len(m.results) == 0 {
		empty := styles.MutedText.Render(fmt.Sprintf("No results found for: %q", m.lastQuery.Text))
		return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, empty)
	}

	// 40% list, 60% detail
	listWidth := m.width * 40 / 100
	detailWidth := m.width - listWidth

	focused := m.focusIdx == focusResults

	listTitle := fmt.Sprintf("Results (%d/%d)", len(m.results), m.total)
	listContent := m.renderResultList(listWidth-2, contentHeight-2)
	listPane := m.renderTitledBox(listTitle, listContent, listWidth, contentHeight, focused)

	var detailContent string
	if op := m.selectedOpinion(); op != nil {
		detailContent = m.renderDetail(*op, detailWidth-4)
	}
	detailPane := m.renderTitledBox("Details", detailContent, detailWidth, contentHeight, false)

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// renderResultList renders one row per opinion, in API order.
func (m Model) renderResultList(width, visible int) string {
	styles := m.theme.Styles()

	// Keep the selection in view.
	start := 0
	if m.selectedRow >= visible {
		start = m.selectedRow - visible + 1
	}
	end := start + visible
	if end > len(m.results) {
		end = len(m.results)
	}

	var lines []string
	for i := start; i < end; i++ {
		row := m.formatResultRow(i, m.results[i], width)
		if i == m.selectedRow {
			lines = append(lines, styles.Selected.Width(width).Render(row))
		} else {
			lines = append(lines, styles.Text.Render(row))
		}
	}
	return strings.Join(lines, "\n")
}

// formatResultRow formats "N. Case Name · court · date" within width.
func (m Model) formatResultRow(index int, op courtlistener.Opinion, width int) string {
	prefix := fmt.Sprintf("%d. ", index+1)
	suffix := ""
	if op.DateFiled != "" {
		suffix = " · " + op.DateFiled
	}
	nameWidth := width - len(prefix) - lipgloss.Width(suffix)
	if nameWidth < 10 {
		nameWidth = 10
	}
	return prefix + truncate(op.CaseName, nameWidth) + suffix
}

// renderDetail renders the detail pane for one opinion.
func (m Model) renderDetail(op courtlistener.Opinion, width int) string {
	styles := m.theme.Styles()
	label := styles.MutedText.Width(10)

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render(truncate(op.CaseName, width)))
	b.WriteString("\n\n")

	court := op.Court
	if strings.TrimSpace(court) == "" {
		court = "Unknown Court"
	}
	b.WriteString(label.Render("Court") + styles.Text.Render(truncate(court, width-10)))
	b.WriteString("\n")

	date := op.DateFiled
	if strings.TrimSpace(date) == "" {
		date = "Unknown Date"
	}
	b.WriteString(label.Render("Filed") + styles.Text.Render(date))
	b.WriteString("\n")

	if op.DocketNumber != "" {
		b.WriteString(label.Render("Docket") + styles.Text.Render(truncate(op.DocketNumber, width-10)))
		b.WriteString("\n")
	}
	if len(op.Citations) > 0 {
		b.WriteString(label.Render("Citation") + styles.Text.Render(truncate(op.Citations.String(), width-10)))
		b.WriteString("\n")
	}
	if link := op.URL(m.siteURL); link != "" {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Underline(true).Render(truncate(link, width)))
	}
	return b.String()
}
