package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the top line: logo, subtitle, and search state.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	left := styles.Logo.Render(" DOCKET ") + styles.MutedText.Render("CourtListener search")

	var state string
	switch m.state {
	case StateSearching:
		state = styles.WarningText.Render(m.spin.View() + "Searching…")
	default:
		if m.searched {
			state = styles.MutedText.Render(fmt.Sprintf("%d result(s)", m.total))
		} else {
			state = styles.MutedText.Render("Idle")
		}
	}
	right := state + styles.FaintText.Render(" · "+m.theme.Name+" ")

	pad := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}

// renderSearchBox renders the query/court/date input pane.
func (m Model) renderSearchBox() string {
	styles := m.theme.Styles()
	focused := m.focusIdx != focusResults

	label := styles.MutedText.Width(7)
	lines := []string{
		label.Render("Query") + " " + m.queryInput.View(),
		label.Render("Court") + " " + m.courtInput.View(),
		label.Render("Dates") + " " + m.startInput.View() + styles.MutedText.Render(" to ") + m.endInput.View(),
	}
	return m.renderTitledBox("Search", strings.Join(lines, "\n"), m.width, 5, focused)
}

// renderStatusBar renders the bottom line: status message and key hints.
func (m Model) renderStatusBar() string {
	styles := m.theme.Styles()

	var status string
	switch {
	case m.statusError:
		status = styles.DangerText.Render(" " + m.status)
	case m.status != "":
		status = styles.SuccessText.Render(" " + m.status)
	}

	hints := styles.FaintText.Render("enter search · ctrl+r recent · tab focus · x export · T theme · ? help · e quit ")

	pad := m.width - lipgloss.Width(status) - lipgloss.Width(hints)
	if pad < 1 {
		pad = 1
	}
	return status + strings.Repeat(" ", pad) + hints
}

// renderTitledBox renders content in a box with the title embedded in the
// top border: ┌─── Title ───┐
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	borderColor := m.theme.Border
	if focused {
		borderColor = m.theme.BorderFocus
	}
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColor))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := width - 2
	titleLen := lipgloss.Width(title)
	leftPad := (innerWidth - titleLen - 2) / 2
	if leftPad < 1 {
		leftPad = 1
	}
	rightPad := innerWidth - titleLen - 2 - leftPad
	if rightPad < 1 {
		rightPad = 1
	}

	topBorder := borderStyle.Render("┌"+strings.Repeat("─", leftPad)) +
		titleStyle.Render(" "+title+" ") +
		borderStyle.Render(strings.Repeat("─", rightPad)+"┐")
	bottomBorder := borderStyle.Render("└" + strings.Repeat("─", innerWidth) + "┘")

	contentStyle := lipgloss.NewStyle().Width(innerWidth).MaxWidth(innerWidth)

	contentLines := strings.Split(content, "\n")
	boxHeight := height - 2

	var paddedLines []string
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		paddedLines = append(paddedLines,
			borderStyle.Render("│")+contentStyle.Render(line)+borderStyle.Render("│"))
	}

	return topBorder + "\n" + strings.Join(paddedLines, "\n") + "\n" + bottomBorder
}
