// Package ui provides the Bubble Tea front-end for docket: query, court,
// and date inputs, a recent-opinions action, a results list with a detail
// pane, and a status line.
package ui

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/docketwatch/docket/internal/courtlistener"
	"github.com/docketwatch/docket/internal/prefs"
	"github.com/docketwatch/docket/internal/render"
)

// SearchState tracks the single search lifecycle: Idle → Searching → Idle.
type SearchState int

const (
	StateIdle SearchState = iota
	StateSearching
)

// Focus targets, cycled with tab.
const (
	focusQuery = iota
	focusCourt
	focusStart
	focusEnd
	focusResults
)

const exportFilename = "docket-results.csv"

// Options configures the UI.
type Options struct {
	Context      context.Context
	Client       courtlistener.Searcher
	SiteURL      string
	PageSize     int
	ThemeName    string
	PrefsPath    string
	ResolveCourt render.CourtResolver
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx          context.Context
	client       courtlistener.Searcher
	siteURL      string
	pageSize     int
	prefsPath    string
	resolveCourt render.CourtResolver

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	focusIdx int
	showHelp bool

	// Inputs
	queryInput textinput.Model
	courtInput textinput.Model
	startInput textinput.Model
	endInput   textinput.Model
	spin       spinner.Model

	// Search state
	state       SearchState
	results     []courtlistener.Opinion
	total       int
	lastQuery   courtlistener.SearchQuery
	searched    bool
	selectedRow int

	// Status line
	status      string
	statusError bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	queryInput := textinput.New()
	queryInput.Placeholder = "e.g. 'First Amendment', 'Chevron deference'"
	queryInput.CharLimit = 200
	queryInput.Focus()

	courtInput := textinput.New()
	courtInput.Placeholder = "court slug, e.g. scotus, nysd (optional)"
	courtInput.CharLimit = 30

	startInput := newDateInput()
	endInput := newDateInput()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return Model{
		ctx:          ctx,
		client:       opts.Client,
		siteURL:      opts.SiteURL,
		pageSize:     opts.PageSize,
		prefsPath:    prefsPath,
		resolveCourt: opts.ResolveCourt,
		theme:        GetTheme(themeName),
		queryInput:   queryInput,
		courtInput:   courtInput,
		startInput:   startInput,
		endInput:     endInput,
		spin:         spin,
		focusIdx:     focusQuery,
		state:        StateIdle,
	}
}

func newDateInput() textinput.Model {
	in := textinput.New()
	in.Placeholder = "YYYY-MM-DD"
	in.CharLimit = 10
	in.Width = 12
	return in
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, textinput.Blink)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		if m.state != StateSearching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case searchDoneMsg:
		m.state = StateIdle
		m.results = msg.response.Results
		m.total = msg.response.Count
		m.lastQuery = msg.query
		m.searched = true
		m.selectedRow = 0
		if len(m.results) == 0 {
			m.status = "No results found for: " + msg.query.Text
			m.statusError = false
		} else {
			m.status = ""
			m.focusIdx = focusResults
			m.syncInputFocus()
		}
		return m, nil

	case searchFailedMsg:
		m.state = StateIdle
		m.status = describeError(msg.err)
		m.statusError = true
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.status = "Export failed: " + msg.err.Error()
			m.statusError = true
		} else {
			m.status = "Results exported to " + msg.path
			m.statusError = false
		}
		return m, nil
	}

	// Non-key messages keep the focused input's cursor blinking.
	return m.updateFocusedInput(msg)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "tab":
		m.cycleFocus(1)
		return m, nil

	case "shift+tab":
		m.cycleFocus(-1)
		return m, nil

	case "enter":
		return m.submitSearch()

	case "ctrl+r":
		return m.submitRecent()

	case "esc":
		m.status = ""
		m.statusError = false
		m.focusIdx = focusQuery
		m.syncInputFocus()
		return m, nil
	}

	if m.focusIdx == focusResults {
		return m.handleResultsKey(msg)
	}
	return m.updateFocusedInput(msg)
}

// handleResultsKey processes keys while the results list is focused.
func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "e":
		return m, tea.Quit

	case "h", "?":
		m.showHelp = true
		return m, nil

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case "/":
		m.focusIdx = focusQuery
		m.syncInputFocus()
		return m, nil

	case "x":
		if len(m.results) == 0 {
			m.status = "Nothing to export"
			m.statusError = true
			return m, nil
		}
		return m, exportCmd(m.results, m.siteURL, m.resolveCourt)

	case "j", "down":
		if m.selectedRow < len(m.results)-1 {
			m.selectedRow++
		}
	case "k", "up":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case "g", "home":
		m.selectedRow = 0
	case "G", "end":
		if len(m.results) > 0 {
			m.selectedRow = len(m.results) - 1
		}
	}

	return m, nil
}

// updateFocusedInput routes a message to the focused text input.
func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focusIdx {
	case focusQuery:
		m.queryInput, cmd = m.queryInput.Update(msg)
	case focusCourt:
		m.courtInput, cmd = m.courtInput.Update(msg)
	case focusStart:
		m.startInput, cmd = m.startInput.Update(msg)
	case focusEnd:
		m.endInput, cmd = m.endInput.Update(msg)
	}
	return m, cmd
}

// currentQuery assembles a query from the input fields.
func (m Model) currentQuery() courtlistener.SearchQuery {
	return courtlistener.SearchQuery{
		Text:        strings.TrimSpace(m.queryInput.Value()),
		Court:       strings.TrimSpace(m.courtInput.Value()),
		FiledAfter:  strings.TrimSpace(m.startInput.Value()),
		FiledBefore: strings.TrimSpace(m.endInput.Value()),
		PageSize:    m.pageSize,
	}
}

// submitSearch validates the inputs and dispatches the search command.
// Submits while a search is in flight are ignored.
func (m Model) submitSearch() (tea.Model, tea.Cmd) {
	if m.state == StateSearching {
		return m, nil
	}

	query := m.currentQuery()
	if err := query.Validate(); err != nil {
		m.status = describeError(err)
		m.statusError = true
		return m, nil
	}

	m.state = StateSearching
	m.status = ""
	m.statusError = false
	return m, tea.Batch(m.spin.Tick, searchCmd(m.ctx, m.client, query))
}

// submitRecent fetches opinions filed today, or within the date bounds when
// set. The free-text query is ignored, matching the one-shot recent listing.
func (m Model) submitRecent() (tea.Model, tea.Cmd) {
	if m.state == StateSearching {
		return m, nil
	}

	query := m.currentQuery()
	query.Text = ""
	if err := query.ValidateDates(); err != nil {
		m.status = describeError(err)
		m.statusError = true
		return m, nil
	}

	m.state = StateSearching
	m.status = ""
	m.statusError = false
	return m, tea.Batch(m.spin.Tick, recentCmd(m.ctx, m.client, query))
}

func (m *Model) cycleFocus(delta int) {
	targets := 4
	if len(m.results) > 0 {
		targets = 5
	}
	m.focusIdx = (m.focusIdx + delta + targets) % targets
	m.syncInputFocus()
}

func (m *Model) syncInputFocus() {
	m.queryInput.Blur()
	m.courtInput.Blur()
	m.startInput.Blur()
	m.endInput.Blur()
	switch m.focusIdx {
	case focusQuery:
		m.queryInput.Focus()
	case focusCourt:
		m.courtInput.Focus()
	case focusStart:
		m.startInput.Focus()
	case focusEnd:
		m.endInput.Focus()
	}
}

// selectedOpinion returns the currently selected result, or nil.
func (m Model) selectedOpinion() *courtlistener.Opinion {
	if m.selectedRow < 0 || m.selectedRow >= len(m.results) {
		return nil
	}
	return &m.results[m.selectedRow]
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderSearchBox())
	b.WriteString("\n")
	b.WriteString(m.renderResults())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	return b.String()
}

// describeError maps client errors to status-line messages.
func describeError(err error) string {
	return strings.TrimSpace(err.Error())
}

// Messages

type searchDoneMsg struct {
	response courtlistener.SearchResponse
	query    courtlistener.SearchQuery
}

type searchFailedMsg struct {
	err error
}

type exportDoneMsg struct {
	path string
	err  error
}

// Commands

func searchCmd(ctx context.Context, client courtlistener.Searcher, query courtlistener.SearchQuery) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.Search(ctx, query)
		if err != nil {
			return searchFailedMsg{err: err}
		}
		return searchDoneMsg{response: resp, query: query}
	}
}

func recentCmd(ctx context.Context, client courtlistener.Searcher, query courtlistener.SearchQuery) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.RecentOpinions(ctx, query)
		if err != nil {
			return searchFailedMsg{err: err}
		}
		// Display label for the header and no-results message.
		query.Text = "recent opinions"
		return searchDoneMsg{response: resp, query: query}
	}
}

func exportCmd(results []courtlistener.Opinion, siteURL string, resolve render.CourtResolver) tea.Cmd {
	return func() tea.Msg {
		file, err := os.Create(exportFilename)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		if err := render.WriteCSV(file, results, siteURL, resolve); err != nil {
			_ = file.Close()
			return exportDoneMsg{err: err}
		}
		if err := file.Close(); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: exportFilename}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
