package tui

import (
	"applaunch/internal/apps"
	"applaunch/internal/config"
	"applaunch/internal/filter"
	"applaunch/internal/logging"
	"applaunch/internal/match"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// maxVerbosity is where ctrl+v wraps back to 0
const maxVerbosity = filter.VerboseStats

// ModelOptions configures a new Model
type ModelOptions struct {
	Items   []apps.Application
	Matcher match.Matcher   // nil selects the fuzzy matcher
	Verbose int             // initial detail level
	Watcher *config.Watcher // optional live config reload
}

// Model represents the application state
type Model struct {
	// Core state
	state   *filter.State
	watcher *config.Watcher
	chosen  *apps.Application
	logger  *log.Logger

	// UI components
	input    textinput.Model
	appList  list.Model
	delegate *appDelegate

	// Number of filter log entries already mirrored to the log file
	logMirrored int

	// UI dimensions
	width  int
	height int
}

// NewModel creates a new Model with every application shown
func NewModel(opts ModelOptions) Model {
	matcher := opts.Matcher
	if matcher == nil {
		matcher = match.NewFuzzy()
	}

	state := filter.New(opts.Items, matcher)
	state.SetVerbosity(opts.Verbose)

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "Type to search applications"
	input.PromptStyle = PromptStyle()
	input.PlaceholderStyle = PlaceholderStyle()
	input.Focus()

	delegate := newAppDelegate()

	m := Model{
		state:    state,
		watcher:  opts.Watcher,
		logger:   logging.WithPrefix("tui"),
		input:    input,
		delegate: delegate,
	}

	m.appList = list.New([]list.Item{}, delegate, 0, 0)
	m.appList.SetShowTitle(false)
	m.appList.SetShowHelp(false)
	m.appList.SetShowStatusBar(false)
	m.appList.SetFilteringEnabled(false)
	m.appList.DisableQuitKeybindings()

	return m.syncList()
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.watchConfigCmd(),
	)
}

// Message types
type (
	configReloadedMsg *config.Config
	configErrMsg      struct{ error }
)

// watchConfigCmd waits for the next config reload
func (m Model) watchConfigCmd() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	w := m.watcher
	return func() tea.Msg {
		select {
		case cfg := <-w.Events:
			return configReloadedMsg(cfg)
		case err := <-w.Errors:
			return configErrMsg{err}
		}
	}
}

// setQuery re-filters when the input text changed
func (m Model) setQuery(q string) Model {
	if q == m.state.Query() {
		return m
	}
	m.state.SetQuery(q)
	m = m.mirrorLog()
	return m.syncList()
}

// moveSelection moves the selection and keeps the list cursor in step
func (m Model) moveSelection(delta int) Model {
	m.state.MoveSelection(delta)
	if idx, ok := m.state.SelectedIndex(); ok {
		m.appList.Select(idx)
	}
	return m
}

// cycleVerbosity steps 0 → 1 → 2 → 0
func (m Model) cycleVerbosity() Model {
	next := m.state.Verbosity() + 1
	if next > maxVerbosity {
		next = 0
	}
	m.state.SetVerbosity(next)
	m.logger.Debug("verbosity changed", "level", next)
	return m
}

// syncList rebuilds the list items from the shown applications
func (m Model) syncList() Model {
	shown := m.state.Shown()
	items := make([]list.Item, len(shown))
	for i, sc := range shown {
		items[i] = appItem{scored: sc}
	}
	m.appList.SetItems(items)

	if idx, ok := m.state.SelectedIndex(); ok {
		m.appList.Select(idx)
	}
	return m
}

// mirrorLog copies new filter trace entries to the debug log
func (m Model) mirrorLog() Model {
	entries := m.state.Log()
	for _, entry := range entries[m.logMirrored:] {
		m.logger.Debug("filter", "entry", entry, "query", m.state.Query(), "shown", len(m.state.Shown()))
	}
	m.logMirrored = len(entries)
	return m
}

// updateListSizes updates list dimensions based on terminal size
func (m Model) updateListSizes() Model {
	// Reserve space for header (1), input (2), help (2), margins (1)
	listHeight := m.height - 6
	if m.state.Verbosity() >= filter.VerboseStats {
		listHeight -= logPaneHeight + 1
	}
	if listHeight < 3 {
		listHeight = 3
	}

	listWidth := m.listWidth()
	m.delegate.SetWidth(listWidth)
	m.appList.SetSize(listWidth, listHeight)
	m.input.Width = max(m.width-4, 10) //nolint:mnd // prompt and margin

	return m
}

// listWidth is the share of the terminal given to the application list
func (m Model) listWidth() int {
	w := m.width * 2 / 5
	if w < 20 {
		w = 20
	}
	return w
}

// Chosen returns the application the user confirmed with enter, if any
func (m Model) Chosen() (apps.Application, bool) {
	if m.chosen == nil {
		return apps.Application{}, false
	}
	return *m.chosen, true
}

// State exposes the filter state driving the view
func (m Model) State() *filter.State {
	return m.state
}
