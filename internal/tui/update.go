package tui

import (
	"applaunch/internal/config"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.updateListSizes(), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case configReloadedMsg:
		// Theme, highlight, terminal and run counts apply live.
		// verbose only seeds the startup level and is not reapplied.
		cfg := (*config.Config)(msg)
		config.SetGlobal(cfg)
		ApplyTheme(cfg)
		m.input.PromptStyle = PromptStyle()
		m.input.PlaceholderStyle = PlaceholderStyle()
		m.state.SetRunCounts(cfg.RunCounts)
		m.logger.Info("config reloaded", "theme", cfg.Theme, "highlight", cfg.Highlight)
		return m, m.watchConfigCmd()

	case configErrMsg:
		m.logger.Warn("config reload failed", "err", msg.error)
		return m, m.watchConfigCmd()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes a key press: navigation and control keys first, everything else edits the query
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "enter":
		if sel, ok := m.state.Selected(); ok {
			chosen := *sel.Item
			m.chosen = &chosen
			m.logger.Info("application chosen", "name", chosen.Name, "score", sel.Score)
			return m, tea.Quit
		}
		return m, nil

	case "up", "ctrl+p", "shift+tab":
		return m.moveSelection(-1), nil

	case "down", "ctrl+n", "tab":
		return m.moveSelection(1), nil

	case "pgup":
		return m.moveSelection(-m.appList.Paginator.PerPage), nil

	case "pgdown":
		return m.moveSelection(m.appList.Paginator.PerPage), nil

	case "ctrl+v":
		m = m.cycleVerbosity()
		return m.updateListSizes(), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m.setQuery(m.input.Value()), cmd
}
