package tui

import (
	"fmt"
	"strings"

	"applaunch/internal/filter"

	"github.com/charmbracelet/lipgloss"
)

// logPaneHeight is the number of trace lines shown at the highest verbosity
const logPaneHeight = 4

// View renders the UI based on the model state
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	listWidth := m.listWidth()
	detailWidth := max(m.width-listWidth-4, 10) //nolint:mnd // gutter
	b.WriteString(lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderList(listWidth),
		"  ",
		m.renderDetailPanel(detailWidth, m.appList.Height()),
	))

	if m.state.Verbosity() >= filter.VerboseStats {
		b.WriteString("\n")
		b.WriteString(m.renderLog(m.width - 2))
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

// renderHeader renders the top header bar
func (m Model) renderHeader() string {
	title := TitleStyle().Render("applaunch")

	status := StatusStyle().Render(fmt.Sprintf(
		"%d/%d applications | verbosity %d",
		len(m.state.Shown()),
		m.state.Len(),
		m.state.Verbosity(),
	))

	spacing := m.width - lipgloss.Width(title) - lipgloss.Width(status) - 2
	if spacing < 1 {
		spacing = 1
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, title, strings.Repeat(" ", spacing), status)
}

// renderList renders the shown applications or the empty notice
func (m Model) renderList(width int) string {
	if len(m.state.Shown()) == 0 {
		return lipgloss.NewStyle().Width(width).Height(m.appList.Height()).
			Render(MutedStyle().Render("  No matching applications"))
	}
	return m.appList.View()
}

// renderLog renders the tail of the filter trace
func (m Model) renderLog(width int) string {
	entries := m.state.Log()
	start := max(len(entries)-logPaneHeight, 0)

	lines := make([]string, 0, logPaneHeight)
	for _, entry := range entries[start:] {
		entry = strings.TrimRight(entry, "\n")
		if entry == filter.LogNoItems {
			lines = append(lines, LogWarningStyle().Render(entry))
			continue
		}
		lines = append(lines, entry)
	}
	for len(lines) < logPaneHeight {
		lines = append(lines, "")
	}

	return LogStyle(width).Render(strings.Join(lines, "\n"))
}

// renderHelp renders the help footer
func (m Model) renderHelp() string {
	help := []string{
		"type:filter",
		"↑/↓:select",
		"enter:launch",
		"ctrl+v:verbosity",
		"esc:quit",
	}
	return HelpStyle().Render(strings.Join(help, " | "))
}

// padRight pads a string with spaces on the right to reach target width
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
