package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"applaunch/internal/filter"
)

// appItem wraps a shown application for the list component
type appItem struct {
	scored filter.Scored
}

func (i appItem) FilterValue() string { return i.scored.Item.Name }
func (i appItem) Title() string       { return i.scored.Item.Name }
func (i appItem) Description() string { return i.scored.Item.Description }

// appDelegate renders one application per row
type appDelegate struct {
	width int
}

func newAppDelegate() *appDelegate {
	return &appDelegate{width: 40} //nolint:mnd // replaced on first resize
}

// SetWidth sets the row width used for truncation
func (d *appDelegate) SetWidth(width int) {
	d.width = width
}

func (d *appDelegate) Height() int                             { return 1 }
func (d *appDelegate) Spacing() int                            { return 0 }
func (d *appDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d *appDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(appItem)
	if !ok {
		return
	}

	badge := ""
	if i.scored.Item.Terminal {
		badge = " >_"
	}

	name := truncate(i.scored.Item.Name, max(d.width-len(badge)-2, 4)) //nolint:mnd // cursor column
	if index == m.Index() {
		line := padRight("> "+name+badge, d.width)
		fmt.Fprint(w, SelectedItemStyle().Render(line))
		return
	}

	fmt.Fprint(w, "  "+NormalItemStyle().Render(name)+TerminalBadgeStyle().Render(badge))
}

// ============================================================================
// Helper Functions
// ============================================================================

// truncate shortens a string to max length with ellipsis
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen < 4 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
