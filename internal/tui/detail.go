package tui

import (
	"strings"

	"applaunch/internal/filter"

	"github.com/charmbracelet/lipgloss"
)

// renderDetailPanel renders the selected application's detail side panel
func (m Model) renderDetailPanel(width, height int) string {
	var b strings.Builder

	b.WriteString(DetailHeaderStyle(width).Render("Details"))
	b.WriteString("\n")

	segments := m.state.Detail()
	if len(segments) == 0 {
		b.WriteString(MutedStyle().Render("Nothing selected"))
	} else {
		b.WriteString(formatSegments(segments, width-2))
	}

	return lipgloss.NewStyle().Width(width).MaxHeight(height + 2).Render(b.String())
}

// formatSegments styles projection segments. Labels share a line with the value that follows.
func formatSegments(segments []filter.Segment, width int) string {
	var b strings.Builder

	for _, seg := range segments {
		switch seg.Kind {
		case filter.SegmentTitle:
			b.WriteString(HighlightStyle().Render(seg.Text))
			b.WriteString("\n\n")
		case filter.SegmentText:
			b.WriteString(TextStyle().Render(wrapText(seg.Text, width)))
			b.WriteString("\n")
		case filter.SegmentLabel:
			b.WriteString("\n")
			b.WriteString(LabelStyle().Render(seg.Text))
		case filter.SegmentMuted:
			b.WriteString(MutedStyle().Render(seg.Text))
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// wrapText wraps text at word boundaries to fit within width
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		if i > 0 {
			result.WriteString("\n")
		}

		lineLen := 0
		for _, word := range strings.Fields(line) {
			wordLen := len([]rune(word))
			if lineLen+wordLen+1 > width && lineLen > 0 {
				result.WriteString("\n")
				lineLen = 0
			}
			if lineLen > 0 {
				result.WriteString(" ")
				lineLen++
			}
			// Truncate very long words
			if wordLen > width {
				word = truncate(word, width)
				wordLen = width
			}
			result.WriteString(word)
			lineLen += wordLen
		}
	}

	return result.String()
}
