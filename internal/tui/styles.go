package tui

import (
	"strings"

	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"

	"applaunch/internal/config"
)

// flavor is the subset of a catppuccin flavour the launcher draws with
type flavor interface {
	Rosewater() catppuccin.Color
	Flamingo() catppuccin.Color
	Pink() catppuccin.Color
	Mauve() catppuccin.Color
	Red() catppuccin.Color
	Maroon() catppuccin.Color
	Peach() catppuccin.Color
	Yellow() catppuccin.Color
	Green() catppuccin.Color
	Teal() catppuccin.Color
	Sky() catppuccin.Color
	Sapphire() catppuccin.Color
	Blue() catppuccin.Color
	Lavender() catppuccin.Color
	Text() catppuccin.Color
	Subtext0() catppuccin.Color
	Overlay0() catppuccin.Color
	Overlay1() catppuccin.Color
	Surface0() catppuccin.Color
	Surface1() catppuccin.Color
}

// flavorByName maps the config theme names to catppuccin flavours
func flavorByName(name string) flavor {
	switch strings.ToLower(name) {
	case "latte":
		return catppuccin.Latte
	case "frappe", "frappé":
		return catppuccin.Frappe
	case "macchiato":
		return catppuccin.Macchiato
	default:
		return catppuccin.Mocha
	}
}

// accentColors are the color names accepted by the highlight setting
var accentColors = map[string]func(flavor) catppuccin.Color{
	"rosewater": flavor.Rosewater,
	"flamingo":  flavor.Flamingo,
	"pink":      flavor.Pink,
	"mauve":     flavor.Mauve,
	"red":       flavor.Red,
	"maroon":    flavor.Maroon,
	"peach":     flavor.Peach,
	"yellow":    flavor.Yellow,
	"green":     flavor.Green,
	"teal":      flavor.Teal,
	"sky":       flavor.Sky,
	"sapphire":  flavor.Sapphire,
	"blue":      flavor.Blue,
	"lavender":  flavor.Lavender,
	"text":      flavor.Text,
	"overlay1":  flavor.Overlay1,
}

// palette holds the resolved colors for the active theme
type palette struct {
	highlight lipgloss.Color
	primary   lipgloss.Color
	text      lipgloss.Color
	subtext   lipgloss.Color
	muted     lipgloss.Color
	faint     lipgloss.Color
	selection lipgloss.Color
	border    lipgloss.Color
	danger    lipgloss.Color
	warning   lipgloss.Color
}

func hex(c catppuccin.Color) lipgloss.Color {
	return lipgloss.Color(c.Hex)
}

// newPalette resolves the theme and highlight names against catppuccin
func newPalette(themeName, highlightName string) palette {
	f := flavorByName(themeName)

	accent, ok := accentColors[strings.ToLower(highlightName)]
	if !ok {
		accent = flavor.Mauve
	}

	return palette{
		highlight: hex(accent(f)),
		primary:   hex(f.Mauve()),
		text:      hex(f.Text()),
		subtext:   hex(f.Subtext0()),
		muted:     hex(f.Overlay1()),
		faint:     hex(f.Overlay0()),
		selection: hex(f.Surface1()),
		border:    hex(f.Surface0()),
		danger:    hex(f.Red()),
		warning:   hex(f.Peach()),
	}
}

// current is the palette all style helpers read from
var current = newPalette("mocha", "mauve")

// ApplyTheme switches the palette to the theme configured in cfg
func ApplyTheme(cfg *config.Config) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	current = newPalette(cfg.Theme, cfg.Highlight)
}

// Header styles

func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(current.primary)
}

func StatusStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(current.muted)
}

// Query input styles

func PromptStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(current.primary).Bold(true)
}

func PlaceholderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(current.faint)
}

// List item styles

func SelectedItemStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(current.selection).
		Foreground(current.text).
		Bold(true)
}

func NormalItemStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(current.text)
}

func TerminalBadgeStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(current.warning)
}

// Detail panel styles

func DetailHeaderStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(current.subtext).
		Width(width).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(current.border)
}

func HighlightStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(current.highlight).Bold(true)
}

func LabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(current.subtext).Bold(true)
}

func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(current.muted)
}

func TextStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(current.text)
}

// Log pane styles

func LogStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(current.faint).
		Width(width).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(current.border)
}

func LogWarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(current.danger)
}

// Help style

func HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(current.muted)
}
