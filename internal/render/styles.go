// Package render draws catalog entries as terminal tables with lipgloss.
package render

import "github.com/charmbracelet/lipgloss"

// Palette keyed to TFD's UI: cyan accents on a dark background, gold for
// Ultimate-tier callouts.
var (
	colorAccent  = lipgloss.Color("#35d3e0")
	colorGold    = lipgloss.Color("#d9b24c")
	colorMuted   = lipgloss.Color("#6b7280")
	colorDanger  = lipgloss.Color("#e53935")
	colorSuccess = lipgloss.Color("#8BC34A")
)

// Styles holds the lipgloss styles shared by tables and the TUI.
type Styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Body   lipgloss.Style
	Muted  lipgloss.Style
	Accent lipgloss.Style
	Error  lipgloss.Style
	OK     lipgloss.Style
}

// DefaultStyles returns the standard style set.
func DefaultStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(colorGold),
		Header: lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Body:   lipgloss.NewStyle(),
		Muted:  lipgloss.NewStyle().Foreground(colorMuted),
		Accent: lipgloss.NewStyle().Foreground(colorAccent),
		Error:  lipgloss.NewStyle().Foreground(colorDanger),
		OK:     lipgloss.NewStyle().Foreground(colorSuccess),
	}
}
