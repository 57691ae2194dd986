// Package ui renders the talent marketplace as a Bubble Tea program: one
// page model per view, routed by the root Model's current-view pointer.
package ui

import "github.com/charmbracelet/lipgloss"

// Brand palette. The marketplace web UI is red-on-white; the terminal
// rendition keeps the same accents.
var (
	ColorAccent   = lipgloss.Color("#DC2626") // brand red
	ColorText     = lipgloss.Color("#F8F9FA")
	ColorMuted    = lipgloss.Color("#6B7280")
	ColorSuccess  = lipgloss.Color("#22C55E")
	ColorWarning  = lipgloss.Color("#FFC107")
	ColorError    = lipgloss.Color("#E53935")
	ColorVerified = lipgloss.Color("#2196F3")
)

// Styles bundles the lipgloss styles shared by all pages.
type Styles struct {
	Header   lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Price    lipgloss.Style
	Verified lipgloss.Style
	Cursor   lipgloss.Style
	Card     lipgloss.Style
	Hint     lipgloss.Style
	Label    lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(ColorAccent),
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(ColorMuted).Bold(true),
		Body:     lipgloss.NewStyle(),
		Muted:    lipgloss.NewStyle().Foreground(ColorMuted),
		Error:    lipgloss.NewStyle().Foreground(ColorError),
		Success:  lipgloss.NewStyle().Foreground(ColorSuccess),
		Warning:  lipgloss.NewStyle().Foreground(ColorWarning),
		Price:    lipgloss.NewStyle().Bold(true).Foreground(ColorAccent),
		Verified: lipgloss.NewStyle().Foreground(ColorVerified),
		Cursor:   lipgloss.NewStyle().Bold(true).Foreground(ColorAccent),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1),
		Hint:  lipgloss.NewStyle().Foreground(ColorMuted).Italic(true),
		Label: lipgloss.NewStyle().Foreground(ColorMuted).Bold(true),
	}
}
