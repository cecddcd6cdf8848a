// Package tui renders the guest terminal screens: the developing countdown
// and the notification phone form.
package tui

import "github.com/charmbracelet/lipgloss"

// Palette colors.
const (
	colorText    = "#f8f8f2"
	colorMuted   = "#9ea3b0"
	colorAccent  = "#ffb86c"
	colorSuccess = "#50fa7b"
	colorDanger  = "#ff5555"
	colorBorder  = "#44475a"
)

// Styles holds the lipgloss styles shared by the screens.
type Styles struct {
	Title   lipgloss.Style
	Clock   lipgloss.Style
	Label   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Panel   lipgloss.Style
}

// DefaultStyles returns the darkroom palette.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorAccent)),
		Clock: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorText)).
			Padding(0, 1),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorText)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorMuted)),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorSuccess)),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorDanger)),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorBorder)).
			Padding(1, 2),
	}
}
