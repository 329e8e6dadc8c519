package display

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	primaryColor = lipgloss.Color("#7C3AED") // Purple
	warningColor = lipgloss.Color("#F59E0B") // Amber
	mutedColor   = lipgloss.Color("#6B7280") // Gray
)

// styles are bound to a renderer so output adapts to the writer's terminal
type styles struct {
	header  lipgloss.Style
	warning lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		header: r.NewStyle().
			Bold(true).
			Foreground(primaryColor),
		warning: r.NewStyle().
			Foreground(warningColor),
		muted: r.NewStyle().
			Foreground(mutedColor),
	}
}
