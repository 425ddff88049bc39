package console

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all terminal colors and styling definitions
type Styles struct {
	Menu    lipgloss.Style
	Cmds    lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Menu: r.NewStyle().
			Foreground(lipgloss.Color("#10B981")),

		Cmds: r.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Underline(true),

		Info: r.NewStyle().
			Foreground(lipgloss.Color("#3B82F6")),

		Success: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),

		Warning: r.NewStyle().
			Foreground(lipgloss.Color("#F59E0B")).
			Bold(true),

		Error: r.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true),
	}
}
