package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by commands.
type Styles struct {
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Success   lipgloss.Style
	Muted     lipgloss.Style
	Bold      lipgloss.Style
	Separator lipgloss.Style
}

// NewStyles creates styles bound to a lipgloss renderer.
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Error:     r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning:   r.NewStyle().Foreground(lipgloss.Color("11")),
		Success:   r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Muted:     r.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:      r.NewStyle().Bold(true),
		Separator: r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}
