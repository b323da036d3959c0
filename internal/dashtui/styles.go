package dashtui

import "github.com/charmbracelet/lipgloss"

// Styles holds the pre-built lipgloss styles shared by all views.
type Styles struct {
	Title    lipgloss.Style
	Stat     lipgloss.Style
	Footer   lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Selected lipgloss.Style

	OwnerHeader   lipgloss.Style
	ContactHeader lipgloss.Style
	Timestamp     lipgloss.Style
	Body          lipgloss.Style
	Shared        lipgloss.Style
}

// NewStyles builds the default style set.
func NewStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Stat:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Footer:   lipgloss.NewStyle().Faint(true),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Error:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),

		OwnerHeader:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		ContactHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
		Timestamp:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Body:          lipgloss.NewStyle(),
		Shared:        lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),
	}
}
