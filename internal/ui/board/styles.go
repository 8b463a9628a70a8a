package board

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Title       lipgloss.Style
	Item        lipgloss.Style
	Grip        lipgloss.Style
	Placeholder lipgloss.Style
	Proxy       lipgloss.Style
	Status      lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		Item:        lipgloss.NewStyle(),
		Grip:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Placeholder: lipgloss.NewStyle().Faint(true),
		Proxy:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}
