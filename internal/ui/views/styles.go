package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusSuccess lipgloss.Style
	Prompt        lipgloss.Style
	Main          lipgloss.Style
	Counter       lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).MarginTop(1), // red
		StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).MarginTop(1), // yellow
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")).MarginTop(1),  // green
		Prompt:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Main:          lipgloss.NewStyle().Padding(1, 2),
		Counter:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	}
}
