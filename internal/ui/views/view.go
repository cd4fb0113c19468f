package views

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// StatusKind selects the status line colour
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusWarning
	StatusError
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Wizard        string
	Grids         []string
	SelectedFiles int
	SelectedPcs   int
	StatusMessage string
	StatusKind    StatusKind
	InputView     string // non-empty while prompting
	HelpView      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render draws the whole screen
func (r *Renderer) Render(s ViewState) string {
	title := r.styles.Title.Render("vistui")
	counter := r.styles.Counter.Render(fmt.Sprintf("%d files selected · %d pieces selected", s.SelectedFiles, s.SelectedPcs))
	grids := lipgloss.JoinHorizontal(lipgloss.Top, s.Grids...)

	sections := []string{title, s.Wizard, "", grids, counter}
	if s.InputView != "" {
		sections = append(sections, r.styles.Prompt.Render(s.InputView))
	}
	if s.StatusMessage != "" {
		sections = append(sections, r.statusStyle(s.StatusKind).Render(s.StatusMessage))
	}
	if s.HelpView != "" {
		sections = append(sections, "", s.HelpView)
	}

	main := r.styles.Main
	if s.Width > 0 {
		main = main.MaxWidth(s.Width)
	}
	if s.Height > 0 {
		main = main.MaxHeight(s.Height)
	}
	return main.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (r *Renderer) statusStyle(kind StatusKind) lipgloss.Style {
	switch kind {
	case StatusError:
		return r.styles.StatusError
	case StatusWarning:
		return r.styles.StatusWarning
	case StatusSuccess:
		return r.styles.StatusSuccess
	default:
		return r.styles.Status
	}
}
