// Package wizard implements a multi-step control that moves one step at a
// time. Leaving a step forward can be gated by a validator; a refused
// transition leaves the wizard where it was and records why.
package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vistui/internal/observable"
	"vistui/internal/widget"
)

// Step is one page of the wizard
type Step struct {
	Title string
	// Validate gates leaving this step forward. nil means always allowed.
	Validate func() error
}

// Styles for the step strip
type Styles struct {
	Active   lipgloss.Style
	Done     lipgloss.Style
	Pending  lipgloss.Style
	Sep      lipgloss.Style
	Error    lipgloss.Style
	Position lipgloss.Style
}

// DefaultStyles returns the standard wizard look
func DefaultStyles() Styles {
	return Styles{
		Active:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1),
		Done:     lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Padding(0, 1),
		Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),
		Sep:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Position: lipgloss.NewStyle().Faint(true),
	}
}

// Wizard holds the step list and the active index
type Wizard struct {
	steps   []Step
	current int
	lastErr error
	changed *observable.Value[int]
	styles  Styles
}

var _ widget.StepWizard = (*Wizard)(nil)

// New creates a wizard positioned on the first step
func New(steps ...Step) *Wizard {
	return &Wizard{
		steps:   steps,
		changed: observable.NewValue(0),
		styles:  DefaultStyles(),
	}
}

// Steps returns the configured steps
func (w *Wizard) Steps() []Step {
	return w.steps
}

// CurrentStep returns the active step index
func (w *Wizard) CurrentStep() int {
	return w.current
}

// CurrentTitle returns the active step's title
func (w *Wizard) CurrentTitle() string {
	return w.Title(w.current)
}

// Title returns the title of step i, or "" when out of range
func (w *Wizard) Title(i int) string {
	if i < 0 || i >= len(w.steps) {
		return ""
	}
	return w.steps[i].Title
}

// Err returns why the last forward transition was refused, if it was
func (w *Wizard) Err() error {
	return w.lastErr
}

// Next moves forward one step unless the current step's validator
// objects or the wizard is already on the last step
func (w *Wizard) Next() {
	if w.current >= len(w.steps)-1 {
		return
	}
	if v := w.steps[w.current].Validate; v != nil {
		if err := v(); err != nil {
			w.lastErr = fmt.Errorf("%s: %w", w.steps[w.current].Title, err)
			return
		}
	}
	w.move(w.current + 1)
}

// Previous moves back one step unless already on the first
func (w *Wizard) Previous() {
	if w.current <= 0 {
		return
	}
	w.move(w.current - 1)
}

// OnChanged registers fn to run after every completed transition.
// Refused transitions do not fire it.
func (w *Wizard) OnChanged(fn func()) func() {
	return w.changed.Changed(fn)
}

func (w *Wizard) move(to int) {
	w.current = to
	w.lastErr = nil
	w.changed.Set(to)
}

// View renders the step strip and any refusal message
func (w *Wizard) View() string {
	parts := make([]string, 0, len(w.steps))
	for i, s := range w.steps {
		label := fmt.Sprintf("%d %s", i+1, s.Title)
		switch {
		case i == w.current:
			parts = append(parts, w.styles.Active.Render(label))
		case i < w.current:
			parts = append(parts, w.styles.Done.Render(label))
		default:
			parts = append(parts, w.styles.Pending.Render(label))
		}
	}
	strip := strings.Join(parts, w.styles.Sep.Render("›"))
	pos := w.styles.Position.Render(fmt.Sprintf("step %d of %d", w.current+1, len(w.steps)))
	lines := []string{strip, pos}
	if w.lastErr != nil {
		lines = append(lines, w.styles.Error.Render(w.lastErr.Error()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
