package binding

import (
	"vistui/internal/observable"
	"vistui/internal/widget"
)

// WizardStep keeps a wizard's active step and an integer observable in
// step, using only the wizard's single-step moves.
type WizardStep struct {
	wizard widget.StepWizard
	target *observable.Value[int]

	syncing guard
	unsub   func()
	onStall func(want, got int)
}

// NewWizardStep creates the handler; install it with Apply.
func NewWizardStep(wizard widget.StepWizard, target *observable.Value[int]) *WizardStep {
	return &WizardStep{wizard: wizard, target: target}
}

// OnStall sets a callback for requests that could not be fully honoured.
// It receives the requested step and the step actually reached.
func (b *WizardStep) OnStall(fn func(want, got int)) *WizardStep {
	b.onStall = fn
	return b
}

// Init pushes each completed wizard transition into the target.
func (b *WizardStep) Init() {
	b.unsub = b.wizard.OnChanged(func() {
		if b.syncing.active {
			return
		}
		b.target.Set(b.wizard.CurrentStep())
	})
}

// Update walks the wizard toward the target one step at a time. A move
// that leaves the current step unchanged was refused and ends the walk.
// The step actually reached is then written back to the target.
func (b *WizardStep) Update() {
	if !b.syncing.enter() {
		return
	}
	defer b.syncing.exit()

	want := b.target.Get()
	for want > b.wizard.CurrentStep() {
		if !b.try(b.wizard.Next) {
			break
		}
	}
	for want < b.wizard.CurrentStep() {
		if !b.try(b.wizard.Previous) {
			break
		}
	}

	got := b.wizard.CurrentStep()
	if got != want && b.onStall != nil {
		b.onStall(want, got)
	}
	b.target.Set(got)
}

// try performs one move and reports whether the step changed.
func (b *WizardStep) try(move func()) bool {
	before := b.wizard.CurrentStep()
	move()
	return b.wizard.CurrentStep() != before
}

// Dispose detaches from the wizard.
func (b *WizardStep) Dispose() {
	if b.unsub != nil {
		b.unsub()
		b.unsub = nil
	}
}
