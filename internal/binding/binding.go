// Package binding connects observable state to stateful widgets in both
// directions. A handler's Init wires widget events into the observable;
// its Update pushes the observable's value into the widget and runs on
// every write to the observable.
package binding

import "vistui/internal/observable"

// Handler is one two-way connection between a widget and an observable.
type Handler interface {
	Init()
	Update()
}

// Disposer is implemented by handlers that hold widget subscriptions.
type Disposer interface {
	Dispose()
}

// Apply installs h: Init runs once, Update is subscribed to target and
// then run once to bring the widget in line. The returned function
// detaches both directions.
func Apply(h Handler, target observable.Observer) (dispose func()) {
	h.Init()
	unsub := target.Changed(h.Update)
	h.Update()
	return func() {
		unsub()
		if d, ok := h.(Disposer); ok {
			d.Dispose()
		}
	}
}

// guard suppresses re-entry while a handler is driving its widget.
type guard struct {
	active bool
}

// enter returns false if the guard is already held.
func (g *guard) enter() bool {
	if g.active {
		return false
	}
	g.active = true
	return true
}

func (g *guard) exit() {
	g.active = false
}
