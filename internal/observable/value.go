// Package observable provides single-threaded observable cells and
// collections. Subscribers are invoked synchronously, in subscription
// order, on every write.
package observable

// Observer is anything that can report changes without a payload.
// Bindings depend on this instead of the concrete cell type.
type Observer interface {
	Changed(fn func()) (unsubscribe func())
}

// subscription is a single registered callback. A nil fn marks it
// unsubscribed so in-flight notifications skip it.
type subscription[T any] struct {
	fn func(T)
}

// Value is a mutable cell that notifies subscribers on every write.
type Value[T any] struct {
	value T
	subs  []*subscription[T]
}

// NewValue creates a cell holding initial.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{value: initial}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	return v.value
}

// Set replaces the value and notifies subscribers, even if the value
// did not change.
func (v *Value[T]) Set(val T) {
	v.value = val
	v.Notify()
}

// Notify calls every subscriber with the current value without writing.
func (v *Value[T]) Notify() {
	// Copy so subscriptions added during notification wait for the next write
	subs := make([]*subscription[T], len(v.subs))
	copy(subs, v.subs)
	for _, s := range subs {
		if s.fn != nil {
			s.fn(v.value)
		}
	}
}

// Subscribe adds a change listener and returns an unsubscribe function.
func (v *Value[T]) Subscribe(fn func(T)) func() {
	s := &subscription[T]{fn: fn}
	v.subs = append(v.subs, s)
	return func() {
		if s.fn == nil {
			return
		}
		s.fn = nil
		for i, cur := range v.subs {
			if cur == s {
				v.subs = append(v.subs[:i:i], v.subs[i+1:]...)
				break
			}
		}
	}
}

// Changed implements Observer.
func (v *Value[T]) Changed(fn func()) func() {
	return v.Subscribe(func(T) { fn() })
}

// Subscribers returns the number of live subscriptions.
func (v *Value[T]) Subscribers() int {
	return len(v.subs)
}
