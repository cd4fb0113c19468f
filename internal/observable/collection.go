package observable

import "slices"

// Collection is an observable ordered sequence. Duplicates are allowed
// and order is preserved by every operation.
type Collection[T any] struct {
	cell *Value[[]T]
}

// NewCollection creates a collection seeded with a copy of items.
func NewCollection[T any](items ...T) *Collection[T] {
	return &Collection[T]{cell: NewValue(slices.Clone(items))}
}

// Get returns a snapshot of the items. Mutating it does not affect the
// collection.
func (c *Collection[T]) Get() []T {
	return slices.Clone(c.cell.Get())
}

// Len returns the number of items.
func (c *Collection[T]) Len() int {
	return len(c.cell.Get())
}

// Set replaces the whole sequence.
func (c *Collection[T]) Set(items []T) {
	c.cell.Set(slices.Clone(items))
}

// Append adds items to the end.
func (c *Collection[T]) Append(items ...T) {
	c.cell.Set(append(slices.Clip(c.cell.Get()), items...))
}

// RemoveFunc removes every item for which pred returns true, keeping the
// relative order of the rest, and returns the removed items.
func (c *Collection[T]) RemoveFunc(pred func(T) bool) []T {
	cur := c.cell.Get()
	kept := make([]T, 0, len(cur))
	var removed []T
	for _, item := range cur {
		if pred(item) {
			removed = append(removed, item)
			continue
		}
		kept = append(kept, item)
	}
	c.cell.Set(kept)
	return removed
}

// RemoveAll empties the collection.
func (c *Collection[T]) RemoveAll() {
	c.cell.Set(nil)
}

// Notify re-announces the current contents.
func (c *Collection[T]) Notify() {
	c.cell.Notify()
}

// Subscribe registers fn to receive a snapshot after every change.
func (c *Collection[T]) Subscribe(fn func([]T)) func() {
	return c.cell.Subscribe(func(items []T) { fn(slices.Clone(items)) })
}

// Changed implements Observer.
func (c *Collection[T]) Changed(fn func()) func() {
	return c.cell.Changed(fn)
}
