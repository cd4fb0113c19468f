// Package selectable pairs an observable list of items with an
// observable list of the items currently selected.
package selectable

import (
	"slices"

	"vistui/internal/observable"
)

// Collection holds Items and the SelectedItems drawn from them.
// SelectedItems is not kept a subset of Items; only RemoveSelected
// restores that relationship.
type Collection[T any] struct {
	Items         *observable.Collection[T]
	SelectedItems *observable.Collection[T]
	equal         func(a, b T) bool
}

// New creates an empty collection that matches rows with equal.
func New[T any](equal func(a, b T) bool, items ...T) *Collection[T] {
	return &Collection[T]{
		Items:         observable.NewCollection(items...),
		SelectedItems: observable.NewCollection[T](),
		equal:         equal,
	}
}

// Select replaces the selection.
func (c *Collection[T]) Select(items ...T) {
	c.SelectedItems.Set(items)
}

// HasSelection reports whether anything is selected.
func (c *Collection[T]) HasSelection() bool {
	return c.SelectedItems.Len() > 0
}

// Reselect writes the selection again, dropping selected items no longer
// present in Items. Call it after Items changes so bound widgets that
// reloaded their rows pick the selection back up.
func (c *Collection[T]) Reselect() {
	items := c.Items.Get()
	var keep []T
	for _, s := range c.SelectedItems.Get() {
		if slices.ContainsFunc(items, func(item T) bool { return c.equal(s, item) }) {
			keep = append(keep, s)
		}
	}
	c.SelectedItems.Set(keep)
}

// RemoveSelected deletes every item equal to any selected item, including
// duplicates, then clears the selection. It returns the deleted items.
func (c *Collection[T]) RemoveSelected() []T {
	selected := c.SelectedItems.Get()
	removed := c.Items.RemoveFunc(func(item T) bool {
		for _, s := range selected {
			if c.equal(s, item) {
				return true
			}
		}
		return false
	})
	c.SelectedItems.RemoveAll()
	return removed
}
