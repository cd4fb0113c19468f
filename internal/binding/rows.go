package binding

import (
	"vistui/internal/observable"
	"vistui/internal/widget"
)

// SelectedRows keeps a grid's selection and a collection of selected
// rows in step.
//
// Widget to state: every selection change overwrites the collection with
// the grid's full selection, including changes made by Update. State to
// widget: every row in the collection selects each grid row deep-equal to
// it. Structurally identical rows are therefore all selected together.
// Rows already selected in the grid are never deselected by Update, so
// after Update the collection equals the grid's selection.
type SelectedRows[T any] struct {
	grid   widget.SelectionGrid[T]
	target *observable.Collection[T]
	equal  func(a, b T) bool

	applying guard
	unsub    func()
}

// NewSelectedRows creates the handler; install it with Apply.
func NewSelectedRows[T any](grid widget.SelectionGrid[T], target *observable.Collection[T], equal func(a, b T) bool) *SelectedRows[T] {
	return &SelectedRows[T]{grid: grid, target: target, equal: equal}
}

// Init subscribes to the grid's selection changes.
func (b *SelectedRows[T]) Init() {
	b.unsub = b.grid.OnSelectionChanged(func() {
		b.target.Set(b.grid.SelectedRows())
	})
}

// Update selects every grid row matching a row in the target. The
// target writes caused by its own selections do not re-enter it.
func (b *SelectedRows[T]) Update() {
	if !b.applying.enter() {
		return
	}
	defer b.applying.exit()

	want := b.target.Get()
	data := b.grid.RowsData()
	for _, w := range want {
		for j, row := range data {
			if b.equal(row, w) {
				b.grid.SelectNode(b.grid.RowNodeAt(j))
			}
		}
	}

	// Rows that were already selected, or that matched nothing, raise no
	// event; bring the target in line with the grid once
	if got := b.grid.SelectedRows(); !b.same(got, b.target.Get()) {
		b.target.Set(got)
	}
}

func (b *SelectedRows[T]) same(x, y []T) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if !b.equal(x[i], y[i]) {
			return false
		}
	}
	return true
}

// Dispose detaches from the grid.
func (b *SelectedRows[T]) Dispose() {
	if b.unsub != nil {
		b.unsub()
		b.unsub = nil
	}
}
