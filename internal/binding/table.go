package binding

import (
	"vistui/internal/observable"
	"vistui/internal/widget"
)

// TableData keeps a grid's dataset and a collection of rows in step.
//
// Init appends the grid's existing rows to the collection, which is
// expected to be empty. Update replaces the grid's dataset wholesale with
// the collection's contents; there is no incremental diffing.
type TableData[T any] struct {
	grid   widget.SelectionGrid[T]
	target *observable.Collection[T]
}

// NewTableData creates the handler; install it with Apply.
func NewTableData[T any](grid widget.SelectionGrid[T], target *observable.Collection[T]) *TableData[T] {
	return &TableData[T]{grid: grid, target: target}
}

// Init copies the grid's rows into the collection.
func (b *TableData[T]) Init() {
	b.target.Append(b.grid.RowsData()...)
}

// Update reloads the grid from the collection.
func (b *TableData[T]) Update() {
	rows := b.target.Get()
	b.grid.ClearAllRows()
	b.grid.AddRows(rows)
}
