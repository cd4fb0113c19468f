// Package widget declares the capabilities the bindings need from the
// stateful UI components they drive. Concrete widgets live in the grid
// and wizard subpackages; tests substitute their own fakes.
package widget

// Node identifies one rendered grid row.
type Node int

// NoNode is returned for row indexes the grid does not hold.
const NoNode Node = -1

// Valid reports whether n refers to a row at all.
func (n Node) Valid() bool { return n >= 0 }

// SelectionGrid is a data grid with multi-row selection.
type SelectionGrid[T any] interface {
	// RowsData returns the grid's full dataset in display order.
	RowsData() []T
	// SelectedRows returns the rows currently selected.
	SelectedRows() []T
	// RowNodeAt returns the node rendering the row at index.
	RowNodeAt(index int) Node
	// SelectNode marks a node selected. Already-selected nodes are left alone.
	SelectNode(n Node)
	// ClearAllRows drops every row.
	ClearAllRows()
	// AddRows appends rows to the dataset.
	AddRows(rows []T)
	// OnSelectionChanged registers fn for selection changes.
	OnSelectionChanged(fn func()) (unsubscribe func())
}

// StepWizard is a multi-step control that only moves one step at a time.
// Next and Previous may be refused; callers detect that by reading
// CurrentStep before and after.
type StepWizard interface {
	CurrentStep() int
	Next()
	Previous()
	// OnChanged registers fn to run after a transition completes.
	OnChanged(fn func()) (unsubscribe func())
}
