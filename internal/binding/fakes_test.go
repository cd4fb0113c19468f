package binding

import (
	"vistui/internal/observable"
	"vistui/internal/widget"
)

// fakeWizard has steps 0..last. refuse[k] blocks k -> k+1.
type fakeWizard struct {
	current  int
	last     int
	refuse   map[int]bool
	fireOnNo bool
	moves    int
	changed  *observable.Value[int]
}

func newFakeWizard(last int) *fakeWizard {
	return &fakeWizard{last: last, refuse: map[int]bool{}, changed: observable.NewValue(0)}
}

func (w *fakeWizard) CurrentStep() int { return w.current }

func (w *fakeWizard) Next() {
	w.moves++
	if w.current >= w.last || w.refuse[w.current] {
		if w.fireOnNo {
			w.changed.Set(w.current)
		}
		return
	}
	w.current++
	w.changed.Set(w.current)
}

func (w *fakeWizard) Previous() {
	w.moves++
	if w.current <= 0 {
		if w.fireOnNo {
			w.changed.Set(w.current)
		}
		return
	}
	w.current--
	w.changed.Set(w.current)
}

func (w *fakeWizard) OnChanged(fn func()) func() { return w.changed.Changed(fn) }

var _ widget.StepWizard = (*fakeWizard)(nil)

type row map[string]any

// fakeGrid records SelectNode calls and fires selection changes like a
// real grid would.
type fakeGrid struct {
	rows     []row
	selected map[int]bool
	picks    []widget.Node
	changed  *observable.Value[int]
}

func newFakeGrid(rows ...row) *fakeGrid {
	return &fakeGrid{rows: rows, selected: map[int]bool{}, changed: observable.NewValue(0)}
}

func (g *fakeGrid) RowsData() []row { return append([]row(nil), g.rows...) }

func (g *fakeGrid) SelectedRows() []row {
	var out []row
	for i, r := range g.rows {
		if g.selected[i] {
			out = append(out, r)
		}
	}
	return out
}

func (g *fakeGrid) RowNodeAt(i int) widget.Node {
	if i < 0 || i >= len(g.rows) {
		return widget.NoNode
	}
	return widget.Node(i)
}

func (g *fakeGrid) SelectNode(n widget.Node) {
	g.picks = append(g.picks, n)
	if !n.Valid() || g.selected[int(n)] {
		return
	}
	g.selected[int(n)] = true
	g.changed.Notify()
}

// userSelect simulates a click on row i
func (g *fakeGrid) userSelect(i int) {
	g.selected[i] = true
	g.changed.Notify()
}

func (g *fakeGrid) ClearAllRows() {
	g.rows = nil
	g.selected = map[int]bool{}
}

func (g *fakeGrid) AddRows(rows []row) { g.rows = append(g.rows, rows...) }

func (g *fakeGrid) OnSelectionChanged(fn func()) func() { return g.changed.Changed(fn) }

var _ widget.SelectionGrid[row] = (*fakeGrid)(nil)
