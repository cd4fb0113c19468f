// Package grid implements a terminal data grid with multi-row selection.
package grid

import (
	"sort"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vistui/internal/observable"
	"vistui/internal/widget"
)

const markerWidth = 2

// Styles for the grid chrome
type Styles struct {
	Table   table.Styles
	Title   lipgloss.Style
	Focused lipgloss.Style
	Blurred lipgloss.Style
	Empty   lipgloss.Style
}

// DefaultStyles returns the standard grid look
func DefaultStyles() Styles {
	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("241")).
		BorderBottom(true).
		Bold(true)
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	return Styles{
		Table:   ts,
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Focused: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("99")),
		Blurred: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("241")),
		Empty:   lipgloss.NewStyle().Faint(true).Italic(true),
	}
}

// Grid is a selectable table of T. It owns its dataset and selection;
// outside code observes selection through OnSelectionChanged.
type Grid[T any] struct {
	title    string
	columns  []table.Column
	cells    func(T) []string
	rows     []T
	selected map[int]bool
	changed  *observable.Value[struct{}]
	table    table.Model
	styles   Styles
}

var _ widget.SelectionGrid[int] = (*Grid[int])(nil)

// New creates an empty grid. cells renders one row into column values.
func New[T any](title string, columns []table.Column, cells func(T) []string) *Grid[T] {
	styles := DefaultStyles()
	cols := append([]table.Column{{Title: "", Width: markerWidth}}, columns...)
	g := &Grid[T]{
		title:    title,
		columns:  cols,
		cells:    cells,
		selected: make(map[int]bool),
		changed:  observable.NewValue(struct{}{}),
		styles:   styles,
		table: table.New(
			table.WithColumns(cols),
			table.WithHeight(8),
			table.WithStyles(styles.Table),
		),
	}
	return g
}

// Title returns the grid caption
func (g *Grid[T]) Title() string { return g.title }

// RowsData returns a copy of the dataset
func (g *Grid[T]) RowsData() []T {
	out := make([]T, len(g.rows))
	copy(out, g.rows)
	return out
}

// Len returns the number of rows
func (g *Grid[T]) Len() int { return len(g.rows) }

// SelectedRows returns the selected rows in display order
func (g *Grid[T]) SelectedRows() []T {
	idx := g.selectedIndexes()
	out := make([]T, 0, len(idx))
	for _, i := range idx {
		out = append(out, g.rows[i])
	}
	return out
}

// SelectedCount returns how many rows are selected
func (g *Grid[T]) SelectedCount() int { return len(g.selected) }

// IsSelected reports whether the row at index is selected
func (g *Grid[T]) IsSelected(index int) bool { return g.selected[index] }

// RowNodeAt returns the node for index, or widget.NoNode when out of range
func (g *Grid[T]) RowNodeAt(index int) widget.Node {
	if index < 0 || index >= len(g.rows) {
		return widget.NoNode
	}
	return widget.Node(index)
}

// SelectNode selects a node. Invalid or already-selected nodes are ignored
// and do not raise a selection change.
func (g *Grid[T]) SelectNode(n widget.Node) {
	i := int(n)
	if !n.Valid() || i >= len(g.rows) || g.selected[i] {
		return
	}
	g.selected[i] = true
	g.refresh()
	g.changed.Notify()
}

// DeselectNode clears a node's selection
func (g *Grid[T]) DeselectNode(n widget.Node) {
	i := int(n)
	if !g.selected[i] {
		return
	}
	delete(g.selected, i)
	g.refresh()
	g.changed.Notify()
}

// ToggleCursor flips the selection of the row under the cursor
func (g *Grid[T]) ToggleCursor() {
	n := g.RowNodeAt(g.table.Cursor())
	if !n.Valid() {
		return
	}
	if g.selected[int(n)] {
		g.DeselectNode(n)
		return
	}
	g.SelectNode(n)
}

// ClearSelection deselects every row
func (g *Grid[T]) ClearSelection() {
	if len(g.selected) == 0 {
		return
	}
	g.selected = make(map[int]bool)
	g.refresh()
	g.changed.Notify()
}

// ClearAllRows drops the dataset and its selection without raising a
// selection change
func (g *Grid[T]) ClearAllRows() {
	g.rows = nil
	g.selected = make(map[int]bool)
	g.refresh()
}

// AddRows appends rows to the dataset
func (g *Grid[T]) AddRows(rows []T) {
	g.rows = append(g.rows, rows...)
	g.refresh()
}

// OnSelectionChanged registers fn for selection changes
func (g *Grid[T]) OnSelectionChanged(fn func()) func() {
	return g.changed.Changed(fn)
}

// Cursor returns the highlighted row index
func (g *Grid[T]) Cursor() int { return g.table.Cursor() }

// SetCursor moves the highlight
func (g *Grid[T]) SetCursor(i int) { g.table.SetCursor(i) }

// Focus gives the grid keyboard focus
func (g *Grid[T]) Focus() { g.table.Focus() }

// Blur removes keyboard focus
func (g *Grid[T]) Blur() { g.table.Blur() }

// Focused reports keyboard focus
func (g *Grid[T]) Focused() bool { return g.table.Focused() }

// SetSize adjusts the visible table area. A zero width keeps the
// current one.
func (g *Grid[T]) SetSize(width, height int) {
	if height < 3 {
		height = 3
	}
	if width > 0 {
		g.table.SetWidth(width)
	}
	g.table.SetHeight(height)
}

// Update forwards navigation keys to the table
func (g *Grid[T]) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	g.table, cmd = g.table.Update(msg)
	return cmd
}

// View renders the grid inside a border that reflects focus
func (g *Grid[T]) View() string {
	frame := g.styles.Blurred
	if g.table.Focused() {
		frame = g.styles.Focused
	}
	body := g.table.View()
	if len(g.rows) == 0 {
		body = lipgloss.JoinVertical(lipgloss.Left, body, g.styles.Empty.Render("no rows"))
	}
	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, g.styles.Title.Render(g.title), body))
}

func (g *Grid[T]) selectedIndexes() []int {
	idx := make([]int, 0, len(g.selected))
	for i := range g.selected {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	return idx
}

// refresh rebuilds the table rows from the dataset
func (g *Grid[T]) refresh() {
	rows := make([]table.Row, len(g.rows))
	for i, r := range g.rows {
		marker := ""
		if g.selected[i] {
			marker = "✓"
		}
		rows[i] = append(table.Row{marker}, g.cells(r)...)
	}
	g.table.SetRows(rows)
	if len(rows) == 0 {
		return
	}
	if c := g.table.Cursor(); c < 0 || c >= len(rows) {
		g.table.SetCursor(min(max(c, 0), len(rows)-1))
	}
}
