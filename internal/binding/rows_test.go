package binding

import (
	"testing"

	"github.com/charmbracelet/bubbles/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vistui/internal/domain"
	"vistui/internal/observable"
	"vistui/internal/widget"
	"vistui/internal/widget/grid"
)

func rowsEqual(a, b row) bool { return domain.Equal(a, b) }

func TestSelectedRowsWidgetToState(t *testing.T) {
	g := newFakeGrid(row{"id": 1}, row{"id": 2}, row{"id": 3})
	selected := observable.NewCollection[row]()
	Apply(NewSelectedRows(g, selected, rowsEqual), selected)

	g.userSelect(2)
	g.userSelect(0)

	assert.Equal(t, []row{{"id": 1}, {"id": 3}}, selected.Get())
}

func TestSelectedRowsStateToWidget(t *testing.T) {
	g := newFakeGrid(row{"id": 1}, row{"id": 2}, row{"id": 3})
	selected := observable.NewCollection[row]()
	Apply(NewSelectedRows(g, selected, rowsEqual), selected)

	selected.Set([]row{{"id": 3}})

	assert.Equal(t, []widget.Node{2}, g.picks)
	assert.Equal(t, []row{{"id": 3}}, g.SelectedRows())
	assert.Equal(t, []row{{"id": 3}}, selected.Get())
}

func TestSelectedRowsSelectsEveryDeepEqualRow(t *testing.T) {
	g := newFakeGrid(row{"name": "a"}, row{"name": "b"}, row{"name": "a"})
	selected := observable.NewCollection[row]()
	Apply(NewSelectedRows(g, selected, rowsEqual), selected)

	selected.Set([]row{{"name": "a"}})

	assert.Equal(t, []widget.Node{0, 2}, g.picks)
	assert.Len(t, g.SelectedRows(), 2)
	assert.Equal(t, g.SelectedRows(), selected.Get(), "both copies land in the target")
}

func TestSelectedRowsIsAdditive(t *testing.T) {
	g := newFakeGrid(row{"id": 1}, row{"id": 2})
	selected := observable.NewCollection[row]()
	Apply(NewSelectedRows(g, selected, rowsEqual), selected)
	g.userSelect(0)

	selected.Set([]row{{"id": 2}})

	assert.Len(t, g.SelectedRows(), 2, "rows missing from the target stay selected in the grid")
	assert.Equal(t, []row{{"id": 1}, {"id": 2}}, selected.Get())
}

func TestSelectedRowsUpdateDoesNotReenter(t *testing.T) {
	g := newFakeGrid(row{"id": 1}, row{"id": 2}, row{"id": 1})
	selected := observable.NewCollection[row]()
	Apply(NewSelectedRows(g, selected, rowsEqual), selected)

	selected.Set([]row{{"id": 1}, {"id": 2}})

	assert.Equal(t, []widget.Node{0, 2, 1}, g.picks, "each wanted row is applied once")
	assert.Equal(t, g.SelectedRows(), selected.Get())
}

func TestSelectedRowsUnmatchedRowIsIgnored(t *testing.T) {
	g := newFakeGrid(row{"id": 1})
	selected := observable.NewCollection[row]()
	Apply(NewSelectedRows(g, selected, rowsEqual), selected)

	selected.Set([]row{{"id": 9}})

	assert.Empty(t, g.picks)
	assert.Empty(t, g.SelectedRows())
	assert.Empty(t, selected.Get(), "the target follows the grid")
}

func TestSelectedRowsAlreadySelectedRowsReachTarget(t *testing.T) {
	g := newFakeGrid(row{"id": 1}, row{"id": 2})
	selected := observable.NewCollection[row]()
	Apply(NewSelectedRows(g, selected, rowsEqual), selected)
	g.userSelect(0)
	g.userSelect(1)

	selected.Set([]row{{"id": 1}})

	assert.Equal(t, []widget.Node{0}, g.picks)
	assert.Equal(t, []row{{"id": 1}, {"id": 2}}, selected.Get())
}

func TestSelectedRowsDispose(t *testing.T) {
	g := newFakeGrid(row{"id": 1})
	selected := observable.NewCollection[row]()
	dispose := Apply(NewSelectedRows(g, selected, rowsEqual), selected)
	dispose()

	g.userSelect(0)
	assert.Empty(t, selected.Get())

	selected.Set([]row{{"id": 1}})
	assert.Empty(t, g.picks)
}

func TestSelectedRowsWithRealGrid(t *testing.T) {
	g := grid.New("files", []table.Column{{Title: "Filename", Width: 20}}, func(r domain.Row) []string {
		return []string{r.String(domain.KeyFilename)}
	})
	g.AddRows([]domain.Row{domain.NewFileRow("a.krn"), domain.NewFileRow("b.krn")})
	selected := observable.NewCollection[domain.Row]()
	Apply(NewSelectedRows[domain.Row](g, selected, domain.RowsEqual), selected)

	g.SetCursor(1)
	g.ToggleCursor()
	require.Equal(t, []domain.Row{domain.NewFileRow("b.krn")}, selected.Get())

	selected.Set([]domain.Row{domain.NewFileRow("a.krn")})
	assert.True(t, g.IsSelected(0))
	assert.True(t, g.IsSelected(1))
	assert.Equal(t, g.SelectedRows(), selected.Get())
	assert.Len(t, selected.Get(), 2)
}
