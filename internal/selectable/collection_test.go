package selectable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vistui/internal/domain"
)

func idRows(ids ...int) []domain.Row {
	rows := make([]domain.Row, len(ids))
	for i, id := range ids {
		rows[i] = domain.Row{"id": id}
	}
	return rows
}

func TestRemoveSelected(t *testing.T) {
	c := New(domain.RowsEqual, idRows(1, 2, 3)...)
	c.Select(idRows(2)...)

	removed := c.RemoveSelected()

	assert.Equal(t, idRows(1, 3), c.Items.Get())
	assert.Empty(t, c.SelectedItems.Get())
	assert.Equal(t, idRows(2), removed)
}

func TestRemoveSelectedRemovesDuplicates(t *testing.T) {
	c := New(domain.RowsEqual, idRows(1, 2, 1, 3, 1)...)
	c.Select(idRows(1, 3)...)

	c.RemoveSelected()

	assert.Equal(t, idRows(2), c.Items.Get())
	assert.False(t, c.HasSelection())
}

func TestRemoveSelectedMatchesByValue(t *testing.T) {
	c := New(domain.RowsEqual, domain.Row{"id": 1, "tags": []string{"a"}}, domain.Row{"id": 1, "tags": []string{"b"}})
	c.Select(domain.Row{"tags": []string{"b"}, "id": 1})

	c.RemoveSelected()

	assert.Equal(t, []domain.Row{{"id": 1, "tags": []string{"a"}}}, c.Items.Get())
}

func TestRemoveSelectedIsIdempotent(t *testing.T) {
	c := New(domain.RowsEqual, idRows(1, 2, 3)...)
	c.Select(idRows(3)...)
	c.RemoveSelected()
	after := c.Items.Get()

	removed := c.RemoveSelected()

	assert.Empty(t, removed)
	assert.Equal(t, after, c.Items.Get())
	assert.Empty(t, c.SelectedItems.Get())
}

func TestRemoveSelectedWithNoMatchKeepsItems(t *testing.T) {
	c := New(domain.RowsEqual, idRows(1, 2)...)
	c.Select(idRows(7)...)

	c.RemoveSelected()

	assert.Equal(t, idRows(1, 2), c.Items.Get())
	assert.Empty(t, c.SelectedItems.Get())
}

func TestRemoveSelectedNotifiesBothLists(t *testing.T) {
	c := New(domain.RowsEqual, idRows(1, 2)...)
	c.Select(idRows(1)...)
	var order []string
	c.Items.Changed(func() { order = append(order, "items") })
	c.SelectedItems.Changed(func() { order = append(order, "selected") })

	c.RemoveSelected()

	assert.Equal(t, []string{"items", "selected"}, order)
}

func TestRemoveSelectedProperty(t *testing.T) {
	items := idRows(1, 2, 2, 3, 4, 4, 4, 5)
	for mask := 0; mask < 1<<5; mask++ {
		var selected []domain.Row
		for id := 1; id <= 5; id++ {
			if mask&(1<<(id-1)) != 0 {
				selected = append(selected, domain.Row{"id": id})
			}
		}
		c := New(domain.RowsEqual, items...)
		c.Select(selected...)

		c.RemoveSelected()

		for _, got := range c.Items.Get() {
			for _, s := range selected {
				require.False(t, domain.RowsEqual(got, s), "mask %b left %v", mask, got)
			}
		}
		kept := 0
		for _, it := range items {
			hit := false
			for _, s := range selected {
				hit = hit || domain.RowsEqual(it, s)
			}
			if !hit {
				kept++
			}
		}
		require.Equal(t, kept, c.Items.Len(), "mask %b", mask)
		require.Empty(t, c.SelectedItems.Get())
	}
}

func TestFileListSeed(t *testing.T) {
	files := NewFileList(nil)

	rows := files.Items.Get()
	require.Len(t, rows, len(DefaultCatalog))
	assert.Equal(t, domain.NewFileRow("bwv77.mxl"), rows[0])
	assert.Equal(t, domain.NewFileRow("Sanctus.krn"), rows[5])
	assert.Empty(t, files.SelectedItems.Get())

	custom := NewFileList([]string{"one.krn"})
	assert.Equal(t, []domain.Row{domain.NewFileRow("one.krn")}, custom.Items.Get())

	empty := NewFileList([]string{})
	assert.Zero(t, empty.Items.Len())
}

func TestPieceListStartsEmpty(t *testing.T) {
	pieces := NewPieceList()
	assert.Zero(t, pieces.Items.Len())
	assert.False(t, pieces.HasSelection())
}
