package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderIncludesSections(t *testing.T) {
	r := NewRenderer()

	out := r.Render(ViewState{
		Wizard:        "1 Files › 2 Pieces",
		Grids:         []string{"FILES", "PIECES"},
		SelectedFiles: 2,
		StatusMessage: "removed 2 rows",
		StatusKind:    StatusSuccess,
		InputView:     "Add file: x",
		HelpView:      "? help",
	})

	assert.Contains(t, out, "vistui")
	assert.Contains(t, out, "1 Files")
	assert.Contains(t, out, "FILES")
	assert.Contains(t, out, "PIECES")
	assert.Contains(t, out, "2 files selected")
	assert.Contains(t, out, "removed 2 rows")
	assert.Contains(t, out, "Add file: x")
	assert.Contains(t, out, "? help")
}

func TestRenderOmitsEmptySections(t *testing.T) {
	out := NewRenderer().Render(ViewState{Width: 80, Height: 40})

	assert.NotContains(t, out, "Add file")
	assert.Contains(t, out, "0 files selected")
}
