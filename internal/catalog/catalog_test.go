package catalog

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vistui/internal/domain"
)

func TestParse(t *testing.T) {
	names, err := Parse([]byte("files:\n  - bwv77.mxl\n  - \"  \"\n  - Kyrie.krn\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"bwv77.mxl", "Kyrie.krn"}, names)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("files: []\n"))
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Parse([]byte("files: [unterminated\n"))
	assert.Error(t, err)
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data, err := Marshal([]string{"a.krn", "b.mxl"})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	names, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.krn", "b.mxl"}, names)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPieceTitle(t *testing.T) {
	assert.Equal(t, "prolationum-sanctus", PieceTitle("prolationum-sanctus.midi"))
	assert.Equal(t, "Kyrie", PieceTitle("scores/Kyrie.krn"))
	assert.Equal(t, "noext", PieceTitle("noext"))
}

func TestPiecesFromFiles(t *testing.T) {
	n := 0
	ids := func() string { n++; return "p" + strconv.Itoa(n) }
	files := []domain.Row{
		domain.NewFileRow("Kyrie.krn"),
		domain.NewFileRow("bwv77.mxl"),
		domain.NewFileRow("Kyrie.krn"),
		{"Other": "x"},
	}
	existing := []domain.Row{{domain.KeyID: "old", domain.KeyTitle: "bwv77", domain.KeySource: "bwv77.mxl"}}

	pieces := PiecesFromFiles(files, existing, ids)

	assert.Equal(t, []domain.Row{
		{domain.KeyID: "p1", domain.KeyTitle: "Kyrie", domain.KeySource: "Kyrie.krn"},
	}, pieces)
}

func TestPiecesFromFilesDefaultIDs(t *testing.T) {
	pieces := PiecesFromFiles([]domain.Row{domain.NewFileRow("a.krn")}, nil, nil)

	require.Len(t, pieces, 1)
	_, err := uuid.Parse(pieces[0].String(domain.KeyID))
	assert.NoError(t, err)
}
