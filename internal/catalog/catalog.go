// Package catalog reads file catalogs and turns catalogued files into
// analysable pieces.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"vistui/internal/domain"
)

// File is the on-disk catalog layout
type File struct {
	Files []string `yaml:"files"`
}

// ErrEmpty is returned when a catalog lists no files
var ErrEmpty = errors.New("catalog lists no files")

// Load reads a YAML catalog. Blank names are dropped.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog document
func Parse(data []byte) ([]string, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	names := make([]string, 0, len(f.Files))
	for _, n := range f.Files {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	if len(names) == 0 {
		return nil, ErrEmpty
	}
	return names, nil
}

// Marshal encodes names as a YAML catalog document
func Marshal(names []string) ([]byte, error) {
	return yaml.Marshal(File{Files: names})
}

// PieceTitle derives a display title from a score filename
func PieceTitle(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// PiecesFromFiles creates one piece per file not already imported.
// A file counts as imported when some existing piece names it as its
// source. newID defaults to random UUIDs.
func PiecesFromFiles(files, existing []domain.Row, newID func() string) []domain.Row {
	if newID == nil {
		newID = uuid.NewString
	}
	seen := make(map[string]bool, len(existing))
	for _, p := range existing {
		seen[p.String(domain.KeySource)] = true
	}
	var pieces []domain.Row
	for _, f := range files {
		name := f.String(domain.KeyFilename)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		pieces = append(pieces, domain.Row{
			domain.KeyID:     newID(),
			domain.KeyTitle:  PieceTitle(name),
			domain.KeySource: name,
		})
	}
	return pieces
}
