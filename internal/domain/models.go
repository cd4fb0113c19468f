package domain

import (
	"fmt"
	"maps"
	"sort"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Row keys used by the file and piece lists
const (
	KeyFilename = "Filename"
	KeyID       = "ID"
	KeyTitle    = "Title"
	KeySource   = "Source"
)

// Row is one grid record. Rows compare structurally, never by identity.
type Row map[string]any

// NewFileRow builds a file list entry
func NewFileRow(filename string) Row {
	return Row{KeyFilename: filename}
}

// String returns the value stored under key formatted for display
func (r Row) String(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Keys returns the row's keys in sorted order
func (r Row) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a shallow copy of the row
func (r Row) Clone() Row {
	return maps.Clone(r)
}

// Summary renders the row as "k=v" pairs, used for logs and the pager
func (r Row) Summary() string {
	parts := make([]string, 0, len(r))
	for _, k := range r.Keys() {
		parts = append(parts, k+"="+r.String(k))
	}
	return strings.Join(parts, " ")
}

// Equal reports deep structural equality of two values. Nil and empty
// maps or slices compare equal.
func Equal[T any](a, b T) bool {
	return cmp.Equal(a, b, cmpopts.EquateEmpty())
}

// RowsEqual reports whether two rows hold the same keys and values
func RowsEqual(a, b Row) bool {
	return Equal(a, b)
}
