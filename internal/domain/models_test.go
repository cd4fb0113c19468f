package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowsEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Row
		want bool
	}{
		{"same content", Row{"id": 1, "name": "x"}, Row{"name": "x", "id": 1}, true},
		{"different value", Row{"id": 1}, Row{"id": 2}, false},
		{"extra key", Row{"id": 1}, Row{"id": 1, "x": nil}, false},
		{"nested", Row{"tags": []string{"a"}}, Row{"tags": []string{"a"}}, true},
		{"nested differs", Row{"tags": []string{"a"}}, Row{"tags": []string{"b"}}, false},
		{"both empty", Row{}, Row{}, true},
		{"nil and empty", nil, Row{}, true},
		{"nil and empty nested", Row{"tags": []string(nil)}, Row{"tags": []string{}}, true},
		{"nil and non-empty", nil, Row{"id": 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RowsEqual(tt.a, tt.b))
		})
	}
}

func TestRowHelpers(t *testing.T) {
	r := Row{KeyFilename: "Kyrie.krn", "Voices": 4}

	assert.Equal(t, "Kyrie.krn", r.String(KeyFilename))
	assert.Equal(t, "4", r.String("Voices"))
	assert.Equal(t, "", r.String("missing"))
	assert.Equal(t, []string{"Filename", "Voices"}, r.Keys())
	assert.Equal(t, "Filename=Kyrie.krn Voices=4", r.Summary())

	c := r.Clone()
	c["Voices"] = 5
	assert.Equal(t, 4, r["Voices"])
}
