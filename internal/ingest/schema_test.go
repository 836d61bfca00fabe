package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHeader(t *testing.T) {
	h := NewHeader([]string{"\ufeffa", "b", "a"})
	assert.Equal(t, 0, h["a"])
	assert.Equal(t, 1, h["b"])
}

func TestHeaderValue(t *testing.T) {
	h := NewHeader([]string{"a", "b", "c"})

	v, ok := h.Value([]string{"1", "2", "3"}, "b")
	assert.True(t, ok)
	assert.Equal(t, "2", v)

	_, ok = h.Value([]string{"1"}, "c")
	assert.False(t, ok, "short row")

	_, ok = h.Value([]string{"1", "2", "3"}, "z")
	assert.False(t, ok, "unknown column")
}

func TestSchemaCheck(t *testing.T) {
	h := NewHeader([]string{"category", "amount", "date"})

	tests := []struct {
		name  string
		row   []string
		field string
	}{
		{"accepted", []string{"food", "1.50", ""}, ""},
		{"empty category", []string{"", "1.50", ""}, "category"},
		{"empty amount", []string{"food", "", ""}, "amount"},
		{"bad amount", []string{"food", "abc", ""}, "amount"},
		{"short row", []string{"food"}, "amount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := expenseSchema.Check(h, tt.row)
			if tt.field == "" {
				require.True(t, out.Accepted())
				return
			}
			require.False(t, out.Accepted())
			assert.Equal(t, tt.field, out.Err.Field)
		})
	}
}

func TestRowErrorMessage(t *testing.T) {
	e := &RowError{Field: "amount", Reason: "empty field"}
	assert.Equal(t, "amount: empty field", e.Error())

	e = &RowError{Reason: "malformed row"}
	assert.Equal(t, "malformed row", e.Error())
}
