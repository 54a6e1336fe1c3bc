package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeStringList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "valid array", raw: `["Go","SQLite"]`, want: []string{"Go", "SQLite"}},
		{name: "empty array", raw: `[]`, want: []string{}},
		{name: "empty string", raw: "", want: []string{}},
		{name: "whitespace only", raw: "   \t\n", want: []string{}},
		{name: "invalid json", raw: `["Go",`, want: []string{}},
		{name: "not an array", raw: `{"a":1}`, want: []string{}},
		{name: "array of numbers", raw: `[1,2,3]`, want: []string{}},
		{name: "mixed array", raw: `["Go",42]`, want: []string{}},
		{name: "json null", raw: `null`, want: []string{}},
		{name: "bare string", raw: `"Go"`, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeStringList(tt.raw)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeStringList(t *testing.T) {
	assert.Equal(t, "[]", EncodeStringList(nil))
	assert.Equal(t, "[]", EncodeStringList([]string{}))
	assert.Equal(t, `["Go","SQLite"]`, EncodeStringList([]string{"Go", "SQLite"}))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	items := []string{"one", "two", "with \"quotes\""}
	assert.Equal(t, items, DecodeStringList(EncodeStringList(items)))
}
