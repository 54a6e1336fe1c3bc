package utils

import (
	"encoding/json"
	"strings"
)

// DecodeStringList parses a column holding a JSON string array into a slice.
// Stored data may be missing, blank, or malformed (hand-edited rows, older
// schema versions); any value that is not a valid JSON array of strings
// decodes to an empty slice so reads never fail on dirty data.
func DecodeStringList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}

	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []string{}
	}
	if items == nil {
		return []string{}
	}
	return items
}

// EncodeStringList serializes a slice for storage in a JSON string array
// column. A nil or empty slice encodes as "[]" so the column never holds an
// empty string.
func EncodeStringList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	encoded, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(encoded)
}
