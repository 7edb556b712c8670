package slot

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// ID is a slot identifier in its canonical string form.
//
// The upstream feed is inconsistent about identifier types: the same field
// may arrive as a JSON number on one endpoint and a numeric string on
// another. All comparisons in this package go through the canonical string
// form so that 42 and "42" identify the same slot.
//
// The zero value ("") means "no identifier".
type ID string

// Valid reports whether the ID carries an identifier.
func (id ID) Valid() bool {
	return id != ""
}

// IDFromInt converts a numeric identifier to its canonical form.
func IDFromInt(n int64) ID {
	return ID(strconv.FormatInt(n, 10))
}

// UnmarshalJSON accepts a JSON number, a string, or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	// Keep the number's own textual form; going through float64 would
	// mangle large identifiers.
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON emits the canonical string form, or null when absent.
func (id ID) MarshalJSON() ([]byte, error) {
	if !id.Valid() {
		return []byte("null"), nil
	}
	return json.Marshal(string(id))
}
