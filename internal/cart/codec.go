package cart

import (
	"encoding/json"
	"fmt"
)

// Encode serialises lines as the persisted JSON array of {id, qty} records.
func Encode(c Cart) (string, error) {
	lines := c.Lines()
	if lines == nil {
		lines = []Line{}
	}
	b, err := json.Marshal(lines)
	if err != nil {
		return "", fmt.Errorf("cart: encode: %w", err)
	}
	return string(b), nil
}

// Decode parses a persisted cart. Any shape other than an array of records is an error;
// invalid records inside a valid array are dropped.
func Decode(raw string) (Cart, error) {
	var lines []Line
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return Cart{}, fmt.Errorf("cart: decode: %w", err)
	}
	return FromLines(lines), nil
}
