package cart

import "strings"

// MaxQuantity caps a single line. Larger adds and sets are clamped to it.
const MaxQuantity = 999

// Line is one cart entry. Qty is always positive for a stored line.
type Line struct {
	ID  string `json:"id"`
	Qty int    `json:"qty"`
}

// Cart is an ordered set of lines keyed by product id.
// The zero value is an empty cart ready to use.
type Cart struct {
	lines []Line
}

// FromLines builds a cart from untrusted lines: blank ids and non-positive quantities are
// dropped, repeated ids are merged into the first occurrence.
func FromLines(lines []Line) Cart {
	var c Cart
	for _, l := range lines {
		c.Add(l.ID, l.Qty)
	}
	return c
}

// Add increments the line for id by qty, inserting it when absent. Non-positive
// quantities are ignored and the result never exceeds MaxQuantity.
func (c *Cart) Add(id string, qty int) bool {
	id = strings.TrimSpace(id)
	if id == "" || qty <= 0 {
		return false
	}
	qty = clampQuantity(qty)
	if i := c.index(id); i >= 0 {
		next := clampQuantity(c.lines[i].Qty + qty)
		if next == c.lines[i].Qty {
			return false
		}
		c.lines[i].Qty = next
		return true
	}
	c.lines = append(c.lines, Line{ID: id, Qty: qty})
	return true
}

// Remove deletes the line for id. It reports whether a line was removed.
func (c *Cart) Remove(id string) bool {
	i := c.index(strings.TrimSpace(id))
	if i < 0 {
		return false
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return true
}

// SetQuantity replaces the quantity for id. qty <= 0 removes the line; an absent id
// is inserted. qty is clamped to MaxQuantity.
func (c *Cart) SetQuantity(id string, qty int) bool {
	id = strings.TrimSpace(id)
	if qty <= 0 {
		return c.Remove(id)
	}
	qty = clampQuantity(qty)
	if id == "" {
		return false
	}
	if i := c.index(id); i >= 0 {
		if c.lines[i].Qty == qty {
			return false
		}
		c.lines[i].Qty = qty
		return true
	}
	c.lines = append(c.lines, Line{ID: id, Qty: qty})
	return true
}

// Clear empties the cart.
func (c *Cart) Clear() bool {
	if len(c.lines) == 0 {
		return false
	}
	c.lines = nil
	return true
}

// Count is the sum of all line quantities.
func (c Cart) Count() int {
	n := 0
	for _, l := range c.lines {
		n += l.Qty
	}
	return n
}

// Len is the number of distinct lines.
func (c Cart) Len() int { return len(c.lines) }

// Empty reports whether the cart has no lines.
func (c Cart) Empty() bool { return len(c.lines) == 0 }

// Quantity returns the quantity for id, or 0 when absent.
func (c Cart) Quantity(id string) int {
	if i := c.index(strings.TrimSpace(id)); i >= 0 {
		return c.lines[i].Qty
	}
	return 0
}

// Lines returns a copy of the lines in insertion order.
func (c Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// both operands are at most MaxQuantity when called from Add, so the sum cannot wrap
func clampQuantity(qty int) int {
	if qty > MaxQuantity {
		return MaxQuantity
	}
	return qty
}

func (c Cart) index(id string) int {
	for i, l := range c.lines {
		if l.ID == id {
			return i
		}
	}
	return -1
}
