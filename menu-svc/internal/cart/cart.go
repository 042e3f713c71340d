// Package cart holds the in-memory line items of one browser session's order.
//
// A Cart is not safe for concurrent use; its owner serializes access.
package cart

import (
	"math"

	"tatini-menu/menu-svc/internal/domain"

	"github.com/shopspring/decimal"
)

type Cart struct {
	lines []domain.CartLine
}

func New() *Cart {
	return &Cart{}
}

// AddonLineID is the line id used for an add-on ordered with a dish.
func AddonLineID(dishID, addonID string) string {
	return dishID + "-" + addonID
}

// AddItem increments the line with the same id, or appends a new line
// with quantity 1. The incoming quantity is ignored.
func (c *Cart) AddItem(line domain.CartLine) {
	if i := c.index(line.ID); i >= 0 {
		c.lines[i].Quantity++
		return
	}
	line.Quantity = 1
	c.lines = append(c.lines, line)
}

// ChangeQuantity adds delta to the line's quantity and drops the line once
// it reaches zero. Unknown ids and increments that would overflow are
// ignored.
func (c *Cart) ChangeQuantity(id string, delta int) {
	i := c.index(id)
	if i < 0 {
		return
	}
	if delta > 0 && c.lines[i].Quantity > math.MaxInt-delta {
		return
	}
	qty := c.lines[i].Quantity + delta
	if qty <= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		return
	}
	c.lines[i].Quantity = qty
}

func (c *Cart) SetLineNote(id, note string) {
	if i := c.index(id); i >= 0 {
		c.lines[i].Note = note
	}
}

func (c *Cart) Line(id string) (domain.CartLine, bool) {
	if i := c.index(id); i >= 0 {
		return c.lines[i], true
	}
	return domain.CartLine{}, false
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) TotalQuantity() int {
	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

func (c *Cart) TotalAmount() decimal.Decimal {
	return TotalAmount(c.lines)
}

func (c *Cart) Reset() {
	c.lines = nil
}

// TotalAmount sums price times quantity over lines.
func TotalAmount(lines []domain.CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

func (c *Cart) index(id string) int {
	for i, l := range c.lines {
		if l.ID == id {
			return i
		}
	}
	return -1
}
