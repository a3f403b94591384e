// Package cart models a customer's pending order. Every line keeps a
// quantity between one and MaxQuantity.
package cart

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Line is one menu item in the cart.
type Line struct {
	MenuItemID string
	Name       string
	Price      decimal.Decimal
	Quantity   int
}

// Total returns price times quantity.
func (l Line) Total() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is an ordered list of lines keyed by menu item.
type Cart struct {
	lines []Line
}

// New builds a cart from stored lines, merging duplicates and clamping
// quantities.
func New(lines ...Line) *Cart {
	c := &Cart{}
	for _, line := range lines {
		c.Add(line, line.Quantity)
	}
	return c
}

// MaxQuantity caps a single line.
const MaxQuantity = 99

func clamp(qty int) int {
	if qty < 1 {
		return 1
	}
	if qty > MaxQuantity {
		return MaxQuantity
	}
	return qty
}

func (c *Cart) index(menuItemID string) int {
	menuItemID = strings.TrimSpace(menuItemID)
	for i, line := range c.lines {
		if line.MenuItemID == menuItemID {
			return i
		}
	}
	return -1
}

// Add puts qty of item in the cart. The quantity is clamped to
// [1, MaxQuantity], and an item already in the cart accumulates up to
// MaxQuantity.
func (c *Cart) Add(item Line, qty int) {
	item.MenuItemID = strings.TrimSpace(item.MenuItemID)
	if item.MenuItemID == "" {
		return
	}
	qty = clamp(qty)
	if i := c.index(item.MenuItemID); i >= 0 {
		c.lines[i].Quantity = clamp(c.lines[i].Quantity + qty)
		return
	}
	item.Quantity = qty
	c.lines = append(c.lines, item)
}

// Increment adds one to a line, saturating at MaxQuantity.
func (c *Cart) Increment(menuItemID string) bool {
	i := c.index(menuItemID)
	if i < 0 {
		return false
	}
	c.lines[i].Quantity = clamp(c.lines[i].Quantity + 1)
	return true
}

// Decrement removes one from a line without going below one.
func (c *Cart) Decrement(menuItemID string) bool {
	i := c.index(menuItemID)
	if i < 0 {
		return false
	}
	c.lines[i].Quantity = clamp(c.lines[i].Quantity - 1)
	return true
}

// SetQuantity sets a line quantity, clamped to [1, MaxQuantity].
func (c *Cart) SetQuantity(menuItemID string, qty int) bool {
	i := c.index(menuItemID)
	if i < 0 {
		return false
	}
	c.lines[i].Quantity = clamp(qty)
	return true
}

// Remove drops a line.
func (c *Cart) Remove(menuItemID string) bool {
	i := c.index(menuItemID)
	if i < 0 {
		return false
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return true
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total sums every line total.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Total())
	}
	return total
}

// Count sums every line quantity.
func (c *Cart) Count() int {
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// Quantity returns the quantity of one item, or zero.
func (c *Cart) Quantity(menuItemID string) int {
	if i := c.index(menuItemID); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}
