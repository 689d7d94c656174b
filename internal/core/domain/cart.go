package domain

import "github.com/google/uuid"

// CartLine is one entry in the cart: a product snapshot plus a quantity.
// LineID identifies the entry itself, not the product. A product that
// is removed and re-added gets a fresh LineID.
type CartLine struct {
	LineID   uuid.UUID `json:"line_id"`
	Product  Product   `json:"product"`
	Quantity int       `json:"quantity"`
}

// Cart is the ledger of the sale in progress. It keeps lines in
// insertion order (oldest add first) and guarantees that a product id
// appears in at most one line and that no line has quantity below 1.
//
// The cart does NOT check stock or status. Eligibility is the caller's
// job, before the add ever reaches the ledger.
//
// Not safe for concurrent use; the owning session serializes access.
type Cart struct {
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// Add puts one unit of the product in the cart. If a line for the same
// product already exists its quantity goes up by one; otherwise a new
// line with a fresh LineID is appended. Returns the affected line.
func (c *Cart) Add(p Product) CartLine {
	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			c.lines[i].Quantity++
			return c.lines[i]
		}
	}

	line := CartLine{
		LineID:   uuid.New(),
		Product:  p,
		Quantity: 1,
	}
	c.lines = append(c.lines, line)
	return line
}

// SetQuantity replaces a line's quantity. A quantity of zero or less
// removes the line, so a "quantity <= 0" line can never exist.
func (c *Cart) SetQuantity(lineID uuid.UUID, quantity int) {
	if quantity <= 0 {
		c.Remove(lineID)
		return
	}
	for i := range c.lines {
		if c.lines[i].LineID == lineID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes the line if present. Removing an unknown line is a
// no-op, not an error.
func (c *Cart) Remove(lineID uuid.UUID) {
	for i := range c.lines {
		if c.lines[i].LineID == lineID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Called once, when a payment completes.
func (c *Cart) Clear() {
	c.lines = nil
}

// Snapshot returns a copy of the lines in insertion order, safe for the
// caller to hold while the cart keeps changing.
func (c *Cart) Snapshot() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len is the number of lines (not units) in the cart.
func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// TotalItems sums the quantities across every line.
func (c *Cart) TotalItems() int {
	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}
