// Package cart implements the shopping cart aggregate.
package cart

// ProductRef is the read-only snapshot of a catalog product a cart line holds.
type ProductRef struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	ImageURL  string  `json:"image_url,omitempty"`
}

// Line is one (product, quantity) pairing within a cart.
type Line struct {
	Product  ProductRef `json:"product"`
	Quantity int        `json:"quantity"`
}

// Cart is an ordered collection of lines, unique per product ID.
// All operations are total functions over in-memory state.
type Cart struct {
	Lines []Line `json:"lines"`
}

// AddItem merges the product into an existing line (quantity +1) or appends
// a new line with quantity 1.
func (c *Cart) AddItem(p ProductRef) {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == p.ID {
			c.Lines[i].Quantity++
			return
		}
	}
	c.Lines = append(c.Lines, Line{Product: p, Quantity: 1})
}

// UpdateQuantity sets the quantity for an existing line. Values below 1
// clamp to 1; the line is never removed this way. No-op for unknown products.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.Lines {
		if c.Lines[i].Product.ID == productID {
			c.Lines[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem deletes the line for the product; no-op if absent.
func (c *Cart) RemoveItem(productID string) {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Lines = nil
}

// Subtotal is recomputed on every call; it is never stored.
func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, l := range c.Lines {
		sum += l.Product.UnitPrice * float64(l.Quantity)
	}
	return sum
}

// TotalItems returns the sum of line quantities.
func (c *Cart) TotalItems() int {
	var n int
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}
