package cart

import (
	"math"
	"testing"
)

var (
	serum      = ProductRef{ID: "p1", Name: "Vitamin C Serum", UnitPrice: 10.00}
	moisturize = ProductRef{ID: "p2", Name: "Daily Moisturizer", UnitPrice: 5.00}
)

func TestAddItemMergesLines(t *testing.T) {
	var c Cart
	c.AddItem(serum)
	c.AddItem(serum)
	if len(c.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(c.Lines))
	}
	if c.Lines[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", c.Lines[0].Quantity)
	}
}

func TestSubtotal(t *testing.T) {
	var c Cart
	c.AddItem(serum)
	c.AddItem(moisturize)
	c.UpdateQuantity(moisturize.ID, 3)
	if got := c.Subtotal(); got != 25.00 {
		t.Fatalf("expected subtotal 25.00, got %.2f", got)
	}
	if got := c.TotalItems(); got != 4 {
		t.Fatalf("expected 4 items, got %d", got)
	}
}

// Subtotal must equal the recomputed sum after any sequence of mutations.
func TestSubtotalNeverDrifts(t *testing.T) {
	var c Cart
	ops := []func(){
		func() { c.AddItem(serum) },
		func() { c.AddItem(moisturize) },
		func() { c.AddItem(serum) },
		func() { c.UpdateQuantity(serum.ID, 7) },
		func() { c.RemoveItem(moisturize.ID) },
		func() { c.AddItem(moisturize) },
		func() { c.UpdateQuantity(moisturize.ID, 0) },
		func() { c.RemoveItem("unknown") },
	}
	for i, op := range ops {
		op()
		var want float64
		for _, l := range c.Lines {
			want += l.Product.UnitPrice * float64(l.Quantity)
		}
		if got := c.Subtotal(); math.Abs(got-want) > 1e-9 {
			t.Fatalf("after op %d: subtotal %.2f, recomputed %.2f", i, got, want)
		}
	}
}

func TestUpdateQuantityClampsToOne(t *testing.T) {
	var c Cart
	c.AddItem(serum)
	c.UpdateQuantity(serum.ID, 0)
	if c.Lines[0].Quantity != 1 {
		t.Fatalf("expected clamp to 1, got %d", c.Lines[0].Quantity)
	}
	c.UpdateQuantity(serum.ID, -5)
	if c.Lines[0].Quantity != 1 {
		t.Fatalf("expected clamp to 1, got %d", c.Lines[0].Quantity)
	}
	if len(c.Lines) != 1 {
		t.Fatalf("line must not be removed by a non-positive update")
	}
}

func TestRemoveItem(t *testing.T) {
	var c Cart
	c.AddItem(serum)
	c.AddItem(moisturize)
	c.RemoveItem(serum.ID)
	if len(c.Lines) != 1 || c.Lines[0].Product.ID != moisturize.ID {
		t.Fatalf("unexpected lines after remove: %+v", c.Lines)
	}
	c.RemoveItem(serum.ID) // already gone, no-op
	if len(c.Lines) != 1 {
		t.Fatalf("remove of absent product must be a no-op")
	}
}

func TestClear(t *testing.T) {
	var c Cart
	c.AddItem(serum)
	c.AddItem(moisturize)
	c.Clear()
	if c.Subtotal() != 0 {
		t.Fatalf("expected subtotal 0 after clear, got %.2f", c.Subtotal())
	}
	if c.TotalItems() != 0 {
		t.Fatalf("expected 0 items after clear, got %d", c.TotalItems())
	}
}
