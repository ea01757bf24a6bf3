package checkout

import (
	"context"
	"math"
	"strings"
	"testing"

	"glowcart/pkg/cart"
	"glowcart/pkg/order"
	"glowcart/pkg/order/memory"
)

func cartWith(lines ...cart.Line) *cart.Cart {
	return &cart.Cart{Lines: lines}
}

func validAddress() order.Address {
	return order.Address{Name: "Jo Doe", Street: "1 Main St", City: "Austin", State: "TX", Zip: "78701", Country: "USA"}
}

func TestPriceExpressExample(t *testing.T) {
	c := cartWith(cart.Line{Product: cart.ProductRef{ID: "p1", UnitPrice: 50.00}, Quantity: 1})
	q, err := Price(c, ShippingExpress)
	if err != nil {
		t.Fatalf("price: %v", err)
	}
	if math.Abs(q.Tax-4.00) > 1e-9 {
		t.Fatalf("expected tax 4.00, got %.4f", q.Tax)
	}
	if math.Abs(q.Total-73.99) > 1e-9 {
		t.Fatalf("expected total 73.99, got %.4f", q.Total)
	}
}

func TestPriceTwoLineExample(t *testing.T) {
	c := cartWith(
		cart.Line{Product: cart.ProductRef{ID: "p1", UnitPrice: 10.00}, Quantity: 1},
		cart.Line{Product: cart.ProductRef{ID: "p2", UnitPrice: 5.00}, Quantity: 3},
	)
	q, err := Price(c, ShippingStandard)
	if err != nil {
		t.Fatalf("price: %v", err)
	}
	if math.Abs(q.Subtotal-25.00) > 1e-9 {
		t.Fatalf("expected subtotal 25.00, got %.4f", q.Subtotal)
	}
}

func TestPriceUnknownMethod(t *testing.T) {
	c := cartWith(cart.Line{Product: cart.ProductRef{ID: "p1", UnitPrice: 10}, Quantity: 1})
	if _, err := Price(c, "teleport"); err == nil {
		t.Fatal("expected error for unknown shipping method")
	}
}

func TestSubmitEmptyCart(t *testing.T) {
	svc := NewService(memory.New())
	_, err := svc.Submit(context.Background(), "u1", &cart.Cart{}, ShippingStandard, validAddress(), validAddress())
	if err != ErrEmptyCart {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestSubmitIncompleteAddress(t *testing.T) {
	svc := NewService(memory.New())
	c := cartWith(cart.Line{Product: cart.ProductRef{ID: "p1", UnitPrice: 10}, Quantity: 1})
	addr := validAddress()
	addr.City = ""
	if _, err := svc.Submit(context.Background(), "u1", c, ShippingStandard, addr, validAddress()); err == nil {
		t.Fatal("expected error for incomplete shipping address")
	}
}

func TestSubmitFreezesPrices(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	svc := NewService(repo)

	ref := cart.ProductRef{ID: "p1", Name: "Retinol Serum", UnitPrice: 30.00}
	c := cartWith(cart.Line{Product: ref, Quantity: 2})

	o, err := svc.Submit(ctx, "u1", c, ShippingOvernight, validAddress(), validAddress())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if o.Status != order.StatusConfirmed {
		t.Fatalf("expected confirmed, got %s", o.Status)
	}
	if math.Abs(o.Total-(60.00+39.99+4.80)) > 1e-9 {
		t.Fatalf("unexpected total %.4f", o.Total)
	}

	// A later catalog price change must not reach the persisted line.
	ref.UnitPrice = 45.00
	items, err := repo.Items(ctx, o.ID)
	if err != nil || len(items) != 1 {
		t.Fatalf("items: %v len=%d", err, len(items))
	}
	if items[0].UnitPrice != 30.00 {
		t.Fatalf("unit price not frozen: %.2f", items[0].UnitPrice)
	}
	if items[0].TotalPrice != 60.00 {
		t.Fatalf("line total not frozen: %.2f", items[0].TotalPrice)
	}
}

func TestSubmitFailureLeavesNoOrder(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	svc := NewService(repo)

	c := cartWith(cart.Line{Product: cart.ProductRef{ID: "", UnitPrice: 10}, Quantity: 1})
	if _, err := svc.Submit(ctx, "u1", c, ShippingStandard, validAddress(), validAddress()); err == nil {
		t.Fatal("expected persistence error")
	}
	all, err := repo.List(ctx)
	if err != nil || len(all) != 0 {
		t.Fatalf("no order may exist after failed submit, got %d", len(all))
	}
	// The cart is the caller's; it stays intact on failure.
	if len(c.Lines) != 1 {
		t.Fatalf("cart must be left intact")
	}
}

func TestNewOrderNumberFormatAndUniqueness(t *testing.T) {
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		n := NewOrderNumber()
		if !strings.HasPrefix(n, "ORD-") {
			t.Fatalf("bad prefix: %s", n)
		}
		parts := strings.SplitN(n, "-", 3)
		if len(parts) != 3 || len(parts[2]) != 9 {
			t.Fatalf("bad format: %s", n)
		}
		if parts[2] != strings.ToUpper(parts[2]) {
			t.Fatalf("token not uppercase: %s", n)
		}
		if _, dup := seen[n]; dup {
			t.Fatalf("collision at iteration %d: %s", i, n)
		}
		seen[n] = struct{}{}
	}
}
