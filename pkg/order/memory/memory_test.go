package memory

import (
	"context"
	"testing"
	"time"

	"glowcart/pkg/order"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	repo := New()
	o := order.Order{
		ID:          "o1",
		UserID:      "u1",
		OrderNumber: "ORD-1-ABC",
		Status:      order.StatusConfirmed,
		Subtotal:    25,
		Tax:         2,
		Total:       36.99,
		CreatedAt:   time.Now(),
	}
	items := []order.Item{
		{ID: "i1", OrderID: "o1", ProductID: "p1", Quantity: 1, UnitPrice: 10, TotalPrice: 10},
		{ID: "i2", OrderID: "o1", ProductID: "p2", Quantity: 3, UnitPrice: 5, TotalPrice: 15},
	}
	if err := repo.Create(ctx, o, items); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := repo.Get(ctx, "o1")
	if err != nil || got.OrderNumber != "ORD-1-ABC" {
		t.Fatalf("get: %v %+v", err, got)
	}
	byNum, err := repo.GetByNumber(ctx, "ORD-1-ABC")
	if err != nil || byNum.ID != "o1" {
		t.Fatalf("get by number: %v", err)
	}
	stored, err := repo.Items(ctx, "o1")
	if err != nil || len(stored) != 2 {
		t.Fatalf("items: %v len=%d", err, len(stored))
	}
	mine, err := repo.ListByUser(ctx, "u1")
	if err != nil || len(mine) != 1 {
		t.Fatalf("list by user: %v len=%d", err, len(mine))
	}
	o.Status = order.StatusProcessing
	o.UpdatedAt = time.Now()
	if err := repo.UpdateStatus(ctx, o); err != nil {
		t.Fatalf("update status: %v", err)
	}
	got, _ = repo.Get(ctx, "o1")
	if got.Status != order.StatusProcessing {
		t.Fatalf("expected processing, got %s", got.Status)
	}
}

// A bad item must reject the whole write; no itemless header may appear.
func TestCreateIsAtomic(t *testing.T) {
	ctx := context.Background()
	repo := New()
	o := order.Order{ID: "o1", OrderNumber: "ORD-1-DEF"}
	items := []order.Item{
		{ID: "i1", OrderID: "o1", ProductID: "p1", Quantity: 1, UnitPrice: 10, TotalPrice: 10},
		{ID: "i2", OrderID: "o1", ProductID: "", Quantity: 1},
	}
	if err := repo.Create(ctx, o, items); err != order.ErrInvalidItems {
		t.Fatalf("expected ErrInvalidItems, got %v", err)
	}
	if _, err := repo.Get(ctx, "o1"); err != order.ErrNotFound {
		t.Fatalf("header must not exist after rejected create, got %v", err)
	}
}

// Stored item prices are copies; editing the source slice afterwards must
// not reach into the repository.
func TestItemPricesAreFrozen(t *testing.T) {
	ctx := context.Background()
	repo := New()
	items := []order.Item{{ID: "i1", OrderID: "o1", ProductID: "p1", Quantity: 1, UnitPrice: 10, TotalPrice: 10}}
	if err := repo.Create(ctx, order.Order{ID: "o1"}, items); err != nil {
		t.Fatalf("create: %v", err)
	}
	items[0].UnitPrice = 99
	stored, err := repo.Items(ctx, "o1")
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if stored[0].UnitPrice != 10 {
		t.Fatalf("stored price changed: %.2f", stored[0].UnitPrice)
	}
}
