package cart

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisStore(client, time.Hour), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	c := &Cart{}
	c.AddItem(ProductRef{ID: "p1", Name: "Vitamin C Serum", UnitPrice: 10.00, ImageURL: "/serum.jpg"})
	c.AddItem(ProductRef{ID: "p2", Name: "Daily Moisturizer", UnitPrice: 5.00})
	c.UpdateQuantity("p2", 3)
	if err := store.Save(ctx, "s1", c); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Load(ctx, "s1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(got.Lines))
	}
	if got.Lines[0].Product.Name != "Vitamin C Serum" || got.Lines[1].Quantity != 3 {
		t.Fatalf("cart did not survive the round trip: %+v", got.Lines)
	}
	if got.Subtotal() != 25.00 {
		t.Fatalf("expected subtotal 25.00, got %.2f", got.Subtotal())
	}

	// the cart expires with the session
	if ttl := mr.TTL("cart:s1"); ttl != time.Hour {
		t.Fatalf("expected ttl %v, got %v", time.Hour, ttl)
	}
}

func TestRedisStoreLoadMissing(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	got, err := store.Load(ctx, "never-saved")
	if err != nil {
		t.Fatalf("missing cart must load empty, got error %v", err)
	}
	if len(got.Lines) != 0 || got.Subtotal() != 0 {
		t.Fatalf("expected empty cart, got %+v", got.Lines)
	}
}

func TestRedisStoreDelete(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	c := &Cart{}
	c.AddItem(ProductRef{ID: "p1", UnitPrice: 10})
	if err := store.Save(ctx, "s1", c); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Delete(ctx, "s1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err := store.Load(ctx, "s1")
	if err != nil || len(got.Lines) != 0 {
		t.Fatalf("expected empty cart after delete: %v %+v", err, got.Lines)
	}
}
