package memory

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"glowcart/pkg/savedproducts"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	repo := New()
	analysis := json.RawMessage(`{"overallScore":82,"verdict":"good"}`)

	older := savedproducts.SavedProduct{
		ID: "s1", UserID: "u1", ProductName: "Niacinamide Serum",
		Ingredients: "Water, Niacinamide", Analysis: analysis,
		CreatedAt: time.Now().Add(-time.Hour),
	}
	newer := savedproducts.SavedProduct{
		ID: "s2", UserID: "u1", Ingredients: "Water, Glycerin", Analysis: analysis,
		CreatedAt: time.Now(),
	}
	if err := repo.Save(ctx, older); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Save(ctx, newer); err != nil {
		t.Fatalf("save: %v", err)
	}

	list, err := repo.ListByUser(ctx, "u1")
	if err != nil || len(list) != 2 {
		t.Fatalf("list: %v len=%d", err, len(list))
	}
	if list[0].ID != "s2" {
		t.Fatalf("expected newest first, got %s", list[0].ID)
	}

	other, err := repo.ListByUser(ctx, "u2")
	if err != nil || len(other) != 0 {
		t.Fatalf("another user must see nothing, got %d", len(other))
	}
}

func TestDeleteIsScopedToOwner(t *testing.T) {
	ctx := context.Background()
	repo := New()
	sp := savedproducts.SavedProduct{
		ID: "s1", UserID: "u1", Ingredients: "Water",
		Analysis: json.RawMessage(`{}`), CreatedAt: time.Now(),
	}
	if err := repo.Save(ctx, sp); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Delete(ctx, "s1", "u2"); err != savedproducts.ErrNotFound {
		t.Fatalf("another user's delete must miss, got %v", err)
	}
	if err := repo.Delete(ctx, "s1", "u1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	list, _ := repo.ListByUser(ctx, "u1")
	if len(list) != 0 {
		t.Fatalf("expected empty list after delete, got %d", len(list))
	}
}
