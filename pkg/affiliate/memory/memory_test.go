package memory

import (
	"context"
	"testing"

	"glowcart/pkg/affiliate"
)

func TestListActive(t *testing.T) {
	ctx := context.Background()
	repo := New()
	programs := []affiliate.Program{
		{ID: "a1", Name: "GlowBrand", Tier: "premium", IsActive: true},
		{ID: "a2", Name: "DermCo", Tier: "standard", IsActive: true},
		{ID: "a3", Name: "OldPartner", Tier: "premium", IsActive: false},
	}
	for _, p := range programs {
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	active, err := repo.ListActive(ctx)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("expected 2 active programs, got %d", len(active))
	}
	// tier descending, same ordering the storefront page shows
	if active[0].Tier < active[1].Tier {
		t.Fatalf("expected tier-descending order, got %s then %s", active[0].Tier, active[1].Tier)
	}
	for _, p := range active {
		if !p.IsActive {
			t.Fatalf("inactive program %s leaked into active list", p.ID)
		}
	}
}

func TestUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := New()
	p := affiliate.Program{ID: "a1", Name: "GlowBrand", CommissionRate: "10%", IsActive: true}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}
	p.CommissionRate = "12%"
	p.IsActive = false
	if err := repo.Update(ctx, p); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := repo.Get(ctx, "a1")
	if err != nil || got.CommissionRate != "12%" || got.IsActive {
		t.Fatalf("update not applied: %v %+v", err, got)
	}
	if err := repo.Delete(ctx, "a1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, "a1"); err != affiliate.ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.Update(ctx, p); err != affiliate.ErrNotFound {
		t.Fatalf("update of missing program must fail, got %v", err)
	}
}
