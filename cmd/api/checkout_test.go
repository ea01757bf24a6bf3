package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"glowcart/pkg/cart"
	"glowcart/pkg/catalog"
	catalogmem "glowcart/pkg/catalog/memory"
	"glowcart/pkg/checkout"
	"glowcart/pkg/logger"
	"glowcart/pkg/order"
	ordermem "glowcart/pkg/order/memory"
	profilemem "glowcart/pkg/profile/memory"
	savedmem "glowcart/pkg/savedproducts/memory"
)

// memCartStore keeps carts in a map; it stands in for redis in tests.
type memCartStore struct {
	mu    sync.Mutex
	carts map[string]cart.Cart
}

func newMemCartStore() *memCartStore {
	return &memCartStore{carts: make(map[string]cart.Cart)}
}

func (s *memCartStore) Save(ctx context.Context, sessionID string, c *cart.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[sessionID] = *c
	return nil
}

func (s *memCartStore) Load(ctx context.Context, sessionID string) (*cart.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.carts[sessionID]
	return &c, nil
}

func (s *memCartStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}

func setupHandlers(t *testing.T) (*catalogmem.Repository, *ordermem.Repository, *memCartStore) {
	t.Helper()
	log = logger.New(io.Discard, logger.LevelError, "test", nil)
	catRepo := catalogmem.New()
	ordRepo := ordermem.New()
	store := newMemCartStore()
	catalogRepo = catRepo
	orderRepo = ordRepo
	cartStore = store
	checkoutSvc = checkout.NewService(ordRepo)
	profileRepo = profilemem.New()
	savedRepo = savedmem.New()
	return catRepo, ordRepo, store
}

func authedRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	r := httptest.NewRequest(method, target, &buf)
	ctx := context.WithValue(r.Context(), "user", "jo")
	ctx = context.WithValue(ctx, "session_id", "sess-1")
	return r.WithContext(ctx)
}

func TestCheckoutEmptyCart(t *testing.T) {
	setupHandlers(t)

	req := authedRequest(http.MethodPost, "/checkout", checkoutRequest{
		ShippingMethod:  checkout.ShippingStandard,
		ShippingAddress: testAddress(),
		BillingAddress:  testAddress(),
	})
	w := httptest.NewRecorder()
	checkoutHandler(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty cart, got %d", w.Code)
	}
}

func TestCheckoutPlacesOrderAndClearsCart(t *testing.T) {
	catRepo, ordRepo, store := setupHandlers(t)

	ctx := context.Background()
	catRepo.CreateProduct(ctx, catalog.Product{ID: "p1", Name: "Serum", SellingPrice: 50.00, Status: catalog.StatusActive})
	c := &cart.Cart{}
	c.AddItem(cart.ProductRef{ID: "p1", Name: "Serum", UnitPrice: 50.00})
	store.Save(ctx, "sess-1", c)

	req := authedRequest(http.MethodPost, "/checkout", checkoutRequest{
		ShippingMethod:  checkout.ShippingExpress,
		ShippingAddress: testAddress(),
		BillingAddress:  testAddress(),
	})
	w := httptest.NewRecorder()
	checkoutHandler(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var placed order.Order
	if err := json.Unmarshal(w.Body.Bytes(), &placed); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if placed.Total != 73.99 {
		t.Fatalf("expected total 73.99, got %.2f", placed.Total)
	}

	stored, err := ordRepo.Get(ctx, placed.ID)
	if err != nil || stored.OrderNumber != placed.OrderNumber {
		t.Fatalf("order not persisted: %v", err)
	}
	after, _ := store.Load(ctx, "sess-1")
	if len(after.Lines) != 0 {
		t.Fatalf("cart must be cleared after checkout, has %d lines", len(after.Lines))
	}
}

func TestAddCartItemMerges(t *testing.T) {
	catRepo, _, store := setupHandlers(t)
	ctx := context.Background()
	catRepo.CreateProduct(ctx, catalog.Product{ID: "p1", Name: "Serum", SellingPrice: 10.00, Status: catalog.StatusActive})

	for i := 0; i < 2; i++ {
		req := authedRequest(http.MethodPost, "/cart/items", addItemRequest{ProductID: "p1"})
		w := httptest.NewRecorder()
		addCartItemHandler(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	}

	c, _ := store.Load(ctx, "sess-1")
	if len(c.Lines) != 1 || c.Lines[0].Quantity != 2 {
		t.Fatalf("expected one merged line with quantity 2, got %+v", c.Lines)
	}
}

func TestAddCartItemInactiveProduct(t *testing.T) {
	catRepo, _, _ := setupHandlers(t)
	catRepo.CreateProduct(context.Background(), catalog.Product{ID: "p1", Name: "Old Serum", SellingPrice: 10.00, Status: catalog.StatusDiscontinued})

	req := authedRequest(http.MethodPost, "/cart/items", addItemRequest{ProductID: "p1"})
	w := httptest.NewRecorder()
	addCartItemHandler(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for discontinued product, got %d", w.Code)
	}
}

func testAddress() order.Address {
	return order.Address{Name: "Jo Doe", Street: "1 Main St", City: "Austin", State: "TX", Zip: "78701", Country: "USA"}
}
