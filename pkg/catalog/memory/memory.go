// Package memory implements an in-memory catalog repository.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"glowcart/pkg/catalog"
)

// Repository provides an in-memory implementation of catalog.Repository.
type Repository struct {
	mu        sync.RWMutex
	products  map[string]catalog.Product
	inventory map[string]catalog.Inventory
}

// New creates a new in-memory repository.
func New() *Repository {
	return &Repository{
		products:  make(map[string]catalog.Product),
		inventory: make(map[string]catalog.Inventory),
	}
}

// CreateProduct stores the product.
func (r *Repository) CreateProduct(ctx context.Context, p catalog.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = p
	return nil
}

// GetProduct retrieves a product by ID.
func (r *Repository) GetProduct(ctx context.Context, id string) (catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return catalog.Product{}, catalog.ErrNotFound
	}
	return p, nil
}

// ListProducts returns all products ordered by name.
func (r *Repository) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]catalog.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// UpdateProduct replaces an existing product.
func (r *Repository) UpdateProduct(ctx context.Context, p catalog.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[p.ID]; !ok {
		return catalog.ErrNotFound
	}
	r.products[p.ID] = p
	return nil
}

// DeleteProduct removes a product by ID.
func (r *Repository) DeleteProduct(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return catalog.ErrNotFound
	}
	delete(r.products, id)
	delete(r.inventory, id)
	return nil
}

// GetInventory retrieves the inventory record for a product.
func (r *Repository) GetInventory(ctx context.Context, productID string) (catalog.Inventory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inv, ok := r.inventory[productID]
	if !ok {
		return catalog.Inventory{}, catalog.ErrNotFound
	}
	return inv, nil
}

// UpsertInventory stores the inventory record keyed by product.
func (r *Repository) UpsertInventory(ctx context.Context, inv catalog.Inventory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inventory[inv.ProductID] = inv
	return nil
}

// Restock increases on-hand stock and stamps the restock time.
func (r *Repository) Restock(ctx context.Context, productID string, quantity int, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.inventory[productID]
	if !ok {
		return catalog.ErrNotFound
	}
	inv.Quantity += quantity
	inv.LastRestockedAt = &at
	inv.UpdatedAt = at
	r.inventory[productID] = inv
	return nil
}
