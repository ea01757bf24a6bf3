// Package memory implements an in-memory saved-products repository.
package memory

import (
	"context"
	"sort"
	"sync"

	"glowcart/pkg/savedproducts"
)

// Repository provides an in-memory implementation of savedproducts.Repository.
type Repository struct {
	mu    sync.RWMutex
	saved map[string]savedproducts.SavedProduct
}

// New creates a new in-memory repository.
func New() *Repository {
	return &Repository{saved: make(map[string]savedproducts.SavedProduct)}
}

// Save stores the product.
func (r *Repository) Save(ctx context.Context, sp savedproducts.SavedProduct) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved[sp.ID] = sp
	return nil
}

// ListByUser returns the user's saved products, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]savedproducts.SavedProduct, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []savedproducts.SavedProduct
	for _, sp := range r.saved {
		if sp.UserID == userID {
			out = append(out, sp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Delete removes the user's saved product by ID.
func (r *Repository) Delete(ctx context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	sp, ok := r.saved[id]
	if !ok || sp.UserID != userID {
		return savedproducts.ErrNotFound
	}
	delete(r.saved, id)
	return nil
}
