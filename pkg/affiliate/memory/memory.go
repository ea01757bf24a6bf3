// Package memory implements an in-memory affiliate-program repository.
package memory

import (
	"context"
	"sort"
	"sync"

	"glowcart/pkg/affiliate"
)

// Repository provides an in-memory implementation of affiliate.Repository.
type Repository struct {
	mu       sync.RWMutex
	programs map[string]affiliate.Program
}

// New creates a new in-memory repository.
func New() *Repository {
	return &Repository{programs: make(map[string]affiliate.Program)}
}

// Create stores the program.
func (r *Repository) Create(ctx context.Context, p affiliate.Program) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.programs[p.ID] = p
	return nil
}

// Get retrieves a program by ID.
func (r *Repository) Get(ctx context.Context, id string) (affiliate.Program, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.programs[id]
	if !ok {
		return affiliate.Program{}, affiliate.ErrNotFound
	}
	return p, nil
}

// List returns all programs ordered by name.
func (r *Repository) List(ctx context.Context) ([]affiliate.Program, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]affiliate.Program, 0, len(r.programs))
	for _, p := range r.programs {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ListActive returns active programs ordered by tier descending.
func (r *Repository) ListActive(ctx context.Context) ([]affiliate.Program, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []affiliate.Program
	for _, p := range r.programs {
		if p.IsActive {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Tier != out[j].Tier {
			return out[i].Tier > out[j].Tier
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// Update replaces an existing program.
func (r *Repository) Update(ctx context.Context, p affiliate.Program) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.programs[p.ID]; !ok {
		return affiliate.ErrNotFound
	}
	r.programs[p.ID] = p
	return nil
}

// Delete removes a program by ID.
func (r *Repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.programs[id]; !ok {
		return affiliate.ErrNotFound
	}
	delete(r.programs, id)
	return nil
}
