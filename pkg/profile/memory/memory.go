// Package memory implements an in-memory profile repository.
package memory

import (
	"context"
	"sync"

	"glowcart/pkg/profile"
)

// Repository provides an in-memory implementation of profile.Repository.
type Repository struct {
	mu       sync.RWMutex
	profiles map[string]profile.Profile
}

// New creates a new in-memory repository.
func New() *Repository {
	return &Repository{profiles: make(map[string]profile.Profile)}
}

// Upsert stores the profile keyed by user.
func (r *Repository) Upsert(ctx context.Context, p profile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.UserID] = p
	return nil
}

// Get retrieves a user's profile.
func (r *Repository) Get(ctx context.Context, userID string) (profile.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[userID]
	if !ok {
		return profile.Profile{}, profile.ErrNotFound
	}
	return p, nil
}
