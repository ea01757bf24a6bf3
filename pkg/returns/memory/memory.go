// Package memory implements an in-memory returns repository.
package memory

import (
	"context"
	"sort"
	"sync"

	"glowcart/pkg/returns"
)

// Repository provides an in-memory implementation of returns.Repository.
type Repository struct {
	mu      sync.RWMutex
	returns map[string]returns.Return
	items   map[string][]returns.Item
}

// New creates a new in-memory repository.
func New() *Repository {
	return &Repository{
		returns: make(map[string]returns.Return),
		items:   make(map[string][]returns.Item),
	}
}

// Create stores the return and its items together.
func (r *Repository) Create(ctx context.Context, ret returns.Return, items []returns.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.returns[ret.ID] = ret
	stored := make([]returns.Item, len(items))
	copy(stored, items)
	r.items[ret.ID] = stored
	return nil
}

// Get retrieves a return by ID.
func (r *Repository) Get(ctx context.Context, id string) (returns.Return, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ret, ok := r.returns[id]
	if !ok {
		return returns.Return{}, returns.ErrNotFound
	}
	return ret, nil
}

// List returns all returns, newest first.
func (r *Repository) List(ctx context.Context) ([]returns.Return, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]returns.Return, 0, len(r.returns))
	for _, ret := range r.returns {
		out = append(out, ret)
	}
	sortNewestFirst(out)
	return out, nil
}

// ListByUser returns the user's returns, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]returns.Return, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []returns.Return
	for _, ret := range r.returns {
		if ret.UserID == userID {
			out = append(out, ret)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

// Items returns the lines for a return.
func (r *Repository) Items(ctx context.Context, returnID string) ([]returns.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.returns[returnID]; !ok {
		return nil, returns.ErrNotFound
	}
	items := r.items[returnID]
	out := make([]returns.Item, len(items))
	copy(out, items)
	return out, nil
}

// UpdateStatus replaces the return's status fields.
func (r *Repository) UpdateStatus(ctx context.Context, ret returns.Return) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.returns[ret.ID]
	if !ok {
		return returns.ErrNotFound
	}
	cur.Status = ret.Status
	cur.RefundAmount = ret.RefundAmount
	cur.AdminNotes = ret.AdminNotes
	cur.ProcessedAt = ret.ProcessedAt
	cur.UpdatedAt = ret.UpdatedAt
	r.returns[ret.ID] = cur
	return nil
}

func sortNewestFirst(rs []returns.Return) {
	sort.Slice(rs, func(i, j int) bool {
		return rs[i].RequestedAt.After(rs[j].RequestedAt)
	})
}
