// Package memory implements an in-memory order repository.
package memory

import (
	"context"
	"sort"
	"sync"

	"glowcart/pkg/order"
)

// Repository provides an in-memory implementation of order.Repository.
type Repository struct {
	mu     sync.RWMutex
	orders map[string]order.Order
	items  map[string][]order.Item
}

// New creates a new in-memory repository.
func New() *Repository {
	return &Repository{
		orders: make(map[string]order.Order),
		items:  make(map[string][]order.Item),
	}
}

// Create stores the header and items together. The item list is validated
// up front so a bad line never leaves a header without its items.
func (r *Repository) Create(ctx context.Context, o order.Order, items []order.Item) error {
	for _, it := range items {
		if it.ProductID == "" || it.Quantity < 1 {
			return order.ErrInvalidItems
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = o
	stored := make([]order.Item, len(items))
	copy(stored, items)
	r.items[o.ID] = stored
	return nil
}

// Get retrieves an order by ID.
func (r *Repository) Get(ctx context.Context, id string) (order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return order.Order{}, order.ErrNotFound
	}
	return o, nil
}

// GetByNumber retrieves an order by its order number.
func (r *Repository) GetByNumber(ctx context.Context, orderNumber string) (order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.OrderNumber == orderNumber {
			return o, nil
		}
	}
	return order.Order{}, order.ErrNotFound
}

// List returns all orders, newest first.
func (r *Repository) List(ctx context.Context) ([]order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]order.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o)
	}
	sortNewestFirst(out)
	return out, nil
}

// ListByUser returns the user's orders, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []order.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

// Items returns the lines for an order.
func (r *Repository) Items(ctx context.Context, orderID string) ([]order.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.orders[orderID]; !ok {
		return nil, order.ErrNotFound
	}
	items := r.items[orderID]
	out := make([]order.Item, len(items))
	copy(out, items)
	return out, nil
}

// UpdateStatus replaces the header's status fields.
func (r *Repository) UpdateStatus(ctx context.Context, o order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.orders[o.ID]
	if !ok {
		return order.ErrNotFound
	}
	cur.Status = o.Status
	cur.TrackingNumber = o.TrackingNumber
	cur.Carrier = o.Carrier
	cur.ShippedAt = o.ShippedAt
	cur.DeliveredAt = o.DeliveredAt
	cur.Notes = o.Notes
	cur.UpdatedAt = o.UpdatedAt
	r.orders[o.ID] = cur
	return nil
}

func sortNewestFirst(orders []order.Order) {
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}
