// Package returns defines return requests and their status lifecycle.
package returns

import (
	"context"
	"errors"
	"time"
)

// Status tags where a return is in its lifecycle.
type Status string

const (
	StatusRequested Status = "requested"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusReceived  Status = "received"
	StatusRefunded  Status = "refunded"
)

// Return is a customer request to send back part of an order.
type Return struct {
	ID           string     `json:"id"`
	OrderID      string     `json:"order_id"`
	UserID       string     `json:"user_id"`
	Status       Status     `json:"status"`
	Reason       string     `json:"reason"`
	RefundAmount float64    `json:"refund_amount,omitempty"`
	AdminNotes   string     `json:"admin_notes,omitempty"`
	RequestedAt  time.Time  `json:"requested_at"`
	ProcessedAt  *time.Time `json:"processed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Item is one order line included in a return.
type Item struct {
	ID          string `json:"id"`
	ReturnID    string `json:"return_id"`
	OrderItemID string `json:"order_item_id"`
	Quantity    int    `json:"quantity"`
	Reason      string `json:"reason,omitempty"`
}

var transitions = map[Status][]Status{
	StatusRequested: {StatusApproved, StatusRejected},
	StatusApproved:  {StatusReceived},
	StatusReceived:  {StatusRefunded},
}

// CanTransition reports whether a return may move from one status to another.
func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Repository defines behavior for persisting returns.
type Repository interface {
	Create(ctx context.Context, r Return, items []Item) error
	Get(ctx context.Context, id string) (Return, error)
	List(ctx context.Context) ([]Return, error)
	ListByUser(ctx context.Context, userID string) ([]Return, error)
	Items(ctx context.Context, returnID string) ([]Item, error)
	UpdateStatus(ctx context.Context, r Return) error
}

// ErrNotFound indicates the requested return does not exist.
var ErrNotFound = errors.New("return not found")
