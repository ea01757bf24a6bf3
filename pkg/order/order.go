// Package order defines customer orders and their status lifecycle.
package order

import (
	"context"
	"errors"
	"time"
)

// Status tags where an order is in its lifecycle.
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
	StatusReturned   Status = "returned"
)

// Address is a free-form shipping or billing address.
type Address struct {
	Name    string `json:"name"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
	Phone   string `json:"phone,omitempty"`
}

// Complete reports whether all required fields are present.
func (a Address) Complete() bool {
	return a.Name != "" && a.Street != "" && a.City != "" && a.State != "" &&
		a.Zip != "" && a.Country != ""
}

// Order is the order header: totals, status and addresses, exclusive of items.
// Total = Subtotal + ShippingCost + Tax at creation time.
type Order struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	OrderNumber     string     `json:"order_number"`
	Status          Status     `json:"status"`
	Subtotal        float64    `json:"subtotal"`
	ShippingCost    float64    `json:"shipping_cost"`
	Tax             float64    `json:"tax"`
	Total           float64    `json:"total"`
	ShippingAddress Address    `json:"shipping_address"`
	BillingAddress  Address    `json:"billing_address"`
	TrackingNumber  string     `json:"tracking_number,omitempty"`
	Carrier         string     `json:"carrier,omitempty"`
	ShippedAt       *time.Time `json:"shipped_at,omitempty"`
	DeliveredAt     *time.Time `json:"delivered_at,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Item is one order line. UnitPrice is a frozen copy of the catalog price at
// submission time, never a live reference.
type Item struct {
	ID         string  `json:"id"`
	OrderID    string  `json:"order_id"`
	ProductID  string  `json:"product_id"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

// transitions holds the legal status moves. Cancellation is reachable from
// any pre-shipped state.
var transitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
	StatusDelivered:  {StatusReturned},
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Repository defines behavior for persisting orders.
// Create must write the header and all items atomically.
type Repository interface {
	Create(ctx context.Context, o Order, items []Item) error
	Get(ctx context.Context, id string) (Order, error)
	GetByNumber(ctx context.Context, orderNumber string) (Order, error)
	List(ctx context.Context) ([]Order, error)
	ListByUser(ctx context.Context, userID string) ([]Order, error)
	Items(ctx context.Context, orderID string) ([]Item, error)
	UpdateStatus(ctx context.Context, o Order) error
}

var (
	// ErrNotFound indicates the requested order does not exist.
	ErrNotFound = errors.New("order not found")
	// ErrInvalidItems indicates the item list failed validation; nothing was written.
	ErrInvalidItems = errors.New("invalid order items")
)
