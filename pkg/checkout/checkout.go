// Package checkout converts a cart into a persisted order with frozen pricing.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"glowcart/pkg/cart"
	"glowcart/pkg/order"
)

// ShippingMethod selects a row from the fixed shipping cost table.
type ShippingMethod string

const (
	ShippingStandard  ShippingMethod = "standard"
	ShippingExpress   ShippingMethod = "express"
	ShippingOvernight ShippingMethod = "overnight"
)

var shippingCosts = map[ShippingMethod]float64{
	ShippingStandard:  9.99,
	ShippingExpress:   19.99,
	ShippingOvernight: 39.99,
}

// TaxRate is the flat tax applied to the subtotal; no jurisdiction logic.
const TaxRate = 0.08

var (
	// ErrEmptyCart indicates checkout was attempted with no lines.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrUnknownShippingMethod indicates the method is not in the cost table.
	ErrUnknownShippingMethod = errors.New("unknown shipping method")
	// ErrIncompleteAddress indicates a required address field is missing.
	ErrIncompleteAddress = errors.New("incomplete address")
)

// Quote is the priced breakdown for a cart and shipping method.
type Quote struct {
	Subtotal     float64 `json:"subtotal"`
	ShippingCost float64 `json:"shipping_cost"`
	Tax          float64 `json:"tax"`
	Total        float64 `json:"total"`
}

// Price computes the quote for the cart at this moment.
func Price(c *cart.Cart, method ShippingMethod) (Quote, error) {
	shipping, ok := shippingCosts[method]
	if !ok {
		return Quote{}, fmt.Errorf("%w: %q", ErrUnknownShippingMethod, method)
	}
	subtotal := c.Subtotal()
	tax := subtotal * TaxRate
	return Quote{
		Subtotal:     subtotal,
		ShippingCost: shipping,
		Tax:          tax,
		Total:        subtotal + shipping + tax,
	}, nil
}

// NewOrderNumber generates an order number of the form ORD-<unix-ms>-<token>.
// Uniqueness is probabilistic; the orders table carries a UNIQUE constraint
// on order_number as the backstop.
func NewOrderNumber() string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:9]
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), token)
}

// Service submits orders.
type Service struct {
	orders order.Repository
}

// NewService creates a checkout service backed by the given repository.
func NewService(orders order.Repository) *Service {
	return &Service{orders: orders}
}

// Submit prices the cart, freezes unit prices into order items and persists
// the header and items atomically. The caller clears the cart on success;
// on any error the cart is left intact.
func (s *Service) Submit(ctx context.Context, userID string, c *cart.Cart, method ShippingMethod, shipping, billing order.Address) (order.Order, error) {
	if len(c.Lines) == 0 {
		return order.Order{}, ErrEmptyCart
	}
	if !shipping.Complete() {
		return order.Order{}, fmt.Errorf("%w: shipping", ErrIncompleteAddress)
	}
	if !billing.Complete() {
		return order.Order{}, fmt.Errorf("%w: billing", ErrIncompleteAddress)
	}

	q, err := Price(c, method)
	if err != nil {
		return order.Order{}, err
	}

	now := time.Now().UTC()
	o := order.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		OrderNumber:     NewOrderNumber(),
		Status:          order.StatusConfirmed,
		Subtotal:        q.Subtotal,
		ShippingCost:    q.ShippingCost,
		Tax:             q.Tax,
		Total:           q.Total,
		ShippingAddress: shipping,
		BillingAddress:  billing,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	items := make([]order.Item, 0, len(c.Lines))
	for _, l := range c.Lines {
		items = append(items, order.Item{
			ID:         uuid.NewString(),
			OrderID:    o.ID,
			ProductID:  l.Product.ID,
			Quantity:   l.Quantity,
			UnitPrice:  l.Product.UnitPrice,
			TotalPrice: l.Product.UnitPrice * float64(l.Quantity),
		})
	}

	if err := s.orders.Create(ctx, o, items); err != nil {
		return order.Order{}, fmt.Errorf("persist order: %w", err)
	}
	return o, nil
}
