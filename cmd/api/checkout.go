package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"glowcart/pkg/checkout"
	"glowcart/pkg/order"
	"glowcart/pkg/otel"
)

type checkoutRequest struct {
	ShippingMethod  checkout.ShippingMethod `json:"shipping_method"`
	ShippingAddress order.Address           `json:"shipping_address"`
	BillingAddress  order.Address           `json:"billing_address"`
}

// checkoutHandler prices the session's cart and submits it as an order.
// On success the cart is cleared; on any failure it is left intact.
// @Summary Checkout
// @Accept json
// @Produce json
// @Param checkout body checkoutRequest true "Shipping method and addresses"
// @Success 201 {object} order.Order
// @Failure 400 "empty cart, unknown shipping method or incomplete address"
// @Security ApiKeyAuth
// @Router /checkout [post]
func checkoutHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "checkoutHandler")
	defer span.End()

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sid := sessionID(r)
	c, err := cartStore.Load(ctx, sid)
	if err != nil {
		log.Error(ctx, "load cart", "error", err)
		http.Error(w, "failed to load cart", http.StatusInternalServerError)
		return
	}

	o, err := checkoutSvc.Submit(ctx, currentUser(r), c, req.ShippingMethod, req.ShippingAddress, req.BillingAddress)
	switch {
	case errors.Is(err, checkout.ErrEmptyCart),
		errors.Is(err, checkout.ErrUnknownShippingMethod),
		errors.Is(err, checkout.ErrIncompleteAddress):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		log.Error(ctx, "submit order", "error", err)
		http.Error(w, "failed to place order", http.StatusInternalServerError)
		return
	}

	if err := cartStore.Delete(ctx, sid); err != nil {
		// The order exists; a stale cart is the lesser failure.
		log.Warn(ctx, "clear cart after checkout", "order_id", o.ID, "error", err)
	}

	log.Info(ctx, "order placed", "order_number", o.OrderNumber, "total", o.Total)
	writeJSON(w, http.StatusCreated, o)
}
