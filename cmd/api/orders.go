package main

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"glowcart/pkg/order"
	"glowcart/pkg/otel"
)

// orderDetail is an order header with its lines.
type orderDetail struct {
	order.Order
	Items []order.Item `json:"items"`
}

// listOrdersHandler lists the caller's orders, newest first.
// @Summary List my orders
// @Produce json
// @Success 200 {array} order.Order
// @Security ApiKeyAuth
// @Router /orders [get]
func listOrdersHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listOrdersHandler")
	defer span.End()

	orders, err := orderRepo.ListByUser(ctx, currentUser(r))
	if err != nil {
		log.Error(ctx, "list orders", "error", err)
		http.Error(w, "failed to load orders", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

// getOrderHandler retrieves one of the caller's orders with its items.
// @Summary Get order
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} orderDetail
// @Security ApiKeyAuth
// @Router /orders/{id} [get]
func getOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "getOrderHandler")
	defer span.End()

	o, err := orderRepo.Get(ctx, mux.Vars(r)["id"])
	if err == order.ErrNotFound || (err == nil && o.UserID != currentUser(r)) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		log.Error(ctx, "get order", "error", err)
		http.Error(w, "failed to load order", http.StatusInternalServerError)
		return
	}
	items, err := orderRepo.Items(ctx, o.ID)
	if err != nil {
		log.Error(ctx, "get order items", "error", err)
		http.Error(w, "failed to load order", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orderDetail{Order: o, Items: items})
}
