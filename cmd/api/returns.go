package main

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"glowcart/pkg/order"
	"glowcart/pkg/otel"
	"glowcart/pkg/returns"
)

type createReturnRequest struct {
	OrderID string `json:"order_id"`
	Reason  string `json:"reason"`
	Items   []struct {
		OrderItemID string `json:"order_item_id"`
		Quantity    int    `json:"quantity"`
		Reason      string `json:"reason,omitempty"`
	} `json:"items"`
}

// createReturnHandler opens a return request against one of the caller's orders.
// @Summary Request a return
// @Accept json
// @Produce json
// @Param return body createReturnRequest true "Return request"
// @Success 201 {object} returns.Return
// @Security ApiKeyAuth
// @Router /returns [post]
func createReturnHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "createReturnHandler")
	defer span.End()

	var req createReturnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.OrderID == "" || req.Reason == "" {
		http.Error(w, "order_id and reason are required", http.StatusBadRequest)
		return
	}

	user := currentUser(r)
	o, err := orderRepo.Get(ctx, req.OrderID)
	if err == order.ErrNotFound || (err == nil && o.UserID != user) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		log.Error(ctx, "get order", "error", err)
		http.Error(w, "failed to load order", http.StatusInternalServerError)
		return
	}

	now := time.Now().UTC()
	ret := returns.Return{
		ID:          uuid.NewString(),
		OrderID:     o.ID,
		UserID:      user,
		Status:      returns.StatusRequested,
		Reason:      req.Reason,
		RequestedAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	items := make([]returns.Item, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, returns.Item{
			ID:          uuid.NewString(),
			ReturnID:    ret.ID,
			OrderItemID: it.OrderItemID,
			Quantity:    it.Quantity,
			Reason:      it.Reason,
		})
	}

	if err := returnsRepo.Create(ctx, ret, items); err != nil {
		log.Error(ctx, "create return", "error", err)
		http.Error(w, "failed to create return", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, ret)
}

// listReturnsHandler lists the caller's returns, newest first.
// @Summary List my returns
// @Produce json
// @Success 200 {array} returns.Return
// @Security ApiKeyAuth
// @Router /returns [get]
func listReturnsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listReturnsHandler")
	defer span.End()

	list, err := returnsRepo.ListByUser(ctx, currentUser(r))
	if err != nil {
		log.Error(ctx, "list returns", "error", err)
		http.Error(w, "failed to load returns", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}
