package main

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"glowcart/pkg/cart"
	"glowcart/pkg/catalog"
	"glowcart/pkg/otel"
)

// cartResponse is the cart with its derived values.
type cartResponse struct {
	Lines      []cart.Line `json:"lines"`
	Subtotal   float64     `json:"subtotal"`
	TotalItems int         `json:"total_items"`
}

func respondCart(w http.ResponseWriter, c *cart.Cart) {
	writeJSON(w, http.StatusOK, cartResponse{
		Lines:      c.Lines,
		Subtotal:   c.Subtotal(),
		TotalItems: c.TotalItems(),
	})
}

// getCartHandler returns the session's cart.
// @Summary Get cart
// @Produce json
// @Success 200 {object} cartResponse
// @Security ApiKeyAuth
// @Router /cart [get]
func getCartHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "getCartHandler")
	defer span.End()

	c, err := cartStore.Load(ctx, sessionID(r))
	if err != nil {
		log.Error(ctx, "load cart", "error", err)
		http.Error(w, "failed to load cart", http.StatusInternalServerError)
		return
	}
	respondCart(w, c)
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
}

// addCartItemHandler adds one unit of a product to the cart.
// @Summary Add cart item
// @Accept json
// @Produce json
// @Param item body addItemRequest true "Product to add"
// @Success 200 {object} cartResponse
// @Security ApiKeyAuth
// @Router /cart/items [post]
func addCartItemHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "addCartItemHandler")
	defer span.End()

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		http.Error(w, "product_id is required", http.StatusBadRequest)
		return
	}
	p, err := catalogRepo.GetProduct(ctx, req.ProductID)
	if err == catalog.ErrNotFound || (err == nil && p.Status != catalog.StatusActive) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		log.Error(ctx, "get product", "error", err)
		http.Error(w, "failed to load product", http.StatusInternalServerError)
		return
	}

	sid := sessionID(r)
	c, err := cartStore.Load(ctx, sid)
	if err != nil {
		log.Error(ctx, "load cart", "error", err)
		http.Error(w, "failed to load cart", http.StatusInternalServerError)
		return
	}
	// The cart keeps a snapshot of the product, not a live reference.
	c.AddItem(cart.ProductRef{ID: p.ID, Name: p.Name, UnitPrice: p.SellingPrice, ImageURL: p.ImageURL})
	if err := cartStore.Save(ctx, sid, c); err != nil {
		log.Error(ctx, "save cart", "error", err)
		http.Error(w, "failed to save cart", http.StatusInternalServerError)
		return
	}
	respondCart(w, c)
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

// updateCartItemHandler sets the quantity of a cart line.
// @Summary Update cart item quantity
// @Accept json
// @Produce json
// @Param productID path string true "Product ID"
// @Param item body updateItemRequest true "New quantity"
// @Success 200 {object} cartResponse
// @Security ApiKeyAuth
// @Router /cart/items/{productID} [put]
func updateCartItemHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "updateCartItemHandler")
	defer span.End()

	var req updateItemRequest
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
	c.UpdateQuantity(mux.Vars(r)["productID"], req.Quantity)
	if err := cartStore.Save(ctx, sid, c); err != nil {
		log.Error(ctx, "save cart", "error", err)
		http.Error(w, "failed to save cart", http.StatusInternalServerError)
		return
	}
	respondCart(w, c)
}

// removeCartItemHandler removes a line from the cart.
// @Summary Remove cart item
// @Produce json
// @Param productID path string true "Product ID"
// @Success 200 {object} cartResponse
// @Security ApiKeyAuth
// @Router /cart/items/{productID} [delete]
func removeCartItemHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "removeCartItemHandler")
	defer span.End()

	sid := sessionID(r)
	c, err := cartStore.Load(ctx, sid)
	if err != nil {
		log.Error(ctx, "load cart", "error", err)
		http.Error(w, "failed to load cart", http.StatusInternalServerError)
		return
	}
	c.RemoveItem(mux.Vars(r)["productID"])
	if err := cartStore.Save(ctx, sid, c); err != nil {
		log.Error(ctx, "save cart", "error", err)
		http.Error(w, "failed to save cart", http.StatusInternalServerError)
		return
	}
	respondCart(w, c)
}

// clearCartHandler empties the session's cart.
// @Summary Clear cart
// @Success 204
// @Security ApiKeyAuth
// @Router /cart [delete]
func clearCartHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "clearCartHandler")
	defer span.End()

	if err := cartStore.Delete(ctx, sessionID(r)); err != nil {
		log.Error(ctx, "clear cart", "error", err)
		http.Error(w, "failed to clear cart", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
