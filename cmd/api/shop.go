package main

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"glowcart/pkg/catalog"
	"glowcart/pkg/otel"
)

// listProductsHandler lists active products for the shop.
// @Summary List shop products
// @Produce json
// @Success 200 {array} catalog.Product
// @Security ApiKeyAuth
// @Router /products [get]
func listProductsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listProductsHandler")
	defer span.End()

	products, err := catalogRepo.ListProducts(ctx)
	if err != nil {
		log.Error(ctx, "list products", "error", err)
		http.Error(w, "failed to load products", http.StatusInternalServerError)
		return
	}
	active := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if p.Status == catalog.StatusActive {
			active = append(active, p)
		}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(active)
}

// getProductHandler retrieves an active product by ID.
// @Summary Get product
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} catalog.Product
// @Security ApiKeyAuth
// @Router /products/{id} [get]
func getProductHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "getProductHandler")
	defer span.End()

	p, err := catalogRepo.GetProduct(ctx, mux.Vars(r)["id"])
	if err == catalog.ErrNotFound || (err == nil && p.Status != catalog.StatusActive) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		log.Error(ctx, "get product", "error", err)
		http.Error(w, "failed to load product", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}
