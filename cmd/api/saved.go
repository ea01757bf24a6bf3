package main

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"glowcart/pkg/otel"
	"glowcart/pkg/savedproducts"
)

type saveProductRequest struct {
	ProductName string          `json:"product_name,omitempty"`
	Ingredients string          `json:"ingredients"`
	Analysis    json.RawMessage `json:"analysis"`
}

// saveProductHandler stores an analyzed ingredient list in the caller's
// favorites. The analysis payload is kept verbatim.
// @Summary Save analyzed product
// @Accept json
// @Produce json
// @Param product body saveProductRequest true "Ingredients and analysis result"
// @Success 201 {object} savedproducts.SavedProduct
// @Security ApiKeyAuth
// @Router /saved-products [post]
func saveProductHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "saveProductHandler")
	defer span.End()

	var req saveProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Ingredients == "" {
		writeError(w, http.StatusBadRequest, "Ingredients are required")
		return
	}
	if len(req.Analysis) == 0 || !json.Valid(req.Analysis) {
		writeError(w, http.StatusBadRequest, "A valid analysis result is required")
		return
	}

	sp := savedproducts.SavedProduct{
		ID:          uuid.NewString(),
		UserID:      currentUser(r),
		ProductName: req.ProductName,
		Ingredients: req.Ingredients,
		Analysis:    req.Analysis,
		CreatedAt:   time.Now().UTC(),
	}
	if err := savedRepo.Save(ctx, sp); err != nil {
		log.Error(ctx, "save product", "error", err)
		http.Error(w, "failed to save product", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, sp)
}

// listSavedProductsHandler lists the caller's saved products, newest first.
// @Summary List saved products
// @Produce json
// @Success 200 {array} savedproducts.SavedProduct
// @Security ApiKeyAuth
// @Router /saved-products [get]
func listSavedProductsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listSavedProductsHandler")
	defer span.End()

	list, err := savedRepo.ListByUser(ctx, currentUser(r))
	if err != nil {
		log.Error(ctx, "list saved products", "error", err)
		http.Error(w, "failed to load saved products", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// deleteSavedProductHandler removes one of the caller's saved products.
// Another user's product looks like a 404, never a 403.
// @Summary Delete saved product
// @Param id path string true "Saved product ID"
// @Success 204
// @Security ApiKeyAuth
// @Router /saved-products/{id} [delete]
func deleteSavedProductHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "deleteSavedProductHandler")
	defer span.End()

	err := savedRepo.Delete(ctx, mux.Vars(r)["id"], currentUser(r))
	if err == savedproducts.ErrNotFound {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		log.Error(ctx, "delete saved product", "error", err)
		http.Error(w, "failed to delete saved product", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
