package main

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"glowcart/pkg/affiliate"
	"glowcart/pkg/otel"
)

// listAffiliateProgramsHandler lists active partner programs for the
// storefront's affiliates page, highest tier first.
// @Summary List affiliate programs
// @Produce json
// @Success 200 {array} affiliate.Program
// @Security ApiKeyAuth
// @Router /affiliate-programs [get]
func listAffiliateProgramsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listAffiliateProgramsHandler")
	defer span.End()

	programs, err := affiliateRepo.ListActive(ctx)
	if err != nil {
		log.Error(ctx, "list affiliate programs", "error", err)
		http.Error(w, "failed to load affiliate programs", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(programs)
}

// adminListAffiliateProgramsHandler lists all programs, inactive included.
// @Summary List affiliate programs (admin)
// @Produce json
// @Success 200 {array} affiliate.Program
// @Security ApiKeyAuth
// @Router /admin/affiliate-programs [get]
func adminListAffiliateProgramsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "adminListAffiliateProgramsHandler")
	defer span.End()

	programs, err := affiliateRepo.List(ctx)
	if err != nil {
		log.Error(ctx, "list affiliate programs", "error", err)
		http.Error(w, "failed to load affiliate programs", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(programs)
}

// adminCreateAffiliateProgramHandler creates a partner program.
// @Summary Create affiliate program
// @Accept json
// @Produce json
// @Param program body affiliate.Program true "Program"
// @Success 201 {object} affiliate.Program
// @Security ApiKeyAuth
// @Router /admin/affiliate-programs [post]
func adminCreateAffiliateProgramHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "adminCreateAffiliateProgramHandler")
	defer span.End()

	var p affiliate.Program
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.CreatedAt = time.Now().UTC()
	if err := affiliateRepo.Create(ctx, p); err != nil {
		log.Error(ctx, "create affiliate program", "error", err)
		http.Error(w, "failed to create affiliate program", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// adminUpdateAffiliateProgramHandler updates a partner program.
// @Summary Update affiliate program
// @Accept json
// @Produce json
// @Param id path string true "Program ID"
// @Param program body affiliate.Program true "Program"
// @Success 200 {object} affiliate.Program
// @Security ApiKeyAuth
// @Router /admin/affiliate-programs/{id} [put]
func adminUpdateAffiliateProgramHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "adminUpdateAffiliateProgramHandler")
	defer span.End()

	var p affiliate.Program
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p.ID = mux.Vars(r)["id"]
	if err := affiliateRepo.Update(ctx, p); err != nil {
		if err == affiliate.ErrNotFound {
			http.NotFound(w, r)
			return
		}
		log.Error(ctx, "update affiliate program", "error", err)
		http.Error(w, "failed to update affiliate program", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// adminDeleteAffiliateProgramHandler removes a partner program.
// @Summary Delete affiliate program
// @Param id path string true "Program ID"
// @Success 204
// @Security ApiKeyAuth
// @Router /admin/affiliate-programs/{id} [delete]
func adminDeleteAffiliateProgramHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "adminDeleteAffiliateProgramHandler")
	defer span.End()

	if err := affiliateRepo.Delete(ctx, mux.Vars(r)["id"]); err != nil {
		if err == affiliate.ErrNotFound {
			http.NotFound(w, r)
			return
		}
		log.Error(ctx, "delete affiliate program", "error", err)
		http.Error(w, "failed to delete affiliate program", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
