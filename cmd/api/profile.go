package main

import (
	"encoding/json"
	"net/http"
	"time"

	"glowcart/pkg/otel"
	"glowcart/pkg/profile"
)

type profileRequest struct {
	SkinType     string   `json:"skin_type"`
	SkinConcerns []string `json:"skin_concerns"`
}

// upsertProfileHandler saves the caller's skin-quiz results.
// @Summary Save skin profile
// @Accept json
// @Produce json
// @Param profile body profileRequest true "Quiz results"
// @Success 200 {object} profile.Profile
// @Security ApiKeyAuth
// @Router /profile [put]
func upsertProfileHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "upsertProfileHandler")
	defer span.End()

	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SkinType == "" {
		http.Error(w, "skin_type is required", http.StatusBadRequest)
		return
	}
	p := profile.Profile{
		UserID:       currentUser(r),
		SkinType:     req.SkinType,
		SkinConcerns: req.SkinConcerns,
		UpdatedAt:    time.Now().UTC(),
	}
	if err := profileRepo.Upsert(ctx, p); err != nil {
		log.Error(ctx, "save profile", "error", err)
		http.Error(w, "failed to save profile", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// getProfileHandler returns the caller's skin profile.
// @Summary Get skin profile
// @Produce json
// @Success 200 {object} profile.Profile
// @Security ApiKeyAuth
// @Router /profile [get]
func getProfileHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "getProfileHandler")
	defer span.End()

	p, err := profileRepo.Get(ctx, currentUser(r))
	if err == profile.ErrNotFound {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		log.Error(ctx, "get profile", "error", err)
		http.Error(w, "failed to load profile", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}
