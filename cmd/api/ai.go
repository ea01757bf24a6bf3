package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"glowcart/pkg/ai"
	"glowcart/pkg/otel"
	"glowcart/pkg/profile"
)

// writeAIError maps gateway failures to distinct user-visible states.
// Rate-limit and payment-required keep their upstream statuses; everything
// else collapses to a bad-gateway with the upstream text where available.
func writeAIError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ai.ErrRateLimited):
		writeError(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
	case errors.Is(err, ai.ErrPaymentRequired):
		writeError(w, http.StatusPaymentRequired, "Service temporarily unavailable. Please try again later.")
	default:
		writeError(w, http.StatusBadGateway, err.Error())
	}
}

type checkIngredientsRequest struct {
	Ingredients  string   `json:"ingredients"`
	SkinType     string   `json:"skinType,omitempty"`
	SkinConcerns []string `json:"skinConcerns,omitempty"`
}

// checkIngredientsHandler analyzes product ingredients against the caller's
// skin profile. A stored quiz profile fills in missing skin fields.
// @Summary Check ingredients
// @Accept json
// @Produce json
// @Param request body checkIngredientsRequest true "Ingredients and optional skin profile"
// @Success 200 {object} ai.Analysis
// @Failure 429 "rate limited"
// @Failure 402 "payment required upstream"
// @Security ApiKeyAuth
// @Router /ai/check-ingredients [post]
func checkIngredientsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "checkIngredientsHandler")
	defer span.End()

	var req checkIngredientsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Ingredients == "" {
		writeError(w, http.StatusBadRequest, "Ingredients are required")
		return
	}

	if req.SkinType == "" || len(req.SkinConcerns) == 0 {
		if p, err := profileRepo.Get(ctx, currentUser(r)); err == nil {
			if req.SkinType == "" {
				req.SkinType = p.SkinType
			}
			if len(req.SkinConcerns) == 0 {
				req.SkinConcerns = p.SkinConcerns
			}
		}
	}

	analysis, err := aiClient.CheckIngredients(ctx, ai.CheckRequest{
		Ingredients:  req.Ingredients,
		SkinType:     req.SkinType,
		SkinConcerns: req.SkinConcerns,
	})
	if err != nil {
		log.Error(ctx, "check ingredients", "error", err)
		writeAIError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

type extractIngredientsRequest struct {
	ImageBase64 string `json:"imageBase64"`
}

type extractIngredientsResponse struct {
	Ingredients string `json:"ingredients"`
}

// extractIngredientsHandler runs label OCR on a product photo. A photo with
// no detectable ingredients list returns 422 with guidance, distinct from
// gateway failures.
// @Summary Extract ingredients from label photo
// @Accept json
// @Produce json
// @Param request body extractIngredientsRequest true "Base64-encoded label image"
// @Success 200 {object} extractIngredientsResponse
// @Failure 422 "no ingredients list detected"
// @Security ApiKeyAuth
// @Router /ai/extract-ingredients [post]
func extractIngredientsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "extractIngredientsHandler")
	defer span.End()

	var req extractIngredientsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ImageBase64 == "" {
		writeError(w, http.StatusBadRequest, "Image is required")
		return
	}

	ingredients, err := aiClient.ExtractIngredients(ctx, req.ImageBase64)
	if errors.Is(err, ai.ErrNoIngredients) {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		log.Error(ctx, "extract ingredients", "error", err)
		writeAIError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, extractIngredientsResponse{Ingredients: ingredients})
}

type generateRoutineRequest struct {
	SkinType     string   `json:"skinType"`
	SkinConcerns []string `json:"skinConcerns"`
}

type generateRoutineResponse struct {
	Routine ai.Routine `json:"routine"`
}

// generateRoutineHandler builds a personalized skincare routine. Missing
// fields fall back to the caller's stored quiz profile.
// @Summary Generate skincare routine
// @Accept json
// @Produce json
// @Param request body generateRoutineRequest true "Skin type and concerns"
// @Success 200 {object} generateRoutineResponse
// @Security ApiKeyAuth
// @Router /ai/generate-routine [post]
func generateRoutineHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "generateRoutineHandler")
	defer span.End()

	var req generateRoutineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.SkinType == "" || len(req.SkinConcerns) == 0 {
		p, err := profileRepo.Get(ctx, currentUser(r))
		if err == profile.ErrNotFound {
			writeError(w, http.StatusBadRequest, "Skin type and concerns are required")
			return
		}
		if err != nil {
			log.Error(ctx, "get profile", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to load profile")
			return
		}
		if req.SkinType == "" {
			req.SkinType = p.SkinType
		}
		if len(req.SkinConcerns) == 0 {
			req.SkinConcerns = p.SkinConcerns
		}
	}
	if req.SkinType == "" || len(req.SkinConcerns) == 0 {
		writeError(w, http.StatusBadRequest, "Skin type and concerns are required")
		return
	}

	routine, err := aiClient.GenerateRoutine(ctx, req.SkinType, req.SkinConcerns)
	if err != nil {
		log.Error(ctx, "generate routine", "error", err)
		writeAIError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, generateRoutineResponse{Routine: routine})
}
