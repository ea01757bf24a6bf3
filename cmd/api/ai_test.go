package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"glowcart/pkg/ai"
	"glowcart/pkg/profile"
)

// fakeGateway captures the system prompt of the last chat request and replies
// with a fixed analyze_ingredients tool call.
func fakeGateway(t *testing.T, systemPrompt *string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []struct {
				Role    string          `json:"role"`
				Content json.RawMessage `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode gateway request: %v", err)
		}
		for _, m := range req.Messages {
			if m.Role == "system" {
				var s string
				if err := json.Unmarshal(m.Content, &s); err != nil {
					t.Errorf("decode system prompt: %v", err)
				}
				*systemPrompt = s
			}
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{
				"message": map[string]any{
					"tool_calls": []map[string]any{{
						"function": map[string]any{
							"name":      "analyze_ingredients",
							"arguments": `{"overallScore":75,"verdict":"good","summary":"ok","beneficialIngredients":[],"concerningIngredients":[],"neutralIngredients":[],"tips":[]}`,
						},
					}},
				},
			}},
		})
	}))
}

// A request that names a skin type but no concerns still picks the concerns
// up from the stored quiz profile.
func TestCheckIngredientsFillsConcernsFromProfile(t *testing.T) {
	setupHandlers(t)
	ctx := context.Background()
	profileRepo.Upsert(ctx, profile.Profile{
		UserID:       "jo",
		SkinType:     "dry",
		SkinConcerns: []string{"redness", "dullness"},
		UpdatedAt:    time.Now().UTC(),
	})

	var systemPrompt string
	srv := fakeGateway(t, &systemPrompt)
	defer srv.Close()
	aiClient = ai.NewClient(ai.Config{BaseURL: srv.URL, APIKey: "k", Model: "m"})

	req := authedRequest(http.MethodPost, "/ai/check-ingredients", checkIngredientsRequest{
		Ingredients: "Water, Niacinamide",
		SkinType:    "oily",
	})
	w := httptest.NewRecorder()
	checkIngredientsHandler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(systemPrompt, "oily") {
		t.Fatalf("request skin type must win, prompt: %q", systemPrompt)
	}
	if !strings.Contains(systemPrompt, "redness, dullness") {
		t.Fatalf("profile concerns missing from prompt: %q", systemPrompt)
	}
}

// With no stored profile and no fields in the request, the prompt falls back
// to the unspecified placeholders.
func TestCheckIngredientsWithoutProfile(t *testing.T) {
	setupHandlers(t)

	var systemPrompt string
	srv := fakeGateway(t, &systemPrompt)
	defer srv.Close()
	aiClient = ai.NewClient(ai.Config{BaseURL: srv.URL, APIKey: "k", Model: "m"})

	req := authedRequest(http.MethodPost, "/ai/check-ingredients", checkIngredientsRequest{
		Ingredients: "Water, Niacinamide",
	})
	w := httptest.NewRecorder()
	checkIngredientsHandler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(systemPrompt, "Not specified") || !strings.Contains(systemPrompt, "None specified") {
		t.Fatalf("expected placeholder profile in prompt: %q", systemPrompt)
	}
}
