package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewClient(Config{BaseURL: srv.URL, APIKey: "test-key", Model: "test-model"})
	return c, srv
}

func toolCallResponse(name, arguments string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{{
			"message": map[string]any{
				"tool_calls": []map[string]any{{
					"function": map[string]any{"name": name, "arguments": arguments},
				}},
			},
		}},
	}
}

func contentResponse(content string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{{
			"message": map[string]any{"content": content},
		}},
	}
}

func TestCheckIngredients(t *testing.T) {
	analysis := Analysis{
		OverallScore: 82,
		Verdict:      "good",
		Summary:      "Well suited for oily skin.",
		BeneficialIngredients: []BeneficialIngredient{
			{Name: "Niacinamide", Benefit: "Regulates sebum", Relevance: "Targets oiliness"},
		},
		ConcerningIngredients: []ConcerningIngredient{
			{Name: "Fragrance", Concern: "Irritation", Severity: "low", Recommendation: "Patch test first"},
		},
		NeutralIngredients: []NeutralIngredient{{Name: "Glycerin", Purpose: "Humectant"}},
		Tips:               []string{"Apply to damp skin"},
	}
	args, _ := json.Marshal(analysis)

	var gotReq chatRequest
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(toolCallResponse("analyze_ingredients", string(args)))
	})
	defer srv.Close()

	got, err := c.CheckIngredients(context.Background(), CheckRequest{
		Ingredients:  "Water, Niacinamide, Glycerin, Fragrance",
		SkinType:     "oily",
		SkinConcerns: []string{"acne", "large pores"},
	})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if got.OverallScore < 0 || got.OverallScore > 100 {
		t.Fatalf("score out of range: %v", got.OverallScore)
	}
	verdicts := map[string]bool{"excellent": true, "good": true, "moderate": true, "caution": true, "avoid": true}
	if !verdicts[got.Verdict] {
		t.Fatalf("unexpected verdict %q", got.Verdict)
	}
	if len(got.BeneficialIngredients) != 1 || got.BeneficialIngredients[0].Name != "Niacinamide" {
		t.Fatalf("unexpected beneficial ingredients: %+v", got.BeneficialIngredients)
	}

	if gotReq.ToolChoice == nil || gotReq.ToolChoice.Function.Name != "analyze_ingredients" {
		t.Fatalf("tool choice not forced: %+v", gotReq.ToolChoice)
	}
	if len(gotReq.Tools) != 1 || gotReq.Tools[0].Function.Name != "analyze_ingredients" {
		t.Fatalf("tool schema missing: %+v", gotReq.Tools)
	}
}

func TestCheckIngredientsRateLimited(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	defer srv.Close()

	_, err := c.CheckIngredients(context.Background(), CheckRequest{Ingredients: "Water"})
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestCheckIngredientsPaymentRequired(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	})
	defer srv.Close()

	_, err := c.CheckIngredients(context.Background(), CheckRequest{Ingredients: "Water"})
	if !errors.Is(err, ErrPaymentRequired) {
		t.Fatalf("expected ErrPaymentRequired, got %v", err)
	}
}

func TestCheckIngredientsGatewayError(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	})
	defer srv.Close()

	_, err := c.CheckIngredients(context.Background(), CheckRequest{Ingredients: "Water"})
	if err == nil || errors.Is(err, ErrRateLimited) || errors.Is(err, ErrPaymentRequired) {
		t.Fatalf("expected generic gateway error, got %v", err)
	}
}

func TestExtractIngredients(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		json.NewDecoder(r.Body).Decode(&req)
		if len(req.Messages) != 1 {
			t.Errorf("expected 1 message, got %d", len(req.Messages))
		}
		json.NewEncoder(w).Encode(contentResponse("Water, Glycerin, Niacinamide"))
	})
	defer srv.Close()

	got, err := c.ExtractIngredients(context.Background(), "data:image/jpeg;base64,AAAA")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if got != "Water, Glycerin, Niacinamide" {
		t.Fatalf("unexpected ingredients %q", got)
	}
}

func TestExtractIngredientsNoneFound(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(contentResponse("ERROR: Could not find ingredients list in this image. Please try a clearer photo of the product's ingredients section."))
	})
	defer srv.Close()

	_, err := c.ExtractIngredients(context.Background(), "data:image/jpeg;base64,AAAA")
	if !errors.Is(err, ErrNoIngredients) {
		t.Fatalf("expected ErrNoIngredients, got %v", err)
	}
}

func TestGenerateRoutine(t *testing.T) {
	routine := Routine{
		MorningRoutine: []RoutineStep{{
			Step: 1, ProductType: "Cleanser", Importance: "essential", HowToUse: "Massage and rinse",
			Recommendations: []Recommendation{{Brand: "CeraVe", Product: "Foaming Cleanser", PriceRange: "$10-15"}},
		}},
		EveningRoutine:     []RoutineStep{{Step: 1, ProductType: "Retinol", Importance: "key", HowToUse: "Pea-sized amount"}},
		WeeklyTreatments:   []WeeklyTreatment{{Treatment: "AHA exfoliant", Frequency: "2x weekly", Benefits: "Cell turnover"}},
		KeyIngredients:     []Ingredient{{Ingredient: "Niacinamide", Benefit: "Barrier support"}},
		IngredientsToAvoid: []Ingredient{{Ingredient: "Denatured alcohol", Reason: "Drying"}},
		Summary:            "A simple routine for combination skin.",
	}
	args, _ := json.Marshal(routine)

	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(toolCallResponse("generate_skincare_routine", string(args)))
	})
	defer srv.Close()

	got, err := c.GenerateRoutine(context.Background(), "combination", []string{"dullness"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(got.MorningRoutine) != 1 || got.MorningRoutine[0].ProductType != "Cleanser" {
		t.Fatalf("unexpected morning routine: %+v", got.MorningRoutine)
	}
	if got.Summary == "" {
		t.Fatal("missing summary")
	}
}

func TestCompleteEmptyChoices(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	})
	defer srv.Close()

	if _, err := c.Complete(context.Background(), "system", "user"); err == nil {
		t.Fatal("expected error for empty choices")
	}
}
