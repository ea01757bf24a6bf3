package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// CheckRequest is the input to an ingredient compatibility check.
type CheckRequest struct {
	Ingredients  string   `json:"ingredients"`
	SkinType     string   `json:"skinType,omitempty"`
	SkinConcerns []string `json:"skinConcerns,omitempty"`
}

// BeneficialIngredient is an ingredient that helps the user's skin.
type BeneficialIngredient struct {
	Name      string `json:"name"`
	Benefit   string `json:"benefit"`
	Relevance string `json:"relevance"`
}

// ConcerningIngredient is an ingredient that may cause issues.
type ConcerningIngredient struct {
	Name           string `json:"name"`
	Concern        string `json:"concern"`
	Severity       string `json:"severity"`
	Recommendation string `json:"recommendation"`
}

// NeutralIngredient is neither notably beneficial nor harmful.
type NeutralIngredient struct {
	Name    string `json:"name"`
	Purpose string `json:"purpose"`
}

// Analysis is the gateway's structured compatibility assessment. Score range
// and the category partition are upstream contract assumptions; this layer
// passes them through.
type Analysis struct {
	OverallScore          float64                `json:"overallScore"`
	Verdict               string                 `json:"verdict"`
	Summary               string                 `json:"summary"`
	BeneficialIngredients []BeneficialIngredient `json:"beneficialIngredients"`
	ConcerningIngredients []ConcerningIngredient `json:"concerningIngredients"`
	NeutralIngredients    []NeutralIngredient    `json:"neutralIngredients"`
	Tips                  []string               `json:"tips"`
}

// analyzeIngredientsSchema forces the analysis into fixed JSON fields.
var analyzeIngredientsSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"overallScore": map[string]any{
			"type":        "number",
			"description": "Compatibility score from 0-100 where 100 is perfect compatibility",
		},
		"verdict": map[string]any{
			"type":        "string",
			"enum":        []string{"excellent", "good", "moderate", "caution", "avoid"},
			"description": "Overall recommendation verdict",
		},
		"summary": map[string]any{
			"type":        "string",
			"description": "Brief 1-2 sentence summary of the analysis",
		},
		"beneficialIngredients": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":      map[string]any{"type": "string"},
					"benefit":   map[string]any{"type": "string"},
					"relevance": map[string]any{"type": "string", "description": "Why it's good for this skin type/concerns"},
				},
				"required": []string{"name", "benefit", "relevance"},
			},
			"description": "Ingredients that are beneficial for the user's skin",
		},
		"concerningIngredients": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":           map[string]any{"type": "string"},
					"concern":        map[string]any{"type": "string"},
					"severity":       map[string]any{"type": "string", "enum": []string{"low", "medium", "high"}},
					"recommendation": map[string]any{"type": "string"},
				},
				"required": []string{"name", "concern", "severity", "recommendation"},
			},
			"description": "Ingredients that may cause issues for the user's skin",
		},
		"neutralIngredients": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":    map[string]any{"type": "string"},
					"purpose": map[string]any{"type": "string"},
				},
				"required": []string{"name", "purpose"},
			},
			"description": "Ingredients that are neutral - not particularly beneficial or harmful",
		},
		"tips": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "Usage tips or recommendations for this product",
		},
	},
	"required": []string{"overallScore", "verdict", "summary", "beneficialIngredients", "concerningIngredients", "neutralIngredients", "tips"},
}

// CheckIngredients analyzes a product's ingredient list against the user's
// skin profile.
func (c *Client) CheckIngredients(ctx context.Context, req CheckRequest) (Analysis, error) {
	skinType := req.SkinType
	if skinType == "" {
		skinType = "Not specified"
	}
	concerns := "None specified"
	if len(req.SkinConcerns) > 0 {
		concerns = strings.Join(req.SkinConcerns, ", ")
	}

	systemPrompt := fmt.Sprintf(`You are a skincare ingredient expert. Analyze product ingredients for compatibility with a user's skin profile.

User's Skin Profile:
- Skin Type: %s
- Skin Concerns: %s

Analyze the ingredients list and provide a compatibility assessment. Be thorough but accessible in your explanations.`, skinType, concerns)

	resp, err := c.complete(ctx, chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: "Analyze these ingredients: " + req.Ingredients},
		},
		Tools: []tool{{
			Type: "function",
			Function: toolFunction{
				Name:        "analyze_ingredients",
				Description: "Analyze skincare product ingredients for skin compatibility",
				Parameters:  analyzeIngredientsSchema,
			},
		}},
		ToolChoice: forceTool("analyze_ingredients"),
	})
	if err != nil {
		return Analysis{}, err
	}

	args, err := resp.toolArguments("analyze_ingredients")
	if err != nil {
		return Analysis{}, err
	}
	var analysis Analysis
	if err := json.Unmarshal([]byte(args), &analysis); err != nil {
		return Analysis{}, fmt.Errorf("decode analysis: %w", err)
	}
	return analysis, nil
}
