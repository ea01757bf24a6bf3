package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Recommendation is a suggested product for a routine step.
type Recommendation struct {
	Brand      string `json:"brand"`
	Product    string `json:"product"`
	PriceRange string `json:"priceRange,omitempty"`
}

// RoutineStep is one step of a morning or evening routine.
type RoutineStep struct {
	Step            int              `json:"step"`
	ProductType     string           `json:"productType"`
	Importance      string           `json:"importance"`
	HowToUse        string           `json:"howToUse"`
	Recommendations []Recommendation `json:"recommendations"`
}

// WeeklyTreatment is an occasional treatment with a frequency.
type WeeklyTreatment struct {
	Treatment       string           `json:"treatment"`
	Frequency       string           `json:"frequency"`
	Benefits        string           `json:"benefits"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Ingredient names an ingredient to seek out or avoid.
type Ingredient struct {
	Ingredient string `json:"ingredient"`
	Benefit    string `json:"benefit,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

// Routine is a personalized skincare routine.
type Routine struct {
	MorningRoutine     []RoutineStep     `json:"morningRoutine"`
	EveningRoutine     []RoutineStep     `json:"eveningRoutine"`
	WeeklyTreatments   []WeeklyTreatment `json:"weeklyTreatments"`
	KeyIngredients     []Ingredient      `json:"keyIngredients"`
	IngredientsToAvoid []Ingredient      `json:"ingredientsToAvoid"`
	Summary            string            `json:"summary"`
}

func routineStepSchema() map[string]any {
	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"step":        map[string]any{"type": "number"},
				"productType": map[string]any{"type": "string"},
				"importance":  map[string]any{"type": "string"},
				"howToUse":    map[string]any{"type": "string"},
				"recommendations": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"brand":      map[string]any{"type": "string"},
							"product":    map[string]any{"type": "string"},
							"priceRange": map[string]any{"type": "string"},
						},
						"required": []string{"brand", "product", "priceRange"},
					},
				},
			},
			"required": []string{"step", "productType", "importance", "howToUse", "recommendations"},
		},
	}
}

func ingredientSchema(detailField string) map[string]any {
	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"ingredient": map[string]any{"type": "string"},
				detailField:  map[string]any{"type": "string"},
			},
			"required": []string{"ingredient", detailField},
		},
	}
}

var generateRoutineSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"morningRoutine": routineStepSchema(),
		"eveningRoutine": routineStepSchema(),
		"weeklyTreatments": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"treatment": map[string]any{"type": "string"},
					"frequency": map[string]any{"type": "string"},
					"benefits":  map[string]any{"type": "string"},
					"recommendations": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"brand":   map[string]any{"type": "string"},
								"product": map[string]any{"type": "string"},
							},
							"required": []string{"brand", "product"},
						},
					},
				},
				"required": []string{"treatment", "frequency", "benefits", "recommendations"},
			},
		},
		"keyIngredients":     ingredientSchema("benefit"),
		"ingredientsToAvoid": ingredientSchema("reason"),
		"summary":            map[string]any{"type": "string"},
	},
	"required": []string{"morningRoutine", "eveningRoutine", "weeklyTreatments", "keyIngredients", "ingredientsToAvoid", "summary"},
}

// GenerateRoutine builds a personalized routine for the skin type and concerns.
func (c *Client) GenerateRoutine(ctx context.Context, skinType string, skinConcerns []string) (Routine, error) {
	systemPrompt := "You are an expert dermatologist and skincare specialist. Create personalized, practical skincare routines with specific product recommendations."
	userPrompt := fmt.Sprintf("Create a personalized skincare routine for someone with %s skin and the following concerns: %s.",
		skinType, strings.Join(skinConcerns, ", "))

	resp, err := c.complete(ctx, chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Tools: []tool{{
			Type: "function",
			Function: toolFunction{
				Name:        "generate_skincare_routine",
				Description: "Generate a complete personalized skincare routine",
				Parameters:  generateRoutineSchema,
			},
		}},
		ToolChoice: forceTool("generate_skincare_routine"),
	})
	if err != nil {
		return Routine{}, err
	}

	args, err := resp.toolArguments("generate_skincare_routine")
	if err != nil {
		return Routine{}, err
	}
	var routine Routine
	if err := json.Unmarshal([]byte(args), &routine); err != nil {
		return Routine{}, fmt.Errorf("decode routine: %w", err)
	}
	return routine, nil
}
