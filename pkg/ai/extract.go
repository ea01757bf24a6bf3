package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const extractPrompt = `You are an OCR specialist for skincare products. Extract the ingredients list from this product label image.

IMPORTANT INSTRUCTIONS:
1. Look for the "Ingredients:" or "INGREDIENTS:" section on the label
2. Extract ONLY the ingredient names, separated by commas
3. Clean up any OCR artifacts or formatting issues
4. If you cannot find an ingredients list, respond with an error message
5. Do not include percentages, marketing claims, or non-ingredient text

Respond with ONLY the comma-separated ingredient list, nothing else. If no ingredients found, respond with: "ERROR: Could not find ingredients list in this image. Please try a clearer photo of the product's ingredients section."`

// ExtractIngredients runs label OCR on a base64-encoded product photo and
// returns the comma-separated ingredient list. When the model reports it
// found no ingredients, the error wraps ErrNoIngredients with the guidance
// text, distinct from transport failures.
func (c *Client) ExtractIngredients(ctx context.Context, imageBase64 string) (string, error) {
	resp, err := c.complete(ctx, chatRequest{
		Model: c.model,
		Messages: []chatMessage{{
			Role: "user",
			Content: []contentPart{
				{Type: "text", Text: extractPrompt},
				{Type: "image_url", ImageURL: &imageRef{URL: imageBase64}},
			},
		}},
		MaxTokens: 2000,
	})
	if err != nil {
		return "", err
	}

	text := resp.Choices[0].Message.Content
	if text == "" {
		return "", errors.New("no text extracted from image")
	}
	if strings.HasPrefix(text, "ERROR:") {
		return "", fmt.Errorf("%w: %s", ErrNoIngredients, strings.TrimSpace(strings.TrimPrefix(text, "ERROR:")))
	}
	return text, nil
}
