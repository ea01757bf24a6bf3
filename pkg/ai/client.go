// Package ai proxies skincare analysis requests to a chat-completions gateway.
//
// The gateway speaks the OpenAI-compatible API; structured results are forced
// through tool/function-call schemas so responses parse as fixed JSON fields.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	// ErrRateLimited maps an upstream 429.
	ErrRateLimited = errors.New("rate limit exceeded, try again later")
	// ErrPaymentRequired maps an upstream 402.
	ErrPaymentRequired = errors.New("service temporarily unavailable")
	// ErrNoIngredients indicates the OCR found no ingredients list in the
	// image; distinct from transport failure.
	ErrNoIngredients = errors.New("no ingredients list found in image")
)

// Config holds gateway settings.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Client calls the AI gateway. Requests are single attempts; nothing is
// retried automatically.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient creates a gateway client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageRef `json:"image_url,omitempty"`
}

type imageRef struct {
	URL string `json:"url"`
}

type toolFunction struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"`
}

type tool struct {
	Type     string       `json:"type"`
	Function toolFunction `json:"function"`
}

type toolChoice struct {
	Type     string `json:"type"`
	Function struct {
		Name string `json:"name"`
	} `json:"function"`
}

func forceTool(name string) *toolChoice {
	tc := &toolChoice{Type: "function"}
	tc.Function.Name = name
	return tc
}

type chatRequest struct {
	Model      string        `json:"model"`
	Messages   []chatMessage `json:"messages"`
	MaxTokens  int           `json:"max_tokens,omitempty"`
	Tools      []tool        `json:"tools,omitempty"`
	ToolChoice *toolChoice   `json:"tool_choice,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content   string `json:"content"`
			ToolCalls []struct {
				Function struct {
					Name      string `json:"name"`
					Arguments string `json:"arguments"`
				} `json:"function"`
			} `json:"tool_calls"`
		} `json:"message"`
	} `json:"choices"`
}

// complete posts the request and returns the decoded first choice.
// Upstream 429 and 402 map to their sentinel errors; any other non-2xx
// surfaces as a gateway error carrying the upstream text.
func (c *Client) complete(ctx context.Context, req chatRequest) (chatResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return chatResponse{}, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return chatResponse{}, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return chatResponse{}, fmt.Errorf("gateway request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 10*1024*1024))
	if err != nil {
		return chatResponse{}, fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return chatResponse{}, ErrRateLimited
	case resp.StatusCode == http.StatusPaymentRequired:
		return chatResponse{}, ErrPaymentRequired
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return chatResponse{}, fmt.Errorf("gateway error %d: %s", resp.StatusCode, data)
	}

	var out chatResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return chatResponse{}, fmt.Errorf("decode response: %w", err)
	}
	if len(out.Choices) == 0 {
		return chatResponse{}, errors.New("gateway returned no choices")
	}
	return out, nil
}

// toolArguments returns the forced tool call's JSON arguments for name.
func (r chatResponse) toolArguments(name string) (string, error) {
	for _, tc := range r.Choices[0].Message.ToolCalls {
		if tc.Function.Name == name {
			if tc.Function.Arguments == "" {
				break
			}
			return tc.Function.Arguments, nil
		}
	}
	return "", fmt.Errorf("no %s tool call in gateway response", name)
}

// Complete sends a plain prompt and returns the completion text. Used by the
// back-office agent-task executor.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.complete(ctx, chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	})
	if err != nil {
		return "", err
	}
	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", errors.New("empty completion from gateway")
	}
	return content, nil
}
