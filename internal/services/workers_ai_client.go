package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"fincoach/internal/config"
)

// UpstreamError carries a non-success status from the model provider so the
// HTTP boundary can pass the details through
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("model provider returned status %d: %s", e.StatusCode, e.Body)
}

// workersAIClient calls the Cloudflare Workers AI chat endpoint. It is the
// only component that knows the provider's wire format; everything above it
// sees CoachModelInterface.
type workersAIClient struct {
	accountID   string
	apiToken    string
	baseURL     string
	model       string
	maxTokens   int
	temperature float64
	httpClient  *http.Client
}

// NewWorkersAIClient creates a CoachModelInterface backed by Cloudflare
// Workers AI. Returns an error when credentials are missing.
func NewWorkersAIClient(cfg *config.CoachConfig) (CoachModelInterface, error) {
	if cfg.AccountID == "" || cfg.APIToken == "" {
		return nil, ErrModelNotConfigured
	}

	return &workersAIClient{
		accountID:   cfg.AccountID,
		apiToken:    cfg.APIToken,
		baseURL:     cfg.BaseURL,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		httpClient:  &http.Client{},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Result struct {
		Response string `json:"response"`
	} `json:"result"`
	Success bool `json:"success"`
}

// Generate sends the prompt pair to the model and returns its text reply
func (c *workersAIClient) Generate(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	payload := chatRequest{
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode model request: %w", err)
	}

	url := fmt.Sprintf("%s/accounts/%s/ai/run/%s", c.baseURL, c.accountID, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build model request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Surface deadline overruns so the caller can map them to a timeout
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			return "", context.DeadlineExceeded
		}
		return "", fmt.Errorf("model request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read model response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &UpstreamError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode model response: %w", err)
	}

	return parsed.Result.Response, nil
}
