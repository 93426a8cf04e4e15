// Package ai provides the text-generation collaborator client. It speaks the
// OpenAI-compatible chat-completions wire format used by hosted gateways such
// as OpenRouter. The client is deliberately thin: one blocking call, explicit
// errors, and no retry or fallback policy — callers own the fallback decision
// (see services.AdviceService).
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Message is one role-tagged turn in a chat-completion request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Generator produces a free-text reply from an ordered conversation.
// Implementations must honor ctx for cancellation and timeouts.
type Generator interface {
	Generate(ctx context.Context, messages []Message) (string, error)
}

// Client calls an OpenAI-compatible /chat/completions endpoint.
type Client struct {
	BaseURL    string
	APIKey     string
	Model      string
	HTTPClient *http.Client
}

// NewClient constructs a Client with a sane default base URL and timeout.
func NewClient(baseURL, apiKey, model string) *Client {
	if baseURL == "" {
		baseURL = "https://openrouter.ai/api/v1"
	}
	return &Client{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		Model:      model,
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
	}
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Generate sends the conversation and returns the assistant reply text.
func (c *Client) Generate(ctx context.Context, messages []Message) (string, error) {
	if c.HTTPClient == nil {
		return "", errors.New("ai: http client is nil")
	}
	if strings.TrimSpace(c.APIKey) == "" {
		return "", errors.New("ai: api key is required")
	}
	model := strings.TrimSpace(c.Model)
	if model == "" {
		return "", errors.New("ai: model is required")
	}

	body, err := json.Marshal(chatRequest{Model: model, Messages: messages})
	if err != nil {
		return "", err
	}

	url := strings.TrimRight(c.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 4*1024))
		msg := strings.TrimSpace(string(snippet))
		if msg == "" {
			msg = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return "", fmt.Errorf("ai: %s", msg)
	}

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", err
	}
	if decoded.Error != nil && decoded.Error.Message != "" {
		return "", errors.New(decoded.Error.Message)
	}
	if len(decoded.Choices) == 0 {
		return "", errors.New("ai: empty response")
	}
	return decoded.Choices[0].Message.Content, nil
}
