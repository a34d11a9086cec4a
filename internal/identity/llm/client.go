// Package llm generates identity records through an OpenAI-compatible chat
// completions endpoint. Callers treat any error as a signal to fall back to
// local synthesis.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"identikit/internal/identity/models"
	"identikit/internal/platform/config"
	"identikit/pkg/platform/sentinel"
)

// Client talks to a chat completions API.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient builds a client from generator configuration. The configured
// timeout bounds every request; context cancellation still applies on top.
func NewClient(cfg config.GeneratorConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	TopP        float64       `json:"top_p"`
	MaxTokens   int           `json:"max_tokens"`
	Stream      bool          `json:"stream"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GenerateIdentity asks the model for one identity record.
func (c *Client) GenerateIdentity(ctx context.Context, country, language string) (models.IdentityRecord, error) {
	var rec models.IdentityRecord

	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: buildPrompt(country)}},
		Temperature: 0.2,
		TopP:        0.7,
		MaxTokens:   8192,
	})
	if err != nil {
		return rec, fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return rec, fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return rec, fmt.Errorf("%w: %v", sentinel.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.WarnContext(ctx, "generator returned non-200",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(payload)))
		return rec, fmt.Errorf("%w: status %d", sentinel.ErrUnavailable, resp.StatusCode)
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return rec, fmt.Errorf("decode chat response: %w", err)
	}
	if len(chat.Choices) == 0 || chat.Choices[0].Message.Content == "" {
		return rec, fmt.Errorf("%w: empty completion", sentinel.ErrUnavailable)
	}

	if err := json.Unmarshal([]byte(stripFences(chat.Choices[0].Message.Content)), &rec); err != nil {
		return rec, fmt.Errorf("parse completion payload: %w", err)
	}
	return rec, nil
}

// stripFences removes markdown code block wrappers models like to add.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "```json") && strings.HasSuffix(s, "```"):
		return strings.TrimSpace(s[len("```json") : len(s)-3])
	case strings.HasPrefix(s, "```") && strings.HasSuffix(s, "```"):
		return strings.TrimSpace(s[3 : len(s)-3])
	}
	return s
}
