// Package assistant talks to an OpenAI-compatible chat-completions endpoint
// for contextual task guidance. The service is best effort: a missing key,
// network failure, or API error produces a user-visible explanatory string,
// never an error. The task lifecycle must not depend on this boundary.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	defaultBaseURL   = "https://api.openai.com"
	defaultModel     = "gpt-4o-mini"
	defaultMaxTokens = 600
	defaultTimeout   = 60 * time.Second

	systemPrompt = "You are an AI assistant helping with a task tracker. " +
		"Analyze the task context and provide concise, actionable guidance " +
		"with a recommended next step."
)

// Config holds the assistant client settings.
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	MaxTokens  int
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Message is one turn of the conversation sent to the model.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client is the chat-completions client.
type Client struct {
	config Config
	log    *zap.Logger
}

// NewClient creates a client with defaults applied for unset fields.
func NewClient(cfg Config, log *zap.Logger) *Client {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{config: cfg, log: log}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool { return c.config.APIKey != "" }

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
	Error   *chatError   `json:"error,omitempty"`
}

type chatChoice struct {
	Message Message `json:"message"`
}

type chatError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Ask sends the system context and conversation turns to the model and
// returns the reply text. Every failure path returns a readable placeholder
// instead of an error.
func (c *Client) Ask(ctx context.Context, systemContext string, turns []Message) string {
	if !c.Configured() {
		return "AI assistant is not configured. Set OPENAI_API_KEY to enable suggestions."
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	text, err := c.chat(ctx, systemContext, turns)
	if err != nil {
		c.log.Warn("assistant unavailable", zap.Error(err))
		return fmt.Sprintf("AI assistant unavailable: %v", err)
	}
	return text
}

func (c *Client) chat(ctx context.Context, systemContext string, turns []Message) (string, error) {
	messages := make([]Message, 0, len(turns)+1)
	system := systemPrompt
	if systemContext != "" {
		system = system + "\n\n" + systemContext
	}
	messages = append(messages, Message{Role: "system", Content: system})
	messages = append(messages, turns...)

	data, err := json.Marshal(chatRequest{
		Model:       c.config.Model,
		Messages:    messages,
		Temperature: 0.2,
		MaxTokens:   c.config.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.config.BaseURL+"/v1/chat/completions", bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.config.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var apiResp chatResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if apiResp.Error != nil {
		return "", fmt.Errorf("%s: %s", apiResp.Error.Type, apiResp.Error.Message)
	}
	if len(apiResp.Choices) == 0 {
		return "", fmt.Errorf("empty response")
	}
	return strings.TrimSpace(apiResp.Choices[0].Message.Content), nil
}
