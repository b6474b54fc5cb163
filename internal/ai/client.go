package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"resumeforge-backend/internal/shared/config"
)

const (
	groqAPIURL   = "https://api.groq.com/openai/v1/chat/completions"
	openaiAPIURL = "https://api.openai.com/v1/chat/completions"

	// Fixed decoding parameters for every completion call.
	temperature    = 0.7
	maxTokens      = 300
	requestTimeout = 30 * time.Second
)

// Completer sends an instruction to a text-completion provider and returns
// the first completion's text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ProviderError signals that the active provider could not produce a
// completion (bad status, network error, or timeout). Callers surface it once
// and fall back to the user's original text; there is no automatic retry.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Status describes the active provider for the /ai-status endpoint.
type Status struct {
	Provider   string `json:"provider"`
	Model      string `json:"model"`
	Configured bool   `json:"configured"`
}

type provider struct {
	name        string
	url         string
	model       string
	apiKey      string
	placeholder string
}

// Client implements Completer against an OpenAI-compatible chat-completions
// API. Groq and OpenAI share the wire format, so one client covers both.
type Client struct {
	provider   provider
	httpClient *http.Client
}

// NewClient selects the active provider from config and returns a client
// bound to it for the process lifetime.
func NewClient(cfg config.Config) *Client {
	var p provider
	switch cfg.AIProvider {
	case "openai":
		p = provider{
			name:        "openai",
			url:         openaiAPIURL,
			model:       config.OpenAIModel,
			apiKey:      cfg.OpenAIAPIKey,
			placeholder: config.OpenAIKeyPlaceholder,
		}
	default:
		p = provider{
			name:        "groq",
			url:         groqAPIURL,
			model:       config.GroqModel,
			apiKey:      cfg.GroqAPIKey,
			placeholder: config.GroqKeyPlaceholder,
		}
	}
	return &Client{
		provider:   p,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// Provider returns the active provider name.
func (c *Client) Provider() string { return c.provider.name }

// Status reports the active provider and whether its key has been set to
// something other than the placeholder default.
func (c *Client) Status() Status {
	return Status{
		Provider:   c.provider.name,
		Model:      c.provider.model,
		Configured: c.provider.apiKey != c.provider.placeholder,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Complete sends the prompt as a single user message and returns the first
// completion's text. Every failure mode comes back as a *ProviderError.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model:       c.provider.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", &ProviderError{Provider: c.provider.name, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.provider.url, bytes.NewReader(payload))
	if err != nil {
		return "", &ProviderError{Provider: c.provider.name, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.provider.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &ProviderError{Provider: c.provider.name, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ProviderError{Provider: c.provider.name, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &ProviderError{
			Provider: c.provider.name,
			Err:      fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &ProviderError{Provider: c.provider.name, Err: fmt.Errorf("response parse: %w", err)}
	}
	if parsed.Error != nil {
		return "", &ProviderError{
			Provider: c.provider.name,
			Err:      fmt.Errorf("%s (%s)", parsed.Error.Message, parsed.Error.Type),
		}
	}
	if len(parsed.Choices) == 0 {
		return "", &ProviderError{Provider: c.provider.name, Err: fmt.Errorf("response missing choices")}
	}

	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		return "", &ProviderError{Provider: c.provider.name, Err: fmt.Errorf("response empty content")}
	}
	return content, nil
}
