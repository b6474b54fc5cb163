package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"resumeforge-backend/internal/shared/config"
)

func testClient(url string, timeout time.Duration) *Client {
	return &Client{
		provider: provider{
			name:        "groq",
			url:         url,
			model:       config.GroqModel,
			apiKey:      "test-key",
			placeholder: config.GroqKeyPlaceholder,
		},
		httpClient: &http.Client{Timeout: timeout},
	}
}

func completionBody(content string) string {
	body, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	})
	return string(body)
}

func TestCompleteSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("missing bearer token")
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Temperature != 0.7 || req.MaxTokens != 300 {
			t.Errorf("decoding params = (%v, %d), want (0.7, 300)", req.Temperature, req.MaxTokens)
		}
		if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
			t.Errorf("expected a single user message, got %+v", req.Messages)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody("  Improved text.  ")))
	}))
	t.Cleanup(srv.Close)

	client := testClient(srv.URL, 5*time.Second)
	got, err := client.Complete(context.Background(), "improve this")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != "Improved text." {
		t.Fatalf("Complete = %q, want trimmed content", got)
	}
}

func TestCompleteFailureModes(t *testing.T) {
	badStatus := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(badStatus.Close)

	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(completionBody("too late")))
	}))
	t.Cleanup(slow.Close)

	closed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	closedURL := closed.URL
	closed.Close()

	tests := []struct {
		name    string
		client  *Client
		timeout time.Duration
	}{
		{name: "non-200 status", client: testClient(badStatus.URL, 5*time.Second)},
		{name: "network error", client: testClient(closedURL, 5*time.Second)},
		{name: "timeout", client: testClient(slow.URL, 20*time.Millisecond)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.client.Complete(context.Background(), "prompt")
			if err == nil {
				t.Fatalf("expected error")
			}
			var provErr *ProviderError
			if !errors.As(err, &provErr) {
				t.Fatalf("expected *ProviderError, got %T: %v", err, err)
			}
			if provErr.Provider != "groq" {
				t.Fatalf("Provider = %q, want groq", provErr.Provider)
			}
		})
	}
}

func TestCompleteUpstreamErrorObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error":{"message":"invalid api key","type":"auth_error"}}`))
	}))
	t.Cleanup(srv.Close)

	client := testClient(srv.URL, 5*time.Second)
	_, err := client.Complete(context.Background(), "prompt")
	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected *ProviderError, got %v", err)
	}
}

func TestStatusConfigured(t *testing.T) {
	placeholderClient := NewClient(config.Config{AIProvider: "groq", GroqAPIKey: config.GroqKeyPlaceholder})
	if placeholderClient.Status().Configured {
		t.Fatalf("placeholder key must report configured=false")
	}

	realClient := NewClient(config.Config{AIProvider: "openai", OpenAIAPIKey: "sk-live"})
	status := realClient.Status()
	if !status.Configured {
		t.Fatalf("real key must report configured=true")
	}
	if status.Provider != "openai" || status.Model != config.OpenAIModel {
		t.Fatalf("status = %+v, want openai/%s", status, config.OpenAIModel)
	}
}
