package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type fakeCompleter struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func newTestRouter(completer Completer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &Handler{
		Client: completer,
		Info:   Status{Provider: "groq", Model: "llama-3.3-70b-versatile", Configured: true},
	}
	r := gin.New()
	h.RegisterRoutes(r.Group("/"))
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	var parsed map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp, parsed
}

func TestImproveSummarySuccess(t *testing.T) {
	fake := &fakeCompleter{response: "Polished summary."}
	r := newTestRouter(fake)

	resp, body := postJSON(t, r, "/improve-summary", `{"summary":"i did stuff","targetJob":"SRE"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.Code)
	}
	if body["improved"] != "Polished summary." {
		t.Fatalf("improved = %v", body["improved"])
	}
	if body["provider"] != "groq" {
		t.Fatalf("provider = %v, want groq", body["provider"])
	}
	if len(fake.prompts) != 1 || !strings.Contains(fake.prompts[0], "i did stuff") {
		t.Fatalf("prompt did not carry the fragment: %v", fake.prompts)
	}
}

func TestImproveSummaryProviderDown(t *testing.T) {
	fake := &fakeCompleter{err: &ProviderError{Provider: "groq", Err: context.DeadlineExceeded}}
	r := newTestRouter(fake)

	resp, body := postJSON(t, r, "/improve-summary", `{"summary":"my original text"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 on provider failure", resp.Code)
	}
	if body["improved"] != "my original text" {
		t.Fatalf("improved = %v, want the original text back", body["improved"])
	}
	if body["error"] != "groq unavailable" {
		t.Fatalf("error = %v, want groq unavailable", body["error"])
	}
}

func TestImproveSummaryMissingInput(t *testing.T) {
	fake := &fakeCompleter{response: "should not be called"}
	r := newTestRouter(fake)

	resp, body := postJSON(t, r, "/improve-summary", `{"summary":"  "}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.Code)
	}
	if body["error"] != "No summary provided" {
		t.Fatalf("error = %v", body["error"])
	}
	if len(fake.prompts) != 0 {
		t.Fatalf("completer must not be called on empty input")
	}
}

func TestImproveSummaryGeneratesFromContextOnly(t *testing.T) {
	fake := &fakeCompleter{response: "Fresh summary."}
	r := newTestRouter(fake)

	_, body := postJSON(t, r, "/improve-summary", `{"targetJob":"Platform Engineer"}`)
	if body["improved"] != "Fresh summary." {
		t.Fatalf("improved = %v", body["improved"])
	}
	if len(fake.prompts) != 1 || !strings.Contains(fake.prompts[0], "Platform Engineer") {
		t.Fatalf("prompt did not carry the target job: %v", fake.prompts)
	}
}

func TestImproveBulletProviderDown(t *testing.T) {
	fake := &fakeCompleter{err: &ProviderError{Provider: "groq", Err: context.DeadlineExceeded}}
	r := newTestRouter(fake)

	_, body := postJSON(t, r, "/improve-bullet", `{"bullet":"wrote code","jobTitle":"Engineer","company":"Acme"}`)
	if body["improved"] != "wrote code" {
		t.Fatalf("improved = %v, want original bullet", body["improved"])
	}
	if body["error"] != "groq unavailable" {
		t.Fatalf("error = %v", body["error"])
	}
}

func TestSuggestSkillsMissingJobTitle(t *testing.T) {
	fake := &fakeCompleter{response: "should not be called"}
	r := newTestRouter(fake)

	resp, body := postJSON(t, r, "/suggest-skills", `{"summary":"dev"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.Code)
	}
	for _, key := range []string{"technical", "soft", "languages"} {
		arr, ok := body[key].([]any)
		if !ok || len(arr) != 0 {
			t.Fatalf("%s = %v, want empty array", key, body[key])
		}
	}
	if body["error"] == nil {
		t.Fatalf("expected a hint about the missing job title")
	}
	if len(fake.prompts) != 0 {
		t.Fatalf("completer must not be called without a job title")
	}
}

func TestSuggestSkillsParsesFencedResponse(t *testing.T) {
	fake := &fakeCompleter{response: "```json\n{\"technical\":[\"Go\",\"Postgres\"],\"soft\":[\"Mentoring\"],\"languages\":[\"English\"]}\n```"}
	r := newTestRouter(fake)

	_, body := postJSON(t, r, "/suggest-skills", `{"jobTitle":"Backend Engineer","experience":["built APIs"]}`)
	technical, ok := body["technical"].([]any)
	if !ok || len(technical) != 2 {
		t.Fatalf("technical = %v, want two entries", body["technical"])
	}
}

func TestSuggestSkillsMalformedResponse(t *testing.T) {
	fake := &fakeCompleter{response: "sorry, here are some ideas instead"}
	r := newTestRouter(fake)

	resp, body := postJSON(t, r, "/suggest-skills", `{"jobTitle":"Backend Engineer"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.Code)
	}
	for _, key := range []string{"technical", "soft", "languages"} {
		arr, ok := body[key].([]any)
		if !ok || len(arr) != 0 {
			t.Fatalf("%s = %v, want empty array on malformed response", key, body[key])
		}
	}
	if _, hasErr := body["error"]; hasErr {
		t.Fatalf("malformed upstream JSON must not surface as an error")
	}
}

func TestAIStatus(t *testing.T) {
	r := newTestRouter(&fakeCompleter{})
	req := httptest.NewRequest(http.MethodGet, "/ai-status", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	var status Status
	if err := json.Unmarshal(resp.Body.Bytes(), &status); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	if status.Provider != "groq" || !status.Configured {
		t.Fatalf("status = %+v", status)
	}
}
