package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mafqoodat/mafqoodat-backend/internal/platform/logger"
)

func newTestClient(t *testing.T, baseURL string) *client {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return &client{
		log:        log,
		baseURL:    baseURL,
		apiKey:     "test-key",
		model:      "gpt-4o",
		httpClient: http.DefaultClient,
		maxRetries: 2,
	}
}

func completionReply(content string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
}

func TestGenerateTextSendsAuthAndModel(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(completionReply("  bonjour  "))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	text, err := c.GenerateText(context.Background(), "system prompt", "user text")
	if err != nil {
		t.Fatalf("GenerateText: %v", err)
	}
	if text != "bonjour" {
		t.Fatalf("expected trimmed reply, got %q", text)
	}
	if got.Model != "gpt-4o" || len(got.Messages) != 2 {
		t.Fatalf("unexpected request %+v", got)
	}
}

func TestGenerateJSONDecodesObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["response_format"] == nil {
			t.Errorf("expected a response_format in the request")
		}
		_ = json.NewEncoder(w).Encode(completionReply(`{"action":"search","item_id":0}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	obj, err := c.GenerateJSON(context.Background(), "sys", "user", "route_v1", map[string]any{"type": "object"})
	if err != nil {
		t.Fatalf("GenerateJSON: %v", err)
	}
	if obj["action"] != "search" {
		t.Fatalf("unexpected object %v", obj)
	}
}

func TestCompleteRetriesOnRateLimit(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_ = json.NewEncoder(w).Encode(completionReply("ok"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	text, err := c.GenerateText(context.Background(), "sys", "user")
	if err != nil {
		t.Fatalf("expected retry to succeed: %v", err)
	}
	if text != "ok" || calls != 2 {
		t.Fatalf("expected second attempt to answer, got %q after %d calls", text, calls)
	}
}

func TestCompleteDoesNotRetryClientError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	if _, err := c.GenerateText(context.Background(), "sys", "user"); err == nil {
		t.Fatalf("expected an error")
	}
	if calls != 1 {
		t.Fatalf("client error retried: %d calls", calls)
	}
}
