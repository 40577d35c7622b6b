package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"SentimentScope/internal/config"
)

func TestAnthropicGeneratorGenerate(t *testing.T) {
	t.Parallel()

	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/v1/messages") {
			http.NotFound(w, r)
			return
		}
		gotKey = r.Header.Get("X-Api-Key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "msg_1",
			"type": "message",
			"role": "assistant",
			"model": "claude-3-5-haiku-latest",
			"content": [{"type": "text", "text": "Negative"}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 10, "output_tokens": 1}
		}`))
	}))
	defer server.Close()

	gen, err := NewAnthropicGenerator(config.LLMConfig{APIKey: "ak-test", Model: "claude-3-5-haiku-latest", Endpoint: server.URL + "/"})
	if err != nil {
		t.Fatalf("NewAnthropicGenerator error: %v", err)
	}

	reply, err := gen.Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if reply != "Negative" {
		t.Fatalf("unexpected reply: %q", reply)
	}
	if gotKey != "ak-test" {
		t.Fatalf("unexpected api key header: %q", gotKey)
	}
}

func TestAnthropicGeneratorError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"type": "error", "error": {"type": "invalid_request_error", "message": "bad model"}}`))
	}))
	defer server.Close()

	gen, err := NewAnthropicGenerator(config.LLMConfig{APIKey: "ak-test", Model: "nope", Endpoint: server.URL + "/"})
	if err != nil {
		t.Fatalf("NewAnthropicGenerator error: %v", err)
	}
	if _, err := gen.Generate(context.Background(), "prompt"); err == nil {
		t.Fatalf("expected error for 400")
	}
}
