package identify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestParseGuess(t *testing.T) {
	tests := map[string]string{
		"bare":         `{"brand":"Pilot","model":"Metropolitan"}`,
		"fenced":       "```json\n{\"brand\":\"Pilot\",\"model\":\"Metropolitan\"}\n```",
		"with preface": "Here is the identification:\n{\"brand\":\"Pilot\",\"model\":\"Metropolitan\"}",
	}
	for name, text := range tests {
		guess, err := parseGuess(text)
		if err != nil {
			t.Errorf("%s: parseGuess: %v", name, err)
			continue
		}
		if guess.Brand != "Pilot" || guess.Model != "Metropolitan" {
			t.Errorf("%s: unexpected guess: %+v", name, guess)
		}
	}
}

func TestParseGuessNoJSON(t *testing.T) {
	if _, err := parseGuess("I cannot identify this pen."); err == nil {
		t.Error("expected error when no JSON object present")
	}
}

func TestIdentify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "test-key" {
			t.Errorf("expected x-api-key header, got %q", r.Header.Get("x-api-key"))
		}
		if r.Header.Get("anthropic-version") == "" {
			t.Error("expected anthropic-version header")
		}

		var req messagesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if len(req.Messages) != 1 || len(req.Messages[0].Content) != 2 {
			t.Errorf("expected one message with image and text blocks, got %+v", req.Messages)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{
				{"type": "text", "text": `{"brand":"Lamy","model":"Safari","color":"Charcoal","nib_size":"F"}`},
			},
		})
	}))
	defer srv.Close()

	client := &AnthropicClient{
		APIKey: "test-key",
		Model:  "test-model",
		HTTP:   &http.Client{Timeout: 5 * time.Second},
		url:    srv.URL,
	}

	guess, err := client.Identify(context.Background(), []byte("fake-image"), "image/jpeg")
	if err != nil {
		t.Fatalf("Identify: %v", err)
	}
	if guess.Brand != "Lamy" || guess.Model != "Safari" || guess.NibSize != "F" {
		t.Errorf("unexpected guess: %+v", guess)
	}
}

func TestIdentifyAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := &AnthropicClient{
		APIKey: "test-key",
		HTTP:   srv.Client(),
		url:    srv.URL,
	}
	if _, err := client.Identify(context.Background(), []byte("fake-image"), "image/jpeg"); err == nil {
		t.Error("expected error on non-200 response")
	}
}
