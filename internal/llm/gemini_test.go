package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGeminiGenerateText(t *testing.T) {
	var captured geminiRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "models/test-model:generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("key = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"hello "},{"text":"world"}]}}]}`))
	}))
	defer server.Close()

	g := NewGeminiGenerator("test-key", "test-model", server.Client()).WithBaseURL(server.URL)

	out, err := g.GenerateText(context.Background(), "be terse", "say hello")
	if err != nil {
		t.Fatalf("GenerateText() error = %v", err)
	}
	if out != "hello world" {
		t.Errorf("output = %q", out)
	}
	if len(captured.Contents) != 1 || captured.Contents[0].Parts[0].Text != "say hello" {
		t.Errorf("request contents = %+v", captured.Contents)
	}
	if captured.SystemInstruction == nil || captured.SystemInstruction.Parts[0].Text != "be terse" {
		t.Errorf("system instruction = %+v", captured.SystemInstruction)
	}
}

func TestGeminiGenerateText_Errors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantReject bool
	}{
		{
			name:       "client error is a rejection",
			status:     http.StatusBadRequest,
			body:       `{"error":{"message":"API key not valid"}}`,
			wantReject: true,
		},
		{
			name:       "quota error is a rejection",
			status:     http.StatusTooManyRequests,
			body:       `{"error":{"message":"quota exceeded"}}`,
			wantReject: true,
		},
		{
			name:       "server error is not a rejection",
			status:     http.StatusServiceUnavailable,
			body:       `{"error":{"message":"overloaded"}}`,
			wantReject: false,
		},
		{
			name:       "empty candidates is a rejection",
			status:     http.StatusOK,
			body:       `{"candidates":[]}`,
			wantReject: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			g := NewGeminiGenerator("k", "m", server.Client()).WithBaseURL(server.URL)
			_, err := g.GenerateText(context.Background(), "", "prompt")
			if err == nil {
				t.Fatal("GenerateText() error = nil")
			}

			var reqErr *RequestError
			if got := errors.As(err, &reqErr); got != tt.wantReject {
				t.Errorf("is RequestError = %v, want %v (err: %v)", got, tt.wantReject, err)
			}
		})
	}
}
