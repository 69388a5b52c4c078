package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hybridlex/internal/lexfmt"
)

func newTestHandler() http.Handler {
	return New(":0").Handler()
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %q", body["status"])
	}
}

func TestLex(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/lex",
		strings.NewReader(`{"code": "int x = 3.14;\nif (x) {}"}`))
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var tokens []lexfmt.TokenOutput
	if err := json.Unmarshal(rec.Body.Bytes(), &tokens); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if len(tokens) == 0 {
		t.Fatal("Expected tokens in response")
	}
	if tokens[0].Type != "KEYWORD" || tokens[0].Value != "int" {
		t.Errorf("Expected first token KEYWORD int, got %+v", tokens[0])
	}
	for _, tok := range tokens {
		if tok.Type == "NEWLINE" {
			t.Error("Expected NEWLINE tokens to be filtered from API output")
		}
	}
}

func TestLexEmptyCode(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/lex", strings.NewReader(`{"code": ""}`))
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("Expected empty array, got %q", rec.Body.String())
	}
}

func TestLexBadBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/lex", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/lex", nil)
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("Expected 204 for preflight, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("Expected permissive CORS origin header")
	}
}

func TestRunShutsDownOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	srv := New("127.0.0.1:0")

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	// let the listener start, then cancel
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected clean shutdown, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Error("Server did not shut down after cancel")
	}
}
