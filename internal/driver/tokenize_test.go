package driver

import (
	"os"
	"path/filepath"
	"testing"

	"hybridlex/internal/token"
)

func TestTokenizeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.src")
	if err := os.WriteFile(path, []byte("int x = 1;\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := TokenizeFile(path)
	if err != nil {
		t.Fatalf("TokenizeFile failed: %v", err)
	}
	want := []token.Type{token.Keyword, token.Identifier, token.Operator, token.Integer, token.Delimiter, token.Newline}
	if len(result.Tokens) != len(want) {
		t.Fatalf("Expected %d tokens, got %d: %v", len(want), len(result.Tokens), result.Tokens)
	}
	for i, typ := range want {
		if result.Tokens[i].Type != typ {
			t.Errorf("Token %d: expected %s, got %s", i, typ, result.Tokens[i].Type)
		}
	}
}

func TestTokenizeFileMissing(t *testing.T) {
	if _, err := TokenizeFile(filepath.Join(t.TempDir(), "missing.src")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestTokenizeSource(t *testing.T) {
	result := TokenizeSource("stdin", []byte("def f(): pass"))
	if result.File.Path != "stdin" {
		t.Errorf("Expected virtual path %q, got %q", "stdin", result.File.Path)
	}
	if len(result.Tokens) == 0 {
		t.Fatal("Expected tokens")
	}
	if result.Tokens[0].Type != token.Keyword || result.Tokens[0].Value != "def" {
		t.Errorf("Expected KEYWORD def first, got %v", result.Tokens[0])
	}
}

func TestTokenCacheRoundTrip(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	cache, err := OpenTokenCache("hybridlex-test")
	if err != nil {
		t.Fatalf("OpenTokenCache failed: %v", err)
	}

	result := TokenizeSource("a.src", []byte("x + 1"))
	key := result.File.Hash

	if _, hit, err := cache.Get(key); err != nil || hit {
		t.Fatalf("Expected clean miss, got hit=%v err=%v", hit, err)
	}
	if err := cache.Put(key, "a.src", result.Tokens); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	cached, hit, err := cache.Get(key)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !hit {
		t.Fatal("Expected cache hit after Put")
	}
	if len(cached) != len(result.Tokens) {
		t.Fatalf("Expected %d cached tokens, got %d", len(result.Tokens), len(cached))
	}
	for i := range cached {
		if cached[i] != result.Tokens[i] {
			t.Errorf("Token %d: expected %v, got %v", i, result.Tokens[i], cached[i])
		}
	}
}

func TestTokenizeFileCached(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "prog.src")
	if err := os.WriteFile(path, []byte("while (1) {}"), 0o644); err != nil {
		t.Fatal(err)
	}
	cache, err := OpenTokenCache("hybridlex-test")
	if err != nil {
		t.Fatalf("OpenTokenCache failed: %v", err)
	}

	first, hit, err := TokenizeFileCached(path, cache)
	if err != nil {
		t.Fatalf("TokenizeFileCached failed: %v", err)
	}
	if hit {
		t.Error("Expected miss on first run")
	}

	second, hit, err := TokenizeFileCached(path, cache)
	if err != nil {
		t.Fatalf("TokenizeFileCached failed: %v", err)
	}
	if !hit {
		t.Error("Expected hit on second run")
	}
	if len(first.Tokens) != len(second.Tokens) {
		t.Errorf("Expected identical token counts, got %d and %d", len(first.Tokens), len(second.Tokens))
	}
	for i := range first.Tokens {
		if first.Tokens[i] != second.Tokens[i] {
			t.Errorf("Token %d differs: %v vs %v", i, first.Tokens[i], second.Tokens[i])
		}
	}
}

func TestTokenizeFileCachedNilCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.src")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result, hit, err := TokenizeFileCached(path, nil)
	if err != nil {
		t.Fatalf("TokenizeFileCached failed: %v", err)
	}
	if hit {
		t.Error("Expected no hit with nil cache")
	}
	if len(result.Tokens) != 1 {
		t.Errorf("Expected 1 token, got %d", len(result.Tokens))
	}
}

func TestTokenCacheNilIsNoop(t *testing.T) {
	var cache *TokenCache
	if err := cache.Put([32]byte{1}, "x", nil); err != nil {
		t.Errorf("Expected nil cache Put to be a no-op, got %v", err)
	}
	if _, hit, err := cache.Get([32]byte{1}); hit || err != nil {
		t.Errorf("Expected nil cache Get to miss, got hit=%v err=%v", hit, err)
	}
}
