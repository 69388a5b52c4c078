package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"hybridlex/internal/token"
)

// Current schema version - increment when cachePayload format changes.
const cacheSchemaVersion uint16 = 1

// TokenCache stores token lists on disk keyed by the sha256 of the source
// content, so re-tokenizing an unchanged file is a read instead of a scan.
// Thread-safe for concurrent access.
type TokenCache struct {
	mu  sync.RWMutex
	dir string
}

type cachedToken struct {
	Type   uint8
	Value  string
	Line   uint32
	Column uint32
}

type cachePayload struct {
	// Schema version for safe invalidation when the format changes
	Schema uint16

	// Display name of the input the tokens came from
	Path string

	Tokens []cachedToken
}

// OpenTokenCache initializes and returns a disk cache at the standard
// location (XDG_CACHE_HOME or ~/.cache) under the given app name.
func OpenTokenCache(app string) (*TokenCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &TokenCache{dir: dir}, nil
}

func (c *TokenCache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "tokens", hexKey+".mp")
}

// Put serializes and writes a token list to the disk cache.
func (c *TokenCache) Put(key [32]byte, path string, tokens []token.Token) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := cachePayload{
		Schema: cacheSchemaVersion,
		Path:   path,
		Tokens: make([]cachedToken, 0, len(tokens)),
	}
	for _, tok := range tokens {
		payload.Tokens = append(payload.Tokens, cachedToken{
			Type:   uint8(tok.Type),
			Value:  tok.Value,
			Line:   tok.Line,
			Column: tok.Column,
		})
	}

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// atomic replace
	return os.Rename(f.Name(), p)
}

// Get reads a cached token list. A missing entry or a schema mismatch is a
// miss, not an error.
func (c *TokenCache) Get(key [32]byte) ([]token.Token, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var payload cachePayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, fmt.Errorf("corrupt cache entry: %w", err)
	}
	if payload.Schema != cacheSchemaVersion {
		return nil, false, nil
	}

	tokens := make([]token.Token, 0, len(payload.Tokens))
	for _, ct := range payload.Tokens {
		tokens = append(tokens, token.Token{
			Type:   token.Type(ct.Type),
			Value:  ct.Value,
			Line:   ct.Line,
			Column: ct.Column,
		})
	}
	return tokens, true, nil
}
