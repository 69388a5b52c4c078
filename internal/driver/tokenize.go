// Package driver wires the scanning engine to its callers: it owns file
// loading, the tokenize entry points shared by the CLI and the HTTP server,
// and an optional disk cache of token lists.
package driver

import (
	"fmt"

	"hybridlex/internal/lexer"
	"hybridlex/internal/source"
	"hybridlex/internal/token"
)

// Result carries the outcome of tokenizing one input.
type Result struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
}

// TokenizeFile reads a file from disk and tokenizes it. A missing file is
// the one fatal, user-facing error in the tool; scanning itself cannot fail.
func TokenizeFile(path string) (*Result, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	file := fs.Get(id)
	return &Result{
		FileSet: fs,
		File:    file,
		Tokens:  lexer.Tokenize(file),
	}, nil
}

// TokenizeFileCached behaves like TokenizeFile but consults the disk cache
// before scanning and stores fresh results for the next run. hit reports
// whether the tokens came from the cache. Cache trouble is never fatal:
// a failed read counts as a miss and a failed write is dropped, since the
// scan result is in hand either way.
func TokenizeFileCached(path string, cache *TokenCache) (result *Result, hit bool, err error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	file := fs.Get(id)

	if tokens, ok, err := cache.Get(file.Hash); err == nil && ok {
		return &Result{FileSet: fs, File: file, Tokens: tokens}, true, nil
	}
	result = &Result{
		FileSet: fs,
		File:    file,
		Tokens:  lexer.Tokenize(file),
	}
	_ = cache.Put(file.Hash, file.Path, result.Tokens)
	return result, false, nil
}

// TokenizeSource tokenizes an in-memory blob (stdin, editor buffer, HTTP
// request body) under the given display name.
func TokenizeSource(name string, src []byte) *Result {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, src))
	return &Result{
		FileSet: fs,
		File:    file,
		Tokens:  lexer.Tokenize(file),
	}
}
