// Package lexer implements the scanning engine for the hybrid C/Python
// language: a forward-only cursor, one sub-scanner per token category, and
// a dispatch loop that picks a sub-scanner from the current character.
//
// Scanning never fails. Unterminated strings and block comments are emitted
// with whatever was captured, and any character no category claims becomes
// a single UNKNOWN token, so the loop always makes progress.
package lexer

import (
	"hybridlex/internal/source"
	"hybridlex/internal/token"
)

// Lexer scans one file into tokens. It holds no state besides the cursor,
// so separate Tokenize calls on separate Lexers are fully independent.
type Lexer struct {
	file   *source.File
	cursor Cursor
}

// New creates a lexer positioned at the start of the file.
func New(file *source.File) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
	}
}

// Tokenize scans the whole file and returns the ordered token sequence.
func Tokenize(file *source.File) []token.Token {
	return New(file).Tokenize()
}

// Tokenize drains the lexer, returning every remaining token in order.
// NEWLINE tokens are included; presentation layers filter them.
func (lx *Lexer) Tokenize() []token.Token {
	tokens := make([]token.Token, 0, 64)
	for {
		tok, ok := lx.Next()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// Next skips horizontal whitespace and scans one token. It returns ok=false
// once the input is exhausted.
//
// The trigger tests run in fixed priority order: newline, preprocessor,
// line comment, block comment, number, identifier/keyword, string, then
// operator/delimiter/unknown. A leading '#' is always a preprocessor
// directive, never a Python-style comment; that asymmetry is deliberate.
func (lx *Lexer) Next() (token.Token, bool) {
	lx.skipWhitespace()
	if lx.cursor.EOF() {
		return token.Token{}, false
	}

	ch := lx.cursor.Peek()
	switch {
	case ch == '\n':
		return lx.scanNewline(), true
	case ch == '#':
		return lx.scanPreprocessor(), true
	case ch == '/' && lx.cursor.PeekNext() == '/':
		return lx.scanLineComment(), true
	case ch == '/' && lx.cursor.PeekNext() == '*':
		return lx.scanBlockComment(), true
	case isDec(ch):
		return lx.scanNumber(), true
	case isIdentStart(ch):
		return lx.scanIdentOrKeyword(), true
	case ch == '"' || ch == '\'':
		return lx.scanString(), true
	default:
		return lx.scanOperatorOrPunct(), true
	}
}

// skipWhitespace consumes spaces, tabs, and carriage returns. Newlines are
// significant and stay for scanNewline.
func (lx *Lexer) skipWhitespace() {
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\r':
			lx.cursor.Bump()
		default:
			return
		}
	}
}
