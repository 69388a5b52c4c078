package lexer

import (
	"hybridlex/internal/token"
)

// scanString consumes a quoted literal. The opening quote character (either
// '"' or '\'') is the only terminator; the other quote kind passes through
// verbatim. A backslash carries the following character without interpreting
// the escape, so \" does not close a double-quoted string. If the input ends
// before the closing quote the token is still emitted with what was captured.
// The value includes the opening and, when present, closing quote.
func (lx *Lexer) scanString() token.Token {
	line, col := lx.cursor.Pos()
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()

	for !lx.cursor.EOF() && lx.cursor.Peek() != quote {
		if lx.cursor.Peek() == '\\' {
			lx.cursor.Bump()
		}
		if !lx.cursor.EOF() {
			lx.cursor.Bump()
		}
	}
	if !lx.cursor.EOF() {
		lx.cursor.Bump() // closing quote
	}

	return token.Token{Type: token.String, Value: lx.cursor.LexemeFrom(start), Line: line, Column: col}
}
