package lexer

import (
	"hybridlex/internal/token"
)

// scanIdentOrKeyword consumes a maximal run of letters, digits, and
// underscores, then classifies it with an exact lookup against the keyword
// set. Matching is whole-word and case-sensitive: "If" is an identifier.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	line, col := lx.cursor.Pos()
	start := lx.cursor.Mark()

	for !lx.cursor.EOF() && isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	word := lx.cursor.LexemeFrom(start)
	typ := token.Identifier
	if token.LookupKeyword(word) {
		typ = token.Keyword
	}
	return token.Token{Type: typ, Value: word, Line: line, Column: col}
}
