package lexer

import (
	"hybridlex/internal/token"
)

// scanNumber consumes a maximal run of decimal digits with at most one '.'.
// The first '.' flips the token to FLOAT; a second '.' ends the run and is
// left for the dispatcher, where it scans as a delimiter ("3.1.4" is
// FLOAT "3.1", DELIMITER ".", INTEGER "4"). No signs, exponents, or radix
// prefixes.
func (lx *Lexer) scanNumber() token.Token {
	line, col := lx.cursor.Pos()
	start := lx.cursor.Mark()
	isFloat := false

	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		if ch == '.' {
			if isFloat {
				break
			}
			isFloat = true
		} else if !isDec(ch) {
			break
		}
		lx.cursor.Bump()
	}

	typ := token.Integer
	if isFloat {
		typ = token.Float
	}
	return token.Token{Type: typ, Value: lx.cursor.LexemeFrom(start), Line: line, Column: col}
}
