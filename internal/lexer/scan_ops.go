package lexer

import (
	"strings"

	"hybridlex/internal/token"
)

// Greedy two-character operators, tried before the single-character sets.
// "//" is listed for completeness but unreachable: the line-comment trigger
// wins in the dispatcher.
var twoCharOps = map[string]struct{}{
	"==": {}, "!=": {}, "<=": {}, ">=": {},
	"&&": {}, "||": {}, "++": {}, "--": {},
	"+=": {}, "-=": {}, "*=": {}, "/=": {},
	"<<": {}, ">>": {}, "->": {}, "**": {},
	"//": {},
}

const (
	singleOps  = "+-*/%=<>!&|^~?:@"
	delimiters = "(){}[];,."
)

// scanOperatorOrPunct resolves the current character (plus one character of
// lookahead) into an OPERATOR, DELIMITER, or single-character UNKNOWN token.
// Two-character matches are exact table members only; there is no "<<=", so
// "x<<=1" scans as "<<" then "=".
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	line, col := lx.cursor.Pos()
	start := lx.cursor.Mark()

	ch := lx.cursor.Peek()
	if next := lx.cursor.PeekNext(); next != 0 {
		if _, ok := twoCharOps[string([]rune{ch, next})]; ok {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return token.Token{Type: token.Operator, Value: lx.cursor.LexemeFrom(start), Line: line, Column: col}
		}
	}

	lx.cursor.Bump()
	typ := token.Unknown
	switch {
	case strings.ContainsRune(singleOps, ch):
		typ = token.Operator
	case strings.ContainsRune(delimiters, ch):
		typ = token.Delimiter
	}
	return token.Token{Type: typ, Value: lx.cursor.LexemeFrom(start), Line: line, Column: col}
}
