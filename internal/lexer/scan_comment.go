package lexer

import (
	"hybridlex/internal/token"
)

// scanLineComment consumes "//" and everything up to, but not including,
// the next newline or end of input.
func (lx *Lexer) scanLineComment() token.Token {
	line, col := lx.cursor.Pos()
	start := lx.cursor.Mark()

	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	return token.Token{Type: token.Comment, Value: lx.cursor.LexemeFrom(start), Line: line, Column: col}
}

// scanBlockComment consumes "/*" up to and including the first "*/".
// No nesting. If "*/" never appears the comment runs to end of input and is
// emitted anyway.
func (lx *Lexer) scanBlockComment() token.Token {
	line, col := lx.cursor.Pos()
	start := lx.cursor.Mark()

	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '*'
	for !lx.cursor.EOF() {
		if lx.cursor.Peek() == '*' && lx.cursor.PeekNext() == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			break
		}
		lx.cursor.Bump()
	}
	return token.Token{Type: token.Comment, Value: lx.cursor.LexemeFrom(start), Line: line, Column: col}
}

// scanPreprocessor consumes a '#' directive up to, but not including, the
// next newline or end of input. A leading '#' always lands here; the
// dispatcher never classifies it as a comment.
func (lx *Lexer) scanPreprocessor() token.Token {
	line, col := lx.cursor.Pos()
	start := lx.cursor.Mark()

	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	return token.Token{Type: token.Preprocessor, Value: lx.cursor.LexemeFrom(start), Line: line, Column: col}
}

// NewlineValue is the two-character text `\n` carried by NEWLINE tokens,
// matching what the report and API layers print.
const NewlineValue = `\n`

// scanNewline emits a NEWLINE token and steps past the '\n'.
func (lx *Lexer) scanNewline() token.Token {
	line, col := lx.cursor.Pos()
	lx.cursor.Bump()
	return token.Token{Type: token.Newline, Value: NewlineValue, Line: line, Column: col}
}
