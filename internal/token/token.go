package token

import "fmt"

// Token represents a single classified lexeme with its source position.
// Value is the exact source substring, fully materialized; Line and Column
// are 1-based and refer to the token's first character.
type Token struct {
	Type   Type
	Value  string
	Line   uint32
	Column uint32
}

// IsLiteral reports whether the token is a numeric or string literal.
func (t Token) IsLiteral() bool {
	switch t.Type {
	case Integer, Float, String:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool { return t.Type == Keyword }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Type == Identifier }

func (t Token) String() string {
	return fmt.Sprintf("%s %q at %d:%d", t.Type, t.Value, t.Line, t.Column)
}
