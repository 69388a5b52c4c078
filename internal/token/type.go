package token

import "fmt"

// Type represents the category of a source token.
type Type uint8

const (
	// Keyword is a reserved word from the fixed keyword set.
	Keyword Type = iota
	// Identifier is an alphanumeric/underscore run that is not a keyword.
	Identifier
	// Integer is a decimal digit run without a fractional part.
	Integer
	// Float is a decimal digit run containing one '.'.
	Float
	// String is a quoted literal, quotes included in the value.
	String
	// Comment is a // line comment or /* */ block comment, markers included.
	Comment
	// Preprocessor is a '#'-led directive captured to end of line.
	Preprocessor
	// Newline marks a '\n' in the source; presentation layers filter it.
	Newline
	// Operator is a one- or two-character operator lexeme.
	Operator
	// Delimiter is a single punctuation character: (){}[];,.
	Delimiter
	// Unknown is any character no other category claims.
	Unknown
)

var typeNames = [...]string{
	Keyword:      "KEYWORD",
	Identifier:   "IDENTIFIER",
	Integer:      "INTEGER",
	Float:        "FLOAT",
	String:       "STRING",
	Comment:      "COMMENT",
	Preprocessor: "PREPROCESSOR",
	Newline:      "NEWLINE",
	Operator:     "OPERATOR",
	Delimiter:    "DELIMITER",
	Unknown:      "UNKNOWN",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}
