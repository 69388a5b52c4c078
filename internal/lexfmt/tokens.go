// Package lexfmt renders token lists for humans and machines: the ASCII
// table report shown by the CLI and the JSON shape served by the API.
package lexfmt

import (
	"sort"

	"hybridlex/internal/token"
)

// TokenOutput is the wire/display shape of one token.
type TokenOutput struct {
	Type   string `json:"type"`
	Value  string `json:"value"`
	Line   uint32 `json:"line"`
	Column uint32 `json:"column"`
}

// ToOutput converts a token into its display shape.
func ToOutput(tok token.Token) TokenOutput {
	return TokenOutput{
		Type:   tok.Type.String(),
		Value:  tok.Value,
		Line:   tok.Line,
		Column: tok.Column,
	}
}

// DropNewlines returns the tokens without NEWLINE entries. The scanning
// engine always emits them; user-facing output filters them here.
func DropNewlines(tokens []token.Token) []token.Token {
	out := make([]token.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Type == token.Newline {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// Summary counts tokens per category and returns the category names in
// sorted order for stable reports.
func Summary(tokens []token.Token) (counts map[string]int, names []string) {
	counts = make(map[string]int)
	for _, tok := range tokens {
		counts[tok.Type.String()]++
	}
	names = make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	return counts, names
}
