package lexfmt

import (
	"encoding/json"
	"io"

	"hybridlex/internal/token"
)

// WriteJSON emits the token list as an indented JSON array of
// {type, value, line, column} objects.
func WriteJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, ToOutput(tok))
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
