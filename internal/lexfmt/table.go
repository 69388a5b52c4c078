package lexfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"hybridlex/internal/token"
)

// Column widths of the report table, matching the classic layout:
// | TOKEN TYPE (16) | VALUE (30) | LOCATION (15) |
const (
	typeColWidth  = 16
	valueColWidth = 30
	locColWidth   = 15
	tableWidth    = 68
)

// TableOpts controls the report rendering.
type TableOpts struct {
	Color bool
}

var typeColors = map[token.Type]*color.Color{
	token.Keyword:      color.New(color.FgMagenta, color.Bold),
	token.Identifier:   color.New(color.FgCyan),
	token.Integer:      color.New(color.FgGreen),
	token.Float:        color.New(color.FgGreen),
	token.String:       color.New(color.FgYellow),
	token.Comment:      color.New(color.FgHiBlack),
	token.Preprocessor: color.New(color.FgBlue),
	token.Operator:     color.New(color.FgRed),
	token.Delimiter:    color.New(color.FgWhite),
	token.Unknown:      color.New(color.FgRed, color.Bold),
}

// WriteTable renders the token report: a header naming the source, one row
// per token, and a per-category summary. The caller decides whether NEWLINE
// tokens were filtered beforehand.
func WriteTable(w io.Writer, tokens []token.Token, sourceName string, opts TableOpts) error {
	edge := "+" + strings.Repeat("=", tableWidth) + "+"
	rule := "+" + strings.Repeat("-", tableWidth) + "+"

	fmt.Fprintln(w, edge)
	fmt.Fprintf(w, "|%s|\n", center("LEXICAL ANALYZER OUTPUT", tableWidth))
	fmt.Fprintf(w, "|%s|\n", center("Source: "+sourceName, tableWidth))
	fmt.Fprintln(w, edge)
	fmt.Fprintf(w, "| %s | %s | %s |\n",
		pad("TOKEN TYPE", typeColWidth),
		pad("VALUE", valueColWidth),
		pad("LOCATION", locColWidth))
	fmt.Fprintln(w, rule)

	for _, tok := range tokens {
		typeCell := pad(tok.Type.String(), typeColWidth)
		if opts.Color {
			if c, ok := typeColors[tok.Type]; ok {
				typeCell = c.Sprint(typeCell)
			}
		}
		loc := fmt.Sprintf("Ln %-4d Col %-4d", tok.Line, tok.Column)
		fmt.Fprintf(w, "| %s | %s | %s |\n",
			typeCell,
			pad(displayValue(tok.Value), valueColWidth),
			pad(loc, locColWidth))
	}

	counts, names := Summary(tokens)
	total := 0
	for _, name := range names {
		total += counts[name]
	}

	fmt.Fprintln(w, edge)
	fmt.Fprintf(w, "| %s |\n", pad(fmt.Sprintf("TOTAL TOKENS: %d", total), tableWidth-2))
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "| %s |\n", pad("TOKEN SUMMARY", tableWidth-2))
	fmt.Fprintln(w, rule)
	for _, name := range names {
		fmt.Fprintf(w, "| %s |\n", pad(fmt.Sprintf("  %-20s : %d", name, counts[name]), tableWidth-2))
	}
	fmt.Fprintln(w, edge)
	return nil
}

// displayValue keeps a lexeme on one table row: embedded newlines become
// the two-character escape and long values are cut with an ellipsis.
func displayValue(v string) string {
	v = strings.ReplaceAll(v, "\n", `\n`)
	v = strings.ReplaceAll(v, "\t", `\t`)
	v = strings.ReplaceAll(v, "\r", `\r`)
	if runewidth.StringWidth(v) > valueColWidth {
		v = runewidth.Truncate(v, valueColWidth, "...")
	}
	return v
}

// pad right-fills a cell to the given display width. Display width, not
// len(): lexemes may contain wide runes.
func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

func center(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
