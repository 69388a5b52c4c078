package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"hybridlex/internal/driver"
	"hybridlex/internal/lexfmt"
	"hybridlex/internal/ui"
)

var lexCmd = &cobra.Command{
	Use:   "lex",
	Short: "Tokenize code entered interactively or piped on stdin",
	Long: `Lex reads source code from the keyboard (an editor opens when stdin is a
terminal) or from a pipe, tokenizes it, and prints the report.`,
	Args: cobra.NoArgs,
	RunE: runLex,
}

func init() {
	lexCmd.Flags().String("ui", "auto", "interactive editor (auto|on|off)")
	lexCmd.Flags().String("format", "", "output format (table|json); defaults from hybridlex.toml")
}

func runLex(cmd *cobra.Command, args []string) error {
	uiFlag, _ := cmd.Flags().GetString("ui")
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	var code string
	sourceName := "stdin"
	if shouldUseEditor(mode) {
		entered, ok, err := runEditor()
		if err != nil {
			return err
		}
		if !ok {
			return nil // cancelled, nothing to report
		}
		code = entered
		sourceName = "manual input"
	} else {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		code = string(raw)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = cfg.Output.Format
	}

	result := driver.TokenizeSource(sourceName, []byte(code))
	tokens := lexfmt.DropNewlines(result.Tokens)

	switch format {
	case "table":
		return lexfmt.WriteTable(os.Stdout, tokens, sourceName, lexfmt.TableOpts{Color: useColor(cmd)})
	case "json":
		return lexfmt.WriteJSON(os.Stdout, tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func runEditor() (string, bool, error) {
	model := ui.NewEditorModel("hybridlex - enter code to tokenize")
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	final, err := program.Run()
	if err != nil {
		return "", false, fmt.Errorf("editor failed: %w", err)
	}
	code, ok := ui.Code(final)
	return code, ok, nil
}

type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return uiModeAuto, nil
	case "on":
		return uiModeOn, nil
	case "off":
		return uiModeOff, nil
	default:
		return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
}

func shouldUseEditor(mode uiMode) bool {
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	default:
		return isTerminal(os.Stdin) && isTerminal(os.Stdout)
	}
}
