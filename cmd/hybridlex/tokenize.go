package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hybridlex/internal/driver"
	"hybridlex/internal/lexfmt"
	"hybridlex/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file",
	Short: "Tokenize a source file",
	Long:  `Tokenize breaks a source file into its constituent tokens and prints a report.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "", "output format (table|json); defaults from hybridlex.toml")
	tokenizeCmd.Flags().Bool("all", false, "include NEWLINE tokens in the output")
	tokenizeCmd.Flags().Bool("cache", false, "reuse cached results for unchanged files")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format == "" {
		format = cfg.Output.Format
	}
	showAll, _ := cmd.Flags().GetBool("all")
	useCache, _ := cmd.Flags().GetBool("cache")

	var tokens []token.Token
	if useCache {
		cache, err := driver.OpenTokenCache("hybridlex")
		if err != nil && !quiet(cmd) {
			fmt.Fprintf(os.Stderr, "warning: token cache unavailable: %v\n", err)
		}
		result, _, err := driver.TokenizeFileCached(filePath, cache)
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
		tokens = result.Tokens
	} else {
		result, err := driver.TokenizeFile(filePath)
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
		tokens = result.Tokens
	}

	if !showAll {
		tokens = lexfmt.DropNewlines(tokens)
	}

	switch format {
	case "table":
		if !quiet(cmd) {
			fmt.Fprintf(os.Stderr, "[*] Reading file: %s\n", filePath)
		}
		return lexfmt.WriteTable(os.Stdout, tokens, filePath, lexfmt.TableOpts{Color: useColor(cmd)})
	case "json":
		return lexfmt.WriteJSON(os.Stdout, tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
