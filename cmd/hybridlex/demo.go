package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"hybridlex/internal/driver"
	"hybridlex/internal/lexfmt"
)

// The classic demo program: C-style code with a preprocessor directive,
// both comment styles, and operator soup.
const demoSource = `#include <stdio.h>

// Sample program
int main() {
    int x = 10;
    float pi = 3.14;
    char *msg = "Hello, World!";

    if (x >= 5 && pi != 0) {
        printf("%s\n", msg);
        x++;
    }

    /* Multi-line
       comment */
    return 0;
}`

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Tokenize an embedded sample program",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func runDemo(cmd *cobra.Command, _ []string) error {
	if !quiet(cmd) {
		fmt.Println("[*] Running demo with sample C code...")
		fmt.Println()
		fmt.Println("--- SOURCE CODE ---")
		for i, line := range strings.Split(demoSource, "\n") {
			fmt.Printf("%3d | %s\n", i+1, line)
		}
		fmt.Println("--- END SOURCE ---")
	}

	result := driver.TokenizeSource("demo_sample.c", []byte(demoSource))
	tokens := lexfmt.DropNewlines(result.Tokens)
	return lexfmt.WriteTable(os.Stdout, tokens, "demo_sample.c", lexfmt.TableOpts{Color: useColor(cmd)})
}
