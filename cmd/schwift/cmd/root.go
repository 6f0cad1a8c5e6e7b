package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "schwift",
	Short: "Front end for the schwift scripting language",
	Long: `schwift parses schwift source text into an abstract syntax tree.
Each top-level statement carries the source span it consumed, for
diagnostics. Execution is left to an external evaluator.

Commands:
  parse    - parse a script and dump its statements with spans
  fmt      - reprint a script in canonical form
  repl     - parse statements and expressions interactively`,
}

func Execute() error {
	return rootCmd.Execute()
}
