package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/schwift-lang/schwift/internal/schwift"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse statements and expressions interactively",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runPrompt(schwift.NewSimpleReporter(os.Stderr))
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// runPrompt reads one line at a time and echoes the parsed form back with
// its span. A line that is not a statement is retried as an expression, so
// bare expressions work at the prompt.
func runPrompt(reporter schwift.Reporter) {
	printer := new(schwift.Printer)
	s := bufio.NewScanner(os.Stdin)
	s.Split(bufio.ScanLines)
	for {
		fmt.Print("> ")
		if !s.Scan() {
			break
		}
		line := s.Text()
		if line == "" {
			continue
		}
		if stmt, err := schwift.NewParser(line).ParseStatement(); err == nil {
			fmt.Printf("[%d:%d] %s\n", stmt.Start, stmt.End, printer.PrintStatement(stmt))
			continue
		}
		expr, err := schwift.NewParser(line).ParseExpression()
		if err != nil {
			reporter.Report(err)
			reporter.Reset()
			continue
		}
		fmt.Println(printer.PrintExpr(expr))
	}
	exitOnError(s.Err(), 1)
}
