package cmd

import (
	"fmt"
	"os"

	"github.com/schwift-lang/schwift/internal/schwift"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [script]",
	Short: "Parse a script and dump its statements with spans",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		source, err := os.ReadFile(args[0])
		exitOnError(err, 1)

		reporter := schwift.NewSimpleReporter(os.Stderr)
		parser := schwift.NewParser(string(source))
		stmts, err := parser.Parse()
		if err != nil {
			reporter.Report(err)
			os.Exit(65)
		}

		printer := new(schwift.Printer)
		for _, stmt := range stmts {
			fmt.Printf("[%d:%d] %s\n", stmt.Start, stmt.End, printer.PrintStatement(stmt))
		}
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func exitOnError(err error, status int) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(status)
	}
}
