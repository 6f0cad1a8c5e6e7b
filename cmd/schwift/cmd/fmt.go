package cmd

import (
	"fmt"
	"os"

	"github.com/schwift-lang/schwift/internal/schwift"
	"github.com/spf13/cobra"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [script]",
	Short: "Reprint a script in canonical form",
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
		fmt.Println(printer.PrintProgram(stmts))
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}
