package main

import (
	"os"

	"github.com/schwift-lang/schwift/cmd/schwift/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
