package main

import (
	"fmt"
	"os"

	"github.com/sheetbatch/sheetbatch/commands"
)

func main() {
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\n   ERROR: %v\n\n", err)
		os.Exit(1)
	}
}
