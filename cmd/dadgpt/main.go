// Package main provides the entry point for the dadgpt CLI.
package main

import (
	"fmt"
	"os"

	"github.com/PatriceDouge/dadgpt/cmd/dadgpt/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
