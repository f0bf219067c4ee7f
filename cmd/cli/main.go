// Package main is the entry point for the sitecost CLI.
package main

import (
	"os"

	"sitegen-cost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
