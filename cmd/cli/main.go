// Package main is the entry point for the valve-sizing CLI.
package main

import (
	"os"

	"valve-sizing/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
