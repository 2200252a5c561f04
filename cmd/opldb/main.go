// Package main provides the entry point for the opldb CLI.
package main

import (
	"os"

	"github.com/gingerlifts/opldb/cmd/opldb/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
