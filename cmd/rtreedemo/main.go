// Package main provides the entry point for the rtreedemo CLI.
package main

import (
	"os"

	"github.com/gogama/spatial/cmd/rtreedemo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
