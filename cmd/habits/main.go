// cmd/habits/main.go
//
// Entry point for the habits command-line tool.

package main

import (
	"os"

	"github.com/kingrea/habits/internal/cli"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
