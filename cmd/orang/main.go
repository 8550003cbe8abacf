// Package main is the entry point for the orang CLI tool.
package main

import (
	"os"

	"github.com/Rynaret/Orang/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
