// Package main provides the lutlib command.
package main

import (
	"os"

	"github.com/leapstack-labs/lutlib/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
