// Package main provides the schemaguard CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/schemaguard/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
