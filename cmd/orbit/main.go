// Package main is the entry point for the Orbit CLI.
// Orbit CLI provides command-line access to an Orbit Platform account:
// sign-up, sign-in, profile management, and sign-out.
package main

import (
	"os"

	"github.com/orbit-hq/orbit-cli/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
