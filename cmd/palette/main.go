// Package main provides the palette CLI: colour palettes rendered in the terminal.
package main

import (
	"os"
)

// Build-time variables (set via ldflags)
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
