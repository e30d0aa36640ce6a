// Package main provides the entry point for the orbitwatch CLI tool.
package main

import (
	"github.com/orbitwatch/orbitwatch/cmd/orbitwatch/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
