package main

import (
	"os"

	"github.com/jmylchreest/keylab/cmd/keylabctl/commands"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	rootCmd := commands.NewRootCommand(version, commit, buildDate)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
