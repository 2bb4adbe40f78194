package main

import (
	"os"

	"github.com/pqrs-org/verstamp/internal/cli"
)

// Build metadata (set via ldflags during build)
var (
	gitCommit = "unknown"
	buildDate = "unknown"
)

func main() {
	cli.GitCommit = gitCommit
	cli.BuildDate = buildDate

	os.Exit(cli.Execute())
}
