// Package main is the entry point for the check-links CLI.
package main

import (
	"errors"
	"os"

	"github.com/jhradilek/check-links/internal/cli"
	"github.com/jhradilek/check-links/internal/logging"

	// Import rules package to register built-in rules via init().
	_ "github.com/jhradilek/check-links/pkg/lint/rules"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, cli.ErrIssuesFound) {
		// ErrIssuesFound is just a signal for the exit code; anything
		// else deserves a log line.
		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
	}

	return cli.ExitCode(err)
}
