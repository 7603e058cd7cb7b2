// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, hierarchical
// merging, and environment variable support.
package configloader

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/jhradilek/check-links/internal/logging"
	"github.com/jhradilek/check-links/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	ExplicitPath string

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. Environment variables (CHECK_LINKS_*)
//  2. Explicit config file (opts.ExplicitPath)
//  3. Project config (.check-links.yml upward search)
//  4. User config ($XDG_CONFIG_HOME/check-links/config.yaml)
//  5. System config (/etc/check-links/config.yaml)
//  6. Defaults
//
// CLI flags outrank everything here but are applied by the command
// layer, where flag presence is known.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}
	cfg := config.NewConfig()

	layers := []string{paths.System, paths.User, paths.Project, paths.Explicit}
	for _, path := range layers {
		if path == "" {
			continue
		}
		layer, err := loadConfigFile(path)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
		cfg = merge(cfg, layer)
		result.LoadedFrom = append(result.LoadedFrom, path)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}
	result.Warnings = append(result.Warnings, validation.Warnings...)

	logging.FromContext(ctx).Debug("configuration resolved",
		logging.FieldPaths, result.LoadedFrom,
	)

	result.Config = cfg
	return result, nil
}

// loadConfigFile loads one configuration layer from a YAML file.
// Unknown keys are rejected so typos fail loudly instead of being
// silently ignored.
func loadConfigFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return config.FromYAML(content)
}

// Interactive reports whether the process is attached to a terminal on
// both stdin and stderr. Non-interactive runs (CI, pipes) suppress
// advisory warnings.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
}
