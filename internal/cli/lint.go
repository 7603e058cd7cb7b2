package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhradilek/check-links/internal/configloader"
	"github.com/jhradilek/check-links/internal/logging"
	"github.com/jhradilek/check-links/pkg/config"
	"github.com/jhradilek/check-links/pkg/lint"
	_ "github.com/jhradilek/check-links/pkg/lint/rules" // Register built-in rules
	"github.com/jhradilek/check-links/pkg/report"
	"github.com/jhradilek/check-links/pkg/runner"
)

type lintFlags struct {
	verbose bool
	ignore  []string
}

func newLintCommand() *cobra.Command {
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Validate AsciiDoc modules against documentation conventions",
		Long:  lintLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false,
		"report passed checks as well as failed ones")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to skip")

	return cmd
}

const lintLongDescription = `Validate AsciiDoc files against modular documentation conventions.

Each file is classified by its name: con_ prefixes mark concept modules,
ref_ reference modules, proc_ procedure modules, assembly_ assemblies,
and master.adoc files master books. Only the checks relevant to the
detected type run against a file.

By default, validates all .adoc files in the current directory and
subdirectories. Specify paths to validate specific files or directories.

Examples:
  check-links lint                   # Validate current directory
  check-links lint modules/          # Validate one directory
  check-links lint proc_install.adoc # Validate a single file
  check-links lint --verbose         # Include passed checks in output`

func runLint(cmd *cobra.Command, args []string, flags *lintFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.Default()

	cfg, err := resolveConfig(ctx, cmd)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = flags.verbose
	}
	cfg.Ignore = append(cfg.Ignore, flags.ignore...)

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	rep := report.New(report.Options{
		Writer:  cmd.OutOrStdout(),
		Verbose: cfg.Verbose,
		Color:   cfg.Color,
	})

	lintRunner := runner.New(lint.NewEngine(lint.DefaultRegistry))

	result, err := lintRunner.Run(ctx, runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   runner.DefaultExtensions(),
		ExcludeGlobs: cfg.Ignore,
		Config:       cfg,
	}, rep)
	if err != nil {
		return err
	}

	rep.PrintSummary()

	logger.Debug("validation finished",
		logging.FieldFiles, result.Stats.FilesProcessed,
		logging.FieldChecked, result.Stats.ChecksTotal,
		logging.FieldIssues, result.Stats.IssuesTotal,
	)

	if result.HasErrors() {
		for _, file := range result.Files {
			if file.Error != nil {
				return file.Error
			}
		}
	}

	if result.HasIssues() {
		return ErrIssuesFound
	}

	return nil
}

// resolveConfig loads the layered configuration and applies the
// persistent color flag on top.
func resolveConfig(ctx context.Context, cmd *cobra.Command) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: configPath,
	})
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	logger := logging.Default()
	if configloader.Interactive() {
		for _, warning := range loadResult.Warnings {
			logger.Warn(warning)
		}
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldPaths, loadResult.LoadedFrom)
	}

	cfg := loadResult.Config
	if cmd.Flags().Changed("color") {
		if colorMode, err := cmd.Flags().GetString("color"); err == nil {
			cfg.Color = colorMode
		}
	}

	return cfg, nil
}
