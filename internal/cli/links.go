package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhradilek/check-links/internal/logging"
	"github.com/jhradilek/check-links/internal/ui/pretty"
	"github.com/jhradilek/check-links/pkg/docfmt"
	"github.com/jhradilek/check-links/pkg/document"
	"github.com/jhradilek/check-links/pkg/fsutil"
	"github.com/jhradilek/check-links/pkg/linkcheck"
)

type linksFlags struct {
	showAll  bool
	list     bool
	parallel bool
	workers  int
	expand   bool
}

func newLinksCommand() *cobra.Command {
	flags := &linksFlags{}

	cmd := &cobra.Command{
		Use:   "links <file> [files...]",
		Short: "Probe the external links in documentation files",
		Long:  linksLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLinks(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.showAll, "all", "a", false,
		"report reachable and ignored links as well as broken ones")
	cmd.Flags().BoolVarP(&flags.list, "list", "l", false,
		"list extracted links without probing them")
	cmd.Flags().BoolVarP(&flags.parallel, "parallel", "p", false,
		"probe links concurrently instead of one at a time")
	cmd.Flags().IntVarP(&flags.workers, "workers", "w", 0,
		"bound the probe pool (implies --parallel; 0 = one worker per link)")
	cmd.Flags().BoolVarP(&flags.expand, "expand", "x", false,
		"resolve XIncludes with xmllint before extracting links")

	return cmd
}

const linksLongDescription = `Extract external references from a documentation file and verify that
each one resolves.

Links are probed with a HEAD request; any HTTP response, including an
error status, counts as reachable, while connection failures after the
retry budget is exhausted are reported as broken. Localhost addresses,
well-known example domains, and mailto or file references are ignored
without probing.

DocBook files spread across XIncludes need --expand, which renders the
document with xmllint before extraction so links in included files are
visible.

Examples:
  check-links links master.adoc            # Report broken links
  check-links links --all master.adoc      # Report every link
  check-links links --list master.adoc     # Just list the links
  check-links links --parallel master.adoc # Probe concurrently
  check-links links --expand master.xml    # Expand XIncludes first`

func runLinks(cmd *cobra.Command, paths []string, flags *linksFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.Default()

	cfg, err := resolveConfig(ctx, cmd)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("all") {
		cfg.Links.ShowAll = flags.showAll
	}
	if cmd.Flags().Changed("workers") {
		cfg.Links.Workers = flags.workers
		flags.parallel = true
	}

	// Fail on a bad argument before any output is produced.
	for _, path := range paths {
		if err := fsutil.CheckExtension(path, ".adoc", ".asciidoc", ".xml"); err != nil {
			return err
		}
	}
	if flags.expand {
		if err := linkcheck.CheckExpandTool(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArgs, err)
		}
	}

	workers := 1
	if flags.parallel {
		workers = cfg.Links.Workers
	}

	checker := linkcheck.NewChecker(
		linkcheck.NewProber(cfg.Links.ConnectTimeout(), cfg.Links.Retries),
		linkcheck.Options{
			Workers: workers,
			ShowAll: cfg.Links.ShowAll,
			Writer:  cmd.OutOrStdout(),
			Color:   cfg.Color,
		},
	)

	styles := pretty.NewStyles(pretty.IsColorEnabled(cfg.Color, cmd.OutOrStdout()))
	var summary linkcheck.Summary

	for _, path := range paths {
		raw, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			return err
		}

		content, err := extractableContent(ctx, path, raw, flags.expand)
		if err != nil {
			return err
		}

		urls := linkcheck.Extract(content)
		logger.Debug("extracted links", logging.FieldPath, path, logging.FieldLinks, len(urls))

		if flags.list {
			for _, u := range urls {
				fmt.Fprintln(cmd.OutOrStdout(), u)
			}
			continue
		}

		if len(paths) > 1 {
			fmt.Fprintf(cmd.OutOrStdout(), "Testing file: %s\n", styles.FilePath.Render(path))
		}

		// The checker accumulates totals across files.
		summary, err = checker.Run(ctx, urls)
		if err != nil {
			return err
		}
	}

	if !flags.list {
		printLinksSummary(cmd, styles, summary)
	}

	// Broken links are findings, not failures; the command succeeds
	// once every file has been processed.
	return nil
}

// extractableContent returns the text the URL extractor should scan.
// AsciiDoc content is stripped of comments so commented-out links are
// not probed; DocBook content is optionally rendered through xmllint.
func extractableContent(ctx context.Context, path string, raw []byte, expand bool) (string, error) {
	if expand {
		if format := docfmt.Detect(path, raw); format != docfmt.DocBook {
			return "", fmt.Errorf("%w: --expand needs a DocBook file, got %s", ErrInvalidArgs, format)
		}
		return linkcheck.ExpandIncludes(ctx, path)
	}

	content := string(raw)
	if docfmt.Detect(path, raw) == docfmt.AsciiDoc {
		content = document.StripComments(content)
	}
	return content, nil
}

// printLinksSummary prints the closing count line.
func printLinksSummary(cmd *cobra.Command, styles *pretty.Styles, summary linkcheck.Summary) {
	line := fmt.Sprintf("Checked %d link(s), found %d broken link(s).",
		summary.Checked-summary.Ignored, summary.Unreachable)
	if summary.Unreachable > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), styles.Failure.Render(line))
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Render(line))
}
