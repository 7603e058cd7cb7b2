package runner

import (
	"context"
	"fmt"

	"github.com/jhradilek/check-links/internal/logging"
	"github.com/jhradilek/check-links/pkg/document"
	"github.com/jhradilek/check-links/pkg/fsutil"
	"github.com/jhradilek/check-links/pkg/lint"
	"github.com/jhradilek/check-links/pkg/report"
)

// Runner orchestrates multi-file validation using a lint.Engine.
//
// Files are processed sequentially in discovery order so output lines
// for one file never interleave with another's; rule checks on a single
// document are cheap enough that a worker pool would buy nothing.
type Runner struct {
	// Engine handles per-document rule evaluation.
	Engine *lint.Engine
}

// New creates a new Runner with the given engine.
func New(engine *lint.Engine) *Runner {
	return &Runner{Engine: engine}
}

// Run discovers files under opts.Paths and validates each one in order,
// streaming outcomes into rep as they are produced. A file that cannot
// be read is recorded as errored and does not stop the run.
func (r *Runner) Run(ctx context.Context, opts Options, rep *report.Report) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	logger := logging.FromContext(ctx)
	logger.Debug("discovered files", logging.FieldFiles, len(files))

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
	}
	result.Stats.FilesDiscovered = len(files)

	for _, path := range files {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("validation cancelled: %w", ctx.Err())
		default:
		}

		result.accumulate(r.checkFile(ctx, path, opts, rep))
	}

	return result, nil
}

// checkFile validates one file and returns its outcome.
func (r *Runner) checkFile(
	ctx context.Context,
	path string,
	opts Options,
	rep *report.Report,
) FileOutcome {
	raw, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		logging.FromContext(ctx).Error("cannot read file",
			logging.FieldPath, path,
			logging.FieldError, err,
		)
		return FileOutcome{Path: path, Error: err}
	}

	rep.PrintHeader(path)

	doc := document.New(path, string(raw))
	docResult, err := r.Engine.CheckDocument(ctx, doc, opts.Config, rep)
	if err != nil {
		return FileOutcome{Path: path, Result: docResult, Error: err}
	}

	for ruleID, ruleErr := range docResult.RuleErrors {
		logging.FromContext(ctx).Error("rule failed",
			logging.FieldPath, path,
			logging.FieldRule, ruleID,
			logging.FieldError, ruleErr,
		)
	}

	return FileOutcome{Path: path, Result: docResult}
}
