// Package report accumulates validation outcomes across a run and renders
// the line-oriented report.
package report

import (
	"fmt"
	"io"

	"github.com/jhradilek/check-links/internal/ui/pretty"
	"github.com/jhradilek/check-links/pkg/lint"
)

// Options controls report rendering.
type Options struct {
	// Writer receives the report. Defaults to io.Discard when nil.
	Writer io.Writer

	// Verbose includes pass results; passes are otherwise counted
	// silently.
	Verbose bool

	// Color controls colorized output: "auto", "always", "never".
	Color string
}

// Report is the process-wide accumulator for check outcomes.
//
// Failures print immediately as they are recorded so output ordering
// matches evaluation order; passes print only in verbose mode. The run
// succeeds iff no issues were recorded.
type Report struct {
	checked int
	issues  int

	out     io.Writer
	verbose bool
	styles  *pretty.Styles
}

// New creates a Report with the given options.
func New(opts Options) *Report {
	out := opts.Writer
	if out == nil {
		out = io.Discard
	}
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &Report{
		out:     out,
		verbose: opts.Verbose,
		styles:  pretty.NewStyles(colorEnabled),
	}
}

// Record counts the outcome and prints it according to the verbosity
// policy. It implements lint.Sink.
func (r *Report) Record(o lint.Outcome) {
	r.checked++

	if o.Failed() {
		r.issues++
		fmt.Fprintf(r.out, "  %s  %s\n", r.styles.Fail.Render("fail"), o.Message)
		return
	}

	if r.verbose {
		fmt.Fprintf(r.out, "  %s  %s\n", r.styles.Pass.Render("pass"), o.Message)
	}
}

// Checked returns the total number of recorded outcomes.
func (r *Report) Checked() int {
	return r.checked
}

// Issues returns the number of recorded failures. Issues never exceeds
// Checked.
func (r *Report) Issues() int {
	return r.issues
}

// Success reports whether the entire run completed without issues.
func (r *Report) Success() bool {
	return r.issues == 0
}

// PrintHeader writes the per-document header line.
func (r *Report) PrintHeader(path string) {
	fmt.Fprintf(r.out, "Testing file: %s\n", r.styles.FilePath.Render(path))
}

// PrintSummary writes the trailing totals line.
func (r *Report) PrintSummary() {
	style := r.styles.Success
	if r.issues > 0 {
		style = r.styles.Failure
	}
	summary := fmt.Sprintf("Checked %d item(s), found %d problem(s).", r.checked, r.issues)
	fmt.Fprintf(r.out, "\n%s\n", style.Render(summary))
}

// compile-time interface check.
var _ lint.Sink = (*Report)(nil)
