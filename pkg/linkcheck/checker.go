package linkcheck

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/jhradilek/check-links/internal/logging"
	"github.com/jhradilek/check-links/internal/ui/pretty"
)

// tagWidth pads verdict tags so explanations line up.
const tagWidth = 8

// Options controls a Checker run.
type Options struct {
	// Workers bounds the probe pool. 0 means one worker per URL;
	// 1 means strict sequential probing preserving extraction order.
	Workers int

	// ShowAll prints reachable and ignored results as well as
	// unreachable ones.
	ShowAll bool

	// Writer receives result lines. Defaults to io.Discard when nil.
	Writer io.Writer

	// Color controls colorized output: "auto", "always", "never".
	Color string
}

// Summary counts verdicts across one run.
type Summary struct {
	Checked     int
	Reachable   int
	Unreachable int
	Ignored     int
}

// URLProber resolves the verdict for one URL. *Prober is the standard
// implementation.
type URLProber interface {
	Probe(ctx context.Context, raw string) Result
}

// Checker fans a deduplicated URL set out to a prober across a bounded
// worker pool and serializes result lines back to a single output
// stream. Workers share nothing but the prober, the read-only options,
// and the mutex-guarded sink, so each URL is an independent unit of
// work.
type Checker struct {
	prober URLProber
	opts   Options
	styles *pretty.Styles

	mu      sync.Mutex
	out     io.Writer
	summary Summary
}

// NewChecker creates a Checker that probes with prober and reports
// according to opts.
func NewChecker(prober URLProber, opts Options) *Checker {
	out := opts.Writer
	if out == nil {
		out = io.Discard
	}
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &Checker{
		prober: prober,
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		out:    out,
	}
}

// Run probes every URL and returns the verdict counts, which accumulate
// across calls on the same Checker. In sequential
// mode (Workers == 1) output preserves the order of urls; in parallel
// mode output order reflects completion order. Individual probe
// failures are verdicts, not errors; Run only fails on cancellation.
func (c *Checker) Run(ctx context.Context, urls []string) (Summary, error) {
	if len(urls) == 0 {
		return c.snapshot(), nil
	}

	workers := c.opts.Workers
	if workers <= 0 || workers > len(urls) {
		workers = len(urls)
	}

	logging.FromContext(ctx).Debug("probing links",
		logging.FieldLinks, len(urls),
		logging.FieldWorkers, workers,
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for _, u := range urls {
		group.Go(func() error {
			select {
			case <-groupCtx.Done():
				return groupCtx.Err()
			default:
			}

			c.record(c.prober.Probe(groupCtx, u))
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return c.snapshot(), fmt.Errorf("link check cancelled: %w", err)
	}

	return c.snapshot(), nil
}

// record updates counters and writes the result line under one lock so
// lines are never interleaved.
func (c *Checker) record(res Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.summary.Checked++
	switch res.Verdict {
	case VerdictReachable:
		c.summary.Reachable++
	case VerdictUnreachable:
		c.summary.Unreachable++
	case VerdictIgnored:
		c.summary.Ignored++
	}

	if res.Verdict != VerdictUnreachable && !c.opts.ShowAll {
		return
	}

	// Pad before styling; ANSI escapes break % width counting.
	tag := fmt.Sprintf("%-*s", tagWidth, res.Verdict.Tag())
	fmt.Fprintf(c.out, "%s %s\n", c.verdictStyle(res.Verdict).Render(tag), res.URL)
}

func (c *Checker) verdictStyle(v Verdict) lipgloss.Style {
	switch v {
	case VerdictReachable:
		return c.styles.Reachable
	case VerdictUnreachable:
		return c.styles.Unreachable
	default:
		return c.styles.Ignored
	}
}

func (c *Checker) snapshot() Summary {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.summary
}
