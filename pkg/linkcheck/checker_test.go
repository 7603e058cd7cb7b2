package linkcheck

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProber returns canned verdicts keyed by URL and records the set
// of URLs it was asked about.
type stubProber struct {
	verdicts map[string]Verdict

	mu     sync.Mutex
	probed []string
}

func (s *stubProber) Probe(_ context.Context, raw string) Result {
	s.mu.Lock()
	s.probed = append(s.probed, raw)
	s.mu.Unlock()

	verdict, ok := s.verdicts[raw]
	if !ok {
		verdict = VerdictReachable
	}
	return Result{URL: raw, Verdict: verdict}
}

func TestChecker_SummaryCounts(t *testing.T) {
	prober := &stubProber{verdicts: map[string]Verdict{
		"https://a.test/":   VerdictReachable,
		"https://b.test/":   VerdictUnreachable,
		"mailto:c@d.test":   VerdictIgnored,
		"https://e.test/ok": VerdictReachable,
	}}

	checker := NewChecker(prober, Options{Color: "never"})
	summary, err := checker.Run(context.Background(), []string{
		"https://a.test/", "https://b.test/", "mailto:c@d.test", "https://e.test/ok",
	})

	require.NoError(t, err)
	assert.Equal(t, 4, summary.Checked)
	assert.Equal(t, 2, summary.Reachable)
	assert.Equal(t, 1, summary.Unreachable)
	assert.Equal(t, 1, summary.Ignored)
}

func TestChecker_DefaultPrintsOnlyFailures(t *testing.T) {
	prober := &stubProber{verdicts: map[string]Verdict{
		"https://up.test/":   VerdictReachable,
		"https://down.test/": VerdictUnreachable,
		"mailto:x@y.test":    VerdictIgnored,
	}}

	var out bytes.Buffer
	checker := NewChecker(prober, Options{Writer: &out, Color: "never"})
	_, err := checker.Run(context.Background(), []string{
		"https://up.test/", "https://down.test/", "mailto:x@y.test",
	})
	require.NoError(t, err)

	lines := nonEmptyLines(out.String())
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "FAILED")
	assert.Contains(t, lines[0], "https://down.test/")
	assert.NotContains(t, out.String(), "PASSED")
	assert.NotContains(t, out.String(), "IGNORED")
}

func TestChecker_ShowAllPrintsEveryVerdict(t *testing.T) {
	prober := &stubProber{verdicts: map[string]Verdict{
		"https://up.test/":   VerdictReachable,
		"https://down.test/": VerdictUnreachable,
		"mailto:x@y.test":    VerdictIgnored,
	}}

	var out bytes.Buffer
	checker := NewChecker(prober, Options{ShowAll: true, Writer: &out, Color: "never"})
	_, err := checker.Run(context.Background(), []string{
		"https://up.test/", "https://down.test/", "mailto:x@y.test",
	})
	require.NoError(t, err)

	lines := nonEmptyLines(out.String())
	require.Len(t, lines, 3)
	assert.Contains(t, out.String(), "PASSED")
	assert.Contains(t, out.String(), "FAILED")
	assert.Contains(t, out.String(), "IGNORED")
}

func TestChecker_TagsPaddedToFixedWidth(t *testing.T) {
	prober := &stubProber{verdicts: map[string]Verdict{
		"https://up.test/":   VerdictReachable,
		"https://down.test/": VerdictUnreachable,
	}}

	var out bytes.Buffer
	checker := NewChecker(prober, Options{ShowAll: true, Writer: &out, Color: "never"})
	_, err := checker.Run(context.Background(), []string{"https://up.test/", "https://down.test/"})
	require.NoError(t, err)

	// A padded tag keeps the URL column aligned across verdicts.
	for _, line := range nonEmptyLines(out.String()) {
		idx := strings.Index(line, "https://")
		assert.Equal(t, tagWidth+1, idx, line)
	}
}

func TestChecker_SequentialPreservesOrder(t *testing.T) {
	urls := []string{
		"https://first.test/",
		"https://second.test/",
		"https://third.test/",
		"https://fourth.test/",
	}
	verdicts := make(map[string]Verdict, len(urls))
	for _, u := range urls {
		verdicts[u] = VerdictUnreachable
	}
	prober := &stubProber{verdicts: verdicts}

	var out bytes.Buffer
	checker := NewChecker(prober, Options{Workers: 1, Writer: &out, Color: "never"})
	_, err := checker.Run(context.Background(), urls)
	require.NoError(t, err)

	lines := nonEmptyLines(out.String())
	require.Len(t, lines, len(urls))
	for i, u := range urls {
		assert.Contains(t, lines[i], u)
	}
}

func TestChecker_ParallelProbesEveryURLOnce(t *testing.T) {
	urls := []string{
		"https://a.test/", "https://b.test/", "https://c.test/",
		"https://d.test/", "https://e.test/", "https://f.test/",
	}
	prober := &stubProber{verdicts: map[string]Verdict{}}

	checker := NewChecker(prober, Options{Workers: 3, Color: "never"})
	summary, err := checker.Run(context.Background(), urls)
	require.NoError(t, err)

	assert.Equal(t, len(urls), summary.Checked)
	assert.ElementsMatch(t, urls, prober.probed)
}

func TestChecker_EmptyInput(t *testing.T) {
	prober := &stubProber{}

	var out bytes.Buffer
	checker := NewChecker(prober, Options{Writer: &out, Color: "never"})
	summary, err := checker.Run(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, Summary{}, summary)
	assert.Empty(t, out.String())
	assert.Empty(t, prober.probed)
}

func nonEmptyLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
