package linkcheck

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhradilek/check-links/internal/logging"
)

// Prober determines the reachability of a single URL under the fixed
// timeout/retry policy: HEAD-style probe, IPv4 resolution only, redirects
// followed, any HTTP response counts as reachable.
type Prober struct {
	client  *http.Client
	retries int
}

// NewProber creates a Prober with the given connect timeout and retry
// budget. Retries is the number of additional attempts after the first;
// negative values mean no retries.
func NewProber(connectTimeout time.Duration, retries int) *Prober {
	if retries < 0 {
		retries = 0
	}

	dialer := &net.Dialer{Timeout: connectTimeout}
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		// Force IPv4; dual-stack targets with broken AAAA records are
		// common enough that the original tool pinned -4 as well.
		DialContext: func(ctx context.Context, _, addr string) (net.Conn, error) {
			return dialer.DialContext(ctx, "tcp4", addr)
		},
	}

	return &Prober{
		client: &http.Client{
			Transport: transport,
			// Redirects are followed by default; only cap runaway chains.
			CheckRedirect: func(_ *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return http.ErrUseLastResponse
				}
				return nil
			},
		},
		retries: retries,
	}
}

// Classify statically classifies a URL without touching the network.
// The boolean reports whether the verdict is already terminal: true
// means ignored, false means the URL needs a probe.
func Classify(raw string) (Verdict, bool) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return VerdictIgnored, true
	}

	// Only http(s) targets can be probed; mailto, file and other
	// schemes are recorded without a network call.
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
	default:
		return VerdictIgnored, true
	}

	if isLocalHost(strings.ToLower(parsed.Hostname())) {
		return VerdictIgnored, true
	}

	return "", false
}

// Probe resolves the verdict for a single URL. Non-network targets are
// ignored without any network call; everything else gets up to
// 1+retries HEAD attempts, with exhaustion classified as unreachable.
func (p *Prober) Probe(ctx context.Context, raw string) Result {
	if verdict, done := Classify(raw); done {
		return Result{URL: raw, Verdict: verdict}
	}

	return p.probeHTTP(ctx, raw)
}

// probeHTTP runs the HEAD attempt loop against a URL that passed static
// classification.
func (p *Prober) probeHTTP(ctx context.Context, raw string) Result {
	logger := logging.FromContext(ctx)

	var lastErr error
	for attempt := 0; attempt <= p.retries; attempt++ {
		select {
		case <-ctx.Done():
			return Result{URL: raw, Verdict: VerdictUnreachable, Err: ctx.Err()}
		default:
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodHead, raw, nil)
		if err != nil {
			// Malformed beyond repair; retrying cannot help.
			return Result{URL: raw, Verdict: VerdictUnreachable, Err: err}
		}

		resp, err := p.client.Do(req)
		if err == nil {
			// Any HTTP response, including 4xx/5xx, proves the target
			// is reachable.
			resp.Body.Close()
			return Result{URL: raw, Verdict: VerdictReachable}
		}

		lastErr = err
		logger.Debug("probe attempt failed",
			logging.FieldURL, raw,
			logging.FieldAttempt, attempt+1,
			logging.FieldError, err,
		)
	}

	return Result{URL: raw, Verdict: VerdictUnreachable, Err: lastErr}
}
