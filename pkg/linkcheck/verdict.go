// Package linkcheck discovers external hyperlink targets in documentation
// content and probes their liveness over the network.
package linkcheck

// Verdict is the tri-state reachability classification of a link.
type Verdict string

const (
	// VerdictReachable means the target answered an HTTP probe.
	VerdictReachable Verdict = "reachable"

	// VerdictUnreachable means every probe attempt failed.
	VerdictUnreachable Verdict = "unreachable"

	// VerdictIgnored means the target was excluded from probing by
	// static pattern (non-network scheme, local or loopback host).
	// No network call is ever made for an ignored link.
	VerdictIgnored Verdict = "ignored"
)

// Tag returns the fixed-width status tag used in report output.
func (v Verdict) Tag() string {
	switch v {
	case VerdictReachable:
		return "PASSED"
	case VerdictUnreachable:
		return "FAILED"
	default:
		return "IGNORED"
	}
}

// Result pairs a probed URL with its verdict.
type Result struct {
	// URL is the link target.
	URL string

	// Verdict is the terminal classification.
	Verdict Verdict

	// Err is the last probe error for unreachable targets.
	Err error
}
