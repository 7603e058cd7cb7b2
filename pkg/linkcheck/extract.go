package linkcheck

import (
	"net/url"
	"regexp"
	"strings"
)

// urlPattern matches the URL shapes that appear in documentation source.
// It deliberately over-matches into trailing punctuation, which
// trimTrailing then strips; markup rarely delimits links cleanly.
var urlPattern = regexp.MustCompile(`(?:(?:https?|ftp|file)://|mailto:)[^\s<>\[\]"'` + "`" + `]+`)

// trailingJunk is punctuation that belongs to the surrounding sentence or
// markup, not the URL. A trailing slash is dropped with it so the same
// page is never probed twice under two spellings.
const trailingJunk = ".,;:!?)*_/"

// Extract returns every candidate URL found in content, deduplicated with
// order-stable set semantics: each unique URL appears once, at the
// position of its first occurrence. Placeholder and local hosts are
// dropped here; this stage performs no network I/O.
func Extract(content string) []string {
	matches := urlPattern.FindAllString(content, -1)

	seen := make(map[string]struct{}, len(matches))
	var urls []string

	for _, match := range matches {
		candidate := trimTrailing(match)
		if candidate == "" {
			continue
		}
		if isPlaceholder(candidate) {
			continue
		}
		if _, ok := seen[candidate]; ok {
			continue
		}
		seen[candidate] = struct{}{}
		urls = append(urls, candidate)
	}

	return urls
}

func trimTrailing(raw string) string {
	return strings.TrimRight(raw, trailingJunk)
}

// placeholderSuffixes are the reserved example domains (RFC 2606).
var placeholderSuffixes = []string{
	"example.com",
	"example.net",
	"example.org",
}

// isPlaceholder reports whether the URL targets a host that can never be
// a real external link: localhost, loopback addresses, or a reserved
// example domain.
func isPlaceholder(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}

	host := strings.ToLower(parsed.Hostname())
	if isLocalHost(host) {
		return true
	}

	for _, suffix := range placeholderSuffixes {
		if host == suffix || strings.HasSuffix(host, "."+suffix) {
			return true
		}
	}

	return false
}

// isLocalHost reports whether the host names the local machine.
func isLocalHost(host string) bool {
	if host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return true
	}
	if host == "::1" || host == "0:0:0:0:0:0:0:1" {
		return true
	}
	return strings.HasPrefix(host, "127.")
}
