// Package config defines core configuration types for check-links.
// These types are pure data structures; loading and merging live in
// internal/configloader.
package config

import "time"

// LinksConfig controls the external-link checker.
type LinksConfig struct {
	// Timeout is the connect timeout for a single probe attempt, in
	// seconds.
	Timeout int `yaml:"timeout"`

	// Retries is the number of additional attempts after a failed probe.
	Retries int `yaml:"retries"`

	// Workers bounds the probe worker pool. 0 means one worker per URL.
	// 1 means strict sequential probing in extraction order.
	Workers int `yaml:"workers"`

	// ShowAll prints reachable and ignored links as well as unreachable
	// ones.
	ShowAll bool `yaml:"show_all"`
}

// ConnectTimeout returns the probe connect timeout as a duration.
func (l LinksConfig) ConnectTimeout() time.Duration {
	return time.Duration(l.Timeout) * time.Second
}

// Config is the root configuration structure for check-links.
type Config struct {
	// Verbose includes pass results in the validation report.
	Verbose bool `yaml:"verbose"`

	// Color controls colorized output: "auto", "always", or "never".
	Color string `yaml:"color"`

	// AttributesPath is the canonical subpath an attributes file must
	// live under.
	AttributesPath string `yaml:"attributes_path"`

	// Terminology maps deprecated terms to their replacements, extending
	// the built-in glossary.
	Terminology map[string]string `yaml:"terminology"`

	// Abbreviations maps spelled-out expansions to the abbreviation that
	// headings must use instead, extending the built-in glossary.
	Abbreviations map[string]string `yaml:"abbreviations"`

	// Ignore contains glob patterns for files to skip during discovery.
	Ignore []string `yaml:"ignore,omitempty"`

	// Links configures the link checker.
	Links LinksConfig `yaml:"links"`
}

// Probe policy defaults. Fixed retries with no backoff is the documented
// contract.
const (
	DefaultTimeout = 5
	DefaultRetries = 3
)

// DefaultAttributesPath is the canonical location for attributes files.
const DefaultAttributesPath = "meta/attributes.adoc"

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Color:          "auto",
		AttributesPath: DefaultAttributesPath,
		Terminology:    map[string]string{},
		Abbreviations:  map[string]string{},
		Links: LinksConfig{
			Timeout: DefaultTimeout,
			Retries: DefaultRetries,
		},
	}
}
