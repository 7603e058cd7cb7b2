// Package runner provides multi-file validation orchestration.
package runner

import "github.com/jhradilek/check-links/pkg/config"

// Options controls multi-file validation behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to
	// process. If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading
	// dot) considered AsciiDoc. Defaults via DefaultExtensions().
	Extensions []string

	// ExcludeGlobs are glob patterns used to skip files or directories,
	// relative to WorkingDir. These merge ignore rules from config and
	// CLI flags.
	ExcludeGlobs []string

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// DefaultExtensions returns the default set of AsciiDoc file extensions.
func DefaultExtensions() []string {
	return []string{".adoc", ".asciidoc"}
}

// effectiveExtensions returns the extensions to use, defaulting if empty.
func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
