package runner

import "github.com/jhradilek/check-links/pkg/lint"

// FileOutcome wraps a per-document result with path metadata.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Result contains the validation result for this file.
	// Nil when the file could not be processed.
	Result *lint.DocumentResult

	// Error is set if the file could not be read or validated.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully validated.
	FilesProcessed int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// FilesWithIssues is the number of files with at least one failed check.
	FilesWithIssues int

	// ChecksTotal is the total number of checks evaluated across all files.
	ChecksTotal int

	// IssuesTotal is the total number of failed checks across all files.
	IssuesTotal int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file, ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasIssues reports whether any failed checks occurred.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.IssuesTotal > 0
}

// HasErrors reports whether any file failed to process.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.ChecksTotal += len(outcome.Result.Outcomes)

	if issues := outcome.Result.Issues(); issues > 0 {
		r.Stats.IssuesTotal += issues
		r.Stats.FilesWithIssues++
	}
}
