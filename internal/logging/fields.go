// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"

	// Document fields.
	FieldDocType = "doc_type"
	FieldRule    = "rule"
	FieldFormat  = "format"

	// Statistics fields.
	FieldChecked = "checked"
	FieldIssues  = "issues"

	// Link checker fields.
	FieldURL     = "url"
	FieldLinks   = "links"
	FieldWorkers = "workers"
	FieldVerdict = "verdict"
	FieldAttempt = "attempt"
)
