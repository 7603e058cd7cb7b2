package cli

import (
	"errors"
	"os"

	"github.com/jhradilek/check-links/pkg/fsutil"
)

// Exit codes for check-links. The file-access codes mirror the usual
// errno values so scripted callers can tell failure modes apart.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitIssues indicates validation completed but found problems,
	// or a generic failure.
	ExitIssues = 1

	// ExitNotFound indicates an input file does not exist.
	ExitNotFound = 2

	// ExitPermissionDenied indicates an input file could not be read.
	ExitPermissionDenied = 13

	// ExitNotRegular indicates an input path is not a regular file.
	ExitNotRegular = 21

	// ExitInvalidArgs indicates invalid command-line usage.
	ExitInvalidArgs = 22
)

// ErrIssuesFound is returned when validation finds problems.
var ErrIssuesFound = errors.New("issues found")

// ErrInvalidArgs is returned for command-line usage errors.
var ErrInvalidArgs = errors.New("invalid arguments")

// ExitCode maps an error returned from command execution to a process
// exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, os.ErrNotExist):
		return ExitNotFound
	case errors.Is(err, fsutil.ErrPermissionDenied) || errors.Is(err, os.ErrPermission):
		return ExitPermissionDenied
	case errors.Is(err, fsutil.ErrNotRegular):
		return ExitNotRegular
	case errors.Is(err, fsutil.ErrWrongExtension) || errors.Is(err, ErrInvalidArgs):
		return ExitInvalidArgs
	default:
		return ExitIssues
	}
}
