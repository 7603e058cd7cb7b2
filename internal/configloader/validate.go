package configloader

import (
	"fmt"

	"github.com/jhradilek/check-links/pkg/config"
)

// ValidationError describes a single invalid configuration value.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// ValidationResult collects validation errors and warnings.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []string
}

// Valid reports whether the configuration has no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Validate checks a resolved configuration for invalid values.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}

	switch cfg.Color {
	case "auto", "always", "never":
	default:
		result.Errors = append(result.Errors, ValidationError{
			Field:   "color",
			Message: fmt.Sprintf("%q is not one of auto, always, never", cfg.Color),
		})
	}

	if cfg.AttributesPath == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "attributes_path",
			Message: "must not be empty",
		})
	}

	if cfg.Links.Timeout <= 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "links.timeout",
			Message: fmt.Sprintf("%d is not a positive number of seconds", cfg.Links.Timeout),
		})
	}
	if cfg.Links.Retries < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "links.retries",
			Message: fmt.Sprintf("%d must not be negative", cfg.Links.Retries),
		})
	}
	if cfg.Links.Workers < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "links.workers",
			Message: fmt.Sprintf("%d must not be negative", cfg.Links.Workers),
		})
	}

	if cfg.Links.Workers > 64 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("links.workers %d is unusually high; remote hosts may throttle probes", cfg.Links.Workers))
	}

	return result
}
