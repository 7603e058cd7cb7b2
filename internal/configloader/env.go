package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jhradilek/check-links/pkg/config"
)

// envVarPrefix is the prefix for all check-links environment variables.
const envVarPrefix = "CHECK_LINKS_"

// LoadFromEnv applies environment variable overrides to the
// configuration. Variables are prefixed with CHECK_LINKS_
// (e.g., CHECK_LINKS_COLOR=never).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if v, ok := lookup("COLOR"); ok {
		cfg.Color = v
	}
	if v, ok := lookup("ATTRIBUTES_PATH"); ok {
		cfg.AttributesPath = v
	}
	if v, ok := lookup("IGNORE"); ok {
		cfg.Ignore = splitList(v)
	}

	if err := envBool("VERBOSE", &cfg.Verbose); err != nil {
		return err
	}
	if err := envBool("SHOW_ALL", &cfg.Links.ShowAll); err != nil {
		return err
	}

	if err := envInt("TIMEOUT", &cfg.Links.Timeout); err != nil {
		return err
	}
	if err := envInt("RETRIES", &cfg.Links.Retries); err != nil {
		return err
	}
	if err := envInt("WORKERS", &cfg.Links.Workers); err != nil {
		return err
	}

	return nil
}

// lookup fetches a prefixed environment variable, reporting whether it
// is set to a non-empty value.
func lookup(suffix string) (string, bool) {
	value := os.Getenv(envVarPrefix + suffix)
	return value, value != ""
}

func envBool(suffix string, dst *bool) error {
	value, ok := lookup(suffix)
	if !ok {
		return nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for %s%s: %q (expected true/false/1/0)",
			envVarPrefix, suffix, value)
	}
	*dst = parsed
	return nil
}

func envInt(suffix string, dst *int) error {
	value, ok := lookup(suffix)
	if !ok {
		return nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid integer for %s%s: %q",
			envVarPrefix, suffix, value)
	}
	*dst = parsed
	return nil
}

// splitList splits a comma-separated list, trimming whitespace and
// dropping empty entries.
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
