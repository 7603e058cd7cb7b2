package configloader

import "github.com/jhradilek/check-links/pkg/config"

// merge overlays the set fields of overlay onto base and returns base.
// Scalar fields win when non-zero, glossary maps merge key-wise with
// overlay entries taking precedence, and ignore patterns accumulate.
// Boolean fields win when true; an explicit "false" at a lower layer is
// indistinguishable from an unset field, so flags that need to force a
// value off are applied by the CLI after loading.
func merge(base, overlay *config.Config) *config.Config {
	if overlay == nil {
		return base
	}

	if overlay.Verbose {
		base.Verbose = true
	}
	if overlay.Color != "" {
		base.Color = overlay.Color
	}
	if overlay.AttributesPath != "" {
		base.AttributesPath = overlay.AttributesPath
	}

	mergeGlossary(&base.Terminology, overlay.Terminology)
	mergeGlossary(&base.Abbreviations, overlay.Abbreviations)

	base.Ignore = append(base.Ignore, overlay.Ignore...)

	if overlay.Links.Timeout != 0 {
		base.Links.Timeout = overlay.Links.Timeout
	}
	if overlay.Links.Retries != 0 {
		base.Links.Retries = overlay.Links.Retries
	}
	if overlay.Links.Workers != 0 {
		base.Links.Workers = overlay.Links.Workers
	}
	if overlay.Links.ShowAll {
		base.Links.ShowAll = true
	}

	return base
}

func mergeGlossary(dst *map[string]string, src map[string]string) {
	if len(src) == 0 {
		return
	}
	if *dst == nil {
		*dst = make(map[string]string, len(src))
	}
	for k, v := range src {
		(*dst)[k] = v
	}
}
