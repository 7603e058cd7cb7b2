package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jhradilek/check-links/pkg/document"
	"github.com/jhradilek/check-links/pkg/lint"
)

// defaultAbbreviations maps spelled-out expansions to the abbreviation
// headings must use instead. Extended by the abbreviations config map.
var defaultAbbreviations = map[string]string{
	"application programming interface": "API",
	"command line interface":            "CLI",
	"graphical user interface":          "GUI",
	"virtual machine":                   "VM",
}

// HeadingAbbreviationsRule checks that headings use defined abbreviations
// rather than their expansions.
//
// The pass side is deliberately asymmetric: a pass is only recorded when
// the abbreviation itself appears in a heading. Headings that use neither
// the abbreviation nor its expansion produce no outcome, keeping the
// report free of noise.
type HeadingAbbreviationsRule struct {
	lint.BaseRule
}

// NewHeadingAbbreviationsRule creates a new heading abbreviations rule.
func NewHeadingAbbreviationsRule() *HeadingAbbreviationsRule {
	return &HeadingAbbreviationsRule{
		BaseRule: lint.NewBaseRule(
			"CL007",
			"heading-abbreviations",
			"Headings must use defined abbreviations instead of their expansions",
			document.Concept, document.Reference, document.Procedure,
			document.Assembly, document.Master, document.Attributes,
		),
	}
}

// Apply checks every heading against the abbreviation glossary.
func (r *HeadingAbbreviationsRule) Apply(ctx *lint.RuleContext) ([]lint.Outcome, error) {
	glossary := mergeGlossary(defaultAbbreviations, ctx.Config.Abbreviations)
	expansions := sortedKeys(glossary)

	var outcomes []lint.Outcome

	for _, heading := range ctx.Doc.Headings() {
		lower := strings.ToLower(heading)

		for _, expansion := range expansions {
			abbreviation := glossary[expansion]

			if strings.Contains(lower, strings.ToLower(expansion)) {
				msg := fmt.Sprintf("heading %q spells out %q; use %q",
					heading, expansion, abbreviation)
				outcomes = append(outcomes, r.Fail(ctx, msg))
				continue
			}

			if containsWord(heading, abbreviation) {
				msg := fmt.Sprintf("heading %q uses %q", heading, abbreviation)
				outcomes = append(outcomes, r.Pass(ctx, msg))
			}
		}
	}

	return outcomes, nil
}

// containsWord reports whether s contains w as a whole word, matching
// case exactly (an abbreviation in the wrong case is not the
// abbreviation).
func containsWord(s, w string) bool {
	idx := 0
	for {
		i := strings.Index(s[idx:], w)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(w)

		beforeOK := start == 0 || !isWordByte(s[start-1])
		afterOK := end == len(s) || !isWordByte(s[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// mergeGlossary overlays the user map on the built-in defaults.
func mergeGlossary(defaults, extra map[string]string) map[string]string {
	merged := make(map[string]string, len(defaults)+len(extra))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range extra {
		merged[strings.ToLower(k)] = v
	}
	return merged
}

// sortedKeys returns map keys in sorted order for deterministic output.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
