package rules

import (
	"fmt"
	"regexp"

	"github.com/jhradilek/check-links/pkg/lint"
)

// defaultTerminology maps deprecated terms to their replacements.
// Extended by the terminology config map.
var defaultTerminology = map[string]string{
	"blacklist":   "blocklist",
	"master node": "control plane node",
	"slave":       "replica",
	"whitelist":   "allowlist",
}

// DeprecatedTerminologyRule checks that content does not use deprecated
// terms, naming the replacement in the failure message.
type DeprecatedTerminologyRule struct {
	lint.BaseRule
}

// NewDeprecatedTerminologyRule creates a new deprecated terminology rule.
func NewDeprecatedTerminologyRule() *DeprecatedTerminologyRule {
	return &DeprecatedTerminologyRule{
		BaseRule: lint.NewBaseRule(
			"CL008",
			"deprecated-terminology",
			"Content must not use deprecated terminology",
		),
	}
}

// Apply scans the content for each glossary term.
func (r *DeprecatedTerminologyRule) Apply(ctx *lint.RuleContext) ([]lint.Outcome, error) {
	glossary := mergeGlossary(defaultTerminology, ctx.Config.Terminology)
	content := ctx.Doc.Content()

	var outcomes []lint.Outcome

	for _, term := range sortedKeys(glossary) {
		pattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
		if err != nil {
			return nil, fmt.Errorf("compile terminology pattern %q: %w", term, err)
		}

		if pattern.MatchString(content) {
			msg := fmt.Sprintf("deprecated term %q found; use %q instead",
				term, glossary[term])
			outcomes = append(outcomes, r.Fail(ctx, msg))
		}
	}

	if len(outcomes) == 0 {
		outcomes = append(outcomes, r.Pass(ctx, "no deprecated terminology found"))
	}

	return outcomes, nil
}

// compile-time interface checks for the built-in rules.
var (
	_ lint.Rule = (*NamingConventionRule)(nil)
	_ lint.Rule = (*ContextAttributeRule)(nil)
	_ lint.Rule = (*NoInternalMarkerRule)(nil)
	_ lint.Rule = (*StepsRequiredRule)(nil)
	_ lint.Rule = (*StepsForbiddenRule)(nil)
	_ lint.Rule = (*ReusableIdentifiersRule)(nil)
	_ lint.Rule = (*HeadingAbbreviationsRule)(nil)
	_ lint.Rule = (*DeprecatedTerminologyRule)(nil)
	_ lint.Rule = (*AttributesLocationRule)(nil)
)
