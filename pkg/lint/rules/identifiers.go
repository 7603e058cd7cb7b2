package rules

import (
	"fmt"
	"strings"

	"github.com/jhradilek/check-links/pkg/document"
	"github.com/jhradilek/check-links/pkg/lint"
)

// contextPlaceholder is the attribute reference an identifier must embed
// so the same module can be included in multiple assemblies without id
// collisions.
const contextPlaceholder = "{context}"

// ReusableIdentifiersRule checks that every explicit identifier embeds the
// context placeholder. One outcome is produced per extracted identifier.
type ReusableIdentifiersRule struct {
	lint.BaseRule
}

// NewReusableIdentifiersRule creates a new reusable identifiers rule.
func NewReusableIdentifiersRule() *ReusableIdentifiersRule {
	return &ReusableIdentifiersRule{
		BaseRule: lint.NewBaseRule(
			"CL006",
			"reusable-identifiers",
			"Identifiers must embed the {context} placeholder to stay reusable",
			document.Concept, document.Reference, document.Procedure, document.Assembly,
		),
	}
}

// Apply checks every extracted identifier.
func (r *ReusableIdentifiersRule) Apply(ctx *lint.RuleContext) ([]lint.Outcome, error) {
	var outcomes []lint.Outcome

	for _, id := range ctx.Doc.Identifiers() {
		if strings.Contains(id, contextPlaceholder) {
			msg := fmt.Sprintf("identifier %q includes the %s attribute", id, contextPlaceholder)
			outcomes = append(outcomes, r.Pass(ctx, msg))
			continue
		}
		msg := fmt.Sprintf("identifier %q does not include the %s attribute", id, contextPlaceholder)
		outcomes = append(outcomes, r.Fail(ctx, msg))
	}

	return outcomes, nil
}
