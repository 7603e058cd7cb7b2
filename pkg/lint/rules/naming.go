package rules

import (
	"fmt"
	"path/filepath"

	"github.com/jhradilek/check-links/pkg/document"
	"github.com/jhradilek/check-links/pkg/lint"
)

// NamingConventionRule checks that a file name signals its document type.
type NamingConventionRule struct {
	lint.BaseRule
}

// NewNamingConventionRule creates a new naming convention rule.
func NewNamingConventionRule() *NamingConventionRule {
	return &NamingConventionRule{
		BaseRule: lint.NewBaseRule(
			"CL001",
			"naming-convention",
			"File names must follow the modular documentation naming conventions",
		),
	}
}

// Apply checks the inferred document type.
func (r *NamingConventionRule) Apply(ctx *lint.RuleContext) ([]lint.Outcome, error) {
	base := filepath.Base(ctx.Doc.Path)

	if ctx.Doc.Type() == document.Unknown {
		msg := fmt.Sprintf("%s does not follow file naming conventions", base)
		return []lint.Outcome{r.Fail(ctx, msg)}, nil
	}

	msg := fmt.Sprintf("%s follows file naming conventions (%s)", base, ctx.Doc.Type())
	return []lint.Outcome{r.Pass(ctx, msg)}, nil
}
