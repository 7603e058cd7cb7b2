package rules

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jhradilek/check-links/pkg/config"
	"github.com/jhradilek/check-links/pkg/document"
	"github.com/jhradilek/check-links/pkg/lint"
)

// ContextAttributeRule checks that every classified file defines a
// non-empty context attribute. The context attribute is what makes module
// identifiers reusable across assemblies.
type ContextAttributeRule struct {
	lint.BaseRule
}

// NewContextAttributeRule creates a new context attribute rule.
func NewContextAttributeRule() *ContextAttributeRule {
	return &ContextAttributeRule{
		BaseRule: lint.NewBaseRule(
			"CL002",
			"context-attribute",
			"Files must define a non-empty context attribute",
			document.Concept, document.Reference, document.Procedure,
			document.Assembly, document.Master, document.Attributes,
		),
	}
}

// Apply checks for a non-empty :context: definition.
func (r *ContextAttributeRule) Apply(ctx *lint.RuleContext) ([]lint.Outcome, error) {
	value, ok := ctx.Doc.Attribute("context")

	switch {
	case !ok:
		return []lint.Outcome{r.Fail(ctx, "the context attribute is not defined")}, nil
	case value == "":
		return []lint.Outcome{r.Fail(ctx, "the context attribute is defined but empty")}, nil
	default:
		msg := fmt.Sprintf("the context attribute is defined (%s)", value)
		return []lint.Outcome{r.Pass(ctx, msg)}, nil
	}
}

// NoInternalMarkerRule checks that documents do not define the internal
// editorial attribute, which marks content never meant to publish.
type NoInternalMarkerRule struct {
	lint.BaseRule
}

// NewNoInternalMarkerRule creates a new internal marker rule.
func NewNoInternalMarkerRule() *NoInternalMarkerRule {
	return &NoInternalMarkerRule{
		BaseRule: lint.NewBaseRule(
			"CL003",
			"no-internal-marker",
			"Documents must not define the internal editorial attribute",
		),
	}
}

// Apply checks that :internal: is absent.
func (r *NoInternalMarkerRule) Apply(ctx *lint.RuleContext) ([]lint.Outcome, error) {
	if _, ok := ctx.Doc.Attribute("internal"); ok {
		return []lint.Outcome{r.Fail(ctx, "the internal attribute is defined")}, nil
	}
	return []lint.Outcome{r.Pass(ctx, "the internal attribute is not defined")}, nil
}

// AttributesLocationRule checks that attributes files live under the
// canonical subpath.
type AttributesLocationRule struct {
	lint.BaseRule
}

// NewAttributesLocationRule creates a new attributes location rule.
func NewAttributesLocationRule() *AttributesLocationRule {
	return &AttributesLocationRule{
		BaseRule: lint.NewBaseRule(
			"CL009",
			"attributes-location",
			"Attributes files must live under the canonical subpath",
			document.Attributes,
		),
	}
}

// Apply checks the resolved absolute path against the canonical subpath.
func (r *AttributesLocationRule) Apply(ctx *lint.RuleContext) ([]lint.Outcome, error) {
	canonical := ctx.Config.AttributesPath
	if canonical == "" {
		canonical = config.DefaultAttributesPath
	}

	abs := filepath.ToSlash(ctx.Doc.AbsPath())
	if strings.HasSuffix(abs, "/"+canonical) || abs == canonical {
		msg := fmt.Sprintf("the file is stored in the %s location", canonical)
		return []lint.Outcome{r.Pass(ctx, msg)}, nil
	}

	msg := fmt.Sprintf("the file is not stored in the %s location", canonical)
	return []lint.Outcome{r.Fail(ctx, msg)}, nil
}
