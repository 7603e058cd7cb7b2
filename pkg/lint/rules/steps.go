package rules

import (
	"fmt"

	"github.com/jhradilek/check-links/pkg/document"
	"github.com/jhradilek/check-links/pkg/lint"
)

// StepsRequiredRule checks that procedure modules contain at least one
// step.
type StepsRequiredRule struct {
	lint.BaseRule
}

// NewStepsRequiredRule creates a new steps required rule.
func NewStepsRequiredRule() *StepsRequiredRule {
	return &StepsRequiredRule{
		BaseRule: lint.NewBaseRule(
			"CL004",
			"steps-required",
			"Procedure modules must contain at least one step",
			document.Procedure,
		),
	}
}

// Apply checks for step presence.
func (r *StepsRequiredRule) Apply(ctx *lint.RuleContext) ([]lint.Outcome, error) {
	if ctx.Doc.HasSteps() {
		return []lint.Outcome{r.Pass(ctx, "the procedure module contains steps")}, nil
	}
	return []lint.Outcome{r.Fail(ctx, "the procedure module does not contain any steps")}, nil
}

// StepsForbiddenRule checks that concept and reference modules contain no
// steps; procedural content belongs in a procedure module.
type StepsForbiddenRule struct {
	lint.BaseRule
}

// NewStepsForbiddenRule creates a new steps forbidden rule.
func NewStepsForbiddenRule() *StepsForbiddenRule {
	return &StepsForbiddenRule{
		BaseRule: lint.NewBaseRule(
			"CL005",
			"steps-forbidden",
			"Concept and reference modules must not contain steps",
			document.Concept, document.Reference,
		),
	}
}

// Apply checks for step absence.
func (r *StepsForbiddenRule) Apply(ctx *lint.RuleContext) ([]lint.Outcome, error) {
	if ctx.Doc.HasSteps() {
		msg := fmt.Sprintf("the %s module contains steps", ctx.Doc.Type())
		return []lint.Outcome{r.Fail(ctx, msg)}, nil
	}
	msg := fmt.Sprintf("the %s module does not contain steps", ctx.Doc.Type())
	return []lint.Outcome{r.Pass(ctx, msg)}, nil
}
