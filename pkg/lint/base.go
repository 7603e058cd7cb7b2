package lint

import "github.com/jhradilek/check-links/pkg/document"

// BaseRule provides a default implementation of the Rule interface.
// Embed this in rule implementations and override methods as needed.
//
// Fields are unexported to avoid stutter and name collisions with interface
// methods. Use NewBaseRule.
type BaseRule struct {
	id    string          // Unique identifier (e.g., "CL001")
	name  string          // Human-readable name
	desc  string          // Detailed description
	types []document.Type // Applicable document types; empty means all
}

// NewBaseRule creates a BaseRule applicable to the given document types.
// With no types the rule applies to every document, including unknown.
func NewBaseRule(id, name, desc string, types ...document.Type) BaseRule {
	return BaseRule{
		id:    id,
		name:  name,
		desc:  desc,
		types: types,
	}
}

// ID returns the unique identifier for this rule.
func (r *BaseRule) ID() string {
	return r.id
}

// Name returns the human-readable name of the rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns a detailed description of what the rule checks.
func (r *BaseRule) Description() string {
	return r.desc
}

// AppliesTo reports whether the rule runs for the given document type.
func (r *BaseRule) AppliesTo(t document.Type) bool {
	if len(r.types) == 0 {
		return true
	}
	for _, candidate := range r.types {
		if candidate == t {
			return true
		}
	}
	return false
}

// Types returns the document types the rule is restricted to.
// Empty means the rule applies to all types.
func (r *BaseRule) Types() []document.Type {
	return r.types
}

// Apply must be overridden by concrete rule implementations.
// The default implementation returns no outcomes.
func (r *BaseRule) Apply(_ *RuleContext) ([]Outcome, error) {
	return nil, nil
}

// Pass builds a passing outcome attributed to this rule.
func (r *BaseRule) Pass(ctx *RuleContext, message string) Outcome {
	return r.outcome(ctx, StatusPass, message)
}

// Fail builds a failing outcome attributed to this rule.
func (r *BaseRule) Fail(ctx *RuleContext, message string) Outcome {
	return r.outcome(ctx, StatusFail, message)
}

func (r *BaseRule) outcome(ctx *RuleContext, status Status, message string) Outcome {
	o := Outcome{
		RuleID:   r.id,
		RuleName: r.name,
		Status:   status,
		Message:  message,
	}
	if ctx != nil && ctx.Doc != nil {
		o.Path = ctx.Doc.Path
	}
	return o
}
