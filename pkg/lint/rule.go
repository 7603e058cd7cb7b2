// Package lint provides the rule engine, outcomes, and registry for the
// document validator.
package lint

import (
	"github.com/jhradilek/check-links/pkg/document"
)

// Status is the result of one rule evaluation against one item.
type Status string

const (
	// StatusPass indicates the checked item conforms.
	StatusPass Status = "pass"

	// StatusFail indicates the checked item violates the rule.
	StatusFail Status = "fail"
)

// Outcome represents a single recorded check result.
//
// Every evaluated rule produces exactly one Outcome per applicable
// document, or one per extracted element for per-element rules such as
// identifier checks.
type Outcome struct {
	// RuleID is the identifier of the rule that produced this outcome.
	RuleID string

	// RuleName is the human-readable name of the rule
	// (e.g., "naming-convention").
	RuleName string

	// Status is pass or fail.
	Status Status

	// Message is the human-readable explanation.
	Message string

	// Path is the file the outcome refers to.
	Path string
}

// Failed reports whether the outcome is a failure.
func (o Outcome) Failed() bool {
	return o.Status == StatusFail
}

// Rule defines the interface that all validation rules must implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "CL001").
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// AppliesTo reports whether the rule runs against documents of the
	// given type.
	AppliesTo(t document.Type) bool

	// Apply executes the rule against the given context and returns
	// outcomes.
	//
	// Rules must:
	//   - Be stateless: read the document, never mutate it.
	//   - Return one outcome per checked item.
	//   - Return error only for internal failures, not violations.
	Apply(ctx *RuleContext) ([]Outcome, error)
}
