package lint

import (
	"context"
	"fmt"

	"github.com/jhradilek/check-links/pkg/config"
	"github.com/jhradilek/check-links/pkg/document"
)

// Sink receives outcomes as they are produced. The engine streams every
// outcome immediately so output ordering matches evaluation order.
type Sink interface {
	Record(Outcome)
}

// DocumentResult contains the results of validating a single document.
type DocumentResult struct {
	// Doc is the validated document.
	Doc *document.Document

	// Outcomes contains every recorded check result, in evaluation order.
	Outcomes []Outcome

	// RuleErrors contains any internal errors from rule execution,
	// keyed by rule ID. Rule failures are outcomes, never errors.
	RuleErrors map[string]error
}

// Issues returns the number of failed outcomes.
func (dr *DocumentResult) Issues() int {
	count := 0
	for _, o := range dr.Outcomes {
		if o.Failed() {
			count++
		}
	}
	return count
}

// Engine selects and executes the rules applicable to a document.
type Engine struct {
	// Registry holds all available rules.
	Registry *Registry
}

// NewEngine creates a new Engine with the given registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{Registry: registry}
}

// CheckDocument runs every applicable rule against the document, streaming
// each outcome into sink the moment it is produced. A rule failure is
// recorded and never aborts evaluation of the remaining rules.
func (e *Engine) CheckDocument(
	ctx context.Context,
	doc *document.Document,
	cfg *config.Config,
	sink Sink,
) (*DocumentResult, error) {
	result := &DocumentResult{
		Doc:        doc,
		RuleErrors: make(map[string]error),
	}

	docType := doc.Type()

	for _, rule := range e.Registry.Rules() {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("validation cancelled: %w", ctx.Err())
		default:
		}

		if !rule.AppliesTo(docType) {
			continue
		}

		ruleCtx := NewRuleContext(ctx, doc, cfg)

		outcomes, err := rule.Apply(ruleCtx)
		if err != nil {
			result.RuleErrors[rule.ID()] = err
			continue
		}

		for i := range outcomes {
			// Ensure attribution is set for outcomes rules built by hand.
			if outcomes[i].RuleID == "" {
				outcomes[i].RuleID = rule.ID()
			}
			if outcomes[i].RuleName == "" {
				outcomes[i].RuleName = rule.Name()
			}
			if outcomes[i].Path == "" {
				outcomes[i].Path = doc.Path
			}

			if sink != nil {
				sink.Record(outcomes[i])
			}
		}

		result.Outcomes = append(result.Outcomes, outcomes...)
	}

	return result, nil
}
