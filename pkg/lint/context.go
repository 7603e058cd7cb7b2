package lint

import (
	"context"

	"github.com/jhradilek/check-links/pkg/config"
	"github.com/jhradilek/check-links/pkg/document"
)

// RuleContext provides all context needed by a rule to perform a check.
//
// Design note: RuleContext stores context.Context as a field (Ctx) rather
// than passing it as a method parameter. This is acceptable because
// RuleContext is a short-lived parameter object created per-rule-invocation,
// not a long-lived struct. It keeps the Rule interface to a single Apply
// method while still providing cancellation support via Cancelled().
type RuleContext struct {
	// Ctx is the context for cancellation.
	Ctx context.Context

	// Doc is the document under check.
	Doc *document.Document

	// Config is the resolved configuration.
	Config *config.Config
}

// NewRuleContext creates a RuleContext for the given document and
// configuration.
func NewRuleContext(ctx context.Context, doc *document.Document, cfg *config.Config) *RuleContext {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &RuleContext{
		Ctx:    ctx,
		Doc:    doc,
		Config: cfg,
	}
}

// Cancelled returns true if the context has been cancelled.
func (rc *RuleContext) Cancelled() bool {
	select {
	case <-rc.Ctx.Done():
		return true
	default:
		return false
	}
}
