package lint

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhradilek/check-links/pkg/document"
)

// recordingSink collects streamed outcomes for inspection.
type recordingSink struct {
	outcomes []Outcome
}

func (s *recordingSink) Record(o Outcome) {
	s.outcomes = append(s.outcomes, o)
}

func TestEngine_CheckDocument_SelectsByType(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&mockRule{
		id: "CL004", name: "steps-required",
		types:    []document.Type{document.Procedure},
		outcomes: []Outcome{{Status: StatusFail, Message: "no steps"}},
	})
	reg.Register(&mockRule{
		id: "CL005", name: "steps-forbidden",
		types:    []document.Type{document.Concept, document.Reference},
		outcomes: []Outcome{{Status: StatusPass, Message: "no steps present"}},
	})

	engine := NewEngine(reg)
	doc := document.New("proc_install.adoc", "text")
	sink := &recordingSink{}

	result, err := engine.CheckDocument(context.Background(), doc, nil, sink)
	require.NoError(t, err)

	// Only the procedure-scoped rule ran.
	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, "CL004", result.Outcomes[0].RuleID)
	assert.Equal(t, 1, result.Issues())
}

func TestEngine_CheckDocument_StreamsInEvaluationOrder(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&mockRule{
		id: "CL002", name: "second",
		outcomes: []Outcome{{Status: StatusPass, Message: "b"}},
	})
	reg.Register(&mockRule{
		id: "CL001", name: "first",
		outcomes: []Outcome{{Status: StatusPass, Message: "a"}},
	})

	engine := NewEngine(reg)
	sink := &recordingSink{}

	_, err := engine.CheckDocument(context.Background(), document.New("con_x.adoc", ""), nil, sink)
	require.NoError(t, err)

	require.Len(t, sink.outcomes, 2)
	assert.Equal(t, "CL001", sink.outcomes[0].RuleID)
	assert.Equal(t, "CL002", sink.outcomes[1].RuleID)
}

func TestEngine_CheckDocument_FillsAttribution(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&mockRule{
		id: "CL001", name: "naming-convention",
		outcomes: []Outcome{{Status: StatusFail, Message: "bad name"}},
	})

	engine := NewEngine(reg)

	result, err := engine.CheckDocument(context.Background(), document.New("notes.adoc", ""), nil, nil)
	require.NoError(t, err)

	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, "CL001", result.Outcomes[0].RuleID)
	assert.Equal(t, "naming-convention", result.Outcomes[0].RuleName)
	assert.Equal(t, "notes.adoc", result.Outcomes[0].Path)
}

func TestEngine_CheckDocument_RuleErrorDoesNotAbort(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&mockRule{id: "CL001", name: "broken", err: errors.New("boom")})
	reg.Register(&mockRule{
		id: "CL002", name: "working",
		outcomes: []Outcome{{Status: StatusPass, Message: "ok"}},
	})

	engine := NewEngine(reg)

	result, err := engine.CheckDocument(context.Background(), document.New("con_x.adoc", ""), nil, nil)
	require.NoError(t, err)

	assert.Len(t, result.Outcomes, 1)
	require.Contains(t, result.RuleErrors, "CL001")
	assert.EqualError(t, result.RuleErrors["CL001"], "boom")
}

func TestEngine_CheckDocument_Cancellation(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&mockRule{id: "CL001", name: "any"})

	engine := NewEngine(reg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.CheckDocument(ctx, document.New("con_x.adoc", ""), nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBaseRule_AppliesTo(t *testing.T) {
	scoped := NewBaseRule("CL004", "steps-required", "desc", document.Procedure)
	assert.True(t, scoped.AppliesTo(document.Procedure))
	assert.False(t, scoped.AppliesTo(document.Concept))
	assert.False(t, scoped.AppliesTo(document.Unknown))

	universal := NewBaseRule("CL001", "naming-convention", "desc")
	assert.True(t, universal.AppliesTo(document.Unknown))
	assert.True(t, universal.AppliesTo(document.Master))
}

func TestOutcome_Failed(t *testing.T) {
	assert.True(t, Outcome{Status: StatusFail}.Failed())
	assert.False(t, Outcome{Status: StatusPass}.Failed())
}
