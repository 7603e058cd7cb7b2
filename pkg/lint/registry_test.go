package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhradilek/check-links/pkg/document"
)

// mockRule for testing.
type mockRule struct {
	id       string
	name     string
	types    []document.Type
	outcomes []Outcome
	err      error
}

func (m *mockRule) ID() string          { return m.id }
func (m *mockRule) Name() string        { return m.name }
func (m *mockRule) Description() string { return "mock" }

func (m *mockRule) AppliesTo(t document.Type) bool {
	if len(m.types) == 0 {
		return true
	}
	for _, candidate := range m.types {
		if candidate == t {
			return true
		}
	}
	return false
}

func (m *mockRule) Apply(*RuleContext) ([]Outcome, error) {
	return m.outcomes, m.err
}

func TestRegistry_Get(t *testing.T) {
	reg := NewRegistry()
	rule := &mockRule{id: "CL004", name: "steps-required"}
	reg.Register(rule)

	got, ok := reg.Get("CL004")
	assert.True(t, ok)
	assert.Equal(t, "steps-required", got.Name())

	// Name fallback.
	got, ok = reg.Get("steps-required")
	assert.True(t, ok)
	assert.Equal(t, "CL004", got.ID())

	_, ok = reg.Get("nonexistent")
	assert.False(t, ok)
}

func TestRegistry_RegisterReplacesSameID(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&mockRule{id: "CL001", name: "old-name"})
	reg.Register(&mockRule{id: "CL001", name: "new-name"})

	got, ok := reg.Get("CL001")
	assert.True(t, ok)
	assert.Equal(t, "new-name", got.Name())
}

func TestRegistry_RulesSortedByID(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&mockRule{id: "CL009", name: "nine"})
	reg.Register(&mockRule{id: "CL001", name: "one"})
	reg.Register(&mockRule{id: "CL005", name: "five"})

	rules := reg.Rules()
	ids := make([]string, 0, len(rules))
	for _, r := range rules {
		ids = append(ids, r.ID())
	}

	assert.Equal(t, []string{"CL001", "CL005", "CL009"}, ids)
}

func TestRegistry_IDs(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&mockRule{id: "CL002", name: "b"})
	reg.Register(&mockRule{id: "CL001", name: "a"})

	assert.Equal(t, []string{"CL001", "CL002"}, reg.IDs())
}
