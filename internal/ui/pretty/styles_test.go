package pretty

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	tests := []struct {
		name string
		mode string
		want bool
	}{
		{"always", "always", true},
		{"never", "never", false},
		{"auto with non-tty writer", "auto", false},
		{"unknown mode treated as auto", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsColorEnabled(tt.mode, &buf))
		})
	}
}

func TestIsColorEnabled_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.False(t, IsColorEnabled("auto", nil))
	assert.True(t, IsColorEnabled("always", nil))
}

func TestNewStyles_NoColorRendersPlain(t *testing.T) {
	styles := NewStyles(false)

	assert.Equal(t, "fail", styles.Fail.Render("fail"))
	assert.Equal(t, "FAILED", styles.Unreachable.Render("FAILED"))
}
