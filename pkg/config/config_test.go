package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "auto", cfg.Color)
	assert.Equal(t, DefaultAttributesPath, cfg.AttributesPath)
	assert.Equal(t, DefaultTimeout, cfg.Links.Timeout)
	assert.Equal(t, DefaultRetries, cfg.Links.Retries)
	assert.Zero(t, cfg.Links.Workers)
	assert.False(t, cfg.Verbose)
}

func TestLinksConfig_ConnectTimeout(t *testing.T) {
	cfg := LinksConfig{Timeout: 5}

	assert.Equal(t, 5*time.Second, cfg.ConnectTimeout())
}

func TestFromYAML(t *testing.T) {
	data := []byte(`
verbose: true
attributes_path: common/attributes.adoc
terminology:
  old name: new name
links:
  timeout: 10
  retries: 1
  workers: 4
`)

	cfg, err := FromYAML(data)
	require.NoError(t, err)

	assert.True(t, cfg.Verbose)
	assert.Equal(t, "common/attributes.adoc", cfg.AttributesPath)
	assert.Equal(t, "new name", cfg.Terminology["old name"])
	assert.Equal(t, 10, cfg.Links.Timeout)
	assert.Equal(t, 1, cfg.Links.Retries)
	assert.Equal(t, 4, cfg.Links.Workers)
}

func TestFromYAML_UnknownKeyRejected(t *testing.T) {
	_, err := FromYAML([]byte("not_a_setting: true\n"))

	assert.Error(t, err)
}

func TestYAMLRoundTrip(t *testing.T) {
	cfg := NewConfig()
	cfg.Verbose = true
	cfg.Terminology["master"] = "main"

	data, err := cfg.ToYAML()
	require.NoError(t, err)

	got, err := FromYAML(data)
	require.NoError(t, err)

	assert.Equal(t, cfg, got)
	assert.Nil(t, got.Ignore)
}

func TestYAMLRoundTrip_IgnorePatterns(t *testing.T) {
	cfg := NewConfig()
	cfg.Ignore = []string{"legacy/**", "**/drafts"}

	data, err := cfg.ToYAML()
	require.NoError(t, err)

	got, err := FromYAML(data)
	require.NoError(t, err)

	assert.Equal(t, cfg.Ignore, got.Ignore)
}

func TestToYAML_OmitsUnsetIgnoreList(t *testing.T) {
	data, err := NewConfig().ToYAML()
	require.NoError(t, err)

	assert.NotContains(t, string(data), "ignore:")
}
