package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".tokencss.yaml")
	configContent := `
input: design/tokens.json
output: dist/tokens.css

generate:
  output-mode: fixed
  direction: desktop-first
  alias-mode: resolved
  color-format: oklch
  piecewise:
    - "size-display"

breakpoints:
  desktop: 1920
  mobile: 360

report: json
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "design/tokens.json", k.String("input"))
	assert.Equal(t, "dist/tokens.css", k.String("output"))
	assert.Equal(t, "fixed", k.String("generate.output-mode"))
	assert.Equal(t, "desktop-first", k.String("generate.direction"))
	assert.Equal(t, "resolved", k.String("generate.alias-mode"))
	assert.Equal(t, "oklch", k.String("generate.color-format"))
	assert.Equal(t, []string{"size-display"}, k.Strings("generate.piecewise"))
	assert.Equal(t, 1920, k.Int("breakpoints.desktop"))
	assert.Equal(t, 360, k.Int("breakpoints.mobile"))
	assert.Equal(t, "json", k.String("report"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config — should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.tokencss.yaml"))

	config := buildGenerateConfig()
	assert.Equal(t, "fluid", config.OutputMode)
	assert.Equal(t, "mobile-first", config.Direction)
	assert.Equal(t, "preserved", config.AliasMode)
	assert.Equal(t, "both", config.DarkMode)
	assert.Equal(t, "hex", config.ColorFormat)
	assert.Equal(t, "mixin", config.TextStyles)
	assert.NoError(t, config.Validate())
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".tokencss.yaml")
	configContent := `
generate:
  output-mode: fluid
  direction: mobile-first
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	t.Setenv("TOKENCSS_GENERATE_OUTPUT_MODE", "fixed")
	t.Setenv("TOKENCSS_GENERATE_DIRECTION", "desktop-first")
	t.Setenv("TOKENCSS_REPORT", "none")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "fixed", k.String("generate.output-mode"))
	assert.Equal(t, "desktop-first", k.String("generate.direction"))
	assert.Equal(t, "none", k.String("report"))
}

func TestBuildGenerateConfig_Breakpoints(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".tokencss.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("breakpoints:\n  desktop: 1920\n"), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	config := buildGenerateConfig()
	assert.Equal(t, 1920, config.Breakpoints.Desktop)
	// Unset entries stay zero here; the library fills defaults.
	assert.Equal(t, 0, config.Breakpoints.Tablet)
}

func TestInitCommand_WritesDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	require.NoError(t, initCmd.RunE(initCmd, nil))

	data, err := os.ReadFile(".tokencss.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "output-mode: fluid")
	assert.Contains(t, string(data), "desktop: 1680")

	// A second run without --force refuses to overwrite.
	err = initCmd.RunE(initCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}
