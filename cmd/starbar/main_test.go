package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_STATE_HOME", dir)
	for _, key := range []string{"STARBAR_CLICKS_PER_STAR", "STARBAR_DEBOUNCE", "STARBAR_NORMALIZE_EVERY", "NO_COLOR"} {
		t.Setenv(key, "")
	}
	return dir
}

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	path := filepath.Join(dir, "starbar", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func runSimulate(t *testing.T, args ...string) string {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"simulate"}, args...))
	require.NoError(t, root.Execute())
	return out.String()
}

func TestSimulateEndToEndScenario(t *testing.T) {
	isolateEnv(t)
	out := runSimulate(t, "--clicks", "3", "--", "++++-")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[0], "Step")
	assert.Contains(t, lines[3], "star-awarded")
	assert.Contains(t, lines[3], "0 / 3 clicks")
	assert.Contains(t, lines[5], "regressed")
	assert.Contains(t, lines[5], "0 / 3 clicks")
}

func TestSimulateDefaultsToTenClicks(t *testing.T) {
	isolateEnv(t)
	out := runSimulate(t, "+")
	assert.Contains(t, out, "1 / 10 clicks")
}

func TestSimulateInvalidClicksFallsBack(t *testing.T) {
	dir := isolateEnv(t)
	writeConfig(t, dir, "[widget]\nclicks-per-star = \"4\"\n")
	t.Setenv("STARBAR_CLICKS_PER_STAR", "lots")

	out := runSimulate(t, "--clicks", "0", "+")
	assert.Contains(t, out, "1 / 4 clicks")
}

func TestSimulateNonNumericClicksFallsBack(t *testing.T) {
	isolateEnv(t)
	out := runSimulate(t, "--clicks", "abc", "+")
	assert.Contains(t, out, "1 / 10 clicks")

	out = runSimulate(t, "--clicks", "7.9", "+")
	assert.Contains(t, out, "1 / 7 clicks")
}

func TestSimulateEnvBeatsConfigFile(t *testing.T) {
	dir := isolateEnv(t)
	writeConfig(t, dir, "[widget]\nclicks-per-star = \"4\"\n")
	t.Setenv("STARBAR_CLICKS_PER_STAR", "6")

	out := runSimulate(t, "+")
	assert.Contains(t, out, "1 / 6 clicks")
}

func TestSimulateRejectsUnknownAction(t *testing.T) {
	isolateEnv(t)
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"simulate", "jump"})
	assert.ErrorContains(t, root.Execute(), "unknown action")
}

func TestResolveConfigPrecedence(t *testing.T) {
	dir := isolateEnv(t)
	writeConfig(t, dir, "[widget]\nclicks-per-star = \"4\"\ndebounce = \"250ms\"\nanimate = false\n")
	t.Setenv("STARBAR_NORMALIZE_EVERY", "2s")

	root := newRootCmd()
	require.NoError(t, root.ParseFlags([]string{"--clicks", "8", "--no-mouse"}))

	cfg, err := resolveConfig(root, []string{"?12"})
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.ClicksPerStar)
	assert.Equal(t, 250*time.Millisecond, cfg.Debounce)
	assert.Equal(t, 2*time.Second, cfg.NormalizeInterval)
	assert.False(t, cfg.Animate)
	assert.False(t, cfg.Mouse)
	assert.True(t, cfg.Color)

	cfg, err = resolveConfig(root, []string{"?oops"})
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.ClicksPerStar)
}

func TestResolveConfigFlagsOverrideFile(t *testing.T) {
	dir := isolateEnv(t)
	writeConfig(t, dir, "[widget]\ndebounce = \"250ms\"\nanimate = false\n")
	t.Setenv("NO_COLOR", "1")

	root := newRootCmd()
	require.NoError(t, root.ParseFlags([]string{"--debounce", "0s"}))

	cfg, err := resolveConfig(root, nil)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.ClicksPerStar)
	assert.Equal(t, time.Duration(0), cfg.Debounce)
	assert.False(t, cfg.Color)
}

func TestResolveConfigRejectsNegativeDurations(t *testing.T) {
	isolateEnv(t)
	root := newRootCmd()
	require.NoError(t, root.ParseFlags([]string{"--debounce", "-1s"}))
	_, err := resolveConfig(root, nil)
	assert.ErrorContains(t, err, "--debounce must be >= 0")
}

func TestRootRequiresTerminal(t *testing.T) {
	isolateEnv(t)
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"5"})
	assert.ErrorContains(t, root.Execute(), "needs a terminal")
}

func TestDefaultConfigTemplateListsDefaults(t *testing.T) {
	tmpl := defaultConfigTemplate()
	assert.Contains(t, tmpl, "[widget]")
	assert.Contains(t, tmpl, `debounce = "100ms"`)
}

func TestBareLogFileFlagUsesStateDir(t *testing.T) {
	dir := isolateEnv(t)
	out := runSimulate(t, "--log-file", "+")
	assert.Contains(t, out, "1 / 10 clicks")

	_, err := os.Stat(filepath.Join(dir, "starbar", "starbar.log"))
	assert.NoError(t, err)
}
