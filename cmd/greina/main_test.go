package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRun_CleanFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "app:\n  name: svc\n")

	var stderr bytes.Buffer

	exit := run([]string{path}, &stderr)

	assert.Equal(t, exitClean, exit)
	assert.Empty(t, stderr.String())
}

func TestRun_MissingRequiredKey(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "app:\n  name: svc\n")

	var stderr bytes.Buffer

	exit := run([]string{"--require", "app.version", path}, &stderr)

	assert.Equal(t, exitDiagnostics, exit)
	assert.Contains(t, stderr.String(), "app.version")
}

func TestRun_EnvOverride(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "host: ${GREINA_CLI_TEST_HOST}\n")

	var stderr bytes.Buffer

	exit := run([]string{"--env", "GREINA_CLI_TEST_HOST=example.org", path}, &stderr)

	assert.Equal(t, exitClean, exit)
	assert.Empty(t, stderr.String())
}

func TestRun_UnresolvedVariableWarns(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "host: ${GREINA_CLI_TEST_ABSENT}\n")

	var stderr bytes.Buffer

	exit := run([]string{path}, &stderr)

	assert.Equal(t, exitClean, exit, "warnings alone should not fail without --strict")
	assert.Contains(t, stderr.String(), "GREINA_CLI_TEST_ABSENT")
}

func TestRun_StrictTreatsWarningsAsFailures(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "host: ${GREINA_CLI_TEST_ABSENT}\n")

	var stderr bytes.Buffer

	exit := run([]string{"--strict", path}, &stderr)

	assert.Equal(t, exitDiagnostics, exit)
}

func TestRun_DuplicateKeyFails(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "a: 1\na: 2\n")

	var stderr bytes.Buffer

	exit := run([]string{path}, &stderr)

	assert.Equal(t, exitDiagnostics, exit)
	assert.Contains(t, stderr.String(), "duplicate key")
}

func TestRun_MissingFile(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer

	exit := run([]string{"/nonexistent/config.yaml"}, &stderr)

	assert.Equal(t, exitUsage, exit)
	assert.Contains(t, stderr.String(), "load failed")
}

func TestRun_NoArguments(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer

	exit := run(nil, &stderr)

	assert.Equal(t, exitUsage, exit)
	assert.Contains(t, stderr.String(), "usage:")
}

func TestRun_InvalidEnvPair(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "a: 1\n")

	var stderr bytes.Buffer

	exit := run([]string{"--env", "NOEQUALS", path}, &stderr)

	assert.Equal(t, exitUsage, exit)
	assert.Contains(t, stderr.String(), "KEY=VALUE")
}

func TestRun_MultipleFiles(t *testing.T) {
	t.Parallel()

	clean := writeConfig(t, "a: 1\n")
	broken := writeConfig(t, "a: 1\na: 2\n")

	var stderr bytes.Buffer

	exit := run([]string{clean, broken}, &stderr)

	assert.Equal(t, exitDiagnostics, exit)
}

func TestParseEnvPairs(t *testing.T) {
	t.Parallel()

	overrides, err := parseEnvPairs([]string{"A=1", "B=x=y"})

	require.NoError(t, err)
	assert.Equal(t, "1", overrides["A"])
	assert.Equal(t, "x=y", overrides["B"])
}
