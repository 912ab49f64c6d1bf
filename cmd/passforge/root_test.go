package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := createRootCommand()
	var buf strings.Builder
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// writeTestConfig keeps log output inside the test's temp dir.
func writeTestConfig(t *testing.T, dir string) string {
	t.Helper()

	configPath := filepath.Join(dir, "passforge.yml")
	content := "logging:\n  path: " + filepath.Join(dir, "passforge.log") + "\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath
}

func TestRootShowsHelp(t *testing.T) {
	t.Parallel()

	out, err := executeCommand(t)
	require.NoError(t, err)
	assert.Contains(t, out, "passforge")
	assert.Contains(t, out, "apply")
	assert.Contains(t, out, "validate")
}

func TestApplyCommand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	wordlistPath := filepath.Join(dir, "words.txt")
	rulesPath := filepath.Join(dir, "rules.txt")
	outputPath := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(wordlistPath, []byte("password\n"), 0o600))
	require.NoError(t, os.WriteFile(rulesPath, []byte("a 1 @\n"), 0o600))

	out, err := executeCommand(t,
		"apply",
		"--config", writeTestConfig(t, dir),
		"-w", wordlistPath,
		"-r", rulesPath,
		"-o", outputPath,
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Generated words written to")

	data, err := os.ReadFile(outputPath) //nolint:gosec // test temp dir
	require.NoError(t, err)
	assert.Equal(t, "p@ssword\n", string(data))
}

func TestApplyCommandCaseInsensitive(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	wordlistPath := filepath.Join(dir, "words.txt")
	rulesPath := filepath.Join(dir, "rules.txt")
	require.NoError(t, os.WriteFile(wordlistPath, []byte("Pepper\n"), 0o600))
	require.NoError(t, os.WriteFile(rulesPath, []byte("p 2 b\n"), 0o600))

	out, err := executeCommand(t,
		"apply",
		"--config", writeTestConfig(t, dir),
		"-w", wordlistPath,
		"-r", rulesPath,
		"-i",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Pebper\n")
}

func TestApplyCommandRequiresWordlist(t *testing.T) {
	t.Parallel()

	_, err := executeCommand(t, "apply")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wordlist")
}

func TestApplyCommandReportsParseError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	wordlistPath := filepath.Join(dir, "words.txt")
	rulesPath := filepath.Join(dir, "rules.txt")
	require.NoError(t, os.WriteFile(wordlistPath, []byte("password\n"), 0o600))
	require.NoError(t, os.WriteFile(rulesPath, []byte("a 1 @\nbroken rule line\n"), 0o600))

	_, err := executeCommand(t,
		"apply",
		"--config", writeTestConfig(t, dir),
		"-w", wordlistPath,
		"-r", rulesPath,
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestValidateCommand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rulesPath := filepath.Join(dir, "rules.txt")
	require.NoError(t, os.WriteFile(rulesPath, []byte("o 1 0 || e all 3\n"), 0o600))

	out, err := executeCommand(t, "validate", rulesPath)
	require.NoError(t, err)
	assert.Contains(t, out, "OK: 1 ruleset")
}

func TestValidateCommandRejectsBadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rulesPath := filepath.Join(dir, "rules.txt")
	require.NoError(t, os.WriteFile(rulesPath, []byte("pos 1 sideways\n"), 0o600))

	_, err := executeCommand(t, "validate", rulesPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid direction")
}

func TestRulesCommand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rulesPath := filepath.Join(dir, "rules.txt")
	require.NoError(t, os.WriteFile(rulesPath, []byte("a 1 @\ng 2 u\n"), 0o600))

	out, err := executeCommand(t, "rules", rulesPath)
	require.NoError(t, err)
	assert.Contains(t, out, "[1] a 1 @")
	assert.Contains(t, out, "[2] g 2 upper")
}
