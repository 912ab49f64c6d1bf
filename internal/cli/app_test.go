package cli

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passforge/internal/testutil"
)

type fakePrompter struct {
	responses []string
	next      int
}

func (p *fakePrompter) Prompt(string) (string, error) {
	if p.next >= len(p.responses) {
		return "done", nil
	}
	response := p.responses[p.next]
	p.next++
	return response, nil
}

func (*fakePrompter) AppendHistory(string) {}
func (*fakePrompter) Close() error         { return nil }

func newTestApp(t *testing.T) (*App, afero.Fs, *strings.Builder) {
	t.Helper()
	testutil.InitTestLogger(t)

	fs := afero.NewMemMapFs()
	var stdout strings.Builder
	app := New(fs, &stdout, &stdout)
	return app, fs, &stdout
}

func writeInputs(t *testing.T, fs afero.Fs, words, ruleLines string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, "/words.txt", []byte(words), 0o600))
	require.NoError(t, afero.WriteFile(fs, "/rules.txt", []byte(ruleLines), 0o600))
}

func TestRunWritesPlainOutput(t *testing.T) {
	t.Parallel()
	defer testutil.VerifyNoLeaks(t)

	app, fs, stdout := newTestApp(t)
	writeInputs(t, fs, "password\ncheese\n", "a 1 @\ne all 3\n")

	err := app.Run(Options{Wordlist: "/words.txt", Rules: "/rules.txt", Output: "/out.txt"})
	require.NoError(t, err)

	data, err := afero.ReadFile(fs, "/out.txt")
	require.NoError(t, err)
	assert.Equal(t, "p@ssword\ncheese\npassword\nch33s3\n", string(data))
	assert.Contains(t, stdout.String(), "Generated words written to /out.txt")

	// No summary file without --detail.
	exists, err := afero.Exists(fs, "/out.txt.summary.txt")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRunWritesDetailedOutputAndSummary(t *testing.T) {
	t.Parallel()

	app, fs, stdout := newTestApp(t)
	writeInputs(t, fs, "password\n", "o 1 0 || r 1 R\n")

	err := app.Run(Options{Wordlist: "/words.txt", Rules: "/rules.txt", Output: "/out.txt", Detail: true})
	require.NoError(t, err)

	data, err := afero.ReadFile(fs, "/out.txt")
	require.NoError(t, err)
	assert.Equal(t,
		"# Generated words by ruleset:\n# Ruleset 1: o 1 0 || r 1 R\n#\npassw0Rd | Ruleset 1\n",
		string(data))

	summary, err := afero.ReadFile(fs, "/out.txt.summary.txt")
	require.NoError(t, err)
	assert.Contains(t, string(summary), "Original Word | Transformed Word | Ruleset")
	assert.Contains(t, string(summary), "password | passw0Rd | o 1 0 || r 1 R")
	assert.Contains(t, stdout.String(), "Summary information written to /out.txt.summary.txt")
}

func TestRunPrintsWordsToConsole(t *testing.T) {
	t.Parallel()

	app, fs, stdout := newTestApp(t)
	writeInputs(t, fs, "password\n", "s 2 5 || s 1 $\n")

	err := app.Run(Options{Wordlist: "/words.txt", Rules: "/rules.txt"})
	require.NoError(t, err)
	assert.Equal(t, "pa$5word\n", stdout.String())
}

func TestRunCaseInsensitive(t *testing.T) {
	t.Parallel()

	app, fs, stdout := newTestApp(t)
	writeInputs(t, fs, "Password\n", "O 1 0\n")

	err := app.Run(Options{Wordlist: "/words.txt", Rules: "/rules.txt", CaseInsensitive: true})
	require.NoError(t, err)
	assert.Equal(t, "Passw0rd\n", stdout.String())
}

func TestRunParseErrorCarriesLineNumber(t *testing.T) {
	t.Parallel()

	app, fs, _ := newTestApp(t)
	writeInputs(t, fs, "password\n", "a 1 @\nnot a rule\n")

	err := app.Run(Options{Wordlist: "/words.txt", Rules: "/rules.txt"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestRunMissingWordlist(t *testing.T) {
	t.Parallel()

	app, _, _ := newTestApp(t)

	err := app.Run(Options{Wordlist: "/missing.txt", Rules: "/rules.txt"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/missing.txt")
}

func TestRunEmptyRulesFile(t *testing.T) {
	t.Parallel()

	app, fs, _ := newTestApp(t)
	writeInputs(t, fs, "password\n", "# only comments\n")

	err := app.Run(Options{Wordlist: "/words.txt", Rules: "/rules.txt"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no rulesets defined")
}

func TestRunInteractive(t *testing.T) {
	t.Parallel()

	app, fs, stdout := newTestApp(t)
	require.NoError(t, afero.WriteFile(fs, "/words.txt", []byte("password\n"), 0o600))

	app.WithPrompter(&fakePrompter{responses: []string{"a 1 @", "done"}})

	err := app.Run(Options{Wordlist: "/words.txt"})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Entering interactive mode")
	assert.Contains(t, stdout.String(), "p@ssword\n")
}

func TestRunInteractiveWithoutPrompter(t *testing.T) {
	t.Parallel()

	app, fs, _ := newTestApp(t)
	require.NoError(t, afero.WriteFile(fs, "/words.txt", []byte("password\n"), 0o600))

	err := app.Run(Options{Wordlist: "/words.txt"})
	require.Error(t, err)
}

func TestValidateRules(t *testing.T) {
	t.Parallel()

	app, fs, _ := newTestApp(t)
	require.NoError(t, afero.WriteFile(fs, "/rules.txt", []byte("a 1 @\ne all 3\n"), 0o600))

	result, err := app.ValidateRules("/rules.txt")
	require.NoError(t, err)
	assert.Equal(t, "/rules.txt OK: 2 rulesets\n", result)
}

func TestValidateRulesReportsError(t *testing.T) {
	t.Parallel()

	app, fs, _ := newTestApp(t)
	require.NoError(t, afero.WriteFile(fs, "/rules.txt", []byte("pos one upper\n"), 0o600))

	_, err := app.ValidateRules("/rules.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid position")
	assert.Contains(t, err.Error(), "line 1")
}

func TestListRules(t *testing.T) {
	t.Parallel()

	app, fs, _ := newTestApp(t)
	require.NoError(t, afero.WriteFile(fs, "/rules.txt", []byte("a 1 @ || s all\ng 2 upper\npos 1 lower\n"), 0o600))

	result, err := app.ListRules("/rules.txt")
	require.NoError(t, err)
	assert.Contains(t, result, "[1] a 1 @ || s all")
	assert.Contains(t, result, `replace #1 occurrence of 'a' with "@"`)
	assert.Contains(t, result, `delete every occurrence of 's'`)
	assert.Contains(t, result, "[2] g 2 upper")
	assert.Contains(t, result, `uppercase #2 occurrence of 'g'`)
	assert.Contains(t, result, "lowercase character at position 1")
}

func TestListRulesMissingFile(t *testing.T) {
	t.Parallel()

	app, _, _ := newTestApp(t)

	result, err := app.ListRules("/rules.txt")
	require.NoError(t, err)
	assert.Equal(t, "No rulesets found - rules file does not exist\n", result)
}
