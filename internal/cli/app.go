// Package cli wires the parser, engine, and report writers into the
// passforge command surface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"passforge/internal/engine"
	"passforge/internal/output"
	"passforge/internal/prompt"
	"passforge/internal/rules"
	"passforge/internal/wordlist"
)

// Options selects inputs and reporting for one transformation run.
type Options struct {
	Wordlist        string
	Rules           string
	Output          string
	Detail          bool
	CaseInsensitive bool
}

// App orchestrates a transformation run against an abstract filesystem.
type App struct {
	fs       afero.Fs
	stdout   io.Writer
	stderr   io.Writer
	prompter prompt.Prompter
}

// New creates an App writing to the given streams.
func New(fs afero.Fs, stdout, stderr io.Writer) *App {
	return &App{fs: fs, stdout: stdout, stderr: stderr}
}

// WithPrompter sets the prompter used for interactive ruleset entry.
// Without one, a run that needs interactive input fails.
func (a *App) WithPrompter(p prompt.Prompter) *App {
	a.prompter = p
	return a
}

// Run loads the wordlist and rulesets, applies every ruleset to every
// word (each ruleset to a fresh copy of the word), and writes the
// selected report.
func (a *App) Run(opts Options) error {
	words, err := wordlist.Read(a.fs, opts.Wordlist)
	if err != nil {
		return err
	}

	file, err := a.loadRulesets(opts.Rules)
	if err != nil {
		return err
	}
	if len(file.Sets) == 0 {
		return errors.New("no rulesets defined")
	}

	log.Info().
		Int("words", len(words)).
		Int("rulesets", len(file.Sets)).
		Bool("case_insensitive", opts.CaseInsensitive).
		Msg("starting transformation run")

	entries, descriptions := transform(file, words, opts.CaseInsensitive)

	if opts.Output != "" {
		return a.writeFiles(opts, entries, descriptions)
	}
	if opts.Detail {
		output.PrintDetailed(a.stdout, entries, descriptions)
		return nil
	}
	output.PrintWords(a.stdout, entries)
	return nil
}

// transform applies every ruleset to every word in authoring order.
func transform(file *rules.RuleFile, words []string, caseInsensitive bool) ([]output.Entry, []string) {
	entries := make([]output.Entry, 0, len(file.Sets)*len(words))
	descriptions := make([]string, 0, len(file.Sets))
	for _, set := range file.Sets {
		desc := set.Describe()
		descriptions = append(descriptions, desc)
		for _, word := range words {
			result := engine.Apply(set, word, caseInsensitive)
			log.Debug().
				Str("word", result.Original).
				Str("transformed", result.Word).
				Int("ruleset", set.Index).
				Msg("applied ruleset")
			entries = append(entries, output.Entry{
				Result:       result,
				RulesetIndex: set.Index,
				Ruleset:      desc,
			})
		}
	}
	return entries, descriptions
}

func (a *App) loadRulesets(path string) (*rules.RuleFile, error) {
	if path == "" {
		if a.prompter == nil {
			return nil, errors.New("no rules file given and no interactive prompter available")
		}
		prompt.PrintUsage(a.stdout)
		return prompt.CollectRulesets(a.prompter, a.stderr)
	}

	data, err := afero.ReadFile(a.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file %s: %w", path, err)
	}
	file, err := rules.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}
	return file, nil
}

func (a *App) writeFiles(opts Options, entries []output.Entry, descriptions []string) error {
	var buf strings.Builder
	var err error
	if opts.Detail {
		err = output.WriteDetailed(&buf, entries, descriptions)
	} else {
		err = output.WriteWords(&buf, entries)
	}
	if err != nil {
		return err
	}
	if err := afero.WriteFile(a.fs, opts.Output, []byte(buf.String()), 0o600); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", opts.Output, err)
	}
	fmt.Fprintf(a.stdout, "Generated words written to %s\n", opts.Output)

	if !opts.Detail {
		return nil
	}

	var summary strings.Builder
	if err := output.WriteSummary(&summary, entries); err != nil {
		return err
	}
	summaryPath := output.SummaryPath(opts.Output)
	if err := afero.WriteFile(a.fs, summaryPath, []byte(summary.String()), 0o600); err != nil {
		return fmt.Errorf("failed to write summary file %s: %w", summaryPath, err)
	}
	fmt.Fprintf(a.stdout, "Summary information written to %s\n", summaryPath)
	return nil
}

// ValidateRules parses a rules file and reports the result without
// applying anything.
func (a *App) ValidateRules(path string) (string, error) {
	data, err := afero.ReadFile(a.fs, path)
	if err != nil {
		return "", fmt.Errorf("failed to read rules file %s: %w", path, err)
	}
	file, err := rules.Parse(string(data))
	if err != nil {
		return "", fmt.Errorf("invalid rules file %s: %w", path, err)
	}
	plural := "s"
	if len(file.Sets) == 1 {
		plural = ""
	}
	return fmt.Sprintf("%s OK: %d ruleset%s\n", path, len(file.Sets), plural), nil
}

// ListRules renders the parsed rulesets of a file with their indices
// and per-spec breakdown.
func (a *App) ListRules(path string) (string, error) {
	if _, err := a.fs.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "No rulesets found - rules file does not exist\n", nil
		}
		return "", fmt.Errorf("failed to stat rules file %s: %w", path, err)
	}

	data, err := afero.ReadFile(a.fs, path)
	if err != nil {
		return "", fmt.Errorf("failed to read rules file %s: %w", path, err)
	}
	file, err := rules.Parse(string(data))
	if err != nil {
		return "", fmt.Errorf("invalid rules file %s: %w", path, err)
	}
	if len(file.Sets) == 0 {
		return "No rulesets found in rules file\n", nil
	}

	var out strings.Builder
	indexWidth := len(fmt.Sprintf("%d", len(file.Sets)))
	indent := strings.Repeat(" ", indexWidth+3)
	for _, set := range file.Sets {
		fmt.Fprintf(&out, "[%0*d] %s\n", indexWidth, set.Index, set.Describe())
		for _, spec := range set.Specs {
			fmt.Fprintf(&out, "%s- %s\n", indent, describeSpec(spec))
		}
	}
	return out.String(), nil
}

func describeSpec(spec rules.Spec) string {
	switch s := spec.(type) {
	case rules.Replace:
		if s.Replacement == "" {
			return fmt.Sprintf("delete %s occurrence of %q", ordinal(s.Instance), s.Char)
		}
		return fmt.Sprintf("replace %s occurrence of %q with %q", ordinal(s.Instance), s.Char, s.Replacement)
	case rules.CaseChar:
		return fmt.Sprintf("%scase %s occurrence of %q", s.Direction, ordinal(s.Instance), s.Char)
	case rules.CasePos:
		return fmt.Sprintf("%scase character at position %d", s.Direction, s.Position)
	default:
		return spec.String()
	}
}

func ordinal(i rules.Instance) string {
	if i == rules.All {
		return "every"
	}
	return fmt.Sprintf("#%d", int(i))
}
