// Package output renders transformation results in the supported
// report formats: plain list, detailed annotated list, and summary
// table.
package output

import (
	"fmt"
	"io"

	"passforge/internal/engine"
)

// Entry pairs one engine result with the ruleset that produced it.
type Entry struct {
	Ruleset      string
	Result       engine.Result
	RulesetIndex int
}

// SummarySuffix is appended to the output path for the summary table
// written alongside detailed output.
const SummarySuffix = ".summary.txt"

// SummaryPath returns the companion summary file path for an output file.
func SummaryPath(outputPath string) string {
	return outputPath + SummarySuffix
}

// WriteWords writes transformed words only, one per line.
func WriteWords(w io.Writer, entries []Entry) error {
	for _, entry := range entries {
		if _, err := fmt.Fprintln(w, entry.Result.Word); err != nil {
			return fmt.Errorf("failed to write word: %w", err)
		}
	}
	return nil
}

// WriteDetailed writes transformed words annotated with their ruleset
// index, preceded by a comment header describing every ruleset.
func WriteDetailed(w io.Writer, entries []Entry, descriptions []string) error {
	if _, err := fmt.Fprintln(w, "# Generated words by ruleset:"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, desc := range descriptions {
		if _, err := fmt.Fprintf(w, "# Ruleset %d: %s\n", i+1, desc); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	if _, err := fmt.Fprintln(w, "#"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, entry := range entries {
		if _, err := fmt.Fprintf(w, "%s | Ruleset %d\n", entry.Result.Word, entry.RulesetIndex); err != nil {
			return fmt.Errorf("failed to write word: %w", err)
		}
	}
	return nil
}

// WriteSummary writes the original/transformed/ruleset table used for
// audit output.
func WriteSummary(w io.Writer, entries []Entry) error {
	if _, err := fmt.Fprintln(w, "Original Word | Transformed Word | Ruleset"); err != nil {
		return fmt.Errorf("failed to write summary header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "------------- | --------------- | ------"); err != nil {
		return fmt.Errorf("failed to write summary header: %w", err)
	}
	for _, entry := range entries {
		_, err := fmt.Fprintf(w, "%s | %s | %s\n", entry.Result.Original, entry.Result.Word, entry.Ruleset)
		if err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}
	return nil
}
