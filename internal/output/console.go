package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// PrintDetailed renders results grouped by ruleset for the console,
// with per-spec outcome annotations from the engine trace.
func PrintDetailed(w io.Writer, entries []Entry, descriptions []string) {
	for i, desc := range descriptions {
		index := i + 1
		fmt.Fprintf(w, "\n%s %s\n", color.CyanString("Ruleset %d:", index), desc)
		fmt.Fprintln(w, strings.Repeat("-", 40))

		for _, entry := range entries {
			if entry.RulesetIndex != index {
				continue
			}
			fmt.Fprintf(w, "%s -> %s\n", entry.Result.Original, colorWord(entry))
			for _, outcome := range entry.Result.Outcomes {
				fmt.Fprintf(w, "    %s\n", outcome.Describe())
			}
		}
	}
}

// PrintWords renders transformed words only.
func PrintWords(w io.Writer, entries []Entry) {
	for _, entry := range entries {
		fmt.Fprintln(w, entry.Result.Word)
	}
}

func colorWord(entry Entry) string {
	if entry.Result.Changed() {
		return color.GreenString(entry.Result.Word)
	}
	return entry.Result.Word
}
