package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"

	"passforge/internal/rules"
)

const doneKeyword = "done"

// PrintUsage writes the interactive-mode banner explaining the rule
// syntax.
func PrintUsage(w io.Writer) {
	fmt.Fprintln(w, "No ruleset provided. Entering interactive mode.")
	fmt.Fprintln(w, "Enter rules in format: 'char instance replacement'")
	fmt.Fprintln(w, "  - 'char' is the character to replace")
	fmt.Fprintln(w, "  - 'instance' is the occurrence (1, 2, etc.) or 'all'")
	fmt.Fprintln(w, "  - 'replacement' is what to replace it with")
	fmt.Fprintln(w, "Example: 'o 1 0' replaces first 'o' with '0'")
	fmt.Fprintln(w, "Combine rules on one line with '||': 'o 1 0 || e all 3 || s 2 $'")
	fmt.Fprintln(w, `Escape a literal delimiter with a backslash: 'text \|| more'`)
	fmt.Fprintln(w, "Each line is a separate ruleset.")
}

// CollectRulesets accumulates rulesets interactively, one per entered
// line, until the user types "done". A malformed line prints a warning
// and re-prompts instead of aborting; interactive entry is forgiving
// where file parsing is fatal.
func CollectRulesets(p Prompter, warnings io.Writer) (*rules.RuleFile, error) {
	file := &rules.RuleFile{}
	for lineNo := 1; ; lineNo++ {
		input, err := p.Prompt("Enter a ruleset (or 'done' to finish):")
		if err != nil {
			if errors.Is(err, ErrCancelled) {
				break
			}
			return nil, err
		}
		if strings.EqualFold(strings.TrimSpace(input), doneKeyword) {
			break
		}

		set, err := rules.ParseLine(input, lineNo)
		if err != nil {
			fmt.Fprintln(warnings, color.YellowString("Warning: %v", err))
			log.Debug().Err(err).Str("input", input).Msg("rejected interactive ruleset")
			continue
		}
		if set == nil {
			continue
		}

		p.AppendHistory(input)
		set.Index = len(file.Sets) + 1
		file.Sets = append(file.Sets, *set)
	}
	return file, nil
}
