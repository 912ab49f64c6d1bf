// Package engine applies parsed rulesets to words.
package engine

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"passforge/internal/rules"
)

// Apply runs every spec in the ruleset, in order, against word. Each
// spec operates on the word as mutated by the specs before it; the
// ruleset as a whole always starts from a fresh copy of word. Apply is
// a pure function with no shared state, so callers may evaluate
// independent (word, ruleset) pairs in parallel.
func Apply(set rules.RuleSet, word string, caseInsensitive bool) Result {
	current := word
	outcomes := make([]Outcome, 0, len(set.Specs))
	for _, spec := range set.Specs {
		var outcome Outcome
		current, outcome = applySpec(spec, current, caseInsensitive)
		outcomes = append(outcomes, outcome)
	}
	return Result{Original: word, Word: current, Outcomes: outcomes}
}

func applySpec(spec rules.Spec, word string, caseInsensitive bool) (string, Outcome) {
	switch s := spec.(type) {
	case rules.Replace:
		return applyReplace(s, word, caseInsensitive)
	case rules.CaseChar:
		return applyCaseChar(s, word, caseInsensitive)
	case rules.CasePos:
		return applyCasePos(s, word)
	default:
		return word, Outcome{Spec: spec, Status: NoMatch}
	}
}

func applyReplace(s rules.Replace, word string, caseInsensitive bool) (string, Outcome) {
	var b strings.Builder
	seen := 0
	replaced := 0
	for i, r := range word {
		if !matches(r, s.Char, caseInsensitive) {
			b.WriteRune(r)
			continue
		}
		seen++
		if s.Instance == rules.All {
			b.WriteString(s.Replacement)
			replaced++
			continue
		}
		if rules.Instance(seen) != s.Instance {
			b.WriteRune(r)
			continue
		}
		// Nth occurrence found; nothing past it can match again.
		b.WriteString(s.Replacement)
		b.WriteString(word[i+utf8.RuneLen(r):])
		replaced++
		break
	}
	outcome := Outcome{Spec: s, Status: NoMatch}
	if replaced > 0 {
		outcome.Status = Applied
		outcome.Count = replaced
	}
	return b.String(), outcome
}

func applyCaseChar(s rules.CaseChar, word string, caseInsensitive bool) (string, Outcome) {
	var b strings.Builder
	seen := 0
	folded := 0
	for i, r := range word {
		if !matches(r, s.Char, caseInsensitive) {
			b.WriteRune(r)
			continue
		}
		seen++
		if s.Instance == rules.All {
			b.WriteRune(s.Direction.Fold(r))
			folded++
			continue
		}
		if rules.Instance(seen) != s.Instance {
			b.WriteRune(r)
			continue
		}
		b.WriteRune(s.Direction.Fold(r))
		b.WriteString(word[i+utf8.RuneLen(r):])
		folded++
		break
	}
	outcome := Outcome{Spec: s, Status: NoMatch}
	if folded > 0 {
		outcome.Status = Applied
		outcome.Count = folded
	}
	return b.String(), outcome
}

// applyCasePos addresses the word by 1-based rune position as it stands
// at this step, so earlier length-changing replacements shift which
// character it touches.
func applyCasePos(s rules.CasePos, word string) (string, Outcome) {
	runes := []rune(word)
	if s.Position > len(runes) {
		return word, Outcome{Spec: s, Status: OutOfRange}
	}
	runes[s.Position-1] = s.Direction.Fold(runes[s.Position-1])
	return string(runes), Outcome{Spec: s, Status: Applied, Count: 1}
}

func matches(r, match rune, caseInsensitive bool) bool {
	if caseInsensitive {
		return unicode.ToLower(r) == unicode.ToLower(match)
	}
	return r == match
}
