// Package rules defines the rule data model and the parser that turns
// rule source text into ordered rulesets.
package rules

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Instance selects which occurrence of a matched character a rule acts on.
// Occurrences are counted 1-based; All selects every occurrence.
type Instance int

// All selects every occurrence of the matched character.
const All Instance = 0

func (i Instance) String() string {
	if i == All {
		return "all"
	}
	return strconv.Itoa(int(i))
}

// Direction selects which way a case transform folds.
type Direction int

const (
	Lower Direction = iota
	Upper
)

func (d Direction) String() string {
	if d == Upper {
		return "upper"
	}
	return "lower"
}

// Fold applies the case transform to a single rune.
func (d Direction) Fold(r rune) rune {
	if d == Upper {
		return unicode.ToUpper(r)
	}
	return unicode.ToLower(r)
}

// Spec is one atomic operation within a ruleset.
type Spec interface {
	fmt.Stringer
	spec()
}

// Replace substitutes occurrence(s) of Char with a literal string.
// The replacement may be any length, including empty (a deletion).
type Replace struct {
	Replacement string
	Char        rune
	Instance    Instance
}

func (Replace) spec() {}

func (r Replace) String() string {
	return fmt.Sprintf("%c %s %s", r.Char, r.Instance, escapeDelimiter(r.Replacement))
}

// CaseChar folds the case of occurrence(s) of Char.
type CaseChar struct {
	Char      rune
	Instance  Instance
	Direction Direction
}

func (CaseChar) spec() {}

func (c CaseChar) String() string {
	return fmt.Sprintf("%c %s %s", c.Char, c.Instance, c.Direction)
}

// CasePos folds the case of the character at a 1-based position,
// addressed against the word as it stands when the rule executes.
type CasePos struct {
	Position  int
	Direction Direction
}

func (CasePos) spec() {}

func (c CasePos) String() string {
	return fmt.Sprintf("pos %d %s", c.Position, c.Direction)
}

// RuleSet is one line of rule source: an ordered, non-empty sequence of
// specs, plus the verbatim source line for display.
type RuleSet struct {
	Source string
	Specs  []Spec
	Index  int // 1-based position within the rule file
	Line   int // 1-based physical source line
}

// Describe renders the ruleset in canonical form, one spec per segment.
func (rs RuleSet) Describe() string {
	parts := make([]string, 0, len(rs.Specs))
	for _, s := range rs.Specs {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, " "+Delimiter+" ")
}

// RuleFile is an ordered collection of rulesets, one per source line.
type RuleFile struct {
	Sets []RuleSet
}

func escapeDelimiter(s string) string {
	return strings.ReplaceAll(s, Delimiter, `\`+Delimiter)
}
