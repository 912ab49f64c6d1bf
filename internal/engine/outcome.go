package engine

import (
	"fmt"

	"passforge/internal/rules"
)

// Status classifies how a single spec affected the word. Out-of-range
// instances and positions are valid silent outcomes, never errors.
type Status int

const (
	Applied Status = iota
	NoMatch
	OutOfRange
)

func (s Status) String() string {
	switch s {
	case Applied:
		return "applied"
	case NoMatch:
		return "no match"
	case OutOfRange:
		return "out of range"
	default:
		return "unknown"
	}
}

// Outcome records what one spec did, in arrival order.
type Outcome struct {
	Spec   rules.Spec
	Status Status
	Count  int // occurrences changed when Status is Applied
}

// Describe renders the outcome for detailed reporting.
func (o Outcome) Describe() string {
	switch o.Status {
	case Applied:
		if o.Count == 1 {
			return fmt.Sprintf("%s: changed 1 occurrence", o.Spec)
		}
		return fmt.Sprintf("%s: changed %d occurrences", o.Spec, o.Count)
	case OutOfRange:
		return fmt.Sprintf("%s: position out of range", o.Spec)
	default:
		return fmt.Sprintf("%s: no match", o.Spec)
	}
}

// Result is the outcome of applying one ruleset to one word.
type Result struct {
	Original string
	Word     string
	Outcomes []Outcome
}

// Changed reports whether the ruleset altered the word at all.
func (r Result) Changed() bool {
	return r.Original != r.Word
}
