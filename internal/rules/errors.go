package rules

import "fmt"

// ErrorKind classifies what part of a rule failed to parse.
type ErrorKind int

const (
	InvalidMatchChar ErrorKind = iota
	InvalidInstance
	InvalidPosition
	InvalidDirection
	UnterminatedEscape
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidMatchChar:
		return "invalid match character"
	case InvalidInstance:
		return "invalid instance"
	case InvalidPosition:
		return "invalid position"
	case InvalidDirection:
		return "invalid direction"
	case UnterminatedEscape:
		return "unterminated escape"
	default:
		return "unknown"
	}
}

// ParseError reports a malformed rule with its 1-based source line.
// A single bad line aborts the whole parse.
type ParseError struct {
	Field string
	Line  int
	Kind  ErrorKind
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Kind)
	}
	return fmt.Sprintf("line %d: %s %q", e.Line, e.Kind, e.Field)
}
