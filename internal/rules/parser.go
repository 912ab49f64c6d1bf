package rules

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// Delimiter separates specs within one ruleset line. A backslash
// immediately before it (`\||`) makes it literal field text instead.
const Delimiter = "||"

const commentPrefix = "#"

// Parse converts rule source text into a RuleFile. Each non-blank,
// non-comment line becomes one ruleset. Parsing is all-or-nothing: the
// first malformed line aborts with a *ParseError.
func Parse(source string) (*RuleFile, error) {
	file := &RuleFile{}
	scanner := bufio.NewScanner(strings.NewReader(source))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		set, err := ParseLine(scanner.Text(), lineNo)
		if err != nil {
			return nil, err
		}
		if set == nil {
			continue
		}
		set.Index = len(file.Sets) + 1
		file.Sets = append(file.Sets, *set)
	}
	if err := scanner.Err(); err != nil {
		return nil, err //nolint:wrapcheck // bufio scan of an in-memory string
	}
	log.Debug().Int("rulesets", len(file.Sets)).Msg("parsed rule source")
	return file, nil
}

// ParseLine parses a single line of rule source. It returns (nil, nil)
// for blank and comment lines. The returned ruleset has its Line set but
// not its Index; Parse assigns indices as it collects sets.
func ParseLine(line string, lineNo int) (*RuleSet, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, commentPrefix) {
		return nil, nil
	}

	segments, perr := splitEscaped(trimmed)
	if perr != nil {
		perr.Line = lineNo
		return nil, perr
	}

	set := &RuleSet{Source: trimmed, Line: lineNo}
	for _, segment := range segments {
		spec, perr := parseSpec(segment)
		if perr != nil {
			perr.Line = lineNo
			return nil, perr
		}
		set.Specs = append(set.Specs, spec)
	}
	return set, nil
}

// splitEscaped splits a line into spec segments on the delimiter,
// honoring the backslash escape and trimming each segment. The escape
// character itself is removed from field values.
func splitEscaped(line string) ([]string, *ParseError) {
	var segments []string
	var current strings.Builder
	for i := 0; i < len(line); i++ {
		switch {
		case line[i] == '\\' && strings.HasPrefix(line[i+1:], Delimiter):
			current.WriteString(Delimiter)
			i += len(Delimiter)
		case line[i] == '\\' && i == len(line)-1:
			return nil, &ParseError{Kind: UnterminatedEscape, Field: line}
		case strings.HasPrefix(line[i:], Delimiter):
			segments = append(segments, strings.TrimSpace(current.String()))
			current.Reset()
			i += len(Delimiter) - 1
		default:
			current.WriteByte(line[i])
		}
	}
	segments = append(segments, strings.TrimSpace(current.String()))
	return segments, nil
}

// parseSpec parses one delimited segment into a Spec. The returned
// error has no line number; callers fill it in.
func parseSpec(segment string) (Spec, *ParseError) {
	first, rest := nextField(segment)
	if first == "" {
		return nil, &ParseError{Kind: InvalidMatchChar, Field: segment}
	}
	second, remainder := nextField(rest)

	if strings.EqualFold(first, "pos") {
		return parsePosSpec(second, remainder)
	}

	runes := []rune(first)
	if len(runes) != 1 {
		return nil, &ParseError{Kind: InvalidMatchChar, Field: first}
	}
	instance, ok := parseInstance(second)
	if !ok {
		return nil, &ParseError{Kind: InvalidInstance, Field: second}
	}

	if direction, ok := parseDirection(remainder, true); ok {
		return CaseChar{Char: runes[0], Instance: instance, Direction: direction}, nil
	}
	return Replace{Char: runes[0], Instance: instance, Replacement: remainder}, nil
}

func parsePosSpec(positionField, directionField string) (Spec, *ParseError) {
	position, err := strconv.Atoi(positionField)
	if err != nil || position < 1 {
		return nil, &ParseError{Kind: InvalidPosition, Field: positionField}
	}
	direction, ok := parseDirection(directionField, false)
	if !ok {
		return nil, &ParseError{Kind: InvalidDirection, Field: directionField}
	}
	return CasePos{Position: position, Direction: direction}, nil
}

func parseInstance(field string) (Instance, bool) {
	if field == "" {
		return 0, false
	}
	if strings.EqualFold(field, "all") {
		return All, true
	}
	n, err := strconv.Atoi(field)
	if err != nil || n < 1 {
		return 0, false
	}
	return Instance(n), true
}

// parseDirection recognizes a direction keyword. The field must be a
// single token: a remainder with embedded whitespace is replacement
// text, not a direction. Position rules take only the full keywords;
// character rules also take the u/l shorthands.
func parseDirection(field string, allowShorthand bool) (Direction, bool) {
	switch {
	case strings.EqualFold(field, "upper"):
		return Upper, true
	case strings.EqualFold(field, "lower"):
		return Lower, true
	case allowShorthand && strings.EqualFold(field, "u"):
		return Upper, true
	case allowShorthand && strings.EqualFold(field, "l"):
		return Lower, true
	default:
		return 0, false
	}
}

// nextField cuts the leading whitespace-delimited token off a string,
// returning the token and the remainder with leading space trimmed.
// The remainder is otherwise verbatim so replacement text keeps its
// embedded whitespace.
func nextField(s string) (field, remainder string) {
	s = strings.TrimLeft(s, " \t")
	cut := strings.IndexAny(s, " \t")
	if cut < 0 {
		return s, ""
	}
	return s[:cut], strings.TrimLeft(s[cut:], " \t")
}
