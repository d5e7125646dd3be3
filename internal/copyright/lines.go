package copyright

import "strings"

// LineKind classifies one line of a comment block.
type LineKind int

const (
	// Plain lines pass through normalisation unchanged.
	Plain LineKind = iota
	// Terminator lines end with the closing "*/".
	Terminator
	// Continuation lines start with whitespace followed by '*'.
	Continuation
)

func (k LineKind) String() string {
	switch k {
	case Terminator:
		return "terminator"
	case Continuation:
		return "continuation"
	default:
		return "plain"
	}
}

const closeToken = "*/"

// Classify returns the kind of line. The terminator check runs first, so a
// line such as " */" is a Terminator and never a Continuation.
func Classify(line string) LineKind {
	if strings.HasSuffix(strings.TrimRight(line, " \t\r"), closeToken) {
		return Terminator
	}
	trimmed := strings.TrimLeft(line, " \t")
	if len(trimmed) < len(line) && strings.HasPrefix(trimmed, "*") {
		return Continuation
	}
	return Plain
}

// Normalize rewrites line according to its kind: whitespace before a
// trailing "*/" is removed, and a continuation's leading whitespace and
// single '*' become "**".
func Normalize(line string) string {
	switch Classify(line) {
	case Terminator:
		body, eol := splitEOL(line)
		body = strings.TrimRight(body, " \t")
		body = strings.TrimRight(strings.TrimSuffix(body, closeToken), " \t")
		return body + closeToken + eol
	case Continuation:
		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, "**") {
			return trimmed
		}
		return "*" + trimmed
	}
	return line
}

// splitEOL separates a trailing carriage return from the line body.
func splitEOL(line string) (body, eol string) {
	if strings.HasSuffix(line, "\r") {
		return line[:len(line)-1], "\r"
	}
	return line, ""
}
