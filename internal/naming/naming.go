package naming

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrInvalidName is returned when text is not a well-formed class name.
var ErrInvalidName = errors.New("invalid class name")

// Separator joins the segments of a namespace-qualified class name.
const Separator = "::"

var classNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(::[A-Za-z_][A-Za-z0-9_]*)*$`)

var upper = cases.Upper(language.Und)

// IsValid reports whether text, after trimming surrounding whitespace, is an
// identifier optionally qualified with "::".
func IsValid(text string) bool {
	return classNamePattern.MatchString(strings.TrimSpace(text))
}

// ClassName is a validated, trimmed class name. The zero value is not valid;
// obtain one through Validate or MustParse.
type ClassName struct {
	text string
}

// Validate trims text and returns it as a ClassName, or an error wrapping
// ErrInvalidName.
func Validate(text string) (ClassName, error) {
	trimmed := strings.TrimSpace(text)
	if !classNamePattern.MatchString(trimmed) {
		return ClassName{}, fmt.Errorf("%w: %q", ErrInvalidName, text)
	}
	return ClassName{text: trimmed}, nil
}

// MustParse is like Validate but panics on invalid input. Intended for
// constants and tests.
func MustParse(text string) ClassName {
	n, err := Validate(text)
	if err != nil {
		panic(err)
	}
	return n
}

// String returns the full name as typed, e.g. "NS::Inner".
func (n ClassName) String() string { return n.text }

// IsZero reports whether n was never validated.
func (n ClassName) IsZero() bool { return n.text == "" }

// Segments splits the name on "::".
func (n ClassName) Segments() []string {
	if n.text == "" {
		return nil
	}
	return strings.Split(n.text, Separator)
}

// Base returns the last segment: "Inner" for "NS::Inner".
func (n ClassName) Base() string {
	if i := strings.LastIndex(n.text, Separator); i >= 0 {
		return n.text[i+len(Separator):]
	}
	return n.text
}

// FileStem is the file name without extension used for the generated
// header and source. Qualifiers are dropped since ':' is not portable in
// file names.
func (n ClassName) FileStem() string { return n.Base() }

// HeaderGuard returns the include guard macro: "WIDGET_H" for "Widget",
// "NS_INNER_H" for "NS::Inner".
func (n ClassName) HeaderGuard() string {
	return upper.String(strings.Join(n.Segments(), "_")) + "_H"
}
