package editor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cppgen-labs/cppgen/internal/naming"
)

// ErrCancelled is returned when the user gives no class name.
var ErrCancelled = errors.New("no class name given")

// NameSource supplies class name candidates from the editing context.
type NameSource interface {
	SelectedText() (string, bool)
	WordAtCursor() (string, bool)
}

// Prompter asks the user for a class name. Implementations return
// ErrCancelled when the user gives up.
type Prompter interface {
	PromptClassName(valid func(string) bool) (string, error)
}

// ResolveName picks the first valid candidate from the selection, then the
// word under the cursor, then the prompter. src may be nil.
func ResolveName(src NameSource, p Prompter) (naming.ClassName, error) {
	if src != nil {
		if text, ok := src.SelectedText(); ok && naming.IsValid(text) {
			return naming.Validate(text)
		}
		if word, ok := src.WordAtCursor(); ok && naming.IsValid(word) {
			return naming.Validate(word)
		}
	}
	return PromptName(p)
}

// PromptName asks p for a name and validates the answer.
func PromptName(p Prompter) (naming.ClassName, error) {
	if p == nil {
		return naming.ClassName{}, ErrCancelled
	}
	text, err := p.PromptClassName(naming.IsValid)
	if err != nil {
		return naming.ClassName{}, err
	}
	return naming.Validate(text)
}

// Answer is a Prompter that returns a fixed reply, such as a name given on
// the command line. An empty reply cancels.
type Answer string

// PromptClassName returns the answer without consulting valid, so that an
// invalid argument surfaces as an invalid name rather than a retry.
func (a Answer) PromptClassName(func(string) bool) (string, error) {
	if strings.TrimSpace(string(a)) == "" {
		return "", ErrCancelled
	}
	return string(a), nil
}

// LinePrompter reads class names line by line, re-asking until the answer
// is valid. An empty line or end of input cancels.
type LinePrompter struct {
	reader *bufio.Reader
	w      io.Writer
}

// NewLinePrompter returns a LinePrompter reading r and writing prompts to w.
func NewLinePrompter(r io.Reader, w io.Writer) *LinePrompter {
	return &LinePrompter{reader: bufio.NewReader(r), w: w}
}

// PromptClassName implements Prompter.
func (p *LinePrompter) PromptClassName(valid func(string) bool) (string, error) {
	for {
		fmt.Fprint(p.w, "Enter the name of the C++ class here: ")
		line, err := p.reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading class name: %w", err)
		}
		text := strings.TrimSpace(line)
		if text == "" {
			return "", ErrCancelled
		}
		if valid == nil || valid(text) {
			return text, nil
		}
		fmt.Fprintln(p.w, "Invalid class name.")
		if errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
	}
}
