package copyright

import (
	"slices"
	"strings"
)

const (
	openToken = "/*"
	keyword   = "Copyright"
)

// Status reports what Update or Ensure did.
type Status int

const (
	// Absent means the text has no copyright block; nothing was changed.
	Absent Status = iota
	// Unchanged means the block already credits the author for this month.
	Unchanged
	// Updated means an "Updated by" line was added to the existing block.
	Updated
	// Inserted means a fresh notice was prepended.
	Inserted
)

func (s Status) String() string {
	switch s {
	case Unchanged:
		return "unchanged"
	case Updated:
		return "updated"
	case Inserted:
		return "inserted"
	default:
		return "absent"
	}
}

// Block is the location and content of the first comment in a text.
type Block struct {
	Start int    // byte offset of "/*"
	End   int    // byte offset just past "*/"
	Text  string // the comment including delimiters
}

// Result describes the outcome of Update or Ensure. When Status is Updated
// or Inserted, the bytes [Start, End) of the input were replaced by
// Replacement to produce Text.
type Result struct {
	Status      Status
	Start       int
	End         int
	Replacement string
	Text        string
}

// FirstComment returns the first /* ... */ span in text.
func FirstComment(text string) (Block, bool) {
	start := strings.Index(text, openToken)
	if start < 0 {
		return Block{}, false
	}
	rel := strings.Index(text[start+len(openToken):], closeToken)
	if rel < 0 {
		return Block{}, false
	}
	end := start + len(openToken) + rel + len(closeToken)
	return Block{Start: start, End: end, Text: text[start:end]}, true
}

// Find returns the first comment in text when it is a copyright block. An
// unrelated leading comment is reported as not found.
func Find(text string) (Block, bool) {
	b, ok := FirstComment(text)
	if !ok || !isCopyright(b.Text) {
		return Block{}, false
	}
	return b, true
}

func isCopyright(comment string) bool {
	rest := strings.TrimLeft(strings.TrimPrefix(comment, openToken), " \t\r\n")
	return len(rest) >= len(keyword) && strings.EqualFold(rest[:len(keyword)], keyword)
}

// NormalizeBlock applies Normalize to every line of a comment block. A
// block written on one line gets its terminator moved to a line of its own
// so that lines can be inserted before it.
func NormalizeBlock(comment string) []string {
	lines := strings.Split(comment, "\n")
	for i, line := range lines {
		lines[i] = Normalize(line)
	}
	if len(lines) == 1 {
		body, eol := splitEOL(lines[0])
		body = strings.TrimRight(strings.TrimSuffix(body, closeToken), " \t")
		lines = []string{body + eol, closeToken + eol}
	}
	return lines
}

// Update credits a in the copyright block of text. The returned Result has
// Status Absent when there is no copyright block, Unchanged when the block
// already carries a's "Written by" or "Updated by" line, and Updated
// otherwise.
func Update(text string, a Attribution) Result {
	b, ok := Find(text)
	if !ok {
		return Result{Status: Absent, Text: text}
	}

	lines := NormalizeBlock(b.Text)
	written, updated := a.WrittenBy(), a.UpdatedBy()
	for _, line := range lines {
		if strings.Contains(line, written) || strings.Contains(line, updated) {
			return Result{Status: Unchanged, Start: b.Start, End: b.End, Replacement: b.Text, Text: text}
		}
	}

	last := len(lines) - 1
	_, eol := splitEOL(lines[0])
	lines = slices.Insert(lines, last, "** "+updated+eol)

	replacement := strings.Join(lines, "\n")
	return Result{
		Status:      Updated,
		Start:       b.Start,
		End:         b.End,
		Replacement: replacement,
		Text:        text[:b.Start] + replacement + text[b.End:],
	}
}

// Ensure behaves like Update but prepends a fresh Notice, followed by a
// blank line, when text has no copyright block.
func Ensure(text string, a Attribution) Result {
	r := Update(text, a)
	if r.Status != Absent {
		return r
	}
	replacement := Notice(a) + "\n"
	return Result{
		Status:      Inserted,
		Replacement: replacement,
		Text:        replacement + text,
	}
}
