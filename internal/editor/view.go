package editor

import (
	"fmt"
	"strings"
)

// Cursor is a zero-based line and byte column.
type Cursor struct {
	Line   int
	Column int
}

func (c Cursor) String() string { return fmt.Sprintf("%d:%d", c.Line, c.Column) }

// Selection spans two cursors. An empty selection has Start == End.
type Selection struct {
	Start Cursor
	End   Cursor
}

// Empty reports whether the selection covers no text.
func (s Selection) Empty() bool { return s.Start == s.End }

// View is a buffer with a cursor and an optional selection.
type View struct {
	Buffer    *Buffer
	Cursor    Cursor
	Selection Selection
}

// InsertLine returns the line at which a block is inserted: the cursor line
// when the cursor is at column 0, otherwise the line after it, clamped to
// the end of the buffer.
func (v *View) InsertLine() int {
	if v.Cursor.Column == 0 {
		return min(v.Cursor.Line, v.Buffer.LineCount())
	}
	return min(v.Cursor.Line+1, v.Buffer.LineCount())
}

// SelectedText returns the trimmed selection, if any.
func (v *View) SelectedText() (string, bool) {
	if v.Selection.Empty() {
		return "", false
	}
	text, err := v.Buffer.TextRange(v.Selection.Start, v.Selection.End)
	if err != nil {
		return "", false
	}
	text = strings.TrimSpace(text)
	return text, text != ""
}

// WordAtCursor returns the identifier under the cursor. "::" is part of a
// word so qualified names are picked up whole.
func (v *View) WordAtCursor() (string, bool) {
	lines := v.Buffer.Lines()
	if v.Cursor.Line < 0 || v.Cursor.Line >= len(lines) {
		return "", false
	}
	line := lines[v.Cursor.Line]
	col := min(v.Cursor.Column, len(line))
	if col < 0 {
		return "", false
	}
	// A cursor just past the end of a word still selects it.
	if (col == len(line) || !isWordByte(line[col])) && col > 0 && isWordByte(line[col-1]) {
		col--
	}
	if col >= len(line) || !isWordByte(line[col]) {
		return "", false
	}

	start, end := col, col
	for start > 0 && isWordByte(line[start-1]) {
		start--
	}
	for end < len(line) && isWordByte(line[end]) {
		end++
	}
	word := strings.Trim(line[start:end], ":")
	return word, word != ""
}

func isWordByte(c byte) bool {
	return c == '_' || c == ':' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
