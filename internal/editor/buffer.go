package editor

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
)

// ErrRange is returned for offsets or lines outside the buffer.
var ErrRange = errors.New("position out of range")

// Buffer holds the text of one file.
type Buffer struct {
	fs       afero.Fs
	path     string
	text     string
	perm     os.FileMode
	modified bool
}

// Open reads path from fs into a Buffer.
func Open(fs afero.Fs, path string) (*Buffer, error) {
	info, err := fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("opening %s: is a directory", path)
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return &Buffer{fs: fs, path: path, text: string(data), perm: info.Mode().Perm()}, nil
}

// NewBuffer returns an unsaved buffer holding text.
func NewBuffer(text string) *Buffer {
	return &Buffer{text: text, perm: 0644}
}

// Path returns the file the buffer was opened from, or "".
func (b *Buffer) Path() string { return b.path }

// Text returns the current contents.
func (b *Buffer) Text() string { return b.text }

// Modified reports whether the buffer changed since it was opened or saved.
func (b *Buffer) Modified() bool { return b.modified }

// Lines splits the buffer on '\n'. A trailing newline yields a final empty
// line, so len(Lines()) == LineCount().
func (b *Buffer) Lines() []string {
	return strings.Split(b.text, "\n")
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	return strings.Count(b.text, "\n") + 1
}

// LineOffset returns the byte offset at which line starts. line may equal
// LineCount(), meaning the end of the buffer.
func (b *Buffer) LineOffset(line int) (int, error) {
	if line < 0 || line > b.LineCount() {
		return 0, fmt.Errorf("line %d: %w", line, ErrRange)
	}
	if line == b.LineCount() {
		return len(b.text), nil
	}
	offset := 0
	for i := 0; i < line; i++ {
		offset += strings.IndexByte(b.text[offset:], '\n') + 1
	}
	return offset, nil
}

// Offset converts a cursor to a byte offset. Columns past the end of the
// line clamp to the line end.
func (b *Buffer) Offset(c Cursor) (int, error) {
	if c.Line < 0 || c.Line >= b.LineCount() || c.Column < 0 {
		return 0, fmt.Errorf("cursor %s: %w", c, ErrRange)
	}
	start, _ := b.LineOffset(c.Line)
	line := b.Lines()[c.Line]
	return start + min(c.Column, len(line)), nil
}

// TextRange returns the text between two cursors.
func (b *Buffer) TextRange(from, to Cursor) (string, error) {
	start, err := b.Offset(from)
	if err != nil {
		return "", err
	}
	end, err := b.Offset(to)
	if err != nil {
		return "", err
	}
	if end < start {
		start, end = end, start
	}
	return b.text[start:end], nil
}

// ReplaceRange replaces the bytes [start, end) with text.
func (b *Buffer) ReplaceRange(start, end int, text string) error {
	if start < 0 || end < start || end > len(b.text) {
		return fmt.Errorf("range [%d, %d): %w", start, end, ErrRange)
	}
	b.text = b.text[:start] + text + b.text[end:]
	b.modified = true
	return nil
}

// InsertAt inserts text at offset.
func (b *Buffer) InsertAt(offset int, text string) error {
	return b.ReplaceRange(offset, offset, text)
}

// InsertLines inserts block so that it starts at the beginning of line.
// Inserting past the last line of a buffer without a trailing newline
// first terminates that line.
func (b *Buffer) InsertLines(line int, block string) error {
	offset, err := b.LineOffset(line)
	if err != nil {
		return err
	}
	if offset == len(b.text) && b.text != "" && !strings.HasSuffix(b.text, "\n") {
		block = "\n" + block
	}
	return b.InsertAt(offset, block)
}

// ReplaceLine replaces the content of line, keeping its line ending.
func (b *Buffer) ReplaceLine(line int, text string) error {
	if line < 0 || line >= b.LineCount() {
		return fmt.Errorf("line %d: %w", line, ErrRange)
	}
	start, _ := b.LineOffset(line)
	end := start + len(strings.TrimSuffix(b.Lines()[line], "\r"))
	return b.ReplaceRange(start, end, text)
}

// Save writes the buffer back to its file.
func (b *Buffer) Save() error {
	if b.fs == nil || b.path == "" {
		return fmt.Errorf("saving buffer: no backing file")
	}
	if err := afero.WriteFile(b.fs, b.path, []byte(b.text), b.perm); err != nil {
		return fmt.Errorf("writing %s: %w", b.path, err)
	}
	b.modified = false
	return nil
}
