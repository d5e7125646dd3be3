package banner

import (
	"strings"

	"github.com/cppgen-labs/cppgen/internal/naming"
)

// Builder composes banner-bracketed class blocks. Each emitted line is
// prefixed with the builder's indent.
type Builder struct {
	width     int
	formatter Formatter
	indent    string
}

// Option configures a Builder.
type Option func(*Builder)

// WithWidth sets the banner and rule line width.
func WithWidth(width int) Option {
	return func(b *Builder) {
		if width > 0 {
			b.width = width
		}
	}
}

// WithFillOrder sets the padding fill order for banner lines.
func WithFillOrder(order FillOrder) Option {
	return func(b *Builder) { b.formatter.Order = order }
}

// WithIndent sets the prefix applied to every emitted line.
func WithIndent(prefix string) Option {
	return func(b *Builder) { b.indent = prefix }
}

// NewBuilder returns a Builder using DefaultWidth and RightFirst unless
// overridden.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{width: DefaultWidth}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Indented returns a copy of b that prefixes lines with indent.
func (b *Builder) Indented(indent string) *Builder {
	c := *b
	c.indent = indent
	return &c
}

// Width returns the configured line width.
func (b *Builder) Width() int { return b.width }

// Line returns the bare banner line for label, without indent.
func (b *Builder) Line(label string) string {
	return b.formatter.Format(label, b.width)
}

// Header returns the block placed above a class: marker, rule, banner, marker.
func (b *Builder) Header(name naming.ClassName) string {
	return b.join(
		Marker,
		RuleLine(b.width),
		b.Line(name.String()),
		Marker,
	)
}

// Footer returns the block placed below a class: marker, banner, rule, marker.
func (b *Builder) Footer(name naming.ClassName) string {
	return b.join(
		Marker,
		b.Line(name.String()),
		RuleLine(b.width),
		Marker,
	)
}

// Declaration returns a class skeleton bracketed by header and footer,
// terminated by a newline.
func (b *Builder) Declaration(name naming.ClassName) string {
	base := name.Base()
	body := b.join(
		"class "+name.String(),
		"{",
		"public:",
		"    "+base+"();",
		"    ~"+base+"();",
		"    "+SeparatorLine(b.width-4),
		"",
		"protected:",
		"private:",
		"};",
	)
	return b.Header(name) + "\n" + body + "\n" + b.Footer(name) + "\n"
}

// Definition returns empty constructor and destructor bodies bracketed by
// header and footer, terminated by a newline.
func (b *Builder) Definition(name naming.ClassName) string {
	scope := name.String() + "::"
	base := name.Base()
	body := b.join(
		scope+base+"()",
		"{",
		"    // constructor",
		"}",
		SeparatorLine(b.width),
		scope+"~"+base+"()",
		"{",
		"    // destructor",
		"}",
	)
	return b.Header(name) + "\n" + body + "\n" + b.Footer(name) + "\n"
}

func (b *Builder) join(lines ...string) string {
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(b.indent)
		sb.WriteString(line)
	}
	return sb.String()
}
