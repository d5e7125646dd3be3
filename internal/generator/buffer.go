package generator

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cppgen-labs/cppgen/internal/banner"
	"github.com/cppgen-labs/cppgen/internal/copyright"
	"github.com/cppgen-labs/cppgen/internal/editor"
	"github.com/cppgen-labs/cppgen/internal/naming"
)

// BannerOutcome reports what InsertBanner did.
type BannerOutcome int

const (
	// BannerInserted means a header and footer were added around the cursor line.
	BannerInserted BannerOutcome = iota
	// BannerRenamed means the banner lines enclosing the cursor were rewritten.
	BannerRenamed
)

func (o BannerOutcome) String() string {
	if o == BannerRenamed {
		return "renamed"
	}
	return "inserted"
}

// InsertDeclaration inserts a class declaration block at the view's
// insertion line, every line prefixed with indent.
func (g *Generator) InsertDeclaration(v *editor.View, name naming.ClassName, indent string) error {
	if v == nil || v.Buffer == nil {
		return ErrNoActiveContext
	}
	line := v.InsertLine()
	if err := v.Buffer.InsertLines(line, g.builder.Indented(indent).Declaration(name)); err != nil {
		return fmt.Errorf("inserting declaration of %s: %w", name, err)
	}
	g.logger.Debug("inserted declaration", zap.String("class", name.String()), zap.Int("line", line))
	return nil
}

// InsertDefinition inserts a class definition block at the view's
// insertion line, every line prefixed with indent.
func (g *Generator) InsertDefinition(v *editor.View, name naming.ClassName, indent string) error {
	if v == nil || v.Buffer == nil {
		return ErrNoActiveContext
	}
	line := v.InsertLine()
	if err := v.Buffer.InsertLines(line, g.builder.Indented(indent).Definition(name)); err != nil {
		return fmt.Errorf("inserting definition of %s: %w", name, err)
	}
	g.logger.Debug("inserted definition", zap.String("class", name.String()), zap.Int("line", line))
	return nil
}

// InsertBanner renames the banner lines enclosing the cursor when there is
// one above and one below it. Otherwise it puts a banner header on the
// cursor line and a footer after it.
func (g *Generator) InsertBanner(v *editor.View, name naming.ClassName, indent string) (BannerOutcome, error) {
	if v == nil || v.Buffer == nil {
		return 0, ErrNoActiveContext
	}
	buf := v.Buffer
	lines := buf.Lines()
	if v.Cursor.Line < 0 || v.Cursor.Line >= len(lines) {
		return 0, fmt.Errorf("cursor %s: %w", v.Cursor, editor.ErrRange)
	}

	if above, below, ok := banner.FindEnclosing(lines, v.Cursor.Line); ok {
		for _, i := range []int{above, below} {
			replacement := leadingSpace(lines[i]) + g.builder.Line(name.String())
			if err := buf.ReplaceLine(i, replacement); err != nil {
				return 0, fmt.Errorf("renaming banner on line %d: %w", i, err)
			}
		}
		g.logger.Debug("renamed class banner",
			zap.String("class", name.String()), zap.Int("above", above), zap.Int("below", below))
		return BannerRenamed, nil
	}

	b := g.builder.Indented(indent)
	footerLine := min(v.Cursor.Line+1, buf.LineCount())
	if err := buf.InsertLines(footerLine, b.Footer(name)+"\n"); err != nil {
		return 0, fmt.Errorf("inserting banner footer: %w", err)
	}
	if err := buf.InsertLines(v.Cursor.Line, b.Header(name)+"\n"); err != nil {
		return 0, fmt.Errorf("inserting banner header: %w", err)
	}
	g.logger.Debug("inserted class banner", zap.String("class", name.String()), zap.Int("line", v.Cursor.Line))
	return BannerInserted, nil
}

// ApplyCopyright updates the buffer's copyright block, or inserts a fresh
// one at the top when there is none.
func (g *Generator) ApplyCopyright(buf *editor.Buffer) (copyright.Status, error) {
	if buf == nil {
		return copyright.Absent, ErrNoActiveContext
	}
	r := copyright.Ensure(buf.Text(), g.settings.Attribution())
	if r.Status == copyright.Updated || r.Status == copyright.Inserted {
		if err := buf.ReplaceRange(r.Start, r.End, r.Replacement); err != nil {
			return r.Status, fmt.Errorf("writing copyright block: %w", err)
		}
	}
	g.logger.Debug("copyright block", zap.Stringer("status", r.Status))
	return r.Status, nil
}

func leadingSpace(s string) string {
	return s[:len(s)-len(strings.TrimLeft(s, " \t"))]
}
