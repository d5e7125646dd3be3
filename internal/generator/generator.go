package generator

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/cppgen-labs/cppgen/internal/banner"
	"github.com/cppgen-labs/cppgen/internal/config"
	"github.com/cppgen-labs/cppgen/internal/copyright"
	"github.com/cppgen-labs/cppgen/internal/naming"
	"github.com/cppgen-labs/cppgen/internal/pathresolve"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

const (
	headerTemplate = "header.h.tmpl"
	sourceTemplate = "source.cpp.tmpl"

	headerExt = ".h"
	sourceExt = ".cpp"
)

// fileData holds the variables available to the file templates.
type fileData struct {
	Copyright   string
	Guard       string
	Stem        string
	Separator   string
	Declaration string
	Definition  string
}

// Generator produces class files and edits buffers using one set of
// resolved settings.
type Generator struct {
	fs       afero.Fs
	resolver *pathresolve.Resolver
	settings config.Settings
	builder  *banner.Builder
	logger   *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// New returns a Generator working on fs.
func New(fs afero.Fs, settings config.Settings, opts ...Option) *Generator {
	g := &Generator{
		fs:       fs,
		resolver: pathresolve.New(fs),
		settings: settings,
		builder:  settings.Builder(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Result holds the files written by CreateClassFiles.
type Result struct {
	Name       naming.ClassName
	HeaderPath string
	SourcePath string
}

// Targets returns the header and source paths CreateClassFiles would write
// for name in dir.
func (g *Generator) Targets(dir string, name naming.ClassName) (headerPath, sourcePath string) {
	pair := g.resolver.Pair(dir)
	stem := name.FileStem()
	return filepath.Join(pair.HeaderDir, stem+headerExt), filepath.Join(pair.SourceDir, stem+sourceExt)
}

// CreateClassFiles writes <stem>.h and <stem>.cpp for name. dir is the
// folder the user pointed at; the header goes to its include sibling and
// the source to its source sibling when those exist.
func (g *Generator) CreateClassFiles(dir string, name naming.ClassName) (*Result, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: no valid folder found to create the class files", ErrNoActiveContext)
	}
	if ok, err := afero.DirExists(g.fs, dir); err != nil || !ok {
		return nil, fmt.Errorf("%w: %s is not a folder", ErrNoActiveContext, dir)
	}
	if name.IsZero() {
		return nil, fmt.Errorf("%w: empty", naming.ErrInvalidName)
	}

	headerPath, sourcePath := g.Targets(dir, name)
	g.logger.Debug("resolved class files",
		zap.String("class", name.String()),
		zap.String("header", headerPath),
		zap.String("source", sourcePath))

	for _, p := range []string{headerPath, sourcePath} {
		if ok, _ := afero.Exists(g.fs, p); ok {
			return nil, fmt.Errorf("%w: can't create class %s: %s exists", ErrTargetConflict, name, p)
		}
	}

	header, source, err := g.render(name)
	if err != nil {
		return nil, err
	}

	if err := g.writeNew(headerPath, header); err != nil {
		return nil, err
	}
	if err := g.writeNew(sourcePath, source); err != nil {
		if rmErr := g.fs.Remove(headerPath); rmErr != nil {
			g.logger.Warn("could not remove header after failed source write",
				zap.String("path", headerPath), zap.Error(rmErr))
		}
		return nil, err
	}

	g.logger.Info("created class files",
		zap.String("class", name.String()),
		zap.String("header", headerPath),
		zap.String("source", sourcePath))

	return &Result{Name: name, HeaderPath: headerPath, SourcePath: sourcePath}, nil
}

func (g *Generator) render(name naming.ClassName) (header, source []byte, err error) {
	data := fileData{
		Copyright:   copyright.Notice(g.settings.Attribution()),
		Guard:       name.HeaderGuard(),
		Stem:        name.FileStem(),
		Separator:   banner.SeparatorLine(g.builder.Width()),
		Declaration: g.builder.Declaration(name),
		Definition:  g.builder.Definition(name),
	}

	var hb, sb bytes.Buffer
	if err := templates.ExecuteTemplate(&hb, headerTemplate, data); err != nil {
		return nil, nil, fmt.Errorf("executing template %s: %w", headerTemplate, err)
	}
	if err := templates.ExecuteTemplate(&sb, sourceTemplate, data); err != nil {
		return nil, nil, fmt.Errorf("executing template %s: %w", sourceTemplate, err)
	}
	return hb.Bytes(), sb.Bytes(), nil
}

// writeNew creates path exclusively, so a file that appeared after the
// existence check is reported as a conflict rather than overwritten.
func (g *Generator) writeNew(path string, data []byte) error {
	f, err := g.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrTargetConflict, path)
		}
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
