package pathresolve

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Directory names recognised as header or source locations.
var (
	headerNames = []string{"inc", "include"}
	sourceNames = []string{"src", "source"}
)

// PathPair holds the directories that receive a class's header and source.
type PathPair struct {
	HeaderDir string
	SourceDir string
}

// Resolver looks up sibling directories on a filesystem.
type Resolver struct {
	fs  afero.Fs
	sep string
}

// New returns a Resolver that checks existence on fs.
func New(fs afero.Fs) *Resolver {
	return &Resolver{fs: fs, sep: string(filepath.Separator)}
}

// NewOS returns a Resolver backed by the operating system filesystem.
func NewOS() *Resolver {
	return New(afero.NewOsFs())
}

// HeaderDirFor returns the header directory next to a source directory.
// For dir ending in "src" or "source" it tries "inc" then "include";
// any other dir is returned as is.
func (r *Resolver) HeaderDirFor(dir string) string {
	return r.sibling(dir, sourceNames, headerNames)
}

// SourceDirFor returns the source directory next to a header directory.
// For dir ending in "inc" or "include" it tries "src" then "source";
// any other dir is returned as is.
func (r *Resolver) SourceDirFor(dir string) string {
	return r.sibling(dir, headerNames, sourceNames)
}

// Pair resolves both directories for dir.
func (r *Resolver) Pair(dir string) PathPair {
	return PathPair{
		HeaderDir: r.HeaderDirFor(dir),
		SourceDir: r.SourceDirFor(dir),
	}
}

func (r *Resolver) sibling(dir string, from, to []string) string {
	parent, ok := r.trimSuffix(dir, from)
	if !ok {
		return dir
	}
	for _, name := range to {
		candidate := parent + r.sep + name
		if r.isDir(candidate) {
			return candidate
		}
	}
	return dir
}

// trimSuffix strips a trailing separator+name for the first matching name,
// compared case-insensitively.
func (r *Resolver) trimSuffix(dir string, names []string) (string, bool) {
	lower := strings.ToLower(dir)
	for _, name := range names {
		suffix := r.sep + name
		if strings.HasSuffix(lower, suffix) {
			return dir[:len(dir)-len(suffix)], true
		}
	}
	return "", false
}

func (r *Resolver) isDir(path string) bool {
	ok, err := afero.DirExists(r.fs, path)
	return err == nil && ok
}
