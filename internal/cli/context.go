package cli

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cppgen-labs/cppgen/internal/config"
	"github.com/cppgen-labs/cppgen/internal/editor"
	"github.com/cppgen-labs/cppgen/internal/generator"
	"github.com/cppgen-labs/cppgen/internal/profile"
)

// appFS is the filesystem every command works on.
var appFS afero.Fs = afero.NewOsFs()

// now is the clock used for copyright dates.
var now = time.Now

// settingsFor resolves settings for work in dir, honouring the nearest
// project profile.
func settingsFor(dir string) (config.Settings, error) {
	prof, err := profile.Find(appFS, dir)
	if err != nil {
		return config.Settings{}, err
	}
	if prof != nil {
		logger.Debug("using project profile", zap.String("path", prof.Path))
		if err := prof.CheckVersion(buildVersion); err != nil {
			return config.Settings{}, err
		}
	}
	return config.Current(prof, now())
}

// generatorFor returns a Generator configured for work on path, a file or
// a folder.
func generatorFor(path string) (*generator.Generator, error) {
	dir, err := dirOf(path)
	if err != nil {
		return nil, err
	}
	settings, err := settingsFor(dir)
	if err != nil {
		return nil, err
	}
	return generator.New(appFS, settings, generator.WithLogger(logger)), nil
}

// openBuffer loads the file a buffer command acts on.
func openBuffer(path string) (*editor.Buffer, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: no file given", generator.ErrNoActiveContext)
	}
	buf, err := editor.Open(appFS, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generator.ErrNoActiveContext, err)
	}
	return buf, nil
}

// prompterFor answers with the name argument when there is one and asks on
// the command's input otherwise.
func prompterFor(cmd *cobra.Command, args []string, index int) editor.Prompter {
	if len(args) > index {
		return editor.Answer(args[index])
	}
	return editor.NewLinePrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
}

// parsePosition parses a 1-based "LINE" or "LINE:COL" into a cursor.
func parsePosition(s string) (editor.Cursor, error) {
	lineStr, colStr, hasCol := strings.Cut(s, ":")
	line, err := strconv.Atoi(lineStr)
	if err != nil || line < 1 {
		return editor.Cursor{}, fmt.Errorf("invalid position %q: line must be a positive number", s)
	}
	col := 1
	if hasCol {
		col, err = strconv.Atoi(colStr)
		if err != nil || col < 1 {
			return editor.Cursor{}, fmt.Errorf("invalid position %q: column must be a positive number", s)
		}
	}
	return editor.Cursor{Line: line - 1, Column: col - 1}, nil
}

// parseSelection parses "FROM-TO" where both ends are positions.
func parseSelection(s string) (editor.Selection, error) {
	from, to, ok := strings.Cut(s, "-")
	if !ok {
		return editor.Selection{}, fmt.Errorf("invalid selection %q: want LINE:COL-LINE:COL", s)
	}
	start, err := parsePosition(from)
	if err != nil {
		return editor.Selection{}, err
	}
	end, err := parsePosition(to)
	if err != nil {
		return editor.Selection{}, err
	}
	return editor.Selection{Start: start, End: end}, nil
}

// dirOf returns the folder of an existing file, and path itself otherwise.
func dirOf(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	info, err := appFS.Stat(abs)
	if err != nil || info.IsDir() {
		return abs, nil
	}
	return filepath.Dir(abs), nil
}
