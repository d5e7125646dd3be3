//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/cppgen-labs/cppgen/internal/config"
	"github.com/cppgen-labs/cppgen/internal/generator"
	"github.com/cppgen-labs/cppgen/internal/profile"
)

var testNow = time.Date(2025, time.October, 3, 12, 0, 0, 0, time.UTC)

// testEnv holds paths to an isolated project tree.
type testEnv struct {
	ProjectDir string // project root, holds the profile when one is written
	IncludeDir string // <project>/include
	SourceDir  string // <project>/src
}

// setupTestEnv creates a project with include/ and src/ siblings and points
// CPPGEN_HOME at an empty folder so user settings do not leak in.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	t.Setenv("CPPGEN_HOME", t.TempDir())

	root := t.TempDir()
	env := &testEnv{
		ProjectDir: root,
		IncludeDir: filepath.Join(root, "include"),
		SourceDir:  filepath.Join(root, "src"),
	}
	for _, dir := range []string{env.IncludeDir, env.SourceDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("creating %s: %v", dir, err)
		}
	}
	return env
}

// newGenerator resolves settings for dir the way the CLI does, with user
// settings taken from v.
func newGenerator(t *testing.T, v *viper.Viper, dir string) *generator.Generator {
	t.Helper()
	fs := afero.NewOsFs()
	prof, err := profile.Find(fs, dir)
	if err != nil {
		t.Fatalf("finding profile: %v", err)
	}
	settings, err := config.Resolve(v, prof, testNow)
	if err != nil {
		t.Fatalf("resolving settings: %v", err)
	}
	return generator.New(fs, settings)
}

// userSettings returns a Viper instance holding author and company.
func userSettings(author, company string) *viper.Viper {
	v := viper.New()
	v.Set(config.KeyAuthorName, author)
	v.Set(config.KeyCompanyName, company)
	return v
}

// writeFile creates parent directories and writes content to path.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
