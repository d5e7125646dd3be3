package profile

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func writeProfile(t *testing.T, fs afero.Fs, dir, content string) string {
	t.Helper()
	path := filepath.Join(filepath.FromSlash(dir), FileName)
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDiscoverWalksUp(t *testing.T) {
	fs := afero.NewMemMapFs()
	want := writeProfile(t, fs, "/proj", "author_name: Ada\n")
	if err := fs.MkdirAll(filepath.FromSlash("/proj/lib/src"), 0755); err != nil {
		t.Fatal(err)
	}

	got, ok := Discover(fs, filepath.FromSlash("/proj/lib/src"))
	if !ok {
		t.Fatal("Discover() found nothing")
	}
	if got != want {
		t.Errorf("Discover() = %s, want %s", got, want)
	}

	if _, ok := Discover(afero.NewMemMapFs(), filepath.FromSlash("/elsewhere")); ok {
		t.Error("Discover() on an empty filesystem should find nothing")
	}
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := writeProfile(t, fs, "/proj", `author_name: Ada Lovelace
company_name: Analytical Engines
banner_width: 60
fill_order: left-first
min_version: ">= 0.2.0"
`)

	p, err := Load(fs, path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if p.AuthorName != "Ada Lovelace" || p.CompanyName != "Analytical Engines" {
		t.Errorf("names = %q, %q", p.AuthorName, p.CompanyName)
	}
	if p.BannerWidth != 60 {
		t.Errorf("BannerWidth = %d, want 60", p.BannerWidth)
	}
	if p.FillOrder != "left-first" {
		t.Errorf("FillOrder = %q, want left-first", p.FillOrder)
	}
	if p.Path != path {
		t.Errorf("Path = %q, want %q", p.Path, path)
	}
}

func TestLoadEmptyProfile(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := writeProfile(t, fs, "/proj", "")
	p, err := Load(fs, path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if p.AuthorName != "" || p.BannerWidth != 0 {
		t.Errorf("empty profile decoded as %+v", p)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		path    string
	}{
		{"width too small", "banner_width: 4\n", "/banner_width"},
		{"width not a number", "banner_width: wide\n", "/banner_width"},
		{"unknown fill order", "fill_order: sideways\n", "/fill_order"},
		{"unknown key", "colour: blue\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			path := writeProfile(t, fs, "/proj", tt.content)

			_, err := Load(fs, path)
			if !errors.Is(err, ErrInvalidProfile) {
				t.Fatalf("Load() error = %v, want ErrInvalidProfile", err)
			}

			result, err := ValidateFile(fs, path)
			if err != nil {
				t.Fatalf("ValidateFile() error: %v", err)
			}
			if result.Valid || len(result.Issues) == 0 {
				t.Fatalf("expected issues, got %+v", result)
			}
			if tt.path != "" && !strings.Contains(result.Summary(), tt.path) {
				t.Errorf("Summary() = %q, want mention of %s", result.Summary(), tt.path)
			}
		})
	}
}

func TestValidateBadYAML(t *testing.T) {
	if _, err := Validate([]byte("author_name: [unclosed\n")); err == nil {
		t.Error("Validate() should fail on malformed YAML")
	}
}

func TestFind(t *testing.T) {
	fs := afero.NewMemMapFs()
	p, err := Find(fs, filepath.FromSlash("/nowhere"))
	if err != nil || p != nil {
		t.Errorf("Find() without a profile = %v, %v; want nil, nil", p, err)
	}

	writeProfile(t, fs, "/proj", "company_name: Acme\n")
	p, err = Find(fs, filepath.FromSlash("/proj/src"))
	if err != nil {
		t.Fatalf("Find() error: %v", err)
	}
	if p == nil || p.CompanyName != "Acme" {
		t.Errorf("Find() = %+v", p)
	}
}
