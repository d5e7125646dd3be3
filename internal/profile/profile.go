package profile

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"
)

// FileName is the profile file looked up in the target directory and its
// ancestors.
const FileName = ".cppgen.yaml"

// ErrInvalidProfile is returned when a profile fails schema validation.
var ErrInvalidProfile = errors.New("invalid profile")

// Profile holds project-level overrides. Empty fields defer to user config.
type Profile struct {
	AuthorName  string `yaml:"author_name,omitempty"`
	CompanyName string `yaml:"company_name,omitempty"`
	BannerWidth int    `yaml:"banner_width,omitempty"`
	FillOrder   string `yaml:"fill_order,omitempty"`
	MinVersion  string `yaml:"min_version,omitempty"`

	// Path is the file the profile was read from.
	Path string `yaml:"-"`
}

// Discover walks from dir up to the filesystem root and returns the first
// profile file found.
func Discover(fs afero.Fs, dir string) (string, bool) {
	dir = filepath.Clean(dir)
	for {
		candidate := filepath.Join(dir, FileName)
		if ok, err := afero.Exists(fs, candidate); err == nil && ok {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Load reads, validates, and decodes the profile at path.
func Load(fs afero.Fs, path string) (*Profile, error) {
	data, err := readFile(fs, path)
	if err != nil {
		return nil, err
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating profile %s: %w", path, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("%w %s: %s", ErrInvalidProfile, path, result.Summary())
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	p.Path = path
	return &p, nil
}

// Find discovers and loads the profile governing dir. It returns nil and no
// error when there is none.
func Find(fs afero.Fs, dir string) (*Profile, error) {
	path, ok := Discover(fs, dir)
	if !ok {
		return nil, nil
	}
	return Load(fs, path)
}

// Summary joins the issues of a failed validation into one line.
func (r *ValidationResult) Summary() string {
	msgs := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = issue.Path + ": " + msg
		}
		msgs = append(msgs, msg)
	}
	return strings.Join(msgs, "; ")
}

func readFile(fs afero.Fs, path string) ([]byte, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
