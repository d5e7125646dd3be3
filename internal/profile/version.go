package profile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrVersionMismatch is returned when the running cppgen does not satisfy
// a profile's min_version.
var ErrVersionMismatch = errors.New("cppgen version does not satisfy profile")

// CompareVersions compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
// Handles "v" prefix tolerance (strips leading "v" before parsing).
func CompareVersions(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// CheckVersion verifies current against the profile's min_version. A bare
// version such as "1.2.0" means ">= 1.2.0"; anything else is read as a
// semver constraint. Development builds whose version does not parse are
// always accepted.
func (p *Profile) CheckVersion(current string) error {
	if p == nil || strings.TrimSpace(p.MinVersion) == "" {
		return nil
	}

	cv, err := parseSemver(current)
	if err != nil {
		return nil
	}

	constraint, err := constraintFor(p.MinVersion)
	if err != nil {
		return fmt.Errorf("parsing min_version %q in %s: %w", p.MinVersion, p.Path, err)
	}
	if !constraint.Check(cv) {
		return fmt.Errorf("%w: %s requires %s, running %s", ErrVersionMismatch, p.Path, p.MinVersion, current)
	}
	return nil
}

func constraintFor(expr string) (*semver.Constraints, error) {
	expr = strings.TrimSpace(expr)
	if v, err := parseSemver(expr); err == nil {
		return semver.NewConstraint(">= " + v.String())
	}
	return semver.NewConstraint(expr)
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
