// version.go
package pyconfig

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version selects the Python major version to interface
type Version int

const (
	// Version2 selects the system Python 2 interpreter
	Version2 Version = 2

	// Version3 selects the system Python 3 interpreter
	Version3 Version = 3
)

// Program returns the conventional interpreter name for the version
func (v Version) Program() string {
	if v == Version2 {
		return "python2"
	}
	return "python3"
}

// String returns the string representation of the version
func (v Version) String() string {
	return fmt.Sprintf("python %d", int(v))
}

// noLibpythonSince is the first release whose python3-config stopped
// linking libpython by default (bpo-36721).
var noLibpythonSince = semver.MustParse("3.8.0")

// linksLibpython reports whether the interpreter's reference config
// script still puts -lpython in --libs and --ldflags output.
func linksLibpython(ver *semver.Version) bool {
	return ver.LessThan(noLibpythonSince)
}

// parseSemanticVersion extracts a semantic version from interpreter
// banner output of the form "Python X.Y.Z".
func parseSemanticVersion(banner string) (*semver.Version, error) {
	fields := strings.Fields(banner)
	if len(fields) < 2 || fields[0] != "Python" {
		return nil, fmt.Errorf("%w: expected 'Python X.Y.Z', got %q", ErrMalformedOutput, banner)
	}

	// Distributions tag local builds as e.g. "3.10.12+".
	raw := strings.TrimSuffix(fields[1], "+")
	ver, err := semver.NewVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot parse version %q", ErrMalformedOutput, fields[1])
	}
	return ver, nil
}
