// pyconfig.go
package pyconfig

import (
	"fmt"
	"sync"

	"github.com/Masterminds/semver/v3"

	"github.com/arc-language/pyconfig/pkg/interpreter"
	"github.com/arc-language/pyconfig/pkg/platform"
	"github.com/arc-language/pyconfig/pkg/script"
)

// Cache keys, one per queryable field
const (
	fieldPrefix          = "prefix"
	fieldExecPrefix      = "exec-prefix"
	fieldIncludes        = "includes"
	fieldCFlags          = "cflags"
	fieldLibs            = "libs"
	fieldLdFlags         = "ldflags"
	fieldABIFlags        = "abiflags"
	fieldExtensionSuffix = "extension-suffix"
	fieldConfigDir       = "configdir"
)

// PythonConfig exposes Python distribution information. Each field is
// answered by one interpreter invocation, computed on first request and
// cached afterward. The zero value is not usable; use one of the
// constructors.
type PythonConfig struct {
	version Version
	runner  interpreter.Runner

	mu     sync.Mutex
	memo   map[string]string
	semVer *semver.Version
}

// New creates a PythonConfig that uses the system installed Python 3
// distribution.
func New() (*PythonConfig, error) {
	return NewVersion(Version3)
}

// NewVersion creates a PythonConfig that uses the system installed
// Python with the provided version, located through PATH or the
// PYCONFIG_PYTHON environment variable.
func NewVersion(version Version) (*PythonConfig, error) {
	return NewWithInterpreter(version, "")
}

// NewWithInterpreter creates a PythonConfig that spawns the interpreter
// at the given path. An empty path falls back to the usual lookup.
func NewWithInterpreter(version Version, path string) (*PythonConfig, error) {
	program, err := interpreter.Locate(version.Program(), path)
	if err != nil && version == Version3 && path == "" {
		// Some hosts ship only a bare python name. Trust it for the 3
		// lineage when detection prefers it, i.e. no python3 exists.
		if plat, derr := platform.Detect(); derr == nil && plat.Preferred == "python" {
			program, err = interpreter.Locate("python", "")
		}
	}
	if err != nil {
		return nil, &Error{Op: "locate", Program: version.Program(), Err: fmt.Errorf("%w: %v", ErrInterpreterNotFound, err)}
	}
	return NewWithRunner(version, interpreter.NewSystem(program)), nil
}

// NewWithRunner creates a PythonConfig on top of an arbitrary Runner.
// Tests use this with interpreter.Static to avoid spawning anything.
func NewWithRunner(version Version, r interpreter.Runner) *PythonConfig {
	return &PythonConfig{
		version: version,
		runner:  r,
		memo:    make(map[string]string),
	}
}

// Version returns the selected Python major version.
func (c *PythonConfig) Version() Version {
	return c.version
}

// SemanticVersion returns the detected interpreter version, parsed from
// the "Python X.Y.Z" banner.
func (c *PythonConfig) SemanticVersion() (*semver.Version, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.semVer != nil {
		return c.semVer, nil
	}

	banner, err := c.runner.Run("--version")
	if err != nil {
		return nil, &Error{Op: "version", Err: err}
	}
	ver, err := parseSemanticVersion(banner)
	if err != nil {
		return nil, &Error{Op: "version", Err: err}
	}

	c.semVer = ver
	return ver, nil
}

// Prefix returns the installation prefix of the Python distribution.
func (c *PythonConfig) Prefix() (string, error) {
	return c.query(fieldPrefix, func() (string, error) {
		return c.runScript(script.ConfigVar("prefix"))
	})
}

// ExecPrefix returns the executable installation prefix.
func (c *PythonConfig) ExecPrefix() (string, error) {
	return c.query(fieldExecPrefix, func() (string, error) {
		return c.runScript(script.ConfigVar("exec_prefix"))
	})
}

// Includes returns the header search flags, -I prefixed.
func (c *PythonConfig) Includes() (string, error) {
	return c.query(fieldIncludes, func() (string, error) {
		return c.runScript(script.Includes())
	})
}

// CFlags returns the compiler flags for building against this Python,
// including the header search flags.
func (c *PythonConfig) CFlags() (string, error) {
	return c.query(fieldCFlags, func() (string, error) {
		return c.runScript(script.CFlags())
	})
}

// Libs returns the libraries a C extension links against, -l prefixed.
func (c *PythonConfig) Libs() (string, error) {
	link, abi, err := c.linkFlavor()
	if err != nil {
		return "", &Error{Op: fieldLibs, Err: err}
	}
	return c.query(fieldLibs, func() (string, error) {
		return c.runScript(script.Libs(link, abi))
	})
}

// LdFlags returns the full linker flag set, including -L search paths.
func (c *PythonConfig) LdFlags() (string, error) {
	link, abi, err := c.linkFlavor()
	if err != nil {
		return "", &Error{Op: fieldLdFlags, Err: err}
	}
	return c.query(fieldLdFlags, func() (string, error) {
		return c.runScript(script.LdFlags(link, abi))
	})
}

// ABIFlags returns the build's ABI flag suffix, such as "m" or "dm".
// Python 3 only; the suffix is empty on 3.8 and later.
func (c *PythonConfig) ABIFlags() (string, error) {
	if c.version == Version2 {
		return "", &Error{Op: fieldABIFlags, Err: fmt.Errorf("%w: python 2 builds carry no ABI flags", ErrUnsupportedField)}
	}
	return c.query(fieldABIFlags, func() (string, error) {
		return c.runScript(script.ABIFlags())
	})
}

// ExtensionSuffix returns the filename suffix for compiled extension
// modules, e.g. ".cpython-311-x86_64-linux-gnu.so".
func (c *PythonConfig) ExtensionSuffix() (string, error) {
	// Python 2 predates EXT_SUFFIX and calls the same thing SO.
	name := "EXT_SUFFIX"
	if c.version == Version2 {
		name = "SO"
	}
	return c.query(fieldExtensionSuffix, func() (string, error) {
		return c.runScript(script.ConfigVar(name))
	})
}

// ConfigDir returns the directory holding Makefile and config.c, the
// LIBPL sysconfig variable. Python 3 only.
func (c *PythonConfig) ConfigDir() (string, error) {
	if c.version == Version2 {
		return "", &Error{Op: fieldConfigDir, Err: fmt.Errorf("%w: the python 2 config script has no --configdir", ErrUnsupportedField)}
	}
	return c.query(fieldConfigDir, func() (string, error) {
		return c.runScript(script.ConfigVar("LIBPL"))
	})
}

// linkFlavor decides whether -lpython leads the library list and
// whether that entry carries ABI flags. Must not be called with mu held.
func (c *PythonConfig) linkFlavor() (linkLibpython, withABIFlags bool, err error) {
	if c.version == Version2 {
		return true, false, nil
	}
	ver, err := c.SemanticVersion()
	if err != nil {
		return false, false, err
	}
	return linksLibpython(ver), true, nil
}

// query answers a field from the cache, computing and caching it on the
// first request. Errors are returned but never cached, so a transient
// failure does not poison later calls.
func (c *PythonConfig) query(field string, compute func() (string, error)) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.memo[field]; ok {
		return v, nil
	}

	v, err := compute()
	if err != nil {
		return "", &Error{Op: field, Err: err}
	}

	c.memo[field] = v
	return v, nil
}

func (c *PythonConfig) runScript(code string) (string, error) {
	return c.runner.Run("-c", code)
}
