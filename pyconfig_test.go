// pyconfig_test.go
package pyconfig

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arc-language/pyconfig/pkg/interpreter"
	"github.com/arc-language/pyconfig/pkg/script"
)

func TestSemanticVersion(t *testing.T) {
	runner := interpreter.NewStatic(map[string]string{
		"--version": "Python 3.7.2",
	})
	py := NewWithRunner(Version3, runner)

	ver, err := py.SemanticVersion()
	require.NoError(t, err)
	assert.Equal(t, "3.7.2", ver.String())

	// Second call answers from the cache.
	_, err = py.SemanticVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, runner.Calls["--version"])
}

func TestSemanticVersionLocalBuildSuffix(t *testing.T) {
	runner := interpreter.NewStatic(map[string]string{
		"--version": "Python 3.10.12+",
	})
	py := NewWithRunner(Version3, runner)

	ver, err := py.SemanticVersion()
	require.NoError(t, err)
	assert.Equal(t, "3.10.12", ver.String())
}

func TestSemanticVersionMalformed(t *testing.T) {
	tests := []struct {
		name   string
		banner string
	}{
		{"empty", ""},
		{"wrong prefix", "Pithon 3.7.2"},
		{"no version", "Python"},
		{"garbage version", "Python x.y.z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := interpreter.NewStatic(map[string]string{
				"--version": tt.banner,
			})
			py := NewWithRunner(Version3, runner)

			_, err := py.SemanticVersion()
			assert.ErrorIs(t, err, ErrMalformedOutput)
		})
	}
}

func TestPrefixMemoized(t *testing.T) {
	key := "-c " + script.ConfigVar("prefix")
	runner := interpreter.NewStatic(map[string]string{
		key: "/usr/local",
	})
	py := NewWithRunner(Version3, runner)

	first, err := py.Prefix()
	require.NoError(t, err)
	second, err := py.Prefix()
	require.NoError(t, err)

	assert.Equal(t, "/usr/local", first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, runner.Calls[key])
}

func TestErrorsNotCached(t *testing.T) {
	runner := interpreter.NewStatic(map[string]string{})
	py := NewWithRunner(Version3, runner)

	key := "-c " + script.ConfigVar("prefix")

	_, err := py.Prefix()
	assert.Error(t, err)
	_, err = py.Prefix()
	assert.Error(t, err)
	assert.Equal(t, 2, runner.Calls[key])
}

func TestIncludes(t *testing.T) {
	key := "-c " + script.Includes()
	runner := interpreter.NewStatic(map[string]string{
		key: "-I/usr/include/python3.11 -I/usr/include/python3.11",
	})
	py := NewWithRunner(Version3, runner)

	out, err := py.Includes()
	require.NoError(t, err)
	assert.Equal(t, "-I/usr/include/python3.11 -I/usr/include/python3.11", out)
}

func TestLibsLinksLibpythonBefore38(t *testing.T) {
	key := "-c " + script.Libs(true, true)
	runner := interpreter.NewStatic(map[string]string{
		"--version": "Python 3.7.4",
		key:         "-lpython3.7m -lpthread -ldl -lutil -lm",
	})
	py := NewWithRunner(Version3, runner)

	out, err := py.Libs()
	require.NoError(t, err)
	assert.Contains(t, out, "-lpython3.7m")
	assert.Equal(t, 1, runner.Calls[key])
}

func TestLibsSkipsLibpythonSince38(t *testing.T) {
	key := "-c " + script.Libs(false, true)
	runner := interpreter.NewStatic(map[string]string{
		"--version": "Python 3.11.2",
		key:         "-lpthread -ldl -lutil -lm",
	})
	py := NewWithRunner(Version3, runner)

	out, err := py.Libs()
	require.NoError(t, err)
	assert.NotContains(t, out, "-lpython")
	assert.Equal(t, 1, runner.Calls[key])
}

func TestLibsPython2(t *testing.T) {
	// Python 2 links libpython without ABI flags and without asking the
	// interpreter for its version first.
	key := "-c " + script.Libs(true, false)
	runner := interpreter.NewStatic(map[string]string{
		key: "-lpython2.7 -lpthread -ldl -lutil -lm",
	})
	py := NewWithRunner(Version2, runner)

	out, err := py.Libs()
	require.NoError(t, err)
	assert.Contains(t, out, "-lpython2.7")
	assert.Zero(t, runner.Calls["--version"])
}

func TestLdFlags(t *testing.T) {
	key := "-c " + script.LdFlags(true, true)
	runner := interpreter.NewStatic(map[string]string{
		"--version": "Python 3.7.4",
		key:         "-L/usr/lib/python3.7/config-3.7m-x86_64-linux-gnu -lpython3.7m -lpthread -ldl -lutil -lm -Xlinker -export-dynamic",
	})
	py := NewWithRunner(Version3, runner)

	out, err := py.LdFlags()
	require.NoError(t, err)
	assert.Contains(t, out, "-L/usr/lib/python3.7/config-3.7m-x86_64-linux-gnu")
	assert.Contains(t, out, "-lpython3.7m")
}

func TestABIFlagsPython2(t *testing.T) {
	py := NewWithRunner(Version2, interpreter.NewStatic(nil))

	_, err := py.ABIFlags()
	assert.ErrorIs(t, err, ErrUnsupportedField)
}

func TestConfigDirPython2(t *testing.T) {
	py := NewWithRunner(Version2, interpreter.NewStatic(nil))

	_, err := py.ConfigDir()
	assert.ErrorIs(t, err, ErrUnsupportedField)
}

func TestExtensionSuffixPython2UsesSO(t *testing.T) {
	key := "-c " + script.ConfigVar("SO")
	runner := interpreter.NewStatic(map[string]string{
		key: ".so",
	})
	py := NewWithRunner(Version2, runner)

	out, err := py.ExtensionSuffix()
	require.NoError(t, err)
	assert.Equal(t, ".so", out)
}

func TestLinksLibpython(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"2.7.18", true},
		{"3.6.9", true},
		{"3.7.17", true},
		{"3.8.0", false},
		{"3.11.2", false},
	}
	for _, tt := range tests {
		ver, err := parseSemanticVersion("Python " + tt.version)
		require.NoError(t, err)
		assert.Equal(t, tt.want, linksLibpython(ver), "version %s", tt.version)
	}
}

func TestNewWithInterpreterBarePythonFallback(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on unix PATH semantics")
	}

	// A PATH that carries only a bare python, no python3.
	dir := t.TempDir()
	bare := filepath.Join(dir, "python")
	require.NoError(t, os.WriteFile(bare, []byte("#!/bin/sh\n"), 0755))
	t.Setenv("PATH", dir)
	t.Setenv(interpreter.EnvOverride, "")

	py, err := NewWithInterpreter(Version3, "")
	require.NoError(t, err)

	sys, ok := py.runner.(*interpreter.System)
	require.True(t, ok)
	assert.Equal(t, bare, sys.Program())
}

func TestNewWithInterpreterNotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	t.Setenv(interpreter.EnvOverride, "")

	_, err := NewWithInterpreter(Version3, "")
	assert.ErrorIs(t, err, ErrInterpreterNotFound)
}

func TestVersionProgram(t *testing.T) {
	assert.Equal(t, "python2", Version2.Program())
	assert.Equal(t, "python3", Version3.Program())
}
