// internal/cli/root_test.go
package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arc-language/pyconfig"
	"github.com/arc-language/pyconfig/pkg/interpreter"
	"github.com/arc-language/pyconfig/pkg/script"
)

func fakeConfig() *pyconfig.PythonConfig {
	runner := interpreter.NewStatic(map[string]string{
		"--version":                        "Python 3.11.2",
		"-c " + script.ABIFlags():          "m",
		"-c " + script.ConfigVar("prefix"): "/usr",
	})
	return pyconfig.NewWithRunner(pyconfig.Version3, runner)
}

func run(t *testing.T, argv []string) (stdout, stderr string, err error) {
	t.Helper()

	cmd := NewRootCmd(Options{
		Name:    "python3-config",
		Version: pyconfig.Version3,
		Argv:    argv,
		Py:      fakeConfig(),
	})

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(argv)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestOutputFollowsArgumentOrder(t *testing.T) {
	stdout, _, err := run(t, []string{"--abiflags", "--prefix"})
	require.NoError(t, err)
	assert.Equal(t, "m\n/usr\n", stdout)

	stdout, _, err = run(t, []string{"--prefix", "--abiflags"})
	require.NoError(t, err)
	assert.Equal(t, "/usr\nm\n", stdout)
}

func TestDuplicateFlagPrintsTwice(t *testing.T) {
	stdout, _, err := run(t, []string{"--prefix", "--prefix"})
	require.NoError(t, err)
	assert.Equal(t, "/usr\n/usr\n", stdout)
}

func TestNoFlagsPrintsUsage(t *testing.T) {
	_, stderr, err := run(t, nil)
	assert.ErrorIs(t, err, ErrUsage)
	assert.Contains(t, stderr, "--prefix")
	assert.Contains(t, stderr, "--configdir")
}

func TestFlagSetToFalseRequestsNothing(t *testing.T) {
	_, stderr, err := run(t, []string{"--prefix=false"})
	assert.ErrorIs(t, err, ErrUsage)
	assert.Contains(t, stderr, "--prefix")
}

func TestFlagSetToTrueRequests(t *testing.T) {
	stdout, _, err := run(t, []string{"--prefix=true"})
	require.NoError(t, err)
	assert.Equal(t, "/usr\n", stdout)
}

func TestUnknownFlagRejected(t *testing.T) {
	_, _, err := run(t, []string{"--what"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUsage)
	assert.Contains(t, err.Error(), "unknown flag")
}

func TestQueryErrorSurfaces(t *testing.T) {
	// The fake has no canned --includes response.
	_, _, err := run(t, []string{"--includes"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "includes")
}
