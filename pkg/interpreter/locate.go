// locate.go
package interpreter

import (
	"fmt"
	"os"
	"os/exec"
)

// EnvOverride names the environment variable that forces a specific
// interpreter path, bypassing PATH lookup.
const EnvOverride = "PYCONFIG_PYTHON"

// Locate resolves the interpreter program to spawn. An explicit
// override wins, then the PYCONFIG_PYTHON environment variable, then a
// PATH lookup of program. Override paths must exist on disk.
func Locate(program, override string) (string, error) {
	if override == "" {
		override = os.Getenv(EnvOverride)
	}

	if override != "" {
		if _, err := os.Stat(override); err != nil {
			return "", fmt.Errorf("interpreter override %s: %w", override, err)
		}
		return override, nil
	}

	path, err := exec.LookPath(program)
	if err != nil {
		return "", fmt.Errorf("looking up %s in PATH: %w", program, err)
	}
	return path, nil
}
