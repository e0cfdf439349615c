// interpreter.go
package interpreter

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
	"unicode/utf8"
)

// Runner provides a terminal-like interface to a Python interpreter.
// Implementations run the interpreter with the given arguments and
// return its trimmed standard output.
type Runner interface {
	Run(args ...string) (string, error)
}

// System runs a resolved interpreter program on the host system.
type System struct {
	program string
}

// NewSystem creates a runner for the given interpreter program.
// The program may be a bare name (resolved through PATH at run time)
// or an absolute path.
func NewSystem(program string) *System {
	return &System{program: program}
}

// Program returns the interpreter program this runner spawns.
func (s *System) Program() string {
	return s.program
}

// Run spawns the interpreter and returns its trimmed stdout. Empty
// stdout is a legitimate answer (the ABI flag suffix is empty on 3.8
// and later), so stderr is never mistaken for output; the one
// exception is the --version query, whose banner Python 2 writes to
// stderr.
func (s *System) Run(args ...string) (string, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.Command(s.program, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("%s exited with an error: %s", s.program, strings.TrimSpace(stderr.String()))
		}
		return "", fmt.Errorf("launching %s: %w", s.program, err)
	}

	out := strings.TrimSpace(stdout.String())
	if out == "" && isVersionQuery(args) {
		out = strings.TrimSpace(stderr.String())
	}
	if !utf8.ValidString(out) {
		return "", fmt.Errorf("%s produced undecodable output", s.program)
	}

	return out, nil
}

// isVersionQuery reports whether the invocation is the bare --version
// banner query, the only place the stderr fallback applies.
func isVersionQuery(args []string) bool {
	return len(args) == 1 && args[0] == "--version"
}
