// errors.go
package pyconfig

import (
	"errors"
	"fmt"
)

var (
	// ErrInterpreterNotFound indicates no usable Python interpreter was located
	ErrInterpreterNotFound = errors.New("python interpreter not found")

	// ErrMalformedOutput indicates the interpreter returned output we cannot parse
	ErrMalformedOutput = errors.New("malformed interpreter output")

	// ErrUnsupportedField indicates the requested value does not exist for the
	// selected Python version (for example ABI flags on Python 2)
	ErrUnsupportedField = errors.New("field not supported for this python version")
)

// Error wraps an error with additional context
type Error struct {
	Op      string // Operation that failed
	Program string // Interpreter program if applicable
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Program != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Program, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
