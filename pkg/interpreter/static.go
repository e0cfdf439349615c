// static.go
package interpreter

import (
	"fmt"
	"strings"
)

// Static is a map-backed Runner for tests. Responses are keyed on the
// space-joined argument list. Calls records how often each key was
// requested, which makes caching observable from tests.
type Static struct {
	responses map[string]string
	Calls     map[string]int
}

// NewStatic creates a static runner with canned responses.
func NewStatic(responses map[string]string) *Static {
	return &Static{
		responses: responses,
		Calls:     make(map[string]int),
	}
}

// Run returns the canned response for the joined argument list.
func (s *Static) Run(args ...string) (string, error) {
	key := strings.Join(args, " ")
	s.Calls[key]++

	resp, ok := s.responses[key]
	if !ok {
		return "", fmt.Errorf("no canned response for %q", key)
	}
	return resp, nil
}
