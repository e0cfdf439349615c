// script.go
package script

import "strings"

// Lines joins script lines into a single program suitable for
// passing to the interpreter with -c. Python accepts real newlines
// inside a single argument, so no escaping is needed.
func Lines(lines ...string) string {
	return strings.Join(lines, "\n")
}
