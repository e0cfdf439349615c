// cmd/python-config/main.go
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/arc-language/pyconfig"
	"github.com/arc-language/pyconfig/internal/cli"
)

// python-config interfaces Python 3, matching the reference tool's
// preference for 3 over 2. The library still exposes Version2 for
// callers that need it.
func main() {
	err := cli.Execute(cli.Options{
		Name:    "python-config",
		Version: pyconfig.Version3,
		Argv:    os.Args[1:],
	})
	if err != nil {
		if !errors.Is(err, cli.ErrUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
