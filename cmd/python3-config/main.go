// cmd/python3-config/main.go
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/arc-language/pyconfig"
	"github.com/arc-language/pyconfig/internal/cli"
)

func main() {
	err := cli.Execute(cli.Options{
		Name:    "python3-config",
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
