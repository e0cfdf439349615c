// internal/cli/root.go
package cli

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arc-language/pyconfig"
	"github.com/arc-language/pyconfig/pkg/core"
	"github.com/arc-language/pyconfig/pkg/platform"
)

// ErrUsage signals that usage was already written to stderr and the
// process should exit non-zero without a further error message.
var ErrUsage = errors.New("usage")

// accessor maps one command-line flag onto a facade call.
type accessor struct {
	flag  string
	usage string
	fn    func(*pyconfig.PythonConfig) (string, error)
}

var accessors = []accessor{
	{"prefix", "print the installation prefix", (*pyconfig.PythonConfig).Prefix},
	{"exec-prefix", "print the executable installation prefix", (*pyconfig.PythonConfig).ExecPrefix},
	{"includes", "print header search flags, -I prefixed", (*pyconfig.PythonConfig).Includes},
	{"libs", "print the libraries to link against, -l prefixed", (*pyconfig.PythonConfig).Libs},
	{"cflags", "print compiler flags", (*pyconfig.PythonConfig).CFlags},
	{"ldflags", "print linker flags", (*pyconfig.PythonConfig).LdFlags},
	{"extension-suffix", "print the extension module filename suffix", (*pyconfig.PythonConfig).ExtensionSuffix},
	{"abiflags", "print the build's ABI flags", (*pyconfig.PythonConfig).ABIFlags},
	{"configdir", "print the directory holding Makefile and config.c", (*pyconfig.PythonConfig).ConfigDir},
}

// Options configures one CLI invocation.
type Options struct {
	Name    string                 // Binary name, e.g. "python3-config"
	Version pyconfig.Version       // Interpreter major version to interface
	Argv    []string               // Raw arguments, without the program name
	Py      *pyconfig.PythonConfig // Preconstructed facade; tests only
}

// Execute builds the root command and runs it over opts.Argv.
func Execute(opts Options) error {
	cmd := NewRootCmd(opts)
	cmd.SetArgs(opts.Argv)
	return cmd.Execute()
}

// NewRootCmd represents the base command
func NewRootCmd(opts Options) *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   opts.Name + " [" + usageFlags() + "]",
		Short: "Query Python build configuration",
		Long: opts.Name + ` - Query Python build configuration

Prints include paths, linker flags, ABI flags and installation
prefixes of the system Python, in the same form as the
distribution-provided configuration script.`,
		Version:       "0.1.0",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			requested := requestedFlags(cmd, opts.Argv)
			if len(requested) == 0 {
				fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
				return ErrUsage
			}

			// Flags are valid from here on; later failures are real
			// query errors, not usage errors.
			cmd.SilenceUsage = true

			py := opts.Py
			if py == nil {
				cfg, err := core.LoadConfig(cfgFile)
				if err != nil {
					return err
				}
				if cfg.Debug {
					logger := cfg.Logger
					if logger == nil {
						logger = log.Default()
					}
					if plat, err := platform.Detect(); err == nil {
						logger.Printf("platform: %s", plat)
					}
					logger.Printf("interfacing %s (override %q)", opts.Version.Program(), cfg.Interpreter)
				}
				py, err = pyconfig.NewWithInterpreter(opts.Version, cfg.Interpreter)
				if err != nil {
					return err
				}
			}

			for _, a := range requested {
				out, err := a.fn(py)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}

	for _, a := range accessors {
		cmd.Flags().Bool(a.flag, false, a.usage)
	}
	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/pyconfig/config.yaml)")

	return cmd
}

// usageFlags renders the flag alternation the reference script prints
// in its usage line.
func usageFlags() string {
	names := make([]string, 0, len(accessors)+1)
	for _, a := range accessors {
		names = append(names, "--"+a.flag)
	}
	names = append(names, "--help")
	return strings.Join(names, "|")
}

// requestedFlags returns the accessors to run, in the order their flags
// appear on the command line. The reference script prints one line per
// flag in argument order, duplicates included, so ordering comes from
// the raw argv rather than from the parsed flag set.
func requestedFlags(cmd *cobra.Command, argv []string) []accessor {
	byName := make(map[string]accessor, len(accessors))
	for _, a := range accessors {
		byName[a.flag] = a
	}

	var requested []accessor
	for _, arg := range argv {
		if !strings.HasPrefix(arg, "--") {
			continue
		}
		name := strings.TrimPrefix(arg, "--")
		if i := strings.IndexByte(name, '='); i >= 0 {
			name = name[:i]
		}
		a, ok := byName[name]
		if !ok {
			continue
		}
		// --prefix=false asks for nothing; only truthy values count.
		if on, err := cmd.Flags().GetBool(name); err != nil || !on {
			continue
		}
		requested = append(requested, a)
	}
	return requested
}
