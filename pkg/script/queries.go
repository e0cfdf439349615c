// queries.go
package script

// The queries below mirror the reference python3-config script: each
// one reads sysconfig and prints a single line. Config vars that may be
// unset are guarded with `or ''` so a sparse installation produces an
// empty field instead of a traceback.

// ConfigVar queries a single sysconfig variable.
func ConfigVar(name string) string {
	return Lines(
		"import sysconfig",
		"print(sysconfig.get_config_var('"+name+"'))",
	)
}

// ABIFlags queries the interpreter's ABI flag suffix.
func ABIFlags() string {
	return Lines(
		"import sys",
		"print(sys.abiflags)",
	)
}

// Includes queries the header search flags, -I prefixed.
func Includes() string {
	return Lines(
		"import sysconfig",
		"flags = ['-I' + sysconfig.get_path('include'), '-I' + sysconfig.get_path('platinclude')]",
		"print(' '.join(flags))",
	)
}

// CFlags queries the header search flags plus the distribution's
// compiler flags.
func CFlags() string {
	return Lines(
		"import sysconfig",
		"flags = ['-I' + sysconfig.get_path('include'), '-I' + sysconfig.get_path('platinclude')]",
		"flags.extend((sysconfig.get_config_var('CFLAGS') or '').split())",
		"print(' '.join(flags))",
	)
}

// Libs queries the libraries a C extension links against. linkLibpython
// selects whether a -lpython entry leads the list (Python 2 and Python 3
// before 3.8); withABIFlags appends sys.abiflags to that entry (Python 3
// only).
func Libs(linkLibpython, withABIFlags bool) string {
	return Lines(append(libsLines(linkLibpython, withABIFlags), printLibs)...)
}

// LdFlags queries the full linker flag set: the Libs list plus the
// config directory for static builds and LINKFORSHARED for non-framework
// builds.
func LdFlags(linkLibpython, withABIFlags bool) string {
	lines := libsLines(linkLibpython, withABIFlags)
	lines = append(lines,
		"if not sysconfig.get_config_var('Py_ENABLE_SHARED'):",
		"    libs.insert(0, '-L' + (sysconfig.get_config_var('LIBPL') or ''))",
		"if not sysconfig.get_config_var('PYTHONFRAMEWORK'):",
		"    libs.extend((sysconfig.get_config_var('LINKFORSHARED') or '').split())",
	)
	return Lines(append(lines, printLibs)...)
}

const printLibs = "print(' '.join(libs))"

func libsLines(linkLibpython, withABIFlags bool) []string {
	lines := []string{"import sysconfig", "libs = []"}
	if linkLibpython {
		if withABIFlags {
			lines = append(lines,
				"import sys",
				"libs.append('-lpython' + sysconfig.get_config_var('VERSION') + sys.abiflags)",
			)
		} else {
			lines = append(lines,
				"libs.append('-lpython' + sysconfig.get_config_var('VERSION'))",
			)
		}
	}
	lines = append(lines,
		"libs.extend((sysconfig.get_config_var('LIBS') or '').split())",
		"libs.extend((sysconfig.get_config_var('SYSLIBS') or '').split())",
	)
	return lines
}
