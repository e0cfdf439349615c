// doc.go
package pyconfig

/*
Package pyconfig queries a system Python installation for its build
configuration, just like the python3-config script that ships with the
distribution.

It is most useful in build tooling that needs to find

  - the location of Python libraries
  - the include directory for Python headers
  - compiler or linker flags
  - ABI flags

The package talks to the interpreter directly, so it works even on
systems where no python-config script is installed.

Basic Usage:

    import "github.com/arc-language/pyconfig"

    py, err := pyconfig.New()
    if err != nil {
        log.Fatal(err)
    }

    includes, _ := py.Includes()  // -I/usr/include/python3.11 ...
    ldflags, _ := py.LdFlags()    // -L... -lpython3.7m ... on older builds

Python 3 is favored over Python 2. If you need Python 2 support, use the
explicit interface:

    py, err := pyconfig.NewVersion(pyconfig.Version2)

Every value is computed lazily through one interpreter invocation and
cached for the lifetime of the PythonConfig.
*/
