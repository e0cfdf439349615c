// pkg/platform/detect.go
package platform

import (
	"fmt"
	"runtime"
)

// Platform represents the detected system platform
type Platform struct {
	OS        string   // linux, darwin, windows
	Arch      string   // amd64, arm64, 386, arm
	Available []string // Available Python interpreters
	Preferred string   // Preferred interpreter
}

// Detect detects the current platform and available Python interpreters
func Detect() (*Platform, error) {
	p := &Platform{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		Available: []string{},
	}

	// Check which interpreters are available
	for _, prog := range []string{"python3", "python", "python2"} {
		if commandExists(prog) {
			p.Available = append(p.Available, prog)
		}
	}

	if len(p.Available) == 0 {
		return nil, fmt.Errorf("no python interpreter found on %s/%s", p.OS, p.Arch)
	}

	// Favor 3 over 2, and explicit names over the bare "python"
	switch {
	case contains(p.Available, "python3"):
		p.Preferred = "python3"
	case contains(p.Available, "python"):
		p.Preferred = "python"
	default:
		p.Preferred = p.Available[0]
	}

	return p, nil
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	return fmt.Sprintf("%s/%s (available: %v, preferred: %s)",
		p.OS, p.Arch, p.Available, p.Preferred)
}
