// Package platform resolves the running operating system family and CPU
// architecture into normalized tags used by tooling that keys artifacts or
// configuration off the host platform.
package platform

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/jmgilman/go/pathkit/errors"
)

// OS is a normalized operating system family tag.
type OS string

const (
	// Linux covers all Linux distributions.
	Linux OS = "linux"
	// Darwin covers macOS.
	Darwin OS = "darwin"
	// Windows covers Windows.
	Windows OS = "windows"
)

// Arch is a normalized CPU architecture tag.
type Arch string

const (
	// X8664 is 64-bit x86.
	X8664 Arch = "x86-64"
	// AArch64 is 64-bit ARM.
	AArch64 Arch = "aarch64"
)

// Platform pairs an operating system family with a CPU architecture.
type Platform struct {
	OS   OS
	Arch Arch
}

// String returns the canonical "os/arch" tag, such as "linux/x86-64".
func (p Platform) String() string {
	return fmt.Sprintf("%s/%s", p.OS, p.Arch)
}

// Detect resolves the current process's platform.
// It fails with errors.CodeUnknown on OS families or architectures this
// tooling does not target.
func Detect() (Platform, error) {
	var p Platform

	switch runtime.GOOS {
	case "linux":
		p.OS = Linux
	case "darwin":
		p.OS = Darwin
	case "windows":
		p.OS = Windows
	default:
		return Platform{}, errors.Newf(errors.CodeUnknown, "unsupported operating system: %s", runtime.GOOS)
	}

	switch runtime.GOARCH {
	case "amd64":
		p.Arch = X8664
	case "arm64":
		p.Arch = AArch64
	default:
		return Platform{}, errors.Newf(errors.CodeUnknown, "unsupported architecture: %s", runtime.GOARCH)
	}

	return p, nil
}

// Parse converts an "os/arch" tag back into a Platform. It accepts exactly
// the tags String produces.
func Parse(tag string) (Platform, error) {
	parts := strings.Split(tag, "/")
	if len(parts) != 2 {
		return Platform{}, errors.Newf(errors.CodeUnknown, "malformed platform tag: %q", tag)
	}

	var p Platform
	switch OS(parts[0]) {
	case Linux, Darwin, Windows:
		p.OS = OS(parts[0])
	default:
		return Platform{}, errors.Newf(errors.CodeUnknown, "unknown operating system tag: %q", parts[0])
	}
	switch Arch(parts[1]) {
	case X8664, AArch64:
		p.Arch = Arch(parts[1])
	default:
		return Platform{}, errors.Newf(errors.CodeUnknown, "unknown architecture tag: %q", parts[1])
	}
	return p, nil
}
