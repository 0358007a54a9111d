// Package hook detects whether the process was spawned by a package
// manager transaction, so the commands can bracket their output with
// operator-facing advisories.
package hook

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// hookParent is the parent process name that marks a hook invocation.
const hookParent = "pacman"

// Detector reports whether the process runs under a package-manager
// hook. Parent-process-name inspection is an OS side channel, so it
// sits behind this interface; platforms without it use Stub.
type Detector interface {
	RunningUnderHook() bool
}

// ProcDetector inspects the parent process name via the proc
// filesystem.
type ProcDetector struct{}

func (ProcDetector) RunningUnderHook() bool {
	name, err := parentName()
	if err != nil {
		slog.Debug("Cannot determine parent process", "error", err)
		return false
	}
	slog.Debug("Running from parent process", "name", name)
	return name == hookParent
}

func parentName() (string, error) {
	data, err := os.ReadFile(fmt.Sprintf("/proc/%d/comm", os.Getppid()))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Stub is the no-hook fallback for platforms without process-name
// introspection.
type Stub struct{}

func (Stub) RunningUnderHook() bool { return false }

// New returns the best detector available on this system.
func New() Detector {
	if _, err := os.Stat("/proc/self/comm"); err != nil {
		return Stub{}
	}
	return ProcDetector{}
}
