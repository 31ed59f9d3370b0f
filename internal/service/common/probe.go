//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"fmt"
	"os"
	"runtime"
	"time"
)

// SystemEnvironment answers packaging-time questions from the real host:
// wall-clock time, host name, and runtime version info.
type SystemEnvironment struct{}

// NewSystemEnvironment creates a probe backed by the operating system.
func NewSystemEnvironment() *SystemEnvironment {
	return &SystemEnvironment{}
}

// Now returns the current wall-clock time.
func (*SystemEnvironment) Now() time.Time {
	return time.Now()
}

// Hostname resolves the machine name the packager runs on.
func (*SystemEnvironment) Hostname() (string, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return "", fmt.Errorf("hostname: %w", err)
	}

	return hostname, nil
}

// Runtime describes the Go runtime and platform executing the packager.
func (*SystemEnvironment) Runtime() string {
	return fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
