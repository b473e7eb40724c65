// Darwin (macOS) OS description via sysctl.

//go:build darwin

package hwaccel

import (
	"strings"

	"golang.org/x/sys/unix"
)

// osDescription returns "macOS <version> (<kernel>)" where the sysctls
// answer, falling back to GOOS/GOARCH on error. Apple Silicon and x86
// Macs expose the same keys.
func osDescription() string {
	version := sysctlString("kern.osproductversion")
	kernel := sysctlString("kern.osrelease")

	switch {
	case version != "" && kernel != "":
		return "macOS " + version + " (Darwin " + kernel + ")"
	case version != "":
		return "macOS " + version
	case kernel != "":
		return "Darwin " + kernel
	default:
		return fallbackOSDescription()
	}
}

// sysctlString returns a sysctl string value, or "" on error.
func sysctlString(key string) string {
	v, err := unix.Sysctl(key)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(v)
}
