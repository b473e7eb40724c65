// Linux OS description via os-release and uname.

//go:build linux

package hwaccel

import (
	"bytes"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

// osDescription builds a human-readable OS string such as
// "Ubuntu 24.04.1 LTS (Linux 6.8.0-x86_64)". Every source is optional;
// on total failure the plain GOOS/GOARCH fallback is returned.
func osDescription() string {
	name := osReleasePrettyName()
	kernel := unameRelease()

	switch {
	case name != "" && kernel != "":
		return name + " (Linux " + kernel + ")"
	case name != "":
		return name
	case kernel != "":
		return "Linux " + kernel
	default:
		return fallbackOSDescription()
	}
}

// osReleasePrettyName reads PRETTY_NAME from /etc/os-release, or ""
// when the file is missing or malformed.
func osReleasePrettyName() string {
	data, err := os.ReadFile("/etc/os-release")
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		key, val, ok := strings.Cut(line, "=")
		if !ok || key != "PRETTY_NAME" {
			continue
		}
		return strings.Trim(strings.TrimSpace(val), `"`)
	}
	return ""
}

// unameRelease returns the kernel release string from uname(2), or "".
func unameRelease() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return ""
	}
	return cString(uts.Release[:])
}

// cString converts a NUL-terminated byte array field to a Go string.
func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return string(b[:i])
	}
	return string(b)
}
