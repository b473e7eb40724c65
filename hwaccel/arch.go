package hwaccel

import "runtime"

// Architecture identifies the processor architecture the process is
// running on.
type Architecture int

const (
	ArchUnknown Architecture = iota
	ArchX86
	ArchX64
	ArchArm
	ArchArm64
)

// String returns the conventional short name for the architecture.
func (a Architecture) String() string {
	switch a {
	case ArchX86:
		return "x86"
	case ArchX64:
		return "x64"
	case ArchArm:
		return "Arm"
	case ArchArm64:
		return "Arm64"
	default:
		return "Unknown"
	}
}

// MarshalText serializes the architecture as its short name, so JSON
// snapshots read "x64" instead of an opaque integer.
func (a Architecture) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses a short architecture name back into an
// Architecture. Unrecognized names map to ArchUnknown, mirroring
// archFromGOARCH's degrade path.
func (a *Architecture) UnmarshalText(text []byte) error {
	switch string(text) {
	case "x86":
		*a = ArchX86
	case "x64":
		*a = ArchX64
	case "Arm":
		*a = ArchArm
	case "Arm64":
		*a = ArchArm64
	default:
		*a = ArchUnknown
	}
	return nil
}

// archFromGOARCH maps a Go architecture string to an Architecture.
// Unrecognized values map to ArchUnknown, which downstream treats as
// "no acceleration" rather than an error.
func archFromGOARCH(goarch string) Architecture {
	switch goarch {
	case "386":
		return ArchX86
	case "amd64":
		return ArchX64
	case "arm":
		return ArchArm
	case "arm64":
		return ArchArm64
	default:
		return ArchUnknown
	}
}

// currentArchitecture returns the architecture of the running process.
func currentArchitecture() Architecture {
	return archFromGOARCH(runtime.GOARCH)
}

// armCryptoAssumed reports whether the ARM crypto extension is assumed
// present for the given Go architecture string. The policy is
// deliberately coarse: a 64-bit ARM target is treated as sufficient
// proof, without probing the AES/SHA1/SHA2/PMULL sub-extensions.
// Some arm64 cores ship without the crypto extension, so this can
// report a false positive; callers get the documented over-optimistic
// behavior rather than a per-extension query.
func armCryptoAssumed(goarch string) bool {
	return goarch == "arm64"
}
