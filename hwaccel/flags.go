package hwaccel

import (
	"fmt"
	"strings"
)

// Flag is a bitset of hardware acceleration categories. Flags combine
// with bitwise OR; the zero value None means no acceleration is
// available and the software fallback should be used.
type Flag uint32

// None is the empty flag set.
const None Flag = 0

const (
	// AesNi — x86 AES New Instructions (Westmere 2010+).
	AesNi Flag = 1 << iota

	// Avx2 — 256-bit integer/float SIMD (Intel Haswell 2013+, AMD Zen 1+).
	Avx2

	// Avx512 — AVX-512 foundation subset (Skylake-SP+, some Zen 4+).
	// NOT present on most consumer CPUs.
	Avx512

	// Rdrand — hardware random number instruction (RDRAND/RDSEED).
	// Best-effort signal, not a certified entropy guarantee.
	Rdrand

	// Sha — dedicated SHA-1/SHA-256 compression instructions.
	Sha

	// ArmCrypto — ARMv8 crypto extension (AES/SHA/PMULL).
	ArmCrypto
)

var flagNames = []struct {
	flag Flag
	name string
}{
	{AesNi, "AES-NI"},
	{Avx2, "AVX2"},
	{Avx512, "AVX-512"},
	{Rdrand, "RDRAND"},
	{Sha, "SHA"},
	{ArmCrypto, "ARM Crypto"},
}

// Has reports whether every bit of f2 is set in f.
func (f Flag) Has(f2 Flag) bool {
	return f&f2 == f2
}

// String renders the asserted flag names comma-separated, or "None"
// when no flags are set.
func (f Flag) String() string {
	if f == None {
		return "None"
	}
	var parts []string
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			parts = append(parts, fn.name)
		}
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, ", ")
}

// MarshalText serializes the flag set in its String form, so JSON
// snapshots read "AES-NI, AVX2" instead of a bare number.
func (f Flag) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText parses the comma-separated String form back into a
// flag set. An unknown flag name is an error rather than a silently
// dropped bit.
func (f *Flag) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "None" || s == "" {
		*f = None
		return nil
	}
	var parsed Flag
	for _, part := range strings.Split(s, ", ") {
		matched := false
		for _, fn := range flagNames {
			if part == fn.name {
				parsed |= fn.flag
				matched = true
				break
			}
		}
		if !matched {
			return fmt.Errorf("unknown acceleration flag %q", part)
		}
	}
	*f = parsed
	return nil
}
