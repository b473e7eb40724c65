// Feature probes for x86-64.
//
// Each feature is probed individually — we never assume AVX-512 just
// because AVX2 is present. golang.org/x/sys/cpu is the primary source;
// for RDRAND the independent enumeration from klauspost/cpuid must
// agree before we claim support, and for the SHA extensions
// klauspost/cpuid is the only source since x/sys/cpu carries no SHA
// bit.

//go:build amd64

package hwaccel

import (
	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

// probeAesNi reports AES-NI support (Westmere 2010 and later).
func probeAesNi() bool {
	return cpu.X86.HasAES
}

// probeAvx2 reports AVX2 support, the common x86 fast path.
func probeAvx2() bool {
	return cpu.X86.HasAVX2
}

// probeAvx512 reports the AVX-512 foundation subset. Absent on most
// consumer hardware; callers fall back to AVX2.
func probeAvx512() bool {
	return cpu.X86.HasAVX512F
}

// probeRdrand reports the RDRAND instruction. Both detection paths
// must assert it; disagreement means the instruction may not actually
// be dispatchable, so we fail closed.
func probeRdrand() bool {
	return cpu.X86.HasRDRAND && cpuid.CPU.Supports(cpuid.RDRAND)
}

// probeSha reports the SHA extensions (Goldmont/Zen 1 and later).
// golang.org/x/sys/cpu carries no SHA bit, so CPUID enumeration is the
// only source; treat the answer as best-effort.
func probeSha() bool {
	return cpuid.CPU.Supports(cpuid.SHA)
}

// probeArmCrypto is never true on x86-64.
func probeArmCrypto() bool {
	return false
}
