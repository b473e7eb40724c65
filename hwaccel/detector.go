// Package hwaccel detects which hardware crypto/SIMD instruction
// extensions are usable on the current machine. Detection is
// best-effort and fail-closed: a feature that cannot be confirmed is
// reported absent, so consumers degrade to software implementations
// instead of faulting at runtime. The aggregated result is computed
// once per Detector and never changes afterward.
package hwaccel

import (
	"fmt"
	"runtime"
	"sync"
)

// Capabilities is an immutable snapshot of the machine's acceleration
// landscape, suitable for diagnostics and serialization. The
// acceleration fields are stable for the process lifetime;
// Architecture, OperatingSystem and ProcessorCount are re-read on
// every GetCapabilities call.
type Capabilities struct {
	// Flags is the aggregated acceleration flag set.
	Flags Flag `json:"flags"`

	// Per-feature booleans, redundant with Flags but convenient for
	// reporting.
	HasAesNi         bool `json:"hasAesNi"`
	HasAvx2          bool `json:"hasAvx2"`
	HasAvx512        bool `json:"hasAvx512"`
	HasRdrand        bool `json:"hasRdrand"`
	HasShaExtensions bool `json:"hasShaExtensions"`
	HasArmCrypto     bool `json:"hasArmCrypto"`

	// Architecture is the processor architecture of the running process.
	Architecture Architecture `json:"architecture"`

	// OperatingSystem is a free-text OS description.
	OperatingSystem string `json:"operatingSystem"`

	// ProcessorCount is the number of logical CPUs.
	ProcessorCount int `json:"processorCount"`
}

// String renders the snapshot in the fixed diagnostic form
// "Architecture: x64, Cores: 8, Hardware Acceleration: AES-NI, AVX2".
func (c Capabilities) String() string {
	return fmt.Sprintf("Architecture: %s, Cores: %d, Hardware Acceleration: %s",
		c.Architecture, c.ProcessorCount, c.Flags)
}

// Detector aggregates an Oracle's answers into the process-wide flag
// set. The aggregate is computed on first use and memoized; concurrent
// first access is safe and runs each probe at most once. The zero
// value is not usable; construct with NewDetector or use the package
// functions.
type Detector struct {
	oracle Oracle

	once  sync.Once
	flags Flag
	feats [6]bool // probe results in flag declaration order
}

// NewDetector returns a Detector backed by the given oracle. Production
// code uses the package-level functions; tests construct a fresh
// Detector per case so memoization does not leak between them.
func NewDetector(oracle Oracle) *Detector {
	return &Detector{oracle: oracle}
}

// detect runs every probe exactly once and publishes the aggregate.
// A probe that panics counts as "feature absent".
func (d *Detector) detect() {
	d.once.Do(func() {
		probes := []struct {
			flag  Flag
			probe func() bool
		}{
			{AesNi, d.oracle.HasAesNi},
			{Avx2, d.oracle.HasAvx2},
			{Avx512, d.oracle.HasAvx512},
			{Rdrand, d.oracle.HasRdrand},
			{Sha, d.oracle.HasShaExtensions},
			{ArmCrypto, d.oracle.HasArmCrypto},
		}
		for i, p := range probes {
			if safeProbe(p.probe) {
				d.flags |= p.flag
				d.feats[i] = true
			}
		}
	})
}

// AvailableAcceleration returns the aggregated flag set. The first call
// computes it from the oracle; every later call returns the identical
// cached value.
func (d *Detector) AvailableAcceleration() Flag {
	d.detect()
	return d.flags
}

// GetCapabilities returns the capabilities snapshot. The flag-derived
// fields come from the memoized aggregate; architecture, OS description
// and processor count are read fresh, since the platform may report
// live values for them.
func (d *Detector) GetCapabilities() Capabilities {
	d.detect()
	return Capabilities{
		Flags:            d.flags,
		HasAesNi:         d.feats[0],
		HasAvx2:          d.feats[1],
		HasAvx512:        d.feats[2],
		HasRdrand:        d.feats[3],
		HasShaExtensions: d.feats[4],
		HasArmCrypto:     d.feats[5],
		Architecture:     currentArchitecture(),
		OperatingSystem:  osDescription(),
		ProcessorCount:   runtime.NumCPU(),
	}
}

// std is the process-wide detector over the real platform oracle.
var std = NewDetector(platformOracle{})

// AvailableAcceleration returns the process-wide cached acceleration
// flag set.
func AvailableAcceleration() Flag {
	return std.AvailableAcceleration()
}

// GetCapabilities returns the process-wide capabilities snapshot.
func GetCapabilities() Capabilities {
	return std.GetCapabilities()
}

// Individually callable feature queries over the platform oracle.
// Each is independent of the memoized aggregate and never panics.

// HasAesNi reports whether AES-NI is usable.
func HasAesNi() bool { return safeProbe(probeAesNi) }

// HasAvx2 reports whether AVX2 is usable.
func HasAvx2() bool { return safeProbe(probeAvx2) }

// HasAvx512 reports whether the AVX-512 foundation subset is usable.
func HasAvx512() bool { return safeProbe(probeAvx512) }

// HasRdrand reports whether a hardware RNG instruction is usable
// (best-effort signal).
func HasRdrand() bool { return safeProbe(probeRdrand) }

// HasShaExtensions reports whether SHA acceleration instructions are
// usable (best-effort signal).
func HasShaExtensions() bool { return safeProbe(probeSha) }

// HasArmCrypto reports whether the ARMv8 crypto extension is assumed
// present. True on every arm64 build; see armCryptoAssumed for the
// caveat.
func HasArmCrypto() bool { return safeProbe(probeArmCrypto) }
