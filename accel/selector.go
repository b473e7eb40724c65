package accel

import "github.com/BeingCiteable/HeroCrypt/hwaccel"

// Factory constructs an accelerator for a capability flag set. The
// selection policy belongs entirely to the factory; callers guarantee
// only that the flags they pass are the true detection result,
// including an explicit hwaccel.None when no acceleration exists.
type Factory func(hwaccel.Flag) Accelerator

// DefaultFactory picks the fastest implementation the flag set allows,
// preferring dedicated crypto instructions over generic SIMD, and
// falls back to the software reference when no flags are set.
func DefaultFactory(flags hwaccel.Flag) Accelerator {
	switch {
	case flags.Has(hwaccel.AesNi):
		return &impl{name: "x86 AES-NI", kind: AesNiBacked, flags: flags}
	case flags.Has(hwaccel.ArmCrypto):
		return &impl{name: "ARMv8 crypto", kind: ArmCryptoBacked, flags: flags}
	case flags.Has(hwaccel.Avx512):
		return &impl{name: "x86 AVX-512", kind: Avx512Backed, flags: flags}
	case flags.Has(hwaccel.Avx2):
		return &impl{name: "x86 AVX2", kind: Avx2Backed, flags: flags}
	default:
		return &impl{name: "software reference", kind: SoftwareFallback, flags: flags}
	}
}

// Selector binds a capability detector to an accelerator factory.
type Selector struct {
	detector *hwaccel.Detector
	factory  Factory
}

// NewSelector returns a Selector that feeds the detector's cached
// aggregate into the factory. Tests inject stub detectors and capture
// factories here.
func NewSelector(detector *hwaccel.Detector, factory Factory) *Selector {
	return &Selector{detector: detector, factory: factory}
}

// CreateAccelerator invokes the factory with the detector's cached
// flag set. The value passed is always the full process-wide aggregate
// — never partial, never stale, and None only when detection truly
// found nothing.
func (s *Selector) CreateAccelerator() Accelerator {
	return s.factory(s.detector.AvailableAcceleration())
}

// CreateAccelerator selects an accelerator from the process-wide
// detection result using the default policy.
func CreateAccelerator() Accelerator {
	return DefaultFactory(hwaccel.AvailableAcceleration())
}
