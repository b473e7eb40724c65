// Package accel selects the accelerator implementation the library
// should use, based on the hardware capabilities detected by hwaccel.
// When nothing is detected the pure-software reference implementation
// is selected, so there is always a usable accelerator.
package accel

import "github.com/BeingCiteable/HeroCrypt/hwaccel"

// Kind identifies the class of implementation behind an accelerator
// handle.
type Kind int

const (
	// SoftwareFallback is the portable reference implementation.
	SoftwareFallback Kind = iota

	// AesNiBacked uses x86 AES-NI instructions.
	AesNiBacked

	// Avx2Backed uses 256-bit AVX2 SIMD.
	Avx2Backed

	// Avx512Backed uses 512-bit AVX-512 SIMD.
	Avx512Backed

	// ArmCryptoBacked uses the ARMv8 crypto extension.
	ArmCryptoBacked
)

// String returns the implementation class name.
func (k Kind) String() string {
	switch k {
	case AesNiBacked:
		return "aesni"
	case Avx2Backed:
		return "avx2"
	case Avx512Backed:
		return "avx512"
	case ArmCryptoBacked:
		return "armcrypto"
	default:
		return "software"
	}
}

// Accelerator is an opaque handle to a concrete accelerator
// implementation. The primitives behind it live elsewhere; this
// package only owns which one gets picked.
type Accelerator interface {
	// Name is a short human-readable implementation name.
	Name() string

	// Kind is the implementation class.
	Kind() Kind

	// Flags is the capability set the accelerator was constructed with.
	Flags() hwaccel.Flag
}

type impl struct {
	name  string
	kind  Kind
	flags hwaccel.Flag
}

func (i *impl) Name() string        { return i.name }
func (i *impl) Kind() Kind          { return i.kind }
func (i *impl) Flags() hwaccel.Flag { return i.flags }

// Software returns the reference fallback accelerator, usable on any
// target.
func Software() Accelerator {
	return &impl{name: "software reference", kind: SoftwareFallback}
}
