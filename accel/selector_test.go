package accel

import (
	"testing"

	"github.com/BeingCiteable/HeroCrypt/hwaccel"
)

// stubOracle returns fixed answers for every probe.
type stubOracle struct {
	aesni, avx2, avx512, rdrand, sha, armCrypto bool
}

func (s stubOracle) HasAesNi() bool         { return s.aesni }
func (s stubOracle) HasAvx2() bool          { return s.avx2 }
func (s stubOracle) HasAvx512() bool        { return s.avx512 }
func (s stubOracle) HasRdrand() bool        { return s.rdrand }
func (s stubOracle) HasShaExtensions() bool { return s.sha }
func (s stubOracle) HasArmCrypto() bool     { return s.armCrypto }

func TestSelectorPassesCachedFlagsToFactory(t *testing.T) {
	det := hwaccel.NewDetector(stubOracle{aesni: true, avx2: true, sha: true})

	var captured []hwaccel.Flag
	sel := NewSelector(det, func(f hwaccel.Flag) Accelerator {
		captured = append(captured, f)
		return Software()
	})

	sel.CreateAccelerator()
	sel.CreateAccelerator()

	want := det.AvailableAcceleration()
	if len(captured) != 2 {
		t.Fatalf("factory invoked %d times, want 2", len(captured))
	}
	for i, f := range captured {
		if f != want {
			t.Errorf("call %d: factory got %v, want cached aggregate %v", i, f, want)
		}
	}
}

func TestSelectorPassesExplicitNone(t *testing.T) {
	det := hwaccel.NewDetector(stubOracle{})

	var captured hwaccel.Flag = 0xffff // sentinel, overwritten by the factory
	sel := NewSelector(det, func(f hwaccel.Flag) Accelerator {
		captured = f
		return Software()
	})
	sel.CreateAccelerator()

	if captured != hwaccel.None {
		t.Errorf("factory got %v, want explicit None", captured)
	}
}

func TestDefaultFactoryPolicy(t *testing.T) {
	cases := []struct {
		name  string
		flags hwaccel.Flag
		want  Kind
	}{
		{"no flags", hwaccel.None, SoftwareFallback},
		{"aesni wins over simd", hwaccel.AesNi | hwaccel.Avx2 | hwaccel.Avx512, AesNiBacked},
		{"arm crypto", hwaccel.ArmCrypto, ArmCryptoBacked},
		{"avx2 only", hwaccel.Avx2, Avx2Backed},
		{"avx512 preferred over avx2", hwaccel.Avx2 | hwaccel.Avx512, Avx512Backed},
		{"avx512 alone", hwaccel.Avx512, Avx512Backed},
		{"rdrand alone is not enough", hwaccel.Rdrand, SoftwareFallback},
	}
	for _, c := range cases {
		acc := DefaultFactory(c.flags)
		if acc.Kind() != c.want {
			t.Errorf("%s: kind = %v, want %v", c.name, acc.Kind(), c.want)
		}
		if acc.Name() == "" {
			t.Errorf("%s: accelerator must be named", c.name)
		}
		if acc.Flags() != c.flags {
			t.Errorf("%s: handle flags = %v, want %v", c.name, acc.Flags(), c.flags)
		}
	}
}

func TestCreateAcceleratorNeverNil(t *testing.T) {
	acc := CreateAccelerator()
	if acc == nil {
		t.Fatal("CreateAccelerator returned nil")
	}
	if acc.Flags() != hwaccel.AvailableAcceleration() {
		t.Errorf("accelerator flags %v != process aggregate %v",
			acc.Flags(), hwaccel.AvailableAcceleration())
	}
}
