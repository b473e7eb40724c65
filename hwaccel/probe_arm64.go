// Feature probes for ARM64 (Apple Silicon, AWS Graviton, etc.).

//go:build arm64

package hwaccel

import "runtime"

// x86-specific extensions are absent on ARM.

func probeAesNi() bool  { return false }
func probeAvx2() bool   { return false }
func probeAvx512() bool { return false }
func probeRdrand() bool { return false }
func probeSha() bool    { return false }

// probeArmCrypto assumes the crypto extension is present on every
// arm64 target rather than querying the AES/SHA1/SHA2/PMULL
// sub-extensions separately. Rare arm64 cores ship without the
// extension, so this is a known-coarse heuristic; see armCryptoAssumed.
func probeArmCrypto() bool {
	return armCryptoAssumed(runtime.GOARCH)
}
