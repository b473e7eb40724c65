package hwaccel

// Oracle answers one independent boolean query per hardware feature.
// Implementations must be side-effect free and cheap (sub-microsecond);
// each query is consulted at most once per Detector. Platform builds
// provide the real oracle; tests substitute stubs.
//
// A query that cannot decide must answer false. Panics are tolerated:
// the aggregator treats a panicking probe as "feature absent".
type Oracle interface {
	// HasAesNi reports whether the x86 AES instruction extension is
	// usable on the current processor/runtime combination.
	HasAesNi() bool

	// HasAvx2 reports whether 256-bit AVX2 instructions are usable.
	HasAvx2() bool

	// HasAvx512 reports whether the AVX-512 foundation subset is usable.
	HasAvx512() bool

	// HasRdrand reports whether a hardware random-number instruction is
	// usable. Best-effort: the result is gated on the runtime actually
	// exposing the instruction, not cryptographically certified.
	HasRdrand() bool

	// HasShaExtensions reports whether dedicated SHA acceleration
	// instructions are usable. Same best-effort caveat as HasRdrand.
	HasShaExtensions() bool

	// HasArmCrypto reports whether the ARMv8 crypto extension is
	// assumed present. On arm64 this is true unconditionally; see
	// armCryptoAssumed for why that is coarse.
	HasArmCrypto() bool
}

// safeProbe runs one oracle query, converting any panic into a
// "feature absent" answer so that a broken probe can never take down
// the host process.
func safeProbe(probe func() bool) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return probe()
}

// platformOracle is the Oracle backed by the build target's real
// capability sources. Its probe functions live in the per-architecture
// probe files.
type platformOracle struct{}

func (platformOracle) HasAesNi() bool         { return probeAesNi() }
func (platformOracle) HasAvx2() bool          { return probeAvx2() }
func (platformOracle) HasAvx512() bool        { return probeAvx512() }
func (platformOracle) HasRdrand() bool        { return probeRdrand() }
func (platformOracle) HasShaExtensions() bool { return probeSha() }
func (platformOracle) HasArmCrypto() bool     { return probeArmCrypto() }
