// Fallback probes for unsupported architectures.
// All features report absent — consumers still start, just on the
// pure-software path.

//go:build !amd64 && !arm64

package hwaccel

func probeAesNi() bool     { return false }
func probeAvx2() bool      { return false }
func probeAvx512() bool    { return false }
func probeRdrand() bool    { return false }
func probeSha() bool       { return false }
func probeArmCrypto() bool { return false }
