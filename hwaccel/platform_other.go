// Generic OS description for platforms without a richer source.

//go:build !linux && !darwin

package hwaccel

// osDescription falls back to the GOOS/GOARCH pair on platforms where
// no richer description is wired up.
func osDescription() string {
	return fallbackOSDescription()
}
