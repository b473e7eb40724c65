package hwaccel

import "runtime"

// fallbackOSDescription is the portable last-resort OS string, e.g.
// "linux/amd64". Always non-empty.
func fallbackOSDescription() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}
