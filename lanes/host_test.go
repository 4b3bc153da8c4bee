//go:build !lanes_avx512 && !lanes_avx2 && !lanes_sse4 && !lanes_mmx && !lanes_scalar

package lanes

import "testing"

// Without a pin the toolchain's own target level chose the backend, and the
// Go runtime refuses to start on CPUs below that level.
func TestHostSupportedWhenAutoDetected(t *testing.T) {
	if !HostSupported() {
		t.Fatalf("auto-detected backend %s not supported by this host", CurrentName())
	}
}
