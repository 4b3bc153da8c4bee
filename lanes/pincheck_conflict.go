//go:build (lanes_avx512 && (lanes_avx2 || lanes_sse4 || lanes_mmx || lanes_scalar)) || (lanes_avx2 && (lanes_sse4 || lanes_mmx || lanes_scalar)) || (lanes_sse4 && (lanes_mmx || lanes_scalar)) || (lanes_mmx && lanes_scalar)

package lanes

// At most one backend may be pinned.
var _ = lanes_pins_are_mutually_exclusive
