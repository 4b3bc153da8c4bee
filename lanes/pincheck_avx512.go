//go:build lanes_avx512 && !amd64.v4

package lanes

// AVX-512 instructions are only emitted for GOAMD64=v4 targets.
var _ = lanes_avx512_requires_GOAMD64_v4
