//go:build lanes_avx2 && !amd64.v3

package lanes

// AVX2 and FMA need a GOAMD64=v3 target.
var _ = lanes_avx2_requires_GOAMD64_v3
