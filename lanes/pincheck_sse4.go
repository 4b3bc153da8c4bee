//go:build lanes_sse4 && !amd64.v2

package lanes

// SSE4.2 needs a GOAMD64=v2 target.
var _ = lanes_sse4_requires_GOAMD64_v2
