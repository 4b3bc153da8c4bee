//go:build lanes_mmx && !amd64 && !386

package lanes

// MMX exists only on x86.
var _ = lanes_mmx_requires_GOARCH_amd64_or_386
