//go:build !amd64 && !386

package features

// No x86 extensions exist off x86; only the scalar level is supported.
func detect() Set {
	return Set{}
}
