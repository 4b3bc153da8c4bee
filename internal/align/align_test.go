package align

import (
	"testing"
	"unsafe"
)

func TestOffset(t *testing.T) {
	buf := make([]byte, 256)
	base := unsafe.Pointer(&buf[0])
	start := (64 - int(Offset(base, 64))) % 64

	tests := []struct {
		delta int
		n     uintptr
		want  uintptr
	}{
		{0, 64, 0},
		{1, 64, 1},
		{8, 64, 8},
		{8, 8, 0},
		{63, 64, 63},
		{64, 64, 0},
		{16, 32, 16},
	}
	for _, tt := range tests {
		p := unsafe.Pointer(&buf[start+tt.delta])
		if got := Offset(p, tt.n); got != tt.want {
			t.Errorf("Offset(+%d, %d) = %d, want %d", tt.delta, tt.n, got, tt.want)
		}
		if got := Is(p, tt.n); got != (tt.want == 0) {
			t.Errorf("Is(+%d, %d) = %v", tt.delta, tt.n, got)
		}
	}
}

func TestCheckAligned(t *testing.T) {
	buf := make([]uint64, 4)
	// Any 8-byte aligned address passes an 8-byte check in every build mode.
	Check(unsafe.Pointer(&buf[0]), 8)
}

func TestCheckMisaligned(t *testing.T) {
	buf := make([]byte, 128)
	base := unsafe.Pointer(&buf[0])
	start := (64 - int(Offset(base, 64))) % 64
	p := unsafe.Pointer(&buf[start+1])

	defer func() {
		r := recover()
		if Enabled && r == nil {
			t.Error("Check did not panic on a misaligned pointer with lanes_debug")
		}
		if !Enabled && r != nil {
			t.Errorf("Check panicked without lanes_debug: %v", r)
		}
	}()
	Check(p, 64)
}
