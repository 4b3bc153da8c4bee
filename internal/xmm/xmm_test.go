package xmm

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func seq() X {
	var b [16]byte
	for i := range b {
		b[i] = byte(i)
	}
	return FromBytes(b)
}

func TestByteShifts(t *testing.T) {
	tests := []struct {
		name string
		got  X
		want [16]byte
	}{
		{"pslldq 0", Pslldq(seq(), 0), [16]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}},
		{"pslldq 3", Pslldq(seq(), 3), [16]byte{0, 0, 0, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}},
		{"pslldq 9", Pslldq(seq(), 9), [16]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 2, 3, 4, 5, 6}},
		{"pslldq 16", Pslldq(seq(), 16), [16]byte{}},
		{"psrldq 3", Psrldq(seq(), 3), [16]byte{3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}},
		{"psrldq 8", Psrldq(seq(), 8), [16]byte{8, 9, 10, 11, 12, 13, 14, 15}},
		{"psrldq 100", Psrldq(seq(), 100), [16]byte{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got.Bytes()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPalignr(t *testing.T) {
	lo := seq()
	var hb [16]byte
	for i := range hb {
		hb[i] = byte(16 + i)
	}
	hi := FromBytes(hb)
	for n := uint(0); n <= 33; n++ {
		var want [16]byte
		for i := range want {
			if j := uint(i) + n; j < 32 {
				want[i] = byte(j)
			}
		}
		if diff := cmp.Diff(want, Palignr(hi, lo, n).Bytes()); diff != "" {
			t.Errorf("palignr %d mismatch (-want +got):\n%s", n, diff)
		}
	}
}

func TestShuffles(t *testing.T) {
	a := FromDwords(10, 11, 12, 13)
	b := FromDwords(20, 21, 22, 23)
	if got, want := Pshufd(a, 0x1B), FromDwords(13, 12, 11, 10); got != want {
		t.Errorf("pshufd 0x1B = %v, want %v", got, want)
	}
	if got, want := Shufps(a, b, 0x88), FromDwords(10, 12, 20, 22); got != want {
		t.Errorf("shufps 0x88 = %v, want %v", got, want)
	}
	if got, want := Punpckldq(a, b), FromDwords(10, 20, 11, 21); got != want {
		t.Errorf("punpckldq = %v, want %v", got, want)
	}
	w := FromWords([8]uint16{0, 1, 2, 3, 4, 5, 6, 7})
	if got, want := Pshufhw(Pshuflw(w, 0xB1), 0xB1), FromWords([8]uint16{1, 0, 3, 2, 5, 4, 7, 6}); got != want {
		t.Errorf("pshuflw/pshufhw 0xB1 = %v, want %v", got, want)
	}
	m := [16]byte{0x80, 15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
	want := [16]byte{0, 15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
	if diff := cmp.Diff(want, Pshufb(seq(), m).Bytes()); diff != "" {
		t.Errorf("pshufb mismatch (-want +got):\n%s", diff)
	}
}
