package avx512

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-lanes/internal/conformance"
)

func TestConformance(t *testing.T) {
	conformance.Test[Int, F32, F64](t, Backend{}, 200)
}

func TestGeometry(t *testing.T) {
	g := Backend{}.Geometry()
	require.NoError(t, g.Validate())
	assert.Equal(t, 64, g.Bytes)
	assert.True(t, g.NativeMul64)
	assert.True(t, g.NativeU64Float)
}

func TestValignq(t *testing.T) {
	a := Int{8, 9, 10, 11, 12, 13, 14, 15}
	b := Int{0, 1, 2, 3, 4, 5, 6, 7}
	assert.Equal(t, Int{3, 4, 5, 6, 7, 8, 9, 10}, valignq(a, b, 3))
	assert.Equal(t, a, valignq(a, b, 8))
	assert.Equal(t, Int{}, valignq(Int{}, b, 8))
}

func TestByteShiftsAcrossQwords(t *testing.T) {
	var b Backend
	src := make([]uint8, Lanes8)
	for i := range src {
		src[i] = uint8(i + 1)
	}
	v := b.Load8(src)
	for _, n := range []uint{0, 1, 7, 8, 9, 31, 33, 63, 64, 65} {
		got := make([]uint8, Lanes8)
		b.Store8(got, b.ShlBytes(v, n))
		want := make([]uint8, Lanes8)
		for i := range want {
			if i >= int(n) {
				want[i] = src[i-int(n)]
			}
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ShlBytes(%d) mismatch (-want +got):\n%s", n, diff)
		}
	}
}

func TestPackMerge32(t *testing.T) {
	var b Backend
	lo := make([]uint32, Lanes32)
	hi := make([]uint32, Lanes32)
	for i := range lo {
		lo[i], hi[i] = uint32(i), uint32(i+Lanes32)
	}
	even, odd := b.PackMerge32(b.Load32(lo), b.Load32(hi))
	got := make([]uint32, Lanes32)
	b.Store32(got, even)
	for i, x := range got {
		assert.Equal(t, uint32(2*i), x)
	}
	b.Store32(got, odd)
	for i, x := range got {
		assert.Equal(t, uint32(2*i+1), x)
	}
}

func TestCvtU64F32ZeroesUpperHalf(t *testing.T) {
	var b Backend
	got := b.CvtU64F32(b.Set64(1 << 63))
	for i := range Lanes64 {
		assert.Equal(t, float32(1<<63), got[i])
	}
	for i := Lanes64; i < Lanes32; i++ {
		assert.Zero(t, got[i])
	}
}
