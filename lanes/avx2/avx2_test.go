package avx2

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-lanes/internal/conformance"
)

func TestConformance(t *testing.T) {
	conformance.Test[Int, F32, F64](t, Backend{}, 300)
}

func TestGeometry(t *testing.T) {
	g := Backend{}.Geometry()
	require.NoError(t, g.Validate())
	assert.Equal(t, 32, g.Alignment)
	assert.True(t, g.FusedMulAdd)
	assert.False(t, g.NativeMul64)
}

func iota8() []uint8 {
	b := make([]uint8, Lanes8)
	for i := range b {
		b[i] = uint8(i + 1)
	}
	return b
}

// Byte shifts must carry bytes across the 128-bit block boundary.
func TestByteShiftsCrossBlocks(t *testing.T) {
	var b Backend
	v := b.Load8(iota8())
	for _, n := range []uint{1, 15, 16, 17, 31, 32} {
		got := make([]uint8, Lanes8)
		b.Store8(got, b.ShlBytes(v, n))
		want := make([]uint8, Lanes8)
		for i := range want {
			if i >= int(n) {
				want[i] = uint8(i - int(n) + 1)
			}
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ShlBytes(%d) mismatch (-want +got):\n%s", n, diff)
		}

		b.Store8(got, b.ShrBytes(v, n))
		want = make([]uint8, Lanes8)
		for i := range want {
			if j := i + int(n); j < Lanes8 {
				want[i] = uint8(j + 1)
			}
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ShrBytes(%d) mismatch (-want +got):\n%s", n, diff)
		}
	}
}

func TestPack32CrossBlocks(t *testing.T) {
	var b Backend
	got := make([]uint32, Lanes32)
	b.Store32(got, b.Pack32(b.Load32([]uint32{0, 1, 2, 3, 4, 5, 6, 7})))
	assert.Equal(t, []uint32{0, 2, 4, 6, 1, 3, 5, 7}, got)

	even, odd := b.PackMerge32(b.Load32([]uint32{0, 1, 2, 3, 4, 5, 6, 7}), b.Load32([]uint32{8, 9, 10, 11, 12, 13, 14, 15}))
	b.Store32(got, even)
	assert.Equal(t, []uint32{0, 2, 4, 6, 8, 10, 12, 14}, got)
	b.Store32(got, odd)
	assert.Equal(t, []uint32{1, 3, 5, 7, 9, 11, 13, 15}, got)
}

func TestFmaddIsFused(t *testing.T) {
	var b Backend
	x := 1 + math.Ldexp(1, -30)
	c := -(1 + math.Ldexp(1, -29))
	got := b.FmaddF64(b.SetF64(x), b.SetF64(x), b.SetF64(c))
	assert.Equal(t, math.Ldexp(1, -60), got[0])
}

func TestShuffleRepeatsPerBlock(t *testing.T) {
	var b Backend
	got := make([]uint32, Lanes32)
	b.Store32(got, b.Shuffle32(b.Load32([]uint32{0, 1, 2, 3, 4, 5, 6, 7}), 0x1B))
	assert.Equal(t, []uint32{3, 2, 1, 0, 7, 6, 5, 4}, got)
}
