package sse4

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-lanes/internal/conformance"
)

func TestConformance(t *testing.T) {
	conformance.Test[Int, F32, F64](t, Backend{}, 500)
}

func TestGeometry(t *testing.T) {
	g := Backend{}.Geometry()
	require.NoError(t, g.Validate())
	assert.Equal(t, 16, g.Bytes)
	assert.Equal(t, 4, g.Lanes32)
	assert.True(t, g.ExactWidenU16)
}

func TestAdd32Scenario(t *testing.T) {
	var b Backend
	got := make([]uint32, Lanes32)
	b.Store32(got, b.Add32(b.Set32(15), b.Load32([]uint32{0, 1, 2, 3})))
	assert.Equal(t, []uint32{15, 16, 17, 18}, got)
}

func TestMul64Synthesis(t *testing.T) {
	var b Backend
	cases := []struct {
		x, y, want uint64
	}{
		{0, math.MaxUint64, 0},
		{1 << 32, 1 << 32, 0},
		{1<<32 - 1, 1<<32 - 1, 0xFFFFFFFE00000001},
		{math.MaxUint64, math.MaxUint64, 1},
		{0x123456789ABCDEF0, 3, 0x369D0369D0369CD0},
	}
	for _, c := range cases {
		got := b.Mul64(Int{c.x, c.y}, Int{c.y, c.x})
		assert.Equal(t, Int{c.want, c.want}, got, "%#x * %#x", c.x, c.y)
	}
}

func TestMergeUnmerge(t *testing.T) {
	var b Backend
	a := Int{1, 2}
	c := Int{3, 4}
	lo, hi := b.MergeLo(a, c), b.MergeHi(a, c)
	assert.Equal(t, Int{1, 3}, lo)
	assert.Equal(t, Int{2, 4}, hi)
	assert.Equal(t, a, b.MergeLo(lo, hi))
	assert.Equal(t, c, b.MergeHi(lo, hi))
}

func TestShiftSaturation(t *testing.T) {
	var b Backend
	v := b.Set32(0x80000001)
	for _, n := range []uint{31, 32, 33} {
		got := make([]uint32, Lanes32)
		b.Store32(got, b.Shl32(v, n))
		want := uint32(0)
		if n < 32 {
			want = 0x80000001 << n
		}
		assert.Equal(t, []uint32{want, want, want, want}, got, "shift %d", n)
	}
}

func TestFmaddRoundsProduct(t *testing.T) {
	var b Backend
	// The exact squares carry a low term that one rounding of the product
	// drops; a fused result would keep it.
	x32 := float32(1 + math.Ldexp(1, -12))
	c32 := -float32(1 + math.Ldexp(1, -11))
	f := b.FmaddF32(b.SetF32(x32), b.SetF32(x32), b.SetF32(c32))
	assert.Equal(t, F32{}, f)
	f = b.FmsubF32(b.SetF32(x32), b.SetF32(x32), b.SetF32(-c32))
	assert.Equal(t, F32{}, f)
	assert.NotZero(t, math.FMA(float64(x32), float64(x32), float64(c32)))

	x64 := 1 + math.Ldexp(1, -30)
	c64 := -(1 + math.Ldexp(1, -29))
	d := b.FmaddF64(b.SetF64(x64), b.SetF64(x64), b.SetF64(c64))
	assert.Equal(t, F64{}, d)
	d = b.FmsubF64(b.SetF64(x64), b.SetF64(x64), b.SetF64(-c64))
	assert.Equal(t, F64{}, d)
	assert.NotZero(t, math.FMA(x64, x64, c64))
}
