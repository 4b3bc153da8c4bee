package scalar

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
	assert.Equal(t, "scalar(64-bit)", g.String())
	assert.Equal(t, 8, g.Lanes8)
	assert.Equal(t, 1, g.Lanes64)
}

func TestSaturateVsWrap(t *testing.T) {
	var b Backend
	got := make([]uint16, Lanes16)
	b.Store16(got, b.AddU16(b.Set16(0xFFFF), b.Set16(1)))
	assert.Equal(t, []uint16{0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF}, got)

	wrap := make([]uint32, Lanes32)
	b.Store32(wrap, b.AddU32(b.Set32(0xFFFFFFFF), b.Set32(1)))
	assert.Equal(t, []uint32{0, 0}, wrap)
}

func TestFmaddIsUnfused(t *testing.T) {
	var b Backend
	// 1+2^-30 squared needs more than 53 bits; a fused result keeps the
	// low term that the rounded product drops.
	x := 1 + math.Ldexp(1, -30)
	c := -(1 + math.Ldexp(1, -29))
	got := b.FmaddF64(F64{x}, F64{x}, F64{c})
	assert.Equal(t, 0.0, got[0])
	assert.NotEqual(t, 0.0, math.FMA(x, x, c))
}

func TestCvtU64F32(t *testing.T) {
	var b Backend
	got := b.CvtU64F32(Int{math.MaxUint64})
	assert.Equal(t, F32{float32(math.MaxUint64), 0}, got)
}

func TestShlBytes(t *testing.T) {
	var b Backend
	v := b.Load8([]uint8{1, 2, 3, 4, 5, 6, 7, 8})
	out := make([]uint8, Lanes8)
	b.Store8(out, b.ShlBytes(v, 3))
	assert.Equal(t, []uint8{0, 0, 0, 1, 2, 3, 4, 5}, out)
	b.Store8(out, b.ShrBytes(v, 3))
	assert.Equal(t, []uint8{4, 5, 6, 7, 8, 0, 0, 0}, out)
	assert.Equal(t, Int{}, b.ShlBytes(v, Bytes))
}
