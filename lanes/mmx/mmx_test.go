package mmx

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-lanes/internal/conformance"
	"github.com/ajroetker/go-lanes/internal/swar"
)

func TestConformance(t *testing.T) {
	conformance.Test[Int, F32, F64](t, Backend{}, 500)
}

func TestGeometry(t *testing.T) {
	g := Backend{}.Geometry()
	require.NoError(t, g.Validate())
	assert.False(t, g.ExactWidenU16)
	assert.False(t, g.NativeMul64)
	assert.False(t, g.FusedMulAdd)
}

func TestSynthesizedSequences(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("add64", prop.ForAll(
		func(a, b uint64) bool { return add64(a, b) == a+b },
		gen.UInt64(), gen.UInt64(),
	))
	properties.Property("sub64", prop.ForAll(
		func(a, b uint64) bool { return sub64(a, b) == a-b },
		gen.UInt64(), gen.UInt64(),
	))
	properties.Property("mulhuw", prop.ForAll(
		func(a, b uint64) bool { return mulhuw(a, b) == swar.MulHiU16(a, b) },
		gen.UInt64(), gen.UInt64(),
	))
	properties.Property("mul32", prop.ForAll(
		func(a, b uint64) bool { return mul32(a, b) == swar.Mul32(a, b) },
		gen.UInt64(), gen.UInt64(),
	))
	properties.Property("mulWideU32", prop.ForAll(
		func(a, b uint64) bool { return mulWideU32(a, b) == uint64(uint32(a))*uint64(uint32(b)) },
		gen.UInt64(), gen.UInt64(),
	))
	properties.Property("mulWide32", prop.ForAll(
		func(a, b uint64) bool {
			return mulWide32(a, b) == uint64(int64(int32(a))*int64(int32(b)))
		},
		gen.UInt64(), gen.UInt64(),
	))
	properties.Property("mul64", prop.ForAll(
		func(a, b uint64) bool { return mul64(a, b) == a*b },
		gen.UInt64(), gen.UInt64(),
	))

	properties.TestingRun(t)
}

func TestMul64Boundaries(t *testing.T) {
	var b Backend
	for _, x := range conformance.Boundary64 {
		for _, y := range conformance.Boundary64 {
			assert.Equal(t, Int{x * y}, b.Mul64(Int{x}, Int{y}), "%#x * %#x", x, y)
		}
	}
}

// The unsigned widening multiply keeps the signed high half.
func TestMulWidenU16SignedHigh(t *testing.T) {
	var b Backend
	got := make([]uint32, Lanes32)
	b.Store32(got, b.MulWidenU16(b.Set16(0xFFFF), b.Set16(2)))
	// Exact would be 0x1FFFE; the signed high half of -1*2 is 0xFFFF.
	assert.Equal(t, []uint32{0xFFFFFFFE, 0xFFFFFFFE}, got)

	b.Store32(got, b.MulWidenU16(b.Set16(0x7FFF), b.Set16(2)))
	assert.Equal(t, []uint32{0xFFFE, 0xFFFE}, got)
}

func TestPsra(t *testing.T) {
	assert.Equal(t, uint64(0xFFFF0000FFFF0000), psraw(0x8000000080000000, 15))
	assert.Equal(t, uint64(0xFFFF0000FFFF0000), psraw(0x8000000080000000, 100))
	assert.Equal(t, uint64(0xFFFFFFFF00000000), psrad(0x8000000012345678, 40))
}

func TestSet8Unpack(t *testing.T) {
	assert.Equal(t, Int{0xABABABABABABABAB}, Backend{}.Set8(0xAB))
	assert.Equal(t, Int{0x1234123412341234}, Backend{}.Set16(0x1234))
}

func TestCvtU64(t *testing.T) {
	var b Backend
	v := Int{math.MaxUint64}
	assert.Equal(t, F64{float64(uint64(math.MaxUint64))}, b.CvtU64F64(v))
	assert.Equal(t, F32{float32(uint64(math.MaxUint64)), 0}, b.CvtU64F32(v))
}
