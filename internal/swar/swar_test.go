package swar

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func lanes16(f func(x, y uint16) uint16) func(a, b uint64) uint64 {
	return func(a, b uint64) uint64 {
		var r uint64
		for i := range 4 {
			r = Put16(r, i, f(Lane16(a, i), Lane16(b, i)))
		}
		return r
	}
}

func TestWordKernels(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("Add8 matches bytewise add", prop.ForAll(
		func(a, b uint64) bool {
			var want uint64
			for i := range 8 {
				want = Put8(want, i, Lane8(a, i)+Lane8(b, i))
			}
			return Add8(a, b) == want
		},
		gen.UInt64(), gen.UInt64(),
	))
	properties.Property("Sub8 matches bytewise sub", prop.ForAll(
		func(a, b uint64) bool {
			var want uint64
			for i := range 8 {
				want = Put8(want, i, Lane8(a, i)-Lane8(b, i))
			}
			return Sub8(a, b) == want
		},
		gen.UInt64(), gen.UInt64(),
	))
	properties.Property("Add16 and Sub16 are inverse", prop.ForAll(
		func(a, b uint64) bool { return Sub16(Add16(a, b), b) == a },
		gen.UInt64(), gen.UInt64(),
	))
	properties.Property("Add32 matches dword add", prop.ForAll(
		func(a, b uint64) bool {
			return Add32(a, b) == Pack32(Lane32(a, 0)+Lane32(b, 0), Lane32(a, 1)+Lane32(b, 1))
		},
		gen.UInt64(), gen.UInt64(),
	))
	properties.Property("Sub32 matches dword sub", prop.ForAll(
		func(a, b uint64) bool {
			return Sub32(a, b) == Pack32(Lane32(a, 0)-Lane32(b, 0), Lane32(a, 1)-Lane32(b, 1))
		},
		gen.UInt64(), gen.UInt64(),
	))
	properties.Property("AddSatU16 clamps", prop.ForAll(
		func(a, b uint64) bool {
			return AddSatU16(a, b) == lanes16(func(x, y uint16) uint16 {
				return uint16(min(uint32(x)+uint32(y), 0xFFFF))
			})(a, b)
		},
		gen.UInt64(), gen.UInt64(),
	))
	properties.Property("SubSatU16 clamps", prop.ForAll(
		func(a, b uint64) bool {
			return SubSatU16(a, b) == lanes16(func(x, y uint16) uint16 {
				if y > x {
					return 0
				}
				return x - y
			})(a, b)
		},
		gen.UInt64(), gen.UInt64(),
	))
	properties.Property("MulHiU16 matches widening product", prop.ForAll(
		func(a, b uint64) bool {
			return MulHiU16(a, b) == lanes16(func(x, y uint16) uint16 {
				return uint16(uint32(x) * uint32(y) >> 16)
			})(a, b)
		},
		gen.UInt64(), gen.UInt64(),
	))
	properties.Property("lane shifts", prop.ForAll(
		func(w uint64, n uint) bool {
			n %= 70
			var shl, shr uint64
			for i := range 4 {
				x := Lane16(w, i)
				if n < 16 {
					shl = Put16(shl, i, x<<n)
					shr = Put16(shr, i, x>>n)
				}
			}
			return Shl16(w, n) == shl && Shr16(w, n) == shr
		},
		gen.UInt64(), gen.UInt(),
	))
	properties.Property("Rotl32 matches per-lane rotate", prop.ForAll(
		func(w uint64, n uint) bool {
			s := n & 31
			rot := func(x uint32) uint32 { return x<<s | x>>((32-s)&31) }
			return Rotl32(w, n) == Pack32(rot(Lane32(w, 0)), rot(Lane32(w, 1)))
		},
		gen.UInt64(), gen.UInt(),
	))

	properties.TestingRun(t)
}

func TestShiftWidthBoundary(t *testing.T) {
	w := uint64(0xFFFFFFFFFFFFFFFF)
	assert.Equal(t, uint64(0x8000800080008000), Shl16(w, 15))
	assert.Zero(t, Shl16(w, 16))
	assert.Zero(t, Shr16(w, 17))
	assert.Equal(t, uint64(0x0000000100000001), Shr32(w, 31))
	assert.Zero(t, Shr32(w, 32))
	assert.Equal(t, uint64(1), Shr64(w, 63))
	assert.Zero(t, Shl64(w, 64))
}

func TestLoadStoreRoundTrip(t *testing.T) {
	src8 := []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	w := make([]uint64, 2)
	Load8(w, src8)
	assert.Equal(t, uint64(0x0807060504030201), w[0])
	dst8 := make([]uint8, 16)
	Store8(dst8, w)
	assert.Equal(t, src8, dst8)

	src16 := []uint16{1, 2, 3, 4, 5, 6, 7, 8}
	Load16(w, src16)
	dst16 := make([]uint16, 8)
	Store16(dst16, w)
	assert.Equal(t, src16, dst16)

	src32 := []uint32{0xDEADBEEF, 1, 2, 3}
	Load32(w, src32)
	assert.Equal(t, uint64(0x00000001DEADBEEF), w[0])
	dst32 := make([]uint32, 4)
	Store32(dst32, w)
	assert.Equal(t, src32, dst32)
}

func TestSetNZeroFills(t *testing.T) {
	w := []uint64{^uint64(0), ^uint64(0)}
	SetN16(w, []uint16{7, 8, 9})
	assert.Equal(t, []uint64{Pack16(7, 8, 9, 0), 0}, w)

	SetN32(w, []uint32{1, 2, 3, 4, 5})
	assert.Equal(t, []uint64{Pack32(1, 2), Pack32(3, 4)}, w)

	SetN32(w, nil)
	assert.Equal(t, []uint64{0, 0}, w)
}

func TestU64ToFloat(t *testing.T) {
	cases := []uint64{
		0, 1, 1<<53 + 1, 1<<63 - 1, 1 << 63, 1<<63 + 1, 1<<63 + 1<<10 + 1,
		0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFF400, 0xFFFFFF7FFFFFFFFF,
	}
	for _, x := range cases {
		assert.Equal(t, float64(x), U64ToF64(x), "float64(%#x)", x)
		assert.Equal(t, float32(x), U64ToF32(x), "float32(%#x)", x)
	}

	properties := gopter.NewProperties(nil)
	properties.Property("rounds like a native conversion", prop.ForAll(
		func(x uint64) bool { return U64ToF64(x) == float64(x) && U64ToF32(x) == float32(x) },
		gen.UInt64(),
	))
	properties.TestingRun(t)
}
