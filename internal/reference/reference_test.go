package reference

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestIntegerArithmetic(t *testing.T) {
	assert.Equal(t, []uint32{15, 16, 17, 18}, Add([]uint32{15, 15, 15, 15}, []uint32{0, 1, 2, 3}))
	assert.Equal(t, []uint32{0}, Add([]uint32{0xFFFFFFFF}, []uint32{1}))
	assert.Equal(t, []uint8{0xFF}, Sub([]uint8{0}, []uint8{1}))
	assert.Equal(t, []uint16{0xFFFF, 3}, AddSatU16([]uint16{0xFFFF, 1}, []uint16{1, 2}))
	assert.Equal(t, []uint16{0, 1}, SubSatU16([]uint16{1, 3}, []uint16{2, 2}))
	assert.Equal(t, uint64(0xFFFFFFFE00000001), Mul64(1<<32-1, 1<<32-1))
	assert.Equal(t, uint64(1), Mul64(0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF))
}

func TestWidening(t *testing.T) {
	a := []uint16{0x8000, 3, 9, 9}
	b := []uint16{2, 0xFFFF, 9, 9}
	assert.Equal(t, []uint32{0xFFFF0000, 0xFFFFFFFD}, MulWidenS16(a, b))
	assert.Equal(t, []uint32{0x10000, 0x2FFFD}, MulWidenU16(a, b))
	assert.Equal(t, []uint32{0xFFFF0000, 0xFFFFFFFD}, MulWidenU16SignedHigh(a, b))
	assert.Equal(t, []uint32{6}, MulWidenU16SignedHigh([]uint16{2, 2}, []uint16{3, 4}), "operands below 0x8000 are exact")

	assert.Equal(t, []uint64{0xFFFFFFFE00000001}, MulWidenU32([]uint32{0xFFFFFFFF, 0}, []uint32{0xFFFFFFFF, 0}))
	assert.Equal(t, []uint64{1}, MulWidenS32([]uint32{0xFFFFFFFF, 0}, []uint32{0xFFFFFFFF, 0}))
}

func TestShifts(t *testing.T) {
	v := []uint16{0x8001, 0x00FF}
	for _, tc := range []struct {
		n        uint
		shl, shr []uint16
	}{
		{0, []uint16{0x8001, 0x00FF}, []uint16{0x8001, 0x00FF}},
		{15, []uint16{0x8000, 0x8000}, []uint16{1, 0}},
		{16, []uint16{0, 0}, []uint16{0, 0}},
		{17, []uint16{0, 0}, []uint16{0, 0}},
	} {
		assert.Equal(t, tc.shl, Shl(v, tc.n), "Shl %d", tc.n)
		assert.Equal(t, tc.shr, Shr(v, tc.n), "Shr %d", tc.n)
	}

	bytes := []byte{1, 2, 3, 4}
	assert.Equal(t, []byte{0, 1, 2, 3}, ShlBytes(bytes, 1))
	assert.Equal(t, []byte{3, 4, 0, 0}, ShrBytes(bytes, 2))
	assert.Equal(t, []byte{0, 0, 0, 0}, ShlBytes(bytes, 4))
	assert.Equal(t, []byte{0, 0, 0, 0}, ShrBytes(bytes, 9))
}

func TestPermutations(t *testing.T) {
	a := []int{0, 1, 2, 3}
	b := []int{4, 5, 6, 7}
	for _, tc := range []struct {
		name      string
		got, want []int
	}{
		{"MergeLo", MergeLo(a, b), []int{0, 1, 4, 5}},
		{"MergeHi", MergeHi(a, b), []int{2, 3, 6, 7}},
		{"Pack", Pack([]int{0, 1, 2, 3, 4, 5, 6, 7}), []int{0, 2, 4, 6, 1, 3, 5, 7}},
		{"Shuffle4", Shuffle4(a, 0x1B), []int{3, 2, 1, 0}},
		{"Shuffle4 two lanes", Shuffle4([]int{0, 1}, 0x03), []int{1, 0}},
		{"Shuffle4 two groups", Shuffle4([]int{0, 1, 2, 3, 4, 5, 6, 7}, 0x00), []int{0, 0, 0, 0, 4, 4, 4, 4}},
		{"Shuffle2", Shuffle2(a, 0x01), []int{1, 0, 3, 2}},
		{"SwapHalves", SwapHalves(a), []int{2, 3, 0, 1}},
		{"SwapPairs", SwapPairs(a), []int{1, 0, 3, 2}},
		{"DupLo", DupLo(a), []int{0, 1, 0, 1}},
		{"DupHi", DupHi(a), []int{2, 3, 2, 3}},
		{"MergeLo single lane", MergeLo([]int{1}, []int{2}), []int{1}},
		{"MergeHi single lane", MergeHi([]int{1}, []int{2}), []int{2}},
		{"SwapHalves single lane", SwapHalves([]int{1}), []int{1}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, tc.got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}

	even, odd := PackMerge(a, b)
	assert.Equal(t, []int{0, 2, 4, 6}, even)
	assert.Equal(t, []int{1, 3, 5, 7}, odd)

	lo, hi := MergeLo(a, b), MergeHi(a, b)
	ra, rb := Unmerge(lo, hi)
	assert.Equal(t, a, ra)
	assert.Equal(t, b, rb)
}

func TestFloat(t *testing.T) {
	assert.Equal(t, []float32{3, -1}, AddF32([]float32{1, 0}, []float32{2, -1}))
	assert.Equal(t, []float64{6}, MulF64([]float64{2}, []float64{3}))

	// 1+2^-30 squared needs the unrounded product to keep the 2^-60 term.
	x := 1 + 0x1p-30
	fused := FmaF64([]float64{x}, []float64{x}, []float64{-1}, true, false)
	unfused := FmaF64([]float64{x}, []float64{x}, []float64{-1}, false, false)
	assert.Equal(t, 0x1p-29+0x1p-60, fused[0])
	assert.Equal(t, 0x1p-29, unfused[0])
	assert.Equal(t, []float64{5}, FmaF64([]float64{2}, []float64{3}, []float64{1}, true, true))

	assert.Equal(t, []float32{-1, 2}, CvtI32F32([]uint32{0xFFFFFFFF, 2}))
	assert.Equal(t, []float64{-1}, CvtI32F64([]uint32{0xFFFFFFFF, 2}))
	assert.Equal(t, []float32{0x1p64, 0, 0, 0}, CvtU64F32([]uint64{0xFFFFFFFFFFFFFFFF}, 4))
	assert.Equal(t, []float64{0x1p63}, CvtU64F64([]uint64{1 << 63}))
}

func TestTreeSum(t *testing.T) {
	assert.Equal(t, uint32(10), TreeSum([]uint32{1, 2, 3, 4}))
	assert.Equal(t, uint64(0), TreeSum([]uint64{1, 0xFFFFFFFFFFFFFFFF}))
	assert.Equal(t, float32(0), TreeSum([]float32{}))

	// ((a+c)+(b+d)) differs from a left fold here.
	v := []float64{1e16, 1, -1e16, 1}
	assert.Equal(t, float64(2), TreeSum(v))
}
