package lanes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd32Scenario(t *testing.T) {
	a := Set32(uint32(15))
	b := SetN32([]uint32{0, 1, 2, 3})
	got := make([]uint32, Lanes32)
	Store32(got, Add32(a, b))

	expected := []uint32{15, 16, 17, 18}
	for i := 0; i < len(expected) && i < Lanes32; i++ {
		if got[i] != expected[i] {
			t.Errorf("Add32: lane %d: got %d, want %d", i, got[i], expected[i])
		}
	}
	for i := len(expected); i < Lanes32; i++ {
		if got[i] != 15 {
			t.Errorf("Add32: lane %d: got %d, want 15", i, got[i])
		}
	}
}

func TestSaturateVsWrap(t *testing.T) {
	u16 := make([]uint16, Lanes16)
	Store16(u16, AddU16(Set16(uint16(0xFFFF)), Set16(uint16(1))))
	for i, x := range u16 {
		if x != 0xFFFF {
			t.Errorf("AddU16: lane %d: got %#x, want 0xffff", i, x)
		}
	}

	u32 := make([]uint32, Lanes32)
	Store32(u32, AddU32(Set32(uint32(0xFFFFFFFF)), Set32(uint32(1))))
	for i, x := range u32 {
		if x != 0 {
			t.Errorf("AddU32: lane %d: got %#x, want 0", i, x)
		}
	}
}

func TestSignedElements(t *testing.T) {
	src := make([]int16, Lanes16)
	for i := range src {
		src[i] = int16(-i - 1)
	}
	dst := make([]int16, Lanes16)
	Store16(dst, Mul16(Load16(src), Set16(int16(-2))))
	for i, x := range dst {
		assert.Equal(t, int16(2*(i+1)), x, "lane %d", i)
	}

	wide := make([]int64, Lanes64)
	Store64(wide, Add64(Set64(int64(-1)), Set64(int64(-1))))
	for _, x := range wide {
		assert.Equal(t, int64(-2), x)
	}
}

func TestGeometryMatchesConstants(t *testing.T) {
	g := Geometry()
	require.NoError(t, g.Validate())
	assert.Equal(t, CurrentName(), g.Name)
	assert.Equal(t, RegisterBits, g.Bits)
	assert.Equal(t, RegisterBytes, g.Bytes)
	assert.Equal(t, Lanes8, g.Lanes8)
	assert.Equal(t, Lanes64, g.Lanes64)
	assert.Equal(t, Alignment, g.Alignment)
	assert.Equal(t, Lanes32, MaxLanes[float32]())
	assert.Equal(t, Lanes64, MaxLanes[int64]())
}

func TestLevelString(t *testing.T) {
	for level, want := range map[Level]string{
		LevelScalar: "scalar",
		LevelMMX:    "mmx",
		LevelSSE4:   "sse4",
		LevelAVX2:   "avx2",
		LevelAVX512: "avx512",
		Level(42):   "unknown",
	} {
		assert.Equal(t, want, level.String())
	}
	assert.Equal(t, CurrentLevel().String(), CurrentName())
}

func TestAlignedSlice(t *testing.T) {
	for _, n := range []int{1, Lanes32, 3*Lanes32 + 1} {
		s := AlignedSlice[uint32](n)
		require.Len(t, s, n)
		assert.True(t, IsAlignedPtr(s), "n=%d", n)
		assert.Zero(t, cap(s)%Lanes32)
	}

	s := AlignedSlice[float64](2 * Lanes64)
	for i := range s {
		s[i] = float64(i)
	}
	v := LoadAF64(s)
	StoreAF64(s[Lanes64:], v)
	for i := range Lanes64 {
		assert.Equal(t, float64(i), s[Lanes64+i])
	}
}

func TestProcessWithTail(t *testing.T) {
	size := 3*MaxLanes[uint16]() + 2
	var full []int
	var tailOffset, tailCount int
	ProcessWithTail[uint16](size,
		func(offset int) { full = append(full, offset) },
		func(offset, count int) { tailOffset, tailCount = offset, count },
	)
	assert.Equal(t, []int{0, Lanes16, 2 * Lanes16}, full)
	assert.Equal(t, 3*Lanes16, tailOffset)
	assert.Equal(t, 2, tailCount)

	var offsets []int
	ProcessWithTailOverlap[uint16](size, func(offset int) { offsets = append(offsets, offset) })
	assert.Equal(t, []int{0, Lanes16, 2 * Lanes16, size - Lanes16}, offsets)

	assert.Equal(t, 4*Lanes16, AlignedSize[uint16](size))
	assert.False(t, IsAligned[uint16](size))
	assert.True(t, IsAligned[uint16](4*Lanes16))
}

func TestSums(t *testing.T) {
	for _, n := range []int{0, 1, 7, 64, 1000} {
		u32 := make([]uint32, n)
		i64 := make([]int64, n)
		f32 := make([]float32, n)
		f64 := make([]float64, n)
		for i := range n {
			u32[i] = uint32(i + 1)
			i64[i] = -int64(i + 1)
			f32[i] = float32(i + 1)
			f64[i] = float64(i + 1)
		}
		want := n * (n + 1) / 2
		assert.Equal(t, uint32(want), Sum32(u32), "n=%d", n)
		assert.Equal(t, int64(-want), int64(Sum64(i64)), "n=%d", n)
		assert.Equal(t, float32(want), SumF32(f32), "n=%d", n)
		assert.Equal(t, float64(want), SumF64(f64), "n=%d", n)
	}
}

func TestDot(t *testing.T) {
	a := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	b := []float32{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 2}
	assert.Equal(t, float32(77), DotF32(a, b))

	c := []float64{0.5, 0.25, 3}
	assert.Equal(t, 0.5*0.5+0.25*0.25+9, DotF64(c, c))

	assert.Panics(t, func() { DotF32(a, b[:3]) })
	assert.True(t, math.IsNaN(float64(DotF32([]float32{float32(math.NaN())}, []float32{1}))))
}
