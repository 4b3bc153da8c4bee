package crosscheck

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackends(t *testing.T) {
	bs := Backends()
	var names []string
	for _, b := range bs {
		require.NoError(t, b.Geometry.Validate(), b.Name)
		names = append(names, b.Name)
	}
	assert.Equal(t, []string{"scalar", "mmx", "sse4", "avx2", "avx512"}, names)
}

func TestAllBackendsAgree(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	bs := Backends()
	// Lengths around every register width exercise both full chunks and tails.
	for _, n := range []int{1, 3, 8, 15, 16, 17, 63, 64, 65, 257, 1000} {
		in := NewInput(r, n)
		if err := Check(bs, in); err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
	}
}

func TestEmptyStream(t *testing.T) {
	in := NewInput(rand.New(rand.NewSource(2)), 0)
	for _, b := range Backends() {
		for _, out := range b.Stream(in) {
			if out.Op == "ReduceAdd32" || out.Op == "ReduceAdd64" {
				assert.Equal(t, []uint64{0}, out.Ints, b.Name)
			}
		}
	}
	require.NoError(t, Check(Backends(), in))
}

func TestCompareDetectsDivergence(t *testing.T) {
	a := []Output{{Op: "Add32", Ints: []uint64{1, 2}}}
	b := []Output{{Op: "Add32", Ints: []uint64{1, 3}}}
	err := Compare("x", a, "y", b)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDiverged))

	f := []Output{{Op: "ReduceAddF32", Floats: []float64{100}, Scale: []float64{1000}, Tolerance: 1e-4}}
	g := []Output{{Op: "ReduceAddF32", Floats: []float64{100.05}, Scale: []float64{1000}, Tolerance: 1e-4}}
	assert.NoError(t, Compare("x", f, "y", g))
	g[0].Floats[0] = 100.2
	assert.ErrorIs(t, Compare("x", f, "y", g), ErrDiverged)

	exact := []Output{{Op: "AddF32", Floats: []float64{1}}}
	off := []Output{{Op: "AddF32", Floats: []float64{1.0000001}}}
	assert.ErrorIs(t, Compare("x", exact, "y", off), ErrDiverged)
}
