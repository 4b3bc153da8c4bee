package features

import (
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestDetectIsIdempotent(t *testing.T) {
	first := Detect()
	if diff := cmp.Diff(first, Detect()); diff != "" {
		t.Fatalf("Detect changed between calls (-first +second):\n%s", diff)
	}
	assert.Equal(t, runtime.GOARCH, first.Arch)
}

func TestDetectConcurrent(t *testing.T) {
	want := Detect()
	var g errgroup.Group
	results := make([]Set, 32)
	for i := range results {
		g.Go(func() error {
			results[i] = Detect()
			return nil
		})
	}
	require.NoError(t, g.Wait())
	for i, got := range results {
		assert.Equal(t, want, got, "goroutine %d", i)
	}
}

func TestSupports(t *testing.T) {
	all := Set{
		MMX:      true,
		SSE2:     true,
		SSE41:    true,
		SSE42:    true,
		AVX:      true,
		AVX2:     true,
		FMA:      true,
		AVX512F:  true,
		AVX512DQ: true,
		AVX512BW: true,
		AVX512VL: true,
	}
	for _, level := range Levels {
		assert.True(t, all.Supports(level), level)
	}
	assert.Equal(t, AVX512, all.Best())

	noBW := all
	noBW.AVX512BW = false
	assert.False(t, noBW.Supports(AVX512))
	assert.Equal(t, AVX2, noBW.Best())

	noFMA := all
	noFMA.FMA = false
	assert.False(t, noFMA.Supports(AVX2))
	assert.False(t, noFMA.Supports(AVX512))
	assert.Equal(t, SSE4, noFMA.Best())

	var none Set
	assert.True(t, none.Supports(Scalar))
	assert.False(t, none.Supports(MMX))
	assert.False(t, none.Supports("neon"))
	assert.Equal(t, Scalar, none.Best())
	assert.Empty(t, none.Names())
}

func TestNames(t *testing.T) {
	s := Set{SSE2: true, AVX2: true, AVX512VL: true}
	assert.Equal(t, []string{"sse2", "avx2", "avx512vl"}, s.Names())
}

func TestHostBaseline(t *testing.T) {
	s := Detect()
	assert.True(t, s.Supports(s.Best()))
	if runtime.GOARCH == "amd64" {
		assert.True(t, s.SSE2, "SSE2 is part of the amd64 baseline")
		assert.True(t, s.Supports(MMX))
	}
}
