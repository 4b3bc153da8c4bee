package lanes

import (
	"go/build"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// target is a GOARCH with the tool tags its go command would set.
type target struct {
	arch string
	tool []string
}

var (
	amd64v1 = target{"amd64", []string{"amd64.v1"}}
	amd64v2 = target{"amd64", []string{"amd64.v1", "amd64.v2"}}
	amd64v3 = target{"amd64", []string{"amd64.v1", "amd64.v2", "amd64.v3"}}
	amd64v4 = target{"amd64", []string{"amd64.v1", "amd64.v2", "amd64.v3", "amd64.v4"}}
	x86     = target{"386", []string{"386.sse2"}}
	arm64   = target{"arm64", []string{"arm64.v8.0"}}
)

// selected returns the dispatch and pin-check files a build for tg with
// tags would compile.
func selected(t *testing.T, tg target, tags ...string) (dispatch, pinchecks []string) {
	t.Helper()
	ctx := build.Context{
		GOARCH:    tg.arch,
		GOOS:      "linux",
		BuildTags: tags,
		ToolTags:  tg.tool,
	}
	for _, pattern := range []string{"dispatch_*.go", "pincheck_*.go"} {
		files, err := filepath.Glob(pattern)
		require.NoError(t, err)
		require.NotEmpty(t, files, pattern)
		for _, name := range files {
			ok, err := ctx.MatchFile(".", name)
			require.NoError(t, err, name)
			if !ok {
				continue
			}
			if strings.HasPrefix(name, "dispatch_") {
				dispatch = append(dispatch, name)
			} else {
				pinchecks = append(pinchecks, name)
			}
		}
	}
	return dispatch, pinchecks
}

func TestDispatchSelectsOneBackend(t *testing.T) {
	tests := []struct {
		name   string
		target target
		tags   []string
		want   string
	}{
		{"auto/amd64.v1", amd64v1, nil, "dispatch_mmx.go"},
		{"auto/amd64.v2", amd64v2, nil, "dispatch_sse4.go"},
		{"auto/amd64.v3", amd64v3, nil, "dispatch_avx2.go"},
		{"auto/amd64.v4", amd64v4, nil, "dispatch_avx512.go"},
		{"auto/386", x86, nil, "dispatch_mmx.go"},
		{"auto/arm64", arm64, nil, "dispatch_scalar.go"},
		{"pin/scalar/amd64.v4", amd64v4, []string{"lanes_scalar"}, "dispatch_scalar.go"},
		{"pin/scalar/arm64", arm64, []string{"lanes_scalar"}, "dispatch_scalar.go"},
		{"pin/mmx/amd64.v1", amd64v1, []string{"lanes_mmx"}, "dispatch_mmx.go"},
		{"pin/mmx/amd64.v4", amd64v4, []string{"lanes_mmx"}, "dispatch_mmx.go"},
		{"pin/mmx/386", x86, []string{"lanes_mmx"}, "dispatch_mmx.go"},
		{"pin/sse4/amd64.v2", amd64v2, []string{"lanes_sse4"}, "dispatch_sse4.go"},
		{"pin/sse4/amd64.v4", amd64v4, []string{"lanes_sse4"}, "dispatch_sse4.go"},
		{"pin/avx2/amd64.v3", amd64v3, []string{"lanes_avx2"}, "dispatch_avx2.go"},
		{"pin/avx2/amd64.v4", amd64v4, []string{"lanes_avx2"}, "dispatch_avx2.go"},
		{"pin/avx512/amd64.v4", amd64v4, []string{"lanes_avx512"}, "dispatch_avx512.go"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dispatch, pinchecks := selected(t, tt.target, tt.tags...)
			assert.Equal(t, []string{tt.want}, dispatch)
			assert.Empty(t, pinchecks)
		})
	}
}

func TestUnsupportedPinFailsBuild(t *testing.T) {
	tests := []struct {
		name   string
		target target
		tags   []string
		want   string
	}{
		{"avx512/amd64.v3", amd64v3, []string{"lanes_avx512"}, "pincheck_avx512.go"},
		{"avx512/arm64", arm64, []string{"lanes_avx512"}, "pincheck_avx512.go"},
		{"avx2/amd64.v2", amd64v2, []string{"lanes_avx2"}, "pincheck_avx2.go"},
		{"avx2/386", x86, []string{"lanes_avx2"}, "pincheck_avx2.go"},
		{"sse4/amd64.v1", amd64v1, []string{"lanes_sse4"}, "pincheck_sse4.go"},
		{"sse4/386", x86, []string{"lanes_sse4"}, "pincheck_sse4.go"},
		{"mmx/arm64", arm64, []string{"lanes_mmx"}, "pincheck_mmx.go"},
		{"conflict/sse4+mmx", amd64v4, []string{"lanes_sse4", "lanes_mmx"}, "pincheck_conflict.go"},
		{"conflict/avx512+scalar", amd64v4, []string{"lanes_avx512", "lanes_scalar"}, "pincheck_conflict.go"},
		{"conflict/avx2+avx512", amd64v4, []string{"lanes_avx2", "lanes_avx512"}, "pincheck_conflict.go"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, pinchecks := selected(t, tt.target, tt.tags...)
			assert.Contains(t, pinchecks, tt.want)
		})
	}
}

// TestEveryTagCombinationResolves checks that each build either compiles
// exactly one dispatch file or is stopped by a pin check.
func TestEveryTagCombinationResolves(t *testing.T) {
	pins := []string{"lanes_scalar", "lanes_mmx", "lanes_sse4", "lanes_avx2", "lanes_avx512"}
	targets := map[string]target{
		"amd64.v1": amd64v1, "amd64.v2": amd64v2, "amd64.v3": amd64v3,
		"amd64.v4": amd64v4, "386": x86, "arm64": arm64,
	}
	for name, tg := range targets {
		for mask := range 1 << len(pins) {
			var tags []string
			for i, pin := range pins {
				if mask&(1<<i) != 0 {
					tags = append(tags, pin)
				}
			}
			dispatch, pinchecks := selected(t, tg, tags...)
			if len(pinchecks) == 0 {
				assert.Len(t, dispatch, 1, "%s %v", name, tags)
			}
		}
	}
}
