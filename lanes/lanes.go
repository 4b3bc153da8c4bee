// Copyright 2025 go-lanes Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package lanes is the portable vector API. Every operation has one name
// here (Add32, Mul64, Load32, Shuffle32, ...) and is implemented by exactly
// one backend, chosen when the program is built:
//
//   - with no lanes_* tag, GOAMD64 picks it: v4 builds use avx512, v3 avx2,
//     v2 sse4, v1 (and 386) mmx, and every other architecture scalar;
//   - -tags lanes_avx512, lanes_avx2, lanes_sse4, lanes_mmx or lanes_scalar
//     pins a backend. A pin the target cannot provide fails the build.
//
// Each wrapper is a direct call on a zero-size backend value, so there is
// no runtime dispatch. The register types Int, Float32s and Float64s and
// the width constants (RegisterBytes, Lanes32, ...) follow the chosen
// backend; code written against them is width-agnostic.
package lanes

import (
	"github.com/ajroetker/go-lanes/lanes/contract"
	"github.com/ajroetker/go-lanes/lanes/features"
)

// Level identifies a backend.
type Level int

const (
	// LevelScalar is the plain Go fallback, one 64-bit word per register.
	LevelScalar Level = iota

	// LevelMMX is the 64-bit MMX backend.
	LevelMMX

	// LevelSSE4 is the 128-bit SSE4.1/4.2 backend.
	LevelSSE4

	// LevelAVX2 is the 256-bit AVX2 backend.
	LevelAVX2

	// LevelAVX512 is the 512-bit AVX-512 backend.
	LevelAVX512
)

// String returns the backend name, as used by the lanes_* build tags.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return features.Scalar
	case LevelMMX:
		return features.MMX
	case LevelSSE4:
		return features.SSE4
	case LevelAVX2:
		return features.AVX2
	case LevelAVX512:
		return features.AVX512
	default:
		return "unknown"
	}
}

// CurrentLevel returns the backend this binary was built with.
func CurrentLevel() Level {
	return level
}

// CurrentName returns the name of the backend this binary was built with,
// for example "avx2" or "scalar".
func CurrentName() string {
	return level.String()
}

// Geometry describes the compiled backend's register and capabilities.
func Geometry() contract.Geometry {
	return backend{}.Geometry()
}

// HostSupported reports whether the running CPU provides the instruction
// set the compiled backend targets.
func HostSupported() bool {
	return features.Detect().Supports(level.String())
}
