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

// Package features reports which x86 vector extensions the running CPU
// provides, so a caller can tell whether a binary built for a given
// backend level is able to run here.
package features

import (
	"runtime"
	"slices"
	"sync"
)

// Backend level names, lowest first.
const (
	Scalar = "scalar"
	MMX    = "mmx"
	SSE4   = "sse4"
	AVX2   = "avx2"
	AVX512 = "avx512"
)

// Levels lists every backend level from lowest to highest.
var Levels = []string{Scalar, MMX, SSE4, AVX2, AVX512}

// Set is the detected feature set of the host. It is immutable once
// returned by Detect.
type Set struct {
	Arch      string
	Vendor    string
	CacheLine int

	MMX      bool
	SSE2     bool
	SSE41    bool
	SSE42    bool
	AVX      bool
	AVX2     bool
	FMA      bool
	AVX512F  bool
	AVX512DQ bool
	AVX512BW bool
	AVX512VL bool
}

var (
	detectOnce sync.Once
	detected   Set
)

// Detect returns the host feature set. The first call probes the CPU;
// later calls return the cached result. Safe for concurrent use.
func Detect() Set {
	detectOnce.Do(func() {
		detected = detect()
		detected.Arch = runtime.GOARCH
	})
	return detected
}

// Supports reports whether code built for the named backend level can run
// on a host with this feature set. Unknown names are not supported.
func (s Set) Supports(level string) bool {
	switch level {
	case Scalar:
		return true
	case MMX:
		return s.MMX
	case SSE4:
		return s.SSE2 && s.SSE41 && s.SSE42
	case AVX2:
		return s.Supports(SSE4) && s.AVX && s.AVX2 && s.FMA
	case AVX512:
		return s.Supports(AVX2) && s.AVX512F && s.AVX512DQ && s.AVX512BW && s.AVX512VL
	default:
		return false
	}
}

// Best returns the highest backend level the host can run.
func (s Set) Best() string {
	for _, level := range slices.Backward(Levels) {
		if s.Supports(level) {
			return level
		}
	}
	return Scalar
}

// Names lists the detected extensions in the order of the Set fields.
func (s Set) Names() []string {
	var names []string
	for _, f := range []struct {
		name string
		has  bool
	}{
		{"mmx", s.MMX},
		{"sse2", s.SSE2},
		{"sse4.1", s.SSE41},
		{"sse4.2", s.SSE42},
		{"avx", s.AVX},
		{"avx2", s.AVX2},
		{"fma", s.FMA},
		{"avx512f", s.AVX512F},
		{"avx512dq", s.AVX512DQ},
		{"avx512bw", s.AVX512BW},
		{"avx512vl", s.AVX512VL},
	} {
		if f.has {
			names = append(names, f.name)
		}
	}
	return names
}
