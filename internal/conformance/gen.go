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

package conformance

import (
	"math"
	"math/rand"
	"unsafe"
)

// Boundary64 are the 64-bit values every multiply check includes.
var Boundary64 = []uint64{0, 1, 1<<32 - 1, 1 << 32, math.MaxUint64}

// word draws a 64-bit value biased toward lane boundaries: plain random,
// all-ones lanes, sign bits, small values.
func word(r *rand.Rand) uint64 {
	switch r.Intn(6) {
	case 0:
		return uint64(r.Intn(16))
	case 1:
		return math.MaxUint64 - uint64(r.Intn(4))
	case 2:
		return Boundary64[r.Intn(len(Boundary64))]
	case 3:
		// Every 16-bit lane near its maximum.
		return 0xFFF0FFF0FFF0FFF0 | uint64(r.Uint32())&0x000F000F000F000F
	default:
		return r.Uint64()
	}
}

func words(r *rand.Rand, n int) []uint64 {
	w := make([]uint64, n)
	for i := range w {
		w[i] = word(r)
	}
	return w
}

// float64s draws finite values across a wide exponent range, plus zeros and
// small integers. NaN and Inf are excluded so results compare bit-exact.
func float64s(r *rand.Rand, n int) []float64 {
	f := make([]float64, n)
	for i := range f {
		switch r.Intn(5) {
		case 0:
			f[i] = float64(r.Intn(64) - 32)
		case 1:
			f[i] = math.Copysign(0, float64(r.Intn(2)*2-1))
		default:
			f[i] = (r.Float64()*2 - 1) * math.Pow(2, float64(r.Intn(80)-40))
		}
	}
	return f
}

func float32s(r *rand.Rand, n int) []float32 {
	d := float64s(r, n)
	f := make([]float32, n)
	for i, x := range d {
		f[i] = float32(x)
	}
	return f
}

// alignedBytes returns n bytes starting on an align boundary.
func alignedBytes(n, align int) []byte {
	buf := make([]byte, n+align)
	off := (align - int(uintptr(unsafe.Pointer(&buf[0]))&uintptr(align-1))) & (align - 1)
	return buf[off : off+n : off+n]
}

// aligned returns an n-element slice of T starting on an align boundary.
func aligned[T any](n, align int) []T {
	var zero T
	b := alignedBytes(n*int(unsafe.Sizeof(zero))+int(unsafe.Sizeof(zero)), align)
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n+1)[:n]
}

// misaligned returns an n-element slice of T whose start is one element
// past an align boundary.
func misaligned[T any](n, align int) []T {
	return aligned[T](n+1, align)[1:]
}
