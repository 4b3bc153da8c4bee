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

package reference

import (
	"math"

	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"
)

// Lane-wise float arithmetic goes through vek, an independent vectorized
// implementation, so the oracle does not share code with the backends.

// AddF32 adds float32 lanes.
func AddF32(a, b []float32) []float32 { return vek32.Add(a, b) }

// SubF32 subtracts float32 lanes.
func SubF32(a, b []float32) []float32 { return vek32.Sub(a, b) }

// MulF32 multiplies float32 lanes.
func MulF32(a, b []float32) []float32 { return vek32.Mul(a, b) }

// AddF64 adds float64 lanes.
func AddF64(a, b []float64) []float64 { return vek.Add(a, b) }

// SubF64 subtracts float64 lanes.
func SubF64(a, b []float64) []float64 { return vek.Sub(a, b) }

// MulF64 multiplies float64 lanes.
func MulF64(a, b []float64) []float64 { return vek.Mul(a, b) }

// FmaF32 computes a*b+c (or a*b-c when sub is set). With fused set the
// product is not rounded before the addition; otherwise it is rounded to
// float32 first, which is what a separate multiply and add produce.
func FmaF32(a, b, c []float32, fused, sub bool) []float32 {
	r := make([]float32, len(a))
	for i := range r {
		ci := c[i]
		if sub {
			ci = -ci
		}
		if fused {
			r[i] = float32(math.FMA(float64(a[i]), float64(b[i]), float64(ci)))
		} else {
			r[i] = float32(float32(a[i]*b[i]) + ci)
		}
	}
	return r
}

// FmaF64 is the float64 counterpart of FmaF32.
func FmaF64(a, b, c []float64, fused, sub bool) []float64 {
	r := make([]float64, len(a))
	for i := range r {
		ci := c[i]
		if sub {
			ci = -ci
		}
		if fused {
			r[i] = math.FMA(a[i], b[i], ci)
		} else {
			r[i] = float64(float64(a[i]*b[i]) + ci)
		}
	}
	return r
}

// CvtI32F32 converts signed 32-bit lanes to float32.
func CvtI32F32(v []uint32) []float32 {
	r := make([]float32, len(v))
	for i, x := range v {
		r[i] = float32(int32(x))
	}
	return r
}

// CvtI32F64 converts the lower half of the signed 32-bit lanes to float64.
func CvtI32F64(v []uint32) []float64 {
	r := make([]float64, len(v)/2)
	for i := range r {
		r[i] = float64(int32(v[i]))
	}
	return r
}

// CvtU64F32 converts unsigned 64-bit lanes to float32, placing them in the
// low lanes of an f32Lanes-wide result; remaining lanes are zero.
func CvtU64F32(v []uint64, f32Lanes int) []float32 {
	r := make([]float32, f32Lanes)
	for i, x := range v {
		r[i] = float32(x)
	}
	return r
}

// CvtU64F64 converts unsigned 64-bit lanes to float64.
func CvtU64F64(v []uint64) []float64 {
	r := make([]float64, len(v))
	for i, x := range v {
		r[i] = float64(x)
	}
	return r
}

// TreeSum folds the upper half onto the lower half until one lane is left.
// len(v) must be a power of two. For floats the result depends on this
// order, so backends reduce in the same order.
func TreeSum[T Uints | Floats](v []T) T {
	t := append([]T(nil), v...)
	for n := len(t); n > 1; n /= 2 {
		h := n / 2
		for i := range h {
			t[i] += t[i+h]
		}
	}
	if len(t) == 0 {
		var zero T
		return zero
	}
	return t[0]
}
