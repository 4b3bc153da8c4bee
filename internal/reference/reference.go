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

// Package reference gives the lane-wise meaning of every vector operation,
// computed one element at a time on plain slices. Backends are verified
// against it; it never touches a register type.
//
// Slices stand for whole registers: a []uint32 of length 4 is a 128-bit
// register viewed as 32-bit lanes. Functions return fresh slices.
package reference

import (
	"math"
	"math/bits"
)

// Uints is the set of unsigned lane types.
type Uints interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Floats is the set of float lane types.
type Floats interface {
	~float32 | ~float64
}

// Add adds lane-wise with wraparound.
func Add[T Uints](a, b []T) []T {
	r := make([]T, len(a))
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return r
}

// Sub subtracts lane-wise with wraparound.
func Sub[T Uints](a, b []T) []T {
	r := make([]T, len(a))
	for i := range r {
		r[i] = a[i] - b[i]
	}
	return r
}

// Mul multiplies lane-wise keeping the low bits.
func Mul[T Uints](a, b []T) []T {
	r := make([]T, len(a))
	for i := range r {
		r[i] = a[i] * b[i]
	}
	return r
}

// AddSatU16 adds unsigned 16-bit lanes clamping at 0xFFFF.
func AddSatU16(a, b []uint16) []uint16 {
	r := make([]uint16, len(a))
	for i := range r {
		s := uint32(a[i]) + uint32(b[i])
		r[i] = uint16(min(s, math.MaxUint16))
	}
	return r
}

// SubSatU16 subtracts unsigned 16-bit lanes clamping at 0.
func SubSatU16(a, b []uint16) []uint16 {
	r := make([]uint16, len(a))
	for i := range r {
		if a[i] > b[i] {
			r[i] = a[i] - b[i]
		}
	}
	return r
}

// Mul64 is the exact (a*b) mod 2^64 computed with the full 128-bit product.
func Mul64(a, b uint64) uint64 {
	_, lo := bits.Mul64(a, b)
	return lo
}

// MulWidenS16 multiplies the lower half of two signed 16-bit lane vectors
// into 32-bit lanes.
func MulWidenS16(a, b []uint16) []uint32 {
	r := make([]uint32, len(a)/2)
	for i := range r {
		r[i] = uint32(int32(int16(a[i])) * int32(int16(b[i])))
	}
	return r
}

// MulWidenU16 multiplies the lower half of two unsigned 16-bit lane vectors
// into 32-bit lanes.
func MulWidenU16(a, b []uint16) []uint32 {
	r := make([]uint32, len(a)/2)
	for i := range r {
		r[i] = uint32(a[i]) * uint32(b[i])
	}
	return r
}

// MulWidenU16SignedHigh models an unsigned widening multiply computed with
// a signed high-half multiply: the low 16 bits are exact, the high 16 bits
// are those of the signed product.
func MulWidenU16SignedHigh(a, b []uint16) []uint32 {
	r := make([]uint32, len(a)/2)
	for i := range r {
		lo := uint32(a[i]*b[i]) & 0xFFFF
		hi := uint32(int32(int16(a[i]))*int32(int16(b[i]))) >> 16
		r[i] = lo | hi<<16
	}
	return r
}

// MulWidenS32 multiplies the lower half of two signed 32-bit lane vectors
// into 64-bit lanes.
func MulWidenS32(a, b []uint32) []uint64 {
	r := make([]uint64, len(a)/2)
	for i := range r {
		r[i] = uint64(int64(int32(a[i])) * int64(int32(b[i])))
	}
	return r
}

// MulWidenU32 multiplies the lower half of two unsigned 32-bit lane vectors
// into 64-bit lanes.
func MulWidenU32(a, b []uint32) []uint64 {
	r := make([]uint64, len(a)/2)
	for i := range r {
		r[i] = uint64(a[i]) * uint64(b[i])
	}
	return r
}

// Shl shifts each lane left, clearing lanes for counts >= the lane width.
func Shl[T Uints](v []T, n uint) []T {
	r := make([]T, len(v))
	if n >= width[T]() {
		return r
	}
	for i := range r {
		r[i] = v[i] << n
	}
	return r
}

// Shr shifts each lane right (logical), clearing lanes for counts >= the
// lane width.
func Shr[T Uints](v []T, n uint) []T {
	r := make([]T, len(v))
	if n >= width[T]() {
		return r
	}
	for i := range r {
		r[i] = v[i] >> n
	}
	return r
}

func width[T Uints]() uint {
	var x T
	x = ^x
	return uint(bits.OnesCount64(uint64(x)))
}

// ShlBytes moves every byte n positions toward higher indices, filling with
// zeros.
func ShlBytes(v []byte, n uint) []byte {
	r := make([]byte, len(v))
	for i := range r {
		if uint(i) >= n {
			r[i] = v[uint(i)-n]
		}
	}
	return r
}

// ShrBytes moves every byte n positions toward lower indices, filling with
// zeros.
func ShrBytes(v []byte, n uint) []byte {
	r := make([]byte, len(v))
	for i := range r {
		if j := uint(i) + n; j < uint(len(v)) {
			r[i] = v[j]
		}
	}
	return r
}
