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

// Package crosscheck runs the same logical streams through every backend,
// each at its own register width, and compares the results with each other.
//
// A stream is longer than any register, so every backend walks it in its
// own chunk size with a zero-padded tail. Lane-wise operations must then
// agree bit for bit; fused multiply-add and float reductions, whose
// rounding depends on the backend, must agree within a tolerance relative
// to the magnitude of their terms.
package crosscheck

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// ErrDiverged wraps every disagreement between two backends.
var ErrDiverged = errors.New("crosscheck: backends disagree")

// Relative tolerances for the approximate outputs.
const (
	Tolerance32 = 1e-4
	Tolerance64 = 1e-12
)

// Pair holds the operands of a binary stream. C is only used by
// three-operand operations.
type Pair[T any] struct {
	A, B, C []T
}

// Input is one set of streams, all of the same length.
type Input struct {
	U8    Pair[uint8]
	U16   Pair[uint16]
	U32   Pair[uint32]
	U64   Pair[uint64]
	F32   Pair[float32]
	F64   Pair[float64]
	Shift uint
}

// NewInput draws streams of n elements. Floats lie in [-100, 100] so that
// the tolerances above bound every rounding difference.
func NewInput(r *rand.Rand, n int) Input {
	in := Input{Shift: uint(r.Intn(70))}
	in.U8 = Pair[uint8]{A: draw(r, n, func() uint8 { return uint8(r.Uint32()) }), B: draw(r, n, func() uint8 { return uint8(r.Uint32()) })}
	in.U16 = Pair[uint16]{A: draw(r, n, func() uint16 { return uint16(r.Uint32()) }), B: draw(r, n, func() uint16 { return uint16(r.Uint32()) })}
	in.U32 = Pair[uint32]{A: draw(r, n, r.Uint32), B: draw(r, n, r.Uint32)}
	in.U64 = Pair[uint64]{A: draw(r, n, r.Uint64), B: draw(r, n, r.Uint64)}
	f64 := func() float64 { return (r.Float64()*2 - 1) * 100 }
	f32 := func() float32 { return float32(f64()) }
	in.F32 = Pair[float32]{A: draw(r, n, f32), B: draw(r, n, f32), C: draw(r, n, f32)}
	in.F64 = Pair[float64]{A: draw(r, n, f64), B: draw(r, n, f64), C: draw(r, n, f64)}
	return in
}

func draw[T any](r *rand.Rand, n int, f func() T) []T {
	s := make([]T, n)
	for i := range s {
		s[i] = f()
	}
	return s
}

// Output is the result of one operation over a stream. Integer results
// are widened to uint64 and float results to float64.
type Output struct {
	Op     string
	Ints   []uint64
	Floats []float64

	// When Scale is set, Floats[i] may differ between backends by up to
	// Tolerance*Scale[i].
	Scale     []float64
	Tolerance float64
}

// Compare checks two backends' outputs against each other.
func Compare(nameA string, a []Output, nameB string, b []Output) error {
	if len(a) != len(b) {
		return fmt.Errorf("%w: %s produced %d outputs, %s %d", ErrDiverged, nameA, len(a), nameB, len(b))
	}
	for k := range a {
		x, y := a[k], b[k]
		if x.Op != y.Op {
			return fmt.Errorf("%w: output %d is %s on %s but %s on %s", ErrDiverged, k, x.Op, nameA, y.Op, nameB)
		}
		for i := range x.Ints {
			if x.Ints[i] != y.Ints[i] {
				return fmt.Errorf("%w: %s element %d: %s=%#x %s=%#x", ErrDiverged, x.Op, i, nameA, x.Ints[i], nameB, y.Ints[i])
			}
		}
		for i := range x.Floats {
			if !closeEnough(x, y, i) {
				return fmt.Errorf("%w: %s element %d: %s=%v %s=%v", ErrDiverged, x.Op, i, nameA, x.Floats[i], nameB, y.Floats[i])
			}
		}
	}
	return nil
}

func closeEnough(x, y Output, i int) bool {
	f, g := x.Floats[i], y.Floats[i]
	if math.Float64bits(f) == math.Float64bits(g) || (math.IsNaN(f) && math.IsNaN(g)) {
		return true
	}
	if x.Scale == nil {
		return false
	}
	scale := max(x.Scale[i], y.Scale[i])
	tol := max(x.Tolerance, y.Tolerance)
	return math.Abs(f-g) <= tol*scale
}
