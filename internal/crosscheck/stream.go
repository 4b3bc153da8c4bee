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

package crosscheck

import (
	"math"

	"github.com/ajroetker/go-lanes/internal/reference"
	"github.com/ajroetker/go-lanes/lanes/contract"
)

// Stream runs every lane-wise operation of b over in.
func Stream[I, F, D any](b contract.Ops[I, F, D], in Input) []Output {
	g := b.Geometry()
	n := g.Lanes64
	shift := func(w uint) uint { return in.Shift % (w + 2) }

	u8 := func(op string, f func(x, y I) I) Output {
		return ints(op, binary(in.U8, g.Lanes8, b.Load8, b.Store8, f))
	}
	u16 := func(op string, f func(x, y I) I) Output {
		return ints(op, binary(in.U16, g.Lanes16, b.Load16, b.Store16, f))
	}
	u32 := func(op string, f func(x, y I) I) Output {
		return ints(op, binary(in.U32, g.Lanes32, b.Load32, b.Store32, f))
	}
	u64 := func(op string, f func(x, y I) I) Output {
		return ints(op, binary(in.U64, n, b.Load64, b.Store64, f))
	}
	f32 := func(op string, f func(x, y F) F) Output {
		return floats(op, binary(in.F32, g.Lanes32, b.LoadF32, b.StoreF32, f))
	}
	f64 := func(op string, f func(x, y D) D) Output {
		return floats(op, binary(in.F64, n, b.LoadF64, b.StoreF64, f))
	}

	out := []Output{
		u8("Add8", b.Add8),
		u8("Sub8", b.Sub8),
		u8("Xor", b.Xor),
		u16("Add16", b.Add16),
		u16("AddU16", b.AddU16),
		u16("SubU16", b.SubU16),
		u16("Mul16", b.Mul16),
		u16("Shl16", func(x, _ I) I { return b.Shl16(x, shift(16)) }),
		u16("Shr16", func(x, _ I) I { return b.Shr16(x, shift(16)) }),
		u32("Add32", b.Add32),
		u32("Sub32", b.Sub32),
		u32("Mul32", b.Mul32),
		u32("AndNot", b.AndNot),
		u32("Shl32", func(x, _ I) I { return b.Shl32(x, shift(32)) }),
		u32("Shr32", func(x, _ I) I { return b.Shr32(x, shift(32)) }),
		u64("Add64", b.Add64),
		u64("Sub64", b.Sub64),
		u64("Mul64", b.Mul64),
		u64("Or", b.Or),
		u64("Shl64", func(x, _ I) I { return b.Shl64(x, shift(64)) }),
		u64("Shr64", func(x, _ I) I { return b.Shr64(x, shift(64)) }),
		f32("AddF32", b.AddF32),
		f32("SubF32", b.SubF32),
		f32("MulF32", b.MulF32),
		f64("AddF64", b.AddF64),
		f64("SubF64", b.SubF64),
		f64("MulF64", b.MulF64),
		floats("CvtI32F32", convert(in.U32.A, g.Lanes32, g.Lanes32, b.Load32, b.StoreF32, b.CvtI32F32)),
		floats("CvtU64F64", convert(in.U64.A, n, n, b.Load64, b.StoreF64, b.CvtU64F64)),
		floats("CvtU64F32", convert(in.U64.A, n, g.Lanes32, b.Load64, b.StoreF32, b.CvtU64F32)),
	}

	fma32 := floats("FmaddF32", ternary(in.F32, g.Lanes32, b.LoadF32, b.StoreF32, b.FmaddF32))
	fma32.Scale, fma32.Tolerance = fmaScale(in.F32), Tolerance32
	fma64 := floats("FmaddF64", ternary(in.F64, n, b.LoadF64, b.StoreF64, b.FmaddF64))
	fma64.Scale, fma64.Tolerance = fmaScale(in.F64), Tolerance64
	out = append(out, fma32, fma64)

	out = append(out,
		Output{Op: "ReduceAdd32", Ints: []uint64{uint64(sum(in.U32.A, g.Lanes32, b.Load32, b.Add32, b.ReduceAdd32))}},
		Output{Op: "ReduceAdd64", Ints: []uint64{sum(in.U64.A, n, b.Load64, b.Add64, b.ReduceAdd64)}},
		Output{
			Op:        "ReduceAddF32",
			Floats:    []float64{float64(sum(in.F32.A, g.Lanes32, b.LoadF32, b.AddF32, b.ReduceAddF32))},
			Scale:     []float64{absSum(in.F32.A)},
			Tolerance: Tolerance32,
		},
		Output{
			Op:        "ReduceAddF64",
			Floats:    []float64{sum(in.F64.A, n, b.LoadF64, b.AddF64, b.ReduceAddF64)},
			Scale:     []float64{absSum(in.F64.A)},
			Tolerance: Tolerance64,
		},
	)
	return out
}

// chunks calls f for each register-sized window of a stream of n
// elements. The final window is copied into zeroed scratch space.
func chunks[T any](src [][]T, n, lanes int, f func(win [][]T, count int)) {
	scratch := make([][]T, len(src))
	for i := range scratch {
		scratch[i] = make([]T, lanes)
	}
	win := make([][]T, len(src))
	for off := 0; off < n; off += lanes {
		count := min(lanes, n-off)
		for i, s := range src {
			if count == lanes {
				win[i] = s[off : off+lanes]
				continue
			}
			clear(scratch[i])
			copy(scratch[i], s[off:])
			win[i] = scratch[i]
		}
		f(win, count)
	}
}

func binary[T, R any](p Pair[T], lanes int, load func([]T) R, store func([]T, R), op func(x, y R) R) []T {
	out := make([]T, len(p.A))
	tmp := make([]T, lanes)
	off := 0
	chunks([][]T{p.A, p.B}, len(p.A), lanes, func(win [][]T, count int) {
		store(tmp, op(load(win[0]), load(win[1])))
		copy(out[off:off+count], tmp)
		off += count
	})
	return out
}

func ternary[T, R any](p Pair[T], lanes int, load func([]T) R, store func([]T, R), op func(x, y, z R) R) []T {
	out := make([]T, len(p.A))
	tmp := make([]T, lanes)
	off := 0
	chunks([][]T{p.A, p.B, p.C}, len(p.A), lanes, func(win [][]T, count int) {
		store(tmp, op(load(win[0]), load(win[1]), load(win[2])))
		copy(out[off:off+count], tmp)
		off += count
	})
	return out
}

// convert maps inLanes source elements per register to the low lanes of
// an outLanes-wide result.
func convert[T, U, R, S any](src []T, inLanes, outLanes int, load func([]T) R, store func([]U, S), op func(R) S) []U {
	out := make([]U, len(src))
	tmp := make([]U, outLanes)
	off := 0
	chunks([][]T{src}, len(src), inLanes, func(win [][]T, count int) {
		store(tmp, op(load(win[0])))
		copy(out[off:off+count], tmp)
		off += count
	})
	return out
}

func sum[T, R, S any](src []T, lanes int, load func([]T) R, add func(x, y R) R, reduce func(R) S) S {
	var acc R
	first := true
	chunks([][]T{src}, len(src), lanes, func(win [][]T, _ int) {
		v := load(win[0])
		if first {
			acc, first = v, false
			return
		}
		acc = add(acc, v)
	})
	if first {
		var zero S
		return zero
	}
	return reduce(acc)
}

func ints[T reference.Uints](op string, s []T) Output {
	w := make([]uint64, len(s))
	for i, x := range s {
		w[i] = uint64(x)
	}
	return Output{Op: op, Ints: w}
}

func floats[T reference.Floats](op string, s []T) Output {
	f := make([]float64, len(s))
	for i, x := range s {
		f[i] = float64(x)
	}
	return Output{Op: op, Floats: f}
}

func fmaScale[T reference.Floats](p Pair[T]) []float64 {
	s := make([]float64, len(p.A))
	for i := range s {
		s[i] = math.Abs(float64(p.A[i])*float64(p.B[i])) + math.Abs(float64(p.C[i]))
	}
	return s
}

func absSum[T reference.Floats](s []T) float64 {
	var t float64
	for _, x := range s {
		t += math.Abs(float64(x))
	}
	return t
}
