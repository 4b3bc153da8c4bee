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

package lanes

// Slice reductions accumulate whole registers lane-wise and reduce once at
// the end, so float results depend on the register width. Callers comparing
// across backends should allow a relative error.

// Sum32 returns the sum of s with 32-bit wraparound.
func Sum32[T Elem32](s []T) uint32 {
	acc := Zero()
	ProcessWithTail[T](len(s),
		func(offset int) { acc = Add32(acc, Load32(s[offset:])) },
		func(offset, count int) { acc = Add32(acc, SetN32(s[offset:offset+count])) },
	)
	return ReduceAdd32(acc)
}

// Sum64 returns the sum of s with 64-bit wraparound.
func Sum64[T Elem64](s []T) uint64 {
	acc := Zero()
	ProcessWithTail[T](len(s),
		func(offset int) { acc = Add64(acc, Load64(s[offset:])) },
		func(offset, count int) { acc = Add64(acc, SetN64(s[offset:offset+count])) },
	)
	return ReduceAdd64(acc)
}

// SumF32 returns the sum of s.
func SumF32(s []float32) float32 {
	acc := ZeroF32()
	ProcessWithTail[float32](len(s),
		func(offset int) { acc = AddF32(acc, LoadF32(s[offset:])) },
		func(offset, count int) { acc = AddF32(acc, SetNF32(s[offset:offset+count])) },
	)
	return ReduceAddF32(acc)
}

// SumF64 returns the sum of s.
func SumF64(s []float64) float64 {
	acc := ZeroF64()
	ProcessWithTail[float64](len(s),
		func(offset int) { acc = AddF64(acc, LoadF64(s[offset:])) },
		func(offset, count int) { acc = AddF64(acc, SetNF64(s[offset:offset+count])) },
	)
	return ReduceAddF64(acc)
}

// DotF32 returns the dot product of a and b, which must have equal length.
func DotF32(a, b []float32) float32 {
	if len(a) != len(b) {
		panic("lanes: DotF32 length mismatch")
	}
	acc := ZeroF32()
	ProcessWithTail[float32](len(a),
		func(offset int) { acc = FmaddF32(LoadF32(a[offset:]), LoadF32(b[offset:]), acc) },
		func(offset, count int) {
			acc = FmaddF32(SetNF32(a[offset:offset+count]), SetNF32(b[offset:offset+count]), acc)
		},
	)
	return ReduceAddF32(acc)
}

// DotF64 returns the dot product of a and b, which must have equal length.
func DotF64(a, b []float64) float64 {
	if len(a) != len(b) {
		panic("lanes: DotF64 length mismatch")
	}
	acc := ZeroF64()
	ProcessWithTail[float64](len(a),
		func(offset int) { acc = FmaddF64(LoadF64(a[offset:]), LoadF64(b[offset:]), acc) },
		func(offset, count int) {
			acc = FmaddF64(SetNF64(a[offset:offset+count]), SetNF64(b[offset:offset+count]), acc)
		},
	)
	return ReduceAddF64(acc)
}
