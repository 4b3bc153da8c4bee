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

// Half-based operations treat a one-lane register as its own lower and
// upper half: MergeLo picks a, MergeHi picks b, and the swap/dup idioms are
// the identity.

// MergeLo returns the lower half of a followed by the lower half of b.
func MergeLo[T any](a, b []T) []T {
	n := len(a)
	if n == 1 {
		return []T{a[0]}
	}
	h := n / 2
	r := make([]T, 0, n)
	r = append(r, a[:h]...)
	return append(r, b[:h]...)
}

// MergeHi returns the upper half of a followed by the upper half of b.
func MergeHi[T any](a, b []T) []T {
	n := len(a)
	if n == 1 {
		return []T{b[0]}
	}
	h := n / 2
	r := make([]T, 0, n)
	r = append(r, a[h:]...)
	return append(r, b[h:]...)
}

// Unmerge inverts MergeLo/MergeHi: given lo = MergeLo(a, b) and
// hi = MergeHi(a, b) it returns a and b.
func Unmerge[T any](lo, hi []T) (a, b []T) {
	return MergeLo(lo, hi), MergeHi(lo, hi)
}

// Pack de-interleaves lanes: even lanes first, then odd lanes.
func Pack[T any](v []T) []T {
	r := make([]T, 0, len(v))
	for i := 0; i < len(v); i += 2 {
		r = append(r, v[i])
	}
	for i := 1; i < len(v); i += 2 {
		r = append(r, v[i])
	}
	return r
}

// PackMerge de-interleaves the concatenation of a and b into its even and
// odd lanes.
func PackMerge[T any](a, b []T) (even, odd []T) {
	c := make([]T, 0, len(a)+len(b))
	c = append(c, a...)
	c = append(c, b...)
	p := Pack(c)
	return p[:len(a)], p[len(a):]
}

// Shuffle4 permutes within groups of min(4, len(v)) lanes; output lane i of
// a group takes source lane ((ctrl >> 2i) & 3) mod groupSize.
func Shuffle4[T any](v []T, ctrl uint8) []T {
	return shuffleGroups(v, ctrl, 4, 2)
}

// Shuffle2 permutes within groups of min(2, len(v)) lanes; output lane i of
// a group takes source lane ((ctrl >> i) & 1) mod groupSize.
func Shuffle2[T any](v []T, ctrl uint8) []T {
	return shuffleGroups(v, ctrl, 2, 1)
}

func shuffleGroups[T any](v []T, ctrl uint8, group int, selBits uint) []T {
	g := min(group, len(v))
	mask := uint8(1)<<selBits - 1
	r := make([]T, len(v))
	for base := 0; base < len(v); base += g {
		for i := range g {
			sel := int((ctrl >> (selBits * uint(i))) & mask)
			r[base+i] = v[base+sel%g]
		}
	}
	return r
}

// SwapHalves exchanges the upper and lower halves.
func SwapHalves[T any](v []T) []T {
	n := len(v)
	if n == 1 {
		return []T{v[0]}
	}
	h := n / 2
	r := make([]T, 0, n)
	r = append(r, v[h:]...)
	return append(r, v[:h]...)
}

// SwapPairs exchanges adjacent lanes 2k and 2k+1. A trailing unpaired lane
// is kept.
func SwapPairs[T any](v []T) []T {
	r := append([]T(nil), v...)
	for i := 0; i+1 < len(v); i += 2 {
		r[i], r[i+1] = v[i+1], v[i]
	}
	return r
}

// DupLo copies the lower half into both halves.
func DupLo[T any](v []T) []T {
	return MergeLo(v, v)
}

// DupHi copies the upper half into both halves.
func DupHi[T any](v []T) []T {
	return MergeHi(v, v)
}
