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

package swar

import "encoding/binary"

// Word fill and spill between lane slices and little-endian words. The
// destination (or source) word slice decides how many lanes move; callers
// slice the lane side to exactly that count so bounds checks happen once.

// Load8 fills w from 8*len(w) bytes.
func Load8(w []uint64, src []uint8) {
	_ = src[8*len(w)-1]
	for i := range w {
		w[i] = binary.LittleEndian.Uint64(src[8*i:])
	}
}

// Load16 fills w from 4*len(w) 16-bit lanes.
func Load16(w []uint64, src []uint16) {
	_ = src[4*len(w)-1]
	for i := range w {
		s := src[4*i : 4*i+4]
		w[i] = Pack16(s[0], s[1], s[2], s[3])
	}
}

// Load32 fills w from 2*len(w) 32-bit lanes.
func Load32(w []uint64, src []uint32) {
	_ = src[2*len(w)-1]
	for i := range w {
		w[i] = Pack32(src[2*i], src[2*i+1])
	}
}

// Store8 writes the bytes of w to dst.
func Store8(dst []uint8, w []uint64) {
	_ = dst[8*len(w)-1]
	for i, x := range w {
		binary.LittleEndian.PutUint64(dst[8*i:], x)
	}
}

// Store16 writes the 16-bit lanes of w to dst.
func Store16(dst []uint16, w []uint64) {
	_ = dst[4*len(w)-1]
	for i, x := range w {
		d := dst[4*i : 4*i+4]
		d[0], d[1], d[2], d[3] = Lane16(x, 0), Lane16(x, 1), Lane16(x, 2), Lane16(x, 3)
	}
}

// Store32 writes the 32-bit lanes of w to dst.
func Store32(dst []uint32, w []uint64) {
	_ = dst[2*len(w)-1]
	for i, x := range w {
		dst[2*i], dst[2*i+1] = uint32(x), uint32(x>>32)
	}
}

// SetN16 fills w from up to 4*len(w) lanes of src, zeroing the rest.
func SetN16(w []uint64, src []uint16) {
	clear(w)
	for i, x := range src[:min(len(src), 4*len(w))] {
		w[i/4] = Put16(w[i/4], i%4, x)
	}
}

// SetN32 fills w from up to 2*len(w) lanes of src, zeroing the rest.
func SetN32(w []uint64, src []uint32) {
	clear(w)
	for i, x := range src[:min(len(src), 2*len(w))] {
		w[i/2] = Put32(w[i/2], i%2, x)
	}
}
