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

// Package swar implements lane arithmetic on 64-bit words ("SIMD within a
// register"). Every backend register is an array of uint64 words and no
// 8/16/32/64-bit lane ever straddles a word boundary, so the per-lane
// arithmetic of every backend reduces to these word kernels.
//
// Lane k of width w occupies bits [k*w, (k+1)*w) of the word.
package swar

// Replication constants: multiplying a lane value by RepN copies it into
// every N-bit lane of a word.
const (
	Rep8  uint64 = 0x0101010101010101
	Rep16 uint64 = 0x0001000100010001
	Rep32 uint64 = 0x0000000100000001
)

// Most significant bit of every lane.
const (
	H8  uint64 = 0x80 * Rep8
	H16 uint64 = 0x8000 * Rep16
	H32 uint64 = 0x80000000 * Rep32
)

// Add8 adds eight 8-bit lanes with wraparound. The lane MSBs are cleared
// before the add so no carry crosses a lane, then restored with xor.
func Add8(a, b uint64) uint64 {
	return ((a &^ H8) + (b &^ H8)) ^ ((a ^ b) & H8)
}

// Add16 adds four 16-bit lanes with wraparound.
func Add16(a, b uint64) uint64 {
	return ((a &^ H16) + (b &^ H16)) ^ ((a ^ b) & H16)
}

// Add32 adds two 32-bit lanes with wraparound.
func Add32(a, b uint64) uint64 {
	return ((a &^ H32) + (b &^ H32)) ^ ((a ^ b) & H32)
}

// Sub8 subtracts eight 8-bit lanes with wraparound. Setting the minuend
// MSBs supplies a borrow guard for each lane.
func Sub8(a, b uint64) uint64 {
	return ((a | H8) - (b &^ H8)) ^ ((a ^ ^b) & H8)
}

// Sub16 subtracts four 16-bit lanes with wraparound.
func Sub16(a, b uint64) uint64 {
	return ((a | H16) - (b &^ H16)) ^ ((a ^ ^b) & H16)
}

// Sub32 subtracts two 32-bit lanes with wraparound.
func Sub32(a, b uint64) uint64 {
	return ((a | H32) - (b &^ H32)) ^ ((a ^ ^b) & H32)
}

// Spread16 widens a set of lane MSBs (a subset of H16) into full 0xFFFF
// lane masks.
func Spread16(msb uint64) uint64 {
	return (msb >> 15) * 0xFFFF
}

// AddSatU16 adds four unsigned 16-bit lanes, clamping at 0xFFFF.
func AddSatU16(a, b uint64) uint64 {
	s := Add16(a, b)
	carry := ((a & b) | ((a | b) &^ s)) & H16
	return s | Spread16(carry)
}

// SubSatU16 subtracts four unsigned 16-bit lanes, clamping at 0.
func SubSatU16(a, b uint64) uint64 {
	d := Sub16(a, b)
	borrow := ((^a & b) | (^(a ^ b) & d)) & H16
	return d &^ Spread16(borrow)
}

// Shl16 shifts each 16-bit lane left by n. Counts of 16 or more clear
// the lane.
func Shl16(w uint64, n uint) uint64 {
	if n >= 16 {
		return 0
	}
	return (w << n) & ((uint64(0xFFFF<<n) & 0xFFFF) * Rep16)
}

// Shl32 shifts each 32-bit lane left by n.
func Shl32(w uint64, n uint) uint64 {
	if n >= 32 {
		return 0
	}
	return (w << n) & ((uint64(0xFFFFFFFF<<n) & 0xFFFFFFFF) * Rep32)
}

// Shl64 shifts the word left by n.
func Shl64(w uint64, n uint) uint64 {
	if n >= 64 {
		return 0
	}
	return w << n
}

// Shr16 shifts each 16-bit lane right (logical) by n.
func Shr16(w uint64, n uint) uint64 {
	if n >= 16 {
		return 0
	}
	return (w >> n) & (uint64(0xFFFF>>n) * Rep16)
}

// Shr32 shifts each 32-bit lane right (logical) by n.
func Shr32(w uint64, n uint) uint64 {
	if n >= 32 {
		return 0
	}
	return (w >> n) & (uint64(0xFFFFFFFF>>n) * Rep32)
}

// Shr64 shifts the word right (logical) by n.
func Shr64(w uint64, n uint) uint64 {
	if n >= 64 {
		return 0
	}
	return w >> n
}

// Lane8 returns 8-bit lane i of w.
func Lane8(w uint64, i int) uint8 { return uint8(w >> (8 * i)) }

// Lane16 returns 16-bit lane i of w.
func Lane16(w uint64, i int) uint16 { return uint16(w >> (16 * i)) }

// Lane32 returns 32-bit lane i of w.
func Lane32(w uint64, i int) uint32 { return uint32(w >> (32 * i)) }

// Put8 replaces 8-bit lane i of w with x.
func Put8(w uint64, i int, x uint8) uint64 {
	s := uint(8 * i)
	return w&^(0xFF<<s) | uint64(x)<<s
}

// Put16 replaces 16-bit lane i of w with x.
func Put16(w uint64, i int, x uint16) uint64 {
	s := uint(16 * i)
	return w&^(0xFFFF<<s) | uint64(x)<<s
}

// Put32 replaces 32-bit lane i of w with x.
func Put32(w uint64, i int, x uint32) uint64 {
	s := uint(32 * i)
	return w&^(0xFFFFFFFF<<s) | uint64(x)<<s
}

// Pack32 joins two 32-bit values into a word, lo in lane 0.
func Pack32(lo, hi uint32) uint64 { return uint64(lo) | uint64(hi)<<32 }

// Pack16 joins four 16-bit values into a word, a in lane 0.
func Pack16(a, b, c, d uint16) uint64 {
	return uint64(a) | uint64(b)<<16 | uint64(c)<<32 | uint64(d)<<48
}

// Mul16 multiplies four 16-bit lanes and keeps the low 16 bits of each
// product. Signedness does not affect the low half.
func Mul16(a, b uint64) uint64 {
	var r uint64
	for i := range 4 {
		r = Put16(r, i, Lane16(a, i)*Lane16(b, i))
	}
	return r
}

// Mul32 multiplies two 32-bit lanes, keeping the low 32 bits.
func Mul32(a, b uint64) uint64 {
	return Pack32(Lane32(a, 0)*Lane32(b, 0), Lane32(a, 1)*Lane32(b, 1))
}

// MulHiS16 returns the high 16 bits of the signed products of four
// 16-bit lanes.
func MulHiS16(a, b uint64) uint64 {
	var r uint64
	for i := range 4 {
		p := int32(int16(Lane16(a, i))) * int32(int16(Lane16(b, i)))
		r = Put16(r, i, uint16(uint32(p)>>16))
	}
	return r
}

// MulHiU16 returns the high 16 bits of the unsigned products of four
// 16-bit lanes.
func MulHiU16(a, b uint64) uint64 {
	var r uint64
	for i := range 4 {
		p := uint32(Lane16(a, i)) * uint32(Lane16(b, i))
		r = Put16(r, i, uint16(p>>16))
	}
	return r
}

// Rotl32 rotates each 32-bit lane left by n (mod 32).
func Rotl32(w uint64, n uint) uint64 {
	n &= 31
	if n == 0 {
		return w
	}
	return Shl32(w, n) | Shr32(w, 32-n)
}

// Rotl64 rotates the word left by n (mod 64).
func Rotl64(w uint64, n uint) uint64 {
	n &= 63
	return w<<n | w>>((64-n)&63)
}

// Broadcast8 replicates x into every 8-bit lane.
func Broadcast8(x uint8) uint64 { return uint64(x) * Rep8 }

// Broadcast16 replicates x into every 16-bit lane.
func Broadcast16(x uint16) uint64 { return uint64(x) * Rep16 }

// Broadcast32 replicates x into every 32-bit lane.
func Broadcast32(x uint32) uint64 { return uint64(x) * Rep32 }
