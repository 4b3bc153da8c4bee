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

// Package xmm models the 128-bit permute and byte-shift instructions.
//
// The 256- and 512-bit instruction sets execute these same operations
// independently in every 128-bit block, which is why their byte shifts and
// shuffles never cross a block boundary on their own. The sse4 backend
// calls these directly; avx2 and avx512 apply them per block.
package xmm

import (
	"encoding/binary"
	"math/bits"
)

// X is one 128-bit block as two little-endian quadwords.
type X [2]uint64

// Bytes returns the block as 16 bytes.
func (a X) Bytes() (b [16]byte) {
	binary.LittleEndian.PutUint64(b[:8], a[0])
	binary.LittleEndian.PutUint64(b[8:], a[1])
	return b
}

// FromBytes builds a block from 16 bytes.
func FromBytes(b [16]byte) X {
	return X{binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:])}
}

// Dword returns 32-bit lane i.
func (a X) Dword(i int) uint32 { return uint32(a[i/2] >> (32 * (i % 2))) }

// Word returns 16-bit lane i.
func (a X) Word(i int) uint16 { return uint16(a[i/4] >> (16 * (i % 4))) }

// FromDwords builds a block from four 32-bit lanes.
func FromDwords(d0, d1, d2, d3 uint32) X {
	return X{uint64(d0) | uint64(d1)<<32, uint64(d2) | uint64(d3)<<32}
}

// FromWords builds a block from eight 16-bit lanes.
func FromWords(w [8]uint16) X {
	var r X
	for i, x := range w {
		r[i/4] |= uint64(x) << (16 * (i % 4))
	}
	return r
}

// Pshufb selects bytes of a by m; a mask byte with bit 7 set gives zero.
func Pshufb(a X, m [16]byte) X {
	src := a.Bytes()
	var r [16]byte
	for i, sel := range m {
		if sel&0x80 == 0 {
			r[i] = src[sel&15]
		}
	}
	return FromBytes(r)
}

// Pshufd permutes dwords; 2-bit field i of imm selects the source of lane i.
func Pshufd(a X, imm uint8) X {
	return FromDwords(a.Dword(int(imm&3)), a.Dword(int(imm>>2&3)), a.Dword(int(imm>>4&3)), a.Dword(int(imm>>6&3)))
}

// Shufps takes lanes 0,1 from a and lanes 2,3 from b, each chosen by a
// 2-bit field of imm.
func Shufps(a, b X, imm uint8) X {
	return FromDwords(a.Dword(int(imm&3)), a.Dword(int(imm>>2&3)), b.Dword(int(imm>>4&3)), b.Dword(int(imm>>6&3)))
}

// Pshuflw permutes the low four words and keeps the high four.
func Pshuflw(a X, imm uint8) X {
	var w [8]uint16
	for i := range 4 {
		w[i] = a.Word(int(imm >> (2 * i) & 3))
		w[i+4] = a.Word(i + 4)
	}
	return FromWords(w)
}

// Pshufhw permutes the high four words and keeps the low four.
func Pshufhw(a X, imm uint8) X {
	var w [8]uint16
	for i := range 4 {
		w[i] = a.Word(i)
		w[i+4] = a.Word(4 + int(imm>>(2*i)&3))
	}
	return FromWords(w)
}

// shl128 shifts the 128-bit value left by s bits.
func shl128(a X, s uint) X {
	switch {
	case s == 0:
		return a
	case s >= 128:
		return X{}
	case s >= 64:
		return X{0, a[0] << (s - 64)}
	}
	return X{a[0] << s, a[1]<<s | a[0]>>(64-s)}
}

// shr128 shifts the 128-bit value right (logical) by s bits.
func shr128(a X, s uint) X {
	switch {
	case s == 0:
		return a
	case s >= 128:
		return X{}
	case s >= 64:
		return X{a[1] >> (s - 64), 0}
	}
	return X{a[0]>>s | a[1]<<(64-s), a[1] >> s}
}

// Pslldq shifts the block left by n bytes. n > 15 clears it.
func Pslldq(a X, n uint) X { return shl128(a, 8*min(n, 16)) }

// Psrldq shifts the block right by n bytes. n > 15 clears it.
func Psrldq(a X, n uint) X { return shr128(a, 8*min(n, 16)) }

// Palignr concatenates hi:lo into 32 bytes, shifts right by n bytes and
// keeps the low 16. n > 31 clears the result.
func Palignr(hi, lo X, n uint) X {
	n = min(n, 32)
	if n >= 16 {
		return Psrldq(hi, n-16)
	}
	r := shr128(lo, 8*n)
	h := shl128(hi, 128-8*n)
	return X{r[0] | h[0], r[1] | h[1]}
}

// Punpcklqdq is [a0, b0] in quadwords.
func Punpcklqdq(a, b X) X { return X{a[0], b[0]} }

// Punpckhqdq is [a1, b1] in quadwords.
func Punpckhqdq(a, b X) X { return X{a[1], b[1]} }

// Punpckldq interleaves the low dwords: [a0,b0,a1,b1].
func Punpckldq(a, b X) X { return FromDwords(a.Dword(0), b.Dword(0), a.Dword(1), b.Dword(1)) }

// Punpcklwd interleaves the low words: [a0,b0,a1,b1,a2,b2,a3,b3].
func Punpcklwd(a, b X) X {
	var w [8]uint16
	for i := range 4 {
		w[2*i], w[2*i+1] = a.Word(i), b.Word(i)
	}
	return FromWords(w)
}

// Rotl64 rotates each quadword left by n.
func Rotl64(a X, n uint) X {
	return X{bits.RotateLeft64(a[0], int(n)), bits.RotateLeft64(a[1], int(n))}
}
