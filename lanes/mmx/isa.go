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

package mmx

import "github.com/ajroetker/go-lanes/internal/swar"

// This file models the MMX instructions the backend is built from. Each
// function has the semantics of the instruction it is named after on one
// 64-bit mm register. Shift counts at or beyond the lane width clear the
// lane (psraw/psrad fill with the sign), as the hardware does.

type mm = uint64

func movd(x uint32) mm   { return mm(x) }
func movdTo(a mm) uint32 { return uint32(a) }

func paddb(a, b mm) mm   { return swar.Add8(a, b) }
func paddw(a, b mm) mm   { return swar.Add16(a, b) }
func paddd(a, b mm) mm   { return swar.Add32(a, b) }
func psubb(a, b mm) mm   { return swar.Sub8(a, b) }
func psubw(a, b mm) mm   { return swar.Sub16(a, b) }
func psubd(a, b mm) mm   { return swar.Sub32(a, b) }
func paddusw(a, b mm) mm { return swar.AddSatU16(a, b) }
func psubusw(a, b mm) mm { return swar.SubSatU16(a, b) }

func pmullw(a, b mm) mm { return swar.Mul16(a, b) }
func pmulhw(a, b mm) mm { return swar.MulHiS16(a, b) }

func pand(a, b mm) mm  { return a & b }
func por(a, b mm) mm   { return a | b }
func pxor(a, b mm) mm  { return a ^ b }
func pandn(a, b mm) mm { return ^a & b }

func psllw(a mm, n uint) mm { return swar.Shl16(a, n) }
func pslld(a mm, n uint) mm { return swar.Shl32(a, n) }
func psllq(a mm, n uint) mm { return swar.Shl64(a, n) }
func psrlw(a mm, n uint) mm { return swar.Shr16(a, n) }
func psrld(a mm, n uint) mm { return swar.Shr32(a, n) }
func psrlq(a mm, n uint) mm { return swar.Shr64(a, n) }

func psraw(a mm, n uint) mm {
	n = min(n, 15)
	var r mm
	for i := range 4 {
		r = swar.Put16(r, i, uint16(int16(swar.Lane16(a, i))>>n))
	}
	return r
}

func psrad(a mm, n uint) mm {
	n = min(n, 31)
	return swar.Pack32(uint32(int32(uint32(a))>>n), uint32(int32(uint32(a>>32))>>n))
}

// punpcklbw interleaves the low four bytes: [a0,b0,a1,b1,a2,b2,a3,b3].
func punpcklbw(a, b mm) mm {
	var r mm
	for i := range 4 {
		r = swar.Put8(r, 2*i, swar.Lane8(a, i))
		r = swar.Put8(r, 2*i+1, swar.Lane8(b, i))
	}
	return r
}

// punpcklwd interleaves the low two words: [a0,b0,a1,b1].
func punpcklwd(a, b mm) mm {
	return swar.Pack16(swar.Lane16(a, 0), swar.Lane16(b, 0), swar.Lane16(a, 1), swar.Lane16(b, 1))
}

// punpckhwd interleaves the high two words: [a2,b2,a3,b3].
func punpckhwd(a, b mm) mm {
	return swar.Pack16(swar.Lane16(a, 2), swar.Lane16(b, 2), swar.Lane16(a, 3), swar.Lane16(b, 3))
}

func punpckldq(a, b mm) mm { return swar.Pack32(uint32(a), uint32(b)) }
func punpckhdq(a, b mm) mm { return swar.Pack32(uint32(a>>32), uint32(b>>32)) }

// Sequences built from the instructions above.

// swapWords exchanges the 16-bit halves of each 32-bit lane.
func swapWords(a mm) mm { return por(pslld(a, 16), psrld(a, 16)) }

// swapDwords exchanges the 32-bit halves.
func swapDwords(a mm) mm { return por(psllq(a, 32), psrlq(a, 32)) }

// mulhuw derives the unsigned high product from pmulhw. Reading an operand
// with bit 15 set as signed subtracts 2^16 from it, which lowers the high
// half by the other operand; adding the other operand back under a sign
// mask restores the unsigned result.
func mulhuw(a, b mm) mm {
	hi := pmulhw(a, b)
	return paddw(hi, paddw(pand(psraw(a, 15), b), pand(psraw(b, 15), a)))
}

// add64 is a 64-bit add from paddd: the carry out of the low dword is
// recovered from the operand and sum sign bits and added to the high one.
func add64(a, b mm) mm {
	s := paddd(a, b)
	c := pand(por(pand(a, b), pandn(s, por(a, b))), 0x80000000)
	return paddd(s, psllq(psrlq(c, 31), 32))
}

// sub64 is a 64-bit subtract from psubd with the borrow propagated.
func sub64(a, b mm) mm {
	d := psubd(a, b)
	w := pand(por(pandn(a, b), pandn(pxor(a, b), d)), 0x80000000)
	return psubd(d, psllq(psrlq(w, 31), 32))
}

// mul32 is the low 32 bits of each dword product:
// xl*yl + (xl*yh + xh*yl) << 16 with 16-bit halves xl, xh, yl, yh.
func mul32(a, b mm) mm {
	lo := pmullw(a, b)
	hi := mulhuw(a, b)
	full := por(pand(lo, 0x0000FFFF0000FFFF), pslld(hi, 16))
	cross := pmullw(a, swapWords(b))
	sum := paddw(cross, psrld(cross, 16))
	return paddd(full, pslld(sum, 16))
}

// mulWideU32 is the full 64-bit product of the low dwords.
func mulWideU32(a, b mm) mm {
	// [x0*y0, x1*y1] as exact 32-bit products.
	p := punpcklwd(pmullw(a, b), mulhuw(a, b))
	bs := swapWords(b)
	// [x0*y1, x1*y0]
	q := punpcklwd(pmullw(a, bs), mulhuw(a, bs))
	cross := add64(pand(q, 0xFFFFFFFF), psrlq(q, 32))
	return add64(p, psllq(cross, 16))
}

// mul64 is the low 64 bits of the product:
// xlo*ylo + (xlo*yhi + xhi*ylo) << 32.
func mul64(a, b mm) mm {
	full := mulWideU32(a, b)
	c := mul32(a, swapDwords(b))
	return add64(full, psllq(paddd(c, psrlq(c, 32)), 32))
}

// mulWide32 is the signed 64-bit product of the low dwords, corrected from
// the unsigned one.
func mulWide32(a, b mm) mm {
	u := mulWideU32(a, b)
	t := paddd(pand(psrad(a, 31), b), pand(psrad(b, 31), a))
	return psubd(u, psllq(t, 32))
}
