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

package sse4

import (
	"math"

	"github.com/ajroetker/go-lanes/internal/swar"
	"github.com/ajroetker/go-lanes/internal/xmm"
)

// SSE2 through SSE4.2 instructions on one xmm register. Integer forms act
// on Int; the ps/pd forms act on F32/F64.

func qwords(a, b Int, f func(x, y uint64) uint64) Int {
	return Int{f(a[0], b[0]), f(a[1], b[1])}
}

func paddb(a, b Int) Int   { return qwords(a, b, swar.Add8) }
func paddw(a, b Int) Int   { return qwords(a, b, swar.Add16) }
func paddd(a, b Int) Int   { return qwords(a, b, swar.Add32) }
func paddq(a, b Int) Int   { return Int{a[0] + b[0], a[1] + b[1]} }
func psubb(a, b Int) Int   { return qwords(a, b, swar.Sub8) }
func psubw(a, b Int) Int   { return qwords(a, b, swar.Sub16) }
func psubd(a, b Int) Int   { return qwords(a, b, swar.Sub32) }
func psubq(a, b Int) Int   { return Int{a[0] - b[0], a[1] - b[1]} }
func paddusw(a, b Int) Int { return qwords(a, b, swar.AddSatU16) }
func psubusw(a, b Int) Int { return qwords(a, b, swar.SubSatU16) }

func pmullw(a, b Int) Int  { return qwords(a, b, swar.Mul16) }
func pmulhw(a, b Int) Int  { return qwords(a, b, swar.MulHiS16) }
func pmulhuw(a, b Int) Int { return qwords(a, b, swar.MulHiU16) }
func pmulld(a, b Int) Int  { return qwords(a, b, swar.Mul32) }

// pmuludq multiplies the low unsigned dword of each quadword into a full
// quadword product.
func pmuludq(a, b Int) Int {
	return qwords(a, b, func(x, y uint64) uint64 { return uint64(uint32(x)) * uint64(uint32(y)) })
}

// pmuldq is the signed form of pmuludq.
func pmuldq(a, b Int) Int {
	return qwords(a, b, func(x, y uint64) uint64 { return uint64(int64(int32(x)) * int64(int32(y))) })
}

func pand(a, b Int) Int  { return Int{a[0] & b[0], a[1] & b[1]} }
func por(a, b Int) Int   { return Int{a[0] | b[0], a[1] | b[1]} }
func pxor(a, b Int) Int  { return Int{a[0] ^ b[0], a[1] ^ b[1]} }
func pandn(a, b Int) Int { return Int{^a[0] & b[0], ^a[1] & b[1]} }

func psllw(a Int, n uint) Int { return Int{swar.Shl16(a[0], n), swar.Shl16(a[1], n)} }
func pslld(a Int, n uint) Int { return Int{swar.Shl32(a[0], n), swar.Shl32(a[1], n)} }
func psllq(a Int, n uint) Int { return Int{swar.Shl64(a[0], n), swar.Shl64(a[1], n)} }
func psrlw(a Int, n uint) Int { return Int{swar.Shr16(a[0], n), swar.Shr16(a[1], n)} }
func psrld(a Int, n uint) Int { return Int{swar.Shr32(a[0], n), swar.Shr32(a[1], n)} }
func psrlq(a Int, n uint) Int { return Int{swar.Shr64(a[0], n), swar.Shr64(a[1], n)} }

func pslldq(a Int, n uint) Int        { return Int(xmm.Pslldq(xmm.X(a), n)) }
func psrldq(a Int, n uint) Int        { return Int(xmm.Psrldq(xmm.X(a), n)) }
func pshufb(a Int, m [16]byte) Int    { return Int(xmm.Pshufb(xmm.X(a), m)) }
func pshufd(a Int, imm uint8) Int     { return Int(xmm.Pshufd(xmm.X(a), imm)) }
func pshuflw(a Int, imm uint8) Int    { return Int(xmm.Pshuflw(xmm.X(a), imm)) }
func pshufhw(a Int, imm uint8) Int    { return Int(xmm.Pshufhw(xmm.X(a), imm)) }
func punpcklqdq(a, b Int) Int         { return Int(xmm.Punpcklqdq(xmm.X(a), xmm.X(b))) }
func punpckhqdq(a, b Int) Int         { return Int(xmm.Punpckhqdq(xmm.X(a), xmm.X(b))) }
func punpcklwd(a, b Int) Int          { return Int(xmm.Punpcklwd(xmm.X(a), xmm.X(b))) }
func shufpsi(a, b Int, imm uint8) Int { return Int(xmm.Shufps(xmm.X(a), xmm.X(b), imm)) }

// pmovsxdq sign-extends dwords 0 and 1 to quadwords.
func pmovsxdq(a Int) Int {
	return Int{uint64(int64(int32(a[0]))), uint64(int64(int32(a[0] >> 32)))}
}

// pmovzxdq zero-extends dwords 0 and 1 to quadwords.
func pmovzxdq(a Int) Int { return Int{a[0] & math.MaxUint32, a[0] >> 32} }

func movd(x uint32) Int   { return Int{uint64(x)} }
func movq(x uint64) Int   { return Int{x} }
func movdTo(a Int) uint32 { return uint32(a[0]) }

func pextrq(a Int, i int) uint64 { return a[i] }

// Float forms.

func bitsps(a F32) Int {
	return Int(xmm.FromDwords(math.Float32bits(a[0]), math.Float32bits(a[1]), math.Float32bits(a[2]), math.Float32bits(a[3])))
}

func castps(a Int) F32 {
	x := xmm.X(a)
	return F32{
		math.Float32frombits(x.Dword(0)), math.Float32frombits(x.Dword(1)),
		math.Float32frombits(x.Dword(2)), math.Float32frombits(x.Dword(3)),
	}
}

func bitspd(a F64) Int { return Int{math.Float64bits(a[0]), math.Float64bits(a[1])} }
func castpd(a Int) F64 { return F64{math.Float64frombits(a[0]), math.Float64frombits(a[1])} }

func addps(a, b F32) F32 { return F32{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]} }
func subps(a, b F32) F32 { return F32{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]} }
func mulps(a, b F32) F32 { return F32{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]} }
func addpd(a, b F64) F64 { return F64{a[0] + b[0], a[1] + b[1]} }
func subpd(a, b F64) F64 { return F64{a[0] - b[0], a[1] - b[1]} }
func mulpd(a, b F64) F64 { return F64{a[0] * b[0], a[1] * b[1]} }

func shufps(a, b F32, imm uint8) F32 { return castps(shufpsi(bitsps(a), bitsps(b), imm)) }

// shufpd takes lane 0 from a and lane 1 from b, selected by imm bits 0, 1.
func shufpd(a, b F64, imm uint8) F64 { return F64{a[imm&1], b[imm>>1&1]} }

func unpcklpd(a, b F64) F64 { return F64{a[0], b[0]} }
func unpckhpd(a, b F64) F64 { return F64{a[1], b[1]} }

func cvtdq2ps(a Int) F32 {
	x := xmm.X(a)
	return F32{float32(int32(x.Dword(0))), float32(int32(x.Dword(1))), float32(int32(x.Dword(2))), float32(int32(x.Dword(3)))}
}

// cvtdq2pd converts dwords 0 and 1.
func cvtdq2pd(a Int) F64 { return F64{float64(int32(a[0])), float64(int32(a[0] >> 32))} }
