package mmx

import "math"

func (Backend) And(a, b Int) Int    { return Int{pand(a[0], b[0])} }
func (Backend) Or(a, b Int) Int     { return Int{por(a[0], b[0])} }
func (Backend) Xor(a, b Int) Int    { return Int{pxor(a[0], b[0])} }
func (Backend) AndNot(a, b Int) Int { return Int{pandn(a[0], b[0])} }

func (Backend) AndF32(a F32, mask Int) F32 { return fromBitsF32(pand(bitsF32(a), mask[0])) }

func (Backend) AndF64(a F64, mask Int) F64 {
	return F64{math.Float64frombits(pand(math.Float64bits(a[0]), mask[0]))}
}

func (Backend) Shl16(v Int, n uint) Int { return Int{psllw(v[0], n)} }
func (Backend) Shl32(v Int, n uint) Int { return Int{pslld(v[0], n)} }
func (Backend) Shl64(v Int, n uint) Int { return Int{psllq(v[0], n)} }
func (Backend) Shr16(v Int, n uint) Int { return Int{psrlw(v[0], n)} }
func (Backend) Shr32(v Int, n uint) Int { return Int{psrld(v[0], n)} }
func (Backend) Shr64(v Int, n uint) Int { return Int{psrlq(v[0], n)} }

// The register is one quadword, so byte shifts are psllq/psrlq by 8n bits.

func (Backend) ShlBytes(v Int, n uint) Int { return Int{psllq(v[0], 8*min(n, Bytes))} }
func (Backend) ShrBytes(v Int, n uint) Int { return Int{psrlq(v[0], 8*min(n, Bytes))} }
