package scalar

import (
	"math"

	"github.com/ajroetker/go-lanes/internal/swar"
)

func (Backend) And(a, b Int) Int    { return Int{a[0] & b[0]} }
func (Backend) Or(a, b Int) Int     { return Int{a[0] | b[0]} }
func (Backend) Xor(a, b Int) Int    { return Int{a[0] ^ b[0]} }
func (Backend) AndNot(a, b Int) Int { return Int{^a[0] & b[0]} }

func (Backend) AndF32(a F32, mask Int) F32 {
	return fromBitsF32(Int{bitsF32(a)[0] & mask[0]})
}

func (Backend) AndF64(a F64, mask Int) F64 {
	return F64{math.Float64frombits(math.Float64bits(a[0]) & mask[0])}
}

func (Backend) Shl16(v Int, n uint) Int { return Int{swar.Shl16(v[0], n)} }
func (Backend) Shl32(v Int, n uint) Int { return Int{swar.Shl32(v[0], n)} }
func (Backend) Shl64(v Int, n uint) Int { return Int{swar.Shl64(v[0], n)} }
func (Backend) Shr16(v Int, n uint) Int { return Int{swar.Shr16(v[0], n)} }
func (Backend) Shr32(v Int, n uint) Int { return Int{swar.Shr32(v[0], n)} }
func (Backend) Shr64(v Int, n uint) Int { return Int{swar.Shr64(v[0], n)} }

// ShlBytes moves bytes toward higher addresses, which on a little-endian
// word is a left shift by 8n bits.
func (Backend) ShlBytes(v Int, n uint) Int {
	if n >= Bytes {
		return Int{}
	}
	return Int{v[0] << (8 * n)}
}

func (Backend) ShrBytes(v Int, n uint) Int {
	if n >= Bytes {
		return Int{}
	}
	return Int{v[0] >> (8 * n)}
}
