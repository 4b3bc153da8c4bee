package avx2

func (Backend) And(a, b Int) Int    { return vpand(a, b) }
func (Backend) Or(a, b Int) Int     { return vpor(a, b) }
func (Backend) Xor(a, b Int) Int    { return vpxor(a, b) }
func (Backend) AndNot(a, b Int) Int { return vpandn(a, b) }

func (Backend) AndF32(a F32, mask Int) F32 { return castps(vpand(bitsps(a), mask)) }
func (Backend) AndF64(a F64, mask Int) F64 { return castpd(vpand(bitspd(a), mask)) }

func (Backend) Shl16(v Int, n uint) Int { return vpsllw(v, n) }
func (Backend) Shl32(v Int, n uint) Int { return vpslld(v, n) }
func (Backend) Shl64(v Int, n uint) Int { return vpsllq(v, n) }
func (Backend) Shr16(v Int, n uint) Int { return vpsrlw(v, n) }
func (Backend) Shr32(v Int, n uint) Int { return vpsrld(v, n) }
func (Backend) Shr64(v Int, n uint) Int { return vpsrlq(v, n) }

// vpslldq/vpsrldq only shift within each block. The whole-register shifts
// first build t, the register moved by one block with zeros shifted in,
// then let vpalignr pull the bytes that cross the block boundary out of it.

// ShlBytes shifts toward higher addresses:
//
//	t = [0, v.lo]
//	n < 16:  vpalignr(v, t, 16-n)
//	n < 32:  vpslldq(t, n-16)
func (Backend) ShlBytes(v Int, n uint) Int {
	t := vperm2i128(v, v, 0x08)
	switch {
	case n < 16:
		return vpalignr(v, t, 16-n)
	case n < 32:
		return vpslldq(t, n-16)
	}
	return Int{}
}

// ShrBytes shifts toward lower addresses:
//
//	t = [v.hi, 0]
//	n < 16:  vpalignr(t, v, n)
//	n < 32:  vpsrldq(t, n-16)
func (Backend) ShrBytes(v Int, n uint) Int {
	t := vperm2i128(v, v, 0x81)
	switch {
	case n < 16:
		return vpalignr(t, v, n)
	case n < 32:
		return vpsrldq(t, n-16)
	}
	return Int{}
}
