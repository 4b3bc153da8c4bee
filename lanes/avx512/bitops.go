package avx512

func (Backend) And(a, b Int) Int    { return vpandq(a, b) }
func (Backend) Or(a, b Int) Int     { return vporq(a, b) }
func (Backend) Xor(a, b Int) Int    { return vpxorq(a, b) }
func (Backend) AndNot(a, b Int) Int { return vpandnq(a, b) }

func (Backend) AndF32(a F32, mask Int) F32 { return castps(vpandq(bitsps(a), mask)) }
func (Backend) AndF64(a F64, mask Int) F64 { return castpd(vpandq(bitspd(a), mask)) }

func (Backend) Shl16(v Int, n uint) Int { return vpsllw(v, n) }
func (Backend) Shl32(v Int, n uint) Int { return vpslld(v, n) }
func (Backend) Shl64(v Int, n uint) Int { return vpsllq(v, n) }
func (Backend) Shr16(v Int, n uint) Int { return vpsrlw(v, n) }
func (Backend) Shr32(v Int, n uint) Int { return vpsrld(v, n) }
func (Backend) Shr64(v Int, n uint) Int { return vpsrlq(v, n) }

// Whole-register byte shifts move n/8 quadwords with valignq against zero,
// then shift the remaining n%8 bytes within quadwords, taking the bytes
// that cross each quadword from its neighbour. A remainder of zero makes
// the neighbour shift 64 bits, which clears it.

func (Backend) ShlBytes(v Int, n uint) Int {
	if n >= Bytes {
		return Int{}
	}
	q, r := n/8, 8*(n%8)
	s := valignq(v, Int{}, Lanes64-q)
	prev := valignq(s, Int{}, Lanes64-1)
	return vporq(vpsllq(s, r), vpsrlq(prev, 64-r))
}

func (Backend) ShrBytes(v Int, n uint) Int {
	if n >= Bytes {
		return Int{}
	}
	q, r := n/8, 8*(n%8)
	s := valignq(Int{}, v, q)
	next := valignq(Int{}, s, 1)
	return vporq(vpsrlq(s, r), vpsllq(next, 64-r))
}
