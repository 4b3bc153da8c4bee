package sse4

func (Backend) Add8(a, b Int) Int   { return paddb(a, b) }
func (Backend) Add16(a, b Int) Int  { return paddw(a, b) }
func (Backend) Add32(a, b Int) Int  { return paddd(a, b) }
func (Backend) Add64(a, b Int) Int  { return paddq(a, b) }
func (Backend) AddU16(a, b Int) Int { return paddusw(a, b) }
func (Backend) AddU32(a, b Int) Int { return paddd(a, b) }
func (Backend) AddU64(a, b Int) Int { return paddq(a, b) }
func (Backend) Sub8(a, b Int) Int   { return psubb(a, b) }
func (Backend) Sub16(a, b Int) Int  { return psubw(a, b) }
func (Backend) Sub32(a, b Int) Int  { return psubd(a, b) }
func (Backend) Sub64(a, b Int) Int  { return psubq(a, b) }
func (Backend) SubU16(a, b Int) Int { return psubusw(a, b) }
func (Backend) SubU32(a, b Int) Int { return psubd(a, b) }
func (Backend) SubU64(a, b Int) Int { return psubq(a, b) }

func (Backend) AddF32(a, b F32) F32 { return addps(a, b) }
func (Backend) SubF32(a, b F32) F32 { return subps(a, b) }
func (Backend) MulF32(a, b F32) F32 { return mulps(a, b) }
func (Backend) AddF64(a, b F64) F64 { return addpd(a, b) }
func (Backend) SubF64(a, b F64) F64 { return subpd(a, b) }
func (Backend) MulF64(a, b F64) F64 { return mulpd(a, b) }

// mulps then addps: two roundings. The explicit conversions round each
// product before the add, so the pair is never contracted into one fused
// operation.

func (Backend) FmaddF32(a, b, c F32) (r F32) {
	for i := range r {
		r[i] = float32(a[i]*b[i]) + c[i]
	}
	return r
}

func (Backend) FmsubF32(a, b, c F32) (r F32) {
	for i := range r {
		r[i] = float32(a[i]*b[i]) - c[i]
	}
	return r
}

func (Backend) FmaddF64(a, b, c F64) (r F64) {
	for i := range r {
		r[i] = float64(a[i]*b[i]) + c[i]
	}
	return r
}

func (Backend) FmsubF64(a, b, c F64) (r F64) {
	for i := range r {
		r[i] = float64(a[i]*b[i]) - c[i]
	}
	return r
}

func (Backend) Mul16(a, b Int) Int  { return pmullw(a, b) }
func (Backend) Mul32(a, b Int) Int  { return pmulld(a, b) }
func (Backend) MulU16(a, b Int) Int { return pmullw(a, b) }
func (Backend) MulU32(a, b Int) Int { return pmulld(a, b) }

// Mul64 computes xlo*ylo + ((xlo*yhi + xhi*ylo) << 32) per quadword.
// pmuludq gives the full low product; pmulld against the dword-swapped
// operand gives both cross terms, which are summed into the low dword and
// shifted up.
func (Backend) Mul64(a, b Int) Int {
	lo := pmuludq(a, b)
	prod := pmulld(a, pshufd(b, 0xB1))
	sum := paddd(prod, psrlq(prod, 32))
	return paddq(lo, psllq(sum, 32))
}

func (b Backend) MulU64(x, y Int) Int { return b.Mul64(x, y) }

// MulWiden16 interleaves low and high product words of lanes 0-3.
func (Backend) MulWiden16(a, b Int) Int  { return punpcklwd(pmullw(a, b), pmulhw(a, b)) }
func (Backend) MulWidenU16(a, b Int) Int { return punpcklwd(pmullw(a, b), pmulhuw(a, b)) }

// MulWiden32 spreads dwords 0 and 1 into quadwords so pmuldq sees them.
func (Backend) MulWiden32(a, b Int) Int  { return pmuldq(pmovsxdq(a), pmovsxdq(b)) }
func (Backend) MulWidenU32(a, b Int) Int { return pmuludq(pmovzxdq(a), pmovzxdq(b)) }
