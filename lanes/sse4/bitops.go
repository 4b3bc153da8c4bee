package sse4

func (Backend) And(a, b Int) Int    { return pand(a, b) }
func (Backend) Or(a, b Int) Int     { return por(a, b) }
func (Backend) Xor(a, b Int) Int    { return pxor(a, b) }
func (Backend) AndNot(a, b Int) Int { return pandn(a, b) }

// andps / andpd.

func (Backend) AndF32(a F32, mask Int) F32 { return castps(pand(bitsps(a), mask)) }
func (Backend) AndF64(a F64, mask Int) F64 { return castpd(pand(bitspd(a), mask)) }

func (Backend) Shl16(v Int, n uint) Int { return psllw(v, n) }
func (Backend) Shl32(v Int, n uint) Int { return pslld(v, n) }
func (Backend) Shl64(v Int, n uint) Int { return psllq(v, n) }
func (Backend) Shr16(v Int, n uint) Int { return psrlw(v, n) }
func (Backend) Shr32(v Int, n uint) Int { return psrld(v, n) }
func (Backend) Shr64(v Int, n uint) Int { return psrlq(v, n) }

func (Backend) ShlBytes(v Int, n uint) Int { return pslldq(v, n) }
func (Backend) ShrBytes(v Int, n uint) Int { return psrldq(v, n) }
