package avx512

import (
	"math"
	"math/bits"

	"github.com/ajroetker/go-lanes/internal/swar"
	"github.com/ajroetker/go-lanes/internal/xmm"
)

// AVX-512 (F, DQ, BW, VL) instructions on one zmm register. In-lane
// permutes act on each of the four 128-bit blocks; vshufi64x2, valignq and
// the index-vector permutes cross blocks.

const blocks = Bytes / 16

func block(a Int, i int) xmm.X { return xmm.X{a[2*i], a[2*i+1]} }

func perBlock(a Int, f func(x xmm.X) xmm.X) (r Int) {
	for i := range blocks {
		x := f(block(a, i))
		r[2*i], r[2*i+1] = x[0], x[1]
	}
	return r
}

func perBlock2(a, b Int, f func(x, y xmm.X) xmm.X) (r Int) {
	for i := range blocks {
		x := f(block(a, i), block(b, i))
		r[2*i], r[2*i+1] = x[0], x[1]
	}
	return r
}

func qwords(a, b Int, f func(x, y uint64) uint64) (r Int) {
	for i := range r {
		r[i] = f(a[i], b[i])
	}
	return r
}

func shifted(a Int, n uint, f func(w uint64, n uint) uint64) (r Int) {
	for i := range r {
		r[i] = f(a[i], n)
	}
	return r
}

func dword(a Int, i int) uint32 { return uint32(a[i/2] >> (32 * (i % 2))) }

func putDword(r *Int, i int, x uint32) { r[i/2] |= uint64(x) << (32 * (i % 2)) }

func word(a Int, i int) uint16 { return uint16(a[i/4] >> (16 * (i % 4))) }

func vpaddb(a, b Int) Int   { return qwords(a, b, swar.Add8) }
func vpaddw(a, b Int) Int   { return qwords(a, b, swar.Add16) }
func vpaddd(a, b Int) Int   { return qwords(a, b, swar.Add32) }
func vpaddq(a, b Int) Int   { return qwords(a, b, func(x, y uint64) uint64 { return x + y }) }
func vpsubb(a, b Int) Int   { return qwords(a, b, swar.Sub8) }
func vpsubw(a, b Int) Int   { return qwords(a, b, swar.Sub16) }
func vpsubd(a, b Int) Int   { return qwords(a, b, swar.Sub32) }
func vpsubq(a, b Int) Int   { return qwords(a, b, func(x, y uint64) uint64 { return x - y }) }
func vpaddusw(a, b Int) Int { return qwords(a, b, swar.AddSatU16) }
func vpsubusw(a, b Int) Int { return qwords(a, b, swar.SubSatU16) }
func vpmullw(a, b Int) Int  { return qwords(a, b, swar.Mul16) }
func vpmulld(a, b Int) Int  { return qwords(a, b, swar.Mul32) }
func vpmullq(a, b Int) Int  { return qwords(a, b, func(x, y uint64) uint64 { return x * y }) }

func vpmuludq(a, b Int) Int {
	return qwords(a, b, func(x, y uint64) uint64 { return uint64(uint32(x)) * uint64(uint32(y)) })
}

func vpmuldq(a, b Int) Int {
	return qwords(a, b, func(x, y uint64) uint64 { return uint64(int64(int32(x)) * int64(int32(y))) })
}

func vpandq(a, b Int) Int  { return qwords(a, b, func(x, y uint64) uint64 { return x & y }) }
func vporq(a, b Int) Int   { return qwords(a, b, func(x, y uint64) uint64 { return x | y }) }
func vpxorq(a, b Int) Int  { return qwords(a, b, func(x, y uint64) uint64 { return x ^ y }) }
func vpandnq(a, b Int) Int { return qwords(a, b, func(x, y uint64) uint64 { return ^x & y }) }

func vpsllw(a Int, n uint) Int { return shifted(a, n, swar.Shl16) }
func vpslld(a Int, n uint) Int { return shifted(a, n, swar.Shl32) }
func vpsllq(a Int, n uint) Int { return shifted(a, n, swar.Shl64) }
func vpsrlw(a Int, n uint) Int { return shifted(a, n, swar.Shr16) }
func vpsrld(a Int, n uint) Int { return shifted(a, n, swar.Shr32) }
func vpsrlq(a Int, n uint) Int { return shifted(a, n, swar.Shr64) }

func vprold(a Int, n uint) Int { return shifted(a, n, swar.Rotl32) }

func vprolq(a Int, n uint) Int {
	return shifted(a, n, func(w uint64, n uint) uint64 { return bits.RotateLeft64(w, int(n)) })
}

func vpbroadcastq(x uint64) Int { return Int{x, x, x, x, x, x, x, x} }

// In-lane.

func vpshufb(a Int, m [16]byte) Int {
	return perBlock(a, func(x xmm.X) xmm.X { return xmm.Pshufb(x, m) })
}

func vpshufd(a Int, imm uint8) Int {
	return perBlock(a, func(x xmm.X) xmm.X { return xmm.Pshufd(x, imm) })
}

func vpshuflw(a Int, imm uint8) Int {
	return perBlock(a, func(x xmm.X) xmm.X { return xmm.Pshuflw(x, imm) })
}

func vpshufhw(a Int, imm uint8) Int {
	return perBlock(a, func(x xmm.X) xmm.X { return xmm.Pshufhw(x, imm) })
}

func vshufpsi(a, b Int, imm uint8) Int {
	return perBlock2(a, b, func(x, y xmm.X) xmm.X { return xmm.Shufps(x, y, imm) })
}

// Cross-lane.

// vshufi64x2 takes result blocks 0,1 from a and 2,3 from b, each chosen by
// a 2-bit field of imm.
func vshufi64x2(a, b Int, imm uint8) (r Int) {
	src := [2]Int{a, b}
	for i := range blocks {
		s := src[i/2]
		j := int(imm >> (2 * i) & 3)
		r[2*i], r[2*i+1] = s[2*j], s[2*j+1]
	}
	return r
}

// valignq concatenates a:b (a high) and shifts right by n quadwords,
// keeping the low eight.
func valignq(a, b Int, n uint) (r Int) {
	var cat [2 * Lanes64]uint64
	copy(cat[:Lanes64], b[:])
	copy(cat[Lanes64:], a[:])
	for i := range r {
		if j := uint(i) + n; j < uint(len(cat)) {
			r[i] = cat[j]
		}
	}
	return r
}

// vpermq with an index vector.
func vpermq(a Int, idx [Lanes64]uint8) (r Int) {
	for i, j := range idx {
		r[i] = a[j&(Lanes64-1)]
	}
	return r
}

// vpermd permutes dwords across the register.
func vpermd(a Int, idx [Lanes32]uint8) (r Int) {
	for i, j := range idx {
		putDword(&r, i, dword(a, int(j&(Lanes32-1))))
	}
	return r
}

// vpermw permutes words across the register.
func vpermw(a Int, idx [Lanes16]uint8) (r Int) {
	for i, j := range idx {
		r[i/4] |= uint64(word(a, int(j&(Lanes16-1)))) << (16 * (i % 4))
	}
	return r
}

// vpermt2d permutes dwords from the 32-entry table a:b; index bit 4
// selects b.
func vpermt2d(a Int, idx [Lanes32]uint8, b Int) (r Int) {
	for i, j := range idx {
		src := a
		if j&Lanes32 != 0 {
			src = b
		}
		putDword(&r, i, dword(src, int(j&(Lanes32-1))))
	}
	return r
}

// vpmovsxwd sign-extends the sixteen words of the low 256 bits to dwords.
func vpmovsxwd(a Int) (r Int) {
	for i := range Lanes32 {
		putDword(&r, i, uint32(int32(int16(word(a, i)))))
	}
	return r
}

func vpmovzxwd(a Int) (r Int) {
	for i := range Lanes32 {
		putDword(&r, i, uint32(word(a, i)))
	}
	return r
}

// vpmovsxdq sign-extends the eight dwords of the low 256 bits to
// quadwords.
func vpmovsxdq(a Int) (r Int) {
	for i := range r {
		r[i] = uint64(int64(int32(dword(a, i))))
	}
	return r
}

func vpmovzxdq(a Int) (r Int) {
	for i := range r {
		r[i] = uint64(dword(a, i))
	}
	return r
}

func vmovd(a Int) uint32 { return uint32(a[0]) }
func vmovq(a Int) uint64 { return a[0] }

// Float forms.

func bitsps(a F32) (r Int) {
	for i, x := range a {
		putDword(&r, i, math.Float32bits(x))
	}
	return r
}

func castps(a Int) (r F32) {
	for i := range r {
		r[i] = math.Float32frombits(dword(a, i))
	}
	return r
}

func bitspd(a F64) (r Int) {
	for i, x := range a {
		r[i] = math.Float64bits(x)
	}
	return r
}

func castpd(a Int) (r F64) {
	for i := range r {
		r[i] = math.Float64frombits(a[i])
	}
	return r
}

func vaddps(a, b F32) (r F32) {
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return r
}

func vsubps(a, b F32) (r F32) {
	for i := range r {
		r[i] = a[i] - b[i]
	}
	return r
}

func vmulps(a, b F32) (r F32) {
	for i := range r {
		r[i] = a[i] * b[i]
	}
	return r
}

func vaddpd(a, b F64) (r F64) {
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return r
}

func vsubpd(a, b F64) (r F64) {
	for i := range r {
		r[i] = a[i] - b[i]
	}
	return r
}

func vmulpd(a, b F64) (r F64) {
	for i := range r {
		r[i] = a[i] * b[i]
	}
	return r
}

// vfmadd231ps narrows a float64 FMA; the float32 product is exact in
// float64.
func vfmadd231ps(a, b, c F32, sign float64) (r F32) {
	for i := range r {
		r[i] = float32(math.FMA(float64(a[i]), float64(b[i]), sign*float64(c[i])))
	}
	return r
}

func vfmadd231pd(a, b, c F64, sign float64) (r F64) {
	for i := range r {
		r[i] = math.FMA(a[i], b[i], sign*c[i])
	}
	return r
}

func vshufps(a, b F32, imm uint8) F32 { return castps(vshufpsi(bitsps(a), bitsps(b), imm)) }

// vshufpd uses imm bits 2i and 2i+1 for block i.
func vshufpd(a, b F64, imm uint8) (r F64) {
	for i := range blocks {
		r[2*i] = a[2*i+int(imm>>(2*i)&1)]
		r[2*i+1] = b[2*i+int(imm>>(2*i+1)&1)]
	}
	return r
}

func vshuff32x4(a, b F32, imm uint8) F32 { return castps(vshufi64x2(bitsps(a), bitsps(b), imm)) }
func vshuff64x2(a, b F64, imm uint8) F64 { return castpd(vshufi64x2(bitspd(a), bitspd(b), imm)) }

func vcvtdq2ps(a Int) (r F32) {
	for i := range r {
		r[i] = float32(int32(dword(a, i)))
	}
	return r
}

// vcvtdq2pd converts the eight dwords of the low 256 bits.
func vcvtdq2pd(a Int) (r F64) {
	for i := range r {
		r[i] = float64(int32(dword(a, i)))
	}
	return r
}

// vcvtuqq2ps writes eight floats to the low 256 bits and zeroes the rest.
func vcvtuqq2ps(a Int) (r F32) {
	for i, x := range a {
		r[i] = float32(x)
	}
	return r
}

func vcvtuqq2pd(a Int) (r F64) {
	for i, x := range a {
		r[i] = float64(x)
	}
	return r
}
