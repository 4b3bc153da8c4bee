package avx2

import (
	"math"

	"github.com/ajroetker/go-lanes/internal/swar"
	"github.com/ajroetker/go-lanes/internal/xmm"
)

// AVX2 instructions on one ymm register. The vp*/vshufps permutes and
// byte shifts act on each 128-bit block independently, exactly as the
// hardware does; vperm2i128, vpermq and the vpmov extensions are the only
// instructions that move data between blocks.

func block(a Int, i int) xmm.X { return xmm.X{a[2*i], a[2*i+1]} }

func ymm(lo, hi xmm.X) Int { return Int{lo[0], lo[1], hi[0], hi[1]} }

// inLane applies a 128-bit operation to both blocks.
func inLane(a, b Int, f func(x, y xmm.X) xmm.X) Int {
	return ymm(f(block(a, 0), block(b, 0)), f(block(a, 1), block(b, 1)))
}

func qwords(a, b Int, f func(x, y uint64) uint64) Int {
	return Int{f(a[0], b[0]), f(a[1], b[1]), f(a[2], b[2]), f(a[3], b[3])}
}

func shifted(a Int, n uint, f func(w uint64, n uint) uint64) Int {
	return Int{f(a[0], n), f(a[1], n), f(a[2], n), f(a[3], n)}
}

func add64(x, y uint64) uint64 { return x + y }
func sub64(x, y uint64) uint64 { return x - y }

func vpaddb(a, b Int) Int   { return qwords(a, b, swar.Add8) }
func vpaddw(a, b Int) Int   { return qwords(a, b, swar.Add16) }
func vpaddd(a, b Int) Int   { return qwords(a, b, swar.Add32) }
func vpaddq(a, b Int) Int   { return qwords(a, b, add64) }
func vpsubb(a, b Int) Int   { return qwords(a, b, swar.Sub8) }
func vpsubw(a, b Int) Int   { return qwords(a, b, swar.Sub16) }
func vpsubd(a, b Int) Int   { return qwords(a, b, swar.Sub32) }
func vpsubq(a, b Int) Int   { return qwords(a, b, sub64) }
func vpaddusw(a, b Int) Int { return qwords(a, b, swar.AddSatU16) }
func vpsubusw(a, b Int) Int { return qwords(a, b, swar.SubSatU16) }
func vpmullw(a, b Int) Int  { return qwords(a, b, swar.Mul16) }
func vpmulld(a, b Int) Int  { return qwords(a, b, swar.Mul32) }

func vpmuludq(a, b Int) Int {
	return qwords(a, b, func(x, y uint64) uint64 { return uint64(uint32(x)) * uint64(uint32(y)) })
}

func vpmuldq(a, b Int) Int {
	return qwords(a, b, func(x, y uint64) uint64 { return uint64(int64(int32(x)) * int64(int32(y))) })
}

func vpand(a, b Int) Int  { return qwords(a, b, func(x, y uint64) uint64 { return x & y }) }
func vpor(a, b Int) Int   { return qwords(a, b, func(x, y uint64) uint64 { return x | y }) }
func vpxor(a, b Int) Int  { return qwords(a, b, func(x, y uint64) uint64 { return x ^ y }) }
func vpandn(a, b Int) Int { return qwords(a, b, func(x, y uint64) uint64 { return ^x & y }) }

func vpsllw(a Int, n uint) Int { return shifted(a, n, swar.Shl16) }
func vpslld(a Int, n uint) Int { return shifted(a, n, swar.Shl32) }
func vpsllq(a Int, n uint) Int { return shifted(a, n, swar.Shl64) }
func vpsrlw(a Int, n uint) Int { return shifted(a, n, swar.Shr16) }
func vpsrld(a Int, n uint) Int { return shifted(a, n, swar.Shr32) }
func vpsrlq(a Int, n uint) Int { return shifted(a, n, swar.Shr64) }

// In-lane permutes and byte shifts.

func vpshufb(a Int, m [16]byte) Int {
	return ymm(xmm.Pshufb(block(a, 0), m), xmm.Pshufb(block(a, 1), m))
}

func vpshufd(a Int, imm uint8) Int {
	return ymm(xmm.Pshufd(block(a, 0), imm), xmm.Pshufd(block(a, 1), imm))
}

func vpshuflw(a Int, imm uint8) Int {
	return ymm(xmm.Pshuflw(block(a, 0), imm), xmm.Pshuflw(block(a, 1), imm))
}

func vpshufhw(a Int, imm uint8) Int {
	return ymm(xmm.Pshufhw(block(a, 0), imm), xmm.Pshufhw(block(a, 1), imm))
}

func vpslldq(a Int, n uint) Int {
	return ymm(xmm.Pslldq(block(a, 0), n), xmm.Pslldq(block(a, 1), n))
}

func vpsrldq(a Int, n uint) Int {
	return ymm(xmm.Psrldq(block(a, 0), n), xmm.Psrldq(block(a, 1), n))
}

// vpalignr concatenates a:b per block and shifts right by n bytes.
func vpalignr(a, b Int, n uint) Int {
	return inLane(a, b, func(hi, lo xmm.X) xmm.X { return xmm.Palignr(hi, lo, n) })
}

func vshufpsi(a, b Int, imm uint8) Int {
	return inLane(a, b, func(x, y xmm.X) xmm.X { return xmm.Shufps(x, y, imm) })
}

// Cross-lane.

// vperm2i128 fills each result block from a 4-bit field of imm: values 0-3
// pick a.lo, a.hi, b.lo, b.hi; bit 3 of the field zeroes the block.
func vperm2i128(a, b Int, imm uint8) Int {
	src := [4]xmm.X{block(a, 0), block(a, 1), block(b, 0), block(b, 1)}
	pick := func(f uint8) xmm.X {
		if f&8 != 0 {
			return xmm.X{}
		}
		return src[f&3]
	}
	return ymm(pick(imm&0xF), pick(imm>>4))
}

// vpermq permutes quadwords across the register.
func vpermq(a Int, imm uint8) Int {
	return Int{a[imm&3], a[imm>>2&3], a[imm>>4&3], a[imm>>6&3]}
}

func vpbroadcastq(x uint64) Int { return Int{x, x, x, x} }

// vpmovsxwd sign-extends the eight words of the low block to dwords.
func vpmovsxwd(a Int) Int {
	x := block(a, 0)
	var r Int
	for i := range 8 {
		r[i/2] |= uint64(uint32(int32(int16(x.Word(i))))) << (32 * (i % 2))
	}
	return r
}

// vpmovzxwd zero-extends the eight words of the low block to dwords.
func vpmovzxwd(a Int) Int {
	x := block(a, 0)
	var r Int
	for i := range 8 {
		r[i/2] |= uint64(x.Word(i)) << (32 * (i % 2))
	}
	return r
}

// vpmovsxdq sign-extends the four dwords of the low block to quadwords.
func vpmovsxdq(a Int) Int {
	x := block(a, 0)
	return Int{
		uint64(int64(int32(x.Dword(0)))), uint64(int64(int32(x.Dword(1)))),
		uint64(int64(int32(x.Dword(2)))), uint64(int64(int32(x.Dword(3)))),
	}
}

// vpmovzxdq zero-extends the four dwords of the low block to quadwords.
func vpmovzxdq(a Int) Int {
	x := block(a, 0)
	return Int{uint64(x.Dword(0)), uint64(x.Dword(1)), uint64(x.Dword(2)), uint64(x.Dword(3))}
}

func vmovd(a Int) uint32          { return uint32(a[0]) }
func vpextrq(a Int, i int) uint64 { return a[i] }

// Float forms.

func bitsps(a F32) Int {
	var r Int
	for i, x := range a {
		r[i/2] |= uint64(math.Float32bits(x)) << (32 * (i % 2))
	}
	return r
}

func castps(a Int) F32 {
	var r F32
	for i := range r {
		r[i] = math.Float32frombits(uint32(a[i/2] >> (32 * (i % 2))))
	}
	return r
}

func bitspd(a F64) Int {
	return Int{math.Float64bits(a[0]), math.Float64bits(a[1]), math.Float64bits(a[2]), math.Float64bits(a[3])}
}

func castpd(a Int) F64 {
	return F64{math.Float64frombits(a[0]), math.Float64frombits(a[1]), math.Float64frombits(a[2]), math.Float64frombits(a[3])}
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

// vfmadd231ps rounds once. The float32 product is exact in float64, so a
// float64 FMA narrowed to float32 gives the fused result.
func vfmadd231ps(a, b, c F32) (r F32) {
	for i := range r {
		r[i] = float32(math.FMA(float64(a[i]), float64(b[i]), float64(c[i])))
	}
	return r
}

func vfmsub231ps(a, b, c F32) (r F32) {
	for i := range r {
		r[i] = float32(math.FMA(float64(a[i]), float64(b[i]), -float64(c[i])))
	}
	return r
}

func vfmadd231pd(a, b, c F64) (r F64) {
	for i := range r {
		r[i] = math.FMA(a[i], b[i], c[i])
	}
	return r
}

func vfmsub231pd(a, b, c F64) (r F64) {
	for i := range r {
		r[i] = math.FMA(a[i], b[i], -c[i])
	}
	return r
}

func vshufps(a, b F32, imm uint8) F32 { return castps(vshufpsi(bitsps(a), bitsps(b), imm)) }

// vshufpd uses imm bits 2i and 2i+1 for block i.
func vshufpd(a, b F64, imm uint8) F64 {
	return F64{a[imm&1], b[imm>>1&1], a[2+int(imm>>2&1)], b[2+int(imm>>3&1)]}
}

func vperm2f128(a, b F32, imm uint8) F32 { return castps(vperm2i128(bitsps(a), bitsps(b), imm)) }

func vpermpd(a F64, imm uint8) F64 { return castpd(vpermq(bitspd(a), imm)) }

func vunpckhpd(a, b F64) F64 { return F64{a[1], b[1], a[3], b[3]} }

func vcvtdq2ps(a Int) (r F32) {
	for i := range r {
		r[i] = float32(int32(a[i/2] >> (32 * (i % 2))))
	}
	return r
}

// vcvtdq2pd converts the four dwords of the low block.
func vcvtdq2pd(a Int) F64 {
	x := block(a, 0)
	return F64{float64(int32(x.Dword(0))), float64(int32(x.Dword(1))), float64(int32(x.Dword(2))), float64(int32(x.Dword(3)))}
}

func vperm2f128pd(a, b F64, imm uint8) F64 { return castpd(vperm2i128(bitspd(a), bitspd(b), imm)) }
