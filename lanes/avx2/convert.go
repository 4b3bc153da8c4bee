package avx2

import "github.com/ajroetker/go-lanes/internal/swar"

func (Backend) CvtI32F32(v Int) F32 { return vcvtdq2ps(v) }
func (Backend) CvtI32F64(v Int) F64 { return vcvtdq2pd(v) }

// vcvtuqq2ps/pd need AVX-512DQ; each quadword is extracted and converted
// with the signed scalar instruction instead.

func (Backend) CvtU64F32(v Int) (r F32) {
	for i := range Lanes64 {
		r[i] = swar.U64ToF32(vpextrq(v, i))
	}
	return r
}

func (Backend) CvtU64F64(v Int) (r F64) {
	for i := range Lanes64 {
		r[i] = swar.U64ToF64(vpextrq(v, i))
	}
	return r
}

func (Backend) BitsF32(v F32) Int     { return bitsps(v) }
func (Backend) FromBitsF32(v Int) F32 { return castps(v) }
func (Backend) BitsF64(v F64) Int     { return bitspd(v) }
func (Backend) FromBitsF64(v Int) F64 { return castpd(v) }

// Reductions fold the high block onto the low one, then continue in the
// low block as on sse4.

func (Backend) ReduceAdd32(v Int) uint32 {
	t := vpaddd(v, vperm2i128(v, v, 0x01))
	t = vpaddd(t, vpshufd(t, 0x4E))
	return vmovd(vpaddd(t, vpshufd(t, 0xB1)))
}

func (Backend) ReduceAdd64(v Int) uint64 {
	t := vpaddq(v, vperm2i128(v, v, 0x01))
	return vpextrq(vpaddq(t, vpshufd(t, 0x4E)), 0)
}

func (Backend) ReduceAddF32(v F32) float32 {
	t := vaddps(v, vperm2f128(v, v, 0x01))
	t = vaddps(t, vshufps(t, t, 0xEE))
	return vaddps(t, vshufps(t, t, 0x55))[0]
}

func (Backend) ReduceAddF64(v F64) float64 {
	t := vaddpd(v, vperm2f128pd(v, v, 0x01))
	return vaddpd(t, vunpckhpd(t, t))[0]
}
