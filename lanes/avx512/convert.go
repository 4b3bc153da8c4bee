package avx512

func (Backend) CvtI32F32(v Int) F32 { return vcvtdq2ps(v) }
func (Backend) CvtI32F64(v Int) F64 { return vcvtdq2pd(v) }
func (Backend) CvtU64F32(v Int) F32 { return vcvtuqq2ps(v) }
func (Backend) CvtU64F64(v Int) F64 { return vcvtuqq2pd(v) }

func (Backend) BitsF32(v F32) Int     { return bitsps(v) }
func (Backend) FromBitsF32(v Int) F32 { return castps(v) }
func (Backend) BitsF64(v F64) Int     { return bitspd(v) }
func (Backend) FromBitsF64(v Int) F64 { return castpd(v) }

// Reductions fold 256-bit halves (0x4E), then 128-bit blocks (0xB1), then
// continue inside block 0.

func (Backend) ReduceAdd32(v Int) uint32 {
	t := vpaddd(v, vshufi64x2(v, v, 0x4E))
	t = vpaddd(t, vshufi64x2(t, t, 0xB1))
	t = vpaddd(t, vpshufd(t, 0x4E))
	return vmovd(vpaddd(t, vpshufd(t, 0xB1)))
}

func (Backend) ReduceAdd64(v Int) uint64 {
	t := vpaddq(v, vshufi64x2(v, v, 0x4E))
	t = vpaddq(t, vshufi64x2(t, t, 0xB1))
	return vmovq(vpaddq(t, vpshufd(t, 0x4E)))
}

func (Backend) ReduceAddF32(v F32) float32 {
	t := vaddps(v, vshuff32x4(v, v, 0x4E))
	t = vaddps(t, vshuff32x4(t, t, 0xB1))
	t = vaddps(t, vshufps(t, t, 0xEE))
	return vaddps(t, vshufps(t, t, 0x55))[0]
}

func (Backend) ReduceAddF64(v F64) float64 {
	t := vaddpd(v, vshuff64x2(v, v, 0x4E))
	t = vaddpd(t, vshuff64x2(t, t, 0xB1))
	return vaddpd(t, vshufpd(t, t, 0x01))[0]
}
