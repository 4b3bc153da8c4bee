package sse4

import "github.com/ajroetker/go-lanes/internal/swar"

func (Backend) CvtI32F32(v Int) F32 { return cvtdq2ps(v) }
func (Backend) CvtI32F64(v Int) F64 { return cvtdq2pd(v) }

// There is no unsigned 64-bit convert before AVX-512; each quadword is
// extracted and converted with the signed scalar instruction.

func (Backend) CvtU64F32(v Int) F32 {
	return F32{swar.U64ToF32(pextrq(v, 0)), swar.U64ToF32(pextrq(v, 1))}
}

func (Backend) CvtU64F64(v Int) F64 {
	return F64{swar.U64ToF64(pextrq(v, 0)), swar.U64ToF64(pextrq(v, 1))}
}

func (Backend) BitsF32(v F32) Int     { return bitsps(v) }
func (Backend) FromBitsF32(v Int) F32 { return castps(v) }
func (Backend) BitsF64(v F64) Int     { return bitspd(v) }
func (Backend) FromBitsF64(v Int) F64 { return castpd(v) }

// Reductions fold the upper half onto the lower until one lane remains.

func (Backend) ReduceAdd32(v Int) uint32 {
	t := paddd(v, pshufd(v, 0x4E))
	return movdTo(paddd(t, pshufd(t, 0xB1)))
}

func (Backend) ReduceAdd64(v Int) uint64 { return pextrq(paddq(v, pshufd(v, 0x4E)), 0) }

func (Backend) ReduceAddF32(v F32) float32 {
	t := addps(v, shufps(v, v, 0xEE))
	return addps(t, shufps(t, t, 0x55))[0]
}

func (Backend) ReduceAddF64(v F64) float64 { return addpd(v, unpckhpd(v, v))[0] }
