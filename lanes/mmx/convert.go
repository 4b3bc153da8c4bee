package mmx

import (
	"math"

	"github.com/ajroetker/go-lanes/internal/swar"
)

// MMX has no conversions; lanes move through general-purpose registers.

func (Backend) CvtI32F32(v Int) F32 {
	return F32{float32(int32(movdTo(v[0]))), float32(int32(movdTo(psrlq(v[0], 32))))}
}

func (Backend) CvtI32F64(v Int) F64 { return F64{float64(int32(movdTo(v[0])))} }

func (Backend) CvtU64F32(v Int) F32 { return F32{swar.U64ToF32(v[0])} }
func (Backend) CvtU64F64(v Int) F64 { return F64{swar.U64ToF64(v[0])} }

func (Backend) BitsF32(v F32) Int     { return Int{bitsF32(v)} }
func (Backend) FromBitsF32(v Int) F32 { return fromBitsF32(v[0]) }
func (Backend) BitsF64(v F64) Int     { return Int{math.Float64bits(v[0])} }
func (Backend) FromBitsF64(v Int) F64 { return F64{math.Float64frombits(v[0])} }

func (Backend) ReduceAdd32(v Int) uint32   { return movdTo(paddd(v[0], psrlq(v[0], 32))) }
func (Backend) ReduceAdd64(v Int) uint64   { return v[0] }
func (Backend) ReduceAddF32(v F32) float32 { return v[0] + v[1] }
func (Backend) ReduceAddF64(v F64) float64 { return v[0] }
