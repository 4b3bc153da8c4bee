package scalar

import "math"

func (Backend) CvtI32F32(v Int) F32 {
	return F32{float32(int32(lo32(v))), float32(int32(hi32(v)))}
}

// CvtI32F64 converts 32-bit lane 0.
func (Backend) CvtI32F64(v Int) F64 { return F64{float64(int32(lo32(v)))} }

// CvtU64F32 puts the single converted lane in float32 lane 0 and zeroes
// lane 1.
func (Backend) CvtU64F32(v Int) F32 { return F32{float32(v[0])} }

func (Backend) CvtU64F64(v Int) F64 { return F64{float64(v[0])} }

func (Backend) BitsF32(v F32) Int     { return bitsF32(v) }
func (Backend) FromBitsF32(v Int) F32 { return fromBitsF32(v) }
func (Backend) BitsF64(v F64) Int     { return Int{math.Float64bits(v[0])} }
func (Backend) FromBitsF64(v Int) F64 { return F64{math.Float64frombits(v[0])} }

func (Backend) ReduceAdd32(v Int) uint32   { return lo32(v) + hi32(v) }
func (Backend) ReduceAdd64(v Int) uint64   { return v[0] }
func (Backend) ReduceAddF32(v F32) float32 { return v[0] + v[1] }
func (Backend) ReduceAddF64(v F64) float64 { return v[0] }
