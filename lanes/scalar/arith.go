package scalar

import "github.com/ajroetker/go-lanes/internal/swar"

func (Backend) Add8(a, b Int) Int   { return Int{swar.Add8(a[0], b[0])} }
func (Backend) Add16(a, b Int) Int  { return Int{swar.Add16(a[0], b[0])} }
func (Backend) Add32(a, b Int) Int  { return Int{swar.Add32(a[0], b[0])} }
func (Backend) Add64(a, b Int) Int  { return Int{a[0] + b[0]} }
func (Backend) AddU16(a, b Int) Int { return Int{swar.AddSatU16(a[0], b[0])} }
func (Backend) AddU32(a, b Int) Int { return Int{swar.Add32(a[0], b[0])} }
func (Backend) AddU64(a, b Int) Int { return Int{a[0] + b[0]} }
func (Backend) Sub8(a, b Int) Int   { return Int{swar.Sub8(a[0], b[0])} }
func (Backend) Sub16(a, b Int) Int  { return Int{swar.Sub16(a[0], b[0])} }
func (Backend) Sub32(a, b Int) Int  { return Int{swar.Sub32(a[0], b[0])} }
func (Backend) Sub64(a, b Int) Int  { return Int{a[0] - b[0]} }
func (Backend) SubU16(a, b Int) Int { return Int{swar.SubSatU16(a[0], b[0])} }
func (Backend) SubU32(a, b Int) Int { return Int{swar.Sub32(a[0], b[0])} }
func (Backend) SubU64(a, b Int) Int { return Int{a[0] - b[0]} }

func (Backend) AddF32(a, b F32) F32 { return F32{a[0] + b[0], a[1] + b[1]} }
func (Backend) SubF32(a, b F32) F32 { return F32{a[0] - b[0], a[1] - b[1]} }
func (Backend) MulF32(a, b F32) F32 { return F32{a[0] * b[0], a[1] * b[1]} }
func (Backend) AddF64(a, b F64) F64 { return F64{a[0] + b[0]} }
func (Backend) SubF64(a, b F64) F64 { return F64{a[0] - b[0]} }
func (Backend) MulF64(a, b F64) F64 { return F64{a[0] * b[0]} }

// The multiply-add forms round the product before adding. The explicit
// conversions stop the compiler from contracting them into a fused
// instruction on targets that have one.

func (Backend) FmaddF32(a, b, c F32) F32 {
	return F32{float32(a[0]*b[0]) + c[0], float32(a[1]*b[1]) + c[1]}
}

func (Backend) FmsubF32(a, b, c F32) F32 {
	return F32{float32(a[0]*b[0]) - c[0], float32(a[1]*b[1]) - c[1]}
}

func (Backend) FmaddF64(a, b, c F64) F64 { return F64{float64(a[0]*b[0]) + c[0]} }
func (Backend) FmsubF64(a, b, c F64) F64 { return F64{float64(a[0]*b[0]) - c[0]} }

func (Backend) Mul16(a, b Int) Int  { return Int{swar.Mul16(a[0], b[0])} }
func (Backend) Mul32(a, b Int) Int  { return Int{swar.Mul32(a[0], b[0])} }
func (Backend) Mul64(a, b Int) Int  { return Int{a[0] * b[0]} }
func (Backend) MulU16(a, b Int) Int { return Int{swar.Mul16(a[0], b[0])} }
func (Backend) MulU32(a, b Int) Int { return Int{swar.Mul32(a[0], b[0])} }
func (Backend) MulU64(a, b Int) Int { return Int{a[0] * b[0]} }

// MulWiden16 multiplies 16-bit lanes 0 and 1 as signed values into two
// 32-bit lanes.
func (Backend) MulWiden16(a, b Int) Int {
	p0 := int32(int16(swar.Lane16(a[0], 0))) * int32(int16(swar.Lane16(b[0], 0)))
	p1 := int32(int16(swar.Lane16(a[0], 1))) * int32(int16(swar.Lane16(b[0], 1)))
	return join(uint32(p0), uint32(p1))
}

func (Backend) MulWidenU16(a, b Int) Int {
	p0 := uint32(swar.Lane16(a[0], 0)) * uint32(swar.Lane16(b[0], 0))
	p1 := uint32(swar.Lane16(a[0], 1)) * uint32(swar.Lane16(b[0], 1))
	return join(p0, p1)
}

func (Backend) MulWiden32(a, b Int) Int {
	return Int{uint64(int64(int32(lo32(a))) * int64(int32(lo32(b))))}
}

func (Backend) MulWidenU32(a, b Int) Int {
	return Int{uint64(lo32(a)) * uint64(lo32(b))}
}
