package mmx

func (Backend) Add8(a, b Int) Int   { return Int{paddb(a[0], b[0])} }
func (Backend) Add16(a, b Int) Int  { return Int{paddw(a[0], b[0])} }
func (Backend) Add32(a, b Int) Int  { return Int{paddd(a[0], b[0])} }
func (Backend) Add64(a, b Int) Int  { return Int{add64(a[0], b[0])} }
func (Backend) AddU16(a, b Int) Int { return Int{paddusw(a[0], b[0])} }
func (Backend) AddU32(a, b Int) Int { return Int{paddd(a[0], b[0])} }
func (Backend) AddU64(a, b Int) Int { return Int{add64(a[0], b[0])} }
func (Backend) Sub8(a, b Int) Int   { return Int{psubb(a[0], b[0])} }
func (Backend) Sub16(a, b Int) Int  { return Int{psubw(a[0], b[0])} }
func (Backend) Sub32(a, b Int) Int  { return Int{psubd(a[0], b[0])} }
func (Backend) Sub64(a, b Int) Int  { return Int{sub64(a[0], b[0])} }
func (Backend) SubU16(a, b Int) Int { return Int{psubusw(a[0], b[0])} }
func (Backend) SubU32(a, b Int) Int { return Int{psubd(a[0], b[0])} }
func (Backend) SubU64(a, b Int) Int { return Int{sub64(a[0], b[0])} }

func (Backend) AddF32(a, b F32) F32 { return F32{a[0] + b[0], a[1] + b[1]} }
func (Backend) SubF32(a, b F32) F32 { return F32{a[0] - b[0], a[1] - b[1]} }
func (Backend) MulF32(a, b F32) F32 { return F32{a[0] * b[0], a[1] * b[1]} }
func (Backend) AddF64(a, b F64) F64 { return F64{a[0] + b[0]} }
func (Backend) SubF64(a, b F64) F64 { return F64{a[0] - b[0]} }
func (Backend) MulF64(a, b F64) F64 { return F64{a[0] * b[0]} }

// No fused multiply-add: the product is rounded first.

func (Backend) FmaddF32(a, b, c F32) F32 {
	return F32{float32(a[0]*b[0]) + c[0], float32(a[1]*b[1]) + c[1]}
}

func (Backend) FmsubF32(a, b, c F32) F32 {
	return F32{float32(a[0]*b[0]) - c[0], float32(a[1]*b[1]) - c[1]}
}

func (Backend) FmaddF64(a, b, c F64) F64 { return F64{float64(a[0]*b[0]) + c[0]} }
func (Backend) FmsubF64(a, b, c F64) F64 { return F64{float64(a[0]*b[0]) - c[0]} }

func (Backend) Mul16(a, b Int) Int  { return Int{pmullw(a[0], b[0])} }
func (Backend) Mul32(a, b Int) Int  { return Int{mul32(a[0], b[0])} }
func (Backend) Mul64(a, b Int) Int  { return Int{mul64(a[0], b[0])} }
func (Backend) MulU16(a, b Int) Int { return Int{pmullw(a[0], b[0])} }
func (Backend) MulU32(a, b Int) Int { return Int{mul32(a[0], b[0])} }
func (Backend) MulU64(a, b Int) Int { return Int{mul64(a[0], b[0])} }

// MulWiden16 interleaves the low and high product halves of words 0 and 1.
func (Backend) MulWiden16(a, b Int) Int {
	return Int{punpcklwd(pmullw(a[0], b[0]), pmulhw(a[0], b[0]))}
}

// MulWidenU16 uses the signed high half; see the package documentation.
func (Backend) MulWidenU16(a, b Int) Int {
	return Int{punpcklwd(pmullw(a[0], b[0]), pmulhw(a[0], b[0]))}
}

func (Backend) MulWiden32(a, b Int) Int  { return Int{mulWide32(a[0], b[0])} }
func (Backend) MulWidenU32(a, b Int) Int { return Int{mulWideU32(a[0], b[0])} }
