package avx512

func (Backend) Add8(a, b Int) Int   { return vpaddb(a, b) }
func (Backend) Add16(a, b Int) Int  { return vpaddw(a, b) }
func (Backend) Add32(a, b Int) Int  { return vpaddd(a, b) }
func (Backend) Add64(a, b Int) Int  { return vpaddq(a, b) }
func (Backend) AddU16(a, b Int) Int { return vpaddusw(a, b) }
func (Backend) AddU32(a, b Int) Int { return vpaddd(a, b) }
func (Backend) AddU64(a, b Int) Int { return vpaddq(a, b) }
func (Backend) Sub8(a, b Int) Int   { return vpsubb(a, b) }
func (Backend) Sub16(a, b Int) Int  { return vpsubw(a, b) }
func (Backend) Sub32(a, b Int) Int  { return vpsubd(a, b) }
func (Backend) Sub64(a, b Int) Int  { return vpsubq(a, b) }
func (Backend) SubU16(a, b Int) Int { return vpsubusw(a, b) }
func (Backend) SubU32(a, b Int) Int { return vpsubd(a, b) }
func (Backend) SubU64(a, b Int) Int { return vpsubq(a, b) }

func (Backend) AddF32(a, b F32) F32 { return vaddps(a, b) }
func (Backend) SubF32(a, b F32) F32 { return vsubps(a, b) }
func (Backend) MulF32(a, b F32) F32 { return vmulps(a, b) }
func (Backend) AddF64(a, b F64) F64 { return vaddpd(a, b) }
func (Backend) SubF64(a, b F64) F64 { return vsubpd(a, b) }
func (Backend) MulF64(a, b F64) F64 { return vmulpd(a, b) }

func (Backend) FmaddF32(a, b, c F32) F32 { return vfmadd231ps(a, b, c, 1) }
func (Backend) FmsubF32(a, b, c F32) F32 { return vfmadd231ps(a, b, c, -1) }
func (Backend) FmaddF64(a, b, c F64) F64 { return vfmadd231pd(a, b, c, 1) }
func (Backend) FmsubF64(a, b, c F64) F64 { return vfmadd231pd(a, b, c, -1) }

func (Backend) Mul16(a, b Int) Int  { return vpmullw(a, b) }
func (Backend) Mul32(a, b Int) Int  { return vpmulld(a, b) }
func (Backend) Mul64(a, b Int) Int  { return vpmullq(a, b) }
func (Backend) MulU16(a, b Int) Int { return vpmullw(a, b) }
func (Backend) MulU32(a, b Int) Int { return vpmulld(a, b) }
func (Backend) MulU64(a, b Int) Int { return vpmullq(a, b) }

func (Backend) MulWiden16(a, b Int) Int  { return vpmulld(vpmovsxwd(a), vpmovsxwd(b)) }
func (Backend) MulWidenU16(a, b Int) Int { return vpmulld(vpmovzxwd(a), vpmovzxwd(b)) }
func (Backend) MulWiden32(a, b Int) Int  { return vpmuldq(vpmovsxdq(a), vpmovsxdq(b)) }
func (Backend) MulWidenU32(a, b Int) Int { return vpmuludq(vpmovzxdq(a), vpmovzxdq(b)) }
