package sse4

// Halves are quadwords.

func (Backend) MergeLo(a, b Int) Int { return punpcklqdq(a, b) }
func (Backend) MergeHi(a, b Int) Int { return punpckhqdq(a, b) }

func (Backend) MergeLoF32(a, b F32) F32 { return shufps(a, b, 0x44) }
func (Backend) MergeHiF32(a, b F32) F32 { return shufps(a, b, 0xEE) }
func (Backend) MergeLoF64(a, b F64) F64 { return unpcklpd(a, b) }
func (Backend) MergeHiF64(a, b F64) F64 { return unpckhpd(a, b) }

var (
	packBytes = [16]byte{0, 2, 4, 6, 8, 10, 12, 14, 1, 3, 5, 7, 9, 11, 13, 15}
	packWords = [16]byte{0, 1, 4, 5, 8, 9, 12, 13, 2, 3, 6, 7, 10, 11, 14, 15}
)

func (Backend) Pack8(v Int) Int  { return pshufb(v, packBytes) }
func (Backend) Pack16(v Int) Int { return pshufb(v, packWords) }

// Pack32 reorders dwords [0,1,2,3] -> [0,2,1,3].
func (Backend) Pack32(v Int) Int { return pshufd(v, 0xD8) }

// PackMerge32 picks even dwords (0x88) and odd dwords (0xDD) of a:b.
func (Backend) PackMerge32(a, b Int) (even, odd Int) {
	return shufpsi(a, b, 0x88), shufpsi(a, b, 0xDD)
}

func (Backend) Shuffle16(v Int, ctrl uint8) Int  { return pshufhw(pshuflw(v, ctrl), ctrl) }
func (Backend) Shuffle32(v Int, ctrl uint8) Int  { return pshufd(v, ctrl) }
func (Backend) ShuffleF32(v F32, ctrl uint8) F32 { return shufps(v, v, ctrl) }
func (Backend) ShuffleF64(v F64, ctrl uint8) F64 { return shufpd(v, v, ctrl) }

func (Backend) SwapHalves(v Int) Int    { return pshufd(v, 0x4E) }
func (Backend) SwapHalvesF32(v F32) F32 { return shufps(v, v, 0x4E) }
func (Backend) SwapHalvesF64(v F64) F64 { return shufpd(v, v, 1) }
func (Backend) SwapPairs16(v Int) Int   { return pshufhw(pshuflw(v, 0xB1), 0xB1) }
func (Backend) SwapPairs32(v Int) Int   { return pshufd(v, 0xB1) }
func (Backend) SwapPairs64(v Int) Int   { return pshufd(v, 0x4E) }
func (Backend) DupLo(v Int) Int         { return punpcklqdq(v, v) }
func (Backend) DupHi(v Int) Int         { return punpckhqdq(v, v) }
func (Backend) DupLoF32(v F32) F32      { return shufps(v, v, 0x44) }
func (Backend) DupHiF32(v F32) F32      { return shufps(v, v, 0xEE) }
func (Backend) DupLoF64(v F64) F64      { return unpcklpd(v, v) }
func (Backend) DupHiF64(v F64) F64      { return unpckhpd(v, v) }
