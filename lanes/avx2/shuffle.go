package avx2

// Halves are the two 128-bit blocks.

func (Backend) MergeLo(a, b Int) Int { return vperm2i128(a, b, 0x20) }
func (Backend) MergeHi(a, b Int) Int { return vperm2i128(a, b, 0x31) }

func (Backend) MergeLoF32(a, b F32) F32 { return vperm2f128(a, b, 0x20) }
func (Backend) MergeHiF32(a, b F32) F32 { return vperm2f128(a, b, 0x31) }
func (Backend) MergeLoF64(a, b F64) F64 { return vperm2f128pd(a, b, 0x20) }
func (Backend) MergeHiF64(a, b F64) F64 { return vperm2f128pd(a, b, 0x31) }

var (
	packBytes = [16]byte{0, 2, 4, 6, 8, 10, 12, 14, 1, 3, 5, 7, 9, 11, 13, 15}
	packWords = [16]byte{0, 1, 4, 5, 8, 9, 12, 13, 2, 3, 6, 7, 10, 11, 14, 15}
)

// Packs de-interleave within each block, leaving [even.lo, odd.lo,
// even.hi, odd.hi] in quadwords; vpermq 0xD8 then gathers the evens.

func (Backend) Pack8(v Int) Int  { return vpermq(vpshufb(v, packBytes), 0xD8) }
func (Backend) Pack16(v Int) Int { return vpermq(vpshufb(v, packWords), 0xD8) }
func (Backend) Pack32(v Int) Int { return vpermq(vpshufd(v, 0xD8), 0xD8) }

func (Backend) PackMerge32(a, b Int) (even, odd Int) {
	return vpermq(vshufpsi(a, b, 0x88), 0xD8), vpermq(vshufpsi(a, b, 0xDD), 0xD8)
}

// Shuffles repeat the same control in each block.

func (Backend) Shuffle16(v Int, ctrl uint8) Int  { return vpshufhw(vpshuflw(v, ctrl), ctrl) }
func (Backend) Shuffle32(v Int, ctrl uint8) Int  { return vpshufd(v, ctrl) }
func (Backend) ShuffleF32(v F32, ctrl uint8) F32 { return vshufps(v, v, ctrl) }

func (Backend) ShuffleF64(v F64, ctrl uint8) F64 {
	c := ctrl & 3
	return vshufpd(v, v, c|c<<2)
}

func (Backend) SwapHalves(v Int) Int    { return vpermq(v, 0x4E) }
func (Backend) SwapHalvesF32(v F32) F32 { return vperm2f128(v, v, 0x01) }
func (Backend) SwapHalvesF64(v F64) F64 { return vpermpd(v, 0x4E) }
func (Backend) SwapPairs16(v Int) Int   { return vpshufhw(vpshuflw(v, 0xB1), 0xB1) }
func (Backend) SwapPairs32(v Int) Int   { return vpshufd(v, 0xB1) }
func (Backend) SwapPairs64(v Int) Int   { return vpshufd(v, 0x4E) }
func (Backend) DupLo(v Int) Int         { return vpermq(v, 0x44) }
func (Backend) DupHi(v Int) Int         { return vpermq(v, 0xEE) }
func (Backend) DupLoF32(v F32) F32      { return vperm2f128(v, v, 0x00) }
func (Backend) DupHiF32(v F32) F32      { return vperm2f128(v, v, 0x11) }
func (Backend) DupLoF64(v F64) F64      { return vpermpd(v, 0x44) }
func (Backend) DupHiF64(v F64) F64      { return vpermpd(v, 0xEE) }
