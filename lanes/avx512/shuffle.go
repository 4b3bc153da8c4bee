package avx512

// Halves are the two 256-bit halves: blocks 0-1 and 2-3.

func (Backend) MergeLo(a, b Int) Int { return vshufi64x2(a, b, 0x44) }
func (Backend) MergeHi(a, b Int) Int { return vshufi64x2(a, b, 0xEE) }

func (Backend) MergeLoF32(a, b F32) F32 { return vshuff32x4(a, b, 0x44) }
func (Backend) MergeHiF32(a, b F32) F32 { return vshuff32x4(a, b, 0xEE) }
func (Backend) MergeLoF64(a, b F64) F64 { return vshuff64x2(a, b, 0x44) }
func (Backend) MergeHiF64(a, b F64) F64 { return vshuff64x2(a, b, 0xEE) }

var (
	packBytes = [16]byte{0, 2, 4, 6, 8, 10, 12, 14, 1, 3, 5, 7, 9, 11, 13, 15}
	evensOdds = [Lanes64]uint8{0, 2, 4, 6, 1, 3, 5, 7}
)

var packWords = func() (idx [Lanes16]uint8) {
	interleave(idx[:])
	return idx
}()

var packDwords = func() (idx [Lanes32]uint8) {
	interleave(idx[:])
	return idx
}()

// Indices into the 32-dword table a:b.
var mergeEven, mergeOdd = func() (e, o [Lanes32]uint8) {
	for i := range Lanes32 {
		e[i], o[i] = uint8(2*i), uint8(2*i+1)
	}
	return e, o
}()

// interleave fills idx with [0, 2, 4, ..., 1, 3, 5, ...].
func interleave(idx []uint8) {
	n := len(idx)
	for i := range n / 2 {
		idx[i] = uint8(2 * i)
		idx[i+n/2] = uint8(2*i + 1)
	}
}

// Pack8 de-interleaves bytes per block, then gathers the even quadwords.
func (Backend) Pack8(v Int) Int  { return vpermq(vpshufb(v, packBytes), evensOdds) }
func (Backend) Pack16(v Int) Int { return vpermw(v, packWords) }
func (Backend) Pack32(v Int) Int { return vpermd(v, packDwords) }

func (Backend) PackMerge32(a, b Int) (even, odd Int) {
	return vpermt2d(a, mergeEven, b), vpermt2d(a, mergeOdd, b)
}

func (Backend) Shuffle16(v Int, ctrl uint8) Int  { return vpshufhw(vpshuflw(v, ctrl), ctrl) }
func (Backend) Shuffle32(v Int, ctrl uint8) Int  { return vpshufd(v, ctrl) }
func (Backend) ShuffleF32(v F32, ctrl uint8) F32 { return vshufps(v, v, ctrl) }
func (Backend) ShuffleF64(v F64, ctrl uint8) F64 { return vshufpd(v, v, (ctrl&3)*0x55) }

func (Backend) SwapHalves(v Int) Int    { return vshufi64x2(v, v, 0x4E) }
func (Backend) SwapHalvesF32(v F32) F32 { return vshuff32x4(v, v, 0x4E) }
func (Backend) SwapHalvesF64(v F64) F64 { return vshuff64x2(v, v, 0x4E) }
func (Backend) SwapPairs16(v Int) Int   { return vprold(v, 16) }
func (Backend) SwapPairs32(v Int) Int   { return vprolq(v, 32) }
func (Backend) SwapPairs64(v Int) Int   { return vpshufd(v, 0x4E) }
func (Backend) DupLo(v Int) Int         { return vshufi64x2(v, v, 0x44) }
func (Backend) DupHi(v Int) Int         { return vshufi64x2(v, v, 0xEE) }
func (Backend) DupLoF32(v F32) F32      { return vshuff32x4(v, v, 0x44) }
func (Backend) DupHiF32(v F32) F32      { return vshuff32x4(v, v, 0xEE) }
func (Backend) DupLoF64(v F64) F64      { return vshuff64x2(v, v, 0x44) }
func (Backend) DupHiF64(v F64) F64      { return vshuff64x2(v, v, 0xEE) }
