package scalar

import "github.com/ajroetker/go-lanes/internal/swar"

// Integer halves are the two 32-bit halves of the word. The float64
// register has one lane, which serves as both of its halves.

func (Backend) MergeLo(a, b Int) Int { return join(lo32(a), lo32(b)) }
func (Backend) MergeHi(a, b Int) Int { return join(hi32(a), hi32(b)) }

func (Backend) MergeLoF32(a, b F32) F32 { return F32{a[0], b[0]} }
func (Backend) MergeHiF32(a, b F32) F32 { return F32{a[1], b[1]} }
func (Backend) MergeLoF64(a, b F64) F64 { return a }
func (Backend) MergeHiF64(a, b F64) F64 { return b }

// Pack8 gathers even bytes into the low half and odd bytes into the high
// half.
func (Backend) Pack8(v Int) Int {
	w := v[0]
	var r uint64
	for i := range Lanes8 / 2 {
		r = swar.Put8(r, i, swar.Lane8(w, 2*i))
		r = swar.Put8(r, i+Lanes8/2, swar.Lane8(w, 2*i+1))
	}
	return Int{r}
}

// Pack16 reorders lanes [0,1,2,3] -> [0,2,1,3].
func (Backend) Pack16(v Int) Int {
	w := v[0]
	return Int{swar.Pack16(swar.Lane16(w, 0), swar.Lane16(w, 2), swar.Lane16(w, 1), swar.Lane16(w, 3))}
}

// Pack32 is the identity with two lanes.
func (Backend) Pack32(v Int) Int { return v }

func (Backend) PackMerge32(a, b Int) (even, odd Int) {
	return join(lo32(a), lo32(b)), join(hi32(a), hi32(b))
}

func (Backend) Shuffle16(v Int, ctrl uint8) Int {
	w := v[0]
	var r uint64
	for i := range 4 {
		r = swar.Put16(r, i, swar.Lane16(w, int(ctrl>>(2*i))&3))
	}
	return Int{r}
}

// Shuffle32 uses bit 0 of each 2-bit selector; two lanes form the group.
func (Backend) Shuffle32(v Int, ctrl uint8) Int {
	return join(swar.Lane32(v[0], int(ctrl)&1), swar.Lane32(v[0], int(ctrl>>2)&1))
}

func (Backend) ShuffleF32(v F32, ctrl uint8) F32 {
	return F32{v[ctrl&1], v[(ctrl>>2)&1]}
}

func (Backend) ShuffleF64(v F64, _ uint8) F64 { return v }

func (Backend) SwapHalves(v Int) Int    { return Int{swar.Rotl64(v[0], 32)} }
func (Backend) SwapHalvesF32(v F32) F32 { return F32{v[1], v[0]} }
func (Backend) SwapHalvesF64(v F64) F64 { return v }
func (Backend) SwapPairs16(v Int) Int   { return Int{swar.Rotl32(v[0], 16)} }
func (Backend) SwapPairs32(v Int) Int   { return Int{swar.Rotl64(v[0], 32)} }
func (Backend) SwapPairs64(v Int) Int   { return v }
func (Backend) DupLo(v Int) Int         { return join(lo32(v), lo32(v)) }
func (Backend) DupHi(v Int) Int         { return join(hi32(v), hi32(v)) }
func (Backend) DupLoF32(v F32) F32      { return F32{v[0], v[0]} }
func (Backend) DupHiF32(v F32) F32      { return F32{v[1], v[1]} }
func (Backend) DupLoF64(v F64) F64      { return v }
func (Backend) DupHiF64(v F64) F64      { return v }
