package mmx

func (Backend) MergeLo(a, b Int) Int { return Int{punpckldq(a[0], b[0])} }
func (Backend) MergeHi(a, b Int) Int { return Int{punpckhdq(a[0], b[0])} }

func (Backend) MergeLoF32(a, b F32) F32 { return F32{a[0], b[0]} }
func (Backend) MergeHiF32(a, b F32) F32 { return F32{a[1], b[1]} }
func (Backend) MergeLoF64(a, _ F64) F64 { return a }
func (Backend) MergeHiF64(_, b F64) F64 { return b }

// Pack8 de-interleaves bytes with two rounds of unpacking against the
// upper half: [0..7] -> [0,4,1,5,2,6,3,7] -> [0,2,4,6,1,3,5,7].
func (Backend) Pack8(v Int) Int {
	u := punpcklbw(v[0], psrlq(v[0], 32))
	return Int{punpcklbw(u, psrlq(u, 32))}
}

// Pack16 reorders words [0,1,2,3] -> [0,2,1,3].
func (Backend) Pack16(v Int) Int { return Int{punpcklwd(v[0], psrlq(v[0], 32))} }

func (Backend) Pack32(v Int) Int { return v }

func (Backend) PackMerge32(a, b Int) (even, odd Int) {
	return Int{punpckldq(a[0], b[0])}, Int{punpckhdq(a[0], b[0])}
}

// Shuffle16 routes each selected word through a general-purpose register;
// MMX has no word shuffle.
func (Backend) Shuffle16(v Int, ctrl uint8) Int {
	var r mm
	for i := range 4 {
		w := movdTo(psrlq(v[0], 16*uint(ctrl>>(2*i)&3))) & 0xFFFF
		r = por(r, psllq(movd(w), 16*uint(i)))
	}
	return Int{r}
}

// dupDword broadcasts dword sel (0 or 1).
func dupDword(a mm, sel uint8) mm {
	if sel&1 == 0 {
		return punpckldq(a, a)
	}
	return punpckhdq(a, a)
}

// Shuffle32 reads bit 0 of the first two selectors; two dwords make up
// the group.
func (Backend) Shuffle32(v Int, ctrl uint8) Int {
	return Int{punpckldq(dupDword(v[0], ctrl), dupDword(v[0], ctrl>>2))}
}

func (Backend) ShuffleF32(v F32, ctrl uint8) F32 {
	a := bitsF32(v)
	return fromBitsF32(punpckldq(dupDword(a, ctrl), dupDword(a, ctrl>>2)))
}

func (Backend) ShuffleF64(v F64, _ uint8) F64 { return v }

func (Backend) SwapHalves(v Int) Int    { return Int{swapDwords(v[0])} }
func (Backend) SwapHalvesF32(v F32) F32 { return F32{v[1], v[0]} }
func (Backend) SwapHalvesF64(v F64) F64 { return v }
func (Backend) SwapPairs16(v Int) Int   { return Int{swapWords(v[0])} }
func (Backend) SwapPairs32(v Int) Int   { return Int{swapDwords(v[0])} }
func (Backend) SwapPairs64(v Int) Int   { return v }
func (Backend) DupLo(v Int) Int         { return Int{punpckldq(v[0], v[0])} }
func (Backend) DupHi(v Int) Int         { return Int{punpckhdq(v[0], v[0])} }
func (Backend) DupLoF32(v F32) F32      { return F32{v[0], v[0]} }
func (Backend) DupHiF32(v F32) F32      { return F32{v[1], v[1]} }
func (Backend) DupLoF64(v F64) F64      { return v }
func (Backend) DupHiF64(v F64) F64      { return v }
