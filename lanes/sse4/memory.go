package sse4

import (
	"unsafe"

	"github.com/ajroetker/go-lanes/internal/align"
	"github.com/ajroetker/go-lanes/internal/swar"
)

var zeroMask [16]byte

func (Backend) Zero() Int    { return pxor(Int{}, Int{}) }
func (Backend) ZeroF32() F32 { return F32{} }
func (Backend) ZeroF64() F64 { return F64{} }

// Set8 broadcasts byte 0 with an all-zero pshufb mask.
func (Backend) Set8(x uint8) Int { return pshufb(movd(uint32(x)), zeroMask) }

func (Backend) Set16(x uint16) Int {
	v := pshuflw(movd(uint32(x)), 0)
	return punpcklqdq(v, v)
}

func (Backend) Set32(x uint32) Int { return pshufd(movd(x), 0) }

func (Backend) Set64(x uint64) Int {
	v := movq(x)
	return punpcklqdq(v, v)
}

func (Backend) SetF32(x float32) F32 { return shufps(F32{x}, F32{x}, 0) }
func (Backend) SetF64(x float64) F64 { return unpcklpd(F64{x}, F64{x}) }

func (Backend) SetN16(src []uint16) (v Int) {
	swar.SetN16(v[:], src)
	return v
}

func (Backend) SetN32(src []uint32) (v Int) {
	swar.SetN32(v[:], src)
	return v
}

func (Backend) SetN64(src []uint64) (v Int) {
	copy(v[:], src)
	return v
}

func (Backend) SetNF32(src []float32) (v F32) {
	copy(v[:], src)
	return v
}

func (Backend) SetNF64(src []float64) (v F64) {
	copy(v[:], src)
	return v
}

// movdqu / movups / movupd.

func (Backend) Load8(src []uint8) (v Int) {
	swar.Load8(v[:], src[:Lanes8])
	return v
}

func (Backend) Load16(src []uint16) (v Int) {
	swar.Load16(v[:], src[:Lanes16])
	return v
}

func (Backend) Load32(src []uint32) (v Int) {
	swar.Load32(v[:], src[:Lanes32])
	return v
}

func (Backend) Load64(src []uint64) Int {
	_ = src[1]
	return Int{src[0], src[1]}
}

func (Backend) LoadF32(src []float32) F32 { return F32(src[:Lanes32]) }
func (Backend) LoadF64(src []float64) F64 { return F64(src[:Lanes64]) }

// movdqa / movaps / movapd.

func (b Backend) LoadA8(src []uint8) Int {
	align.Check(unsafe.Pointer(unsafe.SliceData(src)), Alignment)
	return b.Load8(src)
}

func (b Backend) LoadA16(src []uint16) Int {
	align.Check(unsafe.Pointer(unsafe.SliceData(src)), Alignment)
	return b.Load16(src)
}

func (b Backend) LoadA32(src []uint32) Int {
	align.Check(unsafe.Pointer(unsafe.SliceData(src)), Alignment)
	return b.Load32(src)
}

func (b Backend) LoadA64(src []uint64) Int {
	align.Check(unsafe.Pointer(unsafe.SliceData(src)), Alignment)
	return b.Load64(src)
}

func (b Backend) LoadAF32(src []float32) F32 {
	align.Check(unsafe.Pointer(unsafe.SliceData(src)), Alignment)
	return b.LoadF32(src)
}

func (b Backend) LoadAF64(src []float64) F64 {
	align.Check(unsafe.Pointer(unsafe.SliceData(src)), Alignment)
	return b.LoadF64(src)
}

func (Backend) Store8(dst []uint8, v Int)     { swar.Store8(dst[:Lanes8], v[:]) }
func (Backend) Store16(dst []uint16, v Int)   { swar.Store16(dst[:Lanes16], v[:]) }
func (Backend) Store32(dst []uint32, v Int)   { swar.Store32(dst[:Lanes32], v[:]) }
func (Backend) Store64(dst []uint64, v Int)   { copy(dst[:Lanes64], v[:]) }
func (Backend) StoreF32(dst []float32, v F32) { copy(dst[:Lanes32], v[:]) }
func (Backend) StoreF64(dst []float64, v F64) { copy(dst[:Lanes64], v[:]) }

func (b Backend) StoreA8(dst []uint8, v Int) {
	align.Check(unsafe.Pointer(unsafe.SliceData(dst)), Alignment)
	b.Store8(dst, v)
}

func (b Backend) StoreA16(dst []uint16, v Int) {
	align.Check(unsafe.Pointer(unsafe.SliceData(dst)), Alignment)
	b.Store16(dst, v)
}

func (b Backend) StoreA32(dst []uint32, v Int) {
	align.Check(unsafe.Pointer(unsafe.SliceData(dst)), Alignment)
	b.Store32(dst, v)
}

func (b Backend) StoreA64(dst []uint64, v Int) {
	align.Check(unsafe.Pointer(unsafe.SliceData(dst)), Alignment)
	b.Store64(dst, v)
}

func (b Backend) StoreAF32(dst []float32, v F32) {
	align.Check(unsafe.Pointer(unsafe.SliceData(dst)), Alignment)
	b.StoreF32(dst, v)
}

func (b Backend) StoreAF64(dst []float64, v F64) {
	align.Check(unsafe.Pointer(unsafe.SliceData(dst)), Alignment)
	b.StoreF64(dst, v)
}
