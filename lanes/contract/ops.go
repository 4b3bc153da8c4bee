// Copyright 2025 go-lanes Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package contract

// Ops is the full operation set. I is the integer register type (its bits
// are interpreted by the operation), F holds float32 lanes and D holds
// float64 lanes.
//
// Integer element values are passed as unsigned bit patterns; the lanes
// package layers signed/unsigned generic wrappers on top.
type Ops[I, F, D any] interface {
	Geometry() Geometry

	// Zero, broadcast and partial construction. SetN* fill lanes
	// [0, min(len(src), L)) from src and zero the rest.
	Zero() I
	ZeroF32() F
	ZeroF64() D
	Set8(x uint8) I
	Set16(x uint16) I
	Set32(x uint32) I
	Set64(x uint64) I
	SetF32(x float32) F
	SetF64(x float64) D
	SetN16(src []uint16) I
	SetN32(src []uint32) I
	SetN64(src []uint64) I
	SetNF32(src []float32) F
	SetNF64(src []float64) D

	// Unaligned loads and stores accept any address. The A forms require
	// the slice to start on an Alignment boundary.
	Load8(src []uint8) I
	Load16(src []uint16) I
	Load32(src []uint32) I
	Load64(src []uint64) I
	LoadF32(src []float32) F
	LoadF64(src []float64) D
	LoadA8(src []uint8) I
	LoadA16(src []uint16) I
	LoadA32(src []uint32) I
	LoadA64(src []uint64) I
	LoadAF32(src []float32) F
	LoadAF64(src []float64) D
	Store8(dst []uint8, v I)
	Store16(dst []uint16, v I)
	Store32(dst []uint32, v I)
	Store64(dst []uint64, v I)
	StoreF32(dst []float32, v F)
	StoreF64(dst []float64, v D)
	StoreA8(dst []uint8, v I)
	StoreA16(dst []uint16, v I)
	StoreA32(dst []uint32, v I)
	StoreA64(dst []uint64, v I)
	StoreAF32(dst []float32, v F)
	StoreAF64(dst []float64, v D)

	// Integer add/sub wrap, except AddU16/SubU16 which saturate.
	Add8(a, b I) I
	Add16(a, b I) I
	Add32(a, b I) I
	Add64(a, b I) I
	AddU16(a, b I) I
	AddU32(a, b I) I
	AddU64(a, b I) I
	Sub8(a, b I) I
	Sub16(a, b I) I
	Sub32(a, b I) I
	Sub64(a, b I) I
	SubU16(a, b I) I
	SubU32(a, b I) I
	SubU64(a, b I) I

	AddF32(a, b F) F
	SubF32(a, b F) F
	MulF32(a, b F) F
	AddF64(a, b D) D
	SubF64(a, b D) D
	MulF64(a, b D) D
	FmaddF32(a, b, c F) F
	FmsubF32(a, b, c F) F
	FmaddF64(a, b, c D) D
	FmsubF64(a, b, c D) D

	// Low-half multiplies.
	Mul16(a, b I) I
	Mul32(a, b I) I
	Mul64(a, b I) I
	MulU16(a, b I) I
	MulU32(a, b I) I
	MulU64(a, b I) I

	// Widening multiplies read the lower half of the narrow lanes and
	// produce L/2 double-width lanes.
	MulWiden16(a, b I) I
	MulWidenU16(a, b I) I
	MulWiden32(a, b I) I
	MulWidenU32(a, b I) I

	And(a, b I) I
	Or(a, b I) I
	Xor(a, b I) I
	AndNot(a, b I) I
	AndF32(a F, mask I) F
	AndF64(a D, mask I) D

	// Lane shifts clear the lane for counts >= the lane width.
	Shl16(v I, n uint) I
	Shl32(v I, n uint) I
	Shl64(v I, n uint) I
	Shr16(v I, n uint) I
	Shr32(v I, n uint) I
	Shr64(v I, n uint) I

	// Whole-register byte shifts with zero fill.
	ShlBytes(v I, n uint) I
	ShrBytes(v I, n uint) I

	MergeLo(a, b I) I
	MergeHi(a, b I) I
	MergeLoF32(a, b F) F
	MergeHiF32(a, b F) F
	MergeLoF64(a, b D) D
	MergeHiF64(a, b D) D

	Pack8(v I) I
	Pack16(v I) I
	Pack32(v I) I
	PackMerge32(a, b I) (even, odd I)

	Shuffle16(v I, ctrl uint8) I
	Shuffle32(v I, ctrl uint8) I
	ShuffleF32(v F, ctrl uint8) F
	ShuffleF64(v D, ctrl uint8) D
	SwapHalves(v I) I
	SwapHalvesF32(v F) F
	SwapHalvesF64(v D) D
	SwapPairs16(v I) I
	SwapPairs32(v I) I
	SwapPairs64(v I) I
	DupLo(v I) I
	DupHi(v I) I
	DupLoF32(v F) F
	DupHiF32(v F) F
	DupLoF64(v D) D
	DupHiF64(v D) D

	CvtI32F32(v I) F
	CvtI32F64(v I) D
	CvtU64F32(v I) F
	CvtU64F64(v I) D
	BitsF32(v F) I
	FromBitsF32(v I) F
	BitsF64(v D) I
	FromBitsF64(v I) D

	ReduceAdd32(v I) uint32
	ReduceAdd64(v I) uint64
	ReduceAddF32(v F) float32
	ReduceAddF64(v D) float64
}
