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

package lanes

import "unsafe"

// Integer element types by width. Set, load and store accept signed and
// unsigned elements alike; the bits are identical.
type (
	Elem8  interface{ ~int8 | ~uint8 }
	Elem16 interface{ ~int16 | ~uint16 }
	Elem32 interface{ ~int32 | ~uint32 }
	Elem64 interface{ ~int64 | ~uint64 }
)

// Elem is any element type a register can hold.
type Elem interface {
	Elem8 | Elem16 | Elem32 | Elem64 | ~float32 | ~float64
}

// asUnsigned reinterprets a slice of same-width elements.
func asUnsigned[U, T any](s []T) []U {
	return unsafe.Slice((*U)(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}

// Zero returns a register with every bit clear.
func Zero() Int         { return backend{}.Zero() }
func ZeroF32() Float32s { return backend{}.ZeroF32() }
func ZeroF64() Float64s { return backend{}.ZeroF64() }

// Set8 broadcasts x to every 8-bit lane. Set16, Set32 and Set64 are the
// wider forms.
func Set8[T Elem8](x T) Int     { return backend{}.Set8(uint8(x)) }
func Set16[T Elem16](x T) Int   { return backend{}.Set16(uint16(x)) }
func Set32[T Elem32](x T) Int   { return backend{}.Set32(uint32(x)) }
func Set64[T Elem64](x T) Int   { return backend{}.Set64(uint64(x)) }
func SetF32(x float32) Float32s { return backend{}.SetF32(x) }
func SetF64(x float64) Float64s { return backend{}.SetF64(x) }

// SetN16 fills the first min(len(src), Lanes16) lanes from src and zeroes
// the rest.
func SetN16[T Elem16](src []T) Int   { return backend{}.SetN16(asUnsigned[uint16](src)) }
func SetN32[T Elem32](src []T) Int   { return backend{}.SetN32(asUnsigned[uint32](src)) }
func SetN64[T Elem64](src []T) Int   { return backend{}.SetN64(asUnsigned[uint64](src)) }
func SetNF32(src []float32) Float32s { return backend{}.SetNF32(src) }
func SetNF64(src []float64) Float64s { return backend{}.SetNF64(src) }

// Load8 reads Lanes8 elements from src at any alignment. src must hold at
// least a full register.
func Load8[T Elem8](src []T) Int     { return backend{}.Load8(asUnsigned[uint8](src)) }
func Load16[T Elem16](src []T) Int   { return backend{}.Load16(asUnsigned[uint16](src)) }
func Load32[T Elem32](src []T) Int   { return backend{}.Load32(asUnsigned[uint32](src)) }
func Load64[T Elem64](src []T) Int   { return backend{}.Load64(asUnsigned[uint64](src)) }
func LoadF32(src []float32) Float32s { return backend{}.LoadF32(src) }
func LoadF64(src []float64) Float64s { return backend{}.LoadF64(src) }

// LoadA8 is Load8 for memory aligned to Alignment bytes. Misaligned input
// panics in lanes_debug builds.
func LoadA8[T Elem8](src []T) Int     { return backend{}.LoadA8(asUnsigned[uint8](src)) }
func LoadA16[T Elem16](src []T) Int   { return backend{}.LoadA16(asUnsigned[uint16](src)) }
func LoadA32[T Elem32](src []T) Int   { return backend{}.LoadA32(asUnsigned[uint32](src)) }
func LoadA64[T Elem64](src []T) Int   { return backend{}.LoadA64(asUnsigned[uint64](src)) }
func LoadAF32(src []float32) Float32s { return backend{}.LoadAF32(src) }
func LoadAF64(src []float64) Float64s { return backend{}.LoadAF64(src) }

// Store8 writes Lanes8 elements to dst.
func Store8[T Elem8](dst []T, v Int)      { backend{}.Store8(asUnsigned[uint8](dst), v) }
func Store16[T Elem16](dst []T, v Int)    { backend{}.Store16(asUnsigned[uint16](dst), v) }
func Store32[T Elem32](dst []T, v Int)    { backend{}.Store32(asUnsigned[uint32](dst), v) }
func Store64[T Elem64](dst []T, v Int)    { backend{}.Store64(asUnsigned[uint64](dst), v) }
func StoreF32(dst []float32, v Float32s)  { backend{}.StoreF32(dst, v) }
func StoreF64(dst []float64, v Float64s)  { backend{}.StoreF64(dst, v) }
func StoreA8[T Elem8](dst []T, v Int)     { backend{}.StoreA8(asUnsigned[uint8](dst), v) }
func StoreA16[T Elem16](dst []T, v Int)   { backend{}.StoreA16(asUnsigned[uint16](dst), v) }
func StoreA32[T Elem32](dst []T, v Int)   { backend{}.StoreA32(asUnsigned[uint32](dst), v) }
func StoreA64[T Elem64](dst []T, v Int)   { backend{}.StoreA64(asUnsigned[uint64](dst), v) }
func StoreAF32(dst []float32, v Float32s) { backend{}.StoreAF32(dst, v) }
func StoreAF64(dst []float64, v Float64s) { backend{}.StoreAF64(dst, v) }

// Integer addition and subtraction wrap, except AddU16 and SubU16 which
// saturate to [0, 0xFFFF].
func Add8(a, b Int) Int   { return backend{}.Add8(a, b) }
func Add16(a, b Int) Int  { return backend{}.Add16(a, b) }
func Add32(a, b Int) Int  { return backend{}.Add32(a, b) }
func Add64(a, b Int) Int  { return backend{}.Add64(a, b) }
func AddU16(a, b Int) Int { return backend{}.AddU16(a, b) }
func AddU32(a, b Int) Int { return backend{}.AddU32(a, b) }
func AddU64(a, b Int) Int { return backend{}.AddU64(a, b) }
func Sub8(a, b Int) Int   { return backend{}.Sub8(a, b) }
func Sub16(a, b Int) Int  { return backend{}.Sub16(a, b) }
func Sub32(a, b Int) Int  { return backend{}.Sub32(a, b) }
func Sub64(a, b Int) Int  { return backend{}.Sub64(a, b) }
func SubU16(a, b Int) Int { return backend{}.SubU16(a, b) }
func SubU32(a, b Int) Int { return backend{}.SubU32(a, b) }
func SubU64(a, b Int) Int { return backend{}.SubU64(a, b) }

// Float arithmetic is IEEE-754 per lane. Fmadd computes a*b+c and Fmsub
// a*b-c; they round once when Geometry().FusedMulAdd is set.
func AddF32(a, b Float32s) Float32s      { return backend{}.AddF32(a, b) }
func SubF32(a, b Float32s) Float32s      { return backend{}.SubF32(a, b) }
func MulF32(a, b Float32s) Float32s      { return backend{}.MulF32(a, b) }
func AddF64(a, b Float64s) Float64s      { return backend{}.AddF64(a, b) }
func SubF64(a, b Float64s) Float64s      { return backend{}.SubF64(a, b) }
func MulF64(a, b Float64s) Float64s      { return backend{}.MulF64(a, b) }
func FmaddF32(a, b, c Float32s) Float32s { return backend{}.FmaddF32(a, b, c) }
func FmsubF32(a, b, c Float32s) Float32s { return backend{}.FmsubF32(a, b, c) }
func FmaddF64(a, b, c Float64s) Float64s { return backend{}.FmaddF64(a, b, c) }
func FmsubF64(a, b, c Float64s) Float64s { return backend{}.FmsubF64(a, b, c) }

// Mul16, Mul32 and Mul64 keep the low half of each product.
func Mul16(a, b Int) Int  { return backend{}.Mul16(a, b) }
func Mul32(a, b Int) Int  { return backend{}.Mul32(a, b) }
func Mul64(a, b Int) Int  { return backend{}.Mul64(a, b) }
func MulU16(a, b Int) Int { return backend{}.MulU16(a, b) }
func MulU32(a, b Int) Int { return backend{}.MulU32(a, b) }
func MulU64(a, b Int) Int { return backend{}.MulU64(a, b) }

// MulWiden16 multiplies the lower Lanes32 signed 16-bit lanes into full
// 32-bit products.
func MulWiden16(a, b Int) Int  { return backend{}.MulWiden16(a, b) }
func MulWidenU16(a, b Int) Int { return backend{}.MulWidenU16(a, b) }
func MulWiden32(a, b Int) Int  { return backend{}.MulWiden32(a, b) }
func MulWidenU32(a, b Int) Int { return backend{}.MulWidenU32(a, b) }

// Bitwise operations.
func And(a, b Int) Int { return backend{}.And(a, b) }
func Or(a, b Int) Int  { return backend{}.Or(a, b) }
func Xor(a, b Int) Int { return backend{}.Xor(a, b) }

// AndNot returns ^a & b.
func AndNot(a, b Int) Int                  { return backend{}.AndNot(a, b) }
func AndF32(a Float32s, mask Int) Float32s { return backend{}.AndF32(a, mask) }
func AndF64(a Float64s, mask Int) Float64s { return backend{}.AndF64(a, mask) }

// Lane shifts clear every lane once n reaches the lane width.
func Shl16(v Int, n uint) Int { return backend{}.Shl16(v, n) }
func Shl32(v Int, n uint) Int { return backend{}.Shl32(v, n) }
func Shl64(v Int, n uint) Int { return backend{}.Shl64(v, n) }
func Shr16(v Int, n uint) Int { return backend{}.Shr16(v, n) }
func Shr32(v Int, n uint) Int { return backend{}.Shr32(v, n) }
func Shr64(v Int, n uint) Int { return backend{}.Shr64(v, n) }

// ShlBytes shifts the whole register n bytes toward higher addresses,
// filling with zeros.
func ShlBytes(v Int, n uint) Int { return backend{}.ShlBytes(v, n) }

// ShrBytes shifts the whole register n bytes toward lower addresses.
func ShrBytes(v Int, n uint) Int { return backend{}.ShrBytes(v, n) }

// MergeLo concatenates the lower halves of a and b.
func MergeLo(a, b Int) Int { return backend{}.MergeLo(a, b) }

// MergeHi concatenates the upper halves of a and b.
func MergeHi(a, b Int) Int              { return backend{}.MergeHi(a, b) }
func MergeLoF32(a, b Float32s) Float32s { return backend{}.MergeLoF32(a, b) }
func MergeHiF32(a, b Float32s) Float32s { return backend{}.MergeHiF32(a, b) }
func MergeLoF64(a, b Float64s) Float64s { return backend{}.MergeLoF64(a, b) }
func MergeHiF64(a, b Float64s) Float64s { return backend{}.MergeHiF64(a, b) }

// Pack8 moves the even 8-bit lanes to the lower half and the odd lanes to
// the upper half, keeping their order.
func Pack8(v Int) Int  { return backend{}.Pack8(v) }
func Pack16(v Int) Int { return backend{}.Pack16(v) }
func Pack32(v Int) Int { return backend{}.Pack32(v) }

// PackMerge32 splits the 32-bit lanes of a followed by b into their even
// and odd lanes.
func PackMerge32(a, b Int) (even, odd Int) { return backend{}.PackMerge32(a, b) }

// Shuffle16 permutes each group of four 16-bit lanes: lane i of a group
// takes lane (ctrl>>2i)&3.
func Shuffle16(v Int, ctrl uint8) Int { return backend{}.Shuffle16(v, ctrl) }

// Shuffle32 permutes groups of min(4, Lanes32) 32-bit lanes the same way.
func Shuffle32(v Int, ctrl uint8) Int            { return backend{}.Shuffle32(v, ctrl) }
func ShuffleF32(v Float32s, ctrl uint8) Float32s { return backend{}.ShuffleF32(v, ctrl) }
func ShuffleF64(v Float64s, ctrl uint8) Float64s { return backend{}.ShuffleF64(v, ctrl) }

// Named permutations.
func SwapHalves(v Int) Int              { return backend{}.SwapHalves(v) }
func SwapHalvesF32(v Float32s) Float32s { return backend{}.SwapHalvesF32(v) }
func SwapHalvesF64(v Float64s) Float64s { return backend{}.SwapHalvesF64(v) }
func SwapPairs16(v Int) Int             { return backend{}.SwapPairs16(v) }
func SwapPairs32(v Int) Int             { return backend{}.SwapPairs32(v) }
func SwapPairs64(v Int) Int             { return backend{}.SwapPairs64(v) }
func DupLo(v Int) Int                   { return backend{}.DupLo(v) }
func DupHi(v Int) Int                   { return backend{}.DupHi(v) }
func DupLoF32(v Float32s) Float32s      { return backend{}.DupLoF32(v) }
func DupHiF32(v Float32s) Float32s      { return backend{}.DupHiF32(v) }
func DupLoF64(v Float64s) Float64s      { return backend{}.DupLoF64(v) }
func DupHiF64(v Float64s) Float64s      { return backend{}.DupHiF64(v) }

// Conversions round to nearest even. CvtU64F32 fills the low Lanes64
// float32 lanes and zeroes the rest.
func CvtI32F32(v Int) Float32s { return backend{}.CvtI32F32(v) }
func CvtI32F64(v Int) Float64s { return backend{}.CvtI32F64(v) }
func CvtU64F32(v Int) Float32s { return backend{}.CvtU64F32(v) }
func CvtU64F64(v Int) Float64s { return backend{}.CvtU64F64(v) }

// Bit casts reinterpret a register without converting values.
func BitsF32(v Float32s) Int     { return backend{}.BitsF32(v) }
func FromBitsF32(v Int) Float32s { return backend{}.FromBitsF32(v) }
func BitsF64(v Float64s) Int     { return backend{}.BitsF64(v) }
func FromBitsF64(v Int) Float64s { return backend{}.FromBitsF64(v) }

// ReduceAdd32 sums the 32-bit lanes with wraparound. Float sums fold
// the upper half onto the lower half until one lane remains.
func ReduceAdd32(v Int) uint32        { return backend{}.ReduceAdd32(v) }
func ReduceAdd64(v Int) uint64        { return backend{}.ReduceAdd64(v) }
func ReduceAddF32(v Float32s) float32 { return backend{}.ReduceAddF32(v) }
func ReduceAddF64(v Float64s) float64 { return backend{}.ReduceAddF64(v) }
