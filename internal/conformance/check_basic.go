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

package conformance

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/ajroetker/go-lanes/internal/reference"
)

func (s suite[I, F, D]) geometry(*rand.Rand) error {
	if err := s.g.Validate(); err != nil {
		return err
	}
	if len(s.u8(s.b.Zero())) != s.g.Bytes {
		return fmt.Errorf("%w: %s: register does not hold %d bytes", ErrMismatch, s.g, s.g.Bytes)
	}
	return nil
}

func repeat[T any](x T, n int) []T {
	r := make([]T, n)
	for i := range r {
		r[i] = x
	}
	return r
}

func (s suite[I, F, D]) set(r *rand.Rand) error {
	w := r.Uint64()
	x8, x16, x32 := uint8(w), uint16(w), uint32(w)
	f := float32s(r, 1)[0]
	d := float64s(r, 1)[0]
	return firstErr(
		equalInts("Zero", s.u64(s.b.Zero()), make([]uint64, s.g.Lanes64)),
		equalF32("ZeroF32", s.f32(s.b.ZeroF32()), make([]float32, s.g.Lanes32)),
		equalF64("ZeroF64", s.f64(s.b.ZeroF64()), make([]float64, s.g.Lanes64)),
		equalInts("Set8", s.u8(s.b.Set8(x8)), repeat(x8, s.g.Lanes8), x8),
		equalInts("Set16", s.u16(s.b.Set16(x16)), repeat(x16, s.g.Lanes16), x16),
		equalInts("Set32", s.u32(s.b.Set32(x32)), repeat(x32, s.g.Lanes32), x32),
		equalInts("Set64", s.u64(s.b.Set64(w)), repeat(w, s.g.Lanes64), w),
		equalF32("SetF32", s.f32(s.b.SetF32(f)), repeat(f, s.g.Lanes32), f),
		equalF64("SetF64", s.f64(s.b.SetF64(d)), repeat(d, s.g.Lanes64), d),
	)
}

// partial returns the first n elements of src padded with zeros to l.
func partial[T any](src []T, l int) []T {
	r := make([]T, l)
	copy(r, src)
	return r
}

func (s suite[I, F, D]) setN(r *rand.Rand) error {
	n := r.Intn(s.g.Lanes8 + 2)
	w := words(r, n)
	u16 := make([]uint16, n)
	u32 := make([]uint32, n)
	for i, x := range w {
		u16[i], u32[i] = uint16(x), uint32(x)
	}
	f := float32s(r, n)
	d := float64s(r, n)
	return firstErr(
		equalInts("SetN16", s.u16(s.b.SetN16(u16)), partial(u16, s.g.Lanes16), n),
		equalInts("SetN32", s.u32(s.b.SetN32(u32)), partial(u32, s.g.Lanes32), n),
		equalInts("SetN64", s.u64(s.b.SetN64(w)), partial(w, s.g.Lanes64), n),
		equalF32("SetNF32", s.f32(s.b.SetNF32(f)), partial(f, s.g.Lanes32), n),
		equalF64("SetNF64", s.f64(s.b.SetNF64(d)), partial(d, s.g.Lanes64), n),
	)
}

// loadStore round-trips through deliberately misaligned slices.
func (s suite[I, F, D]) loadStore(r *rand.Rand) error {
	g := s.g
	w := misaligned[uint64](g.Lanes64, g.Alignment)
	copy(w, words(r, g.Lanes64))
	b := misaligned[uint8](g.Lanes8, g.Alignment)
	for i := range b {
		b[i] = uint8(r.Uint32())
	}
	h := misaligned[uint16](g.Lanes16, g.Alignment)
	for i := range h {
		h[i] = uint16(r.Uint32())
	}
	q := misaligned[uint32](g.Lanes32, g.Alignment)
	for i := range q {
		q[i] = r.Uint32()
	}
	f := misaligned[float32](g.Lanes32, g.Alignment)
	copy(f, float32s(r, g.Lanes32))
	d := misaligned[float64](g.Lanes64, g.Alignment)
	copy(d, float64s(r, g.Lanes64))

	out8 := misaligned[uint8](g.Lanes8, g.Alignment)
	s.b.Store8(out8, s.b.Load8(b))
	out16 := misaligned[uint16](g.Lanes16, g.Alignment)
	s.b.Store16(out16, s.b.Load16(h))
	out32 := misaligned[uint32](g.Lanes32, g.Alignment)
	s.b.Store32(out32, s.b.Load32(q))
	out64 := misaligned[uint64](g.Lanes64, g.Alignment)
	s.b.Store64(out64, s.b.Load64(w))
	outF := misaligned[float32](g.Lanes32, g.Alignment)
	s.b.StoreF32(outF, s.b.LoadF32(f))
	outD := misaligned[float64](g.Lanes64, g.Alignment)
	s.b.StoreF64(outD, s.b.LoadF64(d))

	// A byte load viewed as 64-bit lanes is little-endian.
	le := make([]uint64, g.Lanes64)
	for i, x := range b {
		le[i/8] |= uint64(x) << (8 * (i % 8))
	}
	return firstErr(
		equalInts("Load8/Store8", out8, b),
		equalInts("Load16/Store16", out16, h),
		equalInts("Load32/Store32", out32, q),
		equalInts("Load64/Store64", out64, w),
		equalF32("LoadF32/StoreF32", outF, f),
		equalF64("LoadF64/StoreF64", outD, d),
		equalInts("Load8 as 64-bit lanes", s.u64(s.b.Load8(b)), le),
	)
}

func (s suite[I, F, D]) loadStoreAligned(r *rand.Rand) error {
	g := s.g
	b := aligned[uint8](g.Lanes8, g.Alignment)
	for i := range b {
		b[i] = uint8(r.Uint32())
	}
	h := aligned[uint16](g.Lanes16, g.Alignment)
	for i := range h {
		h[i] = uint16(r.Uint32())
	}
	q := aligned[uint32](g.Lanes32, g.Alignment)
	for i := range q {
		q[i] = r.Uint32()
	}
	w := aligned[uint64](g.Lanes64, g.Alignment)
	copy(w, words(r, g.Lanes64))
	f := aligned[float32](g.Lanes32, g.Alignment)
	copy(f, float32s(r, g.Lanes32))
	d := aligned[float64](g.Lanes64, g.Alignment)
	copy(d, float64s(r, g.Lanes64))

	out8 := aligned[uint8](g.Lanes8, g.Alignment)
	s.b.StoreA8(out8, s.b.LoadA8(b))
	out16 := aligned[uint16](g.Lanes16, g.Alignment)
	s.b.StoreA16(out16, s.b.LoadA16(h))
	out32 := aligned[uint32](g.Lanes32, g.Alignment)
	s.b.StoreA32(out32, s.b.LoadA32(q))
	out64 := aligned[uint64](g.Lanes64, g.Alignment)
	s.b.StoreA64(out64, s.b.LoadA64(w))
	outF := aligned[float32](g.Lanes32, g.Alignment)
	s.b.StoreAF32(outF, s.b.LoadAF32(f))
	outD := aligned[float64](g.Lanes64, g.Alignment)
	s.b.StoreAF64(outD, s.b.LoadAF64(d))
	return firstErr(
		equalInts("LoadA8/StoreA8", out8, b),
		equalInts("LoadA16/StoreA16", out16, h),
		equalInts("LoadA32/StoreA32", out32, q),
		equalInts("LoadA64/StoreA64", out64, w),
		equalF32("LoadAF32/StoreAF32", outF, f),
		equalF64("LoadAF64/StoreAF64", outD, d),
	)
}

func (s suite[I, F, D]) addSub(r *rand.Rand) error {
	a, b := s.randI(r), s.randI(r)
	a8, b8 := s.u8(a), s.u8(b)
	a16, b16 := s.u16(a), s.u16(b)
	a32, b32 := s.u32(a), s.u32(b)
	a64, b64 := s.u64(a), s.u64(b)
	return firstErr(
		equalInts("Add8", s.u8(s.b.Add8(a, b)), reference.Add(a8, b8), a8, b8),
		equalInts("Add16", s.u16(s.b.Add16(a, b)), reference.Add(a16, b16), a16, b16),
		equalInts("Add32", s.u32(s.b.Add32(a, b)), reference.Add(a32, b32), a32, b32),
		equalInts("Add64", s.u64(s.b.Add64(a, b)), reference.Add(a64, b64), a64, b64),
		equalInts("AddU32", s.u32(s.b.AddU32(a, b)), reference.Add(a32, b32), a32, b32),
		equalInts("AddU64", s.u64(s.b.AddU64(a, b)), reference.Add(a64, b64), a64, b64),
		equalInts("Sub8", s.u8(s.b.Sub8(a, b)), reference.Sub(a8, b8), a8, b8),
		equalInts("Sub16", s.u16(s.b.Sub16(a, b)), reference.Sub(a16, b16), a16, b16),
		equalInts("Sub32", s.u32(s.b.Sub32(a, b)), reference.Sub(a32, b32), a32, b32),
		equalInts("Sub64", s.u64(s.b.Sub64(a, b)), reference.Sub(a64, b64), a64, b64),
		equalInts("SubU32", s.u32(s.b.SubU32(a, b)), reference.Sub(a32, b32), a32, b32),
		equalInts("SubU64", s.u64(s.b.SubU64(a, b)), reference.Sub(a64, b64), a64, b64),
	)
}

func (s suite[I, F, D]) saturate(r *rand.Rand) error {
	a, b := s.randI(r), s.randI(r)
	a16, b16 := s.u16(a), s.u16(b)
	return firstErr(
		equalInts("AddU16", s.u16(s.b.AddU16(a, b)), reference.AddSatU16(a16, b16), a16, b16),
		equalInts("SubU16", s.u16(s.b.SubU16(a, b)), reference.SubSatU16(a16, b16), a16, b16),
	)
}

func (s suite[I, F, D]) logical(r *rand.Rand) error {
	a, b := s.randI(r), s.randI(r)
	a64, b64 := s.u64(a), s.u64(b)
	and, or, xor, andNot := make([]uint64, len(a64)), make([]uint64, len(a64)), make([]uint64, len(a64)), make([]uint64, len(a64))
	for i := range a64 {
		and[i] = a64[i] & b64[i]
		or[i] = a64[i] | b64[i]
		xor[i] = a64[i] ^ b64[i]
		andNot[i] = ^a64[i] & b64[i]
	}
	f, d := s.randF32(r), s.randF64(r)
	fm := s.u32(s.b.BitsF32(s.b.AndF32(f, b)))
	dm := s.u64(s.b.BitsF64(s.b.AndF64(d, b)))
	fBits := s.u32(s.b.BitsF32(f))
	dBits := s.u64(s.b.BitsF64(d))
	b32 := s.u32(b)
	wantF := make([]uint32, len(fBits))
	for i := range wantF {
		wantF[i] = fBits[i] & b32[i]
	}
	wantD := make([]uint64, len(dBits))
	for i := range wantD {
		wantD[i] = dBits[i] & b64[i]
	}
	return firstErr(
		equalInts("And", s.u64(s.b.And(a, b)), and, a64, b64),
		equalInts("Or", s.u64(s.b.Or(a, b)), or, a64, b64),
		equalInts("Xor", s.u64(s.b.Xor(a, b)), xor, a64, b64),
		equalInts("AndNot", s.u64(s.b.AndNot(a, b)), andNot, a64, b64),
		equalInts("AndF32", fm, wantF, fBits, b32),
		equalInts("AndF64", dm, wantD, dBits, b64),
	)
}

// shiftCounts covers zero, interior counts and counts at and beyond w.
func shiftCounts(r *rand.Rand, w uint) []uint {
	return []uint{0, 1, uint(r.Intn(int(w))), w - 1, w, w + 1, w + uint(r.Intn(64))}
}

func (s suite[I, F, D]) shift(r *rand.Rand) error {
	v := s.randI(r)
	v16, v32, v64 := s.u16(v), s.u32(v), s.u64(v)
	for _, n := range shiftCounts(r, 16) {
		if err := firstErr(
			equalInts("Shl16", s.u16(s.b.Shl16(v, n)), reference.Shl(v16, n), v16, n),
			equalInts("Shr16", s.u16(s.b.Shr16(v, n)), reference.Shr(v16, n), v16, n),
		); err != nil {
			return err
		}
	}
	for _, n := range shiftCounts(r, 32) {
		if err := firstErr(
			equalInts("Shl32", s.u32(s.b.Shl32(v, n)), reference.Shl(v32, n), v32, n),
			equalInts("Shr32", s.u32(s.b.Shr32(v, n)), reference.Shr(v32, n), v32, n),
		); err != nil {
			return err
		}
	}
	for _, n := range shiftCounts(r, 64) {
		if err := firstErr(
			equalInts("Shl64", s.u64(s.b.Shl64(v, n)), reference.Shl(v64, n), v64, n),
			equalInts("Shr64", s.u64(s.b.Shr64(v, n)), reference.Shr(v64, n), v64, n),
		); err != nil {
			return err
		}
	}
	return nil
}

func (s suite[I, F, D]) shiftBytes(r *rand.Rand) error {
	v := s.randI(r)
	v8 := s.u8(v)
	// Every count up to and past the register width.
	for n := uint(0); n <= uint(s.g.Bytes)+1; n++ {
		if err := firstErr(
			equalInts("ShlBytes", s.u8(s.b.ShlBytes(v, n)), reference.ShlBytes(v8, n), v8, n),
			equalInts("ShrBytes", s.u8(s.b.ShrBytes(v, n)), reference.ShrBytes(v8, n), v8, n),
		); err != nil {
			return err
		}
	}
	big := uint(s.g.Bytes) + uint(r.Intn(1000))
	if got := s.u8(s.b.ShlBytes(v, big)); !slices.Equal(got, make([]uint8, s.g.Bytes)) {
		return mismatch("ShlBytes", 0, got, "zero", big)
	}
	return nil
}
