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
	"math/rand"

	"github.com/ajroetker/go-lanes/internal/reference"
)

// Integer halves are compared through the 32-bit view, which splits every
// register width into two equal halves.

func (s suite[I, F, D]) merge(r *rand.Rand) error {
	a, b := s.randI(r), s.randI(r)
	a32, b32 := s.u32(a), s.u32(b)
	lo, hi := s.b.MergeLo(a, b), s.b.MergeHi(a, b)
	f, g := s.randF32(r), s.randF32(r)
	ff, gf := s.f32(f), s.f32(g)
	x, y := s.randF64(r), s.randF64(r)
	xd, yd := s.f64(x), s.f64(y)
	return firstErr(
		equalInts("MergeLo", s.u32(lo), reference.MergeLo(a32, b32), a32, b32),
		equalInts("MergeHi", s.u32(hi), reference.MergeHi(a32, b32), a32, b32),
		equalInts("Unmerge a", s.u32(s.b.MergeLo(lo, hi)), a32, a32, b32),
		equalInts("Unmerge b", s.u32(s.b.MergeHi(lo, hi)), b32, a32, b32),
		equalF32("MergeLoF32", s.f32(s.b.MergeLoF32(f, g)), reference.MergeLo(ff, gf), ff, gf),
		equalF32("MergeHiF32", s.f32(s.b.MergeHiF32(f, g)), reference.MergeHi(ff, gf), ff, gf),
		equalF64("MergeLoF64", s.f64(s.b.MergeLoF64(x, y)), reference.MergeLo(xd, yd), xd, yd),
		equalF64("MergeHiF64", s.f64(s.b.MergeHiF64(x, y)), reference.MergeHi(xd, yd), xd, yd),
	)
}

func (s suite[I, F, D]) pack(r *rand.Rand) error {
	a, b := s.randI(r), s.randI(r)
	a8, a16, a32, b32 := s.u8(a), s.u16(a), s.u32(a), s.u32(b)
	even, odd := s.b.PackMerge32(a, b)
	wantEven, wantOdd := reference.PackMerge(a32, b32)
	return firstErr(
		equalInts("Pack8", s.u8(s.b.Pack8(a)), reference.Pack(a8), a8),
		equalInts("Pack16", s.u16(s.b.Pack16(a)), reference.Pack(a16), a16),
		equalInts("Pack32", s.u32(s.b.Pack32(a)), reference.Pack(a32), a32),
		equalInts("PackMerge32 even", s.u32(even), wantEven, a32, b32),
		equalInts("PackMerge32 odd", s.u32(odd), wantOdd, a32, b32),
	)
}

func (s suite[I, F, D]) shuffle(r *rand.Rand) error {
	c := uint8(r.Uint32())
	v := s.randI(r)
	v16, v32 := s.u16(v), s.u32(v)
	f := s.randF32(r)
	ff := s.f32(f)
	d := s.randF64(r)
	dd := s.f64(d)
	return firstErr(
		equalInts("Shuffle16", s.u16(s.b.Shuffle16(v, c)), reference.Shuffle4(v16, c), v16, c),
		equalInts("Shuffle32", s.u32(s.b.Shuffle32(v, c)), reference.Shuffle4(v32, c), v32, c),
		equalF32("ShuffleF32", s.f32(s.b.ShuffleF32(f, c)), reference.Shuffle4(ff, c), ff, c),
		equalF64("ShuffleF64", s.f64(s.b.ShuffleF64(d, c)), reference.Shuffle2(dd, c), dd, c),
	)
}

func (s suite[I, F, D]) idioms(r *rand.Rand) error {
	v := s.randI(r)
	v16, v32, v64 := s.u16(v), s.u32(v), s.u64(v)
	f := s.randF32(r)
	ff := s.f32(f)
	d := s.randF64(r)
	dd := s.f64(d)
	return firstErr(
		equalInts("SwapHalves", s.u32(s.b.SwapHalves(v)), reference.SwapHalves(v32), v32),
		equalF32("SwapHalvesF32", s.f32(s.b.SwapHalvesF32(f)), reference.SwapHalves(ff), ff),
		equalF64("SwapHalvesF64", s.f64(s.b.SwapHalvesF64(d)), reference.SwapHalves(dd), dd),
		equalInts("SwapPairs16", s.u16(s.b.SwapPairs16(v)), reference.SwapPairs(v16), v16),
		equalInts("SwapPairs32", s.u32(s.b.SwapPairs32(v)), reference.SwapPairs(v32), v32),
		equalInts("SwapPairs64", s.u64(s.b.SwapPairs64(v)), reference.SwapPairs(v64), v64),
		equalInts("DupLo", s.u32(s.b.DupLo(v)), reference.DupLo(v32), v32),
		equalInts("DupHi", s.u32(s.b.DupHi(v)), reference.DupHi(v32), v32),
		equalF32("DupLoF32", s.f32(s.b.DupLoF32(f)), reference.DupLo(ff), ff),
		equalF32("DupHiF32", s.f32(s.b.DupHiF32(f)), reference.DupHi(ff), ff),
		equalF64("DupLoF64", s.f64(s.b.DupLoF64(d)), reference.DupLo(dd), dd),
		equalF64("DupHiF64", s.f64(s.b.DupHiF64(d)), reference.DupHi(dd), dd),
	)
}
