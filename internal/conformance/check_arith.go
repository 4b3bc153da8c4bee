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

func (s suite[I, F, D]) floatArith(r *rand.Rand) error {
	a, b := s.randF32(r), s.randF32(r)
	af, bf := s.f32(a), s.f32(b)
	x, y := s.randF64(r), s.randF64(r)
	xd, yd := s.f64(x), s.f64(y)
	return firstErr(
		equalF32("AddF32", s.f32(s.b.AddF32(a, b)), reference.AddF32(af, bf), af, bf),
		equalF32("SubF32", s.f32(s.b.SubF32(a, b)), reference.SubF32(af, bf), af, bf),
		equalF32("MulF32", s.f32(s.b.MulF32(a, b)), reference.MulF32(af, bf), af, bf),
		equalF64("AddF64", s.f64(s.b.AddF64(x, y)), reference.AddF64(xd, yd), xd, yd),
		equalF64("SubF64", s.f64(s.b.SubF64(x, y)), reference.SubF64(xd, yd), xd, yd),
		equalF64("MulF64", s.f64(s.b.MulF64(x, y)), reference.MulF64(xd, yd), xd, yd),
	)
}

// mulAdd compares against the fused or unfused model the backend declares.
func (s suite[I, F, D]) mulAdd(r *rand.Rand) error {
	fused := s.g.FusedMulAdd
	a, b, c := s.randF32(r), s.randF32(r), s.randF32(r)
	af, bf, cf := s.f32(a), s.f32(b), s.f32(c)
	x, y, z := s.randF64(r), s.randF64(r), s.randF64(r)
	xd, yd, zd := s.f64(x), s.f64(y), s.f64(z)
	return firstErr(
		equalF32("FmaddF32", s.f32(s.b.FmaddF32(a, b, c)), reference.FmaF32(af, bf, cf, fused, false), af, bf, cf),
		equalF32("FmsubF32", s.f32(s.b.FmsubF32(a, b, c)), reference.FmaF32(af, bf, cf, fused, true), af, bf, cf),
		equalF64("FmaddF64", s.f64(s.b.FmaddF64(x, y, z)), reference.FmaF64(xd, yd, zd, fused, false), xd, yd, zd),
		equalF64("FmsubF64", s.f64(s.b.FmsubF64(x, y, z)), reference.FmaF64(xd, yd, zd, fused, true), xd, yd, zd),
	)
}

func (s suite[I, F, D]) mul(r *rand.Rand) error {
	a, b := s.randI(r), s.randI(r)
	a16, b16 := s.u16(a), s.u16(b)
	a32, b32 := s.u32(a), s.u32(b)
	a64, b64 := s.u64(a), s.u64(b)
	if err := firstErr(
		equalInts("Mul16", s.u16(s.b.Mul16(a, b)), reference.Mul(a16, b16), a16, b16),
		equalInts("MulU16", s.u16(s.b.MulU16(a, b)), reference.Mul(a16, b16), a16, b16),
		equalInts("Mul32", s.u32(s.b.Mul32(a, b)), reference.Mul(a32, b32), a32, b32),
		equalInts("MulU32", s.u32(s.b.MulU32(a, b)), reference.Mul(a32, b32), a32, b32),
		equalInts("Mul64", s.u64(s.b.Mul64(a, b)), reference.Mul(a64, b64), a64, b64),
		equalInts("MulU64", s.u64(s.b.MulU64(a, b)), reference.Mul(a64, b64), a64, b64),
	); err != nil {
		return err
	}
	return s.mul64Boundary()
}

// mul64Boundary runs every pair of Boundary64 values through Mul64.
func (s suite[I, F, D]) mul64Boundary() error {
	n := len(Boundary64)
	xs := make([]uint64, 0, n*n)
	ys := make([]uint64, 0, n*n)
	for _, x := range Boundary64 {
		for _, y := range Boundary64 {
			xs = append(xs, x)
			ys = append(ys, y)
		}
	}
	l := s.g.Lanes64
	for i := 0; i < len(xs); i += l {
		a := s.b.SetN64(xs[i:min(i+l, len(xs))])
		b := s.b.SetN64(ys[i:min(i+l, len(ys))])
		got := s.u64(s.b.Mul64(a, b))
		for j := range l {
			if i+j >= len(xs) {
				break
			}
			if want := reference.Mul64(xs[i+j], ys[i+j]); got[j] != want {
				return mismatch("Mul64", j, got[j], want, xs[i+j], ys[i+j])
			}
		}
	}
	return nil
}

func (s suite[I, F, D]) mulWiden(r *rand.Rand) error {
	a, b := s.randI(r), s.randI(r)
	a16, b16 := s.u16(a), s.u16(b)
	a32, b32 := s.u32(a), s.u32(b)
	wantU16 := reference.MulWidenU16(a16, b16)
	if !s.g.ExactWidenU16 {
		wantU16 = reference.MulWidenU16SignedHigh(a16, b16)
	}
	return firstErr(
		equalInts("MulWiden16", s.u32(s.b.MulWiden16(a, b)), reference.MulWidenS16(a16, b16), a16, b16),
		equalInts("MulWidenU16", s.u32(s.b.MulWidenU16(a, b)), wantU16, a16, b16),
		equalInts("MulWiden32", s.u64(s.b.MulWiden32(a, b)), reference.MulWidenS32(a32, b32), a32, b32),
		equalInts("MulWidenU32", s.u64(s.b.MulWidenU32(a, b)), reference.MulWidenU32(a32, b32), a32, b32),
	)
}
