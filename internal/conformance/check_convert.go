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
	"math"
	"math/rand"

	"github.com/ajroetker/go-lanes/internal/reference"
)

func (s suite[I, F, D]) convert(r *rand.Rand) error {
	v := s.randI(r)
	v32, v64 := s.u32(v), s.u64(v)
	return firstErr(
		equalF32("CvtI32F32", s.f32(s.b.CvtI32F32(v)), reference.CvtI32F32(v32), v32),
		equalF64("CvtI32F64", s.f64(s.b.CvtI32F64(v)), reference.CvtI32F64(v32), v32),
		equalF32("CvtU64F32", s.f32(s.b.CvtU64F32(v)), reference.CvtU64F32(v64, s.g.Lanes32), v64),
		equalF64("CvtU64F64", s.f64(s.b.CvtU64F64(v)), reference.CvtU64F64(v64), v64),
	)
}

func (s suite[I, F, D]) cast(r *rand.Rand) error {
	f := s.randF32(r)
	ff := s.f32(f)
	d := s.randF64(r)
	dd := s.f64(d)
	fb := make([]uint32, len(ff))
	for i, x := range ff {
		fb[i] = math.Float32bits(x)
	}
	db := make([]uint64, len(dd))
	for i, x := range dd {
		db[i] = math.Float64bits(x)
	}
	return firstErr(
		equalInts("BitsF32", s.u32(s.b.BitsF32(f)), fb, ff),
		equalInts("BitsF64", s.u64(s.b.BitsF64(d)), db, dd),
		equalF32("FromBitsF32", s.f32(s.b.FromBitsF32(s.b.BitsF32(f))), ff, ff),
		equalF64("FromBitsF64", s.f64(s.b.FromBitsF64(s.b.BitsF64(d))), dd, dd),
	)
}

func (s suite[I, F, D]) reduce(r *rand.Rand) error {
	v := s.randI(r)
	v32, v64 := s.u32(v), s.u64(v)
	f := s.randF32(r)
	ff := s.f32(f)
	d := s.randF64(r)
	dd := s.f64(d)
	if got, want := s.b.ReduceAdd32(v), reference.TreeSum(v32); got != want {
		return mismatch("ReduceAdd32", 0, got, want, v32)
	}
	if got, want := s.b.ReduceAdd64(v), reference.TreeSum(v64); got != want {
		return mismatch("ReduceAdd64", 0, got, want, v64)
	}
	if got, want := s.b.ReduceAddF32(f), reference.TreeSum(ff); math.Float32bits(got) != math.Float32bits(want) {
		return mismatch("ReduceAddF32", 0, got, want, ff)
	}
	if got, want := s.b.ReduceAddF64(d), reference.TreeSum(dd); math.Float64bits(got) != math.Float64bits(want) {
		return mismatch("ReduceAddF64", 0, got, want, dd)
	}
	return nil
}
