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

	"github.com/ajroetker/go-lanes/lanes/contract"
)

// Case is one operation family. Check runs a single randomized trial.
type Case struct {
	Name  string
	Check func(r *rand.Rand) error
}

// suite binds a backend to lane-view helpers.
type suite[I, F, D any] struct {
	b contract.Ops[I, F, D]
	g contract.Geometry
}

func (s suite[I, F, D]) u8(v I) []uint8 {
	d := make([]uint8, s.g.Lanes8)
	s.b.Store8(d, v)
	return d
}

func (s suite[I, F, D]) u16(v I) []uint16 {
	d := make([]uint16, s.g.Lanes16)
	s.b.Store16(d, v)
	return d
}

func (s suite[I, F, D]) u32(v I) []uint32 {
	d := make([]uint32, s.g.Lanes32)
	s.b.Store32(d, v)
	return d
}

func (s suite[I, F, D]) u64(v I) []uint64 {
	d := make([]uint64, s.g.Lanes64)
	s.b.Store64(d, v)
	return d
}

func (s suite[I, F, D]) f32(v F) []float32 {
	d := make([]float32, s.g.Lanes32)
	s.b.StoreF32(d, v)
	return d
}

func (s suite[I, F, D]) f64(v D) []float64 {
	d := make([]float64, s.g.Lanes64)
	s.b.StoreF64(d, v)
	return d
}

func (s suite[I, F, D]) randI(r *rand.Rand) I {
	return s.b.Load64(words(r, s.g.Lanes64))
}

func (s suite[I, F, D]) randF32(r *rand.Rand) F {
	return s.b.LoadF32(float32s(r, s.g.Lanes32))
}

func (s suite[I, F, D]) randF64(r *rand.Rand) D {
	return s.b.LoadF64(float64s(r, s.g.Lanes64))
}

// Cases returns every operation family for b.
func Cases[I, F, D any](b contract.Ops[I, F, D]) []Case {
	s := suite[I, F, D]{b: b, g: b.Geometry()}
	return []Case{
		{"Geometry", s.geometry},
		{"Set", s.set},
		{"SetN", s.setN},
		{"LoadStore", s.loadStore},
		{"LoadStoreAligned", s.loadStoreAligned},
		{"AddSub", s.addSub},
		{"Saturate", s.saturate},
		{"FloatArith", s.floatArith},
		{"MulAdd", s.mulAdd},
		{"Mul", s.mul},
		{"MulWiden", s.mulWiden},
		{"Logical", s.logical},
		{"Shift", s.shift},
		{"ShiftBytes", s.shiftBytes},
		{"Merge", s.merge},
		{"Pack", s.pack},
		{"Shuffle", s.shuffle},
		{"Idioms", s.idioms},
		{"Convert", s.convert},
		{"Cast", s.cast},
		{"Reduce", s.reduce},
	}
}
