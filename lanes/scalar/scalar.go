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

// Package scalar is the universal baseline backend. It models a 64-bit
// register held in one general-purpose word and computes every lane with
// ordinary integer and float operations, so it runs on any architecture.
//
// Its lane counts equal those of the mmx backend; only the implementation
// strategy differs.
package scalar

import (
	"math"

	"github.com/ajroetker/go-lanes/lanes/contract"
)

// Register geometry.
const (
	Bits      = 64
	Bytes     = Bits / 8
	Lanes8    = Bytes
	Lanes16   = Bytes / 2
	Lanes32   = Bytes / 4
	Lanes64   = Bytes / 8
	Alignment = Bytes
)

// Int is a register viewed as integer lanes of any width.
type Int [Lanes64]uint64

// F32 is a register of float32 lanes.
type F32 [Lanes32]float32

// F64 is a register of float64 lanes.
type F64 [Lanes64]float64

// Backend implements contract.Ops for the scalar baseline.
type Backend struct{}

var _ contract.Ops[Int, F32, F64] = Backend{}

var geometry = contract.Geometry{
	Name:           "scalar",
	Bits:           Bits,
	Bytes:          Bytes,
	Lanes8:         Lanes8,
	Lanes16:        Lanes16,
	Lanes32:        Lanes32,
	Lanes64:        Lanes64,
	Alignment:      Alignment,
	NativeMul64:    true,
	NativeU64Float: true,
	ExactWidenU16:  true,
}

// Geometry returns the register geometry and capabilities.
func (Backend) Geometry() contract.Geometry { return geometry }

func lo32(v Int) uint32 { return uint32(v[0]) }
func hi32(v Int) uint32 { return uint32(v[0] >> 32) }

func join(lo, hi uint32) Int { return Int{uint64(lo) | uint64(hi)<<32} }

func bitsF32(v F32) Int { return join(math.Float32bits(v[0]), math.Float32bits(v[1])) }

func fromBitsF32(v Int) F32 {
	return F32{math.Float32frombits(lo32(v)), math.Float32frombits(hi32(v))}
}
