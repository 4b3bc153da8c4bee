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

// Package mmx is the 64-bit backend, built from the original MMX integer
// instructions: packed add/sub (with unsigned word saturation), pmullw and
// pmulhw, logical ops, per-lane and whole-register shifts, and the unpack
// family. There is no shuffle, no 64-bit add and no unsigned multiply; those
// are synthesized from what exists. Float lanes go through the scalar FPU.
//
// MulWidenU16 is computed with the signed pmulhw and is wrong in the high
// half when an operand has bit 15 set. Geometry reports this as
// ExactWidenU16 = false. Mul32, Mul64 and MulWidenU32 correct the signed
// high halves and are exact.
package mmx

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

// Int is an mm register viewed as integer lanes of any width.
type Int [Lanes64]uint64

// F32 is a register of float32 lanes.
type F32 [Lanes32]float32

// F64 is a register of float64 lanes.
type F64 [Lanes64]float64

// Backend implements contract.Ops on MMX.
type Backend struct{}

var _ contract.Ops[Int, F32, F64] = Backend{}

var geometry = contract.Geometry{
	Name:      "mmx",
	Bits:      Bits,
	Bytes:     Bytes,
	Lanes8:    Lanes8,
	Lanes16:   Lanes16,
	Lanes32:   Lanes32,
	Lanes64:   Lanes64,
	Alignment: Alignment,
}

func (Backend) Geometry() contract.Geometry { return geometry }

func bitsF32(v F32) mm {
	return punpckldq(movd(math.Float32bits(v[0])), movd(math.Float32bits(v[1])))
}

func fromBitsF32(a mm) F32 {
	return F32{math.Float32frombits(movdTo(a)), math.Float32frombits(movdTo(psrlq(a, 32)))}
}
