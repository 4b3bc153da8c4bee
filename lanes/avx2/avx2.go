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

// Package avx2 is the 256-bit backend (AVX2 with FMA3).
//
// Most AVX2 permutes work inside each 128-bit block, so whole-register
// operations need a cross-block step: byte shifts pair vperm2i128 with
// vpalignr, and packs finish with vpermq. The 64-bit multiply is
// synthesized from 32-bit multiplies as on sse4, and unsigned 64-bit to
// float conversion goes through scalar extraction.
package avx2

import "github.com/ajroetker/go-lanes/lanes/contract"

// Register geometry.
const (
	Bits      = 256
	Bytes     = Bits / 8
	Lanes8    = Bytes
	Lanes16   = Bytes / 2
	Lanes32   = Bytes / 4
	Lanes64   = Bytes / 8
	Alignment = Bytes
)

// Int is a ymm register viewed as integer lanes of any width.
type Int [Lanes64]uint64

// F32 is a ymm register of float32 lanes.
type F32 [Lanes32]float32

// F64 is a ymm register of float64 lanes.
type F64 [Lanes64]float64

// Backend implements contract.Ops on AVX2.
type Backend struct{}

var _ contract.Ops[Int, F32, F64] = Backend{}

var geometry = contract.Geometry{
	Name:          "avx2",
	Bits:          Bits,
	Bytes:         Bytes,
	Lanes8:        Lanes8,
	Lanes16:       Lanes16,
	Lanes32:       Lanes32,
	Lanes64:       Lanes64,
	Alignment:     Alignment,
	FusedMulAdd:   true,
	ExactWidenU16: true,
}

func (Backend) Geometry() contract.Geometry { return geometry }
