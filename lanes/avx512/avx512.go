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

// Package avx512 is the 512-bit backend (AVX-512 F, DQ, BW and VL).
//
// This tier has native 64-bit multiply (vpmullq), unsigned 64-bit to float
// conversion (vcvtuqq2ps/pd) and full-register permutes by index vector,
// so it needs the fewest emulation sequences.
package avx512

import "github.com/ajroetker/go-lanes/lanes/contract"

// Register geometry.
const (
	Bits      = 512
	Bytes     = Bits / 8
	Lanes8    = Bytes
	Lanes16   = Bytes / 2
	Lanes32   = Bytes / 4
	Lanes64   = Bytes / 8
	Alignment = Bytes
)

// Int is a zmm register viewed as integer lanes of any width.
type Int [Lanes64]uint64

// F32 is a zmm register of float32 lanes.
type F32 [Lanes32]float32

// F64 is a zmm register of float64 lanes.
type F64 [Lanes64]float64

// Backend implements contract.Ops on AVX-512.
type Backend struct{}

var _ contract.Ops[Int, F32, F64] = Backend{}

var geometry = contract.Geometry{
	Name:           "avx512",
	Bits:           Bits,
	Bytes:          Bytes,
	Lanes8:         Lanes8,
	Lanes16:        Lanes16,
	Lanes32:        Lanes32,
	Lanes64:        Lanes64,
	Alignment:      Alignment,
	FusedMulAdd:    true,
	NativeMul64:    true,
	NativeU64Float: true,
	ExactWidenU16:  true,
}

func (Backend) Geometry() contract.Geometry { return geometry }
