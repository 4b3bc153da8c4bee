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

// Package sse4 is the 128-bit backend (SSE2 through SSE4.2, with SSSE3
// pshufb).
//
// Missing from this tier and synthesized here:
//   - 64-bit multiply: pmuludq for the low product plus pmulld on
//     dword-swapped operands for the cross terms.
//   - unsigned 64-bit to float conversion: pextrq and a signed scalar
//     convert per lane.
//   - fused multiply-add: none; the product is rounded before the add.
package sse4

import "github.com/ajroetker/go-lanes/lanes/contract"

// Register geometry.
const (
	Bits      = 128
	Bytes     = Bits / 8
	Lanes8    = Bytes
	Lanes16   = Bytes / 2
	Lanes32   = Bytes / 4
	Lanes64   = Bytes / 8
	Alignment = Bytes
)

// Int is an xmm register viewed as integer lanes of any width.
type Int [Lanes64]uint64

// F32 is an xmm register of float32 lanes.
type F32 [Lanes32]float32

// F64 is an xmm register of float64 lanes.
type F64 [Lanes64]float64

// Backend implements contract.Ops on SSE4.
type Backend struct{}

var _ contract.Ops[Int, F32, F64] = Backend{}

var geometry = contract.Geometry{
	Name:          "sse4",
	Bits:          Bits,
	Bytes:         Bytes,
	Lanes8:        Lanes8,
	Lanes16:       Lanes16,
	Lanes32:       Lanes32,
	Lanes64:       Lanes64,
	Alignment:     Alignment,
	ExactWidenU16: true,
}

func (Backend) Geometry() contract.Geometry { return geometry }
