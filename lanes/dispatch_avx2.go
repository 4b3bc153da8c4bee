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

//go:build lanes_avx2 || (!lanes_avx512 && !lanes_sse4 && !lanes_mmx && !lanes_scalar && amd64.v3 && !amd64.v4)

package lanes

import "github.com/ajroetker/go-lanes/lanes/avx2"

const level = LevelAVX2

// Register types of the compiled backend.
type (
	backend  = avx2.Backend
	Int      = avx2.Int
	Float32s = avx2.F32
	Float64s = avx2.F64
)

// Register geometry of the compiled backend.
const (
	RegisterBits  = avx2.Bits
	RegisterBytes = avx2.Bytes
	Lanes8        = avx2.Lanes8
	Lanes16       = avx2.Lanes16
	Lanes32       = avx2.Lanes32
	Lanes64       = avx2.Lanes64
	Alignment     = avx2.Alignment
)
