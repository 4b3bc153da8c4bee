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

//go:build lanes_sse4 || (!lanes_avx512 && !lanes_avx2 && !lanes_mmx && !lanes_scalar && amd64.v2 && !amd64.v3)

package lanes

import "github.com/ajroetker/go-lanes/lanes/sse4"

const level = LevelSSE4

// Register types of the compiled backend.
type (
	backend  = sse4.Backend
	Int      = sse4.Int
	Float32s = sse4.F32
	Float64s = sse4.F64
)

// Register geometry of the compiled backend.
const (
	RegisterBits  = sse4.Bits
	RegisterBytes = sse4.Bytes
	Lanes8        = sse4.Lanes8
	Lanes16       = sse4.Lanes16
	Lanes32       = sse4.Lanes32
	Lanes64       = sse4.Lanes64
	Alignment     = sse4.Alignment
)
