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

//go:build lanes_mmx || (!lanes_avx512 && !lanes_avx2 && !lanes_sse4 && !lanes_scalar && ((amd64 && !amd64.v2) || 386))

package lanes

import "github.com/ajroetker/go-lanes/lanes/mmx"

const level = LevelMMX

// Register types of the compiled backend.
type (
	backend  = mmx.Backend
	Int      = mmx.Int
	Float32s = mmx.F32
	Float64s = mmx.F64
)

// Register geometry of the compiled backend.
const (
	RegisterBits  = mmx.Bits
	RegisterBytes = mmx.Bytes
	Lanes8        = mmx.Lanes8
	Lanes16       = mmx.Lanes16
	Lanes32       = mmx.Lanes32
	Lanes64       = mmx.Lanes64
	Alignment     = mmx.Alignment
)
