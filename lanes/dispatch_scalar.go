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

//go:build lanes_scalar || (!lanes_avx512 && !lanes_avx2 && !lanes_sse4 && !lanes_mmx && !amd64 && !386)

package lanes

import "github.com/ajroetker/go-lanes/lanes/scalar"

const level = LevelScalar

// Register types of the compiled backend.
type (
	backend  = scalar.Backend
	Int      = scalar.Int
	Float32s = scalar.F32
	Float64s = scalar.F64
)

// Register geometry of the compiled backend.
const (
	RegisterBits  = scalar.Bits
	RegisterBytes = scalar.Bytes
	Lanes8        = scalar.Lanes8
	Lanes16       = scalar.Lanes16
	Lanes32       = scalar.Lanes32
	Lanes64       = scalar.Lanes64
	Alignment     = scalar.Alignment
)
