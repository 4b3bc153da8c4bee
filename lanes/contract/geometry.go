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

package contract

import (
	"errors"
	"fmt"
)

// ErrGeometry is returned by Geometry.Validate for inconsistent constants.
var ErrGeometry = errors.New("contract: inconsistent register geometry")

// Geometry describes a backend's register width and the capabilities that
// decide how some operations are emulated.
type Geometry struct {
	// Name is the backend name ("scalar", "mmx", "sse4", "avx2", "avx512").
	Name string

	Bits      int
	Bytes     int
	Lanes8    int
	Lanes16   int
	Lanes32   int
	Lanes64   int
	Alignment int

	// FusedMulAdd is set when Fmadd/Fmsub round once.
	FusedMulAdd bool

	// NativeMul64 is set when the 64-bit lane multiply is a single
	// instruction rather than a synthesis from narrower products.
	NativeMul64 bool

	// NativeU64Float is set when unsigned 64-bit to float conversion is a
	// single lane-wise instruction rather than scalar extraction.
	NativeU64Float bool

	// ExactWidenU16 is false for backends whose unsigned 16->32 widening
	// multiply is computed with a signed high-half multiply.
	ExactWidenU16 bool
}

// Validate checks bytes = lanes8 = 2*lanes16 = 4*lanes32 = 8*lanes64, that the
// alignment equals the register width and that the width is a power of two.
func (g Geometry) Validate() error {
	switch {
	case g.Bits != g.Bytes*8:
		return fmt.Errorf("%w: %s has %d bits but %d bytes", ErrGeometry, g.Name, g.Bits, g.Bytes)
	case g.Bytes <= 0 || g.Bytes&(g.Bytes-1) != 0:
		return fmt.Errorf("%w: %s width %d is not a power of two", ErrGeometry, g.Name, g.Bytes)
	case g.Lanes8 != g.Bytes, g.Lanes16*2 != g.Bytes, g.Lanes32*4 != g.Bytes, g.Lanes64*8 != g.Bytes:
		return fmt.Errorf("%w: %s lanes 8/16/32/64 = %d/%d/%d/%d for %d bytes",
			ErrGeometry, g.Name, g.Lanes8, g.Lanes16, g.Lanes32, g.Lanes64, g.Bytes)
	case g.Alignment != g.Bytes:
		return fmt.Errorf("%w: %s alignment %d differs from width %d", ErrGeometry, g.Name, g.Alignment, g.Bytes)
	}
	return nil
}

// Words returns the number of 64-bit words in a register.
func (g Geometry) Words() int { return g.Lanes64 }

// String implements fmt.Stringer.
func (g Geometry) String() string {
	return fmt.Sprintf("%s(%d-bit)", g.Name, g.Bits)
}
