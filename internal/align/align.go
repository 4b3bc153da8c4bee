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

// Package align holds the alignment assertion used by the aligned
// load/store forms of every backend.
//
// In regular builds Check compiles to nothing: the vector layer performs no
// runtime alignment validation. Building with -tags lanes_debug turns it into
// a panic on misaligned addresses, which is the closest Go analogue of the
// hardware fault an aligned vector move raises.
package align

import "unsafe"

// Offset returns the distance of p past the previous multiple of n.
// n must be a power of two.
func Offset(p unsafe.Pointer, n uintptr) uintptr {
	return uintptr(p) & (n - 1)
}

// Is reports whether p is a multiple of n. n must be a power of two.
func Is(p unsafe.Pointer, n uintptr) bool {
	return Offset(p, n) == 0
}
