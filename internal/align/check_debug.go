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

//go:build lanes_debug

package align

import (
	"fmt"
	"unsafe"
)

// Enabled reports whether aligned accesses are validated.
const Enabled = true

// Check panics when p is not a multiple of n.
func Check(p unsafe.Pointer, n uintptr) {
	if off := Offset(p, n); off != 0 {
		panic(fmt.Sprintf("lanes: aligned access at %#x is %d bytes past a %d-byte boundary", uintptr(p), off, n))
	}
}
