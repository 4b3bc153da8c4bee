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

package lanes

import (
	"unsafe"

	"github.com/ajroetker/go-lanes/internal/align"
)

// AlignedSlice returns a zeroed slice of n elements whose first element
// sits on an Alignment boundary, suitable for the LoadA and StoreA forms.
// The capacity is rounded up to whole registers so the last register can
// be loaded in full.
func AlignedSlice[T Elem](n int) []T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	c := AlignedSize[T](n)
	buf := make([]T, c+Alignment/size)
	off := align.Offset(unsafe.Pointer(unsafe.SliceData(buf)), Alignment)
	skip := 0
	if off != 0 {
		skip = (Alignment - int(off)) / size
	}
	return buf[skip : skip+n : skip+c]
}

// IsAlignedPtr reports whether s starts on an Alignment boundary.
func IsAlignedPtr[T Elem](s []T) bool {
	return align.Is(unsafe.Pointer(unsafe.SliceData(s)), Alignment)
}
