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

import "unsafe"

// MaxLanes returns how many elements of type T fit in one register of the
// compiled backend. For example, with avx2 (32 bytes):
//   - float32, uint32: 8 lanes
//   - int64, float64: 4 lanes
func MaxLanes[T Elem]() int {
	var zero T
	return RegisterBytes / int(unsafe.Sizeof(zero))
}

// ProcessWithTail splits [0, size) into whole registers of T and a tail.
//
// It calls:
//   - fullFn(offset) for each whole register starting at offset
//   - tailFn(offset, count) once for the remaining count < MaxLanes elements
//
// Example:
//
//	lanes.ProcessWithTail[uint32](len(data),
//	    func(offset int) {
//	        v := lanes.Load32(data[offset:])
//	        lanes.Store32(out[offset:], lanes.Add32(v, v))
//	    },
//	    func(offset, count int) {
//	        v := lanes.SetN32(data[offset : offset+count])
//	        tmp := make([]uint32, lanes.Lanes32)
//	        lanes.Store32(tmp, lanes.Add32(v, v))
//	        copy(out[offset:], tmp[:count])
//	    },
//	)
func ProcessWithTail[T Elem](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	maxLanes := MaxLanes[T]()

	fullVectors := size / maxLanes
	for i := range fullVectors {
		fullFn(i * maxLanes)
	}

	if remaining := size % maxLanes; remaining > 0 {
		tailFn(fullVectors*maxLanes, remaining)
	}
}

// ProcessWithTailOverlap is ProcessWithTail without a tail function: the
// last register is re-processed so that it ends at size. fullFn must be
// idempotent for the overlapping elements, and size must be at least
// MaxLanes.
func ProcessWithTailOverlap[T Elem](size int, fullFn func(offset int)) {
	maxLanes := MaxLanes[T]()

	fullVectors := size / maxLanes
	for i := range fullVectors {
		fullFn(i * maxLanes)
	}

	if size%maxLanes > 0 && fullVectors > 0 {
		fullFn(size - maxLanes)
	}
}

// AlignedSize rounds size up to a multiple of the register width in T.
func AlignedSize[T Elem](size int) int {
	maxLanes := MaxLanes[T]()
	return ((size + maxLanes - 1) / maxLanes) * maxLanes
}

// IsAligned reports whether size is a multiple of the register width in T.
func IsAligned[T Elem](size int) bool {
	return size%MaxLanes[T]() == 0
}
