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

package swar

// U64ToF64 converts x using only a signed conversion, as instruction sets
// without an unsigned 64-bit convert do. Values with the top bit set are
// halved first, keeping the low bit as a sticky bit so the final rounding
// is unchanged, and doubled after.
func U64ToF64(x uint64) float64 {
	if int64(x) >= 0 {
		return float64(int64(x))
	}
	return float64(int64(x>>1|x&1)) * 2
}

// U64ToF32 is the float32 counterpart of U64ToF64.
func U64ToF32(x uint64) float32 {
	if int64(x) >= 0 {
		return float32(int64(x))
	}
	return float32(int64(x>>1|x&1)) * 2
}
