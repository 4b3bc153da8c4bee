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

//go:build amd64 || 386

package features

import (
	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

func detect() Set {
	return Set{
		Vendor:    cpuid.CPU.VendorString,
		CacheLine: cpuid.CPU.CacheLine,
		MMX:       cpuid.CPU.Supports(cpuid.MMX),
		SSE2:      cpu.X86.HasSSE2,
		SSE41:     cpu.X86.HasSSE41,
		SSE42:     cpu.X86.HasSSE42,
		AVX:       cpu.X86.HasAVX,
		AVX2:      cpu.X86.HasAVX2,
		FMA:       cpu.X86.HasFMA,
		AVX512F:   cpu.X86.HasAVX512F,
		AVX512DQ:  cpu.X86.HasAVX512DQ,
		AVX512BW:  cpu.X86.HasAVX512BW,
		AVX512VL:  cpu.X86.HasAVX512VL,
	}
}
