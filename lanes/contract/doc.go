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

// Package contract defines the operation set shared by every go-lanes
// backend.
//
// A backend is a zero-size type whose methods implement Ops for its own
// register types. Each backend package asserts
//
//	var _ contract.Ops[Int, F32, F64] = Backend{}
//
// so an operation or type combination missing from a backend is a compile
// error, never a runtime failure. The lanes package calls the methods on the
// concrete type selected by build tags, which keeps the calls static and
// inlinable; the interface itself is only used by generic test and
// verification code.
//
// Lane layout is identical across backends: lane k of width w occupies bits
// [k*w, (k+1)*w) of the register, with the register viewed as little-endian
// 64-bit words.
package contract
