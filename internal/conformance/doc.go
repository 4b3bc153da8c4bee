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

// Package conformance checks a backend against the lane-wise reference
// semantics in internal/reference.
//
// Cases is generic over the backend's register types, so the same suite
// runs against every width. Each Case draws random register contents from
// the supplied source, runs one operation family and reports the first
// mismatch as an error. Integer results must match exactly; float results
// must match the reference model bit for bit, where the model follows the
// backend's declared capabilities (fused or unfused multiply-add, exact or
// signed-high unsigned widening).
package conformance
