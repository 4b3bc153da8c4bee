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

package conformance

import (
	"errors"
	"fmt"
	"math"
)

// ErrMismatch wraps every difference between a backend and the reference.
var ErrMismatch = errors.New("conformance: result differs from reference")

func mismatch(op string, lane int, got, want any, inputs ...any) error {
	return fmt.Errorf("%w: %s lane %d: got %#v, want %#v (inputs %v)", ErrMismatch, op, lane, got, want, inputs)
}

func equalInts[T comparable](op string, got, want []T, inputs ...any) error {
	if len(got) != len(want) {
		return fmt.Errorf("%w: %s: %d lanes, want %d", ErrMismatch, op, len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			return mismatch(op, i, got[i], want[i], inputs...)
		}
	}
	return nil
}

func equalF32(op string, got, want []float32, inputs ...any) error {
	if len(got) != len(want) {
		return fmt.Errorf("%w: %s: %d lanes, want %d", ErrMismatch, op, len(got), len(want))
	}
	for i := range got {
		g, w := got[i], want[i]
		if math.Float32bits(g) != math.Float32bits(w) && !(g != g && w != w) {
			return mismatch(op, i, g, w, inputs...)
		}
	}
	return nil
}

func equalF64(op string, got, want []float64, inputs ...any) error {
	if len(got) != len(want) {
		return fmt.Errorf("%w: %s: %d lanes, want %d", ErrMismatch, op, len(got), len(want))
	}
	for i := range got {
		g, w := got[i], want[i]
		if math.Float64bits(g) != math.Float64bits(w) && !(g != g && w != w) {
			return mismatch(op, i, g, w, inputs...)
		}
	}
	return nil
}

// firstErr returns the first non-nil error.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
