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

package crosscheck

import (
	"fmt"

	"github.com/ajroetker/go-lanes/internal/conformance"
	"github.com/ajroetker/go-lanes/lanes/avx2"
	"github.com/ajroetker/go-lanes/lanes/avx512"
	"github.com/ajroetker/go-lanes/lanes/contract"
	"github.com/ajroetker/go-lanes/lanes/mmx"
	"github.com/ajroetker/go-lanes/lanes/scalar"
	"github.com/ajroetker/go-lanes/lanes/sse4"
)

// Backend erases a backend's register types so that all of them can be
// driven from one list.
type Backend struct {
	Name     string
	Geometry contract.Geometry
	Cases    func() []conformance.Case
	Stream   func(Input) []Output
}

func erase[I, F, D any](b contract.Ops[I, F, D]) Backend {
	return Backend{
		Name:     b.Geometry().Name,
		Geometry: b.Geometry(),
		Cases:    func() []conformance.Case { return conformance.Cases(b) },
		Stream:   func(in Input) []Output { return Stream(b, in) },
	}
}

// Backends returns every backend, narrowest first. All of them are pure Go
// and run on any host, whichever one the lanes package was built with.
func Backends() []Backend {
	return []Backend{
		erase[scalar.Int, scalar.F32, scalar.F64](scalar.Backend{}),
		erase[mmx.Int, mmx.F32, mmx.F64](mmx.Backend{}),
		erase[sse4.Int, sse4.F32, sse4.F64](sse4.Backend{}),
		erase[avx2.Int, avx2.F32, avx2.F64](avx2.Backend{}),
		erase[avx512.Int, avx512.F32, avx512.F64](avx512.Backend{}),
	}
}

// Check streams in through every backend in bs and compares each pair.
func Check(bs []Backend, in Input) error {
	outs := make([][]Output, len(bs))
	for i, b := range bs {
		outs[i] = b.Stream(in)
	}
	for i := range bs {
		for j := i + 1; j < len(bs); j++ {
			if err := Compare(bs[i].Name, outs[i], bs[j].Name, outs[j]); err != nil {
				return fmt.Errorf("stream of %d elements: %w", len(in.U32.A), err)
			}
		}
	}
	return nil
}
