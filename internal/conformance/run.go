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
	"fmt"
	"math/rand"
	"testing"

	"github.com/ajroetker/go-lanes/lanes/contract"
)

// Run executes every case iterations times with a source seeded by seed
// and returns the first failure, annotated with the case name.
func Run(cases []Case, iterations int, seed int64) error {
	r := rand.New(rand.NewSource(seed))
	for _, c := range cases {
		if err := RunCase(c, r, iterations); err != nil {
			return err
		}
	}
	return nil
}

// RunCase executes one case iterations times.
func RunCase(c Case, r *rand.Rand, iterations int) error {
	for i := range iterations {
		if err := c.Check(r); err != nil {
			return fmt.Errorf("%s (iteration %d): %w", c.Name, i, err)
		}
	}
	return nil
}

// Test runs the suite against b as subtests of t, one per case.
func Test[I, F, D any](t *testing.T, b contract.Ops[I, F, D], iterations int) {
	t.Helper()
	for i, c := range Cases(b) {
		t.Run(c.Name, func(t *testing.T) {
			r := rand.New(rand.NewSource(int64(i) + 1))
			if err := RunCase(c, r, iterations); err != nil {
				t.Fatal(err)
			}
		})
	}
}
