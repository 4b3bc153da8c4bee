package conformance_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-lanes/internal/conformance"
	"github.com/ajroetker/go-lanes/lanes/scalar"
)

// unmaskedF32 ignores the mask of the float32 And.
type unmaskedF32 struct{ scalar.Backend }

func (unmaskedF32) AndF32(a scalar.F32, _ scalar.Int) scalar.F32 { return a }

// unmaskedF64 ignores the mask of the float64 And.
type unmaskedF64 struct{ scalar.Backend }

func (unmaskedF64) AndF64(a scalar.F64, _ scalar.Int) scalar.F64 { return a }

func logicalCase(t *testing.T, cases []conformance.Case) conformance.Case {
	t.Helper()
	for _, c := range cases {
		if c.Name == "Logical" {
			return c
		}
	}
	t.Fatal("no Logical case")
	return conformance.Case{}
}

func TestRunScalar(t *testing.T) {
	cases := conformance.Cases[scalar.Int, scalar.F32, scalar.F64](scalar.Backend{})
	require.NoError(t, conformance.Run(cases, 50, 7))
}

func TestLogicalCatchesFloatMasks(t *testing.T) {
	tests := []struct {
		name  string
		cases []conformance.Case
		op    string
	}{
		{"f32", conformance.Cases[scalar.Int, scalar.F32, scalar.F64](unmaskedF32{}), "AndF32"},
		{"f64", conformance.Cases[scalar.Int, scalar.F32, scalar.F64](unmaskedF64{}), "AndF64"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := rand.New(rand.NewSource(1))
			err := conformance.RunCase(logicalCase(t, tt.cases), r, 10)
			require.ErrorIs(t, err, conformance.ErrMismatch)
			assert.Contains(t, err.Error(), tt.op)
		})
	}
}
