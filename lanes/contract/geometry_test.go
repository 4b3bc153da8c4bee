package contract

import (
	"errors"
	"testing"
)

func TestGeometryValidate(t *testing.T) {
	good := Geometry{Name: "w128", Bits: 128, Bytes: 16, Lanes8: 16, Lanes16: 8, Lanes32: 4, Lanes64: 2, Alignment: 16}
	if err := good.Validate(); err != nil {
		t.Fatalf("Validate(%v) = %v", good, err)
	}
	if got := good.Words(); got != 2 {
		t.Errorf("Words() = %d, want 2", got)
	}

	tests := []struct {
		name   string
		mutate func(*Geometry)
	}{
		{"bits", func(g *Geometry) { g.Bits = 120 }},
		{"lanes16", func(g *Geometry) { g.Lanes16 = 4 }},
		{"lanes32", func(g *Geometry) { g.Lanes32 = 8 }},
		{"lanes64", func(g *Geometry) { g.Lanes64 = 1 }},
		{"alignment", func(g *Geometry) { g.Alignment = 8 }},
		{"not power of two", func(g *Geometry) {
			*g = Geometry{Name: "w96", Bits: 96, Bytes: 12, Lanes8: 12, Lanes16: 6, Lanes32: 3, Alignment: 12}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := good
			tt.mutate(&g)
			if err := g.Validate(); !errors.Is(err, ErrGeometry) {
				t.Errorf("Validate() = %v, want ErrGeometry", err)
			}
		})
	}
}

func TestGeometryString(t *testing.T) {
	g := Geometry{Name: "avx2", Bits: 256}
	if got, want := g.String(), "avx2(256-bit)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
