package stamp

import (
	"math"
	"testing"
)

func TestNewGeometry_ReferenceSize(t *testing.T) {
	g := NewGeometry(472)

	if g.Scale != 1 {
		t.Errorf("Scale = %v, want 1", g.Scale)
	}
	if math.Abs(g.Pt-300.0/72.0) > 1e-12 {
		t.Errorf("Pt = %v, want %v", g.Pt, 300.0/72.0)
	}
	if math.Abs(g.Primary-0.3*g.Pt) > 1e-12 {
		t.Errorf("Primary = %v, want 0.3 pt", g.Primary)
	}
	if math.Abs(g.Hairline-0.15*g.Pt) > 1e-12 {
		t.Errorf("Hairline = %v, want 0.15 pt", g.Hairline)
	}

	wantHorizon := 236 - g.Primary/2
	if math.Abs(g.HorizonR-wantHorizon) > 1e-12 {
		t.Errorf("HorizonR = %v, want %v", g.HorizonR, wantHorizon)
	}
	if math.Abs(g.InnerR-0.7*g.HorizonR) > 1e-12 {
		t.Errorf("InnerR = %v, want 0.7 horizonR", g.InnerR)
	}
	if math.Abs(g.ClipR-(g.HorizonR-g.Primary/2)) > 1e-12 {
		t.Errorf("ClipR = %v, want horizonR - primary/2", g.ClipR)
	}
}

func TestNewGeometry_ScalesLinearly(t *testing.T) {
	ref := NewGeometry(472)
	half := NewGeometry(236)

	if math.Abs(half.Pt-ref.Pt/2) > 1e-12 {
		t.Errorf("half-size Pt = %v, want %v", half.Pt, ref.Pt/2)
	}
	if math.Abs(half.Primary-ref.Primary/2) > 1e-12 {
		t.Errorf("half-size Primary = %v, want %v", half.Primary, ref.Primary/2)
	}
}

func TestGeometryPlace(t *testing.T) {
	g := NewGeometry(DefaultSize)

	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{"zenith", 0, 0, g.Center, g.Center},
		{"north horizon", 0, -1, g.Center, g.Center - g.HorizonR},
		{"south horizon", 0, 1, g.Center, g.Center + g.HorizonR},
		{"east horizon", 1, 0, g.Center + g.HorizonR, g.Center},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := g.Place(tt.x, tt.y)
			if math.Abs(x-tt.wantX) > 1e-12 || math.Abs(y-tt.wantY) > 1e-12 {
				t.Errorf("Place(%v, %v) = (%v, %v), want (%v, %v)",
					tt.x, tt.y, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}
