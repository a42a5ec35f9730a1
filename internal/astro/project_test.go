package astro

import (
	"math"
	"testing"
)

func TestProject_ZenithAndHorizonExact(t *testing.T) {
	x, y := Project(math.Pi/2, 0)
	if x != 0 || y != 0 {
		t.Errorf("zenith projects to (%v,%v), want (0,0)", x, y)
	}

	// At the horizon z = π/2, r = tan(π/4) = 1 exactly.
	x, y = Project(0, 0)
	r := math.Hypot(x, y)
	if math.Abs(r-1) > 1e-12 {
		t.Errorf("horizon radius = %v, want 1", r)
	}
}

func TestProject_RadiusMonotonicInAltitude(t *testing.T) {
	// r = tan((π/2−alt)/2) strictly increases as altitude decreases.
	prev := -1.0
	for altDeg := 89.0; altDeg > 0; altDeg -= 1 {
		x, y := Project(altDeg*math.Pi/180, 1.234)
		r := math.Hypot(x, y)
		if r <= prev {
			t.Fatalf("radius not strictly increasing at alt=%v: %v <= %v", altDeg, r, prev)
		}
		prev = r
	}
}

func TestProject_OrientationConvention(t *testing.T) {
	alt := math.Pi / 4

	// Azimuth 0 (north) maps straight up the canvas: x=0, y<0.
	x, y := Project(alt, 0)
	if math.Abs(x) > 1e-12 || y >= 0 {
		t.Errorf("north: (%v,%v), want x=0, y<0", x, y)
	}

	// Azimuth π (south) maps down: x=0, y>0.
	x, y = Project(alt, math.Pi)
	if math.Abs(x) > 1e-9 || y <= 0 {
		t.Errorf("south: (%v,%v), want x=0, y>0", x, y)
	}

	// Azimuth π/2 (east) maps right: x>0.
	x, _ = Project(alt, math.Pi/2)
	if x <= 0 {
		t.Errorf("east: x=%v, want > 0", x)
	}
}

func TestProject_NadirSentinel(t *testing.T) {
	// Near the nadir tan(z/2) diverges; the sentinel keeps the radius finite
	// and far outside the unit disk.
	x, y := Project(-math.Pi/2, 0.7)
	r := math.Hypot(x, y)
	if math.IsInf(r, 0) || math.IsNaN(r) {
		t.Fatalf("nadir radius not finite: %v", r)
	}
	if math.Abs(r-NadirSentinel) > 1e-9 {
		t.Errorf("nadir radius = %v, want sentinel %v", r, NadirSentinel)
	}
}

func TestProject_BelowHorizonOutsideDisk(t *testing.T) {
	for _, altDeg := range []float64{-1, -10, -45} {
		x, y := Project(altDeg*math.Pi/180, 2.1)
		if r := math.Hypot(x, y); r <= 1 {
			t.Errorf("alt=%v° projects inside unit disk (r=%v)", altDeg, r)
		}
	}
}
