package astro

import (
	"math"
	"testing"
)

func TestLocalSiderealHours(t *testing.T) {
	tests := []struct {
		name      string
		gmstHours float64
		lonDeg    float64
		want      float64
	}{
		{"greenwich", 6.5, 0, 6.5},
		{"east 15 deg adds an hour", 6.5, 15, 7.5},
		{"west 30 deg subtracts two", 6.5, -30, 4.5},
		{"wraps past 24", 23.5, 15, 0.5},
		{"wraps below 0", 0.5, -15, 23.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LocalSiderealHours(tt.gmstHours, tt.lonDeg)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("LocalSiderealHours(%v, %v) = %v, want %v",
					tt.gmstHours, tt.lonDeg, got, tt.want)
			}
		})
	}
}

func TestHorizontal_ZenithStar(t *testing.T) {
	// A body with Dec = latitude and RA = LST sits at the zenith. asin
	// amplifies the sin²+cos² rounding near 1, so allow ~0.2 arcsec.
	alt, _ := Horizontal(6.0, 35.0, 35.0, 6.0)
	if math.Abs(alt-math.Pi/2) > 1e-6 {
		t.Errorf("altitude = %v, want π/2", alt)
	}
}

func TestHorizontal_EquatorMeridian(t *testing.T) {
	// Observer on the equator, body on the celestial equator crossing the
	// meridian: altitude 90° again, degenerate azimuth allowed.
	alt, _ := Horizontal(12.0, 0.0, 0.0, 12.0)
	if math.Abs(alt-math.Pi/2) > 1e-9 {
		t.Errorf("altitude = %v, want π/2", alt)
	}

	// Six sidereal hours later the same body sits on the horizon due west.
	alt, az := Horizontal(12.0, 0.0, 0.0, 18.0)
	if math.Abs(alt) > 1e-9 {
		t.Errorf("altitude = %v, want 0", alt)
	}
	// az = atan2(-cos(dec)·sin(HA), ...) with HA = +6h gives due west (-π/2).
	if math.Abs(az+math.Pi/2) > 1e-9 {
		t.Errorf("azimuth = %v, want -π/2", az)
	}
}

func TestHorizontal_SouthernStarNeverRises(t *testing.T) {
	// Dec -60° from 35°N peaks at altitude 90-35-60 = -5°.
	for lst := 0.0; lst < 24; lst += 3 {
		alt, _ := Horizontal(0, -60, 35, lst)
		if alt > 0 {
			t.Errorf("Dec=-60 visible from 35N at LST %v: alt=%v", lst, alt)
		}
	}
}

func TestHorizontal_ClampAbsorbsOvershoot(t *testing.T) {
	// Exact zenith geometry can push sin(alt) marginally above 1; the result
	// must stay a valid angle rather than NaN.
	alt, _ := Horizontal(3.0, 89.9999999, 89.9999999, 3.0)
	if math.IsNaN(alt) {
		t.Fatal("altitude is NaN")
	}
	if alt > math.Pi/2 {
		t.Errorf("altitude %v exceeds π/2", alt)
	}
}
