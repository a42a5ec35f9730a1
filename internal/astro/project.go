package astro

import "math"

// NadirSentinel is the planar radius assigned to directions numerically at
// the nadir, where tan(z/2) diverges. It keeps downstream comparisons against
// the unit disk well-defined while reliably excluding the body from drawing.
const NadirSentinel = 1000.0

// nadirEpsilon guards the zenith distance just short of π.
const nadirEpsilon = 1e-5

// Project maps horizontal coordinates (radians) to a point in the
// zenith-centered stereographic plane. The zenith maps to r=0, the horizon
// to r=1; bodies below the horizon land outside the unit disk.
//
// The sign convention x = r·sin(az), y = −r·cos(az) puts north at the top of
// the canvas and south at the bottom once y grows downward in screen space.
func Project(altRad, azRad float64) (x, y float64) {
	z := math.Pi/2 - altRad

	var r float64
	if z >= math.Pi-nadirEpsilon {
		r = NadirSentinel
	} else {
		r = math.Tan(z / 2)
	}

	return r * math.Sin(azRad), -r * math.Cos(azRad)
}
