// Package sky assembles the celestial scene for a stamp: it merges precessed
// catalog stars with ephemeris bodies, applies the horizon visibility policy,
// and projects everything onto the zenith-centered stereographic disk.
package sky

import "math"

// Category tags what kind of body a sample represents. It is set once at
// creation; downstream code switches on the tag instead of comparing names.
type Category int

const (
	CategoryStar Category = iota
	CategoryPlanet
	CategorySun
	CategoryMoon
	CategoryEcliptic // synthetic solar-path marker
)

// String returns the category tag name.
func (c Category) String() string {
	switch c {
	case CategoryStar:
		return "star"
	case CategoryPlanet:
		return "planet"
	case CategorySun:
		return "sun"
	case CategoryMoon:
		return "moon"
	case CategoryEcliptic:
		return "ecliptic"
	default:
		return "unknown"
	}
}

// AlwaysCarried reports whether bodies of this category survive the
// below-horizon cut. Sun, Moon and ecliptic markers are computed even at
// extreme positions so the renderer can still derive the Sun–Moon angle and
// the solar path; the unit-disk filter excludes them from drawing instead.
func (c Category) AlwaysCarried() bool {
	return c == CategorySun || c == CategoryMoon || c == CategoryEcliptic
}

// CelestialSample is an epoch-adjusted body entering the projection pipeline:
// coordinates are already in the equator-of-date frame.
type CelestialSample struct {
	RAHours  float64 // right ascension in hours, [0,24)
	DecDeg   float64 // declination in degrees
	Mag      float64 // plotting magnitude
	Name     string
	Category Category
}

// ProjectedBody is a body mapped onto the stereographic plane. Coordinates
// are dimensionless; |(X,Y)| ≤ 1 means inside the horizon disk. Values
// outside are legal and mean "below horizon, excluded by the draw filter".
// Immutable once created.
type ProjectedBody struct {
	X, Y     float64
	Mag      float64
	Name     string
	Category Category

	// Fraction is the illuminated fraction, meaningful for the Moon only;
	// every other body defaults to fully lit.
	Fraction float64

	// RARad and DecRad preserve the of-date equatorial angles in radians.
	// Diagnostic only: consumed by the projection export, never by the
	// renderer.
	RARad  float64
	DecRad float64
}

// PlanarRadius returns the distance from the disk center.
func (b ProjectedBody) PlanarRadius() float64 {
	return math.Hypot(b.X, b.Y)
}
