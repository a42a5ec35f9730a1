// Package stamp renders a projected body set into the final cipher stamp:
// a layered, monochrome SVG of frame geometry, the solar path, and the
// celestial bodies, deterministic byte for byte.
package stamp

// One typographic point at 300 dpi.
const pointPx = 300.0 / 72.0

// referenceSize is the canvas edge all point-based dimensions were tuned
// against; other sizes scale linearly from it.
const referenceSize = 472.0

// DefaultSize is the default canvas edge in pixels (3 cm at 300 dpi).
const DefaultSize = 354.0

// Geometry fixes every measurement of a stamp canvas. All values derive
// from the edge length alone, so two stamps of the same size share identical
// frames.
type Geometry struct {
	Size   float64 // canvas edge
	Center float64
	Scale  float64 // Size / referenceSize
	Pt     float64 // one scaled point

	Primary  float64 // ring and tick stroke
	Hairline float64 // ghost stroke

	HorizonR float64 // horizon ring path radius
	InnerR   float64 // subtle inner ring
	ClipR    float64 // inner edge of the border stroke

	CrosshairLen float64
	TickLen      float64
}

// NewGeometry derives the full measurement set for a canvas edge.
func NewGeometry(size float64) Geometry {
	scale := size / referenceSize
	pt := pointPx * scale
	primary := 0.3 * pt
	horizonR := size/2 - primary/2

	return Geometry{
		Size:   size,
		Center: size / 2,
		Scale:  scale,
		Pt:     pt,

		Primary:  primary,
		Hairline: 0.15 * pt,

		HorizonR: horizonR,
		InnerR:   0.7 * horizonR,
		ClipR:    horizonR - primary/2,

		CrosshairLen: 0.8 * pt,
		TickLen:      1.5 * pt,
	}
}

// Place maps dimensionless plane coordinates onto the canvas. The unit
// circle lands exactly on the horizon ring; y grows southward in both
// frames, so no flip is needed.
func (g Geometry) Place(x, y float64) (float64, float64) {
	return g.Center + x*g.HorizonR, g.Center + y*g.HorizonR
}
