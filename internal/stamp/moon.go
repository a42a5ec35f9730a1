package stamp

// Moon glyph proportions, in scaled points and base-disk radii.
const (
	moonRadiusPt    = 1.5
	maskRadiusRatio = 1.05 // slight oversize so a new moon is fully covered
	maskTravel      = 2.5  // mask offset at full illumination, in disk radii
)

// MoonGlyph is the resolved crescent geometry for one stamp: a black base
// disk and a background-colored mask disk, drawn inside a group rotated so
// the revealed limb faces the Sun.
//
// The mask slides along the local x axis away from the Sun; the rotation
// carries the whole pair. fraction 0 leaves the disk fully covered,
// fraction 1 clears the mask off the disk entirely, and the offset is
// linear in between.
type MoonGlyph struct {
	X, Y   float64 // disk center, canvas coordinates
	Radius float64

	MaskX      float64 // mask center before rotation
	MaskRadius float64

	AngleDeg float64 // rotation toward the Sun
}

// NewMoonGlyph builds the crescent geometry at a canvas position. The
// fraction is clamped to [0,1]; angleDeg is the direction from the Moon to
// the Sun in canvas degrees.
func NewMoonGlyph(x, y, pt, angleDeg, fraction float64) MoonGlyph {
	if fraction < 0 {
		fraction = 0
	} else if fraction > 1 {
		fraction = 1
	}

	r := moonRadiusPt * pt
	return MoonGlyph{
		X:          x,
		Y:          y,
		Radius:     r,
		MaskX:      x - fraction*maskTravel*r,
		MaskRadius: maskRadiusRatio * r,
		AngleDeg:   angleDeg,
	}
}

// MaskOffset returns how far the mask has slid from the disk center.
func (m MoonGlyph) MaskOffset() float64 {
	return m.X - m.MaskX
}
