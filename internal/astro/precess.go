package astro

// PrecessToDate rotates a star's J2000 equatorial position into the
// equator-of-date frame described by rot. Input and output are degrees;
// the returned RA is normalized to [0,360).
//
// The rotation comes from the ephemeris provider, so this function stays a
// pure frame change: spherical to Cartesian, rotate, back to spherical.
// Dec exactly ±90 round-trips through asin without special-casing; the RA of
// a pole is arbitrary and left as atan2 produces it.
func PrecessToDate(raJ2000Deg, decJ2000Deg float64, rot Rotation) (raDeg, decDeg float64) {
	v := SphericalToVec(raJ2000Deg, decJ2000Deg)
	return VecToSpherical(rot.Apply(v))
}
