// Package astro provides astronomical coordinate transformations and sky math.
package astro

import "math"

// Vec3 represents a 3D direction vector in an equatorial frame.
type Vec3 struct {
	X, Y, Z float64
}

// Norm returns the magnitude of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalized returns a unit vector in the same direction.
func (v Vec3) Normalized() Vec3 {
	n := v.Norm()
	if n == 0 {
		return Vec3{}
	}
	return Vec3{X: v.X / n, Y: v.Y / n, Z: v.Z / n}
}

// IsFinite reports whether all components are finite numbers.
func (v Vec3) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// Rotation is a 3x3 rotation matrix in row-major order.
// Applying it to a unit vector preserves the vector norm.
type Rotation [3][3]float64

// Identity is the no-op rotation.
var Identity = Rotation{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// Apply rotates v.
func (r Rotation) Apply(v Vec3) Vec3 {
	return Vec3{
		X: r[0][0]*v.X + r[0][1]*v.Y + r[0][2]*v.Z,
		Y: r[1][0]*v.X + r[1][1]*v.Y + r[1][2]*v.Z,
		Z: r[2][0]*v.X + r[2][1]*v.Y + r[2][2]*v.Z,
	}
}

// RotationFromBasis builds the rotation whose columns are the images of the
// X, Y and Z basis vectors, i.e. Apply(e_x) = bx and so on.
func RotationFromBasis(bx, by, bz Vec3) Rotation {
	return Rotation{
		{bx.X, by.X, bz.X},
		{bx.Y, by.Y, bz.Y},
		{bx.Z, by.Z, bz.Z},
	}
}

// IsFinite reports whether all matrix entries are finite numbers.
func (r Rotation) IsFinite() bool {
	for i := range r {
		for j := range r[i] {
			if math.IsNaN(r[i][j]) || math.IsInf(r[i][j], 0) {
				return false
			}
		}
	}
	return true
}

// SphericalToVec converts equatorial RA/Dec in degrees to a unit vector.
func SphericalToVec(raDeg, decDeg float64) Vec3 {
	ra := degToRad(raDeg)
	dec := degToRad(decDeg)
	cosDec := math.Cos(dec)
	return Vec3{
		X: cosDec * math.Cos(ra),
		Y: cosDec * math.Sin(ra),
		Z: math.Sin(dec),
	}
}

// VecToSpherical converts a unit vector back to equatorial RA/Dec in degrees.
// RA is normalized to [0,360). Dec follows from asin(z), so a vector at a
// celestial pole yields Dec = ±90 with a degenerate (but valid) RA.
func VecToSpherical(v Vec3) (raDeg, decDeg float64) {
	raDeg = radToDeg(math.Atan2(v.Y, v.X))
	if raDeg < 0 {
		raDeg += 360
	}
	z := v.Z
	if z > 1 {
		z = 1
	} else if z < -1 {
		z = -1
	}
	decDeg = radToDeg(math.Asin(z))
	return raDeg, decDeg
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// radToDeg converts radians to degrees.
func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// hoursToRad converts hours of right ascension or sidereal time to radians.
func hoursToRad(hrs float64) float64 {
	return hrs * math.Pi / 12
}
