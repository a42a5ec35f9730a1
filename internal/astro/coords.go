package astro

import "math"

// Observer represents a ground-based observer location.
type Observer struct {
	LatDeg float64 // Latitude in degrees (north positive)
	LonDeg float64 // Longitude in degrees (east positive)
	Name   string  // Optional name for the site
}

// LocalSiderealHours converts Greenwich mean sidereal time to local sidereal
// time for an observer longitude, normalized to [0,24).
func LocalSiderealHours(gmstHours, lonDeg float64) float64 {
	lst := math.Mod(gmstHours+lonDeg/15, 24)
	if lst < 0 {
		lst += 24
	}
	return lst
}

// Horizontal converts of-date equatorial coordinates to horizontal
// coordinates for an observer. RA and local sidereal time are in hours,
// declination and latitude in degrees; the returned altitude and azimuth are
// in radians.
//
// Conventions: altitude 0 = horizon, π/2 = zenith; azimuth from atan2 with
// north at 0, east positive.
func Horizontal(raHours, decDeg, latDeg, lstHours float64) (altRad, azRad float64) {
	ha := hoursToRad(lstHours) - hoursToRad(raHours)
	lat := degToRad(latDeg)
	dec := degToRad(decDeg)

	sinAlt := math.Sin(lat)*math.Sin(dec) + math.Cos(lat)*math.Cos(dec)*math.Cos(ha)
	// Clamp to absorb floating-point overshoot before asin.
	if sinAlt > 1 {
		sinAlt = 1
	} else if sinAlt < -1 {
		sinAlt = -1
	}
	altRad = math.Asin(sinAlt)

	azRad = math.Atan2(
		-math.Cos(dec)*math.Sin(ha),
		math.Sin(dec)*math.Cos(lat)-math.Cos(dec)*math.Sin(lat)*math.Cos(ha),
	)
	return altRad, azRad
}
