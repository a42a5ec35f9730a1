// Package ephem supplies sidereal time, frame rotation, and body positions
// from an ephemeris provider.
//
// The pipeline treats the provider as an opaque, correct oracle behind a
// narrow interface, so any implementation with the right accuracy can slot
// in. The default implementation is Meeus, backed by the soniakeys/meeus
// algorithm library.
package ephem

import (
	"time"

	"github.com/litescript/ls-starstamp/internal/astro"
)

// Body identifies a solar-system body the provider can position.
type Body int

const (
	Sun Body = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
)

// String returns the display name of the body.
func (b Body) String() string {
	switch b {
	case Sun:
		return "Sun"
	case Moon:
		return "Moon"
	case Mercury:
		return "Mercury"
	case Venus:
		return "Venus"
	case Mars:
		return "Mars"
	case Jupiter:
		return "Jupiter"
	case Saturn:
		return "Saturn"
	default:
		return "unknown"
	}
}

// BaseMagnitude returns the fixed plotting magnitude used for the body.
// Stamps need a stable visual hierarchy, not photometric accuracy, so these
// are constants rather than computed apparent magnitudes.
func (b Body) BaseMagnitude() float64 {
	switch b {
	case Sun:
		return -26.7
	case Moon:
		return -12.0
	case Mercury:
		return -0.5
	case Venus:
		return -4.0
	case Mars:
		return -1.0
	case Jupiter:
		return -2.0
	case Saturn:
		return 0.0
	default:
		return 6.0
	}
}

// Planets lists the naked-eye planets, Sun and Moon excluded.
func Planets() []Body {
	return []Body{Mercury, Venus, Mars, Jupiter, Saturn}
}

// Provider is the ephemeris oracle interface.
//
// All times are treated as UTC civil instants with no timezone conversion.
// Implementations must return an error rather than a non-finite value for
// any required quantity.
type Provider interface {
	// Name returns the provider name for display/logging.
	Name() string

	// SiderealTime returns Greenwich mean sidereal time in hours, [0,24).
	SiderealTime(t time.Time) (float64, error)

	// RotationJ2000ToDate returns the rotation taking J2000 equatorial unit
	// vectors into the equator-of-date frame for the instant.
	RotationJ2000ToDate(t time.Time) (astro.Rotation, error)

	// EquatorialOfDate returns the body's of-date equatorial position for an
	// observer: right ascension in hours and declination in degrees.
	EquatorialOfDate(b Body, t time.Time, obs astro.Observer) (raHours, decDeg float64, err error)

	// IlluminatedFraction returns the fraction of the body's disk lit by the
	// Sun, in [0,1]. Only the Moon has an interesting value; other bodies
	// report fully lit.
	IlluminatedFraction(b Body, t time.Time) (float64, error)
}
