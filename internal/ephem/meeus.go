package ephem

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/meeus/v3/elliptic"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonillum"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/meeus/v3/planetposition"
	"github.com/soniakeys/meeus/v3/precess"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"

	"github.com/litescript/ls-starstamp/internal/apperr"
	"github.com/litescript/ls-starstamp/internal/astro"
)

// Meeus implements Provider with the algorithms from Meeus, Astronomical
// Algorithms, via the soniakeys/meeus library.
//
// Sun and Moon positions come from closed-form series and always work.
// Planet positions need the VSOP87 data files; when those cannot be loaded
// the planet lookup fails with a ComputationError and the caller drops the
// planet from the render, per the error policy.
type Meeus struct {
	vsopDir string

	mu      sync.Mutex
	planets map[int]*planetposition.V87Planet
}

// MeeusOption configures a Meeus provider.
type MeeusOption func(*Meeus)

// WithVSOP87Dir sets the directory holding the VSOP87 B series files used
// for planet positions. When empty, the library falls back to the VSOP87
// environment variable.
func WithVSOP87Dir(dir string) MeeusOption {
	return func(m *Meeus) {
		m.vsopDir = dir
	}
}

// NewMeeus creates the default ephemeris provider.
func NewMeeus(opts ...MeeusOption) *Meeus {
	m := &Meeus{
		planets: make(map[int]*planetposition.V87Planet),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Name returns the provider name.
func (m *Meeus) Name() string { return "meeus" }

// SiderealTime returns Greenwich mean sidereal time in hours.
func (m *Meeus) SiderealTime(t time.Time) (float64, error) {
	jd := julian.TimeToJD(t.UTC())
	h := math.Mod(sidereal.Mean(jd).Hour(), 24)
	if h < 0 {
		h += 24
	}
	if !isFinite(h) {
		return 0, &apperr.ComputationError{
			Stage: "sidereal",
			Err:   fmt.Errorf("non-finite sidereal time for jd %v", jd),
		}
	}
	return h, nil
}

// RotationJ2000ToDate returns the precession rotation from the J2000
// equatorial frame to the mean equator of date.
//
// meeus/precess works on spherical coordinates, so the matrix is recovered
// by precessing the images of the three basis directions. Precession is a
// pure rotation, which makes the reconstruction exact.
func (m *Meeus) RotationJ2000ToDate(t time.Time) (astro.Rotation, error) {
	jd := julian.TimeToJD(t.UTC())
	epochTo := 2000.0 + (jd-base.J2000)/base.JulianYear

	p := precess.NewPrecessor(2000.0, epochTo)

	basis := [3]struct{ raDeg, decDeg float64 }{
		{0, 0},  // e_x: equinox direction
		{90, 0}, // e_y
		{0, 90}, // e_z: celestial pole
	}

	var images [3]astro.Vec3
	for i, b := range basis {
		from := &coord.Equatorial{
			RA:  unit.RAFromDeg(b.raDeg),
			Dec: unit.AngleFromDeg(b.decDeg),
		}
		var to coord.Equatorial
		p.Precess(from, &to)
		images[i] = astro.SphericalToVec(to.RA.Deg(), to.Dec.Deg())
	}

	rot := astro.RotationFromBasis(images[0], images[1], images[2])
	if !rot.IsFinite() {
		return astro.Identity, &apperr.ComputationError{
			Stage: "precession",
			Err:   fmt.Errorf("non-finite rotation for epoch %v", epochTo),
		}
	}
	return rot, nil
}

// EquatorialOfDate returns the of-date equatorial position of a body.
// The observer is accepted for interface symmetry; positions are geocentric,
// which is sufficient for stamp plotting.
func (m *Meeus) EquatorialOfDate(b Body, t time.Time, obs astro.Observer) (raHours, decDeg float64, err error) {
	jd := julian.TimeToJD(t.UTC())

	var ra unit.RA
	var dec unit.Angle
	switch b {
	case Sun:
		ra, dec = solar.ApparentEquatorial(jd)
	case Moon:
		λ, β, _ := moonposition.Position(jd)
		ε := coord.NewObliquity(nutation.MeanObliquity(jd))
		var eq coord.Equatorial
		eq.EclToEq(&coord.Ecliptic{Lon: λ, Lat: β}, ε)
		ra, dec = eq.RA, eq.Dec
	default:
		ra, dec, err = m.planetEquatorial(b, jd)
		if err != nil {
			return 0, 0, err
		}
	}

	raHours = ra.Hour()
	decDeg = dec.Deg()
	if !isFinite(raHours) || !isFinite(decDeg) {
		return 0, 0, &apperr.ComputationError{
			Body:  b.String(),
			Stage: "equatorial",
			Err:   fmt.Errorf("non-finite position (ra=%v h, dec=%v deg)", raHours, decDeg),
		}
	}
	return raHours, decDeg, nil
}

func (m *Meeus) planetEquatorial(b Body, jd float64) (unit.RA, unit.Angle, error) {
	idx, ok := vsopIndex(b)
	if !ok {
		return 0, 0, &apperr.ComputationError{
			Body:  b.String(),
			Stage: "equatorial",
			Err:   fmt.Errorf("no VSOP87 series for %s", b),
		}
	}

	p, err := m.loadPlanet(idx)
	if err != nil {
		return 0, 0, &apperr.ComputationError{Body: b.String(), Stage: "vsop87", Err: err}
	}
	earth, err := m.loadPlanet(planetposition.Earth)
	if err != nil {
		return 0, 0, &apperr.ComputationError{Body: b.String(), Stage: "vsop87", Err: err}
	}

	ra, dec := elliptic.Position(p, earth, jd)
	return ra, dec, nil
}

func (m *Meeus) loadPlanet(idx int) (*planetposition.V87Planet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p, ok := m.planets[idx]; ok {
		return p, nil
	}

	var p *planetposition.V87Planet
	var err error
	if m.vsopDir != "" {
		p, err = planetposition.LoadPlanetPath(idx, m.vsopDir)
	} else {
		p, err = planetposition.LoadPlanet(idx)
	}
	if err != nil {
		return nil, err
	}
	m.planets[idx] = p
	return p, nil
}

func vsopIndex(b Body) (int, bool) {
	switch b {
	case Mercury:
		return planetposition.Mercury, true
	case Venus:
		return planetposition.Venus, true
	case Mars:
		return planetposition.Mars, true
	case Jupiter:
		return planetposition.Jupiter, true
	case Saturn:
		return planetposition.Saturn, true
	default:
		return 0, false
	}
}

// IlluminatedFraction returns the illuminated fraction of the body's disk.
func (m *Meeus) IlluminatedFraction(b Body, t time.Time) (float64, error) {
	if b != Moon {
		return 1, nil
	}

	jd := julian.TimeToJD(t.UTC())
	frac := base.Illuminated(moonillum.PhaseAngle3(jd))
	if !isFinite(frac) || frac < 0 || frac > 1 {
		return 0, &apperr.ComputationError{
			Body:  b.String(),
			Stage: "illumination",
			Err:   fmt.Errorf("illuminated fraction %v outside [0,1]", frac),
		}
	}
	return frac, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
