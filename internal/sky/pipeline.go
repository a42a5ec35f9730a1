package sky

import (
	"fmt"
	"math"
	"time"

	"github.com/litescript/ls-starstamp/internal/apperr"
	"github.com/litescript/ls-starstamp/internal/astro"
	"github.com/litescript/ls-starstamp/internal/catalog"
	"github.com/litescript/ls-starstamp/internal/ephem"
	"github.com/litescript/ls-starstamp/internal/logging"
)

// DefaultEclipticSteps is the number of solar-path samples taken across one
// year to trace the ecliptic.
const DefaultEclipticSteps = 24

// yearDays is the length of the sampling window in days (one Julian year).
const yearDays = 365.25

// Pipeline turns a catalog and an ephemeris provider into projected bodies
// for one (time, location) pair. It holds no mutable state between calls, so
// concurrent renders may share a Pipeline freely.
type Pipeline struct {
	oracle        ephem.Provider
	stars         []catalog.Star
	log           *logging.Logger
	eclipticSteps int
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithLogger sets the pipeline logger.
func WithLogger(l *logging.Logger) PipelineOption {
	return func(p *Pipeline) {
		p.log = l
	}
}

// WithEclipticSteps sets the number of solar-path samples; 0 disables the
// ecliptic trace entirely.
func WithEclipticSteps(n int) PipelineOption {
	return func(p *Pipeline) {
		p.eclipticSteps = n
	}
}

// NewPipeline creates a pipeline over a star catalog and an ephemeris oracle.
func NewPipeline(oracle ephem.Provider, stars []catalog.Star, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		oracle:        oracle,
		stars:         stars,
		log:           logging.Discard(),
		eclipticSteps: DefaultEclipticSteps,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Samples builds the epoch-adjusted sample list for an instant: every catalog
// star precessed to the equator of date, the Sun, the Moon, the naked-eye
// planets, and the synthetic ecliptic markers, in that order.
//
// A failing planet is logged and dropped; a failing Sun, Moon or frame
// rotation aborts with the underlying ComputationError.
func (p *Pipeline) Samples(t time.Time, obs astro.Observer) ([]CelestialSample, error) {
	rot, err := p.oracle.RotationJ2000ToDate(t)
	if err != nil {
		return nil, err
	}

	samples := make([]CelestialSample, 0, len(p.stars)+8+p.eclipticSteps)

	for _, st := range p.stars {
		raDeg, decDeg := astro.PrecessToDate(st.RADeg, st.DecDeg, rot)
		samples = append(samples, CelestialSample{
			RAHours:  raDeg / 15,
			DecDeg:   decDeg,
			Mag:      st.Mag,
			Name:     st.Name,
			Category: CategoryStar,
		})
	}

	for _, b := range []ephem.Body{ephem.Sun, ephem.Moon} {
		raHours, decDeg, err := p.oracle.EquatorialOfDate(b, t, obs)
		if err != nil {
			return nil, err
		}
		samples = append(samples, CelestialSample{
			RAHours:  raHours,
			DecDeg:   decDeg,
			Mag:      b.BaseMagnitude(),
			Name:     b.String(),
			Category: keyCategory(b),
		})
	}

	for _, b := range ephem.Planets() {
		raHours, decDeg, err := p.oracle.EquatorialOfDate(b, t, obs)
		if err != nil {
			p.log.Warn("dropping %s: %v", b, err)
			continue
		}
		samples = append(samples, CelestialSample{
			RAHours:  raHours,
			DecDeg:   decDeg,
			Mag:      b.BaseMagnitude(),
			Name:     b.String(),
			Category: CategoryPlanet,
		})
	}

	samples = append(samples, p.eclipticSamples(t, obs)...)
	return samples, nil
}

// eclipticSamples traces the solar path by sampling the Sun's of-date
// position at fixed steps across one year starting at the instant. The
// temporal sample order is preserved; the renderer connects the markers in
// exactly this order.
func (p *Pipeline) eclipticSamples(t time.Time, obs astro.Observer) []CelestialSample {
	if p.eclipticSteps <= 0 {
		return nil
	}

	step := time.Duration(yearDays / float64(p.eclipticSteps) * 24 * float64(time.Hour))
	samples := make([]CelestialSample, 0, p.eclipticSteps)
	for k := 0; k < p.eclipticSteps; k++ {
		tk := t.Add(time.Duration(k) * step)
		raHours, decDeg, err := p.oracle.EquatorialOfDate(ephem.Sun, tk, obs)
		if err != nil {
			p.log.Warn("dropping ecliptic marker %d: %v", k, err)
			continue
		}
		samples = append(samples, CelestialSample{
			RAHours:  raHours,
			DecDeg:   decDeg,
			Name:     fmt.Sprintf("ecliptic-%02d", k),
			Category: CategoryEcliptic,
		})
	}
	return samples
}

// Project converts epoch-adjusted samples into projected bodies for an
// observer at an instant, applying the visibility policy: a body below the
// horizon is dropped unless its category is always carried.
//
// The Moon's illuminated fraction is looked up once and attached to the
// Moon's ProjectedBody; all other bodies report fully lit.
func Project(oracle ephem.Provider, samples []CelestialSample, obs astro.Observer, t time.Time) ([]ProjectedBody, error) {
	gmst, err := oracle.SiderealTime(t)
	if err != nil {
		return nil, err
	}
	lst := astro.LocalSiderealHours(gmst, obs.LonDeg)

	moonFraction, err := oracle.IlluminatedFraction(ephem.Moon, t)
	if err != nil {
		return nil, err
	}

	bodies := make([]ProjectedBody, 0, len(samples))
	for _, s := range samples {
		if math.IsNaN(s.RAHours) || math.IsNaN(s.DecDeg) ||
			math.IsInf(s.RAHours, 0) || math.IsInf(s.DecDeg, 0) {
			cerr := &apperr.ComputationError{
				Body:  s.Name,
				Stage: "horizon",
				Err:   fmt.Errorf("non-finite equatorial coordinates"),
			}
			if s.Category == CategorySun || s.Category == CategoryMoon {
				return nil, cerr
			}
			continue
		}

		alt, az := astro.Horizontal(s.RAHours, s.DecDeg, obs.LatDeg, lst)
		if alt < 0 && !s.Category.AlwaysCarried() {
			continue
		}

		x, y := astro.Project(alt, az)
		b := ProjectedBody{
			X:        x,
			Y:        y,
			Mag:      s.Mag,
			Name:     s.Name,
			Category: s.Category,
			Fraction: 1,
			RARad:    s.RAHours * math.Pi / 12,
			DecRad:   s.DecDeg * math.Pi / 180,
		}
		if s.Category == CategoryMoon {
			b.Fraction = moonFraction
		}
		bodies = append(bodies, b)
	}
	return bodies, nil
}

// Assemble runs the full pipeline: build samples, then project them.
func (p *Pipeline) Assemble(t time.Time, obs astro.Observer) ([]ProjectedBody, error) {
	samples, err := p.Samples(t, obs)
	if err != nil {
		return nil, err
	}
	return Project(p.oracle, samples, obs, t)
}

func keyCategory(b ephem.Body) Category {
	if b == ephem.Sun {
		return CategorySun
	}
	return CategoryMoon
}
