package sky

import (
	"encoding/json"
	"io"
	"time"

	"github.com/litescript/ls-starstamp/internal/astro"
)

// ProjectionExport is the JSON-serializable verification dump behind the
// --debug flag. It exposes the planar Sun/Moon positions and the diagnostic
// equatorial angles so a stamp can be decoded back to its inputs.
type ProjectionExport struct {
	Time      time.Time `json:"time"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`

	Sun  *BodyExport `json:"sun,omitempty"`
	Moon *BodyExport `json:"moon,omitempty"`

	VisibleStars   int `json:"visible_stars"`
	VisiblePlanets int `json:"visible_planets"`
	Bodies         int `json:"bodies"`
}

// BodyExport is a JSON-friendly projected body.
type BodyExport struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	RARad    float64 `json:"ra_rad"`
	DecRad   float64 `json:"dec_rad"`
	Fraction float64 `json:"fraction"`
	Drawn    bool    `json:"drawn"` // inside the unit disk
}

// ExportProjection converts a projected body set to an exportable summary.
func ExportProjection(bodies []ProjectedBody, obs astro.Observer, t time.Time) *ProjectionExport {
	export := &ProjectionExport{
		Time:      t,
		Latitude:  obs.LatDeg,
		Longitude: obs.LonDeg,
		Bodies:    len(bodies),
	}

	for i := range bodies {
		b := &bodies[i]
		switch b.Category {
		case CategorySun:
			export.Sun = exportBody(b)
		case CategoryMoon:
			export.Moon = exportBody(b)
		case CategoryStar:
			if b.PlanarRadius() <= 1 {
				export.VisibleStars++
			}
		case CategoryPlanet:
			if b.PlanarRadius() <= 1 {
				export.VisiblePlanets++
			}
		}
	}
	return export
}

func exportBody(b *ProjectedBody) *BodyExport {
	return &BodyExport{
		X:        b.X,
		Y:        b.Y,
		RARad:    b.RARad,
		DecRad:   b.DecRad,
		Fraction: b.Fraction,
		Drawn:    b.PlanarRadius() <= 1,
	}
}

// WriteJSON writes the export as indented JSON.
func (e *ProjectionExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}
