package stamp

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sort"

	svg "github.com/ajstarks/svgo/float"

	"github.com/litescript/ls-starstamp/internal/sky"
)

// clipID names the circular clip that keeps bodies inside the horizon ring.
const clipID = "horizon_clip"

// eclipticRadiusLimit bounds how far outside the unit disk an ecliptic
// marker may sit and still contribute a polyline vertex. Vertices at the
// nadir sentinel would drag clipped chords across the disk.
const eclipticRadiusLimit = 2.0

// Renderer draws projected body sets onto a fixed-size canvas. It holds no
// per-render state; one Renderer may serve concurrent renders.
type Renderer struct {
	geom Geometry
}

// NewRenderer creates a renderer for a canvas edge length.
func NewRenderer(size float64) *Renderer {
	return &Renderer{geom: NewGeometry(size)}
}

// Geometry exposes the derived canvas measurements.
func (r *Renderer) Geometry() Geometry {
	return r.geom
}

// Render draws the stamp for a body set. The document is assembled fully in
// memory first, so a failed write leaves nothing partial behind. An empty
// body set still produces the static frame.
func (r *Renderer) Render(w io.Writer, bodies []sky.ProjectedBody) error {
	var buf bytes.Buffer
	r.draw(&buf, bodies)
	_, err := w.Write(buf.Bytes())
	return err
}

func (r *Renderer) draw(buf *bytes.Buffer, bodies []sky.ProjectedBody) {
	g := r.geom
	canvas := svg.New(buf)
	canvas.Start(g.Size, g.Size)

	r.drawFrame(canvas)

	canvas.Def()
	canvas.ClipPath(`id="` + clipID + `"`)
	canvas.Circle(g.Center, g.Center, g.ClipR)
	canvas.ClipEnd()
	canvas.DefEnd()

	canvas.Group(fmt.Sprintf(`clip-path="url(#%s)"`, clipID))
	r.drawEcliptic(canvas, bodies)
	r.drawBodies(canvas, bodies)
	canvas.Gend()

	canvas.End()
}

// drawFrame emits the static geometry: horizon ring, inner ring, zenith
// crosshair, dashed meridian, and the four cardinal ticks.
func (r *Renderer) drawFrame(canvas *svg.SVG) {
	g := r.geom
	c := g.Center

	canvas.Circle(c, c, g.HorizonR, fmt.Sprintf(
		`fill="none" stroke="black" stroke-width="%v" shape-rendering="geometricPrecision"`,
		g.Primary))

	canvas.Circle(c, c, g.InnerR, fmt.Sprintf(
		`fill="none" stroke="black" stroke-width="%v" opacity="0.5"`, g.Hairline))

	fine := fmt.Sprintf(`stroke="black" stroke-width="%v"`, g.Hairline)
	canvas.Line(c-g.CrosshairLen, c, c+g.CrosshairLen, c, fine)
	canvas.Line(c, c-g.CrosshairLen, c, c+g.CrosshairLen, fine)

	// Local meridian, north up.
	canvas.Line(c, c-g.HorizonR, c, c+g.HorizonR, fmt.Sprintf(
		`stroke="black" stroke-width="%v" stroke-dasharray="%v,%v" opacity="0.4"`,
		g.Hairline, 0.5*g.Pt, 2*g.Pt))

	tick := fmt.Sprintf(`stroke="black" stroke-width="%v"`, g.Primary)
	canvas.Line(c, c-g.HorizonR, c, c-g.HorizonR+g.TickLen, tick) // N
	canvas.Line(c, c+g.HorizonR, c, c+g.HorizonR-g.TickLen, tick) // S
	canvas.Line(c+g.HorizonR, c, c+g.HorizonR-g.TickLen, c, tick) // E
	canvas.Line(c-g.HorizonR, c, c-g.HorizonR+g.TickLen, c, tick) // W
}

// drawEcliptic connects the solar-path markers, in sample order, as one
// dashed polyline beneath the bodies. Markers slightly outside the disk are
// kept so the path enters and leaves the clip smoothly; far-off vertices
// are dropped.
func (r *Renderer) drawEcliptic(canvas *svg.SVG, bodies []sky.ProjectedBody) {
	g := r.geom

	var xs, ys []float64
	for _, b := range bodies {
		if b.Category != sky.CategoryEcliptic || b.PlanarRadius() > eclipticRadiusLimit {
			continue
		}
		x, y := g.Place(b.X, b.Y)
		xs = append(xs, x)
		ys = append(ys, y)
	}
	if len(xs) < 2 {
		return
	}

	canvas.Polyline(xs, ys, fmt.Sprintf(
		`fill="none" stroke="black" stroke-width="%v" stroke-dasharray="%v,%v" opacity="0.6"`,
		g.Hairline, g.Pt, 2*g.Pt))
}

// drawBodies filters to the unit disk, sorts dimmest first so bright bodies
// land on top, and draws the Moon before everything else.
func (r *Renderer) drawBodies(canvas *svg.SVG, bodies []sky.ProjectedBody) {
	g := r.geom

	// The Sun-Moon direction uses the unfiltered set: a Sun below the
	// horizon still orients the crescent.
	var sun, moon *sky.ProjectedBody
	for i := range bodies {
		switch bodies[i].Category {
		case sky.CategorySun:
			sun = &bodies[i]
		case sky.CategoryMoon:
			moon = &bodies[i]
		}
	}
	angleDeg := 0.0
	if sun != nil && moon != nil {
		angleDeg = math.Atan2(sun.Y-moon.Y, sun.X-moon.X) * 180 / math.Pi
	}

	visible := make([]sky.ProjectedBody, 0, len(bodies))
	for _, b := range bodies {
		if b.PlanarRadius() <= 1 {
			visible = append(visible, b)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Mag > visible[j].Mag
	})

	for _, b := range visible {
		if b.Category == sky.CategoryMoon {
			x, y := g.Place(b.X, b.Y)
			r.drawMoon(canvas, NewMoonGlyph(x, y, g.Pt, angleDeg, b.Fraction))
			break
		}
	}

	for _, b := range visible {
		if b.Category == sky.CategoryEcliptic || b.Category == sky.CategoryMoon {
			continue
		}
		x, y := g.Place(b.X, b.Y)
		switch b.Category {
		case sky.CategorySun:
			r.drawSun(canvas, x, y)
		case sky.CategoryPlanet:
			pr := math.Max(0.8, 1.5-0.15*b.Mag) * g.Pt
			canvas.Circle(x, y, pr, fmt.Sprintf(
				`fill="white" stroke="black" stroke-width="%v"`, g.Hairline))
		default:
			sr := math.Max(0.2, 0.65-0.12*b.Mag) * g.Pt
			canvas.Circle(x, y, sr, `fill="black"`)
		}
	}
}

// drawSun draws the double-ring solar glyph.
func (r *Renderer) drawSun(canvas *svg.SVG, x, y float64) {
	g := r.geom
	canvas.Circle(x, y, 3.2*g.Pt, fmt.Sprintf(
		`fill="white" stroke="black" stroke-width="%v"`, g.Primary))
	canvas.Circle(x, y, 1.0*g.Pt, `fill="black"`)
}

func (r *Renderer) drawMoon(canvas *svg.SVG, m MoonGlyph) {
	canvas.Gtransform(fmt.Sprintf("rotate(%v,%v,%v)", m.AngleDeg, m.X, m.Y))
	canvas.Circle(m.X, m.Y, m.Radius, `fill="black"`)
	canvas.Circle(m.MaskX, m.Y, m.MaskRadius, `fill="white"`)
	canvas.Gend()
}
