package stamp

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/litescript/ls-starstamp/internal/apperr"
	"github.com/litescript/ls-starstamp/internal/astro"
	"github.com/litescript/ls-starstamp/internal/ephem"
	"github.com/litescript/ls-starstamp/internal/sky"
)

// Compose is the core entry point: it projects an epoch-adjusted sample
// list for an observer at an instant and writes one stamp document to w.
// It performs no location resolution, path derivation, or argument parsing.
func Compose(w io.Writer, oracle ephem.Provider, samples []sky.CelestialSample, obs astro.Observer, t time.Time, size float64) error {
	bodies, err := sky.Project(oracle, samples, obs, t)
	if err != nil {
		return err
	}
	return Generate(w, bodies, size)
}

// Generate renders a stamp for a projected body set to w. A non-positive
// size falls back to DefaultSize.
func Generate(w io.Writer, bodies []sky.ProjectedBody, size float64) error {
	if size <= 0 {
		size = DefaultSize
	}
	return NewRenderer(size).Render(w, bodies)
}

// WriteFile renders a stamp and writes it to path atomically with respect
// to rendering: the document is completed in memory before the file is
// touched. Failures come back as OutputError.
func WriteFile(path string, bodies []sky.ProjectedBody, size float64) error {
	var buf bytes.Buffer
	if err := Generate(&buf, bodies, size); err != nil {
		return &apperr.OutputError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return &apperr.OutputError{Path: path, Err: err}
	}
	return nil
}
