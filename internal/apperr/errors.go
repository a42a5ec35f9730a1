// Package apperr defines the error taxonomy shared across the stamp pipeline.
//
// GeometryError has no type here on purpose: degenerate projection input is
// clamped locally in the astro package and never surfaced.
package apperr

import "fmt"

// DataError reports a malformed or incomplete catalog record. A DataError
// aborts the whole load; no partial catalog is ever used.
type DataError struct {
	Line  int    // 1-based line in the source table, 0 if unknown
	Field string // offending column, empty if the record as a whole is bad
	Err   error
}

func (e *DataError) Error() string {
	switch {
	case e.Line > 0 && e.Field != "":
		return fmt.Sprintf("catalog: line %d: field %q: %v", e.Line, e.Field, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("catalog: line %d: %v", e.Line, e.Err)
	default:
		return fmt.Sprintf("catalog: %v", e.Err)
	}
}

func (e *DataError) Unwrap() error { return e.Err }

// ComputationError reports an ephemeris failure or a non-finite value for a
// required quantity. Whether it is fatal depends on the body: sidereal time,
// the frame rotation, and the Sun and Moon abort the render; anything else
// just drops the affected body.
type ComputationError struct {
	Body  string // body name, empty for body-independent quantities
	Stage string // pipeline stage, e.g. "sidereal", "precession", "equatorial"
	Err   error
}

func (e *ComputationError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("ephemeris: %s: %s: %v", e.Stage, e.Body, e.Err)
	}
	return fmt.Sprintf("ephemeris: %s: %v", e.Stage, e.Err)
}

func (e *ComputationError) Unwrap() error { return e.Err }

// OutputError reports a failure to persist the vector document. Fatal, no
// retry; the render buffer is discarded so no partial file survives.
type OutputError struct {
	Path string // destination path, empty for generic writers
	Err  error
}

func (e *OutputError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("output: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("output: %v", e.Err)
}

func (e *OutputError) Unwrap() error { return e.Err }
