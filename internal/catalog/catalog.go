// Package catalog loads the bright-star table that seeds every stamp.
//
// The table is a CSV with columns Name, RA_Degrees, Dec_Degrees, Magnitude
// (J2000 coordinates). It is read once per run, in file order; any malformed
// record aborts the whole load so a partial catalog is never used.
package catalog

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"

	_ "embed"

	"github.com/litescript/ls-starstamp/internal/apperr"
)

// Star is a cataloged star with J2000 position and brightness.
// Immutable after load.
type Star struct {
	Name   string  // Common name (e.g. "Sirius", "Vega"), unique per catalog
	RADeg  float64 // Right ascension in degrees, [0,360)
	DecDeg float64 // Declination in degrees, [-90,90]
	Mag    float64 // Apparent visual magnitude (lower = brighter)
}

// Column order of the source table.
var columns = []string{"Name", "RA_Degrees", "Dec_Degrees", "Magnitude"}

//go:embed data/bright_stars.csv
var defaultData []byte

var loadDefault = sync.OnceValues(func() ([]Star, error) {
	return Load(bytes.NewReader(defaultData))
})

// Default returns the embedded bright-star catalog (~170 stars, mag < 5,
// sourced from the Yale Bright Star Catalog and IAU star names).
func Default() ([]Star, error) {
	return loadDefault()
}

// LoadFile loads a catalog from a CSV file on disk.
func LoadFile(path string) ([]Star, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &apperr.DataError{Err: err}
	}
	defer f.Close()
	return Load(f)
}

// Load reads a catalog table. The first record must be the header row; data
// rows follow in file order, which is preserved.
func Load(r io.Reader) ([]Star, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(columns)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, &apperr.DataError{Line: 1, Err: fmt.Errorf("read header: %w", err)}
	}
	for i, want := range columns {
		if header[i] != want {
			return nil, &apperr.DataError{
				Line:  1,
				Field: want,
				Err:   fmt.Errorf("unexpected header column %q", header[i]),
			}
		}
	}

	var stars []Star
	seen := make(map[string]bool)
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &apperr.DataError{Line: line, Err: err}
		}

		star, derr := parseRecord(rec, line)
		if derr != nil {
			return nil, derr
		}
		if seen[star.Name] {
			return nil, &apperr.DataError{
				Line:  line,
				Field: "Name",
				Err:   fmt.Errorf("duplicate star %q", star.Name),
			}
		}
		seen[star.Name] = true
		stars = append(stars, star)
	}

	if len(stars) == 0 {
		return nil, &apperr.DataError{Err: errors.New("empty catalog")}
	}
	return stars, nil
}

func parseRecord(rec []string, line int) (Star, *apperr.DataError) {
	name := rec[0]
	if name == "" {
		return Star{}, &apperr.DataError{Line: line, Field: "Name", Err: errors.New("missing name")}
	}

	ra, err := strconv.ParseFloat(rec[1], 64)
	if err != nil {
		return Star{}, &apperr.DataError{Line: line, Field: "RA_Degrees", Err: err}
	}
	if ra < 0 || ra >= 360 {
		return Star{}, &apperr.DataError{
			Line:  line,
			Field: "RA_Degrees",
			Err:   fmt.Errorf("right ascension %v outside [0,360)", ra),
		}
	}

	dec, err := strconv.ParseFloat(rec[2], 64)
	if err != nil {
		return Star{}, &apperr.DataError{Line: line, Field: "Dec_Degrees", Err: err}
	}
	if dec < -90 || dec > 90 {
		return Star{}, &apperr.DataError{
			Line:  line,
			Field: "Dec_Degrees",
			Err:   fmt.Errorf("declination %v outside [-90,90]", dec),
		}
	}

	mag, err := strconv.ParseFloat(rec[3], 64)
	if err != nil {
		return Star{}, &apperr.DataError{Line: line, Field: "Magnitude", Err: err}
	}

	return Star{Name: name, RADeg: ra, DecDeg: dec, Mag: mag}, nil
}
