package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/litescript/ls-starstamp/internal/apperr"
)

const header = "Name,RA_Degrees,Dec_Degrees,Magnitude\n"

func TestLoad(t *testing.T) {
	input := header +
		"Sirius,101.287,-16.716,-1.46\n" +
		"Vega,279.235,38.784,0.03\n"

	stars, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(stars) != 2 {
		t.Fatalf("got %d stars, want 2", len(stars))
	}

	// File order is preserved.
	if stars[0].Name != "Sirius" || stars[1].Name != "Vega" {
		t.Errorf("order not preserved: %v, %v", stars[0].Name, stars[1].Name)
	}
	if stars[0].RADeg != 101.287 || stars[0].DecDeg != -16.716 || stars[0].Mag != -1.46 {
		t.Errorf("Sirius fields wrong: %+v", stars[0])
	}
}

func TestLoad_MalformedRecordAbortsWholeLoad(t *testing.T) {
	tests := []struct {
		name  string
		input string
		field string
	}{
		{
			"non-numeric RA",
			header + "Sirius,abc,-16.716,-1.46\n",
			"RA_Degrees",
		},
		{
			"RA out of range",
			header + "Sirius,360.0,-16.716,-1.46\n",
			"RA_Degrees",
		},
		{
			"Dec out of range",
			header + "Sirius,101.287,-91,-1.46\n",
			"Dec_Degrees",
		},
		{
			"missing magnitude column",
			header + "Sirius,101.287,-16.716\n",
			"",
		},
		{
			"empty name",
			header + ",101.287,-16.716,-1.46\n",
			"Name",
		},
		{
			"duplicate name",
			header + "Vega,279.235,38.784,0.03\nVega,279.235,38.784,0.03\n",
			"Name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stars, err := Load(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("Load() succeeded, want DataError")
			}
			if stars != nil {
				t.Error("partial catalog returned alongside error")
			}

			var derr *apperr.DataError
			if !errors.As(err, &derr) {
				t.Fatalf("error is %T, want *apperr.DataError", err)
			}
			if tt.field != "" && derr.Field != tt.field {
				t.Errorf("Field = %q, want %q", derr.Field, tt.field)
			}
		})
	}
}

func TestLoad_BadHeader(t *testing.T) {
	_, err := Load(strings.NewReader("a,b,c,d\nSirius,101.287,-16.716,-1.46\n"))
	var derr *apperr.DataError
	if !errors.As(err, &derr) {
		t.Fatalf("error is %T, want *apperr.DataError", err)
	}
}

func TestLoad_EmptyCatalog(t *testing.T) {
	_, err := Load(strings.NewReader(header))
	if err == nil {
		t.Fatal("empty catalog accepted")
	}
}

func TestDefault(t *testing.T) {
	stars, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	if len(stars) < 100 {
		t.Fatalf("default catalog suspiciously small: %d stars", len(stars))
	}

	seen := make(map[string]bool)
	for _, s := range stars {
		if seen[s.Name] {
			t.Errorf("duplicate name %q in default catalog", s.Name)
		}
		seen[s.Name] = true
		if s.RADeg < 0 || s.RADeg >= 360 {
			t.Errorf("%s: RA %v out of range", s.Name, s.RADeg)
		}
		if s.DecDeg < -90 || s.DecDeg > 90 {
			t.Errorf("%s: Dec %v out of range", s.Name, s.DecDeg)
		}
	}

	if !seen["Polaris"] {
		t.Error("default catalog missing Polaris")
	}
}
