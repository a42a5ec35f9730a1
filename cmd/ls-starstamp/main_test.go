package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestResolveTime(t *testing.T) {
	frozen := time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(frozen)

	got, source, err := resolveTime("", clock)
	if err != nil {
		t.Fatalf("resolveTime(\"\") error: %v", err)
	}
	if !got.Equal(frozen) || source != "system clock" {
		t.Errorf("resolveTime(\"\") = %v (%s), want clock time", got, source)
	}

	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024-06-20T21:00:00Z", time.Date(2024, 6, 20, 21, 0, 0, 0, time.UTC)},
		{"2024-06-20T21:00", time.Date(2024, 6, 20, 21, 0, 0, 0, time.UTC)},
		{"2024-06-20 21:00", time.Date(2024, 6, 20, 21, 0, 0, 0, time.UTC)},
		{"2024-06-20", time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, source, err := resolveTime(tt.in, clock)
		if err != nil {
			t.Errorf("resolveTime(%q) error: %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) || source != "user-provided" {
			t.Errorf("resolveTime(%q) = %v (%s), want %v", tt.in, got, source, tt.want)
		}
	}

	if _, _, err := resolveTime("next tuesday", clock); err == nil {
		t.Error("resolveTime accepted garbage input")
	}
}

func TestOutputPath(t *testing.T) {
	stamp := time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)

	if got := outputPath("chart", "Rome", stamp); got != "chart.svg" {
		t.Errorf("explicit path = %q, want chart.svg", got)
	}
	if got := outputPath("chart.svg", "Rome", stamp); got != "chart.svg" {
		t.Errorf("explicit svg path = %q, want chart.svg", got)
	}

	derived := outputPath("", "New York", stamp)
	if filepath.Base(derived) != "cipher_New_York_20260828_0930.svg" {
		t.Errorf("derived name = %q", filepath.Base(derived))
	}
}

func TestSafeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Rome", "Rome"},
		{"New York", "New_York"},
		{"São Paulo", "So_Paulo"},
		{"  trimmed  ", "trimmed"},
		{"///", "unknown"},
	}
	for _, tt := range tests {
		if got := safeName(tt.in); got != tt.want {
			t.Errorf("safeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
