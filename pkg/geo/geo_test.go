package geo

import (
	"math"
	"testing"
)

func TestDistanceKm(t *testing.T) {
	campus := Point{Lat: 34.4140, Lng: -119.8489}

	if d := DistanceKm(campus, campus); d != 0 {
		t.Errorf("distance to self = %f, want 0", d)
	}

	// One hundredth of a degree of latitude is roughly 1.11 km.
	north := Point{Lat: campus.Lat + 0.01, Lng: campus.Lng}
	d := DistanceKm(campus, north)
	if math.Abs(d-1.11) > 0.05 {
		t.Errorf("distance 0.01deg north = %f km, want ~1.11", d)
	}

	// Symmetry.
	if back := DistanceKm(north, campus); math.Abs(back-d) > 1e-9 {
		t.Errorf("distance not symmetric: %f vs %f", d, back)
	}
}

func TestResolveBase(t *testing.T) {
	live := Point{Lat: 1, Lng: 2}
	saved := Point{Lat: 3, Lng: 4}

	tests := []struct {
		name  string
		live  *Point
		saved *Point
		want  Point
	}{
		{"live wins", &live, &saved, live},
		{"saved when no live", nil, &saved, saved},
		{"default when neither", nil, nil, DefaultBase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveBase(tt.live, tt.saved); got != tt.want {
				t.Errorf("ResolveBase = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseHours(t *testing.T) {
	tests := []struct {
		label string
		want  float64
	}{
		{"1-2 hrs", 1.5},
		{"2 hours", 2},
		{"45 min", 0.75},
		{"30-60 min", 0.75},
		{"1.5 hrs", 1.5},
		{"scenic", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := ParseHours(tt.label); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ParseHours(%q) = %f, want %f", tt.label, got, tt.want)
			}
		})
	}
}

func TestParseWalkMinutes(t *testing.T) {
	if got := ParseWalkMinutes("12 min walk"); got != 12 {
		t.Errorf("ParseWalkMinutes = %f, want 12", got)
	}
	if got := ParseWalkMinutes("on campus"); got != 0 {
		t.Errorf("ParseWalkMinutes with no number = %f, want 0", got)
	}
}
