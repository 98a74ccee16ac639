// Package geo holds the small location utilities the ranker depends on:
// haversine distance, parsing of the catalog's human-readable duration
// labels, and the base-location fallback chain for "near me" requests.
package geo

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Point is a geographic coordinate.
type Point struct {
	Lat float64
	Lng float64
}

// DefaultBase is the fixed reference point used when neither a live reading
// nor a saved home location is available (the campus main quad).
var DefaultBase = Point{Lat: 34.4140, Lng: -119.8489}

const earthRadiusKm = 6371.0

// DistanceKm returns the haversine distance between two points in km.
func DistanceKm(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// ResolveBase picks the reference point for a near-me request: live reading
// first, then the saved home location, then the fixed default. It never
// fails; geolocation being unavailable must not block the near-me path.
func ResolveBase(live, saved *Point) Point {
	if live != nil {
		return *live
	}
	if saved != nil {
		return *saved
	}
	return DefaultBase
}

var (
	rangePattern  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*-\s*(\d+(?:\.\d+)?)`)
	numberPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)`)
)

// ParseHours converts a duration label like "1-2 hrs", "45 min" or
// "2 hours" into hours. Ranges resolve to their midpoint. Unparseable
// labels return 0 (treated as unconstrained by callers).
func ParseHours(label string) float64 {
	lower := strings.ToLower(label)
	value := 0.0

	if m := rangePattern.FindStringSubmatch(lower); m != nil {
		lo, _ := strconv.ParseFloat(m[1], 64)
		hi, _ := strconv.ParseFloat(m[2], 64)
		value = (lo + hi) / 2
	} else if m := numberPattern.FindStringSubmatch(lower); m != nil {
		value, _ = strconv.ParseFloat(m[1], 64)
	} else {
		return 0
	}

	if strings.Contains(lower, "min") {
		return value / 60
	}
	return value
}

// ParseWalkMinutes extracts the minute figure from a distance label like
// "12 min walk". Returns 0 when the label carries no number.
func ParseWalkMinutes(label string) float64 {
	lower := strings.ToLower(label)
	if m := numberPattern.FindStringSubmatch(lower); m != nil {
		v, _ := strconv.ParseFloat(m[1], 64)
		return v
	}
	return 0
}
