package main

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

// Point is a coordinate as it appears in requests
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// CoordinateSystem says how request coordinates map onto node positions
type CoordinateSystem string

const (
	// Percent coordinates run from 0 to 100 across the map.
	Percent CoordinateSystem = "percent"
	// Normalized coordinates run from 0 to 1, like node positions.
	Normalized CoordinateSystem = "normalized"
)

// ParseCoordinateSystem accepts "percent" or "normalized"; empty means percent.
func ParseCoordinateSystem(s string) (CoordinateSystem, error) {
	switch CoordinateSystem(s) {
	case Percent, "":
		return Percent, nil
	case Normalized:
		return Normalized, nil
	default:
		return Percent, errors.Errorf("unknown coordinate system %q", s)
	}
}

// Normalize converts p into the normalized space of the graph
func (cs CoordinateSystem) Normalize(p Point) (float64, float64) {
	if cs == Normalized {
		return p.X, p.Y
	}
	return p.X * 0.01, p.Y * 0.01
}

// MetricScaleFromBounds returns the length in metres of one normalized unit for
// a network spanning bounds (lon/lat). Positions are normalized by the shorter
// side of the box, so that side is the scale. Degenerate bounds give 1.
func MetricScaleFromBounds(bounds orb.Bound) float64 {
	midLon := (bounds.Min.Lon() + bounds.Max.Lon()) / 2
	midLat := (bounds.Min.Lat() + bounds.Max.Lat()) / 2

	width := geo.Distance(orb.Point{bounds.Min.Lon(), midLat}, orb.Point{bounds.Max.Lon(), midLat})
	height := geo.Distance(orb.Point{midLon, bounds.Min.Lat()}, orb.Point{midLon, bounds.Max.Lat()})

	scale := math.Min(width, height)
	if scale <= 0 || math.IsNaN(scale) {
		return 1
	}
	return scale
}

// NormalizeLocation maps a lon/lat inside bounds onto the normalized plane
// used for node positions.
func NormalizeLocation(bounds orb.Bound, location orb.Point) orb.Point {
	scale := MetricScaleFromBounds(bounds)
	x := geo.Distance(orb.Point{bounds.Min.Lon(), location.Lat()}, orb.Point{location.Lon(), location.Lat()})
	y := geo.Distance(orb.Point{location.Lon(), bounds.Min.Lat()}, orb.Point{location.Lon(), location.Lat()})
	return orb.Point{x / scale, y / scale}
}
