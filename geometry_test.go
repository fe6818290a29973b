package main

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func TestMetricScaleFromBounds(t *testing.T) {
	// one degree of latitude is about 111.2 km; at 60°N a degree of longitude is half that
	tests := []struct {
		name   string
		bounds orb.Bound
		want   float64
	}{
		{"equator square", orb.Bound{Min: orb.Point{0, -0.5}, Max: orb.Point{1, 0.5}}, 111195},
		{"wide at 60N", orb.Bound{Min: orb.Point{10, 59.5}, Max: orb.Point{12, 60.5}}, 111195},
		{"tall at 60N", orb.Bound{Min: orb.Point{10, 59}, Max: orb.Point{11, 61}}, 55597},
		{"degenerate", orb.Bound{}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MetricScaleFromBounds(tt.bounds)
			if math.Abs(got-tt.want)/tt.want > 0.01 {
				t.Errorf("MetricScaleFromBounds() = %v; want about %v", got, tt.want)
			}
		})
	}
}

func TestCoordinateSystem(t *testing.T) {
	tests := []struct {
		in     string
		want   CoordinateSystem
		x, y   float64
		hasErr bool
	}{
		{"percent", Percent, 0.25, 0.5, false},
		{"", Percent, 0.25, 0.5, false},
		{"normalized", Normalized, 25, 50, false},
		{"degrees", Percent, 0, 0, true},
	}
	for _, tt := range tests {
		cs, err := ParseCoordinateSystem(tt.in)
		if (err != nil) != tt.hasErr {
			t.Errorf("ParseCoordinateSystem(%q) error = %v", tt.in, err)
			continue
		}
		if tt.hasErr {
			continue
		}
		if cs != tt.want {
			t.Errorf("ParseCoordinateSystem(%q) = %q; want %q", tt.in, cs, tt.want)
		}
		x, y := cs.Normalize(Point{X: 25, Y: 50})
		if x != tt.x || y != tt.y {
			t.Errorf("%s.Normalize(25, 50) = (%v, %v); want (%v, %v)", cs, x, y, tt.x, tt.y)
		}
	}
}
