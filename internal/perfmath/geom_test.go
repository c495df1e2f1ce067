// internal/perfmath/geom_test.go
// Copyright(c) 2024-2026 tolperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package perfmath

import "testing"

func TestPointInPolygon(t *testing.T) {
	square := []Point2{{0, 0}, {0, 2}, {2, 2}, {2, 0}}

	cases := []struct {
		name     string
		point    Point2
		polygon  []Point2
		expected bool
	}{
		{"inside", Point2{1, 1}, square, true},
		{"outside", Point2{3, 3}, square, false},
		{"leftOfQuad", Point2{-0.2, 0.2}, []Point2{{0.01, 1}, {20, 2}, {20, -2}, {0.01, -1}}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := PointInPolygon(c.point, c.polygon); got != c.expected {
				t.Errorf("PointInPolygon(%v, %v) = %v, want %v", c.point, c.polygon, got, c.expected)
			}
		})
	}
}

// TestPointInPolygonCyclicInvariance pins §8 invariant 4: point-in-polygon
// membership doesn't depend on which vertex the polygon's listing starts at.
func TestPointInPolygonCyclicInvariance(t *testing.T) {
	square := []Point2{{0, 0}, {0, 2}, {2, 2}, {2, 0}}
	p := Point2{1, 1}

	want := PointInPolygon(p, square)
	for shift := 1; shift < len(square); shift++ {
		rotated := append(append([]Point2{}, square[shift:]...), square[:shift]...)
		if got := PointInPolygon(p, rotated); got != want {
			t.Errorf("shift %d: PointInPolygon = %v, want %v", shift, got, want)
		}
	}
}

func TestPointInPolygonIdempotent(t *testing.T) {
	square := []Point2{{0, 0}, {0, 2}, {2, 2}, {2, 0}}
	p := Point2{1, 1}
	first := PointInPolygon(p, square)
	for i := 0; i < 5; i++ {
		if got := PointInPolygon(p, square); got != first {
			t.Errorf("call %d: PointInPolygon = %v, want %v", i, got, first)
		}
	}
}
