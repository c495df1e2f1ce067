// internal/perfmath/geom.go
// Copyright(c) 2024-2026 tolperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package perfmath

// Point2 is a plain 2-vector; used here for (cgPercentMAC, weightKg)
// envelope vertices.
type Point2 [2]float32

// PointInPolygon checks whether the given point is inside the given
// polygon via even-odd ray casting. It assumes that the last vertex does
// not repeat the first one and so includes the edge from pts[len(pts)-1]
// to pts[0] in its test. A small epsilon guards the denominator so a
// horizontal edge at the query's exact y never divides by zero.
func PointInPolygon(p Point2, pts []Point2) bool {
	const eps = 1e-9
	inside := false
	for i := range pts {
		p0, p1 := pts[i], pts[(i+1)%len(pts)]
		if (p0[1] <= p[1] && p[1] < p1[1]) || (p1[1] <= p[1] && p[1] < p0[1]) {
			x := p0[0] + (p[1]-p0[1])*(p1[0]-p0[0])/(p1[1]-p0[1]+eps)
			if x > p[0] {
				inside = !inside
			}
		}
	}
	return inside
}
