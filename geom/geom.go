// Package geom - orientation predicates, distances, containment, centroid.
//
// Every helper is a small, side-effect-free function over r2 points.
// No allocations, no logging; O(1) unless stated otherwise.
package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// Point is a planar point in double precision. It aliases r2.Point so callers
// can use the full r2 vector API (Sub, Add, Norm, ...) without conversions.
type Point = r2.Point

// Cross returns (a−p) × (b−p): twice the signed area of triangle pab.
// Positive ⇒ a→b turns counter-clockwise around p; negative ⇒ clockwise;
// zero ⇒ the three points are collinear.
//
// Complexity: O(1).
func Cross(p, a, b Point) float64 {
	return a.Sub(p).Cross(b.Sub(p))
}

// Orientation reduces Cross(p, q, r) to its sign:
//
//	+1 — counter-clockwise (left turn)
//	 0 — collinear
//	−1 — clockwise (right turn)
//
// Complexity: O(1).
func Orientation(p, q, r Point) int {
	v := Cross(p, q, r)
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Dist returns the Euclidean distance between a and b.
//
// Complexity: O(1).
func Dist(a, b Point) float64 {
	return a.Sub(b).Norm()
}

// DistSq returns the squared Euclidean distance between a and b.
// Ordering-equivalent to Dist and cheaper; use it wherever only comparisons
// are needed.
//
// Complexity: O(1).
func DistSq(a, b Point) float64 {
	d := a.Sub(b)

	return d.X*d.X + d.Y*d.Y
}

// PointInTriangle reports whether p lies inside or on the boundary of
// triangle abc. The triangle's orientation does not matter: p is contained
// exactly when the three edge cross products carry no mixed strict signs.
//
// Complexity: O(1).
func PointInTriangle(p, a, b, c Point) bool {
	c1 := Cross(p, a, b)
	c2 := Cross(p, b, c)
	c3 := Cross(p, c, a)

	hasNeg := c1 < 0 || c2 < 0 || c3 < 0
	hasPos := c1 > 0 || c2 > 0 || c3 > 0

	// Inside or on boundary ⇔ all signs agree (zeros permitted).
	return !(hasNeg && hasPos)
}

// PolygonCentroid returns the area-weighted centroid of the simple polygon
// poly (vertices in order, no closing repetition). The result is undefined
// for degenerate zero-area polygons; that precondition is the caller's.
//
// Complexity: O(n).
func PolygonCentroid(poly []Point) Point {
	var (
		area float64 // twice the signed area, accumulated
		cx   float64
		cy   float64
		n    = len(poly)
		j    int
		cr   float64
	)
	for i := 0; i < n; i++ {
		j = (i + 1) % n
		cr = poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
		area += cr
		cx += (poly[i].X + poly[j].X) * cr
		cy += (poly[i].Y + poly[j].Y) * cr
	}
	area *= 0.5

	return Point{X: cx / (6 * area), Y: cy / (6 * area)}
}

// PerimeterOf returns the closed-ring perimeter of poly: the sum of
// consecutive edge lengths including the wrap-around edge.
//
// Complexity: O(n).
func PerimeterOf(poly []Point) float64 {
	var (
		sum float64
		n   = len(poly)
	)
	for i := 0; i < n; i++ {
		sum += Dist(poly[i], poly[(i+1)%n])
	}

	return sum
}

// TrianglePerimeter returns Dist(a,b)+Dist(b,c)+Dist(c,a). Kept as a named
// helper because the polygon DP uses triangle perimeter as its cost unit.
//
// Complexity: O(1).
func TrianglePerimeter(a, b, c Point) float64 {
	return Dist(a, b) + Dist(b, c) + Dist(c, a)
}

// IsFinite reports whether p has finite coordinates. Input loaders use it to
// reject NaN/Inf coordinates before any predicate runs on them.
//
// Complexity: O(1).
func IsFinite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
