// Package geom - convex hull via Andrew's monotone chain.
package geom

import "sort"

// ConvexHullIndices computes the convex hull of pts and returns the hull
// vertex indices in counter-clockwise order, without repeating the first
// vertex at the end.
//
// Method: sort indices lexicographically by (x, y), then build the lower and
// upper chains, popping while the last two hull points and the candidate make
// a non-strict left turn (Cross ≤ 0). Strictly collinear boundary points are
// therefore excluded from the hull.
//
// Preconditions: len(pts) ≥ 3 with at least three non-collinear points for a
// meaningful hull. Fewer points, or an all-collinear set, yield a chain with
// fewer than three vertices; callers that cannot tolerate that must check.
//
// Complexity: O(n log n) time for the sort, O(n) for the chain walk.
func ConvexHullIndices(pts []Point) []int {
	n := len(pts)
	if n == 0 {
		return nil
	}
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := pts[ids[i]], pts[ids[j]]

		return a.X < b.X || (a.X == b.X && a.Y < b.Y)
	})

	hull := make([]int, 0, n+1)

	// Lower chain.
	for _, id := range ids {
		for len(hull) >= 2 &&
			Cross(pts[hull[len(hull)-2]], pts[hull[len(hull)-1]], pts[id]) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, id)
	}

	// Upper chain; the lower chain's last point is its first, so start one in.
	lower := len(hull)
	for i := n - 2; i >= 0; i-- {
		id := ids[i]
		for len(hull) > lower &&
			Cross(pts[hull[len(hull)-2]], pts[hull[len(hull)-1]], pts[id]) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, id)
	}

	// The final point repeats the start of the lower chain; drop it.
	return hull[:len(hull)-1]
}
