// Package polygon computes the optimal triangulation of a simple polygon by
// perimeter-cost dynamic programming.
//
// # What & Why
//
// For an ordered vertex ring V[0..n-1], the classic recurrence
//
//	table[i][j] = 0                                      if j < i+2
//	table[i][j] = min over k in (i,j) of
//	              table[i][k] + table[k][j] + perim(V[i], V[k], V[j])
//
// yields the minimum possible sum of triangle perimeters over all
// triangulations of the sub-polygon V[i..j]. The table is filled diagonally
// by increasing gap = j−i; table[0][n-1] is the answer.
//
// Two consumers drive the API:
//
//   - The brute-force solver runs it over a whole point set. That is optimal
//     only for points in convex position; on any other input it triangulates
//     the polygon formed by the points in input order, which is NOT the
//     minimum-weight triangulation of the set. Documented precondition, not
//     verified.
//   - The MST-polygonisation pipeline runs it per planar face and recovers
//     the internal diagonal length as (cost − boundary) / 2, since every
//     internal edge is counted in exactly two triangle perimeters and every
//     boundary edge in exactly one.
//
// Complexity: O(n³) time, O(n²) memory. Inputs with n < 3 cost 0.
package polygon

import (
	"math"

	"github.com/katalvlaran/planar/geom"
)

// TriangulateCost returns the minimum total triangle perimeter over all
// triangulations of the polygon poly (vertices in ring order, no closing
// repetition). Returns 0 when len(poly) < 3.
//
// Complexity: O(n³) time, O(n²) memory.
func TriangulateCost(poly []geom.Point) float64 {
	cost, _ := dp(poly, false)

	return cost
}

// Triangulate returns the optimal perimeter cost together with the full edge
// list of the chosen triangulation - the n ring edges plus the n−3 internal
// diagonals recovered from the DP split table. Edges are index pairs into
// poly with the smaller index first.
//
// Complexity: O(n³) time, O(n²) memory.
func Triangulate(poly []geom.Point) (float64, [][2]int) {
	return dp(poly, true)
}

// InternalDiagonalWeight recovers the summed length of a face's internal
// diagonals from its DP cost and boundary perimeter. Every internal edge
// appears in two triangle perimeters, every boundary edge in one.
func InternalDiagonalWeight(cost, boundary float64) float64 {
	return (cost - boundary) / 2
}

// dp fills the perimeter-cost table diagonally and, when withEdges is set,
// backtracks the split table into an explicit edge list.
func dp(poly []geom.Point, withEdges bool) (float64, [][2]int) {
	n := len(poly)
	if n < 3 {
		return 0, nil
	}

	// Row-major n×n tables; only the upper triangle (j ≥ i) is used.
	table := make([]float64, n*n)
	split := make([]int, n*n)

	var (
		i, j, k int
		val     float64
	)
	for gap := 2; gap < n; gap++ {
		for i = 0; i+gap < n; i++ {
			j = i + gap
			table[i*n+j] = math.Inf(1)
			for k = i + 1; k < j; k++ {
				val = table[i*n+k] + table[k*n+j] +
					geom.TrianglePerimeter(poly[i], poly[k], poly[j])
				if val < table[i*n+j] {
					table[i*n+j] = val
					split[i*n+j] = k
				}
			}
		}
	}

	if !withEdges {
		return table[0*n+(n-1)], nil
	}

	// Ring edges first, then the diagonals chosen by the split table.
	edges := make([][2]int, 0, 2*n-3)
	for i = 0; i < n-1; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}
	edges = append(edges, [2]int{0, n - 1})
	edges = appendDiagonals(edges, split, n, 0, n-1)

	return table[0*n+(n-1)], edges
}

// appendDiagonals walks the split table for sub-polygon [i..j], emitting the
// chords (i,k) and (k,j) whenever they are not ring edges.
func appendDiagonals(edges [][2]int, split []int, n, i, j int) [][2]int {
	if j < i+2 {
		return edges
	}
	k := split[i*n+j]
	if k > i+1 {
		edges = append(edges, [2]int{i, k})
	}
	if j > k+1 {
		edges = append(edges, [2]int{k, j})
	}
	edges = appendDiagonals(edges, split, n, i, k)

	return appendDiagonals(edges, split, n, k, j)
}
