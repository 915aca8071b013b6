// Package mstpoly - the full MST-polygonisation pipeline.
package mstpoly

import (
	"github.com/katalvlaran/planar/geom"
	"github.com/katalvlaran/planar/polygon"
)

// Weight runs the MST-polygonisation approximation over pts and returns the
// total triangulation weight: the merged hull+MST skeleton's edge lengths
// plus each interior face's optimal internal diagonal weight.
//
// Errors: ErrTooFewPoints for n < 3, ErrDegenerateHull for collinear input.
//
// Complexity: dominated by the O(n² log n) complete-graph Kruskal and the
// per-face O(f³) polygon DP.
func Weight(pts []geom.Point) (float64, error) {
	if len(pts) < 3 {
		return 0, ErrTooFewPoints
	}

	hull := geom.ConvexHullIndices(pts)
	if len(hull) < 3 {
		return 0, ErrDegenerateHull
	}

	adj := EuclideanMST(pts)
	attachLeavesToHull(adj, hull, pts)
	merged := mergeHull(adj, hull)

	total := adjacencyWeight(merged, pts)

	for _, face := range Faces(pts, merged) {
		facePts := make([]geom.Point, len(face))
		for i, id := range face {
			facePts[i] = pts[id]
		}

		cost := polygon.TriangulateCost(facePts)
		boundary := geom.PerimeterOf(facePts)
		total += polygon.InternalDiagonalWeight(cost, boundary)
	}

	return total, nil
}
