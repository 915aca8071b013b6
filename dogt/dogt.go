// Package dogt implements the Distance-Ordered Greedy Triangulation: a
// linear-shaped heuristic that fans the convex hull from its innermost
// interior point and then splits containing triangles for the remaining
// interior points in order of distance from the hull centroid.
//
// # Algorithm
//
//  1. Compute the convex hull H.
//  2. If every point is on the hull, fan-triangulate from H[0].
//  3. Otherwise sort the interior points by squared distance from the hull
//     centroid, fan the hull from the closest one, and for each further
//     interior point q locate the first current triangle containing q and
//     subdivide it into three. Points contained by no triangle (a collinear
//     tie lost to float rounding) are skipped rather than force-inserted.
//  4. Deduplicate edges by canonical key and sum their Euclidean lengths.
//
// For N ≥ 3 points in general position with hull size h the result has
// exactly 3N − h − 3 edges and 2N − h − 2 triangles (the triangulation count
// law; see the package tests).
//
// # Degeneracy
//
// An all-collinear input collapses the hull below three vertices; Triangulate
// then reports zero weight and no triangles instead of failing.
//
// Complexity: O(n log n) for hull and sort, O(k·t) for the containment scans
// (a plain linear scan per insertion; no point-location structure).
package dogt

import (
	"sort"

	"github.com/katalvlaran/planar/geom"
	"github.com/katalvlaran/planar/mesh"
)

// Result is a DOGT triangulation: the deduplicated weighted edge set, the
// triangle list, and the summed edge weight.
type Result struct {
	Weight    float64
	Edges     []mesh.Edge
	Triangles []mesh.Triangle
}

// Triangulate runs the heuristic over pts. A degenerate hull (fewer than
// three vertices) yields a zero Result.
func Triangulate(pts []geom.Point) Result {
	var res Result

	n := len(pts)
	hull := geom.ConvexHullIndices(pts)
	h := len(hull)
	if h < 3 {
		return res
	}

	keys := make(map[mesh.EdgeKey]struct{}, 3*n)
	addEdge := func(u, v int) {
		keys[mesh.NewEdgeKey(u, v)] = struct{}{}
	}

	var tris []mesh.Triangle

	if h == n {
		// Convex position: fan from H[0].
		tris = make([]mesh.Triangle, 0, n-2)
		for i := 1; i < n-1; i++ {
			tris = append(tris, mesh.Triangle{A: hull[0], B: hull[i], C: hull[i+1]})
			addEdge(hull[0], hull[i])
			addEdge(hull[i], hull[i+1])
			addEdge(hull[i+1], hull[0])
		}
	} else {
		onHull := make([]bool, n)
		for _, id := range hull {
			onHull[id] = true
		}
		interior := make([]int, 0, n-h)
		for i := 0; i < n; i++ {
			if !onHull[i] {
				interior = append(interior, i)
			}
		}

		hullPts := make([]geom.Point, h)
		for i, id := range hull {
			hullPts[i] = pts[id]
		}
		c := geom.PolygonCentroid(hullPts)

		// Innermost first: closest to the hull centroid.
		sort.Slice(interior, func(i, j int) bool {
			return geom.DistSq(pts[interior[i]], c) < geom.DistSq(pts[interior[j]], c)
		})

		// Fan the hull from the innermost interior point.
		q0 := interior[0]
		tris = make([]mesh.Triangle, 0, 2*n)
		for i := 0; i < h; i++ {
			a, b := hull[i], hull[(i+1)%h]
			tris = append(tris, mesh.Triangle{A: q0, B: a, C: b})
			addEdge(q0, a)
			addEdge(a, b)
			addEdge(b, q0)
		}

		// Insert the remaining interior points by subdividing their container.
		for _, q := range interior[1:] {
			at := -1
			for ti, tr := range tris {
				if geom.PointInTriangle(pts[q], pts[tr.A], pts[tr.B], pts[tr.C]) {
					at = ti

					break
				}
			}
			if at == -1 {
				// No container found; skip rather than corrupt the mesh.
				continue
			}

			f := tris[at]
			tris = append(tris[:at], tris[at+1:]...)
			tris = append(tris,
				mesh.Triangle{A: q, B: f.A, C: f.B},
				mesh.Triangle{A: q, B: f.B, C: f.C},
				mesh.Triangle{A: q, B: f.C, C: f.A},
			)
			addEdge(q, f.A)
			addEdge(q, f.B)
			addEdge(q, f.C)
		}
	}

	// Materialise the deduplicated edge set in deterministic key order.
	res.Edges = make([]mesh.Edge, 0, len(keys))
	for k := range keys {
		res.Edges = append(res.Edges, mesh.Edge{
			U: k.U, V: k.V,
			Weight: geom.Dist(pts[k.U], pts[k.V]),
		})
	}
	sort.Slice(res.Edges, func(i, j int) bool {
		if res.Edges[i].U != res.Edges[j].U {
			return res.Edges[i].U < res.Edges[j].U
		}

		return res.Edges[i].V < res.Edges[j].V
	})

	for _, e := range res.Edges {
		res.Weight += e.Weight
	}
	res.Triangles = tris

	return res
}
