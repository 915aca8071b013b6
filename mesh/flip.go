// Package mesh - flip legality predicate.
package mesh

import "github.com/katalvlaran/planar/geom"

// IsFlipLegal decides whether the edge (u, v) of gs may be flipped, and if so
// returns the populated FlipResult (A,C are the opposite quadrilateral
// vertices; B,D are u,v).
//
// Constraints for legality:
//   - (u, v) must be interior: incident to exactly two triangles.
//   - The quadrilateral (A,u,C,v) must be strictly convex. With
//     c1 = Cross(pA, pU, pC) and c2 = Cross(pA, pV, pC), the flip is rejected
//     when c1*c2 ≥ 0: u and v must lie strictly on opposite sides of the
//     candidate diagonal (A,C). The ≥ deliberately rejects the zero case, where
//     u or v is collinear with A and C - refusing a legal flip is recoverable,
//     applying an ambiguous one can corrupt the triangulation. Cocircular
//     quadrilaterals such as a square give a strictly negative product and
//     stay flippable.
//   - The alternate diagonal (A,C) must not already exist in the graph.
//
// Complexity: O(1) average.
func IsFlipLegal(gs *GraphState, u, v int) FlipResult {
	var res FlipResult

	tris := gs.IncidentTriangles(u, v)
	if len(tris) != 2 {
		// Hull edge (or malformed state): flipping would break the boundary.
		return res
	}

	a := gs.TriangleAt(tris[0]).Opposite(u, v)
	c := gs.TriangleAt(tris[1]).Opposite(u, v)

	pts := gs.Points()
	pU, pV := pts[u], pts[v]
	pA, pC := pts[a], pts[c]

	c1 := geom.Cross(pA, pU, pC)
	c2 := geom.Cross(pA, pV, pC)
	if c1*c2 >= 0 {
		// Concave or numerically ambiguous quadrilateral.
		return res
	}

	if gs.HasEdge(a, c) {
		return res
	}

	res.Legal = true
	res.A, res.B, res.C, res.D = a, u, c, v

	return res
}
