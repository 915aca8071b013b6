// Package mstpoly approximates the minimum-weight triangulation by
// MST-polygonisation: overlay the convex hull on the Euclidean minimum
// spanning tree, enumerate the interior faces of the resulting planar graph,
// and triangulate each face optimally with the polygon DP.
//
// # Pipeline
//
//  1. Euclidean MST of the point set - Kruskal over the complete graph with
//     squared-distance ordering (ordering-equivalent to distance, no sqrt),
//     union-find with path compression and union by rank.
//  2. Leaf fix-up - every MST vertex of degree 1 gains an edge to its nearest
//     hull vertex, so the merged graph has no dead-end branches that would
//     collapse faces to zero area.
//  3. Hull merge - the hull cycle is overlaid on the adjacency, skipping
//     edges already present.
//  4. Face enumeration - the standard planar-subdivision walk: neighbours
//     sorted by polar angle (half-plane, then cross sign, collinear ties by
//     ascending squared distance), each directed edge consumed once, the
//     successor being the next outgoing edge in CCW order at the arrival
//     vertex. The single non-positively-oriented face is the outer boundary
//     and is dropped.
//  5. Per-face DP - each interior face contributes its internal diagonal
//     weight (cost − boundary)/2; the final answer adds the merged graph's
//     own edge lengths.
//
// The approximation is not a certified MWT: the MST skeleton constrains the
// triangulation. It is, however, fully deterministic and needs no RNG.
//
// # Known geometric caveat
//
// The leaf fix-up can, in rare configurations, introduce an edge crossing an
// existing MST edge; faces are extracted from the post-fix-up graph as-is and
// no crossing check is performed.
//
// Complexity: O(n² log n) for the complete-graph Kruskal (the dominant term),
// O(Σ deg·log deg) for neighbour sorting, O(|E|) for the walk, O(f³) per
// face of size f for the DP.
package mstpoly
